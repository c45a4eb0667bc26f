package source

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

//go:embed articles/*.md
var embeddedArticles embed.FS

var ErrInvalidArticle = errors.New("invalid article")

const frontMatterFence = "---"

// ArticleSource reads markdown articles that open with a YAML front matter
// block. Dir overrides the articles compiled into the binary.
type ArticleSource struct {
	Dir string
}

func NewArticleSource(dir string) *ArticleSource {
	return &ArticleSource{Dir: dir}
}

func (s *ArticleSource) Load(ctx context.Context) ([]domain.Article, error) {
	var fsys fs.FS = embeddedArticles
	pattern := "articles/*.md"
	if s.Dir != "" {
		fsys = os.DirFS(s.Dir)
		pattern = "*.md"
	}

	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read article %s: %w", p, err)
		}
		a, err := ParseArticle(strings.TrimSuffix(path.Base(p), ".md"), data)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// ParseArticle splits the front matter from the markdown body. The file
// name is the id unless the front matter sets one.
func ParseArticle(id string, data []byte) (domain.Article, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, frontMatterFence+"\n") {
		return domain.Article{}, fmt.Errorf("%w: %s: missing front matter", ErrInvalidArticle, id)
	}
	rest := text[len(frontMatterFence)+1:]
	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		return domain.Article{}, fmt.Errorf("%w: %s: unterminated front matter", ErrInvalidArticle, id)
	}

	var a domain.Article
	if err := yaml.Unmarshal([]byte(rest[:end]), &a); err != nil {
		return domain.Article{}, fmt.Errorf("%w: %s: %v", ErrInvalidArticle, id, err)
	}
	if a.ID == "" {
		a.ID = id
	}
	if strings.TrimSpace(a.Title) == "" {
		return domain.Article{}, fmt.Errorf("%w: %s: title is required", ErrInvalidArticle, id)
	}
	if a.Date != "" {
		if _, err := time.Parse(domain.DateLayout, a.Date); err != nil {
			return domain.Article{}, fmt.Errorf("%w: %s: %v", ErrInvalidArticle, id, domain.ErrInvalidDate)
		}
	}

	a.Markdown = strings.TrimLeft(rest[end+len(frontMatterFence)+1:], "\n")
	return a, nil
}
