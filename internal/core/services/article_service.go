package services

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

type ArticleSource interface {
	Load(ctx context.Context) ([]domain.Article, error)
}

// ArticleService serves the study journal. Raw HTML inside an article is
// escaped when rendering.
type ArticleService struct {
	articles []domain.Article
	md       goldmark.Markdown
}

// NewArticleService loads the source once. A failing source leaves the
// catalogue empty.
func NewArticleService(ctx context.Context, src ArticleSource) *ArticleService {
	articles, err := src.Load(ctx)
	if err != nil {
		log.Printf("[ARTICLES] Failed to load articles, starting empty: %v", err)
		articles = nil
	}

	return &ArticleService{
		articles: domain.SortArticles(articles),
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		),
	}
}

type ArticleView struct {
	domain.Article
	HTML string `json:"html"`
}

// List returns the catalogue without bodies, newest first.
func (s *ArticleService) List() []domain.Article {
	out := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, a.Summary())
	}
	return out
}

func (s *ArticleService) Get(id string) (ArticleView, error) {
	for _, a := range s.articles {
		if a.ID != id {
			continue
		}
		var buf bytes.Buffer
		if err := s.md.Convert([]byte(a.Markdown), &buf); err != nil {
			return ArticleView{}, fmt.Errorf("render article %s: %w", id, err)
		}
		return ArticleView{Article: a, HTML: buf.String()}, nil
	}
	return ArticleView{}, domain.ErrArticleNotFound
}
