package domain

import (
	"errors"
	"sort"
)

var ErrArticleNotFound = errors.New("article not found")

// Article is one entry of the study journal. Markdown holds the raw body.
type Article struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Category string `json:"category" yaml:"category"`
	Markdown string `json:"markdown,omitempty" yaml:"-"`
}

// Summary drops the body for catalogue listings.
func (a Article) Summary() Article {
	a.Markdown = ""
	return a
}

// SortArticles orders newest first, then by title.
func SortArticles(articles []Article) []Article {
	out := make([]Article, len(articles))
	copy(out, articles)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Title < out[j].Title
	})
	return out
}
