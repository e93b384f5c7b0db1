package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleQuery_Values(t *testing.T) {
	tests := []struct {
		name string
		q    ArticleQuery
		want string
	}{
		{
			name: "zero query sends nothing",
			q:    ArticleQuery{},
			want: "",
		},
		{
			name: "first page is omitted",
			q:    ArticleQuery{Page: 1, Limit: 9},
			want: "limit=9",
		},
		{
			name: "later pages are explicit",
			q:    ArticleQuery{Page: 3, Limit: 9},
			want: "limit=9&page=3",
		},
		{
			name: "filters are trimmed",
			q:    ArticleQuery{Search: "  go  ", CategoryID: " cat-1 "},
			want: "categoryId=cat-1&search=go",
		},
		{
			name: "whitespace-only filters are dropped",
			q:    ArticleQuery{Search: "   ", CategoryID: "\t"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Values().Encode())
		})
	}
}

func TestArticleQuery_FilterValues(t *testing.T) {
	q := ArticleQuery{Search: "go", CategoryID: "cat-1", Page: 2, Limit: 9}

	assert.Equal(t, "categoryId=cat-1&page=2&search=go", q.FilterValues().Encode())

	// Cleared filters are absent, never empty-valued.
	assert.Equal(t, "", ArticleQuery{Search: "  ", Limit: 9}.FilterValues().Encode())
}

func TestArticleQuery_Key(t *testing.T) {
	a := ArticleQuery{Search: "go", Page: 2, Limit: 9}
	b := ArticleQuery{Search: "go", Page: 2, Limit: 9}
	c := ArticleQuery{Search: "go", Page: 3, Limit: 9}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestArticle_HasImage(t *testing.T) {
	img := "https://cdn.example.com/a.jpg"
	blank := "   "

	assert.True(t, Article{ImageURL: &img}.HasImage())
	assert.False(t, Article{ImageURL: &blank}.HasImage())
	assert.False(t, Article{}.HasImage())
}
