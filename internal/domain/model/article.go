// Package model holds the domain types mirrored from the remote journal API.
// All of this data is owned upstream; these types are transient read models.
package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Category is a content category used for filtering article listings.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Author is the account that wrote an article.
type Author struct {
	Username string `json:"username"`
}

// Article is one article as served by the remote API. Content is HTML and is
// sanitized at the API boundary before it reaches any consumer.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	Category  Category  `json:"category"`
	User      Author    `json:"user"`
}

// HasImage reports whether the article carries a usable header image URL.
func (a Article) HasImage() bool {
	return a.ImageURL != nil && strings.TrimSpace(*a.ImageURL) != ""
}

// ListMeta is the pagination metadata the API returns alongside a listing.
// It is authoritative; consumers never count rows themselves.
type ListMeta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// ArticlePage is one page of articles plus its metadata.
type ArticlePage struct {
	Articles []Article
	Meta     ListMeta
}

// ArticleQuery carries the listing filter state. Zero values mean absent;
// absent filters are omitted from the request entirely rather than sent as
// empty strings.
type ArticleQuery struct {
	Search     string
	CategoryID string
	Page       int
	Limit      int
}

// Values encodes the query as API request parameters. Page is omitted for
// the first page and absent filters are dropped.
func (q ArticleQuery) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	if c := strings.TrimSpace(q.CategoryID); c != "" {
		v.Set("categoryId", c)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// FilterValues encodes only the user-facing filter state for navigable URLs.
// Limit is a server concern and never appears in the address bar.
func (q ArticleQuery) FilterValues() url.Values {
	v := q.Values()
	v.Del("limit")
	return v
}

// Key returns a stable identity for the query, used to coalesce identical
// concurrent fetches.
func (q ArticleQuery) Key() string {
	return q.Values().Encode()
}
