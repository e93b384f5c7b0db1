package viewmodel

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genzet/journal-ui/internal/domain/model"
)

func TestNewPagination_SinglePage(t *testing.T) {
	meta := model.ListMeta{Total: 5, CurrentPage: 1, LastPage: 1}

	p := NewPagination(meta, "/", url.Values{})

	assert.Equal(t, 1, p.Current)
	assert.Equal(t, 1, p.LastPage)
	assert.Equal(t, 5, p.TotalCount)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
	assert.Empty(t, p.PrevURL)
	assert.Empty(t, p.NextURL)
}

func TestNewPagination_MiddlePage(t *testing.T) {
	meta := model.ListMeta{Total: 30, CurrentPage: 2, LastPage: 4}

	p := NewPagination(meta, "/", url.Values{})

	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)
	// Page 1 is the canonical bare URL, no page parameter.
	assert.Equal(t, "/", p.PrevURL)
	assert.Equal(t, "/?page=3", p.NextURL)
}

func TestNewPagination_LastPage(t *testing.T) {
	meta := model.ListMeta{Total: 30, CurrentPage: 4, LastPage: 4}

	p := NewPagination(meta, "/", url.Values{})

	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
	assert.Equal(t, "/?page=3", p.PrevURL)
}

func TestNewPagination_PreservesFilters(t *testing.T) {
	meta := model.ListMeta{Total: 40, CurrentPage: 2, LastPage: 5}
	query := url.Values{
		"search":     {"golang"},
		"categoryId": {"cat-1"},
		"page":       {"2"},
	}

	p := NewPagination(meta, "/admin/articles", query)

	prev, err := url.Parse(p.PrevURL)
	assert.NoError(t, err)
	assert.Equal(t, "/admin/articles", prev.Path)
	assert.Equal(t, "golang", prev.Query().Get("search"))
	assert.Equal(t, "cat-1", prev.Query().Get("categoryId"))
	// Going back to page 1 drops the page parameter entirely.
	assert.Empty(t, prev.Query().Get("page"))

	next, err := url.Parse(p.NextURL)
	assert.NoError(t, err)
	assert.Equal(t, "golang", next.Query().Get("search"))
	assert.Equal(t, "3", next.Query().Get("page"))
}

func TestNewPagination_DropsEmptyParams(t *testing.T) {
	meta := model.ListMeta{Total: 30, CurrentPage: 2, LastPage: 4}
	// A cleared search box submits as search=; the pager must not carry
	// that into its links.
	query := url.Values{
		"search":     {""},
		"categoryId": {""},
		"page":       {"2"},
	}

	p := NewPagination(meta, "/", query)

	assert.Equal(t, "/", p.PrevURL)
	assert.Equal(t, "/?page=3", p.NextURL)
}

func TestNewPagination_ClampsInvalidMeta(t *testing.T) {
	tests := []struct {
		name        string
		meta        model.ListMeta
		wantCurrent int
		wantLast    int
	}{
		{
			name:        "zero values",
			meta:        model.ListMeta{},
			wantCurrent: 1,
			wantLast:    1,
		},
		{
			name:        "negative current page",
			meta:        model.ListMeta{CurrentPage: -3, LastPage: 2},
			wantCurrent: 1,
			wantLast:    2,
		},
		{
			name:        "negative last page",
			meta:        model.ListMeta{CurrentPage: 1, LastPage: -1},
			wantCurrent: 1,
			wantLast:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.meta, "/", url.Values{})
			assert.Equal(t, tt.wantCurrent, p.Current)
			assert.Equal(t, tt.wantLast, p.LastPage)
		})
	}
}
