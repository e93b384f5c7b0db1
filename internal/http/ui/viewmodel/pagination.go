package viewmodel

import (
	"net/url"
	"strconv"

	"github.com/genzet/journal-ui/internal/domain/model"
)

// Pagination describes the pager state rendered under a listing. Current,
// LastPage, and TotalCount come from the upstream listing metadata, which is
// authoritative; the view never counts rows itself.
type Pagination struct {
	Current    int
	LastPage   int
	TotalCount int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
}

// NewPagination builds pager state from listing metadata. basePath and query
// carry the caller's current filter parameters so page links preserve them.
func NewPagination(meta model.ListMeta, basePath string, query url.Values) Pagination {
	current := meta.CurrentPage
	if current < 1 {
		current = 1
	}
	last := meta.LastPage
	if last < 1 {
		last = 1
	}

	p := Pagination{
		Current:    current,
		LastPage:   last,
		TotalCount: meta.Total,
		HasPrev:    current > 1,
		HasNext:    current < last,
	}
	if p.HasPrev {
		p.PrevURL = pageURL(basePath, query, current-1)
	}
	if p.HasNext {
		p.NextURL = pageURL(basePath, query, current+1)
	}
	return p
}

func pageURL(basePath string, query url.Values, page int) string {
	// Empty-valued params never appear in page links; a cleared filter is
	// absent from the URL, not present with an empty value.
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			if v == "" {
				continue
			}
			q.Add(k, v)
		}
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	} else {
		q.Del("page")
	}
	if len(q) == 0 {
		return basePath
	}
	return basePath + "?" + q.Encode()
}
