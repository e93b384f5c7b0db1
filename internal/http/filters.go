package httpx

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/genzet/journal-ui/internal/domain/model"
)

// ParseArticleFilter maps request query parameters onto an article query.
// Blank or malformed values behave as absent so a cleared search box or a
// hand-edited URL degrades to the unfiltered listing.
func ParseArticleFilter(query url.Values, pageSize int) model.ArticleQuery {
	q := model.ArticleQuery{
		Search:     strings.TrimSpace(query.Get("search")),
		CategoryID: strings.TrimSpace(query.Get("categoryId")),
		Page:       parsePage(query.Get("page")),
		Limit:      pageSize,
	}
	return q
}

func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
