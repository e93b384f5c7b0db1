package httpx

import (
	"net/http"

	"github.com/genzet/journal-ui/internal/domain/model"
)

// Articles renders the public article listing with search, category filter,
// and pagination. Filter state round-trips through the URL query so results
// pages are shareable and reload-safe.
func (h *UIHandlers) Articles(w http.ResponseWriter, r *http.Request) {
	q := ParseArticleFilter(r.URL.Query(), DefaultPageSize)
	meta := PageMeta{Title: "Journal - Articles", PageTitle: "Articles", CurrentPage: PageArticles}

	categories, err := h.CategorySvc.List(r.Context())
	if err != nil {
		h.logger().Error("category list failed", "error", err)
		categories = nil
	}

	builder := NewTemplateData(r, meta).
		With("Query", q.Search).
		With("CategoryID", q.CategoryID).
		With("Categories", categories).
		With("ListPath", "/").
		With("ResultsTarget", "article-results")

	page, err := h.ArticleSvc.List(r.Context(), q)
	if err != nil {
		h.logger().Error("article list failed", "error", err)
		builder.
			WithError("Unable to load articles. Please try again.").
			With("Articles", []model.Article{})
	} else {
		builder.
			With("Articles", page.Articles).
			WithPagination(page.Meta, "/", q.FilterValues())
	}

	data := builder.Build()

	// Search and filter controls swap only the results region, keeping the
	// input (and its focus) in place while typing. The pushed URL is the
	// canonical filter encoding, not the form serialization, so a cleared
	// filter leaves the address bar rather than lingering as an empty param.
	if IsHTMX(r) && HXTarget(r) == "article-results" {
		SetHXPushURL(w, browseURL("/", q))
		if err := h.T.RenderNamed(w, "article-results", data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "article results fragment")
		}
		return
	}

	h.renderPage(w, r, data)
}

// browseURL is the canonical address for a listing filter state.
func browseURL(basePath string, q model.ArticleQuery) string {
	if encoded := q.FilterValues().Encode(); encoded != "" {
		return basePath + "?" + encoded
	}
	return basePath
}
