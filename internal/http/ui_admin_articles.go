package httpx

import (
	"net/http"

	"github.com/genzet/journal-ui/internal/domain/model"
	apperrors "github.com/genzet/journal-ui/internal/errors"
)

// AdminArticles renders the admin article table with the same search,
// category, and pagination controls as the public listing.
func (h *UIHandlers) AdminArticles(w http.ResponseWriter, r *http.Request) {
	q := ParseArticleFilter(r.URL.Query(), AdminPageSize)
	meta := PageMeta{Title: "Journal - Manage Articles", PageTitle: "Manage Articles", CurrentPage: PageAdminArticles}

	categories, err := h.CategorySvc.List(r.Context())
	if err != nil {
		h.logger().Error("category list failed", "error", err)
		categories = nil
	}

	builder := NewTemplateData(r, meta).
		With("Query", q.Search).
		With("CategoryID", q.CategoryID).
		With("Categories", categories).
		With("ListPath", "/admin/articles").
		With("ResultsTarget", "admin-article-table").
		With("CurrentQuery", q.FilterValues().Encode())

	page, err := h.ArticleSvc.List(r.Context(), q)
	if err != nil {
		h.logger().Error("admin article list failed", "error", err)
		builder.
			WithError("Unable to load articles. Please try again.").
			With("Articles", []model.Article{})
	} else {
		builder.
			With("Articles", page.Articles).
			With("TotalCount", page.Meta.Total).
			WithPagination(page.Meta, "/admin/articles", q.FilterValues())
	}

	data := builder.Build()

	if IsHTMX(r) && HXTarget(r) == "admin-article-table" {
		SetHXPushURL(w, browseURL("/admin/articles", q))
		if err := h.T.RenderNamed(w, "admin-article-table", data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "admin article table fragment")
		}
		return
	}

	h.renderPage(w, r, data)
}

// AdminArticleDelete deletes an article, then re-renders the table from a
// fresh fetch so row counts and page totals stay authoritative.
func (h *UIHandlers) AdminArticleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	if err := h.ArticleSvc.Delete(r.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			// Already gone upstream; refreshing the table is still the
			// right outcome for the operator.
			h.logger().Warn("delete of missing article", "article_id", id)
		} else {
			h.logger().Error("article delete failed", "article_id", id, "error", err)
			HTMX(w).Trigger("showToast", map[string]any{
				"message": "Unable to delete article. Please try again.",
				"type":    "error",
			})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	HTMX(w).Trigger("showToast", map[string]any{
		"message": "Article deleted.",
		"type":    "success",
	})
	h.AdminArticles(w, r)
}
