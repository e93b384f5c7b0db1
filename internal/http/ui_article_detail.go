package httpx

import (
	"net/http"

	apperrors "github.com/genzet/journal-ui/internal/errors"
)

// ArticleDetail renders a single article with its metadata and a short list
// of other articles. A missing article gets the dedicated not-found view
// rather than the generic error page.
func (h *UIHandlers) ArticleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.ArticleNotFound(w, r)
		return
	}

	article, err := h.ArticleSvc.Get(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.ArticleNotFound(w, r)
			return
		}
		h.logger().Error("article fetch failed", "article_id", id, "error", err)
		meta := PageMeta{Title: "Journal - Article", PageTitle: "Article", CurrentPage: PageArticleView}
		data := NewTemplateData(r, meta).
			WithError("Unable to load this article. Please try again.").
			Build()
		h.renderPage(w, r, data)
		return
	}

	meta := PageMeta{Title: "Journal - " + article.Title, PageTitle: article.Title, CurrentPage: PageArticleView}
	data := NewTemplateData(r, meta).
		With("Article", article).
		With("Related", h.ArticleSvc.Related(r.Context(), article.ID)).
		Build()

	h.renderPage(w, r, data)
}

// ArticleNotFound renders the missing-article view with a way back to the list.
func (h *UIHandlers) ArticleNotFound(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Journal - Article Not Found", PageTitle: "Article Not Found", CurrentPage: PageNotFound}
	data := NewTemplateData(r, meta).
		With("Message", "The article you're looking for doesn't exist or has been removed.").
		With("BackPath", "/").
		Build()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.renderPage(w, r, data)
}
