package httpx

import (
	"errors"
	"net/http"
	"strings"
)

// NotFound handles 404s. Browser requests get the HTML error page; API
// requests a JSON error.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if isBrowserRequest(r) {
		h.renderBrowserNotFound(w, r)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("not found"),
	})
}

func (h *UIHandlers) renderBrowserNotFound(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	data := map[string]any{
		"Title":           "Page Not Found - Journal",
		"Code":            "404",
		"Message":         "The page you're looking for doesn't exist.",
		"IsAuthenticated": session != nil,
		"ShowLogin":       session == nil,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if h.T == nil || h.T.RenderError(w, r, data) != nil {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}

// isBrowserRequest distinguishes page requests from API and asset requests.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/static/") {
		return false
	}
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	return accept == "" || strings.Contains(accept, "text/html")
}
