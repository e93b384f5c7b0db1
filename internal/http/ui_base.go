package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
	"github.com/genzet/journal-ui/internal/domain/model"
	"github.com/genzet/journal-ui/internal/http/ui/viewmodel"
	"github.com/genzet/journal-ui/internal/ports"
	"github.com/genzet/journal-ui/internal/service"
)

// ArticlesService is a minimal interface for UI needs.
type ArticlesService interface {
	List(ctx context.Context, q model.ArticleQuery) (*model.ArticlePage, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	Delete(ctx context.Context, id string) error
	Related(ctx context.Context, currentID string) []model.Article
}

// CategoriesService is a minimal interface for UI needs.
type CategoriesService interface {
	List(ctx context.Context) ([]model.Category, error)
}

// SessionAuthService exposes the auth operations needed by browser routes.
type SessionAuthService interface {
	Login(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error)
	AdminLogin(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error)
	Register(ctx context.Context, in ports.RegisterInput) error
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ ArticlesService    = (*service.ArticleService)(nil)
	_ CategoriesService  = (*service.CategoryService)(nil)
	_ SessionAuthService = (*service.AuthService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T           *TemplateRenderer
	ArticleSvc  ArticlesService
	CategorySvc CategoriesService
	AuthSvc     SessionAuthService
	IsDev       bool // Development mode flag for enhanced error reporting
	Logger      *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		layout.CSRFToken = csrfToken
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.User = &viewmodel.User{
			Username: session.Username,
			Role:     string(session.Role),
		}
		layout.IsAuthenticated = true
		layout.IsAdmin = session.IsAdmin()
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// renderPage renders a page with htmx partial support. Full requests get the
// layout; htmx requests get the content fragment plus an out-of-band title.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

func extractLayoutInfo(data map[string]any) viewmodel.Layout {
	layout := viewmodel.Layout{}
	if v, ok := data["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := data["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := data["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div style="padding: 20px; background: #fee; border: 2px solid #c33; border-radius: 4px; margin: 20px; font-family: monospace;">
				<h2 style="color: #c33; margin-top: 0;">Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre style="background: #fff; padding: 10px; border: 1px solid #ccc; overflow-x: auto;">` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
