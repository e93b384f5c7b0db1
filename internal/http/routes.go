package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	journal "github.com/genzet/journal-ui"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Articles   ArticlesService
	Categories CategoriesService
	Auth       SessionAuthService
	IsDev      bool         // Development mode flag for template hot reloading
	Logger     *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		registerUIRoutes(mux, uiHandlers, services)
	}

	handler := http.Handler(&notFoundHandler{mux: mux, uiHandlers: uiHandlers})

	// CSRF cookie issuance first so session resolution and every handler
	// see the token; Recover/Logging/Compression wrap this in bootstrap.
	handler = OptionalAuth(services.Auth)(handler)
	handler = CSRFProtection()(handler)
	return handler
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// setupUIHandlers creates UI handlers with the template renderer. In dev mode
// templates load from disk for hot reloading; otherwise from the embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS(TemplatePathFromRoot)
	} else {
		sub, err := fs.Sub(journal.TemplateFS, TemplatePathFromRoot)
		if err != nil {
			log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
			sub = os.DirFS(TemplatePathFromRoot)
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:           tr,
		ArticleSvc:  services.Articles,
		CategorySvc: services.Categories,
		AuthSvc:     services.Auth,
		IsDev:       services.IsDev,
		Logger:      services.Logger,
	}
}

func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, services RouterServices) {
	// Public browsing
	mux.Handle("GET /{$}", http.HandlerFunc(h.Articles))
	mux.Handle("GET /articles/{id}", http.HandlerFunc(h.ArticleDetail))

	// Auth pages and actions
	mux.Handle("GET /login", http.HandlerFunc(h.LoginForm))
	mux.Handle("POST /login", http.HandlerFunc(h.Login))
	mux.Handle("GET /register", http.HandlerFunc(h.RegisterForm))
	mux.Handle("POST /register", http.HandlerFunc(h.Register))
	mux.Handle("GET /admin-login", http.HandlerFunc(h.AdminLoginForm))
	mux.Handle("POST /admin-login", http.HandlerFunc(h.AdminLogin))
	mux.Handle("GET /admin-register", http.HandlerFunc(h.AdminRegisterForm))
	mux.Handle("POST /admin-register", http.HandlerFunc(h.AdminRegister))
	mux.Handle("POST /logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.AuthStatus))

	// Admin panel
	wrapAdmin := RequireAdminBrowser(services.Auth, "/admin-login")
	mux.Handle("GET /admin/articles", wrapAdmin(http.HandlerFunc(h.AdminArticles)))
	mux.Handle("DELETE /admin/articles/{id}", wrapAdmin(http.HandlerFunc(h.AdminArticleDelete)))
}

// staticHandler serves /static/* assets.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(
			http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), isDev)
	}

	staticSub, err := fs.Sub(journal.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return staticWithCacheHeaders(
			http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), isDev)
	}
	return staticWithCacheHeaders(
		http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))), isDev)
}

func staticWithCacheHeaders(handler http.Handler, isDev bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps the ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	h.mux.ServeHTTP(cw, r)

	if cw.status == http.StatusNotFound {
		// Preserve the default file server response for missing assets.
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}
