package httpx

import (
	"bytes"
	"errors"
	"html"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	renderer := &TemplateRenderer{logger: cfg.Logger}

	var t *template.Template
	funcs := createTemplateFuncs(&t)
	var err error
	t, err = template.New("root").Funcs(funcs).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
		"partials/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderNamed renders a specific named template, used for htmx fragment swaps.
func (r *TemplateRenderer) RenderNamed(w http.ResponseWriter, name string, data any) error {
	return r.renderTemplate(w, name, data)
}

// RenderError renders an error page using the error template.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "error-layout", data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", templateName),
				slog.Any("error", err),
			)
		}
		return err
	}

	return nil
}

func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}

func createTemplateFuncs(t **template.Template) template.FuncMap {
	funcs := template.FuncMap{
		"friendlyDate": friendlyDate,
		"excerpt":      excerpt,
		"rawHTML":      rawHTML,
	}

	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if t == nil || *t == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*t).ExecuteTemplate(&buf, ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own trusted templates; user values were
		// auto-escaped during ExecuteTemplate above.
		return template.HTML(buf.String()), nil
	}

	return funcs
}

// friendlyDate formats a timestamp the way the article cards display it.
func friendlyDate(ts any) string {
	var t0 time.Time
	switch v := ts.(type) {
	case time.Time:
		t0 = v
	case *time.Time:
		if v != nil {
			t0 = *v
		}
	default:
		return ""
	}
	if t0.IsZero() {
		return ""
	}
	return t0.Format("January 2, 2006")
}

// truncateText shortens s to at most max runes, appending an ellipsis when cut.
func truncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}

//nolint:gochecknoglobals // read-only policy, safe for concurrent use
var textOnlyPolicy = bluemonday.StrictPolicy()

// excerpt reduces an HTML fragment to a short plain-text preview.
func excerpt(htmlBody string, max int) string {
	text := html.UnescapeString(textOnlyPolicy.Sanitize(htmlBody))
	return truncateText(strings.Join(strings.Fields(text), " "), max)
}

// rawHTML marks upstream article bodies as safe for embedding. Content passed
// here must already be sanitized at the API boundary.
// #nosec G203
func rawHTML(s string) template.HTML { return template.HTML(s) }
