package httpx

import (
	"net/http"
	"net/url"

	"github.com/genzet/journal-ui/internal/domain/model"
	"github.com/genzet/journal-ui/internal/http/ui/viewmodel"
)

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
	}
}

// WithPagination adds pager state derived from listing metadata. query is the
// canonical filter encoding, not the raw request query, so page links never
// echo empty or stray params back into the address bar.
func (b *TemplateDataBuilder) WithPagination(meta model.ListMeta, basePath string, query url.Values) *TemplateDataBuilder {
	b.data["Pagination"] = viewmodel.NewPagination(meta, basePath, query)
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
