package httpx

// Test helper functions for httpx package tests.
// These are used by multiple test files and live here so they compile into
// the package without duplication.

import (
	"os"
	"testing"
)

// RequireTemplateRenderer creates a TemplateRenderer for tests, loading
// templates relative to this package directory. Skips the test when the
// template tree is not present.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}
