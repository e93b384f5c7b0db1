package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
)

func newTestRouter(articles *fakeArticles, auth *fakeAuth) http.Handler {
	return NewRouter(RouterServices{
		Articles:   articles,
		Categories: &fakeCategories{},
		Auth:       auth,
	})
}

func routerCSRFCookie(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	for _, c := range rr.Result().Cookies() {
		if c.Name == "csrf_token" {
			return c
		}
	}
	t.Fatal("router did not issue a csrf cookie")
	return nil
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(&fakeArticles{}, &fakeAuth{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_HomeRendersListing(t *testing.T) {
	router := newTestRouter(&fakeArticles{}, &fakeAuth{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Articles")
	// The CSRF token lands in the page for htmx to pick up.
	assert.Contains(t, rr.Body.String(), "X-Csrf-Token")
}

func TestRouter_UnknownPathGets404Page(t *testing.T) {
	router := newTestRouter(&fakeArticles{}, &fakeAuth{})

	r := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	r.Header.Set("Accept", "text/html")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "404")
}

func TestRouter_AdminRequiresSession(t *testing.T) {
	router := newTestRouter(&fakeArticles{}, &fakeAuth{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/articles", nil))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/admin-login", loc.Path)
	assert.Equal(t, "/admin/articles", loc.Query().Get("redirect_uri"))
}

func TestRouter_AdminRejectsNonAdmin(t *testing.T) {
	auth := &fakeAuth{
		getSessionFn: func(context.Context, string) (*domainauth.Session, error) {
			return userSession(domainauth.RoleUser), nil
		},
	}
	router := newTestRouter(&fakeArticles{}, auth)

	r := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
	r.AddCookie(sessionCookie("sess-1"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_AdminDeleteNeedsCSRF(t *testing.T) {
	auth := &fakeAuth{
		getSessionFn: func(context.Context, string) (*domainauth.Session, error) {
			return userSession(domainauth.RoleAdmin), nil
		},
	}
	articles := &fakeArticles{}
	router := newTestRouter(articles, auth)
	csrf := routerCSRFCookie(t, router)

	// Without the token the delete is rejected before any handler runs.
	r := httptest.NewRequest(http.MethodDelete, "/admin/articles/a-1", nil)
	r.AddCookie(sessionCookie("sess-1"))
	r.AddCookie(csrf)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)
	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, articles.deleteCalls)

	r = httptest.NewRequest(http.MethodDelete, "/admin/articles/a-1", nil)
	r.AddCookie(sessionCookie("sess-1"))
	r.AddCookie(csrf)
	r.Header.Set("X-Csrf-Token", csrf.Value)
	r.Header.Set("Hx-Request", "true")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"a-1"}, articles.deleteCalls)
}

func TestRouter_LoginPage(t *testing.T) {
	router := newTestRouter(&fakeArticles{}, &fakeAuth{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sign In")
}

func TestRouter_StaticAssetMissing(t *testing.T) {
	router := newTestRouter(&fakeArticles{}, &fakeAuth{})

	r := httptest.NewRequest(http.MethodGet, "/static/js/missing.js", nil)
	r.Header.Set("Accept", "text/html")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)

	// Missing assets keep the terse file server 404, not the HTML page.
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotContains(t, rr.Body.String(), "<html")
}

func TestRouter_StaticAssetServed(t *testing.T) {
	router := newTestRouter(&fakeArticles{}, &fakeAuth{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/css/styles.css", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "public, max-age=3600", rr.Header().Get("Cache-Control"))
}
