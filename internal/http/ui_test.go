package httpx

// Shared fakes and fixtures for UIHandlers tests. The handler interfaces are
// small enough that hand-written doubles read better than codegen here.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
	"github.com/genzet/journal-ui/internal/domain/model"
	apperrors "github.com/genzet/journal-ui/internal/errors"
	"github.com/genzet/journal-ui/internal/ports"
)

type fakeArticles struct {
	listFn    func(ctx context.Context, q model.ArticleQuery) (*model.ArticlePage, error)
	getFn     func(ctx context.Context, id string) (*model.Article, error)
	deleteFn  func(ctx context.Context, id string) error
	relatedFn func(ctx context.Context, currentID string) []model.Article

	listCalls   []model.ArticleQuery
	deleteCalls []string
}

func (f *fakeArticles) List(ctx context.Context, q model.ArticleQuery) (*model.ArticlePage, error) {
	f.listCalls = append(f.listCalls, q)
	if f.listFn != nil {
		return f.listFn(ctx, q)
	}
	return &model.ArticlePage{Meta: model.ListMeta{CurrentPage: 1, LastPage: 1}}, nil
}

func (f *fakeArticles) Get(ctx context.Context, id string) (*model.Article, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, apperrors.NotFoundf("article %s not found", id)
}

func (f *fakeArticles) Delete(ctx context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeArticles) Related(ctx context.Context, currentID string) []model.Article {
	if f.relatedFn != nil {
		return f.relatedFn(ctx, currentID)
	}
	return nil
}

type fakeCategories struct {
	listFn func(ctx context.Context) ([]model.Category, error)
}

func (f *fakeCategories) List(ctx context.Context) ([]model.Category, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []model.Category{{ID: "cat-1", Name: "Tech"}}, nil
}

type fakeAuth struct {
	loginFn      func(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error)
	adminLoginFn func(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error)
	registerFn   func(ctx context.Context, in ports.RegisterInput) error
	getSessionFn func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFn     func(ctx context.Context, sessionID string) error

	registerCalls []ports.RegisterInput
	logoutCalls   []string
}

func (f *fakeAuth) Login(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, creds)
	}
	return nil, apperrors.Unauthorized("invalid credentials")
}

func (f *fakeAuth) AdminLogin(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if f.adminLoginFn != nil {
		return f.adminLoginFn(ctx, creds)
	}
	return nil, apperrors.Unauthorized("invalid credentials")
}

func (f *fakeAuth) Register(ctx context.Context, in ports.RegisterInput) error {
	f.registerCalls = append(f.registerCalls, in)
	if f.registerFn != nil {
		return f.registerFn(ctx, in)
	}
	return nil
}

func (f *fakeAuth) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if f.getSessionFn != nil {
		return f.getSessionFn(ctx, sessionID)
	}
	return nil, nil
}

func (f *fakeAuth) Logout(ctx context.Context, sessionID string) error {
	f.logoutCalls = append(f.logoutCalls, sessionID)
	if f.logoutFn != nil {
		return f.logoutFn(ctx, sessionID)
	}
	return nil
}

func userSession(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-1",
		Username:  "alice",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func sampleArticle(id, title string) model.Article {
	return model.Article{
		ID:        id,
		Title:     title,
		Content:   "<p>body text</p>",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Category:  model.Category{ID: "cat-1", Name: "Tech"},
		User:      model.Author{Username: "alice"},
	}
}

func newUIHandlers(t *testing.T, articles *fakeArticles, auth *fakeAuth) *UIHandlers {
	t.Helper()
	return &UIHandlers{
		T:           RequireTemplateRenderer(t),
		ArticleSvc:  articles,
		CategorySvc: &fakeCategories{},
		AuthSvc:     auth,
	}
}

// withSession attaches a session to the request context the way OptionalAuth would.
func withSession(r *http.Request, session *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), session))
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, r)
	return rr
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return ts
}
