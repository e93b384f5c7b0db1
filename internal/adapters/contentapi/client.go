// Package contentapi implements the ports against the remote journal REST
// API. It is the only place in the application that talks HTTP upstream;
// article HTML is sanitized here, at the trust boundary, before any template
// ever sees it.
package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
	"github.com/genzet/journal-ui/internal/domain/model"
	apperrors "github.com/genzet/journal-ui/internal/errors"
	"github.com/genzet/journal-ui/internal/ports"
)

// Config captures the subset of remote API behaviour we need.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
	Logger  *slog.Logger
}

// Client talks to the remote journal API. It implements ports.ContentClient
// and ports.AuthProvider.
type Client struct {
	baseURL   string
	client    *http.Client
	logger    *slog.Logger
	sanitizer *bluemonday.Policy
}

var (
	_ ports.ContentClient = (*Client)(nil)
	_ ports.AuthProvider  = (*Client)(nil)
)

// NewClient builds a remote API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("content api base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:   baseURL,
		client:    hc,
		logger:    cfg.Logger,
		sanitizer: bluemonday.UGCPolicy(),
	}, nil
}

func (c *Client) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// categoriesEnvelope matches GET /api/categories.
type categoriesEnvelope struct {
	Data []model.Category `json:"data"`
}

// Categories fetches the full category list.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var env categoriesEnvelope
	if err := c.getJSON(ctx, "/api/categories", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// articlesEnvelope matches GET /api/articles.
type articlesEnvelope struct {
	Data []model.Article `json:"data"`
	Meta model.ListMeta  `json:"meta"`
}

// Articles fetches one page of articles for the given query. The response
// replaces any previous page wholesale; metadata comes from the API and is
// authoritative.
func (c *Client) Articles(ctx context.Context, q model.ArticleQuery) (*model.ArticlePage, error) {
	var env articlesEnvelope
	if err := c.getJSON(ctx, "/api/articles", q.Values(), &env); err != nil {
		return nil, err
	}
	for i := range env.Data {
		env.Data[i].Content = c.sanitizer.Sanitize(env.Data[i].Content)
	}
	if env.Meta.CurrentPage < 1 {
		env.Meta.CurrentPage = 1
	}
	if env.Meta.LastPage < 1 {
		env.Meta.LastPage = 1
	}
	return &model.ArticlePage{Articles: env.Data, Meta: env.Meta}, nil
}

// ArticleByID fetches a single article. The API returns the article object
// directly (not wrapped); a 404 maps to a NotFound error so callers can
// render the dedicated not-found view instead of a generic failure.
func (c *Client) ArticleByID(ctx context.Context, id string) (*model.Article, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NotFound("article id is empty")
	}

	var article model.Article
	err := c.getJSON(ctx, "/api/articles/"+url.PathEscape(id), nil, &article)
	if err != nil {
		return nil, err
	}
	article.Content = c.sanitizer.Sanitize(article.Content)
	return &article, nil
}

// DeleteArticle removes an article by id. No response body is relied upon.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NotFound("article id is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/articles/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "delete article")
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFoundf("article %s not found", id)
	case resp.StatusCode >= 300:
		return apperrors.Upstreamf("delete article: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// loginResponse matches POST /api/auth/login. The user object and role are
// optional; callers decide how strictly to treat their absence.
type loginResponse struct {
	User *struct {
		Username string `json:"username"`
	} `json:"user"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Login posts credentials to the remote auth endpoint. On success the
// confirmed identity is returned; when the API omits the user object the
// submitted username is used.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	payload := map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	}

	var out loginResponse
	if err := c.postJSON(ctx, "/api/auth/login", payload, &out); err != nil {
		return domainauth.Identity{}, err
	}

	identity := domainauth.Identity{
		Username: creds.Username,
		Role:     domainauth.Role(out.Role),
		Token:    out.Token,
	}
	if out.User != nil && out.User.Username != "" {
		identity.Username = out.User.Username
	}
	return identity, nil
}

// Register creates an account through the remote auth endpoint. A failure
// message from the API body is surfaced verbatim when present.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) error {
	payload := map[string]string{
		"username": in.Username,
		"password": in.Password,
		"role":     string(in.Role),
	}
	return c.postJSON(ctx, "/api/auth/register", payload, nil)
}

// getJSON issues a GET and decodes a JSON body into dst.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "GET %s", path)
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFoundf("%s not found", path)
	case resp.StatusCode >= 300:
		c.log().WarnContext(ctx, "upstream request failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return apperrors.Upstreamf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode %s response", path)
	}
	return nil
}

// apiErrorBody is the optional failure envelope on auth endpoints.
type apiErrorBody struct {
	Message string `json:"message"`
}

// postJSON issues a POST with a JSON body. When dst is nil the response body
// is only checked for status; a non-2xx with a message field becomes a
// validation error carrying that message.
func (c *Client) postJSON(ctx context.Context, path string, payload any, dst any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "POST %s", path)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode >= 300 {
		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if readErr == nil {
			var apiErr apiErrorBody
			if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
				return apperrors.Validation(apiErr.Message)
			}
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return apperrors.Unauthorized("invalid credentials")
		}
		return apperrors.Upstreamf("POST %s: unexpected status %d", path, resp.StatusCode)
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode %s response", path)
	}
	return nil
}

// drainAndClose fully reads and closes a response body so the underlying
// connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<20))
	_ = body.Close()
}
