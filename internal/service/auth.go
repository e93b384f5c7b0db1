package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
	apperrors "github.com/genzet/journal-ui/internal/errors"
	"github.com/genzet/journal-ui/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider   ports.AuthProvider
	Sessions   ports.SessionStore
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// AuthService orchestrates authentication flows by coordinating the remote
// auth provider and session persistence. Credential verification happens
// upstream; establishing and reading the session happens here, synchronously.
type AuthService struct {
	provider   ports.AuthProvider
	sessions   ports.SessionStore
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		provider:   opts.Provider,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
		logger:     opts.Logger,
	}
}

func (s *AuthService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Login verifies credentials against the remote API and establishes a
// session. The session is persisted before returning; subsequent reads by
// any consumer observe the new identity immediately.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, apperrors.Validation("username and password are required")
	}

	identity, err := s.provider.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	return s.establishSession(ctx, identity)
}

// AdminLogin verifies credentials and requires the confirmed identity to
// carry the Admin role. A non-admin role is an explicit denial with no
// session established, distinct from a credential failure; a missing role is
// a malformed-response error.
func (s *AuthService) AdminLogin(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, apperrors.Validation("username and password are required")
	}

	identity, err := s.provider.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	if identity.Role == "" {
		return nil, apperrors.Malformed("login response did not include a role")
	}
	if identity.Role != domainauth.RoleAdmin {
		return nil, apperrors.Forbidden("access denied: admin role required")
	}

	return s.establishSession(ctx, identity)
}

// Register creates an account upstream. No session is established; the
// caller redirects to the matching login page on success.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	if err := s.provider.Register(ctx, in); err != nil {
		return fmt.Errorf("register account: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID. A missing, expired, or corrupt
// stored session yields (nil, nil): "known absent", never an error.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &session, nil
}

// Logout removes a session. Both the durable record and the caller's cookie
// are cleared; a missing session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// establishSession persists a fresh session for the identity.
func (s *AuthService) establishSession(ctx context.Context, identity domainauth.Identity) (*domainauth.Session, error) {
	session := domainauth.Session{
		ID:        uuid.New().String(),
		Username:  identity.Username,
		Role:      identity.Role,
		Token:     identity.Token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log().InfoContext(ctx, "session established",
		slog.String("username", session.Username),
		slog.String("role", string(session.Role)),
	)
	return &session, nil
}
