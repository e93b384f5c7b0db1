// Package ports defines interfaces (hexagonal ports) for the behavior this
// application depends on. Implementations live in internal/adapters;
// orchestration in internal/service.
package ports

import (
	"context"
	"errors"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore implementations when no
// session exists for an id. Corrupt stored records are reported the same
// way; they are discarded by the store, never surfaced as errors.
var ErrSessionNotFound = errors.New("session not found")

// Credentials carries a username/password pair for the remote auth API.
type Credentials struct {
	Username string
	Password string
}

// RegisterInput carries the fields for an account registration.
// Role is sent verbatim; admin registration uses the fixed literal "Admin".
type RegisterInput struct {
	Username string
	Password string
	Role     domainauth.Role
}

// AuthProvider verifies credentials and registers accounts against the
// remote API. It performs no session management; that is the caller's job.
type AuthProvider interface {
	// Login posts credentials and returns the confirmed identity.
	Login(ctx context.Context, creds Credentials) (domainauth.Identity, error)

	// Register creates an account. A failure message from the API is
	// surfaced via the returned error.
	Register(ctx context.Context, in RegisterInput) error
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
