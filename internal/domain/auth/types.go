// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role is the role string as issued by the remote auth API.
// The API uses capitalized literals; keep them verbatim for comparisons.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Identity is the authenticated principal as confirmed by the remote API.
// When the API response omits the user object, Username falls back to the
// submitted credential and Role stays empty.
type Identity struct {
	Username string
	Role     Role
	Token    string
}

// Session is the server-side record persisted for a logged-in user. It is
// the single locally owned entity: the durable copy lives in the session
// store, the cookie carries only the opaque ID.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role,omitempty"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an admin user.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
