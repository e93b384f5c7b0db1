// Package redis provides the Redis-based session store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/genzet/journal-ui/internal/domain/auth"
	"github.com/genzet/journal-ui/internal/ports"
)

// SessionStore is a Redis-based session store for production use.
// It handles TTL semantics automatically based on session ExpiresAt.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
		logger: logger,
	}
}

func (s *SessionStore) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.prefix + sess.ID
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	key := s.prefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		// Corrupt durable state is discarded and treated as absent; it must
		// never surface to callers as an error.
		s.log().WarnContext(ctx, "discarding corrupt session record",
			slog.String("session_id", id),
			slog.Any("error", unmarshalErr),
		)
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			s.log().WarnContext(ctx, "delete corrupt session failed",
				slog.String("session_id", id),
				slog.Any("error", deleteErr),
			)
		}
		return domainauth.Session{}, ErrNotFound
	}

	// Redis TTL normally expires the key first; clock skew can leave a
	// stale record behind.
	if time.Now().After(sess.ExpiresAt) {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}

	key := s.prefix + id
	return s.client.Del(ctx, key).Err()
}

// ErrNotFound is returned when a session is not found.
var ErrNotFound = ports.ErrSessionNotFound
