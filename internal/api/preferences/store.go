package preferences

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Store = (*CacheStore)(nil)

// Store manages session lifecycle. Sessions expire with their TTL; nothing
// outlives the in-memory cache.
type Store interface {
	Create(ctx context.Context) *Session
	Get(ctx context.Context, id string) (*Session, error)
}

// CacheStore keeps sessions in a TTL cache. Expiry models the "destroyed on
// page reload, never persisted" session lifecycle.
type CacheStore struct {
	logger   *slog.Logger
	sessions *cache.Cache
	ttl      time.Duration
}

// NewCacheStore creates a session store with the given TTL and cleanup cadence.
func NewCacheStore(ttl, cleanupInterval time.Duration, logger *slog.Logger) *CacheStore {
	return &CacheStore{
		logger:   logger,
		sessions: cache.New(ttl, cleanupInterval),
		ttl:      ttl,
	}
}

// Create registers a fresh session with default preferences.
func (s *CacheStore) Create(ctx context.Context) *Session {
	_, span := otel.Tracer("PreferenceStore").Start(ctx, "Create")
	defer span.End()

	sess := NewSession()
	sessionID := sess.ID.String()
	sess.Subscribe(func(prefs types.UserPreferences) {
		s.logger.Debug("Preferences changed",
			slog.String("sessionID", sessionID),
			slog.Int("interests", len(prefs.Interests)),
			slog.Int("activities", len(prefs.PreferredActivities)),
			slog.String("style", string(prefs.TravelStyle)),
			slog.String("budget", prefs.Budget),
		)
	})
	s.sessions.Set(sessionID, sess, cache.DefaultExpiration)

	s.logger.DebugContext(ctx, "Session created", slog.String("sessionID", sess.ID.String()))
	span.SetAttributes(attribute.String("session.id", sess.ID.String()))
	span.SetStatus(codes.Ok, "Session created")
	return sess
}

// Get returns the live session with the given id, or types.ErrNotFound when
// it never existed or already expired.
func (s *CacheStore) Get(ctx context.Context, id string) (*Session, error) {
	_, span := otel.Tracer("PreferenceStore").Start(ctx, "Get", trace.WithAttributes(
		attribute.String("session.id", id),
	))
	defer span.End()

	v, ok := s.sessions.Get(id)
	if !ok {
		err := fmt.Errorf("session %q: %w", id, types.ErrNotFound)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Session not found")
		return nil, err
	}

	// Sliding expiration: touching a session keeps it alive.
	s.sessions.Set(id, v, cache.DefaultExpiration)

	span.SetStatus(codes.Ok, "Session found")
	return v.(*Session), nil
}
