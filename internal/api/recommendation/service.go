package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/app/observability/metrics"
	"github.com/explorai/explorai-api/internal/api/catalog"
	"github.com/explorai/explorai-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for destination matching.
type Service interface {
	// Recommend scores the catalog against the preference set and returns
	// at most limit destinations, best match first. When the preference
	// set carries no signal at all, a random sample is returned instead of
	// a meaningless all-zero ranking.
	Recommend(ctx context.Context, prefs types.UserPreferences, limit int) ([]types.ScoredDestination, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger      *slog.Logger
	catalogRepo catalog.Repository

	// rng is shared across request goroutines and rand.Rand is not
	// goroutine-safe, so every draw takes the mutex.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a new recommendation service instance. The rng feeds
// only the no-signal sample; pass a seeded source in tests.
func NewService(catalogRepo catalog.Repository, logger *slog.Logger, rng *rand.Rand) *ServiceImpl {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ServiceImpl{
		logger:      logger,
		catalogRepo: catalogRepo,
		rng:         rng,
	}
}

// Recommend computes the ranked destination list for the preference set.
func (s *ServiceImpl) Recommend(ctx context.Context, prefs types.UserPreferences, limit int) ([]types.ScoredDestination, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "Recommend", trace.WithAttributes(
		attribute.Int("preferences.interests", len(prefs.Interests)),
		attribute.Int("preferences.activities", len(prefs.PreferredActivities)),
		attribute.String("preferences.style", string(prefs.TravelStyle)),
		attribute.String("preferences.budget", prefs.Budget),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Recommend"))
	start := time.Now()

	dests, err := s.catalogRepo.List(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load catalog", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load catalog")
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	if limit <= 0 {
		limit = len(dests)
	}

	var result []types.ScoredDestination
	if !prefs.HasSignal() {
		// Nothing selected yet: a ranking would just mirror catalog
		// order, so surface a sample instead.
		l.DebugContext(ctx, "No preference signal, sampling catalog")
		result = s.sample(dests, limit)
		span.SetAttributes(attribute.Bool("recommendation.sampled", true))
	} else {
		result = Match(prefs, dests)
		if len(result) > limit {
			result = result[:limit]
		}
	}

	if m := metrics.Get(); m != nil {
		m.RecommendationsTotal.Add(ctx, 1)
		m.RecommendationDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}

	l.InfoContext(ctx, "Recommendations computed",
		slog.Int("count", len(result)),
		slog.Duration("elapsed", time.Since(start)),
	)
	span.SetAttributes(attribute.Int("recommendation.count", len(result)))
	span.SetStatus(codes.Ok, "Recommendations computed")
	return result, nil
}

// sample returns up to limit destinations in random order with zero scores.
func (s *ServiceImpl) sample(dests []types.Destination, limit int) []types.ScoredDestination {
	s.rngMu.Lock()
	idx := s.rng.Perm(len(dests))
	s.rngMu.Unlock()
	if limit > len(idx) {
		limit = len(idx)
	}
	out := make([]types.ScoredDestination, 0, limit)
	for _, i := range idx[:limit] {
		out = append(out, types.ScoredDestination{Destination: dests[i]})
	}
	return out
}
