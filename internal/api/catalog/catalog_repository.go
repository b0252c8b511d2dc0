package catalog

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Repository = (*InMemoryRepository)(nil)

// Repository defines read-only access to the destination catalog.
type Repository interface {
	// List returns every destination in catalog order.
	List(ctx context.Context) ([]types.Destination, error)
	// Get returns the destination with the given id, or types.ErrNotFound.
	Get(ctx context.Context, id string) (*types.Destination, error)
}

// InMemoryRepository serves the static catalog. The backing slice is fixed at
// construction, so reads are safe from any goroutine.
type InMemoryRepository struct {
	destinations []types.Destination
	byID         map[string]int
}

// NewInMemoryRepository creates a repository over the built-in catalog.
func NewInMemoryRepository() *InMemoryRepository {
	return newRepositoryWith(destinations)
}

// newRepositoryWith allows tests to supply a custom catalog.
func newRepositoryWith(dests []types.Destination) *InMemoryRepository {
	byID := make(map[string]int, len(dests))
	for i, d := range dests {
		byID[d.ID] = i
	}
	return &InMemoryRepository{destinations: dests, byID: byID}
}

// List returns a copy of the catalog in its defined order.
func (r *InMemoryRepository) List(ctx context.Context) ([]types.Destination, error) {
	_, span := otel.Tracer("CatalogRepository").Start(ctx, "List")
	defer span.End()

	out := make([]types.Destination, len(r.destinations))
	copy(out, r.destinations)

	span.SetAttributes(attribute.Int("catalog.size", len(out)))
	span.SetStatus(codes.Ok, "Catalog listed")
	return out, nil
}

// Get looks a destination up by id.
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*types.Destination, error) {
	_, span := otel.Tracer("CatalogRepository").Start(ctx, "Get", trace.WithAttributes(
		attribute.String("destination.id", id),
	))
	defer span.End()

	idx, ok := r.byID[id]
	if !ok {
		err := fmt.Errorf("destination %q: %w", id, types.ErrNotFound)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination not found")
		return nil, err
	}

	dest := r.destinations[idx]
	span.SetStatus(codes.Ok, "Destination found")
	return &dest, nil
}
