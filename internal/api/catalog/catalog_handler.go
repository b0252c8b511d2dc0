package catalog

import (
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/internal/api"
	"github.com/explorai/explorai-api/internal/api/budget"
	"github.com/explorai/explorai-api/internal/types"
)

// Handler handles HTTP requests for the destination catalog.
type Handler struct {
	repo   Repository
	logger *slog.Logger

	// rng feeds the display price only; guarded because rand.Rand is not
	// safe for concurrent handlers.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewHandler creates a new catalog handler instance.
func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// destinationView is a catalog entry plus the indicative price shown on the
// destination card. The price never feeds matching.
type destinationView struct {
	types.Destination
	EstimatedPrice int `json:"estimated_price"`
}

func (h *Handler) withPrice(dest types.Destination) destinationView {
	h.rngMu.Lock()
	price := budget.EstimatePrice(dest.AverageCost, h.rng)
	h.rngMu.Unlock()
	return destinationView{Destination: dest, EstimatedPrice: price}
}

// ListDestinations returns the full catalog in its defined order.
func (h *Handler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListDestinations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/destinations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListDestinations"))

	dests, err := h.repo.List(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list destinations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list destinations")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve destinations")
		return
	}

	views := make([]destinationView, 0, len(dests))
	for _, d := range dests {
		views = append(views, h.withPrice(d))
	}

	span.SetStatus(codes.Ok, "Destinations listed")
	api.WriteJSONResponse(w, r, http.StatusOK, views)
}

// GetDestination returns one catalog destination by id. Unknown ids map to a
// 404 so the client can show its "destination not found" view.
func (h *Handler) GetDestination(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetDestination", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/destinations/{destinationID}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetDestination"))

	id := chi.URLParam(r, "destinationID")
	if id == "" {
		span.SetStatus(codes.Error, "Missing destination ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Destination ID is required")
		return
	}

	dest, err := h.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, types.ErrNotFound) {
			l.WarnContext(ctx, "Destination not found", slog.String("destinationID", id))
			span.SetStatus(codes.Error, "Destination not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "Destination not found")
			return
		}
		l.ErrorContext(ctx, "Failed to get destination", slog.Any("error", err))
		span.SetStatus(codes.Error, "Failed to get destination")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve destination")
		return
	}

	span.SetStatus(codes.Ok, "Destination retrieved")
	api.WriteJSONResponse(w, r, http.StatusOK, h.withPrice(*dest))
}
