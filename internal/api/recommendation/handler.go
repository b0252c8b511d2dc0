package recommendation

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/internal/api"
	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/types"
)

// Handler exposes the recommendation endpoints.
type Handler struct {
	service Service
	resolve preferences.SessionResolver
	logger  *slog.Logger
	topN    int
}

func NewHandler(service Service, resolve preferences.SessionResolver, topN int, logger *slog.Logger) *Handler {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Handler{
		service: service,
		resolve: resolve,
		logger:  logger,
		topN:    topN,
	}
}

type recommendationsResponse struct {
	Recommendations []types.ScoredDestination `json:"recommendations"`
}

func (h *Handler) limitFrom(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return h.topN
}

// GetRecommendations handles GET /recommendations, scoring the catalog
// against the session's current preferences.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "GetRecommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/recommendations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetRecommendations"))

	session, ok := h.resolve(ctx)
	if !ok {
		l.ErrorContext(ctx, "No session in request context")
		span.SetStatus(codes.Error, "Missing session")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session not available")
		return
	}

	recs, err := h.service.Recommend(ctx, session.Preferences(), h.limitFrom(r))
	if err != nil {
		l.ErrorContext(ctx, "Failed to compute recommendations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to compute recommendations")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute recommendations")
		return
	}

	span.SetStatus(codes.Ok, "Recommendations sent")
	api.WriteJSONResponse(w, r, http.StatusOK, recommendationsResponse{Recommendations: recs})
}

// ScorePreferences handles POST /recommendations: a stateless scoring call
// for a preference set supplied in the request body.
func (h *Handler) ScorePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "ScorePreferences", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/recommendations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ScorePreferences"))

	var prefs types.UserPreferences
	if err := api.DecodeJSONBody(w, r, &prefs); err != nil {
		l.WarnContext(ctx, "Invalid preferences body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	recs, err := h.service.Recommend(ctx, prefs, h.limitFrom(r))
	if err != nil {
		l.ErrorContext(ctx, "Failed to compute recommendations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to compute recommendations")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute recommendations")
		return
	}

	span.SetStatus(codes.Ok, "Recommendations sent")
	api.WriteJSONResponse(w, r, http.StatusOK, recommendationsResponse{Recommendations: recs})
}
