package itinerary

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/internal/api"
	"github.com/explorai/explorai-api/internal/api/budget"
	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/types"
)

// Handler exposes the generated-content endpoints under /destinations/{id}.
type Handler struct {
	service Service
	resolve preferences.SessionResolver
	logger  *slog.Logger
}

func NewHandler(service Service, resolve preferences.SessionResolver, logger *slog.Logger) *Handler {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Handler{
		service: service,
		resolve: resolve,
		logger:  logger,
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, span trace.Span, err error, what string) {
	span.RecordError(err)
	switch {
	case errors.Is(err, types.ErrNotFound):
		span.SetStatus(codes.Error, "Destination not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Destination not found")
	case errors.Is(err, types.ErrAIUnavailable), errors.Is(err, types.ErrMalformedAIResponse):
		span.SetStatus(codes.Error, "Generation unavailable")
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, what+" is temporarily unavailable")
	default:
		span.SetStatus(codes.Error, "Internal error")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to build "+what)
	}
}

// GetItinerary handles GET /destinations/{destinationID}/itinerary?days=N.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/destinations/{destinationID}/itinerary"),
	))
	defer span.End()

	destinationID := chi.URLParam(r, "destinationID")
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	itin, err := h.service.GetItinerary(ctx, destinationID, days)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get itinerary",
			slog.String("destinationID", destinationID), slog.Any("error", err))
		h.respondError(w, r, span, err, "itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary sent")
	api.WriteJSONResponse(w, r, http.StatusOK, itin)
}

// GetAttractions handles GET /destinations/{destinationID}/attractions.
func (h *Handler) GetAttractions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetAttractions", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/destinations/{destinationID}/attractions"),
	))
	defer span.End()

	destinationID := chi.URLParam(r, "destinationID")

	attractions, err := h.service.GetAttractions(ctx, destinationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get attractions",
			slog.String("destinationID", destinationID), slog.Any("error", err))
		h.respondError(w, r, span, err, "attractions list")
		return
	}

	span.SetStatus(codes.Ok, "Attractions sent")
	api.WriteJSONResponse(w, r, http.StatusOK, attractions)
}

// GetTips handles GET /destinations/{destinationID}/tips.
func (h *Handler) GetTips(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetTips", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/destinations/{destinationID}/tips"),
	))
	defer span.End()

	destinationID := chi.URLParam(r, "destinationID")

	tips, err := h.service.GetTips(ctx, destinationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get tips",
			slog.String("destinationID", destinationID), slog.Any("error", err))
		h.respondError(w, r, span, err, "tips")
		return
	}

	span.SetStatus(codes.Ok, "Tips sent")
	api.WriteJSONResponse(w, r, http.StatusOK, tips)
}

type guideResponse struct {
	Guide string `json:"guide"`
}

// GetGuide handles GET /destinations/{destinationID}/guide. The guide is
// tailored to the session's budget category.
func (h *Handler) GetGuide(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetGuide", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/destinations/{destinationID}/guide"),
	))
	defer span.End()

	destinationID := chi.URLParam(r, "destinationID")

	budgetCategory := types.BudgetModerate
	if session, ok := h.resolve(ctx); ok {
		prefs := session.Preferences()
		if prefs.Budget != "" {
			budgetCategory = types.BudgetCategory(prefs.Budget)
		} else {
			budgetCategory = budget.Classify(prefs.BudgetValue)
		}
	}

	guide, err := h.service.GetGuide(ctx, destinationID, budgetCategory)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get guide",
			slog.String("destinationID", destinationID), slog.Any("error", err))
		h.respondError(w, r, span, err, "guide")
		return
	}

	span.SetStatus(codes.Ok, "Guide sent")
	api.WriteJSONResponse(w, r, http.StatusOK, guideResponse{Guide: guide})
}

// GetDetails handles GET /destinations/{destinationID}/details?days=N.
func (h *Handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetDetails", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/destinations/{destinationID}/details"),
	))
	defer span.End()

	destinationID := chi.URLParam(r, "destinationID")
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	details, err := h.service.GetDestinationDetails(ctx, destinationID, days)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get destination details",
			slog.String("destinationID", destinationID), slog.Any("error", err))
		h.respondError(w, r, span, err, "destination details")
		return
	}

	span.SetStatus(codes.Ok, "Details sent")
	api.WriteJSONResponse(w, r, http.StatusOK, details)
}
