package chat

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/internal/api"
	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/types"
)

type messageRequest struct {
	Message string `json:"message"`
}

// Handler exposes the chat endpoints.
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

// SendMessage handles POST /chat.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "SendMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SendMessage"))

	session, ok := h.resolve(ctx)
	if !ok {
		l.ErrorContext(ctx, "No session in request context")
		span.SetStatus(codes.Error, "Missing session")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session not available")
		return
	}

	var req messageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid chat request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		span.SetStatus(codes.Error, "Empty message")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	reply, err := h.service.GenerateReply(ctx, session, req.Message)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate reply", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate reply")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate reply")
		return
	}

	span.SetStatus(codes.Ok, "Reply sent")
	api.WriteJSONResponse(w, r, http.StatusOK, reply)
}

type chatRecommendationsResponse struct {
	Destinations []types.Destination `json:"destinations"`
}

// Recommendations handles POST /chat/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "Recommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat/recommendations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Recommendations"))

	session, ok := h.resolve(ctx)
	if !ok {
		l.ErrorContext(ctx, "No session in request context")
		span.SetStatus(codes.Error, "Missing session")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session not available")
		return
	}

	var req messageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid chat request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	dests, err := h.service.RecommendFromChat(ctx, session, req.Message)
	if err != nil {
		l.ErrorContext(ctx, "Failed to resolve chat recommendations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to resolve recommendations")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to resolve recommendations")
		return
	}

	span.SetStatus(codes.Ok, "Recommendations sent")
	api.WriteJSONResponse(w, r, http.StatusOK, chatRecommendationsResponse{Destinations: dests})
}
