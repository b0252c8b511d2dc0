package preferences

import (
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/explorai/explorai-api/internal/api"
	"github.com/explorai/explorai-api/internal/api/budget"
	"github.com/explorai/explorai-api/internal/types"
)

// SessionResolver extracts the current session from the request context. The
// session middleware provides the canonical implementation; tests inject
// their own.
type SessionResolver func(ctx context.Context) (*Session, bool)

// Recommender is the slice of the recommendation service the preference
// handler needs to report fresh rankings after every update.
type Recommender interface {
	Recommend(ctx context.Context, prefs types.UserPreferences, limit int) ([]types.ScoredDestination, error)
}

// Handler handles HTTP requests for the session preference record.
type Handler struct {
	resolve     SessionResolver
	recommender Recommender
	logger      *slog.Logger
	topN        int
}

// NewHandler creates a new preferences handler instance.
func NewHandler(resolve SessionResolver, recommender Recommender, topN int, logger *slog.Logger) *Handler {
	if logger == nil {
		panic("PANIC: Attempting to create preferences Handler with nil logger!")
	}
	return &Handler{
		resolve:     resolve,
		recommender: recommender,
		logger:      logger,
		topN:        topN,
	}
}

// updateResponse carries the updated record plus the re-scored top
// destinations, so the client can render both from a single round trip.
type updateResponse struct {
	Preferences     types.UserPreferences     `json:"preferences"`
	Recommendations []types.ScoredDestination `json:"recommendations"`
}

// toggleRequest toggles one set-membership value.
type toggleRequest struct {
	Value string `json:"value"`
}

// budgetRequest replaces the budget label and/or numeric value.
type budgetRequest struct {
	Budget      string  `json:"budget"`
	BudgetValue float64 `json:"budget_value"`
}

// GetPreferences returns the session's current preference record.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "GetPreferences", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences"),
	))
	defer span.End()

	sess, ok := h.resolve(ctx)
	if !ok {
		span.SetStatus(codes.Error, "Session not found in context")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session unavailable")
		return
	}

	span.SetStatus(codes.Ok, "Preferences retrieved")
	api.WriteJSONResponse(w, r, http.StatusOK, sess.Preferences())
}

// ReplacePreferences swaps the entire preference record.
func (h *Handler) ReplacePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "ReplacePreferences", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ReplacePreferences"))

	sess, ok := h.resolve(ctx)
	if !ok {
		span.SetStatus(codes.Error, "Session not found in context")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session unavailable")
		return
	}

	var prefs types.UserPreferences
	if err := api.DecodeJSONBody(w, r, &prefs); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if msg, ok := validatePreferences(prefs); !ok {
		l.WarnContext(ctx, "Invalid preferences", slog.String("reason", msg))
		span.SetStatus(codes.Error, "Invalid preferences")
		api.ErrorResponse(w, r, http.StatusBadRequest, msg)
		return
	}

	updated := sess.Replace(prefs)
	h.respondWithRecommendations(w, r, updated, span)
}

// ToggleInterest flips membership of one interest in the preference set.
func (h *Handler) ToggleInterest(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "ToggleInterest", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/interests"),
	))
	defer span.End()

	h.toggle(ctx, w, r, span, func(sess *Session, value string) types.UserPreferences {
		return sess.ToggleInterest(value)
	})
}

// ToggleActivity flips membership of one preferred activity.
func (h *Handler) ToggleActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "ToggleActivity", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/activities"),
	))
	defer span.End()

	h.toggle(ctx, w, r, span, func(sess *Session, value string) types.UserPreferences {
		return sess.ToggleActivity(value)
	})
}

// SetTravelStyle replaces the trip style.
func (h *Handler) SetTravelStyle(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "SetTravelStyle", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/style"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SetTravelStyle"))

	sess, ok := h.resolve(ctx)
	if !ok {
		span.SetStatus(codes.Error, "Session not found in context")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session unavailable")
		return
	}

	var req toggleRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	style := types.TravelStyle(req.Value)
	switch style {
	case types.StyleAdventurous, types.StyleBalanced, types.StyleCultural, types.StyleRelaxed:
	default:
		span.SetStatus(codes.Error, "Invalid travel style")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid travel style")
		return
	}

	updated := sess.SetTravelStyle(style)
	span.SetAttributes(attribute.String("preferences.style", req.Value))
	h.respondWithRecommendations(w, r, updated, span)
}

// SetDuration replaces the free-form trip duration label.
func (h *Handler) SetDuration(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "SetDuration", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/duration"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SetDuration"))

	sess, ok := h.resolve(ctx)
	if !ok {
		span.SetStatus(codes.Error, "Session not found in context")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session unavailable")
		return
	}

	var req toggleRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Value == "" {
		span.SetStatus(codes.Error, "Empty duration")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Value is required")
		return
	}

	updated := sess.SetDuration(req.Value)
	h.respondWithRecommendations(w, r, updated, span)
}

// SetSeason replaces the preferred travel season.
func (h *Handler) SetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "SetSeason", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/season"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SetSeason"))

	sess, ok := h.resolve(ctx)
	if !ok {
		span.SetStatus(codes.Error, "Session not found in context")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session unavailable")
		return
	}

	var req toggleRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	season := types.Season(req.Value)
	switch season {
	case types.SeasonSummer, types.SeasonAutumn, types.SeasonWinter, types.SeasonSpring, types.SeasonAny:
	default:
		span.SetStatus(codes.Error, "Invalid season")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid season")
		return
	}

	updated := sess.SetSeason(season)
	span.SetAttributes(attribute.String("preferences.season", req.Value))
	h.respondWithRecommendations(w, r, updated, span)
}

// SetBudget replaces the coarse budget label and numeric value. When only a
// numeric value is supplied the label is derived from the classifier.
func (h *Handler) SetBudget(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PreferencesHandler").Start(r.Context(), "SetBudget", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/preferences/budget"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SetBudget"))

	sess, ok := h.resolve(ctx)
	if !ok {
		span.SetStatus(codes.Error, "Session not found in context")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session unavailable")
		return
	}

	var req budgetRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	label := req.Budget
	if label == "" && req.BudgetValue > 0 {
		label = string(budget.Classify(req.BudgetValue))
	}

	updated := sess.SetBudget(label, req.BudgetValue)
	span.SetAttributes(attribute.String("budget.label", label))
	h.respondWithRecommendations(w, r, updated, span)
}

func (h *Handler) toggle(ctx context.Context, w http.ResponseWriter, r *http.Request, span trace.Span, apply func(*Session, string) types.UserPreferences) {
	l := h.logger.With(slog.String("handler", "toggle"))

	sess, ok := h.resolve(ctx)
	if !ok {
		span.SetStatus(codes.Error, "Session not found in context")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Session unavailable")
		return
	}

	var req toggleRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to decode request")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Value == "" {
		span.SetStatus(codes.Error, "Empty toggle value")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Value is required")
		return
	}

	updated := apply(sess, req.Value)
	h.respondWithRecommendations(w, r, updated, span)
}

// respondWithRecommendations re-scores against the updated record and writes
// both back; preference changes and fresh rankings stay in lockstep.
func (h *Handler) respondWithRecommendations(w http.ResponseWriter, r *http.Request, prefs types.UserPreferences, span trace.Span) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "respondWithRecommendations"))

	recs, err := h.recommender.Recommend(ctx, prefs, h.topN)
	if err != nil {
		l.ErrorContext(ctx, "Failed to recompute recommendations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to recompute recommendations")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute recommendations")
		return
	}

	span.SetStatus(codes.Ok, "Preferences updated")
	api.WriteJSONResponse(w, r, http.StatusOK, updateResponse{
		Preferences:     prefs,
		Recommendations: recs,
	})
}

// validatePreferences checks the enumerated fields of a full replacement.
func validatePreferences(p types.UserPreferences) (string, bool) {
	switch p.TravelStyle {
	case types.StyleAdventurous, types.StyleBalanced, types.StyleCultural, types.StyleRelaxed:
	default:
		return "Invalid travel style", false
	}
	if p.Season != "" {
		switch p.Season {
		case types.SeasonSummer, types.SeasonAutumn, types.SeasonWinter, types.SeasonSpring, types.SeasonAny:
		default:
			return "Invalid season", false
		}
	}
	return "", true
}
