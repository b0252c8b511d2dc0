package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appLogger "github.com/explorai/explorai-api/app/logger"
	appMiddleware "github.com/explorai/explorai-api/app/middleware"
	"github.com/explorai/explorai-api/internal/api/catalog"
	"github.com/explorai/explorai-api/internal/api/chat"
	"github.com/explorai/explorai-api/internal/api/itinerary"
	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/api/recommendation"
)

// Config carries every handler the mux dispatches to, plus the session
// store backing the cookie middleware.
type Config struct {
	CatalogHandler        *catalog.Handler
	PreferencesHandler    *preferences.Handler
	RecommendationHandler *recommendation.Handler
	ChatHandler           *chat.Handler
	ItineraryHandler      *itinerary.Handler
	SessionStore          preferences.Store
	Logger                *slog.Logger
	Timeout               time.Duration
}

// New assembles the application mux.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(cfg.Timeout))
	r.Use(middleware.Compress(5))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(appMiddleware.Session(cfg.SessionStore, cfg.Logger))

		r.Route("/destinations", func(r chi.Router) {
			r.Get("/", cfg.CatalogHandler.ListDestinations)
			r.Route("/{destinationID}", func(r chi.Router) {
				r.Get("/", cfg.CatalogHandler.GetDestination)
				r.Get("/guide", cfg.ItineraryHandler.GetGuide)
				r.Get("/itinerary", cfg.ItineraryHandler.GetItinerary)
				r.Get("/attractions", cfg.ItineraryHandler.GetAttractions)
				r.Get("/tips", cfg.ItineraryHandler.GetTips)
				r.Get("/details", cfg.ItineraryHandler.GetDetails)
			})
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", cfg.RecommendationHandler.GetRecommendations)
			r.Post("/", cfg.RecommendationHandler.ScorePreferences)
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", cfg.PreferencesHandler.GetPreferences)
			r.Put("/", cfg.PreferencesHandler.ReplacePreferences)
			r.Post("/interests", cfg.PreferencesHandler.ToggleInterest)
			r.Post("/activities", cfg.PreferencesHandler.ToggleActivity)
			r.Put("/budget", cfg.PreferencesHandler.SetBudget)
			r.Put("/style", cfg.PreferencesHandler.SetTravelStyle)
			r.Put("/duration", cfg.PreferencesHandler.SetDuration)
			r.Put("/season", cfg.PreferencesHandler.SetSeason)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/", cfg.ChatHandler.SendMessage)
			r.Post("/recommendations", cfg.ChatHandler.Recommendations)
		})
	})

	return r
}
