package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/explorai/explorai-api/internal/api/catalog"
	"github.com/explorai/explorai-api/internal/api/chat"
	"github.com/explorai/explorai-api/internal/types"
)

const (
	defaultItineraryDays = 7
	maxItineraryDays     = 30
	cacheTTL             = 6 * time.Hour
	cacheCleanup         = 30 * time.Minute
)

// DestinationDetails aggregates the generated material for one destination.
type DestinationDetails struct {
	Destination types.Destination `json:"destination"`
	Itinerary   *Itinerary        `json:"itinerary"`
	Attractions []Attraction      `json:"attractions"`
	Tips        *TravelTips       `json:"tips"`
}

// Service generates itineraries, attraction lists, tips and travel guides
// for catalog destinations.
type Service interface {
	GetItinerary(ctx context.Context, destinationID string, days int) (*Itinerary, error)
	GetAttractions(ctx context.Context, destinationID string) ([]Attraction, error)
	GetTips(ctx context.Context, destinationID string) (*TravelTips, error)
	GetGuide(ctx context.Context, destinationID string, budget types.BudgetCategory) (string, error)
	GetDestinationDetails(ctx context.Context, destinationID string, days int) (*DestinationDetails, error)
}

// ServiceImpl generates content through the model and caches results. The
// guide endpoint degrades to a catalog-built markdown document when the
// model is unavailable; the structured endpoints report the failure.
type ServiceImpl struct {
	logger      *slog.Logger
	generator   chat.Generator
	catalogRepo catalog.Repository
	cache       *cache.Cache
	genConfig   *genai.GenerateContentConfig
	callTimeout time.Duration
}

var _ Service = (*ServiceImpl)(nil)

func NewService(generator chat.Generator, catalogRepo catalog.Repository, logger *slog.Logger, temperature float32, maxTokens int32, callTimeout time.Duration) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		generator:   generator,
		catalogRepo: catalogRepo,
		cache:       cache.New(cacheTTL, cacheCleanup),
		genConfig: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](temperature),
			MaxOutputTokens: maxTokens,
		},
		callTimeout: callTimeout,
	}
}

func normalizeDays(days int) int {
	if days <= 0 {
		return defaultItineraryDays
	}
	if days > maxItineraryDays {
		return maxItineraryDays
	}
	return days
}

func (s *ServiceImpl) generate(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("no generator configured: %w", types.ErrAIUnavailable)
	}
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.generator.GenerateContent(callCtx, prompt, s.genConfig)
}

// GetItinerary builds a day-by-day plan for the destination.
func (s *ServiceImpl) GetItinerary(ctx context.Context, destinationID string, days int) (*Itinerary, error) {
	days = normalizeDays(days)
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetItinerary", trace.WithAttributes(
		attribute.String("destination.id", destinationID),
		attribute.Int("itinerary.days", days),
	))
	defer span.End()

	cacheKey := fmt.Sprintf("itinerary:%s:%d", destinationID, days)
	if cached, found := s.cache.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(*Itinerary), nil
	}

	dest, err := s.catalogRepo.Get(ctx, destinationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination not found")
		return nil, err
	}

	response, err := s.generate(ctx, getItineraryPrompt(*dest, days))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate itinerary")
		return nil, fmt.Errorf("generating itinerary for %s: %w", destinationID, err)
	}

	itin, err := parseItinerary(response)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to parse itinerary")
		return nil, err
	}

	s.cache.Set(cacheKey, itin, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Itinerary generated")
	return itin, nil
}

// GetAttractions lists the top attractions for the destination.
func (s *ServiceImpl) GetAttractions(ctx context.Context, destinationID string) ([]Attraction, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetAttractions", trace.WithAttributes(
		attribute.String("destination.id", destinationID),
	))
	defer span.End()

	cacheKey := "attractions:" + destinationID
	if cached, found := s.cache.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.([]Attraction), nil
	}

	dest, err := s.catalogRepo.Get(ctx, destinationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination not found")
		return nil, err
	}

	response, err := s.generate(ctx, getAttractionsPrompt(*dest))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate attractions")
		return nil, fmt.Errorf("generating attractions for %s: %w", destinationID, err)
	}

	attractions, err := parseAttractions(response)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to parse attractions")
		return nil, err
	}

	s.cache.Set(cacheKey, attractions, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Attractions generated")
	return attractions, nil
}

// GetTips returns practical travel advice for the destination.
func (s *ServiceImpl) GetTips(ctx context.Context, destinationID string) (*TravelTips, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetTips", trace.WithAttributes(
		attribute.String("destination.id", destinationID),
	))
	defer span.End()

	cacheKey := "tips:" + destinationID
	if cached, found := s.cache.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(*TravelTips), nil
	}

	dest, err := s.catalogRepo.Get(ctx, destinationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination not found")
		return nil, err
	}

	response, err := s.generate(ctx, getTipsPrompt(*dest))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate tips")
		return nil, fmt.Errorf("generating tips for %s: %w", destinationID, err)
	}

	tips, err := parseTips(response)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to parse tips")
		return nil, err
	}

	s.cache.Set(cacheKey, tips, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Tips generated")
	return tips, nil
}

// GetGuide returns a markdown travel guide. When the model fails the guide
// is assembled from catalog data instead, so this endpoint never errors for
// a known destination.
func (s *ServiceImpl) GetGuide(ctx context.Context, destinationID string, budget types.BudgetCategory) (string, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetGuide", trace.WithAttributes(
		attribute.String("destination.id", destinationID),
		attribute.String("budget.category", string(budget)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GetGuide"), slog.String("destinationID", destinationID))

	dest, err := s.catalogRepo.Get(ctx, destinationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination not found")
		return "", err
	}

	cacheKey := fmt.Sprintf("guide:%s:%s", destinationID, budget)
	if cached, found := s.cache.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(string), nil
	}

	response, err := s.generate(ctx, getGuidePrompt(*dest, budget))
	if err != nil {
		l.WarnContext(ctx, "Guide generation failed, using catalog fallback", slog.Any("error", err))
		span.SetAttributes(attribute.Bool("guide.fallback", true))
		return fallbackGuide(*dest, budget), nil
	}

	guide := strings.TrimSpace(response)
	s.cache.Set(cacheKey, guide, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Guide generated")
	return guide, nil
}

// GetDestinationDetails fetches the itinerary, attractions and tips for a
// destination in parallel.
func (s *ServiceImpl) GetDestinationDetails(ctx context.Context, destinationID string, days int) (*DestinationDetails, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetDestinationDetails", trace.WithAttributes(
		attribute.String("destination.id", destinationID),
	))
	defer span.End()

	dest, err := s.catalogRepo.Get(ctx, destinationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination not found")
		return nil, err
	}

	details := &DestinationDetails{Destination: *dest}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		itin, err := s.GetItinerary(gctx, destinationID, days)
		if err != nil {
			return err
		}
		details.Itinerary = itin
		return nil
	})
	g.Go(func() error {
		attractions, err := s.GetAttractions(gctx, destinationID)
		if err != nil {
			return err
		}
		details.Attractions = attractions
		return nil
	})
	g.Go(func() error {
		tips, err := s.GetTips(gctx, destinationID)
		if err != nil {
			return err
		}
		details.Tips = tips
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build destination details")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Destination details assembled")
	return details, nil
}

func fallbackGuide(dest types.Destination, budget types.BudgetCategory) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s, %s\n\n", dest.Name, dest.Country))
	sb.WriteString("## Por que visitar\n\n")
	sb.WriteString(dest.Description)
	sb.WriteString("\n\n## O que fazer\n\n")
	for _, tag := range dest.Tags {
		sb.WriteString(fmt.Sprintf("- %s\n", tag))
	}
	sb.WriteString("\n## Quando ir\n\n")
	sb.WriteString(fmt.Sprintf("Melhor época: %s.\n", formatMonths(dest.BestTimeToVisit)))
	sb.WriteString(fmt.Sprintf("\nFaixa de custo do destino: %s. Perfil de orçamento do viajante: %s.\n", dest.AverageCost, budget))
	return sb.String()
}
