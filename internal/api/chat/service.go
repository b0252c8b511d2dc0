package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/explorai/explorai-api/app/observability/metrics"
	"github.com/explorai/explorai-api/internal/api/catalog"
	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/types"
)

const (
	historyWindow       = 5
	fallbackReply       = "Desculpe, estou com dificuldades técnicas no momento. Enquanto isso, dê uma olhada nas recomendações ao lado, elas são atualizadas conforme suas preferências!"
	greetingReply       = "Olá! Sou o ExplorAI, seu assistente de viagens personalizadas. Me conte o que você gosta de fazer quando viaja e eu encontro o destino perfeito para você!"
	chatRecommendations = 3
)

// Generator produces model output for a prompt. The Gemini client satisfies
// it in production; tests substitute deterministic doubles.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// Reply is the outcome of one chat turn.
type Reply struct {
	Message             types.ChatMessage `json:"message"`
	ShowRecommendations bool              `json:"showRecommendations"`
	Intent              types.Intent      `json:"intent"`
}

// Service handles conversational interactions with the traveler.
type Service interface {
	GenerateReply(ctx context.Context, session *preferences.Session, message string) (*Reply, error)
	RecommendFromChat(ctx context.Context, session *preferences.Session, message string) ([]types.Destination, error)
}

// ServiceImpl backs the chat with a generative model and degrades to canned
// Portuguese replies when the model is unreachable.
type ServiceImpl struct {
	logger      *slog.Logger
	generator   Generator
	catalogRepo catalog.Repository
	genConfig   *genai.GenerateContentConfig
	callTimeout time.Duration
}

var _ Service = (*ServiceImpl)(nil)

// NewService creates the chat service. A nil generator is valid and keeps
// the whole service in fallback mode.
func NewService(generator Generator, catalogRepo catalog.Repository, logger *slog.Logger, temperature float32, maxTokens int32, callTimeout time.Duration) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		generator:   generator,
		catalogRepo: catalogRepo,
		genConfig: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](temperature),
			MaxOutputTokens: maxTokens,
		},
		callTimeout: callTimeout,
	}
}

// GenerateReply runs one chat turn: it records the user's message in the
// session, asks the model for a reply and falls back to a deterministic
// answer when the model fails. The returned error is always nil for model
// failures; only session-level problems surface as errors.
func (s *ServiceImpl) GenerateReply(ctx context.Context, session *preferences.Session, message string) (*Reply, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "GenerateReply", trace.WithAttributes(
		attribute.Int("message.length", len(message)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateReply"), slog.String("sessionID", session.ID.String()))

	if m := metrics.Get(); m != nil {
		m.ChatRequestsTotal.Add(ctx, 1)
	}

	intent := ClassifyIntent(message)
	session.SetLastIntent(intent)
	session.AppendMessage(types.NewChatMessage(types.RoleUser, message))
	span.SetAttributes(attribute.String("chat.intent", string(intent)))

	showRecommendations := WantsRecommendations(message)

	replyText := s.generateText(ctx, session, message, l)
	replyMsg := types.NewChatMessage(types.RoleAssistant, replyText)
	session.AppendMessage(replyMsg)

	span.SetStatus(codes.Ok, "Reply generated")
	return &Reply{
		Message:             replyMsg,
		ShowRecommendations: showRecommendations,
		Intent:              intent,
	}, nil
}

func (s *ServiceImpl) generateText(ctx context.Context, session *preferences.Session, message string, l *slog.Logger) string {
	if s.generator == nil {
		l.DebugContext(ctx, "No generator configured, using fallback reply")
		s.recordFailure(ctx)
		return s.fallbackFor(session)
	}

	history := session.RecentMessages(historyWindow)
	if len(history) > 0 {
		// the current user message was already appended
		history = history[:len(history)-1]
	}
	prompt := buildConversationPrompt(getSystemPrompt(session.Preferences()), history, message)

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	text, err := s.generator.GenerateContent(callCtx, prompt, s.genConfig)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate chat reply", slog.Any("error", err))
		s.recordFailure(ctx)
		return s.fallbackFor(session)
	}
	return strings.TrimSpace(text)
}

func (s *ServiceImpl) fallbackFor(session *preferences.Session) string {
	if session.LastIntent() == types.IntentGreeting {
		return greetingReply
	}
	return fallbackReply
}

func (s *ServiceImpl) recordFailure(ctx context.Context) {
	if m := metrics.Get(); m != nil {
		m.ChatFailuresTotal.Add(ctx, 1)
	}
}

// RecommendFromChat asks the model to pick destinations for a free-form
// message. Malformed or failed model output degrades to the head of the
// catalog so the traveler always sees something.
func (s *ServiceImpl) RecommendFromChat(ctx context.Context, session *preferences.Session, message string) ([]types.Destination, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "RecommendFromChat", trace.WithAttributes(
		attribute.Int("message.length", len(message)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "RecommendFromChat"), slog.String("sessionID", session.ID.String()))

	catalogDests, err := s.catalogRepo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list destinations")
		return nil, err
	}

	if s.generator == nil {
		l.DebugContext(ctx, "No generator configured, returning catalog head")
		return headOf(catalogDests, chatRecommendations), nil
	}

	prompt := getChatRecommendationsPrompt(session.Preferences(), message, catalogDests)

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	text, err := s.generator.GenerateContent(callCtx, prompt, s.genConfig)
	if err != nil {
		l.WarnContext(ctx, "Model recommendation failed, returning catalog head", slog.Any("error", err))
		s.recordFailure(ctx)
		return headOf(catalogDests, chatRecommendations), nil
	}

	picked := resolveDestinationIDs(text, catalogDests)
	if len(picked) == 0 {
		l.WarnContext(ctx, "Model returned no valid destination ids", slog.String("response", text))
		return headOf(catalogDests, chatRecommendations), nil
	}

	span.SetAttributes(attribute.Int("recommendations.count", len(picked)))
	span.SetStatus(codes.Ok, "Recommendations resolved")
	return picked, nil
}

func resolveDestinationIDs(response string, catalogDests []types.Destination) []types.Destination {
	byID := make(map[string]types.Destination, len(catalogDests))
	for _, d := range catalogDests {
		byID[d.ID] = d
	}

	var picked []types.Destination
	seen := make(map[string]bool)
	for _, raw := range strings.Split(response, ",") {
		id := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "\"'`"))
		if d, ok := byID[id]; ok && !seen[id] {
			picked = append(picked, d)
			seen[id] = true
		}
		if len(picked) == chatRecommendations {
			break
		}
	}
	return picked
}

func headOf(dests []types.Destination, n int) []types.Destination {
	if len(dests) < n {
		n = len(dests)
	}
	return dests[:n]
}
