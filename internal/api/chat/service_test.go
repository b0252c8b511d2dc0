package chat

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/explorai/explorai-api/internal/api/catalog"
	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/types"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func newTestService(gen Generator) *ServiceImpl {
	logger := slog.New(slog.DiscardHandler)
	return NewService(gen, catalog.NewInMemoryRepository(), logger, 0.7, 500, 5*time.Second)
}

func TestGenerateReply_Success(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("Kyoto combina muito com você!", nil)

	svc := newTestService(gen)
	session := preferences.NewSession()

	reply, err := svc.GenerateReply(context.Background(), session, "Me recomenda um destino cultural")
	require.NoError(t, err)
	assert.Equal(t, "Kyoto combina muito com você!", reply.Message.Content)
	assert.Equal(t, types.RoleAssistant, reply.Message.Role)
	assert.True(t, reply.ShowRecommendations)
	assert.Equal(t, types.IntentAskDestinations, reply.Intent)
	gen.AssertExpectations(t)
}

func TestGenerateReply_ModelFailureFallsBack(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("transport error"))

	svc := newTestService(gen)
	session := preferences.NewSession()

	reply, err := svc.GenerateReply(context.Background(), session, "quero sugestões de viagem")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Message.Content)
	assert.Equal(t, fallbackReply, reply.Message.Content)
}

func TestGenerateReply_NilGeneratorFallsBack(t *testing.T) {
	svc := newTestService(nil)
	session := preferences.NewSession()

	reply, err := svc.GenerateReply(context.Background(), session, "qualquer coisa")
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, reply.Message.Content)
}

func TestGenerateReply_GreetingFallback(t *testing.T) {
	svc := newTestService(nil)
	session := preferences.NewSession()

	reply, err := svc.GenerateReply(context.Background(), session, "Olá!")
	require.NoError(t, err)
	assert.Equal(t, greetingReply, reply.Message.Content)
	assert.Equal(t, types.IntentGreeting, reply.Intent)
}

func TestGenerateReply_RecordsConversation(t *testing.T) {
	svc := newTestService(nil)
	session := preferences.NewSession()

	_, err := svc.GenerateReply(context.Background(), session, "oi")
	require.NoError(t, err)

	history := session.RecentMessages(10)
	require.Len(t, history, 2)
	assert.Equal(t, types.RoleUser, history[0].Role)
	assert.Equal(t, "oi", history[0].Content)
	assert.Equal(t, types.RoleAssistant, history[1].Role)
}

func TestRecommendFromChat_ParsesIDs(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("dest-003, dest-001, dest-008", nil)

	svc := newTestService(gen)
	session := preferences.NewSession()

	dests, err := svc.RecommendFromChat(context.Background(), session, "algo com vinho e praia")
	require.NoError(t, err)
	require.Len(t, dests, 3)
	assert.Equal(t, "dest-003", dests[0].ID)
	assert.Equal(t, "dest-001", dests[1].ID)
	assert.Equal(t, "dest-008", dests[2].ID)
}

func TestRecommendFromChat_MalformedResponseFallsBack(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("não sei dizer", nil)

	svc := newTestService(gen)
	session := preferences.NewSession()

	dests, err := svc.RecommendFromChat(context.Background(), session, "me surpreenda")
	require.NoError(t, err)
	require.Len(t, dests, 3)
	assert.Equal(t, "dest-001", dests[0].ID)
}

func TestRecommendFromChat_ModelFailureFallsBack(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("deadline exceeded"))

	svc := newTestService(gen)
	session := preferences.NewSession()

	dests, err := svc.RecommendFromChat(context.Background(), session, "qualquer lugar")
	require.NoError(t, err)
	require.Len(t, dests, 3)
}

func TestResolveDestinationIDs_DeduplicatesAndCaps(t *testing.T) {
	catalogDests := []types.Destination{
		{ID: "dest-001"}, {ID: "dest-002"}, {ID: "dest-003"}, {ID: "dest-004"},
	}

	picked := resolveDestinationIDs("dest-002,dest-002,dest-004,dest-001,dest-003", catalogDests)
	require.Len(t, picked, 3)
	assert.Equal(t, "dest-002", picked[0].ID)
	assert.Equal(t, "dest-004", picked[1].ID)
	assert.Equal(t, "dest-001", picked[2].ID)
}
