package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/explorai/explorai-api/internal/api/catalog"
	"github.com/explorai/explorai-api/internal/api/chat"
	"github.com/explorai/explorai-api/internal/types"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func newTestService(gen *MockGenerator) *ServiceImpl {
	logger := slog.New(slog.DiscardHandler)
	var g chat.Generator
	if gen != nil {
		g = gen
	}
	return NewService(g, catalog.NewInMemoryRepository(), logger, 0.7, 500, 5*time.Second)
}

const itineraryJSON = `{"dias": [{"dia": 1, "manha": "a", "tarde": "b", "noite": "c"}]}`

func TestGetItinerary_CachesResult(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(itineraryJSON, nil).Once()

	svc := newTestService(gen)

	first, err := svc.GetItinerary(context.Background(), "dest-001", 1)
	require.NoError(t, err)
	require.Len(t, first.Days, 1)

	second, err := svc.GetItinerary(context.Background(), "dest-001", 1)
	require.NoError(t, err)
	assert.Same(t, first, second)
	gen.AssertExpectations(t)
}

func TestGetItinerary_UnknownDestination(t *testing.T) {
	svc := newTestService(new(MockGenerator))

	_, err := svc.GetItinerary(context.Background(), "dest-999", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestGetItinerary_NoGenerator(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.GetItinerary(context.Background(), "dest-001", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrAIUnavailable))
}

func TestGetItinerary_NormalizesDays(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "roteiro de 7 dias")
	}), mock.Anything).Return(itineraryJSON, nil)

	svc := newTestService(gen)

	_, err := svc.GetItinerary(context.Background(), "dest-001", 0)
	require.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestGetGuide_FallsBackToCatalog(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("model unavailable"))

	svc := newTestService(gen)

	guide, err := svc.GetGuide(context.Background(), "dest-001", types.BudgetModerate)
	require.NoError(t, err)
	assert.Contains(t, guide, "Kyoto")
	assert.Contains(t, guide, "## Por que visitar")
	assert.Contains(t, guide, "moderado")
}

func TestGetGuide_UnknownDestination(t *testing.T) {
	svc := newTestService(new(MockGenerator))

	_, err := svc.GetGuide(context.Background(), "dest-999", types.BudgetModerate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestGetDestinationDetails_CombinesAllSections(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "roteiro")
	}), mock.Anything).Return(itineraryJSON, nil)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "atrações")
	}), mock.Anything).Return(`{"atracoes": [{"nome": "x", "descricao": "y"}]}`, nil)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "dicas práticas")
	}), mock.Anything).Return(`{"quandoIr": "primavera", "transporte": "metrô", "documentacao": "rg", "dicasCulturais": "respeito"}`, nil)

	svc := newTestService(gen)

	details, err := svc.GetDestinationDetails(context.Background(), "dest-003", 1)
	require.NoError(t, err)
	assert.Equal(t, "dest-003", details.Destination.ID)
	require.NotNil(t, details.Itinerary)
	require.Len(t, details.Attractions, 1)
	require.NotNil(t, details.Tips)
}

func TestGetDestinationDetails_FailurePropagates(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))

	svc := newTestService(gen)

	_, err := svc.GetDestinationDetails(context.Background(), "dest-003", 1)
	require.Error(t, err)
}
