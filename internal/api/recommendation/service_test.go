package recommendation

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/explorai/explorai-api/internal/types"
)

type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) List(ctx context.Context) ([]types.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Destination), args.Error(1)
}

func (m *MockCatalogRepo) Get(ctx context.Context, id string) (*types.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Destination), args.Error(1)
}

func newTestService(repo *MockCatalogRepo) *ServiceImpl {
	logger := slog.New(slog.DiscardHandler)
	return NewService(repo, logger, rand.New(rand.NewSource(42)))
}

func TestRecommend_RanksByScore(t *testing.T) {
	repo := new(MockCatalogRepo)
	repo.On("List", mock.Anything).Return(testCatalog(), nil)

	svc := newTestService(repo)
	prefs := types.UserPreferences{
		Interests:   []string{"cultura"},
		TravelStyle: types.StyleCultural,
	}

	recs, err := svc.Recommend(context.Background(), prefs, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "dest-a", recs[0].ID)
	assert.InDelta(t, 5.0, recs[0].MatchScore, 1e-9)
	repo.AssertExpectations(t)
}

func TestRecommend_LimitZeroReturnsAll(t *testing.T) {
	repo := new(MockCatalogRepo)
	repo.On("List", mock.Anything).Return(testCatalog(), nil)

	svc := newTestService(repo)
	prefs := types.UserPreferences{Interests: []string{"cultura"}}

	recs, err := svc.Recommend(context.Background(), prefs, 0)
	require.NoError(t, err)
	assert.Len(t, recs, len(testCatalog()))
}

func TestRecommend_NoSignalSamples(t *testing.T) {
	repo := new(MockCatalogRepo)
	repo.On("List", mock.Anything).Return(testCatalog(), nil)

	svc := newTestService(repo)

	recs, err := svc.Recommend(context.Background(), types.UserPreferences{}, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Zero(t, r.MatchScore)
	}
}

func TestRecommend_NoSignalConcurrentRequests(t *testing.T) {
	repo := new(MockCatalogRepo)
	repo.On("List", mock.Anything).Return(testCatalog(), nil)

	svc := newTestService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs, err := svc.Recommend(context.Background(), types.UserPreferences{}, 2)
			assert.NoError(t, err)
			assert.Len(t, recs, 2)
		}()
	}
	wg.Wait()
}

func TestRecommend_CatalogFailurePropagates(t *testing.T) {
	repo := new(MockCatalogRepo)
	repo.On("List", mock.Anything).Return(nil, errors.New("catalog offline"))

	svc := newTestService(repo)

	_, err := svc.Recommend(context.Background(), types.UserPreferences{Interests: []string{"x"}}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog offline")
}
