package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorai/explorai-api/internal/types"
)

func testCatalog() []types.Destination {
	return []types.Destination{
		{
			ID: "dest-a", Name: "A",
			Tags:        []string{"cultura", "história"},
			Ratings:     types.Ratings{Culture: 9.5, Nature: 6.0, Food: 8.5, Adventure: 5.0, Relaxation: 7.0},
			AverageCost: types.CostTierMedium,
		},
		{
			ID: "dest-b", Name: "B",
			Tags:        []string{"praia", "natureza"},
			Ratings:     types.Ratings{Culture: 5.0, Nature: 9.8, Food: 7.5, Adventure: 9.0, Relaxation: 9.2},
			AverageCost: types.CostTierLow,
		},
		{
			ID: "dest-c", Name: "C",
			Tags:        []string{"gastronomia", "vinhos"},
			Ratings:     types.Ratings{Culture: 8.0, Nature: 6.5, Food: 9.0, Adventure: 4.0, Relaxation: 6.0},
			AverageCost: types.CostTierHigh,
		},
	}
}

func TestMatch_EmptyPreferencesScoreZero(t *testing.T) {
	scored := Match(types.UserPreferences{}, testCatalog())
	require.Len(t, scored, 3)
	for _, s := range scored {
		assert.Zero(t, s.MatchScore)
	}
}

func TestMatch_EqualScoresKeepCatalogOrder(t *testing.T) {
	scored := Match(types.UserPreferences{}, testCatalog())
	assert.Equal(t, "dest-a", scored[0].ID)
	assert.Equal(t, "dest-b", scored[1].ID)
	assert.Equal(t, "dest-c", scored[2].ID)
}

func TestMatch_Deterministic(t *testing.T) {
	prefs := types.UserPreferences{
		Interests:           []string{"cultura", "praia"},
		PreferredActivities: []string{"experimentar gastronomia"},
		TravelStyle:         types.StyleCultural,
	}
	first := Match(prefs, testCatalog())
	for i := 0; i < 10; i++ {
		again := Match(prefs, testCatalog())
		assert.Equal(t, first, again)
	}
}

func TestMatch_BudgetPreFilter(t *testing.T) {
	tests := []struct {
		name    string
		budget  string
		wantIDs []string
	}{
		{"economic admits low only", string(types.BudgetEconomic), []string{"dest-b"}},
		{"moderate admits low and medium", string(types.BudgetModerate), []string{"dest-a", "dest-b"}},
		{"luxury admits medium and up", string(types.BudgetLuxury), []string{"dest-a", "dest-c"}},
		{"unknown label disables filter", "confortável", []string{"dest-a", "dest-b", "dest-c"}},
		{"empty label disables filter", "", []string{"dest-a", "dest-b", "dest-c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := Match(types.UserPreferences{Budget: tt.budget}, testCatalog())
			ids := make([]string, 0, len(scored))
			for _, s := range scored {
				ids = append(ids, s.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestMatch_InterestSubstringCaseInsensitive(t *testing.T) {
	prefs := types.UserPreferences{Interests: []string{"CULTURA"}}
	scored := Match(prefs, testCatalog())
	require.Equal(t, "dest-a", scored[0].ID)
	assert.Equal(t, 2.0, scored[0].MatchScore)
}

func TestMatch_InterestMonotonicity(t *testing.T) {
	base := Match(types.UserPreferences{Interests: []string{"cultura"}}, testCatalog())
	more := Match(types.UserPreferences{Interests: []string{"cultura", "história"}}, testCatalog())

	baseScore := scoreOf(t, base, "dest-a")
	moreScore := scoreOf(t, more, "dest-a")
	assert.Greater(t, moreScore, baseScore)
}

func TestMatch_ActivityRequiresRatingAboveThreshold(t *testing.T) {
	prefs := types.UserPreferences{PreferredActivities: []string{"aventuras ao ar livre"}}
	scored := Match(prefs, testCatalog())

	// dest-b adventure 9.0 > 7 earns 0.9*3; dest-a 5.0 and dest-c 4.0 earn nothing.
	assert.InDelta(t, 2.7, scoreOf(t, scored, "dest-b"), 1e-9)
	assert.Zero(t, scoreOf(t, scored, "dest-a"))
	assert.Zero(t, scoreOf(t, scored, "dest-c"))
}

func TestMatch_UnknownActivityIgnored(t *testing.T) {
	prefs := types.UserPreferences{PreferredActivities: []string{"pular de paraquedas"}}
	scored := Match(prefs, testCatalog())
	for _, s := range scored {
		assert.Zero(t, s.MatchScore)
	}
}

func TestMatch_StyleBonusAppliedOnce(t *testing.T) {
	prefs := types.UserPreferences{TravelStyle: types.StyleCultural}
	scored := Match(prefs, testCatalog())

	// Only dest-a has culture above 8.
	assert.Equal(t, 3.0, scoreOf(t, scored, "dest-a"))
	assert.Zero(t, scoreOf(t, scored, "dest-b"))
	assert.Zero(t, scoreOf(t, scored, "dest-c"))
}

func TestMatch_BalancedStyleNoBonus(t *testing.T) {
	prefs := types.UserPreferences{TravelStyle: types.StyleBalanced}
	scored := Match(prefs, testCatalog())
	for _, s := range scored {
		assert.Zero(t, s.MatchScore)
	}
}

func TestMatch_WorkedExampleCulturalProfile(t *testing.T) {
	// interest "cultura" (+2) plus cultural style on culture 9.5 (+3) = 5.0
	prefs := types.UserPreferences{
		Interests:   []string{"cultura"},
		TravelStyle: types.StyleCultural,
	}
	scored := Match(prefs, testCatalog())
	assert.InDelta(t, 5.0, scoreOf(t, scored, "dest-a"), 1e-9)
}

func TestMatch_WorkedExampleFoodActivity(t *testing.T) {
	// food 9.0 > 7 earns 9.0/10*3 = 2.7
	prefs := types.UserPreferences{
		PreferredActivities: []string{"experimentar gastronomia"},
	}
	scored := Match(prefs, testCatalog())
	assert.InDelta(t, 2.7, scoreOf(t, scored, "dest-c"), 1e-9)
}

func TestMatch_SortsDescending(t *testing.T) {
	prefs := types.UserPreferences{
		Interests:           []string{"praia"},
		PreferredActivities: []string{"apreciar a natureza"},
	}
	scored := Match(prefs, testCatalog())
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].MatchScore, scored[i].MatchScore)
	}
	assert.Equal(t, "dest-b", scored[0].ID)
}

func TestMatch_DoesNotMutateInput(t *testing.T) {
	dests := testCatalog()
	Match(types.UserPreferences{Interests: []string{"cultura"}}, dests)
	assert.Equal(t, testCatalog(), dests)
}

func BenchmarkMatch(b *testing.B) {
	prefs := types.UserPreferences{
		Interests:           []string{"cultura", "praia", "vinhos"},
		PreferredActivities: []string{"experimentar gastronomia", "apreciar a natureza"},
		TravelStyle:         types.StyleCultural,
		Budget:              string(types.BudgetModerate),
	}
	dests := testCatalog()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Match(prefs, dests)
	}
}

func scoreOf(t *testing.T, scored []types.ScoredDestination, id string) float64 {
	t.Helper()
	for _, s := range scored {
		if s.ID == id {
			return s.MatchScore
		}
	}
	t.Fatalf("destination %s not in results", id)
	return 0
}
