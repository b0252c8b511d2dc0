package recommendation

import (
	"sort"
	"strings"

	"github.com/explorai/explorai-api/internal/types"
)

const (
	interestPoints   = 2.0
	activityWeight   = 3.0
	activityMinScore = 7.0
	styleBonus       = 3.0
	styleMinScore    = 8.0
)

// budgetAllowList maps the coarse budget labels the UI offers to the catalog
// cost tiers they admit. A label outside this map disables the pre-filter.
var budgetAllowList = map[string][]types.CostTier{
	string(types.BudgetEconomic): {types.CostTierLow},
	string(types.BudgetModerate): {types.CostTierLow, types.CostTierMedium},
	string(types.BudgetLuxury):   {types.CostTierMedium, types.CostTierHigh, types.CostTierVeryHigh},
}

// activityDimensions maps each fixed activity label to the rating dimension
// it rewards. Activities outside this map contribute nothing.
var activityDimensions = map[string]types.RatingDimension{
	"explorar cultura local":        types.DimensionCulture,
	"aventuras ao ar livre":         types.DimensionAdventure,
	"relaxar em paisagens naturais": types.DimensionRelaxation,
	"experimentar gastronomia":      types.DimensionFood,
	"apreciar a natureza":           types.DimensionNature,
}

// styleDimensions maps each travel style to the dimension whose high rating
// earns the style bonus. Equilibrado earns no bonus and is absent.
var styleDimensions = map[types.TravelStyle]types.RatingDimension{
	types.StyleAdventurous: types.DimensionAdventure,
	types.StyleRelaxed:     types.DimensionRelaxation,
	types.StyleCultural:    types.DimensionCulture,
}

// Match scores every destination against the preference set and returns them
// sorted by descending match score. The function is pure: no I/O, no
// randomness, and a fresh result slice per call. Destinations with equal
// scores keep their relative catalog order.
func Match(prefs types.UserPreferences, dests []types.Destination) []types.ScoredDestination {
	allowed := allowedCostTiers(prefs.Budget)

	scored := make([]types.ScoredDestination, 0, len(dests))
	for _, dest := range dests {
		if allowed != nil && !tierAllowed(dest.AverageCost, allowed) {
			continue
		}
		scored = append(scored, types.ScoredDestination{
			Destination: dest,
			MatchScore:  scoreDestination(prefs, dest),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	return scored
}

// allowedCostTiers resolves the budget pre-filter. Nil means no filtering.
func allowedCostTiers(budget string) []types.CostTier {
	tiers, ok := budgetAllowList[strings.ToLower(budget)]
	if !ok {
		return nil
	}
	return tiers
}

func tierAllowed(tier types.CostTier, allowed []types.CostTier) bool {
	for _, t := range allowed {
		if t == tier {
			return true
		}
	}
	return false
}

func scoreDestination(prefs types.UserPreferences, dest types.Destination) float64 {
	var score float64

	// Interests match by case-insensitive substring containment against tags.
	for _, interest := range prefs.Interests {
		if interestMatchesTags(interest, dest.Tags) {
			score += interestPoints
		}
	}

	for _, activity := range prefs.PreferredActivities {
		dim, ok := activityDimensions[strings.ToLower(activity)]
		if !ok {
			continue
		}
		if rating := dest.Ratings.ForDimension(dim); rating > activityMinScore {
			score += rating / 10 * activityWeight
		}
	}

	// At most one style bonus per destination.
	if dim, ok := styleDimensions[prefs.TravelStyle]; ok {
		if dest.Ratings.ForDimension(dim) > styleMinScore {
			score += styleBonus
		}
	}

	return score
}

func interestMatchesTags(interest string, tags []string) bool {
	needle := strings.ToLower(interest)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
