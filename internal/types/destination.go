package types

// CostTier is the coarse affordability bucket assigned to a destination in
// the catalog. Tiers are ordered: low < medium < high < very high.
type CostTier string

const (
	CostTierLow      CostTier = "low"
	CostTierMedium   CostTier = "medium"
	CostTierHigh     CostTier = "high"
	CostTierVeryHigh CostTier = "very high"
)

// RatingDimension identifies one of the fixed rating axes every destination
// is scored on.
type RatingDimension string

const (
	DimensionCulture    RatingDimension = "culture"
	DimensionNature     RatingDimension = "nature"
	DimensionFood       RatingDimension = "food"
	DimensionAdventure  RatingDimension = "adventure"
	DimensionRelaxation RatingDimension = "relaxation"
)

// RatingDimensions lists every dimension in canonical order.
var RatingDimensions = []RatingDimension{
	DimensionCulture,
	DimensionNature,
	DimensionFood,
	DimensionAdventure,
	DimensionRelaxation,
}

// Ratings holds the per-dimension scores of a destination, each in [0, 10].
type Ratings struct {
	Culture    float64 `json:"culture"`
	Nature     float64 `json:"nature"`
	Food       float64 `json:"food"`
	Adventure  float64 `json:"adventure"`
	Relaxation float64 `json:"relaxation"`
}

// ForDimension returns the rating on the given dimension, or 0 for an
// unknown dimension.
func (r Ratings) ForDimension(dim RatingDimension) float64 {
	switch dim {
	case DimensionCulture:
		return r.Culture
	case DimensionNature:
		return r.Nature
	case DimensionFood:
		return r.Food
	case DimensionAdventure:
		return r.Adventure
	case DimensionRelaxation:
		return r.Relaxation
	default:
		return 0
	}
}

// Average returns the mean rating across all dimensions. Used for the
// headline star rating on destination cards.
func (r Ratings) Average() float64 {
	return (r.Culture + r.Nature + r.Food + r.Adventure + r.Relaxation) / float64(len(RatingDimensions))
}

// Destination is a catalog-defined travel location. Catalog entries are
// immutable; callers never mutate a Destination after load.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	// Tags are lowercase topical keywords ("cultura", "praia", ...).
	Tags    []string `json:"tags"`
	Ratings Ratings  `json:"ratings"`
	// BestTimeToVisit lists month names; empty means any time of year.
	BestTimeToVisit []string `json:"best_time_to_visit"`
	AverageCost     CostTier `json:"average_cost"`
}

// ScoredDestination pairs a catalog destination with the match score computed
// for one preference set. It is transient: a fresh slice is allocated per
// scoring pass and the embedded Destination is never mutated.
type ScoredDestination struct {
	Destination
	MatchScore float64 `json:"match_score"`
}
