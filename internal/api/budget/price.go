package budget

import (
	"math"
	"math/rand"

	"github.com/explorai/explorai-api/internal/types"
)

// basePrices are approximate per-person trip prices per catalog cost tier,
// in currency units. Display-only figures.
var basePrices = map[types.CostTier]float64{
	types.CostTierLow:      2500,
	types.CostTierMedium:   5500,
	types.CostTierHigh:     12000,
	types.CostTierVeryHigh: 25000,
}

const defaultBasePrice = 5000

// EstimatePrice returns a display price for a cost tier with up to ±20%
// jitter for variety. The jitter source is injected by the render layer;
// match scoring never consumes this value. A nil rng disables the jitter.
func EstimatePrice(tier types.CostTier, rng *rand.Rand) int {
	base, ok := basePrices[tier]
	if !ok {
		base = defaultBasePrice
	}
	if rng == nil {
		return int(math.Round(base))
	}
	variation := rng.Float64()*0.4 - 0.2 // -20% to +20%
	return int(math.Round(base * (1 + variation)))
}
