package budget

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/explorai/explorai-api/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected types.BudgetCategory
	}{
		{"Zero", 0, types.BudgetEconomic},
		{"Below first threshold", 1999.99, types.BudgetEconomic},
		{"Exactly at moderate boundary", 2000, types.BudgetModerate},
		{"Mid moderate", 3500, types.BudgetModerate},
		{"Exactly at comfortable boundary", 5000, types.BudgetComfortable},
		{"Mid comfortable", 10000, types.BudgetComfortable},
		{"Exactly at luxury boundary", 15000, types.BudgetLuxury},
		{"Mid luxury", 30000, types.BudgetLuxury},
		{"Exactly at ultra luxury boundary", 50000, types.BudgetUltraLuxury},
		{"Far above all thresholds", 1_000_000, types.BudgetUltraLuxury},
		{"Negative clamps to econômico", -500, types.BudgetEconomic},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.value))
		})
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := -1
	for v := 0.0; v <= 60000; v += 250 {
		rank := Classify(v).Rank()
		assert.GreaterOrEqual(t, rank, prev, "classification must never decrease as budget grows (at %v)", v)
		prev = rank
	}
}

func TestEstimatePrice(t *testing.T) {
	t.Run("No jitter without rng", func(t *testing.T) {
		assert.Equal(t, 2500, EstimatePrice(types.CostTierLow, nil))
		assert.Equal(t, 5500, EstimatePrice(types.CostTierMedium, nil))
		assert.Equal(t, 12000, EstimatePrice(types.CostTierHigh, nil))
		assert.Equal(t, 25000, EstimatePrice(types.CostTierVeryHigh, nil))
	})

	t.Run("Unknown tier falls back to default base", func(t *testing.T) {
		assert.Equal(t, 5000, EstimatePrice(types.CostTier("mystery"), nil))
	})

	t.Run("Jitter stays within 20 percent", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			price := EstimatePrice(types.CostTierHigh, rng)
			assert.GreaterOrEqual(t, price, 9600)
			assert.LessOrEqual(t, price, 14400)
		}
	})
}
