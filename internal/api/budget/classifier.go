package budget

import "github.com/explorai/explorai-api/internal/types"

// Tier thresholds in currency units. Intervals are half-open with the lower
// bound inclusive: a value exactly at a threshold lands on the higher tier.
const (
	moderateMin    = 2000
	comfortableMin = 5000
	luxuryMin      = 15000
	ultraLuxuryMin = 50000
)

// Classify maps a numeric per-person budget to its category. Negative input
// is clamped to zero, so anything below the first threshold (negatives
// included) classifies as econômico.
func Classify(value float64) types.BudgetCategory {
	if value < 0 {
		value = 0
	}
	switch {
	case value < moderateMin:
		return types.BudgetEconomic
	case value < comfortableMin:
		return types.BudgetModerate
	case value < luxuryMin:
		return types.BudgetComfortable
	case value < ultraLuxuryMin:
		return types.BudgetLuxury
	default:
		return types.BudgetUltraLuxury
	}
}
