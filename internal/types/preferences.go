package types

// TravelStyle is the user's overall trip style. Values are the Portuguese
// labels the UI exposes.
type TravelStyle string

const (
	StyleAdventurous TravelStyle = "aventureiro"
	StyleBalanced    TravelStyle = "equilibrado"
	StyleCultural    TravelStyle = "cultural"
	StyleRelaxed     TravelStyle = "relaxado"
)

// Season is the user's preferred season for travelling.
type Season string

const (
	SeasonSummer Season = "verao"
	SeasonAutumn Season = "outono"
	SeasonWinter Season = "inverno"
	SeasonSpring Season = "primavera"
	SeasonAny    Season = "qualquer"
)

// BudgetCategory is the five-tier classification derived from a numeric
// per-person budget. Ordered: econômico < moderado < confortável < luxo <
// ultra luxo.
type BudgetCategory string

const (
	BudgetEconomic    BudgetCategory = "econômico"
	BudgetModerate    BudgetCategory = "moderado"
	BudgetComfortable BudgetCategory = "confortável"
	BudgetLuxury      BudgetCategory = "luxo"
	BudgetUltraLuxury BudgetCategory = "ultra luxo"
)

// budgetRank orders the categories for monotonicity checks.
var budgetRank = map[BudgetCategory]int{
	BudgetEconomic:    0,
	BudgetModerate:    1,
	BudgetComfortable: 2,
	BudgetLuxury:      3,
	BudgetUltraLuxury: 4,
}

// Rank returns the position of the category in the tier ordering, with
// econômico = 0. Unknown categories rank as -1.
func (b BudgetCategory) Rank() int {
	if r, ok := budgetRank[b]; ok {
		return r
	}
	return -1
}

// UserPreferences is the complete current configuration of a user's travel
// profile. It lives only for the duration of a session; nothing is persisted.
type UserPreferences struct {
	// Interests are lowercase free-text topic strings, unique and unordered.
	Interests []string `json:"interests"`
	// PreferredActivities are lowercase activity labels from the UI's
	// fixed activity set.
	PreferredActivities []string    `json:"preferred_activities"`
	TravelStyle         TravelStyle `json:"travel_style"`
	// Budget is a coarse categorical label ("econômico", "moderado",
	// "luxo") chosen directly, or a classifier-derived category when a
	// numeric BudgetValue is supplied.
	Budget string `json:"budget"`
	// BudgetValue is the optional numeric per-person budget in currency
	// units. Zero means unset.
	BudgetValue float64 `json:"budget_value,omitempty"`
	// Duration is a free-text selection from the UI's day-range options,
	// e.g. "7-10 dias".
	Duration string `json:"duration,omitempty"`
	Season   Season `json:"season,omitempty"`
}

// DefaultPreferences returns the preference set a fresh session starts with.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Interests:           []string{},
		PreferredActivities: []string{},
		TravelStyle:         StyleBalanced,
		Budget:              string(BudgetModerate),
		BudgetValue:         5000,
		Duration:            "7-10 dias",
		Season:              SeasonAny,
	}
}

// HasSignal reports whether the user selected at least one interest or
// activity. With no signal every destination scores zero and a ranking is
// meaningless, so callers substitute a sample instead.
func (p UserPreferences) HasSignal() bool {
	return len(p.Interests) > 0 || len(p.PreferredActivities) > 0
}
