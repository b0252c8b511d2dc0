package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/explorai/explorai-api/internal/types"
)

// DayPlan is one day of a generated itinerary.
type DayPlan struct {
	Day       int    `json:"dia"`
	Morning   string `json:"manha"`
	Afternoon string `json:"tarde"`
	Evening   string `json:"noite"`
}

// Itinerary is a day-by-day plan for a destination.
type Itinerary struct {
	Days []DayPlan `json:"dias"`
}

// Attraction is a single point of interest in a destination.
type Attraction struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

type attractionsEnvelope struct {
	Attractions []Attraction `json:"atracoes"`
}

// TravelTips groups practical advice for a destination.
type TravelTips struct {
	WhenToGo      string `json:"quandoIr"`
	Transport     string `json:"transporte"`
	Documentation string `json:"documentacao"`
	CulturalTips  string `json:"dicasCulturais"`
}

// cleanJSONResponse strips markdown code fences the model sometimes wraps
// around its JSON output.
func cleanJSONResponse(response string) string {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func parseItinerary(response string) (*Itinerary, error) {
	var itin Itinerary
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &itin); err != nil {
		return nil, fmt.Errorf("parsing itinerary JSON: %w: %w", types.ErrMalformedAIResponse, err)
	}
	if len(itin.Days) == 0 {
		return nil, fmt.Errorf("itinerary has no days: %w", types.ErrMalformedAIResponse)
	}
	return &itin, nil
}

func parseAttractions(response string) ([]Attraction, error) {
	var env attractionsEnvelope
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &env); err != nil {
		return nil, fmt.Errorf("parsing attractions JSON: %w: %w", types.ErrMalformedAIResponse, err)
	}
	if len(env.Attractions) == 0 {
		return nil, fmt.Errorf("attractions list is empty: %w", types.ErrMalformedAIResponse)
	}
	return env.Attractions, nil
}

func parseTips(response string) (*TravelTips, error) {
	var tips TravelTips
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &tips); err != nil {
		return nil, fmt.Errorf("parsing tips JSON: %w: %w", types.ErrMalformedAIResponse, err)
	}
	if tips.WhenToGo == "" && tips.Transport == "" && tips.Documentation == "" && tips.CulturalTips == "" {
		return nil, fmt.Errorf("tips object is empty: %w", types.ErrMalformedAIResponse)
	}
	return &tips, nil
}
