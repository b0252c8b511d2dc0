package chat

import (
	"strings"
	"unicode"

	"github.com/explorai/explorai-api/internal/types"
)

// greetingWords are short salutations matched as whole words only; "oi" and
// "ola" are substrings of too many Portuguese words ("coisa", "escola") to
// match by containment.
var greetingWords = []string{"olá", "ola", "oi"}

// greetingPhrases are multi-word salutations, matched by containment.
var greetingPhrases = []string{"bom dia", "boa tarde", "boa noite", "e aí", "tudo bem"}

// intentKeywords maps each intent to the lowercase substrings that signal it.
// Order matters: the first intent with a matching keyword wins.
var intentKeywords = []struct {
	intent   types.Intent
	keywords []string
}{
	{types.IntentAskDestinations, []string{"recomen", "sugest", "destin", "lugar", "viajar para", "onde ir", "conhecer"}},
	{types.IntentAskBudget, []string{"orçamento", "orcamento", "custo", "preço", "preco", "quanto custa", "barato", "caro"}},
	{types.IntentAskDuration, []string{"quantos dias", "duração", "duracao", "quanto tempo", "semana"}},
	{types.IntentSharePreferences, []string{"gosto de", "prefiro", "adoro", "quero relaxar", "aventura", "cultura", "gastronomia", "natureza"}},
}

// recommendationKeywords trigger the recommendation panel alongside the reply.
var recommendationKeywords = []string{"recomen", "sugest", "destin", "lugar", "viajar para"}

// ClassifyIntent assigns one of the closed intent set to a user message.
func ClassifyIntent(message string) types.Intent {
	lower := strings.ToLower(message)

	if isGreeting(lower) {
		return types.IntentGreeting
	}
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.intent
			}
		}
	}
	return types.IntentOther
}

func isGreeting(lower string) bool {
	for _, phrase := range greetingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		for _, g := range greetingWords {
			if w == g {
				return true
			}
		}
	}
	return false
}

// WantsRecommendations reports whether the message should surface the
// recommendation list in addition to the textual reply.
func WantsRecommendations(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range recommendationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
