package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/explorai/explorai-api/internal/types"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected types.Intent
	}{
		{"greeting", "Olá, tudo bem?", types.IntentGreeting},
		{"greeting without accent", "ola!", types.IntentGreeting},
		{"ask destinations", "Pode me recomendar um destino?", types.IntentAskDestinations},
		{"ask destinations via lugar", "Quero conhecer um lugar novo", types.IntentAskDestinations},
		{"ask budget", "Quanto custa uma viagem para a Europa?", types.IntentAskBudget},
		{"ask budget via orcamento", "Meu orcamento é apertado", types.IntentAskBudget},
		{"ask duration", "Quantos dias preciso em Kyoto?", types.IntentAskDuration},
		{"share preferences", "Eu gosto de gastronomia e vinhos", types.IntentSharePreferences},
		{"other", "teste qualquer coisa", types.IntentOther},
		{"empty", "", types.IntentOther},
		{"case insensitive", "RECOMENDA algo por favor", types.IntentAskDestinations},
		{"oi inside word is not a greeting", "que coisa interessante", types.IntentOther},
		{"ola inside word is not a greeting", "a escola fica longe daqui", types.IntentOther},
		{"oi as standalone word", "oi, me ajuda?", types.IntentGreeting},
		{"greeting with punctuation", "olá! tudo certo", types.IntentGreeting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyIntent(tt.message))
		})
	}
}

func TestWantsRecommendations(t *testing.T) {
	assert.True(t, WantsRecommendations("Me dá uma sugestão de viagem"))
	assert.True(t, WantsRecommendations("quero viajar para algum lugar quente"))
	assert.False(t, WantsRecommendations("Olá, tudo bem?"))
	assert.False(t, WantsRecommendations("quanto tempo devo ficar?"))
}
