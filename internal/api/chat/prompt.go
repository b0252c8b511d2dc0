package chat

import (
	"fmt"
	"strings"

	"github.com/explorai/explorai-api/internal/types"
)

func formatDestinationList(destinations []types.Destination) string {
	var sb strings.Builder
	for _, d := range destinations {
		sb.WriteString(fmt.Sprintf("- %s (%s, %s): %s. Tags: %s. Custo médio: %s.\n",
			d.ID, d.Name, d.Country, d.Description, strings.Join(d.Tags, ", "), d.AverageCost))
	}
	return sb.String()
}

func formatPreferences(prefs types.UserPreferences) string {
	interests := "nenhum informado"
	if len(prefs.Interests) > 0 {
		interests = strings.Join(prefs.Interests, ", ")
	}
	activities := "nenhuma informada"
	if len(prefs.PreferredActivities) > 0 {
		activities = strings.Join(prefs.PreferredActivities, ", ")
	}
	return fmt.Sprintf(`- Interesses: %s
- Atividades preferidas: %s
- Estilo de viagem: %s
- Orçamento: %s (aprox. R$ %.0f)
- Duração: %s
- Estação preferida: %s`,
		interests, activities, prefs.TravelStyle, prefs.Budget, prefs.BudgetValue, prefs.Duration, prefs.Season)
}

func getSystemPrompt(prefs types.UserPreferences) string {
	return fmt.Sprintf(`Você é o ExplorAI, um assistente de viagens simpático e especializado em recomendações personalizadas de destinos.

Preferências atuais do viajante:
%s

Regras:
- Responda sempre em português brasileiro, de forma calorosa e objetiva.
- Use as preferências acima para personalizar cada resposta.
- Quando o viajante pedir recomendações, descreva brevemente por que cada destino combina com o perfil dele.
- Nunca invente preços exatos; fale em faixas (econômico, moderado, luxo).
- Mantenha as respostas com no máximo 3 parágrafos curtos.`, formatPreferences(prefs))
}

func getChatRecommendationsPrompt(prefs types.UserPreferences, message string, destinations []types.Destination) string {
	return fmt.Sprintf(`Você é o ExplorAI, um assistente de viagens. Com base na mensagem do viajante e nas preferências dele, escolha os 3 destinos mais adequados do catálogo abaixo.

Mensagem do viajante: %q

Preferências:
%s

Catálogo de destinos:
%s
Responda APENAS com os 3 identificadores escolhidos, separados por vírgula, sem texto adicional. Exemplo: dest-001,dest-004,dest-007`,
		message, formatPreferences(prefs), formatDestinationList(destinations))
}

func buildConversationPrompt(system string, history []types.ChatMessage, message string) string {
	var sb strings.Builder
	sb.WriteString(system)
	sb.WriteString("\n\nConversa até agora:\n")
	for _, m := range history {
		switch m.Role {
		case types.RoleUser:
			sb.WriteString("Viajante: ")
		default:
			sb.WriteString("ExplorAI: ")
		}
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("Viajante: ")
	sb.WriteString(message)
	sb.WriteString("\nExplorAI:")
	return sb.String()
}
