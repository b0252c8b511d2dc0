package itinerary

import (
	"fmt"
	"strings"

	"github.com/explorai/explorai-api/internal/types"
)

func getItineraryPrompt(dest types.Destination, days int) string {
	return fmt.Sprintf(`Você é um especialista em planejamento de viagens. Crie um roteiro de %d dias para %s, %s.

Sobre o destino: %s

Retorne APENAS um JSON válido, sem texto adicional e sem cercas de código, neste formato:
{
    "dias": [
        {
            "dia": 1,
            "manha": "atividade da manhã",
            "tarde": "atividade da tarde",
            "noite": "atividade da noite"
        }
    ]
}
O array "dias" deve ter exatamente %d itens. Escreva em português brasileiro e seja específico sobre lugares reais.`,
		days, dest.Name, dest.Country, dest.Description, days)
}

func getAttractionsPrompt(dest types.Destination) string {
	return fmt.Sprintf(`Liste as 5 principais atrações de %s, %s.

Retorne APENAS um JSON válido, sem texto adicional e sem cercas de código, neste formato:
{
    "atracoes": [
        {
            "nome": "nome da atração",
            "descricao": "descrição breve em uma frase"
        }
    ]
}
Escreva em português brasileiro.`, dest.Name, dest.Country)
}

func getTipsPrompt(dest types.Destination) string {
	return fmt.Sprintf(`Você é um consultor de viagens. Dê dicas práticas para quem vai visitar %s, %s. A melhor época segundo nosso catálogo é: %s.

Retorne APENAS um JSON válido, sem texto adicional e sem cercas de código, neste formato:
{
    "quandoIr": "melhor época para visitar e por quê",
    "transporte": "como se locomover no destino",
    "documentacao": "documentos e vistos necessários para brasileiros",
    "dicasCulturais": "costumes locais e etiqueta"
}
Escreva em português brasileiro.`, dest.Name, dest.Country, formatMonths(dest.BestTimeToVisit))
}

func getGuidePrompt(dest types.Destination, budget types.BudgetCategory) string {
	return fmt.Sprintf(`Escreva um mini-guia de viagem em markdown para %s, %s, voltado para um viajante com orçamento %s.

Sobre o destino: %s
Melhor época para visitar: %s

Estruture o guia com os títulos: "## Por que visitar", "## O que fazer" e "## Dicas de economia". Escreva em português brasileiro, no máximo 300 palavras.`,
		dest.Name, dest.Country, budget, dest.Description, formatMonths(dest.BestTimeToVisit))
}

func formatMonths(months []string) string {
	if len(months) == 0 {
		return "o ano todo"
	}
	return strings.Join(months, ", ")
}
