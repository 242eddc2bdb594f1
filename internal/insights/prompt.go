package insights

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/pkg/models"
)

const systemPrompt = "Você é um analista de vendas. Responda somente com JSON válido."

const instruction = "Analise os seguintes dados de vendas e forneça insights estratégicos em português do Brasil:"

const closing = "Forneça uma análise de tendências, conselhos para os promotores que estão vendendo mais e dicas para quem precisa melhorar o desempenho."

// Prompt is the exchange sent to the completion service.
type Prompt struct {
	System string
	User   string
}

// Transcript renders one line per sale in entry order.
func Transcript(sales []models.Sale, people []models.Salesperson) string {
	lines := make([]string, 0, len(sales))
	for _, s := range sales {
		lines = append(lines, fmt.Sprintf("Promotor: %s, Valor: R$%s, Produto: %s, Data: %s",
			aggregation.SalespersonName(people, s.SalespersonID),
			s.Amount.String(),
			s.Product,
			s.Date.String(),
		))
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt wraps the transcript in the analysis instructions.
func BuildPrompt(sales []models.Sale, people []models.Salesperson) Prompt {
	return Prompt{
		System: systemPrompt,
		User:   instruction + "\n\n" + Transcript(sales, people) + "\n\n" + closing,
	}
}
