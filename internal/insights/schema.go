package insights

import "github.com/sashabaranov/go-openai/jsonschema"

const schemaName = "sales_insight"

var responseSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"summary":            {Type: jsonschema.String, Description: "Resumo geral das vendas"},
		"topPerformerAdvice": {Type: jsonschema.String, Description: "Conselhos para os melhores promotores"},
		"lowPerformerAdvice": {Type: jsonschema.String, Description: "Estratégias para quem precisa melhorar"},
		"trendAnalysis":      {Type: jsonschema.String, Description: "Análise de tendências de mercado baseada nos dados"},
	},
	Required:             []string{"summary", "topPerformerAdvice", "lowPerformerAdvice", "trendAnalysis"},
	AdditionalProperties: false,
}
