package insights

import (
	"context"

	"github.com/angelmondragon/salesboard/pkg/llm"
)

// Generator produces the raw reply for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

type completer interface {
	CompleteJSON(ctx context.Context, req llm.JSONRequest) (string, error)
}

type llmGenerator struct {
	client completer
}

// NewLLMGenerator adapts the completion client, asking for the insight schema.
func NewLLMGenerator(client *llm.Client) Generator {
	return &llmGenerator{client: client}
}

func (g *llmGenerator) Generate(ctx context.Context, prompt Prompt) (string, error) {
	return g.client.CompleteJSON(ctx, llm.JSONRequest{
		System:     prompt.System,
		Prompt:     prompt.User,
		SchemaName: schemaName,
		Schema:     responseSchema,
	})
}
