// Package llm talks to any OpenAI-compatible chat completion endpoint.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/angelmondragon/salesboard/pkg/config"
)

const (
	defaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
	defaultTimeout     = 60 * time.Second
)

// ErrEmptyReply is returned when the service answers without content.
var ErrEmptyReply = errors.New("completion returned no content")

// Config for the completion client.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Client wraps the go-openai client with fixed sampling settings.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// JSONRequest asks for a reply that conforms to Schema.
type JSONRequest struct {
	System     string
	Prompt     string
	SchemaName string
	Schema     json.Marshaler
}

// New builds a client. BaseURL empty means the public OpenAI endpoint.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("llm api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	// Copy so the caller's client keeps its own timeout.
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		*httpClient = *cfg.HTTPClient
	}
	httpClient.Timeout = cfg.Timeout
	clientCfg.HTTPClient = httpClient

	return &Client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// NewFromConfig builds a client from the insights configuration section.
func NewFromConfig(cfg config.InsightsConfig) (*Client, error) {
	return New(Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	})
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// CompleteJSON sends one system+user exchange with a strict json_schema
// response format and returns the raw content of the first choice.
func (c *Client) CompleteJSON(ctx context.Context, req JSONRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	if req.Schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.SchemaName,
				Schema: req.Schema,
				Strict: true,
			},
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyReply
	}
	return content, nil
}
