// Package claude calls the Anthropic Messages API for dictionary entry
// generation. One prompt in, one text completion out; prompt construction
// and response parsing belong to the word service.
package claude

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/aivocab-backend/internal/config"
)

// Generator sends prompts to Claude and returns the raw text response.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewGenerator creates a Generator from LLMConfig.
func NewGenerator(cfg config.LLMConfig, logger *slog.Logger) *Generator {
	return &Generator{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		log:       logger.With("adapter", "claude"),
	}
}

// Generate sends one user prompt and returns the model's text. Exactly one
// API call per invocation; the caller decides whether a failure is retried.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude: message call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("claude: empty response")
	}

	g.log.DebugContext(ctx, "claude response",
		slog.String("model", g.model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return msg.Content[0].Text, nil
}
