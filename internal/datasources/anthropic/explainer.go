// Package anthropic explains matches using the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

var _ datasources.MatchExplainer = (*Explainer)(nil)

const (
	DefaultModel     = "claude-3-5-haiku-20241022"
	defaultMaxTokens = 300
)

// MessageClient is the part of the Anthropic client used here. It exists so
// tests can substitute a fake.
type MessageClient interface {
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

type clientWrapper struct {
	client anthropic.Client
}

func (w *clientWrapper) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return w.client.Messages.New(ctx, params)
}

type Explainer struct {
	client    MessageClient
	model     string
	maxTokens int64
}

func NewExplainer(apiKey, model string) (*Explainer, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return NewExplainerWithClient(&clientWrapper{client: client}, model), nil
}

func NewExplainerWithClient(client MessageClient, model string) *Explainer {
	if model == "" {
		model = DefaultModel
	}
	return &Explainer{
		client:    client,
		model:     model,
		maxTokens: defaultMaxTokens,
	}
}

func (e *Explainer) ExplainMatch(ctx context.Context, req domain.ExplanationRequest) (string, error) {
	msg, err := e.client.CreateMessage(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: e.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: domain.ExplanationSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(domain.ExplanationPrompt(req))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	// Checking Type directly works for both API responses and hand-built test messages.
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
