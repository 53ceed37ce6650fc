// Package openai embeds skills and explains matches using the OpenAI API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

var _ datasources.Embedder = (*Client)(nil)
var _ datasources.MatchExplainer = (*Client)(nil)

const (
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)
	DefaultChatModel      = openai.GPT4oMini
	defaultMaxTokens      = 200
)

// Config configures the OpenAI client.
type Config struct {
	APIKey string

	// BaseURL overrides the API endpoint root, for OpenAI-compatible servers and tests.
	BaseURL string

	EmbeddingModel string
	// EmbeddingDimensions asks the model to shorten its output. Zero keeps the native size.
	EmbeddingDimensions int

	ChatModel   string
	MaxTokens   int
	Temperature float32
}

// APIClient is the subset of the go-openai client used here.
type APIClient interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	api    APIClient
	config Config
}

func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return NewClientWithAPI(openai.NewClientWithConfig(clientConfig), config), nil
}

// NewClientWithAPI creates a client around an existing API implementation.
func NewClientWithAPI(api APIClient, config Config) *Client {
	if config.EmbeddingModel == "" {
		config.EmbeddingModel = DefaultEmbeddingModel
	}
	if config.ChatModel == "" {
		config.ChatModel = DefaultChatModel
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaultMaxTokens
	}
	return &Client{api: api, config: config}
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(c.config.EmbeddingModel),
		Dimensions: c.config.EmbeddingDimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	return resp.Data[0].Embedding, nil
}

func (c *Client) ExplainMatch(ctx context.Context, req domain.ExplanationRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: domain.ExplanationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: domain.ExplanationPrompt(req)},
		},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("create completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
