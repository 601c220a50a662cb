// Package openai implements the narrator port against the OpenAI chat
// completion API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dmbot/internal/ports"
	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt frames every narration request. It is fixed; no per-user or
// per-channel history is carried.
const systemPrompt = "You are a Dungeon Master (DM) in a fantasy world. " +
	"You narrate vividly, describe environments, and adjudicate actions. " +
	"Maintain a fun, immersive tone and encourage roleplay."

const (
	DefaultModel       = openai.GPT4
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.9
)

type Config struct {
	APIKey      string
	BaseURL     string // overrides the API endpoint, used by tests
	Model       string
	MaxTokens   int
	Temperature float32
}

type Narrator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

var _ ports.Narrator = (*Narrator)(nil)

func NewNarrator(cfg Config) (*Narrator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is empty")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}

	return &Narrator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

func (n *Narrator) Narrate(ctx context.Context, prompt string) (string, error) {
	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       n.model,
		MaxTokens:   n.maxTokens,
		Temperature: n.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
