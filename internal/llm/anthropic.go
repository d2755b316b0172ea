// internal/llm/anthropic.go
package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider 는 Anthropic SDK 로 Provider 를 구현합니다.
type AnthropicProvider struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
}

func NewAnthropicProvider(apiKey, model string, maxTokens int) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &AnthropicProvider{
		client:    &client,
		model:     model,
		maxTokens: int64(maxTokens),
	}, nil
}

func (p *AnthropicProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(prompt),
				},
			},
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("no text content in response")
	}
	return strings.TrimSpace(sb.String()), nil
}
