package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicModel implements the LLM interface using Anthropic's API
type AnthropicModel struct {
	client     anthropic.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	model := &AnthropicModel{
		client:     client,
		modelName:  "claude-3.7-sonnet",
		maxTokens:  4000,
		apiTimeout: 60,
	}
	applyOptions(opts, &model.modelName, &model.maxTokens, &model.apiTimeout)

	return model, nil
}

func (a *AnthropicModel) model() anthropic.Model {
	switch a.modelName {
	case "claude-3.7-sonnet":
		return anthropic.ModelClaude3_7SonnetLatest
	case "claude-3.5-sonnet":
		return anthropic.ModelClaude3_5SonnetLatest
	case "claude-3.5-haiku":
		return anthropic.ModelClaude3_5HaikuLatest
	}
	// Anything else is passed through as a raw model identifier.
	return anthropic.Model(a.modelName)
}

// Prompt sends a request to Anthropic and returns the response
func (a *AnthropicModel) Prompt(req Request) Response {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.apiTimeout)*time.Second)
	defer cancel()

	messageParams := anthropic.MessageNewParams{
		Model:     a.model(),
		MaxTokens: int64(a.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(req.UserPrompt),
				},
			},
		},
	}

	message, err := a.client.Messages.New(ctx, messageParams)
	if err != nil {
		return Response{
			Error: fmt.Errorf("failed to create message: %w", err),
		}
	}

	var content string
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		}
	}

	return Response{
		Content: content,
	}
}
