package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mujasoft/NaturalCommitLint/common"
	"github.com/mujasoft/NaturalCommitLint/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the LLM interface using OpenAI's API
type OpenAIModel struct {
	client     *openai.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "OpenAI API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	// Retryable HTTP client handles transient API failures with backoff.
	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = retryClient.StandardClient()

	model := &OpenAIModel{
		client:     openai.NewClientWithConfig(config),
		modelName:  "gpt-4.1",
		maxTokens:  4000,
		apiTimeout: 60,
	}
	applyOptions(opts, &model.modelName, &model.maxTokens, &model.apiTimeout)

	logger.Debugf("OpenAI client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to OpenAI and returns the response
func (o *OpenAIModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to OpenAI model: %s", o.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(o.apiTimeout)*time.Second)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.UserPrompt,
			},
		},
		MaxTokens:   o.maxTokens,
		Temperature: 0.2, // Lower temperature for more deterministic results
	}

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		errMsg := fmt.Sprintf("failed to create chat completion: %v", err)
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	if len(resp.Choices) == 0 {
		errMsg := "OpenAI response contained no choices"
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}

// applyOptions copies recognized option values into the provider fields.
func applyOptions(opts []Option, modelName *string, maxTokens, apiTimeout *int) {
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if v, ok := opt.Value.(string); ok {
				*modelName = v
			}
		case MaxTokensOption:
			if v, ok := opt.Value.(int); ok {
				*maxTokens = v
			}
		case APITimeoutOption:
			if v, ok := opt.Value.(int); ok {
				*apiTimeout = v
			}
		}
	}
}
