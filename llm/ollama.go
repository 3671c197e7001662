package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mujasoft/NaturalCommitLint/common"
	"github.com/mujasoft/NaturalCommitLint/logger"
	"github.com/sashabaranov/go-openai"
)

const defaultOllamaHost = "http://localhost:11434"

// OllamaModel implements the LLM interface against a local Ollama server
// through its OpenAI-compatible endpoint. No API key is required.
type OllamaModel struct {
	client     *openai.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewOllama creates a client for a local Ollama server. The host is taken
// from OLLAMA_HOST when set.
func NewOllama(opts ...Option) (*OllamaModel, error) {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = defaultOllamaHost
	}
	host = strings.TrimRight(host, "/")
	host = strings.TrimSuffix(host, "/v1")

	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	// Ollama ignores the token but the client requires one.
	config := openai.DefaultConfig("ollama")
	config.BaseURL = host + "/v1"
	config.HTTPClient = retryClient.StandardClient()

	model := &OllamaModel{
		client:     openai.NewClientWithConfig(config),
		modelName:  "llama3",
		maxTokens:  4000,
		apiTimeout: 60,
	}
	applyOptions(opts, &model.modelName, &model.maxTokens, &model.apiTimeout)

	logger.Debugf("Ollama client initialized with host: %s, model: %s", host, model.modelName)

	return model, nil
}

// Prompt sends a request to the local Ollama server and returns the response
func (o *OllamaModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Ollama model: %s", o.modelName)

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
		Temperature: 0.2,
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
		errMsg := "Ollama response contained no choices"
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}
