package llm

import (
	"fmt"
	"os"
)

// Available providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption  OptionType = "model"
	MaxTokensOption  OptionType = "max_tokens"
	APITimeoutOption OptionType = "api_timeout"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// Request represents one prompt for the LLM
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
}

func getAPIKey(provider string) (string, error) {
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		return apiKey, nil
	}

	// Provider-specific fallbacks for people who already export these.
	fallback := map[string]string{
		ProviderOpenAI:    "OPENAI_API_KEY",
		ProviderAnthropic: "ANTHROPIC_API_KEY",
	}
	if env, ok := fallback[provider]; ok {
		if apiKey := os.Getenv(env); apiKey != "" {
			return apiKey, nil
		}
	}

	return "", fmt.Errorf("LLM_API_KEY environment variable is not set")
}

// NewLLM creates the client for the requested provider. Ollama runs locally
// and needs no API key; the hosted providers do.
func NewLLM(providerName, modelName string, opts ...Option) (LLM, error) {
	options := []Option{
		WithModel(modelName),
		WithMaxTokens(4000),
		WithAPITimeout(60),
	}
	options = append(options, opts...)

	switch providerName {
	case ProviderOllama:
		return NewOllama(options...)
	case ProviderOpenAI:
		apiKey, err := getAPIKey(providerName)
		if err != nil {
			return nil, err
		}
		return NewOpenAI(apiKey, options...)
	case ProviderAnthropic:
		apiKey, err := getAPIKey(providerName)
		if err != nil {
			return nil, err
		}
		return NewAnthropic(apiKey, options...)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", providerName)
	}
}
