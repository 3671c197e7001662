package common

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mujasoft/NaturalCommitLint/logger"
)

// RetryConfig holds the configuration for HTTP retry logic
type RetryConfig struct {
	// Maximum number of retries
	RetryMax int
	// Minimum time to wait between retries
	RetryWaitMin time.Duration
	// Maximum time to wait between retries
	RetryWaitMax time.Duration
}

// DefaultRetryConfig returns a RetryConfig with sensible defaults
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		RetryMax:     3,
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 5 * time.Second,
	}
}

// NewRetryableClient creates a new HTTP client with retry capabilities.
// This covers transport-level hiccups only; empty model replies are handled
// one layer up, in the lint pipeline.
func NewRetryableClient(config RetryConfig) *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()

	retryClient.RetryMax = config.RetryMax
	retryClient.RetryWaitMin = config.RetryWaitMin
	retryClient.RetryWaitMax = config.RetryWaitMax
	retryClient.Logger = &zapRetryLogger{}

	logger.Debugf("Created retryable client with max retries: %d, min wait: %s, max wait: %s",
		config.RetryMax, config.RetryWaitMin, config.RetryWaitMax)

	return retryClient
}

// zapRetryLogger adapts our zap logger to the interface required by retryablehttp
type zapRetryLogger struct{}

func (z *zapRetryLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.Error(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Info(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.Debug(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.Warn(append([]interface{}{msg}, keysAndValues...)...)
}
