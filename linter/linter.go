// Package linter drives one lint run: send the prompt, retry while the model
// stays silent, then turn the reply into a verdict.
//
// Both lint modes share this pipeline; they differ only in the Strategy that
// evaluates the raw reply.
package linter

import (
	"strings"

	"github.com/mujasoft/NaturalCommitLint/extract"
	"github.com/mujasoft/NaturalCommitLint/llm"
	"github.com/mujasoft/NaturalCommitLint/logger"
)

// DefaultAttempts is the bounded retry budget against the model.
// LLMs hallucinate and act unpredictably, so one silent reply is not final.
const DefaultAttempts = 3

// Result is the outcome of one lint run. Structured is nil in free-form mode.
type Result struct {
	Passed     bool
	Raw        string
	Structured *Verdict
}

// Strategy turns a raw model reply into a lint outcome.
type Strategy interface {
	Evaluate(raw string) (Result, error)
}

// Pipeline runs prompt -> gateway (with retries) -> strategy.
type Pipeline struct {
	client   llm.LLM
	strategy Strategy
	attempts int
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithAttempts overrides the retry budget.
func WithAttempts(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.attempts = n
		}
	}
}

// NewPipeline creates a pipeline around the given gateway and strategy.
func NewPipeline(client llm.LLM, strategy Strategy, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		client:   client,
		strategy: strategy,
		attempts: DefaultAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one lint run and returns exactly one result.
func (p *Pipeline) Run(req llm.Request) (Result, error) {
	raw, err := p.promptWithRetry(req)
	if err != nil {
		return Result{}, err
	}
	return p.strategy.Evaluate(raw)
}

// promptWithRetry sends the same prompt until a non-empty reply arrives or
// the budget runs out. The first non-empty reply wins immediately; retries
// are back-to-back, with no delay. On exhaustion the last (empty) reply is
// passed downstream as-is, a defined degraded outcome for an advisory tool.
// An error on the final attempt is not suppressed.
func (p *Pipeline) promptWithRetry(req llm.Request) (string, error) {
	var content string

	for attempt := 1; attempt <= p.attempts; attempt++ {
		resp := p.client.Prompt(req)
		if resp.Error != nil {
			logger.Warnf("LLM attempt %d/%d failed: %v", attempt, p.attempts, resp.Error)
			if attempt == p.attempts {
				return "", resp.Error
			}
			continue
		}

		content = resp.Content
		if strings.TrimSpace(content) != "" {
			return content, nil
		}
		logger.Debugf("LLM attempt %d/%d returned an empty reply", attempt, p.attempts)
	}

	return content, nil
}

// StructuredStrategy evaluates the structured JSON contract: the reply must
// carry a json-fenced verdict object matching the documented schema.
type StructuredStrategy struct{}

// Evaluate extracts and validates the verdict object. Extraction failures
// (extract.ErrNoBlockFound, extract.ErrMalformedJSON) surface unchanged so
// the caller can decide whether to re-prompt or abort.
func (StructuredStrategy) Evaluate(raw string) (Result, error) {
	var verdict Verdict
	if err := extract.JSONBlockInto(raw, &verdict); err != nil {
		return Result{}, err
	}

	if err := verdict.Validate(); err != nil {
		return Result{}, err
	}

	return Result{
		Passed:     verdict.Passed(),
		Raw:        raw,
		Structured: &verdict,
	}, nil
}

// FreeFormStrategy evaluates the literal-token contract: the reply fails the
// lint when it contains FailToken anywhere. The token is not required to sit
// on the final line even though the prompt asks for that; models that ignore
// formatting instructions still get a usable verdict.
type FreeFormStrategy struct{}

// FailToken is the case-sensitive literal searched for in the reply.
const FailToken = "LINT_FAIL"

// Evaluate never fails: an absent token means pass.
func (FreeFormStrategy) Evaluate(raw string) (Result, error) {
	trimmed := strings.TrimSpace(raw)
	return Result{
		Passed: !strings.Contains(trimmed, FailToken),
		Raw:    raw,
	}, nil
}
