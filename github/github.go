// Package github verifies commit metadata against the GitHub API. The check
// is advisory: it annotates the lint report and never gates the verdict.
package github

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	gogithub "github.com/google/go-github/v48/github"
	"golang.org/x/oauth2"
)

// OptionType defines the type of option for the GitHub client
type OptionType string

// Available option types
const (
	APITokenOption OptionType = "api_token"
	TimeoutOption  OptionType = "timeout"
)

// Option represents a configuration option for the GitHub client
type Option struct {
	Type  OptionType
	Value any
}

// WithAPIToken creates an option to set the API token
func WithAPIToken(token string) Option {
	return Option{
		Type:  APITokenOption,
		Value: token,
	}
}

// WithTimeout creates an option to set the API timeout in seconds
func WithTimeout(timeout int) Option {
	return Option{
		Type:  TimeoutOption,
		Value: timeout,
	}
}

// Client wraps the GitHub API for pull request lookups
type Client struct {
	client   *gogithub.Client
	apiToken string
	timeout  int
}

// NewClient creates a new GitHub client. The token comes from GITHUB_TOKEN
// unless provided through WithAPIToken.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		apiToken: os.Getenv("GITHUB_TOKEN"),
		timeout:  60,
	}

	for _, opt := range opts {
		switch opt.Type {
		case APITokenOption:
			if token, ok := opt.Value.(string); ok {
				c.apiToken = token
			}
		case TimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				c.timeout = timeout
			}
		}
	}

	if c.apiToken == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.apiToken})
	tc := oauth2.NewClient(context.Background(), ts)
	c.client = gogithub.NewClient(tc)

	return c, nil
}

// PRExists reports whether the pull request number exists on owner/repo.
func (c *Client) PRExists(owner, repo string, number int) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.timeout)*time.Second)
	defer cancel()

	_, resp, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
	}

	return true, nil
}
