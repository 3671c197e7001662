package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner defines an interface for running git commands
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// Ensure DefaultRunner implements Runner interface
var _ Runner = (*DefaultRunner)(nil)

// DefaultRunner implements the Runner interface using exec.Command
type DefaultRunner struct {
	RepoPath string
}

// NewDefaultRunner creates a new instance of DefaultRunner
func NewDefaultRunner(repoPath string) *DefaultRunner {
	return &DefaultRunner{
		RepoPath: repoPath,
	}
}

// Run executes a git command and returns its output
func (r *DefaultRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	if r.RepoPath != "" {
		cmd.Dir = r.RepoPath
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("error running command: %s\nstderr: %s", err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Client provides the git operations needed to lint a commit message
type Client struct {
	runner Runner
}

// NewClient creates a new Git client
func NewClient(runner Runner) *Client {
	return &Client{
		runner: runner,
	}
}

// HeadCommit returns the HEAD commit of the repository: message plus the
// names of the files it touched. This is the text handed to the linter.
func (c *Client) HeadCommit() (string, error) {
	output, err := c.runner.Run("git", "show", "HEAD", "--name-only")
	if err != nil {
		return "", fmt.Errorf("error getting HEAD commit: %w", err)
	}
	return output, nil
}

// HeadCommitHash returns the hash of the current commit
func (c *Client) HeadCommitHash() (string, error) {
	return c.runner.Run("git", "rev-parse", "HEAD")
}
