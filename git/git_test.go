package git

import (
	"testing"
)

// MockRunner is a mock implementation of the Runner interface for testing
type MockRunner struct {
	ReturnOutput string
	ReturnError  error
	CommandRun   string
	ArgsRun      []string
}

// Run implements the Runner interface
func (m *MockRunner) Run(name string, args ...string) (string, error) {
	m.CommandRun = name
	m.ArgsRun = args
	return m.ReturnOutput, m.ReturnError
}

func TestHeadCommit(t *testing.T) {
	mockRunner := &MockRunner{
		ReturnOutput: "Add payment flow\n\nCode Review: 12\nPR: 42\n\npayments/service.go",
		ReturnError:  nil,
	}

	client := NewClient(mockRunner)
	commit, err := client.HeadCommit()

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if commit != mockRunner.ReturnOutput {
		t.Errorf("Expected runner output to pass through, got %s", commit)
	}

	if mockRunner.CommandRun != "git" {
		t.Errorf("Expected command 'git', got %s", mockRunner.CommandRun)
	}

	if len(mockRunner.ArgsRun) != 3 {
		t.Fatalf("Expected 3 arguments, got %d", len(mockRunner.ArgsRun))
	}

	if mockRunner.ArgsRun[0] != "show" || mockRunner.ArgsRun[1] != "HEAD" || mockRunner.ArgsRun[2] != "--name-only" {
		t.Errorf("Expected ['show', 'HEAD', '--name-only'], got %v", mockRunner.ArgsRun)
	}
}

func TestHeadCommitHash(t *testing.T) {
	mockRunner := &MockRunner{
		ReturnOutput: "abc123",
	}

	client := NewClient(mockRunner)
	hash, err := client.HeadCommitHash()

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hash != "abc123" {
		t.Errorf("Expected 'abc123', got %s", hash)
	}

	if mockRunner.ArgsRun[0] != "rev-parse" {
		t.Errorf("Expected first argument to be 'rev-parse', got '%s'", mockRunner.ArgsRun[0])
	}
}
