package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mujasoft/NaturalCommitLint/version"
)

func TestVersionIsNotEmpty(t *testing.T) {
	if version.Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestAppendToLogIsAppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lint.log")

	if err := appendToLog(path, "  first reply \n"); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}
	if err := appendToLog(path, "second reply"); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	want := "first reply\n\nsecond reply\n\n"
	if string(data) != want {
		t.Errorf("Expected log %q, got %q", want, string(data))
	}
}

func TestLintCommandsAreRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"lint", "lint-rules", "version"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected subcommand %q to be registered, have %s", want, strings.Join(names, ", "))
		}
	}
}
