package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWithDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	if settings.Provider != "ollama" {
		t.Errorf("Expected default provider 'ollama', got %s", settings.Provider)
	}
	if settings.Model != "llama3" {
		t.Errorf("Expected default model 'llama3', got %s", settings.Model)
	}
	if settings.Attempts != 3 {
		t.Errorf("Expected default attempts 3, got %d", settings.Attempts)
	}
	if settings.RulesFile != "rules.txt" {
		t.Errorf("Expected default rules file 'rules.txt', got %s", settings.RulesFile)
	}
}

func TestWithYamlFileNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	settings := WithYamlFile()
	if settings != WithDefaultSettings() {
		t.Errorf("Expected defaults when no settings file exists, got %+v", settings)
	}
}

func TestWithYamlFileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "provider: openai\nmodel: gpt-4.1\nattempts: 5\n"
	if err := os.WriteFile(filepath.Join(dir, "naturalcommitlint.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	t.Chdir(dir)

	settings := WithYamlFile()

	if settings.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got %s", settings.Provider)
	}
	if settings.Model != "gpt-4.1" {
		t.Errorf("Expected model 'gpt-4.1', got %s", settings.Model)
	}
	if settings.Attempts != 5 {
		t.Errorf("Expected attempts 5, got %d", settings.Attempts)
	}

	// Untouched fields keep their defaults.
	if settings.MaxTokens != 4000 {
		t.Errorf("Expected max tokens 4000, got %d", settings.MaxTokens)
	}
	if settings.RulesFile != "rules.txt" {
		t.Errorf("Expected rules file 'rules.txt', got %s", settings.RulesFile)
	}
}

func TestWithYamlFileInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "naturalcommitlint.yml"), []byte(":\n:::not yaml"), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	t.Chdir(dir)

	settings := WithYamlFile()
	if settings != WithDefaultSettings() {
		t.Errorf("Expected defaults when settings file is unparsable, got %+v", settings)
	}
}
