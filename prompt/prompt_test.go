package prompt

import (
	"strings"
	"testing"
)

func TestGetStructuredPromptIncludesKeySections(t *testing.T) {
	commit := "Add payment flow\n\nCode Review: 12\nPR: 42"

	out := GetStructuredPrompt(commit)

	for _, snippet := range []string{
		commit,
		"strictly < 54 characters",
		"Code Review: <number>",
		"PR: <number>",
		Unknown,
		`"verdict": "pass" | "fail"`,
		`"title_status": "ok" | "too_long"`,
		"EVALUATION STEPS",
	} {
		if !strings.Contains(out, snippet) {
			t.Errorf("structured prompt missing expected content: %q", snippet)
		}
	}
}

func TestGetStructuredPromptIsDeterministic(t *testing.T) {
	commit := "Fix typo"
	if GetStructuredPrompt(commit) != GetStructuredPrompt(commit) {
		t.Error("Expected identical prompts for identical input")
	}
}

func TestGetFreeFormPromptEmbedsRulesVerbatim(t *testing.T) {
	commit := "Fix typo"
	rules := "1) Title must be in imperative mood.\n2) No trailing period."

	out := GetFreeFormPrompt(commit, rules)

	if !strings.Contains(out, commit) {
		t.Error("free-form prompt missing commit message")
	}
	if !strings.Contains(out, rules) {
		t.Error("free-form prompt must embed the rules file verbatim")
	}
	if !strings.Contains(out, "Verdict: "+FailToken) {
		t.Error("free-form prompt missing verdict-line instruction")
	}
	if !strings.Contains(out, PassToken) {
		t.Error("free-form prompt missing pass token")
	}
}
