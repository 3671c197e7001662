package render

import (
	"strings"
	"testing"

	"github.com/mujasoft/NaturalCommitLint/linter"
)

func TestVerdictBanner(t *testing.T) {
	if !strings.Contains(VerdictBanner(true), "passed all lint checks") {
		t.Error("Expected pass banner text")
	}
	if !strings.Contains(VerdictBanner(false), "needs revision") {
		t.Error("Expected fail banner text")
	}
}

func TestHeadCommitIncludesRepoName(t *testing.T) {
	out := HeadCommit("Fix typo", "widgets")
	if !strings.Contains(out, `"widgets"`) {
		t.Error("Expected panel title to name the repo")
	}
	if !strings.Contains(out, "Fix typo") {
		t.Error("Expected panel to contain the commit message")
	}
}

func TestReportContainsVerdictFields(t *testing.T) {
	verdict := linter.Verdict{
		Verdict:       linter.VerdictFail,
		TitleLength:   61,
		TitleStatus:   linter.TitleTooLong,
		HasPR:         false,
		HasCodeReview: true,
		Suggestions:   []string{"Shorten the title"},
		FixedMessage: linter.FixedMessage{
			FullText: "Short title\n\nBody.\nCode Review: 12\nPR: 42",
		},
	}

	out := Report(verdict)

	for _, snippet := range []string{
		"FAIL",
		"Title length: 61 (too_long)",
		"Has PR line: no",
		"Has Code Review line: yes",
		"Shorten the title",
		"Short title",
	} {
		if !strings.Contains(out, snippet) {
			t.Errorf("report missing expected content: %q", snippet)
		}
	}
}

func TestChanges(t *testing.T) {
	out := Changes([]string{"shortened title", "normalized PR line"})
	if !strings.Contains(out, "shortened title") || !strings.Contains(out, "normalized PR line") {
		t.Error("Expected all changes to be listed")
	}
}

func TestDisclaimerAlwaysWarns(t *testing.T) {
	if !strings.Contains(Disclaimer(), "double-check") {
		t.Error("Expected disclaimer warning text")
	}
}
