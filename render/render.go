// Package render draws the terminal report: panels for the commit under
// review, the model's reply, and the final verdict.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mujasoft/NaturalCommitLint/common"
	"github.com/mujasoft/NaturalCommitLint/linter"
)

const panelWidth = 78

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(0, 1).
			Width(panelWidth)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func panel(title, body string) string {
	return titleStyle.Render(title) + "\n" + panelStyle.Render(wrap(body))
}

func wrap(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		lines = append(lines, common.WrapString(line, panelWidth-4))
	}
	return strings.Join(lines, "\n")
}

// HeadCommit renders the commit under review.
func HeadCommit(commit, repo string) string {
	title := "Head Commit"
	if repo != "" {
		title = fmt.Sprintf("Head Commit for %q", repo)
	}
	return panel(title, commit) + "\n" + dimStyle.Render("This commit will be reviewed")
}

// LintOutput renders the raw model reply of a free-form run.
func LintOutput(results, repo string) string {
	title := "Lint Output"
	if repo != "" {
		title = fmt.Sprintf("Lint Output for %q", repo)
	}
	return panel(title, strings.TrimSpace(results)) + "\n" + dimStyle.Render("Powered by LLM")
}

// VerdictBanner renders the pass/fail banner.
func VerdictBanner(passed bool) string {
	if passed {
		return panel("Verdict", passStyle.Render("✅ Commit message passed all lint checks."))
	}
	return panel("Verdict", failStyle.Render("❌ Commit message needs revision."))
}

// Report renders a structured verdict as a readable summary.
func Report(v linter.Verdict) string {
	var b strings.Builder

	if v.Passed() {
		b.WriteString(passStyle.Render("Verdict: PASS") + "\n")
	} else {
		b.WriteString(failStyle.Render("Verdict: FAIL") + "\n")
	}

	fmt.Fprintf(&b, "Title length: %d (%s)\n", v.TitleLength, v.TitleStatus)
	fmt.Fprintf(&b, "Has PR line: %s\n", yesNo(v.HasPR))
	fmt.Fprintf(&b, "Has Code Review line: %s\n", yesNo(v.HasCodeReview))

	if len(v.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range v.Suggestions {
			b.WriteString("  - " + s + "\n")
		}
	}

	if v.FixedMessage.FullText != "" {
		b.WriteString("\nSuggested rewrite:\n")
		b.WriteString(v.FixedMessage.FullText)
	}

	return panel("Lint Report", strings.TrimRight(b.String(), "\n"))
}

// Changes renders the advisory changes_made list from the model reply.
func Changes(changes []string) string {
	var b strings.Builder
	for _, c := range changes {
		b.WriteString("  - " + c + "\n")
	}
	return panel("Changes Made", strings.TrimRight(b.String(), "\n"))
}

// Disclaimer is appended to every run; verdicts are advisory only.
func Disclaimer() string {
	return warnStyle.Render("WARNING: Please double-check since LLMs can still make mistakes.")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
