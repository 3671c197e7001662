package prompt

// Literal verdict tokens the model is told to close its reply with.
const (
	PassToken = "LINT_PASS"
	FailToken = "LINT_FAIL"
)

// GetFreeFormSystemPrompt frames the model as a linter for user-supplied
// rules.
func GetFreeFormSystemPrompt() string {
	return "You are an expert in Git commit message standards. Act as a strict linter."
}

// GetFreeFormPrompt builds the free-form user prompt: the commit message,
// the rules file verbatim, and the closing-verdict instruction.
func GetFreeFormPrompt(commitMessage, rules string) string {
	return `The commit_message is:
` + commitMessage + `

REQUIREMENTS
` + rules + `

Give a verdict in the form "` + FailToken + ` | ` + PassToken + `". The verdict should be the
final line. E.g. 'Verdict: ` + FailToken + `'. Talk in the third person.
Be professional.
`
}
