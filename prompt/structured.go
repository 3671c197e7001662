package prompt

// Unknown is the sentinel the model must emit for numbers it cannot find.
// It keeps the model from inventing review or PR identifiers.
const Unknown = "<please_fill_in>"

// GetStructuredSystemPrompt frames the model as a commit-message linter for
// the structured JSON contract.
func GetStructuredSystemPrompt() string {
	return "You are an expert in Git commit message standards. Act as a strict linter and helpful coach."
}

// GetStructuredPrompt builds the structured-mode user prompt: the commit
// message under review, the built-in rule set, and the JSON output contract.
func GetStructuredPrompt(commitMessage string) string {
	return `The commit_message is:
` + commitMessage + `

REQUIREMENTS
1) Title (first line) MUST be strictly < 54 characters (i.e., max 53).
2) Body MUST include BOTH metadata lines (case-insensitive detection; normalize in fix):
   - "Code Review: <number>"
   - "PR: <number>" (accept "Pull Request: <number>" as equivalent, but normalize to "PR: <number>")
3) If a number is missing or unknown, use "` + Unknown + `" (do NOT invent).
4) Ensure exactly one blank line between title and body in the fixed message.
5) Preserve meaning; you MAY tighten wording, fix grammar, and prefer imperative mood for the title.
6) Detect PR via lines starting with "PR:" or "Pull Request:"; detect Code Review via lines starting with "Code Review:" (all case-insensitive; ignore surrounding whitespace).
7) Output exactly one JSON object inside a single json-fenced code block; no extra prose.

OUTPUT FORMAT (single JSON object only)
{
  "verdict": "pass" | "fail",
  "title_length": <integer>,
  "title_status": "ok" | "too_long",
  "has_pr": <true|false>,
  "has_code_review": <true|false>,

  "suggestions": [
    "Actionable bullet #1",
    "Actionable bullet #2"
  ],

  "fixed_message": {
    "title": "<rewritten concise, imperative title (max 53 chars)>",
    "body": "<rewritten body (no metadata lines), preserving meaning>",
    "code_review": "<number or ` + Unknown + `>",
    "pr": "<number or ` + Unknown + `>",
    "full_text": "Title\n\nBody\nCode Review: <...>\nPR: <...>"
  }
}

EVALUATION STEPS (for you to follow before emitting JSON)
- Parse title as the first non-empty line. Count characters exactly (no trimming for count).
- Check for a blank line after the title in the original; enforce exactly one in the fixed message.
- Search the body for PR and Code Review lines as specified (case-insensitive).
- When normalizing, always output:
  Code Review: <value>
  PR: <value>
- If no body exists, synthesize a minimal one-sentence rationale (why), then append the two metadata lines.
`
}
