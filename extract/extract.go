// Package extract pulls fenced content blocks out of free-form LLM replies.
//
// Models tend to think out loud: a reply may carry conversational preamble,
// discarded drafts, and finally the operative block. Extraction therefore
// always prefers the last fenced block of the requested kind.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoBlockFound means the reply contained no fenced block of the
	// requested kind.
	ErrNoBlockFound = errors.New("no fenced block found")
	// ErrMalformedJSON means a json-fenced block was present but its content
	// did not parse.
	ErrMalformedJSON = errors.New("malformed JSON block")
)

var (
	jsonObjectRe    = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	jsonBlockRe     = regexp.MustCompile("(?s)```json\\n(.*?)```")
	markdownBlockRe = regexp.MustCompile("(?s)```markdown\\n(.*?)```")
	textBlockRe     = regexp.MustCompile("(?s)```text\\n(.*?)```")
)

// JSONBlock returns the decoded content of the last json-fenced object in
// text. A missing block yields ErrNoBlockFound; a block that does not parse
// yields ErrMalformedJSON. Both are detectable with errors.Is.
func JSONBlock(text string) (map[string]any, error) {
	var obj map[string]any
	if err := JSONBlockInto(text, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// JSONBlockInto decodes the last json-fenced object in text into v.
func JSONBlockInto(text string, v any) error {
	matches := jsonObjectRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return fmt.Errorf("%w: no json block in reply", ErrNoBlockFound)
	}

	// Last block wins: earlier ones are the model's discarded drafts.
	block := matches[len(matches)-1][1]
	if err := json.Unmarshal([]byte(block), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return nil
}

// MarkdownBlock returns the trimmed content of the last markdown-fenced block
// in text, or an empty string when there is none. Markdown extraction is
// advisory, so absence is not an error.
func MarkdownBlock(text string) string {
	return lastBlock(markdownBlockRe, text)
}

// TextBlock returns the trimmed content of the last text-fenced block in
// text, or an empty string when there is none.
func TextBlock(text string) string {
	return lastBlock(textBlockRe, text)
}

func lastBlock(re *regexp.Regexp, text string) string {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return strings.TrimSpace(matches[len(matches)-1][1])
}

// ChangesMade decodes the last json-fenced block and reads its "changes_made"
// list. This path is used for reporting only, so any miss (no block, bad
// JSON, missing key) reports found=false rather than an error.
func ChangesMade(text string) (bool, []string) {
	matches := jsonBlockRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return false, nil
	}
	block := strings.TrimSpace(matches[len(matches)-1][1])

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(block), &obj); err != nil {
		return false, nil
	}

	raw, ok := obj["changes_made"]
	if !ok {
		return false, nil
	}

	var changes []string
	if err := json.Unmarshal(raw, &changes); err != nil {
		return false, nil
	}
	return true, changes
}
