package linter

import "fmt"

// Verdict values and title statuses allowed by the JSON contract.
const (
	VerdictPass = "pass"
	VerdictFail = "fail"

	TitleOK      = "ok"
	TitleTooLong = "too_long"
)

// FixedMessage is the model's rewritten commit message. Numbers the model
// could not find carry the sentinel value instead of an invented one.
type FixedMessage struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	CodeReview string `json:"code_review"`
	PR         string `json:"pr"`
	FullText   string `json:"full_text"`
}

// Verdict is the structured judgement for one commit message.
type Verdict struct {
	Verdict       string       `json:"verdict"`
	TitleLength   int          `json:"title_length"`
	TitleStatus   string       `json:"title_status"`
	HasPR         bool         `json:"has_pr"`
	HasCodeReview bool         `json:"has_code_review"`
	Suggestions   []string     `json:"suggestions"`
	FixedMessage  FixedMessage `json:"fixed_message"`
}

// Passed reports whether the model judged the commit message acceptable.
func (v Verdict) Passed() bool {
	return v.Verdict == VerdictPass
}

// Validate checks the enum fields against the contract the model was given.
func (v Verdict) Validate() error {
	switch v.Verdict {
	case VerdictPass, VerdictFail:
	default:
		return fmt.Errorf("unexpected verdict value: %q", v.Verdict)
	}

	switch v.TitleStatus {
	case TitleOK, TitleTooLong:
	default:
		return fmt.Errorf("unexpected title_status value: %q", v.TitleStatus)
	}

	return nil
}
