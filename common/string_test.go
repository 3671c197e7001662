package common

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapStringShortInputUnchanged(t *testing.T) {
	if got := WrapString("short line", 40); got != "short line" {
		t.Errorf("Expected input unchanged, got %q", got)
	}
}

func TestWrapStringBreaksOnSpaces(t *testing.T) {
	got := WrapString("one two three four five six seven eight", 15)

	for _, line := range strings.Split(got, "\n") {
		if len(line) > 15 {
			t.Errorf("Line exceeds width 15: %q", line)
		}
	}
}

func TestWrapStringKeepsMultibyteRunesIntact(t *testing.T) {
	in := "héllo wörld ünïcode tëxt with àccénted chäräcters éverywhere"
	got := WrapString(in, 12)

	for _, line := range strings.Split(got, "\n") {
		if !utf8.ValidString(line) {
			t.Errorf("Line contains a split rune: %q", line)
		}
		if utf8.RuneCountInString(line) > 12 {
			t.Errorf("Line exceeds width 12: %q", line)
		}
	}

	want := strings.ReplaceAll(in, " ", "")
	if joined := strings.ReplaceAll(strings.ReplaceAll(got, "\n", ""), " ", ""); joined != want {
		t.Errorf("Wrapping lost content: got %q", joined)
	}
}
