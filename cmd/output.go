package cmd

import (
	"fmt"
	"os"
	"strings"
)

// appendToLog appends the trimmed raw model reply to path, separated from
// earlier entries by a blank line. The log is append-only; nothing reads it
// back, so concurrent runs cannot corrupt each other.
func appendToLog(path, raw string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.TrimSpace(raw) + "\n\n"); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
