package common

import "strings"

// WrapString breaks s into lines no longer than width runes, splitting on the
// last space before the limit when one exists.
func WrapString(s string, width int) string {
	var lines []string
	runes := []rune(s)
	for len(runes) > width {
		splitAt := width
		for i := width; i > 0; i-- {
			if runes[i] == ' ' {
				splitAt = i
				break
			}
		}
		lines = append(lines, string(runes[:splitAt]))
		runes = runes[splitAt:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return strings.Join(lines, "\n")
}
