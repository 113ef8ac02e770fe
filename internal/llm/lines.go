package llm

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseNudges reads count nudges out of a model reply. Extra lines are
// dropped; too few lines, or any line over maxRunes characters, makes the
// whole reply unusable.
func parseNudges(raw string, count, maxRunes int) ([]string, error) {
	lines := ExtractLines(raw)
	if len(lines) < count {
		return nil, fmt.Errorf("%w: got %d nudge lines, need %d", ErrInvalidOutput, len(lines), count)
	}
	lines = lines[:count]
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); maxRunes > 0 && n > maxRunes {
			return nil, fmt.Errorf("%w: nudge %d is %d characters", ErrInvalidOutput, i+1, n)
		}
	}
	return lines, nil
}

// ExtractLines splits raw model output into trimmed, non-empty lines with
// list markers ("-", "*", "•", "1.", "2)") and wrapping quotes removed.
// Markdown code fences are dropped.
func ExtractLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = stripListMarker(line)
		line = strings.Trim(line, "\"'")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func stripListMarker(line string) string {
	for _, p := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(line[len(p):])
		}
	}
	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
