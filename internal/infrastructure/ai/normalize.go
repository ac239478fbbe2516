package ai

import "strings"

// commandMarkers are label prefixes models put in front of the command.
var commandMarkers = []string{"cmd:", "command:", "$ "}

var fenceLanguages = map[string]bool{
	"sh":         true,
	"bash":       true,
	"shell":      true,
	"zsh":        true,
	"fish":       true,
	"console":    true,
	"powershell": true,
	"cmd":        true,
}

// NormalizeCommand reduces model output to a single-line command: the body of
// a fenced block if there is one, then the first line that still holds text
// after leading markers, outer backticks and wrapping quotes are removed.
// It returns "" when nothing usable remains.
func NormalizeCommand(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if block, ok := extractCodeBlock(content); ok {
		content = block
	}

	for _, line := range strings.Split(content, "\n") {
		if cmd := cleanLine(line); cmd != "" {
			return cmd
		}
	}
	return ""
}

func cleanLine(line string) string {
	for {
		next := stripWrapping(stripMarker(strings.TrimSpace(line)))
		if next == line {
			return next
		}
		line = next
	}
}

func stripMarker(s string) string {
	for _, marker := range commandMarkers {
		if len(s) >= len(marker) && strings.EqualFold(s[:len(marker)], marker) {
			return strings.TrimSpace(s[len(marker):])
		}
	}
	return s
}

// stripWrapping removes outer backticks and outer quotes. A quote at either
// end is dropped when it pairs with the other end, or when it is the odd one
// out on the line and so can only be a stray wrapper.
func stripWrapping(s string) string {
	s = strings.TrimSpace(strings.Trim(s, "`"))
	if len(s) >= 2 && isQuote(s[0]) && s[len(s)-1] == s[0] {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	if len(s) > 0 && isQuote(s[0]) && unbalanced(s, s[0]) {
		s = strings.TrimSpace(s[1:])
	}
	if len(s) > 0 && isQuote(s[len(s)-1]) && unbalanced(s, s[len(s)-1]) {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	return s
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func unbalanced(s string, quote byte) bool {
	return strings.Count(s, string(quote))%2 == 1
}

func extractCodeBlock(content string) (string, bool) {
	start := strings.Index(content, "```")
	if start == -1 {
		return "", false
	}

	suffix := content[start+3:]
	end := strings.Index(suffix, "```")
	if end == -1 {
		return "", false
	}

	lines := strings.Split(suffix[:end], "\n")
	if len(lines) > 1 && fenceLanguages[strings.ToLower(strings.TrimSpace(lines[0]))] {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), true
}
