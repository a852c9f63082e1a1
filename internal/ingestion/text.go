package ingestion

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var excessiveBlankLines = regexp.MustCompile(`\n{3,}`)

// Normalize converts raw bytes from a loader into extraction-ready text. It never
// fails: invalid UTF-8 is replaced with U+FFFD and nil input yields "".
func Normalize(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	return NormalizeString(string(raw))
}

// NormalizeString applies the text normalization rules to s.
// Normalizing already-normalized text returns it unchanged.
func NormalizeString(content string) string {
	if content == "" {
		return ""
	}

	// 1. Repair encoding and drop NULs
	content = strings.ToValidUTF8(content, "\uFFFD")
	content = strings.ReplaceAll(content, "\x00", "")

	// 2. Fold ligatures and compatibility spaces
	content = norm.NFKC.String(content)

	// 3. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 4. Horizontal control whitespace becomes a plain space
	content = strings.NewReplacer("\t", " ", "\v", " ", "\f", " ").Replace(content)

	// 5. Trim trailing space per line; runs of inner spaces are kept
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	content = strings.Join(lines, "\n")

	// 6. At most one blank line between paragraphs
	content = excessiveBlankLines.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

// Lines splits normalized text into trimmed, non-empty lines
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
