package parser

import (
	"regexp"
	"strings"
)

// line is a trimmed, non-empty source line with its 1-based position in the
// original text, kept so validation errors can point back at the input.
type line struct {
	text string
	num  int
}

var glyphFolds = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...",
	" ", " ",
)

var (
	emphasisRe    = regexp.MustCompile(`(\*\*|__)([^*_]+)(\*\*|__)`)
	singleEmRe    = regexp.MustCompile(`\*([^*\n]+)\*`)
	answerArrowRe = regexp.MustCompile(`(?i)\b(correct\s+answer|answer|ans)\s*=>`)
)

// normalizeText canonicalizes glyphs and markup before any pattern matching
// runs. Pure function; line structure is preserved.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = glyphFolds.Replace(s)
	s = emphasisRe.ReplaceAllString(s, "$2")
	s = singleEmRe.ReplaceAllString(s, "$1")
	s = answerArrowRe.ReplaceAllString(s, "$1:")
	return s
}

// normalizeLines returns the trimmed non-empty lines of the normalized text.
func normalizeLines(s string) []line {
	raw := strings.Split(normalizeText(s), "\n")
	out := make([]line, 0, len(raw))
	for i, l := range raw {
		t := strings.TrimSpace(l)
		if t == "" {
			continue
		}
		out = append(out, line{text: t, num: i + 1})
	}
	return out
}
