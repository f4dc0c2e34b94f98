package parser

import (
	"regexp"
	"strings"
)

// The pattern library is a registry of ordered matchers, tried
// first-match-wins, for the five line roles every strategy shares:
// question-start, option-start, answer-start, explanation-start, and the
// inline option-block splitter. Matchers are pure; order matters because
// specific forms ("Answer: (B) full text") must win over generic ones
// ("Answer: <anything>") or rich answers get truncated to a single letter.

type questionKind int

const (
	qNumbered questionKind = iota
	qTrueFalse
	qWhQuestion
	qBareQuestion
)

type questionStart struct {
	kind   questionKind
	number int    // 0 for unnumbered forms
	text   string // remainder after the marker
}

var (
	numberedQRe = regexp.MustCompile(`^(\d{1,3})[.):\-]\s*(.*)$`)
	qPrefixRe   = regexp.MustCompile(`(?i)^q(?:uestion)?\s*(\d{1,3})\s*[.):\-]?\s+(.*)$`)
	trueFalseRe = regexp.MustCompile(`(?i)^true\s+or\s+false\s*[:,.\-]?\s*(.*)$`)
	whWordRe    = regexp.MustCompile(`(?i)^(what|which|who|whom|whose|where|when|why|how)\b`)
)

func matchQuestionStart(s string) (questionStart, bool) {
	if m := numberedQRe.FindStringSubmatch(s); m != nil {
		return questionStart{kind: qNumbered, number: atoiSafe(m[1]), text: strings.TrimSpace(m[2])}, true
	}
	if m := qPrefixRe.FindStringSubmatch(s); m != nil {
		return questionStart{kind: qNumbered, number: atoiSafe(m[1]), text: strings.TrimSpace(m[2])}, true
	}
	if m := trueFalseRe.FindStringSubmatch(s); m != nil {
		// Keep the marker; the validator keys True/False inference off it.
		return questionStart{kind: qTrueFalse, text: s}, true
	}
	if whWordRe.MatchString(s) && strings.HasSuffix(s, "?") {
		return questionStart{kind: qWhQuestion, text: s}, true
	}
	if strings.HasSuffix(s, "?") {
		return questionStart{kind: qBareQuestion, text: s}, true
	}
	return questionStart{}, false
}

type optionStart struct {
	letter byte // upper-cased A..H
	text   string
}

var optionRe = regexp.MustCompile(`^\(?([A-Ha-h])[\).:\-]\s*(\S.*)$`)

func matchOptionStart(s string) (optionStart, bool) {
	low := strings.ToLower(s)
	if strings.HasPrefix(low, "e.g") || strings.HasPrefix(low, "a.m") || strings.HasPrefix(low, "a.k.a") {
		return optionStart{}, false
	}
	m := optionRe.FindStringSubmatch(s)
	if m == nil {
		return optionStart{}, false
	}
	return optionStart{letter: upperLetter(m[1][0]), text: strings.TrimSpace(m[2])}, true
}

// Roman-numeral sub-items ("i. ...", "IV) ...") belong to the question text,
// not the option list. The letters i/v/x never collide with option letters
// A-H, so this can be checked independently.
var romanRe = regexp.MustCompile(`(?i)^\(?([ivx]{1,5})[\).:\-]\s+(\S.*)$`)

func matchRomanItem(s string) (string, bool) {
	m := romanRe.FindStringSubmatch(s)
	if m == nil || !validRoman(m[1]) {
		return "", false
	}
	return s, true
}

func validRoman(s string) bool {
	// Enough for sub-item lists: i..xx.
	valid := map[string]bool{
		"i": true, "ii": true, "iii": true, "iv": true, "v": true,
		"vi": true, "vii": true, "viii": true, "ix": true, "x": true,
		"xi": true, "xii": true, "xiii": true, "xiv": true, "xv": true,
		"xvi": true, "xvii": true, "xviii": true, "xix": true, "xx": true,
	}
	return valid[strings.ToLower(s)]
}

// answerMatch is the raw capture of an answer line before resolution.
// Exactly one of letter / letters / text is the primary payload; raw always
// holds everything after the marker.
type answerMatch struct {
	raw     string
	letter  string   // single captured letter, upper-cased
	letters []string // multi-select list ("Answer: A, C")
	text    string   // trailing text after a captured letter
}

var (
	answerMarkerRe     = regexp.MustCompile(`(?i)^(?:correct\s+answer|correct|answer|ans|weight)\s*[:\-]\s*(.*)$`)
	answerLetterTextRe = regexp.MustCompile(`^\(?([A-Ha-h])[\).:\-]\s+(\S.*)$`)
	answerBareLetterRe = regexp.MustCompile(`^\(?([A-Ha-h])\)?\.?$`)
	answerLetterListRe = regexp.MustCompile(`(?i)^\(?[A-Ha-h]\)?(\s*(?:,|&|and)\s*\(?[A-Ha-h]\)?)+$`)
	letterTokenRe      = regexp.MustCompile(`[A-Ha-h]`)
)

func matchAnswerStart(s string) (answerMatch, bool) {
	m := answerMarkerRe.FindStringSubmatch(s)
	if m == nil {
		return answerMatch{}, false
	}
	return classifyAnswerToken(m[1]), true
}

// classifyAnswerToken splits whatever followed an answer marker into its
// letter / letter-list / letter+text / free-text shape.
func classifyAnswerToken(rest string) answerMatch {
	rest = strings.TrimSpace(rest)
	am := answerMatch{raw: rest}
	switch {
	case rest == "":
		// marker alone; the answer continues on the next line
	case answerLetterTextRe.MatchString(rest):
		lm := answerLetterTextRe.FindStringSubmatch(rest)
		am.letter = string(upperLetter(lm[1][0]))
		am.text = strings.TrimSpace(lm[2])
	case answerLetterListRe.MatchString(rest):
		for _, l := range letterTokenRe.FindAllString(rest, -1) {
			am.letters = append(am.letters, string(upperLetter(l[0])))
		}
	case answerBareLetterRe.MatchString(rest):
		lm := answerBareLetterRe.FindStringSubmatch(rest)
		am.letter = string(upperLetter(lm[1][0]))
	}
	return am
}

// setAnswer stores a matched answer on the draft. The full raw token is
// kept for letter+text shapes so the resolver sees the rich form; a bare
// captured letter is stored as-is.
func (d *draftQuestion) setAnswer(am answerMatch) {
	switch {
	case len(am.letters) > 0:
		d.answerLetters = am.letters
		d.answer = am.raw
	case am.letter != "" && am.text == "":
		d.answer = am.letter
	default:
		d.answer = am.raw
	}
}

// matchBareAnswer recognizes a lone letter or True/False line. Strategies
// only consult it while an answer is plausibly expected, so body prose is
// not misread as an answer.
func matchBareAnswer(s string) (answerMatch, bool) {
	if m := answerBareLetterRe.FindStringSubmatch(s); m != nil {
		return answerMatch{raw: s, letter: string(upperLetter(m[1][0]))}, true
	}
	if bareTrueFalseRe.MatchString(s) {
		return answerMatch{raw: strings.TrimSuffix(s, ".")}, true
	}
	return answerMatch{}, false
}

var bareTrueFalseRe = regexp.MustCompile(`(?i)^(true|false)\.?$`)

var explanationRe = regexp.MustCompile(`(?i)^(?:explanation|explain|correction|note)\s*[:\-]\s*(.*)$`)

func matchExplanationStart(s string) (string, bool) {
	m := explanationRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// --- inline option-block extraction ---

type inlineMarker struct {
	letter    byte // upper-cased
	start     int  // index of the marker itself
	textStart int  // index just past the marker
}

var inlineMarkerRe = regexp.MustCompile(`(^|[\s(])([A-Ha-h])[\).:]\s*`)

// findInlineMarkers locates letter markers on a single physical line and
// keeps only a run that counts up from A; stray capitals mid-sentence
// ("vitamin C.") do not form such a run.
func findInlineMarkers(s string) []inlineMarker {
	idx := inlineMarkerRe.FindAllStringSubmatchIndex(s, -1)
	run := make([]inlineMarker, 0, len(idx))
	for _, m := range idx {
		letter := upperLetter(s[m[4]])
		mk := inlineMarker{letter: letter, start: m[4], textStart: m[1]}
		if len(run) == 0 {
			if letter != 'A' {
				continue
			}
			run = append(run, mk)
			continue
		}
		if letter == run[len(run)-1].letter+1 {
			run = append(run, mk)
		}
	}
	if len(run) < 2 {
		return nil
	}
	return run
}

// splitInlineOptions cuts the span of each marker at the start of the next
// marker (or end of string).
func splitInlineOptions(s string, markers []inlineMarker) []string {
	out := make([]string, 0, len(markers))
	for i, mk := range markers {
		end := len(s)
		if i+1 < len(markers) {
			end = markers[i+1].start
			// drop a "(" that belonged to the next marker
			for end > mk.textStart && (s[end-1] == '(' || s[end-1] == ' ') {
				end--
			}
		}
		out = append(out, strings.TrimSpace(s[mk.textStart:end]))
	}
	return out
}

// --- small shared helpers ---

func upperLetter(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func letterIndex(letter string) int {
	if letter == "" {
		return -1
	}
	b := upperLetter(letter[0])
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func hasTerminalPunct(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
