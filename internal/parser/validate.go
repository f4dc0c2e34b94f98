package parser

import (
	"fmt"
	"strings"
)

// draftQuestion is the in-progress record a strategy accumulates before
// validation. All fields are raw text as captured from the source.
type draftQuestion struct {
	text          string
	options       []string
	answer        string
	answerLetters []string // multi-select letters ("Answer: A, C")
	explanation   string
	line          int
}

func (d *draftQuestion) empty() bool {
	return strings.TrimSpace(d.text) == "" && len(d.options) == 0 && d.answer == ""
}

// finalizeQuestion enforces the per-question invariants, repairs what it
// can, and either emits a finished question (emit=true) or suppresses it.
// Only missing text, missing answer and an MCQ with fewer than two options
// suppress; an unmatched answer is reported but the question survives.
func finalizeQuestion(ordinal int, d draftQuestion, t Tuning) (ParsedQuestion, []ValidationError, bool) {
	var errs []ValidationError
	fail := func(msg string) (ParsedQuestion, []ValidationError, bool) {
		errs = append(errs, ValidationError{Question: ordinal, Message: msg, Line: d.line})
		return ParsedQuestion{}, errs, false
	}
	warn := func(msg string) {
		errs = append(errs, ValidationError{Question: ordinal, Message: msg, Line: d.line})
	}

	text := strings.TrimSpace(d.text)
	answer := strings.TrimSpace(d.answer)
	options := trimAll(d.options)

	if text == "" {
		return fail("missing question text")
	}

	// Last-resort repair: a lone-letter answer with no options at all means
	// option detection failed upstream. Synthesize placeholders sized to the
	// letter's index so the record stays queryable, and say so loudly.
	if len(options) == 0 && len(d.answerLetters) == 0 {
		if m := answerBareLetterRe.FindStringSubmatch(answer); m != nil && !strings.Contains(strings.ToLower(text), "true or false") {
			idx := letterIndex(m[1])
			size := idx + 1
			if size < 2 {
				size = 2
			}
			for i := 0; i < size; i++ {
				options = append(options, fmt.Sprintf("Option %c", 'A'+i))
			}
			answer = options[idx]
			warn(fmt.Sprintf("no options found; synthesized %d placeholder options from lone-letter answer %q", size, strings.TrimSpace(d.answer)))
		}
	}

	q := ParsedQuestion{
		ID:          fmt.Sprintf("q%d", ordinal),
		Text:        text,
		Explanation: strings.TrimSpace(d.explanation),
	}

	switch {
	case isTrueFalsePair(options) || strings.Contains(strings.ToLower(text), "true or false"):
		q.Type = TypeTrueFalse
	case len(options) >= 2:
		q.Type = TypeMCQ
	case len(options) == 1:
		return fail("only one option detected; need at least 2 for a multiple-choice question")
	default:
		q.Type = TypeShortAnswer
	}

	if answer == "" && len(d.answerLetters) == 0 {
		return fail("missing answer")
	}

	switch q.Type {
	case TypeTrueFalse:
		tf, ok := normalizeTrueFalse(answer, options)
		if !ok {
			warn(fmt.Sprintf("true/false answer %q could not be normalized", answer))
			tf = answer
		}
		q.Options = []string{"True", "False"}
		q.CorrectAnswer = tf

	case TypeMCQ:
		q.Options = options
		if len(d.answerLetters) > 0 {
			resolved := make([]string, 0, len(d.answerLetters))
			for _, l := range d.answerLetters {
				if i := letterIndex(l); i >= 0 && i < len(options) {
					resolved = append(resolved, options[i])
				} else {
					warn(fmt.Sprintf("answer letter %q is out of range of the %d detected options", l, len(options)))
				}
			}
			if len(resolved) == 0 {
				warn("none of the answer letters matched an option")
				q.CorrectAnswer = strings.Join(d.answerLetters, ", ")
				break
			}
			q.CorrectAnswer = resolved[0]
			if len(resolved) > 1 {
				q.CorrectAnswers = resolved
			}
			break
		}
		res, ok := resolveAnswer(answer, options, t)
		if !ok {
			warn(fmt.Sprintf("answer %q does not match any of the %d options", answer, len(options)))
		}
		q.CorrectAnswer = res

	case TypeShortAnswer:
		q.CorrectAnswer = answer
	}

	return q, errs, true
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isTrueFalsePair(options []string) bool {
	if len(options) != 2 {
		return false
	}
	a := normalizeToken(options[0])
	b := normalizeToken(options[1])
	return (a == "true" && b == "false") || (a == "false" && b == "true")
}

// normalizeTrueFalse maps a noisy token ("true.", "B", "A) True") onto
// exactly "True" or "False", using the original option order for letters.
func normalizeTrueFalse(answer string, options []string) (string, bool) {
	if tf, ok := trueFalseKeyword(answer); ok {
		return tf, true
	}
	if m := answerBareLetterRe.FindStringSubmatch(answer); m != nil {
		if i := letterIndex(m[1]); i >= 0 && i < len(options) {
			if tf, ok := trueFalseKeyword(options[i]); ok {
				return tf, true
			}
		}
	}
	return "", false
}

func trueFalseKeyword(s string) (string, bool) {
	low := strings.ToLower(s)
	hasTrue := strings.Contains(low, "true")
	hasFalse := strings.Contains(low, "false")
	switch {
	case hasTrue && !hasFalse:
		return "True", true
	case hasFalse && !hasTrue:
		return "False", true
	}
	return "", false
}
