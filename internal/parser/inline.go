package parser

import (
	"regexp"
	"strings"
)

// inlineStrategy handles the case-study layout: one physical line carrying
// question text, an inline lettered option block, an "Answer:" token and
// optionally an "Explanation:" tail. A trailing explanation may also sit on
// the immediately following line.
type inlineStrategy struct {
	tuning Tuning
}

func (inlineStrategy) Name() string { return "case_study_inline" }

func (s inlineStrategy) Parse(lines []line) strategyResult {
	var res strategyResult
	ordinal := 0
	for i := 0; i < len(lines); i++ {
		d, ok := parseInlineRecord(lines[i].text)
		if !ok {
			continue
		}
		d.line = lines[i].num
		if d.explanation == "" && i+1 < len(lines) {
			if exp, ok := matchExplanationStart(lines[i+1].text); ok {
				d.explanation = exp
				i++
			}
		}
		ordinal++
		q, errs, emit := finalizeQuestion(ordinal, d, s.tuning)
		res.errors = append(res.errors, errs...)
		if emit {
			res.questions = append(res.questions, q)
		}
	}
	return res
}

var (
	inlineAnswerRe      = regexp.MustCompile(`(?i)\b(?:correct\s+answer|answer|ans)\s*[:\-]`)
	inlineExplanationRe = regexp.MustCompile(`(?i)\b(?:explanation|explain|correction)\s*[:\-]`)
	inlineRomanRe       = regexp.MustCompile(`(?i)(?:^|\s)\(?((?:i{1,3}|iv|v|vi{0,3}|ix|x))[\).:]\s+`)
)

// parseInlineRecord binds one single-line template. A line qualifies only
// when it starts numbered and carries an inline answer marker; anything
// less is left for the multi-line strategies.
func parseInlineRecord(text string) (draftQuestion, bool) {
	qs, ok := matchQuestionStart(text)
	if !ok || qs.kind != qNumbered {
		return draftQuestion{}, false
	}
	body := qs.text

	var d draftQuestion
	if loc := inlineExplanationRe.FindStringIndex(body); loc != nil {
		d.explanation = strings.TrimSpace(body[loc[1]:])
		body = strings.TrimSpace(body[:loc[0]])
	}
	loc := inlineAnswerRe.FindStringIndex(body)
	if loc == nil {
		return draftQuestion{}, false
	}
	d.setAnswer(classifyAnswerToken(body[loc[1]:]))
	body = strings.TrimSpace(body[:loc[0]])

	markers := findInlineMarkers(body)
	if markers == nil {
		// no option block: a one-line short-answer record
		d.text = body
		return d, d.text != ""
	}
	d.options = splitInlineOptions(body, markers)
	head := strings.TrimSpace(strings.TrimRight(body[:markers[0].start], "( \t"))
	d.text = foldInlineRomanItems(head)
	return d, d.text != ""
}

// foldInlineRomanItems detects roman-numeral sub-items embedded in the
// question head ("Consider: i. x ii. y Which ...?") and rejoins them with
// newlines so they read as part of the question, not as options.
func foldInlineRomanItems(head string) string {
	idx := inlineRomanRe.FindAllStringSubmatchIndex(head, -1)
	if len(idx) < 2 {
		return head
	}
	parts := []string{strings.TrimSpace(head[:idx[0][0]])}
	for i, m := range idx {
		end := len(head)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		parts = append(parts, strings.TrimSpace(head[m[0]:end]))
	}
	return strings.Join(parts, "\n")
}
