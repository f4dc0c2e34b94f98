package parser

// separatedStrategy handles the layout where question, roman-numeral
// sub-items, options, answer and explanation each sit on their own physical
// line. It is a small state machine over line roles: a numbered line always
// opens a new question and finalizes the previous one.
type separatedStrategy struct {
	tuning Tuning
}

func (separatedStrategy) Name() string { return "case_study_separated" }

type lineState int

const (
	stateNone lineState = iota
	stateQuestion
	stateOption
	stateAnswer
	stateExplanation
)

func (s separatedStrategy) Parse(lines []line) strategyResult {
	var res strategyResult
	var cur *draftQuestion
	state := stateNone
	ordinal := 0

	flush := func() {
		if cur == nil || cur.empty() {
			cur = nil
			return
		}
		ordinal++
		q, errs, emit := finalizeQuestion(ordinal, *cur, s.tuning)
		res.errors = append(res.errors, errs...)
		if emit {
			res.questions = append(res.questions, q)
		}
		cur = nil
	}

	for i := 0; i < len(lines); i++ {
		text := lines[i].text

		if qs, ok := matchQuestionStart(text); ok {
			opens := qs.kind == qNumbered || qs.kind == qTrueFalse
			if !opens && (qs.kind == qWhQuestion || qs.kind == qBareQuestion) {
				// A wrapped question tail also ends in "?"; only treat this
				// as a boundary when no question is mid-capture.
				settled := cur == nil || state == stateAnswer || state == stateExplanation
				opens = settled && promoteUnnumbered(lines, i, s.tuning)
			}
			if opens {
				flush()
				cur = &draftQuestion{text: qs.text, line: lines[i].num}
				state = stateQuestion
				continue
			}
		}
		if cur == nil {
			continue
		}
		if _, ok := matchRomanItem(text); ok && state == stateQuestion {
			cur.text += "\n" + text
			continue
		}
		if opt, ok := matchOptionStart(text); ok {
			cur.options = append(cur.options, opt.text)
			state = stateOption
			continue
		}
		if am, ok := matchAnswerStart(text); ok {
			cur.setAnswer(am)
			state = stateAnswer
			continue
		}
		if exp, ok := matchExplanationStart(text); ok {
			appendField(&cur.explanation, exp)
			state = stateExplanation
			continue
		}
		if state == stateOption {
			if am, ok := matchBareAnswer(text); ok {
				cur.setAnswer(am)
				state = stateAnswer
				continue
			}
		}

		switch state {
		case stateQuestion:
			cur.text += " " + text
		case stateOption:
			cur.options[len(cur.options)-1] += " " + text
		case stateAnswer:
			appendField(&cur.answer, text)
		case stateExplanation:
			// unmatched trailing lines keep accumulating as explanation
			appendField(&cur.explanation, text)
		}
	}
	flush()
	return res
}

func appendField(dst *string, text string) {
	if *dst == "" {
		*dst = text
		return
	}
	*dst += " " + text
}
