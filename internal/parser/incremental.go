package parser

// incrementalStrategy is the forgiving line-by-line parser: it keeps an open
// "current question" accumulator and routes every line to question, option,
// answer, explanation or continuation handling, in that priority order. The
// most recently opened field is tracked explicitly so the soft-continuation
// heuristic stays testable on its own.
type incrementalStrategy struct {
	tuning Tuning
}

func (incrementalStrategy) Name() string { return "traditional_incremental" }

type fieldState int

const (
	fieldNone fieldState = iota
	fieldQuestion
	fieldOption
	fieldAnswer
	fieldExplanation
)

type incrementalRun struct {
	tuning  Tuning
	res     strategyResult
	cur     *draftQuestion
	last    fieldState
	ordinal int
}

func (s incrementalStrategy) Parse(lines []line) strategyResult {
	run := &incrementalRun{tuning: s.tuning}
	for i := range lines {
		run.route(lines, i)
	}
	run.flush()
	return run.res
}

func (r *incrementalRun) flush() {
	if r.cur == nil || r.cur.empty() {
		r.cur = nil
		r.last = fieldNone
		return
	}
	r.ordinal++
	q, errs, emit := finalizeQuestion(r.ordinal, *r.cur, r.tuning)
	r.res.errors = append(r.res.errors, errs...)
	if emit {
		r.res.questions = append(r.res.questions, q)
	}
	r.cur = nil
	r.last = fieldNone
}

// route is the transition function: one line in, at most one field updated.
func (r *incrementalRun) route(lines []line, i int) {
	text := lines[i].text

	if qs, ok := matchQuestionStart(text); ok && r.opensQuestion(qs, lines, i) {
		r.flush()
		r.cur = &draftQuestion{text: qs.text, line: lines[i].num}
		r.last = fieldQuestion
		return
	}
	if r.cur == nil {
		return
	}
	if _, ok := matchRomanItem(text); ok && r.last == fieldQuestion {
		r.cur.text += "\n" + text
		return
	}
	if opt, ok := matchOptionStart(text); ok {
		r.cur.options = append(r.cur.options, opt.text)
		r.last = fieldOption
		return
	}
	if am, ok := matchAnswerStart(text); ok {
		r.cur.setAnswer(am)
		r.last = fieldAnswer
		return
	}
	if exp, ok := matchExplanationStart(text); ok {
		appendField(&r.cur.explanation, exp)
		r.last = fieldExplanation
		return
	}
	if r.last == fieldOption {
		if am, ok := matchBareAnswer(text); ok {
			r.cur.setAnswer(am)
			r.last = fieldAnswer
			return
		}
	}
	r.continuation(text)
}

// opensQuestion: numbered and "True or False:" lines always open; wh/bare
// question-mark lines open only when the lookahead finds an option block
// and no question is still mid-capture.
func (r *incrementalRun) opensQuestion(qs questionStart, lines []line, i int) bool {
	switch qs.kind {
	case qNumbered, qTrueFalse:
		return true
	}
	if r.cur != nil && r.cur.answer == "" && len(r.cur.options) == 0 {
		// likely the wrapped tail of the open question's text
		return false
	}
	return promoteUnnumbered(lines, i, r.tuning)
}

// continuation glues an unrecognized line onto the most recently opened
// field. Source text wraps long questions and options across lines without
// markers, so this stays deliberately forgiving: the only refusals are a
// field that already ended in terminal punctuation (except explanations,
// which keep accumulating) or a line that looks structural on its own.
func (r *incrementalRun) continuation(text string) {
	switch r.last {
	case fieldQuestion:
		if hasTerminalPunct(r.cur.text) {
			return
		}
		r.cur.text += " " + text
	case fieldOption:
		last := len(r.cur.options) - 1
		if hasTerminalPunct(r.cur.options[last]) {
			return
		}
		r.cur.options[last] += " " + text
	case fieldAnswer:
		if r.cur.answer != "" && hasTerminalPunct(r.cur.answer) {
			return
		}
		appendField(&r.cur.answer, text)
	case fieldExplanation:
		appendField(&r.cur.explanation, text)
	}
}
