package parser

type strategyResult struct {
	questions []ParsedQuestion
	errors    []ValidationError
}

// parseStrategy is the one contract all layout parsers share. Parse must be
// total: garbage lines produce fewer questions, never a panic or error.
type parseStrategy interface {
	Name() string
	Parse(lines []line) strategyResult
}

// ParseQuizText is the sole required entry point: a total function over any
// input, returning a (possibly empty) quiz plus accumulated diagnostics.
func ParseQuizText(text string) ParsedQuiz {
	return New().Parse(text)
}

// Parse runs the strategies in fixed priority order and short-circuits on
// the first result that clears the quality gate. If none does, the best
// partial result is returned; the parser never refuses to return something.
func (p *Parser) Parse(text string) ParsedQuiz {
	lines := normalizeLines(text)
	strategies := []parseStrategy{
		inlineStrategy{tuning: p.tuning},
		separatedStrategy{tuning: p.tuning},
		incrementalStrategy{tuning: p.tuning},
	}

	var best strategyResult
	haveBest := false
	for _, s := range strategies {
		res := s.Parse(lines)
		if p.acceptable(res) {
			return buildQuiz(res)
		}
		if !haveBest || betterResult(res, best) {
			best = res
			haveBest = true
		}
	}
	return buildQuiz(best)
}

// acceptable is the quality gate: at least one question, error density no
// worse than the tuned ratio, and the shortAnswer share not so dominant
// that it points at failed option detection.
func (p *Parser) acceptable(r strategyResult) bool {
	n := len(r.questions)
	if n == 0 {
		return false
	}
	if float64(len(r.errors)) > p.tuning.MaxErrorRatio*float64(n) {
		return false
	}
	short := 0
	for _, q := range r.questions {
		if q.Type == TypeShortAnswer {
			short++
		}
	}
	if float64(short)/float64(n) > p.tuning.MaxShortAnswerShare {
		return false
	}
	return true
}

// betterResult orders partials by question count, then by fewer errors.
func betterResult(a, b strategyResult) bool {
	if len(a.questions) != len(b.questions) {
		return len(a.questions) > len(b.questions)
	}
	return len(a.errors) < len(b.errors)
}

func buildQuiz(r strategyResult) ParsedQuiz {
	quiz := ParsedQuiz{
		Questions: r.questions,
		Metadata: ParseMetadata{
			TotalQuestions: len(r.questions),
			HasErrors:      len(r.errors) > 0,
		},
	}
	if quiz.Questions == nil {
		quiz.Questions = []ParsedQuestion{}
	}
	for _, e := range r.errors {
		quiz.Metadata.ErrorMessages = append(quiz.Metadata.ErrorMessages, e.Error())
	}
	return quiz
}

// promoteUnnumbered decides whether an unnumbered question-ish line at
// index i really opens a question: at least two option-marker lines must
// appear within the lookahead window. This keeps body prose that merely
// ends in a question mark from splitting questions.
func promoteUnnumbered(lines []line, i int, t Tuning) bool {
	optLines := 0
	end := i + 1 + t.UnnumberedLookahead
	if end > len(lines) {
		end = len(lines)
	}
	for j := i + 1; j < end; j++ {
		if _, ok := matchOptionStart(lines[j].text); ok {
			optLines++
			if optLines >= 2 {
				return true
			}
		}
		if qs, ok := matchQuestionStart(lines[j].text); ok && qs.kind == qNumbered {
			break
		}
	}
	return false
}
