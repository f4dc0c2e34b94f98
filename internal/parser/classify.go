package parser

import "fmt"

// DetectFormat scores the text against signatures of the known layout
// families and reports a best guess. Advisory only: the orchestrator still
// runs the full strategy cascade regardless of what is reported here.
func DetectFormat(text string) FormatGuess {
	lines := normalizeLines(text)
	if len(lines) == 0 {
		return FormatGuess{Format: FormatUnknown, Confidence: 0,
			Recommendations: []string{"input is empty after normalization"}}
	}

	scores := map[string]float64{}
	var numbered, standaloneOpts, answers, inlineRecords, questionMarks int

	for _, l := range lines {
		qs, isQ := matchQuestionStart(l.text)
		markers := findInlineMarkers(l.text)
		_, isAns := matchAnswerStart(l.text)
		_, isOpt := matchOptionStart(l.text)

		switch {
		case isQ && qs.kind == qNumbered && len(markers) >= 2:
			// question, options and usually the answer on one physical line
			inlineRecords++
			scores[FormatCaseStudyInline] += 3
		case isQ && qs.kind == qNumbered:
			numbered++
			scores[FormatNumbered] += 2
			scores[FormatCaseStudySeparated] += 1
		case isOpt:
			standaloneOpts++
			scores[FormatNumbered] += 1
			scores[FormatCaseStudySeparated] += 1
		case isAns:
			answers++
			scores[FormatNumbered] += 1
			scores[FormatCaseStudySeparated] += 1
		case isQ:
			questionMarks++
			scores[FormatUnnumbered] += 1.5
		}
		if _, ok := matchRomanItem(l.text); ok {
			scores[FormatCaseStudySeparated] += 1.5
		}
		if _, ok := matchExplanationStart(l.text); ok {
			scores[FormatCaseStudySeparated] += 1
		}
	}

	// Option and answer lines vote for the numbered layouts, but without a
	// single numbered question those votes are noise; an unnumbered quiz
	// has option lines too.
	if numbered == 0 && inlineRecords == 0 && questionMarks > 0 {
		scores[FormatUnnumbered] += scores[FormatNumbered]
		delete(scores, FormatNumbered)
		delete(scores, FormatCaseStudySeparated)
	}

	best, bestScore, total := FormatUnknown, 0.0, 0.0
	for _, f := range []string{FormatCaseStudyInline, FormatNumbered, FormatCaseStudySeparated, FormatUnnumbered} {
		s := scores[f]
		total += s
		if s > bestScore {
			best, bestScore = f, s
		}
	}
	g := FormatGuess{Format: best}
	if total > 0 {
		g.Confidence = bestScore / total
	}

	switch best {
	case FormatCaseStudyInline:
		g.Recommendations = append(g.Recommendations,
			fmt.Sprintf("%d single-line records detected; the inline strategy should handle this", inlineRecords))
	case FormatCaseStudySeparated, FormatNumbered:
		g.Recommendations = append(g.Recommendations,
			fmt.Sprintf("%d numbered questions, %d option lines, %d answer lines on separate lines", numbered, standaloneOpts, answers))
	case FormatUnnumbered:
		g.Recommendations = append(g.Recommendations,
			fmt.Sprintf("%d unnumbered question-mark lines; boundaries will rely on option lookahead", questionMarks))
	default:
		g.Recommendations = append(g.Recommendations,
			"no recognizable quiz structure; parsing may recover little")
	}
	return g
}
