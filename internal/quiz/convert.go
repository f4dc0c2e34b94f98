package quiz

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/parser"
)

// FromParsed maps a validated parse result into the persisted quiz record:
// fresh identities, 1-based order stamps, caller metadata, and one more
// answer-to-option reconciliation pass for the case where an upstream
// strategy left a bare letter behind. Pure mapping, no I/O.
func FromParsed(parsed parser.ParsedQuiz, meta Meta) Quiz {
	q := Quiz{
		ID:            uuid.NewString(),
		Title:         meta.Title,
		Difficulty:    meta.Difficulty,
		FeedbackMode:  meta.FeedbackMode,
		OwnerID:       meta.OwnerID,
		Questions:     make([]Question, 0, len(parsed.Questions)),
		QuestionCount: len(parsed.Questions),
		ParseWarnings: parsed.Metadata.ErrorMessages,
		CreatedAt:     time.Now().Unix(),
	}
	for i, pq := range parsed.Questions {
		out := Question{
			ID:             uuid.NewString(),
			Order:          i + 1,
			Text:           pq.Text,
			Type:           string(pq.Type),
			Options:        pq.Options,
			CorrectAnswer:  pq.CorrectAnswer,
			CorrectAnswers: pq.CorrectAnswers,
			Explanation:    pq.Explanation,
		}
		if pq.Type == parser.TypeMCQ && !answerInOptions(out.CorrectAnswer, out.Options) {
			if resolved, ok := parser.ResolveAnswer(out.CorrectAnswer, out.Options); ok {
				out.CorrectAnswer = resolved
			}
		}
		q.Questions = append(q.Questions, out)
	}
	return q
}

func answerInOptions(answer string, options []string) bool {
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(o)) {
			return true
		}
	}
	return false
}
