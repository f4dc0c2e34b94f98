package quiz

import (
	"fmt"
	"strings"
)

// RenderText emits the canonical plain-text form of a quiz: numbered
// questions, lettered options, "Answer:" with the full option text, then
// "Explanation:". Re-parsing this rendering yields zero validation errors,
// which is also how exports round-trip.
func RenderText(q Quiz) string {
	var b strings.Builder
	for i, question := range q.Questions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, question.Text)
		for j, opt := range question.Options {
			fmt.Fprintf(&b, "%c) %s\n", 'A'+j, opt)
		}
		if letters := answerLetters(question); len(letters) > 1 {
			// multi-select renders as letters so a re-parse keeps the set
			fmt.Fprintf(&b, "Answer: %s\n", strings.Join(letters, ", "))
		} else {
			fmt.Fprintf(&b, "Answer: %s\n", question.CorrectAnswer)
		}
		if question.Explanation != "" {
			fmt.Fprintf(&b, "Explanation: %s\n", question.Explanation)
		}
	}
	return b.String()
}

func answerLetters(q Question) []string {
	if len(q.CorrectAnswers) < 2 {
		return nil
	}
	letters := make([]string, 0, len(q.CorrectAnswers))
	for _, ans := range q.CorrectAnswers {
		for j, opt := range q.Options {
			if strings.EqualFold(strings.TrimSpace(ans), strings.TrimSpace(opt)) {
				letters = append(letters, string(rune('A'+j)))
				break
			}
		}
	}
	return letters
}
