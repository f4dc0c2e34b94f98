package quiz

import (
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/parser"
)

func TestFromParsedStampsMetadata(t *testing.T) {
	parsed := parser.ParseQuizText("1. What is 2+2?\nA) 3\nB) 4\nAnswer: B")
	q := FromParsed(parsed, Meta{Title: "Arithmetic", Difficulty: "easy", FeedbackMode: "immediate", OwnerID: "teacher-1"})

	if q.ID == "" {
		t.Fatal("missing quiz id")
	}
	if q.Title != "Arithmetic" || q.Difficulty != "easy" || q.FeedbackMode != "immediate" || q.OwnerID != "teacher-1" {
		t.Fatalf("metadata = %+v", q)
	}
	if q.QuestionCount != 1 || len(q.Questions) != 1 {
		t.Fatalf("count = %d, questions = %d", q.QuestionCount, len(q.Questions))
	}
	if q.CreatedAt == 0 {
		t.Fatal("missing created timestamp")
	}
	got := q.Questions[0]
	if got.ID == "" || got.ID == q.ID {
		t.Fatalf("question needs its own id, got %q", got.ID)
	}
	if got.Order != 1 {
		t.Fatalf("order = %d", got.Order)
	}
	if got.CorrectAnswer != "4" {
		t.Fatalf("answer = %q", got.CorrectAnswer)
	}
}

func TestFromParsedReconcilesBareLetter(t *testing.T) {
	parsed := parser.ParsedQuiz{Questions: []parser.ParsedQuestion{{
		ID:            "q1",
		Text:          "Pick one",
		Type:          parser.TypeMCQ,
		Options:       []string{"red", "green", "blue"},
		CorrectAnswer: "B",
	}}}
	q := FromParsed(parsed, Meta{OwnerID: "o"})
	if got := q.Questions[0].CorrectAnswer; got != "green" {
		t.Fatalf("answer = %q, want reconciled option text", got)
	}
}

func TestFromParsedCarriesWarnings(t *testing.T) {
	parsed := parser.ParseQuizText("1. Pick\nA) x\nB) y\nAnswer: F")
	if !parsed.Metadata.HasErrors {
		t.Fatal("fixture must carry a parse error")
	}
	q := FromParsed(parsed, Meta{OwnerID: "o"})
	if len(q.ParseWarnings) != len(parsed.Metadata.ErrorMessages) {
		t.Fatalf("warnings = %v", q.ParseWarnings)
	}
}

func TestRenderTextRoundTrip(t *testing.T) {
	src := strings.Join([]string{
		"1. What is the capital of France?",
		"A) Berlin",
		"B) Paris",
		"C) Rome",
		"Answer: B",
		"Explanation: Paris has been the capital since 508.",
		"",
		"2. The earth orbits the sun.",
		"A) True",
		"B) False",
		"Answer: A",
		"",
		"3. Name the largest ocean.",
		"Answer: Pacific",
	}, "\n")
	first := parser.ParseQuizText(src)
	if first.Metadata.TotalQuestions != 3 {
		t.Fatalf("fixture parse = %+v", first.Metadata)
	}

	rendered := RenderText(FromParsed(first, Meta{OwnerID: "o"}))
	second := parser.ParseQuizText(rendered)

	if second.Metadata.HasErrors {
		t.Fatalf("re-parse errors: %v", second.Metadata.ErrorMessages)
	}
	if second.Metadata.TotalQuestions != 3 {
		t.Fatalf("re-parse count = %d", second.Metadata.TotalQuestions)
	}
	for i := range first.Questions {
		a, b := first.Questions[i], second.Questions[i]
		if a.Type != b.Type || a.CorrectAnswer != b.CorrectAnswer {
			t.Fatalf("q%d drifted: %+v vs %+v", i+1, a, b)
		}
	}
}

func TestRenderTextMultiSelect(t *testing.T) {
	q := Quiz{Questions: []Question{{
		Text:           "Pick the primary colors",
		Type:           "mcq",
		Options:        []string{"red", "green", "blue", "yellow"},
		CorrectAnswer:  "red",
		CorrectAnswers: []string{"red", "blue", "yellow"},
	}}}
	out := RenderText(q)
	if !strings.Contains(out, "Answer: A, C, D") {
		t.Fatalf("multi-select must render as letters:\n%s", out)
	}
}
