package quiz

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/quizforge/quizforge/internal/db"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "quizforge_test.db")
	h, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { h.Close() })
	return NewSQLStore(h, "sqlite")
}

func TestSQLStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	q := Quiz{
		ID:      "quiz-1",
		OwnerID: "alice",
		Title:   "History",
		Questions: []Question{{
			ID:            "q1",
			Order:         1,
			Text:          "Who wrote the Iliad?",
			Type:          "shortAnswer",
			CorrectAnswer: "Homer",
		}},
		ParseWarnings: []string{"Q1: something odd"},
		CreatedAt:     42,
	}
	if err := s.PutQuiz(q); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetQuiz("quiz-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "History" || got.QuestionCount != 1 {
		t.Fatalf("got %+v", got)
	}
	if got.Questions[0].CorrectAnswer != "Homer" {
		t.Fatalf("questions = %+v", got.Questions)
	}
	if len(got.ParseWarnings) != 1 {
		t.Fatalf("warnings = %v", got.ParseWarnings)
	}

	// upsert replaces content under the same id
	q.Title = "History II"
	if err := s.PutQuiz(q); err != nil {
		t.Fatal(err)
	}
	got, err = s.GetQuiz("quiz-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "History II" {
		t.Fatalf("title after upsert = %q", got.Title)
	}
}

func TestSQLStoreNotFoundAndDelete(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetQuiz("absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}

	if err := s.PutQuiz(Quiz{ID: "q", OwnerID: "alice", Title: "t", Questions: []Question{}}); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteQuiz("q", "mallory"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner delete: %v", err)
	}
	if err := s.DeleteQuiz("q", "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetQuiz("q"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete: %v", err)
	}
}

func TestSQLStoreListByOwner(t *testing.T) {
	s := openTestStore(t)
	for _, q := range []Quiz{
		{ID: "a", OwnerID: "alice", Title: "old", Questions: []Question{}, CreatedAt: 100},
		{ID: "b", OwnerID: "alice", Title: "new", Questions: []Question{}, CreatedAt: 200},
		{ID: "c", OwnerID: "bob", Title: "other", Questions: []Question{}, CreatedAt: 300},
	} {
		if err := s.PutQuiz(q); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.ListQuizzesByOwner("alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("list = %+v", got)
	}
}
