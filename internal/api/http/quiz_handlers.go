package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/parser"
	"github.com/quizforge/quizforge/internal/quiz"
)

// CreateQuizHandler parses the submitted text, converts it with the
// authenticated subject as owner, and stores the record. Parse diagnostics
// ride along inside the record; only a parse that recovers zero questions
// is rejected outright.
func CreateQuizHandler(p *parser.Parser, store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text         string `json:"text"`
			Title        string `json:"title"`
			Difficulty   string `json:"difficulty"`
			FeedbackMode string `json:"feedback_mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Text == "" || req.Title == "" {
			http.Error(w, "text and title required", 400)
			return
		}
		parsed := p.Parse(req.Text)
		if parsed.Metadata.TotalQuestions == 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error":  "no questions could be recovered from the text",
				"errors": parsed.Metadata.ErrorMessages,
			})
			return
		}
		q := quiz.FromParsed(parsed, quiz.Meta{
			Title:        req.Title,
			Difficulty:   req.Difficulty,
			FeedbackMode: req.FeedbackMode,
			OwnerID:      auth.SubjectFromContext(r.Context()),
		})
		if err := store.PutQuiz(q); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(q)
	}
}

func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := store.GetQuiz(id)
		if err != nil {
			status := 500
			if errors.Is(err, quiz.ErrNotFound) {
				status = 404
			}
			http.Error(w, err.Error(), status)
			return
		}
		_ = json.NewEncoder(w).Encode(q)
	}
}

func ListQuizzesHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := auth.SubjectFromContext(r.Context())
		qs, err := store.ListQuizzesByOwner(owner)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(qs)
	}
}

func DeleteQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		owner := auth.SubjectFromContext(r.Context())
		if err := store.DeleteQuiz(id, owner); err != nil {
			status := 500
			if errors.Is(err, quiz.ErrNotFound) {
				status = 404
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportQuizHandler serves the canonical plain-text rendering, which the
// parser round-trips without errors.
func ExportQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := store.GetQuiz(id)
		if err != nil {
			status := 500
			if errors.Is(err, quiz.ErrNotFound) {
				status = 404
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(quiz.RenderText(q)))
	}
}
