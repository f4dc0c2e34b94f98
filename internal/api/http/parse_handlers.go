package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/parser"
)

// ParsePreviewHandler parses without persisting, so authors can inspect the
// result (including diagnostics) before committing a quiz.
func ParsePreviewHandler(p *parser.Parser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		_ = json.NewEncoder(w).Encode(p.Parse(req.Text))
	}
}

// DetectFormatHandler is advisory: it reports the layout the text most
// resembles without running the strategy cascade.
func DetectFormatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		_ = json.NewEncoder(w).Encode(parser.DetectFormat(req.Text))
	}
}
