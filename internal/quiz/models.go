package quiz

// Question is the externally persisted question shape. Order is 1-based.
type Question struct {
	ID             string   `json:"id"`
	Order          int      `json:"order"`
	Text           string   `json:"text"`
	Type           string   `json:"type"` // mcq, trueFalse, shortAnswer
	Options        []string `json:"options,omitempty"`
	CorrectAnswer  string   `json:"correct_answer"`
	CorrectAnswers []string `json:"correct_answers,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}

// Quiz is the externally persisted quiz record.
type Quiz struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Difficulty    string     `json:"difficulty,omitempty"`
	FeedbackMode  string     `json:"feedback_mode,omitempty"`
	OwnerID       string     `json:"owner_id"`
	Questions     []Question `json:"questions"`
	QuestionCount int        `json:"question_count"`
	ParseWarnings []string   `json:"parse_warnings,omitempty"`
	CreatedAt     int64      `json:"created_at,omitempty"`
}

// Meta is the caller-supplied context for conversion; OwnerID comes from the
// authenticated subject, never from the request body.
type Meta struct {
	Title        string
	Difficulty   string
	FeedbackMode string
	OwnerID      string
}
