package parser

import "fmt"

type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "trueFalse"
	TypeShortAnswer QuestionType = "shortAnswer"
)

// ParsedQuestion is one fully validated question. For mcq, CorrectAnswer
// equals one entry of Options (case-insensitively) and len(Options) >= 2.
// For trueFalse, Options is exactly ["True","False"].
type ParsedQuestion struct {
	ID             string       `json:"id"`
	Text           string       `json:"text"`
	Type           QuestionType `json:"type"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswer  string       `json:"correct_answer"`
	CorrectAnswers []string     `json:"correct_answers,omitempty"`
	Explanation    string       `json:"explanation,omitempty"`
}

// ValidationError is accumulated, never thrown. Question is the 1-based
// ordinal of the question it refers to; Line is the source line when known.
type ValidationError struct {
	Question int    `json:"question"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("Q%d: %s", e.Question, e.Message)
}

type ParseMetadata struct {
	TotalQuestions int      `json:"total_questions"`
	HasErrors      bool     `json:"has_errors"`
	ErrorMessages  []string `json:"error_messages,omitempty"`
}

type ParsedQuiz struct {
	Questions []ParsedQuestion `json:"questions"`
	Metadata  ParseMetadata    `json:"metadata"`
}

// FormatGuess is advisory only; it never gates parsing.
type FormatGuess struct {
	Format          string   `json:"format"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations,omitempty"`
}

const (
	FormatNumbered           = "numbered"
	FormatCaseStudyInline    = "case_study_inline"
	FormatCaseStudySeparated = "case_study_separated"
	FormatUnnumbered         = "unnumbered"
	FormatUnknown            = "unknown"
)
