package parser

// Tuning holds the heuristic thresholds the parser uses. The defaults were
// calibrated against a corpus of LLM-generated quizzes; deployments can
// override them (see internal/config).
type Tuning struct {
	// WordOverlapThreshold is the minimum shared-word coverage for the
	// last-resort answer match (0..1].
	WordOverlapThreshold float64 `yaml:"word_overlap_threshold"`
	// FuzzyRatioThreshold is the minimum normalized edit-distance
	// similarity accepted alongside word overlap (0..1].
	FuzzyRatioThreshold float64 `yaml:"fuzzy_ratio_threshold"`
	// UnnumberedLookahead is how many lines ahead to scan for option
	// markers before promoting an unnumbered question line.
	UnnumberedLookahead int `yaml:"unnumbered_lookahead"`
	// MaxErrorRatio is the quality gate's error-per-question ceiling.
	MaxErrorRatio float64 `yaml:"max_error_ratio"`
	// MaxShortAnswerShare rejects a result whose shortAnswer fraction
	// exceeds it, which usually means option detection failed.
	MaxShortAnswerShare float64 `yaml:"max_short_answer_share"`
}

func DefaultTuning() Tuning {
	return Tuning{
		WordOverlapThreshold: 0.6,
		FuzzyRatioThreshold:  0.85,
		UnnumberedLookahead:  10,
		MaxErrorRatio:        0.3,
		MaxShortAnswerShare:  0.8,
	}
}

type Option func(*Parser)

func WithTuning(t Tuning) Option { return func(p *Parser) { p.tuning = t } }

// Parser runs the strategy cascade with a fixed tuning.
type Parser struct {
	tuning Tuning
}

func New(opts ...Option) *Parser {
	p := &Parser{tuning: DefaultTuning()}
	for _, o := range opts {
		o(p)
	}
	return p
}
