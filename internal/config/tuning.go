package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quizforge/quizforge/internal/parser"
)

// LoadTuning reads a YAML file overriding the parser's heuristic thresholds.
// The thresholds are deployment configuration, not algorithmic constants, so
// they live in a file that ops can tune against a representative corpus.
// A missing path returns the defaults.
func LoadTuning(path string) (parser.Tuning, error) {
	t := parser.DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return parser.DefaultTuning(), fmt.Errorf("parse tuning file: %w", err)
	}
	if err := validateTuning(t); err != nil {
		return parser.DefaultTuning(), err
	}
	return t, nil
}

func validateTuning(t parser.Tuning) error {
	inUnit := func(name string, v float64) error {
		if v <= 0 || v > 1 {
			return fmt.Errorf("tuning: %s must be in (0,1], got %v", name, v)
		}
		return nil
	}
	if err := inUnit("word_overlap_threshold", t.WordOverlapThreshold); err != nil {
		return err
	}
	if err := inUnit("fuzzy_ratio_threshold", t.FuzzyRatioThreshold); err != nil {
		return err
	}
	if err := inUnit("max_short_answer_share", t.MaxShortAnswerShare); err != nil {
		return err
	}
	if t.MaxErrorRatio < 0 {
		return fmt.Errorf("tuning: max_error_ratio must be >= 0, got %v", t.MaxErrorRatio)
	}
	if t.UnnumberedLookahead < 1 {
		return fmt.Errorf("tuning: unnumbered_lookahead must be >= 1, got %d", t.UnnumberedLookahead)
	}
	return nil
}
