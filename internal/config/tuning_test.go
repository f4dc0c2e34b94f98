package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quizforge/quizforge/internal/parser"
)

func writeTuningFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTuningEmptyPathReturnsDefaults(t *testing.T) {
	got, err := LoadTuning("")
	if err != nil {
		t.Fatal(err)
	}
	if got != parser.DefaultTuning() {
		t.Fatalf("got %+v", got)
	}
}

func TestLoadTuningOverrides(t *testing.T) {
	path := writeTuningFile(t, "word_overlap_threshold: 0.5\nunnumbered_lookahead: 4\n")
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.WordOverlapThreshold != 0.5 || got.UnnumberedLookahead != 4 {
		t.Fatalf("got %+v", got)
	}
	// untouched fields keep their defaults
	if got.FuzzyRatioThreshold != parser.DefaultTuning().FuzzyRatioThreshold {
		t.Fatalf("got %+v", got)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadTuningRejectsUnknownField(t *testing.T) {
	path := writeTuningFile(t, "word_overlap_threshold: 0.5\nmystery_knob: 3\n")
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("unknown fields must be rejected")
	}
}

func TestLoadTuningRejectsOutOfRange(t *testing.T) {
	cases := []string{
		"word_overlap_threshold: 0\n",
		"fuzzy_ratio_threshold: 1.5\n",
		"max_short_answer_share: -0.2\n",
		"max_error_ratio: -1\n",
		"unnumbered_lookahead: 0\n",
	}
	for _, body := range cases {
		path := writeTuningFile(t, body)
		got, err := LoadTuning(path)
		if err == nil {
			t.Fatalf("want validation error for %q", body)
		}
		if got != parser.DefaultTuning() {
			t.Fatalf("invalid file must fall back to defaults, got %+v", got)
		}
	}
}
