package parser

import (
	"reflect"
	"testing"
)

func TestNormalizeTextGlyphs(t *testing.T) {
	in := "“Quoted” ‘text’ — dashed – here…"
	want := `"Quoted" 'text' - dashed - here...`
	if got := normalizeText(in); got != want {
		t.Fatalf("normalizeText(%q) = %q, want %q", in, got, want)
	}
}

func TestNormalizeTextEmphasis(t *testing.T) {
	cases := map[string]string{
		"**Answer:** B":       "Answer: B",
		"__bold__ and *em*":   "bold and em",
		"1. **What is 2+2?**": "1. What is 2+2?",
		"no markup stays put": "no markup stays put",
	}
	for in, want := range cases {
		if got := normalizeText(in); got != want {
			t.Errorf("normalizeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeTextAnswerArrow(t *testing.T) {
	cases := map[string]string{
		"Answer => B":         "Answer: B",
		"ans=> Paris":         "ans: Paris",
		"Correct Answer => C": "Correct Answer: C",
	}
	for in, want := range cases {
		if got := normalizeText(in); got != want {
			t.Errorf("normalizeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeLines(t *testing.T) {
	in := "first\r\n\r\n  second  \rthird\n"
	got := normalizeLines(in)
	want := []line{
		{text: "first", num: 1},
		{text: "second", num: 3},
		{text: "third", num: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeLines = %+v, want %+v", got, want)
	}
}

func TestNormalizeLinesEmpty(t *testing.T) {
	if got := normalizeLines(""); len(got) != 0 {
		t.Fatalf("expected no lines, got %+v", got)
	}
	if got := normalizeLines("\n\n  \n"); len(got) != 0 {
		t.Fatalf("expected no lines for blank input, got %+v", got)
	}
}
