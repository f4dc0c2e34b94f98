package parser

import "testing"

func TestResolveAnswerCascade(t *testing.T) {
	tuning := DefaultTuning()
	options := []string{"London", "Paris", "Berlin", "Madrid"}

	tests := []struct {
		name string
		raw  string
		opts []string
		want string
		ok   bool
	}{
		{"exact", "Paris", options, "Paris", true},
		{"exact case-insensitive", "paris", options, "Paris", true},
		{"normalized punctuation", "Paris!", options, "Paris", true},
		{"bare letter", "C", options, "Berlin", true},
		{"parenthesized letter", "(b)", options, "Paris", true},
		{"letter prefix with text", "B) Paris", options, "Paris", true},
		{"letter prefix dot", "d. Madrid", options, "Madrid", true},
		{"substring", "mitochondria", []string{"The mitochondria of the cell", "The nucleus"}, "The mitochondria of the cell", true},
		{"prefix", "Ber", options, "Berlin", true},
		{"word overlap", "powerhouse of cell", []string{"the powerhouse of the cell", "a storage vesicle"}, "the powerhouse of the cell", true},
		{"out of range letter", "F", options, "F", false},
		{"no match", "Rome", options, "Rome", false},
		{"empty token", "", options, "", false},
		{"no options", "Paris", nil, "Paris", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveAnswer(tt.raw, tt.opts, tuning)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("resolveAnswer(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveAnswerPrefersEarlierSteps(t *testing.T) {
	// "A" is both a literal option and a letter; the exact match must win
	// before letter indexing could point somewhere else.
	opts := []string{"B", "A"}
	got, ok := resolveAnswer("A", opts, DefaultTuning())
	if !ok || got != "A" {
		t.Fatalf("got (%q, %v), want exact match (\"A\", true)", got, ok)
	}
}

func TestNormalizeToken(t *testing.T) {
	cases := map[string]string{
		"  Hello,   World! ": "hello world",
		"B) Some text.":      "b some text",
		"ALL CAPS":           "all caps",
		"...":                "",
	}
	for in, want := range cases {
		if got := normalizeToken(in); got != want {
			t.Errorf("normalizeToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEditRatio(t *testing.T) {
	if r := editRatio("kitten", "kitten"); r != 1 {
		t.Fatalf("identical strings ratio = %v, want 1", r)
	}
	if r := editRatio("kitten", "sitten"); r <= 0.8 || r >= 0.9 {
		t.Fatalf("one edit over six runes = %v, want ~0.833", r)
	}
	if r := editRatio("", "anything"); r != 0 {
		t.Fatalf("empty side ratio = %v, want 0", r)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
