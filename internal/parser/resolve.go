package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// resolveAnswer reconciles a raw answer token against the option list using
// a strict cascade, stopping at the first success:
//
//  1. exact case-insensitive match
//  2. match after normalizing both sides
//  3. bare letter indexed into the option list
//  4. "<letter>) text" with the prefix stripped, normalized retry
//  5. substring containment between normalized forms
//  6. prefix/suffix containment
//  7. word-overlap (or edit-distance ratio) above the tuned threshold
//
// On failure the original token is returned with ok=false; the caller keeps
// the question and records a reconciliation error.
func resolveAnswer(raw string, options []string, t Tuning) (string, bool) {
	token := strings.TrimSpace(raw)
	if token == "" || len(options) == 0 {
		return token, false
	}

	// 1. exact
	for _, opt := range options {
		if strings.EqualFold(token, strings.TrimSpace(opt)) {
			return opt, true
		}
	}

	// 2. normalized
	normTok := normalizeToken(token)
	if normTok != "" {
		for _, opt := range options {
			if normalizeToken(opt) == normTok {
				return opt, true
			}
		}
	}

	// 3. bare letter index
	if m := answerBareLetterRe.FindStringSubmatch(token); m != nil {
		if i := letterIndex(m[1]); i >= 0 && i < len(options) {
			return options[i], true
		}
	}

	// 4. letter-prefixed text
	if stripped := letterPrefixRe.ReplaceAllString(token, ""); stripped != token {
		normStripped := normalizeToken(stripped)
		for _, opt := range options {
			if normStripped != "" && normalizeToken(opt) == normStripped {
				return opt, true
			}
		}
		normTok = normStripped
	}

	if normTok == "" {
		return raw, false
	}

	// 5. substring containment (guarded so single characters don't match)
	if len(normTok) >= 4 {
		for _, opt := range options {
			no := normalizeToken(opt)
			if strings.Contains(no, normTok) || strings.Contains(normTok, no) {
				return opt, true
			}
		}
	}

	// 6. prefix/suffix
	if len(normTok) >= 3 {
		for _, opt := range options {
			no := normalizeToken(opt)
			if no == "" {
				continue
			}
			if strings.HasPrefix(no, normTok) || strings.HasSuffix(no, normTok) {
				return opt, true
			}
		}
	}

	// 7. word overlap / fuzzy ratio, best option wins
	bestScore, bestOpt := 0.0, ""
	for _, opt := range options {
		no := normalizeToken(opt)
		score := wordOverlap(normTok, no)
		if r := editRatio(normTok, no); r >= t.FuzzyRatioThreshold && r > score {
			score = r
		}
		if score > bestScore {
			bestScore, bestOpt = score, opt
		}
	}
	if bestScore >= t.WordOverlapThreshold {
		return bestOpt, true
	}
	return raw, false
}

// ResolveAnswer is the exported cascade with default tuning, used by the
// converter's final reconciliation pass.
func ResolveAnswer(raw string, options []string) (string, bool) {
	return resolveAnswer(raw, options, DefaultTuning())
}

var letterPrefixRe = regexp.MustCompile(`^\(?[A-Ha-h][\).:\-]\s+`)

// normalizeToken casefolds, drops punctuation and collapses whitespace.
func normalizeToken(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsPunct(r):
			// skip
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}

// wordOverlap scores shared significant words (len > 3) against the smaller
// word set, 0..1.
func wordOverlap(a, b string) float64 {
	aw := significantWords(a)
	bw := significantWords(b)
	if len(aw) == 0 || len(bw) == 0 {
		return 0
	}
	shared := 0
	for w := range aw {
		if bw[w] {
			shared++
		}
	}
	denom := len(aw)
	if len(bw) < denom {
		denom = len(bw)
	}
	return float64(shared) / float64(denom)
}

func significantWords(s string) map[string]bool {
	out := map[string]bool{}
	for _, w := range strings.Fields(s) {
		if len(w) > 3 {
			out[w] = true
		}
	}
	return out
}

// editRatio is 1 - dist/maxLen, so 1.0 means identical.
func editRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	return 1 - float64(levenshtein(a, b))/float64(max)
}

// levenshtein computes edit distance (insertion, deletion, substitution cost 1).
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			ins := dp[j] + 1
			del := dp[j-1] + 1
			sub := prev + cost
			dp[j] = min3(ins, del, sub)
			prev = tmp
		}
	}
	return dp[m]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
