package classifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Scorer rates how well query matches choice on a 0..100 scale.
type Scorer func(query, choice string) float64

const (
	ScorerPartial  = "partial"
	ScorerTokenSet = "token_set"
)

var scorers = map[string]Scorer{
	ScorerPartial:  PartialRatio,
	ScorerTokenSet: TokenSetRatio,
}

// ScorerByName resolves a configured scorer name. Empty selects partial.
func ScorerByName(name string) (Scorer, error) {
	if name == "" {
		return PartialRatio, nil
	}
	s, ok := scorers[name]
	if !ok {
		return nil, fmt.Errorf("unknown scorer %q", name)
	}
	return s, nil
}

// Ratio is the normalized indel similarity: 200*LCS / (len(a)+len(b)),
// counted in runes.
func Ratio(a, b string) float64 {
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 100
	}
	return 200 * float64(edlib.LCS(a, b)) / float64(total)
}

// PartialRatio is the best Ratio between the shorter string and any
// same-length window of the longer one, including windows clipped at
// either end.
func PartialRatio(a, b string) float64 {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	if len(s1) == 0 {
		if len(s2) == 0 {
			return 100
		}
		return 0
	}

	score := partialWindows(s1, s2)
	if score < 100 && len(s1) == len(s2) {
		score = max(score, partialWindows(s2, s1))
	}
	return score
}

func partialWindows(needle, hay []rune) float64 {
	m, n := len(needle), len(hay)
	chars := make(map[rune]struct{}, m)
	for _, r := range needle {
		chars[r] = struct{}{}
	}
	query := string(needle)
	best := 0.0

	try := func(window []rune) bool {
		if s := Ratio(query, string(window)); s > best {
			best = s
		}
		return best == 100
	}

	// A window can only beat the current best if its boundary character
	// occurs in the needle.
	for i := 1; i < m; i++ {
		if _, ok := chars[hay[i-1]]; ok && try(hay[:i]) {
			return best
		}
	}
	for i := 0; i <= n-m; i++ {
		if _, ok := chars[hay[i+m-1]]; ok && try(hay[i:i+m]) {
			return best
		}
	}
	for i := n - m + 1; i < n; i++ {
		if _, ok := chars[hay[i]]; ok && try(hay[i:]) {
			return best
		}
	}
	return best
}

// TokenSetRatio compares the shared and differing word sets of a and b,
// ignoring word order and repetition.
func TokenSetRatio(a, b string) float64 {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for t := range ta {
		if _, ok := tb[t]; ok {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tb {
		if _, ok := ta[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	if len(common) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	sect := joinSorted(common)
	combinedA := strings.TrimSpace(sect + " " + joinSorted(onlyA))
	combinedB := strings.TrimSpace(sect + " " + joinSorted(onlyB))

	best := Ratio(combinedA, combinedB)
	if sect != "" {
		best = max(best, Ratio(sect, combinedA), Ratio(sect, combinedB))
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range strings.Fields(s) {
		set[f] = struct{}{}
	}
	return set
}

func joinSorted(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
