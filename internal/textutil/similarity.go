package textutil

import (
	"math"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Ratio scores the similarity of two strings from 0 to 100 based on
// Levenshtein edit distance. Identical strings score 100.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 100
	}
	dist := edlib.LevenshteinDistance(a, b)
	score := 100.0 * (1.0 - float64(dist)/float64(longest))
	if score < 0 {
		return 0
	}
	return int(math.Round(score))
}

// TokenSortRatio scores similarity after sorting the words of both strings,
// so "Lord Of The Rings, The" matches "The Lord Of The Rings".
func TokenSortRatio(a, b string) int {
	return Ratio(sortedWords(a), sortedWords(b))
}

// PartialRatio scores the best alignment of the shorter string against every
// equal-length window of the longer, so a title still matches when the other
// carries a subtitle suffix.
func PartialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == len(rb) {
		return Ratio(a, b)
	}
	shorter, longer := ra, rb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		score := Ratio(string(shorter), string(longer[i:i+len(shorter)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// DigitOnlyDifference reports whether every character present in one string
// but not the other is a digit. Titles like "Book 2" and "Book 3" differ only
// by digits and must not fuzzy-match.
func DigitOnlyDifference(a, b string) bool {
	seenA := map[rune]bool{}
	seenB := map[rune]bool{}
	for _, r := range a {
		seenA[r] = true
	}
	for _, r := range b {
		seenB[r] = true
	}
	diff := false
	for r := range seenA {
		if !seenB[r] {
			diff = true
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	for r := range seenB {
		if !seenA[r] {
			diff = true
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return diff
}

func sortedWords(s string) string {
	words := Words(s)
	sort.Strings(words)
	return strings.Join(words, " ")
}
