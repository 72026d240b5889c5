package identity

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Scorer measures how far apart two normalized strings are.
// Distance must be within [0,1]: 0 is identical, 1 shares nothing.
type Scorer interface {
	Distance(a, b string) float64
}

// LevenshteinScorer is edit distance divided by the longer string's rune count.
type LevenshteinScorer struct{}

// Distance implements Scorer.
func (LevenshteinScorer) Distance(a, b string) float64 {
	if a == b {
		return 0
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// TokenSetScorer is the Jaccard distance between the word sets of a and b.
// Word order and repeated words do not matter.
type TokenSetScorer struct{}

// Distance implements Scorer.
func (TokenSetScorer) Distance(a, b string) float64 {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 0
	}

	shared := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return 1 - float64(shared)/float64(union)
}

func tokenSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range domain.NameTokens(s) {
		out[tok] = struct{}{}
	}
	return out
}

// NewScorer returns the scorer registered under name.
func NewScorer(name string) (Scorer, error) {
	switch name {
	case "", "levenshtein":
		return LevenshteinScorer{}, nil
	case "token_set":
		return TokenSetScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown identity scorer %q", name)
	}
}
