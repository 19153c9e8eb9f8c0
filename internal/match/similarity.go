// Package match resolves an extracted business description to one row of the
// gym registry by weighted similarity scoring.
package match

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"
)

// levenshteinRatio is 1 - editDistance/max(len(a), len(b)) over runes, so
// identical strings score 1 and fully disjoint strings score 0.
func levenshteinRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}

	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.Distance(a, b, nil)

	return 1 - float64(dist)/float64(maxLen)
}

// tokenize splits on whitespace.
func tokenize(s string) []string {
	return strings.Fields(s)
}

// jaccard is |A∩B| / |A∪B| over the two token sets, 0 when both are empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(a))
	for _, t := range a {
		setA[t] = true
	}
	setB := make(map[string]bool, len(b))
	for _, t := range b {
		setB[t] = true
	}

	inter := 0
	for t := range setA {
		if setB[t] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// tfidfCosine is the cosine similarity of TF-IDF vectors built from exactly
// the two compared strings, treating each as one document of a 2-document
// corpus. IDF is smoothed (ln(2/(1+df)) + 1) so terms present in both
// documents still contribute, and vectors are l2-normalized by construction
// of the cosine.
func tfidfCosine(a, b string) float64 {
	ta, tb := tokenize(a), tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	tfA := termFreq(ta)
	tfB := termFreq(tb)

	var dot, na, nb float64
	seen := make(map[string]bool, len(tfA)+len(tfB))
	for _, term := range append(ta, tb...) {
		if seen[term] {
			continue
		}
		seen[term] = true

		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		idf := math.Log(2/(1+float64(df))) + 1

		wa := float64(tfA[term]) * idf
		wb := float64(tfB[term]) * idf
		dot += wa * wb
		na += wa * wa
		nb += wb * wb
	}
	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func termFreq(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}

	return tf
}
