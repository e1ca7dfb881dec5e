package ontology

import (
	"fmt"
	"strings"

	"github.com/acarerdinc/relevia/internal/questiongen"
	"github.com/acarerdinc/relevia/internal/store"
)

var stopWords = map[string]bool{
	"of": true, "and": true, "the": true, "in": true, "for": true,
	"with": true, "to": true, "a": true, "an": true, "on": true,
	"at": true, "by": true,
}

// ValidateCandidates checks a candidate subtopic set for MECE
// violations against its parent. An empty result means the set is
// acceptable. Overlap is judged on normalized core concepts, never on
// raw substring containment: terms shared with the parent's own name
// are qualifiers, not overlap.
func ValidateCandidates(parent *store.Topic, cands []questiongen.TopicCandidate) []string {
	var violations []string

	if len(cands) < 2 {
		violations = append(violations, "insufficient subtopics for comprehensive coverage")
		return violations
	}

	parentTerms := nameTerms(parent.Name, nil)

	seen := make(map[string]bool, len(cands))
	cores := make([]map[string]bool, len(cands))
	for i, c := range cands {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if key == strings.ToLower(parent.Name) {
			violations = append(violations, fmt.Sprintf("candidate %q duplicates the parent topic", c.Name))
		}
		if seen[key] {
			violations = append(violations, fmt.Sprintf("duplicate candidate %q", c.Name))
		}
		seen[key] = true
		cores[i] = nameTerms(c.Name, parentTerms)
	}

	for i := range cands {
		for j := i + 1; j < len(cands); j++ {
			a, b := cores[i], cores[j]
			if len(a) == 0 || len(b) == 0 {
				continue
			}
			switch {
			case subset(a, b) || subset(b, a):
				violations = append(violations, fmt.Sprintf(
					"overlapping concepts: %q and %q (one subsumes the other)",
					cands[i].Name, cands[j].Name))
			case overlapRatio(a, b) > 0.6:
				violations = append(violations, fmt.Sprintf(
					"high concept overlap: %q and %q", cands[i].Name, cands[j].Name))
			}
		}
	}

	return violations
}

// nameTerms lowercases a name and strips stop words plus any excluded
// terms, returning the remaining core-concept set.
func nameTerms(name string, exclude map[string]bool) map[string]bool {
	terms := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(name)) {
		w = strings.Trim(w, ".,;:()[]{}\"'")
		if w == "" || stopWords[w] || exclude[w] {
			continue
		}
		terms[w] = true
	}
	return terms
}

// subset reports whether every term of a appears in b.
func subset(a, b map[string]bool) bool {
	if len(a) > len(b) {
		return false
	}
	for t := range a {
		if !b[t] {
			return false
		}
	}
	return true
}

// overlapRatio is the shared term count over the smaller set's size.
func overlapRatio(a, b map[string]bool) float64 {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := 0
	for t := range small {
		if large[t] {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}
