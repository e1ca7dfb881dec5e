package ontology

import (
	"strings"
	"testing"

	"github.com/acarerdinc/relevia/internal/questiongen"
	"github.com/acarerdinc/relevia/internal/store"
)

func parentML() *store.Topic {
	return &store.Topic{TopicID: "machine-learning", Name: "Machine Learning"}
}

func cands(names ...string) []questiongen.TopicCandidate {
	out := make([]questiongen.TopicCandidate, len(names))
	for i, n := range names {
		out[i] = questiongen.TopicCandidate{Name: n, Description: n}
	}
	return out
}

func TestValidateCandidatesAccepts(t *testing.T) {
	v := ValidateCandidates(parentML(), cands(
		"Supervised Learning",
		"Unsupervised Learning",
		"Reinforcement Learning",
		"Learning Theory",
	))
	if len(v) != 0 {
		t.Errorf("violations = %v, want none", v)
	}
}

func TestValidateCandidatesParentQualifierException(t *testing.T) {
	// Both candidates carry the parent's name as a qualifying phrase.
	// After stripping parent terms their core concepts are disjoint,
	// so this is not an overlap.
	v := ValidateCandidates(parentML(), cands(
		"Supervised Machine Learning",
		"Unsupervised Machine Learning",
	))
	if len(v) != 0 {
		t.Errorf("violations = %v, want parent-qualifier acceptance", v)
	}
}

func TestValidateCandidatesSubsetRejected(t *testing.T) {
	v := ValidateCandidates(parentML(), cands(
		"Neural Networks",
		"Deep Neural Networks",
		"Probabilistic Models",
	))
	if len(v) == 0 {
		t.Fatal("expected subset violation")
	}
	if !strings.Contains(v[0], "subsumes") {
		t.Errorf("violation = %q", v[0])
	}
}

func TestValidateCandidatesDuplicateRejected(t *testing.T) {
	v := ValidateCandidates(parentML(), cands(
		"Optimization",
		"optimization",
		"Statistics",
	))
	found := false
	for _, viol := range v {
		if strings.Contains(viol, "duplicate") {
			found = true
		}
	}
	if !found {
		t.Errorf("violations = %v, want duplicate", v)
	}
}

func TestValidateCandidatesParentDuplicateRejected(t *testing.T) {
	v := ValidateCandidates(parentML(), cands(
		"Machine Learning",
		"Statistics",
	))
	found := false
	for _, viol := range v {
		if strings.Contains(viol, "duplicates the parent") {
			found = true
		}
	}
	if !found {
		t.Errorf("violations = %v, want parent duplicate", v)
	}
}

func TestValidateCandidatesHighOverlapRejected(t *testing.T) {
	// 2 of 2 core terms shared with the smaller set.
	v := ValidateCandidates(parentML(), cands(
		"Bayesian Model Selection",
		"Model Selection",
	))
	if len(v) == 0 {
		t.Fatal("expected overlap violation")
	}
}

func TestValidateCandidatesTooFew(t *testing.T) {
	v := ValidateCandidates(parentML(), cands("Everything"))
	if len(v) == 0 || !strings.Contains(v[0], "insufficient") {
		t.Errorf("violations = %v, want insufficient coverage", v)
	}
}
