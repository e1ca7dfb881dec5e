// Package diversity screens candidate questions against the concepts a
// learner has just seen, so consecutive questions on a topic do not
// hammer the same idea.
package diversity

import (
	"context"
	"fmt"
	"sort"

	"github.com/acarerdinc/relevia/internal/store"
)

// Config holds the diversity window and screening policy.
type Config struct {
	// WindowSize is how many recently shown questions count against a
	// candidate.
	WindowSize int

	// Threshold is the minimum acceptable diversity score.
	Threshold float64

	// MaxRetries bounds regeneration before the best candidate seen is
	// accepted anyway.
	MaxRetries int
}

// DefaultConfig returns the standard screening policy.
func DefaultConfig() Config {
	return Config{
		WindowSize: 5,
		Threshold:  0.3,
		MaxRetries: 3,
	}
}

// Feedback tells the generation collaborator what to avoid on a retry.
type Feedback struct {
	// Overused lists candidate concepts already present in the window.
	Overused []string

	// Alternatives lists window-free directions worth exploring,
	// drawn from earlier candidates' novel concepts.
	Alternatives []string
}

// Guard is the diversity screen. Read path is CheckDiversity; accepted
// questions are recorded through RecordShown.
type Guard struct {
	history store.ConceptHistoryRepo
	cfg     Config
}

// NewGuard creates a diversity guard over the concept history repo.
func NewGuard(history store.ConceptHistoryRepo, cfg Config) *Guard {
	return &Guard{history: history, cfg: cfg}
}

// CheckDiversity scores a candidate concept set against the learner's
// recent window: 1 means no overlap at all, 0 means every candidate
// concept was just seen. A candidate with no concepts scores 1.
func (g *Guard) CheckDiversity(ctx context.Context, userID, topicID string, candidate []string) (float64, error) {
	score, _, err := g.assess(ctx, userID, topicID, candidate)
	return score, err
}

func (g *Guard) assess(ctx context.Context, userID, topicID string, candidate []string) (float64, []string, error) {
	if len(candidate) == 0 {
		return 1, nil, nil
	}

	window, err := g.history.Recent(ctx, userID, topicID, g.cfg.WindowSize)
	if err != nil {
		return 0, nil, fmt.Errorf("load concept window %s/%s: %w", userID, topicID, err)
	}

	seen := make(map[string]bool)
	for _, set := range window {
		for _, c := range set {
			seen[c] = true
		}
	}

	var overused []string
	for _, c := range candidate {
		if seen[c] {
			overused = append(overused, c)
		}
	}
	sort.Strings(overused)

	score := 1 - float64(len(overused))/float64(len(candidate))
	return score, overused, nil
}

// RecordShown appends a shown question's concepts to the learner's
// window. Eviction is implicit: reads only consider the newest
// WindowSize entries.
func (g *Guard) RecordShown(ctx context.Context, userID, topicID, questionID string, concepts []string) error {
	return g.history.Append(ctx, &store.ConceptEntry{
		UserID:     userID,
		TopicID:    topicID,
		QuestionID: questionID,
		Concepts:   concepts,
	})
}

// GenerateFunc produces one candidate concept-bearing value. feedback
// is nil on the first attempt.
type GenerateFunc[T any] func(ctx context.Context, feedback *Feedback) (T, []string, error)

// Result carries the accepted candidate and how it was accepted.
type Result[T any] struct {
	Candidate T
	Concepts  []string
	Score     float64
	Attempts  int

	// Exhausted is set when no attempt cleared the threshold and the
	// best-scoring candidate was accepted by fallback policy. This is
	// a recorded diagnostic, not an error to the learner.
	Exhausted bool
}

// Screen drives the bounded generate-check-retry loop. It calls gen up
// to 1+MaxRetries times; the first candidate at or above the threshold
// wins. If none clears it, the best candidate seen is accepted with
// Exhausted set.
func Screen[T any](ctx context.Context, g *Guard, userID, topicID string, gen GenerateFunc[T]) (*Result[T], error) {
	var best *Result[T]
	var feedback *Feedback
	novel := make(map[string]bool)

	attempts := 1 + g.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		cand, concepts, err := gen(ctx, feedback)
		if err != nil {
			if best != nil {
				// A later generation failure does not discard an
				// acceptable earlier candidate.
				best.Exhausted = true
				return best, nil
			}
			return nil, err
		}

		score, overused, err := g.assess(ctx, userID, topicID, concepts)
		if err != nil {
			return nil, err
		}

		res := &Result[T]{
			Candidate: cand,
			Concepts:  concepts,
			Score:     score,
			Attempts:  i + 1,
		}
		if score >= g.cfg.Threshold {
			return res, nil
		}
		if best == nil || score > best.Score {
			best = res
		}

		overusedSet := make(map[string]bool, len(overused))
		for _, o := range overused {
			overusedSet[o] = true
		}
		for _, c := range concepts {
			if !overusedSet[c] {
				novel[c] = true
			}
		}
		feedback = &Feedback{
			Overused:     overused,
			Alternatives: sortedKeys(novel),
		}
	}

	best.Exhausted = true
	best.Attempts = attempts
	return best, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
