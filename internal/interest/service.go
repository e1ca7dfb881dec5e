// Package interest tracks per-topic engagement scores driven entirely
// by explicit learner signals. There is no time-based decay: a score
// moves only when the learner acts.
package interest

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/acarerdinc/relevia/internal/store"
)

// Signal is a behavioral event that nudges the interest score.
type Signal string

const (
	SignalCorrect   Signal = "correct"
	SignalIncorrect Signal = "incorrect"
	SignalTeachMe   Signal = "teach_me"
	SignalSkip      Signal = "skip"
)

// Config holds the per-signal deltas. Scores are clamped to [0,1]
// after every application.
type Config struct {
	CorrectDelta   float64
	IncorrectDelta float64
	TeachMeDelta   float64
	SkipDelta      float64

	// NeutralScore seeds a fresh record.
	NeutralScore float64

	// UpdateRetries bounds the optimistic write loop.
	UpdateRetries int

	// RecentKeyLimit is how many applied event keys a record keeps
	// for retry deduplication. Zero means the default.
	RecentKeyLimit int
}

const defaultRecentKeyLimit = 16

func (c Config) recentKeyLimit() int {
	if c.RecentKeyLimit > 0 {
		return c.RecentKeyLimit
	}
	return defaultRecentKeyLimit
}

// DefaultConfig returns the standard signal deltas.
func DefaultConfig() Config {
	return Config{
		CorrectDelta:   0.45,
		IncorrectDelta: -0.05,
		TeachMeDelta:   0.15,
		SkipDelta:      -0.40,
		NeutralScore:   0.5,
		UpdateRetries:  5,
		RecentKeyLimit: defaultRecentKeyLimit,
	}
}

func (c Config) delta(sig Signal) (float64, error) {
	switch sig {
	case SignalCorrect:
		return c.CorrectDelta, nil
	case SignalIncorrect:
		return c.IncorrectDelta, nil
	case SignalTeachMe:
		return c.TeachMeDelta, nil
	case SignalSkip:
		return c.SkipDelta, nil
	default:
		return 0, fmt.Errorf("unknown interest signal %q", sig)
	}
}

// Service is the interest tracker. It exclusively owns InterestRecord
// writes.
type Service struct {
	interests store.InterestRepo
	cfg       Config
}

// NewService creates an interest tracker over the given repo.
func NewService(interests store.InterestRepo, cfg Config) *Service {
	return &Service{interests: interests, cfg: cfg}
}

// ApplySignal applies one behavioral signal and returns the new score.
//
// eventKey identifies the logical event (question id plus action).
// A retried transport request carries the same key and is a no-op, so
// the same answer never moves the score twice. The record remembers
// the last RecentKeyLimit keys, so a delayed retry stays a no-op even
// when other signals landed in between.
func (s *Service) ApplySignal(ctx context.Context, userID, topicID string, sig Signal, eventKey string) (float64, error) {
	delta, err := s.cfg.delta(sig)
	if err != nil {
		return 0, err
	}

	for attempt := 0; attempt < s.cfg.UpdateRetries; attempt++ {
		rec, err := s.getOrCreate(ctx, userID, topicID)
		if err != nil {
			return 0, err
		}

		if eventKey != "" && slices.Contains(rec.RecentEventKeys, eventKey) {
			return rec.Score, nil
		}

		rec.Score = clamp(rec.Score+delta, 0, 1)
		if eventKey != "" {
			rec.RecentEventKeys = append(rec.RecentEventKeys, eventKey)
			if n := len(rec.RecentEventKeys) - s.cfg.recentKeyLimit(); n > 0 {
				rec.RecentEventKeys = rec.RecentEventKeys[n:]
			}
		}

		err = s.interests.Update(ctx, rec)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return rec.Score, nil
	}
	return 0, fmt.Errorf("apply %s signal %s/%s: %w", sig, userID, topicID, store.ErrVersionConflict)
}

// Score returns the learner's interest in a topic, or the neutral
// midpoint when no record exists yet.
func (s *Service) Score(ctx context.Context, userID, topicID string) (float64, error) {
	rec, err := s.interests.Get(ctx, userID, topicID)
	if errors.Is(err, store.ErrNotFound) {
		return s.cfg.NeutralScore, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.Score, nil
}

// ForUser returns interest scores keyed by topic id. Topics without a
// record are simply absent; callers treat them as neutral.
func (s *Service) ForUser(ctx context.Context, userID string) (map[string]float64, error) {
	records, err := s.interests.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(records))
	for _, rec := range records {
		out[rec.TopicID] = rec.Score
	}
	return out, nil
}

func (s *Service) getOrCreate(ctx context.Context, userID, topicID string) (*store.Interest, error) {
	rec, err := s.interests.Get(ctx, userID, topicID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	rec = &store.Interest{
		UserID:  userID,
		TopicID: topicID,
		Score:   s.cfg.NeutralScore,
	}
	if createErr := s.interests.Create(ctx, rec); createErr != nil {
		if existing, getErr := s.interests.Get(ctx, userID, topicID); getErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return rec, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
