package mastery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acarerdinc/relevia/internal/store"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// InvalidTopicStateError reports an answer or unlock against a topic
// the engine cannot resolve. Not retried; surfaced to the caller.
type InvalidTopicStateError struct {
	TopicID string
	Reason  string
}

func (e *InvalidTopicStateError) Error() string {
	return fmt.Sprintf("invalid topic state for %q: %s", e.TopicID, e.Reason)
}

// Config holds the advancement thresholds.
type Config struct {
	// AdvanceThresholds maps each level to the number of correct
	// answers at that level required before an advance is considered.
	// The ladder gets steeper as the learner climbs.
	AdvanceThresholds map[Level]int

	// AccuracyThreshold is the minimum running accuracy on the topic
	// for an advance to fire.
	AccuracyThreshold float64

	// SkillStep scales how far one answer moves the skill estimate.
	SkillStep float64

	// UpdateRetries bounds the optimistic write loop.
	UpdateRetries int
}

// DefaultConfig returns the standard advancement thresholds.
func DefaultConfig() Config {
	return Config{
		AdvanceThresholds: map[Level]int{
			LevelNovice:     3,
			LevelCompetent:  5,
			LevelProficient: 8,
			LevelExpert:     10,
		},
		AccuracyThreshold: 0.6,
		SkillStep:         0.2,
		UpdateRetries:     5,
	}
}

// threshold returns the correct-answer requirement for a level.
func (c Config) threshold(l Level) int {
	if n, ok := c.AdvanceThresholds[l]; ok {
		return n
	}
	return 3
}

// Event describes the outcome of one recorded answer.
type Event struct {
	UserID             string
	TopicID            string
	Correct            bool
	Advanced           bool
	FromLevel          Level
	ToLevel            Level
	QuestionsAnswered  int
	CorrectAnswers     int
	Accuracy           float64
	SkillEstimate      float64
	CanUnlockSubtopics bool
}

// Service advances the per-topic mastery state machine. It exclusively
// owns ProgressRecord writes triggered by answers.
type Service struct {
	topics   store.TopicRepo
	progress store.ProgressRepo
	events   store.EventRepo
	cfg      Config
}

// NewService creates a mastery tracker over the given repos.
func NewService(topics store.TopicRepo, progress store.ProgressRepo, events store.EventRepo, cfg Config) *Service {
	return &Service{topics: topics, progress: progress, events: events, cfg: cfg}
}

// RecordAnswer applies one answer to the learner's progress on a topic
// and returns an event describing counters and any level advance.
//
// The write is an optimistic read-modify-write: on a version conflict
// the whole mutation is recomputed against the fresh record, so two
// concurrent answers both land and neither increment is lost.
func (s *Service) RecordAnswer(ctx context.Context, userID, topicID string, correct bool, difficulty int, sessionID string) (*Event, error) {
	if _, err := s.topics.Get(ctx, topicID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &InvalidTopicStateError{TopicID: topicID, Reason: "unknown topic"}
		}
		return nil, err
	}

	var ev *Event
	for attempt := 0; attempt < s.cfg.UpdateRetries; attempt++ {
		p, err := s.getOrCreate(ctx, userID, topicID)
		if err != nil {
			return nil, err
		}

		ev = s.apply(p, correct, difficulty)

		err = s.progress.Update(ctx, p)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if ev.Advanced && s.events != nil {
			if err := s.events.AppendMasteryEvent(ctx, store.MasteryEventData{
				UserID:    userID,
				TopicID:   topicID,
				FromLevel: string(ev.FromLevel),
				ToLevel:   string(ev.ToLevel),
				Accuracy:  ev.Accuracy,
				SessionID: sessionID,
			}); err != nil {
				return nil, fmt.Errorf("append mastery event: %w", err)
			}
		}
		return ev, nil
	}
	return nil, fmt.Errorf("record answer %s/%s: %w", userID, topicID, store.ErrVersionConflict)
}

// apply mutates p in place with one answer and returns the event.
func (s *Service) apply(p *store.Progress, correct bool, difficulty int) *Event {
	from := Level(p.MasteryLevel)
	if !Valid(from) {
		from = LevelNovice
		p.MasteryLevel = string(from)
	}

	p.QuestionsAnswered++
	if correct {
		p.CorrectAnswers++
		if p.CorrectByLevel == nil {
			p.CorrectByLevel = map[string]int{}
		}
		p.CorrectByLevel[string(from)]++
	}

	// Harder questions move the estimate more when right and less
	// when wrong; the reverse for easy ones.
	d := clamp(float64(difficulty)/10, 0, 1)
	if correct {
		p.SkillEstimate = clamp(p.SkillEstimate+s.cfg.SkillStep*d, 0, 1)
	} else {
		p.SkillEstimate = clamp(p.SkillEstimate-s.cfg.SkillStep*(1-d), 0, 1)
	}

	accuracy := float64(p.CorrectAnswers) / float64(p.QuestionsAnswered)
	p.Confidence = min(accuracy, p.SkillEstimate)

	to := from
	if correct &&
		p.CorrectByLevel[string(from)] >= s.cfg.threshold(from) &&
		accuracy >= s.cfg.AccuracyThreshold {
		to = Next(from)
	}
	if to != from {
		p.MasteryLevel = string(to)
	}
	if Rank(Level(p.MasteryLevel)) >= Rank(LevelCompetent) {
		p.CanUnlockSubtopics = true
	}

	return &Event{
		UserID:             p.UserID,
		TopicID:            p.TopicID,
		Correct:            correct,
		Advanced:           to != from,
		FromLevel:          from,
		ToLevel:            to,
		QuestionsAnswered:  p.QuestionsAnswered,
		CorrectAnswers:     p.CorrectAnswers,
		Accuracy:           accuracy,
		SkillEstimate:      p.SkillEstimate,
		CanUnlockSubtopics: p.CanUnlockSubtopics,
	}
}

// RecordSelection bumps the topic's selection counter and last-seen
// time after the bandit serves it.
func (s *Service) RecordSelection(ctx context.Context, userID, topicID string) error {
	for attempt := 0; attempt < s.cfg.UpdateRetries; attempt++ {
		p, err := s.getOrCreate(ctx, userID, topicID)
		if err != nil {
			return err
		}
		p.SelectionCount++
		now := nowFunc()
		p.LastSeenAt = &now

		err = s.progress.Update(ctx, p)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		return err
	}
	return fmt.Errorf("record selection %s/%s: %w", userID, topicID, store.ErrVersionConflict)
}

// Progress returns the learner's progress on a topic, or a fresh
// zero-value view when none exists yet.
func (s *Service) Progress(ctx context.Context, userID, topicID string) (*store.Progress, error) {
	p, err := s.progress.Get(ctx, userID, topicID)
	if errors.Is(err, store.ErrNotFound) {
		return &store.Progress{
			UserID:       userID,
			TopicID:      topicID,
			MasteryLevel: string(LevelNovice),
		}, nil
	}
	return p, err
}

// ForUser returns every progress record the learner has.
func (s *Service) ForUser(ctx context.Context, userID string) ([]*store.Progress, error) {
	return s.progress.ForUser(ctx, userID)
}

func (s *Service) getOrCreate(ctx context.Context, userID, topicID string) (*store.Progress, error) {
	p, err := s.progress.Get(ctx, userID, topicID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	p = &store.Progress{
		UserID:       userID,
		TopicID:      topicID,
		MasteryLevel: string(LevelNovice),
		Unlocked:     true,
	}
	if createErr := s.progress.Create(ctx, p); createErr != nil {
		// A concurrent turn may have created it first.
		if existing, getErr := s.progress.Get(ctx, userID, topicID); getErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return p, nil
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
