// Package selector ranks a learner's unlocked topics and picks the one
// to serve next. Scoring is pure: callers hand in a consistent snapshot
// of per-topic statistics and the selector never touches storage.
package selector

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Strategy selects between the adaptive bandit and a fixed rotation.
// A closed set of variants behind one entry point keeps the shuffle
// and tie-break logic in a single place.
type Strategy string

const (
	// StrategyAdaptive is UCB scoring with epsilon exploration.
	StrategyAdaptive Strategy = "adaptive"

	// StrategyFixed rotates through topics by fewest selections,
	// ignoring interest and proficiency.
	StrategyFixed Strategy = "fixed"
)

// ErrNoTopics is returned when the snapshot holds no candidates.
var ErrNoTopics = errors.New("no unlocked topics to select from")

// Config holds the bandit weights.
type Config struct {
	// Epsilon is the probability of exploring uniformly among the
	// least-selected topics instead of exploiting argmax(score).
	Epsilon float64

	// ExplorationC scales the UCB confidence term.
	ExplorationC float64

	InterestWeight       float64
	ProficiencyWeight    float64
	ExplorationWeight    float64
	SpecializationWeight float64
	RecencyWeight        float64
}

// DefaultConfig returns the standard bandit weights.
func DefaultConfig() Config {
	return Config{
		Epsilon:              0.2,
		ExplorationC:         2.0,
		InterestWeight:       0.4,
		ProficiencyWeight:    0.3,
		ExplorationWeight:    0.3,
		SpecializationWeight: 0.3,
		RecencyWeight:        0.4,
	}
}

// TopicStats is one topic's snapshot entering selection.
type TopicStats struct {
	TopicID     string
	Depth       int     // 0 marks the root
	Interest    float64 // [0,1]
	Proficiency float64 // [0,1], from mastery accuracy and skill estimate
	Selections  int
	LastSeen    time.Time

	// Accuracy and QuestionsAnswered feed the specialization bonus.
	Accuracy          float64
	QuestionsAnswered int
}

// Scored pairs a topic with its computed score for inspection.
type Scored struct {
	TopicStats
	BaseReward float64
	Confidence float64
	Score      float64
}

// Selector picks the next topic. The RNG is injected so a fixed seed
// reproduces the full selection sequence.
type Selector struct {
	cfg Config
	rng *rand.Rand
}

// New creates a selector with the given weights and RNG source.
func New(cfg Config, rng *rand.Rand) *Selector {
	return &Selector{cfg: cfg, rng: rng}
}

// SelectNext picks a topic from the snapshot using the given strategy.
func (s *Selector) SelectNext(stats []TopicStats, strategy Strategy) (*Scored, error) {
	if len(stats) == 0 {
		return nil, ErrNoTopics
	}

	switch strategy {
	case StrategyFixed:
		return s.selectFixed(stats), nil
	default:
		return s.selectAdaptive(stats), nil
	}
}

// Score computes the UCB score for every topic in the snapshot without
// choosing. Exposed for dashboards and tests.
func (s *Selector) Score(stats []TopicStats) []Scored {
	total := 0
	for _, t := range stats {
		total += t.Selections
	}
	if total < 1 {
		total = 1
	}

	mostRecent := mostRecentlyActive(stats)

	scored := make([]Scored, len(stats))
	for i, t := range stats {
		selections := t.Selections
		if selections < 1 {
			selections = 1
		}

		exploration := 1 / (1 + 0.1*float64(t.Selections))
		specialization := specializationBonus(t, len(stats))
		recency := 0.0
		if mostRecent != "" && t.TopicID == mostRecent {
			recency = 1.0
		}

		base := s.cfg.InterestWeight*t.Interest +
			s.cfg.ProficiencyWeight*t.Proficiency +
			s.cfg.ExplorationWeight*exploration +
			s.cfg.SpecializationWeight*specialization +
			s.cfg.RecencyWeight*recency

		confidence := s.cfg.ExplorationC * math.Sqrt(math.Log(float64(total))/float64(selections))

		scored[i] = Scored{
			TopicStats: t,
			BaseReward: base,
			Confidence: confidence,
			Score:      base + confidence,
		}
	}
	return scored
}

// specializationBonus nudges the learner between deepening and
// consolidating. Subtopics where the learner struggles lose a little so
// practice happens at a comfortable level first; fresh subtopics with
// good performance gain the most. The root earns a small bonus until a
// foundation exists, then a penalty once the learner is ready to go
// deeper.
func specializationBonus(t TopicStats, topicCount int) float64 {
	if t.Depth > 0 {
		switch {
		case t.Accuracy < 0.6:
			return -0.1
		case t.Selections <= 3:
			return 0.3
		default:
			return 0.2
		}
	}
	if t.QuestionsAnswered < 5 {
		return 0.1
	}
	if topicCount > 1 && t.Accuracy >= 0.6 {
		return -0.2
	}
	return 0
}

func (s *Selector) selectAdaptive(stats []TopicStats) *Scored {
	scored := s.Score(stats)

	if s.rng.Float64() < s.cfg.Epsilon {
		return s.exploreLeastSelected(scored)
	}

	best := &scored[0]
	for i := 1; i < len(scored); i++ {
		if better(&scored[i], best) {
			best = &scored[i]
		}
	}
	return best
}

// exploreLeastSelected samples uniformly among the topics tied for the
// fewest selections.
func (s *Selector) exploreLeastSelected(scored []Scored) *Scored {
	minSel := scored[0].Selections
	for _, t := range scored[1:] {
		if t.Selections < minSel {
			minSel = t.Selections
		}
	}

	var pool []*Scored
	for i := range scored {
		if scored[i].Selections == minSel {
			pool = append(pool, &scored[i])
		}
	}
	return pool[s.rng.IntN(len(pool))]
}

// selectFixed ignores scores entirely: fewest selections first, ties by
// most recent activity then smallest id. This gives a stable rotation
// for learners who opt out of adaptive ordering.
func (s *Selector) selectFixed(stats []TopicStats) *Scored {
	scored := s.Score(stats)
	best := &scored[0]
	for i := 1; i < len(scored); i++ {
		c := &scored[i]
		if c.Selections < best.Selections {
			best = c
			continue
		}
		if c.Selections == best.Selections && tieBreakBefore(&c.TopicStats, &best.TopicStats) {
			best = c
		}
	}
	return best
}

// better reports whether a should win over b under argmax with
// deterministic tie-breaking.
func better(a, b *Scored) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return tieBreakBefore(&a.TopicStats, &b.TopicStats)
}

// tieBreakBefore orders tied topics by most recent activity, then by
// smallest topic id, so selection is reproducible under a fixed seed.
func tieBreakBefore(a, b *TopicStats) bool {
	if !a.LastSeen.Equal(b.LastSeen) {
		return a.LastSeen.After(b.LastSeen)
	}
	return a.TopicID < b.TopicID
}

func mostRecentlyActive(stats []TopicStats) string {
	id := ""
	var latest time.Time
	for _, t := range stats {
		if t.LastSeen.After(latest) {
			latest = t.LastSeen
			id = t.TopicID
		}
	}
	return id
}
