package selector

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func newTestSelector(seed uint64) *Selector {
	return New(DefaultConfig(), rand.New(rand.NewPCG(seed, 0)))
}

// noExplore disables epsilon so argmax is always taken.
func noExplore(seed uint64) *Selector {
	cfg := DefaultConfig()
	cfg.Epsilon = 0
	return New(cfg, rand.New(rand.NewPCG(seed, 0)))
}

func TestSelectNextEmpty(t *testing.T) {
	s := newTestSelector(1)
	if _, err := s.SelectNext(nil, StrategyAdaptive); err != ErrNoTopics {
		t.Fatalf("error = %v, want ErrNoTopics", err)
	}
}

func TestDeterministicForFixedSeed(t *testing.T) {
	stats := []TopicStats{
		{TopicID: "ml", Interest: 0.9, Proficiency: 0.4, Selections: 10},
		{TopicID: "nlp", Interest: 0.5, Proficiency: 0.7, Selections: 3},
		{TopicID: "vision", Interest: 0.6, Proficiency: 0.2, Selections: 1},
	}

	var first []string
	for run := 0; run < 2; run++ {
		s := newTestSelector(42)
		var picks []string
		for i := 0; i < 20; i++ {
			got, err := s.SelectNext(stats, StrategyAdaptive)
			if err != nil {
				t.Fatalf("select %d: %v", i, err)
			}
			picks = append(picks, got.TopicID)
		}
		if run == 0 {
			first = picks
			continue
		}
		for i := range picks {
			if picks[i] != first[i] {
				t.Fatalf("run diverged at pick %d: %q vs %q", i, picks[i], first[i])
			}
		}
	}
}

func TestUnseenTopicDominates(t *testing.T) {
	s := noExplore(1)
	stats := []TopicStats{
		{TopicID: "ml", Interest: 1.0, Proficiency: 1.0, Selections: 50},
		{TopicID: "new-topic", Interest: 0.5, Selections: 0},
	}

	got, err := s.SelectNext(stats, StrategyAdaptive)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.TopicID != "new-topic" {
		t.Errorf("selected %q, want the never-seen topic", got.TopicID)
	}
}

func TestHigherInterestWinsOtherThingsEqual(t *testing.T) {
	s := noExplore(1)
	stats := []TopicStats{
		{TopicID: "liked", Interest: 0.9, Proficiency: 0.5, Selections: 5},
		{TopicID: "disliked", Interest: 0.1, Proficiency: 0.5, Selections: 5},
	}

	got, err := s.SelectNext(stats, StrategyAdaptive)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.TopicID != "liked" {
		t.Errorf("selected %q, want 'liked'", got.TopicID)
	}
}

func TestRecencyBonusAppliesToMostRecentOnly(t *testing.T) {
	s := noExplore(1)
	now := time.Now()
	earlier := now.Add(-time.Hour)
	stats := []TopicStats{
		{TopicID: "a", Interest: 0.5, Selections: 5, LastSeen: earlier},
		{TopicID: "b", Interest: 0.5, Selections: 5, LastSeen: now},
	}

	scored := s.Score(stats)
	if scored[0].Score >= scored[1].Score {
		t.Errorf("recent topic score %v should beat stale %v", scored[1].Score, scored[0].Score)
	}
}

func TestSpecializationBonus(t *testing.T) {
	cases := []struct {
		name       string
		stats      TopicStats
		topicCount int
		want       float64
	}{
		{
			name:       "struggling subtopic penalized",
			stats:      TopicStats{Depth: 2, Accuracy: 0.4, Selections: 10},
			topicCount: 3,
			want:       -0.1,
		},
		{
			name:       "fresh subtopic with good performance",
			stats:      TopicStats{Depth: 1, Accuracy: 0.8, Selections: 2},
			topicCount: 3,
			want:       0.3,
		},
		{
			name:       "established subtopic",
			stats:      TopicStats{Depth: 1, Accuracy: 0.8, Selections: 9},
			topicCount: 3,
			want:       0.2,
		},
		{
			name:       "root before foundation",
			stats:      TopicStats{Depth: 0, QuestionsAnswered: 2},
			topicCount: 1,
			want:       0.1,
		},
		{
			name:       "root once ready to go deeper",
			stats:      TopicStats{Depth: 0, QuestionsAnswered: 10, Accuracy: 0.7},
			topicCount: 3,
			want:       -0.2,
		},
		{
			name:       "root alone stays neutral",
			stats:      TopicStats{Depth: 0, QuestionsAnswered: 10, Accuracy: 0.7},
			topicCount: 1,
			want:       0,
		},
	}
	for _, c := range cases {
		if got := specializationBonus(c.stats, c.topicCount); got != c.want {
			t.Errorf("%s: bonus = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSpecializationSteersAwayFromMasteredRoot(t *testing.T) {
	s := noExplore(1)
	stats := []TopicStats{
		{TopicID: "root", Depth: 0, Interest: 0.5, Selections: 8, QuestionsAnswered: 20, Accuracy: 0.9},
		{TopicID: "deep", Depth: 1, Interest: 0.5, Selections: 8, QuestionsAnswered: 4, Accuracy: 0.9},
	}

	got, err := s.SelectNext(stats, StrategyAdaptive)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.TopicID != "deep" {
		t.Errorf("selected %q, want the subtopic once the root is mastered", got.TopicID)
	}
}

func TestTieBreaksByRecencyThenID(t *testing.T) {
	s := noExplore(1)
	stats := []TopicStats{
		{TopicID: "zeta", Interest: 0.5, Selections: 5},
		{TopicID: "alpha", Interest: 0.5, Selections: 5},
	}

	// Identical scores and no activity history; smallest id must win.
	got, err := s.SelectNext(stats, StrategyAdaptive)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.TopicID != "alpha" {
		t.Errorf("selected %q, want 'alpha' by id tie-break", got.TopicID)
	}
}

func TestEpsilonExploresLeastSelected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epsilon = 1.0 // always explore
	s := New(cfg, rand.New(rand.NewPCG(7, 0)))

	stats := []TopicStats{
		{TopicID: "heavy", Interest: 1.0, Selections: 50},
		{TopicID: "light-a", Interest: 0.1, Selections: 2},
		{TopicID: "light-b", Interest: 0.1, Selections: 2},
	}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		got, err := s.SelectNext(stats, StrategyAdaptive)
		if err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if got.TopicID == "heavy" {
			t.Fatalf("explored %q, which is not among the least selected", got.TopicID)
		}
		seen[got.TopicID] = true
	}
	if !seen["light-a"] || !seen["light-b"] {
		t.Errorf("exploration never sampled both least-selected topics: %v", seen)
	}
}

func TestConfidenceTermMatchesFormula(t *testing.T) {
	s := noExplore(1)
	stats := []TopicStats{
		{TopicID: "a", Selections: 4},
		{TopicID: "b", Selections: 12},
	}

	scored := s.Score(stats)
	total := 16.0
	for _, sc := range scored {
		want := 2.0 * math.Sqrt(math.Log(total)/float64(sc.Selections))
		if diff := sc.Confidence - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s confidence = %v, want %v", sc.TopicID, sc.Confidence, want)
		}
	}
}

func TestFixedStrategyRotates(t *testing.T) {
	s := newTestSelector(1)
	stats := []TopicStats{
		{TopicID: "b", Interest: 0.9, Selections: 3},
		{TopicID: "a", Interest: 0.1, Selections: 3},
		{TopicID: "c", Interest: 0.5, Selections: 1},
	}

	got, err := s.SelectNext(stats, StrategyFixed)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.TopicID != "c" {
		t.Errorf("selected %q, want least-selected 'c'", got.TopicID)
	}

	// With equal counts the smallest id wins regardless of interest.
	stats[2].Selections = 3
	got, err = s.SelectNext(stats, StrategyFixed)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.TopicID != "a" {
		t.Errorf("selected %q, want 'a' by id", got.TopicID)
	}
}
