package diversity

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/acarerdinc/relevia/internal/store"
)

// fakeHistoryRepo keeps concept entries in memory, newest first on read.
type fakeHistoryRepo struct {
	mu      sync.Mutex
	entries []*store.ConceptEntry
}

func (r *fakeHistoryRepo) Append(_ context.Context, e *store.ConceptEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeHistoryRepo) Recent(_ context.Context, userID, topicID string, n int) ([][]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out [][]string
	for i := len(r.entries) - 1; i >= 0 && len(out) < n; i-- {
		e := r.entries[i]
		if e.UserID == userID && e.TopicID == topicID {
			out = append(out, e.Concepts)
		}
	}
	return out, nil
}

func seedHistory(t *testing.T, g *Guard, sets ...[]string) {
	t.Helper()
	for i, set := range sets {
		if err := g.RecordShown(context.Background(), "u1", "ml", string(rune('a'+i)), set); err != nil {
			t.Fatalf("record shown %d: %v", i, err)
		}
	}
}

func TestCheckDiversityExtremes(t *testing.T) {
	g := NewGuard(&fakeHistoryRepo{}, DefaultConfig())
	ctx := context.Background()
	seedHistory(t, g,
		[]string{"gradient", "descent"},
		[]string{"backpropagation", "chain-rule"},
		[]string{"overfitting"},
	)

	// Candidate entirely inside the window scores 0.
	score, err := g.CheckDiversity(ctx, "u1", "ml", []string{"gradient", "overfitting"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if score != 0 {
		t.Errorf("fully repeated candidate score = %v, want 0", score)
	}

	// Candidate sharing nothing with the window scores 1.
	score, err = g.CheckDiversity(ctx, "u1", "ml", []string{"transformers", "attention"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if score != 1 {
		t.Errorf("novel candidate score = %v, want 1", score)
	}
}

func TestCheckDiversityPartialOverlap(t *testing.T) {
	g := NewGuard(&fakeHistoryRepo{}, DefaultConfig())
	seedHistory(t, g, []string{"gradient", "descent"})

	// 1 of 4 concepts overlaps: 1 - 1/4 = 0.75.
	score, err := g.CheckDiversity(context.Background(), "u1", "ml",
		[]string{"gradient", "momentum", "learning-rate", "scheduler"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if score != 0.75 {
		t.Errorf("score = %v, want 0.75", score)
	}
}

func TestCheckDiversityEmptyCandidate(t *testing.T) {
	g := NewGuard(&fakeHistoryRepo{}, DefaultConfig())
	score, err := g.CheckDiversity(context.Background(), "u1", "ml", nil)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if score != 1 {
		t.Errorf("empty candidate score = %v, want 1", score)
	}
}

func TestWindowOnlyCountsRecentEntries(t *testing.T) {
	g := NewGuard(&fakeHistoryRepo{}, DefaultConfig())
	// Six entries; the oldest falls out of the 5-wide window.
	seedHistory(t, g,
		[]string{"evicted-concept"},
		[]string{"one"}, []string{"two"}, []string{"three"},
		[]string{"four"}, []string{"five"},
	)

	score, err := g.CheckDiversity(context.Background(), "u1", "ml", []string{"evicted-concept"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if score != 1 {
		t.Errorf("evicted concept score = %v, want 1", score)
	}
}

func TestScreenRejectsOverusedAndRetries(t *testing.T) {
	g := NewGuard(&fakeHistoryRepo{}, DefaultConfig())
	ctx := context.Background()
	// 4 of 5 window sets cover the repeated concepts.
	seedHistory(t, g,
		[]string{"gradient"},
		[]string{"descent"},
		[]string{"momentum"},
		[]string{"learning-rate"},
		[]string{"unrelated"},
	)

	var feedbacks []*Feedback
	calls := 0
	res, err := Screen(ctx, g, "u1", "ml", func(_ context.Context, fb *Feedback) (string, []string, error) {
		feedbacks = append(feedbacks, fb)
		calls++
		if calls == 1 {
			// 4/5 concepts repeated: score 0.2, below 0.3.
			return "stale", []string{"gradient", "descent", "momentum", "learning-rate", "novel"}, nil
		}
		return "fresh", []string{"transformers", "attention"}, nil
	})
	if err != nil {
		t.Fatalf("screen: %v", err)
	}

	if calls != 2 {
		t.Fatalf("generator calls = %d, want 2 (one rejection, one retry)", calls)
	}
	if res.Candidate != "fresh" || res.Exhausted {
		t.Errorf("result = %+v, want accepted retry candidate", res)
	}
	if feedbacks[0] != nil {
		t.Error("first attempt should carry no feedback")
	}
	if feedbacks[1] == nil || len(feedbacks[1].Overused) != 4 {
		t.Fatalf("retry feedback = %+v, want 4 overused concepts", feedbacks[1])
	}
}

func TestScreenExhaustionAcceptsBestSeen(t *testing.T) {
	g := NewGuard(&fakeHistoryRepo{}, DefaultConfig())
	ctx := context.Background()
	seedHistory(t, g, []string{"alpha", "beta", "gamma", "delta"})

	scoresServed := [][]string{
		{"alpha", "beta", "gamma", "delta"},          // 0
		{"alpha", "beta", "gamma", "delta", "fresh"}, // 0.2
		{"alpha", "beta", "gamma", "delta"},          // 0
		{"alpha", "beta", "gamma", "delta"},          // 0
	}
	calls := 0
	res, err := Screen(ctx, g, "u1", "ml", func(_ context.Context, _ *Feedback) (int, []string, error) {
		concepts := scoresServed[calls]
		calls++
		return calls, concepts, nil
	})
	if err != nil {
		t.Fatalf("screen: %v", err)
	}

	if calls != 4 {
		t.Fatalf("generator calls = %d, want 1 + 3 retries", calls)
	}
	if !res.Exhausted {
		t.Fatal("expected exhausted fallback")
	}
	if res.Candidate != 2 {
		t.Errorf("accepted candidate = %d, want best-scoring attempt 2", res.Candidate)
	}
	if res.Score != 0.2 {
		t.Errorf("accepted score = %v, want 0.2", res.Score)
	}
}

func TestScreenGenerationFailure(t *testing.T) {
	g := NewGuard(&fakeHistoryRepo{}, DefaultConfig())
	genErr := errors.New("collaborator down")

	_, err := Screen(context.Background(), g, "u1", "ml", func(_ context.Context, _ *Feedback) (string, []string, error) {
		return "", nil, genErr
	})
	if !errors.Is(err, genErr) {
		t.Fatalf("error = %v, want generation failure", err)
	}
}

func TestExtractConcepts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stop words and short tokens",
			text: "What is the main advantage of gradient descent?",
			want: []string{"advantage", "descent", "gradient"},
		},
		{
			name: "keeps hyphenated terms whole",
			text: "Compare k-means with cross-validation",
			want: []string{"compare", "cross-validation", "k-means"},
		},
		{
			name: "deduplicates",
			text: "Bias bias BIAS variance",
			want: []string{"bias", "variance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractConcepts(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("concepts = %v, want %v", got, tt.want)
			}
		})
	}
}
