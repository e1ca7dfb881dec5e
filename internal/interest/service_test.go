package interest

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/acarerdinc/relevia/internal/store"
)

// fakeInterestRepo implements store.InterestRepo with the optimistic
// versioning protocol in memory.
type fakeInterestRepo struct {
	mu      sync.Mutex
	nextID  int
	records map[string]*store.Interest
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{records: map[string]*store.Interest{}}
}

func key(userID, topicID string) string { return userID + "/" + topicID }

func (r *fakeInterestRepo) Get(_ context.Context, userID, topicID string) (*store.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[key(userID, topicID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeInterestRepo) ForUser(_ context.Context, userID string) ([]*store.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Interest
	for _, rec := range r.records {
		if rec.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInterestRepo) Create(_ context.Context, in *store.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	in.ID = r.nextID
	in.Version = 0
	cp := *in
	r.records[key(in.UserID, in.TopicID)] = &cp
	return nil
}

func (r *fakeInterestRepo) Update(_ context.Context, in *store.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.records[key(in.UserID, in.TopicID)]
	if !ok {
		return store.ErrNotFound
	}
	if cur.Version != in.Version {
		return store.ErrVersionConflict
	}
	in.Version++
	cp := *in
	r.records[key(in.UserID, in.TopicID)] = &cp
	return nil
}

func TestApplySignalDeltas(t *testing.T) {
	tests := []struct {
		signal Signal
		want   float64
	}{
		{SignalCorrect, 0.95},  // 0.5 + 0.45
		{SignalTeachMe, 0.65},  // 0.5 + 0.15
		{SignalSkip, 0.10},     // 0.5 - 0.40
		{SignalIncorrect, 0.45}, // 0.5 - 0.05
	}

	for _, tt := range tests {
		t.Run(string(tt.signal), func(t *testing.T) {
			svc := NewService(newFakeInterestRepo(), DefaultConfig())
			got, err := svc.ApplySignal(context.Background(), "u1", "ml", tt.signal, "e1")
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreStaysInRange(t *testing.T) {
	svc := NewService(newFakeInterestRepo(), DefaultConfig())
	ctx := context.Background()

	signals := []Signal{SignalCorrect, SignalIncorrect, SignalTeachMe, SignalSkip}
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		sig := signals[rng.IntN(len(signals))]
		score, err := svc.ApplySignal(ctx, "u1", "ml", sig, "")
		if err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
		if score < 0 || score > 1 {
			t.Fatalf("score out of range after %s: %v", sig, score)
		}
	}
}

func TestApplySignalIdempotentPerEventKey(t *testing.T) {
	svc := NewService(newFakeInterestRepo(), DefaultConfig())
	ctx := context.Background()

	first, err := svc.ApplySignal(ctx, "u1", "ml", SignalCorrect, "q1:answer")
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}

	// A transport retry re-delivers the same logical event.
	second, err := svc.ApplySignal(ctx, "u1", "ml", SignalCorrect, "q1:answer")
	if err != nil {
		t.Fatalf("retried apply: %v", err)
	}
	if second != first {
		t.Errorf("retried score = %v, want unchanged %v", second, first)
	}

	// A new event key moves the score again.
	third, err := svc.ApplySignal(ctx, "u1", "ml", SignalTeachMe, "q2:teach_me")
	if err != nil {
		t.Fatalf("new event apply: %v", err)
	}
	if third == second {
		t.Error("expected new event key to change the score")
	}
}

func TestDelayedRetryAfterInterveningSignalIsNoOp(t *testing.T) {
	svc := NewService(newFakeInterestRepo(), DefaultConfig())
	ctx := context.Background()

	if _, err := svc.ApplySignal(ctx, "u1", "ml", SignalCorrect, "q1:answer"); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	// A second device lands another signal before the retry arrives.
	after, err := svc.ApplySignal(ctx, "u1", "ml", SignalSkip, "q2:skip")
	if err != nil {
		t.Fatalf("intervening apply: %v", err)
	}

	retried, err := svc.ApplySignal(ctx, "u1", "ml", SignalCorrect, "q1:answer")
	if err != nil {
		t.Fatalf("delayed retry: %v", err)
	}
	if retried != after {
		t.Errorf("delayed retry moved score to %v, want unchanged %v", retried, after)
	}
}

func TestEventKeyMemoryIsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RecentKeyLimit = 3
	repo := newFakeInterestRepo()
	svc := NewService(repo, cfg)
	ctx := context.Background()

	keys := []string{"e1", "e2", "e3", "e4"}
	for _, k := range keys {
		if _, err := svc.ApplySignal(ctx, "u1", "ml", SignalIncorrect, k); err != nil {
			t.Fatalf("apply %s: %v", k, err)
		}
	}

	rec, err := repo.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rec.RecentEventKeys) != 3 {
		t.Fatalf("kept %d keys, want 3", len(rec.RecentEventKeys))
	}
	if rec.RecentEventKeys[0] != "e2" {
		t.Errorf("oldest kept key = %q, want e2 (e1 evicted)", rec.RecentEventKeys[0])
	}

	// An evicted key is applied again: the memory is best effort.
	before, err := svc.Score(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	again, err := svc.ApplySignal(ctx, "u1", "ml", SignalIncorrect, "e1")
	if err != nil {
		t.Fatalf("reapply evicted: %v", err)
	}
	if again == before {
		t.Error("expected an evicted key to apply again")
	}
}

func TestUnknownSignalRejected(t *testing.T) {
	svc := NewService(newFakeInterestRepo(), DefaultConfig())
	if _, err := svc.ApplySignal(context.Background(), "u1", "ml", Signal("bored"), "e1"); err == nil {
		t.Fatal("expected error for unknown signal")
	}
}

func TestScoreDefaultsToNeutral(t *testing.T) {
	svc := NewService(newFakeInterestRepo(), DefaultConfig())
	score, err := svc.Score(context.Background(), "u1", "never-seen")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score != 0.5 {
		t.Errorf("score = %v, want neutral 0.5", score)
	}
}

func TestForUser(t *testing.T) {
	svc := NewService(newFakeInterestRepo(), DefaultConfig())
	ctx := context.Background()

	if _, err := svc.ApplySignal(ctx, "u1", "ml", SignalCorrect, "e1"); err != nil {
		t.Fatalf("apply ml: %v", err)
	}
	if _, err := svc.ApplySignal(ctx, "u1", "nlp", SignalSkip, "e2"); err != nil {
		t.Fatalf("apply nlp: %v", err)
	}
	if _, err := svc.ApplySignal(ctx, "u2", "ml", SignalCorrect, "e3"); err != nil {
		t.Fatalf("apply other user: %v", err)
	}

	scores, err := svc.ForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("topic count = %d, want 2", len(scores))
	}
	if scores["ml"] <= scores["nlp"] {
		t.Errorf("expected ml (%v) above nlp (%v)", scores["ml"], scores["nlp"])
	}
}
