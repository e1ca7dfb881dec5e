package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestTopicCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	err := repo.Create(ctx, &Topic{
		TopicID:       "machine-learning",
		Name:          "Machine Learning",
		Description:   "Algorithms that learn from data",
		Depth:         0,
		DifficultyMin: 1,
		DifficultyMax: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "machine-learning")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Machine Learning" {
		t.Errorf("name = %q, want 'Machine Learning'", got.Name)
	}
	if got.Depth != 0 {
		t.Errorf("depth = %d, want 0", got.Depth)
	}

	_, err = repo.Get(ctx, "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing topic error = %v, want ErrNotFound", err)
	}
}

func TestTopicCreateChildrenSetsDepth(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &Topic{TopicID: "ml", Name: "ML", DifficultyMin: 1, DifficultyMax: 10}); err != nil {
		t.Fatalf("create root: %v", err)
	}

	children := []*Topic{
		{TopicID: "ml-supervised", Name: "Supervised Learning", DifficultyMin: 2, DifficultyMax: 8, Generated: true},
		{TopicID: "ml-unsupervised", Name: "Unsupervised Learning", DifficultyMin: 2, DifficultyMax: 8, Generated: true},
	}
	if err := repo.CreateChildren(ctx, "ml", children); err != nil {
		t.Fatalf("create children: %v", err)
	}

	got, err := repo.Children(ctx, "ml")
	if err != nil {
		t.Fatalf("children: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("children count = %d, want 2", len(got))
	}
	for _, c := range got {
		if c.Depth != 1 {
			t.Errorf("child %s depth = %d, want 1", c.TopicID, c.Depth)
		}
		if c.ParentID != "ml" {
			t.Errorf("child %s parent = %q, want 'ml'", c.TopicID, c.ParentID)
		}
	}
}

func TestTopicCreateChildrenMissingParent(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	err := repo.CreateChildren(ctx, "ghost", []*Topic{{TopicID: "ghost-child", Name: "Child"}})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestProgressVersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := &Progress{
		UserID:       "u1",
		TopicID:      "ml",
		MasteryLevel: "novice",
		Unlocked:     true,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Two readers load the same version.
	a, err := repo.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get a: %v", err)
	}
	b, err := repo.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get b: %v", err)
	}

	a.QuestionsAnswered = 1
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("update a: %v", err)
	}

	// The stale writer must fail, not clobber.
	b.QuestionsAnswered = 99
	err = repo.Update(ctx, b)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("stale update error = %v, want ErrVersionConflict", err)
	}

	got, err := repo.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get after conflict: %v", err)
	}
	if got.QuestionsAnswered != 1 {
		t.Errorf("questions answered = %d, want 1", got.QuestionsAnswered)
	}
	if got.Version != 1 {
		t.Errorf("version = %d, want 1", got.Version)
	}
}

func TestInterestUpdateBumpsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterestRepo()
	ctx := context.Background()

	in := &Interest{UserID: "u1", TopicID: "ml", Score: 0.5}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	in.Score = 0.95
	in.RecentEventKeys = []string{"q1:answer"}
	if err := repo.Update(ctx, in); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 0.95 {
		t.Errorf("score = %v, want 0.95", got.Score)
	}
	if got.Version != 1 {
		t.Errorf("version = %d, want 1", got.Version)
	}
	if len(got.RecentEventKeys) != 1 || got.RecentEventKeys[0] != "q1:answer" {
		t.Errorf("recent event keys = %v, want [q1:answer]", got.RecentEventKeys)
	}
}

func TestConceptHistoryRecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptHistoryRepo()
	ctx := context.Background()

	sets := [][]string{
		{"gradient", "descent"},
		{"backpropagation"},
		{"overfitting", "regularization"},
	}
	for i, concepts := range sets {
		err := repo.Append(ctx, &ConceptEntry{
			UserID:     "u1",
			TopicID:    "ml",
			QuestionID: string(rune('a' + i)),
			Concepts:   concepts,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, "u1", "ml", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent count = %d, want 2", len(recent))
	}
	if recent[0][0] != "overfitting" {
		t.Errorf("newest concept = %q, want 'overfitting'", recent[0][0])
	}
}

func TestExpansionBeginBlocksWhileLive(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExpansionRepo()
	ctx := context.Background()

	marker, err := repo.Begin(ctx, "u1", "ml", time.Minute)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	_, err = repo.Begin(ctx, "u1", "ml", time.Minute)
	if !errors.Is(err, ErrExpansionInFlight) {
		t.Fatalf("second begin error = %v, want ErrExpansionInFlight", err)
	}

	// A different topic is unaffected.
	if _, err := repo.Begin(ctx, "u1", "nlp", time.Minute); err != nil {
		t.Fatalf("begin other topic: %v", err)
	}

	// Finishing releases the marker.
	if err := repo.Finish(ctx, marker.ID, ExpansionSucceeded, ""); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if _, err := repo.Begin(ctx, "u1", "ml", time.Minute); err != nil {
		t.Fatalf("begin after finish: %v", err)
	}
}

func TestExpansionExpiredMarkerDoesNotBlock(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExpansionRepo()
	ctx := context.Background()

	if _, err := repo.Begin(ctx, "u1", "ml", -time.Second); err != nil {
		t.Fatalf("begin expired: %v", err)
	}

	// The already-expired pending marker must not suppress a retry.
	if _, err := repo.Begin(ctx, "u1", "ml", time.Minute); err != nil {
		t.Fatalf("begin after expiry: %v", err)
	}
}

func TestEventAppendAndTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []struct {
		action  string
		correct bool
	}{
		{"answer", true},
		{"answer", true},
		{"answer", false},
		{"skip", false}, // skips are excluded from accuracy
	}
	for i, a := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			UserID:     "u1",
			SessionID:  "s1",
			TopicID:    "ml",
			QuestionID: string(rune('a' + i)),
			Action:     a.action,
			Correct:    a.correct,
			Difficulty: 5,
			TimeMs:     1200,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, n, err := repo.TopicAccuracy(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 3 {
		t.Errorf("answer count = %d, want 3", n)
	}
	if acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %v, want ~0.667", acc)
	}

	ts, err := repo.LatestAnswerTime(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("latest answer time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero latest answer time")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "m2", Purpose: "subtopic-gen", InputTokens: 200, OutputTokens: 80, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("purpose count = %d, want 2", len(stats))
	}
	// Sorted alphabetically: question-gen, subtopic-gen.
	if stats[0].Purpose != "question-gen" || stats[0].Requests != 2 || stats[0].Failures != 1 {
		t.Errorf("question-gen stats = %+v", stats[0])
	}
	if stats[1].Purpose != "subtopic-gen" || stats[1].Requests != 1 {
		t.Errorf("subtopic-gen stats = %+v", stats[1])
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("model count = %d, want 2", len(models))
	}
	if models[0].Provider != "anthropic" || models[0].InputTokens != 220 {
		t.Errorf("anthropic usage = %+v", models[0])
	}
}
