package mastery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/acarerdinc/relevia/internal/store"
)

// fakeTopicRepo serves a fixed topic set.
type fakeTopicRepo struct {
	topics map[string]*store.Topic
}

func newFakeTopicRepo(ids ...string) *fakeTopicRepo {
	r := &fakeTopicRepo{topics: map[string]*store.Topic{}}
	for _, id := range ids {
		r.topics[id] = &store.Topic{TopicID: id, Name: id}
	}
	return r
}

func (r *fakeTopicRepo) Create(_ context.Context, t *store.Topic) error {
	r.topics[t.TopicID] = t
	return nil
}

func (r *fakeTopicRepo) CreateChildren(_ context.Context, _ string, children []*store.Topic) error {
	for _, c := range children {
		r.topics[c.TopicID] = c
	}
	return nil
}

func (r *fakeTopicRepo) Get(_ context.Context, id string) (*store.Topic, error) {
	t, ok := r.topics[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (r *fakeTopicRepo) Children(_ context.Context, _ string) ([]*store.Topic, error) {
	return nil, nil
}

func (r *fakeTopicRepo) All(_ context.Context) ([]*store.Topic, error) {
	out := make([]*store.Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	return out, nil
}

// fakeProgressRepo implements the optimistic versioning protocol in
// memory so conflict behavior matches the real store.
type fakeProgressRepo struct {
	mu      sync.Mutex
	nextID  int
	records map[string]*store.Progress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[string]*store.Progress{}}
}

func progressKey(userID, topicID string) string {
	return userID + "/" + topicID
}

func copyProgress(p *store.Progress) *store.Progress {
	cp := *p
	cp.CorrectByLevel = make(map[string]int, len(p.CorrectByLevel))
	for k, v := range p.CorrectByLevel {
		cp.CorrectByLevel[k] = v
	}
	return &cp
}

func (r *fakeProgressRepo) Get(_ context.Context, userID, topicID string) (*store.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[progressKey(userID, topicID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyProgress(p), nil
}

func (r *fakeProgressRepo) ForUser(_ context.Context, userID string) ([]*store.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Progress
	for _, p := range r.records {
		if p.UserID == userID {
			out = append(out, copyProgress(p))
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) Create(_ context.Context, p *store.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := progressKey(p.UserID, p.TopicID)
	if _, exists := r.records[key]; exists {
		return fmt.Errorf("duplicate progress %s", key)
	}
	r.nextID++
	p.ID = r.nextID
	p.Version = 0
	r.records[key] = copyProgress(p)
	return nil
}

func (r *fakeProgressRepo) Update(_ context.Context, p *store.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := progressKey(p.UserID, p.TopicID)
	cur, ok := r.records[key]
	if !ok {
		return store.ErrNotFound
	}
	if cur.Version != p.Version {
		return store.ErrVersionConflict
	}
	p.Version++
	r.records[key] = copyProgress(p)
	return nil
}

// fakeEventRepo records appended mastery events.
type fakeEventRepo struct {
	mu      sync.Mutex
	mastery []store.MasteryEventData
}

func (r *fakeEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}

func (r *fakeEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mastery = append(r.mastery, data)
	return nil
}

func (r *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (r *fakeEventRepo) LatestAnswerTime(_ context.Context, _, _ string) (time.Time, error) {
	return time.Time{}, nil
}

func (r *fakeEventRepo) TopicAccuracy(_ context.Context, _, _ string) (float64, int, error) {
	return 0, 0, nil
}

func (r *fakeEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, store.ErrNotFound
}

func (r *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (r *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func newTestService(topicIDs ...string) (*Service, *fakeProgressRepo, *fakeEventRepo) {
	progress := newFakeProgressRepo()
	events := &fakeEventRepo{}
	svc := NewService(newFakeTopicRepo(topicIDs...), progress, events, DefaultConfig())
	return svc, progress, events
}

func TestRecordAnswerUnknownTopic(t *testing.T) {
	svc, _, _ := newTestService("ml")

	_, err := svc.RecordAnswer(context.Background(), "u1", "ghost", true, 5, "s1")
	var invalid *InvalidTopicStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidTopicStateError", err)
	}
	if invalid.TopicID != "ghost" {
		t.Errorf("topic id = %q, want 'ghost'", invalid.TopicID)
	}
}

func TestAdvanceNoviceToCompetent(t *testing.T) {
	svc, _, events := newTestService("ml")
	ctx := context.Background()

	var last *Event
	for i := 0; i < 3; i++ {
		ev, err := svc.RecordAnswer(ctx, "u1", "ml", true, 5, "s1")
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		last = ev
	}

	if !last.Advanced {
		t.Fatal("expected advance on third correct answer")
	}
	if last.FromLevel != LevelNovice || last.ToLevel != LevelCompetent {
		t.Errorf("transition = %s -> %s, want novice -> competent", last.FromLevel, last.ToLevel)
	}
	if !last.CanUnlockSubtopics {
		t.Error("expected can_unlock_subtopics after reaching competent")
	}
	if len(events.mastery) != 1 {
		t.Fatalf("mastery events = %d, want 1", len(events.mastery))
	}
	if events.mastery[0].ToLevel != "competent" {
		t.Errorf("event to_level = %q, want 'competent'", events.mastery[0].ToLevel)
	}
}

func TestLadderSteepensAtCompetent(t *testing.T) {
	svc, _, _ := newTestService("ml")
	ctx := context.Background()

	// 3 correct reach competent; the next 4 correct are one short of
	// the competent threshold of 5.
	var last *Event
	for i := 0; i < 7; i++ {
		ev, err := svc.RecordAnswer(ctx, "u1", "ml", true, 5, "s1")
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		last = ev
	}
	if last.Advanced || last.ToLevel != LevelCompetent {
		t.Fatalf("after 7 correct: advanced=%v level=%s, want still competent", last.Advanced, last.ToLevel)
	}

	ev, err := svc.RecordAnswer(ctx, "u1", "ml", true, 5, "s1")
	if err != nil {
		t.Fatalf("eighth answer: %v", err)
	}
	if !ev.Advanced || ev.ToLevel != LevelProficient {
		t.Errorf("eighth correct = advanced=%v to=%s, want proficient", ev.Advanced, ev.ToLevel)
	}
}

func TestNoAdvanceBelowAccuracy(t *testing.T) {
	svc, _, _ := newTestService("ml")
	ctx := context.Background()

	// 3 correct out of 7 answered: enough volume at novice but 43%
	// accuracy stays below the 60% floor.
	answers := []bool{true, false, false, true, false, false, true}
	var last *Event
	for i, correct := range answers {
		ev, err := svc.RecordAnswer(ctx, "u1", "ml", correct, 5, "s1")
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		last = ev
	}

	if last.Advanced {
		t.Error("expected no advance below accuracy threshold")
	}
	if last.ToLevel != LevelNovice {
		t.Errorf("level = %s, want novice", last.ToLevel)
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	svc, _, _ := newTestService("ml")
	ctx := context.Background()

	answers := []bool{true, true, true, false, false, true, true, true, false, true, true, true}
	prevRank := Rank(LevelNovice)
	for i, correct := range answers {
		ev, err := svc.RecordAnswer(ctx, "u1", "ml", correct, 5, "s1")
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if Rank(ev.ToLevel) < prevRank {
			t.Fatalf("level decreased at answer %d: %s", i, ev.ToLevel)
		}
		prevRank = Rank(ev.ToLevel)
	}
}

func TestMasterIsTerminal(t *testing.T) {
	svc, progress, _ := newTestService("ml")
	ctx := context.Background()

	// Enough correct answers to climb the whole ladder: the per-level
	// thresholds 3+5+8+10 put master at the 26th correct answer.
	for i := 0; i < 30; i++ {
		if _, err := svc.RecordAnswer(ctx, "u1", "ml", true, 5, "s1"); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	p, err := progress.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if p.MasteryLevel != string(LevelMaster) {
		t.Fatalf("level = %q, want master", p.MasteryLevel)
	}

	ev, err := svc.RecordAnswer(ctx, "u1", "ml", true, 5, "s1")
	if err != nil {
		t.Fatalf("answer at master: %v", err)
	}
	if ev.Advanced || ev.ToLevel != LevelMaster {
		t.Errorf("event = advanced=%v to=%s, want terminal master", ev.Advanced, ev.ToLevel)
	}
}

func TestSkillEstimateStaysInRange(t *testing.T) {
	svc, _, _ := newTestService("ml")
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		ev, err := svc.RecordAnswer(ctx, "u1", "ml", true, 10, "s1")
		if err != nil {
			t.Fatalf("correct %d: %v", i, err)
		}
		if ev.SkillEstimate < 0 || ev.SkillEstimate > 1 {
			t.Fatalf("skill estimate out of range: %v", ev.SkillEstimate)
		}
	}
	for i := 0; i < 15; i++ {
		ev, err := svc.RecordAnswer(ctx, "u1", "ml", false, 1, "s1")
		if err != nil {
			t.Fatalf("incorrect %d: %v", i, err)
		}
		if ev.SkillEstimate < 0 || ev.SkillEstimate > 1 {
			t.Fatalf("skill estimate out of range: %v", ev.SkillEstimate)
		}
	}
}

func TestConcurrentRecordAnswerNoLostUpdate(t *testing.T) {
	svc, progress, _ := newTestService("ml")
	ctx := context.Background()

	// Seed the record so both goroutines contend on updates rather
	// than racing the initial create.
	if _, err := svc.RecordAnswer(ctx, "u1", "ml", false, 5, "s1"); err != nil {
		t.Fatalf("seed answer: %v", err)
	}

	const perWorker = 20
	var wg sync.WaitGroup
	errs := make(chan error, 2*perWorker)
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := svc.RecordAnswer(ctx, "u1", "ml", true, 5, "s1"); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent answer: %v", err)
	}

	p, err := progress.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	want := 1 + 2*perWorker
	if p.QuestionsAnswered != want {
		t.Errorf("questions answered = %d, want %d", p.QuestionsAnswered, want)
	}
	if p.CorrectAnswers != 2*perWorker {
		t.Errorf("correct answers = %d, want %d", p.CorrectAnswers, 2*perWorker)
	}
}

func TestRecordSelection(t *testing.T) {
	svc, progress, _ := newTestService("ml")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.RecordSelection(ctx, "u1", "ml"); err != nil {
			t.Fatalf("selection %d: %v", i, err)
		}
	}

	p, err := progress.Get(ctx, "u1", "ml")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if p.SelectionCount != 3 {
		t.Errorf("selection count = %d, want 3", p.SelectionCount)
	}
	if p.LastSeenAt == nil {
		t.Error("expected last seen to be set")
	}
}
