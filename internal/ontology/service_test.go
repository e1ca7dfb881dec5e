package ontology

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarerdinc/relevia/internal/interest"
	"github.com/acarerdinc/relevia/internal/mastery"
	"github.com/acarerdinc/relevia/internal/questiongen"
	"github.com/acarerdinc/relevia/internal/store"
	"github.com/acarerdinc/relevia/internal/topicgraph"
)

type memTopicRepo struct {
	mu     sync.Mutex
	topics map[string]*store.Topic
}

func newMemTopicRepo(topics ...*store.Topic) *memTopicRepo {
	r := &memTopicRepo{topics: map[string]*store.Topic{}}
	for _, t := range topics {
		r.topics[t.TopicID] = t
	}
	return r
}

func (r *memTopicRepo) Create(_ context.Context, t *store.Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics[t.TopicID] = t
	return nil
}

func (r *memTopicRepo) CreateChildren(_ context.Context, _ string, children []*store.Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range children {
		r.topics[c.TopicID] = c
	}
	return nil
}

func (r *memTopicRepo) Get(_ context.Context, id string) (*store.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topics[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (r *memTopicRepo) Children(_ context.Context, parentID string) ([]*store.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Topic
	for _, t := range r.topics {
		if t.ParentID == parentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTopicRepo) All(_ context.Context) ([]*store.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*store.Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	return out, nil
}

type memProgressRepo struct {
	mu      sync.Mutex
	records map[string]*store.Progress
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{records: map[string]*store.Progress{}}
}

func pkey(userID, topicID string) string { return userID + "/" + topicID }

func (r *memProgressRepo) Get(_ context.Context, userID, topicID string) (*store.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[pkey(userID, topicID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProgressRepo) ForUser(_ context.Context, userID string) ([]*store.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Progress
	for _, p := range r.records {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProgressRepo) Create(_ context.Context, p *store.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.records[pkey(p.UserID, p.TopicID)] = &cp
	return nil
}

func (r *memProgressRepo) Update(_ context.Context, p *store.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.records[pkey(p.UserID, p.TopicID)]
	if !ok {
		return store.ErrNotFound
	}
	if cur.Version != p.Version {
		return store.ErrVersionConflict
	}
	cp := *p
	cp.Version++
	r.records[pkey(p.UserID, p.TopicID)] = &cp
	p.Version = cp.Version
	return nil
}

type memInterestRepo struct {
	mu      sync.Mutex
	records map[string]*store.Interest
}

func newMemInterestRepo() *memInterestRepo {
	return &memInterestRepo{records: map[string]*store.Interest{}}
}

func (r *memInterestRepo) Get(_ context.Context, userID, topicID string) (*store.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[pkey(userID, topicID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *memInterestRepo) ForUser(_ context.Context, userID string) ([]*store.Interest, error) {
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

func (r *memInterestRepo) Create(_ context.Context, rec *store.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records[pkey(rec.UserID, rec.TopicID)] = &cp
	return nil
}

func (r *memInterestRepo) Update(_ context.Context, rec *store.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.records[pkey(rec.UserID, rec.TopicID)]
	if !ok {
		return store.ErrNotFound
	}
	if cur.Version != rec.Version {
		return store.ErrVersionConflict
	}
	cp := *rec
	cp.Version++
	r.records[pkey(rec.UserID, rec.TopicID)] = &cp
	rec.Version = cp.Version
	return nil
}

type memExpansionRepo struct {
	mu      sync.Mutex
	nextID  int
	markers []*store.ExpansionMarker
}

func (r *memExpansionRepo) Begin(_ context.Context, userID, topicID string, ttl time.Duration) (*store.ExpansionMarker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, m := range r.markers {
		if m.UserID == userID && m.TopicID == topicID &&
			m.Status == store.ExpansionPending && m.ExpiresAt.After(now) {
			return nil, store.ErrExpansionInFlight
		}
	}
	r.nextID++
	m := &store.ExpansionMarker{
		ID:        r.nextID,
		UserID:    userID,
		TopicID:   topicID,
		Status:    store.ExpansionPending,
		StartedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	r.markers = append(r.markers, m)
	return m, nil
}

func (r *memExpansionRepo) Finish(_ context.Context, id int, status, detail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.markers {
		if m.ID == id {
			m.Status = status
			m.Detail = detail
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *memExpansionRepo) last() *store.ExpansionMarker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.markers) == 0 {
		return nil
	}
	return r.markers[len(r.markers)-1]
}

// scriptedGenerator returns canned candidate sets in order and records
// the inputs it was called with.
type scriptedGenerator struct {
	mu     sync.Mutex
	sets   [][]questiongen.TopicCandidate
	errs   []error
	inputs []questiongen.SubtopicInput
}

func (g *scriptedGenerator) GenerateQuestion(context.Context, questiongen.GenerateInput) (*questiongen.Candidate, error) {
	panic("not used")
}

func (g *scriptedGenerator) GenerateSubtopics(_ context.Context, input questiongen.SubtopicInput) ([]questiongen.TopicCandidate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputs = append(g.inputs, input)
	i := len(g.inputs) - 1
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	if i < len(g.sets) {
		return g.sets[i], nil
	}
	return nil, &questiongen.GenerationError{Op: "subtopics", Err: errors.New("script exhausted")}
}

func goodSet() []questiongen.TopicCandidate {
	return []questiongen.TopicCandidate{
		{Name: "Supervised Learning", Description: "Labeled data", DifficultyMin: 2, DifficultyMax: 8},
		{Name: "Unsupervised Learning", Description: "Unlabeled data", DifficultyMin: 2, DifficultyMax: 8},
		{Name: "Reinforcement Learning", Description: "Reward signals", DifficultyMin: 3, DifficultyMax: 9},
	}
}

func overlappingSet() []questiongen.TopicCandidate {
	return []questiongen.TopicCandidate{
		{Name: "Neural Networks", Description: "x"},
		{Name: "Deep Neural Networks", Description: "y"},
	}
}

type fixture struct {
	svc       *Service
	graph     *topicgraph.Service
	progress  *memProgressRepo
	interests *memInterestRepo
	markers   *memExpansionRepo
	gen       *scriptedGenerator
}

func newFixture(t *testing.T, gen *scriptedGenerator) *fixture {
	t.Helper()
	topics := newMemTopicRepo(&store.Topic{
		TopicID: "ml", Name: "Machine Learning", Depth: 0,
		DifficultyMin: 1, DifficultyMax: 10,
	})
	progress := newMemProgressRepo()
	interests := newMemInterestRepo()
	markers := &memExpansionRepo{}

	graph := topicgraph.NewService(topics, progress)
	masteries := mastery.NewService(topics, progress, nil, mastery.DefaultConfig())
	interestSvc := interest.NewService(interests, interest.DefaultConfig())

	cfg := DefaultConfig()
	svc := NewService(graph, masteries, interestSvc, gen, markers, cfg)
	return &fixture{svc: svc, graph: graph, progress: progress, interests: interests, markers: markers, gen: gen}
}

// readyToExpand seeds progress and interest so "ml" is eligible.
func (f *fixture) readyToExpand(ctx context.Context, t *testing.T) {
	t.Helper()
	require.NoError(t, f.progress.Create(ctx, &store.Progress{
		UserID: "u1", TopicID: "ml",
		MasteryLevel:       "competent",
		CanUnlockSubtopics: true,
		QuestionsAnswered:  10,
		CorrectAnswers:     8,
		Unlocked:           true,
	}))
	require.NoError(t, f.interests.Create(ctx, &store.Interest{
		UserID: "u1", TopicID: "ml", Score: 0.7,
	}))
}

func TestEligibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{})

	// No progress at all: not eligible.
	ok, err := f.svc.Eligible(ctx, "u1", "ml")
	require.NoError(t, err)
	assert.False(t, ok)

	// Competent but interest below the floor.
	require.NoError(t, f.progress.Create(ctx, &store.Progress{
		UserID: "u1", TopicID: "ml", MasteryLevel: "competent", CanUnlockSubtopics: true,
	}))
	require.NoError(t, f.interests.Create(ctx, &store.Interest{
		UserID: "u1", TopicID: "ml", Score: 0.2,
	}))
	ok, err = f.svc.Eligible(ctx, "u1", "ml")
	require.NoError(t, err)
	assert.False(t, ok, "interest below floor must block expansion")

	// Raise interest past the floor.
	rec, err := f.interests.Get(ctx, "u1", "ml")
	require.NoError(t, err)
	rec.Score = 0.5
	require.NoError(t, f.interests.Update(ctx, rec))
	ok, err = f.svc.Eligible(ctx, "u1", "ml")
	require.NoError(t, err)
	assert.True(t, ok)

	// Unknown topic surfaces InvalidTopicState.
	_, err = f.svc.Eligible(ctx, "u1", "ghost")
	var invalid *mastery.InvalidTopicStateError
	assert.ErrorAs(t, err, &invalid)
}

func TestEligibilityBlockedByExistingChildren(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{})
	f.readyToExpand(ctx, t)

	_, err := f.graph.AddChildren(ctx, "ml", []topicgraph.ChildSpec{
		{Name: "Supervised Learning"}, {Name: "Unsupervised Learning"},
	})
	require.NoError(t, err)

	ok, err := f.svc.Eligible(ctx, "u1", "ml")
	require.NoError(t, err)
	assert.False(t, ok, "a topic with children must not expand again")
}

func TestExpandCommitsChildrenLocked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{sets: [][]questiongen.TopicCandidate{goodSet()}})
	f.readyToExpand(ctx, t)

	children, err := f.svc.Expand(ctx, "u1", "ml", false)
	require.NoError(t, err)
	require.Len(t, children, 3)

	// Background expansions leave children locked for the learner.
	unlocked, err := f.graph.UnlockedTopics(ctx, "u1")
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, u := range unlocked {
		ids[u.TopicID] = true
	}
	assert.True(t, ids["ml"])
	for _, c := range children {
		assert.False(t, ids[c.TopicID], "child %s should stay locked", c.TopicID)
	}

	assert.Equal(t, store.ExpansionSucceeded, f.markers.last().Status)
}

func TestExpandLearnerRequestedUnlocksChildren(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{sets: [][]questiongen.TopicCandidate{goodSet()}})
	f.readyToExpand(ctx, t)

	children, err := f.svc.Expand(ctx, "u1", "ml", true)
	require.NoError(t, err)

	unlocked, err := f.graph.UnlockedTopics(ctx, "u1")
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, u := range unlocked {
		ids[u.TopicID] = true
	}
	for _, c := range children {
		assert.True(t, ids[c.TopicID], "child %s should be unlocked for the requester", c.TopicID)
	}
}

func TestExpandRegeneratesAfterMECEViolation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{
		sets: [][]questiongen.TopicCandidate{overlappingSet(), goodSet()},
	})
	f.readyToExpand(ctx, t)

	children, err := f.svc.Expand(ctx, "u1", "ml", false)
	require.NoError(t, err)
	assert.Len(t, children, 3)

	require.Len(t, f.gen.inputs, 2)
	assert.Empty(t, f.gen.inputs[0].Rejected)
	assert.Contains(t, f.gen.inputs[1].Rejected, "Neural Networks",
		"regeneration should carry the rejected names")
}

func TestExpandFailsAfterBoundedRegenerations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{
		sets: [][]questiongen.TopicCandidate{overlappingSet(), overlappingSet(), overlappingSet()},
	})
	f.readyToExpand(ctx, t)

	_, err := f.svc.Expand(ctx, "u1", "ml", false)
	var failed *ExpansionFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "ml", failed.TopicID)

	assert.Len(t, f.gen.inputs, 3, "regeneration must stop at the bound")
	assert.Equal(t, store.ExpansionFailed, f.markers.last().Status)

	// The topic stays childless.
	g, err := f.graph.Load(ctx)
	require.NoError(t, err)
	assert.False(t, g.HasChildren("ml"))
}

// appearingChildrenRepo injects children on the second graph load,
// standing in for a concurrent expansion that commits right after the
// eligibility check.
type appearingChildrenRepo struct {
	*memTopicRepo
	loadMu   sync.Mutex
	loads    int
	children []*store.Topic
}

func (r *appearingChildrenRepo) All(ctx context.Context) ([]*store.Topic, error) {
	r.loadMu.Lock()
	r.loads++
	if r.loads == 2 {
		for _, c := range r.children {
			r.memTopicRepo.Create(ctx, c)
		}
	}
	r.loadMu.Unlock()
	return r.memTopicRepo.All(ctx)
}

func TestExpandDetectsChildrenCommittedAfterEligibility(t *testing.T) {
	ctx := context.Background()
	topics := &appearingChildrenRepo{
		memTopicRepo: newMemTopicRepo(&store.Topic{
			TopicID: "ml", Name: "Machine Learning", Depth: 0,
			DifficultyMin: 1, DifficultyMax: 10,
		}),
		children: []*store.Topic{
			{TopicID: "ml-supervised", ParentID: "ml", Name: "Supervised Learning", Depth: 1},
			{TopicID: "ml-unsupervised", ParentID: "ml", Name: "Unsupervised Learning", Depth: 1},
		},
	}
	progress := newMemProgressRepo()
	interests := newMemInterestRepo()
	markers := &memExpansionRepo{}
	gen := &scriptedGenerator{sets: [][]questiongen.TopicCandidate{goodSet()}}

	graph := topicgraph.NewService(topics, progress)
	masteries := mastery.NewService(topics, progress, nil, mastery.DefaultConfig())
	interestSvc := interest.NewService(interests, interest.DefaultConfig())
	svc := NewService(graph, masteries, interestSvc, gen, markers, DefaultConfig())

	require.NoError(t, progress.Create(ctx, &store.Progress{
		UserID: "u1", TopicID: "ml",
		MasteryLevel:       "competent",
		CanUnlockSubtopics: true,
		Unlocked:           true,
	}))
	require.NoError(t, interests.Create(ctx, &store.Interest{
		UserID: "u1", TopicID: "ml", Score: 0.7,
	}))

	_, err := svc.Expand(ctx, "u1", "ml", false)
	require.ErrorIs(t, err, ErrNotEligible)

	assert.Empty(t, gen.inputs, "no generation once children exist")
	assert.Equal(t, store.ExpansionFailed, markers.last().Status)

	// Only the concurrent batch survives under the parent.
	existing, err := topics.Children(ctx, "ml")
	require.NoError(t, err)
	assert.Len(t, existing, 2)
}

func TestExpandSecondTriggerIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{sets: [][]questiongen.TopicCandidate{goodSet()}})
	f.readyToExpand(ctx, t)

	_, err := f.markers.Begin(ctx, "u1", "ml", time.Minute)
	require.NoError(t, err)

	_, err = f.svc.Expand(ctx, "u1", "ml", false)
	assert.ErrorIs(t, err, store.ErrExpansionInFlight)
	assert.Empty(t, f.gen.inputs, "in-flight marker must block generation")
}

func TestExpandRecoversFromGeneratorError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{
		errs: []error{&questiongen.GenerationError{Op: "subtopics", Err: errors.New("rate limited")}},
		sets: [][]questiongen.TopicCandidate{nil, goodSet()},
	})
	f.readyToExpand(ctx, t)

	children, err := f.svc.Expand(ctx, "u1", "ml", false)
	require.NoError(t, err)
	assert.Len(t, children, 3)
}

func TestTriggerAsyncObservedOnLaterTurn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGenerator{sets: [][]questiongen.TopicCandidate{goodSet()}})
	f.readyToExpand(ctx, t)

	f.svc.TriggerAsync("u1", "ml", false)
	f.svc.Wait()

	res, ok := f.svc.Consume("u1", "ml")
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Len(t, res.Children, 3)

	// Consumed results are cleared.
	_, ok = f.svc.Consume("u1", "ml")
	assert.False(t, ok)
}

func TestTriggerAsyncIneligibleLeavesNoResult(t *testing.T) {
	f := newFixture(t, &scriptedGenerator{})
	f.svc.TriggerAsync("u1", "ml", false)
	f.svc.Wait()

	_, ok := f.svc.Consume("u1", "ml")
	assert.False(t, ok)
}
