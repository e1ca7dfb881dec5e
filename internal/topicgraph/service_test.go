package topicgraph

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/acarerdinc/relevia/internal/mastery"
	"github.com/acarerdinc/relevia/internal/store"
)

type memTopicRepo struct {
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
	r.topics[t.TopicID] = t
	return nil
}

func (r *memTopicRepo) CreateChildren(_ context.Context, _ string, children []*store.Topic) error {
	for _, c := range children {
		r.topics[c.TopicID] = c
	}
	return nil
}

func (r *memTopicRepo) Get(_ context.Context, id string) (*store.Topic, error) {
	t, ok := r.topics[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (r *memTopicRepo) Children(_ context.Context, parentID string) ([]*store.Topic, error) {
	var out []*store.Topic
	for _, t := range r.topics {
		if t.ParentID == parentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTopicRepo) All(_ context.Context) ([]*store.Topic, error) {
	out := make([]*store.Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	return out, nil
}

type memProgressRepo struct {
	records map[string]*store.Progress
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{records: map[string]*store.Progress{}}
}

func (r *memProgressRepo) key(userID, topicID string) string {
	return userID + "/" + topicID
}

func (r *memProgressRepo) Get(_ context.Context, userID, topicID string) (*store.Progress, error) {
	p, ok := r.records[r.key(userID, topicID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProgressRepo) ForUser(_ context.Context, userID string) ([]*store.Progress, error) {
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
	cp := *p
	r.records[r.key(p.UserID, p.TopicID)] = &cp
	return nil
}

func (r *memProgressRepo) Update(_ context.Context, p *store.Progress) error {
	cur, ok := r.records[r.key(p.UserID, p.TopicID)]
	if !ok {
		return store.ErrNotFound
	}
	if cur.Version != p.Version {
		return store.ErrVersionConflict
	}
	cp := *p
	cp.Version++
	r.records[r.key(p.UserID, p.TopicID)] = &cp
	p.Version = cp.Version
	return nil
}

func rootedService(extra ...*store.Topic) (*Service, *memTopicRepo, *memProgressRepo) {
	topics := append([]*store.Topic{
		{TopicID: "ml", Name: "Machine Learning", Depth: 0, DifficultyMin: 1, DifficultyMax: 10},
	}, extra...)
	tr := newMemTopicRepo(topics...)
	pr := newMemProgressRepo()
	return NewService(tr, pr), tr, pr
}

func TestEnsureRootCreatesOnce(t *testing.T) {
	tr := newMemTopicRepo()
	svc := NewService(tr, newMemProgressRepo())
	ctx := context.Background()

	root, err := svc.EnsureRoot(ctx, "Machine Learning", "The root domain")
	if err != nil {
		t.Fatalf("EnsureRoot: %v", err)
	}
	if root.TopicID != "machine-learning" || root.Depth != 0 {
		t.Errorf("root = %+v", root)
	}

	again, err := svc.EnsureRoot(ctx, "Something Else", "ignored")
	if err != nil {
		t.Fatalf("EnsureRoot (second): %v", err)
	}
	if again.TopicID != "machine-learning" {
		t.Errorf("second EnsureRoot created a new root: %q", again.TopicID)
	}
	if len(tr.topics) != 1 {
		t.Errorf("topic count = %d, want 1", len(tr.topics))
	}
}

func TestAddChildren(t *testing.T) {
	svc, tr, _ := rootedService()
	ctx := context.Background()

	kids, err := svc.AddChildren(ctx, "ml", []ChildSpec{
		{Name: "Supervised Learning", DifficultyMin: 2, DifficultyMax: 8},
		{Name: "Unsupervised Learning", DifficultyMin: 2, DifficultyMax: 8},
	})
	if err != nil {
		t.Fatalf("AddChildren: %v", err)
	}
	if len(kids) != 2 {
		t.Fatalf("got %d children, want 2", len(kids))
	}
	for _, c := range kids {
		if c.ParentID != "ml" || c.Depth != 1 || !c.Generated {
			t.Errorf("child %+v", c)
		}
	}
	if _, ok := tr.topics["supervised-learning"]; !ok {
		t.Error("supervised-learning not persisted")
	}
}

func TestAddChildrenRejectsWholeBatch(t *testing.T) {
	svc, tr, _ := rootedService(
		&store.Topic{TopicID: "supervised-learning", ParentID: "ml", Name: "Supervised Learning", Depth: 1},
	)
	ctx := context.Background()

	_, err := svc.AddChildren(ctx, "ml", []ChildSpec{
		{Name: "Reinforcement Learning"},
		{Name: "supervised learning"}, // collides with existing sibling
		{Name: ""},
	})
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("want *StructuralError, got %v", err)
	}
	if len(se.Violations) != 2 {
		t.Errorf("violations = %v, want collision + empty name", se.Violations)
	}
	// The valid candidate must not land either.
	if _, ok := tr.topics["reinforcement-learning"]; ok {
		t.Error("partial write: reinforcement-learning committed despite violations")
	}
}

func TestAddChildrenSlugCollisionGetsParentPrefix(t *testing.T) {
	svc, _, _ := rootedService(
		&store.Topic{TopicID: "supervised", ParentID: "ml", Name: "Old Supervised", Depth: 1},
	)
	ctx := context.Background()

	kids, err := svc.AddChildren(ctx, "supervised", []ChildSpec{
		{Name: "Supervised"}, // slug collides with its own parent id
	})
	if err != nil {
		t.Fatalf("AddChildren: %v", err)
	}
	if kids[0].TopicID != "supervised-supervised" {
		t.Errorf("id = %q, want parent-prefixed slug", kids[0].TopicID)
	}
}

func TestAddChildrenUnknownParent(t *testing.T) {
	svc, _, _ := rootedService()
	_, err := svc.AddChildren(context.Background(), "ghost", []ChildSpec{{Name: "X"}})
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("want *StructuralError, got %v", err)
	}
	if !strings.Contains(se.Error(), "does not exist") {
		t.Errorf("got: %s", se.Error())
	}
}

func TestUnlockedTopicsAlwaysIncludesRoot(t *testing.T) {
	svc, _, pr := rootedService(
		&store.Topic{TopicID: "supervised", ParentID: "ml", Name: "Supervised", Depth: 1},
		&store.Topic{TopicID: "unsupervised", ParentID: "ml", Name: "Unsupervised", Depth: 1},
	)
	ctx := context.Background()

	got, err := svc.UnlockedTopics(ctx, "u1")
	if err != nil {
		t.Fatalf("UnlockedTopics: %v", err)
	}
	if len(got) != 1 || got[0].TopicID != "ml" {
		t.Fatalf("fresh learner should see only the root, got %d topics", len(got))
	}

	pr.Create(ctx, &store.Progress{UserID: "u1", TopicID: "supervised", Unlocked: true})
	pr.Create(ctx, &store.Progress{UserID: "u1", TopicID: "unsupervised", Unlocked: false})

	got, err = svc.UnlockedTopics(ctx, "u1")
	if err != nil {
		t.Fatalf("UnlockedTopics: %v", err)
	}
	ids := map[string]bool{}
	for _, tp := range got {
		ids[tp.TopicID] = true
	}
	if len(got) != 2 || !ids["ml"] || !ids["supervised"] {
		t.Errorf("unlocked = %v", ids)
	}
}

func TestUnlockIdempotentAndOneWay(t *testing.T) {
	svc, _, pr := rootedService(
		&store.Topic{TopicID: "supervised", ParentID: "ml", Name: "Supervised", Depth: 1},
	)
	ctx := context.Background()

	if err := svc.Unlock(ctx, "u1", "supervised"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	p, err := pr.Get(ctx, "u1", "supervised")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !p.Unlocked || p.MasteryLevel != string(mastery.LevelNovice) {
		t.Errorf("progress = %+v", p)
	}
	v := p.Version

	// Second unlock is a no-op and must not bump the version.
	if err := svc.Unlock(ctx, "u1", "supervised"); err != nil {
		t.Fatalf("Unlock (second): %v", err)
	}
	p, _ = pr.Get(ctx, "u1", "supervised")
	if p.Version != v {
		t.Errorf("idempotent unlock changed version %d -> %d", v, p.Version)
	}
}

func TestUnlockUnknownTopic(t *testing.T) {
	svc, _, _ := rootedService()
	err := svc.Unlock(context.Background(), "u1", "ghost")
	var ive *mastery.InvalidTopicStateError
	if !errors.As(err, &ive) {
		t.Fatalf("want *mastery.InvalidTopicStateError, got %v", err)
	}
}
