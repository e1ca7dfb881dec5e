package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarerdinc/relevia/internal/diversity"
	"github.com/acarerdinc/relevia/internal/interest"
	"github.com/acarerdinc/relevia/internal/mastery"
	"github.com/acarerdinc/relevia/internal/ontology"
	"github.com/acarerdinc/relevia/internal/questiongen"
	"github.com/acarerdinc/relevia/internal/selector"
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

func pkey(userID, topicID string) string { return userID + "/" + topicID }

type memProgressRepo struct {
	mu      sync.Mutex
	records map[string]*store.Progress
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{records: map[string]*store.Progress{}}
}

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

type memQuestionRepo struct {
	mu        sync.Mutex
	questions []*store.Question
}

func (r *memQuestionRepo) Save(_ context.Context, q *store.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *q
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.questions = append(r.questions, &cp)
	return nil
}

func (r *memQuestionRepo) Get(_ context.Context, questionID string) (*store.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.questions {
		if q.QuestionID == questionID {
			cp := *q
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *memQuestionRepo) ForTopic(_ context.Context, topicID string, limit int) ([]*store.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Question
	for i := len(r.questions) - 1; i >= 0 && len(out) < limit; i-- {
		if r.questions[i].TopicID == topicID {
			cp := *r.questions[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memConceptRepo struct {
	mu      sync.Mutex
	entries []*store.ConceptEntry
}

func (r *memConceptRepo) Append(_ context.Context, e *store.ConceptEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memConceptRepo) Recent(_ context.Context, userID, topicID string, n int) ([][]string, error) {
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

// scriptedGen returns canned questions and subtopic sets in call order.
type scriptedGen struct {
	mu            sync.Mutex
	questions     []*questiongen.Candidate
	questionErrs  []error
	questionCalls []questiongen.GenerateInput
	subtopics     [][]questiongen.TopicCandidate
	subtopicCalls []questiongen.SubtopicInput
}

func (g *scriptedGen) GenerateQuestion(_ context.Context, input questiongen.GenerateInput) (*questiongen.Candidate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.questionCalls = append(g.questionCalls, input)
	i := len(g.questionCalls) - 1
	if i < len(g.questionErrs) && g.questionErrs[i] != nil {
		return nil, g.questionErrs[i]
	}
	if i < len(g.questions) {
		c := *g.questions[i]
		c.TopicID = input.Topic.TopicID
		c.MasteryLevel = input.MasteryLevel
		return &c, nil
	}
	// Repeat the last scripted question when the script runs out.
	if len(g.questions) > 0 {
		c := *g.questions[len(g.questions)-1]
		c.TopicID = input.Topic.TopicID
		c.MasteryLevel = input.MasteryLevel
		return &c, nil
	}
	return nil, &questiongen.GenerationError{Op: "question", Err: errors.New("script exhausted")}
}

func (g *scriptedGen) GenerateSubtopics(_ context.Context, input questiongen.SubtopicInput) ([]questiongen.TopicCandidate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subtopicCalls = append(g.subtopicCalls, input)
	i := len(g.subtopicCalls) - 1
	if i < len(g.subtopics) {
		return g.subtopics[i], nil
	}
	return nil, &questiongen.GenerationError{Op: "subtopics", Err: errors.New("script exhausted")}
}

func sampleQuestion(text string) *questiongen.Candidate {
	return &questiongen.Candidate{
		QuestionText:  text,
		Options:       []string{"gradient descent", "grid search", "pruning", "bagging"},
		CorrectAnswer: "gradient descent",
		Explanation:   "Gradient descent minimizes the loss iteratively.",
		Difficulty:    3,
		Concepts:      diversity.ExtractConcepts(text),
	}
}

type fixture struct {
	eng       *Engine
	gen       *scriptedGen
	topics    *memTopicRepo
	progress  *memProgressRepo
	interests *memInterestRepo
	questions *memQuestionRepo
	concepts  *memConceptRepo
}

func newFixture(t *testing.T, gen *scriptedGen) *fixture {
	t.Helper()
	topics := newMemTopicRepo(&store.Topic{
		TopicID: "ml", Name: "Machine Learning", Depth: 0,
		DifficultyMin: 1, DifficultyMax: 10,
	})
	progress := newMemProgressRepo()
	interests := newMemInterestRepo()
	questions := &memQuestionRepo{}
	concepts := &memConceptRepo{}
	markers := &memExpansionRepo{}

	graph := topicgraph.NewService(topics, progress)
	masteries := mastery.NewService(topics, progress, nil, mastery.DefaultConfig())
	interestSvc := interest.NewService(interests, interest.DefaultConfig())
	guard := diversity.NewGuard(concepts, diversity.DefaultConfig())
	sel := selector.New(selector.DefaultConfig(), rand.New(rand.NewPCG(1, 0)))
	expander := ontology.NewService(graph, masteries, interestSvc, gen, markers, ontology.DefaultConfig())

	eng := New(graph, masteries, interestSvc, guard, sel, gen, expander, questions, nil, DefaultConfig())
	return &fixture{
		eng: eng, gen: gen, topics: topics, progress: progress,
		interests: interests, questions: questions, concepts: concepts,
	}
}

func TestSelectNextServesGeneratedQuestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questions: []*questiongen.Candidate{
		sampleQuestion("What does gradient descent minimize?"),
	}})

	turn, err := f.eng.SelectNext(ctx, "u1")
	require.NoError(t, err)

	assert.NotEmpty(t, turn.SessionID)
	assert.Equal(t, "ml", turn.Topic.TopicID)
	assert.False(t, turn.FromBank)
	require.NotNil(t, turn.Question)
	assert.NotEmpty(t, turn.Question.QuestionID)
	assert.Equal(t, "gradient descent", turn.Question.CorrectAnswer)
	assert.Equal(t, "novice", turn.Question.MasteryLevel)

	// The accepted question is persisted and its concepts logged.
	stored, err := f.questions.Get(ctx, turn.Question.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, turn.Question.QuestionText, stored.QuestionText)
	require.Len(t, f.concepts.entries, 1)
	assert.Equal(t, turn.Question.QuestionID, f.concepts.entries[0].QuestionID)

	// Serving counts as a selection.
	p, err := f.progress.Get(ctx, "u1", "ml")
	require.NoError(t, err)
	assert.Equal(t, 1, p.SelectionCount)
	require.NotNil(t, p.LastSeenAt)
}

func TestSelectNextFallsBackToBank(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questionErrs: []error{
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
	}})

	banked := questiongen.ToRecord(sampleQuestion("Which optimizer follows the loss gradient?"))
	banked.TopicID = "ml"
	require.NoError(t, f.questions.Save(ctx, banked))

	turn, err := f.eng.SelectNext(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, turn.FromBank)
	assert.Equal(t, banked.QuestionID, turn.Question.QuestionID)
}

func TestSelectNextNoBankPropagatesGenerationError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questionErrs: []error{
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
		&questiongen.GenerationError{Op: "question", Err: errors.New("provider down")},
	}})

	_, err := f.eng.SelectNext(ctx, "u1")
	var genErr *questiongen.GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestSubmitAnswerCorrect(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questions: []*questiongen.Candidate{
		sampleQuestion("What does gradient descent minimize?"),
	}})

	turn, err := f.eng.SelectNext(ctx, "u1")
	require.NoError(t, err)

	out, err := f.eng.SubmitAnswer(ctx, AnswerInput{
		UserID:     "u1",
		QuestionID: turn.Question.QuestionID,
		Action:     ActionAnswer,
		Answer:     "gradient descent",
	})
	require.NoError(t, err)

	assert.True(t, out.Correct)
	assert.Equal(t, "gradient descent", out.CorrectAnswer)
	require.NotNil(t, out.Mastery)
	assert.Equal(t, 1, out.Mastery.QuestionsAnswered)
	assert.InDelta(t, 0.95, out.InterestScore, 1e-9)
	assert.InDelta(t, 1.0, out.SessionAccuracy, 1e-9)
}

func TestSubmitAnswerIncorrect(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questions: []*questiongen.Candidate{
		sampleQuestion("What does gradient descent minimize?"),
	}})

	turn, err := f.eng.SelectNext(ctx, "u1")
	require.NoError(t, err)

	out, err := f.eng.SubmitAnswer(ctx, AnswerInput{
		UserID:     "u1",
		QuestionID: turn.Question.QuestionID,
		Action:     ActionAnswer,
		Answer:     "grid search",
	})
	require.NoError(t, err)

	assert.False(t, out.Correct)
	require.NotNil(t, out.Mastery)
	assert.InDelta(t, 0.45, out.InterestScore, 1e-9)
	assert.InDelta(t, 0.0, out.SessionAccuracy, 1e-9)
}

func TestSubmitSkipLeavesMasteryUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questions: []*questiongen.Candidate{
		sampleQuestion("What does gradient descent minimize?"),
	}})

	turn, err := f.eng.SelectNext(ctx, "u1")
	require.NoError(t, err)

	out, err := f.eng.SubmitAnswer(ctx, AnswerInput{
		UserID:     "u1",
		QuestionID: turn.Question.QuestionID,
		Action:     ActionSkip,
	})
	require.NoError(t, err)

	assert.Nil(t, out.Mastery)
	assert.InDelta(t, 0.1, out.InterestScore, 1e-9)

	p, err := f.eng.masteries.Progress(ctx, "u1", "ml")
	require.NoError(t, err)
	assert.Equal(t, 0, p.QuestionsAnswered)
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{})

	_, err := f.eng.SubmitAnswer(ctx, AnswerInput{
		UserID:     "u1",
		QuestionID: "ghost",
		Action:     ActionAnswer,
	})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestRepeatedActionAppliesInterestOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questions: []*questiongen.Candidate{
		sampleQuestion("What does gradient descent minimize?"),
	}})

	turn, err := f.eng.SelectNext(ctx, "u1")
	require.NoError(t, err)

	input := AnswerInput{
		UserID:     "u1",
		QuestionID: turn.Question.QuestionID,
		Action:     ActionTeachMe,
	}
	first, err := f.eng.SubmitAnswer(ctx, input)
	require.NoError(t, err)
	second, err := f.eng.SubmitAnswer(ctx, input)
	require.NoError(t, err)

	assert.InDelta(t, 0.65, first.InterestScore, 1e-9)
	assert.InDelta(t, first.InterestScore, second.InterestScore, 1e-9,
		"replaying the same action in a session must not move the score")
}

func subtopicSet() []questiongen.TopicCandidate {
	return []questiongen.TopicCandidate{
		{Name: "Supervised Learning", Description: "Labeled data", DifficultyMin: 2, DifficultyMax: 8},
		{Name: "Unsupervised Learning", Description: "Unlabeled data", DifficultyMin: 2, DifficultyMax: 8},
		{Name: "Reinforcement Learning", Description: "Reward signals", DifficultyMin: 3, DifficultyMax: 9},
	}
}

func TestAdvanceTriggersBackgroundExpansion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{
		questions: []*questiongen.Candidate{
			sampleQuestion("What does gradient descent minimize?"),
		},
		subtopics: [][]questiongen.TopicCandidate{subtopicSet()},
	})

	// Three correct answers advance novice to competent, which kicks
	// off a background expansion of the topic.
	var lastTopic string
	for i := 0; i < 3; i++ {
		turn, err := f.eng.SelectNext(ctx, "u1")
		require.NoError(t, err)
		lastTopic = turn.Topic.TopicID
		_, err = f.eng.SubmitAnswer(ctx, AnswerInput{
			UserID:     "u1",
			QuestionID: turn.Question.QuestionID,
			Action:     ActionAnswer,
			Answer:     turn.Question.CorrectAnswer,
		})
		require.NoError(t, err)
	}
	require.Equal(t, "ml", lastTopic)
	f.eng.WaitForExpansions()

	require.NotEmpty(t, f.gen.subtopicCalls, "advance to competent should trigger expansion")

	// The next turn on the topic reports the new children.
	for i := 0; i < 10; i++ {
		turn, err := f.eng.SelectNext(ctx, "u1")
		require.NoError(t, err)
		if turn.Topic.TopicID != "ml" {
			continue
		}
		assert.Len(t, turn.NewSubtopics, 3)
		return
	}
	t.Fatal("never selected the expanded topic again")
}

func TestRequestSubtopicsUnlocksChildren(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{
		subtopics: [][]questiongen.TopicCandidate{subtopicSet()},
	})

	// Seed an eligible topic directly.
	require.NoError(t, f.progress.Create(ctx, &store.Progress{
		UserID: "u1", TopicID: "ml",
		MasteryLevel:       "competent",
		CanUnlockSubtopics: true,
		Unlocked:           true,
	}))
	require.NoError(t, f.interests.Create(ctx, &store.Interest{
		UserID: "u1", TopicID: "ml", Score: 0.7,
	}))

	f.eng.RequestSubtopics("u1", "ml")
	f.eng.WaitForExpansions()

	all, err := f.topics.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// Learner-requested children are unlocked immediately.
	for _, topic := range all {
		if topic.TopicID == "ml" {
			continue
		}
		p, err := f.progress.Get(ctx, "u1", topic.TopicID)
		require.NoError(t, err)
		assert.True(t, p.Unlocked, "child %s", topic.TopicID)
	}
}

func TestBuildDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{questions: []*questiongen.Candidate{
		sampleQuestion("What does gradient descent minimize?"),
	}})

	turn, err := f.eng.SelectNext(ctx, "u1")
	require.NoError(t, err)
	_, err = f.eng.SubmitAnswer(ctx, AnswerInput{
		UserID:     "u1",
		QuestionID: turn.Question.QuestionID,
		Action:     ActionAnswer,
		Answer:     turn.Question.CorrectAnswer,
	})
	require.NoError(t, err)

	d, err := f.eng.BuildDashboard(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, d.Topics, 1)
	row := d.Topics[0]
	assert.Equal(t, "ml", row.Topic.TopicID)
	assert.Equal(t, "novice", row.MasteryLevel)
	assert.True(t, row.Unlocked)
	assert.Equal(t, 1, row.Answered)
	assert.InDelta(t, 1.0, row.Accuracy, 1e-9)
	assert.InDelta(t, 0.95, row.InterestScore, 1e-9)
	assert.Equal(t, 1, d.TotalAnswered)
	assert.Equal(t, 1, d.TotalCorrect)
	assert.InDelta(t, 1.0, d.OverallAccuracy, 1e-9)
}

func TestDashboardUnseenLearnerGetsNeutralRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &scriptedGen{})

	d, err := f.eng.BuildDashboard(ctx, "stranger")
	require.NoError(t, err)

	require.Len(t, d.Topics, 1)
	row := d.Topics[0]
	assert.Equal(t, "novice", row.MasteryLevel)
	assert.InDelta(t, 0.5, row.InterestScore, 1e-9)
	assert.True(t, row.Unlocked, "the root is always available")
	assert.Zero(t, d.TotalAnswered)
}
