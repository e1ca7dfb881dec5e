// Package engine is the facade the presentation layer talks to. It
// assembles the trackers, the topic graph, the bandit, the diversity
// guard, and the expander into three operations: pick the next
// question, record the learner's response, and summarize progress.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/acarerdinc/relevia/internal/diversity"
	"github.com/acarerdinc/relevia/internal/interest"
	"github.com/acarerdinc/relevia/internal/mastery"
	"github.com/acarerdinc/relevia/internal/ontology"
	"github.com/acarerdinc/relevia/internal/questiongen"
	"github.com/acarerdinc/relevia/internal/selector"
	"github.com/acarerdinc/relevia/internal/store"
	"github.com/acarerdinc/relevia/internal/topicgraph"
)

// Config holds the engine tunables.
type Config struct {
	// Strategy picks between the adaptive bandit and fixed rotation.
	Strategy selector.Strategy

	// SessionIdle rotates a learner onto a fresh session after this
	// much inactivity.
	SessionIdle time.Duration

	// FallbackQuestions is how many stored questions to consider when
	// generation is unavailable.
	FallbackQuestions int
}

// DefaultConfig returns the standard engine tunables.
func DefaultConfig() Config {
	return Config{
		Strategy:          selector.StrategyAdaptive,
		SessionIdle:       30 * time.Minute,
		FallbackQuestions: 10,
	}
}

// Action is what the learner did with a served question.
type Action string

const (
	ActionAnswer  Action = "answer"
	ActionSkip    Action = "skip"
	ActionTeachMe Action = "teach_me"
)

// ErrUnknownQuestion is returned when an answer references a question
// id the engine never served.
var ErrUnknownQuestion = errors.New("unknown question")

// Turn is what SelectNext hands the presentation layer.
type Turn struct {
	SessionID string
	Topic     *store.Topic
	Question  *store.Question

	// FromBank is set when generation was unavailable and a stored
	// question was re-served.
	FromBank bool

	// DiversityExhausted records that no candidate cleared the
	// diversity threshold and the best seen was accepted. Diagnostic
	// only.
	DiversityExhausted bool

	// NewSubtopics lists children that appeared since the learner's
	// last turn on this topic, from a finished background expansion.
	NewSubtopics []*store.Topic
}

// AnswerInput describes one learner response.
type AnswerInput struct {
	UserID     string
	QuestionID string
	Action     Action

	// Answer is the chosen option text. Ignored for skip and teach_me.
	Answer string

	// TimeMs is how long the learner took, for the event log.
	TimeMs int
}

// AnswerOutcome reports what the response changed.
type AnswerOutcome struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string

	// Mastery is nil for skip and teach_me actions.
	Mastery *mastery.Event

	InterestScore   float64
	SessionAccuracy float64
}

// Engine wires the components together behind SelectNext, SubmitAnswer
// and Dashboard.
type Engine struct {
	graph     *topicgraph.Service
	masteries *mastery.Service
	interests *interest.Service
	guard     *diversity.Guard
	sel       *selector.Selector
	gen       questiongen.Generator
	expander  *ontology.Service
	questions store.QuestionRepo
	events    store.EventRepo
	cfg       Config

	sessions *sessionTracker
}

// New assembles an engine from its parts.
func New(
	graph *topicgraph.Service,
	masteries *mastery.Service,
	interests *interest.Service,
	guard *diversity.Guard,
	sel *selector.Selector,
	gen questiongen.Generator,
	expander *ontology.Service,
	questions store.QuestionRepo,
	events store.EventRepo,
	cfg Config,
) *Engine {
	return &Engine{
		graph:     graph,
		masteries: masteries,
		interests: interests,
		guard:     guard,
		sel:       sel,
		gen:       gen,
		expander:  expander,
		questions: questions,
		events:    events,
		cfg:       cfg,
		sessions:  newSessionTracker(cfg.SessionIdle),
	}
}

// SelectNext picks the learner's next topic and question.
func (e *Engine) SelectNext(ctx context.Context, userID string) (*Turn, error) {
	sess := e.sessions.touch(userID)

	stats, topicsByID, err := e.topicStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	picked, err := e.sel.SelectNext(stats, e.cfg.Strategy)
	if err != nil {
		return nil, err
	}
	topic := topicsByID[picked.TopicID]

	if err := e.masteries.RecordSelection(ctx, userID, topic.TopicID); err != nil {
		return nil, err
	}

	turn := &Turn{SessionID: sess.ID, Topic: topic}

	// A background expansion may have finished since the last turn.
	if res, ok := e.expander.Consume(userID, topic.TopicID); ok && res.Err == nil {
		turn.NewSubtopics = res.Children
	}

	q, fromBank, exhausted, err := e.serveQuestion(ctx, userID, topic)
	if err != nil {
		return nil, err
	}
	turn.Question = q
	turn.FromBank = fromBank
	turn.DiversityExhausted = exhausted

	if err := e.guard.RecordShown(ctx, userID, topic.TopicID, q.QuestionID, q.Concepts); err != nil {
		return nil, err
	}
	return turn, nil
}

// serveQuestion generates a diversity-screened question, falling back
// to the stored bank when the collaborator is unavailable.
func (e *Engine) serveQuestion(ctx context.Context, userID string, topic *store.Topic) (*store.Question, bool, bool, error) {
	p, err := e.masteries.Progress(ctx, userID, topic.TopicID)
	if err != nil {
		return nil, false, false, err
	}

	prior, err := e.priorQuestionTexts(ctx, topic.TopicID)
	if err != nil {
		return nil, false, false, err
	}

	res, genErr := diversity.Screen(ctx, e.guard, userID, topic.TopicID,
		func(ctx context.Context, fb *diversity.Feedback) (*questiongen.Candidate, []string, error) {
			c, err := e.gen.GenerateQuestion(ctx, questiongen.GenerateInput{
				Topic:          topic,
				MasteryLevel:   p.MasteryLevel,
				Difficulty:     targetDifficulty(topic, p),
				PriorQuestions: prior,
				Feedback:       fb,
			})
			if err != nil {
				return nil, nil, err
			}
			return c, c.Concepts, nil
		})
	if genErr != nil {
		q, err := e.bankFallback(ctx, topic.TopicID)
		if err != nil {
			return nil, false, false, fmt.Errorf("generation failed and no stored question available: %w", genErr)
		}
		return q, true, false, nil
	}

	q := questiongen.ToRecord(res.Candidate)
	if err := e.questions.Save(ctx, q); err != nil {
		return nil, false, false, err
	}
	return q, false, res.Exhausted, nil
}

// bankFallback re-serves the freshest stored question for the topic.
func (e *Engine) bankFallback(ctx context.Context, topicID string) (*store.Question, error) {
	stored, err := e.questions.ForTopic(ctx, topicID, e.cfg.FallbackQuestions)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, store.ErrNotFound
	}
	return stored[0], nil
}

func (e *Engine) priorQuestionTexts(ctx context.Context, topicID string) ([]string, error) {
	stored, err := e.questions.ForTopic(ctx, topicID, e.cfg.FallbackQuestions)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(stored))
	// ForTopic returns newest first; the prompt wants oldest first.
	for i := len(stored) - 1; i >= 0; i-- {
		texts = append(texts, stored[i].QuestionText)
	}
	return texts, nil
}

// targetDifficulty maps the skill estimate onto the topic's band.
func targetDifficulty(t *store.Topic, p *store.Progress) int {
	lo, hi := t.DifficultyMin, t.DifficultyMax
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	d := lo + int(p.SkillEstimate*float64(hi-lo)+0.5)
	if d > hi {
		d = hi
	}
	return d
}

// SubmitAnswer records the learner's response to a served question.
func (e *Engine) SubmitAnswer(ctx context.Context, input AnswerInput) (*AnswerOutcome, error) {
	sess := e.sessions.touch(input.UserID)

	q, err := e.questions.Get(ctx, input.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, input.QuestionID)
		}
		return nil, err
	}

	out := &AnswerOutcome{
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}

	if input.Action == ActionAnswer {
		out.Correct = input.Answer == q.CorrectAnswer

		ev, err := e.masteries.RecordAnswer(ctx, input.UserID, q.TopicID, out.Correct, q.Difficulty, sess.ID)
		if err != nil {
			return nil, err
		}
		out.Mastery = ev

		sess.Answered++
		if out.Correct {
			sess.Correct++
		}

		// A fresh advance to competent makes the topic a candidate
		// for background growth.
		if ev.Advanced && ev.CanUnlockSubtopics {
			e.expander.TriggerAsync(input.UserID, q.TopicID, false)
		}
	}

	eventKey := sess.ID + "/" + input.QuestionID + "/" + string(input.Action)
	score, err := e.interests.ApplySignal(ctx, input.UserID, q.TopicID, signalFor(input.Action, out.Correct), eventKey)
	if err != nil {
		return nil, err
	}
	out.InterestScore = score
	out.SessionAccuracy = sess.Accuracy()

	if e.events != nil {
		if err := e.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			UserID:        input.UserID,
			SessionID:     sess.ID,
			TopicID:       q.TopicID,
			QuestionID:    q.QuestionID,
			Action:        string(input.Action),
			LearnerAnswer: input.Answer,
			Correct:       out.Correct,
			Difficulty:    q.Difficulty,
			TimeMs:        input.TimeMs,
		}); err != nil {
			return nil, fmt.Errorf("append answer event: %w", err)
		}
	}
	return out, nil
}

// signalFor maps a learner action to an interest signal.
func signalFor(a Action, correct bool) interest.Signal {
	switch a {
	case ActionSkip:
		return interest.SignalSkip
	case ActionTeachMe:
		return interest.SignalTeachMe
	default:
		if correct {
			return interest.SignalCorrect
		}
		return interest.SignalIncorrect
	}
}

// RequestSubtopics starts a learner-requested expansion of a topic.
// The new children, once committed, are unlocked for this learner
// immediately; the outcome is observed on a later turn.
func (e *Engine) RequestSubtopics(userID, topicID string) {
	e.expander.TriggerAsync(userID, topicID, true)
}

// topicStats snapshots the learner's unlocked topics for the bandit.
func (e *Engine) topicStats(ctx context.Context, userID string) ([]selector.TopicStats, map[string]*store.Topic, error) {
	unlocked, err := e.graph.UnlockedTopics(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if len(unlocked) == 0 {
		return nil, nil, selector.ErrNoTopics
	}

	interests, err := e.interests.ForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	stats := make([]selector.TopicStats, 0, len(unlocked))
	byID := make(map[string]*store.Topic, len(unlocked))
	for _, t := range unlocked {
		byID[t.TopicID] = t

		p, err := e.masteries.Progress(ctx, userID, t.TopicID)
		if err != nil {
			return nil, nil, err
		}

		score, ok := interests[t.TopicID]
		if !ok {
			score = 0.5
		}

		accuracy := 0.0
		if p.QuestionsAnswered > 0 {
			accuracy = float64(p.CorrectAnswers) / float64(p.QuestionsAnswered)
		}

		st := selector.TopicStats{
			TopicID:           t.TopicID,
			Depth:             t.Depth,
			Interest:          score,
			Proficiency:       p.Confidence,
			Selections:        p.SelectionCount,
			Accuracy:          accuracy,
			QuestionsAnswered: p.QuestionsAnswered,
		}
		if p.LastSeenAt != nil {
			st.LastSeen = *p.LastSeenAt
		}
		stats = append(stats, st)
	}
	return stats, byID, nil
}

// TopicSummary is one row of the dashboard.
type TopicSummary struct {
	Topic          *store.Topic
	MasteryLevel   string
	Accuracy       float64
	SkillEstimate  float64
	InterestScore  float64
	Answered       int
	SelectionCount int
	Unlocked       bool
}

// Dashboard is the learner's progress overview.
type Dashboard struct {
	Topics          []TopicSummary
	TotalAnswered   int
	TotalCorrect    int
	OverallAccuracy float64
}

// BuildDashboard summarizes the learner's standing across all topics.
func (e *Engine) BuildDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	g, err := e.graph.Load(ctx)
	if err != nil {
		return nil, err
	}

	records, err := e.masteries.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byTopic := make(map[string]*store.Progress, len(records))
	for _, p := range records {
		byTopic[p.TopicID] = p
	}

	interests, err := e.interests.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{}
	for _, t := range g.All() {
		row := TopicSummary{
			Topic:         t,
			MasteryLevel:  string(mastery.LevelNovice),
			InterestScore: 0.5,
		}
		if score, ok := interests[t.TopicID]; ok {
			row.InterestScore = score
		}
		if p, ok := byTopic[t.TopicID]; ok {
			row.MasteryLevel = p.MasteryLevel
			row.SkillEstimate = p.SkillEstimate
			row.Answered = p.QuestionsAnswered
			row.SelectionCount = p.SelectionCount
			row.Unlocked = p.Unlocked
			if p.QuestionsAnswered > 0 {
				row.Accuracy = float64(p.CorrectAnswers) / float64(p.QuestionsAnswered)
			}
			d.TotalAnswered += p.QuestionsAnswered
			d.TotalCorrect += p.CorrectAnswers
		}
		if g.Root() != nil && t.TopicID == g.Root().TopicID {
			row.Unlocked = true
		}
		d.Topics = append(d.Topics, row)
	}

	sort.Slice(d.Topics, func(i, j int) bool {
		a, b := d.Topics[i].Topic, d.Topics[j].Topic
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		return a.TopicID < b.TopicID
	})

	if d.TotalAnswered > 0 {
		d.OverallAccuracy = float64(d.TotalCorrect) / float64(d.TotalAnswered)
	}
	return d, nil
}

// WaitForExpansions blocks until background expansions settle. For
// shutdown and tests.
func (e *Engine) WaitForExpansions() {
	e.expander.Wait()
}
