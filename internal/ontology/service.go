package ontology

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/acarerdinc/relevia/internal/interest"
	"github.com/acarerdinc/relevia/internal/mastery"
	"github.com/acarerdinc/relevia/internal/questiongen"
	"github.com/acarerdinc/relevia/internal/store"
	"github.com/acarerdinc/relevia/internal/topicgraph"
)

// ErrNotEligible is returned by Expand when the topic does not meet
// the growth criteria. Triggers treat it as a no-op.
var ErrNotEligible = errors.New("topic not eligible for expansion")

// ExpansionFailedError reports that every regeneration attempt
// produced an invalid candidate set. The topic stays childless and
// eligibility is re-evaluated on a later trigger.
type ExpansionFailedError struct {
	TopicID string
	Detail  string
}

func (e *ExpansionFailedError) Error() string {
	return fmt.Sprintf("expansion of %q failed: %s", e.TopicID, e.Detail)
}

// Config holds the expansion tunables.
type Config struct {
	// InterestFloor is the minimum interest score on the parent for
	// automatic expansion.
	InterestFloor float64

	// CandidateCount is how many subtopics to request.
	CandidateCount int

	// MaxRegenerations bounds the generate-validate loop.
	MaxRegenerations int

	// MarkerTTL is how long an in-flight marker blocks duplicate
	// triggers before it is considered stuck.
	MarkerTTL time.Duration

	// ExpandTimeout bounds a background expansion end to end.
	ExpandTimeout time.Duration
}

// DefaultConfig returns the standard expansion tunables.
func DefaultConfig() Config {
	return Config{
		InterestFloor:    0.4,
		CandidateCount:   6,
		MaxRegenerations: 3,
		MarkerTTL:        2 * time.Minute,
		ExpandTimeout:    90 * time.Second,
	}
}

// Result is a finished background expansion, held until a later turn
// consumes it.
type Result struct {
	UserID   string
	TopicID  string
	Children []*store.Topic
	Err      error
}

// Service grows the topic graph: it decides when a topic is eligible
// for subtopic expansion, validates candidate sets for MECE
// compliance, and commits accepted sets through the topic graph.
type Service struct {
	graph     *topicgraph.Service
	masteries *mastery.Service
	interests *interest.Service
	gen       questiongen.Generator
	markers   store.ExpansionRepo
	cfg       Config

	mu      sync.Mutex
	results map[string]*Result
	wg      sync.WaitGroup
}

// NewService creates an ontology expander.
func NewService(
	graph *topicgraph.Service,
	masteries *mastery.Service,
	interests *interest.Service,
	gen questiongen.Generator,
	markers store.ExpansionRepo,
	cfg Config,
) *Service {
	return &Service{
		graph:     graph,
		masteries: masteries,
		interests: interests,
		gen:       gen,
		markers:   markers,
		cfg:       cfg,
		results:   map[string]*Result{},
	}
}

// Eligible reports whether the topic qualifies for automatic growth:
// the learner reached competent on it, it has no children yet, and the
// learner's interest clears the floor.
func (s *Service) Eligible(ctx context.Context, userID, topicID string) (bool, error) {
	g, err := s.graph.Load(ctx)
	if err != nil {
		return false, err
	}
	if g.Get(topicID) == nil {
		return false, &mastery.InvalidTopicStateError{TopicID: topicID, Reason: "unknown topic"}
	}
	if g.HasChildren(topicID) {
		return false, nil
	}

	p, err := s.masteries.Progress(ctx, userID, topicID)
	if err != nil {
		return false, err
	}
	if !p.CanUnlockSubtopics {
		return false, nil
	}

	score, err := s.interests.Score(ctx, userID, topicID)
	if err != nil {
		return false, err
	}
	return score >= s.cfg.InterestFloor, nil
}

// Expand grows the topic with generated subtopics. A learner-requested
// expansion unlocks the new children for that learner immediately;
// otherwise they stay locked pending the normal thresholds.
//
// Returns store.ErrExpansionInFlight when another expansion for the
// pair is already running, and ErrNotEligible when the growth criteria
// are not met.
func (s *Service) Expand(ctx context.Context, userID, topicID string, learnerRequested bool) ([]*store.Topic, error) {
	ok, err := s.Eligible(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotEligible
	}

	marker, err := s.markers.Begin(ctx, userID, topicID, s.cfg.MarkerTTL)
	if err != nil {
		return nil, err
	}

	// A concurrent expansion may have committed children between the
	// eligibility check and the marker acquisition.
	g, err := s.graph.Load(ctx)
	if err != nil {
		s.finish(ctx, marker.ID, store.ExpansionFailed, err.Error())
		return nil, err
	}
	if g.HasChildren(topicID) {
		s.finish(ctx, marker.ID, store.ExpansionFailed, "children already committed by a concurrent expansion")
		return nil, ErrNotEligible
	}
	parent := g.Get(topicID)

	p, err := s.masteries.Progress(ctx, userID, topicID)
	if err != nil {
		s.finish(ctx, marker.ID, store.ExpansionFailed, err.Error())
		return nil, err
	}
	accuracy := 0.0
	if p.QuestionsAnswered > 0 {
		accuracy = float64(p.CorrectAnswers) / float64(p.QuestionsAnswered)
	}

	var rejected []string
	var lastProblem string
	for attempt := 0; attempt < s.cfg.MaxRegenerations; attempt++ {
		cands, genErr := s.gen.GenerateSubtopics(ctx, questiongen.SubtopicInput{
			Parent:       parent,
			Count:        s.cfg.CandidateCount,
			MasteryLevel: p.MasteryLevel,
			Accuracy:     accuracy,
			Rejected:     rejected,
		})
		if genErr != nil {
			lastProblem = genErr.Error()
			continue
		}

		if violations := ValidateCandidates(parent, cands); len(violations) > 0 {
			lastProblem = strings.Join(violations, "; ")
			rejected = candidateNames(cands)
			continue
		}

		specs := make([]topicgraph.ChildSpec, len(cands))
		for i, c := range cands {
			specs[i] = topicgraph.ChildSpec{
				Name:          c.Name,
				Description:   c.Description,
				DifficultyMin: c.DifficultyMin,
				DifficultyMax: c.DifficultyMax,
			}
		}

		children, addErr := s.graph.AddChildren(ctx, topicID, specs)
		if addErr != nil {
			var se *topicgraph.StructuralError
			if errors.As(addErr, &se) {
				lastProblem = se.Error()
				rejected = candidateNames(cands)
				continue
			}
			s.finish(ctx, marker.ID, store.ExpansionFailed, addErr.Error())
			return nil, addErr
		}

		if learnerRequested {
			for _, c := range children {
				if uerr := s.graph.Unlock(ctx, userID, c.TopicID); uerr != nil {
					s.finish(ctx, marker.ID, store.ExpansionFailed, uerr.Error())
					return children, uerr
				}
			}
		}

		s.finish(ctx, marker.ID, store.ExpansionSucceeded, "")
		return children, nil
	}

	s.finish(ctx, marker.ID, store.ExpansionFailed, lastProblem)
	return nil, &ExpansionFailedError{TopicID: topicID, Detail: lastProblem}
}

func (s *Service) finish(ctx context.Context, markerID int, status, detail string) {
	// Marker bookkeeping must not mask the expansion outcome.
	_ = s.markers.Finish(ctx, markerID, status, detail)
}

// TriggerAsync runs an expansion in the background. The outcome is
// held for a later turn to Consume; ineligible and already-in-flight
// triggers leave no result.
func (s *Service) TriggerAsync(userID, topicID string, learnerRequested bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ExpandTimeout)
		defer cancel()

		children, err := s.Expand(ctx, userID, topicID, learnerRequested)
		if errors.Is(err, ErrNotEligible) || errors.Is(err, store.ErrExpansionInFlight) {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.results[resultKey(userID, topicID)] = &Result{
			UserID:   userID,
			TopicID:  topicID,
			Children: children,
			Err:      err,
		}
	}()
}

// Consume returns the finished background expansion for the pair, if
// any, clearing the slot.
func (s *Service) Consume(userID, topicID string) (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[resultKey(userID, topicID)]
	if ok {
		delete(s.results, resultKey(userID, topicID))
	}
	return r, ok
}

// Wait blocks until all in-flight background expansions finish.
func (s *Service) Wait() {
	s.wg.Wait()
}

func resultKey(userID, topicID string) string {
	return userID + "/" + topicID
}

func candidateNames(cands []questiongen.TopicCandidate) []string {
	names := make([]string, len(cands))
	for i, c := range cands {
		names[i] = c.Name
	}
	return names
}
