package topicgraph

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/acarerdinc/relevia/internal/mastery"
	"github.com/acarerdinc/relevia/internal/store"
)

// ChildSpec describes one candidate subtopic to add under a parent.
type ChildSpec struct {
	Name          string
	Description   string
	DifficultyMin int
	DifficultyMax int
}

// Service owns all topic-graph reads and writes. Other components go
// through it rather than touching TopicRepo directly.
type Service struct {
	topics   store.TopicRepo
	progress store.ProgressRepo
}

// NewService creates a topic graph service over the given repos.
func NewService(topics store.TopicRepo, progress store.ProgressRepo) *Service {
	return &Service{topics: topics, progress: progress}
}

// Load fetches the full topic set and builds the validated arena.
func (s *Service) Load(ctx context.Context) (*Graph, error) {
	topics, err := s.topics.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}
	return Build(topics)
}

// EnsureRoot creates the root topic if the graph is empty and returns
// the root either way.
func (s *Service) EnsureRoot(ctx context.Context, name, description string) (*store.Topic, error) {
	g, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if g.Root() != nil {
		return g.Root(), nil
	}

	root := &store.Topic{
		TopicID:       Slugify(name),
		Name:          name,
		Description:   description,
		Depth:         0,
		DifficultyMin: 1,
		DifficultyMax: 10,
	}
	if err := s.topics.Create(ctx, root); err != nil {
		return nil, fmt.Errorf("create root: %w", err)
	}
	return root, nil
}

// AddChildren validates a candidate subtopic set against the current
// graph and commits it atomically. On any structural violation nothing
// is written and a *StructuralError lists every problem found.
func (s *Service) AddChildren(ctx context.Context, parentID string, specs []ChildSpec) ([]*store.Topic, error) {
	g, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	parent := g.Get(parentID)
	if parent == nil {
		return nil, &StructuralError{
			Violations: []string{fmt.Sprintf("parent topic %q does not exist", parentID)},
		}
	}

	var errs []string

	siblingNames := make(map[string]bool)
	for _, c := range g.Children(parentID) {
		siblingNames[strings.ToLower(c.Name)] = true
	}

	children := make([]*store.Topic, 0, len(specs))
	seenIDs := make(map[string]bool, len(specs))
	for _, spec := range specs {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			errs = append(errs, "candidate with empty name")
			continue
		}
		key := strings.ToLower(name)
		if siblingNames[key] {
			errs = append(errs, fmt.Sprintf("name collision among siblings of %q: %q", parentID, name))
		}
		siblingNames[key] = true

		id := Slugify(name)
		if g.Get(id) != nil || seenIDs[id] {
			id = parentID + "-" + id
		}
		if g.Get(id) != nil || seenIDs[id] {
			errs = append(errs, fmt.Sprintf("cannot derive unique id for candidate %q", name))
			continue
		}
		seenIDs[id] = true

		children = append(children, &store.Topic{
			TopicID:       id,
			ParentID:      parentID,
			Name:          name,
			Description:   spec.Description,
			Depth:         parent.Depth + 1,
			DifficultyMin: spec.DifficultyMin,
			DifficultyMax: spec.DifficultyMax,
			Generated:     true,
		})
	}

	if len(errs) > 0 {
		return nil, &StructuralError{Violations: errs}
	}

	if err := s.topics.CreateChildren(ctx, parentID, children); err != nil {
		return nil, fmt.Errorf("commit children of %s: %w", parentID, err)
	}
	return children, nil
}

// UnlockedTopics returns the set of topics selectable for a learner.
// The root is always included even before any progress exists.
func (s *Service) UnlockedTopics(ctx context.Context, userID string) ([]*store.Topic, error) {
	g, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if g.Root() == nil {
		return nil, nil
	}

	records, err := s.progress.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress for %s: %w", userID, err)
	}

	unlocked := []*store.Topic{g.Root()}
	for _, p := range records {
		if !p.Unlocked || p.TopicID == g.Root().TopicID {
			continue
		}
		if t := g.Get(p.TopicID); t != nil {
			unlocked = append(unlocked, t)
		}
	}
	return unlocked, nil
}

// Unlock marks a topic selectable for a learner. Unlocking is one-way
// and idempotent: an already unlocked topic is a no-op.
func (s *Service) Unlock(ctx context.Context, userID, topicID string) error {
	g, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if g.Get(topicID) == nil {
		return &mastery.InvalidTopicStateError{TopicID: topicID, Reason: "unknown topic"}
	}

	for attempt := 0; attempt < 3; attempt++ {
		p, err := s.progress.Get(ctx, userID, topicID)
		if errors.Is(err, store.ErrNotFound) {
			p = &store.Progress{
				UserID:       userID,
				TopicID:      topicID,
				MasteryLevel: string(mastery.LevelNovice),
				Unlocked:     true,
			}
			if err := s.progress.Create(ctx, p); err != nil {
				return fmt.Errorf("create progress %s/%s: %w", userID, topicID, err)
			}
			return nil
		}
		if err != nil {
			return err
		}
		if p.Unlocked {
			return nil
		}
		p.Unlocked = true
		err = s.progress.Update(ctx, p)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		return err
	}
	return fmt.Errorf("unlock %s/%s: %w", userID, topicID, store.ErrVersionConflict)
}
