package store

import (
	"context"
	"fmt"

	"github.com/acarerdinc/relevia/ent"
	"github.com/acarerdinc/relevia/ent/topic"
)

// topicRepo implements TopicRepo using the ent client.
type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Create(ctx context.Context, t *Topic) error {
	_, err := r.client.Topic.Create().
		SetTopicID(t.TopicID).
		SetParentID(t.ParentID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetDepth(t.Depth).
		SetDifficultyMin(t.DifficultyMin).
		SetDifficultyMax(t.DifficultyMax).
		SetGenerated(t.Generated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save topic %s: %w", t.TopicID, err)
	}
	return nil
}

func (r *topicRepo) CreateChildren(ctx context.Context, parentID string, children []*Topic) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	parent, err := tx.Topic.Query().Where(topic.TopicID(parentID)).Only(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return notFound("topic", parentID)
		}
		return fmt.Errorf("query parent %s: %w", parentID, err)
	}

	for _, c := range children {
		_, err := tx.Topic.Create().
			SetTopicID(c.TopicID).
			SetParentID(parentID).
			SetName(c.Name).
			SetDescription(c.Description).
			SetDepth(parent.Depth + 1).
			SetDifficultyMin(c.DifficultyMin).
			SetDifficultyMax(c.DifficultyMax).
			SetGenerated(c.Generated).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save child %s: %w", c.TopicID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit children of %s: %w", parentID, err)
	}
	return nil
}

func (r *topicRepo) Get(ctx context.Context, topicID string) (*Topic, error) {
	t, err := r.client.Topic.Query().
		Where(topic.TopicID(topicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, notFound("topic", topicID)
		}
		return nil, fmt.Errorf("query topic %s: %w", topicID, err)
	}
	return entTopicToTopic(t), nil
}

func (r *topicRepo) Children(ctx context.Context, topicID string) ([]*Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(topic.ParentID(topicID)).
		Order(ent.Asc(topic.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query children of %s: %w", topicID, err)
	}
	out := make([]*Topic, len(rows))
	for i, t := range rows {
		out[i] = entTopicToTopic(t)
	}
	return out, nil
}

func (r *topicRepo) All(ctx context.Context) ([]*Topic, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(topic.FieldDepth), ent.Asc(topic.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all topics: %w", err)
	}
	out := make([]*Topic, len(rows))
	for i, t := range rows {
		out[i] = entTopicToTopic(t)
	}
	return out, nil
}

func entTopicToTopic(t *ent.Topic) *Topic {
	return &Topic{
		TopicID:       t.TopicID,
		ParentID:      t.ParentID,
		Name:          t.Name,
		Description:   t.Description,
		Depth:         t.Depth,
		DifficultyMin: t.DifficultyMin,
		DifficultyMax: t.DifficultyMax,
		Generated:     t.Generated,
		CreatedAt:     t.CreatedAt,
	}
}
