package store

import (
	"context"
	"fmt"
	"time"

	"github.com/acarerdinc/relevia/ent"
	"github.com/acarerdinc/relevia/ent/expansionattempt"
)

// expansionRepo implements ExpansionRepo using the ent client.
type expansionRepo struct {
	client *ent.Client
}

func (r *expansionRepo) Begin(ctx context.Context, userID, topicID string, ttl time.Duration) (*ExpansionMarker, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	now := time.Now()
	live, err := tx.ExpansionAttempt.Query().
		Where(
			expansionattempt.UserID(userID),
			expansionattempt.TopicID(topicID),
			expansionattempt.Status(ExpansionPending),
			expansionattempt.ExpiresAtGT(now),
		).
		Exist(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("query pending expansion %s/%s: %w", userID, topicID, err)
	}
	if live {
		tx.Rollback()
		return nil, fmt.Errorf("expansion %s/%s: %w", userID, topicID, ErrExpansionInFlight)
	}

	created, err := tx.ExpansionAttempt.Create().
		SetUserID(userID).
		SetTopicID(topicID).
		SetStatus(ExpansionPending).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save expansion marker %s/%s: %w", userID, topicID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit expansion marker: %w", err)
	}

	return &ExpansionMarker{
		ID:        created.ID,
		UserID:    created.UserID,
		TopicID:   created.TopicID,
		Status:    created.Status,
		StartedAt: created.StartedAt,
		ExpiresAt: created.ExpiresAt,
	}, nil
}

func (r *expansionRepo) Finish(ctx context.Context, id int, status, detail string) error {
	_, err := r.client.ExpansionAttempt.UpdateOneID(id).
		SetStatus(status).
		SetDetail(detail).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finish expansion %d: %w", id, err)
	}
	return nil
}
