package store

import (
	"context"
	"fmt"

	"github.com/acarerdinc/relevia/ent"
	"github.com/acarerdinc/relevia/ent/interestrecord"
)

// interestRepo implements InterestRepo using the ent client.
type interestRepo struct {
	client *ent.Client
}

func (r *interestRepo) Get(ctx context.Context, userID, topicID string) (*Interest, error) {
	in, err := r.client.InterestRecord.Query().
		Where(
			interestrecord.UserID(userID),
			interestrecord.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, notFound("interest", userID+"/"+topicID)
		}
		return nil, fmt.Errorf("query interest %s/%s: %w", userID, topicID, err)
	}
	return entInterestToInterest(in), nil
}

func (r *interestRepo) ForUser(ctx context.Context, userID string) ([]*Interest, error) {
	rows, err := r.client.InterestRecord.Query().
		Where(interestrecord.UserID(userID)).
		Order(ent.Asc(interestrecord.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interest for %s: %w", userID, err)
	}
	out := make([]*Interest, len(rows))
	for i, in := range rows {
		out[i] = entInterestToInterest(in)
	}
	return out, nil
}

func (r *interestRepo) Create(ctx context.Context, in *Interest) error {
	created, err := r.client.InterestRecord.Create().
		SetUserID(in.UserID).
		SetTopicID(in.TopicID).
		SetScore(in.Score).
		SetRecentEventKeys(in.RecentEventKeys).
		SetVersion(0).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interest %s/%s: %w", in.UserID, in.TopicID, err)
	}
	in.ID = created.ID
	in.Version = 0
	return nil
}

func (r *interestRepo) Update(ctx context.Context, in *Interest) error {
	n, err := r.client.InterestRecord.Update().
		Where(
			interestrecord.ID(in.ID),
			interestrecord.Version(in.Version),
		).
		SetScore(in.Score).
		SetRecentEventKeys(in.RecentEventKeys).
		SetVersion(in.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update interest %s/%s: %w", in.UserID, in.TopicID, err)
	}
	if n == 0 {
		return fmt.Errorf("interest %s/%s at version %d: %w",
			in.UserID, in.TopicID, in.Version, ErrVersionConflict)
	}
	in.Version++
	return nil
}

func entInterestToInterest(in *ent.InterestRecord) *Interest {
	return &Interest{
		ID:           in.ID,
		UserID:       in.UserID,
		TopicID:      in.TopicID,
		Score:        in.Score,
		RecentEventKeys: in.RecentEventKeys,
		Version:      in.Version,
	}
}
