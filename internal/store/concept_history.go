package store

import (
	"context"
	"fmt"

	"github.com/acarerdinc/relevia/ent"
	"github.com/acarerdinc/relevia/ent/concepthistory"
)

// conceptHistoryRepo implements ConceptHistoryRepo using the ent client.
type conceptHistoryRepo struct {
	client *ent.Client
}

func (r *conceptHistoryRepo) Append(ctx context.Context, e *ConceptEntry) error {
	_, err := r.client.ConceptHistory.Create().
		SetUserID(e.UserID).
		SetTopicID(e.TopicID).
		SetQuestionID(e.QuestionID).
		SetConcepts(e.Concepts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append concept history %s/%s: %w", e.UserID, e.TopicID, err)
	}
	return nil
}

func (r *conceptHistoryRepo) Recent(ctx context.Context, userID, topicID string, n int) ([][]string, error) {
	rows, err := r.client.ConceptHistory.Query().
		Where(
			concepthistory.UserID(userID),
			concepthistory.TopicID(topicID),
		).
		Order(ent.Desc(concepthistory.FieldShownAt), ent.Desc(concepthistory.FieldID)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concept history %s/%s: %w", userID, topicID, err)
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = row.Concepts
	}
	return out, nil
}
