package store

import (
	"context"
	"fmt"

	"github.com/acarerdinc/relevia/ent"
	"github.com/acarerdinc/relevia/ent/progressrecord"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, topicID string) (*Progress, error) {
	p, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, notFound("progress", userID+"/"+topicID)
		}
		return nil, fmt.Errorf("query progress %s/%s: %w", userID, topicID, err)
	}
	return entProgressToProgress(p), nil
}

func (r *progressRepo) ForUser(ctx context.Context, userID string) ([]*Progress, error) {
	rows, err := r.client.ProgressRecord.Query().
		Where(progressrecord.UserID(userID)).
		Order(ent.Asc(progressrecord.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress for %s: %w", userID, err)
	}
	out := make([]*Progress, len(rows))
	for i, p := range rows {
		out[i] = entProgressToProgress(p)
	}
	return out, nil
}

func (r *progressRepo) Create(ctx context.Context, p *Progress) error {
	builder := r.client.ProgressRecord.Create().
		SetUserID(p.UserID).
		SetTopicID(p.TopicID).
		SetMasteryLevel(p.MasteryLevel).
		SetCorrectByLevel(nonNilCounts(p.CorrectByLevel)).
		SetQuestionsAnswered(p.QuestionsAnswered).
		SetCorrectAnswers(p.CorrectAnswers).
		SetSkillEstimate(p.SkillEstimate).
		SetConfidence(p.Confidence).
		SetUnlocked(p.Unlocked).
		SetCanUnlockSubtopics(p.CanUnlockSubtopics).
		SetSelectionCount(p.SelectionCount).
		SetVersion(0)

	if p.LastSeenAt != nil {
		builder = builder.SetLastSeenAt(*p.LastSeenAt)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress %s/%s: %w", p.UserID, p.TopicID, err)
	}
	p.ID = created.ID
	p.Version = 0
	return nil
}

// Update applies an optimistic write: the UPDATE is conditioned on the
// version the caller read, so a stale writer matches zero rows.
func (r *progressRepo) Update(ctx context.Context, p *Progress) error {
	builder := r.client.ProgressRecord.Update().
		Where(
			progressrecord.ID(p.ID),
			progressrecord.Version(p.Version),
		).
		SetMasteryLevel(p.MasteryLevel).
		SetCorrectByLevel(nonNilCounts(p.CorrectByLevel)).
		SetQuestionsAnswered(p.QuestionsAnswered).
		SetCorrectAnswers(p.CorrectAnswers).
		SetSkillEstimate(p.SkillEstimate).
		SetConfidence(p.Confidence).
		SetUnlocked(p.Unlocked).
		SetCanUnlockSubtopics(p.CanUnlockSubtopics).
		SetSelectionCount(p.SelectionCount).
		SetVersion(p.Version + 1)

	if p.LastSeenAt != nil {
		builder = builder.SetLastSeenAt(*p.LastSeenAt)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress %s/%s: %w", p.UserID, p.TopicID, err)
	}
	if n == 0 {
		return fmt.Errorf("progress %s/%s at version %d: %w",
			p.UserID, p.TopicID, p.Version, ErrVersionConflict)
	}
	p.Version++
	return nil
}

// nonNilCounts keeps the JSON column a map rather than null.
func nonNilCounts(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func entProgressToProgress(p *ent.ProgressRecord) *Progress {
	return &Progress{
		ID:                 p.ID,
		UserID:             p.UserID,
		TopicID:            p.TopicID,
		MasteryLevel:       p.MasteryLevel,
		CorrectByLevel:     p.CorrectByLevel,
		QuestionsAnswered:  p.QuestionsAnswered,
		CorrectAnswers:     p.CorrectAnswers,
		SkillEstimate:      p.SkillEstimate,
		Confidence:         p.Confidence,
		Unlocked:           p.Unlocked,
		CanUnlockSubtopics: p.CanUnlockSubtopics,
		SelectionCount:     p.SelectionCount,
		LastSeenAt:         p.LastSeenAt,
		Version:            p.Version,
	}
}
