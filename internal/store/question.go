package store

import (
	"context"
	"fmt"

	"github.com/acarerdinc/relevia/ent"
	"github.com/acarerdinc/relevia/ent/questionrecord"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Save(ctx context.Context, q *Question) error {
	_, err := r.client.QuestionRecord.Create().
		SetQuestionID(q.QuestionID).
		SetTopicID(q.TopicID).
		SetQuestionText(q.QuestionText).
		SetOptions(q.Options).
		SetCorrectAnswer(q.CorrectAnswer).
		SetExplanation(q.Explanation).
		SetDifficulty(q.Difficulty).
		SetMasteryLevel(q.MasteryLevel).
		SetConcepts(q.Concepts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save question %s: %w", q.QuestionID, err)
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, questionID string) (*Question, error) {
	q, err := r.client.QuestionRecord.Query().
		Where(questionrecord.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, notFound("question", questionID)
		}
		return nil, fmt.Errorf("query question %s: %w", questionID, err)
	}
	return entQuestionToQuestion(q), nil
}

func (r *questionRepo) ForTopic(ctx context.Context, topicID string, limit int) ([]*Question, error) {
	query := r.client.QuestionRecord.Query().
		Where(questionrecord.TopicID(topicID)).
		Order(ent.Desc(questionrecord.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for %s: %w", topicID, err)
	}
	out := make([]*Question, len(rows))
	for i, q := range rows {
		out[i] = entQuestionToQuestion(q)
	}
	return out, nil
}

func entQuestionToQuestion(q *ent.QuestionRecord) *Question {
	return &Question{
		QuestionID:    q.QuestionID,
		TopicID:       q.TopicID,
		QuestionText:  q.QuestionText,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Difficulty:    q.Difficulty,
		MasteryLevel:  q.MasteryLevel,
		Concepts:      q.Concepts,
		CreatedAt:     q.CreatedAt,
	}
}
