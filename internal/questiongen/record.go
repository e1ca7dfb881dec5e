package questiongen

import (
	"time"

	"github.com/google/uuid"

	"github.com/acarerdinc/relevia/internal/store"
)

// ToRecord converts an accepted candidate into an immutable question
// record with a fresh id.
func ToRecord(c *Candidate) *store.Question {
	return &store.Question{
		QuestionID:    uuid.NewString(),
		TopicID:       c.TopicID,
		QuestionText:  c.QuestionText,
		Options:       c.Options,
		CorrectAnswer: c.CorrectAnswer,
		Explanation:   c.Explanation,
		Difficulty:    c.Difficulty,
		MasteryLevel:  c.MasteryLevel,
		Concepts:      c.Concepts,
		CreatedAt:     time.Now(),
	}
}
