package questiongen

import (
	"fmt"

	"github.com/acarerdinc/relevia/internal/diversity"
	"github.com/acarerdinc/relevia/internal/store"
)

// Candidate is a generated question before acceptance. Once accepted it
// becomes an immutable QuestionRecord.
type Candidate struct {
	// QuestionText is the prompt displayed to the learner.
	QuestionText string

	// Options holds exactly 4 choices in display order.
	Options []string

	// CorrectAnswer is the full text of the correct option.
	CorrectAnswer string

	// Explanation is shown after the learner answers.
	Explanation string

	// Difficulty is 1-10, within the topic's band.
	Difficulty int

	// Concepts are the normalized terms extracted from the question,
	// used by the diversity guard.
	Concepts []string

	// TopicID and MasteryLevel record what the question was
	// generated for.
	TopicID      string
	MasteryLevel string
}

// GenerateInput holds all context needed to generate one question.
type GenerateInput struct {
	// Topic is the target topic.
	Topic *store.Topic

	// MasteryLevel is the learner's current level on the topic; the
	// question should test understanding at that level.
	MasteryLevel string

	// Difficulty is the requested difficulty, clamped to the topic's
	// band by the generator.
	Difficulty int

	// PriorQuestions contains the text of questions recently asked on
	// this topic, for deduplication in the prompt.
	PriorQuestions []string

	// Feedback carries overused and unexplored concepts from the
	// diversity guard. Nil on the first attempt.
	Feedback *diversity.Feedback
}

// TopicCandidate is one proposed child topic.
type TopicCandidate struct {
	Name          string
	Description   string
	DifficultyMin int
	DifficultyMax int
}

// SubtopicInput holds the context for a subtopic generation request.
type SubtopicInput struct {
	// Parent is the topic being subdivided.
	Parent *store.Topic

	// Count is how many subtopics to request (typically 5-8).
	Count int

	// MasteryLevel and Accuracy describe the learner who triggered
	// the expansion, for difficulty guidance.
	MasteryLevel string
	Accuracy     float64

	// Rejected carries names from a previous attempt that failed
	// validation, so regeneration can avoid them.
	Rejected []string
}

// GenerationError wraps a failure to produce a usable candidate. It is
// recoverable: callers fall back to stored questions or retry later.
type GenerationError struct {
	Op  string // "question" or "subtopics"
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
