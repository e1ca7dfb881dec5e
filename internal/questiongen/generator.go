package questiongen

import "context"

// Generator produces question and subtopic candidates using an LLM
// provider. The engine never synthesizes text itself; it requests,
// validates, and consumes.
type Generator interface {
	// GenerateQuestion produces a single validated question candidate.
	// All configured validators run before returning.
	GenerateQuestion(ctx context.Context, input GenerateInput) (*Candidate, error)

	// GenerateSubtopics produces candidate child topics for the parent.
	// Candidates are structurally validated but MECE checking is the
	// caller's job.
	GenerateSubtopics(ctx context.Context, input SubtopicInput) ([]TopicCandidate, error)
}
