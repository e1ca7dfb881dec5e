package questiongen

import "fmt"

// Validator checks a generated question candidate.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages.
	Name() string

	// Validate checks the candidate and returns nil if it passes.
	Validate(c *Candidate, input GenerateInput) *ValidationError
}

// ValidationError describes why a candidate failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
