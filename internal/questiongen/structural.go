package questiongen

import "fmt"

// StructuralValidator checks that required fields are present, within
// length limits, and internally consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *Candidate, input GenerateInput) *ValidationError {
	if c.QuestionText == "" {
		return v.fail("question_text is empty")
	}
	if len(c.QuestionText) > 1000 {
		return v.fail("question_text exceeds 1000 characters")
	}
	if len(c.Options) != 4 {
		return v.fail(fmt.Sprintf("got %d options, want exactly 4", len(c.Options)))
	}

	match := false
	seen := make(map[string]bool, 4)
	for _, opt := range c.Options {
		if opt == "" {
			return v.fail("empty option")
		}
		if seen[opt] {
			return v.fail(fmt.Sprintf("duplicate option %q", opt))
		}
		seen[opt] = true
		if opt == c.CorrectAnswer {
			match = true
		}
	}
	if !match {
		return v.fail("correct_answer does not match any option")
	}

	if c.Explanation == "" {
		return v.fail("explanation is empty")
	}
	if c.Difficulty < 1 || c.Difficulty > 10 {
		return v.fail("difficulty must be between 1 and 10")
	}
	if t := input.Topic; t != nil && t.DifficultyMax > 0 {
		if c.Difficulty < t.DifficultyMin || c.Difficulty > t.DifficultyMax {
			return v.fail(fmt.Sprintf("difficulty %d outside topic band %d-%d",
				c.Difficulty, t.DifficultyMin, t.DifficultyMax))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
