package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list run on every generated question.
	// The first failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps how many prior questions enter the
	// prompt for deduplication.
	MaxPriorQuestions int

	// SubtopicCount is the default number of subtopics requested when
	// the caller leaves SubtopicInput.Count zero.
	SubtopicCount int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:         1024,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
		SubtopicCount:     6,
	}
}
