package questiongen

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/acarerdinc/relevia/internal/diversity"
	"github.com/acarerdinc/relevia/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    int      `json:"difficulty"`
}

// subtopicOutput is the raw subtopic list response.
type subtopicOutput struct {
	Subtopics []struct {
		Name          string `json:"name"`
		Description   string `json:"description"`
		DifficultyMin int    `json:"difficulty_min"`
		DifficultyMax int    `json:"difficulty_max"`
	} `json:"subtopics"`
}

// GenerateQuestion produces a single validated question candidate.
func (g *LLMGenerator) GenerateQuestion(ctx context.Context, input GenerateInput) (*Candidate, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Op: "question", Err: err}
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Op: "question", Err: err}
	}

	c := &Candidate{
		QuestionText:  raw.QuestionText,
		Options:       raw.Options,
		CorrectAnswer: raw.CorrectAnswer,
		Explanation:   raw.Explanation,
		Difficulty:    raw.Difficulty,
		Concepts:      diversity.ExtractConcepts(raw.QuestionText),
		TopicID:       input.Topic.TopicID,
		MasteryLevel:  input.MasteryLevel,
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(c, input); verr != nil {
			return nil, &GenerationError{Op: "question", Err: verr}
		}
	}
	return c, nil
}

// GenerateSubtopics produces candidate child topics for the parent.
func (g *LLMGenerator) GenerateSubtopics(ctx context.Context, input SubtopicInput) ([]TopicCandidate, error) {
	ctx = llm.WithPurpose(ctx, "subtopic-gen")

	count := input.Count
	if count <= 0 {
		count = g.config.SubtopicCount
	}

	req := llm.Request{
		System: subtopicSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSubtopicMessage(input, count)},
		},
		Schema:      SubtopicListSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Op: "subtopics", Err: err}
	}

	var raw subtopicOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Op: "subtopics", Err: err}
	}

	out := make([]TopicCandidate, 0, len(raw.Subtopics))
	for _, s := range raw.Subtopics {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		out = append(out, TopicCandidate{
			Name:          name,
			Description:   strings.TrimSpace(s.Description),
			DifficultyMin: clampDifficulty(s.DifficultyMin, input.Parent.DifficultyMin),
			DifficultyMax: clampDifficulty(s.DifficultyMax, input.Parent.DifficultyMax),
		})
	}
	return out, nil
}

// clampDifficulty bounds a generated difficulty to 1-10, substituting
// the fallback when the value is missing.
func clampDifficulty(v, fallback int) int {
	if v == 0 {
		v = fallback
	}
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
