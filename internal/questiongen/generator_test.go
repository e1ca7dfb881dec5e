package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/acarerdinc/relevia/internal/diversity"
	"github.com/acarerdinc/relevia/internal/llm"
	"github.com/acarerdinc/relevia/internal/store"
)

func mlTopic() *store.Topic {
	return &store.Topic{
		TopicID:       "machine-learning",
		Name:          "Machine Learning",
		Description:   "Algorithms that learn from data",
		DifficultyMin: 1,
		DifficultyMax: 10,
	}
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Which algorithm minimizes a loss function by following its gradient?",
		"options": ["Gradient descent", "K-means clustering", "Decision tree induction", "Apriori"],
		"correct_answer": "Gradient descent",
		"explanation": "Gradient descent iteratively steps against the gradient of the loss. The others do not use gradients.",
		"difficulty": 4
	}`)
}

func TestGenerateQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	c, err := gen.GenerateQuestion(context.Background(), GenerateInput{
		Topic:        mlTopic(),
		MasteryLevel: "competent",
		Difficulty:   4,
	})
	if err != nil {
		t.Fatalf("GenerateQuestion: %v", err)
	}

	if c.CorrectAnswer != "Gradient descent" {
		t.Errorf("correct answer = %q", c.CorrectAnswer)
	}
	if len(c.Options) != 4 {
		t.Errorf("options = %d, want 4", len(c.Options))
	}
	if c.TopicID != "machine-learning" || c.MasteryLevel != "competent" {
		t.Errorf("provenance = %q/%q", c.TopicID, c.MasteryLevel)
	}
	if len(c.Concepts) == 0 {
		t.Error("expected concepts extracted from the question text")
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request did not carry the question schema")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Machine Learning") || !strings.Contains(msg, "competent") {
		t.Errorf("prompt missing topic or level:\n%s", msg)
	}
}

func TestGenerateQuestionCarriesDiversityFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestion(context.Background(), GenerateInput{
		Topic:        mlTopic(),
		MasteryLevel: "novice",
		Difficulty:   3,
		Feedback: &diversity.Feedback{
			Overused:     []string{"gradient", "descent"},
			Alternatives: []string{"regularization"},
		},
	})
	if err != nil {
		t.Fatalf("GenerateQuestion: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Overused concepts to avoid: gradient, descent") {
		t.Errorf("prompt missing overused concepts:\n%s", msg)
	}
	if !strings.Contains(msg, "regularization") {
		t.Errorf("prompt missing unexplored areas:\n%s", msg)
	}
}

func TestGenerateQuestionProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestion(context.Background(), GenerateInput{
		Topic: mlTopic(), MasteryLevel: "novice", Difficulty: 3,
	})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want GenerationError", err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("GenerationError should wrap the provider error, got %v", err)
	}
}

func TestGenerateQuestionMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestion(context.Background(), GenerateInput{
		Topic: mlTopic(), MasteryLevel: "novice", Difficulty: 3,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want GenerationError", err)
	}
}

func TestGenerateQuestionValidationFailure(t *testing.T) {
	// correct_answer matches no option.
	bad := json.RawMessage(`{
		"question_text": "Pick one",
		"options": ["a1", "b2", "c3", "d4"],
		"correct_answer": "e5",
		"explanation": "x",
		"difficulty": 4
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateQuestion(context.Background(), GenerateInput{
		Topic: mlTopic(), MasteryLevel: "novice", Difficulty: 3,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want wrapped ValidationError", err)
	}
	if !verr.Retryable {
		t.Error("structural failures should be retryable")
	}
}

func TestStructuralValidator(t *testing.T) {
	base := func() *Candidate {
		return &Candidate{
			QuestionText:  "What is overfitting?",
			Options:       []string{"a1", "b2", "c3", "d4"},
			CorrectAnswer: "a1",
			Explanation:   "Because.",
			Difficulty:    5,
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Candidate)
		wantErr string
	}{
		{"valid", func(c *Candidate) {}, ""},
		{"empty text", func(c *Candidate) { c.QuestionText = "" }, "question_text is empty"},
		{"three options", func(c *Candidate) { c.Options = c.Options[:3] }, "want exactly 4"},
		{"duplicate option", func(c *Candidate) { c.Options[1] = "a1" }, "duplicate option"},
		{"answer not an option", func(c *Candidate) { c.CorrectAnswer = "zz" }, "does not match any option"},
		{"no explanation", func(c *Candidate) { c.Explanation = "" }, "explanation is empty"},
		{"difficulty out of range", func(c *Candidate) { c.Difficulty = 11 }, "between 1 and 10"},
	}

	v := &StructuralValidator{}
	input := GenerateInput{Topic: mlTopic()}
	for _, c := range cases {
		cand := base()
		c.mutate(cand)
		err := v.Validate(cand, input)
		if c.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", c.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Message, c.wantErr) {
			t.Errorf("%s: error = %v, want containing %q", c.name, err, c.wantErr)
		}
	}
}

func TestStructuralValidatorTopicBand(t *testing.T) {
	topic := mlTopic()
	topic.DifficultyMin = 3
	topic.DifficultyMax = 7

	v := &StructuralValidator{}
	c := &Candidate{
		QuestionText:  "q",
		Options:       []string{"a1", "b2", "c3", "d4"},
		CorrectAnswer: "a1",
		Explanation:   "e",
		Difficulty:    9,
	}
	err := v.Validate(c, GenerateInput{Topic: topic})
	if err == nil || !strings.Contains(err.Message, "outside topic band") {
		t.Errorf("error = %v, want band violation", err)
	}
}

func TestGenerateSubtopics(t *testing.T) {
	content := json.RawMessage(`{
		"subtopics": [
			{"name": "Supervised Learning", "description": "Learning from labeled data", "difficulty_min": 2, "difficulty_max": 8},
			{"name": "Unsupervised Learning", "description": "Finding structure without labels", "difficulty_min": 3, "difficulty_max": 9},
			{"name": "  ", "description": "blank name dropped", "difficulty_min": 1, "difficulty_max": 5}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	subs, err := gen.GenerateSubtopics(context.Background(), SubtopicInput{
		Parent: mlTopic(),
		Count:  2,
	})
	if err != nil {
		t.Fatalf("GenerateSubtopics: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("got %d subtopics, want 2 (blank dropped)", len(subs))
	}
	if subs[0].Name != "Supervised Learning" || subs[0].DifficultyMin != 2 {
		t.Errorf("first = %+v", subs[0])
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Subtopics wanted: 2") {
		t.Errorf("prompt missing count:\n%s", msg)
	}
	if mock.Calls[0].Schema != SubtopicListSchema {
		t.Error("request did not carry the subtopic schema")
	}
}

func TestGenerateSubtopicsRejectedNamesInPrompt(t *testing.T) {
	content := json.RawMessage(`{"subtopics": []}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateSubtopics(context.Background(), SubtopicInput{
		Parent:   mlTopic(),
		Rejected: []string{"Neural Networks", "Deep Neural Networks"},
	})
	if err != nil {
		t.Fatalf("GenerateSubtopics: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Do not repeat this structure") ||
		!strings.Contains(msg, "Deep Neural Networks") {
		t.Errorf("prompt missing rejected names:\n%s", msg)
	}
	// Count falls back to the config default.
	if !strings.Contains(msg, "Subtopics wanted: 6") {
		t.Errorf("prompt missing default count:\n%s", msg)
	}
}

func TestToRecordAssignsFreshIDs(t *testing.T) {
	c := &Candidate{
		QuestionText:  "q",
		Options:       []string{"a1", "b2", "c3", "d4"},
		CorrectAnswer: "a1",
		Explanation:   "e",
		Difficulty:    5,
		TopicID:       "ml",
		MasteryLevel:  "novice",
		Concepts:      []string{"overfitting"},
	}
	r1 := ToRecord(c)
	r2 := ToRecord(c)
	if r1.QuestionID == "" || r1.QuestionID == r2.QuestionID {
		t.Errorf("ids = %q, %q, want distinct non-empty", r1.QuestionID, r2.QuestionID)
	}
	if r1.TopicID != "ml" || r1.MasteryLevel != "novice" {
		t.Errorf("record = %+v", r1)
	}
}
