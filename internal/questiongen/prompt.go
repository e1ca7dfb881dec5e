package questiongen

import (
	"fmt"
	"strings"
)

const questionSystemPrompt = `You are a tutor creating multiple-choice questions for an adaptive learning engine.

Rules:
- Generate a single question for the given topic, mastery level, and difficulty.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- The correct_answer field must match one option verbatim.
- The explanation should say why the correct answer is right and why each distractor is wrong.
- Match the cognitive demand to the mastery level described in the request.
- Do not repeat any question from the "already asked" list.
- When overused concepts are listed, the question must explore a different aspect of the topic.`

const subtopicSystemPrompt = `You are subdividing a topic into its fundamental knowledge domains. The goal is a COMPLETE and NON-OVERLAPPING breakdown.

Requirements:
- MUTUALLY EXCLUSIVE: each subtopic covers a distinct area with no overlap between any two.
- COLLECTIVELY EXHAUSTIVE: together the subtopics cover everything in the parent topic.
- KNOWLEDGE-FOCUSED: produce conceptual divisions and paradigms, not methodologies or processes.
- No subtopic may be a subset, tool, or application of another.
- A learner mastering all subtopics should have comprehensive knowledge of the parent.`

// levelGuidance maps a mastery level to the cognitive demand the
// question should test.
func levelGuidance(level string) string {
	switch level {
	case "novice":
		return "Test basic definitions and fundamental concepts. Focus on recognition and recall in clear, straightforward language."
	case "competent":
		return "Test application of concepts to common scenarios and relationships between concepts. Include practical problem-solving."
	case "proficient":
		return "Test analysis of complex scenarios, trade-offs, and limitations. Require multi-step reasoning."
	case "expert":
		return "Test advanced edge cases and nuanced understanding in complex real-world scenarios."
	case "master":
		return "Test research-level understanding, open problems, and the ability to critique novel approaches."
	default:
		return "Test basic definitions and fundamental concepts."
	}
}

// buildQuestionMessage constructs the user message for a question
// generation request.
func buildQuestionMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Topic.Description)
	fmt.Fprintf(&b, "Mastery level: %s\n", input.MasteryLevel)
	fmt.Fprintf(&b, "Level guidance: %s\n", levelGuidance(input.MasteryLevel))
	fmt.Fprintf(&b, "Target difficulty: %d (band %d-%d)\n",
		input.Difficulty, input.Topic.DifficultyMin, input.Topic.DifficultyMax)

	b.WriteString("\nAlready asked on this topic:\n")
	b.WriteString(numberedList(input.PriorQuestions, cfg.MaxPriorQuestions))

	if fb := input.Feedback; fb != nil {
		if len(fb.Overused) > 0 {
			fmt.Fprintf(&b, "\nOverused concepts to avoid: %s\n", strings.Join(fb.Overused, ", "))
		}
		if len(fb.Alternatives) > 0 {
			fmt.Fprintf(&b, "Unexplored areas worth covering: %s\n", strings.Join(fb.Alternatives, ", "))
		}
	}

	return b.String()
}

// buildSubtopicMessage constructs the user message for a subtopic
// generation request.
func buildSubtopicMessage(input SubtopicInput, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Parent.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Parent.Description)
	fmt.Fprintf(&b, "Subtopics wanted: %d\n", count)
	fmt.Fprintf(&b, "Difficulty band: min %d, max %d\n",
		input.Parent.DifficultyMin, min(10, input.Parent.DifficultyMax+1))

	if input.MasteryLevel != "" {
		fmt.Fprintf(&b, "Learner level on the parent: %s (accuracy %.0f%%)\n",
			input.MasteryLevel, input.Accuracy*100)
	}

	if len(input.Rejected) > 0 {
		b.WriteString("\nA previous attempt produced overlapping subdivisions. Do not repeat this structure:\n")
		b.WriteString(numberedList(input.Rejected, 0))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nGenerate %d subtopics that represent the fundamental knowledge divisions of %q.\n",
		count, input.Parent.Name)

	return b.String()
}

// numberedList formats items for the prompt, keeping only the most
// recent max entries. Returns "None" for an empty list.
func numberedList(items []string, max int) string {
	if len(items) == 0 {
		return "None"
	}
	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it)
	}
	return strings.TrimRight(b.String(), "\n")
}
