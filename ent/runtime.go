// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/acarerdinc/relevia/ent/answerevent"
	"github.com/acarerdinc/relevia/ent/concepthistory"
	"github.com/acarerdinc/relevia/ent/expansionattempt"
	"github.com/acarerdinc/relevia/ent/interestrecord"
	"github.com/acarerdinc/relevia/ent/llmrequestevent"
	"github.com/acarerdinc/relevia/ent/masteryevent"
	"github.com/acarerdinc/relevia/ent/progressrecord"
	"github.com/acarerdinc/relevia/ent/questionrecord"
	"github.com/acarerdinc/relevia/ent/schema"
	"github.com/acarerdinc/relevia/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[1].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescTopicID is the schema descriptor for topic_id field.
	answereventDescTopicID := answereventFields[2].Descriptor()
	// answerevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	answerevent.TopicIDValidator = answereventDescTopicID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[3].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescAction is the schema descriptor for action field.
	answereventDescAction := answereventFields[4].Descriptor()
	// answerevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	answerevent.ActionValidator = answereventDescAction.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	concepthistoryFields := schema.ConceptHistory{}.Fields()
	_ = concepthistoryFields
	// concepthistoryDescUserID is the schema descriptor for user_id field.
	concepthistoryDescUserID := concepthistoryFields[0].Descriptor()
	// concepthistory.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	concepthistory.UserIDValidator = concepthistoryDescUserID.Validators[0].(func(string) error)
	// concepthistoryDescTopicID is the schema descriptor for topic_id field.
	concepthistoryDescTopicID := concepthistoryFields[1].Descriptor()
	// concepthistory.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	concepthistory.TopicIDValidator = concepthistoryDescTopicID.Validators[0].(func(string) error)
	// concepthistoryDescQuestionID is the schema descriptor for question_id field.
	concepthistoryDescQuestionID := concepthistoryFields[2].Descriptor()
	// concepthistory.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	concepthistory.QuestionIDValidator = concepthistoryDescQuestionID.Validators[0].(func(string) error)
	// concepthistoryDescShownAt is the schema descriptor for shown_at field.
	concepthistoryDescShownAt := concepthistoryFields[4].Descriptor()
	// concepthistory.DefaultShownAt holds the default value on creation for the shown_at field.
	concepthistory.DefaultShownAt = concepthistoryDescShownAt.Default.(func() time.Time)
	expansionattemptFields := schema.ExpansionAttempt{}.Fields()
	_ = expansionattemptFields
	// expansionattemptDescUserID is the schema descriptor for user_id field.
	expansionattemptDescUserID := expansionattemptFields[0].Descriptor()
	// expansionattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	expansionattempt.UserIDValidator = expansionattemptDescUserID.Validators[0].(func(string) error)
	// expansionattemptDescTopicID is the schema descriptor for topic_id field.
	expansionattemptDescTopicID := expansionattemptFields[1].Descriptor()
	// expansionattempt.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	expansionattempt.TopicIDValidator = expansionattemptDescTopicID.Validators[0].(func(string) error)
	// expansionattemptDescStatus is the schema descriptor for status field.
	expansionattemptDescStatus := expansionattemptFields[2].Descriptor()
	// expansionattempt.DefaultStatus holds the default value on creation for the status field.
	expansionattempt.DefaultStatus = expansionattemptDescStatus.Default.(string)
	// expansionattemptDescDetail is the schema descriptor for detail field.
	expansionattemptDescDetail := expansionattemptFields[3].Descriptor()
	// expansionattempt.DefaultDetail holds the default value on creation for the detail field.
	expansionattempt.DefaultDetail = expansionattemptDescDetail.Default.(string)
	// expansionattemptDescStartedAt is the schema descriptor for started_at field.
	expansionattemptDescStartedAt := expansionattemptFields[4].Descriptor()
	// expansionattempt.DefaultStartedAt holds the default value on creation for the started_at field.
	expansionattempt.DefaultStartedAt = expansionattemptDescStartedAt.Default.(func() time.Time)
	interestrecordFields := schema.InterestRecord{}.Fields()
	_ = interestrecordFields
	// interestrecordDescUserID is the schema descriptor for user_id field.
	interestrecordDescUserID := interestrecordFields[0].Descriptor()
	// interestrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interestrecord.UserIDValidator = interestrecordDescUserID.Validators[0].(func(string) error)
	// interestrecordDescTopicID is the schema descriptor for topic_id field.
	interestrecordDescTopicID := interestrecordFields[1].Descriptor()
	// interestrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	interestrecord.TopicIDValidator = interestrecordDescTopicID.Validators[0].(func(string) error)
	// interestrecordDescScore is the schema descriptor for score field.
	interestrecordDescScore := interestrecordFields[2].Descriptor()
	// interestrecord.DefaultScore holds the default value on creation for the score field.
	interestrecord.DefaultScore = interestrecordDescScore.Default.(float64)
	// interestrecordDescVersion is the schema descriptor for version field.
	interestrecordDescVersion := interestrecordFields[4].Descriptor()
	// interestrecord.DefaultVersion holds the default value on creation for the version field.
	interestrecord.DefaultVersion = interestrecordDescVersion.Default.(int64)
	// interestrecordDescUpdatedAt is the schema descriptor for updated_at field.
	interestrecordDescUpdatedAt := interestrecordFields[5].Descriptor()
	// interestrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interestrecord.DefaultUpdatedAt = interestrecordDescUpdatedAt.Default.(func() time.Time)
	// interestrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interestrecord.UpdateDefaultUpdatedAt = interestrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescUserID is the schema descriptor for user_id field.
	masteryeventDescUserID := masteryeventFields[0].Descriptor()
	// masteryevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryevent.UserIDValidator = masteryeventDescUserID.Validators[0].(func(string) error)
	// masteryeventDescTopicID is the schema descriptor for topic_id field.
	masteryeventDescTopicID := masteryeventFields[1].Descriptor()
	// masteryevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	masteryevent.TopicIDValidator = masteryeventDescTopicID.Validators[0].(func(string) error)
	// masteryeventDescFromLevel is the schema descriptor for from_level field.
	masteryeventDescFromLevel := masteryeventFields[2].Descriptor()
	// masteryevent.FromLevelValidator is a validator for the "from_level" field. It is called by the builders before save.
	masteryevent.FromLevelValidator = masteryeventDescFromLevel.Validators[0].(func(string) error)
	// masteryeventDescToLevel is the schema descriptor for to_level field.
	masteryeventDescToLevel := masteryeventFields[3].Descriptor()
	// masteryevent.ToLevelValidator is a validator for the "to_level" field. It is called by the builders before save.
	masteryevent.ToLevelValidator = masteryeventDescToLevel.Validators[0].(func(string) error)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescTopicID is the schema descriptor for topic_id field.
	progressrecordDescTopicID := progressrecordFields[1].Descriptor()
	// progressrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	progressrecord.TopicIDValidator = progressrecordDescTopicID.Validators[0].(func(string) error)
	// progressrecordDescMasteryLevel is the schema descriptor for mastery_level field.
	progressrecordDescMasteryLevel := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	progressrecord.DefaultMasteryLevel = progressrecordDescMasteryLevel.Default.(string)
	// progressrecordDescQuestionsAnswered is the schema descriptor for questions_answered field.
	progressrecordDescQuestionsAnswered := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	progressrecord.DefaultQuestionsAnswered = progressrecordDescQuestionsAnswered.Default.(int)
	// progressrecordDescCorrectAnswers is the schema descriptor for correct_answers field.
	progressrecordDescCorrectAnswers := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	progressrecord.DefaultCorrectAnswers = progressrecordDescCorrectAnswers.Default.(int)
	// progressrecordDescSkillEstimate is the schema descriptor for skill_estimate field.
	progressrecordDescSkillEstimate := progressrecordFields[6].Descriptor()
	// progressrecord.DefaultSkillEstimate holds the default value on creation for the skill_estimate field.
	progressrecord.DefaultSkillEstimate = progressrecordDescSkillEstimate.Default.(float64)
	// progressrecordDescConfidence is the schema descriptor for confidence field.
	progressrecordDescConfidence := progressrecordFields[7].Descriptor()
	// progressrecord.DefaultConfidence holds the default value on creation for the confidence field.
	progressrecord.DefaultConfidence = progressrecordDescConfidence.Default.(float64)
	// progressrecordDescUnlocked is the schema descriptor for unlocked field.
	progressrecordDescUnlocked := progressrecordFields[8].Descriptor()
	// progressrecord.DefaultUnlocked holds the default value on creation for the unlocked field.
	progressrecord.DefaultUnlocked = progressrecordDescUnlocked.Default.(bool)
	// progressrecordDescCanUnlockSubtopics is the schema descriptor for can_unlock_subtopics field.
	progressrecordDescCanUnlockSubtopics := progressrecordFields[9].Descriptor()
	// progressrecord.DefaultCanUnlockSubtopics holds the default value on creation for the can_unlock_subtopics field.
	progressrecord.DefaultCanUnlockSubtopics = progressrecordDescCanUnlockSubtopics.Default.(bool)
	// progressrecordDescSelectionCount is the schema descriptor for selection_count field.
	progressrecordDescSelectionCount := progressrecordFields[10].Descriptor()
	// progressrecord.DefaultSelectionCount holds the default value on creation for the selection_count field.
	progressrecord.DefaultSelectionCount = progressrecordDescSelectionCount.Default.(int)
	// progressrecordDescVersion is the schema descriptor for version field.
	progressrecordDescVersion := progressrecordFields[12].Descriptor()
	// progressrecord.DefaultVersion holds the default value on creation for the version field.
	progressrecord.DefaultVersion = progressrecordDescVersion.Default.(int64)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[13].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionrecordFields := schema.QuestionRecord{}.Fields()
	_ = questionrecordFields
	// questionrecordDescQuestionID is the schema descriptor for question_id field.
	questionrecordDescQuestionID := questionrecordFields[0].Descriptor()
	// questionrecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionrecord.QuestionIDValidator = questionrecordDescQuestionID.Validators[0].(func(string) error)
	// questionrecordDescTopicID is the schema descriptor for topic_id field.
	questionrecordDescTopicID := questionrecordFields[1].Descriptor()
	// questionrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	questionrecord.TopicIDValidator = questionrecordDescTopicID.Validators[0].(func(string) error)
	// questionrecordDescQuestionText is the schema descriptor for question_text field.
	questionrecordDescQuestionText := questionrecordFields[2].Descriptor()
	// questionrecord.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	questionrecord.QuestionTextValidator = questionrecordDescQuestionText.Validators[0].(func(string) error)
	// questionrecordDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionrecordDescCorrectAnswer := questionrecordFields[4].Descriptor()
	// questionrecord.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	questionrecord.CorrectAnswerValidator = questionrecordDescCorrectAnswer.Validators[0].(func(string) error)
	// questionrecordDescExplanation is the schema descriptor for explanation field.
	questionrecordDescExplanation := questionrecordFields[5].Descriptor()
	// questionrecord.DefaultExplanation holds the default value on creation for the explanation field.
	questionrecord.DefaultExplanation = questionrecordDescExplanation.Default.(string)
	// questionrecordDescDifficulty is the schema descriptor for difficulty field.
	questionrecordDescDifficulty := questionrecordFields[6].Descriptor()
	// questionrecord.DefaultDifficulty holds the default value on creation for the difficulty field.
	questionrecord.DefaultDifficulty = questionrecordDescDifficulty.Default.(int)
	// questionrecordDescMasteryLevel is the schema descriptor for mastery_level field.
	questionrecordDescMasteryLevel := questionrecordFields[7].Descriptor()
	// questionrecord.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	questionrecord.DefaultMasteryLevel = questionrecordDescMasteryLevel.Default.(string)
	// questionrecordDescCreatedAt is the schema descriptor for created_at field.
	questionrecordDescCreatedAt := questionrecordFields[9].Descriptor()
	// questionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionrecord.DefaultCreatedAt = questionrecordDescCreatedAt.Default.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescTopicID is the schema descriptor for topic_id field.
	topicDescTopicID := topicFields[0].Descriptor()
	// topic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topic.TopicIDValidator = topicDescTopicID.Validators[0].(func(string) error)
	// topicDescParentID is the schema descriptor for parent_id field.
	topicDescParentID := topicFields[1].Descriptor()
	// topic.DefaultParentID holds the default value on creation for the parent_id field.
	topic.DefaultParentID = topicDescParentID.Default.(string)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[2].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescDescription is the schema descriptor for description field.
	topicDescDescription := topicFields[3].Descriptor()
	// topic.DefaultDescription holds the default value on creation for the description field.
	topic.DefaultDescription = topicDescDescription.Default.(string)
	// topicDescDepth is the schema descriptor for depth field.
	topicDescDepth := topicFields[4].Descriptor()
	// topic.DefaultDepth holds the default value on creation for the depth field.
	topic.DefaultDepth = topicDescDepth.Default.(int)
	// topicDescDifficultyMin is the schema descriptor for difficulty_min field.
	topicDescDifficultyMin := topicFields[5].Descriptor()
	// topic.DefaultDifficultyMin holds the default value on creation for the difficulty_min field.
	topic.DefaultDifficultyMin = topicDescDifficultyMin.Default.(int)
	// topicDescDifficultyMax is the schema descriptor for difficulty_max field.
	topicDescDifficultyMax := topicFields[6].Descriptor()
	// topic.DefaultDifficultyMax holds the default value on creation for the difficulty_max field.
	topic.DefaultDifficultyMax = topicDescDifficultyMax.Default.(int)
	// topicDescGenerated is the schema descriptor for generated field.
	topicDescGenerated := topicFields[7].Descriptor()
	// topic.DefaultGenerated holds the default value on creation for the generated field.
	topic.DefaultGenerated = topicDescGenerated.Default.(bool)
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[8].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
}
