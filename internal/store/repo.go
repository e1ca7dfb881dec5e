package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrVersionConflict is returned when a versioned update lost the race
// against a concurrent writer. Callers re-read and retry.
var ErrVersionConflict = errors.New("version conflict")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Topic is a node in the global topic ontology.
type Topic struct {
	TopicID       string
	ParentID      string
	Name          string
	Description   string
	Depth         int
	DifficultyMin int
	DifficultyMax int
	Generated     bool
	CreatedAt     time.Time
}

// TopicRepo manages the global topic graph.
type TopicRepo interface {
	// Create inserts a single topic node.
	Create(ctx context.Context, t *Topic) error

	// CreateChildren inserts a batch of sibling nodes under one parent
	// in a single transaction. Either all land or none do.
	CreateChildren(ctx context.Context, parentID string, children []*Topic) error

	// Get returns the topic with the given ID, or ErrNotFound.
	Get(ctx context.Context, topicID string) (*Topic, error)

	// Children returns the direct children of a topic.
	Children(ctx context.Context, topicID string) ([]*Topic, error)

	// All returns every topic node.
	All(ctx context.Context) ([]*Topic, error)
}

// Progress is one learner's mastery state on one topic.
type Progress struct {
	ID                 int
	UserID             string
	TopicID            string
	MasteryLevel       string
	CorrectByLevel     map[string]int
	QuestionsAnswered  int
	CorrectAnswers     int
	SkillEstimate      float64
	Confidence         float64
	Unlocked           bool
	CanUnlockSubtopics bool
	SelectionCount     int
	LastSeenAt         *time.Time
	Version            int64
}

// ProgressRepo manages per-learner mastery records.
type ProgressRepo interface {
	// Get returns the progress record for (user, topic), or ErrNotFound.
	Get(ctx context.Context, userID, topicID string) (*Progress, error)

	// ForUser returns all progress records for a learner.
	ForUser(ctx context.Context, userID string) ([]*Progress, error)

	// Create inserts a fresh record at version 0.
	Create(ctx context.Context, p *Progress) error

	// Update writes p back only if the stored version still matches
	// p.Version. On success the stored version is incremented and
	// p.Version is updated to match. Returns ErrVersionConflict when a
	// concurrent writer got there first.
	Update(ctx context.Context, p *Progress) error
}

// Interest is one learner's interest score on one topic.
type Interest struct {
	ID              int
	UserID          string
	TopicID         string
	Score           float64
	RecentEventKeys []string
	Version         int64
}

// InterestRepo manages per-learner interest records.
type InterestRepo interface {
	Get(ctx context.Context, userID, topicID string) (*Interest, error)
	ForUser(ctx context.Context, userID string) ([]*Interest, error)
	Create(ctx context.Context, in *Interest) error

	// Update follows the same optimistic protocol as ProgressRepo.Update.
	Update(ctx context.Context, in *Interest) error
}

// Question is a generated question persisted for re-serving.
type Question struct {
	QuestionID    string
	TopicID       string
	QuestionText  string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Difficulty    int
	MasteryLevel  string
	Concepts      []string
	CreatedAt     time.Time
}

// QuestionRepo manages the stored question bank.
type QuestionRepo interface {
	Save(ctx context.Context, q *Question) error
	Get(ctx context.Context, questionID string) (*Question, error)

	// ForTopic returns up to limit stored questions for a topic,
	// newest first.
	ForTopic(ctx context.Context, topicID string, limit int) ([]*Question, error)
}

// ConceptEntry records the concepts of one question shown to a learner.
type ConceptEntry struct {
	UserID     string
	TopicID    string
	QuestionID string
	Concepts   []string
	ShownAt    time.Time
}

// ConceptHistoryRepo manages the shown-question concept log that the
// diversity window reads.
type ConceptHistoryRepo interface {
	Append(ctx context.Context, e *ConceptEntry) error

	// Recent returns the concept sets of the last n questions shown to
	// the learner on the topic, newest first.
	Recent(ctx context.Context, userID, topicID string, n int) ([][]string, error)
}

// Expansion marker statuses.
const (
	ExpansionPending   = "pending"
	ExpansionSucceeded = "succeeded"
	ExpansionFailed    = "failed"
)

// ExpansionMarker tracks one ontology expansion attempt.
type ExpansionMarker struct {
	ID        int
	UserID    string
	TopicID   string
	Status    string
	Detail    string
	StartedAt time.Time
	ExpiresAt time.Time
}

// ErrExpansionInFlight is returned by Begin when a live pending marker
// already exists for the (user, topic) pair.
var ErrExpansionInFlight = errors.New("expansion already in flight")

// ExpansionRepo manages expansion attempt markers.
type ExpansionRepo interface {
	// Begin creates a pending marker with the given TTL. When a pending
	// marker that has not expired already exists, it returns
	// ErrExpansionInFlight. Expired pending markers do not block.
	Begin(ctx context.Context, userID, topicID string, ttl time.Duration) (*ExpansionMarker, error)

	// Finish marks the attempt succeeded or failed.
	Finish(ctx context.Context, id int, status, detail string) error
}

// AnswerEventData captures one learner action on a served question.
type AnswerEventData struct {
	UserID        string
	SessionID     string
	TopicID       string
	QuestionID    string
	Action        string
	LearnerAnswer string
	Correct       bool
	Difficulty    int
	TimeMs        int
}

// MasteryEventData captures one mastery level transition.
type MasteryEventData struct {
	UserID    string
	TopicID   string
	FromLevel string
	ToLevel   string
	Accuracy  float64
	SessionID string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event with its sequence
// and timestamp.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMModelUsage aggregates LLM usage for one (provider, model) pair.
type LLMModelUsage struct {
	Provider     string
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LatestAnswerTime returns the timestamp of the learner's most
	// recent answer on a topic, or the zero time if there is none.
	LatestAnswerTime(ctx context.Context, userID, topicID string) (time.Time, error)

	// TopicAccuracy returns the learner's all-time answer accuracy on
	// a topic and the number of answers it is based on.
	TopicAccuracy(ctx context.Context, userID, topicID string) (float64, int, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// notFound wraps ErrNotFound with entity context.
func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
