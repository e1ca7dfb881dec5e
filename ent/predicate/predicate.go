// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// ConceptHistory is the predicate function for concepthistory builders.
type ConceptHistory func(*sql.Selector)

// ExpansionAttempt is the predicate function for expansionattempt builders.
type ExpansionAttempt func(*sql.Selector)

// InterestRecord is the predicate function for interestrecord builders.
type InterestRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// QuestionRecord is the predicate function for questionrecord builders.
type QuestionRecord func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
