package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/acarerdinc/relevia/ent"
	"github.com/acarerdinc/relevia/ent/answerevent"
	"github.com/acarerdinc/relevia/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetQuestionID(data.QuestionID).
		SetAction(data.Action).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetDifficulty(data.Difficulty).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetTopicID(data.TopicID).
		SetFromLevel(data.FromLevel).
		SetToLevel(data.ToLevel).
		SetAccuracy(data.Accuracy)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, userID, topicID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.TopicID(topicID),
		).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	return ae.Timestamp, nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, userID, topicID string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.TopicID(topicID),
			answerevent.Action("answer"),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	query := r.client.LLMRequestEvent.Query()

	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	query = query.Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEventRecord, len(rows))
	for i, e := range rows {
		out[i] = entLLMEventToRecord(e)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, notFound("llm event", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	rec := entLLMEventToRecord(e)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	for _, e := range rows {
		s, ok := byPurpose[e.Purpose]
		if !ok {
			s = &LLMUsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = s
		}
		s.Requests++
		if !e.Success {
			s.Failures++
		}
		s.InputTokens += e.InputTokens
		s.OutputTokens += e.OutputTokens
	}

	out := make([]LLMUsageStats, 0, len(byPurpose))
	for _, s := range byPurpose {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	type key struct{ provider, model string }
	byModel := make(map[key]*LLMModelUsage)
	for _, e := range rows {
		k := key{e.Provider, e.Model}
		u, ok := byModel[k]
		if !ok {
			u = &LLMModelUsage{Provider: e.Provider, Model: e.Model}
			byModel[k] = u
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]LLMModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Provider != out[j].Provider {
			return out[i].Provider < out[j].Provider
		}
		return out[i].Model < out[j].Model
	})
	return out, nil
}

func entLLMEventToRecord(e *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
