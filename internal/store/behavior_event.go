package store

import (
	"context"
	"fmt"

	"github.com/rsinha/adaptiq/ent"
	"github.com/rsinha/adaptiq/ent/behaviorevent"
)

func (r *eventRepo) AppendBehavior(ctx context.Context, data BehaviorEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BehaviorEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetConceptID(data.ConceptID).
		SetEventType(behaviorevent.EventType(data.EventType)).
		SetResponseTimeMs(data.ResponseTimeMs).
		SetExpectedTimeMs(data.ExpectedTimeMs).
		SetHintsUsed(data.HintsUsed).
		SetAttempts(data.Attempts)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}
	if data.Correct != nil {
		builder = builder.SetCorrect(*data.Correct)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save behavior event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentBehavior(ctx context.Context, learnerID string, n int) ([]BehaviorEventData, error) {
	events, err := r.client.BehaviorEvent.Query().
		Where(behaviorevent.LearnerID(learnerID)).
		Order(ent.Desc(behaviorevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent behavior: %w", err)
	}

	out := make([]BehaviorEventData, len(events))
	for i, e := range events {
		out[len(events)-1-i] = BehaviorEventData{
			LearnerID:      e.LearnerID,
			ConceptID:      e.ConceptID,
			EventType:      string(e.EventType),
			ResponseTimeMs: e.ResponseTimeMs,
			ExpectedTimeMs: e.ExpectedTimeMs,
			HintsUsed:      e.HintsUsed,
			Attempts:       e.Attempts,
			Correct:        e.Correct,
			Timestamp:      e.Timestamp,
		}
	}
	return out, nil
}
