package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDecision(ctx context.Context, data DecisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetConceptID(data.ConceptID).
		SetDomain(data.Domain).
		SetPreviousLevel(data.PreviousLevel).
		SetNewLevel(data.NewLevel).
		SetReason(data.Reason).
		SetMasteryAchieved(data.MasteryAchieved).
		SetMasteryProbability(data.MasteryProbability).
		SetZone(data.Zone).
		SetBehavioralIndicator(data.BehavioralIndicator).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save decision event: %w", err)
	}
	return nil
}
