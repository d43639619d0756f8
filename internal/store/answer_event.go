package store

import (
	"context"
	"fmt"

	"github.com/rsinha/adaptiq/ent"
	"github.com/rsinha/adaptiq/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetConceptID(data.ConceptID).
		SetQuestionID(data.QuestionID).
		SetDomain(data.Domain).
		SetQuestionType(data.QuestionType).
		SetCorrect(data.Correct).
		SetResponseTimeMs(data.ResponseTimeMs).
		SetExpectedTimeMs(data.ExpectedTimeMs).
		SetHintsUsed(data.HintsUsed).
		SetAttemptNumber(data.AttemptNumber).
		SetDifficultyLevel(data.DifficultyLevel).
		SetTheta(data.Theta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, learnerID, conceptID string, n int) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.LearnerID(learnerID),
			answerevent.ConceptID(conceptID),
		).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}

	// Reverse to oldest-first, the order evaluators consume.
	records := make([]AnswerRecord, len(events))
	for i, e := range events {
		records[len(events)-1-i] = AnswerRecord{
			AnswerEventData: AnswerEventData{
				LearnerID:       e.LearnerID,
				ConceptID:       e.ConceptID,
				QuestionID:      e.QuestionID,
				Domain:          e.Domain,
				QuestionType:    e.QuestionType,
				Correct:         e.Correct,
				ResponseTimeMs:  e.ResponseTimeMs,
				ExpectedTimeMs:  e.ExpectedTimeMs,
				HintsUsed:       e.HintsUsed,
				AttemptNumber:   e.AttemptNumber,
				DifficultyLevel: e.DifficultyLevel,
				Theta:           e.Theta,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) QuestionObservations(ctx context.Context, questionID string, limit int) ([]ObservationRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuestionID(questionID)).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question observations: %w", err)
	}

	obs := make([]ObservationRecord, len(events))
	for i, e := range events {
		obs[i] = ObservationRecord{Theta: e.Theta, Correct: e.Correct}
	}
	return obs, nil
}

func (r *eventRepo) QuestionIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.AnswerEvent.Query().
		Unique(true).
		Select(answerevent.FieldQuestionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question ids: %w", err)
	}
	return ids, nil
}
