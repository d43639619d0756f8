// Code generated by ent, DO NOT EDIT.

package behaviorevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rsinha/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldLearnerID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldConceptID, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ExpectedTimeMs applies equality check predicate on the "expected_time_ms" field. It's identical to ExpectedTimeMsEQ.
func ExpectedTimeMs(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldExpectedTimeMs, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldAttempts, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldResponseTimeMs, v))
}

// ExpectedTimeMsEQ applies the EQ predicate on the "expected_time_ms" field.
func ExpectedTimeMsEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldExpectedTimeMs, v))
}

// ExpectedTimeMsNEQ applies the NEQ predicate on the "expected_time_ms" field.
func ExpectedTimeMsNEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldExpectedTimeMs, v))
}

// ExpectedTimeMsIn applies the In predicate on the "expected_time_ms" field.
func ExpectedTimeMsIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldExpectedTimeMs, vs...))
}

// ExpectedTimeMsNotIn applies the NotIn predicate on the "expected_time_ms" field.
func ExpectedTimeMsNotIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldExpectedTimeMs, vs...))
}

// ExpectedTimeMsGT applies the GT predicate on the "expected_time_ms" field.
func ExpectedTimeMsGT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldExpectedTimeMs, v))
}

// ExpectedTimeMsGTE applies the GTE predicate on the "expected_time_ms" field.
func ExpectedTimeMsGTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldExpectedTimeMs, v))
}

// ExpectedTimeMsLT applies the LT predicate on the "expected_time_ms" field.
func ExpectedTimeMsLT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldExpectedTimeMs, v))
}

// ExpectedTimeMsLTE applies the LTE predicate on the "expected_time_ms" field.
func ExpectedTimeMsLTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldExpectedTimeMs, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldLTE(FieldAttempts, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIsNil applies the IsNil predicate on the "correct" field.
func CorrectIsNil() predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldIsNull(FieldCorrect))
}

// CorrectNotNil applies the NotNil predicate on the "correct" field.
func CorrectNotNil() predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.FieldNotNull(FieldCorrect))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BehaviorEvent) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BehaviorEvent) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BehaviorEvent) predicate.BehaviorEvent {
	return predicate.BehaviorEvent(sql.NotPredicates(p))
}
