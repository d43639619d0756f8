// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rsinha/adaptiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldLearnerID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConceptID, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDomain, v))
}

// PreviousLevel applies equality check predicate on the "previous_level" field. It's identical to PreviousLevelEQ.
func PreviousLevel(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldPreviousLevel, v))
}

// NewLevel applies equality check predicate on the "new_level" field. It's identical to NewLevelEQ.
func NewLevel(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldNewLevel, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldReason, v))
}

// MasteryAchieved applies equality check predicate on the "mastery_achieved" field. It's identical to MasteryAchievedEQ.
func MasteryAchieved(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldMasteryAchieved, v))
}

// MasteryProbability applies equality check predicate on the "mastery_probability" field. It's identical to MasteryProbabilityEQ.
func MasteryProbability(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldMasteryProbability, v))
}

// Zone applies equality check predicate on the "zone" field. It's identical to ZoneEQ.
func Zone(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldZone, v))
}

// BehavioralIndicator applies equality check predicate on the "behavioral_indicator" field. It's identical to BehavioralIndicatorEQ.
func BehavioralIndicator(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldBehavioralIndicator, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldDomain, v))
}

// PreviousLevelEQ applies the EQ predicate on the "previous_level" field.
func PreviousLevelEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldPreviousLevel, v))
}

// PreviousLevelNEQ applies the NEQ predicate on the "previous_level" field.
func PreviousLevelNEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldPreviousLevel, v))
}

// PreviousLevelIn applies the In predicate on the "previous_level" field.
func PreviousLevelIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldPreviousLevel, vs...))
}

// PreviousLevelNotIn applies the NotIn predicate on the "previous_level" field.
func PreviousLevelNotIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldPreviousLevel, vs...))
}

// PreviousLevelGT applies the GT predicate on the "previous_level" field.
func PreviousLevelGT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldPreviousLevel, v))
}

// PreviousLevelGTE applies the GTE predicate on the "previous_level" field.
func PreviousLevelGTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldPreviousLevel, v))
}

// PreviousLevelLT applies the LT predicate on the "previous_level" field.
func PreviousLevelLT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldPreviousLevel, v))
}

// PreviousLevelLTE applies the LTE predicate on the "previous_level" field.
func PreviousLevelLTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldPreviousLevel, v))
}

// NewLevelEQ applies the EQ predicate on the "new_level" field.
func NewLevelEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldNewLevel, v))
}

// NewLevelNEQ applies the NEQ predicate on the "new_level" field.
func NewLevelNEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldNewLevel, v))
}

// NewLevelIn applies the In predicate on the "new_level" field.
func NewLevelIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldNewLevel, vs...))
}

// NewLevelNotIn applies the NotIn predicate on the "new_level" field.
func NewLevelNotIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldNewLevel, vs...))
}

// NewLevelGT applies the GT predicate on the "new_level" field.
func NewLevelGT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldNewLevel, v))
}

// NewLevelGTE applies the GTE predicate on the "new_level" field.
func NewLevelGTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldNewLevel, v))
}

// NewLevelLT applies the LT predicate on the "new_level" field.
func NewLevelLT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldNewLevel, v))
}

// NewLevelLTE applies the LTE predicate on the "new_level" field.
func NewLevelLTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldNewLevel, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldReason, v))
}

// MasteryAchievedEQ applies the EQ predicate on the "mastery_achieved" field.
func MasteryAchievedEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldMasteryAchieved, v))
}

// MasteryAchievedNEQ applies the NEQ predicate on the "mastery_achieved" field.
func MasteryAchievedNEQ(v bool) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldMasteryAchieved, v))
}

// MasteryProbabilityEQ applies the EQ predicate on the "mastery_probability" field.
func MasteryProbabilityEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldMasteryProbability, v))
}

// MasteryProbabilityNEQ applies the NEQ predicate on the "mastery_probability" field.
func MasteryProbabilityNEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldMasteryProbability, v))
}

// MasteryProbabilityIn applies the In predicate on the "mastery_probability" field.
func MasteryProbabilityIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldMasteryProbability, vs...))
}

// MasteryProbabilityNotIn applies the NotIn predicate on the "mastery_probability" field.
func MasteryProbabilityNotIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldMasteryProbability, vs...))
}

// MasteryProbabilityGT applies the GT predicate on the "mastery_probability" field.
func MasteryProbabilityGT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldMasteryProbability, v))
}

// MasteryProbabilityGTE applies the GTE predicate on the "mastery_probability" field.
func MasteryProbabilityGTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldMasteryProbability, v))
}

// MasteryProbabilityLT applies the LT predicate on the "mastery_probability" field.
func MasteryProbabilityLT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldMasteryProbability, v))
}

// MasteryProbabilityLTE applies the LTE predicate on the "mastery_probability" field.
func MasteryProbabilityLTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldMasteryProbability, v))
}

// ZoneEQ applies the EQ predicate on the "zone" field.
func ZoneEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldZone, v))
}

// ZoneNEQ applies the NEQ predicate on the "zone" field.
func ZoneNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldZone, v))
}

// ZoneIn applies the In predicate on the "zone" field.
func ZoneIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldZone, vs...))
}

// ZoneNotIn applies the NotIn predicate on the "zone" field.
func ZoneNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldZone, vs...))
}

// ZoneGT applies the GT predicate on the "zone" field.
func ZoneGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldZone, v))
}

// ZoneGTE applies the GTE predicate on the "zone" field.
func ZoneGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldZone, v))
}

// ZoneLT applies the LT predicate on the "zone" field.
func ZoneLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldZone, v))
}

// ZoneLTE applies the LTE predicate on the "zone" field.
func ZoneLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldZone, v))
}

// ZoneContains applies the Contains predicate on the "zone" field.
func ZoneContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldZone, v))
}

// ZoneHasPrefix applies the HasPrefix predicate on the "zone" field.
func ZoneHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldZone, v))
}

// ZoneHasSuffix applies the HasSuffix predicate on the "zone" field.
func ZoneHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldZone, v))
}

// ZoneEqualFold applies the EqualFold predicate on the "zone" field.
func ZoneEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldZone, v))
}

// ZoneContainsFold applies the ContainsFold predicate on the "zone" field.
func ZoneContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldZone, v))
}

// BehavioralIndicatorEQ applies the EQ predicate on the "behavioral_indicator" field.
func BehavioralIndicatorEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorNEQ applies the NEQ predicate on the "behavioral_indicator" field.
func BehavioralIndicatorNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorIn applies the In predicate on the "behavioral_indicator" field.
func BehavioralIndicatorIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldBehavioralIndicator, vs...))
}

// BehavioralIndicatorNotIn applies the NotIn predicate on the "behavioral_indicator" field.
func BehavioralIndicatorNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldBehavioralIndicator, vs...))
}

// BehavioralIndicatorGT applies the GT predicate on the "behavioral_indicator" field.
func BehavioralIndicatorGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorGTE applies the GTE predicate on the "behavioral_indicator" field.
func BehavioralIndicatorGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorLT applies the LT predicate on the "behavioral_indicator" field.
func BehavioralIndicatorLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorLTE applies the LTE predicate on the "behavioral_indicator" field.
func BehavioralIndicatorLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorContains applies the Contains predicate on the "behavioral_indicator" field.
func BehavioralIndicatorContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorHasPrefix applies the HasPrefix predicate on the "behavioral_indicator" field.
func BehavioralIndicatorHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorHasSuffix applies the HasSuffix predicate on the "behavioral_indicator" field.
func BehavioralIndicatorHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorEqualFold applies the EqualFold predicate on the "behavioral_indicator" field.
func BehavioralIndicatorEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldBehavioralIndicator, v))
}

// BehavioralIndicatorContainsFold applies the ContainsFold predicate on the "behavioral_indicator" field.
func BehavioralIndicatorContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldBehavioralIndicator, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.NotPredicates(p))
}
