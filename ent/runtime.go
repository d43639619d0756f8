// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rsinha/adaptiq/ent/answerevent"
	"github.com/rsinha/adaptiq/ent/behaviorevent"
	"github.com/rsinha/adaptiq/ent/decisionevent"
	"github.com/rsinha/adaptiq/ent/schema"
	"github.com/rsinha/adaptiq/ent/snapshot"
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
	// answereventDescLearnerID is the schema descriptor for learner_id field.
	answereventDescLearnerID := answereventFields[0].Descriptor()
	// answerevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	answerevent.LearnerIDValidator = answereventDescLearnerID.Validators[0].(func(string) error)
	// answereventDescConceptID is the schema descriptor for concept_id field.
	answereventDescConceptID := answereventFields[1].Descriptor()
	// answerevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	answerevent.ConceptIDValidator = answereventDescConceptID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescDomain is the schema descriptor for domain field.
	answereventDescDomain := answereventFields[3].Descriptor()
	// answerevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	answerevent.DomainValidator = answereventDescDomain.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[4].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescResponseTimeMs is the schema descriptor for response_time_ms field.
	answereventDescResponseTimeMs := answereventFields[6].Descriptor()
	// answerevent.ResponseTimeMsValidator is a validator for the "response_time_ms" field. It is called by the builders before save.
	answerevent.ResponseTimeMsValidator = answereventDescResponseTimeMs.Validators[0].(func(int) error)
	// answereventDescExpectedTimeMs is the schema descriptor for expected_time_ms field.
	answereventDescExpectedTimeMs := answereventFields[7].Descriptor()
	// answerevent.ExpectedTimeMsValidator is a validator for the "expected_time_ms" field. It is called by the builders before save.
	answerevent.ExpectedTimeMsValidator = answereventDescExpectedTimeMs.Validators[0].(func(int) error)
	// answereventDescHintsUsed is the schema descriptor for hints_used field.
	answereventDescHintsUsed := answereventFields[8].Descriptor()
	// answerevent.HintsUsedValidator is a validator for the "hints_used" field. It is called by the builders before save.
	answerevent.HintsUsedValidator = answereventDescHintsUsed.Validators[0].(func(int) error)
	// answereventDescAttemptNumber is the schema descriptor for attempt_number field.
	answereventDescAttemptNumber := answereventFields[9].Descriptor()
	// answerevent.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	answerevent.AttemptNumberValidator = answereventDescAttemptNumber.Validators[0].(func(int) error)
	// answereventDescDifficultyLevel is the schema descriptor for difficulty_level field.
	answereventDescDifficultyLevel := answereventFields[10].Descriptor()
	// answerevent.DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	answerevent.DifficultyLevelValidator = answereventDescDifficultyLevel.Validators[0].(func(int) error)
	behavioreventMixin := schema.BehaviorEvent{}.Mixin()
	behavioreventMixinFields0 := behavioreventMixin[0].Fields()
	_ = behavioreventMixinFields0
	behavioreventFields := schema.BehaviorEvent{}.Fields()
	_ = behavioreventFields
	// behavioreventDescTimestamp is the schema descriptor for timestamp field.
	behavioreventDescTimestamp := behavioreventMixinFields0[1].Descriptor()
	// behaviorevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	behaviorevent.DefaultTimestamp = behavioreventDescTimestamp.Default.(func() time.Time)
	// behavioreventDescLearnerID is the schema descriptor for learner_id field.
	behavioreventDescLearnerID := behavioreventFields[0].Descriptor()
	// behaviorevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	behaviorevent.LearnerIDValidator = behavioreventDescLearnerID.Validators[0].(func(string) error)
	// behavioreventDescConceptID is the schema descriptor for concept_id field.
	behavioreventDescConceptID := behavioreventFields[1].Descriptor()
	// behaviorevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	behaviorevent.ConceptIDValidator = behavioreventDescConceptID.Validators[0].(func(string) error)
	// behavioreventDescResponseTimeMs is the schema descriptor for response_time_ms field.
	behavioreventDescResponseTimeMs := behavioreventFields[3].Descriptor()
	// behaviorevent.ResponseTimeMsValidator is a validator for the "response_time_ms" field. It is called by the builders before save.
	behaviorevent.ResponseTimeMsValidator = behavioreventDescResponseTimeMs.Validators[0].(func(int) error)
	// behavioreventDescExpectedTimeMs is the schema descriptor for expected_time_ms field.
	behavioreventDescExpectedTimeMs := behavioreventFields[4].Descriptor()
	// behaviorevent.ExpectedTimeMsValidator is a validator for the "expected_time_ms" field. It is called by the builders before save.
	behaviorevent.ExpectedTimeMsValidator = behavioreventDescExpectedTimeMs.Validators[0].(func(int) error)
	// behavioreventDescHintsUsed is the schema descriptor for hints_used field.
	behavioreventDescHintsUsed := behavioreventFields[5].Descriptor()
	// behaviorevent.HintsUsedValidator is a validator for the "hints_used" field. It is called by the builders before save.
	behaviorevent.HintsUsedValidator = behavioreventDescHintsUsed.Validators[0].(func(int) error)
	// behavioreventDescAttempts is the schema descriptor for attempts field.
	behavioreventDescAttempts := behavioreventFields[6].Descriptor()
	// behaviorevent.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	behaviorevent.AttemptsValidator = behavioreventDescAttempts.Validators[0].(func(int) error)
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescLearnerID is the schema descriptor for learner_id field.
	decisioneventDescLearnerID := decisioneventFields[0].Descriptor()
	// decisionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	decisionevent.LearnerIDValidator = decisioneventDescLearnerID.Validators[0].(func(string) error)
	// decisioneventDescConceptID is the schema descriptor for concept_id field.
	decisioneventDescConceptID := decisioneventFields[1].Descriptor()
	// decisionevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	decisionevent.ConceptIDValidator = decisioneventDescConceptID.Validators[0].(func(string) error)
	// decisioneventDescDomain is the schema descriptor for domain field.
	decisioneventDescDomain := decisioneventFields[2].Descriptor()
	// decisionevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	decisionevent.DomainValidator = decisioneventDescDomain.Validators[0].(func(string) error)
	// decisioneventDescPreviousLevel is the schema descriptor for previous_level field.
	decisioneventDescPreviousLevel := decisioneventFields[3].Descriptor()
	// decisionevent.PreviousLevelValidator is a validator for the "previous_level" field. It is called by the builders before save.
	decisionevent.PreviousLevelValidator = decisioneventDescPreviousLevel.Validators[0].(func(int) error)
	// decisioneventDescNewLevel is the schema descriptor for new_level field.
	decisioneventDescNewLevel := decisioneventFields[4].Descriptor()
	// decisionevent.NewLevelValidator is a validator for the "new_level" field. It is called by the builders before save.
	decisionevent.NewLevelValidator = decisioneventDescNewLevel.Validators[0].(func(int) error)
	// decisioneventDescReason is the schema descriptor for reason field.
	decisioneventDescReason := decisioneventFields[5].Descriptor()
	// decisionevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	decisionevent.ReasonValidator = decisioneventDescReason.Validators[0].(func(string) error)
	// decisioneventDescZone is the schema descriptor for zone field.
	decisioneventDescZone := decisioneventFields[8].Descriptor()
	// decisionevent.ZoneValidator is a validator for the "zone" field. It is called by the builders before save.
	decisionevent.ZoneValidator = decisioneventDescZone.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
