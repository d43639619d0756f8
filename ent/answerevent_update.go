// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsinha/adaptiq/ent/answerevent"
	"github.com/rsinha/adaptiq/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AnswerEventUpdate) SetLearnerID(v string) *AnswerEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLearnerID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *AnswerEventUpdate) SetConceptID(v string) *AnswerEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableConceptID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *AnswerEventUpdate) SetDomain(v string) *AnswerEventUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDomain(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdate) SetQuestionType(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AnswerEventUpdate) SetResponseTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableResponseTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AnswerEventUpdate) AddResponseTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetExpectedTimeMs sets the "expected_time_ms" field.
func (_u *AnswerEventUpdate) SetExpectedTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetExpectedTimeMs()
	_u.mutation.SetExpectedTimeMs(v)
	return _u
}

// SetNillableExpectedTimeMs sets the "expected_time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExpectedTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetExpectedTimeMs(*v)
	}
	return _u
}

// AddExpectedTimeMs adds value to the "expected_time_ms" field.
func (_u *AnswerEventUpdate) AddExpectedTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddExpectedTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AnswerEventUpdate) SetHintsUsed(v int) *AnswerEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableHintsUsed(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AnswerEventUpdate) AddHintsUsed(v int) *AnswerEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AnswerEventUpdate) SetAttemptNumber(v int) *AnswerEventUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttemptNumber(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AnswerEventUpdate) AddAttemptNumber(v int) *AnswerEventUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *AnswerEventUpdate) SetDifficultyLevel(v int) *AnswerEventUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficultyLevel(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *AnswerEventUpdate) AddDifficultyLevel(v int) *AnswerEventUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetTheta sets the "theta" field.
func (_u *AnswerEventUpdate) SetTheta(v float64) *AnswerEventUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTheta(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *AnswerEventUpdate) AddTheta(v float64) *AnswerEventUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := answerevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := answerevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := answerevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := answerevent.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedTimeMs(); ok {
		if err := answerevent.ExpectedTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "expected_time_ms", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintsUsed(); ok {
		if err := answerevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.hints_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := answerevent.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := answerevent.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty_level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(answerevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(answerevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(answerevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(answerevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(answerevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedTimeMs(); ok {
		_spec.SetField(answerevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedTimeMs(); ok {
		_spec.AddField(answerevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(answerevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(answerevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(answerevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(answerevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AnswerEventUpdateOne) SetLearnerID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLearnerID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *AnswerEventUpdateOne) SetConceptID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableConceptID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *AnswerEventUpdateOne) SetDomain(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDomain(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdateOne) SetQuestionType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AnswerEventUpdateOne) SetResponseTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableResponseTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AnswerEventUpdateOne) AddResponseTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetExpectedTimeMs sets the "expected_time_ms" field.
func (_u *AnswerEventUpdateOne) SetExpectedTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetExpectedTimeMs()
	_u.mutation.SetExpectedTimeMs(v)
	return _u
}

// SetNillableExpectedTimeMs sets the "expected_time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExpectedTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExpectedTimeMs(*v)
	}
	return _u
}

// AddExpectedTimeMs adds value to the "expected_time_ms" field.
func (_u *AnswerEventUpdateOne) AddExpectedTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddExpectedTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AnswerEventUpdateOne) SetHintsUsed(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableHintsUsed(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AnswerEventUpdateOne) AddHintsUsed(v int) *AnswerEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AnswerEventUpdateOne) SetAttemptNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttemptNumber(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AnswerEventUpdateOne) AddAttemptNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *AnswerEventUpdateOne) SetDifficultyLevel(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficultyLevel(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *AnswerEventUpdateOne) AddDifficultyLevel(v int) *AnswerEventUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetTheta sets the "theta" field.
func (_u *AnswerEventUpdateOne) SetTheta(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTheta(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *AnswerEventUpdateOne) AddTheta(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := answerevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := answerevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := answerevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := answerevent.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedTimeMs(); ok {
		if err := answerevent.ExpectedTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "expected_time_ms", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintsUsed(); ok {
		if err := answerevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.hints_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := answerevent.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := answerevent.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty_level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(answerevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(answerevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(answerevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(answerevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(answerevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedTimeMs(); ok {
		_spec.SetField(answerevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedTimeMs(); ok {
		_spec.AddField(answerevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(answerevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(answerevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(answerevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(answerevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
