// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsinha/adaptiq/ent/behaviorevent"
	"github.com/rsinha/adaptiq/ent/predicate"
)

// BehaviorEventUpdate is the builder for updating BehaviorEvent entities.
type BehaviorEventUpdate struct {
	config
	hooks    []Hook
	mutation *BehaviorEventMutation
}

// Where appends a list predicates to the BehaviorEventUpdate builder.
func (_u *BehaviorEventUpdate) Where(ps ...predicate.BehaviorEvent) *BehaviorEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *BehaviorEventUpdate) SetLearnerID(v string) *BehaviorEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableLearnerID(v *string) *BehaviorEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *BehaviorEventUpdate) SetConceptID(v string) *BehaviorEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableConceptID(v *string) *BehaviorEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *BehaviorEventUpdate) SetEventType(v behaviorevent.EventType) *BehaviorEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableEventType(v *behaviorevent.EventType) *BehaviorEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *BehaviorEventUpdate) SetResponseTimeMs(v int) *BehaviorEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableResponseTimeMs(v *int) *BehaviorEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *BehaviorEventUpdate) AddResponseTimeMs(v int) *BehaviorEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetExpectedTimeMs sets the "expected_time_ms" field.
func (_u *BehaviorEventUpdate) SetExpectedTimeMs(v int) *BehaviorEventUpdate {
	_u.mutation.ResetExpectedTimeMs()
	_u.mutation.SetExpectedTimeMs(v)
	return _u
}

// SetNillableExpectedTimeMs sets the "expected_time_ms" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableExpectedTimeMs(v *int) *BehaviorEventUpdate {
	if v != nil {
		_u.SetExpectedTimeMs(*v)
	}
	return _u
}

// AddExpectedTimeMs adds value to the "expected_time_ms" field.
func (_u *BehaviorEventUpdate) AddExpectedTimeMs(v int) *BehaviorEventUpdate {
	_u.mutation.AddExpectedTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *BehaviorEventUpdate) SetHintsUsed(v int) *BehaviorEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableHintsUsed(v *int) *BehaviorEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *BehaviorEventUpdate) AddHintsUsed(v int) *BehaviorEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *BehaviorEventUpdate) SetAttempts(v int) *BehaviorEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableAttempts(v *int) *BehaviorEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *BehaviorEventUpdate) AddAttempts(v int) *BehaviorEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *BehaviorEventUpdate) SetCorrect(v bool) *BehaviorEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableCorrect(v *bool) *BehaviorEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// ClearCorrect clears the value of the "correct" field.
func (_u *BehaviorEventUpdate) ClearCorrect() *BehaviorEventUpdate {
	_u.mutation.ClearCorrect()
	return _u
}

// Mutation returns the BehaviorEventMutation object of the builder.
func (_u *BehaviorEventUpdate) Mutation() *BehaviorEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BehaviorEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehaviorEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BehaviorEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehaviorEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehaviorEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := behaviorevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := behaviorevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := behaviorevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := behaviorevent.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedTimeMs(); ok {
		if err := behaviorevent.ExpectedTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "expected_time_ms", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.expected_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintsUsed(); ok {
		if err := behaviorevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.hints_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := behaviorevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *BehaviorEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behaviorevent.Table, behaviorevent.Columns, sqlgraph.NewFieldSpec(behaviorevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(behaviorevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(behaviorevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(behaviorevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(behaviorevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(behaviorevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedTimeMs(); ok {
		_spec.SetField(behaviorevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedTimeMs(); ok {
		_spec.AddField(behaviorevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(behaviorevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(behaviorevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(behaviorevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(behaviorevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(behaviorevent.FieldCorrect, field.TypeBool, value)
	}
	if _u.mutation.CorrectCleared() {
		_spec.ClearField(behaviorevent.FieldCorrect, field.TypeBool)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behaviorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BehaviorEventUpdateOne is the builder for updating a single BehaviorEvent entity.
type BehaviorEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BehaviorEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *BehaviorEventUpdateOne) SetLearnerID(v string) *BehaviorEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableLearnerID(v *string) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *BehaviorEventUpdateOne) SetConceptID(v string) *BehaviorEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableConceptID(v *string) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *BehaviorEventUpdateOne) SetEventType(v behaviorevent.EventType) *BehaviorEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableEventType(v *behaviorevent.EventType) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *BehaviorEventUpdateOne) SetResponseTimeMs(v int) *BehaviorEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableResponseTimeMs(v *int) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *BehaviorEventUpdateOne) AddResponseTimeMs(v int) *BehaviorEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetExpectedTimeMs sets the "expected_time_ms" field.
func (_u *BehaviorEventUpdateOne) SetExpectedTimeMs(v int) *BehaviorEventUpdateOne {
	_u.mutation.ResetExpectedTimeMs()
	_u.mutation.SetExpectedTimeMs(v)
	return _u
}

// SetNillableExpectedTimeMs sets the "expected_time_ms" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableExpectedTimeMs(v *int) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetExpectedTimeMs(*v)
	}
	return _u
}

// AddExpectedTimeMs adds value to the "expected_time_ms" field.
func (_u *BehaviorEventUpdateOne) AddExpectedTimeMs(v int) *BehaviorEventUpdateOne {
	_u.mutation.AddExpectedTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *BehaviorEventUpdateOne) SetHintsUsed(v int) *BehaviorEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableHintsUsed(v *int) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *BehaviorEventUpdateOne) AddHintsUsed(v int) *BehaviorEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *BehaviorEventUpdateOne) SetAttempts(v int) *BehaviorEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableAttempts(v *int) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *BehaviorEventUpdateOne) AddAttempts(v int) *BehaviorEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *BehaviorEventUpdateOne) SetCorrect(v bool) *BehaviorEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableCorrect(v *bool) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// ClearCorrect clears the value of the "correct" field.
func (_u *BehaviorEventUpdateOne) ClearCorrect() *BehaviorEventUpdateOne {
	_u.mutation.ClearCorrect()
	return _u
}

// Mutation returns the BehaviorEventMutation object of the builder.
func (_u *BehaviorEventUpdateOne) Mutation() *BehaviorEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BehaviorEventUpdate builder.
func (_u *BehaviorEventUpdateOne) Where(ps ...predicate.BehaviorEvent) *BehaviorEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BehaviorEventUpdateOne) Select(field string, fields ...string) *BehaviorEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BehaviorEvent entity.
func (_u *BehaviorEventUpdateOne) Save(ctx context.Context) (*BehaviorEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehaviorEventUpdateOne) SaveX(ctx context.Context) *BehaviorEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BehaviorEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehaviorEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BehaviorEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := behaviorevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := behaviorevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := behaviorevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := behaviorevent.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedTimeMs(); ok {
		if err := behaviorevent.ExpectedTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "expected_time_ms", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.expected_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintsUsed(); ok {
		if err := behaviorevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.hints_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := behaviorevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *BehaviorEventUpdateOne) sqlSave(ctx context.Context) (_node *BehaviorEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(behaviorevent.Table, behaviorevent.Columns, sqlgraph.NewFieldSpec(behaviorevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BehaviorEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, behaviorevent.FieldID)
		for _, f := range fields {
			if !behaviorevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != behaviorevent.FieldID {
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
		_spec.SetField(behaviorevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(behaviorevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(behaviorevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(behaviorevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(behaviorevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedTimeMs(); ok {
		_spec.SetField(behaviorevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedTimeMs(); ok {
		_spec.AddField(behaviorevent.FieldExpectedTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(behaviorevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(behaviorevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(behaviorevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(behaviorevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(behaviorevent.FieldCorrect, field.TypeBool, value)
	}
	if _u.mutation.CorrectCleared() {
		_spec.ClearField(behaviorevent.FieldCorrect, field.TypeBool)
	}
	_node = &BehaviorEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behaviorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
