// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsinha/adaptiq/ent/decisionevent"
	"github.com/rsinha/adaptiq/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *DecisionEventUpdate) SetLearnerID(v string) *DecisionEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableLearnerID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *DecisionEventUpdate) SetConceptID(v string) *DecisionEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableConceptID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *DecisionEventUpdate) SetDomain(v string) *DecisionEventUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableDomain(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetPreviousLevel sets the "previous_level" field.
func (_u *DecisionEventUpdate) SetPreviousLevel(v int) *DecisionEventUpdate {
	_u.mutation.ResetPreviousLevel()
	_u.mutation.SetPreviousLevel(v)
	return _u
}

// SetNillablePreviousLevel sets the "previous_level" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillablePreviousLevel(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetPreviousLevel(*v)
	}
	return _u
}

// AddPreviousLevel adds value to the "previous_level" field.
func (_u *DecisionEventUpdate) AddPreviousLevel(v int) *DecisionEventUpdate {
	_u.mutation.AddPreviousLevel(v)
	return _u
}

// SetNewLevel sets the "new_level" field.
func (_u *DecisionEventUpdate) SetNewLevel(v int) *DecisionEventUpdate {
	_u.mutation.ResetNewLevel()
	_u.mutation.SetNewLevel(v)
	return _u
}

// SetNillableNewLevel sets the "new_level" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableNewLevel(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetNewLevel(*v)
	}
	return _u
}

// AddNewLevel adds value to the "new_level" field.
func (_u *DecisionEventUpdate) AddNewLevel(v int) *DecisionEventUpdate {
	_u.mutation.AddNewLevel(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *DecisionEventUpdate) SetReason(v string) *DecisionEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableReason(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetMasteryAchieved sets the "mastery_achieved" field.
func (_u *DecisionEventUpdate) SetMasteryAchieved(v bool) *DecisionEventUpdate {
	_u.mutation.SetMasteryAchieved(v)
	return _u
}

// SetNillableMasteryAchieved sets the "mastery_achieved" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableMasteryAchieved(v *bool) *DecisionEventUpdate {
	if v != nil {
		_u.SetMasteryAchieved(*v)
	}
	return _u
}

// SetMasteryProbability sets the "mastery_probability" field.
func (_u *DecisionEventUpdate) SetMasteryProbability(v float64) *DecisionEventUpdate {
	_u.mutation.ResetMasteryProbability()
	_u.mutation.SetMasteryProbability(v)
	return _u
}

// SetNillableMasteryProbability sets the "mastery_probability" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableMasteryProbability(v *float64) *DecisionEventUpdate {
	if v != nil {
		_u.SetMasteryProbability(*v)
	}
	return _u
}

// AddMasteryProbability adds value to the "mastery_probability" field.
func (_u *DecisionEventUpdate) AddMasteryProbability(v float64) *DecisionEventUpdate {
	_u.mutation.AddMasteryProbability(v)
	return _u
}

// SetZone sets the "zone" field.
func (_u *DecisionEventUpdate) SetZone(v string) *DecisionEventUpdate {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableZone(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetBehavioralIndicator sets the "behavioral_indicator" field.
func (_u *DecisionEventUpdate) SetBehavioralIndicator(v string) *DecisionEventUpdate {
	_u.mutation.SetBehavioralIndicator(v)
	return _u
}

// SetNillableBehavioralIndicator sets the "behavioral_indicator" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableBehavioralIndicator(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetBehavioralIndicator(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := decisionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := decisionevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := decisionevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreviousLevel(); ok {
		if err := decisionevent.PreviousLevelValidator(v); err != nil {
			return &ValidationError{Name: "previous_level", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.previous_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewLevel(); ok {
		if err := decisionevent.NewLevelValidator(v); err != nil {
			return &ValidationError{Name: "new_level", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.new_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := decisionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Zone(); ok {
		if err := decisionevent.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.zone": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(decisionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(decisionevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(decisionevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousLevel(); ok {
		_spec.SetField(decisionevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousLevel(); ok {
		_spec.AddField(decisionevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewLevel(); ok {
		_spec.SetField(decisionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewLevel(); ok {
		_spec.AddField(decisionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(decisionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryAchieved(); ok {
		_spec.SetField(decisionevent.FieldMasteryAchieved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MasteryProbability(); ok {
		_spec.SetField(decisionevent.FieldMasteryProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryProbability(); ok {
		_spec.AddField(decisionevent.FieldMasteryProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(decisionevent.FieldZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.BehavioralIndicator(); ok {
		_spec.SetField(decisionevent.FieldBehavioralIndicator, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *DecisionEventUpdateOne) SetLearnerID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableLearnerID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *DecisionEventUpdateOne) SetConceptID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableConceptID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *DecisionEventUpdateOne) SetDomain(v string) *DecisionEventUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableDomain(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetPreviousLevel sets the "previous_level" field.
func (_u *DecisionEventUpdateOne) SetPreviousLevel(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetPreviousLevel()
	_u.mutation.SetPreviousLevel(v)
	return _u
}

// SetNillablePreviousLevel sets the "previous_level" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillablePreviousLevel(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetPreviousLevel(*v)
	}
	return _u
}

// AddPreviousLevel adds value to the "previous_level" field.
func (_u *DecisionEventUpdateOne) AddPreviousLevel(v int) *DecisionEventUpdateOne {
	_u.mutation.AddPreviousLevel(v)
	return _u
}

// SetNewLevel sets the "new_level" field.
func (_u *DecisionEventUpdateOne) SetNewLevel(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetNewLevel()
	_u.mutation.SetNewLevel(v)
	return _u
}

// SetNillableNewLevel sets the "new_level" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableNewLevel(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetNewLevel(*v)
	}
	return _u
}

// AddNewLevel adds value to the "new_level" field.
func (_u *DecisionEventUpdateOne) AddNewLevel(v int) *DecisionEventUpdateOne {
	_u.mutation.AddNewLevel(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *DecisionEventUpdateOne) SetReason(v string) *DecisionEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableReason(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetMasteryAchieved sets the "mastery_achieved" field.
func (_u *DecisionEventUpdateOne) SetMasteryAchieved(v bool) *DecisionEventUpdateOne {
	_u.mutation.SetMasteryAchieved(v)
	return _u
}

// SetNillableMasteryAchieved sets the "mastery_achieved" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableMasteryAchieved(v *bool) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetMasteryAchieved(*v)
	}
	return _u
}

// SetMasteryProbability sets the "mastery_probability" field.
func (_u *DecisionEventUpdateOne) SetMasteryProbability(v float64) *DecisionEventUpdateOne {
	_u.mutation.ResetMasteryProbability()
	_u.mutation.SetMasteryProbability(v)
	return _u
}

// SetNillableMasteryProbability sets the "mastery_probability" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableMasteryProbability(v *float64) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetMasteryProbability(*v)
	}
	return _u
}

// AddMasteryProbability adds value to the "mastery_probability" field.
func (_u *DecisionEventUpdateOne) AddMasteryProbability(v float64) *DecisionEventUpdateOne {
	_u.mutation.AddMasteryProbability(v)
	return _u
}

// SetZone sets the "zone" field.
func (_u *DecisionEventUpdateOne) SetZone(v string) *DecisionEventUpdateOne {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableZone(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// SetBehavioralIndicator sets the "behavioral_indicator" field.
func (_u *DecisionEventUpdateOne) SetBehavioralIndicator(v string) *DecisionEventUpdateOne {
	_u.mutation.SetBehavioralIndicator(v)
	return _u
}

// SetNillableBehavioralIndicator sets the "behavioral_indicator" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableBehavioralIndicator(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetBehavioralIndicator(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := decisionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := decisionevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := decisionevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreviousLevel(); ok {
		if err := decisionevent.PreviousLevelValidator(v); err != nil {
			return &ValidationError{Name: "previous_level", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.previous_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewLevel(); ok {
		if err := decisionevent.NewLevelValidator(v); err != nil {
			return &ValidationError{Name: "new_level", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.new_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := decisionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Zone(); ok {
		if err := decisionevent.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.zone": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
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
		_spec.SetField(decisionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(decisionevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(decisionevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousLevel(); ok {
		_spec.SetField(decisionevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousLevel(); ok {
		_spec.AddField(decisionevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewLevel(); ok {
		_spec.SetField(decisionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewLevel(); ok {
		_spec.AddField(decisionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(decisionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryAchieved(); ok {
		_spec.SetField(decisionevent.FieldMasteryAchieved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MasteryProbability(); ok {
		_spec.SetField(decisionevent.FieldMasteryProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryProbability(); ok {
		_spec.AddField(decisionevent.FieldMasteryProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(decisionevent.FieldZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.BehavioralIndicator(); ok {
		_spec.SetField(decisionevent.FieldBehavioralIndicator, field.TypeString, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
