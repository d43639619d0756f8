// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsinha/adaptiq/ent/behaviorevent"
)

// BehaviorEventCreate is the builder for creating a BehaviorEvent entity.
type BehaviorEventCreate struct {
	config
	mutation *BehaviorEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BehaviorEventCreate) SetSequence(v int64) *BehaviorEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BehaviorEventCreate) SetTimestamp(v time.Time) *BehaviorEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BehaviorEventCreate) SetNillableTimestamp(v *time.Time) *BehaviorEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *BehaviorEventCreate) SetLearnerID(v string) *BehaviorEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *BehaviorEventCreate) SetConceptID(v string) *BehaviorEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *BehaviorEventCreate) SetEventType(v behaviorevent.EventType) *BehaviorEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *BehaviorEventCreate) SetResponseTimeMs(v int) *BehaviorEventCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetExpectedTimeMs sets the "expected_time_ms" field.
func (_c *BehaviorEventCreate) SetExpectedTimeMs(v int) *BehaviorEventCreate {
	_c.mutation.SetExpectedTimeMs(v)
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *BehaviorEventCreate) SetHintsUsed(v int) *BehaviorEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *BehaviorEventCreate) SetAttempts(v int) *BehaviorEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *BehaviorEventCreate) SetCorrect(v bool) *BehaviorEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *BehaviorEventCreate) SetNillableCorrect(v *bool) *BehaviorEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// Mutation returns the BehaviorEventMutation object of the builder.
func (_c *BehaviorEventCreate) Mutation() *BehaviorEventMutation {
	return _c.mutation
}

// Save creates the BehaviorEvent in the database.
func (_c *BehaviorEventCreate) Save(ctx context.Context) (*BehaviorEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BehaviorEventCreate) SaveX(ctx context.Context) *BehaviorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehaviorEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehaviorEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BehaviorEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := behaviorevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BehaviorEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BehaviorEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BehaviorEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "BehaviorEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := behaviorevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "BehaviorEvent.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := behaviorevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "BehaviorEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := behaviorevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "BehaviorEvent.response_time_ms"`)}
	}
	if v, ok := _c.mutation.ResponseTimeMs(); ok {
		if err := behaviorevent.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.response_time_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedTimeMs(); !ok {
		return &ValidationError{Name: "expected_time_ms", err: errors.New(`ent: missing required field "BehaviorEvent.expected_time_ms"`)}
	}
	if v, ok := _c.mutation.ExpectedTimeMs(); ok {
		if err := behaviorevent.ExpectedTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "expected_time_ms", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.expected_time_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "BehaviorEvent.hints_used"`)}
	}
	if v, ok := _c.mutation.HintsUsed(); ok {
		if err := behaviorevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.hints_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "BehaviorEvent.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := behaviorevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "BehaviorEvent.attempts": %w`, err)}
		}
	}
	return nil
}

func (_c *BehaviorEventCreate) sqlSave(ctx context.Context) (*BehaviorEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BehaviorEventCreate) createSpec() (*BehaviorEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BehaviorEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(behaviorevent.Table, sqlgraph.NewFieldSpec(behaviorevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(behaviorevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(behaviorevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(behaviorevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(behaviorevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(behaviorevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(behaviorevent.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.ExpectedTimeMs(); ok {
		_spec.SetField(behaviorevent.FieldExpectedTimeMs, field.TypeInt, value)
		_node.ExpectedTimeMs = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(behaviorevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(behaviorevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(behaviorevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = &value
	}
	return _node, _spec
}

// BehaviorEventCreateBulk is the builder for creating many BehaviorEvent entities in bulk.
type BehaviorEventCreateBulk struct {
	config
	err      error
	builders []*BehaviorEventCreate
}

// Save creates the BehaviorEvent entities in the database.
func (_c *BehaviorEventCreateBulk) Save(ctx context.Context) ([]*BehaviorEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BehaviorEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BehaviorEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BehaviorEventCreateBulk) SaveX(ctx context.Context) []*BehaviorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehaviorEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehaviorEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
