// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsinha/adaptiq/ent/decisionevent"
)

// DecisionEventCreate is the builder for creating a DecisionEvent entity.
type DecisionEventCreate struct {
	config
	mutation *DecisionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DecisionEventCreate) SetSequence(v int64) *DecisionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DecisionEventCreate) SetTimestamp(v time.Time) *DecisionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableTimestamp(v *time.Time) *DecisionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *DecisionEventCreate) SetLearnerID(v string) *DecisionEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *DecisionEventCreate) SetConceptID(v string) *DecisionEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *DecisionEventCreate) SetDomain(v string) *DecisionEventCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetPreviousLevel sets the "previous_level" field.
func (_c *DecisionEventCreate) SetPreviousLevel(v int) *DecisionEventCreate {
	_c.mutation.SetPreviousLevel(v)
	return _c
}

// SetNewLevel sets the "new_level" field.
func (_c *DecisionEventCreate) SetNewLevel(v int) *DecisionEventCreate {
	_c.mutation.SetNewLevel(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *DecisionEventCreate) SetReason(v string) *DecisionEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetMasteryAchieved sets the "mastery_achieved" field.
func (_c *DecisionEventCreate) SetMasteryAchieved(v bool) *DecisionEventCreate {
	_c.mutation.SetMasteryAchieved(v)
	return _c
}

// SetMasteryProbability sets the "mastery_probability" field.
func (_c *DecisionEventCreate) SetMasteryProbability(v float64) *DecisionEventCreate {
	_c.mutation.SetMasteryProbability(v)
	return _c
}

// SetZone sets the "zone" field.
func (_c *DecisionEventCreate) SetZone(v string) *DecisionEventCreate {
	_c.mutation.SetZone(v)
	return _c
}

// SetBehavioralIndicator sets the "behavioral_indicator" field.
func (_c *DecisionEventCreate) SetBehavioralIndicator(v string) *DecisionEventCreate {
	_c.mutation.SetBehavioralIndicator(v)
	return _c
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_c *DecisionEventCreate) Mutation() *DecisionEventMutation {
	return _c.mutation
}

// Save creates the DecisionEvent in the database.
func (_c *DecisionEventCreate) Save(ctx context.Context) (*DecisionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionEventCreate) SaveX(ctx context.Context) *DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := decisionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DecisionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DecisionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "DecisionEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := decisionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "DecisionEvent.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := decisionevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "DecisionEvent.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := decisionevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreviousLevel(); !ok {
		return &ValidationError{Name: "previous_level", err: errors.New(`ent: missing required field "DecisionEvent.previous_level"`)}
	}
	if v, ok := _c.mutation.PreviousLevel(); ok {
		if err := decisionevent.PreviousLevelValidator(v); err != nil {
			return &ValidationError{Name: "previous_level", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.previous_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewLevel(); !ok {
		return &ValidationError{Name: "new_level", err: errors.New(`ent: missing required field "DecisionEvent.new_level"`)}
	}
	if v, ok := _c.mutation.NewLevel(); ok {
		if err := decisionevent.NewLevelValidator(v); err != nil {
			return &ValidationError{Name: "new_level", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.new_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "DecisionEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := decisionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryAchieved(); !ok {
		return &ValidationError{Name: "mastery_achieved", err: errors.New(`ent: missing required field "DecisionEvent.mastery_achieved"`)}
	}
	if _, ok := _c.mutation.MasteryProbability(); !ok {
		return &ValidationError{Name: "mastery_probability", err: errors.New(`ent: missing required field "DecisionEvent.mastery_probability"`)}
	}
	if _, ok := _c.mutation.Zone(); !ok {
		return &ValidationError{Name: "zone", err: errors.New(`ent: missing required field "DecisionEvent.zone"`)}
	}
	if v, ok := _c.mutation.Zone(); ok {
		if err := decisionevent.ZoneValidator(v); err != nil {
			return &ValidationError{Name: "zone", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.zone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BehavioralIndicator(); !ok {
		return &ValidationError{Name: "behavioral_indicator", err: errors.New(`ent: missing required field "DecisionEvent.behavioral_indicator"`)}
	}
	return nil
}

func (_c *DecisionEventCreate) sqlSave(ctx context.Context) (*DecisionEvent, error) {
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

func (_c *DecisionEventCreate) createSpec() (*DecisionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionevent.Table, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(decisionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(decisionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(decisionevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(decisionevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(decisionevent.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.PreviousLevel(); ok {
		_spec.SetField(decisionevent.FieldPreviousLevel, field.TypeInt, value)
		_node.PreviousLevel = value
	}
	if value, ok := _c.mutation.NewLevel(); ok {
		_spec.SetField(decisionevent.FieldNewLevel, field.TypeInt, value)
		_node.NewLevel = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(decisionevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.MasteryAchieved(); ok {
		_spec.SetField(decisionevent.FieldMasteryAchieved, field.TypeBool, value)
		_node.MasteryAchieved = value
	}
	if value, ok := _c.mutation.MasteryProbability(); ok {
		_spec.SetField(decisionevent.FieldMasteryProbability, field.TypeFloat64, value)
		_node.MasteryProbability = value
	}
	if value, ok := _c.mutation.Zone(); ok {
		_spec.SetField(decisionevent.FieldZone, field.TypeString, value)
		_node.Zone = value
	}
	if value, ok := _c.mutation.BehavioralIndicator(); ok {
		_spec.SetField(decisionevent.FieldBehavioralIndicator, field.TypeString, value)
		_node.BehavioralIndicator = value
	}
	return _node, _spec
}

// DecisionEventCreateBulk is the builder for creating many DecisionEvent entities in bulk.
type DecisionEventCreateBulk struct {
	config
	err      error
	builders []*DecisionEventCreate
}

// Save creates the DecisionEvent entities in the database.
func (_c *DecisionEventCreateBulk) Save(ctx context.Context) ([]*DecisionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionEventMutation)
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
func (_c *DecisionEventCreateBulk) SaveX(ctx context.Context) []*DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
