package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BehaviorEvent is one entry in the append-only interaction log the
// behavioral analyzer reads: answers, hint requests, abandons,
// rapid attempts, and timeouts.
type BehaviorEvent struct {
	ent.Schema
}

func (BehaviorEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BehaviorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Enum("event_type").
			Values("answer", "hint_request", "abandon", "rapid_attempt", "timeout"),
		field.Int("response_time_ms").
			NonNegative(),
		field.Int("expected_time_ms").
			NonNegative().
			Comment("Zero for events with no timing expectation"),
		field.Int("hints_used").
			NonNegative(),
		field.Int("attempts").
			Min(1),
		field.Bool("correct").
			Optional().
			Nillable().
			Comment("Set only for answer events"),
	}
}

func (BehaviorEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("event_type"),
	}
}
