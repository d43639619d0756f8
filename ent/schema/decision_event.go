package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent records one difficulty decision for audit and
// analytics: what the signals said and where the level moved.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.String("domain").NotEmpty(),
		field.Int("previous_level").Range(1, 6),
		field.Int("new_level").Range(1, 6),
		field.String("reason").
			NotEmpty().
			Comment("Decision reason tag (increase_performance, ...)"),
		field.Bool("mastery_achieved"),
		field.Float("mastery_probability"),
		field.String("zone").
			NotEmpty().
			Comment("ZPD zone at decision time"),
		field.String("behavioral_indicator").
			Comment("none, frustration, or boredom"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id"),
	}
}
