package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single processed answer with the model inputs
// that accompanied it.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner who answered"),
		field.String("concept_id").
			NotEmpty().
			Comment("Concept the question assessed"),
		field.String("question_id").
			NotEmpty().
			Comment("Item that was asked"),
		field.String("domain").
			NotEmpty().
			Comment("Domain the concept belongs to (general, stem, ...)"),
		field.String("question_type").
			NotEmpty().
			Comment("Question category (definition, scenario, ...)"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("response_time_ms").
			NonNegative().
			Comment("Milliseconds to answer"),
		field.Int("expected_time_ms").
			Positive().
			Comment("Expected milliseconds at this difficulty"),
		field.Int("hints_used").
			NonNegative(),
		field.Int("attempt_number").
			Min(1).
			Comment("1 for the first try at this question"),
		field.Int("difficulty_level").
			Range(1, 6).
			Comment("Difficulty ladder rung at answer time"),
		field.Float("theta").
			Comment("Ability estimate at answer time, kept for item calibration"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
