// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "expected_time_ms", Type: field.TypeInt},
		{Name: "hints_used", Type: field.TypeInt},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "difficulty_level", Type: field.TypeInt},
		{Name: "theta", Type: field.TypeFloat64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_learner_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// BehaviorEventsColumns holds the columns for the "behavior_events" table.
	BehaviorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"answer", "hint_request", "abandon", "rapid_attempt", "timeout"}},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "expected_time_ms", Type: field.TypeInt},
		{Name: "hints_used", Type: field.TypeInt},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool, Nullable: true},
	}
	// BehaviorEventsTable holds the schema information for the "behavior_events" table.
	BehaviorEventsTable = &schema.Table{
		Name:       "behavior_events",
		Columns:    BehaviorEventsColumns,
		PrimaryKey: []*schema.Column{BehaviorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "behaviorevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[1]},
			},
			{
				Name:    "behaviorevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[2]},
			},
			{
				Name:    "behaviorevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[3]},
			},
			{
				Name:    "behaviorevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{BehaviorEventsColumns[5]},
			},
		},
	}
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "previous_level", Type: field.TypeInt},
		{Name: "new_level", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "mastery_achieved", Type: field.TypeBool},
		{Name: "mastery_probability", Type: field.TypeFloat64},
		{Name: "zone", Type: field.TypeString},
		{Name: "behavioral_indicator", Type: field.TypeString},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_learner_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[3], DecisionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		BehaviorEventsTable,
		DecisionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
