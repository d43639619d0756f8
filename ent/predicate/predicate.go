// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// BehaviorEvent is the predicate function for behaviorevent builders.
type BehaviorEvent func(*sql.Selector)

// DecisionEvent is the predicate function for decisionevent builders.
type DecisionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
