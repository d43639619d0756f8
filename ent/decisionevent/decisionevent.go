// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the decisionevent type in the database.
	Label = "decision_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldPreviousLevel holds the string denoting the previous_level field in the database.
	FieldPreviousLevel = "previous_level"
	// FieldNewLevel holds the string denoting the new_level field in the database.
	FieldNewLevel = "new_level"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldMasteryAchieved holds the string denoting the mastery_achieved field in the database.
	FieldMasteryAchieved = "mastery_achieved"
	// FieldMasteryProbability holds the string denoting the mastery_probability field in the database.
	FieldMasteryProbability = "mastery_probability"
	// FieldZone holds the string denoting the zone field in the database.
	FieldZone = "zone"
	// FieldBehavioralIndicator holds the string denoting the behavioral_indicator field in the database.
	FieldBehavioralIndicator = "behavioral_indicator"
	// Table holds the table name of the decisionevent in the database.
	Table = "decision_events"
)

// Columns holds all SQL columns for decisionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerID,
	FieldConceptID,
	FieldDomain,
	FieldPreviousLevel,
	FieldNewLevel,
	FieldReason,
	FieldMasteryAchieved,
	FieldMasteryProbability,
	FieldZone,
	FieldBehavioralIndicator,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// PreviousLevelValidator is a validator for the "previous_level" field. It is called by the builders before save.
	PreviousLevelValidator func(int) error
	// NewLevelValidator is a validator for the "new_level" field. It is called by the builders before save.
	NewLevelValidator func(int) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// ZoneValidator is a validator for the "zone" field. It is called by the builders before save.
	ZoneValidator func(string) error
)

// OrderOption defines the ordering options for the DecisionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByPreviousLevel orders the results by the previous_level field.
func ByPreviousLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousLevel, opts...).ToFunc()
}

// ByNewLevel orders the results by the new_level field.
func ByNewLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewLevel, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByMasteryAchieved orders the results by the mastery_achieved field.
func ByMasteryAchieved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryAchieved, opts...).ToFunc()
}

// ByMasteryProbability orders the results by the mastery_probability field.
func ByMasteryProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryProbability, opts...).ToFunc()
}

// ByZone orders the results by the zone field.
func ByZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZone, opts...).ToFunc()
}

// ByBehavioralIndicator orders the results by the behavioral_indicator field.
func ByBehavioralIndicator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehavioralIndicator, opts...).ToFunc()
}
