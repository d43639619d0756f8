// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rsinha/adaptiq/ent/decisionevent"
)

// DecisionEvent is the model entity for the DecisionEvent schema.
type DecisionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// PreviousLevel holds the value of the "previous_level" field.
	PreviousLevel int `json:"previous_level,omitempty"`
	// NewLevel holds the value of the "new_level" field.
	NewLevel int `json:"new_level,omitempty"`
	// Decision reason tag (increase_performance, ...)
	Reason string `json:"reason,omitempty"`
	// MasteryAchieved holds the value of the "mastery_achieved" field.
	MasteryAchieved bool `json:"mastery_achieved,omitempty"`
	// MasteryProbability holds the value of the "mastery_probability" field.
	MasteryProbability float64 `json:"mastery_probability,omitempty"`
	// ZPD zone at decision time
	Zone string `json:"zone,omitempty"`
	// none, frustration, or boredom
	BehavioralIndicator string `json:"behavioral_indicator,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldMasteryAchieved:
			values[i] = new(sql.NullBool)
		case decisionevent.FieldMasteryProbability:
			values[i] = new(sql.NullFloat64)
		case decisionevent.FieldID, decisionevent.FieldSequence, decisionevent.FieldPreviousLevel, decisionevent.FieldNewLevel:
			values[i] = new(sql.NullInt64)
		case decisionevent.FieldLearnerID, decisionevent.FieldConceptID, decisionevent.FieldDomain, decisionevent.FieldReason, decisionevent.FieldZone, decisionevent.FieldBehavioralIndicator:
			values[i] = new(sql.NullString)
		case decisionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionEvent fields.
func (_m *DecisionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case decisionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case decisionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case decisionevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case decisionevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case decisionevent.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case decisionevent.FieldPreviousLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_level", values[i])
			} else if value.Valid {
				_m.PreviousLevel = int(value.Int64)
			}
		case decisionevent.FieldNewLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_level", values[i])
			} else if value.Valid {
				_m.NewLevel = int(value.Int64)
			}
		case decisionevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case decisionevent.FieldMasteryAchieved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_achieved", values[i])
			} else if value.Valid {
				_m.MasteryAchieved = value.Bool
			}
		case decisionevent.FieldMasteryProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_probability", values[i])
			} else if value.Valid {
				_m.MasteryProbability = value.Float64
			}
		case decisionevent.FieldZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone", values[i])
			} else if value.Valid {
				_m.Zone = value.String
			}
		case decisionevent.FieldBehavioralIndicator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field behavioral_indicator", values[i])
			} else if value.Valid {
				_m.BehavioralIndicator = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DecisionEvent.
// Note that you need to call DecisionEvent.Unwrap() before calling this method if this DecisionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionEvent) Update() *DecisionEventUpdateOne {
	return NewDecisionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionEvent) Unwrap() *DecisionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("previous_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousLevel))
	builder.WriteString(", ")
	builder.WriteString("new_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewLevel))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("mastery_achieved=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryAchieved))
	builder.WriteString(", ")
	builder.WriteString("mastery_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryProbability))
	builder.WriteString(", ")
	builder.WriteString("zone=")
	builder.WriteString(_m.Zone)
	builder.WriteString(", ")
	builder.WriteString("behavioral_indicator=")
	builder.WriteString(_m.BehavioralIndicator)
	builder.WriteByte(')')
	return builder.String()
}

// DecisionEvents is a parsable slice of DecisionEvent.
type DecisionEvents []*DecisionEvent
