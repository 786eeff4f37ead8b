// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/scanrequest"
)

// CollectorJob is the model entity for the CollectorJob schema.
type CollectorJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ScanID holds the value of the "scan_id" field.
	ScanID string `json:"scan_id,omitempty"`
	// Named queue / job kind (e.g. 'web-scrape', 'tls-scan', 'orchestrate')
	Queue string `json:"queue,omitempty"`
	// Target collector; empty for orchestrate/synthesize jobs
	CollectorName string `json:"collector_name,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// 0-9, higher first; FIFO tie-break by enqueue time
	Priority int `json:"priority,omitempty"`
	// Delivery attempts so far
	Attempt int `json:"attempt,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// Status holds the value of the "status" field.
	Status collectorjob.Status `json:"status,omitempty"`
	// Advisory only; duplicates are absorbed by evidence fingerprinting
	DedupKey *string `json:"dedup_key,omitempty"`
	// Earliest claim time; pushed forward by retry backoff
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	// While running, the claim expires past this point and the job is re-enqueued
	VisibilityDeadline *time.Time `json:"visibility_deadline,omitempty"`
	// worker id that holds the claim
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CollectorJobQuery when eager-loading is set.
	Edges        CollectorJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CollectorJobEdges holds the relations/edges for other nodes in the graph.
type CollectorJobEdges struct {
	// Scan holds the value of the scan edge.
	Scan *ScanRequest `json:"scan,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ScanOrErr returns the Scan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CollectorJobEdges) ScanOrErr() (*ScanRequest, error) {
	if e.Scan != nil {
		return e.Scan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scanrequest.Label}
	}
	return nil, &NotLoadedError{edge: "scan"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollectorJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collectorjob.FieldPayload:
			values[i] = new([]byte)
		case collectorjob.FieldPriority, collectorjob.FieldAttempt, collectorjob.FieldMaxAttempts:
			values[i] = new(sql.NullInt64)
		case collectorjob.FieldID, collectorjob.FieldScanID, collectorjob.FieldQueue, collectorjob.FieldCollectorName, collectorjob.FieldStatus, collectorjob.FieldDedupKey, collectorjob.FieldClaimedBy, collectorjob.FieldLastError:
			values[i] = new(sql.NullString)
		case collectorjob.FieldScheduledAt, collectorjob.FieldVisibilityDeadline, collectorjob.FieldCreatedAt, collectorjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollectorJob fields.
func (_m *CollectorJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collectorjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case collectorjob.FieldScanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_id", values[i])
			} else if value.Valid {
				_m.ScanID = value.String
			}
		case collectorjob.FieldQueue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue", values[i])
			} else if value.Valid {
				_m.Queue = value.String
			}
		case collectorjob.FieldCollectorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collector_name", values[i])
			} else if value.Valid {
				_m.CollectorName = value.String
			}
		case collectorjob.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case collectorjob.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case collectorjob.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case collectorjob.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case collectorjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = collectorjob.Status(value.String)
			}
		case collectorjob.FieldDedupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_key", values[i])
			} else if value.Valid {
				_m.DedupKey = new(string)
				*_m.DedupKey = value.String
			}
		case collectorjob.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = value.Time
			}
		case collectorjob.FieldVisibilityDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visibility_deadline", values[i])
			} else if value.Valid {
				_m.VisibilityDeadline = new(time.Time)
				*_m.VisibilityDeadline = value.Time
			}
		case collectorjob.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case collectorjob.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case collectorjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case collectorjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollectorJob.
// This includes values selected through modifiers, order, etc.
func (_m *CollectorJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScan queries the "scan" edge of the CollectorJob entity.
func (_m *CollectorJob) QueryScan() *ScanRequestQuery {
	return NewCollectorJobClient(_m.config).QueryScan(_m)
}

// Update returns a builder for updating this CollectorJob.
// Note that you need to call CollectorJob.Unwrap() before calling this method if this CollectorJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CollectorJob) Update() *CollectorJobUpdateOne {
	return NewCollectorJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CollectorJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CollectorJob) Unwrap() *CollectorJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CollectorJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CollectorJob) String() string {
	var builder strings.Builder
	builder.WriteString("CollectorJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scan_id=")
	builder.WriteString(_m.ScanID)
	builder.WriteString(", ")
	builder.WriteString("queue=")
	builder.WriteString(_m.Queue)
	builder.WriteString(", ")
	builder.WriteString("collector_name=")
	builder.WriteString(_m.CollectorName)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DedupKey; v != nil {
		builder.WriteString("dedup_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scheduled_at=")
	builder.WriteString(_m.ScheduledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.VisibilityDeadline; v != nil {
		builder.WriteString("visibility_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CollectorJobs is a parsable slice of CollectorJob.
type CollectorJobs []*CollectorJob
