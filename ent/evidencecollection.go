// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/scanrequest"
)

// EvidenceCollection is the model entity for the EvidenceCollection schema.
type EvidenceCollection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ScanID holds the value of the "scan_id" field.
	ScanID string `json:"scan_id,omitempty"`
	// 'partial' when a flush batch was lost after retries
	Status evidencecollection.Status `json:"status,omitempty"`
	// EvidenceCount holds the value of the "evidence_count" field.
	EvidenceCount int `json:"evidence_count,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ClosedAt holds the value of the "closed_at" field.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvidenceCollectionQuery when eager-loading is set.
	Edges        EvidenceCollectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvidenceCollectionEdges holds the relations/edges for other nodes in the graph.
type EvidenceCollectionEdges struct {
	// Scan holds the value of the scan edge.
	Scan *ScanRequest `json:"scan,omitempty"`
	// Items holds the value of the items edge.
	Items []*Evidence `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ScanOrErr returns the Scan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvidenceCollectionEdges) ScanOrErr() (*ScanRequest, error) {
	if e.Scan != nil {
		return e.Scan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scanrequest.Label}
	}
	return nil, &NotLoadedError{edge: "scan"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e EvidenceCollectionEdges) ItemsOrErr() ([]*Evidence, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvidenceCollection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidencecollection.FieldMetadata:
			values[i] = new([]byte)
		case evidencecollection.FieldEvidenceCount:
			values[i] = new(sql.NullInt64)
		case evidencecollection.FieldID, evidencecollection.FieldScanID, evidencecollection.FieldStatus:
			values[i] = new(sql.NullString)
		case evidencecollection.FieldCreatedAt, evidencecollection.FieldClosedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvidenceCollection fields.
func (_m *EvidenceCollection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidencecollection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidencecollection.FieldScanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_id", values[i])
			} else if value.Valid {
				_m.ScanID = value.String
			}
		case evidencecollection.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = evidencecollection.Status(value.String)
			}
		case evidencecollection.FieldEvidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_count", values[i])
			} else if value.Valid {
				_m.EvidenceCount = int(value.Int64)
			}
		case evidencecollection.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case evidencecollection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evidencecollection.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvidenceCollection.
// This includes values selected through modifiers, order, etc.
func (_m *EvidenceCollection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScan queries the "scan" edge of the EvidenceCollection entity.
func (_m *EvidenceCollection) QueryScan() *ScanRequestQuery {
	return NewEvidenceCollectionClient(_m.config).QueryScan(_m)
}

// QueryItems queries the "items" edge of the EvidenceCollection entity.
func (_m *EvidenceCollection) QueryItems() *EvidenceQuery {
	return NewEvidenceCollectionClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this EvidenceCollection.
// Note that you need to call EvidenceCollection.Unwrap() before calling this method if this EvidenceCollection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvidenceCollection) Update() *EvidenceCollectionUpdateOne {
	return NewEvidenceCollectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvidenceCollection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvidenceCollection) Unwrap() *EvidenceCollection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvidenceCollection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvidenceCollection) String() string {
	var builder strings.Builder
	builder.WriteString("EvidenceCollection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scan_id=")
	builder.WriteString(_m.ScanID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("evidence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceCount))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// EvidenceCollections is a parsable slice of EvidenceCollection.
type EvidenceCollections []*EvidenceCollection
