// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
)

// Citation is the model entity for the Citation schema.
type Citation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID string `json:"section_id,omitempty"`
	// Monotonic per report
	CitationNumber int `json:"citation_number,omitempty"`
	// Claim holds the value of the "claim" field.
	Claim string `json:"claim,omitempty"`
	// EvidenceID holds the value of the "evidence_id" field.
	EvidenceID string `json:"evidence_id,omitempty"`
	// Supporting excerpt from the evidence summary
	Quote string `json:"quote,omitempty"`
	// Anchor sentence the citation was attached to
	Context string `json:"context,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// No in-text anchor found; citation attached to the section footer
	WeakAnchor bool `json:"weak_anchor,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CitationQuery when eager-loading is set.
	Edges        CitationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CitationEdges holds the relations/edges for other nodes in the graph.
type CitationEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Section holds the value of the section edge.
	Section *ReportSection `json:"section,omitempty"`
	// Evidence holds the value of the evidence edge.
	Evidence *Evidence `json:"evidence,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CitationEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// SectionOrErr returns the Section value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CitationEdges) SectionOrErr() (*ReportSection, error) {
	if e.Section != nil {
		return e.Section, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: reportsection.Label}
	}
	return nil, &NotLoadedError{edge: "section"}
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CitationEdges) EvidenceOrErr() (*Evidence, error) {
	if e.Evidence != nil {
		return e.Evidence, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: evidence.Label}
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Citation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case citation.FieldWeakAnchor:
			values[i] = new(sql.NullBool)
		case citation.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case citation.FieldCitationNumber:
			values[i] = new(sql.NullInt64)
		case citation.FieldID, citation.FieldReportID, citation.FieldSectionID, citation.FieldClaim, citation.FieldEvidenceID, citation.FieldQuote, citation.FieldContext:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Citation fields.
func (_m *Citation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case citation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case citation.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case citation.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				_m.SectionID = value.String
			}
		case citation.FieldCitationNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field citation_number", values[i])
			} else if value.Valid {
				_m.CitationNumber = int(value.Int64)
			}
		case citation.FieldClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim", values[i])
			} else if value.Valid {
				_m.Claim = value.String
			}
		case citation.FieldEvidenceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_id", values[i])
			} else if value.Valid {
				_m.EvidenceID = value.String
			}
		case citation.FieldQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quote", values[i])
			} else if value.Valid {
				_m.Quote = value.String
			}
		case citation.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case citation.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case citation.FieldWeakAnchor:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field weak_anchor", values[i])
			} else if value.Valid {
				_m.WeakAnchor = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Citation.
// This includes values selected through modifiers, order, etc.
func (_m *Citation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the Citation entity.
func (_m *Citation) QueryReport() *ReportQuery {
	return NewCitationClient(_m.config).QueryReport(_m)
}

// QuerySection queries the "section" edge of the Citation entity.
func (_m *Citation) QuerySection() *ReportSectionQuery {
	return NewCitationClient(_m.config).QuerySection(_m)
}

// QueryEvidence queries the "evidence" edge of the Citation entity.
func (_m *Citation) QueryEvidence() *EvidenceQuery {
	return NewCitationClient(_m.config).QueryEvidence(_m)
}

// Update returns a builder for updating this Citation.
// Note that you need to call Citation.Unwrap() before calling this method if this Citation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Citation) Update() *CitationUpdateOne {
	return NewCitationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Citation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Citation) Unwrap() *Citation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Citation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Citation) String() string {
	var builder strings.Builder
	builder.WriteString("Citation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("section_id=")
	builder.WriteString(_m.SectionID)
	builder.WriteString(", ")
	builder.WriteString("citation_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.CitationNumber))
	builder.WriteString(", ")
	builder.WriteString("claim=")
	builder.WriteString(_m.Claim)
	builder.WriteString(", ")
	builder.WriteString("evidence_id=")
	builder.WriteString(_m.EvidenceID)
	builder.WriteString(", ")
	builder.WriteString("quote=")
	builder.WriteString(_m.Quote)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("weak_anchor=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakAnchor))
	builder.WriteByte(')')
	return builder.String()
}

// Citations is a parsable slice of Citation.
type Citations []*Citation
