// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
)

// ReportSection is the model entity for the ReportSection schema.
type ReportSection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// Thesis pillar this section answers
	PillarID string `json:"pillar_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Markdown, with citation links injected
	Content string `json:"content,omitempty"`
	// [0,100], analyzer's confidence-weighted aggregate
	Score float64 `json:"score,omitempty"`
	// Findings: claim, supporting evidence ids, confidence
	KeyFindings []map[string]interface{} `json:"key_findings,omitempty"`
	// Risks holds the value of the "risks" field.
	Risks []string `json:"risks,omitempty"`
	// Opportunities holds the value of the "opportunities" field.
	Opportunities []string `json:"opportunities,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// Placeholder section emitted after analyzer failure
	Degraded bool `json:"degraded,omitempty"`
	// Render order within the report
	OrderIndex int `json:"order_index,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportSectionQuery when eager-loading is set.
	Edges        ReportSectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportSectionEdges holds the relations/edges for other nodes in the graph.
type ReportSectionEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Citations holds the value of the citations edge.
	Citations []*Citation `json:"citations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportSectionEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// CitationsOrErr returns the Citations value or an error if the edge
// was not loaded in eager-loading.
func (e ReportSectionEdges) CitationsOrErr() ([]*Citation, error) {
	if e.loadedTypes[1] {
		return e.Citations, nil
	}
	return nil, &NotLoadedError{edge: "citations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportSection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportsection.FieldKeyFindings, reportsection.FieldRisks, reportsection.FieldOpportunities, reportsection.FieldRecommendations:
			values[i] = new([]byte)
		case reportsection.FieldDegraded:
			values[i] = new(sql.NullBool)
		case reportsection.FieldScore:
			values[i] = new(sql.NullFloat64)
		case reportsection.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case reportsection.FieldID, reportsection.FieldReportID, reportsection.FieldPillarID, reportsection.FieldTitle, reportsection.FieldContent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportSection fields.
func (_m *ReportSection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportsection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reportsection.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case reportsection.FieldPillarID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pillar_id", values[i])
			} else if value.Valid {
				_m.PillarID = value.String
			}
		case reportsection.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case reportsection.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case reportsection.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case reportsection.FieldKeyFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyFindings); err != nil {
					return fmt.Errorf("unmarshal field key_findings: %w", err)
				}
			}
		case reportsection.FieldRisks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Risks); err != nil {
					return fmt.Errorf("unmarshal field risks: %w", err)
				}
			}
		case reportsection.FieldOpportunities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field opportunities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Opportunities); err != nil {
					return fmt.Errorf("unmarshal field opportunities: %w", err)
				}
			}
		case reportsection.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case reportsection.FieldDegraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field degraded", values[i])
			} else if value.Valid {
				_m.Degraded = value.Bool
			}
		case reportsection.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportSection.
// This includes values selected through modifiers, order, etc.
func (_m *ReportSection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ReportSection entity.
func (_m *ReportSection) QueryReport() *ReportQuery {
	return NewReportSectionClient(_m.config).QueryReport(_m)
}

// QueryCitations queries the "citations" edge of the ReportSection entity.
func (_m *ReportSection) QueryCitations() *CitationQuery {
	return NewReportSectionClient(_m.config).QueryCitations(_m)
}

// Update returns a builder for updating this ReportSection.
// Note that you need to call ReportSection.Unwrap() before calling this method if this ReportSection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportSection) Update() *ReportSectionUpdateOne {
	return NewReportSectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportSection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportSection) Unwrap() *ReportSection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportSection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportSection) String() string {
	var builder strings.Builder
	builder.WriteString("ReportSection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("pillar_id=")
	builder.WriteString(_m.PillarID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("key_findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyFindings))
	builder.WriteString(", ")
	builder.WriteString("risks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Risks))
	builder.WriteString(", ")
	builder.WriteString("opportunities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Opportunities))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("degraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Degraded))
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteByte(')')
	return builder.String()
}

// ReportSections is a parsable slice of ReportSection.
type ReportSections []*ReportSection
