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

// ScanRequest is the model entity for the ScanRequest schema.
type ScanRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Target company name
	CompanyName string `json:"company_name,omitempty"`
	// Target company website URL
	Website string `json:"website,omitempty"`
	// Free-form investor profile supplied at intake
	InvestorProfile *string `json:"investor_profile,omitempty"`
	// AnalysisDepth holds the value of the "analysis_depth" field.
	AnalysisDepth scanrequest.AnalysisDepth `json:"analysis_depth,omitempty"`
	// Investment thesis snapshot (statement, weighted pillars); immutable after scan start
	Thesis map[string]interface{} `json:"thesis,omitempty"`
	// Status holds the value of the "status" field.
	Status scanrequest.Status `json:"status,omitempty"`
	// Human-readable reason for the current status
	StatusMessage *string `json:"status_message,omitempty"`
	// Set once report generation succeeds
	ReportID *string `json:"report_id,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage *string `json:"current_stage,omitempty"`
	// CompletedStages holds the value of the "completed_stages" field.
	CompletedStages int `json:"completed_stages,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the orchestrate worker claimed the scan
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Hard scan deadline; the orchestrator fails the scan past this point
	DeadlineAt *time.Time `json:"deadline_at,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScanRequestQuery when eager-loading is set.
	Edges        ScanRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScanRequestEdges holds the relations/edges for other nodes in the graph.
type ScanRequestEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*CollectorJob `json:"jobs,omitempty"`
	// EvidenceCollection holds the value of the evidence_collection edge.
	EvidenceCollection *EvidenceCollection `json:"evidence_collection,omitempty"`
	// Evidence holds the value of the evidence edge.
	Evidence []*Evidence `json:"evidence,omitempty"`
	// StageResults holds the value of the stage_results edge.
	StageResults []*StageResult `json:"stage_results,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*Report `json:"reports,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ScanRequestEdges) JobsOrErr() ([]*CollectorJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// EvidenceCollectionOrErr returns the EvidenceCollection value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScanRequestEdges) EvidenceCollectionOrErr() (*EvidenceCollection, error) {
	if e.EvidenceCollection != nil {
		return e.EvidenceCollection, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: evidencecollection.Label}
	}
	return nil, &NotLoadedError{edge: "evidence_collection"}
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e ScanRequestEdges) EvidenceOrErr() ([]*Evidence, error) {
	if e.loadedTypes[2] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// StageResultsOrErr returns the StageResults value or an error if the edge
// was not loaded in eager-loading.
func (e ScanRequestEdges) StageResultsOrErr() ([]*StageResult, error) {
	if e.loadedTypes[3] {
		return e.StageResults, nil
	}
	return nil, &NotLoadedError{edge: "stage_results"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e ScanRequestEdges) ReportsOrErr() ([]*Report, error) {
	if e.loadedTypes[4] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ScanRequestEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[5] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScanRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scanrequest.FieldThesis:
			values[i] = new([]byte)
		case scanrequest.FieldCompletedStages:
			values[i] = new(sql.NullInt64)
		case scanrequest.FieldID, scanrequest.FieldCompanyName, scanrequest.FieldWebsite, scanrequest.FieldInvestorProfile, scanrequest.FieldAnalysisDepth, scanrequest.FieldStatus, scanrequest.FieldStatusMessage, scanrequest.FieldReportID, scanrequest.FieldCurrentStage, scanrequest.FieldPodID:
			values[i] = new(sql.NullString)
		case scanrequest.FieldCreatedAt, scanrequest.FieldStartedAt, scanrequest.FieldCompletedAt, scanrequest.FieldDeadlineAt, scanrequest.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScanRequest fields.
func (_m *ScanRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scanrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scanrequest.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case scanrequest.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case scanrequest.FieldInvestorProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investor_profile", values[i])
			} else if value.Valid {
				_m.InvestorProfile = new(string)
				*_m.InvestorProfile = value.String
			}
		case scanrequest.FieldAnalysisDepth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_depth", values[i])
			} else if value.Valid {
				_m.AnalysisDepth = scanrequest.AnalysisDepth(value.String)
			}
		case scanrequest.FieldThesis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field thesis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Thesis); err != nil {
					return fmt.Errorf("unmarshal field thesis: %w", err)
				}
			}
		case scanrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scanrequest.Status(value.String)
			}
		case scanrequest.FieldStatusMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_message", values[i])
			} else if value.Valid {
				_m.StatusMessage = new(string)
				*_m.StatusMessage = value.String
			}
		case scanrequest.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = new(string)
				*_m.ReportID = value.String
			}
		case scanrequest.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(string)
				*_m.CurrentStage = value.String
			}
		case scanrequest.FieldCompletedStages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_stages", values[i])
			} else if value.Valid {
				_m.CompletedStages = int(value.Int64)
			}
		case scanrequest.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case scanrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scanrequest.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case scanrequest.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case scanrequest.FieldDeadlineAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_at", values[i])
			} else if value.Valid {
				_m.DeadlineAt = new(time.Time)
				*_m.DeadlineAt = value.Time
			}
		case scanrequest.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScanRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ScanRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the ScanRequest entity.
func (_m *ScanRequest) QueryJobs() *CollectorJobQuery {
	return NewScanRequestClient(_m.config).QueryJobs(_m)
}

// QueryEvidenceCollection queries the "evidence_collection" edge of the ScanRequest entity.
func (_m *ScanRequest) QueryEvidenceCollection() *EvidenceCollectionQuery {
	return NewScanRequestClient(_m.config).QueryEvidenceCollection(_m)
}

// QueryEvidence queries the "evidence" edge of the ScanRequest entity.
func (_m *ScanRequest) QueryEvidence() *EvidenceQuery {
	return NewScanRequestClient(_m.config).QueryEvidence(_m)
}

// QueryStageResults queries the "stage_results" edge of the ScanRequest entity.
func (_m *ScanRequest) QueryStageResults() *StageResultQuery {
	return NewScanRequestClient(_m.config).QueryStageResults(_m)
}

// QueryReports queries the "reports" edge of the ScanRequest entity.
func (_m *ScanRequest) QueryReports() *ReportQuery {
	return NewScanRequestClient(_m.config).QueryReports(_m)
}

// QueryEvents queries the "events" edge of the ScanRequest entity.
func (_m *ScanRequest) QueryEvents() *EventQuery {
	return NewScanRequestClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this ScanRequest.
// Note that you need to call ScanRequest.Unwrap() before calling this method if this ScanRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScanRequest) Update() *ScanRequestUpdateOne {
	return NewScanRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScanRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScanRequest) Unwrap() *ScanRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScanRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScanRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ScanRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	if v := _m.InvestorProfile; v != nil {
		builder.WriteString("investor_profile=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("analysis_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisDepth))
	builder.WriteString(", ")
	builder.WriteString("thesis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Thesis))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StatusMessage; v != nil {
		builder.WriteString("status_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReportID; v != nil {
		builder.WriteString("report_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("completed_stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedStages))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeadlineAt; v != nil {
		builder.WriteString("deadline_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScanRequests is a parsable slice of ScanRequest.
type ScanRequests []*ScanRequest
