// Code generated by ent, DO NOT EDIT.

package scanrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scanrequest type in the database.
	Label = "scan_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scan_id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldInvestorProfile holds the string denoting the investor_profile field in the database.
	FieldInvestorProfile = "investor_profile"
	// FieldAnalysisDepth holds the string denoting the analysis_depth field in the database.
	FieldAnalysisDepth = "analysis_depth"
	// FieldThesis holds the string denoting the thesis field in the database.
	FieldThesis = "thesis"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusMessage holds the string denoting the status_message field in the database.
	FieldStatusMessage = "status_message"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldCompletedStages holds the string denoting the completed_stages field in the database.
	FieldCompletedStages = "completed_stages"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeadlineAt holds the string denoting the deadline_at field in the database.
	FieldDeadlineAt = "deadline_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// EdgeEvidenceCollection holds the string denoting the evidence_collection edge name in mutations.
	EdgeEvidenceCollection = "evidence_collection"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// EdgeStageResults holds the string denoting the stage_results edge name in mutations.
	EdgeStageResults = "stage_results"
	// EdgeReports holds the string denoting the reports edge name in mutations.
	EdgeReports = "reports"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// CollectorJobFieldID holds the string denoting the ID field of the CollectorJob.
	CollectorJobFieldID = "job_id"
	// EvidenceCollectionFieldID holds the string denoting the ID field of the EvidenceCollection.
	EvidenceCollectionFieldID = "collection_id"
	// EvidenceFieldID holds the string denoting the ID field of the Evidence.
	EvidenceFieldID = "evidence_id"
	// StageResultFieldID holds the string denoting the ID field of the StageResult.
	StageResultFieldID = "stage_result_id"
	// ReportFieldID holds the string denoting the ID field of the Report.
	ReportFieldID = "report_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the scanrequest in the database.
	Table = "scan_requests"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "collector_jobs"
	// JobsInverseTable is the table name for the CollectorJob entity.
	// It exists in this package in order to avoid circular dependency with the "collectorjob" package.
	JobsInverseTable = "collector_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "scan_id"
	// EvidenceCollectionTable is the table that holds the evidence_collection relation/edge.
	EvidenceCollectionTable = "evidence_collections"
	// EvidenceCollectionInverseTable is the table name for the EvidenceCollection entity.
	// It exists in this package in order to avoid circular dependency with the "evidencecollection" package.
	EvidenceCollectionInverseTable = "evidence_collections"
	// EvidenceCollectionColumn is the table column denoting the evidence_collection relation/edge.
	EvidenceCollectionColumn = "scan_id"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "evidence"
	// EvidenceInverseTable is the table name for the Evidence entity.
	// It exists in this package in order to avoid circular dependency with the "evidence" package.
	EvidenceInverseTable = "evidence"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "scan_id"
	// StageResultsTable is the table that holds the stage_results relation/edge.
	StageResultsTable = "stage_results"
	// StageResultsInverseTable is the table name for the StageResult entity.
	// It exists in this package in order to avoid circular dependency with the "stageresult" package.
	StageResultsInverseTable = "stage_results"
	// StageResultsColumn is the table column denoting the stage_results relation/edge.
	StageResultsColumn = "scan_id"
	// ReportsTable is the table that holds the reports relation/edge.
	ReportsTable = "reports"
	// ReportsInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportsInverseTable = "reports"
	// ReportsColumn is the table column denoting the reports relation/edge.
	ReportsColumn = "scan_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "scan_id"
)

// Columns holds all SQL columns for scanrequest fields.
var Columns = []string{
	FieldID,
	FieldCompanyName,
	FieldWebsite,
	FieldInvestorProfile,
	FieldAnalysisDepth,
	FieldThesis,
	FieldStatus,
	FieldStatusMessage,
	FieldReportID,
	FieldCurrentStage,
	FieldCompletedStages,
	FieldPodID,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeadlineAt,
	FieldLastHeartbeatAt,
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
	// DefaultCompletedStages holds the default value on creation for the "completed_stages" field.
	DefaultCompletedStages int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AnalysisDepth defines the type for the "analysis_depth" enum field.
type AnalysisDepth string

// AnalysisDepthDeep is the default value of the AnalysisDepth enum.
const DefaultAnalysisDepth = AnalysisDepthDeep

// AnalysisDepth values.
const (
	AnalysisDepthShallow    AnalysisDepth = "shallow"
	AnalysisDepthDeep       AnalysisDepth = "deep"
	AnalysisDepthExhaustive AnalysisDepth = "exhaustive"
)

func (ad AnalysisDepth) String() string {
	return string(ad)
}

// AnalysisDepthValidator is a validator for the "analysis_depth" field enum values. It is called by the builders before save.
func AnalysisDepthValidator(ad AnalysisDepth) error {
	switch ad {
	case AnalysisDepthShallow, AnalysisDepthDeep, AnalysisDepthExhaustive:
		return nil
	default:
		return fmt.Errorf("scanrequest: invalid enum value for analysis_depth field: %q", ad)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending             Status = "pending"
	StatusInProgress          Status = "in_progress"
	StatusCancelling          Status = "cancelling"
	StatusAwaitingReview      Status = "awaiting_review"
	StatusCompletedWithErrors Status = "completed_with_errors"
	StatusFailed              Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCancelling, StatusAwaitingReview, StatusCompletedWithErrors, StatusFailed:
		return nil
	default:
		return fmt.Errorf("scanrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScanRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByInvestorProfile orders the results by the investor_profile field.
func ByInvestorProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestorProfile, opts...).ToFunc()
}

// ByAnalysisDepth orders the results by the analysis_depth field.
func ByAnalysisDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisDepth, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusMessage orders the results by the status_message field.
func ByStatusMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusMessage, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByCompletedStages orders the results by the completed_stages field.
func ByCompletedStages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedStages, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeadlineAt orders the results by the deadline_at field.
func ByDeadlineAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvidenceCollectionField orders the results by evidence_collection field.
func ByEvidenceCollectionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceCollectionStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStageResultsCount orders the results by stage_results count.
func ByStageResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageResultsStep(), opts...)
	}
}

// ByStageResults orders the results by stage_results terms.
func ByStageResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReportsCount orders the results by reports count.
func ByReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReportsStep(), opts...)
	}
}

// ByReports orders the results by reports terms.
func ByReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, CollectorJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
func newEvidenceCollectionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceCollectionInverseTable, EvidenceCollectionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EvidenceCollectionTable, EvidenceCollectionColumn),
	)
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, EvidenceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
	)
}
func newStageResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageResultsInverseTable, StageResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageResultsTable, StageResultsColumn),
	)
}
func newReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportsInverseTable, ReportFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
