// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/event"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/predicate"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/stageresult"
)

// ScanRequestUpdate is the builder for updating ScanRequest entities.
type ScanRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ScanRequestMutation
}

// Where appends a list predicates to the ScanRequestUpdate builder.
func (_u *ScanRequestUpdate) Where(ps ...predicate.ScanRequest) *ScanRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *ScanRequestUpdate) SetCompanyName(v string) *ScanRequestUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableCompanyName(v *string) *ScanRequestUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ScanRequestUpdate) SetWebsite(v string) *ScanRequestUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableWebsite(v *string) *ScanRequestUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// SetInvestorProfile sets the "investor_profile" field.
func (_u *ScanRequestUpdate) SetInvestorProfile(v string) *ScanRequestUpdate {
	_u.mutation.SetInvestorProfile(v)
	return _u
}

// SetNillableInvestorProfile sets the "investor_profile" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableInvestorProfile(v *string) *ScanRequestUpdate {
	if v != nil {
		_u.SetInvestorProfile(*v)
	}
	return _u
}

// ClearInvestorProfile clears the value of the "investor_profile" field.
func (_u *ScanRequestUpdate) ClearInvestorProfile() *ScanRequestUpdate {
	_u.mutation.ClearInvestorProfile()
	return _u
}

// SetAnalysisDepth sets the "analysis_depth" field.
func (_u *ScanRequestUpdate) SetAnalysisDepth(v scanrequest.AnalysisDepth) *ScanRequestUpdate {
	_u.mutation.SetAnalysisDepth(v)
	return _u
}

// SetNillableAnalysisDepth sets the "analysis_depth" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableAnalysisDepth(v *scanrequest.AnalysisDepth) *ScanRequestUpdate {
	if v != nil {
		_u.SetAnalysisDepth(*v)
	}
	return _u
}

// SetThesis sets the "thesis" field.
func (_u *ScanRequestUpdate) SetThesis(v map[string]interface{}) *ScanRequestUpdate {
	_u.mutation.SetThesis(v)
	return _u
}

// ClearThesis clears the value of the "thesis" field.
func (_u *ScanRequestUpdate) ClearThesis() *ScanRequestUpdate {
	_u.mutation.ClearThesis()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanRequestUpdate) SetStatus(v scanrequest.Status) *ScanRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableStatus(v *scanrequest.Status) *ScanRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *ScanRequestUpdate) SetStatusMessage(v string) *ScanRequestUpdate {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableStatusMessage(v *string) *ScanRequestUpdate {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *ScanRequestUpdate) ClearStatusMessage() *ScanRequestUpdate {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ScanRequestUpdate) SetReportID(v string) *ScanRequestUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableReportID(v *string) *ScanRequestUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *ScanRequestUpdate) ClearReportID() *ScanRequestUpdate {
	_u.mutation.ClearReportID()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *ScanRequestUpdate) SetCurrentStage(v string) *ScanRequestUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableCurrentStage(v *string) *ScanRequestUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *ScanRequestUpdate) ClearCurrentStage() *ScanRequestUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetCompletedStages sets the "completed_stages" field.
func (_u *ScanRequestUpdate) SetCompletedStages(v int) *ScanRequestUpdate {
	_u.mutation.ResetCompletedStages()
	_u.mutation.SetCompletedStages(v)
	return _u
}

// SetNillableCompletedStages sets the "completed_stages" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableCompletedStages(v *int) *ScanRequestUpdate {
	if v != nil {
		_u.SetCompletedStages(*v)
	}
	return _u
}

// AddCompletedStages adds value to the "completed_stages" field.
func (_u *ScanRequestUpdate) AddCompletedStages(v int) *ScanRequestUpdate {
	_u.mutation.AddCompletedStages(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ScanRequestUpdate) SetPodID(v string) *ScanRequestUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillablePodID(v *string) *ScanRequestUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ScanRequestUpdate) ClearPodID() *ScanRequestUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanRequestUpdate) SetStartedAt(v time.Time) *ScanRequestUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableStartedAt(v *time.Time) *ScanRequestUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScanRequestUpdate) ClearStartedAt() *ScanRequestUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScanRequestUpdate) SetCompletedAt(v time.Time) *ScanRequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableCompletedAt(v *time.Time) *ScanRequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScanRequestUpdate) ClearCompletedAt() *ScanRequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *ScanRequestUpdate) SetDeadlineAt(v time.Time) *ScanRequestUpdate {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableDeadlineAt(v *time.Time) *ScanRequestUpdate {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *ScanRequestUpdate) ClearDeadlineAt() *ScanRequestUpdate {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ScanRequestUpdate) SetLastHeartbeatAt(v time.Time) *ScanRequestUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableLastHeartbeatAt(v *time.Time) *ScanRequestUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ScanRequestUpdate) ClearLastHeartbeatAt() *ScanRequestUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the CollectorJob entity by IDs.
func (_u *ScanRequestUpdate) AddJobIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the CollectorJob entity.
func (_u *ScanRequestUpdate) AddJobs(v ...*CollectorJob) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// SetEvidenceCollectionID sets the "evidence_collection" edge to the EvidenceCollection entity by ID.
func (_u *ScanRequestUpdate) SetEvidenceCollectionID(id string) *ScanRequestUpdate {
	_u.mutation.SetEvidenceCollectionID(id)
	return _u
}

// SetNillableEvidenceCollectionID sets the "evidence_collection" edge to the EvidenceCollection entity by ID if the given value is not nil.
func (_u *ScanRequestUpdate) SetNillableEvidenceCollectionID(id *string) *ScanRequestUpdate {
	if id != nil {
		_u = _u.SetEvidenceCollectionID(*id)
	}
	return _u
}

// SetEvidenceCollection sets the "evidence_collection" edge to the EvidenceCollection entity.
func (_u *ScanRequestUpdate) SetEvidenceCollection(v *EvidenceCollection) *ScanRequestUpdate {
	return _u.SetEvidenceCollectionID(v.ID)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *ScanRequestUpdate) AddEvidenceIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *ScanRequestUpdate) AddEvidence(v ...*Evidence) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddStageResultIDs adds the "stage_results" edge to the StageResult entity by IDs.
func (_u *ScanRequestUpdate) AddStageResultIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.AddStageResultIDs(ids...)
	return _u
}

// AddStageResults adds the "stage_results" edges to the StageResult entity.
func (_u *ScanRequestUpdate) AddStageResults(v ...*StageResult) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageResultIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_u *ScanRequestUpdate) AddReportIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Report entity.
func (_u *ScanRequestUpdate) AddReports(v ...*Report) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ScanRequestUpdate) AddEventIDs(ids ...int64) *ScanRequestUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ScanRequestUpdate) AddEvents(v ...*Event) *ScanRequestUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ScanRequestMutation object of the builder.
func (_u *ScanRequestUpdate) Mutation() *ScanRequestMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the CollectorJob entity.
func (_u *ScanRequestUpdate) ClearJobs() *ScanRequestUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to CollectorJob entities by IDs.
func (_u *ScanRequestUpdate) RemoveJobIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to CollectorJob entities.
func (_u *ScanRequestUpdate) RemoveJobs(v ...*CollectorJob) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearEvidenceCollection clears the "evidence_collection" edge to the EvidenceCollection entity.
func (_u *ScanRequestUpdate) ClearEvidenceCollection() *ScanRequestUpdate {
	_u.mutation.ClearEvidenceCollection()
	return _u
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *ScanRequestUpdate) ClearEvidence() *ScanRequestUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *ScanRequestUpdate) RemoveEvidenceIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *ScanRequestUpdate) RemoveEvidence(v ...*Evidence) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearStageResults clears all "stage_results" edges to the StageResult entity.
func (_u *ScanRequestUpdate) ClearStageResults() *ScanRequestUpdate {
	_u.mutation.ClearStageResults()
	return _u
}

// RemoveStageResultIDs removes the "stage_results" edge to StageResult entities by IDs.
func (_u *ScanRequestUpdate) RemoveStageResultIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.RemoveStageResultIDs(ids...)
	return _u
}

// RemoveStageResults removes "stage_results" edges to StageResult entities.
func (_u *ScanRequestUpdate) RemoveStageResults(v ...*StageResult) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageResultIDs(ids...)
}

// ClearReports clears all "reports" edges to the Report entity.
func (_u *ScanRequestUpdate) ClearReports() *ScanRequestUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Report entities by IDs.
func (_u *ScanRequestUpdate) RemoveReportIDs(ids ...string) *ScanRequestUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Report entities.
func (_u *ScanRequestUpdate) RemoveReports(v ...*Report) *ScanRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ScanRequestUpdate) ClearEvents() *ScanRequestUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ScanRequestUpdate) RemoveEventIDs(ids ...int64) *ScanRequestUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ScanRequestUpdate) RemoveEvents(v ...*Event) *ScanRequestUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanRequestUpdate) check() error {
	if v, ok := _u.mutation.AnalysisDepth(); ok {
		if err := scanrequest.AnalysisDepthValidator(v); err != nil {
			return &ValidationError{Name: "analysis_depth", err: fmt.Errorf(`ent: validator failed for field "ScanRequest.analysis_depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanrequest.Table, scanrequest.Columns, sqlgraph.NewFieldSpec(scanrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(scanrequest.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(scanrequest.FieldWebsite, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestorProfile(); ok {
		_spec.SetField(scanrequest.FieldInvestorProfile, field.TypeString, value)
	}
	if _u.mutation.InvestorProfileCleared() {
		_spec.ClearField(scanrequest.FieldInvestorProfile, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisDepth(); ok {
		_spec.SetField(scanrequest.FieldAnalysisDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Thesis(); ok {
		_spec.SetField(scanrequest.FieldThesis, field.TypeJSON, value)
	}
	if _u.mutation.ThesisCleared() {
		_spec.ClearField(scanrequest.FieldThesis, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(scanrequest.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(scanrequest.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(scanrequest.FieldReportID, field.TypeString, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(scanrequest.FieldReportID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(scanrequest.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(scanrequest.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedStages(); ok {
		_spec.SetField(scanrequest.FieldCompletedStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedStages(); ok {
		_spec.AddField(scanrequest.FieldCompletedStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(scanrequest.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(scanrequest.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanrequest.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scanrequest.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(scanrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(scanrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(scanrequest.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(scanrequest.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(scanrequest.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(scanrequest.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.JobsTable,
			Columns: []string{scanrequest.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.JobsTable,
			Columns: []string{scanrequest.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.JobsTable,
			Columns: []string{scanrequest.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCollectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   scanrequest.EvidenceCollectionTable,
			Columns: []string{scanrequest.EvidenceCollectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceCollectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   scanrequest.EvidenceCollectionTable,
			Columns: []string{scanrequest.EvidenceCollectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EvidenceTable,
			Columns: []string{scanrequest.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EvidenceTable,
			Columns: []string{scanrequest.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EvidenceTable,
			Columns: []string{scanrequest.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.StageResultsTable,
			Columns: []string{scanrequest.StageResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageResultsIDs(); len(nodes) > 0 && !_u.mutation.StageResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.StageResultsTable,
			Columns: []string{scanrequest.StageResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.StageResultsTable,
			Columns: []string{scanrequest.StageResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.ReportsTable,
			Columns: []string{scanrequest.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.ReportsTable,
			Columns: []string{scanrequest.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.ReportsTable,
			Columns: []string{scanrequest.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EventsTable,
			Columns: []string{scanrequest.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EventsTable,
			Columns: []string{scanrequest.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EventsTable,
			Columns: []string{scanrequest.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanRequestUpdateOne is the builder for updating a single ScanRequest entity.
type ScanRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanRequestMutation
}

// SetCompanyName sets the "company_name" field.
func (_u *ScanRequestUpdateOne) SetCompanyName(v string) *ScanRequestUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableCompanyName(v *string) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ScanRequestUpdateOne) SetWebsite(v string) *ScanRequestUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableWebsite(v *string) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// SetInvestorProfile sets the "investor_profile" field.
func (_u *ScanRequestUpdateOne) SetInvestorProfile(v string) *ScanRequestUpdateOne {
	_u.mutation.SetInvestorProfile(v)
	return _u
}

// SetNillableInvestorProfile sets the "investor_profile" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableInvestorProfile(v *string) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetInvestorProfile(*v)
	}
	return _u
}

// ClearInvestorProfile clears the value of the "investor_profile" field.
func (_u *ScanRequestUpdateOne) ClearInvestorProfile() *ScanRequestUpdateOne {
	_u.mutation.ClearInvestorProfile()
	return _u
}

// SetAnalysisDepth sets the "analysis_depth" field.
func (_u *ScanRequestUpdateOne) SetAnalysisDepth(v scanrequest.AnalysisDepth) *ScanRequestUpdateOne {
	_u.mutation.SetAnalysisDepth(v)
	return _u
}

// SetNillableAnalysisDepth sets the "analysis_depth" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableAnalysisDepth(v *scanrequest.AnalysisDepth) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetAnalysisDepth(*v)
	}
	return _u
}

// SetThesis sets the "thesis" field.
func (_u *ScanRequestUpdateOne) SetThesis(v map[string]interface{}) *ScanRequestUpdateOne {
	_u.mutation.SetThesis(v)
	return _u
}

// ClearThesis clears the value of the "thesis" field.
func (_u *ScanRequestUpdateOne) ClearThesis() *ScanRequestUpdateOne {
	_u.mutation.ClearThesis()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanRequestUpdateOne) SetStatus(v scanrequest.Status) *ScanRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableStatus(v *scanrequest.Status) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *ScanRequestUpdateOne) SetStatusMessage(v string) *ScanRequestUpdateOne {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableStatusMessage(v *string) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *ScanRequestUpdateOne) ClearStatusMessage() *ScanRequestUpdateOne {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ScanRequestUpdateOne) SetReportID(v string) *ScanRequestUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableReportID(v *string) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *ScanRequestUpdateOne) ClearReportID() *ScanRequestUpdateOne {
	_u.mutation.ClearReportID()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *ScanRequestUpdateOne) SetCurrentStage(v string) *ScanRequestUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableCurrentStage(v *string) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *ScanRequestUpdateOne) ClearCurrentStage() *ScanRequestUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetCompletedStages sets the "completed_stages" field.
func (_u *ScanRequestUpdateOne) SetCompletedStages(v int) *ScanRequestUpdateOne {
	_u.mutation.ResetCompletedStages()
	_u.mutation.SetCompletedStages(v)
	return _u
}

// SetNillableCompletedStages sets the "completed_stages" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableCompletedStages(v *int) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetCompletedStages(*v)
	}
	return _u
}

// AddCompletedStages adds value to the "completed_stages" field.
func (_u *ScanRequestUpdateOne) AddCompletedStages(v int) *ScanRequestUpdateOne {
	_u.mutation.AddCompletedStages(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ScanRequestUpdateOne) SetPodID(v string) *ScanRequestUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillablePodID(v *string) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ScanRequestUpdateOne) ClearPodID() *ScanRequestUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanRequestUpdateOne) SetStartedAt(v time.Time) *ScanRequestUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableStartedAt(v *time.Time) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScanRequestUpdateOne) ClearStartedAt() *ScanRequestUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScanRequestUpdateOne) SetCompletedAt(v time.Time) *ScanRequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableCompletedAt(v *time.Time) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScanRequestUpdateOne) ClearCompletedAt() *ScanRequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *ScanRequestUpdateOne) SetDeadlineAt(v time.Time) *ScanRequestUpdateOne {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableDeadlineAt(v *time.Time) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *ScanRequestUpdateOne) ClearDeadlineAt() *ScanRequestUpdateOne {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ScanRequestUpdateOne) SetLastHeartbeatAt(v time.Time) *ScanRequestUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *ScanRequestUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ScanRequestUpdateOne) ClearLastHeartbeatAt() *ScanRequestUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the CollectorJob entity by IDs.
func (_u *ScanRequestUpdateOne) AddJobIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the CollectorJob entity.
func (_u *ScanRequestUpdateOne) AddJobs(v ...*CollectorJob) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// SetEvidenceCollectionID sets the "evidence_collection" edge to the EvidenceCollection entity by ID.
func (_u *ScanRequestUpdateOne) SetEvidenceCollectionID(id string) *ScanRequestUpdateOne {
	_u.mutation.SetEvidenceCollectionID(id)
	return _u
}

// SetNillableEvidenceCollectionID sets the "evidence_collection" edge to the EvidenceCollection entity by ID if the given value is not nil.
func (_u *ScanRequestUpdateOne) SetNillableEvidenceCollectionID(id *string) *ScanRequestUpdateOne {
	if id != nil {
		_u = _u.SetEvidenceCollectionID(*id)
	}
	return _u
}

// SetEvidenceCollection sets the "evidence_collection" edge to the EvidenceCollection entity.
func (_u *ScanRequestUpdateOne) SetEvidenceCollection(v *EvidenceCollection) *ScanRequestUpdateOne {
	return _u.SetEvidenceCollectionID(v.ID)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *ScanRequestUpdateOne) AddEvidenceIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *ScanRequestUpdateOne) AddEvidence(v ...*Evidence) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddStageResultIDs adds the "stage_results" edge to the StageResult entity by IDs.
func (_u *ScanRequestUpdateOne) AddStageResultIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.AddStageResultIDs(ids...)
	return _u
}

// AddStageResults adds the "stage_results" edges to the StageResult entity.
func (_u *ScanRequestUpdateOne) AddStageResults(v ...*StageResult) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageResultIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_u *ScanRequestUpdateOne) AddReportIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Report entity.
func (_u *ScanRequestUpdateOne) AddReports(v ...*Report) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ScanRequestUpdateOne) AddEventIDs(ids ...int64) *ScanRequestUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ScanRequestUpdateOne) AddEvents(v ...*Event) *ScanRequestUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ScanRequestMutation object of the builder.
func (_u *ScanRequestUpdateOne) Mutation() *ScanRequestMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the CollectorJob entity.
func (_u *ScanRequestUpdateOne) ClearJobs() *ScanRequestUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to CollectorJob entities by IDs.
func (_u *ScanRequestUpdateOne) RemoveJobIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to CollectorJob entities.
func (_u *ScanRequestUpdateOne) RemoveJobs(v ...*CollectorJob) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearEvidenceCollection clears the "evidence_collection" edge to the EvidenceCollection entity.
func (_u *ScanRequestUpdateOne) ClearEvidenceCollection() *ScanRequestUpdateOne {
	_u.mutation.ClearEvidenceCollection()
	return _u
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *ScanRequestUpdateOne) ClearEvidence() *ScanRequestUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *ScanRequestUpdateOne) RemoveEvidenceIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *ScanRequestUpdateOne) RemoveEvidence(v ...*Evidence) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearStageResults clears all "stage_results" edges to the StageResult entity.
func (_u *ScanRequestUpdateOne) ClearStageResults() *ScanRequestUpdateOne {
	_u.mutation.ClearStageResults()
	return _u
}

// RemoveStageResultIDs removes the "stage_results" edge to StageResult entities by IDs.
func (_u *ScanRequestUpdateOne) RemoveStageResultIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.RemoveStageResultIDs(ids...)
	return _u
}

// RemoveStageResults removes "stage_results" edges to StageResult entities.
func (_u *ScanRequestUpdateOne) RemoveStageResults(v ...*StageResult) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageResultIDs(ids...)
}

// ClearReports clears all "reports" edges to the Report entity.
func (_u *ScanRequestUpdateOne) ClearReports() *ScanRequestUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Report entities by IDs.
func (_u *ScanRequestUpdateOne) RemoveReportIDs(ids ...string) *ScanRequestUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Report entities.
func (_u *ScanRequestUpdateOne) RemoveReports(v ...*Report) *ScanRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ScanRequestUpdateOne) ClearEvents() *ScanRequestUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ScanRequestUpdateOne) RemoveEventIDs(ids ...int64) *ScanRequestUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ScanRequestUpdateOne) RemoveEvents(v ...*Event) *ScanRequestUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ScanRequestUpdate builder.
func (_u *ScanRequestUpdateOne) Where(ps ...predicate.ScanRequest) *ScanRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanRequestUpdateOne) Select(field string, fields ...string) *ScanRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanRequest entity.
func (_u *ScanRequestUpdateOne) Save(ctx context.Context) (*ScanRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanRequestUpdateOne) SaveX(ctx context.Context) *ScanRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanRequestUpdateOne) check() error {
	if v, ok := _u.mutation.AnalysisDepth(); ok {
		if err := scanrequest.AnalysisDepthValidator(v); err != nil {
			return &ValidationError{Name: "analysis_depth", err: fmt.Errorf(`ent: validator failed for field "ScanRequest.analysis_depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanRequestUpdateOne) sqlSave(ctx context.Context) (_node *ScanRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanrequest.Table, scanrequest.Columns, sqlgraph.NewFieldSpec(scanrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanrequest.FieldID)
		for _, f := range fields {
			if !scanrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(scanrequest.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(scanrequest.FieldWebsite, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestorProfile(); ok {
		_spec.SetField(scanrequest.FieldInvestorProfile, field.TypeString, value)
	}
	if _u.mutation.InvestorProfileCleared() {
		_spec.ClearField(scanrequest.FieldInvestorProfile, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisDepth(); ok {
		_spec.SetField(scanrequest.FieldAnalysisDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Thesis(); ok {
		_spec.SetField(scanrequest.FieldThesis, field.TypeJSON, value)
	}
	if _u.mutation.ThesisCleared() {
		_spec.ClearField(scanrequest.FieldThesis, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(scanrequest.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(scanrequest.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(scanrequest.FieldReportID, field.TypeString, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(scanrequest.FieldReportID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(scanrequest.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(scanrequest.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedStages(); ok {
		_spec.SetField(scanrequest.FieldCompletedStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedStages(); ok {
		_spec.AddField(scanrequest.FieldCompletedStages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(scanrequest.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(scanrequest.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanrequest.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scanrequest.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(scanrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(scanrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(scanrequest.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(scanrequest.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(scanrequest.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(scanrequest.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.JobsTable,
			Columns: []string{scanrequest.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.JobsTable,
			Columns: []string{scanrequest.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.JobsTable,
			Columns: []string{scanrequest.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCollectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   scanrequest.EvidenceCollectionTable,
			Columns: []string{scanrequest.EvidenceCollectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceCollectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   scanrequest.EvidenceCollectionTable,
			Columns: []string{scanrequest.EvidenceCollectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EvidenceTable,
			Columns: []string{scanrequest.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EvidenceTable,
			Columns: []string{scanrequest.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EvidenceTable,
			Columns: []string{scanrequest.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StageResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.StageResultsTable,
			Columns: []string{scanrequest.StageResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageResultsIDs(); len(nodes) > 0 && !_u.mutation.StageResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.StageResultsTable,
			Columns: []string{scanrequest.StageResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.StageResultsTable,
			Columns: []string{scanrequest.StageResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.ReportsTable,
			Columns: []string{scanrequest.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.ReportsTable,
			Columns: []string{scanrequest.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.ReportsTable,
			Columns: []string{scanrequest.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EventsTable,
			Columns: []string{scanrequest.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EventsTable,
			Columns: []string{scanrequest.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scanrequest.EventsTable,
			Columns: []string{scanrequest.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScanRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
