// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/event"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/stageresult"
)

// ScanRequestCreate is the builder for creating a ScanRequest entity.
type ScanRequestCreate struct {
	config
	mutation *ScanRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCompanyName sets the "company_name" field.
func (_c *ScanRequestCreate) SetCompanyName(v string) *ScanRequestCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ScanRequestCreate) SetWebsite(v string) *ScanRequestCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetInvestorProfile sets the "investor_profile" field.
func (_c *ScanRequestCreate) SetInvestorProfile(v string) *ScanRequestCreate {
	_c.mutation.SetInvestorProfile(v)
	return _c
}

// SetNillableInvestorProfile sets the "investor_profile" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableInvestorProfile(v *string) *ScanRequestCreate {
	if v != nil {
		_c.SetInvestorProfile(*v)
	}
	return _c
}

// SetAnalysisDepth sets the "analysis_depth" field.
func (_c *ScanRequestCreate) SetAnalysisDepth(v scanrequest.AnalysisDepth) *ScanRequestCreate {
	_c.mutation.SetAnalysisDepth(v)
	return _c
}

// SetNillableAnalysisDepth sets the "analysis_depth" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableAnalysisDepth(v *scanrequest.AnalysisDepth) *ScanRequestCreate {
	if v != nil {
		_c.SetAnalysisDepth(*v)
	}
	return _c
}

// SetThesis sets the "thesis" field.
func (_c *ScanRequestCreate) SetThesis(v map[string]interface{}) *ScanRequestCreate {
	_c.mutation.SetThesis(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScanRequestCreate) SetStatus(v scanrequest.Status) *ScanRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableStatus(v *scanrequest.Status) *ScanRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusMessage sets the "status_message" field.
func (_c *ScanRequestCreate) SetStatusMessage(v string) *ScanRequestCreate {
	_c.mutation.SetStatusMessage(v)
	return _c
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableStatusMessage(v *string) *ScanRequestCreate {
	if v != nil {
		_c.SetStatusMessage(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *ScanRequestCreate) SetReportID(v string) *ScanRequestCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableReportID(v *string) *ScanRequestCreate {
	if v != nil {
		_c.SetReportID(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *ScanRequestCreate) SetCurrentStage(v string) *ScanRequestCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableCurrentStage(v *string) *ScanRequestCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetCompletedStages sets the "completed_stages" field.
func (_c *ScanRequestCreate) SetCompletedStages(v int) *ScanRequestCreate {
	_c.mutation.SetCompletedStages(v)
	return _c
}

// SetNillableCompletedStages sets the "completed_stages" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableCompletedStages(v *int) *ScanRequestCreate {
	if v != nil {
		_c.SetCompletedStages(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ScanRequestCreate) SetPodID(v string) *ScanRequestCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillablePodID(v *string) *ScanRequestCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScanRequestCreate) SetCreatedAt(v time.Time) *ScanRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableCreatedAt(v *time.Time) *ScanRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScanRequestCreate) SetStartedAt(v time.Time) *ScanRequestCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableStartedAt(v *time.Time) *ScanRequestCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ScanRequestCreate) SetCompletedAt(v time.Time) *ScanRequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableCompletedAt(v *time.Time) *ScanRequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeadlineAt sets the "deadline_at" field.
func (_c *ScanRequestCreate) SetDeadlineAt(v time.Time) *ScanRequestCreate {
	_c.mutation.SetDeadlineAt(v)
	return _c
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableDeadlineAt(v *time.Time) *ScanRequestCreate {
	if v != nil {
		_c.SetDeadlineAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *ScanRequestCreate) SetLastHeartbeatAt(v time.Time) *ScanRequestCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableLastHeartbeatAt(v *time.Time) *ScanRequestCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScanRequestCreate) SetID(v string) *ScanRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddJobIDs adds the "jobs" edge to the CollectorJob entity by IDs.
func (_c *ScanRequestCreate) AddJobIDs(ids ...string) *ScanRequestCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the CollectorJob entity.
func (_c *ScanRequestCreate) AddJobs(v ...*CollectorJob) *ScanRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// SetEvidenceCollectionID sets the "evidence_collection" edge to the EvidenceCollection entity by ID.
func (_c *ScanRequestCreate) SetEvidenceCollectionID(id string) *ScanRequestCreate {
	_c.mutation.SetEvidenceCollectionID(id)
	return _c
}

// SetNillableEvidenceCollectionID sets the "evidence_collection" edge to the EvidenceCollection entity by ID if the given value is not nil.
func (_c *ScanRequestCreate) SetNillableEvidenceCollectionID(id *string) *ScanRequestCreate {
	if id != nil {
		_c = _c.SetEvidenceCollectionID(*id)
	}
	return _c
}

// SetEvidenceCollection sets the "evidence_collection" edge to the EvidenceCollection entity.
func (_c *ScanRequestCreate) SetEvidenceCollection(v *EvidenceCollection) *ScanRequestCreate {
	return _c.SetEvidenceCollectionID(v.ID)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_c *ScanRequestCreate) AddEvidenceIDs(ids ...string) *ScanRequestCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_c *ScanRequestCreate) AddEvidence(v ...*Evidence) *ScanRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// AddStageResultIDs adds the "stage_results" edge to the StageResult entity by IDs.
func (_c *ScanRequestCreate) AddStageResultIDs(ids ...string) *ScanRequestCreate {
	_c.mutation.AddStageResultIDs(ids...)
	return _c
}

// AddStageResults adds the "stage_results" edges to the StageResult entity.
func (_c *ScanRequestCreate) AddStageResults(v ...*StageResult) *ScanRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageResultIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_c *ScanRequestCreate) AddReportIDs(ids ...string) *ScanRequestCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the Report entity.
func (_c *ScanRequestCreate) AddReports(v ...*Report) *ScanRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ScanRequestCreate) AddEventIDs(ids ...int64) *ScanRequestCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ScanRequestCreate) AddEvents(v ...*Event) *ScanRequestCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ScanRequestMutation object of the builder.
func (_c *ScanRequestCreate) Mutation() *ScanRequestMutation {
	return _c.mutation
}

// Save creates the ScanRequest in the database.
func (_c *ScanRequestCreate) Save(ctx context.Context) (*ScanRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanRequestCreate) SaveX(ctx context.Context) *ScanRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanRequestCreate) defaults() {
	if _, ok := _c.mutation.AnalysisDepth(); !ok {
		v := scanrequest.DefaultAnalysisDepth
		_c.mutation.SetAnalysisDepth(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scanrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedStages(); !ok {
		v := scanrequest.DefaultCompletedStages
		_c.mutation.SetCompletedStages(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scanrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanRequestCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "ScanRequest.company_name"`)}
	}
	if _, ok := _c.mutation.Website(); !ok {
		return &ValidationError{Name: "website", err: errors.New(`ent: missing required field "ScanRequest.website"`)}
	}
	if _, ok := _c.mutation.AnalysisDepth(); !ok {
		return &ValidationError{Name: "analysis_depth", err: errors.New(`ent: missing required field "ScanRequest.analysis_depth"`)}
	}
	if v, ok := _c.mutation.AnalysisDepth(); ok {
		if err := scanrequest.AnalysisDepthValidator(v); err != nil {
			return &ValidationError{Name: "analysis_depth", err: fmt.Errorf(`ent: validator failed for field "ScanRequest.analysis_depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScanRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scanrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedStages(); !ok {
		return &ValidationError{Name: "completed_stages", err: errors.New(`ent: missing required field "ScanRequest.completed_stages"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScanRequest.created_at"`)}
	}
	return nil
}

func (_c *ScanRequestCreate) sqlSave(ctx context.Context) (*ScanRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScanRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScanRequestCreate) createSpec() (*ScanRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanrequest.Table, sqlgraph.NewFieldSpec(scanrequest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(scanrequest.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(scanrequest.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.InvestorProfile(); ok {
		_spec.SetField(scanrequest.FieldInvestorProfile, field.TypeString, value)
		_node.InvestorProfile = &value
	}
	if value, ok := _c.mutation.AnalysisDepth(); ok {
		_spec.SetField(scanrequest.FieldAnalysisDepth, field.TypeEnum, value)
		_node.AnalysisDepth = value
	}
	if value, ok := _c.mutation.Thesis(); ok {
		_spec.SetField(scanrequest.FieldThesis, field.TypeJSON, value)
		_node.Thesis = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scanrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusMessage(); ok {
		_spec.SetField(scanrequest.FieldStatusMessage, field.TypeString, value)
		_node.StatusMessage = &value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(scanrequest.FieldReportID, field.TypeString, value)
		_node.ReportID = &value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(scanrequest.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = &value
	}
	if value, ok := _c.mutation.CompletedStages(); ok {
		_spec.SetField(scanrequest.FieldCompletedStages, field.TypeInt, value)
		_node.CompletedStages = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(scanrequest.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scanrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scanrequest.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(scanrequest.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeadlineAt(); ok {
		_spec.SetField(scanrequest.FieldDeadlineAt, field.TypeTime, value)
		_node.DeadlineAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(scanrequest.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceCollectionIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScanRequest.Create().
//		SetCompanyName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScanRequestUpsert) {
//			SetCompanyName(v+v).
//		}).
//		Exec(ctx)
func (_c *ScanRequestCreate) OnConflict(opts ...sql.ConflictOption) *ScanRequestUpsertOne {
	_c.conflict = opts
	return &ScanRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScanRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScanRequestCreate) OnConflictColumns(columns ...string) *ScanRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScanRequestUpsertOne{
		create: _c,
	}
}

type (
	// ScanRequestUpsertOne is the builder for "upsert"-ing
	//  one ScanRequest node.
	ScanRequestUpsertOne struct {
		create *ScanRequestCreate
	}

	// ScanRequestUpsert is the "OnConflict" setter.
	ScanRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompanyName sets the "company_name" field.
func (u *ScanRequestUpsert) SetCompanyName(v string) *ScanRequestUpsert {
	u.Set(scanrequest.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateCompanyName() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldCompanyName)
	return u
}

// SetWebsite sets the "website" field.
func (u *ScanRequestUpsert) SetWebsite(v string) *ScanRequestUpsert {
	u.Set(scanrequest.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateWebsite() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldWebsite)
	return u
}

// SetInvestorProfile sets the "investor_profile" field.
func (u *ScanRequestUpsert) SetInvestorProfile(v string) *ScanRequestUpsert {
	u.Set(scanrequest.FieldInvestorProfile, v)
	return u
}

// UpdateInvestorProfile sets the "investor_profile" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateInvestorProfile() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldInvestorProfile)
	return u
}

// ClearInvestorProfile clears the value of the "investor_profile" field.
func (u *ScanRequestUpsert) ClearInvestorProfile() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldInvestorProfile)
	return u
}

// SetAnalysisDepth sets the "analysis_depth" field.
func (u *ScanRequestUpsert) SetAnalysisDepth(v scanrequest.AnalysisDepth) *ScanRequestUpsert {
	u.Set(scanrequest.FieldAnalysisDepth, v)
	return u
}

// UpdateAnalysisDepth sets the "analysis_depth" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateAnalysisDepth() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldAnalysisDepth)
	return u
}

// SetThesis sets the "thesis" field.
func (u *ScanRequestUpsert) SetThesis(v map[string]interface{}) *ScanRequestUpsert {
	u.Set(scanrequest.FieldThesis, v)
	return u
}

// UpdateThesis sets the "thesis" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateThesis() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldThesis)
	return u
}

// ClearThesis clears the value of the "thesis" field.
func (u *ScanRequestUpsert) ClearThesis() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldThesis)
	return u
}

// SetStatus sets the "status" field.
func (u *ScanRequestUpsert) SetStatus(v scanrequest.Status) *ScanRequestUpsert {
	u.Set(scanrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateStatus() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldStatus)
	return u
}

// SetStatusMessage sets the "status_message" field.
func (u *ScanRequestUpsert) SetStatusMessage(v string) *ScanRequestUpsert {
	u.Set(scanrequest.FieldStatusMessage, v)
	return u
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateStatusMessage() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldStatusMessage)
	return u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *ScanRequestUpsert) ClearStatusMessage() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldStatusMessage)
	return u
}

// SetReportID sets the "report_id" field.
func (u *ScanRequestUpsert) SetReportID(v string) *ScanRequestUpsert {
	u.Set(scanrequest.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateReportID() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldReportID)
	return u
}

// ClearReportID clears the value of the "report_id" field.
func (u *ScanRequestUpsert) ClearReportID() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldReportID)
	return u
}

// SetCurrentStage sets the "current_stage" field.
func (u *ScanRequestUpsert) SetCurrentStage(v string) *ScanRequestUpsert {
	u.Set(scanrequest.FieldCurrentStage, v)
	return u
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateCurrentStage() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldCurrentStage)
	return u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *ScanRequestUpsert) ClearCurrentStage() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldCurrentStage)
	return u
}

// SetCompletedStages sets the "completed_stages" field.
func (u *ScanRequestUpsert) SetCompletedStages(v int) *ScanRequestUpsert {
	u.Set(scanrequest.FieldCompletedStages, v)
	return u
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateCompletedStages() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldCompletedStages)
	return u
}

// AddCompletedStages adds v to the "completed_stages" field.
func (u *ScanRequestUpsert) AddCompletedStages(v int) *ScanRequestUpsert {
	u.Add(scanrequest.FieldCompletedStages, v)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *ScanRequestUpsert) SetPodID(v string) *ScanRequestUpsert {
	u.Set(scanrequest.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdatePodID() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ScanRequestUpsert) ClearPodID() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldPodID)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ScanRequestUpsert) SetStartedAt(v time.Time) *ScanRequestUpsert {
	u.Set(scanrequest.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateStartedAt() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ScanRequestUpsert) ClearStartedAt() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ScanRequestUpsert) SetCompletedAt(v time.Time) *ScanRequestUpsert {
	u.Set(scanrequest.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateCompletedAt() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ScanRequestUpsert) ClearCompletedAt() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldCompletedAt)
	return u
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *ScanRequestUpsert) SetDeadlineAt(v time.Time) *ScanRequestUpsert {
	u.Set(scanrequest.FieldDeadlineAt, v)
	return u
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateDeadlineAt() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldDeadlineAt)
	return u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *ScanRequestUpsert) ClearDeadlineAt() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldDeadlineAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ScanRequestUpsert) SetLastHeartbeatAt(v time.Time) *ScanRequestUpsert {
	u.Set(scanrequest.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ScanRequestUpsert) UpdateLastHeartbeatAt() *ScanRequestUpsert {
	u.SetExcluded(scanrequest.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ScanRequestUpsert) ClearLastHeartbeatAt() *ScanRequestUpsert {
	u.SetNull(scanrequest.FieldLastHeartbeatAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScanRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scanrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScanRequestUpsertOne) UpdateNewValues() *ScanRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scanrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scanrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScanRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScanRequestUpsertOne) Ignore() *ScanRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScanRequestUpsertOne) DoNothing() *ScanRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScanRequestCreate.OnConflict
// documentation for more info.
func (u *ScanRequestUpsertOne) Update(set func(*ScanRequestUpsert)) *ScanRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScanRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *ScanRequestUpsertOne) SetCompanyName(v string) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateCompanyName() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCompanyName()
	})
}

// SetWebsite sets the "website" field.
func (u *ScanRequestUpsertOne) SetWebsite(v string) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateWebsite() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateWebsite()
	})
}

// SetInvestorProfile sets the "investor_profile" field.
func (u *ScanRequestUpsertOne) SetInvestorProfile(v string) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetInvestorProfile(v)
	})
}

// UpdateInvestorProfile sets the "investor_profile" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateInvestorProfile() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateInvestorProfile()
	})
}

// ClearInvestorProfile clears the value of the "investor_profile" field.
func (u *ScanRequestUpsertOne) ClearInvestorProfile() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearInvestorProfile()
	})
}

// SetAnalysisDepth sets the "analysis_depth" field.
func (u *ScanRequestUpsertOne) SetAnalysisDepth(v scanrequest.AnalysisDepth) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetAnalysisDepth(v)
	})
}

// UpdateAnalysisDepth sets the "analysis_depth" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateAnalysisDepth() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateAnalysisDepth()
	})
}

// SetThesis sets the "thesis" field.
func (u *ScanRequestUpsertOne) SetThesis(v map[string]interface{}) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetThesis(v)
	})
}

// UpdateThesis sets the "thesis" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateThesis() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateThesis()
	})
}

// ClearThesis clears the value of the "thesis" field.
func (u *ScanRequestUpsertOne) ClearThesis() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearThesis()
	})
}

// SetStatus sets the "status" field.
func (u *ScanRequestUpsertOne) SetStatus(v scanrequest.Status) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateStatus() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *ScanRequestUpsertOne) SetStatusMessage(v string) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateStatusMessage() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *ScanRequestUpsertOne) ClearStatusMessage() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearStatusMessage()
	})
}

// SetReportID sets the "report_id" field.
func (u *ScanRequestUpsertOne) SetReportID(v string) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateReportID() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateReportID()
	})
}

// ClearReportID clears the value of the "report_id" field.
func (u *ScanRequestUpsertOne) ClearReportID() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearReportID()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *ScanRequestUpsertOne) SetCurrentStage(v string) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateCurrentStage() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *ScanRequestUpsertOne) ClearCurrentStage() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearCurrentStage()
	})
}

// SetCompletedStages sets the "completed_stages" field.
func (u *ScanRequestUpsertOne) SetCompletedStages(v int) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCompletedStages(v)
	})
}

// AddCompletedStages adds v to the "completed_stages" field.
func (u *ScanRequestUpsertOne) AddCompletedStages(v int) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.AddCompletedStages(v)
	})
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateCompletedStages() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCompletedStages()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ScanRequestUpsertOne) SetPodID(v string) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdatePodID() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ScanRequestUpsertOne) ClearPodID() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ScanRequestUpsertOne) SetStartedAt(v time.Time) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateStartedAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ScanRequestUpsertOne) ClearStartedAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ScanRequestUpsertOne) SetCompletedAt(v time.Time) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateCompletedAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ScanRequestUpsertOne) ClearCompletedAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *ScanRequestUpsertOne) SetDeadlineAt(v time.Time) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateDeadlineAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateDeadlineAt()
	})
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *ScanRequestUpsertOne) ClearDeadlineAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearDeadlineAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ScanRequestUpsertOne) SetLastHeartbeatAt(v time.Time) *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ScanRequestUpsertOne) UpdateLastHeartbeatAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ScanRequestUpsertOne) ClearLastHeartbeatAt() *ScanRequestUpsertOne {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *ScanRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScanRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScanRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScanRequestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScanRequestUpsertOne.ID is not supported by MySQL driver. Use ScanRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScanRequestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScanRequestCreateBulk is the builder for creating many ScanRequest entities in bulk.
type ScanRequestCreateBulk struct {
	config
	err      error
	builders []*ScanRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the ScanRequest entities in the database.
func (_c *ScanRequestCreateBulk) Save(ctx context.Context) ([]*ScanRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScanRequestCreateBulk) SaveX(ctx context.Context) []*ScanRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScanRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScanRequestUpsert) {
//			SetCompanyName(v+v).
//		}).
//		Exec(ctx)
func (_c *ScanRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScanRequestUpsertBulk {
	_c.conflict = opts
	return &ScanRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScanRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScanRequestCreateBulk) OnConflictColumns(columns ...string) *ScanRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScanRequestUpsertBulk{
		create: _c,
	}
}

// ScanRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of ScanRequest nodes.
type ScanRequestUpsertBulk struct {
	create *ScanRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScanRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scanrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScanRequestUpsertBulk) UpdateNewValues() *ScanRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scanrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scanrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScanRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScanRequestUpsertBulk) Ignore() *ScanRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScanRequestUpsertBulk) DoNothing() *ScanRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScanRequestCreateBulk.OnConflict
// documentation for more info.
func (u *ScanRequestUpsertBulk) Update(set func(*ScanRequestUpsert)) *ScanRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScanRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *ScanRequestUpsertBulk) SetCompanyName(v string) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateCompanyName() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCompanyName()
	})
}

// SetWebsite sets the "website" field.
func (u *ScanRequestUpsertBulk) SetWebsite(v string) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateWebsite() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateWebsite()
	})
}

// SetInvestorProfile sets the "investor_profile" field.
func (u *ScanRequestUpsertBulk) SetInvestorProfile(v string) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetInvestorProfile(v)
	})
}

// UpdateInvestorProfile sets the "investor_profile" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateInvestorProfile() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateInvestorProfile()
	})
}

// ClearInvestorProfile clears the value of the "investor_profile" field.
func (u *ScanRequestUpsertBulk) ClearInvestorProfile() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearInvestorProfile()
	})
}

// SetAnalysisDepth sets the "analysis_depth" field.
func (u *ScanRequestUpsertBulk) SetAnalysisDepth(v scanrequest.AnalysisDepth) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetAnalysisDepth(v)
	})
}

// UpdateAnalysisDepth sets the "analysis_depth" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateAnalysisDepth() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateAnalysisDepth()
	})
}

// SetThesis sets the "thesis" field.
func (u *ScanRequestUpsertBulk) SetThesis(v map[string]interface{}) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetThesis(v)
	})
}

// UpdateThesis sets the "thesis" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateThesis() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateThesis()
	})
}

// ClearThesis clears the value of the "thesis" field.
func (u *ScanRequestUpsertBulk) ClearThesis() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearThesis()
	})
}

// SetStatus sets the "status" field.
func (u *ScanRequestUpsertBulk) SetStatus(v scanrequest.Status) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateStatus() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusMessage sets the "status_message" field.
func (u *ScanRequestUpsertBulk) SetStatusMessage(v string) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetStatusMessage(v)
	})
}

// UpdateStatusMessage sets the "status_message" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateStatusMessage() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateStatusMessage()
	})
}

// ClearStatusMessage clears the value of the "status_message" field.
func (u *ScanRequestUpsertBulk) ClearStatusMessage() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearStatusMessage()
	})
}

// SetReportID sets the "report_id" field.
func (u *ScanRequestUpsertBulk) SetReportID(v string) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateReportID() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateReportID()
	})
}

// ClearReportID clears the value of the "report_id" field.
func (u *ScanRequestUpsertBulk) ClearReportID() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearReportID()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *ScanRequestUpsertBulk) SetCurrentStage(v string) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateCurrentStage() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *ScanRequestUpsertBulk) ClearCurrentStage() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearCurrentStage()
	})
}

// SetCompletedStages sets the "completed_stages" field.
func (u *ScanRequestUpsertBulk) SetCompletedStages(v int) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCompletedStages(v)
	})
}

// AddCompletedStages adds v to the "completed_stages" field.
func (u *ScanRequestUpsertBulk) AddCompletedStages(v int) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.AddCompletedStages(v)
	})
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateCompletedStages() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCompletedStages()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ScanRequestUpsertBulk) SetPodID(v string) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdatePodID() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ScanRequestUpsertBulk) ClearPodID() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ScanRequestUpsertBulk) SetStartedAt(v time.Time) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateStartedAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ScanRequestUpsertBulk) ClearStartedAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ScanRequestUpsertBulk) SetCompletedAt(v time.Time) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateCompletedAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ScanRequestUpsertBulk) ClearCompletedAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *ScanRequestUpsertBulk) SetDeadlineAt(v time.Time) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateDeadlineAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateDeadlineAt()
	})
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *ScanRequestUpsertBulk) ClearDeadlineAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearDeadlineAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ScanRequestUpsertBulk) SetLastHeartbeatAt(v time.Time) *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ScanRequestUpsertBulk) UpdateLastHeartbeatAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ScanRequestUpsertBulk) ClearLastHeartbeatAt() *ScanRequestUpsertBulk {
	return u.Update(func(s *ScanRequestUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *ScanRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScanRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScanRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScanRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
