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
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
	"github.com/probeworks/diligent/ent/scanrequest"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScanID sets the "scan_id" field.
func (_c *ReportCreate) SetScanID(v string) *ReportCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_c *ReportCreate) SetExecutiveSummary(v string) *ReportCreate {
	_c.mutation.SetExecutiveSummary(v)
	return _c
}

// SetInvestmentScore sets the "investment_score" field.
func (_c *ReportCreate) SetInvestmentScore(v float64) *ReportCreate {
	_c.mutation.SetInvestmentScore(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *ReportCreate) SetRationale(v string) *ReportCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *ReportCreate) SetNillableRationale(v *string) *ReportCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *ReportCreate) SetQualityScore(v float64) *ReportCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *ReportCreate) SetNillableQualityScore(v *float64) *ReportCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *ReportCreate) SetEvidenceCount(v int) *ReportCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *ReportCreate) SetNillableEvidenceCount(v *int) *ReportCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetDegraded sets the "degraded" field.
func (_c *ReportCreate) SetDegraded(v bool) *ReportCreate {
	_c.mutation.SetDegraded(v)
	return _c
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_c *ReportCreate) SetNillableDegraded(v *bool) *ReportCreate {
	if v != nil {
		_c.SetDegraded(*v)
	}
	return _c
}

// SetGenerator sets the "generator" field.
func (_c *ReportCreate) SetGenerator(v map[string]interface{}) *ReportCreate {
	_c.mutation.SetGenerator(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportCreate) SetID(v string) *ReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetScan sets the "scan" edge to the ScanRequest entity.
func (_c *ReportCreate) SetScan(v *ScanRequest) *ReportCreate {
	return _c.SetScanID(v.ID)
}

// AddSectionIDs adds the "sections" edge to the ReportSection entity by IDs.
func (_c *ReportCreate) AddSectionIDs(ids ...string) *ReportCreate {
	_c.mutation.AddSectionIDs(ids...)
	return _c
}

// AddSections adds the "sections" edges to the ReportSection entity.
func (_c *ReportCreate) AddSections(v ...*ReportSection) *ReportCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSectionIDs(ids...)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_c *ReportCreate) AddCitationIDs(ids ...string) *ReportCreate {
	_c.mutation.AddCitationIDs(ids...)
	return _c
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_c *ReportCreate) AddCitations(v ...*Citation) *ReportCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCitationIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := report.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := report.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		v := report.DefaultDegraded
		_c.mutation.SetDegraded(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.ScanID(); !ok {
		return &ValidationError{Name: "scan_id", err: errors.New(`ent: missing required field "Report.scan_id"`)}
	}
	if _, ok := _c.mutation.ExecutiveSummary(); !ok {
		return &ValidationError{Name: "executive_summary", err: errors.New(`ent: missing required field "Report.executive_summary"`)}
	}
	if _, ok := _c.mutation.InvestmentScore(); !ok {
		return &ValidationError{Name: "investment_score", err: errors.New(`ent: missing required field "Report.investment_score"`)}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "Report.quality_score"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "Report.evidence_count"`)}
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		return &ValidationError{Name: "degraded", err: errors.New(`ent: missing required field "Report.degraded"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if len(_c.mutation.ScanIDs()) == 0 {
		return &ValidationError{Name: "scan", err: errors.New(`ent: missing required edge "Report.scan"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
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
			return nil, fmt.Errorf("unexpected Report.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutiveSummary(); ok {
		_spec.SetField(report.FieldExecutiveSummary, field.TypeString, value)
		_node.ExecutiveSummary = value
	}
	if value, ok := _c.mutation.InvestmentScore(); ok {
		_spec.SetField(report.FieldInvestmentScore, field.TypeFloat64, value)
		_node.InvestmentScore = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(report.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(report.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(report.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.Degraded(); ok {
		_spec.SetField(report.FieldDegraded, field.TypeBool, value)
		_node.Degraded = value
	}
	if value, ok := _c.mutation.Generator(); ok {
		_spec.SetField(report.FieldGenerator, field.TypeJSON, value)
		_node.Generator = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.ScanTable,
			Columns: []string{report.ScanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.SectionsTable,
			Columns: []string{report.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.CitationsTable,
			Columns: []string{report.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString),
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
//	client.Report.Create().
//		SetScanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreate) OnConflict(opts ...sql.ConflictOption) *ReportUpsertOne {
	_c.conflict = opts
	return &ReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreate) OnConflictColumns(columns ...string) *ReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertOne{
		create: _c,
	}
}

type (
	// ReportUpsertOne is the builder for "upsert"-ing
	//  one Report node.
	ReportUpsertOne struct {
		create *ReportCreate
	}

	// ReportUpsert is the "OnConflict" setter.
	ReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutiveSummary sets the "executive_summary" field.
func (u *ReportUpsert) SetExecutiveSummary(v string) *ReportUpsert {
	u.Set(report.FieldExecutiveSummary, v)
	return u
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *ReportUpsert) UpdateExecutiveSummary() *ReportUpsert {
	u.SetExcluded(report.FieldExecutiveSummary)
	return u
}

// SetInvestmentScore sets the "investment_score" field.
func (u *ReportUpsert) SetInvestmentScore(v float64) *ReportUpsert {
	u.Set(report.FieldInvestmentScore, v)
	return u
}

// UpdateInvestmentScore sets the "investment_score" field to the value that was provided on create.
func (u *ReportUpsert) UpdateInvestmentScore() *ReportUpsert {
	u.SetExcluded(report.FieldInvestmentScore)
	return u
}

// AddInvestmentScore adds v to the "investment_score" field.
func (u *ReportUpsert) AddInvestmentScore(v float64) *ReportUpsert {
	u.Add(report.FieldInvestmentScore, v)
	return u
}

// SetRationale sets the "rationale" field.
func (u *ReportUpsert) SetRationale(v string) *ReportUpsert {
	u.Set(report.FieldRationale, v)
	return u
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ReportUpsert) UpdateRationale() *ReportUpsert {
	u.SetExcluded(report.FieldRationale)
	return u
}

// ClearRationale clears the value of the "rationale" field.
func (u *ReportUpsert) ClearRationale() *ReportUpsert {
	u.SetNull(report.FieldRationale)
	return u
}

// SetQualityScore sets the "quality_score" field.
func (u *ReportUpsert) SetQualityScore(v float64) *ReportUpsert {
	u.Set(report.FieldQualityScore, v)
	return u
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *ReportUpsert) UpdateQualityScore() *ReportUpsert {
	u.SetExcluded(report.FieldQualityScore)
	return u
}

// AddQualityScore adds v to the "quality_score" field.
func (u *ReportUpsert) AddQualityScore(v float64) *ReportUpsert {
	u.Add(report.FieldQualityScore, v)
	return u
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *ReportUpsert) SetEvidenceCount(v int) *ReportUpsert {
	u.Set(report.FieldEvidenceCount, v)
	return u
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *ReportUpsert) UpdateEvidenceCount() *ReportUpsert {
	u.SetExcluded(report.FieldEvidenceCount)
	return u
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *ReportUpsert) AddEvidenceCount(v int) *ReportUpsert {
	u.Add(report.FieldEvidenceCount, v)
	return u
}

// SetDegraded sets the "degraded" field.
func (u *ReportUpsert) SetDegraded(v bool) *ReportUpsert {
	u.Set(report.FieldDegraded, v)
	return u
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *ReportUpsert) UpdateDegraded() *ReportUpsert {
	u.SetExcluded(report.FieldDegraded)
	return u
}

// SetGenerator sets the "generator" field.
func (u *ReportUpsert) SetGenerator(v map[string]interface{}) *ReportUpsert {
	u.Set(report.FieldGenerator, v)
	return u
}

// UpdateGenerator sets the "generator" field to the value that was provided on create.
func (u *ReportUpsert) UpdateGenerator() *ReportUpsert {
	u.SetExcluded(report.FieldGenerator)
	return u
}

// ClearGenerator clears the value of the "generator" field.
func (u *ReportUpsert) ClearGenerator() *ReportUpsert {
	u.SetNull(report.FieldGenerator)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertOne) UpdateNewValues() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(report.FieldID)
		}
		if _, exists := u.create.mutation.ScanID(); exists {
			s.SetIgnore(report.FieldScanID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(report.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportUpsertOne) Ignore() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertOne) DoNothing() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreate.OnConflict
// documentation for more info.
func (u *ReportUpsertOne) Update(set func(*ReportUpsert)) *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *ReportUpsertOne) SetExecutiveSummary(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateExecutiveSummary() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// SetInvestmentScore sets the "investment_score" field.
func (u *ReportUpsertOne) SetInvestmentScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetInvestmentScore(v)
	})
}

// AddInvestmentScore adds v to the "investment_score" field.
func (u *ReportUpsertOne) AddInvestmentScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddInvestmentScore(v)
	})
}

// UpdateInvestmentScore sets the "investment_score" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateInvestmentScore() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateInvestmentScore()
	})
}

// SetRationale sets the "rationale" field.
func (u *ReportUpsertOne) SetRationale(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateRationale() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *ReportUpsertOne) ClearRationale() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearRationale()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *ReportUpsertOne) SetQualityScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *ReportUpsertOne) AddQualityScore(v float64) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateQualityScore() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateQualityScore()
	})
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *ReportUpsertOne) SetEvidenceCount(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetEvidenceCount(v)
	})
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *ReportUpsertOne) AddEvidenceCount(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddEvidenceCount(v)
	})
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateEvidenceCount() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateEvidenceCount()
	})
}

// SetDegraded sets the "degraded" field.
func (u *ReportUpsertOne) SetDegraded(v bool) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetDegraded(v)
	})
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateDegraded() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDegraded()
	})
}

// SetGenerator sets the "generator" field.
func (u *ReportUpsertOne) SetGenerator(v map[string]interface{}) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetGenerator(v)
	})
}

// UpdateGenerator sets the "generator" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateGenerator() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateGenerator()
	})
}

// ClearGenerator clears the value of the "generator" field.
func (u *ReportUpsertOne) ClearGenerator() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearGenerator()
	})
}

// Exec executes the query.
func (u *ReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportUpsertOne.ID is not supported by MySQL driver. Use ReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
	conflict []sql.ConflictOption
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
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
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportUpsertBulk {
	_c.conflict = opts
	return &ReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflictColumns(columns ...string) *ReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertBulk{
		create: _c,
	}
}

// ReportUpsertBulk is the builder for "upsert"-ing
// a bulk of Report nodes.
type ReportUpsertBulk struct {
	create *ReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertBulk) UpdateNewValues() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(report.FieldID)
			}
			if _, exists := b.mutation.ScanID(); exists {
				s.SetIgnore(report.FieldScanID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(report.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportUpsertBulk) Ignore() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertBulk) DoNothing() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreateBulk.OnConflict
// documentation for more info.
func (u *ReportUpsertBulk) Update(set func(*ReportUpsert)) *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *ReportUpsertBulk) SetExecutiveSummary(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateExecutiveSummary() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// SetInvestmentScore sets the "investment_score" field.
func (u *ReportUpsertBulk) SetInvestmentScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetInvestmentScore(v)
	})
}

// AddInvestmentScore adds v to the "investment_score" field.
func (u *ReportUpsertBulk) AddInvestmentScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddInvestmentScore(v)
	})
}

// UpdateInvestmentScore sets the "investment_score" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateInvestmentScore() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateInvestmentScore()
	})
}

// SetRationale sets the "rationale" field.
func (u *ReportUpsertBulk) SetRationale(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateRationale() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *ReportUpsertBulk) ClearRationale() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearRationale()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *ReportUpsertBulk) SetQualityScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *ReportUpsertBulk) AddQualityScore(v float64) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateQualityScore() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateQualityScore()
	})
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *ReportUpsertBulk) SetEvidenceCount(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetEvidenceCount(v)
	})
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *ReportUpsertBulk) AddEvidenceCount(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddEvidenceCount(v)
	})
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateEvidenceCount() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateEvidenceCount()
	})
}

// SetDegraded sets the "degraded" field.
func (u *ReportUpsertBulk) SetDegraded(v bool) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetDegraded(v)
	})
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateDegraded() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDegraded()
	})
}

// SetGenerator sets the "generator" field.
func (u *ReportUpsertBulk) SetGenerator(v map[string]interface{}) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetGenerator(v)
	})
}

// UpdateGenerator sets the "generator" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateGenerator() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateGenerator()
	})
}

// ClearGenerator clears the value of the "generator" field.
func (u *ReportUpsertBulk) ClearGenerator() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearGenerator()
	})
}

// Exec executes the query.
func (u *ReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
