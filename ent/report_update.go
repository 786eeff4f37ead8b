// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/predicate"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *ReportUpdate) SetExecutiveSummary(v string) *ReportUpdate {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableExecutiveSummary(v *string) *ReportUpdate {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// SetInvestmentScore sets the "investment_score" field.
func (_u *ReportUpdate) SetInvestmentScore(v float64) *ReportUpdate {
	_u.mutation.ResetInvestmentScore()
	_u.mutation.SetInvestmentScore(v)
	return _u
}

// SetNillableInvestmentScore sets the "investment_score" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableInvestmentScore(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetInvestmentScore(*v)
	}
	return _u
}

// AddInvestmentScore adds value to the "investment_score" field.
func (_u *ReportUpdate) AddInvestmentScore(v float64) *ReportUpdate {
	_u.mutation.AddInvestmentScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ReportUpdate) SetRationale(v string) *ReportUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableRationale(v *string) *ReportUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ReportUpdate) ClearRationale() *ReportUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ReportUpdate) SetQualityScore(v float64) *ReportUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableQualityScore(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ReportUpdate) AddQualityScore(v float64) *ReportUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *ReportUpdate) SetEvidenceCount(v int) *ReportUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableEvidenceCount(v *int) *ReportUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *ReportUpdate) AddEvidenceCount(v int) *ReportUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *ReportUpdate) SetDegraded(v bool) *ReportUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDegraded(v *bool) *ReportUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetGenerator sets the "generator" field.
func (_u *ReportUpdate) SetGenerator(v map[string]interface{}) *ReportUpdate {
	_u.mutation.SetGenerator(v)
	return _u
}

// ClearGenerator clears the value of the "generator" field.
func (_u *ReportUpdate) ClearGenerator() *ReportUpdate {
	_u.mutation.ClearGenerator()
	return _u
}

// AddSectionIDs adds the "sections" edge to the ReportSection entity by IDs.
func (_u *ReportUpdate) AddSectionIDs(ids ...string) *ReportUpdate {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the ReportSection entity.
func (_u *ReportUpdate) AddSections(v ...*ReportSection) *ReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *ReportUpdate) AddCitationIDs(ids ...string) *ReportUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *ReportUpdate) AddCitations(v ...*Citation) *ReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the ReportSection entity.
func (_u *ReportUpdate) ClearSections() *ReportUpdate {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to ReportSection entities by IDs.
func (_u *ReportUpdate) RemoveSectionIDs(ids ...string) *ReportUpdate {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to ReportSection entities.
func (_u *ReportUpdate) RemoveSections(v ...*ReportSection) *ReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *ReportUpdate) ClearCitations() *ReportUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *ReportUpdate) RemoveCitationIDs(ids ...string) *ReportUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *ReportUpdate) RemoveCitations(v ...*Citation) *ReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.scan"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(report.FieldExecutiveSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestmentScore(); ok {
		_spec.SetField(report.FieldInvestmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInvestmentScore(); ok {
		_spec.AddField(report.FieldInvestmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(report.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(report.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(report.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(report.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(report.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(report.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(report.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Generator(); ok {
		_spec.SetField(report.FieldGenerator, field.TypeJSON, value)
	}
	if _u.mutation.GeneratorCleared() {
		_spec.ClearField(report.FieldGenerator, field.TypeJSON)
	}
	if _u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *ReportUpdateOne) SetExecutiveSummary(v string) *ReportUpdateOne {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableExecutiveSummary(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// SetInvestmentScore sets the "investment_score" field.
func (_u *ReportUpdateOne) SetInvestmentScore(v float64) *ReportUpdateOne {
	_u.mutation.ResetInvestmentScore()
	_u.mutation.SetInvestmentScore(v)
	return _u
}

// SetNillableInvestmentScore sets the "investment_score" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableInvestmentScore(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetInvestmentScore(*v)
	}
	return _u
}

// AddInvestmentScore adds value to the "investment_score" field.
func (_u *ReportUpdateOne) AddInvestmentScore(v float64) *ReportUpdateOne {
	_u.mutation.AddInvestmentScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ReportUpdateOne) SetRationale(v string) *ReportUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableRationale(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ReportUpdateOne) ClearRationale() *ReportUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ReportUpdateOne) SetQualityScore(v float64) *ReportUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableQualityScore(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ReportUpdateOne) AddQualityScore(v float64) *ReportUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *ReportUpdateOne) SetEvidenceCount(v int) *ReportUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableEvidenceCount(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *ReportUpdateOne) AddEvidenceCount(v int) *ReportUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *ReportUpdateOne) SetDegraded(v bool) *ReportUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDegraded(v *bool) *ReportUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetGenerator sets the "generator" field.
func (_u *ReportUpdateOne) SetGenerator(v map[string]interface{}) *ReportUpdateOne {
	_u.mutation.SetGenerator(v)
	return _u
}

// ClearGenerator clears the value of the "generator" field.
func (_u *ReportUpdateOne) ClearGenerator() *ReportUpdateOne {
	_u.mutation.ClearGenerator()
	return _u
}

// AddSectionIDs adds the "sections" edge to the ReportSection entity by IDs.
func (_u *ReportUpdateOne) AddSectionIDs(ids ...string) *ReportUpdateOne {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the ReportSection entity.
func (_u *ReportUpdateOne) AddSections(v ...*ReportSection) *ReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *ReportUpdateOne) AddCitationIDs(ids ...string) *ReportUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *ReportUpdateOne) AddCitations(v ...*Citation) *ReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the ReportSection entity.
func (_u *ReportUpdateOne) ClearSections() *ReportUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to ReportSection entities by IDs.
func (_u *ReportUpdateOne) RemoveSectionIDs(ids ...string) *ReportUpdateOne {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to ReportSection entities.
func (_u *ReportUpdateOne) RemoveSections(v ...*ReportSection) *ReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *ReportUpdateOne) ClearCitations() *ReportUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *ReportUpdateOne) RemoveCitationIDs(ids ...string) *ReportUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *ReportUpdateOne) RemoveCitations(v ...*Citation) *ReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.scan"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(report.FieldExecutiveSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvestmentScore(); ok {
		_spec.SetField(report.FieldInvestmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInvestmentScore(); ok {
		_spec.AddField(report.FieldInvestmentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(report.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(report.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(report.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(report.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(report.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(report.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(report.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Generator(); ok {
		_spec.SetField(report.FieldGenerator, field.TypeJSON, value)
	}
	if _u.mutation.GeneratorCleared() {
		_spec.ClearField(report.FieldGenerator, field.TypeJSON)
	}
	if _u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
