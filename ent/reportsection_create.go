// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
)

// ReportSectionCreate is the builder for creating a ReportSection entity.
type ReportSectionCreate struct {
	config
	mutation *ReportSectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReportID sets the "report_id" field.
func (_c *ReportSectionCreate) SetReportID(v string) *ReportSectionCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetPillarID sets the "pillar_id" field.
func (_c *ReportSectionCreate) SetPillarID(v string) *ReportSectionCreate {
	_c.mutation.SetPillarID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReportSectionCreate) SetTitle(v string) *ReportSectionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ReportSectionCreate) SetContent(v string) *ReportSectionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ReportSectionCreate) SetScore(v float64) *ReportSectionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetKeyFindings sets the "key_findings" field.
func (_c *ReportSectionCreate) SetKeyFindings(v []map[string]interface{}) *ReportSectionCreate {
	_c.mutation.SetKeyFindings(v)
	return _c
}

// SetRisks sets the "risks" field.
func (_c *ReportSectionCreate) SetRisks(v []string) *ReportSectionCreate {
	_c.mutation.SetRisks(v)
	return _c
}

// SetOpportunities sets the "opportunities" field.
func (_c *ReportSectionCreate) SetOpportunities(v []string) *ReportSectionCreate {
	_c.mutation.SetOpportunities(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *ReportSectionCreate) SetRecommendations(v []string) *ReportSectionCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetDegraded sets the "degraded" field.
func (_c *ReportSectionCreate) SetDegraded(v bool) *ReportSectionCreate {
	_c.mutation.SetDegraded(v)
	return _c
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_c *ReportSectionCreate) SetNillableDegraded(v *bool) *ReportSectionCreate {
	if v != nil {
		_c.SetDegraded(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ReportSectionCreate) SetOrderIndex(v int) *ReportSectionCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReportSectionCreate) SetID(v string) *ReportSectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *ReportSectionCreate) SetReport(v *Report) *ReportSectionCreate {
	return _c.SetReportID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_c *ReportSectionCreate) AddCitationIDs(ids ...string) *ReportSectionCreate {
	_c.mutation.AddCitationIDs(ids...)
	return _c
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_c *ReportSectionCreate) AddCitations(v ...*Citation) *ReportSectionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCitationIDs(ids...)
}

// Mutation returns the ReportSectionMutation object of the builder.
func (_c *ReportSectionCreate) Mutation() *ReportSectionMutation {
	return _c.mutation
}

// Save creates the ReportSection in the database.
func (_c *ReportSectionCreate) Save(ctx context.Context) (*ReportSection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportSectionCreate) SaveX(ctx context.Context) *ReportSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportSectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportSectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportSectionCreate) defaults() {
	if _, ok := _c.mutation.Degraded(); !ok {
		v := reportsection.DefaultDegraded
		_c.mutation.SetDegraded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportSectionCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportSection.report_id"`)}
	}
	if _, ok := _c.mutation.PillarID(); !ok {
		return &ValidationError{Name: "pillar_id", err: errors.New(`ent: missing required field "ReportSection.pillar_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ReportSection.title"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ReportSection.content"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ReportSection.score"`)}
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		return &ValidationError{Name: "degraded", err: errors.New(`ent: missing required field "ReportSection.degraded"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ReportSection.order_index"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "ReportSection.report"`)}
	}
	return nil
}

func (_c *ReportSectionCreate) sqlSave(ctx context.Context) (*ReportSection, error) {
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
			return nil, fmt.Errorf("unexpected ReportSection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportSectionCreate) createSpec() (*ReportSection, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportSection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportsection.Table, sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PillarID(); ok {
		_spec.SetField(reportsection.FieldPillarID, field.TypeString, value)
		_node.PillarID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(reportsection.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(reportsection.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(reportsection.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.KeyFindings(); ok {
		_spec.SetField(reportsection.FieldKeyFindings, field.TypeJSON, value)
		_node.KeyFindings = value
	}
	if value, ok := _c.mutation.Risks(); ok {
		_spec.SetField(reportsection.FieldRisks, field.TypeJSON, value)
		_node.Risks = value
	}
	if value, ok := _c.mutation.Opportunities(); ok {
		_spec.SetField(reportsection.FieldOpportunities, field.TypeJSON, value)
		_node.Opportunities = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(reportsection.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.Degraded(); ok {
		_spec.SetField(reportsection.FieldDegraded, field.TypeBool, value)
		_node.Degraded = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(reportsection.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportsection.ReportTable,
			Columns: []string{reportsection.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportsection.CitationsTable,
			Columns: []string{reportsection.CitationsColumn},
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
//	client.ReportSection.Create().
//		SetReportID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportSectionUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportSectionCreate) OnConflict(opts ...sql.ConflictOption) *ReportSectionUpsertOne {
	_c.conflict = opts
	return &ReportSectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportSectionCreate) OnConflictColumns(columns ...string) *ReportSectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportSectionUpsertOne{
		create: _c,
	}
}

type (
	// ReportSectionUpsertOne is the builder for "upsert"-ing
	//  one ReportSection node.
	ReportSectionUpsertOne struct {
		create *ReportSectionCreate
	}

	// ReportSectionUpsert is the "OnConflict" setter.
	ReportSectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetPillarID sets the "pillar_id" field.
func (u *ReportSectionUpsert) SetPillarID(v string) *ReportSectionUpsert {
	u.Set(reportsection.FieldPillarID, v)
	return u
}

// UpdatePillarID sets the "pillar_id" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdatePillarID() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldPillarID)
	return u
}

// SetTitle sets the "title" field.
func (u *ReportSectionUpsert) SetTitle(v string) *ReportSectionUpsert {
	u.Set(reportsection.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateTitle() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *ReportSectionUpsert) SetContent(v string) *ReportSectionUpsert {
	u.Set(reportsection.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateContent() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldContent)
	return u
}

// SetScore sets the "score" field.
func (u *ReportSectionUpsert) SetScore(v float64) *ReportSectionUpsert {
	u.Set(reportsection.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateScore() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *ReportSectionUpsert) AddScore(v float64) *ReportSectionUpsert {
	u.Add(reportsection.FieldScore, v)
	return u
}

// SetKeyFindings sets the "key_findings" field.
func (u *ReportSectionUpsert) SetKeyFindings(v []map[string]interface{}) *ReportSectionUpsert {
	u.Set(reportsection.FieldKeyFindings, v)
	return u
}

// UpdateKeyFindings sets the "key_findings" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateKeyFindings() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldKeyFindings)
	return u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (u *ReportSectionUpsert) ClearKeyFindings() *ReportSectionUpsert {
	u.SetNull(reportsection.FieldKeyFindings)
	return u
}

// SetRisks sets the "risks" field.
func (u *ReportSectionUpsert) SetRisks(v []string) *ReportSectionUpsert {
	u.Set(reportsection.FieldRisks, v)
	return u
}

// UpdateRisks sets the "risks" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateRisks() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldRisks)
	return u
}

// ClearRisks clears the value of the "risks" field.
func (u *ReportSectionUpsert) ClearRisks() *ReportSectionUpsert {
	u.SetNull(reportsection.FieldRisks)
	return u
}

// SetOpportunities sets the "opportunities" field.
func (u *ReportSectionUpsert) SetOpportunities(v []string) *ReportSectionUpsert {
	u.Set(reportsection.FieldOpportunities, v)
	return u
}

// UpdateOpportunities sets the "opportunities" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateOpportunities() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldOpportunities)
	return u
}

// ClearOpportunities clears the value of the "opportunities" field.
func (u *ReportSectionUpsert) ClearOpportunities() *ReportSectionUpsert {
	u.SetNull(reportsection.FieldOpportunities)
	return u
}

// SetRecommendations sets the "recommendations" field.
func (u *ReportSectionUpsert) SetRecommendations(v []string) *ReportSectionUpsert {
	u.Set(reportsection.FieldRecommendations, v)
	return u
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateRecommendations() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldRecommendations)
	return u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *ReportSectionUpsert) ClearRecommendations() *ReportSectionUpsert {
	u.SetNull(reportsection.FieldRecommendations)
	return u
}

// SetDegraded sets the "degraded" field.
func (u *ReportSectionUpsert) SetDegraded(v bool) *ReportSectionUpsert {
	u.Set(reportsection.FieldDegraded, v)
	return u
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateDegraded() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldDegraded)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *ReportSectionUpsert) SetOrderIndex(v int) *ReportSectionUpsert {
	u.Set(reportsection.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateOrderIndex() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ReportSectionUpsert) AddOrderIndex(v int) *ReportSectionUpsert {
	u.Add(reportsection.FieldOrderIndex, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportSectionUpsertOne) UpdateNewValues() *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reportsection.FieldID)
		}
		if _, exists := u.create.mutation.ReportID(); exists {
			s.SetIgnore(reportsection.FieldReportID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportSectionUpsertOne) Ignore() *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportSectionUpsertOne) DoNothing() *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportSectionCreate.OnConflict
// documentation for more info.
func (u *ReportSectionUpsertOne) Update(set func(*ReportSectionUpsert)) *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPillarID sets the "pillar_id" field.
func (u *ReportSectionUpsertOne) SetPillarID(v string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetPillarID(v)
	})
}

// UpdatePillarID sets the "pillar_id" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdatePillarID() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdatePillarID()
	})
}

// SetTitle sets the "title" field.
func (u *ReportSectionUpsertOne) SetTitle(v string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateTitle() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ReportSectionUpsertOne) SetContent(v string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateContent() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateContent()
	})
}

// SetScore sets the "score" field.
func (u *ReportSectionUpsertOne) SetScore(v float64) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ReportSectionUpsertOne) AddScore(v float64) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateScore() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateScore()
	})
}

// SetKeyFindings sets the "key_findings" field.
func (u *ReportSectionUpsertOne) SetKeyFindings(v []map[string]interface{}) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetKeyFindings(v)
	})
}

// UpdateKeyFindings sets the "key_findings" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateKeyFindings() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateKeyFindings()
	})
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (u *ReportSectionUpsertOne) ClearKeyFindings() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearKeyFindings()
	})
}

// SetRisks sets the "risks" field.
func (u *ReportSectionUpsertOne) SetRisks(v []string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetRisks(v)
	})
}

// UpdateRisks sets the "risks" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateRisks() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateRisks()
	})
}

// ClearRisks clears the value of the "risks" field.
func (u *ReportSectionUpsertOne) ClearRisks() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearRisks()
	})
}

// SetOpportunities sets the "opportunities" field.
func (u *ReportSectionUpsertOne) SetOpportunities(v []string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetOpportunities(v)
	})
}

// UpdateOpportunities sets the "opportunities" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateOpportunities() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateOpportunities()
	})
}

// ClearOpportunities clears the value of the "opportunities" field.
func (u *ReportSectionUpsertOne) ClearOpportunities() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearOpportunities()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *ReportSectionUpsertOne) SetRecommendations(v []string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateRecommendations() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *ReportSectionUpsertOne) ClearRecommendations() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearRecommendations()
	})
}

// SetDegraded sets the "degraded" field.
func (u *ReportSectionUpsertOne) SetDegraded(v bool) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetDegraded(v)
	})
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateDegraded() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateDegraded()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ReportSectionUpsertOne) SetOrderIndex(v int) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ReportSectionUpsertOne) AddOrderIndex(v int) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateOrderIndex() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ReportSectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportSectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportSectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportSectionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportSectionUpsertOne.ID is not supported by MySQL driver. Use ReportSectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportSectionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportSectionCreateBulk is the builder for creating many ReportSection entities in bulk.
type ReportSectionCreateBulk struct {
	config
	err      error
	builders []*ReportSectionCreate
	conflict []sql.ConflictOption
}

// Save creates the ReportSection entities in the database.
func (_c *ReportSectionCreateBulk) Save(ctx context.Context) ([]*ReportSection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportSection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportSectionMutation)
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
func (_c *ReportSectionCreateBulk) SaveX(ctx context.Context) []*ReportSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportSectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportSectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportSection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportSectionUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportSectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportSectionUpsertBulk {
	_c.conflict = opts
	return &ReportSectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportSectionCreateBulk) OnConflictColumns(columns ...string) *ReportSectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportSectionUpsertBulk{
		create: _c,
	}
}

// ReportSectionUpsertBulk is the builder for "upsert"-ing
// a bulk of ReportSection nodes.
type ReportSectionUpsertBulk struct {
	create *ReportSectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportSectionUpsertBulk) UpdateNewValues() *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reportsection.FieldID)
			}
			if _, exists := b.mutation.ReportID(); exists {
				s.SetIgnore(reportsection.FieldReportID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportSectionUpsertBulk) Ignore() *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportSectionUpsertBulk) DoNothing() *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportSectionCreateBulk.OnConflict
// documentation for more info.
func (u *ReportSectionUpsertBulk) Update(set func(*ReportSectionUpsert)) *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPillarID sets the "pillar_id" field.
func (u *ReportSectionUpsertBulk) SetPillarID(v string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetPillarID(v)
	})
}

// UpdatePillarID sets the "pillar_id" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdatePillarID() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdatePillarID()
	})
}

// SetTitle sets the "title" field.
func (u *ReportSectionUpsertBulk) SetTitle(v string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateTitle() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ReportSectionUpsertBulk) SetContent(v string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateContent() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateContent()
	})
}

// SetScore sets the "score" field.
func (u *ReportSectionUpsertBulk) SetScore(v float64) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ReportSectionUpsertBulk) AddScore(v float64) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateScore() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateScore()
	})
}

// SetKeyFindings sets the "key_findings" field.
func (u *ReportSectionUpsertBulk) SetKeyFindings(v []map[string]interface{}) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetKeyFindings(v)
	})
}

// UpdateKeyFindings sets the "key_findings" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateKeyFindings() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateKeyFindings()
	})
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (u *ReportSectionUpsertBulk) ClearKeyFindings() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearKeyFindings()
	})
}

// SetRisks sets the "risks" field.
func (u *ReportSectionUpsertBulk) SetRisks(v []string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetRisks(v)
	})
}

// UpdateRisks sets the "risks" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateRisks() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateRisks()
	})
}

// ClearRisks clears the value of the "risks" field.
func (u *ReportSectionUpsertBulk) ClearRisks() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearRisks()
	})
}

// SetOpportunities sets the "opportunities" field.
func (u *ReportSectionUpsertBulk) SetOpportunities(v []string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetOpportunities(v)
	})
}

// UpdateOpportunities sets the "opportunities" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateOpportunities() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateOpportunities()
	})
}

// ClearOpportunities clears the value of the "opportunities" field.
func (u *ReportSectionUpsertBulk) ClearOpportunities() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearOpportunities()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *ReportSectionUpsertBulk) SetRecommendations(v []string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateRecommendations() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *ReportSectionUpsertBulk) ClearRecommendations() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.ClearRecommendations()
	})
}

// SetDegraded sets the "degraded" field.
func (u *ReportSectionUpsertBulk) SetDegraded(v bool) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetDegraded(v)
	})
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateDegraded() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateDegraded()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ReportSectionUpsertBulk) SetOrderIndex(v int) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ReportSectionUpsertBulk) AddOrderIndex(v int) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateOrderIndex() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ReportSectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportSectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportSectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportSectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
