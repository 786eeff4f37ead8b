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
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
)

// CitationCreate is the builder for creating a Citation entity.
type CitationCreate struct {
	config
	mutation *CitationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReportID sets the "report_id" field.
func (_c *CitationCreate) SetReportID(v string) *CitationCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *CitationCreate) SetSectionID(v string) *CitationCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetCitationNumber sets the "citation_number" field.
func (_c *CitationCreate) SetCitationNumber(v int) *CitationCreate {
	_c.mutation.SetCitationNumber(v)
	return _c
}

// SetClaim sets the "claim" field.
func (_c *CitationCreate) SetClaim(v string) *CitationCreate {
	_c.mutation.SetClaim(v)
	return _c
}

// SetEvidenceID sets the "evidence_id" field.
func (_c *CitationCreate) SetEvidenceID(v string) *CitationCreate {
	_c.mutation.SetEvidenceID(v)
	return _c
}

// SetQuote sets the "quote" field.
func (_c *CitationCreate) SetQuote(v string) *CitationCreate {
	_c.mutation.SetQuote(v)
	return _c
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_c *CitationCreate) SetNillableQuote(v *string) *CitationCreate {
	if v != nil {
		_c.SetQuote(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *CitationCreate) SetContext(v string) *CitationCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *CitationCreate) SetNillableContext(v *string) *CitationCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CitationCreate) SetConfidence(v float64) *CitationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CitationCreate) SetNillableConfidence(v *float64) *CitationCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetWeakAnchor sets the "weak_anchor" field.
func (_c *CitationCreate) SetWeakAnchor(v bool) *CitationCreate {
	_c.mutation.SetWeakAnchor(v)
	return _c
}

// SetNillableWeakAnchor sets the "weak_anchor" field if the given value is not nil.
func (_c *CitationCreate) SetNillableWeakAnchor(v *bool) *CitationCreate {
	if v != nil {
		_c.SetWeakAnchor(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CitationCreate) SetID(v string) *CitationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *CitationCreate) SetReport(v *Report) *CitationCreate {
	return _c.SetReportID(v.ID)
}

// SetSection sets the "section" edge to the ReportSection entity.
func (_c *CitationCreate) SetSection(v *ReportSection) *CitationCreate {
	return _c.SetSectionID(v.ID)
}

// SetEvidence sets the "evidence" edge to the Evidence entity.
func (_c *CitationCreate) SetEvidence(v *Evidence) *CitationCreate {
	return _c.SetEvidenceID(v.ID)
}

// Mutation returns the CitationMutation object of the builder.
func (_c *CitationCreate) Mutation() *CitationMutation {
	return _c.mutation
}

// Save creates the Citation in the database.
func (_c *CitationCreate) Save(ctx context.Context) (*Citation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CitationCreate) SaveX(ctx context.Context) *Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CitationCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := citation.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.WeakAnchor(); !ok {
		v := citation.DefaultWeakAnchor
		_c.mutation.SetWeakAnchor(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CitationCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Citation.report_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "Citation.section_id"`)}
	}
	if _, ok := _c.mutation.CitationNumber(); !ok {
		return &ValidationError{Name: "citation_number", err: errors.New(`ent: missing required field "Citation.citation_number"`)}
	}
	if _, ok := _c.mutation.Claim(); !ok {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required field "Citation.claim"`)}
	}
	if _, ok := _c.mutation.EvidenceID(); !ok {
		return &ValidationError{Name: "evidence_id", err: errors.New(`ent: missing required field "Citation.evidence_id"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Citation.confidence"`)}
	}
	if _, ok := _c.mutation.WeakAnchor(); !ok {
		return &ValidationError{Name: "weak_anchor", err: errors.New(`ent: missing required field "Citation.weak_anchor"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Citation.report"`)}
	}
	if len(_c.mutation.SectionIDs()) == 0 {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required edge "Citation.section"`)}
	}
	if len(_c.mutation.EvidenceIDs()) == 0 {
		return &ValidationError{Name: "evidence", err: errors.New(`ent: missing required edge "Citation.evidence"`)}
	}
	return nil
}

func (_c *CitationCreate) sqlSave(ctx context.Context) (*Citation, error) {
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
			return nil, fmt.Errorf("unexpected Citation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CitationCreate) createSpec() (*Citation, *sqlgraph.CreateSpec) {
	var (
		_node = &Citation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(citation.Table, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CitationNumber(); ok {
		_spec.SetField(citation.FieldCitationNumber, field.TypeInt, value)
		_node.CitationNumber = value
	}
	if value, ok := _c.mutation.Claim(); ok {
		_spec.SetField(citation.FieldClaim, field.TypeString, value)
		_node.Claim = value
	}
	if value, ok := _c.mutation.Quote(); ok {
		_spec.SetField(citation.FieldQuote, field.TypeString, value)
		_node.Quote = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(citation.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(citation.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.WeakAnchor(); ok {
		_spec.SetField(citation.FieldWeakAnchor, field.TypeBool, value)
		_node.WeakAnchor = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   citation.ReportTable,
			Columns: []string{citation.ReportColumn},
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
	if nodes := _c.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   citation.SectionTable,
			Columns: []string{citation.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SectionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   citation.EvidenceTable,
			Columns: []string{citation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EvidenceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Citation.Create().
//		SetReportID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CitationUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *CitationCreate) OnConflict(opts ...sql.ConflictOption) *CitationUpsertOne {
	_c.conflict = opts
	return &CitationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Citation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CitationCreate) OnConflictColumns(columns ...string) *CitationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CitationUpsertOne{
		create: _c,
	}
}

type (
	// CitationUpsertOne is the builder for "upsert"-ing
	//  one Citation node.
	CitationUpsertOne struct {
		create *CitationCreate
	}

	// CitationUpsert is the "OnConflict" setter.
	CitationUpsert struct {
		*sql.UpdateSet
	}
)

// SetCitationNumber sets the "citation_number" field.
func (u *CitationUpsert) SetCitationNumber(v int) *CitationUpsert {
	u.Set(citation.FieldCitationNumber, v)
	return u
}

// UpdateCitationNumber sets the "citation_number" field to the value that was provided on create.
func (u *CitationUpsert) UpdateCitationNumber() *CitationUpsert {
	u.SetExcluded(citation.FieldCitationNumber)
	return u
}

// AddCitationNumber adds v to the "citation_number" field.
func (u *CitationUpsert) AddCitationNumber(v int) *CitationUpsert {
	u.Add(citation.FieldCitationNumber, v)
	return u
}

// SetClaim sets the "claim" field.
func (u *CitationUpsert) SetClaim(v string) *CitationUpsert {
	u.Set(citation.FieldClaim, v)
	return u
}

// UpdateClaim sets the "claim" field to the value that was provided on create.
func (u *CitationUpsert) UpdateClaim() *CitationUpsert {
	u.SetExcluded(citation.FieldClaim)
	return u
}

// SetQuote sets the "quote" field.
func (u *CitationUpsert) SetQuote(v string) *CitationUpsert {
	u.Set(citation.FieldQuote, v)
	return u
}

// UpdateQuote sets the "quote" field to the value that was provided on create.
func (u *CitationUpsert) UpdateQuote() *CitationUpsert {
	u.SetExcluded(citation.FieldQuote)
	return u
}

// ClearQuote clears the value of the "quote" field.
func (u *CitationUpsert) ClearQuote() *CitationUpsert {
	u.SetNull(citation.FieldQuote)
	return u
}

// SetContext sets the "context" field.
func (u *CitationUpsert) SetContext(v string) *CitationUpsert {
	u.Set(citation.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *CitationUpsert) UpdateContext() *CitationUpsert {
	u.SetExcluded(citation.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *CitationUpsert) ClearContext() *CitationUpsert {
	u.SetNull(citation.FieldContext)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *CitationUpsert) SetConfidence(v float64) *CitationUpsert {
	u.Set(citation.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CitationUpsert) UpdateConfidence() *CitationUpsert {
	u.SetExcluded(citation.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *CitationUpsert) AddConfidence(v float64) *CitationUpsert {
	u.Add(citation.FieldConfidence, v)
	return u
}

// SetWeakAnchor sets the "weak_anchor" field.
func (u *CitationUpsert) SetWeakAnchor(v bool) *CitationUpsert {
	u.Set(citation.FieldWeakAnchor, v)
	return u
}

// UpdateWeakAnchor sets the "weak_anchor" field to the value that was provided on create.
func (u *CitationUpsert) UpdateWeakAnchor() *CitationUpsert {
	u.SetExcluded(citation.FieldWeakAnchor)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Citation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(citation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CitationUpsertOne) UpdateNewValues() *CitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(citation.FieldID)
		}
		if _, exists := u.create.mutation.ReportID(); exists {
			s.SetIgnore(citation.FieldReportID)
		}
		if _, exists := u.create.mutation.SectionID(); exists {
			s.SetIgnore(citation.FieldSectionID)
		}
		if _, exists := u.create.mutation.EvidenceID(); exists {
			s.SetIgnore(citation.FieldEvidenceID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Citation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CitationUpsertOne) Ignore() *CitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CitationUpsertOne) DoNothing() *CitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CitationCreate.OnConflict
// documentation for more info.
func (u *CitationUpsertOne) Update(set func(*CitationUpsert)) *CitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CitationUpsert{UpdateSet: update})
	}))
	return u
}

// SetCitationNumber sets the "citation_number" field.
func (u *CitationUpsertOne) SetCitationNumber(v int) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.SetCitationNumber(v)
	})
}

// AddCitationNumber adds v to the "citation_number" field.
func (u *CitationUpsertOne) AddCitationNumber(v int) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.AddCitationNumber(v)
	})
}

// UpdateCitationNumber sets the "citation_number" field to the value that was provided on create.
func (u *CitationUpsertOne) UpdateCitationNumber() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateCitationNumber()
	})
}

// SetClaim sets the "claim" field.
func (u *CitationUpsertOne) SetClaim(v string) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.SetClaim(v)
	})
}

// UpdateClaim sets the "claim" field to the value that was provided on create.
func (u *CitationUpsertOne) UpdateClaim() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateClaim()
	})
}

// SetQuote sets the "quote" field.
func (u *CitationUpsertOne) SetQuote(v string) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.SetQuote(v)
	})
}

// UpdateQuote sets the "quote" field to the value that was provided on create.
func (u *CitationUpsertOne) UpdateQuote() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateQuote()
	})
}

// ClearQuote clears the value of the "quote" field.
func (u *CitationUpsertOne) ClearQuote() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.ClearQuote()
	})
}

// SetContext sets the "context" field.
func (u *CitationUpsertOne) SetContext(v string) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *CitationUpsertOne) UpdateContext() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *CitationUpsertOne) ClearContext() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.ClearContext()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CitationUpsertOne) SetConfidence(v float64) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CitationUpsertOne) AddConfidence(v float64) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CitationUpsertOne) UpdateConfidence() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateConfidence()
	})
}

// SetWeakAnchor sets the "weak_anchor" field.
func (u *CitationUpsertOne) SetWeakAnchor(v bool) *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.SetWeakAnchor(v)
	})
}

// UpdateWeakAnchor sets the "weak_anchor" field to the value that was provided on create.
func (u *CitationUpsertOne) UpdateWeakAnchor() *CitationUpsertOne {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateWeakAnchor()
	})
}

// Exec executes the query.
func (u *CitationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CitationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CitationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CitationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CitationUpsertOne.ID is not supported by MySQL driver. Use CitationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CitationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CitationCreateBulk is the builder for creating many Citation entities in bulk.
type CitationCreateBulk struct {
	config
	err      error
	builders []*CitationCreate
	conflict []sql.ConflictOption
}

// Save creates the Citation entities in the database.
func (_c *CitationCreateBulk) Save(ctx context.Context) ([]*Citation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Citation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CitationMutation)
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
func (_c *CitationCreateBulk) SaveX(ctx context.Context) []*Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Citation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CitationUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *CitationCreateBulk) OnConflict(opts ...sql.ConflictOption) *CitationUpsertBulk {
	_c.conflict = opts
	return &CitationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Citation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CitationCreateBulk) OnConflictColumns(columns ...string) *CitationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CitationUpsertBulk{
		create: _c,
	}
}

// CitationUpsertBulk is the builder for "upsert"-ing
// a bulk of Citation nodes.
type CitationUpsertBulk struct {
	create *CitationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Citation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(citation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CitationUpsertBulk) UpdateNewValues() *CitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(citation.FieldID)
			}
			if _, exists := b.mutation.ReportID(); exists {
				s.SetIgnore(citation.FieldReportID)
			}
			if _, exists := b.mutation.SectionID(); exists {
				s.SetIgnore(citation.FieldSectionID)
			}
			if _, exists := b.mutation.EvidenceID(); exists {
				s.SetIgnore(citation.FieldEvidenceID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Citation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CitationUpsertBulk) Ignore() *CitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CitationUpsertBulk) DoNothing() *CitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CitationCreateBulk.OnConflict
// documentation for more info.
func (u *CitationUpsertBulk) Update(set func(*CitationUpsert)) *CitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CitationUpsert{UpdateSet: update})
	}))
	return u
}

// SetCitationNumber sets the "citation_number" field.
func (u *CitationUpsertBulk) SetCitationNumber(v int) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.SetCitationNumber(v)
	})
}

// AddCitationNumber adds v to the "citation_number" field.
func (u *CitationUpsertBulk) AddCitationNumber(v int) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.AddCitationNumber(v)
	})
}

// UpdateCitationNumber sets the "citation_number" field to the value that was provided on create.
func (u *CitationUpsertBulk) UpdateCitationNumber() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateCitationNumber()
	})
}

// SetClaim sets the "claim" field.
func (u *CitationUpsertBulk) SetClaim(v string) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.SetClaim(v)
	})
}

// UpdateClaim sets the "claim" field to the value that was provided on create.
func (u *CitationUpsertBulk) UpdateClaim() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateClaim()
	})
}

// SetQuote sets the "quote" field.
func (u *CitationUpsertBulk) SetQuote(v string) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.SetQuote(v)
	})
}

// UpdateQuote sets the "quote" field to the value that was provided on create.
func (u *CitationUpsertBulk) UpdateQuote() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateQuote()
	})
}

// ClearQuote clears the value of the "quote" field.
func (u *CitationUpsertBulk) ClearQuote() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.ClearQuote()
	})
}

// SetContext sets the "context" field.
func (u *CitationUpsertBulk) SetContext(v string) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *CitationUpsertBulk) UpdateContext() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *CitationUpsertBulk) ClearContext() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.ClearContext()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CitationUpsertBulk) SetConfidence(v float64) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CitationUpsertBulk) AddConfidence(v float64) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CitationUpsertBulk) UpdateConfidence() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateConfidence()
	})
}

// SetWeakAnchor sets the "weak_anchor" field.
func (u *CitationUpsertBulk) SetWeakAnchor(v bool) *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.SetWeakAnchor(v)
	})
}

// UpdateWeakAnchor sets the "weak_anchor" field to the value that was provided on create.
func (u *CitationUpsertBulk) UpdateWeakAnchor() *CitationUpsertBulk {
	return u.Update(func(s *CitationUpsert) {
		s.UpdateWeakAnchor()
	})
}

// Exec executes the query.
func (u *CitationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CitationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CitationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CitationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
