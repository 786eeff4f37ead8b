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
)

// CitationUpdate is the builder for updating Citation entities.
type CitationUpdate struct {
	config
	hooks    []Hook
	mutation *CitationMutation
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdate) Where(ps ...predicate.Citation) *CitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCitationNumber sets the "citation_number" field.
func (_u *CitationUpdate) SetCitationNumber(v int) *CitationUpdate {
	_u.mutation.ResetCitationNumber()
	_u.mutation.SetCitationNumber(v)
	return _u
}

// SetNillableCitationNumber sets the "citation_number" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableCitationNumber(v *int) *CitationUpdate {
	if v != nil {
		_u.SetCitationNumber(*v)
	}
	return _u
}

// AddCitationNumber adds value to the "citation_number" field.
func (_u *CitationUpdate) AddCitationNumber(v int) *CitationUpdate {
	_u.mutation.AddCitationNumber(v)
	return _u
}

// SetClaim sets the "claim" field.
func (_u *CitationUpdate) SetClaim(v string) *CitationUpdate {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableClaim(v *string) *CitationUpdate {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetQuote sets the "quote" field.
func (_u *CitationUpdate) SetQuote(v string) *CitationUpdate {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableQuote(v *string) *CitationUpdate {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// ClearQuote clears the value of the "quote" field.
func (_u *CitationUpdate) ClearQuote() *CitationUpdate {
	_u.mutation.ClearQuote()
	return _u
}

// SetContext sets the "context" field.
func (_u *CitationUpdate) SetContext(v string) *CitationUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableContext(v *string) *CitationUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CitationUpdate) ClearContext() *CitationUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CitationUpdate) SetConfidence(v float64) *CitationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableConfidence(v *float64) *CitationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CitationUpdate) AddConfidence(v float64) *CitationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWeakAnchor sets the "weak_anchor" field.
func (_u *CitationUpdate) SetWeakAnchor(v bool) *CitationUpdate {
	_u.mutation.SetWeakAnchor(v)
	return _u
}

// SetNillableWeakAnchor sets the "weak_anchor" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableWeakAnchor(v *bool) *CitationUpdate {
	if v != nil {
		_u.SetWeakAnchor(*v)
	}
	return _u
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdate) Mutation() *CitationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.report"`)
	}
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.section"`)
	}
	if _u.mutation.EvidenceCleared() && len(_u.mutation.EvidenceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.evidence"`)
	}
	return nil
}

func (_u *CitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CitationNumber(); ok {
		_spec.SetField(citation.FieldCitationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationNumber(); ok {
		_spec.AddField(citation.FieldCitationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Claim(); ok {
		_spec.SetField(citation.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(citation.FieldQuote, field.TypeString, value)
	}
	if _u.mutation.QuoteCleared() {
		_spec.ClearField(citation.FieldQuote, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(citation.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(citation.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(citation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(citation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakAnchor(); ok {
		_spec.SetField(citation.FieldWeakAnchor, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CitationUpdateOne is the builder for updating a single Citation entity.
type CitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CitationMutation
}

// SetCitationNumber sets the "citation_number" field.
func (_u *CitationUpdateOne) SetCitationNumber(v int) *CitationUpdateOne {
	_u.mutation.ResetCitationNumber()
	_u.mutation.SetCitationNumber(v)
	return _u
}

// SetNillableCitationNumber sets the "citation_number" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableCitationNumber(v *int) *CitationUpdateOne {
	if v != nil {
		_u.SetCitationNumber(*v)
	}
	return _u
}

// AddCitationNumber adds value to the "citation_number" field.
func (_u *CitationUpdateOne) AddCitationNumber(v int) *CitationUpdateOne {
	_u.mutation.AddCitationNumber(v)
	return _u
}

// SetClaim sets the "claim" field.
func (_u *CitationUpdateOne) SetClaim(v string) *CitationUpdateOne {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableClaim(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetQuote sets the "quote" field.
func (_u *CitationUpdateOne) SetQuote(v string) *CitationUpdateOne {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableQuote(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// ClearQuote clears the value of the "quote" field.
func (_u *CitationUpdateOne) ClearQuote() *CitationUpdateOne {
	_u.mutation.ClearQuote()
	return _u
}

// SetContext sets the "context" field.
func (_u *CitationUpdateOne) SetContext(v string) *CitationUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableContext(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *CitationUpdateOne) ClearContext() *CitationUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CitationUpdateOne) SetConfidence(v float64) *CitationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableConfidence(v *float64) *CitationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CitationUpdateOne) AddConfidence(v float64) *CitationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWeakAnchor sets the "weak_anchor" field.
func (_u *CitationUpdateOne) SetWeakAnchor(v bool) *CitationUpdateOne {
	_u.mutation.SetWeakAnchor(v)
	return _u
}

// SetNillableWeakAnchor sets the "weak_anchor" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableWeakAnchor(v *bool) *CitationUpdateOne {
	if v != nil {
		_u.SetWeakAnchor(*v)
	}
	return _u
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdateOne) Mutation() *CitationMutation {
	return _u.mutation
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdateOne) Where(ps ...predicate.Citation) *CitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CitationUpdateOne) Select(field string, fields ...string) *CitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Citation entity.
func (_u *CitationUpdateOne) Save(ctx context.Context) (*Citation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdateOne) SaveX(ctx context.Context) *Citation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.report"`)
	}
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.section"`)
	}
	if _u.mutation.EvidenceCleared() && len(_u.mutation.EvidenceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.evidence"`)
	}
	return nil
}

func (_u *CitationUpdateOne) sqlSave(ctx context.Context) (_node *Citation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Citation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, citation.FieldID)
		for _, f := range fields {
			if !citation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != citation.FieldID {
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
	if value, ok := _u.mutation.CitationNumber(); ok {
		_spec.SetField(citation.FieldCitationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationNumber(); ok {
		_spec.AddField(citation.FieldCitationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Claim(); ok {
		_spec.SetField(citation.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(citation.FieldQuote, field.TypeString, value)
	}
	if _u.mutation.QuoteCleared() {
		_spec.ClearField(citation.FieldQuote, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(citation.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(citation.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(citation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(citation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakAnchor(); ok {
		_spec.SetField(citation.FieldWeakAnchor, field.TypeBool, value)
	}
	_node = &Citation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
