// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/predicate"
	"github.com/probeworks/diligent/ent/reportsection"
)

// ReportSectionUpdate is the builder for updating ReportSection entities.
type ReportSectionUpdate struct {
	config
	hooks    []Hook
	mutation *ReportSectionMutation
}

// Where appends a list predicates to the ReportSectionUpdate builder.
func (_u *ReportSectionUpdate) Where(ps ...predicate.ReportSection) *ReportSectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPillarID sets the "pillar_id" field.
func (_u *ReportSectionUpdate) SetPillarID(v string) *ReportSectionUpdate {
	_u.mutation.SetPillarID(v)
	return _u
}

// SetNillablePillarID sets the "pillar_id" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillablePillarID(v *string) *ReportSectionUpdate {
	if v != nil {
		_u.SetPillarID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportSectionUpdate) SetTitle(v string) *ReportSectionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillableTitle(v *string) *ReportSectionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportSectionUpdate) SetContent(v string) *ReportSectionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillableContent(v *string) *ReportSectionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ReportSectionUpdate) SetScore(v float64) *ReportSectionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillableScore(v *float64) *ReportSectionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ReportSectionUpdate) AddScore(v float64) *ReportSectionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *ReportSectionUpdate) SetKeyFindings(v []map[string]interface{}) *ReportSectionUpdate {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *ReportSectionUpdate) AppendKeyFindings(v []map[string]interface{}) *ReportSectionUpdate {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *ReportSectionUpdate) ClearKeyFindings() *ReportSectionUpdate {
	_u.mutation.ClearKeyFindings()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *ReportSectionUpdate) SetRisks(v []string) *ReportSectionUpdate {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *ReportSectionUpdate) AppendRisks(v []string) *ReportSectionUpdate {
	_u.mutation.AppendRisks(v)
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *ReportSectionUpdate) ClearRisks() *ReportSectionUpdate {
	_u.mutation.ClearRisks()
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *ReportSectionUpdate) SetOpportunities(v []string) *ReportSectionUpdate {
	_u.mutation.SetOpportunities(v)
	return _u
}

// AppendOpportunities appends value to the "opportunities" field.
func (_u *ReportSectionUpdate) AppendOpportunities(v []string) *ReportSectionUpdate {
	_u.mutation.AppendOpportunities(v)
	return _u
}

// ClearOpportunities clears the value of the "opportunities" field.
func (_u *ReportSectionUpdate) ClearOpportunities() *ReportSectionUpdate {
	_u.mutation.ClearOpportunities()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ReportSectionUpdate) SetRecommendations(v []string) *ReportSectionUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *ReportSectionUpdate) AppendRecommendations(v []string) *ReportSectionUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ReportSectionUpdate) ClearRecommendations() *ReportSectionUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *ReportSectionUpdate) SetDegraded(v bool) *ReportSectionUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillableDegraded(v *bool) *ReportSectionUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ReportSectionUpdate) SetOrderIndex(v int) *ReportSectionUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillableOrderIndex(v *int) *ReportSectionUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ReportSectionUpdate) AddOrderIndex(v int) *ReportSectionUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *ReportSectionUpdate) AddCitationIDs(ids ...string) *ReportSectionUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *ReportSectionUpdate) AddCitations(v ...*Citation) *ReportSectionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the ReportSectionMutation object of the builder.
func (_u *ReportSectionUpdate) Mutation() *ReportSectionMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *ReportSectionUpdate) ClearCitations() *ReportSectionUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *ReportSectionUpdate) RemoveCitationIDs(ids ...string) *ReportSectionUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *ReportSectionUpdate) RemoveCitations(v ...*Citation) *ReportSectionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportSectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportSectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportSectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportSectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportSectionUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportSection.report"`)
	}
	return nil
}

func (_u *ReportSectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportsection.Table, reportsection.Columns, sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PillarID(); ok {
		_spec.SetField(reportsection.FieldPillarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reportsection.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reportsection.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(reportsection.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(reportsection.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(reportsection.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(reportsection.FieldKeyFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(reportsection.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldRisks, value)
		})
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(reportsection.FieldRisks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(reportsection.FieldOpportunities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpportunities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldOpportunities, value)
		})
	}
	if _u.mutation.OpportunitiesCleared() {
		_spec.ClearField(reportsection.FieldOpportunities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(reportsection.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(reportsection.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(reportsection.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(reportsection.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(reportsection.FieldOrderIndex, field.TypeInt, value)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportSectionUpdateOne is the builder for updating a single ReportSection entity.
type ReportSectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportSectionMutation
}

// SetPillarID sets the "pillar_id" field.
func (_u *ReportSectionUpdateOne) SetPillarID(v string) *ReportSectionUpdateOne {
	_u.mutation.SetPillarID(v)
	return _u
}

// SetNillablePillarID sets the "pillar_id" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillablePillarID(v *string) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetPillarID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportSectionUpdateOne) SetTitle(v string) *ReportSectionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillableTitle(v *string) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportSectionUpdateOne) SetContent(v string) *ReportSectionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillableContent(v *string) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ReportSectionUpdateOne) SetScore(v float64) *ReportSectionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillableScore(v *float64) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ReportSectionUpdateOne) AddScore(v float64) *ReportSectionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *ReportSectionUpdateOne) SetKeyFindings(v []map[string]interface{}) *ReportSectionUpdateOne {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *ReportSectionUpdateOne) AppendKeyFindings(v []map[string]interface{}) *ReportSectionUpdateOne {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *ReportSectionUpdateOne) ClearKeyFindings() *ReportSectionUpdateOne {
	_u.mutation.ClearKeyFindings()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *ReportSectionUpdateOne) SetRisks(v []string) *ReportSectionUpdateOne {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *ReportSectionUpdateOne) AppendRisks(v []string) *ReportSectionUpdateOne {
	_u.mutation.AppendRisks(v)
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *ReportSectionUpdateOne) ClearRisks() *ReportSectionUpdateOne {
	_u.mutation.ClearRisks()
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *ReportSectionUpdateOne) SetOpportunities(v []string) *ReportSectionUpdateOne {
	_u.mutation.SetOpportunities(v)
	return _u
}

// AppendOpportunities appends value to the "opportunities" field.
func (_u *ReportSectionUpdateOne) AppendOpportunities(v []string) *ReportSectionUpdateOne {
	_u.mutation.AppendOpportunities(v)
	return _u
}

// ClearOpportunities clears the value of the "opportunities" field.
func (_u *ReportSectionUpdateOne) ClearOpportunities() *ReportSectionUpdateOne {
	_u.mutation.ClearOpportunities()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ReportSectionUpdateOne) SetRecommendations(v []string) *ReportSectionUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *ReportSectionUpdateOne) AppendRecommendations(v []string) *ReportSectionUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ReportSectionUpdateOne) ClearRecommendations() *ReportSectionUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *ReportSectionUpdateOne) SetDegraded(v bool) *ReportSectionUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillableDegraded(v *bool) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ReportSectionUpdateOne) SetOrderIndex(v int) *ReportSectionUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillableOrderIndex(v *int) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ReportSectionUpdateOne) AddOrderIndex(v int) *ReportSectionUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *ReportSectionUpdateOne) AddCitationIDs(ids ...string) *ReportSectionUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *ReportSectionUpdateOne) AddCitations(v ...*Citation) *ReportSectionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the ReportSectionMutation object of the builder.
func (_u *ReportSectionUpdateOne) Mutation() *ReportSectionMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *ReportSectionUpdateOne) ClearCitations() *ReportSectionUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *ReportSectionUpdateOne) RemoveCitationIDs(ids ...string) *ReportSectionUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *ReportSectionUpdateOne) RemoveCitations(v ...*Citation) *ReportSectionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the ReportSectionUpdate builder.
func (_u *ReportSectionUpdateOne) Where(ps ...predicate.ReportSection) *ReportSectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportSectionUpdateOne) Select(field string, fields ...string) *ReportSectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportSection entity.
func (_u *ReportSectionUpdateOne) Save(ctx context.Context) (*ReportSection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportSectionUpdateOne) SaveX(ctx context.Context) *ReportSection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportSectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportSectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportSectionUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportSection.report"`)
	}
	return nil
}

func (_u *ReportSectionUpdateOne) sqlSave(ctx context.Context) (_node *ReportSection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportsection.Table, reportsection.Columns, sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportSection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportsection.FieldID)
		for _, f := range fields {
			if !reportsection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportsection.FieldID {
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
	if value, ok := _u.mutation.PillarID(); ok {
		_spec.SetField(reportsection.FieldPillarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reportsection.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reportsection.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(reportsection.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(reportsection.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(reportsection.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(reportsection.FieldKeyFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(reportsection.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldRisks, value)
		})
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(reportsection.FieldRisks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(reportsection.FieldOpportunities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpportunities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldOpportunities, value)
		})
	}
	if _u.mutation.OpportunitiesCleared() {
		_spec.ClearField(reportsection.FieldOpportunities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(reportsection.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(reportsection.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(reportsection.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(reportsection.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(reportsection.FieldOrderIndex, field.TypeInt, value)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReportSection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
