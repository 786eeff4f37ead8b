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
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/predicate"
)

// EvidenceCollectionUpdate is the builder for updating EvidenceCollection entities.
type EvidenceCollectionUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceCollectionMutation
}

// Where appends a list predicates to the EvidenceCollectionUpdate builder.
func (_u *EvidenceCollectionUpdate) Where(ps ...predicate.EvidenceCollection) *EvidenceCollectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvidenceCollectionUpdate) SetStatus(v evidencecollection.Status) *EvidenceCollectionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvidenceCollectionUpdate) SetNillableStatus(v *evidencecollection.Status) *EvidenceCollectionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *EvidenceCollectionUpdate) SetEvidenceCount(v int) *EvidenceCollectionUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *EvidenceCollectionUpdate) SetNillableEvidenceCount(v *int) *EvidenceCollectionUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *EvidenceCollectionUpdate) AddEvidenceCount(v int) *EvidenceCollectionUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EvidenceCollectionUpdate) SetMetadata(v map[string]interface{}) *EvidenceCollectionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EvidenceCollectionUpdate) ClearMetadata() *EvidenceCollectionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *EvidenceCollectionUpdate) SetClosedAt(v time.Time) *EvidenceCollectionUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *EvidenceCollectionUpdate) SetNillableClosedAt(v *time.Time) *EvidenceCollectionUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *EvidenceCollectionUpdate) ClearClosedAt() *EvidenceCollectionUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the Evidence entity by IDs.
func (_u *EvidenceCollectionUpdate) AddItemIDs(ids ...string) *EvidenceCollectionUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the Evidence entity.
func (_u *EvidenceCollectionUpdate) AddItems(v ...*Evidence) *EvidenceCollectionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the EvidenceCollectionMutation object of the builder.
func (_u *EvidenceCollectionUpdate) Mutation() *EvidenceCollectionMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the Evidence entity.
func (_u *EvidenceCollectionUpdate) ClearItems() *EvidenceCollectionUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to Evidence entities by IDs.
func (_u *EvidenceCollectionUpdate) RemoveItemIDs(ids ...string) *EvidenceCollectionUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to Evidence entities.
func (_u *EvidenceCollectionUpdate) RemoveItems(v ...*Evidence) *EvidenceCollectionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceCollectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceCollectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceCollectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceCollectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceCollectionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evidencecollection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvidenceCollection.status": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvidenceCollection.scan"`)
	}
	return nil
}

func (_u *EvidenceCollectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidencecollection.Table, evidencecollection.Columns, sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evidencecollection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(evidencecollection.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(evidencecollection.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(evidencecollection.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(evidencecollection.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(evidencecollection.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(evidencecollection.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidencecollection.ItemsTable,
			Columns: []string{evidencecollection.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidencecollection.ItemsTable,
			Columns: []string{evidencecollection.ItemsColumn},
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
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidencecollection.ItemsTable,
			Columns: []string{evidencecollection.ItemsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencecollection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceCollectionUpdateOne is the builder for updating a single EvidenceCollection entity.
type EvidenceCollectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceCollectionMutation
}

// SetStatus sets the "status" field.
func (_u *EvidenceCollectionUpdateOne) SetStatus(v evidencecollection.Status) *EvidenceCollectionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvidenceCollectionUpdateOne) SetNillableStatus(v *evidencecollection.Status) *EvidenceCollectionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *EvidenceCollectionUpdateOne) SetEvidenceCount(v int) *EvidenceCollectionUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *EvidenceCollectionUpdateOne) SetNillableEvidenceCount(v *int) *EvidenceCollectionUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *EvidenceCollectionUpdateOne) AddEvidenceCount(v int) *EvidenceCollectionUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EvidenceCollectionUpdateOne) SetMetadata(v map[string]interface{}) *EvidenceCollectionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EvidenceCollectionUpdateOne) ClearMetadata() *EvidenceCollectionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *EvidenceCollectionUpdateOne) SetClosedAt(v time.Time) *EvidenceCollectionUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *EvidenceCollectionUpdateOne) SetNillableClosedAt(v *time.Time) *EvidenceCollectionUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *EvidenceCollectionUpdateOne) ClearClosedAt() *EvidenceCollectionUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the Evidence entity by IDs.
func (_u *EvidenceCollectionUpdateOne) AddItemIDs(ids ...string) *EvidenceCollectionUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the Evidence entity.
func (_u *EvidenceCollectionUpdateOne) AddItems(v ...*Evidence) *EvidenceCollectionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the EvidenceCollectionMutation object of the builder.
func (_u *EvidenceCollectionUpdateOne) Mutation() *EvidenceCollectionMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the Evidence entity.
func (_u *EvidenceCollectionUpdateOne) ClearItems() *EvidenceCollectionUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to Evidence entities by IDs.
func (_u *EvidenceCollectionUpdateOne) RemoveItemIDs(ids ...string) *EvidenceCollectionUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to Evidence entities.
func (_u *EvidenceCollectionUpdateOne) RemoveItems(v ...*Evidence) *EvidenceCollectionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the EvidenceCollectionUpdate builder.
func (_u *EvidenceCollectionUpdateOne) Where(ps ...predicate.EvidenceCollection) *EvidenceCollectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceCollectionUpdateOne) Select(field string, fields ...string) *EvidenceCollectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvidenceCollection entity.
func (_u *EvidenceCollectionUpdateOne) Save(ctx context.Context) (*EvidenceCollection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceCollectionUpdateOne) SaveX(ctx context.Context) *EvidenceCollection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceCollectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceCollectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceCollectionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evidencecollection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvidenceCollection.status": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvidenceCollection.scan"`)
	}
	return nil
}

func (_u *EvidenceCollectionUpdateOne) sqlSave(ctx context.Context) (_node *EvidenceCollection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidencecollection.Table, evidencecollection.Columns, sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvidenceCollection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidencecollection.FieldID)
		for _, f := range fields {
			if !evidencecollection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidencecollection.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evidencecollection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(evidencecollection.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(evidencecollection.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(evidencecollection.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(evidencecollection.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(evidencecollection.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(evidencecollection.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidencecollection.ItemsTable,
			Columns: []string{evidencecollection.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidencecollection.ItemsTable,
			Columns: []string{evidencecollection.ItemsColumn},
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
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidencecollection.ItemsTable,
			Columns: []string{evidencecollection.ItemsColumn},
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
	_node = &EvidenceCollection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencecollection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
