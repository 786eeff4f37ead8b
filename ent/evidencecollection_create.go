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
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/scanrequest"
)

// EvidenceCollectionCreate is the builder for creating a EvidenceCollection entity.
type EvidenceCollectionCreate struct {
	config
	mutation *EvidenceCollectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScanID sets the "scan_id" field.
func (_c *EvidenceCollectionCreate) SetScanID(v string) *EvidenceCollectionCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EvidenceCollectionCreate) SetStatus(v evidencecollection.Status) *EvidenceCollectionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EvidenceCollectionCreate) SetNillableStatus(v *evidencecollection.Status) *EvidenceCollectionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *EvidenceCollectionCreate) SetEvidenceCount(v int) *EvidenceCollectionCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *EvidenceCollectionCreate) SetNillableEvidenceCount(v *int) *EvidenceCollectionCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EvidenceCollectionCreate) SetMetadata(v map[string]interface{}) *EvidenceCollectionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceCollectionCreate) SetCreatedAt(v time.Time) *EvidenceCollectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceCollectionCreate) SetNillableCreatedAt(v *time.Time) *EvidenceCollectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *EvidenceCollectionCreate) SetClosedAt(v time.Time) *EvidenceCollectionCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *EvidenceCollectionCreate) SetNillableClosedAt(v *time.Time) *EvidenceCollectionCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCollectionCreate) SetID(v string) *EvidenceCollectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetScan sets the "scan" edge to the ScanRequest entity.
func (_c *EvidenceCollectionCreate) SetScan(v *ScanRequest) *EvidenceCollectionCreate {
	return _c.SetScanID(v.ID)
}

// AddItemIDs adds the "items" edge to the Evidence entity by IDs.
func (_c *EvidenceCollectionCreate) AddItemIDs(ids ...string) *EvidenceCollectionCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the Evidence entity.
func (_c *EvidenceCollectionCreate) AddItems(v ...*Evidence) *EvidenceCollectionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the EvidenceCollectionMutation object of the builder.
func (_c *EvidenceCollectionCreate) Mutation() *EvidenceCollectionMutation {
	return _c.mutation
}

// Save creates the EvidenceCollection in the database.
func (_c *EvidenceCollectionCreate) Save(ctx context.Context) (*EvidenceCollection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCollectionCreate) SaveX(ctx context.Context) *EvidenceCollection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCollectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCollectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCollectionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := evidencecollection.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := evidencecollection.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidencecollection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCollectionCreate) check() error {
	if _, ok := _c.mutation.ScanID(); !ok {
		return &ValidationError{Name: "scan_id", err: errors.New(`ent: missing required field "EvidenceCollection.scan_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EvidenceCollection.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := evidencecollection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvidenceCollection.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "EvidenceCollection.evidence_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvidenceCollection.created_at"`)}
	}
	if len(_c.mutation.ScanIDs()) == 0 {
		return &ValidationError{Name: "scan", err: errors.New(`ent: missing required edge "EvidenceCollection.scan"`)}
	}
	return nil
}

func (_c *EvidenceCollectionCreate) sqlSave(ctx context.Context) (*EvidenceCollection, error) {
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
			return nil, fmt.Errorf("unexpected EvidenceCollection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceCollectionCreate) createSpec() (*EvidenceCollection, *sqlgraph.CreateSpec) {
	var (
		_node = &EvidenceCollection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidencecollection.Table, sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(evidencecollection.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(evidencecollection.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(evidencecollection.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidencecollection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(evidencecollection.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if nodes := _c.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evidencecollection.ScanTable,
			Columns: []string{evidencecollection.ScanColumn},
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
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvidenceCollection.Create().
//		SetScanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceCollectionUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCollectionCreate) OnConflict(opts ...sql.ConflictOption) *EvidenceCollectionUpsertOne {
	_c.conflict = opts
	return &EvidenceCollectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvidenceCollection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCollectionCreate) OnConflictColumns(columns ...string) *EvidenceCollectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceCollectionUpsertOne{
		create: _c,
	}
}

type (
	// EvidenceCollectionUpsertOne is the builder for "upsert"-ing
	//  one EvidenceCollection node.
	EvidenceCollectionUpsertOne struct {
		create *EvidenceCollectionCreate
	}

	// EvidenceCollectionUpsert is the "OnConflict" setter.
	EvidenceCollectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *EvidenceCollectionUpsert) SetStatus(v evidencecollection.Status) *EvidenceCollectionUpsert {
	u.Set(evidencecollection.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvidenceCollectionUpsert) UpdateStatus() *EvidenceCollectionUpsert {
	u.SetExcluded(evidencecollection.FieldStatus)
	return u
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *EvidenceCollectionUpsert) SetEvidenceCount(v int) *EvidenceCollectionUpsert {
	u.Set(evidencecollection.FieldEvidenceCount, v)
	return u
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *EvidenceCollectionUpsert) UpdateEvidenceCount() *EvidenceCollectionUpsert {
	u.SetExcluded(evidencecollection.FieldEvidenceCount)
	return u
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *EvidenceCollectionUpsert) AddEvidenceCount(v int) *EvidenceCollectionUpsert {
	u.Add(evidencecollection.FieldEvidenceCount, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *EvidenceCollectionUpsert) SetMetadata(v map[string]interface{}) *EvidenceCollectionUpsert {
	u.Set(evidencecollection.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EvidenceCollectionUpsert) UpdateMetadata() *EvidenceCollectionUpsert {
	u.SetExcluded(evidencecollection.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EvidenceCollectionUpsert) ClearMetadata() *EvidenceCollectionUpsert {
	u.SetNull(evidencecollection.FieldMetadata)
	return u
}

// SetClosedAt sets the "closed_at" field.
func (u *EvidenceCollectionUpsert) SetClosedAt(v time.Time) *EvidenceCollectionUpsert {
	u.Set(evidencecollection.FieldClosedAt, v)
	return u
}

// UpdateClosedAt sets the "closed_at" field to the value that was provided on create.
func (u *EvidenceCollectionUpsert) UpdateClosedAt() *EvidenceCollectionUpsert {
	u.SetExcluded(evidencecollection.FieldClosedAt)
	return u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (u *EvidenceCollectionUpsert) ClearClosedAt() *EvidenceCollectionUpsert {
	u.SetNull(evidencecollection.FieldClosedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvidenceCollection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidencecollection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceCollectionUpsertOne) UpdateNewValues() *EvidenceCollectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evidencecollection.FieldID)
		}
		if _, exists := u.create.mutation.ScanID(); exists {
			s.SetIgnore(evidencecollection.FieldScanID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evidencecollection.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvidenceCollection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvidenceCollectionUpsertOne) Ignore() *EvidenceCollectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceCollectionUpsertOne) DoNothing() *EvidenceCollectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCollectionCreate.OnConflict
// documentation for more info.
func (u *EvidenceCollectionUpsertOne) Update(set func(*EvidenceCollectionUpsert)) *EvidenceCollectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceCollectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EvidenceCollectionUpsertOne) SetStatus(v evidencecollection.Status) *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertOne) UpdateStatus() *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateStatus()
	})
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *EvidenceCollectionUpsertOne) SetEvidenceCount(v int) *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetEvidenceCount(v)
	})
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *EvidenceCollectionUpsertOne) AddEvidenceCount(v int) *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.AddEvidenceCount(v)
	})
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertOne) UpdateEvidenceCount() *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateEvidenceCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EvidenceCollectionUpsertOne) SetMetadata(v map[string]interface{}) *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertOne) UpdateMetadata() *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EvidenceCollectionUpsertOne) ClearMetadata() *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.ClearMetadata()
	})
}

// SetClosedAt sets the "closed_at" field.
func (u *EvidenceCollectionUpsertOne) SetClosedAt(v time.Time) *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetClosedAt(v)
	})
}

// UpdateClosedAt sets the "closed_at" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertOne) UpdateClosedAt() *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateClosedAt()
	})
}

// ClearClosedAt clears the value of the "closed_at" field.
func (u *EvidenceCollectionUpsertOne) ClearClosedAt() *EvidenceCollectionUpsertOne {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.ClearClosedAt()
	})
}

// Exec executes the query.
func (u *EvidenceCollectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCollectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceCollectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvidenceCollectionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvidenceCollectionUpsertOne.ID is not supported by MySQL driver. Use EvidenceCollectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvidenceCollectionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvidenceCollectionCreateBulk is the builder for creating many EvidenceCollection entities in bulk.
type EvidenceCollectionCreateBulk struct {
	config
	err      error
	builders []*EvidenceCollectionCreate
	conflict []sql.ConflictOption
}

// Save creates the EvidenceCollection entities in the database.
func (_c *EvidenceCollectionCreateBulk) Save(ctx context.Context) ([]*EvidenceCollection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvidenceCollection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceCollectionMutation)
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
func (_c *EvidenceCollectionCreateBulk) SaveX(ctx context.Context) []*EvidenceCollection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCollectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCollectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvidenceCollection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceCollectionUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCollectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvidenceCollectionUpsertBulk {
	_c.conflict = opts
	return &EvidenceCollectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvidenceCollection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCollectionCreateBulk) OnConflictColumns(columns ...string) *EvidenceCollectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceCollectionUpsertBulk{
		create: _c,
	}
}

// EvidenceCollectionUpsertBulk is the builder for "upsert"-ing
// a bulk of EvidenceCollection nodes.
type EvidenceCollectionUpsertBulk struct {
	create *EvidenceCollectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvidenceCollection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidencecollection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceCollectionUpsertBulk) UpdateNewValues() *EvidenceCollectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evidencecollection.FieldID)
			}
			if _, exists := b.mutation.ScanID(); exists {
				s.SetIgnore(evidencecollection.FieldScanID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evidencecollection.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvidenceCollection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvidenceCollectionUpsertBulk) Ignore() *EvidenceCollectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceCollectionUpsertBulk) DoNothing() *EvidenceCollectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCollectionCreateBulk.OnConflict
// documentation for more info.
func (u *EvidenceCollectionUpsertBulk) Update(set func(*EvidenceCollectionUpsert)) *EvidenceCollectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceCollectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EvidenceCollectionUpsertBulk) SetStatus(v evidencecollection.Status) *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertBulk) UpdateStatus() *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateStatus()
	})
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *EvidenceCollectionUpsertBulk) SetEvidenceCount(v int) *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetEvidenceCount(v)
	})
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *EvidenceCollectionUpsertBulk) AddEvidenceCount(v int) *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.AddEvidenceCount(v)
	})
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertBulk) UpdateEvidenceCount() *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateEvidenceCount()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EvidenceCollectionUpsertBulk) SetMetadata(v map[string]interface{}) *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertBulk) UpdateMetadata() *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EvidenceCollectionUpsertBulk) ClearMetadata() *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.ClearMetadata()
	})
}

// SetClosedAt sets the "closed_at" field.
func (u *EvidenceCollectionUpsertBulk) SetClosedAt(v time.Time) *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.SetClosedAt(v)
	})
}

// UpdateClosedAt sets the "closed_at" field to the value that was provided on create.
func (u *EvidenceCollectionUpsertBulk) UpdateClosedAt() *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.UpdateClosedAt()
	})
}

// ClearClosedAt clears the value of the "closed_at" field.
func (u *EvidenceCollectionUpsertBulk) ClearClosedAt() *EvidenceCollectionUpsertBulk {
	return u.Update(func(s *EvidenceCollectionUpsert) {
		s.ClearClosedAt()
	})
}

// Exec executes the query.
func (u *EvidenceCollectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvidenceCollectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCollectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceCollectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
