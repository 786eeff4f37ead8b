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
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/stageresult"
)

// StageResultCreate is the builder for creating a StageResult entity.
type StageResultCreate struct {
	config
	mutation *StageResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScanID sets the "scan_id" field.
func (_c *StageResultCreate) SetScanID(v string) *StageResultCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageResultCreate) SetStageName(v string) *StageResultCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *StageResultCreate) SetStageIndex(v int) *StageResultCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageResultCreate) SetStatus(v stageresult.Status) *StageResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRetries sets the "retries" field.
func (_c *StageResultCreate) SetRetries(v int) *StageResultCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableRetries(v *int) *StageResultCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StageResultCreate) SetDurationMs(v int) *StageResultCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableDurationMs(v *int) *StageResultCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *StageResultCreate) SetEvidenceCount(v int) *StageResultCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableEvidenceCount(v *int) *StageResultCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageResultCreate) SetErrorMessage(v string) *StageResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableErrorMessage(v *string) *StageResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageResultCreate) SetCreatedAt(v time.Time) *StageResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableCreatedAt(v *time.Time) *StageResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageResultCreate) SetID(v string) *StageResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetScan sets the "scan" edge to the ScanRequest entity.
func (_c *StageResultCreate) SetScan(v *ScanRequest) *StageResultCreate {
	return _c.SetScanID(v.ID)
}

// Mutation returns the StageResultMutation object of the builder.
func (_c *StageResultCreate) Mutation() *StageResultMutation {
	return _c.mutation
}

// Save creates the StageResult in the database.
func (_c *StageResultCreate) Save(ctx context.Context) (*StageResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageResultCreate) SaveX(ctx context.Context) *StageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageResultCreate) defaults() {
	if _, ok := _c.mutation.Retries(); !ok {
		v := stageresult.DefaultRetries
		_c.mutation.SetRetries(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := stageresult.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := stageresult.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageResultCreate) check() error {
	if _, ok := _c.mutation.ScanID(); !ok {
		return &ValidationError{Name: "scan_id", err: errors.New(`ent: missing required field "StageResult.scan_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "StageResult.stage_name"`)}
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "StageResult.stage_index"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stageresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "StageResult.retries"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "StageResult.duration_ms"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "StageResult.evidence_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageResult.created_at"`)}
	}
	if len(_c.mutation.ScanIDs()) == 0 {
		return &ValidationError{Name: "scan", err: errors.New(`ent: missing required edge "StageResult.scan"`)}
	}
	return nil
}

func (_c *StageResultCreate) sqlSave(ctx context.Context) (*StageResult, error) {
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
			return nil, fmt.Errorf("unexpected StageResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageResultCreate) createSpec() (*StageResult, *sqlgraph.CreateSpec) {
	var (
		_node = &StageResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageresult.Table, sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stageresult.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(stageresult.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stageresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(stageresult.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stageresult.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(stageresult.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stageresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stageresult.ScanTable,
			Columns: []string{stageresult.ScanColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageResult.Create().
//		SetScanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageResultUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageResultCreate) OnConflict(opts ...sql.ConflictOption) *StageResultUpsertOne {
	_c.conflict = opts
	return &StageResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageResultCreate) OnConflictColumns(columns ...string) *StageResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageResultUpsertOne{
		create: _c,
	}
}

type (
	// StageResultUpsertOne is the builder for "upsert"-ing
	//  one StageResult node.
	StageResultUpsertOne struct {
		create *StageResultCreate
	}

	// StageResultUpsert is the "OnConflict" setter.
	StageResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetStageName sets the "stage_name" field.
func (u *StageResultUpsert) SetStageName(v string) *StageResultUpsert {
	u.Set(stageresult.FieldStageName, v)
	return u
}

// UpdateStageName sets the "stage_name" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateStageName() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldStageName)
	return u
}

// SetStageIndex sets the "stage_index" field.
func (u *StageResultUpsert) SetStageIndex(v int) *StageResultUpsert {
	u.Set(stageresult.FieldStageIndex, v)
	return u
}

// UpdateStageIndex sets the "stage_index" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateStageIndex() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldStageIndex)
	return u
}

// AddStageIndex adds v to the "stage_index" field.
func (u *StageResultUpsert) AddStageIndex(v int) *StageResultUpsert {
	u.Add(stageresult.FieldStageIndex, v)
	return u
}

// SetStatus sets the "status" field.
func (u *StageResultUpsert) SetStatus(v stageresult.Status) *StageResultUpsert {
	u.Set(stageresult.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateStatus() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldStatus)
	return u
}

// SetRetries sets the "retries" field.
func (u *StageResultUpsert) SetRetries(v int) *StageResultUpsert {
	u.Set(stageresult.FieldRetries, v)
	return u
}

// UpdateRetries sets the "retries" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateRetries() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldRetries)
	return u
}

// AddRetries adds v to the "retries" field.
func (u *StageResultUpsert) AddRetries(v int) *StageResultUpsert {
	u.Add(stageresult.FieldRetries, v)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageResultUpsert) SetDurationMs(v int) *StageResultUpsert {
	u.Set(stageresult.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateDurationMs() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageResultUpsert) AddDurationMs(v int) *StageResultUpsert {
	u.Add(stageresult.FieldDurationMs, v)
	return u
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *StageResultUpsert) SetEvidenceCount(v int) *StageResultUpsert {
	u.Set(stageresult.FieldEvidenceCount, v)
	return u
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateEvidenceCount() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldEvidenceCount)
	return u
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *StageResultUpsert) AddEvidenceCount(v int) *StageResultUpsert {
	u.Add(stageresult.FieldEvidenceCount, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StageResultUpsert) SetErrorMessage(v string) *StageResultUpsert {
	u.Set(stageresult.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateErrorMessage() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageResultUpsert) ClearErrorMessage() *StageResultUpsert {
	u.SetNull(stageresult.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageResultUpsertOne) UpdateNewValues() *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stageresult.FieldID)
		}
		if _, exists := u.create.mutation.ScanID(); exists {
			s.SetIgnore(stageresult.FieldScanID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stageresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageResultUpsertOne) Ignore() *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageResultUpsertOne) DoNothing() *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageResultCreate.OnConflict
// documentation for more info.
func (u *StageResultUpsertOne) Update(set func(*StageResultUpsert)) *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetStageName sets the "stage_name" field.
func (u *StageResultUpsertOne) SetStageName(v string) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStageName(v)
	})
}

// UpdateStageName sets the "stage_name" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateStageName() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStageName()
	})
}

// SetStageIndex sets the "stage_index" field.
func (u *StageResultUpsertOne) SetStageIndex(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStageIndex(v)
	})
}

// AddStageIndex adds v to the "stage_index" field.
func (u *StageResultUpsertOne) AddStageIndex(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.AddStageIndex(v)
	})
}

// UpdateStageIndex sets the "stage_index" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateStageIndex() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStageIndex()
	})
}

// SetStatus sets the "status" field.
func (u *StageResultUpsertOne) SetStatus(v stageresult.Status) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateStatus() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStatus()
	})
}

// SetRetries sets the "retries" field.
func (u *StageResultUpsertOne) SetRetries(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetRetries(v)
	})
}

// AddRetries adds v to the "retries" field.
func (u *StageResultUpsertOne) AddRetries(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.AddRetries(v)
	})
}

// UpdateRetries sets the "retries" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateRetries() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateRetries()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageResultUpsertOne) SetDurationMs(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageResultUpsertOne) AddDurationMs(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateDurationMs() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateDurationMs()
	})
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *StageResultUpsertOne) SetEvidenceCount(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetEvidenceCount(v)
	})
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *StageResultUpsertOne) AddEvidenceCount(v int) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.AddEvidenceCount(v)
	})
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateEvidenceCount() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateEvidenceCount()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageResultUpsertOne) SetErrorMessage(v string) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateErrorMessage() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageResultUpsertOne) ClearErrorMessage() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *StageResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StageResultUpsertOne.ID is not supported by MySQL driver. Use StageResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageResultCreateBulk is the builder for creating many StageResult entities in bulk.
type StageResultCreateBulk struct {
	config
	err      error
	builders []*StageResultCreate
	conflict []sql.ConflictOption
}

// Save creates the StageResult entities in the database.
func (_c *StageResultCreateBulk) Save(ctx context.Context) ([]*StageResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageResultMutation)
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
func (_c *StageResultCreateBulk) SaveX(ctx context.Context) []*StageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageResultUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageResultUpsertBulk {
	_c.conflict = opts
	return &StageResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageResultCreateBulk) OnConflictColumns(columns ...string) *StageResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageResultUpsertBulk{
		create: _c,
	}
}

// StageResultUpsertBulk is the builder for "upsert"-ing
// a bulk of StageResult nodes.
type StageResultUpsertBulk struct {
	create *StageResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageResultUpsertBulk) UpdateNewValues() *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stageresult.FieldID)
			}
			if _, exists := b.mutation.ScanID(); exists {
				s.SetIgnore(stageresult.FieldScanID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stageresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageResultUpsertBulk) Ignore() *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageResultUpsertBulk) DoNothing() *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageResultCreateBulk.OnConflict
// documentation for more info.
func (u *StageResultUpsertBulk) Update(set func(*StageResultUpsert)) *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetStageName sets the "stage_name" field.
func (u *StageResultUpsertBulk) SetStageName(v string) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStageName(v)
	})
}

// UpdateStageName sets the "stage_name" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateStageName() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStageName()
	})
}

// SetStageIndex sets the "stage_index" field.
func (u *StageResultUpsertBulk) SetStageIndex(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStageIndex(v)
	})
}

// AddStageIndex adds v to the "stage_index" field.
func (u *StageResultUpsertBulk) AddStageIndex(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.AddStageIndex(v)
	})
}

// UpdateStageIndex sets the "stage_index" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateStageIndex() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStageIndex()
	})
}

// SetStatus sets the "status" field.
func (u *StageResultUpsertBulk) SetStatus(v stageresult.Status) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateStatus() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStatus()
	})
}

// SetRetries sets the "retries" field.
func (u *StageResultUpsertBulk) SetRetries(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetRetries(v)
	})
}

// AddRetries adds v to the "retries" field.
func (u *StageResultUpsertBulk) AddRetries(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.AddRetries(v)
	})
}

// UpdateRetries sets the "retries" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateRetries() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateRetries()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageResultUpsertBulk) SetDurationMs(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageResultUpsertBulk) AddDurationMs(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateDurationMs() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateDurationMs()
	})
}

// SetEvidenceCount sets the "evidence_count" field.
func (u *StageResultUpsertBulk) SetEvidenceCount(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetEvidenceCount(v)
	})
}

// AddEvidenceCount adds v to the "evidence_count" field.
func (u *StageResultUpsertBulk) AddEvidenceCount(v int) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.AddEvidenceCount(v)
	})
}

// UpdateEvidenceCount sets the "evidence_count" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateEvidenceCount() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateEvidenceCount()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageResultUpsertBulk) SetErrorMessage(v string) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateErrorMessage() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageResultUpsertBulk) ClearErrorMessage() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *StageResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
