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
	"github.com/probeworks/diligent/ent/scanrequest"
)

// CollectorJobCreate is the builder for creating a CollectorJob entity.
type CollectorJobCreate struct {
	config
	mutation *CollectorJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScanID sets the "scan_id" field.
func (_c *CollectorJobCreate) SetScanID(v string) *CollectorJobCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *CollectorJobCreate) SetQueue(v string) *CollectorJobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetCollectorName sets the "collector_name" field.
func (_c *CollectorJobCreate) SetCollectorName(v string) *CollectorJobCreate {
	_c.mutation.SetCollectorName(v)
	return _c
}

// SetNillableCollectorName sets the "collector_name" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableCollectorName(v *string) *CollectorJobCreate {
	if v != nil {
		_c.SetCollectorName(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *CollectorJobCreate) SetPayload(v map[string]interface{}) *CollectorJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *CollectorJobCreate) SetPriority(v int) *CollectorJobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillablePriority(v *int) *CollectorJobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *CollectorJobCreate) SetAttempt(v int) *CollectorJobCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableAttempt(v *int) *CollectorJobCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *CollectorJobCreate) SetMaxAttempts(v int) *CollectorJobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableMaxAttempts(v *int) *CollectorJobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CollectorJobCreate) SetStatus(v collectorjob.Status) *CollectorJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableStatus(v *collectorjob.Status) *CollectorJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDedupKey sets the "dedup_key" field.
func (_c *CollectorJobCreate) SetDedupKey(v string) *CollectorJobCreate {
	_c.mutation.SetDedupKey(v)
	return _c
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableDedupKey(v *string) *CollectorJobCreate {
	if v != nil {
		_c.SetDedupKey(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *CollectorJobCreate) SetScheduledAt(v time.Time) *CollectorJobCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableScheduledAt(v *time.Time) *CollectorJobCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetVisibilityDeadline sets the "visibility_deadline" field.
func (_c *CollectorJobCreate) SetVisibilityDeadline(v time.Time) *CollectorJobCreate {
	_c.mutation.SetVisibilityDeadline(v)
	return _c
}

// SetNillableVisibilityDeadline sets the "visibility_deadline" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableVisibilityDeadline(v *time.Time) *CollectorJobCreate {
	if v != nil {
		_c.SetVisibilityDeadline(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *CollectorJobCreate) SetClaimedBy(v string) *CollectorJobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableClaimedBy(v *string) *CollectorJobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *CollectorJobCreate) SetLastError(v string) *CollectorJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableLastError(v *string) *CollectorJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CollectorJobCreate) SetCreatedAt(v time.Time) *CollectorJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableCreatedAt(v *time.Time) *CollectorJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CollectorJobCreate) SetCompletedAt(v time.Time) *CollectorJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CollectorJobCreate) SetNillableCompletedAt(v *time.Time) *CollectorJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CollectorJobCreate) SetID(v string) *CollectorJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetScan sets the "scan" edge to the ScanRequest entity.
func (_c *CollectorJobCreate) SetScan(v *ScanRequest) *CollectorJobCreate {
	return _c.SetScanID(v.ID)
}

// Mutation returns the CollectorJobMutation object of the builder.
func (_c *CollectorJobCreate) Mutation() *CollectorJobMutation {
	return _c.mutation
}

// Save creates the CollectorJob in the database.
func (_c *CollectorJobCreate) Save(ctx context.Context) (*CollectorJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollectorJobCreate) SaveX(ctx context.Context) *CollectorJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectorJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectorJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollectorJobCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := collectorjob.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := collectorjob.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := collectorjob.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := collectorjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		v := collectorjob.DefaultScheduledAt()
		_c.mutation.SetScheduledAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := collectorjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollectorJobCreate) check() error {
	if _, ok := _c.mutation.ScanID(); !ok {
		return &ValidationError{Name: "scan_id", err: errors.New(`ent: missing required field "CollectorJob.scan_id"`)}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "CollectorJob.queue"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "CollectorJob.priority"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "CollectorJob.attempt"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "CollectorJob.max_attempts"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CollectorJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := collectorjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectorJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "CollectorJob.scheduled_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CollectorJob.created_at"`)}
	}
	if len(_c.mutation.ScanIDs()) == 0 {
		return &ValidationError{Name: "scan", err: errors.New(`ent: missing required edge "CollectorJob.scan"`)}
	}
	return nil
}

func (_c *CollectorJobCreate) sqlSave(ctx context.Context) (*CollectorJob, error) {
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
			return nil, fmt.Errorf("unexpected CollectorJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CollectorJobCreate) createSpec() (*CollectorJob, *sqlgraph.CreateSpec) {
	var (
		_node = &CollectorJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collectorjob.Table, sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(collectorjob.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.CollectorName(); ok {
		_spec.SetField(collectorjob.FieldCollectorName, field.TypeString, value)
		_node.CollectorName = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(collectorjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(collectorjob.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(collectorjob.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(collectorjob.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(collectorjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DedupKey(); ok {
		_spec.SetField(collectorjob.FieldDedupKey, field.TypeString, value)
		_node.DedupKey = &value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(collectorjob.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.VisibilityDeadline(); ok {
		_spec.SetField(collectorjob.FieldVisibilityDeadline, field.TypeTime, value)
		_node.VisibilityDeadline = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(collectorjob.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(collectorjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(collectorjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(collectorjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   collectorjob.ScanTable,
			Columns: []string{collectorjob.ScanColumn},
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
//	client.CollectorJob.Create().
//		SetScanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollectorJobUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *CollectorJobCreate) OnConflict(opts ...sql.ConflictOption) *CollectorJobUpsertOne {
	_c.conflict = opts
	return &CollectorJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollectorJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollectorJobCreate) OnConflictColumns(columns ...string) *CollectorJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollectorJobUpsertOne{
		create: _c,
	}
}

type (
	// CollectorJobUpsertOne is the builder for "upsert"-ing
	//  one CollectorJob node.
	CollectorJobUpsertOne struct {
		create *CollectorJobCreate
	}

	// CollectorJobUpsert is the "OnConflict" setter.
	CollectorJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetQueue sets the "queue" field.
func (u *CollectorJobUpsert) SetQueue(v string) *CollectorJobUpsert {
	u.Set(collectorjob.FieldQueue, v)
	return u
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateQueue() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldQueue)
	return u
}

// SetCollectorName sets the "collector_name" field.
func (u *CollectorJobUpsert) SetCollectorName(v string) *CollectorJobUpsert {
	u.Set(collectorjob.FieldCollectorName, v)
	return u
}

// UpdateCollectorName sets the "collector_name" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateCollectorName() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldCollectorName)
	return u
}

// ClearCollectorName clears the value of the "collector_name" field.
func (u *CollectorJobUpsert) ClearCollectorName() *CollectorJobUpsert {
	u.SetNull(collectorjob.FieldCollectorName)
	return u
}

// SetPayload sets the "payload" field.
func (u *CollectorJobUpsert) SetPayload(v map[string]interface{}) *CollectorJobUpsert {
	u.Set(collectorjob.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdatePayload() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *CollectorJobUpsert) ClearPayload() *CollectorJobUpsert {
	u.SetNull(collectorjob.FieldPayload)
	return u
}

// SetPriority sets the "priority" field.
func (u *CollectorJobUpsert) SetPriority(v int) *CollectorJobUpsert {
	u.Set(collectorjob.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdatePriority() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *CollectorJobUpsert) AddPriority(v int) *CollectorJobUpsert {
	u.Add(collectorjob.FieldPriority, v)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *CollectorJobUpsert) SetAttempt(v int) *CollectorJobUpsert {
	u.Set(collectorjob.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateAttempt() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *CollectorJobUpsert) AddAttempt(v int) *CollectorJobUpsert {
	u.Add(collectorjob.FieldAttempt, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *CollectorJobUpsert) SetMaxAttempts(v int) *CollectorJobUpsert {
	u.Set(collectorjob.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateMaxAttempts() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *CollectorJobUpsert) AddMaxAttempts(v int) *CollectorJobUpsert {
	u.Add(collectorjob.FieldMaxAttempts, v)
	return u
}

// SetStatus sets the "status" field.
func (u *CollectorJobUpsert) SetStatus(v collectorjob.Status) *CollectorJobUpsert {
	u.Set(collectorjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateStatus() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldStatus)
	return u
}

// SetDedupKey sets the "dedup_key" field.
func (u *CollectorJobUpsert) SetDedupKey(v string) *CollectorJobUpsert {
	u.Set(collectorjob.FieldDedupKey, v)
	return u
}

// UpdateDedupKey sets the "dedup_key" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateDedupKey() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldDedupKey)
	return u
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (u *CollectorJobUpsert) ClearDedupKey() *CollectorJobUpsert {
	u.SetNull(collectorjob.FieldDedupKey)
	return u
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *CollectorJobUpsert) SetScheduledAt(v time.Time) *CollectorJobUpsert {
	u.Set(collectorjob.FieldScheduledAt, v)
	return u
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateScheduledAt() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldScheduledAt)
	return u
}

// SetVisibilityDeadline sets the "visibility_deadline" field.
func (u *CollectorJobUpsert) SetVisibilityDeadline(v time.Time) *CollectorJobUpsert {
	u.Set(collectorjob.FieldVisibilityDeadline, v)
	return u
}

// UpdateVisibilityDeadline sets the "visibility_deadline" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateVisibilityDeadline() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldVisibilityDeadline)
	return u
}

// ClearVisibilityDeadline clears the value of the "visibility_deadline" field.
func (u *CollectorJobUpsert) ClearVisibilityDeadline() *CollectorJobUpsert {
	u.SetNull(collectorjob.FieldVisibilityDeadline)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *CollectorJobUpsert) SetClaimedBy(v string) *CollectorJobUpsert {
	u.Set(collectorjob.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateClaimedBy() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *CollectorJobUpsert) ClearClaimedBy() *CollectorJobUpsert {
	u.SetNull(collectorjob.FieldClaimedBy)
	return u
}

// SetLastError sets the "last_error" field.
func (u *CollectorJobUpsert) SetLastError(v string) *CollectorJobUpsert {
	u.Set(collectorjob.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateLastError() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *CollectorJobUpsert) ClearLastError() *CollectorJobUpsert {
	u.SetNull(collectorjob.FieldLastError)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CollectorJobUpsert) SetCompletedAt(v time.Time) *CollectorJobUpsert {
	u.Set(collectorjob.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CollectorJobUpsert) UpdateCompletedAt() *CollectorJobUpsert {
	u.SetExcluded(collectorjob.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CollectorJobUpsert) ClearCompletedAt() *CollectorJobUpsert {
	u.SetNull(collectorjob.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CollectorJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collectorjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollectorJobUpsertOne) UpdateNewValues() *CollectorJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(collectorjob.FieldID)
		}
		if _, exists := u.create.mutation.ScanID(); exists {
			s.SetIgnore(collectorjob.FieldScanID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(collectorjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollectorJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CollectorJobUpsertOne) Ignore() *CollectorJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollectorJobUpsertOne) DoNothing() *CollectorJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollectorJobCreate.OnConflict
// documentation for more info.
func (u *CollectorJobUpsertOne) Update(set func(*CollectorJobUpsert)) *CollectorJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollectorJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueue sets the "queue" field.
func (u *CollectorJobUpsertOne) SetQueue(v string) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateQueue() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateQueue()
	})
}

// SetCollectorName sets the "collector_name" field.
func (u *CollectorJobUpsertOne) SetCollectorName(v string) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetCollectorName(v)
	})
}

// UpdateCollectorName sets the "collector_name" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateCollectorName() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateCollectorName()
	})
}

// ClearCollectorName clears the value of the "collector_name" field.
func (u *CollectorJobUpsertOne) ClearCollectorName() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearCollectorName()
	})
}

// SetPayload sets the "payload" field.
func (u *CollectorJobUpsertOne) SetPayload(v map[string]interface{}) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdatePayload() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *CollectorJobUpsertOne) ClearPayload() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearPayload()
	})
}

// SetPriority sets the "priority" field.
func (u *CollectorJobUpsertOne) SetPriority(v int) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *CollectorJobUpsertOne) AddPriority(v int) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdatePriority() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempt sets the "attempt" field.
func (u *CollectorJobUpsertOne) SetAttempt(v int) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *CollectorJobUpsertOne) AddAttempt(v int) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateAttempt() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateAttempt()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *CollectorJobUpsertOne) SetMaxAttempts(v int) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *CollectorJobUpsertOne) AddMaxAttempts(v int) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateMaxAttempts() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetStatus sets the "status" field.
func (u *CollectorJobUpsertOne) SetStatus(v collectorjob.Status) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateStatus() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateStatus()
	})
}

// SetDedupKey sets the "dedup_key" field.
func (u *CollectorJobUpsertOne) SetDedupKey(v string) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetDedupKey(v)
	})
}

// UpdateDedupKey sets the "dedup_key" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateDedupKey() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateDedupKey()
	})
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (u *CollectorJobUpsertOne) ClearDedupKey() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearDedupKey()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *CollectorJobUpsertOne) SetScheduledAt(v time.Time) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateScheduledAt() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetVisibilityDeadline sets the "visibility_deadline" field.
func (u *CollectorJobUpsertOne) SetVisibilityDeadline(v time.Time) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetVisibilityDeadline(v)
	})
}

// UpdateVisibilityDeadline sets the "visibility_deadline" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateVisibilityDeadline() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateVisibilityDeadline()
	})
}

// ClearVisibilityDeadline clears the value of the "visibility_deadline" field.
func (u *CollectorJobUpsertOne) ClearVisibilityDeadline() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearVisibilityDeadline()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *CollectorJobUpsertOne) SetClaimedBy(v string) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateClaimedBy() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *CollectorJobUpsertOne) ClearClaimedBy() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLastError sets the "last_error" field.
func (u *CollectorJobUpsertOne) SetLastError(v string) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateLastError() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *CollectorJobUpsertOne) ClearLastError() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearLastError()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CollectorJobUpsertOne) SetCompletedAt(v time.Time) *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CollectorJobUpsertOne) UpdateCompletedAt() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CollectorJobUpsertOne) ClearCompletedAt() *CollectorJobUpsertOne {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CollectorJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollectorJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollectorJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CollectorJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CollectorJobUpsertOne.ID is not supported by MySQL driver. Use CollectorJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CollectorJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CollectorJobCreateBulk is the builder for creating many CollectorJob entities in bulk.
type CollectorJobCreateBulk struct {
	config
	err      error
	builders []*CollectorJobCreate
	conflict []sql.ConflictOption
}

// Save creates the CollectorJob entities in the database.
func (_c *CollectorJobCreateBulk) Save(ctx context.Context) ([]*CollectorJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollectorJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollectorJobMutation)
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
func (_c *CollectorJobCreateBulk) SaveX(ctx context.Context) []*CollectorJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectorJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectorJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollectorJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollectorJobUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *CollectorJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *CollectorJobUpsertBulk {
	_c.conflict = opts
	return &CollectorJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollectorJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollectorJobCreateBulk) OnConflictColumns(columns ...string) *CollectorJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollectorJobUpsertBulk{
		create: _c,
	}
}

// CollectorJobUpsertBulk is the builder for "upsert"-ing
// a bulk of CollectorJob nodes.
type CollectorJobUpsertBulk struct {
	create *CollectorJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CollectorJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collectorjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollectorJobUpsertBulk) UpdateNewValues() *CollectorJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(collectorjob.FieldID)
			}
			if _, exists := b.mutation.ScanID(); exists {
				s.SetIgnore(collectorjob.FieldScanID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(collectorjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollectorJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CollectorJobUpsertBulk) Ignore() *CollectorJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollectorJobUpsertBulk) DoNothing() *CollectorJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollectorJobCreateBulk.OnConflict
// documentation for more info.
func (u *CollectorJobUpsertBulk) Update(set func(*CollectorJobUpsert)) *CollectorJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollectorJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueue sets the "queue" field.
func (u *CollectorJobUpsertBulk) SetQueue(v string) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateQueue() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateQueue()
	})
}

// SetCollectorName sets the "collector_name" field.
func (u *CollectorJobUpsertBulk) SetCollectorName(v string) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetCollectorName(v)
	})
}

// UpdateCollectorName sets the "collector_name" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateCollectorName() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateCollectorName()
	})
}

// ClearCollectorName clears the value of the "collector_name" field.
func (u *CollectorJobUpsertBulk) ClearCollectorName() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearCollectorName()
	})
}

// SetPayload sets the "payload" field.
func (u *CollectorJobUpsertBulk) SetPayload(v map[string]interface{}) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdatePayload() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *CollectorJobUpsertBulk) ClearPayload() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearPayload()
	})
}

// SetPriority sets the "priority" field.
func (u *CollectorJobUpsertBulk) SetPriority(v int) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *CollectorJobUpsertBulk) AddPriority(v int) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdatePriority() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempt sets the "attempt" field.
func (u *CollectorJobUpsertBulk) SetAttempt(v int) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *CollectorJobUpsertBulk) AddAttempt(v int) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateAttempt() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateAttempt()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *CollectorJobUpsertBulk) SetMaxAttempts(v int) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *CollectorJobUpsertBulk) AddMaxAttempts(v int) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateMaxAttempts() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetStatus sets the "status" field.
func (u *CollectorJobUpsertBulk) SetStatus(v collectorjob.Status) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateStatus() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateStatus()
	})
}

// SetDedupKey sets the "dedup_key" field.
func (u *CollectorJobUpsertBulk) SetDedupKey(v string) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetDedupKey(v)
	})
}

// UpdateDedupKey sets the "dedup_key" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateDedupKey() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateDedupKey()
	})
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (u *CollectorJobUpsertBulk) ClearDedupKey() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearDedupKey()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *CollectorJobUpsertBulk) SetScheduledAt(v time.Time) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateScheduledAt() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetVisibilityDeadline sets the "visibility_deadline" field.
func (u *CollectorJobUpsertBulk) SetVisibilityDeadline(v time.Time) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetVisibilityDeadline(v)
	})
}

// UpdateVisibilityDeadline sets the "visibility_deadline" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateVisibilityDeadline() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateVisibilityDeadline()
	})
}

// ClearVisibilityDeadline clears the value of the "visibility_deadline" field.
func (u *CollectorJobUpsertBulk) ClearVisibilityDeadline() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearVisibilityDeadline()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *CollectorJobUpsertBulk) SetClaimedBy(v string) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateClaimedBy() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *CollectorJobUpsertBulk) ClearClaimedBy() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLastError sets the "last_error" field.
func (u *CollectorJobUpsertBulk) SetLastError(v string) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateLastError() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *CollectorJobUpsertBulk) ClearLastError() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearLastError()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CollectorJobUpsertBulk) SetCompletedAt(v time.Time) *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CollectorJobUpsertBulk) UpdateCompletedAt() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CollectorJobUpsertBulk) ClearCompletedAt() *CollectorJobUpsertBulk {
	return u.Update(func(s *CollectorJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CollectorJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CollectorJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollectorJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollectorJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
