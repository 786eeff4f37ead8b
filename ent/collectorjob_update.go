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
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/predicate"
)

// CollectorJobUpdate is the builder for updating CollectorJob entities.
type CollectorJobUpdate struct {
	config
	hooks    []Hook
	mutation *CollectorJobMutation
}

// Where appends a list predicates to the CollectorJobUpdate builder.
func (_u *CollectorJobUpdate) Where(ps ...predicate.CollectorJob) *CollectorJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueue sets the "queue" field.
func (_u *CollectorJobUpdate) SetQueue(v string) *CollectorJobUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableQueue(v *string) *CollectorJobUpdate {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetCollectorName sets the "collector_name" field.
func (_u *CollectorJobUpdate) SetCollectorName(v string) *CollectorJobUpdate {
	_u.mutation.SetCollectorName(v)
	return _u
}

// SetNillableCollectorName sets the "collector_name" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableCollectorName(v *string) *CollectorJobUpdate {
	if v != nil {
		_u.SetCollectorName(*v)
	}
	return _u
}

// ClearCollectorName clears the value of the "collector_name" field.
func (_u *CollectorJobUpdate) ClearCollectorName() *CollectorJobUpdate {
	_u.mutation.ClearCollectorName()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CollectorJobUpdate) SetPayload(v map[string]interface{}) *CollectorJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *CollectorJobUpdate) ClearPayload() *CollectorJobUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *CollectorJobUpdate) SetPriority(v int) *CollectorJobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillablePriority(v *int) *CollectorJobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *CollectorJobUpdate) AddPriority(v int) *CollectorJobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *CollectorJobUpdate) SetAttempt(v int) *CollectorJobUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableAttempt(v *int) *CollectorJobUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *CollectorJobUpdate) AddAttempt(v int) *CollectorJobUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *CollectorJobUpdate) SetMaxAttempts(v int) *CollectorJobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableMaxAttempts(v *int) *CollectorJobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *CollectorJobUpdate) AddMaxAttempts(v int) *CollectorJobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollectorJobUpdate) SetStatus(v collectorjob.Status) *CollectorJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableStatus(v *collectorjob.Status) *CollectorJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDedupKey sets the "dedup_key" field.
func (_u *CollectorJobUpdate) SetDedupKey(v string) *CollectorJobUpdate {
	_u.mutation.SetDedupKey(v)
	return _u
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableDedupKey(v *string) *CollectorJobUpdate {
	if v != nil {
		_u.SetDedupKey(*v)
	}
	return _u
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (_u *CollectorJobUpdate) ClearDedupKey() *CollectorJobUpdate {
	_u.mutation.ClearDedupKey()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *CollectorJobUpdate) SetScheduledAt(v time.Time) *CollectorJobUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableScheduledAt(v *time.Time) *CollectorJobUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetVisibilityDeadline sets the "visibility_deadline" field.
func (_u *CollectorJobUpdate) SetVisibilityDeadline(v time.Time) *CollectorJobUpdate {
	_u.mutation.SetVisibilityDeadline(v)
	return _u
}

// SetNillableVisibilityDeadline sets the "visibility_deadline" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableVisibilityDeadline(v *time.Time) *CollectorJobUpdate {
	if v != nil {
		_u.SetVisibilityDeadline(*v)
	}
	return _u
}

// ClearVisibilityDeadline clears the value of the "visibility_deadline" field.
func (_u *CollectorJobUpdate) ClearVisibilityDeadline() *CollectorJobUpdate {
	_u.mutation.ClearVisibilityDeadline()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *CollectorJobUpdate) SetClaimedBy(v string) *CollectorJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableClaimedBy(v *string) *CollectorJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *CollectorJobUpdate) ClearClaimedBy() *CollectorJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *CollectorJobUpdate) SetLastError(v string) *CollectorJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableLastError(v *string) *CollectorJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *CollectorJobUpdate) ClearLastError() *CollectorJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CollectorJobUpdate) SetCompletedAt(v time.Time) *CollectorJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CollectorJobUpdate) SetNillableCompletedAt(v *time.Time) *CollectorJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CollectorJobUpdate) ClearCompletedAt() *CollectorJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the CollectorJobMutation object of the builder.
func (_u *CollectorJobUpdate) Mutation() *CollectorJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollectorJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectorJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollectorJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectorJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectorJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collectorjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectorJob.status": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CollectorJob.scan"`)
	}
	return nil
}

func (_u *CollectorJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectorjob.Table, collectorjob.Columns, sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(collectorjob.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectorName(); ok {
		_spec.SetField(collectorjob.FieldCollectorName, field.TypeString, value)
	}
	if _u.mutation.CollectorNameCleared() {
		_spec.ClearField(collectorjob.FieldCollectorName, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(collectorjob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(collectorjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(collectorjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(collectorjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(collectorjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(collectorjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(collectorjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(collectorjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collectorjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DedupKey(); ok {
		_spec.SetField(collectorjob.FieldDedupKey, field.TypeString, value)
	}
	if _u.mutation.DedupKeyCleared() {
		_spec.ClearField(collectorjob.FieldDedupKey, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(collectorjob.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisibilityDeadline(); ok {
		_spec.SetField(collectorjob.FieldVisibilityDeadline, field.TypeTime, value)
	}
	if _u.mutation.VisibilityDeadlineCleared() {
		_spec.ClearField(collectorjob.FieldVisibilityDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(collectorjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(collectorjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(collectorjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(collectorjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(collectorjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(collectorjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectorjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollectorJobUpdateOne is the builder for updating a single CollectorJob entity.
type CollectorJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollectorJobMutation
}

// SetQueue sets the "queue" field.
func (_u *CollectorJobUpdateOne) SetQueue(v string) *CollectorJobUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableQueue(v *string) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetCollectorName sets the "collector_name" field.
func (_u *CollectorJobUpdateOne) SetCollectorName(v string) *CollectorJobUpdateOne {
	_u.mutation.SetCollectorName(v)
	return _u
}

// SetNillableCollectorName sets the "collector_name" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableCollectorName(v *string) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetCollectorName(*v)
	}
	return _u
}

// ClearCollectorName clears the value of the "collector_name" field.
func (_u *CollectorJobUpdateOne) ClearCollectorName() *CollectorJobUpdateOne {
	_u.mutation.ClearCollectorName()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CollectorJobUpdateOne) SetPayload(v map[string]interface{}) *CollectorJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *CollectorJobUpdateOne) ClearPayload() *CollectorJobUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *CollectorJobUpdateOne) SetPriority(v int) *CollectorJobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillablePriority(v *int) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *CollectorJobUpdateOne) AddPriority(v int) *CollectorJobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *CollectorJobUpdateOne) SetAttempt(v int) *CollectorJobUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableAttempt(v *int) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *CollectorJobUpdateOne) AddAttempt(v int) *CollectorJobUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *CollectorJobUpdateOne) SetMaxAttempts(v int) *CollectorJobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableMaxAttempts(v *int) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *CollectorJobUpdateOne) AddMaxAttempts(v int) *CollectorJobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollectorJobUpdateOne) SetStatus(v collectorjob.Status) *CollectorJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableStatus(v *collectorjob.Status) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDedupKey sets the "dedup_key" field.
func (_u *CollectorJobUpdateOne) SetDedupKey(v string) *CollectorJobUpdateOne {
	_u.mutation.SetDedupKey(v)
	return _u
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableDedupKey(v *string) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetDedupKey(*v)
	}
	return _u
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (_u *CollectorJobUpdateOne) ClearDedupKey() *CollectorJobUpdateOne {
	_u.mutation.ClearDedupKey()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *CollectorJobUpdateOne) SetScheduledAt(v time.Time) *CollectorJobUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableScheduledAt(v *time.Time) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetVisibilityDeadline sets the "visibility_deadline" field.
func (_u *CollectorJobUpdateOne) SetVisibilityDeadline(v time.Time) *CollectorJobUpdateOne {
	_u.mutation.SetVisibilityDeadline(v)
	return _u
}

// SetNillableVisibilityDeadline sets the "visibility_deadline" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableVisibilityDeadline(v *time.Time) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetVisibilityDeadline(*v)
	}
	return _u
}

// ClearVisibilityDeadline clears the value of the "visibility_deadline" field.
func (_u *CollectorJobUpdateOne) ClearVisibilityDeadline() *CollectorJobUpdateOne {
	_u.mutation.ClearVisibilityDeadline()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *CollectorJobUpdateOne) SetClaimedBy(v string) *CollectorJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableClaimedBy(v *string) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *CollectorJobUpdateOne) ClearClaimedBy() *CollectorJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *CollectorJobUpdateOne) SetLastError(v string) *CollectorJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableLastError(v *string) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *CollectorJobUpdateOne) ClearLastError() *CollectorJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CollectorJobUpdateOne) SetCompletedAt(v time.Time) *CollectorJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CollectorJobUpdateOne) SetNillableCompletedAt(v *time.Time) *CollectorJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CollectorJobUpdateOne) ClearCompletedAt() *CollectorJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the CollectorJobMutation object of the builder.
func (_u *CollectorJobUpdateOne) Mutation() *CollectorJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the CollectorJobUpdate builder.
func (_u *CollectorJobUpdateOne) Where(ps ...predicate.CollectorJob) *CollectorJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollectorJobUpdateOne) Select(field string, fields ...string) *CollectorJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollectorJob entity.
func (_u *CollectorJobUpdateOne) Save(ctx context.Context) (*CollectorJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectorJobUpdateOne) SaveX(ctx context.Context) *CollectorJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollectorJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectorJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectorJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collectorjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectorJob.status": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CollectorJob.scan"`)
	}
	return nil
}

func (_u *CollectorJobUpdateOne) sqlSave(ctx context.Context) (_node *CollectorJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectorjob.Table, collectorjob.Columns, sqlgraph.NewFieldSpec(collectorjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollectorJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectorjob.FieldID)
		for _, f := range fields {
			if !collectorjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collectorjob.FieldID {
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
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(collectorjob.FieldQueue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectorName(); ok {
		_spec.SetField(collectorjob.FieldCollectorName, field.TypeString, value)
	}
	if _u.mutation.CollectorNameCleared() {
		_spec.ClearField(collectorjob.FieldCollectorName, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(collectorjob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(collectorjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(collectorjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(collectorjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(collectorjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(collectorjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(collectorjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(collectorjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collectorjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DedupKey(); ok {
		_spec.SetField(collectorjob.FieldDedupKey, field.TypeString, value)
	}
	if _u.mutation.DedupKeyCleared() {
		_spec.ClearField(collectorjob.FieldDedupKey, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(collectorjob.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisibilityDeadline(); ok {
		_spec.SetField(collectorjob.FieldVisibilityDeadline, field.TypeTime, value)
	}
	if _u.mutation.VisibilityDeadlineCleared() {
		_spec.ClearField(collectorjob.FieldVisibilityDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(collectorjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(collectorjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(collectorjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(collectorjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(collectorjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(collectorjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &CollectorJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectorjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
