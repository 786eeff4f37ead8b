// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/probeworks/diligent/ent/predicate"
	"github.com/probeworks/diligent/ent/stageresult"
)

// StageResultUpdate is the builder for updating StageResult entities.
type StageResultUpdate struct {
	config
	hooks    []Hook
	mutation *StageResultMutation
}

// Where appends a list predicates to the StageResultUpdate builder.
func (_u *StageResultUpdate) Where(ps ...predicate.StageResult) *StageResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageResultUpdate) SetStageName(v string) *StageResultUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableStageName(v *string) *StageResultUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StageResultUpdate) SetStageIndex(v int) *StageResultUpdate {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableStageIndex(v *int) *StageResultUpdate {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StageResultUpdate) AddStageIndex(v int) *StageResultUpdate {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageResultUpdate) SetStatus(v stageresult.Status) *StageResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableStatus(v *stageresult.Status) *StageResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetries sets the "retries" field.
func (_u *StageResultUpdate) SetRetries(v int) *StageResultUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableRetries(v *int) *StageResultUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *StageResultUpdate) AddRetries(v int) *StageResultUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageResultUpdate) SetDurationMs(v int) *StageResultUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableDurationMs(v *int) *StageResultUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageResultUpdate) AddDurationMs(v int) *StageResultUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *StageResultUpdate) SetEvidenceCount(v int) *StageResultUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableEvidenceCount(v *int) *StageResultUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *StageResultUpdate) AddEvidenceCount(v int) *StageResultUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageResultUpdate) SetErrorMessage(v string) *StageResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableErrorMessage(v *string) *StageResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageResultUpdate) ClearErrorMessage() *StageResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the StageResultMutation object of the builder.
func (_u *StageResultUpdate) Mutation() *StageResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageResult.status": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageResult.scan"`)
	}
	return nil
}

func (_u *StageResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageresult.Table, stageresult.Columns, sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageresult.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(stageresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(stageresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(stageresult.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(stageresult.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageresult.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageresult.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(stageresult.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(stageresult.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageresult.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageResultUpdateOne is the builder for updating a single StageResult entity.
type StageResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageResultMutation
}

// SetStageName sets the "stage_name" field.
func (_u *StageResultUpdateOne) SetStageName(v string) *StageResultUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableStageName(v *string) *StageResultUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StageResultUpdateOne) SetStageIndex(v int) *StageResultUpdateOne {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableStageIndex(v *int) *StageResultUpdateOne {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StageResultUpdateOne) AddStageIndex(v int) *StageResultUpdateOne {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageResultUpdateOne) SetStatus(v stageresult.Status) *StageResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableStatus(v *stageresult.Status) *StageResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetries sets the "retries" field.
func (_u *StageResultUpdateOne) SetRetries(v int) *StageResultUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableRetries(v *int) *StageResultUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *StageResultUpdateOne) AddRetries(v int) *StageResultUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageResultUpdateOne) SetDurationMs(v int) *StageResultUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableDurationMs(v *int) *StageResultUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageResultUpdateOne) AddDurationMs(v int) *StageResultUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *StageResultUpdateOne) SetEvidenceCount(v int) *StageResultUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableEvidenceCount(v *int) *StageResultUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *StageResultUpdateOne) AddEvidenceCount(v int) *StageResultUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageResultUpdateOne) SetErrorMessage(v string) *StageResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableErrorMessage(v *string) *StageResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageResultUpdateOne) ClearErrorMessage() *StageResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the StageResultMutation object of the builder.
func (_u *StageResultUpdateOne) Mutation() *StageResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageResultUpdate builder.
func (_u *StageResultUpdateOne) Where(ps ...predicate.StageResult) *StageResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageResultUpdateOne) Select(field string, fields ...string) *StageResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageResult entity.
func (_u *StageResultUpdateOne) Save(ctx context.Context) (*StageResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageResultUpdateOne) SaveX(ctx context.Context) *StageResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageResult.status": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageResult.scan"`)
	}
	return nil
}

func (_u *StageResultUpdateOne) sqlSave(ctx context.Context) (_node *StageResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageresult.Table, stageresult.Columns, sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageresult.FieldID)
		for _, f := range fields {
			if !stageresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageresult.FieldID {
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
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageresult.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(stageresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(stageresult.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(stageresult.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(stageresult.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageresult.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageresult.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(stageresult.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(stageresult.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageresult.FieldErrorMessage, field.TypeString)
	}
	_node = &StageResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
