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
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/predicate"
)

// EvidenceUpdate is the builder for updating Evidence entities.
type EvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceMutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdate) Where(ps ...predicate.Evidence) *EvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *EvidenceUpdate) SetCategory(v string) *EvidenceUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableCategory(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *EvidenceUpdate) SetEvidenceType(v string) *EvidenceUpdate {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableEvidenceType(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EvidenceUpdate) SetTitle(v string) *EvidenceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableTitle(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *EvidenceUpdate) ClearTitle() *EvidenceUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetRaw sets the "raw" field.
func (_u *EvidenceUpdate) SetRaw(v string) *EvidenceUpdate {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableRaw(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *EvidenceUpdate) ClearRaw() *EvidenceUpdate {
	_u.mutation.ClearRaw()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EvidenceUpdate) SetSummary(v string) *EvidenceUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableSummary(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EvidenceUpdate) SetSource(v map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetMergedSources sets the "merged_sources" field.
func (_u *EvidenceUpdate) SetMergedSources(v []map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetMergedSources(v)
	return _u
}

// AppendMergedSources appends value to the "merged_sources" field.
func (_u *EvidenceUpdate) AppendMergedSources(v []map[string]interface{}) *EvidenceUpdate {
	_u.mutation.AppendMergedSources(v)
	return _u
}

// ClearMergedSources clears the value of the "merged_sources" field.
func (_u *EvidenceUpdate) ClearMergedSources() *EvidenceUpdate {
	_u.mutation.ClearMergedSources()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvidenceUpdate) SetConfidence(v float64) *EvidenceUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableConfidence(v *float64) *EvidenceUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvidenceUpdate) AddConfidence(v float64) *EvidenceUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *EvidenceUpdate) SetRelevance(v float64) *EvidenceUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableRelevance(v *float64) *EvidenceUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *EvidenceUpdate) AddRelevance(v float64) *EvidenceUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *EvidenceUpdate) SetScore(v float64) *EvidenceUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableScore(v *float64) *EvidenceUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvidenceUpdate) AddScore(v float64) *EvidenceUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *EvidenceUpdate) SetTokens(v int) *EvidenceUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableTokens(v *int) *EvidenceUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *EvidenceUpdate) AddTokens(v int) *EvidenceUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *EvidenceUpdate) SetFallback(v bool) *EvidenceUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableFallback(v *bool) *EvidenceUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetProcessingTrail sets the "processing_trail" field.
func (_u *EvidenceUpdate) SetProcessingTrail(v []string) *EvidenceUpdate {
	_u.mutation.SetProcessingTrail(v)
	return _u
}

// AppendProcessingTrail appends value to the "processing_trail" field.
func (_u *EvidenceUpdate) AppendProcessingTrail(v []string) *EvidenceUpdate {
	_u.mutation.AppendProcessingTrail(v)
	return _u
}

// ClearProcessingTrail clears the value of the "processing_trail" field.
func (_u *EvidenceUpdate) ClearProcessingTrail() *EvidenceUpdate {
	_u.mutation.ClearProcessingTrail()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EvidenceUpdate) SetMetadata(v map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EvidenceUpdate) ClearMetadata() *EvidenceUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EvidenceUpdate) SetEmbedding(v []float64) *EvidenceUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *EvidenceUpdate) AppendEmbedding(v []float64) *EvidenceUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EvidenceUpdate) ClearEmbedding() *EvidenceUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *EvidenceUpdate) SetFingerprint(v string) *EvidenceUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableFingerprint(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *EvidenceUpdate) AddCitationIDs(ids ...string) *EvidenceUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *EvidenceUpdate) AddCitations(v ...*Citation) *EvidenceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdate) Mutation() *EvidenceMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *EvidenceUpdate) ClearCitations() *EvidenceUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *EvidenceUpdate) RemoveCitationIDs(ids ...string) *EvidenceUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *EvidenceUpdate) RemoveCitations(v ...*Citation) *EvidenceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdate) check() error {
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.scan"`)
	}
	if _u.mutation.CollectionCleared() && len(_u.mutation.CollectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.collection"`)
	}
	return nil
}

func (_u *EvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(evidence.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(evidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(evidence.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(evidence.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(evidence.FieldRaw, field.TypeString, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(evidence.FieldRaw, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(evidence.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(evidence.FieldSource, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.MergedSources(); ok {
		_spec.SetField(evidence.FieldMergedSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMergedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldMergedSources, value)
		})
	}
	if _u.mutation.MergedSourcesCleared() {
		_spec.ClearField(evidence.FieldMergedSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(evidence.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(evidence.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(evidence.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessingTrail(); ok {
		_spec.SetField(evidence.FieldProcessingTrail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingTrail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldProcessingTrail, value)
		})
	}
	if _u.mutation.ProcessingTrailCleared() {
		_spec.ClearField(evidence.FieldProcessingTrail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(evidence.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(evidence.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(evidence.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(evidence.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(evidence.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.CitationsTable,
			Columns: []string{evidence.CitationsColumn},
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
			Table:   evidence.CitationsTable,
			Columns: []string{evidence.CitationsColumn},
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
			Table:   evidence.CitationsTable,
			Columns: []string{evidence.CitationsColumn},
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
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceUpdateOne is the builder for updating a single Evidence entity.
type EvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceMutation
}

// SetCategory sets the "category" field.
func (_u *EvidenceUpdateOne) SetCategory(v string) *EvidenceUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableCategory(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *EvidenceUpdateOne) SetEvidenceType(v string) *EvidenceUpdateOne {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableEvidenceType(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EvidenceUpdateOne) SetTitle(v string) *EvidenceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableTitle(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *EvidenceUpdateOne) ClearTitle() *EvidenceUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetRaw sets the "raw" field.
func (_u *EvidenceUpdateOne) SetRaw(v string) *EvidenceUpdateOne {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableRaw(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *EvidenceUpdateOne) ClearRaw() *EvidenceUpdateOne {
	_u.mutation.ClearRaw()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EvidenceUpdateOne) SetSummary(v string) *EvidenceUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableSummary(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EvidenceUpdateOne) SetSource(v map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetMergedSources sets the "merged_sources" field.
func (_u *EvidenceUpdateOne) SetMergedSources(v []map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetMergedSources(v)
	return _u
}

// AppendMergedSources appends value to the "merged_sources" field.
func (_u *EvidenceUpdateOne) AppendMergedSources(v []map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.AppendMergedSources(v)
	return _u
}

// ClearMergedSources clears the value of the "merged_sources" field.
func (_u *EvidenceUpdateOne) ClearMergedSources() *EvidenceUpdateOne {
	_u.mutation.ClearMergedSources()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvidenceUpdateOne) SetConfidence(v float64) *EvidenceUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableConfidence(v *float64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvidenceUpdateOne) AddConfidence(v float64) *EvidenceUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *EvidenceUpdateOne) SetRelevance(v float64) *EvidenceUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableRelevance(v *float64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *EvidenceUpdateOne) AddRelevance(v float64) *EvidenceUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *EvidenceUpdateOne) SetScore(v float64) *EvidenceUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableScore(v *float64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvidenceUpdateOne) AddScore(v float64) *EvidenceUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *EvidenceUpdateOne) SetTokens(v int) *EvidenceUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableTokens(v *int) *EvidenceUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *EvidenceUpdateOne) AddTokens(v int) *EvidenceUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *EvidenceUpdateOne) SetFallback(v bool) *EvidenceUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableFallback(v *bool) *EvidenceUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetProcessingTrail sets the "processing_trail" field.
func (_u *EvidenceUpdateOne) SetProcessingTrail(v []string) *EvidenceUpdateOne {
	_u.mutation.SetProcessingTrail(v)
	return _u
}

// AppendProcessingTrail appends value to the "processing_trail" field.
func (_u *EvidenceUpdateOne) AppendProcessingTrail(v []string) *EvidenceUpdateOne {
	_u.mutation.AppendProcessingTrail(v)
	return _u
}

// ClearProcessingTrail clears the value of the "processing_trail" field.
func (_u *EvidenceUpdateOne) ClearProcessingTrail() *EvidenceUpdateOne {
	_u.mutation.ClearProcessingTrail()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EvidenceUpdateOne) SetMetadata(v map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EvidenceUpdateOne) ClearMetadata() *EvidenceUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EvidenceUpdateOne) SetEmbedding(v []float64) *EvidenceUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *EvidenceUpdateOne) AppendEmbedding(v []float64) *EvidenceUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EvidenceUpdateOne) ClearEmbedding() *EvidenceUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *EvidenceUpdateOne) SetFingerprint(v string) *EvidenceUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableFingerprint(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *EvidenceUpdateOne) AddCitationIDs(ids ...string) *EvidenceUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *EvidenceUpdateOne) AddCitations(v ...*Citation) *EvidenceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdateOne) Mutation() *EvidenceMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *EvidenceUpdateOne) ClearCitations() *EvidenceUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *EvidenceUpdateOne) RemoveCitationIDs(ids ...string) *EvidenceUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *EvidenceUpdateOne) RemoveCitations(v ...*Citation) *EvidenceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdateOne) Where(ps ...predicate.Evidence) *EvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceUpdateOne) Select(field string, fields ...string) *EvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evidence entity.
func (_u *EvidenceUpdateOne) Save(ctx context.Context) (*Evidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdateOne) SaveX(ctx context.Context) *Evidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdateOne) check() error {
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.scan"`)
	}
	if _u.mutation.CollectionCleared() && len(_u.mutation.CollectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.collection"`)
	}
	return nil
}

func (_u *EvidenceUpdateOne) sqlSave(ctx context.Context) (_node *Evidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidence.FieldID)
		for _, f := range fields {
			if !evidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidence.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(evidence.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(evidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(evidence.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(evidence.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(evidence.FieldRaw, field.TypeString, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(evidence.FieldRaw, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(evidence.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(evidence.FieldSource, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.MergedSources(); ok {
		_spec.SetField(evidence.FieldMergedSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMergedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldMergedSources, value)
		})
	}
	if _u.mutation.MergedSourcesCleared() {
		_spec.ClearField(evidence.FieldMergedSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(evidence.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(evidence.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(evidence.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(evidence.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessingTrail(); ok {
		_spec.SetField(evidence.FieldProcessingTrail, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingTrail(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldProcessingTrail, value)
		})
	}
	if _u.mutation.ProcessingTrailCleared() {
		_spec.ClearField(evidence.FieldProcessingTrail, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(evidence.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(evidence.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(evidence.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(evidence.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(evidence.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.CitationsTable,
			Columns: []string{evidence.CitationsColumn},
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
			Table:   evidence.CitationsTable,
			Columns: []string{evidence.CitationsColumn},
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
			Table:   evidence.CitationsTable,
			Columns: []string{evidence.CitationsColumn},
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
	_node = &Evidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
