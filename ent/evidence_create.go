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
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/scanrequest"
)

// EvidenceCreate is the builder for creating a Evidence entity.
type EvidenceCreate struct {
	config
	mutation *EvidenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScanID sets the "scan_id" field.
func (_c *EvidenceCreate) SetScanID(v string) *EvidenceCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetCollectionID sets the "collection_id" field.
func (_c *EvidenceCreate) SetCollectionID(v string) *EvidenceCreate {
	_c.mutation.SetCollectionID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *EvidenceCreate) SetCategory(v string) *EvidenceCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetEvidenceType sets the "evidence_type" field.
func (_c *EvidenceCreate) SetEvidenceType(v string) *EvidenceCreate {
	_c.mutation.SetEvidenceType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *EvidenceCreate) SetTitle(v string) *EvidenceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableTitle(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetRaw sets the "raw" field.
func (_c *EvidenceCreate) SetRaw(v string) *EvidenceCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableRaw(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetRaw(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *EvidenceCreate) SetSummary(v string) *EvidenceCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EvidenceCreate) SetSource(v map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetMergedSources sets the "merged_sources" field.
func (_c *EvidenceCreate) SetMergedSources(v []map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetMergedSources(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EvidenceCreate) SetConfidence(v float64) *EvidenceCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *EvidenceCreate) SetRelevance(v float64) *EvidenceCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *EvidenceCreate) SetScore(v float64) *EvidenceCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *EvidenceCreate) SetTokens(v int) *EvidenceCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableTokens(v *int) *EvidenceCreate {
	if v != nil {
		_c.SetTokens(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *EvidenceCreate) SetFallback(v bool) *EvidenceCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableFallback(v *bool) *EvidenceCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// SetProcessingTrail sets the "processing_trail" field.
func (_c *EvidenceCreate) SetProcessingTrail(v []string) *EvidenceCreate {
	_c.mutation.SetProcessingTrail(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EvidenceCreate) SetMetadata(v map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *EvidenceCreate) SetEmbedding(v []float64) *EvidenceCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *EvidenceCreate) SetFingerprint(v string) *EvidenceCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceCreate) SetCreatedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableCreatedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCreate) SetID(v string) *EvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetScan sets the "scan" edge to the ScanRequest entity.
func (_c *EvidenceCreate) SetScan(v *ScanRequest) *EvidenceCreate {
	return _c.SetScanID(v.ID)
}

// SetCollection sets the "collection" edge to the EvidenceCollection entity.
func (_c *EvidenceCreate) SetCollection(v *EvidenceCollection) *EvidenceCreate {
	return _c.SetCollectionID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_c *EvidenceCreate) AddCitationIDs(ids ...string) *EvidenceCreate {
	_c.mutation.AddCitationIDs(ids...)
	return _c
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_c *EvidenceCreate) AddCitations(v ...*Citation) *EvidenceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCitationIDs(ids...)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_c *EvidenceCreate) Mutation() *EvidenceMutation {
	return _c.mutation
}

// Save creates the Evidence in the database.
func (_c *EvidenceCreate) Save(ctx context.Context) (*Evidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCreate) SaveX(ctx context.Context) *Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCreate) defaults() {
	if _, ok := _c.mutation.Tokens(); !ok {
		v := evidence.DefaultTokens
		_c.mutation.SetTokens(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := evidence.DefaultFallback
		_c.mutation.SetFallback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCreate) check() error {
	if _, ok := _c.mutation.ScanID(); !ok {
		return &ValidationError{Name: "scan_id", err: errors.New(`ent: missing required field "Evidence.scan_id"`)}
	}
	if _, ok := _c.mutation.CollectionID(); !ok {
		return &ValidationError{Name: "collection_id", err: errors.New(`ent: missing required field "Evidence.collection_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Evidence.category"`)}
	}
	if _, ok := _c.mutation.EvidenceType(); !ok {
		return &ValidationError{Name: "evidence_type", err: errors.New(`ent: missing required field "Evidence.evidence_type"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Evidence.summary"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Evidence.source"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Evidence.confidence"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "Evidence.relevance"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Evidence.score"`)}
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		return &ValidationError{Name: "tokens", err: errors.New(`ent: missing required field "Evidence.tokens"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "Evidence.fallback"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Evidence.fingerprint"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evidence.created_at"`)}
	}
	if len(_c.mutation.ScanIDs()) == 0 {
		return &ValidationError{Name: "scan", err: errors.New(`ent: missing required edge "Evidence.scan"`)}
	}
	if len(_c.mutation.CollectionIDs()) == 0 {
		return &ValidationError{Name: "collection", err: errors.New(`ent: missing required edge "Evidence.collection"`)}
	}
	return nil
}

func (_c *EvidenceCreate) sqlSave(ctx context.Context) (*Evidence, error) {
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
			return nil, fmt.Errorf("unexpected Evidence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceCreate) createSpec() (*Evidence, *sqlgraph.CreateSpec) {
	var (
		_node = &Evidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidence.Table, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(evidence.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.EvidenceType(); ok {
		_spec.SetField(evidence.FieldEvidenceType, field.TypeString, value)
		_node.EvidenceType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(evidence.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(evidence.FieldRaw, field.TypeString, value)
		_node.Raw = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(evidence.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(evidence.FieldSource, field.TypeJSON, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.MergedSources(); ok {
		_spec.SetField(evidence.FieldMergedSources, field.TypeJSON, value)
		_node.MergedSources = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(evidence.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(evidence.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(evidence.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(evidence.FieldTokens, field.TypeInt, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(evidence.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	if value, ok := _c.mutation.ProcessingTrail(); ok {
		_spec.SetField(evidence.FieldProcessingTrail, field.TypeJSON, value)
		_node.ProcessingTrail = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(evidence.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(evidence.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(evidence.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidence.ScanTable,
			Columns: []string{evidence.ScanColumn},
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
	if nodes := _c.mutation.CollectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidence.CollectionTable,
			Columns: []string{evidence.CollectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencecollection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CollectionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evidence.Create().
//		SetScanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertOne {
	_c.conflict = opts
	return &EvidenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflictColumns(columns ...string) *EvidenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertOne{
		create: _c,
	}
}

type (
	// EvidenceUpsertOne is the builder for "upsert"-ing
	//  one Evidence node.
	EvidenceUpsertOne struct {
		create *EvidenceCreate
	}

	// EvidenceUpsert is the "OnConflict" setter.
	EvidenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetCategory sets the "category" field.
func (u *EvidenceUpsert) SetCategory(v string) *EvidenceUpsert {
	u.Set(evidence.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateCategory() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldCategory)
	return u
}

// SetEvidenceType sets the "evidence_type" field.
func (u *EvidenceUpsert) SetEvidenceType(v string) *EvidenceUpsert {
	u.Set(evidence.FieldEvidenceType, v)
	return u
}

// UpdateEvidenceType sets the "evidence_type" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateEvidenceType() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldEvidenceType)
	return u
}

// SetTitle sets the "title" field.
func (u *EvidenceUpsert) SetTitle(v string) *EvidenceUpsert {
	u.Set(evidence.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateTitle() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *EvidenceUpsert) ClearTitle() *EvidenceUpsert {
	u.SetNull(evidence.FieldTitle)
	return u
}

// SetRaw sets the "raw" field.
func (u *EvidenceUpsert) SetRaw(v string) *EvidenceUpsert {
	u.Set(evidence.FieldRaw, v)
	return u
}

// UpdateRaw sets the "raw" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateRaw() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldRaw)
	return u
}

// ClearRaw clears the value of the "raw" field.
func (u *EvidenceUpsert) ClearRaw() *EvidenceUpsert {
	u.SetNull(evidence.FieldRaw)
	return u
}

// SetSummary sets the "summary" field.
func (u *EvidenceUpsert) SetSummary(v string) *EvidenceUpsert {
	u.Set(evidence.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateSummary() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldSummary)
	return u
}

// SetSource sets the "source" field.
func (u *EvidenceUpsert) SetSource(v map[string]interface{}) *EvidenceUpsert {
	u.Set(evidence.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateSource() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldSource)
	return u
}

// SetMergedSources sets the "merged_sources" field.
func (u *EvidenceUpsert) SetMergedSources(v []map[string]interface{}) *EvidenceUpsert {
	u.Set(evidence.FieldMergedSources, v)
	return u
}

// UpdateMergedSources sets the "merged_sources" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateMergedSources() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldMergedSources)
	return u
}

// ClearMergedSources clears the value of the "merged_sources" field.
func (u *EvidenceUpsert) ClearMergedSources() *EvidenceUpsert {
	u.SetNull(evidence.FieldMergedSources)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *EvidenceUpsert) SetConfidence(v float64) *EvidenceUpsert {
	u.Set(evidence.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateConfidence() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *EvidenceUpsert) AddConfidence(v float64) *EvidenceUpsert {
	u.Add(evidence.FieldConfidence, v)
	return u
}

// SetRelevance sets the "relevance" field.
func (u *EvidenceUpsert) SetRelevance(v float64) *EvidenceUpsert {
	u.Set(evidence.FieldRelevance, v)
	return u
}

// UpdateRelevance sets the "relevance" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateRelevance() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldRelevance)
	return u
}

// AddRelevance adds v to the "relevance" field.
func (u *EvidenceUpsert) AddRelevance(v float64) *EvidenceUpsert {
	u.Add(evidence.FieldRelevance, v)
	return u
}

// SetScore sets the "score" field.
func (u *EvidenceUpsert) SetScore(v float64) *EvidenceUpsert {
	u.Set(evidence.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateScore() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *EvidenceUpsert) AddScore(v float64) *EvidenceUpsert {
	u.Add(evidence.FieldScore, v)
	return u
}

// SetTokens sets the "tokens" field.
func (u *EvidenceUpsert) SetTokens(v int) *EvidenceUpsert {
	u.Set(evidence.FieldTokens, v)
	return u
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateTokens() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldTokens)
	return u
}

// AddTokens adds v to the "tokens" field.
func (u *EvidenceUpsert) AddTokens(v int) *EvidenceUpsert {
	u.Add(evidence.FieldTokens, v)
	return u
}

// SetFallback sets the "fallback" field.
func (u *EvidenceUpsert) SetFallback(v bool) *EvidenceUpsert {
	u.Set(evidence.FieldFallback, v)
	return u
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateFallback() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldFallback)
	return u
}

// SetProcessingTrail sets the "processing_trail" field.
func (u *EvidenceUpsert) SetProcessingTrail(v []string) *EvidenceUpsert {
	u.Set(evidence.FieldProcessingTrail, v)
	return u
}

// UpdateProcessingTrail sets the "processing_trail" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateProcessingTrail() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldProcessingTrail)
	return u
}

// ClearProcessingTrail clears the value of the "processing_trail" field.
func (u *EvidenceUpsert) ClearProcessingTrail() *EvidenceUpsert {
	u.SetNull(evidence.FieldProcessingTrail)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *EvidenceUpsert) SetMetadata(v map[string]interface{}) *EvidenceUpsert {
	u.Set(evidence.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateMetadata() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EvidenceUpsert) ClearMetadata() *EvidenceUpsert {
	u.SetNull(evidence.FieldMetadata)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *EvidenceUpsert) SetEmbedding(v []float64) *EvidenceUpsert {
	u.Set(evidence.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateEmbedding() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EvidenceUpsert) ClearEmbedding() *EvidenceUpsert {
	u.SetNull(evidence.FieldEmbedding)
	return u
}

// SetFingerprint sets the "fingerprint" field.
func (u *EvidenceUpsert) SetFingerprint(v string) *EvidenceUpsert {
	u.Set(evidence.FieldFingerprint, v)
	return u
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateFingerprint() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldFingerprint)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertOne) UpdateNewValues() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evidence.FieldID)
		}
		if _, exists := u.create.mutation.ScanID(); exists {
			s.SetIgnore(evidence.FieldScanID)
		}
		if _, exists := u.create.mutation.CollectionID(); exists {
			s.SetIgnore(evidence.FieldCollectionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evidence.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvidenceUpsertOne) Ignore() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertOne) DoNothing() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreate.OnConflict
// documentation for more info.
func (u *EvidenceUpsertOne) Update(set func(*EvidenceUpsert)) *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *EvidenceUpsertOne) SetCategory(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateCategory() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateCategory()
	})
}

// SetEvidenceType sets the "evidence_type" field.
func (u *EvidenceUpsertOne) SetEvidenceType(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceType(v)
	})
}

// UpdateEvidenceType sets the "evidence_type" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateEvidenceType() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceType()
	})
}

// SetTitle sets the "title" field.
func (u *EvidenceUpsertOne) SetTitle(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateTitle() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *EvidenceUpsertOne) ClearTitle() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearTitle()
	})
}

// SetRaw sets the "raw" field.
func (u *EvidenceUpsertOne) SetRaw(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetRaw(v)
	})
}

// UpdateRaw sets the "raw" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateRaw() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateRaw()
	})
}

// ClearRaw clears the value of the "raw" field.
func (u *EvidenceUpsertOne) ClearRaw() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearRaw()
	})
}

// SetSummary sets the "summary" field.
func (u *EvidenceUpsertOne) SetSummary(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateSummary() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSummary()
	})
}

// SetSource sets the "source" field.
func (u *EvidenceUpsertOne) SetSource(v map[string]interface{}) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateSource() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSource()
	})
}

// SetMergedSources sets the "merged_sources" field.
func (u *EvidenceUpsertOne) SetMergedSources(v []map[string]interface{}) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetMergedSources(v)
	})
}

// UpdateMergedSources sets the "merged_sources" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateMergedSources() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateMergedSources()
	})
}

// ClearMergedSources clears the value of the "merged_sources" field.
func (u *EvidenceUpsertOne) ClearMergedSources() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearMergedSources()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EvidenceUpsertOne) SetConfidence(v float64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EvidenceUpsertOne) AddConfidence(v float64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateConfidence() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateConfidence()
	})
}

// SetRelevance sets the "relevance" field.
func (u *EvidenceUpsertOne) SetRelevance(v float64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetRelevance(v)
	})
}

// AddRelevance adds v to the "relevance" field.
func (u *EvidenceUpsertOne) AddRelevance(v float64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddRelevance(v)
	})
}

// UpdateRelevance sets the "relevance" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateRelevance() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateRelevance()
	})
}

// SetScore sets the "score" field.
func (u *EvidenceUpsertOne) SetScore(v float64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *EvidenceUpsertOne) AddScore(v float64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateScore() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateScore()
	})
}

// SetTokens sets the "tokens" field.
func (u *EvidenceUpsertOne) SetTokens(v int) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *EvidenceUpsertOne) AddTokens(v int) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateTokens() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateTokens()
	})
}

// SetFallback sets the "fallback" field.
func (u *EvidenceUpsertOne) SetFallback(v bool) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateFallback() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateFallback()
	})
}

// SetProcessingTrail sets the "processing_trail" field.
func (u *EvidenceUpsertOne) SetProcessingTrail(v []string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetProcessingTrail(v)
	})
}

// UpdateProcessingTrail sets the "processing_trail" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateProcessingTrail() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateProcessingTrail()
	})
}

// ClearProcessingTrail clears the value of the "processing_trail" field.
func (u *EvidenceUpsertOne) ClearProcessingTrail() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearProcessingTrail()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EvidenceUpsertOne) SetMetadata(v map[string]interface{}) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateMetadata() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EvidenceUpsertOne) ClearMetadata() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EvidenceUpsertOne) SetEmbedding(v []float64) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateEmbedding() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EvidenceUpsertOne) ClearEmbedding() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearEmbedding()
	})
}

// SetFingerprint sets the "fingerprint" field.
func (u *EvidenceUpsertOne) SetFingerprint(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetFingerprint(v)
	})
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateFingerprint() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateFingerprint()
	})
}

// Exec executes the query.
func (u *EvidenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvidenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvidenceUpsertOne.ID is not supported by MySQL driver. Use EvidenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvidenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvidenceCreateBulk is the builder for creating many Evidence entities in bulk.
type EvidenceCreateBulk struct {
	config
	err      error
	builders []*EvidenceCreate
	conflict []sql.ConflictOption
}

// Save creates the Evidence entities in the database.
func (_c *EvidenceCreateBulk) Save(ctx context.Context) ([]*Evidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceMutation)
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
func (_c *EvidenceCreateBulk) SaveX(ctx context.Context) []*Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evidence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetScanID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertBulk {
	_c.conflict = opts
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflictColumns(columns ...string) *EvidenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// EvidenceUpsertBulk is the builder for "upsert"-ing
// a bulk of Evidence nodes.
type EvidenceUpsertBulk struct {
	create *EvidenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) UpdateNewValues() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evidence.FieldID)
			}
			if _, exists := b.mutation.ScanID(); exists {
				s.SetIgnore(evidence.FieldScanID)
			}
			if _, exists := b.mutation.CollectionID(); exists {
				s.SetIgnore(evidence.FieldCollectionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evidence.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) Ignore() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertBulk) DoNothing() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreateBulk.OnConflict
// documentation for more info.
func (u *EvidenceUpsertBulk) Update(set func(*EvidenceUpsert)) *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *EvidenceUpsertBulk) SetCategory(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateCategory() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateCategory()
	})
}

// SetEvidenceType sets the "evidence_type" field.
func (u *EvidenceUpsertBulk) SetEvidenceType(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceType(v)
	})
}

// UpdateEvidenceType sets the "evidence_type" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateEvidenceType() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceType()
	})
}

// SetTitle sets the "title" field.
func (u *EvidenceUpsertBulk) SetTitle(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateTitle() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *EvidenceUpsertBulk) ClearTitle() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearTitle()
	})
}

// SetRaw sets the "raw" field.
func (u *EvidenceUpsertBulk) SetRaw(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetRaw(v)
	})
}

// UpdateRaw sets the "raw" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateRaw() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateRaw()
	})
}

// ClearRaw clears the value of the "raw" field.
func (u *EvidenceUpsertBulk) ClearRaw() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearRaw()
	})
}

// SetSummary sets the "summary" field.
func (u *EvidenceUpsertBulk) SetSummary(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateSummary() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSummary()
	})
}

// SetSource sets the "source" field.
func (u *EvidenceUpsertBulk) SetSource(v map[string]interface{}) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateSource() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSource()
	})
}

// SetMergedSources sets the "merged_sources" field.
func (u *EvidenceUpsertBulk) SetMergedSources(v []map[string]interface{}) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetMergedSources(v)
	})
}

// UpdateMergedSources sets the "merged_sources" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateMergedSources() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateMergedSources()
	})
}

// ClearMergedSources clears the value of the "merged_sources" field.
func (u *EvidenceUpsertBulk) ClearMergedSources() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearMergedSources()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EvidenceUpsertBulk) SetConfidence(v float64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EvidenceUpsertBulk) AddConfidence(v float64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateConfidence() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateConfidence()
	})
}

// SetRelevance sets the "relevance" field.
func (u *EvidenceUpsertBulk) SetRelevance(v float64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetRelevance(v)
	})
}

// AddRelevance adds v to the "relevance" field.
func (u *EvidenceUpsertBulk) AddRelevance(v float64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddRelevance(v)
	})
}

// UpdateRelevance sets the "relevance" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateRelevance() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateRelevance()
	})
}

// SetScore sets the "score" field.
func (u *EvidenceUpsertBulk) SetScore(v float64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *EvidenceUpsertBulk) AddScore(v float64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateScore() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateScore()
	})
}

// SetTokens sets the "tokens" field.
func (u *EvidenceUpsertBulk) SetTokens(v int) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *EvidenceUpsertBulk) AddTokens(v int) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateTokens() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateTokens()
	})
}

// SetFallback sets the "fallback" field.
func (u *EvidenceUpsertBulk) SetFallback(v bool) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateFallback() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateFallback()
	})
}

// SetProcessingTrail sets the "processing_trail" field.
func (u *EvidenceUpsertBulk) SetProcessingTrail(v []string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetProcessingTrail(v)
	})
}

// UpdateProcessingTrail sets the "processing_trail" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateProcessingTrail() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateProcessingTrail()
	})
}

// ClearProcessingTrail clears the value of the "processing_trail" field.
func (u *EvidenceUpsertBulk) ClearProcessingTrail() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearProcessingTrail()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EvidenceUpsertBulk) SetMetadata(v map[string]interface{}) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateMetadata() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EvidenceUpsertBulk) ClearMetadata() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearMetadata()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EvidenceUpsertBulk) SetEmbedding(v []float64) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateEmbedding() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EvidenceUpsertBulk) ClearEmbedding() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearEmbedding()
	})
}

// SetFingerprint sets the "fingerprint" field.
func (u *EvidenceUpsertBulk) SetFingerprint(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetFingerprint(v)
	})
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateFingerprint() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateFingerprint()
	})
}

// Exec executes the query.
func (u *EvidenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvidenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
