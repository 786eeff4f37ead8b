// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/event"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/predicate"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/stageresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCitation           = "Citation"
	TypeCollectorJob       = "CollectorJob"
	TypeEvent              = "Event"
	TypeEvidence           = "Evidence"
	TypeEvidenceCollection = "EvidenceCollection"
	TypeReport             = "Report"
	TypeReportSection      = "ReportSection"
	TypeScanRequest        = "ScanRequest"
	TypeStageResult        = "StageResult"
)

// CitationMutation represents an operation that mutates the Citation nodes in the graph.
type CitationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	citation_number    *int
	addcitation_number *int
	claim              *string
	quote              *string
	context            *string
	confidence         *float64
	addconfidence      *float64
	weak_anchor        *bool
	clearedFields      map[string]struct{}
	report             *string
	clearedreport      bool
	section            *string
	clearedsection     bool
	evidence           *string
	clearedevidence    bool
	done               bool
	oldValue           func(context.Context) (*Citation, error)
	predicates         []predicate.Citation
}

var _ ent.Mutation = (*CitationMutation)(nil)

// citationOption allows management of the mutation configuration using functional options.
type citationOption func(*CitationMutation)

// newCitationMutation creates new mutation for the Citation entity.
func newCitationMutation(c config, op Op, opts ...citationOption) *CitationMutation {
	m := &CitationMutation{
		config:        c,
		op:            op,
		typ:           TypeCitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCitationID sets the ID field of the mutation.
func withCitationID(id string) citationOption {
	return func(m *CitationMutation) {
		var (
			err   error
			once  sync.Once
			value *Citation
		)
		m.oldValue = func(ctx context.Context) (*Citation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Citation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCitation sets the old Citation of the mutation.
func withCitation(node *Citation) citationOption {
	return func(m *CitationMutation) {
		m.oldValue = func(context.Context) (*Citation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Citation entities.
func (m *CitationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CitationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CitationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Citation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *CitationMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *CitationMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *CitationMutation) ResetReportID() {
	m.report = nil
}

// SetSectionID sets the "section_id" field.
func (m *CitationMutation) SetSectionID(s string) {
	m.section = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *CitationMutation) SectionID() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *CitationMutation) ResetSectionID() {
	m.section = nil
}

// SetCitationNumber sets the "citation_number" field.
func (m *CitationMutation) SetCitationNumber(i int) {
	m.citation_number = &i
	m.addcitation_number = nil
}

// CitationNumber returns the value of the "citation_number" field in the mutation.
func (m *CitationMutation) CitationNumber() (r int, exists bool) {
	v := m.citation_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCitationNumber returns the old "citation_number" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldCitationNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitationNumber: %w", err)
	}
	return oldValue.CitationNumber, nil
}

// AddCitationNumber adds i to the "citation_number" field.
func (m *CitationMutation) AddCitationNumber(i int) {
	if m.addcitation_number != nil {
		*m.addcitation_number += i
	} else {
		m.addcitation_number = &i
	}
}

// AddedCitationNumber returns the value that was added to the "citation_number" field in this mutation.
func (m *CitationMutation) AddedCitationNumber() (r int, exists bool) {
	v := m.addcitation_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetCitationNumber resets all changes to the "citation_number" field.
func (m *CitationMutation) ResetCitationNumber() {
	m.citation_number = nil
	m.addcitation_number = nil
}

// SetClaim sets the "claim" field.
func (m *CitationMutation) SetClaim(s string) {
	m.claim = &s
}

// Claim returns the value of the "claim" field in the mutation.
func (m *CitationMutation) Claim() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaim returns the old "claim" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaim: %w", err)
	}
	return oldValue.Claim, nil
}

// ResetClaim resets all changes to the "claim" field.
func (m *CitationMutation) ResetClaim() {
	m.claim = nil
}

// SetEvidenceID sets the "evidence_id" field.
func (m *CitationMutation) SetEvidenceID(s string) {
	m.evidence = &s
}

// EvidenceID returns the value of the "evidence_id" field in the mutation.
func (m *CitationMutation) EvidenceID() (r string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceID returns the old "evidence_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldEvidenceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceID: %w", err)
	}
	return oldValue.EvidenceID, nil
}

// ResetEvidenceID resets all changes to the "evidence_id" field.
func (m *CitationMutation) ResetEvidenceID() {
	m.evidence = nil
}

// SetQuote sets the "quote" field.
func (m *CitationMutation) SetQuote(s string) {
	m.quote = &s
}

// Quote returns the value of the "quote" field in the mutation.
func (m *CitationMutation) Quote() (r string, exists bool) {
	v := m.quote
	if v == nil {
		return
	}
	return *v, true
}

// OldQuote returns the old "quote" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuote: %w", err)
	}
	return oldValue.Quote, nil
}

// ClearQuote clears the value of the "quote" field.
func (m *CitationMutation) ClearQuote() {
	m.quote = nil
	m.clearedFields[citation.FieldQuote] = struct{}{}
}

// QuoteCleared returns if the "quote" field was cleared in this mutation.
func (m *CitationMutation) QuoteCleared() bool {
	_, ok := m.clearedFields[citation.FieldQuote]
	return ok
}

// ResetQuote resets all changes to the "quote" field.
func (m *CitationMutation) ResetQuote() {
	m.quote = nil
	delete(m.clearedFields, citation.FieldQuote)
}

// SetContext sets the "context" field.
func (m *CitationMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *CitationMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *CitationMutation) ClearContext() {
	m.context = nil
	m.clearedFields[citation.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *CitationMutation) ContextCleared() bool {
	_, ok := m.clearedFields[citation.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *CitationMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, citation.FieldContext)
}

// SetConfidence sets the "confidence" field.
func (m *CitationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CitationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *CitationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CitationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CitationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetWeakAnchor sets the "weak_anchor" field.
func (m *CitationMutation) SetWeakAnchor(b bool) {
	m.weak_anchor = &b
}

// WeakAnchor returns the value of the "weak_anchor" field in the mutation.
func (m *CitationMutation) WeakAnchor() (r bool, exists bool) {
	v := m.weak_anchor
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakAnchor returns the old "weak_anchor" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldWeakAnchor(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakAnchor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakAnchor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakAnchor: %w", err)
	}
	return oldValue.WeakAnchor, nil
}

// ResetWeakAnchor resets all changes to the "weak_anchor" field.
func (m *CitationMutation) ResetWeakAnchor() {
	m.weak_anchor = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *CitationMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[citation.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *CitationMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *CitationMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *CitationMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearSection clears the "section" edge to the ReportSection entity.
func (m *CitationMutation) ClearSection() {
	m.clearedsection = true
	m.clearedFields[citation.FieldSectionID] = struct{}{}
}

// SectionCleared reports if the "section" edge to the ReportSection entity was cleared.
func (m *CitationMutation) SectionCleared() bool {
	return m.clearedsection
}

// SectionIDs returns the "section" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SectionID instead. It exists only for internal usage by the builders.
func (m *CitationMutation) SectionIDs() (ids []string) {
	if id := m.section; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSection resets all changes to the "section" edge.
func (m *CitationMutation) ResetSection() {
	m.section = nil
	m.clearedsection = false
}

// ClearEvidence clears the "evidence" edge to the Evidence entity.
func (m *CitationMutation) ClearEvidence() {
	m.clearedevidence = true
	m.clearedFields[citation.FieldEvidenceID] = struct{}{}
}

// EvidenceCleared reports if the "evidence" edge to the Evidence entity was cleared.
func (m *CitationMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvidenceID instead. It exists only for internal usage by the builders.
func (m *CitationMutation) EvidenceIDs() (ids []string) {
	if id := m.evidence; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *CitationMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
}

// Where appends a list predicates to the CitationMutation builder.
func (m *CitationMutation) Where(ps ...predicate.Citation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Citation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Citation).
func (m *CitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CitationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.report != nil {
		fields = append(fields, citation.FieldReportID)
	}
	if m.section != nil {
		fields = append(fields, citation.FieldSectionID)
	}
	if m.citation_number != nil {
		fields = append(fields, citation.FieldCitationNumber)
	}
	if m.claim != nil {
		fields = append(fields, citation.FieldClaim)
	}
	if m.evidence != nil {
		fields = append(fields, citation.FieldEvidenceID)
	}
	if m.quote != nil {
		fields = append(fields, citation.FieldQuote)
	}
	if m.context != nil {
		fields = append(fields, citation.FieldContext)
	}
	if m.confidence != nil {
		fields = append(fields, citation.FieldConfidence)
	}
	if m.weak_anchor != nil {
		fields = append(fields, citation.FieldWeakAnchor)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case citation.FieldReportID:
		return m.ReportID()
	case citation.FieldSectionID:
		return m.SectionID()
	case citation.FieldCitationNumber:
		return m.CitationNumber()
	case citation.FieldClaim:
		return m.Claim()
	case citation.FieldEvidenceID:
		return m.EvidenceID()
	case citation.FieldQuote:
		return m.Quote()
	case citation.FieldContext:
		return m.Context()
	case citation.FieldConfidence:
		return m.Confidence()
	case citation.FieldWeakAnchor:
		return m.WeakAnchor()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case citation.FieldReportID:
		return m.OldReportID(ctx)
	case citation.FieldSectionID:
		return m.OldSectionID(ctx)
	case citation.FieldCitationNumber:
		return m.OldCitationNumber(ctx)
	case citation.FieldClaim:
		return m.OldClaim(ctx)
	case citation.FieldEvidenceID:
		return m.OldEvidenceID(ctx)
	case citation.FieldQuote:
		return m.OldQuote(ctx)
	case citation.FieldContext:
		return m.OldContext(ctx)
	case citation.FieldConfidence:
		return m.OldConfidence(ctx)
	case citation.FieldWeakAnchor:
		return m.OldWeakAnchor(ctx)
	}
	return nil, fmt.Errorf("unknown Citation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case citation.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case citation.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case citation.FieldCitationNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitationNumber(v)
		return nil
	case citation.FieldClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaim(v)
		return nil
	case citation.FieldEvidenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceID(v)
		return nil
	case citation.FieldQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuote(v)
		return nil
	case citation.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case citation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case citation.FieldWeakAnchor:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakAnchor(v)
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CitationMutation) AddedFields() []string {
	var fields []string
	if m.addcitation_number != nil {
		fields = append(fields, citation.FieldCitationNumber)
	}
	if m.addconfidence != nil {
		fields = append(fields, citation.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CitationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case citation.FieldCitationNumber:
		return m.AddedCitationNumber()
	case citation.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case citation.FieldCitationNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCitationNumber(v)
		return nil
	case citation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Citation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(citation.FieldQuote) {
		fields = append(fields, citation.FieldQuote)
	}
	if m.FieldCleared(citation.FieldContext) {
		fields = append(fields, citation.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CitationMutation) ClearField(name string) error {
	switch name {
	case citation.FieldQuote:
		m.ClearQuote()
		return nil
	case citation.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown Citation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CitationMutation) ResetField(name string) error {
	switch name {
	case citation.FieldReportID:
		m.ResetReportID()
		return nil
	case citation.FieldSectionID:
		m.ResetSectionID()
		return nil
	case citation.FieldCitationNumber:
		m.ResetCitationNumber()
		return nil
	case citation.FieldClaim:
		m.ResetClaim()
		return nil
	case citation.FieldEvidenceID:
		m.ResetEvidenceID()
		return nil
	case citation.FieldQuote:
		m.ResetQuote()
		return nil
	case citation.FieldContext:
		m.ResetContext()
		return nil
	case citation.FieldConfidence:
		m.ResetConfidence()
		return nil
	case citation.FieldWeakAnchor:
		m.ResetWeakAnchor()
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.report != nil {
		edges = append(edges, citation.EdgeReport)
	}
	if m.section != nil {
		edges = append(edges, citation.EdgeSection)
	}
	if m.evidence != nil {
		edges = append(edges, citation.EdgeEvidence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case citation.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case citation.EdgeSection:
		if id := m.section; id != nil {
			return []ent.Value{*id}
		}
	case citation.EdgeEvidence:
		if id := m.evidence; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreport {
		edges = append(edges, citation.EdgeReport)
	}
	if m.clearedsection {
		edges = append(edges, citation.EdgeSection)
	}
	if m.clearedevidence {
		edges = append(edges, citation.EdgeEvidence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CitationMutation) EdgeCleared(name string) bool {
	switch name {
	case citation.EdgeReport:
		return m.clearedreport
	case citation.EdgeSection:
		return m.clearedsection
	case citation.EdgeEvidence:
		return m.clearedevidence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CitationMutation) ClearEdge(name string) error {
	switch name {
	case citation.EdgeReport:
		m.ClearReport()
		return nil
	case citation.EdgeSection:
		m.ClearSection()
		return nil
	case citation.EdgeEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown Citation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CitationMutation) ResetEdge(name string) error {
	switch name {
	case citation.EdgeReport:
		m.ResetReport()
		return nil
	case citation.EdgeSection:
		m.ResetSection()
		return nil
	case citation.EdgeEvidence:
		m.ResetEvidence()
		return nil
	}
	return fmt.Errorf("unknown Citation edge %s", name)
}

// CollectorJobMutation represents an operation that mutates the CollectorJob nodes in the graph.
type CollectorJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	queue               *string
	collector_name      *string
	payload             *map[string]interface{}
	priority            *int
	addpriority         *int
	attempt             *int
	addattempt          *int
	max_attempts        *int
	addmax_attempts     *int
	status              *collectorjob.Status
	dedup_key           *string
	scheduled_at        *time.Time
	visibility_deadline *time.Time
	claimed_by          *string
	last_error          *string
	created_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	scan                *string
	clearedscan         bool
	done                bool
	oldValue            func(context.Context) (*CollectorJob, error)
	predicates          []predicate.CollectorJob
}

var _ ent.Mutation = (*CollectorJobMutation)(nil)

// collectorjobOption allows management of the mutation configuration using functional options.
type collectorjobOption func(*CollectorJobMutation)

// newCollectorJobMutation creates new mutation for the CollectorJob entity.
func newCollectorJobMutation(c config, op Op, opts ...collectorjobOption) *CollectorJobMutation {
	m := &CollectorJobMutation{
		config:        c,
		op:            op,
		typ:           TypeCollectorJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollectorJobID sets the ID field of the mutation.
func withCollectorJobID(id string) collectorjobOption {
	return func(m *CollectorJobMutation) {
		var (
			err   error
			once  sync.Once
			value *CollectorJob
		)
		m.oldValue = func(ctx context.Context) (*CollectorJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CollectorJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollectorJob sets the old CollectorJob of the mutation.
func withCollectorJob(node *CollectorJob) collectorjobOption {
	return func(m *CollectorJobMutation) {
		m.oldValue = func(context.Context) (*CollectorJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollectorJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollectorJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CollectorJob entities.
func (m *CollectorJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollectorJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollectorJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CollectorJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanID sets the "scan_id" field.
func (m *CollectorJobMutation) SetScanID(s string) {
	m.scan = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *CollectorJobMutation) ScanID() (r string, exists bool) {
	v := m.scan
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *CollectorJobMutation) ResetScanID() {
	m.scan = nil
}

// SetQueue sets the "queue" field.
func (m *CollectorJobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *CollectorJobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *CollectorJobMutation) ResetQueue() {
	m.queue = nil
}

// SetCollectorName sets the "collector_name" field.
func (m *CollectorJobMutation) SetCollectorName(s string) {
	m.collector_name = &s
}

// CollectorName returns the value of the "collector_name" field in the mutation.
func (m *CollectorJobMutation) CollectorName() (r string, exists bool) {
	v := m.collector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectorName returns the old "collector_name" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldCollectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectorName: %w", err)
	}
	return oldValue.CollectorName, nil
}

// ClearCollectorName clears the value of the "collector_name" field.
func (m *CollectorJobMutation) ClearCollectorName() {
	m.collector_name = nil
	m.clearedFields[collectorjob.FieldCollectorName] = struct{}{}
}

// CollectorNameCleared returns if the "collector_name" field was cleared in this mutation.
func (m *CollectorJobMutation) CollectorNameCleared() bool {
	_, ok := m.clearedFields[collectorjob.FieldCollectorName]
	return ok
}

// ResetCollectorName resets all changes to the "collector_name" field.
func (m *CollectorJobMutation) ResetCollectorName() {
	m.collector_name = nil
	delete(m.clearedFields, collectorjob.FieldCollectorName)
}

// SetPayload sets the "payload" field.
func (m *CollectorJobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *CollectorJobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *CollectorJobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[collectorjob.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *CollectorJobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[collectorjob.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *CollectorJobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, collectorjob.FieldPayload)
}

// SetPriority sets the "priority" field.
func (m *CollectorJobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *CollectorJobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *CollectorJobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *CollectorJobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *CollectorJobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAttempt sets the "attempt" field.
func (m *CollectorJobMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *CollectorJobMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *CollectorJobMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *CollectorJobMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *CollectorJobMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *CollectorJobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *CollectorJobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *CollectorJobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *CollectorJobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *CollectorJobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetStatus sets the "status" field.
func (m *CollectorJobMutation) SetStatus(c collectorjob.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CollectorJobMutation) Status() (r collectorjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldStatus(ctx context.Context) (v collectorjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CollectorJobMutation) ResetStatus() {
	m.status = nil
}

// SetDedupKey sets the "dedup_key" field.
func (m *CollectorJobMutation) SetDedupKey(s string) {
	m.dedup_key = &s
}

// DedupKey returns the value of the "dedup_key" field in the mutation.
func (m *CollectorJobMutation) DedupKey() (r string, exists bool) {
	v := m.dedup_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupKey returns the old "dedup_key" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldDedupKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupKey: %w", err)
	}
	return oldValue.DedupKey, nil
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (m *CollectorJobMutation) ClearDedupKey() {
	m.dedup_key = nil
	m.clearedFields[collectorjob.FieldDedupKey] = struct{}{}
}

// DedupKeyCleared returns if the "dedup_key" field was cleared in this mutation.
func (m *CollectorJobMutation) DedupKeyCleared() bool {
	_, ok := m.clearedFields[collectorjob.FieldDedupKey]
	return ok
}

// ResetDedupKey resets all changes to the "dedup_key" field.
func (m *CollectorJobMutation) ResetDedupKey() {
	m.dedup_key = nil
	delete(m.clearedFields, collectorjob.FieldDedupKey)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *CollectorJobMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *CollectorJobMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *CollectorJobMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetVisibilityDeadline sets the "visibility_deadline" field.
func (m *CollectorJobMutation) SetVisibilityDeadline(t time.Time) {
	m.visibility_deadline = &t
}

// VisibilityDeadline returns the value of the "visibility_deadline" field in the mutation.
func (m *CollectorJobMutation) VisibilityDeadline() (r time.Time, exists bool) {
	v := m.visibility_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibilityDeadline returns the old "visibility_deadline" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldVisibilityDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibilityDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibilityDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibilityDeadline: %w", err)
	}
	return oldValue.VisibilityDeadline, nil
}

// ClearVisibilityDeadline clears the value of the "visibility_deadline" field.
func (m *CollectorJobMutation) ClearVisibilityDeadline() {
	m.visibility_deadline = nil
	m.clearedFields[collectorjob.FieldVisibilityDeadline] = struct{}{}
}

// VisibilityDeadlineCleared returns if the "visibility_deadline" field was cleared in this mutation.
func (m *CollectorJobMutation) VisibilityDeadlineCleared() bool {
	_, ok := m.clearedFields[collectorjob.FieldVisibilityDeadline]
	return ok
}

// ResetVisibilityDeadline resets all changes to the "visibility_deadline" field.
func (m *CollectorJobMutation) ResetVisibilityDeadline() {
	m.visibility_deadline = nil
	delete(m.clearedFields, collectorjob.FieldVisibilityDeadline)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *CollectorJobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *CollectorJobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *CollectorJobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[collectorjob.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *CollectorJobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[collectorjob.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *CollectorJobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, collectorjob.FieldClaimedBy)
}

// SetLastError sets the "last_error" field.
func (m *CollectorJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *CollectorJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *CollectorJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[collectorjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *CollectorJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[collectorjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *CollectorJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, collectorjob.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *CollectorJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollectorJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CollectorJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CollectorJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CollectorJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CollectorJob entity.
// If the CollectorJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectorJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CollectorJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[collectorjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CollectorJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[collectorjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CollectorJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, collectorjob.FieldCompletedAt)
}

// ClearScan clears the "scan" edge to the ScanRequest entity.
func (m *CollectorJobMutation) ClearScan() {
	m.clearedscan = true
	m.clearedFields[collectorjob.FieldScanID] = struct{}{}
}

// ScanCleared reports if the "scan" edge to the ScanRequest entity was cleared.
func (m *CollectorJobMutation) ScanCleared() bool {
	return m.clearedscan
}

// ScanIDs returns the "scan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScanID instead. It exists only for internal usage by the builders.
func (m *CollectorJobMutation) ScanIDs() (ids []string) {
	if id := m.scan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScan resets all changes to the "scan" edge.
func (m *CollectorJobMutation) ResetScan() {
	m.scan = nil
	m.clearedscan = false
}

// Where appends a list predicates to the CollectorJobMutation builder.
func (m *CollectorJobMutation) Where(ps ...predicate.CollectorJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollectorJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollectorJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CollectorJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollectorJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollectorJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CollectorJob).
func (m *CollectorJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollectorJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.scan != nil {
		fields = append(fields, collectorjob.FieldScanID)
	}
	if m.queue != nil {
		fields = append(fields, collectorjob.FieldQueue)
	}
	if m.collector_name != nil {
		fields = append(fields, collectorjob.FieldCollectorName)
	}
	if m.payload != nil {
		fields = append(fields, collectorjob.FieldPayload)
	}
	if m.priority != nil {
		fields = append(fields, collectorjob.FieldPriority)
	}
	if m.attempt != nil {
		fields = append(fields, collectorjob.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, collectorjob.FieldMaxAttempts)
	}
	if m.status != nil {
		fields = append(fields, collectorjob.FieldStatus)
	}
	if m.dedup_key != nil {
		fields = append(fields, collectorjob.FieldDedupKey)
	}
	if m.scheduled_at != nil {
		fields = append(fields, collectorjob.FieldScheduledAt)
	}
	if m.visibility_deadline != nil {
		fields = append(fields, collectorjob.FieldVisibilityDeadline)
	}
	if m.claimed_by != nil {
		fields = append(fields, collectorjob.FieldClaimedBy)
	}
	if m.last_error != nil {
		fields = append(fields, collectorjob.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, collectorjob.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, collectorjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollectorJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collectorjob.FieldScanID:
		return m.ScanID()
	case collectorjob.FieldQueue:
		return m.Queue()
	case collectorjob.FieldCollectorName:
		return m.CollectorName()
	case collectorjob.FieldPayload:
		return m.Payload()
	case collectorjob.FieldPriority:
		return m.Priority()
	case collectorjob.FieldAttempt:
		return m.Attempt()
	case collectorjob.FieldMaxAttempts:
		return m.MaxAttempts()
	case collectorjob.FieldStatus:
		return m.Status()
	case collectorjob.FieldDedupKey:
		return m.DedupKey()
	case collectorjob.FieldScheduledAt:
		return m.ScheduledAt()
	case collectorjob.FieldVisibilityDeadline:
		return m.VisibilityDeadline()
	case collectorjob.FieldClaimedBy:
		return m.ClaimedBy()
	case collectorjob.FieldLastError:
		return m.LastError()
	case collectorjob.FieldCreatedAt:
		return m.CreatedAt()
	case collectorjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollectorJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collectorjob.FieldScanID:
		return m.OldScanID(ctx)
	case collectorjob.FieldQueue:
		return m.OldQueue(ctx)
	case collectorjob.FieldCollectorName:
		return m.OldCollectorName(ctx)
	case collectorjob.FieldPayload:
		return m.OldPayload(ctx)
	case collectorjob.FieldPriority:
		return m.OldPriority(ctx)
	case collectorjob.FieldAttempt:
		return m.OldAttempt(ctx)
	case collectorjob.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case collectorjob.FieldStatus:
		return m.OldStatus(ctx)
	case collectorjob.FieldDedupKey:
		return m.OldDedupKey(ctx)
	case collectorjob.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case collectorjob.FieldVisibilityDeadline:
		return m.OldVisibilityDeadline(ctx)
	case collectorjob.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case collectorjob.FieldLastError:
		return m.OldLastError(ctx)
	case collectorjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case collectorjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CollectorJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectorJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collectorjob.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case collectorjob.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case collectorjob.FieldCollectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectorName(v)
		return nil
	case collectorjob.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case collectorjob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case collectorjob.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case collectorjob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case collectorjob.FieldStatus:
		v, ok := value.(collectorjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case collectorjob.FieldDedupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupKey(v)
		return nil
	case collectorjob.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case collectorjob.FieldVisibilityDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibilityDeadline(v)
		return nil
	case collectorjob.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case collectorjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case collectorjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case collectorjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CollectorJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollectorJobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, collectorjob.FieldPriority)
	}
	if m.addattempt != nil {
		fields = append(fields, collectorjob.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, collectorjob.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollectorJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case collectorjob.FieldPriority:
		return m.AddedPriority()
	case collectorjob.FieldAttempt:
		return m.AddedAttempt()
	case collectorjob.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectorJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case collectorjob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case collectorjob.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case collectorjob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown CollectorJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollectorJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collectorjob.FieldCollectorName) {
		fields = append(fields, collectorjob.FieldCollectorName)
	}
	if m.FieldCleared(collectorjob.FieldPayload) {
		fields = append(fields, collectorjob.FieldPayload)
	}
	if m.FieldCleared(collectorjob.FieldDedupKey) {
		fields = append(fields, collectorjob.FieldDedupKey)
	}
	if m.FieldCleared(collectorjob.FieldVisibilityDeadline) {
		fields = append(fields, collectorjob.FieldVisibilityDeadline)
	}
	if m.FieldCleared(collectorjob.FieldClaimedBy) {
		fields = append(fields, collectorjob.FieldClaimedBy)
	}
	if m.FieldCleared(collectorjob.FieldLastError) {
		fields = append(fields, collectorjob.FieldLastError)
	}
	if m.FieldCleared(collectorjob.FieldCompletedAt) {
		fields = append(fields, collectorjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollectorJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollectorJobMutation) ClearField(name string) error {
	switch name {
	case collectorjob.FieldCollectorName:
		m.ClearCollectorName()
		return nil
	case collectorjob.FieldPayload:
		m.ClearPayload()
		return nil
	case collectorjob.FieldDedupKey:
		m.ClearDedupKey()
		return nil
	case collectorjob.FieldVisibilityDeadline:
		m.ClearVisibilityDeadline()
		return nil
	case collectorjob.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case collectorjob.FieldLastError:
		m.ClearLastError()
		return nil
	case collectorjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CollectorJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollectorJobMutation) ResetField(name string) error {
	switch name {
	case collectorjob.FieldScanID:
		m.ResetScanID()
		return nil
	case collectorjob.FieldQueue:
		m.ResetQueue()
		return nil
	case collectorjob.FieldCollectorName:
		m.ResetCollectorName()
		return nil
	case collectorjob.FieldPayload:
		m.ResetPayload()
		return nil
	case collectorjob.FieldPriority:
		m.ResetPriority()
		return nil
	case collectorjob.FieldAttempt:
		m.ResetAttempt()
		return nil
	case collectorjob.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case collectorjob.FieldStatus:
		m.ResetStatus()
		return nil
	case collectorjob.FieldDedupKey:
		m.ResetDedupKey()
		return nil
	case collectorjob.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case collectorjob.FieldVisibilityDeadline:
		m.ResetVisibilityDeadline()
		return nil
	case collectorjob.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case collectorjob.FieldLastError:
		m.ResetLastError()
		return nil
	case collectorjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case collectorjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CollectorJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollectorJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scan != nil {
		edges = append(edges, collectorjob.EdgeScan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollectorJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case collectorjob.EdgeScan:
		if id := m.scan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollectorJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollectorJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollectorJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscan {
		edges = append(edges, collectorjob.EdgeScan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollectorJobMutation) EdgeCleared(name string) bool {
	switch name {
	case collectorjob.EdgeScan:
		return m.clearedscan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollectorJobMutation) ClearEdge(name string) error {
	switch name {
	case collectorjob.EdgeScan:
		m.ClearScan()
		return nil
	}
	return fmt.Errorf("unknown CollectorJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollectorJobMutation) ResetEdge(name string) error {
	switch name {
	case collectorjob.EdgeScan:
		m.ResetScan()
		return nil
	}
	return fmt.Errorf("unknown CollectorJob edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	channel       *string
	sequence      *int64
	addsequence   *int64
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	scan          *string
	clearedscan   bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanID sets the "scan_id" field.
func (m *EventMutation) SetScanID(s string) {
	m.scan = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *EventMutation) ScanID() (r string, exists bool) {
	v := m.scan
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *EventMutation) ResetScanID() {
	m.scan = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetSequence sets the "sequence" field.
func (m *EventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearScan clears the "scan" edge to the ScanRequest entity.
func (m *EventMutation) ClearScan() {
	m.clearedscan = true
	m.clearedFields[event.FieldScanID] = struct{}{}
}

// ScanCleared reports if the "scan" edge to the ScanRequest entity was cleared.
func (m *EventMutation) ScanCleared() bool {
	return m.clearedscan
}

// ScanIDs returns the "scan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScanID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ScanIDs() (ids []string) {
	if id := m.scan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScan resets all changes to the "scan" edge.
func (m *EventMutation) ResetScan() {
	m.scan = nil
	m.clearedscan = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.scan != nil {
		fields = append(fields, event.FieldScanID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.sequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldScanID:
		return m.ScanID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldSequence:
		return m.Sequence()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldScanID:
		return m.OldScanID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldSequence:
		return m.OldSequence(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldScanID:
		m.ResetScanID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldSequence:
		m.ResetSequence()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scan != nil {
		edges = append(edges, event.EdgeScan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeScan:
		if id := m.scan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscan {
		edges = append(edges, event.EdgeScan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeScan:
		return m.clearedscan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeScan:
		m.ClearScan()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeScan:
		m.ResetScan()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	category               *string
	evidence_type          *string
	title                  *string
	raw                    *string
	summary                *string
	source                 *map[string]interface{}
	merged_sources         *[]map[string]interface{}
	appendmerged_sources   []map[string]interface{}
	confidence             *float64
	addconfidence          *float64
	relevance              *float64
	addrelevance           *float64
	score                  *float64
	addscore               *float64
	tokens                 *int
	addtokens              *int
	fallback               *bool
	processing_trail       *[]string
	appendprocessing_trail []string
	metadata               *map[string]interface{}
	embedding              *[]float64
	appendembedding        []float64
	fingerprint            *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	scan                   *string
	clearedscan            bool
	collection             *string
	clearedcollection      bool
	citations              map[string]struct{}
	removedcitations       map[string]struct{}
	clearedcitations       bool
	done                   bool
	oldValue               func(context.Context) (*Evidence, error)
	predicates             []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id string) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanID sets the "scan_id" field.
func (m *EvidenceMutation) SetScanID(s string) {
	m.scan = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *EvidenceMutation) ScanID() (r string, exists bool) {
	v := m.scan
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *EvidenceMutation) ResetScanID() {
	m.scan = nil
}

// SetCollectionID sets the "collection_id" field.
func (m *EvidenceMutation) SetCollectionID(s string) {
	m.collection = &s
}

// CollectionID returns the value of the "collection_id" field in the mutation.
func (m *EvidenceMutation) CollectionID() (r string, exists bool) {
	v := m.collection
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionID returns the old "collection_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCollectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionID: %w", err)
	}
	return oldValue.CollectionID, nil
}

// ResetCollectionID resets all changes to the "collection_id" field.
func (m *EvidenceMutation) ResetCollectionID() {
	m.collection = nil
}

// SetCategory sets the "category" field.
func (m *EvidenceMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *EvidenceMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *EvidenceMutation) ResetCategory() {
	m.category = nil
}

// SetEvidenceType sets the "evidence_type" field.
func (m *EvidenceMutation) SetEvidenceType(s string) {
	m.evidence_type = &s
}

// EvidenceType returns the value of the "evidence_type" field in the mutation.
func (m *EvidenceMutation) EvidenceType() (r string, exists bool) {
	v := m.evidence_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceType returns the old "evidence_type" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldEvidenceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceType: %w", err)
	}
	return oldValue.EvidenceType, nil
}

// ResetEvidenceType resets all changes to the "evidence_type" field.
func (m *EvidenceMutation) ResetEvidenceType() {
	m.evidence_type = nil
}

// SetTitle sets the "title" field.
func (m *EvidenceMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EvidenceMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *EvidenceMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[evidence.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *EvidenceMutation) TitleCleared() bool {
	_, ok := m.clearedFields[evidence.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *EvidenceMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, evidence.FieldTitle)
}

// SetRaw sets the "raw" field.
func (m *EvidenceMutation) SetRaw(s string) {
	m.raw = &s
}

// Raw returns the value of the "raw" field in the mutation.
func (m *EvidenceMutation) Raw() (r string, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRaw returns the old "raw" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaw: %w", err)
	}
	return oldValue.Raw, nil
}

// ClearRaw clears the value of the "raw" field.
func (m *EvidenceMutation) ClearRaw() {
	m.raw = nil
	m.clearedFields[evidence.FieldRaw] = struct{}{}
}

// RawCleared returns if the "raw" field was cleared in this mutation.
func (m *EvidenceMutation) RawCleared() bool {
	_, ok := m.clearedFields[evidence.FieldRaw]
	return ok
}

// ResetRaw resets all changes to the "raw" field.
func (m *EvidenceMutation) ResetRaw() {
	m.raw = nil
	delete(m.clearedFields, evidence.FieldRaw)
}

// SetSummary sets the "summary" field.
func (m *EvidenceMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EvidenceMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *EvidenceMutation) ResetSummary() {
	m.summary = nil
}

// SetSource sets the "source" field.
func (m *EvidenceMutation) SetSource(value map[string]interface{}) {
	m.source = &value
}

// Source returns the value of the "source" field in the mutation.
func (m *EvidenceMutation) Source() (r map[string]interface{}, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSource(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EvidenceMutation) ResetSource() {
	m.source = nil
}

// SetMergedSources sets the "merged_sources" field.
func (m *EvidenceMutation) SetMergedSources(value []map[string]interface{}) {
	m.merged_sources = &value
	m.appendmerged_sources = nil
}

// MergedSources returns the value of the "merged_sources" field in the mutation.
func (m *EvidenceMutation) MergedSources() (r []map[string]interface{}, exists bool) {
	v := m.merged_sources
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedSources returns the old "merged_sources" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldMergedSources(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedSources: %w", err)
	}
	return oldValue.MergedSources, nil
}

// AppendMergedSources adds value to the "merged_sources" field.
func (m *EvidenceMutation) AppendMergedSources(value []map[string]interface{}) {
	m.appendmerged_sources = append(m.appendmerged_sources, value...)
}

// AppendedMergedSources returns the list of values that were appended to the "merged_sources" field in this mutation.
func (m *EvidenceMutation) AppendedMergedSources() ([]map[string]interface{}, bool) {
	if len(m.appendmerged_sources) == 0 {
		return nil, false
	}
	return m.appendmerged_sources, true
}

// ClearMergedSources clears the value of the "merged_sources" field.
func (m *EvidenceMutation) ClearMergedSources() {
	m.merged_sources = nil
	m.appendmerged_sources = nil
	m.clearedFields[evidence.FieldMergedSources] = struct{}{}
}

// MergedSourcesCleared returns if the "merged_sources" field was cleared in this mutation.
func (m *EvidenceMutation) MergedSourcesCleared() bool {
	_, ok := m.clearedFields[evidence.FieldMergedSources]
	return ok
}

// ResetMergedSources resets all changes to the "merged_sources" field.
func (m *EvidenceMutation) ResetMergedSources() {
	m.merged_sources = nil
	m.appendmerged_sources = nil
	delete(m.clearedFields, evidence.FieldMergedSources)
}

// SetConfidence sets the "confidence" field.
func (m *EvidenceMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EvidenceMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EvidenceMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EvidenceMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EvidenceMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRelevance sets the "relevance" field.
func (m *EvidenceMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *EvidenceMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *EvidenceMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *EvidenceMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *EvidenceMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetScore sets the "score" field.
func (m *EvidenceMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *EvidenceMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *EvidenceMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *EvidenceMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *EvidenceMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTokens sets the "tokens" field.
func (m *EvidenceMutation) SetTokens(i int) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *EvidenceMutation) Tokens() (r int, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *EvidenceMutation) AddTokens(i int) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *EvidenceMutation) AddedTokens() (r int, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *EvidenceMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetFallback sets the "fallback" field.
func (m *EvidenceMutation) SetFallback(b bool) {
	m.fallback = &b
}

// Fallback returns the value of the "fallback" field in the mutation.
func (m *EvidenceMutation) Fallback() (r bool, exists bool) {
	v := m.fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldFallback returns the old "fallback" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallback: %w", err)
	}
	return oldValue.Fallback, nil
}

// ResetFallback resets all changes to the "fallback" field.
func (m *EvidenceMutation) ResetFallback() {
	m.fallback = nil
}

// SetProcessingTrail sets the "processing_trail" field.
func (m *EvidenceMutation) SetProcessingTrail(s []string) {
	m.processing_trail = &s
	m.appendprocessing_trail = nil
}

// ProcessingTrail returns the value of the "processing_trail" field in the mutation.
func (m *EvidenceMutation) ProcessingTrail() (r []string, exists bool) {
	v := m.processing_trail
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTrail returns the old "processing_trail" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldProcessingTrail(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTrail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTrail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTrail: %w", err)
	}
	return oldValue.ProcessingTrail, nil
}

// AppendProcessingTrail adds s to the "processing_trail" field.
func (m *EvidenceMutation) AppendProcessingTrail(s []string) {
	m.appendprocessing_trail = append(m.appendprocessing_trail, s...)
}

// AppendedProcessingTrail returns the list of values that were appended to the "processing_trail" field in this mutation.
func (m *EvidenceMutation) AppendedProcessingTrail() ([]string, bool) {
	if len(m.appendprocessing_trail) == 0 {
		return nil, false
	}
	return m.appendprocessing_trail, true
}

// ClearProcessingTrail clears the value of the "processing_trail" field.
func (m *EvidenceMutation) ClearProcessingTrail() {
	m.processing_trail = nil
	m.appendprocessing_trail = nil
	m.clearedFields[evidence.FieldProcessingTrail] = struct{}{}
}

// ProcessingTrailCleared returns if the "processing_trail" field was cleared in this mutation.
func (m *EvidenceMutation) ProcessingTrailCleared() bool {
	_, ok := m.clearedFields[evidence.FieldProcessingTrail]
	return ok
}

// ResetProcessingTrail resets all changes to the "processing_trail" field.
func (m *EvidenceMutation) ResetProcessingTrail() {
	m.processing_trail = nil
	m.appendprocessing_trail = nil
	delete(m.clearedFields, evidence.FieldProcessingTrail)
}

// SetMetadata sets the "metadata" field.
func (m *EvidenceMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EvidenceMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EvidenceMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[evidence.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EvidenceMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[evidence.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EvidenceMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, evidence.FieldMetadata)
}

// SetEmbedding sets the "embedding" field.
func (m *EvidenceMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *EvidenceMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *EvidenceMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *EvidenceMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *EvidenceMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[evidence.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *EvidenceMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[evidence.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *EvidenceMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, evidence.FieldEmbedding)
}

// SetFingerprint sets the "fingerprint" field.
func (m *EvidenceMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *EvidenceMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *EvidenceMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearScan clears the "scan" edge to the ScanRequest entity.
func (m *EvidenceMutation) ClearScan() {
	m.clearedscan = true
	m.clearedFields[evidence.FieldScanID] = struct{}{}
}

// ScanCleared reports if the "scan" edge to the ScanRequest entity was cleared.
func (m *EvidenceMutation) ScanCleared() bool {
	return m.clearedscan
}

// ScanIDs returns the "scan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScanID instead. It exists only for internal usage by the builders.
func (m *EvidenceMutation) ScanIDs() (ids []string) {
	if id := m.scan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScan resets all changes to the "scan" edge.
func (m *EvidenceMutation) ResetScan() {
	m.scan = nil
	m.clearedscan = false
}

// ClearCollection clears the "collection" edge to the EvidenceCollection entity.
func (m *EvidenceMutation) ClearCollection() {
	m.clearedcollection = true
	m.clearedFields[evidence.FieldCollectionID] = struct{}{}
}

// CollectionCleared reports if the "collection" edge to the EvidenceCollection entity was cleared.
func (m *EvidenceMutation) CollectionCleared() bool {
	return m.clearedcollection
}

// CollectionIDs returns the "collection" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CollectionID instead. It exists only for internal usage by the builders.
func (m *EvidenceMutation) CollectionIDs() (ids []string) {
	if id := m.collection; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCollection resets all changes to the "collection" edge.
func (m *EvidenceMutation) ResetCollection() {
	m.collection = nil
	m.clearedcollection = false
}

// AddCitationIDs adds the "citations" edge to the Citation entity by ids.
func (m *EvidenceMutation) AddCitationIDs(ids ...string) {
	if m.citations == nil {
		m.citations = make(map[string]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the Citation entity.
func (m *EvidenceMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the Citation entity was cleared.
func (m *EvidenceMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the Citation entity by IDs.
func (m *EvidenceMutation) RemoveCitationIDs(ids ...string) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the Citation entity.
func (m *EvidenceMutation) RemovedCitationsIDs() (ids []string) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *EvidenceMutation) CitationsIDs() (ids []string) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *EvidenceMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.scan != nil {
		fields = append(fields, evidence.FieldScanID)
	}
	if m.collection != nil {
		fields = append(fields, evidence.FieldCollectionID)
	}
	if m.category != nil {
		fields = append(fields, evidence.FieldCategory)
	}
	if m.evidence_type != nil {
		fields = append(fields, evidence.FieldEvidenceType)
	}
	if m.title != nil {
		fields = append(fields, evidence.FieldTitle)
	}
	if m.raw != nil {
		fields = append(fields, evidence.FieldRaw)
	}
	if m.summary != nil {
		fields = append(fields, evidence.FieldSummary)
	}
	if m.source != nil {
		fields = append(fields, evidence.FieldSource)
	}
	if m.merged_sources != nil {
		fields = append(fields, evidence.FieldMergedSources)
	}
	if m.confidence != nil {
		fields = append(fields, evidence.FieldConfidence)
	}
	if m.relevance != nil {
		fields = append(fields, evidence.FieldRelevance)
	}
	if m.score != nil {
		fields = append(fields, evidence.FieldScore)
	}
	if m.tokens != nil {
		fields = append(fields, evidence.FieldTokens)
	}
	if m.fallback != nil {
		fields = append(fields, evidence.FieldFallback)
	}
	if m.processing_trail != nil {
		fields = append(fields, evidence.FieldProcessingTrail)
	}
	if m.metadata != nil {
		fields = append(fields, evidence.FieldMetadata)
	}
	if m.embedding != nil {
		fields = append(fields, evidence.FieldEmbedding)
	}
	if m.fingerprint != nil {
		fields = append(fields, evidence.FieldFingerprint)
	}
	if m.created_at != nil {
		fields = append(fields, evidence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldScanID:
		return m.ScanID()
	case evidence.FieldCollectionID:
		return m.CollectionID()
	case evidence.FieldCategory:
		return m.Category()
	case evidence.FieldEvidenceType:
		return m.EvidenceType()
	case evidence.FieldTitle:
		return m.Title()
	case evidence.FieldRaw:
		return m.Raw()
	case evidence.FieldSummary:
		return m.Summary()
	case evidence.FieldSource:
		return m.Source()
	case evidence.FieldMergedSources:
		return m.MergedSources()
	case evidence.FieldConfidence:
		return m.Confidence()
	case evidence.FieldRelevance:
		return m.Relevance()
	case evidence.FieldScore:
		return m.Score()
	case evidence.FieldTokens:
		return m.Tokens()
	case evidence.FieldFallback:
		return m.Fallback()
	case evidence.FieldProcessingTrail:
		return m.ProcessingTrail()
	case evidence.FieldMetadata:
		return m.Metadata()
	case evidence.FieldEmbedding:
		return m.Embedding()
	case evidence.FieldFingerprint:
		return m.Fingerprint()
	case evidence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldScanID:
		return m.OldScanID(ctx)
	case evidence.FieldCollectionID:
		return m.OldCollectionID(ctx)
	case evidence.FieldCategory:
		return m.OldCategory(ctx)
	case evidence.FieldEvidenceType:
		return m.OldEvidenceType(ctx)
	case evidence.FieldTitle:
		return m.OldTitle(ctx)
	case evidence.FieldRaw:
		return m.OldRaw(ctx)
	case evidence.FieldSummary:
		return m.OldSummary(ctx)
	case evidence.FieldSource:
		return m.OldSource(ctx)
	case evidence.FieldMergedSources:
		return m.OldMergedSources(ctx)
	case evidence.FieldConfidence:
		return m.OldConfidence(ctx)
	case evidence.FieldRelevance:
		return m.OldRelevance(ctx)
	case evidence.FieldScore:
		return m.OldScore(ctx)
	case evidence.FieldTokens:
		return m.OldTokens(ctx)
	case evidence.FieldFallback:
		return m.OldFallback(ctx)
	case evidence.FieldProcessingTrail:
		return m.OldProcessingTrail(ctx)
	case evidence.FieldMetadata:
		return m.OldMetadata(ctx)
	case evidence.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case evidence.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case evidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case evidence.FieldCollectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionID(v)
		return nil
	case evidence.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case evidence.FieldEvidenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceType(v)
		return nil
	case evidence.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case evidence.FieldRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaw(v)
		return nil
	case evidence.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case evidence.FieldSource:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case evidence.FieldMergedSources:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedSources(v)
		return nil
	case evidence.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case evidence.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case evidence.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case evidence.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case evidence.FieldFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallback(v)
		return nil
	case evidence.FieldProcessingTrail:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTrail(v)
		return nil
	case evidence.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case evidence.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case evidence.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case evidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, evidence.FieldConfidence)
	}
	if m.addrelevance != nil {
		fields = append(fields, evidence.FieldRelevance)
	}
	if m.addscore != nil {
		fields = append(fields, evidence.FieldScore)
	}
	if m.addtokens != nil {
		fields = append(fields, evidence.FieldTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldConfidence:
		return m.AddedConfidence()
	case evidence.FieldRelevance:
		return m.AddedRelevance()
	case evidence.FieldScore:
		return m.AddedScore()
	case evidence.FieldTokens:
		return m.AddedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case evidence.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	case evidence.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case evidence.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidence.FieldTitle) {
		fields = append(fields, evidence.FieldTitle)
	}
	if m.FieldCleared(evidence.FieldRaw) {
		fields = append(fields, evidence.FieldRaw)
	}
	if m.FieldCleared(evidence.FieldMergedSources) {
		fields = append(fields, evidence.FieldMergedSources)
	}
	if m.FieldCleared(evidence.FieldProcessingTrail) {
		fields = append(fields, evidence.FieldProcessingTrail)
	}
	if m.FieldCleared(evidence.FieldMetadata) {
		fields = append(fields, evidence.FieldMetadata)
	}
	if m.FieldCleared(evidence.FieldEmbedding) {
		fields = append(fields, evidence.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	switch name {
	case evidence.FieldTitle:
		m.ClearTitle()
		return nil
	case evidence.FieldRaw:
		m.ClearRaw()
		return nil
	case evidence.FieldMergedSources:
		m.ClearMergedSources()
		return nil
	case evidence.FieldProcessingTrail:
		m.ClearProcessingTrail()
		return nil
	case evidence.FieldMetadata:
		m.ClearMetadata()
		return nil
	case evidence.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldScanID:
		m.ResetScanID()
		return nil
	case evidence.FieldCollectionID:
		m.ResetCollectionID()
		return nil
	case evidence.FieldCategory:
		m.ResetCategory()
		return nil
	case evidence.FieldEvidenceType:
		m.ResetEvidenceType()
		return nil
	case evidence.FieldTitle:
		m.ResetTitle()
		return nil
	case evidence.FieldRaw:
		m.ResetRaw()
		return nil
	case evidence.FieldSummary:
		m.ResetSummary()
		return nil
	case evidence.FieldSource:
		m.ResetSource()
		return nil
	case evidence.FieldMergedSources:
		m.ResetMergedSources()
		return nil
	case evidence.FieldConfidence:
		m.ResetConfidence()
		return nil
	case evidence.FieldRelevance:
		m.ResetRelevance()
		return nil
	case evidence.FieldScore:
		m.ResetScore()
		return nil
	case evidence.FieldTokens:
		m.ResetTokens()
		return nil
	case evidence.FieldFallback:
		m.ResetFallback()
		return nil
	case evidence.FieldProcessingTrail:
		m.ResetProcessingTrail()
		return nil
	case evidence.FieldMetadata:
		m.ResetMetadata()
		return nil
	case evidence.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case evidence.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case evidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.scan != nil {
		edges = append(edges, evidence.EdgeScan)
	}
	if m.collection != nil {
		edges = append(edges, evidence.EdgeCollection)
	}
	if m.citations != nil {
		edges = append(edges, evidence.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeScan:
		if id := m.scan; id != nil {
			return []ent.Value{*id}
		}
	case evidence.EdgeCollection:
		if id := m.collection; id != nil {
			return []ent.Value{*id}
		}
	case evidence.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcitations != nil {
		edges = append(edges, evidence.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedscan {
		edges = append(edges, evidence.EdgeScan)
	}
	if m.clearedcollection {
		edges = append(edges, evidence.EdgeCollection)
	}
	if m.clearedcitations {
		edges = append(edges, evidence.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case evidence.EdgeScan:
		return m.clearedscan
	case evidence.EdgeCollection:
		return m.clearedcollection
	case evidence.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	switch name {
	case evidence.EdgeScan:
		m.ClearScan()
		return nil
	case evidence.EdgeCollection:
		m.ClearCollection()
		return nil
	}
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	switch name {
	case evidence.EdgeScan:
		m.ResetScan()
		return nil
	case evidence.EdgeCollection:
		m.ResetCollection()
		return nil
	case evidence.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// EvidenceCollectionMutation represents an operation that mutates the EvidenceCollection nodes in the graph.
type EvidenceCollectionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	status            *evidencecollection.Status
	evidence_count    *int
	addevidence_count *int
	metadata          *map[string]interface{}
	created_at        *time.Time
	closed_at         *time.Time
	clearedFields     map[string]struct{}
	scan              *string
	clearedscan       bool
	items             map[string]struct{}
	removeditems      map[string]struct{}
	cleareditems      bool
	done              bool
	oldValue          func(context.Context) (*EvidenceCollection, error)
	predicates        []predicate.EvidenceCollection
}

var _ ent.Mutation = (*EvidenceCollectionMutation)(nil)

// evidencecollectionOption allows management of the mutation configuration using functional options.
type evidencecollectionOption func(*EvidenceCollectionMutation)

// newEvidenceCollectionMutation creates new mutation for the EvidenceCollection entity.
func newEvidenceCollectionMutation(c config, op Op, opts ...evidencecollectionOption) *EvidenceCollectionMutation {
	m := &EvidenceCollectionMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidenceCollection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceCollectionID sets the ID field of the mutation.
func withEvidenceCollectionID(id string) evidencecollectionOption {
	return func(m *EvidenceCollectionMutation) {
		var (
			err   error
			once  sync.Once
			value *EvidenceCollection
		)
		m.oldValue = func(ctx context.Context) (*EvidenceCollection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvidenceCollection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidenceCollection sets the old EvidenceCollection of the mutation.
func withEvidenceCollection(node *EvidenceCollection) evidencecollectionOption {
	return func(m *EvidenceCollectionMutation) {
		m.oldValue = func(context.Context) (*EvidenceCollection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceCollectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceCollectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvidenceCollection entities.
func (m *EvidenceCollectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceCollectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceCollectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvidenceCollection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanID sets the "scan_id" field.
func (m *EvidenceCollectionMutation) SetScanID(s string) {
	m.scan = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *EvidenceCollectionMutation) ScanID() (r string, exists bool) {
	v := m.scan
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the EvidenceCollection entity.
// If the EvidenceCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceCollectionMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *EvidenceCollectionMutation) ResetScanID() {
	m.scan = nil
}

// SetStatus sets the "status" field.
func (m *EvidenceCollectionMutation) SetStatus(e evidencecollection.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EvidenceCollectionMutation) Status() (r evidencecollection.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EvidenceCollection entity.
// If the EvidenceCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceCollectionMutation) OldStatus(ctx context.Context) (v evidencecollection.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EvidenceCollectionMutation) ResetStatus() {
	m.status = nil
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *EvidenceCollectionMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *EvidenceCollectionMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the EvidenceCollection entity.
// If the EvidenceCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceCollectionMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *EvidenceCollectionMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *EvidenceCollectionMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *EvidenceCollectionMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *EvidenceCollectionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EvidenceCollectionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the EvidenceCollection entity.
// If the EvidenceCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceCollectionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EvidenceCollectionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[evidencecollection.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EvidenceCollectionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[evidencecollection.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EvidenceCollectionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, evidencecollection.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceCollectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceCollectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvidenceCollection entity.
// If the EvidenceCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceCollectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceCollectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *EvidenceCollectionMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *EvidenceCollectionMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the EvidenceCollection entity.
// If the EvidenceCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceCollectionMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *EvidenceCollectionMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[evidencecollection.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *EvidenceCollectionMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[evidencecollection.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *EvidenceCollectionMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, evidencecollection.FieldClosedAt)
}

// ClearScan clears the "scan" edge to the ScanRequest entity.
func (m *EvidenceCollectionMutation) ClearScan() {
	m.clearedscan = true
	m.clearedFields[evidencecollection.FieldScanID] = struct{}{}
}

// ScanCleared reports if the "scan" edge to the ScanRequest entity was cleared.
func (m *EvidenceCollectionMutation) ScanCleared() bool {
	return m.clearedscan
}

// ScanIDs returns the "scan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScanID instead. It exists only for internal usage by the builders.
func (m *EvidenceCollectionMutation) ScanIDs() (ids []string) {
	if id := m.scan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScan resets all changes to the "scan" edge.
func (m *EvidenceCollectionMutation) ResetScan() {
	m.scan = nil
	m.clearedscan = false
}

// AddItemIDs adds the "items" edge to the Evidence entity by ids.
func (m *EvidenceCollectionMutation) AddItemIDs(ids ...string) {
	if m.items == nil {
		m.items = make(map[string]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the Evidence entity.
func (m *EvidenceCollectionMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the Evidence entity was cleared.
func (m *EvidenceCollectionMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the Evidence entity by IDs.
func (m *EvidenceCollectionMutation) RemoveItemIDs(ids ...string) {
	if m.removeditems == nil {
		m.removeditems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the Evidence entity.
func (m *EvidenceCollectionMutation) RemovedItemsIDs() (ids []string) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *EvidenceCollectionMutation) ItemsIDs() (ids []string) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *EvidenceCollectionMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the EvidenceCollectionMutation builder.
func (m *EvidenceCollectionMutation) Where(ps ...predicate.EvidenceCollection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceCollectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceCollectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvidenceCollection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceCollectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceCollectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvidenceCollection).
func (m *EvidenceCollectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceCollectionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.scan != nil {
		fields = append(fields, evidencecollection.FieldScanID)
	}
	if m.status != nil {
		fields = append(fields, evidencecollection.FieldStatus)
	}
	if m.evidence_count != nil {
		fields = append(fields, evidencecollection.FieldEvidenceCount)
	}
	if m.metadata != nil {
		fields = append(fields, evidencecollection.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, evidencecollection.FieldCreatedAt)
	}
	if m.closed_at != nil {
		fields = append(fields, evidencecollection.FieldClosedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceCollectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidencecollection.FieldScanID:
		return m.ScanID()
	case evidencecollection.FieldStatus:
		return m.Status()
	case evidencecollection.FieldEvidenceCount:
		return m.EvidenceCount()
	case evidencecollection.FieldMetadata:
		return m.Metadata()
	case evidencecollection.FieldCreatedAt:
		return m.CreatedAt()
	case evidencecollection.FieldClosedAt:
		return m.ClosedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceCollectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidencecollection.FieldScanID:
		return m.OldScanID(ctx)
	case evidencecollection.FieldStatus:
		return m.OldStatus(ctx)
	case evidencecollection.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case evidencecollection.FieldMetadata:
		return m.OldMetadata(ctx)
	case evidencecollection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evidencecollection.FieldClosedAt:
		return m.OldClosedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvidenceCollection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceCollectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidencecollection.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case evidencecollection.FieldStatus:
		v, ok := value.(evidencecollection.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case evidencecollection.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case evidencecollection.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case evidencecollection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evidencecollection.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceCollection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceCollectionMutation) AddedFields() []string {
	var fields []string
	if m.addevidence_count != nil {
		fields = append(fields, evidencecollection.FieldEvidenceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceCollectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidencecollection.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceCollectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidencecollection.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceCollection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceCollectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidencecollection.FieldMetadata) {
		fields = append(fields, evidencecollection.FieldMetadata)
	}
	if m.FieldCleared(evidencecollection.FieldClosedAt) {
		fields = append(fields, evidencecollection.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceCollectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceCollectionMutation) ClearField(name string) error {
	switch name {
	case evidencecollection.FieldMetadata:
		m.ClearMetadata()
		return nil
	case evidencecollection.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown EvidenceCollection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceCollectionMutation) ResetField(name string) error {
	switch name {
	case evidencecollection.FieldScanID:
		m.ResetScanID()
		return nil
	case evidencecollection.FieldStatus:
		m.ResetStatus()
		return nil
	case evidencecollection.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case evidencecollection.FieldMetadata:
		m.ResetMetadata()
		return nil
	case evidencecollection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evidencecollection.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	}
	return fmt.Errorf("unknown EvidenceCollection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceCollectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.scan != nil {
		edges = append(edges, evidencecollection.EdgeScan)
	}
	if m.items != nil {
		edges = append(edges, evidencecollection.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceCollectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidencecollection.EdgeScan:
		if id := m.scan; id != nil {
			return []ent.Value{*id}
		}
	case evidencecollection.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceCollectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, evidencecollection.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceCollectionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evidencecollection.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceCollectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedscan {
		edges = append(edges, evidencecollection.EdgeScan)
	}
	if m.cleareditems {
		edges = append(edges, evidencecollection.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceCollectionMutation) EdgeCleared(name string) bool {
	switch name {
	case evidencecollection.EdgeScan:
		return m.clearedscan
	case evidencecollection.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceCollectionMutation) ClearEdge(name string) error {
	switch name {
	case evidencecollection.EdgeScan:
		m.ClearScan()
		return nil
	}
	return fmt.Errorf("unknown EvidenceCollection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceCollectionMutation) ResetEdge(name string) error {
	switch name {
	case evidencecollection.EdgeScan:
		m.ResetScan()
		return nil
	case evidencecollection.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown EvidenceCollection edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	executive_summary   *string
	investment_score    *float64
	addinvestment_score *float64
	rationale           *string
	quality_score       *float64
	addquality_score    *float64
	evidence_count      *int
	addevidence_count   *int
	degraded            *bool
	generator           *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	scan                *string
	clearedscan         bool
	sections            map[string]struct{}
	removedsections     map[string]struct{}
	clearedsections     bool
	citations           map[string]struct{}
	removedcitations    map[string]struct{}
	clearedcitations    bool
	done                bool
	oldValue            func(context.Context) (*Report, error)
	predicates          []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id string) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanID sets the "scan_id" field.
func (m *ReportMutation) SetScanID(s string) {
	m.scan = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *ReportMutation) ScanID() (r string, exists bool) {
	v := m.scan
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *ReportMutation) ResetScanID() {
	m.scan = nil
}

// SetExecutiveSummary sets the "executive_summary" field.
func (m *ReportMutation) SetExecutiveSummary(s string) {
	m.executive_summary = &s
}

// ExecutiveSummary returns the value of the "executive_summary" field in the mutation.
func (m *ReportMutation) ExecutiveSummary() (r string, exists bool) {
	v := m.executive_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutiveSummary returns the old "executive_summary" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldExecutiveSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutiveSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutiveSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutiveSummary: %w", err)
	}
	return oldValue.ExecutiveSummary, nil
}

// ResetExecutiveSummary resets all changes to the "executive_summary" field.
func (m *ReportMutation) ResetExecutiveSummary() {
	m.executive_summary = nil
}

// SetInvestmentScore sets the "investment_score" field.
func (m *ReportMutation) SetInvestmentScore(f float64) {
	m.investment_score = &f
	m.addinvestment_score = nil
}

// InvestmentScore returns the value of the "investment_score" field in the mutation.
func (m *ReportMutation) InvestmentScore() (r float64, exists bool) {
	v := m.investment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestmentScore returns the old "investment_score" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldInvestmentScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestmentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestmentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestmentScore: %w", err)
	}
	return oldValue.InvestmentScore, nil
}

// AddInvestmentScore adds f to the "investment_score" field.
func (m *ReportMutation) AddInvestmentScore(f float64) {
	if m.addinvestment_score != nil {
		*m.addinvestment_score += f
	} else {
		m.addinvestment_score = &f
	}
}

// AddedInvestmentScore returns the value that was added to the "investment_score" field in this mutation.
func (m *ReportMutation) AddedInvestmentScore() (r float64, exists bool) {
	v := m.addinvestment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetInvestmentScore resets all changes to the "investment_score" field.
func (m *ReportMutation) ResetInvestmentScore() {
	m.investment_score = nil
	m.addinvestment_score = nil
}

// SetRationale sets the "rationale" field.
func (m *ReportMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *ReportMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *ReportMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[report.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *ReportMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[report.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *ReportMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, report.FieldRationale)
}

// SetQualityScore sets the "quality_score" field.
func (m *ReportMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *ReportMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *ReportMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *ReportMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *ReportMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *ReportMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *ReportMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *ReportMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *ReportMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *ReportMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetDegraded sets the "degraded" field.
func (m *ReportMutation) SetDegraded(b bool) {
	m.degraded = &b
}

// Degraded returns the value of the "degraded" field in the mutation.
func (m *ReportMutation) Degraded() (r bool, exists bool) {
	v := m.degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldDegraded returns the old "degraded" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDegraded: %w", err)
	}
	return oldValue.Degraded, nil
}

// ResetDegraded resets all changes to the "degraded" field.
func (m *ReportMutation) ResetDegraded() {
	m.degraded = nil
}

// SetGenerator sets the "generator" field.
func (m *ReportMutation) SetGenerator(value map[string]interface{}) {
	m.generator = &value
}

// Generator returns the value of the "generator" field in the mutation.
func (m *ReportMutation) Generator() (r map[string]interface{}, exists bool) {
	v := m.generator
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerator returns the old "generator" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldGenerator(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerator: %w", err)
	}
	return oldValue.Generator, nil
}

// ClearGenerator clears the value of the "generator" field.
func (m *ReportMutation) ClearGenerator() {
	m.generator = nil
	m.clearedFields[report.FieldGenerator] = struct{}{}
}

// GeneratorCleared returns if the "generator" field was cleared in this mutation.
func (m *ReportMutation) GeneratorCleared() bool {
	_, ok := m.clearedFields[report.FieldGenerator]
	return ok
}

// ResetGenerator resets all changes to the "generator" field.
func (m *ReportMutation) ResetGenerator() {
	m.generator = nil
	delete(m.clearedFields, report.FieldGenerator)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearScan clears the "scan" edge to the ScanRequest entity.
func (m *ReportMutation) ClearScan() {
	m.clearedscan = true
	m.clearedFields[report.FieldScanID] = struct{}{}
}

// ScanCleared reports if the "scan" edge to the ScanRequest entity was cleared.
func (m *ReportMutation) ScanCleared() bool {
	return m.clearedscan
}

// ScanIDs returns the "scan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScanID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) ScanIDs() (ids []string) {
	if id := m.scan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScan resets all changes to the "scan" edge.
func (m *ReportMutation) ResetScan() {
	m.scan = nil
	m.clearedscan = false
}

// AddSectionIDs adds the "sections" edge to the ReportSection entity by ids.
func (m *ReportMutation) AddSectionIDs(ids ...string) {
	if m.sections == nil {
		m.sections = make(map[string]struct{})
	}
	for i := range ids {
		m.sections[ids[i]] = struct{}{}
	}
}

// ClearSections clears the "sections" edge to the ReportSection entity.
func (m *ReportMutation) ClearSections() {
	m.clearedsections = true
}

// SectionsCleared reports if the "sections" edge to the ReportSection entity was cleared.
func (m *ReportMutation) SectionsCleared() bool {
	return m.clearedsections
}

// RemoveSectionIDs removes the "sections" edge to the ReportSection entity by IDs.
func (m *ReportMutation) RemoveSectionIDs(ids ...string) {
	if m.removedsections == nil {
		m.removedsections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sections, ids[i])
		m.removedsections[ids[i]] = struct{}{}
	}
}

// RemovedSections returns the removed IDs of the "sections" edge to the ReportSection entity.
func (m *ReportMutation) RemovedSectionsIDs() (ids []string) {
	for id := range m.removedsections {
		ids = append(ids, id)
	}
	return
}

// SectionsIDs returns the "sections" edge IDs in the mutation.
func (m *ReportMutation) SectionsIDs() (ids []string) {
	for id := range m.sections {
		ids = append(ids, id)
	}
	return
}

// ResetSections resets all changes to the "sections" edge.
func (m *ReportMutation) ResetSections() {
	m.sections = nil
	m.clearedsections = false
	m.removedsections = nil
}

// AddCitationIDs adds the "citations" edge to the Citation entity by ids.
func (m *ReportMutation) AddCitationIDs(ids ...string) {
	if m.citations == nil {
		m.citations = make(map[string]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the Citation entity.
func (m *ReportMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the Citation entity was cleared.
func (m *ReportMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the Citation entity by IDs.
func (m *ReportMutation) RemoveCitationIDs(ids ...string) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the Citation entity.
func (m *ReportMutation) RemovedCitationsIDs() (ids []string) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *ReportMutation) CitationsIDs() (ids []string) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *ReportMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.scan != nil {
		fields = append(fields, report.FieldScanID)
	}
	if m.executive_summary != nil {
		fields = append(fields, report.FieldExecutiveSummary)
	}
	if m.investment_score != nil {
		fields = append(fields, report.FieldInvestmentScore)
	}
	if m.rationale != nil {
		fields = append(fields, report.FieldRationale)
	}
	if m.quality_score != nil {
		fields = append(fields, report.FieldQualityScore)
	}
	if m.evidence_count != nil {
		fields = append(fields, report.FieldEvidenceCount)
	}
	if m.degraded != nil {
		fields = append(fields, report.FieldDegraded)
	}
	if m.generator != nil {
		fields = append(fields, report.FieldGenerator)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldScanID:
		return m.ScanID()
	case report.FieldExecutiveSummary:
		return m.ExecutiveSummary()
	case report.FieldInvestmentScore:
		return m.InvestmentScore()
	case report.FieldRationale:
		return m.Rationale()
	case report.FieldQualityScore:
		return m.QualityScore()
	case report.FieldEvidenceCount:
		return m.EvidenceCount()
	case report.FieldDegraded:
		return m.Degraded()
	case report.FieldGenerator:
		return m.Generator()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldScanID:
		return m.OldScanID(ctx)
	case report.FieldExecutiveSummary:
		return m.OldExecutiveSummary(ctx)
	case report.FieldInvestmentScore:
		return m.OldInvestmentScore(ctx)
	case report.FieldRationale:
		return m.OldRationale(ctx)
	case report.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case report.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case report.FieldDegraded:
		return m.OldDegraded(ctx)
	case report.FieldGenerator:
		return m.OldGenerator(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case report.FieldExecutiveSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutiveSummary(v)
		return nil
	case report.FieldInvestmentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestmentScore(v)
		return nil
	case report.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case report.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case report.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case report.FieldDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDegraded(v)
		return nil
	case report.FieldGenerator:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerator(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.addinvestment_score != nil {
		fields = append(fields, report.FieldInvestmentScore)
	}
	if m.addquality_score != nil {
		fields = append(fields, report.FieldQualityScore)
	}
	if m.addevidence_count != nil {
		fields = append(fields, report.FieldEvidenceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldInvestmentScore:
		return m.AddedInvestmentScore()
	case report.FieldQualityScore:
		return m.AddedQualityScore()
	case report.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldInvestmentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInvestmentScore(v)
		return nil
	case report.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case report.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldRationale) {
		fields = append(fields, report.FieldRationale)
	}
	if m.FieldCleared(report.FieldGenerator) {
		fields = append(fields, report.FieldGenerator)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldRationale:
		m.ClearRationale()
		return nil
	case report.FieldGenerator:
		m.ClearGenerator()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldScanID:
		m.ResetScanID()
		return nil
	case report.FieldExecutiveSummary:
		m.ResetExecutiveSummary()
		return nil
	case report.FieldInvestmentScore:
		m.ResetInvestmentScore()
		return nil
	case report.FieldRationale:
		m.ResetRationale()
		return nil
	case report.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case report.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case report.FieldDegraded:
		m.ResetDegraded()
		return nil
	case report.FieldGenerator:
		m.ResetGenerator()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.scan != nil {
		edges = append(edges, report.EdgeScan)
	}
	if m.sections != nil {
		edges = append(edges, report.EdgeSections)
	}
	if m.citations != nil {
		edges = append(edges, report.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeScan:
		if id := m.scan; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeSections:
		ids := make([]ent.Value, 0, len(m.sections))
		for id := range m.sections {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsections != nil {
		edges = append(edges, report.EdgeSections)
	}
	if m.removedcitations != nil {
		edges = append(edges, report.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeSections:
		ids := make([]ent.Value, 0, len(m.removedsections))
		for id := range m.removedsections {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedscan {
		edges = append(edges, report.EdgeScan)
	}
	if m.clearedsections {
		edges = append(edges, report.EdgeSections)
	}
	if m.clearedcitations {
		edges = append(edges, report.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeScan:
		return m.clearedscan
	case report.EdgeSections:
		return m.clearedsections
	case report.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeScan:
		m.ClearScan()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeScan:
		m.ResetScan()
		return nil
	case report.EdgeSections:
		m.ResetSections()
		return nil
	case report.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// ReportSectionMutation represents an operation that mutates the ReportSection nodes in the graph.
type ReportSectionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	pillar_id             *string
	title                 *string
	content               *string
	score                 *float64
	addscore              *float64
	key_findings          *[]map[string]interface{}
	appendkey_findings    []map[string]interface{}
	risks                 *[]string
	appendrisks           []string
	opportunities         *[]string
	appendopportunities   []string
	recommendations       *[]string
	appendrecommendations []string
	degraded              *bool
	order_index           *int
	addorder_index        *int
	clearedFields         map[string]struct{}
	report                *string
	clearedreport         bool
	citations             map[string]struct{}
	removedcitations      map[string]struct{}
	clearedcitations      bool
	done                  bool
	oldValue              func(context.Context) (*ReportSection, error)
	predicates            []predicate.ReportSection
}

var _ ent.Mutation = (*ReportSectionMutation)(nil)

// reportsectionOption allows management of the mutation configuration using functional options.
type reportsectionOption func(*ReportSectionMutation)

// newReportSectionMutation creates new mutation for the ReportSection entity.
func newReportSectionMutation(c config, op Op, opts ...reportsectionOption) *ReportSectionMutation {
	m := &ReportSectionMutation{
		config:        c,
		op:            op,
		typ:           TypeReportSection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportSectionID sets the ID field of the mutation.
func withReportSectionID(id string) reportsectionOption {
	return func(m *ReportSectionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportSection
		)
		m.oldValue = func(ctx context.Context) (*ReportSection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportSection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportSection sets the old ReportSection of the mutation.
func withReportSection(node *ReportSection) reportsectionOption {
	return func(m *ReportSectionMutation) {
		m.oldValue = func(context.Context) (*ReportSection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportSectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportSectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportSection entities.
func (m *ReportSectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportSectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportSectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportSection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *ReportSectionMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ReportSectionMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ReportSectionMutation) ResetReportID() {
	m.report = nil
}

// SetPillarID sets the "pillar_id" field.
func (m *ReportSectionMutation) SetPillarID(s string) {
	m.pillar_id = &s
}

// PillarID returns the value of the "pillar_id" field in the mutation.
func (m *ReportSectionMutation) PillarID() (r string, exists bool) {
	v := m.pillar_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPillarID returns the old "pillar_id" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldPillarID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPillarID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPillarID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPillarID: %w", err)
	}
	return oldValue.PillarID, nil
}

// ResetPillarID resets all changes to the "pillar_id" field.
func (m *ReportSectionMutation) ResetPillarID() {
	m.pillar_id = nil
}

// SetTitle sets the "title" field.
func (m *ReportSectionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportSectionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportSectionMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *ReportSectionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ReportSectionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ReportSectionMutation) ResetContent() {
	m.content = nil
}

// SetScore sets the "score" field.
func (m *ReportSectionMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ReportSectionMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ReportSectionMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ReportSectionMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ReportSectionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetKeyFindings sets the "key_findings" field.
func (m *ReportSectionMutation) SetKeyFindings(value []map[string]interface{}) {
	m.key_findings = &value
	m.appendkey_findings = nil
}

// KeyFindings returns the value of the "key_findings" field in the mutation.
func (m *ReportSectionMutation) KeyFindings() (r []map[string]interface{}, exists bool) {
	v := m.key_findings
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyFindings returns the old "key_findings" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldKeyFindings(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyFindings: %w", err)
	}
	return oldValue.KeyFindings, nil
}

// AppendKeyFindings adds value to the "key_findings" field.
func (m *ReportSectionMutation) AppendKeyFindings(value []map[string]interface{}) {
	m.appendkey_findings = append(m.appendkey_findings, value...)
}

// AppendedKeyFindings returns the list of values that were appended to the "key_findings" field in this mutation.
func (m *ReportSectionMutation) AppendedKeyFindings() ([]map[string]interface{}, bool) {
	if len(m.appendkey_findings) == 0 {
		return nil, false
	}
	return m.appendkey_findings, true
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (m *ReportSectionMutation) ClearKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	m.clearedFields[reportsection.FieldKeyFindings] = struct{}{}
}

// KeyFindingsCleared returns if the "key_findings" field was cleared in this mutation.
func (m *ReportSectionMutation) KeyFindingsCleared() bool {
	_, ok := m.clearedFields[reportsection.FieldKeyFindings]
	return ok
}

// ResetKeyFindings resets all changes to the "key_findings" field.
func (m *ReportSectionMutation) ResetKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	delete(m.clearedFields, reportsection.FieldKeyFindings)
}

// SetRisks sets the "risks" field.
func (m *ReportSectionMutation) SetRisks(s []string) {
	m.risks = &s
	m.appendrisks = nil
}

// Risks returns the value of the "risks" field in the mutation.
func (m *ReportSectionMutation) Risks() (r []string, exists bool) {
	v := m.risks
	if v == nil {
		return
	}
	return *v, true
}

// OldRisks returns the old "risks" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldRisks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisks: %w", err)
	}
	return oldValue.Risks, nil
}

// AppendRisks adds s to the "risks" field.
func (m *ReportSectionMutation) AppendRisks(s []string) {
	m.appendrisks = append(m.appendrisks, s...)
}

// AppendedRisks returns the list of values that were appended to the "risks" field in this mutation.
func (m *ReportSectionMutation) AppendedRisks() ([]string, bool) {
	if len(m.appendrisks) == 0 {
		return nil, false
	}
	return m.appendrisks, true
}

// ClearRisks clears the value of the "risks" field.
func (m *ReportSectionMutation) ClearRisks() {
	m.risks = nil
	m.appendrisks = nil
	m.clearedFields[reportsection.FieldRisks] = struct{}{}
}

// RisksCleared returns if the "risks" field was cleared in this mutation.
func (m *ReportSectionMutation) RisksCleared() bool {
	_, ok := m.clearedFields[reportsection.FieldRisks]
	return ok
}

// ResetRisks resets all changes to the "risks" field.
func (m *ReportSectionMutation) ResetRisks() {
	m.risks = nil
	m.appendrisks = nil
	delete(m.clearedFields, reportsection.FieldRisks)
}

// SetOpportunities sets the "opportunities" field.
func (m *ReportSectionMutation) SetOpportunities(s []string) {
	m.opportunities = &s
	m.appendopportunities = nil
}

// Opportunities returns the value of the "opportunities" field in the mutation.
func (m *ReportSectionMutation) Opportunities() (r []string, exists bool) {
	v := m.opportunities
	if v == nil {
		return
	}
	return *v, true
}

// OldOpportunities returns the old "opportunities" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldOpportunities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpportunities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpportunities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpportunities: %w", err)
	}
	return oldValue.Opportunities, nil
}

// AppendOpportunities adds s to the "opportunities" field.
func (m *ReportSectionMutation) AppendOpportunities(s []string) {
	m.appendopportunities = append(m.appendopportunities, s...)
}

// AppendedOpportunities returns the list of values that were appended to the "opportunities" field in this mutation.
func (m *ReportSectionMutation) AppendedOpportunities() ([]string, bool) {
	if len(m.appendopportunities) == 0 {
		return nil, false
	}
	return m.appendopportunities, true
}

// ClearOpportunities clears the value of the "opportunities" field.
func (m *ReportSectionMutation) ClearOpportunities() {
	m.opportunities = nil
	m.appendopportunities = nil
	m.clearedFields[reportsection.FieldOpportunities] = struct{}{}
}

// OpportunitiesCleared returns if the "opportunities" field was cleared in this mutation.
func (m *ReportSectionMutation) OpportunitiesCleared() bool {
	_, ok := m.clearedFields[reportsection.FieldOpportunities]
	return ok
}

// ResetOpportunities resets all changes to the "opportunities" field.
func (m *ReportSectionMutation) ResetOpportunities() {
	m.opportunities = nil
	m.appendopportunities = nil
	delete(m.clearedFields, reportsection.FieldOpportunities)
}

// SetRecommendations sets the "recommendations" field.
func (m *ReportSectionMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *ReportSectionMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *ReportSectionMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *ReportSectionMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *ReportSectionMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[reportsection.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *ReportSectionMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[reportsection.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *ReportSectionMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, reportsection.FieldRecommendations)
}

// SetDegraded sets the "degraded" field.
func (m *ReportSectionMutation) SetDegraded(b bool) {
	m.degraded = &b
}

// Degraded returns the value of the "degraded" field in the mutation.
func (m *ReportSectionMutation) Degraded() (r bool, exists bool) {
	v := m.degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldDegraded returns the old "degraded" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDegraded: %w", err)
	}
	return oldValue.Degraded, nil
}

// ResetDegraded resets all changes to the "degraded" field.
func (m *ReportSectionMutation) ResetDegraded() {
	m.degraded = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *ReportSectionMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *ReportSectionMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the ReportSection entity.
// If the ReportSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportSectionMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *ReportSectionMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *ReportSectionMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *ReportSectionMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *ReportSectionMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[reportsection.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *ReportSectionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *ReportSectionMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *ReportSectionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddCitationIDs adds the "citations" edge to the Citation entity by ids.
func (m *ReportSectionMutation) AddCitationIDs(ids ...string) {
	if m.citations == nil {
		m.citations = make(map[string]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the Citation entity.
func (m *ReportSectionMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the Citation entity was cleared.
func (m *ReportSectionMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the Citation entity by IDs.
func (m *ReportSectionMutation) RemoveCitationIDs(ids ...string) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the Citation entity.
func (m *ReportSectionMutation) RemovedCitationsIDs() (ids []string) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *ReportSectionMutation) CitationsIDs() (ids []string) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *ReportSectionMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the ReportSectionMutation builder.
func (m *ReportSectionMutation) Where(ps ...predicate.ReportSection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportSectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportSectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportSection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportSectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportSectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportSection).
func (m *ReportSectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportSectionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.report != nil {
		fields = append(fields, reportsection.FieldReportID)
	}
	if m.pillar_id != nil {
		fields = append(fields, reportsection.FieldPillarID)
	}
	if m.title != nil {
		fields = append(fields, reportsection.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, reportsection.FieldContent)
	}
	if m.score != nil {
		fields = append(fields, reportsection.FieldScore)
	}
	if m.key_findings != nil {
		fields = append(fields, reportsection.FieldKeyFindings)
	}
	if m.risks != nil {
		fields = append(fields, reportsection.FieldRisks)
	}
	if m.opportunities != nil {
		fields = append(fields, reportsection.FieldOpportunities)
	}
	if m.recommendations != nil {
		fields = append(fields, reportsection.FieldRecommendations)
	}
	if m.degraded != nil {
		fields = append(fields, reportsection.FieldDegraded)
	}
	if m.order_index != nil {
		fields = append(fields, reportsection.FieldOrderIndex)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportSectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportsection.FieldReportID:
		return m.ReportID()
	case reportsection.FieldPillarID:
		return m.PillarID()
	case reportsection.FieldTitle:
		return m.Title()
	case reportsection.FieldContent:
		return m.Content()
	case reportsection.FieldScore:
		return m.Score()
	case reportsection.FieldKeyFindings:
		return m.KeyFindings()
	case reportsection.FieldRisks:
		return m.Risks()
	case reportsection.FieldOpportunities:
		return m.Opportunities()
	case reportsection.FieldRecommendations:
		return m.Recommendations()
	case reportsection.FieldDegraded:
		return m.Degraded()
	case reportsection.FieldOrderIndex:
		return m.OrderIndex()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportSectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportsection.FieldReportID:
		return m.OldReportID(ctx)
	case reportsection.FieldPillarID:
		return m.OldPillarID(ctx)
	case reportsection.FieldTitle:
		return m.OldTitle(ctx)
	case reportsection.FieldContent:
		return m.OldContent(ctx)
	case reportsection.FieldScore:
		return m.OldScore(ctx)
	case reportsection.FieldKeyFindings:
		return m.OldKeyFindings(ctx)
	case reportsection.FieldRisks:
		return m.OldRisks(ctx)
	case reportsection.FieldOpportunities:
		return m.OldOpportunities(ctx)
	case reportsection.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case reportsection.FieldDegraded:
		return m.OldDegraded(ctx)
	case reportsection.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	}
	return nil, fmt.Errorf("unknown ReportSection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportSectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportsection.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case reportsection.FieldPillarID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPillarID(v)
		return nil
	case reportsection.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case reportsection.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case reportsection.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case reportsection.FieldKeyFindings:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyFindings(v)
		return nil
	case reportsection.FieldRisks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisks(v)
		return nil
	case reportsection.FieldOpportunities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpportunities(v)
		return nil
	case reportsection.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case reportsection.FieldDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDegraded(v)
		return nil
	case reportsection.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ReportSection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportSectionMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, reportsection.FieldScore)
	}
	if m.addorder_index != nil {
		fields = append(fields, reportsection.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportSectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportsection.FieldScore:
		return m.AddedScore()
	case reportsection.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportSectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportsection.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case reportsection.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ReportSection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportSectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reportsection.FieldKeyFindings) {
		fields = append(fields, reportsection.FieldKeyFindings)
	}
	if m.FieldCleared(reportsection.FieldRisks) {
		fields = append(fields, reportsection.FieldRisks)
	}
	if m.FieldCleared(reportsection.FieldOpportunities) {
		fields = append(fields, reportsection.FieldOpportunities)
	}
	if m.FieldCleared(reportsection.FieldRecommendations) {
		fields = append(fields, reportsection.FieldRecommendations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportSectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportSectionMutation) ClearField(name string) error {
	switch name {
	case reportsection.FieldKeyFindings:
		m.ClearKeyFindings()
		return nil
	case reportsection.FieldRisks:
		m.ClearRisks()
		return nil
	case reportsection.FieldOpportunities:
		m.ClearOpportunities()
		return nil
	case reportsection.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	}
	return fmt.Errorf("unknown ReportSection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportSectionMutation) ResetField(name string) error {
	switch name {
	case reportsection.FieldReportID:
		m.ResetReportID()
		return nil
	case reportsection.FieldPillarID:
		m.ResetPillarID()
		return nil
	case reportsection.FieldTitle:
		m.ResetTitle()
		return nil
	case reportsection.FieldContent:
		m.ResetContent()
		return nil
	case reportsection.FieldScore:
		m.ResetScore()
		return nil
	case reportsection.FieldKeyFindings:
		m.ResetKeyFindings()
		return nil
	case reportsection.FieldRisks:
		m.ResetRisks()
		return nil
	case reportsection.FieldOpportunities:
		m.ResetOpportunities()
		return nil
	case reportsection.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case reportsection.FieldDegraded:
		m.ResetDegraded()
		return nil
	case reportsection.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	}
	return fmt.Errorf("unknown ReportSection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportSectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, reportsection.EdgeReport)
	}
	if m.citations != nil {
		edges = append(edges, reportsection.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportSectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportsection.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case reportsection.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportSectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcitations != nil {
		edges = append(edges, reportsection.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportSectionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case reportsection.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportSectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, reportsection.EdgeReport)
	}
	if m.clearedcitations {
		edges = append(edges, reportsection.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportSectionMutation) EdgeCleared(name string) bool {
	switch name {
	case reportsection.EdgeReport:
		return m.clearedreport
	case reportsection.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportSectionMutation) ClearEdge(name string) error {
	switch name {
	case reportsection.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown ReportSection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportSectionMutation) ResetEdge(name string) error {
	switch name {
	case reportsection.EdgeReport:
		m.ResetReport()
		return nil
	case reportsection.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown ReportSection edge %s", name)
}

// ScanRequestMutation represents an operation that mutates the ScanRequest nodes in the graph.
type ScanRequestMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	company_name               *string
	website                    *string
	investor_profile           *string
	analysis_depth             *scanrequest.AnalysisDepth
	thesis                     *map[string]interface{}
	status                     *scanrequest.Status
	status_message             *string
	report_id                  *string
	current_stage              *string
	completed_stages           *int
	addcompleted_stages        *int
	pod_id                     *string
	created_at                 *time.Time
	started_at                 *time.Time
	completed_at               *time.Time
	deadline_at                *time.Time
	last_heartbeat_at          *time.Time
	clearedFields              map[string]struct{}
	jobs                       map[string]struct{}
	removedjobs                map[string]struct{}
	clearedjobs                bool
	evidence_collection        *string
	clearedevidence_collection bool
	evidence                   map[string]struct{}
	removedevidence            map[string]struct{}
	clearedevidence            bool
	stage_results              map[string]struct{}
	removedstage_results       map[string]struct{}
	clearedstage_results       bool
	reports                    map[string]struct{}
	removedreports             map[string]struct{}
	clearedreports             bool
	events                     map[int64]struct{}
	removedevents              map[int64]struct{}
	clearedevents              bool
	done                       bool
	oldValue                   func(context.Context) (*ScanRequest, error)
	predicates                 []predicate.ScanRequest
}

var _ ent.Mutation = (*ScanRequestMutation)(nil)

// scanrequestOption allows management of the mutation configuration using functional options.
type scanrequestOption func(*ScanRequestMutation)

// newScanRequestMutation creates new mutation for the ScanRequest entity.
func newScanRequestMutation(c config, op Op, opts ...scanrequestOption) *ScanRequestMutation {
	m := &ScanRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeScanRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanRequestID sets the ID field of the mutation.
func withScanRequestID(id string) scanrequestOption {
	return func(m *ScanRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanRequest
		)
		m.oldValue = func(ctx context.Context) (*ScanRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanRequest sets the old ScanRequest of the mutation.
func withScanRequest(node *ScanRequest) scanrequestOption {
	return func(m *ScanRequestMutation) {
		m.oldValue = func(context.Context) (*ScanRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanRequest entities.
func (m *ScanRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyName sets the "company_name" field.
func (m *ScanRequestMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *ScanRequestMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *ScanRequestMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetWebsite sets the "website" field.
func (m *ScanRequestMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ScanRequestMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ResetWebsite resets all changes to the "website" field.
func (m *ScanRequestMutation) ResetWebsite() {
	m.website = nil
}

// SetInvestorProfile sets the "investor_profile" field.
func (m *ScanRequestMutation) SetInvestorProfile(s string) {
	m.investor_profile = &s
}

// InvestorProfile returns the value of the "investor_profile" field in the mutation.
func (m *ScanRequestMutation) InvestorProfile() (r string, exists bool) {
	v := m.investor_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestorProfile returns the old "investor_profile" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldInvestorProfile(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestorProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestorProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestorProfile: %w", err)
	}
	return oldValue.InvestorProfile, nil
}

// ClearInvestorProfile clears the value of the "investor_profile" field.
func (m *ScanRequestMutation) ClearInvestorProfile() {
	m.investor_profile = nil
	m.clearedFields[scanrequest.FieldInvestorProfile] = struct{}{}
}

// InvestorProfileCleared returns if the "investor_profile" field was cleared in this mutation.
func (m *ScanRequestMutation) InvestorProfileCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldInvestorProfile]
	return ok
}

// ResetInvestorProfile resets all changes to the "investor_profile" field.
func (m *ScanRequestMutation) ResetInvestorProfile() {
	m.investor_profile = nil
	delete(m.clearedFields, scanrequest.FieldInvestorProfile)
}

// SetAnalysisDepth sets the "analysis_depth" field.
func (m *ScanRequestMutation) SetAnalysisDepth(sd scanrequest.AnalysisDepth) {
	m.analysis_depth = &sd
}

// AnalysisDepth returns the value of the "analysis_depth" field in the mutation.
func (m *ScanRequestMutation) AnalysisDepth() (r scanrequest.AnalysisDepth, exists bool) {
	v := m.analysis_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisDepth returns the old "analysis_depth" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldAnalysisDepth(ctx context.Context) (v scanrequest.AnalysisDepth, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisDepth: %w", err)
	}
	return oldValue.AnalysisDepth, nil
}

// ResetAnalysisDepth resets all changes to the "analysis_depth" field.
func (m *ScanRequestMutation) ResetAnalysisDepth() {
	m.analysis_depth = nil
}

// SetThesis sets the "thesis" field.
func (m *ScanRequestMutation) SetThesis(value map[string]interface{}) {
	m.thesis = &value
}

// Thesis returns the value of the "thesis" field in the mutation.
func (m *ScanRequestMutation) Thesis() (r map[string]interface{}, exists bool) {
	v := m.thesis
	if v == nil {
		return
	}
	return *v, true
}

// OldThesis returns the old "thesis" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldThesis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThesis: %w", err)
	}
	return oldValue.Thesis, nil
}

// ClearThesis clears the value of the "thesis" field.
func (m *ScanRequestMutation) ClearThesis() {
	m.thesis = nil
	m.clearedFields[scanrequest.FieldThesis] = struct{}{}
}

// ThesisCleared returns if the "thesis" field was cleared in this mutation.
func (m *ScanRequestMutation) ThesisCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldThesis]
	return ok
}

// ResetThesis resets all changes to the "thesis" field.
func (m *ScanRequestMutation) ResetThesis() {
	m.thesis = nil
	delete(m.clearedFields, scanrequest.FieldThesis)
}

// SetStatus sets the "status" field.
func (m *ScanRequestMutation) SetStatus(s scanrequest.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanRequestMutation) Status() (r scanrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldStatus(ctx context.Context) (v scanrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScanRequestMutation) ResetStatus() {
	m.status = nil
}

// SetStatusMessage sets the "status_message" field.
func (m *ScanRequestMutation) SetStatusMessage(s string) {
	m.status_message = &s
}

// StatusMessage returns the value of the "status_message" field in the mutation.
func (m *ScanRequestMutation) StatusMessage() (r string, exists bool) {
	v := m.status_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusMessage returns the old "status_message" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldStatusMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusMessage: %w", err)
	}
	return oldValue.StatusMessage, nil
}

// ClearStatusMessage clears the value of the "status_message" field.
func (m *ScanRequestMutation) ClearStatusMessage() {
	m.status_message = nil
	m.clearedFields[scanrequest.FieldStatusMessage] = struct{}{}
}

// StatusMessageCleared returns if the "status_message" field was cleared in this mutation.
func (m *ScanRequestMutation) StatusMessageCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldStatusMessage]
	return ok
}

// ResetStatusMessage resets all changes to the "status_message" field.
func (m *ScanRequestMutation) ResetStatusMessage() {
	m.status_message = nil
	delete(m.clearedFields, scanrequest.FieldStatusMessage)
}

// SetReportID sets the "report_id" field.
func (m *ScanRequestMutation) SetReportID(s string) {
	m.report_id = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ScanRequestMutation) ReportID() (r string, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldReportID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ClearReportID clears the value of the "report_id" field.
func (m *ScanRequestMutation) ClearReportID() {
	m.report_id = nil
	m.clearedFields[scanrequest.FieldReportID] = struct{}{}
}

// ReportIDCleared returns if the "report_id" field was cleared in this mutation.
func (m *ScanRequestMutation) ReportIDCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldReportID]
	return ok
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ScanRequestMutation) ResetReportID() {
	m.report_id = nil
	delete(m.clearedFields, scanrequest.FieldReportID)
}

// SetCurrentStage sets the "current_stage" field.
func (m *ScanRequestMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *ScanRequestMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldCurrentStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *ScanRequestMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[scanrequest.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *ScanRequestMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *ScanRequestMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, scanrequest.FieldCurrentStage)
}

// SetCompletedStages sets the "completed_stages" field.
func (m *ScanRequestMutation) SetCompletedStages(i int) {
	m.completed_stages = &i
	m.addcompleted_stages = nil
}

// CompletedStages returns the value of the "completed_stages" field in the mutation.
func (m *ScanRequestMutation) CompletedStages() (r int, exists bool) {
	v := m.completed_stages
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedStages returns the old "completed_stages" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldCompletedStages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedStages: %w", err)
	}
	return oldValue.CompletedStages, nil
}

// AddCompletedStages adds i to the "completed_stages" field.
func (m *ScanRequestMutation) AddCompletedStages(i int) {
	if m.addcompleted_stages != nil {
		*m.addcompleted_stages += i
	} else {
		m.addcompleted_stages = &i
	}
}

// AddedCompletedStages returns the value that was added to the "completed_stages" field in this mutation.
func (m *ScanRequestMutation) AddedCompletedStages() (r int, exists bool) {
	v := m.addcompleted_stages
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedStages resets all changes to the "completed_stages" field.
func (m *ScanRequestMutation) ResetCompletedStages() {
	m.completed_stages = nil
	m.addcompleted_stages = nil
}

// SetPodID sets the "pod_id" field.
func (m *ScanRequestMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ScanRequestMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ScanRequestMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[scanrequest.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ScanRequestMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ScanRequestMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, scanrequest.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScanRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScanRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScanRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScanRequestMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScanRequestMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ScanRequestMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[scanrequest.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ScanRequestMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScanRequestMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, scanrequest.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ScanRequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ScanRequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ScanRequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[scanrequest.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ScanRequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ScanRequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, scanrequest.FieldCompletedAt)
}

// SetDeadlineAt sets the "deadline_at" field.
func (m *ScanRequestMutation) SetDeadlineAt(t time.Time) {
	m.deadline_at = &t
}

// DeadlineAt returns the value of the "deadline_at" field in the mutation.
func (m *ScanRequestMutation) DeadlineAt() (r time.Time, exists bool) {
	v := m.deadline_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineAt returns the old "deadline_at" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldDeadlineAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineAt: %w", err)
	}
	return oldValue.DeadlineAt, nil
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (m *ScanRequestMutation) ClearDeadlineAt() {
	m.deadline_at = nil
	m.clearedFields[scanrequest.FieldDeadlineAt] = struct{}{}
}

// DeadlineAtCleared returns if the "deadline_at" field was cleared in this mutation.
func (m *ScanRequestMutation) DeadlineAtCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldDeadlineAt]
	return ok
}

// ResetDeadlineAt resets all changes to the "deadline_at" field.
func (m *ScanRequestMutation) ResetDeadlineAt() {
	m.deadline_at = nil
	delete(m.clearedFields, scanrequest.FieldDeadlineAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *ScanRequestMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *ScanRequestMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the ScanRequest entity.
// If the ScanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanRequestMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *ScanRequestMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[scanrequest.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *ScanRequestMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[scanrequest.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *ScanRequestMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, scanrequest.FieldLastHeartbeatAt)
}

// AddJobIDs adds the "jobs" edge to the CollectorJob entity by ids.
func (m *ScanRequestMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the CollectorJob entity.
func (m *ScanRequestMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the CollectorJob entity was cleared.
func (m *ScanRequestMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the CollectorJob entity by IDs.
func (m *ScanRequestMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the CollectorJob entity.
func (m *ScanRequestMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ScanRequestMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ScanRequestMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// SetEvidenceCollectionID sets the "evidence_collection" edge to the EvidenceCollection entity by id.
func (m *ScanRequestMutation) SetEvidenceCollectionID(id string) {
	m.evidence_collection = &id
}

// ClearEvidenceCollection clears the "evidence_collection" edge to the EvidenceCollection entity.
func (m *ScanRequestMutation) ClearEvidenceCollection() {
	m.clearedevidence_collection = true
}

// EvidenceCollectionCleared reports if the "evidence_collection" edge to the EvidenceCollection entity was cleared.
func (m *ScanRequestMutation) EvidenceCollectionCleared() bool {
	return m.clearedevidence_collection
}

// EvidenceCollectionID returns the "evidence_collection" edge ID in the mutation.
func (m *ScanRequestMutation) EvidenceCollectionID() (id string, exists bool) {
	if m.evidence_collection != nil {
		return *m.evidence_collection, true
	}
	return
}

// EvidenceCollectionIDs returns the "evidence_collection" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvidenceCollectionID instead. It exists only for internal usage by the builders.
func (m *ScanRequestMutation) EvidenceCollectionIDs() (ids []string) {
	if id := m.evidence_collection; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvidenceCollection resets all changes to the "evidence_collection" edge.
func (m *ScanRequestMutation) ResetEvidenceCollection() {
	m.evidence_collection = nil
	m.clearedevidence_collection = false
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by ids.
func (m *ScanRequestMutation) AddEvidenceIDs(ids ...string) {
	if m.evidence == nil {
		m.evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the Evidence entity.
func (m *ScanRequestMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the Evidence entity was cleared.
func (m *ScanRequestMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the Evidence entity by IDs.
func (m *ScanRequestMutation) RemoveEvidenceIDs(ids ...string) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the Evidence entity.
func (m *ScanRequestMutation) RemovedEvidenceIDs() (ids []string) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *ScanRequestMutation) EvidenceIDs() (ids []string) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *ScanRequestMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// AddStageResultIDs adds the "stage_results" edge to the StageResult entity by ids.
func (m *ScanRequestMutation) AddStageResultIDs(ids ...string) {
	if m.stage_results == nil {
		m.stage_results = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_results[ids[i]] = struct{}{}
	}
}

// ClearStageResults clears the "stage_results" edge to the StageResult entity.
func (m *ScanRequestMutation) ClearStageResults() {
	m.clearedstage_results = true
}

// StageResultsCleared reports if the "stage_results" edge to the StageResult entity was cleared.
func (m *ScanRequestMutation) StageResultsCleared() bool {
	return m.clearedstage_results
}

// RemoveStageResultIDs removes the "stage_results" edge to the StageResult entity by IDs.
func (m *ScanRequestMutation) RemoveStageResultIDs(ids ...string) {
	if m.removedstage_results == nil {
		m.removedstage_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_results, ids[i])
		m.removedstage_results[ids[i]] = struct{}{}
	}
}

// RemovedStageResults returns the removed IDs of the "stage_results" edge to the StageResult entity.
func (m *ScanRequestMutation) RemovedStageResultsIDs() (ids []string) {
	for id := range m.removedstage_results {
		ids = append(ids, id)
	}
	return
}

// StageResultsIDs returns the "stage_results" edge IDs in the mutation.
func (m *ScanRequestMutation) StageResultsIDs() (ids []string) {
	for id := range m.stage_results {
		ids = append(ids, id)
	}
	return
}

// ResetStageResults resets all changes to the "stage_results" edge.
func (m *ScanRequestMutation) ResetStageResults() {
	m.stage_results = nil
	m.clearedstage_results = false
	m.removedstage_results = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *ScanRequestMutation) AddReportIDs(ids ...string) {
	if m.reports == nil {
		m.reports = make(map[string]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *ScanRequestMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *ScanRequestMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *ScanRequestMutation) RemoveReportIDs(ids ...string) {
	if m.removedreports == nil {
		m.removedreports = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *ScanRequestMutation) RemovedReportsIDs() (ids []string) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *ScanRequestMutation) ReportsIDs() (ids []string) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *ScanRequestMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ScanRequestMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ScanRequestMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ScanRequestMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ScanRequestMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ScanRequestMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ScanRequestMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ScanRequestMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the ScanRequestMutation builder.
func (m *ScanRequestMutation) Where(ps ...predicate.ScanRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanRequest).
func (m *ScanRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanRequestMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.company_name != nil {
		fields = append(fields, scanrequest.FieldCompanyName)
	}
	if m.website != nil {
		fields = append(fields, scanrequest.FieldWebsite)
	}
	if m.investor_profile != nil {
		fields = append(fields, scanrequest.FieldInvestorProfile)
	}
	if m.analysis_depth != nil {
		fields = append(fields, scanrequest.FieldAnalysisDepth)
	}
	if m.thesis != nil {
		fields = append(fields, scanrequest.FieldThesis)
	}
	if m.status != nil {
		fields = append(fields, scanrequest.FieldStatus)
	}
	if m.status_message != nil {
		fields = append(fields, scanrequest.FieldStatusMessage)
	}
	if m.report_id != nil {
		fields = append(fields, scanrequest.FieldReportID)
	}
	if m.current_stage != nil {
		fields = append(fields, scanrequest.FieldCurrentStage)
	}
	if m.completed_stages != nil {
		fields = append(fields, scanrequest.FieldCompletedStages)
	}
	if m.pod_id != nil {
		fields = append(fields, scanrequest.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, scanrequest.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, scanrequest.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, scanrequest.FieldCompletedAt)
	}
	if m.deadline_at != nil {
		fields = append(fields, scanrequest.FieldDeadlineAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, scanrequest.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanrequest.FieldCompanyName:
		return m.CompanyName()
	case scanrequest.FieldWebsite:
		return m.Website()
	case scanrequest.FieldInvestorProfile:
		return m.InvestorProfile()
	case scanrequest.FieldAnalysisDepth:
		return m.AnalysisDepth()
	case scanrequest.FieldThesis:
		return m.Thesis()
	case scanrequest.FieldStatus:
		return m.Status()
	case scanrequest.FieldStatusMessage:
		return m.StatusMessage()
	case scanrequest.FieldReportID:
		return m.ReportID()
	case scanrequest.FieldCurrentStage:
		return m.CurrentStage()
	case scanrequest.FieldCompletedStages:
		return m.CompletedStages()
	case scanrequest.FieldPodID:
		return m.PodID()
	case scanrequest.FieldCreatedAt:
		return m.CreatedAt()
	case scanrequest.FieldStartedAt:
		return m.StartedAt()
	case scanrequest.FieldCompletedAt:
		return m.CompletedAt()
	case scanrequest.FieldDeadlineAt:
		return m.DeadlineAt()
	case scanrequest.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanrequest.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case scanrequest.FieldWebsite:
		return m.OldWebsite(ctx)
	case scanrequest.FieldInvestorProfile:
		return m.OldInvestorProfile(ctx)
	case scanrequest.FieldAnalysisDepth:
		return m.OldAnalysisDepth(ctx)
	case scanrequest.FieldThesis:
		return m.OldThesis(ctx)
	case scanrequest.FieldStatus:
		return m.OldStatus(ctx)
	case scanrequest.FieldStatusMessage:
		return m.OldStatusMessage(ctx)
	case scanrequest.FieldReportID:
		return m.OldReportID(ctx)
	case scanrequest.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case scanrequest.FieldCompletedStages:
		return m.OldCompletedStages(ctx)
	case scanrequest.FieldPodID:
		return m.OldPodID(ctx)
	case scanrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scanrequest.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scanrequest.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case scanrequest.FieldDeadlineAt:
		return m.OldDeadlineAt(ctx)
	case scanrequest.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScanRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanrequest.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case scanrequest.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case scanrequest.FieldInvestorProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestorProfile(v)
		return nil
	case scanrequest.FieldAnalysisDepth:
		v, ok := value.(scanrequest.AnalysisDepth)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisDepth(v)
		return nil
	case scanrequest.FieldThesis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThesis(v)
		return nil
	case scanrequest.FieldStatus:
		v, ok := value.(scanrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scanrequest.FieldStatusMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusMessage(v)
		return nil
	case scanrequest.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case scanrequest.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case scanrequest.FieldCompletedStages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedStages(v)
		return nil
	case scanrequest.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case scanrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scanrequest.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scanrequest.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case scanrequest.FieldDeadlineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineAt(v)
		return nil
	case scanrequest.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScanRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanRequestMutation) AddedFields() []string {
	var fields []string
	if m.addcompleted_stages != nil {
		fields = append(fields, scanrequest.FieldCompletedStages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scanrequest.FieldCompletedStages:
		return m.AddedCompletedStages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scanrequest.FieldCompletedStages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedStages(v)
		return nil
	}
	return fmt.Errorf("unknown ScanRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanrequest.FieldInvestorProfile) {
		fields = append(fields, scanrequest.FieldInvestorProfile)
	}
	if m.FieldCleared(scanrequest.FieldThesis) {
		fields = append(fields, scanrequest.FieldThesis)
	}
	if m.FieldCleared(scanrequest.FieldStatusMessage) {
		fields = append(fields, scanrequest.FieldStatusMessage)
	}
	if m.FieldCleared(scanrequest.FieldReportID) {
		fields = append(fields, scanrequest.FieldReportID)
	}
	if m.FieldCleared(scanrequest.FieldCurrentStage) {
		fields = append(fields, scanrequest.FieldCurrentStage)
	}
	if m.FieldCleared(scanrequest.FieldPodID) {
		fields = append(fields, scanrequest.FieldPodID)
	}
	if m.FieldCleared(scanrequest.FieldStartedAt) {
		fields = append(fields, scanrequest.FieldStartedAt)
	}
	if m.FieldCleared(scanrequest.FieldCompletedAt) {
		fields = append(fields, scanrequest.FieldCompletedAt)
	}
	if m.FieldCleared(scanrequest.FieldDeadlineAt) {
		fields = append(fields, scanrequest.FieldDeadlineAt)
	}
	if m.FieldCleared(scanrequest.FieldLastHeartbeatAt) {
		fields = append(fields, scanrequest.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanRequestMutation) ClearField(name string) error {
	switch name {
	case scanrequest.FieldInvestorProfile:
		m.ClearInvestorProfile()
		return nil
	case scanrequest.FieldThesis:
		m.ClearThesis()
		return nil
	case scanrequest.FieldStatusMessage:
		m.ClearStatusMessage()
		return nil
	case scanrequest.FieldReportID:
		m.ClearReportID()
		return nil
	case scanrequest.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case scanrequest.FieldPodID:
		m.ClearPodID()
		return nil
	case scanrequest.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case scanrequest.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case scanrequest.FieldDeadlineAt:
		m.ClearDeadlineAt()
		return nil
	case scanrequest.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown ScanRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanRequestMutation) ResetField(name string) error {
	switch name {
	case scanrequest.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case scanrequest.FieldWebsite:
		m.ResetWebsite()
		return nil
	case scanrequest.FieldInvestorProfile:
		m.ResetInvestorProfile()
		return nil
	case scanrequest.FieldAnalysisDepth:
		m.ResetAnalysisDepth()
		return nil
	case scanrequest.FieldThesis:
		m.ResetThesis()
		return nil
	case scanrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case scanrequest.FieldStatusMessage:
		m.ResetStatusMessage()
		return nil
	case scanrequest.FieldReportID:
		m.ResetReportID()
		return nil
	case scanrequest.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case scanrequest.FieldCompletedStages:
		m.ResetCompletedStages()
		return nil
	case scanrequest.FieldPodID:
		m.ResetPodID()
		return nil
	case scanrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scanrequest.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scanrequest.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case scanrequest.FieldDeadlineAt:
		m.ResetDeadlineAt()
		return nil
	case scanrequest.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown ScanRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.jobs != nil {
		edges = append(edges, scanrequest.EdgeJobs)
	}
	if m.evidence_collection != nil {
		edges = append(edges, scanrequest.EdgeEvidenceCollection)
	}
	if m.evidence != nil {
		edges = append(edges, scanrequest.EdgeEvidence)
	}
	if m.stage_results != nil {
		edges = append(edges, scanrequest.EdgeStageResults)
	}
	if m.reports != nil {
		edges = append(edges, scanrequest.EdgeReports)
	}
	if m.events != nil {
		edges = append(edges, scanrequest.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scanrequest.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeEvidenceCollection:
		if id := m.evidence_collection; id != nil {
			return []ent.Value{*id}
		}
	case scanrequest.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeStageResults:
		ids := make([]ent.Value, 0, len(m.stage_results))
		for id := range m.stage_results {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedjobs != nil {
		edges = append(edges, scanrequest.EdgeJobs)
	}
	if m.removedevidence != nil {
		edges = append(edges, scanrequest.EdgeEvidence)
	}
	if m.removedstage_results != nil {
		edges = append(edges, scanrequest.EdgeStageResults)
	}
	if m.removedreports != nil {
		edges = append(edges, scanrequest.EdgeReports)
	}
	if m.removedevents != nil {
		edges = append(edges, scanrequest.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanRequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scanrequest.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeStageResults:
		ids := make([]ent.Value, 0, len(m.removedstage_results))
		for id := range m.removedstage_results {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	case scanrequest.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedjobs {
		edges = append(edges, scanrequest.EdgeJobs)
	}
	if m.clearedevidence_collection {
		edges = append(edges, scanrequest.EdgeEvidenceCollection)
	}
	if m.clearedevidence {
		edges = append(edges, scanrequest.EdgeEvidence)
	}
	if m.clearedstage_results {
		edges = append(edges, scanrequest.EdgeStageResults)
	}
	if m.clearedreports {
		edges = append(edges, scanrequest.EdgeReports)
	}
	if m.clearedevents {
		edges = append(edges, scanrequest.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case scanrequest.EdgeJobs:
		return m.clearedjobs
	case scanrequest.EdgeEvidenceCollection:
		return m.clearedevidence_collection
	case scanrequest.EdgeEvidence:
		return m.clearedevidence
	case scanrequest.EdgeStageResults:
		return m.clearedstage_results
	case scanrequest.EdgeReports:
		return m.clearedreports
	case scanrequest.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanRequestMutation) ClearEdge(name string) error {
	switch name {
	case scanrequest.EdgeEvidenceCollection:
		m.ClearEvidenceCollection()
		return nil
	}
	return fmt.Errorf("unknown ScanRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanRequestMutation) ResetEdge(name string) error {
	switch name {
	case scanrequest.EdgeJobs:
		m.ResetJobs()
		return nil
	case scanrequest.EdgeEvidenceCollection:
		m.ResetEvidenceCollection()
		return nil
	case scanrequest.EdgeEvidence:
		m.ResetEvidence()
		return nil
	case scanrequest.EdgeStageResults:
		m.ResetStageResults()
		return nil
	case scanrequest.EdgeReports:
		m.ResetReports()
		return nil
	case scanrequest.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown ScanRequest edge %s", name)
}

// StageResultMutation represents an operation that mutates the StageResult nodes in the graph.
type StageResultMutation struct {
	config
	op                Op
	typ               string
	id                *string
	stage_name        *string
	stage_index       *int
	addstage_index    *int
	status            *stageresult.Status
	retries           *int
	addretries        *int
	duration_ms       *int
	addduration_ms    *int
	evidence_count    *int
	addevidence_count *int
	error_message     *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	scan              *string
	clearedscan       bool
	done              bool
	oldValue          func(context.Context) (*StageResult, error)
	predicates        []predicate.StageResult
}

var _ ent.Mutation = (*StageResultMutation)(nil)

// stageresultOption allows management of the mutation configuration using functional options.
type stageresultOption func(*StageResultMutation)

// newStageResultMutation creates new mutation for the StageResult entity.
func newStageResultMutation(c config, op Op, opts ...stageresultOption) *StageResultMutation {
	m := &StageResultMutation{
		config:        c,
		op:            op,
		typ:           TypeStageResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageResultID sets the ID field of the mutation.
func withStageResultID(id string) stageresultOption {
	return func(m *StageResultMutation) {
		var (
			err   error
			once  sync.Once
			value *StageResult
		)
		m.oldValue = func(ctx context.Context) (*StageResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageResult sets the old StageResult of the mutation.
func withStageResult(node *StageResult) stageresultOption {
	return func(m *StageResultMutation) {
		m.oldValue = func(context.Context) (*StageResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageResult entities.
func (m *StageResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanID sets the "scan_id" field.
func (m *StageResultMutation) SetScanID(s string) {
	m.scan = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *StageResultMutation) ScanID() (r string, exists bool) {
	v := m.scan
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *StageResultMutation) ResetScanID() {
	m.scan = nil
}

// SetStageName sets the "stage_name" field.
func (m *StageResultMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageResultMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageResultMutation) ResetStageName() {
	m.stage_name = nil
}

// SetStageIndex sets the "stage_index" field.
func (m *StageResultMutation) SetStageIndex(i int) {
	m.stage_index = &i
	m.addstage_index = nil
}

// StageIndex returns the value of the "stage_index" field in the mutation.
func (m *StageResultMutation) StageIndex() (r int, exists bool) {
	v := m.stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStageIndex returns the old "stage_index" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldStageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageIndex: %w", err)
	}
	return oldValue.StageIndex, nil
}

// AddStageIndex adds i to the "stage_index" field.
func (m *StageResultMutation) AddStageIndex(i int) {
	if m.addstage_index != nil {
		*m.addstage_index += i
	} else {
		m.addstage_index = &i
	}
}

// AddedStageIndex returns the value that was added to the "stage_index" field in this mutation.
func (m *StageResultMutation) AddedStageIndex() (r int, exists bool) {
	v := m.addstage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageIndex resets all changes to the "stage_index" field.
func (m *StageResultMutation) ResetStageIndex() {
	m.stage_index = nil
	m.addstage_index = nil
}

// SetStatus sets the "status" field.
func (m *StageResultMutation) SetStatus(s stageresult.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageResultMutation) Status() (r stageresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldStatus(ctx context.Context) (v stageresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageResultMutation) ResetStatus() {
	m.status = nil
}

// SetRetries sets the "retries" field.
func (m *StageResultMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *StageResultMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *StageResultMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *StageResultMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *StageResultMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageResultMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageResultMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageResultMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageResultMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageResultMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *StageResultMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *StageResultMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *StageResultMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *StageResultMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *StageResultMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *StageResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stageresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stageresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stageresult.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearScan clears the "scan" edge to the ScanRequest entity.
func (m *StageResultMutation) ClearScan() {
	m.clearedscan = true
	m.clearedFields[stageresult.FieldScanID] = struct{}{}
}

// ScanCleared reports if the "scan" edge to the ScanRequest entity was cleared.
func (m *StageResultMutation) ScanCleared() bool {
	return m.clearedscan
}

// ScanIDs returns the "scan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScanID instead. It exists only for internal usage by the builders.
func (m *StageResultMutation) ScanIDs() (ids []string) {
	if id := m.scan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScan resets all changes to the "scan" edge.
func (m *StageResultMutation) ResetScan() {
	m.scan = nil
	m.clearedscan = false
}

// Where appends a list predicates to the StageResultMutation builder.
func (m *StageResultMutation) Where(ps ...predicate.StageResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageResult).
func (m *StageResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.scan != nil {
		fields = append(fields, stageresult.FieldScanID)
	}
	if m.stage_name != nil {
		fields = append(fields, stageresult.FieldStageName)
	}
	if m.stage_index != nil {
		fields = append(fields, stageresult.FieldStageIndex)
	}
	if m.status != nil {
		fields = append(fields, stageresult.FieldStatus)
	}
	if m.retries != nil {
		fields = append(fields, stageresult.FieldRetries)
	}
	if m.duration_ms != nil {
		fields = append(fields, stageresult.FieldDurationMs)
	}
	if m.evidence_count != nil {
		fields = append(fields, stageresult.FieldEvidenceCount)
	}
	if m.error_message != nil {
		fields = append(fields, stageresult.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, stageresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageresult.FieldScanID:
		return m.ScanID()
	case stageresult.FieldStageName:
		return m.StageName()
	case stageresult.FieldStageIndex:
		return m.StageIndex()
	case stageresult.FieldStatus:
		return m.Status()
	case stageresult.FieldRetries:
		return m.Retries()
	case stageresult.FieldDurationMs:
		return m.DurationMs()
	case stageresult.FieldEvidenceCount:
		return m.EvidenceCount()
	case stageresult.FieldErrorMessage:
		return m.ErrorMessage()
	case stageresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageresult.FieldScanID:
		return m.OldScanID(ctx)
	case stageresult.FieldStageName:
		return m.OldStageName(ctx)
	case stageresult.FieldStageIndex:
		return m.OldStageIndex(ctx)
	case stageresult.FieldStatus:
		return m.OldStatus(ctx)
	case stageresult.FieldRetries:
		return m.OldRetries(ctx)
	case stageresult.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stageresult.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case stageresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stageresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageresult.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case stageresult.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stageresult.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageIndex(v)
		return nil
	case stageresult.FieldStatus:
		v, ok := value.(stageresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stageresult.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case stageresult.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stageresult.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case stageresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stageresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageResultMutation) AddedFields() []string {
	var fields []string
	if m.addstage_index != nil {
		fields = append(fields, stageresult.FieldStageIndex)
	}
	if m.addretries != nil {
		fields = append(fields, stageresult.FieldRetries)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stageresult.FieldDurationMs)
	}
	if m.addevidence_count != nil {
		fields = append(fields, stageresult.FieldEvidenceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageresult.FieldStageIndex:
		return m.AddedStageIndex()
	case stageresult.FieldRetries:
		return m.AddedRetries()
	case stageresult.FieldDurationMs:
		return m.AddedDurationMs()
	case stageresult.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageresult.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageIndex(v)
		return nil
	case stageresult.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	case stageresult.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case stageresult.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	}
	return fmt.Errorf("unknown StageResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageresult.FieldErrorMessage) {
		fields = append(fields, stageresult.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageResultMutation) ClearField(name string) error {
	switch name {
	case stageresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown StageResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageResultMutation) ResetField(name string) error {
	switch name {
	case stageresult.FieldScanID:
		m.ResetScanID()
		return nil
	case stageresult.FieldStageName:
		m.ResetStageName()
		return nil
	case stageresult.FieldStageIndex:
		m.ResetStageIndex()
		return nil
	case stageresult.FieldStatus:
		m.ResetStatus()
		return nil
	case stageresult.FieldRetries:
		m.ResetRetries()
		return nil
	case stageresult.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stageresult.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case stageresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stageresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scan != nil {
		edges = append(edges, stageresult.EdgeScan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageresult.EdgeScan:
		if id := m.scan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscan {
		edges = append(edges, stageresult.EdgeScan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageResultMutation) EdgeCleared(name string) bool {
	switch name {
	case stageresult.EdgeScan:
		return m.clearedscan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageResultMutation) ClearEdge(name string) error {
	switch name {
	case stageresult.EdgeScan:
		m.ClearScan()
		return nil
	}
	return fmt.Errorf("unknown StageResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageResultMutation) ResetEdge(name string) error {
	switch name {
	case stageresult.EdgeScan:
		m.ResetScan()
		return nil
	}
	return fmt.Errorf("unknown StageResult edge %s", name)
}
