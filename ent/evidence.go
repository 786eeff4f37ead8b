// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/scanrequest"
)

// Evidence is the model entity for the Evidence schema.
type Evidence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ScanID holds the value of the "scan_id" field.
	ScanID string `json:"scan_id,omitempty"`
	// CollectionID holds the value of the "collection_id" field.
	CollectionID string `json:"collection_id,omitempty"`
	// Pillar/category tag (technology, market, financial, team, security, general)
	Category string `json:"category,omitempty"`
	// Fine-grained type (tech-stack, financial-metric, webpage, tls-config, ...)
	EvidenceType string `json:"evidence_type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Raw collected content (bounded; large payloads are summarized before persistence)
	Raw string `json:"raw,omitempty"`
	// Processed summary used for scoring, fingerprinting, and synthesis
	Summary string `json:"summary,omitempty"`
	// Primary source descriptor: kind, url/query/tool, collected_at
	Source map[string]interface{} `json:"source,omitempty"`
	// Source descriptors absorbed from deduplicated duplicates
	MergedSources []map[string]interface{} `json:"merged_sources,omitempty"`
	// [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// [0,1]
	Relevance float64 `json:"relevance,omitempty"`
	// base_confidence * type_boost * source_boost, clamped to [0,1]
	Score float64 `json:"score,omitempty"`
	// Tokens holds the value of the "tokens" field.
	Tokens int `json:"tokens,omitempty"`
	// True when produced by the heuristic fallback collector
	Fallback bool `json:"fallback,omitempty"`
	// Union of processing steps across merged duplicates
	ProcessingTrail []string `json:"processing_trail,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float64 `json:"embedding,omitempty"`
	// hash(normalized type ‖ url|query ‖ summary prefix)
	Fingerprint string `json:"fingerprint,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvidenceQuery when eager-loading is set.
	Edges        EvidenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvidenceEdges holds the relations/edges for other nodes in the graph.
type EvidenceEdges struct {
	// Scan holds the value of the scan edge.
	Scan *ScanRequest `json:"scan,omitempty"`
	// Collection holds the value of the collection edge.
	Collection *EvidenceCollection `json:"collection,omitempty"`
	// Citations holds the value of the citations edge.
	Citations []*Citation `json:"citations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ScanOrErr returns the Scan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvidenceEdges) ScanOrErr() (*ScanRequest, error) {
	if e.Scan != nil {
		return e.Scan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scanrequest.Label}
	}
	return nil, &NotLoadedError{edge: "scan"}
}

// CollectionOrErr returns the Collection value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvidenceEdges) CollectionOrErr() (*EvidenceCollection, error) {
	if e.Collection != nil {
		return e.Collection, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: evidencecollection.Label}
	}
	return nil, &NotLoadedError{edge: "collection"}
}

// CitationsOrErr returns the Citations value or an error if the edge
// was not loaded in eager-loading.
func (e EvidenceEdges) CitationsOrErr() ([]*Citation, error) {
	if e.loadedTypes[2] {
		return e.Citations, nil
	}
	return nil, &NotLoadedError{edge: "citations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidence.FieldSource, evidence.FieldMergedSources, evidence.FieldProcessingTrail, evidence.FieldMetadata, evidence.FieldEmbedding:
			values[i] = new([]byte)
		case evidence.FieldFallback:
			values[i] = new(sql.NullBool)
		case evidence.FieldConfidence, evidence.FieldRelevance, evidence.FieldScore:
			values[i] = new(sql.NullFloat64)
		case evidence.FieldTokens:
			values[i] = new(sql.NullInt64)
		case evidence.FieldID, evidence.FieldScanID, evidence.FieldCollectionID, evidence.FieldCategory, evidence.FieldEvidenceType, evidence.FieldTitle, evidence.FieldRaw, evidence.FieldSummary, evidence.FieldFingerprint:
			values[i] = new(sql.NullString)
		case evidence.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evidence fields.
func (_m *Evidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidence.FieldScanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_id", values[i])
			} else if value.Valid {
				_m.ScanID = value.String
			}
		case evidence.FieldCollectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collection_id", values[i])
			} else if value.Valid {
				_m.CollectionID = value.String
			}
		case evidence.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case evidence.FieldEvidenceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_type", values[i])
			} else if value.Valid {
				_m.EvidenceType = value.String
			}
		case evidence.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case evidence.FieldRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value.Valid {
				_m.Raw = value.String
			}
		case evidence.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case evidence.FieldSource:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Source); err != nil {
					return fmt.Errorf("unmarshal field source: %w", err)
				}
			}
		case evidence.FieldMergedSources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field merged_sources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MergedSources); err != nil {
					return fmt.Errorf("unmarshal field merged_sources: %w", err)
				}
			}
		case evidence.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case evidence.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case evidence.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case evidence.FieldTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value.Valid {
				_m.Tokens = int(value.Int64)
			}
		case evidence.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		case evidence.FieldProcessingTrail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processing_trail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessingTrail); err != nil {
					return fmt.Errorf("unmarshal field processing_trail: %w", err)
				}
			}
		case evidence.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case evidence.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case evidence.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case evidence.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Evidence.
// This includes values selected through modifiers, order, etc.
func (_m *Evidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScan queries the "scan" edge of the Evidence entity.
func (_m *Evidence) QueryScan() *ScanRequestQuery {
	return NewEvidenceClient(_m.config).QueryScan(_m)
}

// QueryCollection queries the "collection" edge of the Evidence entity.
func (_m *Evidence) QueryCollection() *EvidenceCollectionQuery {
	return NewEvidenceClient(_m.config).QueryCollection(_m)
}

// QueryCitations queries the "citations" edge of the Evidence entity.
func (_m *Evidence) QueryCitations() *CitationQuery {
	return NewEvidenceClient(_m.config).QueryCitations(_m)
}

// Update returns a builder for updating this Evidence.
// Note that you need to call Evidence.Unwrap() before calling this method if this Evidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evidence) Update() *EvidenceUpdateOne {
	return NewEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evidence) Unwrap() *Evidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evidence) String() string {
	var builder strings.Builder
	builder.WriteString("Evidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scan_id=")
	builder.WriteString(_m.ScanID)
	builder.WriteString(", ")
	builder.WriteString("collection_id=")
	builder.WriteString(_m.CollectionID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("evidence_type=")
	builder.WriteString(_m.EvidenceType)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("raw=")
	builder.WriteString(_m.Raw)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("merged_sources=")
	builder.WriteString(fmt.Sprintf("%v", _m.MergedSources))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("relevance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relevance))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteString(", ")
	builder.WriteString("processing_trail=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTrail))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evidences is a parsable slice of Evidence.
type Evidences []*Evidence
