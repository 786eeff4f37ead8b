// Code generated by ent, DO NOT EDIT.

package citation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/probeworks/diligent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldReportID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldSectionID, v))
}

// CitationNumber applies equality check predicate on the "citation_number" field. It's identical to CitationNumberEQ.
func CitationNumber(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldCitationNumber, v))
}

// Claim applies equality check predicate on the "claim" field. It's identical to ClaimEQ.
func Claim(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldClaim, v))
}

// EvidenceID applies equality check predicate on the "evidence_id" field. It's identical to EvidenceIDEQ.
func EvidenceID(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldEvidenceID, v))
}

// Quote applies equality check predicate on the "quote" field. It's identical to QuoteEQ.
func Quote(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldQuote, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldContext, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldConfidence, v))
}

// WeakAnchor applies equality check predicate on the "weak_anchor" field. It's identical to WeakAnchorEQ.
func WeakAnchor(v bool) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldWeakAnchor, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldReportID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldSectionID, v))
}

// CitationNumberEQ applies the EQ predicate on the "citation_number" field.
func CitationNumberEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldCitationNumber, v))
}

// CitationNumberNEQ applies the NEQ predicate on the "citation_number" field.
func CitationNumberNEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldCitationNumber, v))
}

// CitationNumberIn applies the In predicate on the "citation_number" field.
func CitationNumberIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldCitationNumber, vs...))
}

// CitationNumberNotIn applies the NotIn predicate on the "citation_number" field.
func CitationNumberNotIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldCitationNumber, vs...))
}

// CitationNumberGT applies the GT predicate on the "citation_number" field.
func CitationNumberGT(v int) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldCitationNumber, v))
}

// CitationNumberGTE applies the GTE predicate on the "citation_number" field.
func CitationNumberGTE(v int) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldCitationNumber, v))
}

// CitationNumberLT applies the LT predicate on the "citation_number" field.
func CitationNumberLT(v int) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldCitationNumber, v))
}

// CitationNumberLTE applies the LTE predicate on the "citation_number" field.
func CitationNumberLTE(v int) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldCitationNumber, v))
}

// ClaimEQ applies the EQ predicate on the "claim" field.
func ClaimEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldClaim, v))
}

// ClaimNEQ applies the NEQ predicate on the "claim" field.
func ClaimNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldClaim, v))
}

// ClaimIn applies the In predicate on the "claim" field.
func ClaimIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldClaim, vs...))
}

// ClaimNotIn applies the NotIn predicate on the "claim" field.
func ClaimNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldClaim, vs...))
}

// ClaimGT applies the GT predicate on the "claim" field.
func ClaimGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldClaim, v))
}

// ClaimGTE applies the GTE predicate on the "claim" field.
func ClaimGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldClaim, v))
}

// ClaimLT applies the LT predicate on the "claim" field.
func ClaimLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldClaim, v))
}

// ClaimLTE applies the LTE predicate on the "claim" field.
func ClaimLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldClaim, v))
}

// ClaimContains applies the Contains predicate on the "claim" field.
func ClaimContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldClaim, v))
}

// ClaimHasPrefix applies the HasPrefix predicate on the "claim" field.
func ClaimHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldClaim, v))
}

// ClaimHasSuffix applies the HasSuffix predicate on the "claim" field.
func ClaimHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldClaim, v))
}

// ClaimEqualFold applies the EqualFold predicate on the "claim" field.
func ClaimEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldClaim, v))
}

// ClaimContainsFold applies the ContainsFold predicate on the "claim" field.
func ClaimContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldClaim, v))
}

// EvidenceIDEQ applies the EQ predicate on the "evidence_id" field.
func EvidenceIDEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldEvidenceID, v))
}

// EvidenceIDNEQ applies the NEQ predicate on the "evidence_id" field.
func EvidenceIDNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldEvidenceID, v))
}

// EvidenceIDIn applies the In predicate on the "evidence_id" field.
func EvidenceIDIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldEvidenceID, vs...))
}

// EvidenceIDNotIn applies the NotIn predicate on the "evidence_id" field.
func EvidenceIDNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldEvidenceID, vs...))
}

// EvidenceIDGT applies the GT predicate on the "evidence_id" field.
func EvidenceIDGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldEvidenceID, v))
}

// EvidenceIDGTE applies the GTE predicate on the "evidence_id" field.
func EvidenceIDGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldEvidenceID, v))
}

// EvidenceIDLT applies the LT predicate on the "evidence_id" field.
func EvidenceIDLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldEvidenceID, v))
}

// EvidenceIDLTE applies the LTE predicate on the "evidence_id" field.
func EvidenceIDLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldEvidenceID, v))
}

// EvidenceIDContains applies the Contains predicate on the "evidence_id" field.
func EvidenceIDContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldEvidenceID, v))
}

// EvidenceIDHasPrefix applies the HasPrefix predicate on the "evidence_id" field.
func EvidenceIDHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldEvidenceID, v))
}

// EvidenceIDHasSuffix applies the HasSuffix predicate on the "evidence_id" field.
func EvidenceIDHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldEvidenceID, v))
}

// EvidenceIDEqualFold applies the EqualFold predicate on the "evidence_id" field.
func EvidenceIDEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldEvidenceID, v))
}

// EvidenceIDContainsFold applies the ContainsFold predicate on the "evidence_id" field.
func EvidenceIDContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldEvidenceID, v))
}

// QuoteEQ applies the EQ predicate on the "quote" field.
func QuoteEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldQuote, v))
}

// QuoteNEQ applies the NEQ predicate on the "quote" field.
func QuoteNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldQuote, v))
}

// QuoteIn applies the In predicate on the "quote" field.
func QuoteIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldQuote, vs...))
}

// QuoteNotIn applies the NotIn predicate on the "quote" field.
func QuoteNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldQuote, vs...))
}

// QuoteGT applies the GT predicate on the "quote" field.
func QuoteGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldQuote, v))
}

// QuoteGTE applies the GTE predicate on the "quote" field.
func QuoteGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldQuote, v))
}

// QuoteLT applies the LT predicate on the "quote" field.
func QuoteLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldQuote, v))
}

// QuoteLTE applies the LTE predicate on the "quote" field.
func QuoteLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldQuote, v))
}

// QuoteContains applies the Contains predicate on the "quote" field.
func QuoteContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldQuote, v))
}

// QuoteHasPrefix applies the HasPrefix predicate on the "quote" field.
func QuoteHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldQuote, v))
}

// QuoteHasSuffix applies the HasSuffix predicate on the "quote" field.
func QuoteHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldQuote, v))
}

// QuoteIsNil applies the IsNil predicate on the "quote" field.
func QuoteIsNil() predicate.Citation {
	return predicate.Citation(sql.FieldIsNull(FieldQuote))
}

// QuoteNotNil applies the NotNil predicate on the "quote" field.
func QuoteNotNil() predicate.Citation {
	return predicate.Citation(sql.FieldNotNull(FieldQuote))
}

// QuoteEqualFold applies the EqualFold predicate on the "quote" field.
func QuoteEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldQuote, v))
}

// QuoteContainsFold applies the ContainsFold predicate on the "quote" field.
func QuoteContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldQuote, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Citation {
	return predicate.Citation(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Citation {
	return predicate.Citation(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldContext, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldConfidence, v))
}

// WeakAnchorEQ applies the EQ predicate on the "weak_anchor" field.
func WeakAnchorEQ(v bool) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldWeakAnchor, v))
}

// WeakAnchorNEQ applies the NEQ predicate on the "weak_anchor" field.
func WeakAnchorNEQ(v bool) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldWeakAnchor, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSection applies the HasEdge predicate on the "section" edge.
func HasSection() predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SectionTable, SectionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSectionWith applies the HasEdge predicate on the "section" edge with a given conditions (other predicates).
func HasSectionWith(preds ...predicate.ReportSection) predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := newSectionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.Evidence) predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.NotPredicates(p))
}
