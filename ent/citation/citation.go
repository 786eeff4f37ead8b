// Code generated by ent, DO NOT EDIT.

package citation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the citation type in the database.
	Label = "citation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "citation_id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldSectionID holds the string denoting the section_id field in the database.
	FieldSectionID = "section_id"
	// FieldCitationNumber holds the string denoting the citation_number field in the database.
	FieldCitationNumber = "citation_number"
	// FieldClaim holds the string denoting the claim field in the database.
	FieldClaim = "claim"
	// FieldEvidenceID holds the string denoting the evidence_id field in the database.
	FieldEvidenceID = "evidence_id"
	// FieldQuote holds the string denoting the quote field in the database.
	FieldQuote = "quote"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldWeakAnchor holds the string denoting the weak_anchor field in the database.
	FieldWeakAnchor = "weak_anchor"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// EdgeSection holds the string denoting the section edge name in mutations.
	EdgeSection = "section"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// ReportFieldID holds the string denoting the ID field of the Report.
	ReportFieldID = "report_id"
	// ReportSectionFieldID holds the string denoting the ID field of the ReportSection.
	ReportSectionFieldID = "section_id"
	// EvidenceFieldID holds the string denoting the ID field of the Evidence.
	EvidenceFieldID = "evidence_id"
	// Table holds the table name of the citation in the database.
	Table = "citations"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "citations"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
	// SectionTable is the table that holds the section relation/edge.
	SectionTable = "citations"
	// SectionInverseTable is the table name for the ReportSection entity.
	// It exists in this package in order to avoid circular dependency with the "reportsection" package.
	SectionInverseTable = "report_sections"
	// SectionColumn is the table column denoting the section relation/edge.
	SectionColumn = "section_id"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "citations"
	// EvidenceInverseTable is the table name for the Evidence entity.
	// It exists in this package in order to avoid circular dependency with the "evidence" package.
	EvidenceInverseTable = "evidence"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "evidence_id"
)

// Columns holds all SQL columns for citation fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldSectionID,
	FieldCitationNumber,
	FieldClaim,
	FieldEvidenceID,
	FieldQuote,
	FieldContext,
	FieldConfidence,
	FieldWeakAnchor,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultWeakAnchor holds the default value on creation for the "weak_anchor" field.
	DefaultWeakAnchor bool
)

// OrderOption defines the ordering options for the Citation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// BySectionID orders the results by the section_id field.
func BySectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionID, opts...).ToFunc()
}

// ByCitationNumber orders the results by the citation_number field.
func ByCitationNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCitationNumber, opts...).ToFunc()
}

// ByClaim orders the results by the claim field.
func ByClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaim, opts...).ToFunc()
}

// ByEvidenceID orders the results by the evidence_id field.
func ByEvidenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceID, opts...).ToFunc()
}

// ByQuote orders the results by the quote field.
func ByQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuote, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByWeakAnchor orders the results by the weak_anchor field.
func ByWeakAnchor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeakAnchor, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}

// BySectionField orders the results by section field.
func BySectionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSectionStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvidenceField orders the results by evidence field.
func ByEvidenceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), sql.OrderByField(field, opts...))
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, ReportFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
func newSectionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SectionInverseTable, ReportSectionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SectionTable, SectionColumn),
	)
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, EvidenceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EvidenceTable, EvidenceColumn),
	)
}
