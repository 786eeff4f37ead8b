// Code generated by ent, DO NOT EDIT.

package reportsection

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/probeworks/diligent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContainsFold(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldReportID, v))
}

// PillarID applies equality check predicate on the "pillar_id" field. It's identical to PillarIDEQ.
func PillarID(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldPillarID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldContent, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldScore, v))
}

// Degraded applies equality check predicate on the "degraded" field. It's identical to DegradedEQ.
func Degraded(v bool) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldDegraded, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldOrderIndex, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContainsFold(FieldReportID, v))
}

// PillarIDEQ applies the EQ predicate on the "pillar_id" field.
func PillarIDEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldPillarID, v))
}

// PillarIDNEQ applies the NEQ predicate on the "pillar_id" field.
func PillarIDNEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldPillarID, v))
}

// PillarIDIn applies the In predicate on the "pillar_id" field.
func PillarIDIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIn(FieldPillarID, vs...))
}

// PillarIDNotIn applies the NotIn predicate on the "pillar_id" field.
func PillarIDNotIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotIn(FieldPillarID, vs...))
}

// PillarIDGT applies the GT predicate on the "pillar_id" field.
func PillarIDGT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGT(FieldPillarID, v))
}

// PillarIDGTE applies the GTE predicate on the "pillar_id" field.
func PillarIDGTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGTE(FieldPillarID, v))
}

// PillarIDLT applies the LT predicate on the "pillar_id" field.
func PillarIDLT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLT(FieldPillarID, v))
}

// PillarIDLTE applies the LTE predicate on the "pillar_id" field.
func PillarIDLTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLTE(FieldPillarID, v))
}

// PillarIDContains applies the Contains predicate on the "pillar_id" field.
func PillarIDContains(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContains(FieldPillarID, v))
}

// PillarIDHasPrefix applies the HasPrefix predicate on the "pillar_id" field.
func PillarIDHasPrefix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasPrefix(FieldPillarID, v))
}

// PillarIDHasSuffix applies the HasSuffix predicate on the "pillar_id" field.
func PillarIDHasSuffix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasSuffix(FieldPillarID, v))
}

// PillarIDEqualFold applies the EqualFold predicate on the "pillar_id" field.
func PillarIDEqualFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEqualFold(FieldPillarID, v))
}

// PillarIDContainsFold applies the ContainsFold predicate on the "pillar_id" field.
func PillarIDContainsFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContainsFold(FieldPillarID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldContainsFold(FieldContent, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLTE(FieldScore, v))
}

// KeyFindingsIsNil applies the IsNil predicate on the "key_findings" field.
func KeyFindingsIsNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIsNull(FieldKeyFindings))
}

// KeyFindingsNotNil applies the NotNil predicate on the "key_findings" field.
func KeyFindingsNotNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotNull(FieldKeyFindings))
}

// RisksIsNil applies the IsNil predicate on the "risks" field.
func RisksIsNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIsNull(FieldRisks))
}

// RisksNotNil applies the NotNil predicate on the "risks" field.
func RisksNotNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotNull(FieldRisks))
}

// OpportunitiesIsNil applies the IsNil predicate on the "opportunities" field.
func OpportunitiesIsNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIsNull(FieldOpportunities))
}

// OpportunitiesNotNil applies the NotNil predicate on the "opportunities" field.
func OpportunitiesNotNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotNull(FieldOpportunities))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotNull(FieldRecommendations))
}

// DegradedEQ applies the EQ predicate on the "degraded" field.
func DegradedEQ(v bool) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldDegraded, v))
}

// DegradedNEQ applies the NEQ predicate on the "degraded" field.
func DegradedNEQ(v bool) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldDegraded, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ReportSection {
	return predicate.ReportSection(sql.FieldLTE(FieldOrderIndex, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.ReportSection {
	return predicate.ReportSection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.ReportSection {
	return predicate.ReportSection(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCitations applies the HasEdge predicate on the "citations" edge.
func HasCitations() predicate.ReportSection {
	return predicate.ReportSection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCitationsWith applies the HasEdge predicate on the "citations" edge with a given conditions (other predicates).
func HasCitationsWith(preds ...predicate.Citation) predicate.ReportSection {
	return predicate.ReportSection(func(s *sql.Selector) {
		step := newCitationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportSection) predicate.ReportSection {
	return predicate.ReportSection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportSection) predicate.ReportSection {
	return predicate.ReportSection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportSection) predicate.ReportSection {
	return predicate.ReportSection(sql.NotPredicates(p))
}
