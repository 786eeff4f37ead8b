// Code generated by ent, DO NOT EDIT.

package scanrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/probeworks/diligent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldID, id))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCompanyName, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldWebsite, v))
}

// InvestorProfile applies equality check predicate on the "investor_profile" field. It's identical to InvestorProfileEQ.
func InvestorProfile(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldInvestorProfile, v))
}

// StatusMessage applies equality check predicate on the "status_message" field. It's identical to StatusMessageEQ.
func StatusMessage(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldStatusMessage, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldReportID, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCurrentStage, v))
}

// CompletedStages applies equality check predicate on the "completed_stages" field. It's identical to CompletedStagesEQ.
func CompletedStages(v int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCompletedStages, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// DeadlineAt applies equality check predicate on the "deadline_at" field. It's identical to DeadlineAtEQ.
func DeadlineAt(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldDeadlineAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldCompanyName, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldWebsite, v))
}

// InvestorProfileEQ applies the EQ predicate on the "investor_profile" field.
func InvestorProfileEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldInvestorProfile, v))
}

// InvestorProfileNEQ applies the NEQ predicate on the "investor_profile" field.
func InvestorProfileNEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldInvestorProfile, v))
}

// InvestorProfileIn applies the In predicate on the "investor_profile" field.
func InvestorProfileIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldInvestorProfile, vs...))
}

// InvestorProfileNotIn applies the NotIn predicate on the "investor_profile" field.
func InvestorProfileNotIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldInvestorProfile, vs...))
}

// InvestorProfileGT applies the GT predicate on the "investor_profile" field.
func InvestorProfileGT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldInvestorProfile, v))
}

// InvestorProfileGTE applies the GTE predicate on the "investor_profile" field.
func InvestorProfileGTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldInvestorProfile, v))
}

// InvestorProfileLT applies the LT predicate on the "investor_profile" field.
func InvestorProfileLT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldInvestorProfile, v))
}

// InvestorProfileLTE applies the LTE predicate on the "investor_profile" field.
func InvestorProfileLTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldInvestorProfile, v))
}

// InvestorProfileContains applies the Contains predicate on the "investor_profile" field.
func InvestorProfileContains(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContains(FieldInvestorProfile, v))
}

// InvestorProfileHasPrefix applies the HasPrefix predicate on the "investor_profile" field.
func InvestorProfileHasPrefix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasPrefix(FieldInvestorProfile, v))
}

// InvestorProfileHasSuffix applies the HasSuffix predicate on the "investor_profile" field.
func InvestorProfileHasSuffix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasSuffix(FieldInvestorProfile, v))
}

// InvestorProfileIsNil applies the IsNil predicate on the "investor_profile" field.
func InvestorProfileIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldInvestorProfile))
}

// InvestorProfileNotNil applies the NotNil predicate on the "investor_profile" field.
func InvestorProfileNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldInvestorProfile))
}

// InvestorProfileEqualFold applies the EqualFold predicate on the "investor_profile" field.
func InvestorProfileEqualFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldInvestorProfile, v))
}

// InvestorProfileContainsFold applies the ContainsFold predicate on the "investor_profile" field.
func InvestorProfileContainsFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldInvestorProfile, v))
}

// AnalysisDepthEQ applies the EQ predicate on the "analysis_depth" field.
func AnalysisDepthEQ(v AnalysisDepth) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldAnalysisDepth, v))
}

// AnalysisDepthNEQ applies the NEQ predicate on the "analysis_depth" field.
func AnalysisDepthNEQ(v AnalysisDepth) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldAnalysisDepth, v))
}

// AnalysisDepthIn applies the In predicate on the "analysis_depth" field.
func AnalysisDepthIn(vs ...AnalysisDepth) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldAnalysisDepth, vs...))
}

// AnalysisDepthNotIn applies the NotIn predicate on the "analysis_depth" field.
func AnalysisDepthNotIn(vs ...AnalysisDepth) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldAnalysisDepth, vs...))
}

// ThesisIsNil applies the IsNil predicate on the "thesis" field.
func ThesisIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldThesis))
}

// ThesisNotNil applies the NotNil predicate on the "thesis" field.
func ThesisNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldThesis))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusMessageEQ applies the EQ predicate on the "status_message" field.
func StatusMessageEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldStatusMessage, v))
}

// StatusMessageNEQ applies the NEQ predicate on the "status_message" field.
func StatusMessageNEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldStatusMessage, v))
}

// StatusMessageIn applies the In predicate on the "status_message" field.
func StatusMessageIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldStatusMessage, vs...))
}

// StatusMessageNotIn applies the NotIn predicate on the "status_message" field.
func StatusMessageNotIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldStatusMessage, vs...))
}

// StatusMessageGT applies the GT predicate on the "status_message" field.
func StatusMessageGT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldStatusMessage, v))
}

// StatusMessageGTE applies the GTE predicate on the "status_message" field.
func StatusMessageGTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldStatusMessage, v))
}

// StatusMessageLT applies the LT predicate on the "status_message" field.
func StatusMessageLT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldStatusMessage, v))
}

// StatusMessageLTE applies the LTE predicate on the "status_message" field.
func StatusMessageLTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldStatusMessage, v))
}

// StatusMessageContains applies the Contains predicate on the "status_message" field.
func StatusMessageContains(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContains(FieldStatusMessage, v))
}

// StatusMessageHasPrefix applies the HasPrefix predicate on the "status_message" field.
func StatusMessageHasPrefix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasPrefix(FieldStatusMessage, v))
}

// StatusMessageHasSuffix applies the HasSuffix predicate on the "status_message" field.
func StatusMessageHasSuffix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasSuffix(FieldStatusMessage, v))
}

// StatusMessageIsNil applies the IsNil predicate on the "status_message" field.
func StatusMessageIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldStatusMessage))
}

// StatusMessageNotNil applies the NotNil predicate on the "status_message" field.
func StatusMessageNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldStatusMessage))
}

// StatusMessageEqualFold applies the EqualFold predicate on the "status_message" field.
func StatusMessageEqualFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldStatusMessage, v))
}

// StatusMessageContainsFold applies the ContainsFold predicate on the "status_message" field.
func StatusMessageContainsFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldStatusMessage, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDIsNil applies the IsNil predicate on the "report_id" field.
func ReportIDIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldReportID))
}

// ReportIDNotNil applies the NotNil predicate on the "report_id" field.
func ReportIDNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldReportID))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldReportID, v))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageContains applies the Contains predicate on the "current_stage" field.
func CurrentStageContains(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContains(FieldCurrentStage, v))
}

// CurrentStageHasPrefix applies the HasPrefix predicate on the "current_stage" field.
func CurrentStageHasPrefix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasPrefix(FieldCurrentStage, v))
}

// CurrentStageHasSuffix applies the HasSuffix predicate on the "current_stage" field.
func CurrentStageHasSuffix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasSuffix(FieldCurrentStage, v))
}

// CurrentStageIsNil applies the IsNil predicate on the "current_stage" field.
func CurrentStageIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldCurrentStage))
}

// CurrentStageNotNil applies the NotNil predicate on the "current_stage" field.
func CurrentStageNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldCurrentStage))
}

// CurrentStageEqualFold applies the EqualFold predicate on the "current_stage" field.
func CurrentStageEqualFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldCurrentStage, v))
}

// CurrentStageContainsFold applies the ContainsFold predicate on the "current_stage" field.
func CurrentStageContainsFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldCurrentStage, v))
}

// CompletedStagesEQ applies the EQ predicate on the "completed_stages" field.
func CompletedStagesEQ(v int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCompletedStages, v))
}

// CompletedStagesNEQ applies the NEQ predicate on the "completed_stages" field.
func CompletedStagesNEQ(v int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldCompletedStages, v))
}

// CompletedStagesIn applies the In predicate on the "completed_stages" field.
func CompletedStagesIn(vs ...int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldCompletedStages, vs...))
}

// CompletedStagesNotIn applies the NotIn predicate on the "completed_stages" field.
func CompletedStagesNotIn(vs ...int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldCompletedStages, vs...))
}

// CompletedStagesGT applies the GT predicate on the "completed_stages" field.
func CompletedStagesGT(v int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldCompletedStages, v))
}

// CompletedStagesGTE applies the GTE predicate on the "completed_stages" field.
func CompletedStagesGTE(v int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldCompletedStages, v))
}

// CompletedStagesLT applies the LT predicate on the "completed_stages" field.
func CompletedStagesLT(v int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldCompletedStages, v))
}

// CompletedStagesLTE applies the LTE predicate on the "completed_stages" field.
func CompletedStagesLTE(v int) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldCompletedStages, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldCompletedAt))
}

// DeadlineAtEQ applies the EQ predicate on the "deadline_at" field.
func DeadlineAtEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldDeadlineAt, v))
}

// DeadlineAtNEQ applies the NEQ predicate on the "deadline_at" field.
func DeadlineAtNEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldDeadlineAt, v))
}

// DeadlineAtIn applies the In predicate on the "deadline_at" field.
func DeadlineAtIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldDeadlineAt, vs...))
}

// DeadlineAtNotIn applies the NotIn predicate on the "deadline_at" field.
func DeadlineAtNotIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldDeadlineAt, vs...))
}

// DeadlineAtGT applies the GT predicate on the "deadline_at" field.
func DeadlineAtGT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldDeadlineAt, v))
}

// DeadlineAtGTE applies the GTE predicate on the "deadline_at" field.
func DeadlineAtGTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldDeadlineAt, v))
}

// DeadlineAtLT applies the LT predicate on the "deadline_at" field.
func DeadlineAtLT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldDeadlineAt, v))
}

// DeadlineAtLTE applies the LTE predicate on the "deadline_at" field.
func DeadlineAtLTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldDeadlineAt, v))
}

// DeadlineAtIsNil applies the IsNil predicate on the "deadline_at" field.
func DeadlineAtIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldDeadlineAt))
}

// DeadlineAtNotNil applies the NotNil predicate on the "deadline_at" field.
func DeadlineAtNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldDeadlineAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.ScanRequest {
	return predicate.ScanRequest(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.CollectorJob) predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidenceCollection applies the HasEdge predicate on the "evidence_collection" edge.
func HasEvidenceCollection() predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, EvidenceCollectionTable, EvidenceCollectionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceCollectionWith applies the HasEdge predicate on the "evidence_collection" edge with a given conditions (other predicates).
func HasEvidenceCollectionWith(preds ...predicate.EvidenceCollection) predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := newEvidenceCollectionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.Evidence) predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStageResults applies the HasEdge predicate on the "stage_results" edge.
func HasStageResults() predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageResultsTable, StageResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageResultsWith applies the HasEdge predicate on the "stage_results" edge with a given conditions (other predicates).
func HasStageResultsWith(preds ...predicate.StageResult) predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := newStageResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.Report) predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.ScanRequest {
	return predicate.ScanRequest(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScanRequest) predicate.ScanRequest {
	return predicate.ScanRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScanRequest) predicate.ScanRequest {
	return predicate.ScanRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScanRequest) predicate.ScanRequest {
	return predicate.ScanRequest(sql.NotPredicates(p))
}
