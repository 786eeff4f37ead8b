// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/event"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/schema"
	"github.com/probeworks/diligent/ent/stageresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	citationFields := schema.Citation{}.Fields()
	_ = citationFields
	// citationDescConfidence is the schema descriptor for confidence field.
	citationDescConfidence := citationFields[8].Descriptor()
	// citation.DefaultConfidence holds the default value on creation for the confidence field.
	citation.DefaultConfidence = citationDescConfidence.Default.(float64)
	// citationDescWeakAnchor is the schema descriptor for weak_anchor field.
	citationDescWeakAnchor := citationFields[9].Descriptor()
	// citation.DefaultWeakAnchor holds the default value on creation for the weak_anchor field.
	citation.DefaultWeakAnchor = citationDescWeakAnchor.Default.(bool)
	collectorjobFields := schema.CollectorJob{}.Fields()
	_ = collectorjobFields
	// collectorjobDescPriority is the schema descriptor for priority field.
	collectorjobDescPriority := collectorjobFields[5].Descriptor()
	// collectorjob.DefaultPriority holds the default value on creation for the priority field.
	collectorjob.DefaultPriority = collectorjobDescPriority.Default.(int)
	// collectorjobDescAttempt is the schema descriptor for attempt field.
	collectorjobDescAttempt := collectorjobFields[6].Descriptor()
	// collectorjob.DefaultAttempt holds the default value on creation for the attempt field.
	collectorjob.DefaultAttempt = collectorjobDescAttempt.Default.(int)
	// collectorjobDescMaxAttempts is the schema descriptor for max_attempts field.
	collectorjobDescMaxAttempts := collectorjobFields[7].Descriptor()
	// collectorjob.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	collectorjob.DefaultMaxAttempts = collectorjobDescMaxAttempts.Default.(int)
	// collectorjobDescScheduledAt is the schema descriptor for scheduled_at field.
	collectorjobDescScheduledAt := collectorjobFields[10].Descriptor()
	// collectorjob.DefaultScheduledAt holds the default value on creation for the scheduled_at field.
	collectorjob.DefaultScheduledAt = collectorjobDescScheduledAt.Default.(func() time.Time)
	// collectorjobDescCreatedAt is the schema descriptor for created_at field.
	collectorjobDescCreatedAt := collectorjobFields[14].Descriptor()
	// collectorjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	collectorjob.DefaultCreatedAt = collectorjobDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescTokens is the schema descriptor for tokens field.
	evidenceDescTokens := evidenceFields[13].Descriptor()
	// evidence.DefaultTokens holds the default value on creation for the tokens field.
	evidence.DefaultTokens = evidenceDescTokens.Default.(int)
	// evidenceDescFallback is the schema descriptor for fallback field.
	evidenceDescFallback := evidenceFields[14].Descriptor()
	// evidence.DefaultFallback holds the default value on creation for the fallback field.
	evidence.DefaultFallback = evidenceDescFallback.Default.(bool)
	// evidenceDescCreatedAt is the schema descriptor for created_at field.
	evidenceDescCreatedAt := evidenceFields[19].Descriptor()
	// evidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidence.DefaultCreatedAt = evidenceDescCreatedAt.Default.(func() time.Time)
	evidencecollectionFields := schema.EvidenceCollection{}.Fields()
	_ = evidencecollectionFields
	// evidencecollectionDescEvidenceCount is the schema descriptor for evidence_count field.
	evidencecollectionDescEvidenceCount := evidencecollectionFields[3].Descriptor()
	// evidencecollection.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	evidencecollection.DefaultEvidenceCount = evidencecollectionDescEvidenceCount.Default.(int)
	// evidencecollectionDescCreatedAt is the schema descriptor for created_at field.
	evidencecollectionDescCreatedAt := evidencecollectionFields[5].Descriptor()
	// evidencecollection.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidencecollection.DefaultCreatedAt = evidencecollectionDescCreatedAt.Default.(func() time.Time)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescQualityScore is the schema descriptor for quality_score field.
	reportDescQualityScore := reportFields[5].Descriptor()
	// report.DefaultQualityScore holds the default value on creation for the quality_score field.
	report.DefaultQualityScore = reportDescQualityScore.Default.(float64)
	// reportDescEvidenceCount is the schema descriptor for evidence_count field.
	reportDescEvidenceCount := reportFields[6].Descriptor()
	// report.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	report.DefaultEvidenceCount = reportDescEvidenceCount.Default.(int)
	// reportDescDegraded is the schema descriptor for degraded field.
	reportDescDegraded := reportFields[7].Descriptor()
	// report.DefaultDegraded holds the default value on creation for the degraded field.
	report.DefaultDegraded = reportDescDegraded.Default.(bool)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[9].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	reportsectionFields := schema.ReportSection{}.Fields()
	_ = reportsectionFields
	// reportsectionDescDegraded is the schema descriptor for degraded field.
	reportsectionDescDegraded := reportsectionFields[10].Descriptor()
	// reportsection.DefaultDegraded holds the default value on creation for the degraded field.
	reportsection.DefaultDegraded = reportsectionDescDegraded.Default.(bool)
	scanrequestFields := schema.ScanRequest{}.Fields()
	_ = scanrequestFields
	// scanrequestDescCompletedStages is the schema descriptor for completed_stages field.
	scanrequestDescCompletedStages := scanrequestFields[10].Descriptor()
	// scanrequest.DefaultCompletedStages holds the default value on creation for the completed_stages field.
	scanrequest.DefaultCompletedStages = scanrequestDescCompletedStages.Default.(int)
	// scanrequestDescCreatedAt is the schema descriptor for created_at field.
	scanrequestDescCreatedAt := scanrequestFields[12].Descriptor()
	// scanrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	scanrequest.DefaultCreatedAt = scanrequestDescCreatedAt.Default.(func() time.Time)
	stageresultFields := schema.StageResult{}.Fields()
	_ = stageresultFields
	// stageresultDescRetries is the schema descriptor for retries field.
	stageresultDescRetries := stageresultFields[5].Descriptor()
	// stageresult.DefaultRetries holds the default value on creation for the retries field.
	stageresult.DefaultRetries = stageresultDescRetries.Default.(int)
	// stageresultDescDurationMs is the schema descriptor for duration_ms field.
	stageresultDescDurationMs := stageresultFields[6].Descriptor()
	// stageresult.DefaultDurationMs holds the default value on creation for the duration_ms field.
	stageresult.DefaultDurationMs = stageresultDescDurationMs.Default.(int)
	// stageresultDescEvidenceCount is the schema descriptor for evidence_count field.
	stageresultDescEvidenceCount := stageresultFields[7].Descriptor()
	// stageresult.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	stageresult.DefaultEvidenceCount = stageresultDescEvidenceCount.Default.(int)
	// stageresultDescCreatedAt is the schema descriptor for created_at field.
	stageresultDescCreatedAt := stageresultFields[9].Descriptor()
	// stageresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageresult.DefaultCreatedAt = stageresultDescCreatedAt.Default.(func() time.Time)
}
