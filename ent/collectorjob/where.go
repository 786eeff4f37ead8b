// Code generated by ent, DO NOT EDIT.

package collectorjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/probeworks/diligent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContainsFold(FieldID, id))
}

// ScanID applies equality check predicate on the "scan_id" field. It's identical to ScanIDEQ.
func ScanID(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldScanID, v))
}

// Queue applies equality check predicate on the "queue" field. It's identical to QueueEQ.
func Queue(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldQueue, v))
}

// CollectorName applies equality check predicate on the "collector_name" field. It's identical to CollectorNameEQ.
func CollectorName(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldCollectorName, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldPriority, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldAttempt, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldMaxAttempts, v))
}

// DedupKey applies equality check predicate on the "dedup_key" field. It's identical to DedupKeyEQ.
func DedupKey(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldDedupKey, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldScheduledAt, v))
}

// VisibilityDeadline applies equality check predicate on the "visibility_deadline" field. It's identical to VisibilityDeadlineEQ.
func VisibilityDeadline(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldVisibilityDeadline, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldClaimedBy, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ScanIDEQ applies the EQ predicate on the "scan_id" field.
func ScanIDEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldScanID, v))
}

// ScanIDNEQ applies the NEQ predicate on the "scan_id" field.
func ScanIDNEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldScanID, v))
}

// ScanIDIn applies the In predicate on the "scan_id" field.
func ScanIDIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldScanID, vs...))
}

// ScanIDNotIn applies the NotIn predicate on the "scan_id" field.
func ScanIDNotIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldScanID, vs...))
}

// ScanIDGT applies the GT predicate on the "scan_id" field.
func ScanIDGT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldScanID, v))
}

// ScanIDGTE applies the GTE predicate on the "scan_id" field.
func ScanIDGTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldScanID, v))
}

// ScanIDLT applies the LT predicate on the "scan_id" field.
func ScanIDLT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldScanID, v))
}

// ScanIDLTE applies the LTE predicate on the "scan_id" field.
func ScanIDLTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldScanID, v))
}

// ScanIDContains applies the Contains predicate on the "scan_id" field.
func ScanIDContains(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContains(FieldScanID, v))
}

// ScanIDHasPrefix applies the HasPrefix predicate on the "scan_id" field.
func ScanIDHasPrefix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasPrefix(FieldScanID, v))
}

// ScanIDHasSuffix applies the HasSuffix predicate on the "scan_id" field.
func ScanIDHasSuffix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasSuffix(FieldScanID, v))
}

// ScanIDEqualFold applies the EqualFold predicate on the "scan_id" field.
func ScanIDEqualFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEqualFold(FieldScanID, v))
}

// ScanIDContainsFold applies the ContainsFold predicate on the "scan_id" field.
func ScanIDContainsFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContainsFold(FieldScanID, v))
}

// QueueEQ applies the EQ predicate on the "queue" field.
func QueueEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldQueue, v))
}

// QueueNEQ applies the NEQ predicate on the "queue" field.
func QueueNEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldQueue, v))
}

// QueueIn applies the In predicate on the "queue" field.
func QueueIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldQueue, vs...))
}

// QueueNotIn applies the NotIn predicate on the "queue" field.
func QueueNotIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldQueue, vs...))
}

// QueueGT applies the GT predicate on the "queue" field.
func QueueGT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldQueue, v))
}

// QueueGTE applies the GTE predicate on the "queue" field.
func QueueGTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldQueue, v))
}

// QueueLT applies the LT predicate on the "queue" field.
func QueueLT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldQueue, v))
}

// QueueLTE applies the LTE predicate on the "queue" field.
func QueueLTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldQueue, v))
}

// QueueContains applies the Contains predicate on the "queue" field.
func QueueContains(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContains(FieldQueue, v))
}

// QueueHasPrefix applies the HasPrefix predicate on the "queue" field.
func QueueHasPrefix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasPrefix(FieldQueue, v))
}

// QueueHasSuffix applies the HasSuffix predicate on the "queue" field.
func QueueHasSuffix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasSuffix(FieldQueue, v))
}

// QueueEqualFold applies the EqualFold predicate on the "queue" field.
func QueueEqualFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEqualFold(FieldQueue, v))
}

// QueueContainsFold applies the ContainsFold predicate on the "queue" field.
func QueueContainsFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContainsFold(FieldQueue, v))
}

// CollectorNameEQ applies the EQ predicate on the "collector_name" field.
func CollectorNameEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldCollectorName, v))
}

// CollectorNameNEQ applies the NEQ predicate on the "collector_name" field.
func CollectorNameNEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldCollectorName, v))
}

// CollectorNameIn applies the In predicate on the "collector_name" field.
func CollectorNameIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldCollectorName, vs...))
}

// CollectorNameNotIn applies the NotIn predicate on the "collector_name" field.
func CollectorNameNotIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldCollectorName, vs...))
}

// CollectorNameGT applies the GT predicate on the "collector_name" field.
func CollectorNameGT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldCollectorName, v))
}

// CollectorNameGTE applies the GTE predicate on the "collector_name" field.
func CollectorNameGTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldCollectorName, v))
}

// CollectorNameLT applies the LT predicate on the "collector_name" field.
func CollectorNameLT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldCollectorName, v))
}

// CollectorNameLTE applies the LTE predicate on the "collector_name" field.
func CollectorNameLTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldCollectorName, v))
}

// CollectorNameContains applies the Contains predicate on the "collector_name" field.
func CollectorNameContains(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContains(FieldCollectorName, v))
}

// CollectorNameHasPrefix applies the HasPrefix predicate on the "collector_name" field.
func CollectorNameHasPrefix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasPrefix(FieldCollectorName, v))
}

// CollectorNameHasSuffix applies the HasSuffix predicate on the "collector_name" field.
func CollectorNameHasSuffix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasSuffix(FieldCollectorName, v))
}

// CollectorNameIsNil applies the IsNil predicate on the "collector_name" field.
func CollectorNameIsNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIsNull(FieldCollectorName))
}

// CollectorNameNotNil applies the NotNil predicate on the "collector_name" field.
func CollectorNameNotNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotNull(FieldCollectorName))
}

// CollectorNameEqualFold applies the EqualFold predicate on the "collector_name" field.
func CollectorNameEqualFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEqualFold(FieldCollectorName, v))
}

// CollectorNameContainsFold applies the ContainsFold predicate on the "collector_name" field.
func CollectorNameContainsFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContainsFold(FieldCollectorName, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotNull(FieldPayload))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldPriority, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldAttempt, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldMaxAttempts, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldStatus, vs...))
}

// DedupKeyEQ applies the EQ predicate on the "dedup_key" field.
func DedupKeyEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldDedupKey, v))
}

// DedupKeyNEQ applies the NEQ predicate on the "dedup_key" field.
func DedupKeyNEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldDedupKey, v))
}

// DedupKeyIn applies the In predicate on the "dedup_key" field.
func DedupKeyIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldDedupKey, vs...))
}

// DedupKeyNotIn applies the NotIn predicate on the "dedup_key" field.
func DedupKeyNotIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldDedupKey, vs...))
}

// DedupKeyGT applies the GT predicate on the "dedup_key" field.
func DedupKeyGT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldDedupKey, v))
}

// DedupKeyGTE applies the GTE predicate on the "dedup_key" field.
func DedupKeyGTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldDedupKey, v))
}

// DedupKeyLT applies the LT predicate on the "dedup_key" field.
func DedupKeyLT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldDedupKey, v))
}

// DedupKeyLTE applies the LTE predicate on the "dedup_key" field.
func DedupKeyLTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldDedupKey, v))
}

// DedupKeyContains applies the Contains predicate on the "dedup_key" field.
func DedupKeyContains(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContains(FieldDedupKey, v))
}

// DedupKeyHasPrefix applies the HasPrefix predicate on the "dedup_key" field.
func DedupKeyHasPrefix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasPrefix(FieldDedupKey, v))
}

// DedupKeyHasSuffix applies the HasSuffix predicate on the "dedup_key" field.
func DedupKeyHasSuffix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasSuffix(FieldDedupKey, v))
}

// DedupKeyIsNil applies the IsNil predicate on the "dedup_key" field.
func DedupKeyIsNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIsNull(FieldDedupKey))
}

// DedupKeyNotNil applies the NotNil predicate on the "dedup_key" field.
func DedupKeyNotNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotNull(FieldDedupKey))
}

// DedupKeyEqualFold applies the EqualFold predicate on the "dedup_key" field.
func DedupKeyEqualFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEqualFold(FieldDedupKey, v))
}

// DedupKeyContainsFold applies the ContainsFold predicate on the "dedup_key" field.
func DedupKeyContainsFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContainsFold(FieldDedupKey, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldScheduledAt, v))
}

// VisibilityDeadlineEQ applies the EQ predicate on the "visibility_deadline" field.
func VisibilityDeadlineEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldVisibilityDeadline, v))
}

// VisibilityDeadlineNEQ applies the NEQ predicate on the "visibility_deadline" field.
func VisibilityDeadlineNEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldVisibilityDeadline, v))
}

// VisibilityDeadlineIn applies the In predicate on the "visibility_deadline" field.
func VisibilityDeadlineIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldVisibilityDeadline, vs...))
}

// VisibilityDeadlineNotIn applies the NotIn predicate on the "visibility_deadline" field.
func VisibilityDeadlineNotIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldVisibilityDeadline, vs...))
}

// VisibilityDeadlineGT applies the GT predicate on the "visibility_deadline" field.
func VisibilityDeadlineGT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldVisibilityDeadline, v))
}

// VisibilityDeadlineGTE applies the GTE predicate on the "visibility_deadline" field.
func VisibilityDeadlineGTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldVisibilityDeadline, v))
}

// VisibilityDeadlineLT applies the LT predicate on the "visibility_deadline" field.
func VisibilityDeadlineLT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldVisibilityDeadline, v))
}

// VisibilityDeadlineLTE applies the LTE predicate on the "visibility_deadline" field.
func VisibilityDeadlineLTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldVisibilityDeadline, v))
}

// VisibilityDeadlineIsNil applies the IsNil predicate on the "visibility_deadline" field.
func VisibilityDeadlineIsNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIsNull(FieldVisibilityDeadline))
}

// VisibilityDeadlineNotNil applies the NotNil predicate on the "visibility_deadline" field.
func VisibilityDeadlineNotNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotNull(FieldVisibilityDeadline))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CollectorJob {
	return predicate.CollectorJob(sql.FieldNotNull(FieldCompletedAt))
}

// HasScan applies the HasEdge predicate on the "scan" edge.
func HasScan() predicate.CollectorJob {
	return predicate.CollectorJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScanTable, ScanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScanWith applies the HasEdge predicate on the "scan" edge with a given conditions (other predicates).
func HasScanWith(preds ...predicate.ScanRequest) predicate.CollectorJob {
	return predicate.CollectorJob(func(s *sql.Selector) {
		step := newScanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollectorJob) predicate.CollectorJob {
	return predicate.CollectorJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollectorJob) predicate.CollectorJob {
	return predicate.CollectorJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollectorJob) predicate.CollectorJob {
	return predicate.CollectorJob(sql.NotPredicates(p))
}
