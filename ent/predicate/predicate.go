// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Citation is the predicate function for citation builders.
type Citation func(*sql.Selector)

// CollectorJob is the predicate function for collectorjob builders.
type CollectorJob func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// EvidenceCollection is the predicate function for evidencecollection builders.
type EvidenceCollection func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// ReportSection is the predicate function for reportsection builders.
type ReportSection func(*sql.Selector)

// ScanRequest is the predicate function for scanrequest builders.
type ScanRequest func(*sql.Selector)

// StageResult is the predicate function for stageresult builders.
type StageResult func(*sql.Selector)
