// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CitationsColumns holds the columns for the "citations" table.
	CitationsColumns = []*schema.Column{
		{Name: "citation_id", Type: field.TypeString, Unique: true},
		{Name: "citation_number", Type: field.TypeInt},
		{Name: "claim", Type: field.TypeString, Size: 2147483647},
		{Name: "quote", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "weak_anchor", Type: field.TypeBool, Default: false},
		{Name: "evidence_id", Type: field.TypeString},
		{Name: "report_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
	}
	// CitationsTable holds the schema information for the "citations" table.
	CitationsTable = &schema.Table{
		Name:       "citations",
		Columns:    CitationsColumns,
		PrimaryKey: []*schema.Column{CitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "citations_evidence_citations",
				Columns:    []*schema.Column{CitationsColumns[7]},
				RefColumns: []*schema.Column{EvidenceColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "citations_reports_citations",
				Columns:    []*schema.Column{CitationsColumns[8]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "citations_report_sections_citations",
				Columns:    []*schema.Column{CitationsColumns[9]},
				RefColumns: []*schema.Column{ReportSectionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "citation_report_id_citation_number",
				Unique:  true,
				Columns: []*schema.Column{CitationsColumns[8], CitationsColumns[1]},
			},
			{
				Name:    "citation_section_id",
				Unique:  false,
				Columns: []*schema.Column{CitationsColumns[9]},
			},
			{
				Name:    "citation_evidence_id",
				Unique:  false,
				Columns: []*schema.Column{CitationsColumns[7]},
			},
		},
	}
	// CollectorJobsColumns holds the columns for the "collector_jobs" table.
	CollectorJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "collector_name", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "succeeded", "failed", "dead_lettered"}, Default: "pending"},
		{Name: "dedup_key", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "visibility_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "scan_id", Type: field.TypeString},
	}
	// CollectorJobsTable holds the schema information for the "collector_jobs" table.
	CollectorJobsTable = &schema.Table{
		Name:       "collector_jobs",
		Columns:    CollectorJobsColumns,
		PrimaryKey: []*schema.Column{CollectorJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "collector_jobs_scan_requests_jobs",
				Columns:    []*schema.Column{CollectorJobsColumns[15]},
				RefColumns: []*schema.Column{ScanRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "collectorjob_queue_status_priority_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{CollectorJobsColumns[1], CollectorJobsColumns[7], CollectorJobsColumns[4], CollectorJobsColumns[9]},
			},
			{
				Name:    "collectorjob_scan_id_status",
				Unique:  false,
				Columns: []*schema.Column{CollectorJobsColumns[15], CollectorJobsColumns[7]},
			},
			{
				Name:    "collectorjob_status_visibility_deadline",
				Unique:  false,
				Columns: []*schema.Column{CollectorJobsColumns[7], CollectorJobsColumns[10]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "scan_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_scan_requests_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{ScanRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_scan_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[2]},
			},
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// EvidenceColumns holds the columns for the "evidence" table.
	EvidenceColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "evidence_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "raw", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeJSON},
		{Name: "merged_sources", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "relevance", Type: field.TypeFloat64},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "tokens", Type: field.TypeInt, Default: 0},
		{Name: "fallback", Type: field.TypeBool, Default: false},
		{Name: "processing_trail", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "collection_id", Type: field.TypeString},
		{Name: "scan_id", Type: field.TypeString},
	}
	// EvidenceTable holds the schema information for the "evidence" table.
	EvidenceTable = &schema.Table{
		Name:       "evidence",
		Columns:    EvidenceColumns,
		PrimaryKey: []*schema.Column{EvidenceColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidence_evidence_collections_items",
				Columns:    []*schema.Column{EvidenceColumns[18]},
				RefColumns: []*schema.Column{EvidenceCollectionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "evidence_scan_requests_evidence",
				Columns:    []*schema.Column{EvidenceColumns[19]},
				RefColumns: []*schema.Column{ScanRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_scan_id_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{EvidenceColumns[19], EvidenceColumns[16]},
			},
			{
				Name:    "evidence_scan_id_category",
				Unique:  false,
				Columns: []*schema.Column{EvidenceColumns[19], EvidenceColumns[1]},
			},
			{
				Name:    "evidence_collection_id",
				Unique:  false,
				Columns: []*schema.Column{EvidenceColumns[18]},
			},
		},
	}
	// EvidenceCollectionsColumns holds the columns for the "evidence_collections" table.
	EvidenceCollectionsColumns = []*schema.Column{
		{Name: "collection_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "closed", "partial"}, Default: "open"},
		{Name: "evidence_count", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "scan_id", Type: field.TypeString, Unique: true},
	}
	// EvidenceCollectionsTable holds the schema information for the "evidence_collections" table.
	EvidenceCollectionsTable = &schema.Table{
		Name:       "evidence_collections",
		Columns:    EvidenceCollectionsColumns,
		PrimaryKey: []*schema.Column{EvidenceCollectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidence_collections_scan_requests_evidence_collection",
				Columns:    []*schema.Column{EvidenceCollectionsColumns[6]},
				RefColumns: []*schema.Column{ScanRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidencecollection_status",
				Unique:  false,
				Columns: []*schema.Column{EvidenceCollectionsColumns[1]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "executive_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "investment_score", Type: field.TypeFloat64},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "evidence_count", Type: field.TypeInt, Default: 0},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "generator", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "scan_id", Type: field.TypeString},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_scan_requests_reports",
				Columns:    []*schema.Column{ReportsColumns[9]},
				RefColumns: []*schema.Column{ScanRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_scan_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[9]},
			},
		},
	}
	// ReportSectionsColumns holds the columns for the "report_sections" table.
	ReportSectionsColumns = []*schema.Column{
		{Name: "section_id", Type: field.TypeString, Unique: true},
		{Name: "pillar_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "key_findings", Type: field.TypeJSON, Nullable: true},
		{Name: "risks", Type: field.TypeJSON, Nullable: true},
		{Name: "opportunities", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "report_id", Type: field.TypeString},
	}
	// ReportSectionsTable holds the schema information for the "report_sections" table.
	ReportSectionsTable = &schema.Table{
		Name:       "report_sections",
		Columns:    ReportSectionsColumns,
		PrimaryKey: []*schema.Column{ReportSectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_sections_reports_sections",
				Columns:    []*schema.Column{ReportSectionsColumns[11]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportsection_report_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{ReportSectionsColumns[11], ReportSectionsColumns[10]},
			},
		},
	}
	// ScanRequestsColumns holds the columns for the "scan_requests" table.
	ScanRequestsColumns = []*schema.Column{
		{Name: "scan_id", Type: field.TypeString, Unique: true},
		{Name: "company_name", Type: field.TypeString},
		{Name: "website", Type: field.TypeString},
		{Name: "investor_profile", Type: field.TypeString, Nullable: true},
		{Name: "analysis_depth", Type: field.TypeEnum, Enums: []string{"shallow", "deep", "exhaustive"}, Default: "deep"},
		{Name: "thesis", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "cancelling", "awaiting_review", "completed_with_errors", "failed"}, Default: "pending"},
		{Name: "status_message", Type: field.TypeString, Nullable: true},
		{Name: "report_id", Type: field.TypeString, Nullable: true},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "completed_stages", Type: field.TypeInt, Default: 0},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deadline_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// ScanRequestsTable holds the schema information for the "scan_requests" table.
	ScanRequestsTable = &schema.Table{
		Name:       "scan_requests",
		Columns:    ScanRequestsColumns,
		PrimaryKey: []*schema.Column{ScanRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scanrequest_status",
				Unique:  false,
				Columns: []*schema.Column{ScanRequestsColumns[6]},
			},
			{
				Name:    "scanrequest_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScanRequestsColumns[6], ScanRequestsColumns[12]},
			},
			{
				Name:    "scanrequest_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{ScanRequestsColumns[6], ScanRequestsColumns[16]},
			},
			{
				Name:    "scanrequest_company_name",
				Unique:  false,
				Columns: []*schema.Column{ScanRequestsColumns[1]},
			},
		},
	}
	// StageResultsColumns holds the columns for the "stage_results" table.
	StageResultsColumns = []*schema.Column{
		{Name: "stage_result_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "partial", "failed", "skipped"}},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "evidence_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "scan_id", Type: field.TypeString},
	}
	// StageResultsTable holds the schema information for the "stage_results" table.
	StageResultsTable = &schema.Table{
		Name:       "stage_results",
		Columns:    StageResultsColumns,
		PrimaryKey: []*schema.Column{StageResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_results_scan_requests_stage_results",
				Columns:    []*schema.Column{StageResultsColumns[9]},
				RefColumns: []*schema.Column{ScanRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageresult_scan_id_stage_index",
				Unique:  true,
				Columns: []*schema.Column{StageResultsColumns[9], StageResultsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CitationsTable,
		CollectorJobsTable,
		EventsTable,
		EvidenceTable,
		EvidenceCollectionsTable,
		ReportsTable,
		ReportSectionsTable,
		ScanRequestsTable,
		StageResultsTable,
	}
)

func init() {
	CitationsTable.ForeignKeys[0].RefTable = EvidenceTable
	CitationsTable.ForeignKeys[1].RefTable = ReportsTable
	CitationsTable.ForeignKeys[2].RefTable = ReportSectionsTable
	CollectorJobsTable.ForeignKeys[0].RefTable = ScanRequestsTable
	EventsTable.ForeignKeys[0].RefTable = ScanRequestsTable
	EvidenceTable.ForeignKeys[0].RefTable = EvidenceCollectionsTable
	EvidenceTable.ForeignKeys[1].RefTable = ScanRequestsTable
	EvidenceTable.Annotation = &entsql.Annotation{
		Table: "evidence",
	}
	EvidenceCollectionsTable.ForeignKeys[0].RefTable = ScanRequestsTable
	ReportsTable.ForeignKeys[0].RefTable = ScanRequestsTable
	ReportSectionsTable.ForeignKeys[0].RefTable = ReportsTable
	StageResultsTable.ForeignKeys[0].RefTable = ScanRequestsTable
}
