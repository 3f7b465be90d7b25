// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalytesColumns holds the columns for the "analytes" table.
	AnalytesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "canonical_unit", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnalytesTable holds the schema information for the "analytes" table.
	AnalytesTable = &schema.Table{
		Name:       "analytes",
		Columns:    AnalytesColumns,
		PrimaryKey: []*schema.Column{AnalytesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analyte_code",
				Unique:  false,
				Columns: []*schema.Column{AnalytesColumns[1]},
			},
		},
	}
	// AnalyteAliasColumns holds the columns for the "analyte_alias" table.
	AnalyteAliasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "alias", Type: field.TypeString},
		{Name: "display", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "und"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "source", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analyte_id", Type: field.TypeString},
	}
	// AnalyteAliasTable holds the schema information for the "analyte_alias" table.
	AnalyteAliasTable = &schema.Table{
		Name:       "analyte_alias",
		Columns:    AnalyteAliasColumns,
		PrimaryKey: []*schema.Column{AnalyteAliasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyte_alias_analytes_aliases",
				Columns:    []*schema.Column{AnalyteAliasColumns[7]},
				RefColumns: []*schema.Column{AnalytesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analytealias_analyte_id_alias",
				Unique:  true,
				Columns: []*schema.Column{AnalyteAliasColumns[7], AnalyteAliasColumns[1]},
			},
			{
				Name:    "analytealias_alias",
				Unique:  false,
				Columns: []*schema.Column{AnalyteAliasColumns[1]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "selected_patient_id", Type: field.TypeString, Nullable: true},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "transcript", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1]},
			},
		},
	}
	// GmailReportProvenanceColumns holds the columns for the "gmail_report_provenance" table.
	GmailReportProvenanceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "report_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "message_id", Type: field.TypeString},
		{Name: "attachment_id", Type: field.TypeString},
		{Name: "sender_email", Type: field.TypeString},
		{Name: "sender_name", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "email_date", Type: field.TypeTime, Nullable: true},
		{Name: "attachment_sha256", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GmailReportProvenanceTable holds the schema information for the "gmail_report_provenance" table.
	GmailReportProvenanceTable = &schema.Table{
		Name:       "gmail_report_provenance",
		Columns:    GmailReportProvenanceColumns,
		PrimaryKey: []*schema.Column{GmailReportProvenanceColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gmailprovenance_message_id_attachment_id",
				Unique:  true,
				Columns: []*schema.Column{GmailReportProvenanceColumns[3], GmailReportProvenanceColumns[4]},
			},
			{
				Name:    "gmailprovenance_attachment_sha256",
				Unique:  false,
				Columns: []*schema.Column{GmailReportProvenanceColumns[9]},
			},
			{
				Name:    "gmailprovenance_report_id",
				Unique:  false,
				Columns: []*schema.Column{GmailReportProvenanceColumns[1]},
			},
		},
	}
	// IdentitiesColumns holds the columns for the "identities" table.
	IdentitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// IdentitiesTable holds the schema information for the "identities" table.
	IdentitiesTable = &schema.Table{
		Name:       "identities",
		Columns:    IdentitiesColumns,
		PrimaryKey: []*schema.Column{IdentitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "identities_users_identities",
				Columns:    []*schema.Column{IdentitiesColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "identity_provider_subject",
				Unique:  true,
				Columns: []*schema.Column{IdentitiesColumns[1], IdentitiesColumns[2]},
			},
			{
				Name:    "identity_user_id",
				Unique:  false,
				Columns: []*schema.Column{IdentitiesColumns[4]},
			},
		},
	}
	// LabResultsColumns holds the columns for the "lab_results" table.
	LabResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "parameter_name", Type: field.TypeString},
		{Name: "result_text", Type: field.TypeString},
		{Name: "numeric_result", Type: field.TypeFloat64, Nullable: true},
		{Name: "unit_raw", Type: field.TypeString},
		{Name: "unit_canonical", Type: field.TypeString, Nullable: true},
		{Name: "ref_lower", Type: field.TypeFloat64, Nullable: true},
		{Name: "ref_lower_operator", Type: field.TypeString, Nullable: true},
		{Name: "ref_upper", Type: field.TypeFloat64, Nullable: true},
		{Name: "ref_upper_operator", Type: field.TypeString, Nullable: true},
		{Name: "ref_text", Type: field.TypeString, Nullable: true},
		{Name: "ref_full_text", Type: field.TypeString, Nullable: true},
		{Name: "out_of_range", Type: field.TypeBool, Default: false},
		{Name: "specimen_type", Type: field.TypeString, Nullable: true},
		{Name: "mapping_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "mapping_source", Type: field.TypeString, Nullable: true},
		{Name: "mapped_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analyte_id", Type: field.TypeString, Nullable: true},
		{Name: "report_id", Type: field.TypeString},
	}
	// LabResultsTable holds the schema information for the "lab_results" table.
	LabResultsTable = &schema.Table{
		Name:       "lab_results",
		Columns:    LabResultsColumns,
		PrimaryKey: []*schema.Column{LabResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lab_results_analytes_results",
				Columns:    []*schema.Column{LabResultsColumns[20]},
				RefColumns: []*schema.Column{AnalytesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "lab_results_patient_reports_results",
				Columns:    []*schema.Column{LabResultsColumns[21]},
				RefColumns: []*schema.Column{PatientReportsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "labresult_report_id_position",
				Unique:  true,
				Columns: []*schema.Column{LabResultsColumns[21], LabResultsColumns[2]},
			},
			{
				Name:    "labresult_user_id",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[1]},
			},
			{
				Name:    "labresult_analyte_id",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[20]},
			},
			{
				Name:    "labresult_parameter_name",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[3]},
			},
		},
	}
	// MatchReviewsColumns holds the columns for the "match_reviews" table.
	MatchReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "candidates", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "fuzzy"},
		{Name: "pending_code", Type: field.TypeString, Nullable: true},
		{Name: "llm_comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "resolved", "skipped"}, Default: "pending"},
		{Name: "resolved_via", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// MatchReviewsTable holds the schema information for the "match_reviews" table.
	MatchReviewsTable = &schema.Table{
		Name:       "match_reviews",
		Columns:    MatchReviewsColumns,
		PrimaryKey: []*schema.Column{MatchReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "matchreview_status",
				Unique:  false,
				Columns: []*schema.Column{MatchReviewsColumns[6]},
			},
			{
				Name:    "matchreview_pending_code",
				Unique:  false,
				Columns: []*schema.Column{MatchReviewsColumns[4]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "name_normalized", Type: field.TypeString},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "last_report_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patients",
				Columns:    []*schema.Column{PatientsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[8]},
			},
			{
				Name:    "patient_name_normalized",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[2]},
			},
		},
	}
	// PatientReportsColumns holds the columns for the "patient_reports" table.
	PatientReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "source_filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "checksum", Type: field.TypeString},
		{Name: "parser_version", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "processed", "failed"}, Default: "received"},
		{Name: "recognized_at", Type: field.TypeTime, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "test_date", Type: field.TypeTime, Nullable: true},
		{Name: "patient_name", Type: field.TypeString, Nullable: true},
		{Name: "patient_gender", Type: field.TypeString, Nullable: true},
		{Name: "patient_dob", Type: field.TypeTime, Nullable: true},
		{Name: "patient_age", Type: field.TypeInt, Nullable: true},
		{Name: "raw_model_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "missing_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeString},
	}
	// PatientReportsTable holds the schema information for the "patient_reports" table.
	PatientReportsTable = &schema.Table{
		Name:       "patient_reports",
		Columns:    PatientReportsColumns,
		PrimaryKey: []*schema.Column{PatientReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_reports_patients_reports",
				Columns:    []*schema.Column{PatientReportsColumns[18]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientreport_patient_id_checksum",
				Unique:  true,
				Columns: []*schema.Column{PatientReportsColumns[18], PatientReportsColumns[4]},
			},
			{
				Name:    "patientreport_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientReportsColumns[1]},
			},
			{
				Name:    "patientreport_status",
				Unique:  false,
				Columns: []*schema.Column{PatientReportsColumns[6]},
			},
		},
	}
	// PendingAnalytesColumns holds the columns for the "pending_analytes" table.
	PendingAnalytesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "proposed_code", Type: field.TypeString, Unique: true},
		{Name: "proposed_name", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "parameter_variations", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "discarded"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PendingAnalytesTable holds the schema information for the "pending_analytes" table.
	PendingAnalytesTable = &schema.Table{
		Name:       "pending_analytes",
		Columns:    PendingAnalytesColumns,
		PrimaryKey: []*schema.Column{PendingAnalytesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendinganalyte_status",
				Unique:  false,
				Columns: []*schema.Column{PendingAnalytesColumns[8]},
			},
		},
	}
	// SQLGenerationLogsColumns holds the columns for the "sql_generation_logs" table.
	SQLGenerationLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString},
		{Name: "user_hash", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "generated_sql", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sql_hash", Type: field.TypeString, Nullable: true},
		{Name: "iterations", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SQLGenerationLogsTable holds the schema information for the "sql_generation_logs" table.
	SQLGenerationLogsTable = &schema.Table{
		Name:       "sql_generation_logs",
		Columns:    SQLGenerationLogsColumns,
		PrimaryKey: []*schema.Column{SQLGenerationLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sqlgenerationlog_status",
				Unique:  false,
				Columns: []*schema.Column{SQLGenerationLogsColumns[1]},
			},
			{
				Name:    "sqlgenerationlog_session_id",
				Unique:  false,
				Columns: []*schema.Column{SQLGenerationLogsColumns[9]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
			{
				Name:    "session_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
		},
	}
	// UnitAliasColumns holds the columns for the "unit_alias" table.
	UnitAliasColumns = []*schema.Column{
		{Name: "alias", Type: field.TypeString, Unique: true},
		{Name: "canonical", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: "seed"},
		{Name: "learn_count", Type: field.TypeInt, Default: 1},
		{Name: "last_used_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UnitAliasTable holds the schema information for the "unit_alias" table.
	UnitAliasTable = &schema.Table{
		Name:       "unit_alias",
		Columns:    UnitAliasColumns,
		PrimaryKey: []*schema.Column{UnitAliasColumns[0]},
	}
	// UnitReviewsColumns holds the columns for the "unit_reviews" table.
	UnitReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "raw_unit", Type: field.TypeString},
		{Name: "normalized_input", Type: field.TypeString},
		{Name: "llm_suggestion", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeString, Nullable: true},
		{Name: "issue_type", Type: field.TypeString},
		{Name: "issue_details", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "resolved", "dismissed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UnitReviewsTable holds the schema information for the "unit_reviews" table.
	UnitReviewsTable = &schema.Table{
		Name:       "unit_reviews",
		Columns:    UnitReviewsColumns,
		PrimaryKey: []*schema.Column{UnitReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unitreview_status",
				Unique:  false,
				Columns: []*schema.Column{UnitReviewsColumns[8]},
			},
			{
				Name:    "unitreview_raw_unit",
				Unique:  false,
				Columns: []*schema.Column{UnitReviewsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalytesTable,
		AnalyteAliasTable,
		ChatSessionsTable,
		GmailReportProvenanceTable,
		IdentitiesTable,
		LabResultsTable,
		MatchReviewsTable,
		PatientsTable,
		PatientReportsTable,
		PendingAnalytesTable,
		SQLGenerationLogsTable,
		SessionsTable,
		UnitAliasTable,
		UnitReviewsTable,
		UsersTable,
	}
)

func init() {
	AnalyteAliasTable.ForeignKeys[0].RefTable = AnalytesTable
	GmailReportProvenanceTable.Annotation = &entsql.Annotation{
		Table: "gmail_report_provenance",
	}
	IdentitiesTable.ForeignKeys[0].RefTable = UsersTable
	LabResultsTable.ForeignKeys[0].RefTable = AnalytesTable
	LabResultsTable.ForeignKeys[1].RefTable = PatientReportsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PatientReportsTable.ForeignKeys[0].RefTable = PatientsTable
	SQLGenerationLogsTable.Annotation = &entsql.Annotation{
		Table: "sql_generation_logs",
	}
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
}
