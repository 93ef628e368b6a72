// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertLogsColumns holds the columns for the "alert_logs" table.
	AlertLogsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "integration_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "failed", "skipped"}},
		{Name: "recipients", Type: field.TypeJSON, Nullable: true},
		{Name: "total_failures", Type: field.TypeInt},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "provider_response", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AlertLogsTable holds the schema information for the "alert_logs" table.
	AlertLogsTable = &schema.Table{
		Name:       "alert_logs",
		Columns:    AlertLogsColumns,
		PrimaryKey: []*schema.Column{AlertLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertlog_org_id_integration_id_window_end",
				Unique:  false,
				Columns: []*schema.Column{AlertLogsColumns[1], AlertLogsColumns[2], AlertLogsColumns[8]},
			},
			{
				Name:    "alertlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertLogsColumns[10]},
			},
		},
	}
	// CircuitStatesColumns holds the columns for the "circuit_states" table.
	CircuitStatesColumns = []*schema.Column{
		{Name: "circuit_id", Type: field.TypeString, Unique: true},
		{Name: "integration_id", Type: field.TypeString, Unique: true},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"closed", "open", "half_open"}, Default: "closed"},
		{Name: "opened_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_probe_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CircuitStatesTable holds the schema information for the "circuit_states" table.
	CircuitStatesTable = &schema.Table{
		Name:       "circuit_states",
		Columns:    CircuitStatesColumns,
		PrimaryKey: []*schema.Column{CircuitStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "circuitstate_state",
				Unique:  false,
				Columns: []*schema.Column{CircuitStatesColumns[3]},
			},
		},
	}
	// DlqEntriesColumns holds the columns for the "dlq_entries" table.
	DlqEntriesColumns = []*schema.Column{
		{Name: "dlq_id", Type: field.TypeString, Unique: true},
		{Name: "trace_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "integration_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"outbound", "inbound", "scheduled"}},
		{Name: "action_index", Type: field.TypeInt, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "error_message", Type: field.TypeString},
		{Name: "error_code", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt, Nullable: true},
		{Name: "max_retries", Type: field.TypeInt},
		{Name: "retry_strategy", Type: field.TypeString, Default: "exponential"},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "retrying", "abandoned", "replayed"}, Default: "queued"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DlqEntriesTable holds the schema information for the "dlq_entries" table.
	DlqEntriesTable = &schema.Table{
		Name:       "dlq_entries",
		Columns:    DlqEntriesColumns,
		PrimaryKey: []*schema.Column{DlqEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dlqentry_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[15], DlqEntriesColumns[13]},
			},
			{
				Name:    "dlqentry_org_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[4], DlqEntriesColumns[15], DlqEntriesColumns[16]},
			},
			{
				Name:    "dlqentry_trace_id",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[1]},
			},
			{
				Name:    "dlqentry_integration_id",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[3]},
			},
		},
	}
	// DeliveryAttemptsColumns holds the columns for the "delivery_attempts" table.
	DeliveryAttemptsColumns = []*schema.Column{
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failed"}},
		{Name: "response_status", Type: field.TypeInt, Nullable: true},
		{Name: "response_time_ms", Type: field.TypeInt64},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_reason", Type: field.TypeString, Nullable: true},
		{Name: "request_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "attempted_at", Type: field.TypeTime},
		{Name: "delivery_log_id", Type: field.TypeString},
	}
	// DeliveryAttemptsTable holds the schema information for the "delivery_attempts" table.
	DeliveryAttemptsTable = &schema.Table{
		Name:       "delivery_attempts",
		Columns:    DeliveryAttemptsColumns,
		PrimaryKey: []*schema.Column{DeliveryAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "delivery_attempts_execution_logs_delivery_attempts",
				Columns:    []*schema.Column{DeliveryAttemptsColumns[9]},
				RefColumns: []*schema.Column{ExecutionLogsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deliveryattempt_delivery_log_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{DeliveryAttemptsColumns[9], DeliveryAttemptsColumns[1]},
			},
			{
				Name:    "deliveryattempt_attempted_at",
				Unique:  false,
				Columns: []*schema.Column{DeliveryAttemptsColumns[8]},
			},
		},
	}
	// EventAuditsColumns holds the columns for the "event_audits" table.
	EventAuditsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "org_unit_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "payload_hash", Type: field.TypeString},
		{Name: "event_key", Type: field.TypeString, Nullable: true},
		{Name: "received_at_bucket", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "processing", "delivered", "skipped", "failed", "stuck"}, Default: "received"},
		{Name: "timeline", Type: field.TypeJSON, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// EventAuditsTable holds the schema information for the "event_audits" table.
	EventAuditsTable = &schema.Table{
		Name:       "event_audits",
		Columns:    EventAuditsColumns,
		PrimaryKey: []*schema.Column{EventAuditsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventaudit_source_source_id",
				Unique:  true,
				Columns: []*schema.Column{EventAuditsColumns[1], EventAuditsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "source_id IS NOT NULL",
				},
			},
			{
				Name:    "eventaudit_org_id_event_key_received_at_bucket",
				Unique:  true,
				Columns: []*schema.Column{EventAuditsColumns[3], EventAuditsColumns[8], EventAuditsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "event_key IS NOT NULL",
				},
			},
			{
				Name:    "eventaudit_org_id_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{EventAuditsColumns[3], EventAuditsColumns[10], EventAuditsColumns[12]},
			},
			{
				Name:    "eventaudit_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{EventAuditsColumns[10], EventAuditsColumns[13]},
			},
			{
				Name:    "eventaudit_expires_at",
				Unique:  false,
				Columns: []*schema.Column{EventAuditsColumns[14]},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "parent_trace_id", Type: field.TypeString, Nullable: true},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"outbound", "inbound", "scheduled"}},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"event", "schedule", "replay", "proxy"}},
		{Name: "integration_id", Type: field.TypeString},
		{Name: "integration_name", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString, Nullable: true},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "action_index", Type: field.TypeInt, Nullable: true},
		{Name: "request", Type: field.TypeJSON, Nullable: true},
		{Name: "steps", Type: field.TypeJSON, Nullable: true},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "success", "failed", "skipped"}, Default: "pending"},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_org_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[6], ExecutionLogsColumns[15], ExecutionLogsColumns[18]},
			},
			{
				Name:    "executionlog_integration_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[4], ExecutionLogsColumns[18]},
			},
			{
				Name:    "executionlog_event_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[7]},
			},
			{
				Name:    "executionlog_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[18]},
			},
		},
	}
	// ProcessedEventsColumns holds the columns for the "processed_events" table.
	ProcessedEventsColumns = []*schema.Column{
		{Name: "processed_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "event_key", Type: field.TypeString},
		{Name: "bucket", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// ProcessedEventsTable holds the schema information for the "processed_events" table.
	ProcessedEventsTable = &schema.Table{
		Name:       "processed_events",
		Columns:    ProcessedEventsColumns,
		PrimaryKey: []*schema.Column{ProcessedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedevent_org_id_event_key_bucket",
				Unique:  true,
				Columns: []*schema.Column{ProcessedEventsColumns[1], ProcessedEventsColumns[2], ProcessedEventsColumns[3]},
			},
			{
				Name:    "processedevent_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedEventsColumns[5]},
			},
		},
	}
	// ScheduledEntriesColumns holds the columns for the "scheduled_entries" table.
	ScheduledEntriesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "integration_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "original_event_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "sent", "failed", "cancelled", "overdue"}, Default: "pending"},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "target_url", Type: field.TypeString},
		{Name: "http_method", Type: field.TypeString, Default: "POST"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "recurring", Type: field.TypeJSON, Nullable: true},
		{Name: "cancellation", Type: field.TypeJSON, Nullable: true},
		{Name: "leased_by", Type: field.TypeString, Nullable: true},
		{Name: "leased_until", Type: field.TypeTime, Nullable: true},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ScheduledEntriesTable holds the schema information for the "scheduled_entries" table.
	ScheduledEntriesTable = &schema.Table{
		Name:       "scheduled_entries",
		Columns:    ScheduledEntriesColumns,
		PrimaryKey: []*schema.Column{ScheduledEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledentry_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{ScheduledEntriesColumns[6], ScheduledEntriesColumns[5]},
			},
			{
				Name:    "scheduledentry_org_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledEntriesColumns[2], ScheduledEntriesColumns[6], ScheduledEntriesColumns[17]},
			},
			{
				Name:    "scheduledentry_integration_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledEntriesColumns[1], ScheduledEntriesColumns[6]},
			},
			{
				Name:    "scheduledentry_original_event_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledEntriesColumns[3]},
			},
		},
	}
	// SourceCheckpointsColumns holds the columns for the "source_checkpoints" table.
	SourceCheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "source_identifier", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "last_processed_id", Type: field.TypeInt64, Default: 0},
		{Name: "last_processed_at", Type: field.TypeTime},
	}
	// SourceCheckpointsTable holds the schema information for the "source_checkpoints" table.
	SourceCheckpointsTable = &schema.Table{
		Name:       "source_checkpoints",
		Columns:    SourceCheckpointsColumns,
		PrimaryKey: []*schema.Column{SourceCheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourcecheckpoint_source_source_identifier_org_id",
				Unique:  true,
				Columns: []*schema.Column{SourceCheckpointsColumns[1], SourceCheckpointsColumns[2], SourceCheckpointsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertLogsTable,
		CircuitStatesTable,
		DlqEntriesTable,
		DeliveryAttemptsTable,
		EventAuditsTable,
		ExecutionLogsTable,
		ProcessedEventsTable,
		ScheduledEntriesTable,
		SourceCheckpointsTable,
	}
)

func init() {
	DeliveryAttemptsTable.ForeignKeys[0].RefTable = ExecutionLogsTable
}
