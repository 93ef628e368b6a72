// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AlertLog is the predicate function for alertlog builders.
type AlertLog func(*sql.Selector)

// CircuitState is the predicate function for circuitstate builders.
type CircuitState func(*sql.Selector)

// DLQEntry is the predicate function for dlqentry builders.
type DLQEntry func(*sql.Selector)

// DeliveryAttempt is the predicate function for deliveryattempt builders.
type DeliveryAttempt func(*sql.Selector)

// EventAudit is the predicate function for eventaudit builders.
type EventAudit func(*sql.Selector)

// ExecutionLog is the predicate function for executionlog builders.
type ExecutionLog func(*sql.Selector)

// ProcessedEvent is the predicate function for processedevent builders.
type ProcessedEvent func(*sql.Selector)

// ScheduledEntry is the predicate function for scheduledentry builders.
type ScheduledEntry func(*sql.Selector)

// SourceCheckpoint is the predicate function for sourcecheckpoint builders.
type SourceCheckpoint func(*sql.Selector)
