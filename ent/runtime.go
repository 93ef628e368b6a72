// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/relayforge/relayforge/ent/alertlog"
	"github.com/relayforge/relayforge/ent/circuitstate"
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/ent/scheduledentry"
	"github.com/relayforge/relayforge/ent/schema"
	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertlogFields := schema.AlertLog{}.Fields()
	_ = alertlogFields
	// alertlogDescCreatedAt is the schema descriptor for created_at field.
	alertlogDescCreatedAt := alertlogFields[10].Descriptor()
	// alertlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	alertlog.DefaultCreatedAt = alertlogDescCreatedAt.Default.(func() time.Time)
	circuitstateFields := schema.CircuitState{}.Fields()
	_ = circuitstateFields
	// circuitstateDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	circuitstateDescConsecutiveFailures := circuitstateFields[2].Descriptor()
	// circuitstate.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	circuitstate.DefaultConsecutiveFailures = circuitstateDescConsecutiveFailures.Default.(int)
	// circuitstateDescUpdatedAt is the schema descriptor for updated_at field.
	circuitstateDescUpdatedAt := circuitstateFields[6].Descriptor()
	// circuitstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	circuitstate.DefaultUpdatedAt = circuitstateDescUpdatedAt.Default.(func() time.Time)
	// circuitstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	circuitstate.UpdateDefaultUpdatedAt = circuitstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	dlqentryFields := schema.DLQEntry{}.Fields()
	_ = dlqentryFields
	// dlqentryDescRetryStrategy is the schema descriptor for retry_strategy field.
	dlqentryDescRetryStrategy := dlqentryFields[12].Descriptor()
	// dlqentry.DefaultRetryStrategy holds the default value on creation for the retry_strategy field.
	dlqentry.DefaultRetryStrategy = dlqentryDescRetryStrategy.Default.(string)
	// dlqentryDescAttempts is the schema descriptor for attempts field.
	dlqentryDescAttempts := dlqentryFields[14].Descriptor()
	// dlqentry.DefaultAttempts holds the default value on creation for the attempts field.
	dlqentry.DefaultAttempts = dlqentryDescAttempts.Default.(int)
	// dlqentryDescCreatedAt is the schema descriptor for created_at field.
	dlqentryDescCreatedAt := dlqentryFields[16].Descriptor()
	// dlqentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	dlqentry.DefaultCreatedAt = dlqentryDescCreatedAt.Default.(func() time.Time)
	// dlqentryDescUpdatedAt is the schema descriptor for updated_at field.
	dlqentryDescUpdatedAt := dlqentryFields[17].Descriptor()
	// dlqentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dlqentry.DefaultUpdatedAt = dlqentryDescUpdatedAt.Default.(func() time.Time)
	// dlqentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dlqentry.UpdateDefaultUpdatedAt = dlqentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	deliveryattemptFields := schema.DeliveryAttempt{}.Fields()
	_ = deliveryattemptFields
	// deliveryattemptDescAttemptedAt is the schema descriptor for attempted_at field.
	deliveryattemptDescAttemptedAt := deliveryattemptFields[9].Descriptor()
	// deliveryattempt.DefaultAttemptedAt holds the default value on creation for the attempted_at field.
	deliveryattempt.DefaultAttemptedAt = deliveryattemptDescAttemptedAt.Default.(func() time.Time)
	eventauditFields := schema.EventAudit{}.Fields()
	_ = eventauditFields
	// eventauditDescReceivedAt is the schema descriptor for received_at field.
	eventauditDescReceivedAt := eventauditFields[12].Descriptor()
	// eventaudit.DefaultReceivedAt holds the default value on creation for the received_at field.
	eventaudit.DefaultReceivedAt = eventauditDescReceivedAt.Default.(func() time.Time)
	// eventauditDescUpdatedAt is the schema descriptor for updated_at field.
	eventauditDescUpdatedAt := eventauditFields[13].Descriptor()
	// eventaudit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	eventaudit.DefaultUpdatedAt = eventauditDescUpdatedAt.Default.(func() time.Time)
	// eventaudit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	eventaudit.UpdateDefaultUpdatedAt = eventauditDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescAttempts is the schema descriptor for attempts field.
	executionlogDescAttempts := executionlogFields[17].Descriptor()
	// executionlog.DefaultAttempts holds the default value on creation for the attempts field.
	executionlog.DefaultAttempts = executionlogDescAttempts.Default.(int)
	// executionlogDescStartedAt is the schema descriptor for started_at field.
	executionlogDescStartedAt := executionlogFields[18].Descriptor()
	// executionlog.DefaultStartedAt holds the default value on creation for the started_at field.
	executionlog.DefaultStartedAt = executionlogDescStartedAt.Default.(func() time.Time)
	scheduledentryFields := schema.ScheduledEntry{}.Fields()
	_ = scheduledentryFields
	// scheduledentryDescHTTPMethod is the schema descriptor for http_method field.
	scheduledentryDescHTTPMethod := scheduledentryFields[9].Descriptor()
	// scheduledentry.DefaultHTTPMethod holds the default value on creation for the http_method field.
	scheduledentry.DefaultHTTPMethod = scheduledentryDescHTTPMethod.Default.(string)
	// scheduledentryDescAttemptCount is the schema descriptor for attempt_count field.
	scheduledentryDescAttemptCount := scheduledentryFields[10].Descriptor()
	// scheduledentry.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	scheduledentry.DefaultAttemptCount = scheduledentryDescAttemptCount.Default.(int)
	// scheduledentryDescCreatedAt is the schema descriptor for created_at field.
	scheduledentryDescCreatedAt := scheduledentryFields[17].Descriptor()
	// scheduledentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledentry.DefaultCreatedAt = scheduledentryDescCreatedAt.Default.(func() time.Time)
	// scheduledentryDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledentryDescUpdatedAt := scheduledentryFields[18].Descriptor()
	// scheduledentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledentry.DefaultUpdatedAt = scheduledentryDescUpdatedAt.Default.(func() time.Time)
	// scheduledentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledentry.UpdateDefaultUpdatedAt = scheduledentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourcecheckpointFields := schema.SourceCheckpoint{}.Fields()
	_ = sourcecheckpointFields
	// sourcecheckpointDescLastProcessedID is the schema descriptor for last_processed_id field.
	sourcecheckpointDescLastProcessedID := sourcecheckpointFields[4].Descriptor()
	// sourcecheckpoint.DefaultLastProcessedID holds the default value on creation for the last_processed_id field.
	sourcecheckpoint.DefaultLastProcessedID = sourcecheckpointDescLastProcessedID.Default.(int64)
	// sourcecheckpointDescLastProcessedAt is the schema descriptor for last_processed_at field.
	sourcecheckpointDescLastProcessedAt := sourcecheckpointFields[5].Descriptor()
	// sourcecheckpoint.DefaultLastProcessedAt holds the default value on creation for the last_processed_at field.
	sourcecheckpoint.DefaultLastProcessedAt = sourcecheckpointDescLastProcessedAt.Default.(func() time.Time)
	// sourcecheckpoint.UpdateDefaultLastProcessedAt holds the default value on update for the last_processed_at field.
	sourcecheckpoint.UpdateDefaultLastProcessedAt = sourcecheckpointDescLastProcessedAt.UpdateDefault.(func() time.Time)
}
