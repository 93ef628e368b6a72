// Code generated by ent, DO NOT EDIT.

package dlqentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldID, id))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldTraceID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldMessageID, v))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldIntegrationID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldOrgID, v))
}

// ActionIndex applies equality check predicate on the "action_index" field. It's identical to ActionIndexEQ.
func ActionIndex(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldActionIndex, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorCode, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldStatusCode, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldMaxRetries, v))
}

// RetryStrategy applies equality check predicate on the "retry_strategy" field. It's identical to RetryStrategyEQ.
func RetryStrategy(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldRetryStrategy, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldAttempts, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldTraceID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldMessageID, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// IntegrationIDGT applies the GT predicate on the "integration_id" field.
func IntegrationIDGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldIntegrationID, v))
}

// IntegrationIDGTE applies the GTE predicate on the "integration_id" field.
func IntegrationIDGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldIntegrationID, v))
}

// IntegrationIDLT applies the LT predicate on the "integration_id" field.
func IntegrationIDLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldIntegrationID, v))
}

// IntegrationIDLTE applies the LTE predicate on the "integration_id" field.
func IntegrationIDLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldIntegrationID, v))
}

// IntegrationIDContains applies the Contains predicate on the "integration_id" field.
func IntegrationIDContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldIntegrationID, v))
}

// IntegrationIDHasPrefix applies the HasPrefix predicate on the "integration_id" field.
func IntegrationIDHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldIntegrationID, v))
}

// IntegrationIDHasSuffix applies the HasSuffix predicate on the "integration_id" field.
func IntegrationIDHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldIntegrationID, v))
}

// IntegrationIDEqualFold applies the EqualFold predicate on the "integration_id" field.
func IntegrationIDEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldIntegrationID, v))
}

// IntegrationIDContainsFold applies the ContainsFold predicate on the "integration_id" field.
func IntegrationIDContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldIntegrationID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldOrgID, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldDirection, vs...))
}

// ActionIndexEQ applies the EQ predicate on the "action_index" field.
func ActionIndexEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldActionIndex, v))
}

// ActionIndexNEQ applies the NEQ predicate on the "action_index" field.
func ActionIndexNEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldActionIndex, v))
}

// ActionIndexIn applies the In predicate on the "action_index" field.
func ActionIndexIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldActionIndex, vs...))
}

// ActionIndexNotIn applies the NotIn predicate on the "action_index" field.
func ActionIndexNotIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldActionIndex, vs...))
}

// ActionIndexGT applies the GT predicate on the "action_index" field.
func ActionIndexGT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldActionIndex, v))
}

// ActionIndexGTE applies the GTE predicate on the "action_index" field.
func ActionIndexGTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldActionIndex, v))
}

// ActionIndexLT applies the LT predicate on the "action_index" field.
func ActionIndexLT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldActionIndex, v))
}

// ActionIndexLTE applies the LTE predicate on the "action_index" field.
func ActionIndexLTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldActionIndex, v))
}

// ActionIndexIsNil applies the IsNil predicate on the "action_index" field.
func ActionIndexIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldActionIndex))
}

// ActionIndexNotNil applies the NotNil predicate on the "action_index" field.
func ActionIndexNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldActionIndex))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldErrorCode, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeIsNil applies the IsNil predicate on the "status_code" field.
func StatusCodeIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldStatusCode))
}

// StatusCodeNotNil applies the NotNil predicate on the "status_code" field.
func StatusCodeNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldStatusCode))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldMaxRetries, v))
}

// RetryStrategyEQ applies the EQ predicate on the "retry_strategy" field.
func RetryStrategyEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldRetryStrategy, v))
}

// RetryStrategyNEQ applies the NEQ predicate on the "retry_strategy" field.
func RetryStrategyNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldRetryStrategy, v))
}

// RetryStrategyIn applies the In predicate on the "retry_strategy" field.
func RetryStrategyIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldRetryStrategy, vs...))
}

// RetryStrategyNotIn applies the NotIn predicate on the "retry_strategy" field.
func RetryStrategyNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldRetryStrategy, vs...))
}

// RetryStrategyGT applies the GT predicate on the "retry_strategy" field.
func RetryStrategyGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldRetryStrategy, v))
}

// RetryStrategyGTE applies the GTE predicate on the "retry_strategy" field.
func RetryStrategyGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldRetryStrategy, v))
}

// RetryStrategyLT applies the LT predicate on the "retry_strategy" field.
func RetryStrategyLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldRetryStrategy, v))
}

// RetryStrategyLTE applies the LTE predicate on the "retry_strategy" field.
func RetryStrategyLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldRetryStrategy, v))
}

// RetryStrategyContains applies the Contains predicate on the "retry_strategy" field.
func RetryStrategyContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldRetryStrategy, v))
}

// RetryStrategyHasPrefix applies the HasPrefix predicate on the "retry_strategy" field.
func RetryStrategyHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldRetryStrategy, v))
}

// RetryStrategyHasSuffix applies the HasSuffix predicate on the "retry_strategy" field.
func RetryStrategyHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldRetryStrategy, v))
}

// RetryStrategyEqualFold applies the EqualFold predicate on the "retry_strategy" field.
func RetryStrategyEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldRetryStrategy, v))
}

// RetryStrategyContainsFold applies the ContainsFold predicate on the "retry_strategy" field.
func RetryStrategyContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldRetryStrategy, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldNextAttemptAt, v))
}

// NextAttemptAtIsNil applies the IsNil predicate on the "next_attempt_at" field.
func NextAttemptAtIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldNextAttemptAt))
}

// NextAttemptAtNotNil applies the NotNil predicate on the "next_attempt_at" field.
func NextAttemptAtNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldNextAttemptAt))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldAttempts, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.NotPredicates(p))
}
