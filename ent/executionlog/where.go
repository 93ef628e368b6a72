// Code generated by ent, DO NOT EDIT.

package executionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldID, id))
}

// ParentTraceID applies equality check predicate on the "parent_trace_id" field. It's identical to ParentTraceIDEQ.
func ParentTraceID(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldParentTraceID, v))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationName applies equality check predicate on the "integration_name" field. It's identical to IntegrationNameEQ.
func IntegrationName(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldIntegrationName, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldOrgID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldEventID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldMessageID, v))
}

// ActionIndex applies equality check predicate on the "action_index" field. It's identical to ActionIndexEQ.
func ActionIndex(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldActionIndex, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldErrorKind, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldSkipReason, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldAttempts, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldFinishedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldDurationMs, v))
}

// ParentTraceIDEQ applies the EQ predicate on the "parent_trace_id" field.
func ParentTraceIDEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldParentTraceID, v))
}

// ParentTraceIDNEQ applies the NEQ predicate on the "parent_trace_id" field.
func ParentTraceIDNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldParentTraceID, v))
}

// ParentTraceIDIn applies the In predicate on the "parent_trace_id" field.
func ParentTraceIDIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldParentTraceID, vs...))
}

// ParentTraceIDNotIn applies the NotIn predicate on the "parent_trace_id" field.
func ParentTraceIDNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldParentTraceID, vs...))
}

// ParentTraceIDGT applies the GT predicate on the "parent_trace_id" field.
func ParentTraceIDGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldParentTraceID, v))
}

// ParentTraceIDGTE applies the GTE predicate on the "parent_trace_id" field.
func ParentTraceIDGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldParentTraceID, v))
}

// ParentTraceIDLT applies the LT predicate on the "parent_trace_id" field.
func ParentTraceIDLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldParentTraceID, v))
}

// ParentTraceIDLTE applies the LTE predicate on the "parent_trace_id" field.
func ParentTraceIDLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldParentTraceID, v))
}

// ParentTraceIDContains applies the Contains predicate on the "parent_trace_id" field.
func ParentTraceIDContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldParentTraceID, v))
}

// ParentTraceIDHasPrefix applies the HasPrefix predicate on the "parent_trace_id" field.
func ParentTraceIDHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldParentTraceID, v))
}

// ParentTraceIDHasSuffix applies the HasSuffix predicate on the "parent_trace_id" field.
func ParentTraceIDHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldParentTraceID, v))
}

// ParentTraceIDIsNil applies the IsNil predicate on the "parent_trace_id" field.
func ParentTraceIDIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldParentTraceID))
}

// ParentTraceIDNotNil applies the NotNil predicate on the "parent_trace_id" field.
func ParentTraceIDNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldParentTraceID))
}

// ParentTraceIDEqualFold applies the EqualFold predicate on the "parent_trace_id" field.
func ParentTraceIDEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldParentTraceID, v))
}

// ParentTraceIDContainsFold applies the ContainsFold predicate on the "parent_trace_id" field.
func ParentTraceIDContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldParentTraceID, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldDirection, vs...))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldTriggerType, vs...))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// IntegrationIDGT applies the GT predicate on the "integration_id" field.
func IntegrationIDGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldIntegrationID, v))
}

// IntegrationIDGTE applies the GTE predicate on the "integration_id" field.
func IntegrationIDGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldIntegrationID, v))
}

// IntegrationIDLT applies the LT predicate on the "integration_id" field.
func IntegrationIDLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldIntegrationID, v))
}

// IntegrationIDLTE applies the LTE predicate on the "integration_id" field.
func IntegrationIDLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldIntegrationID, v))
}

// IntegrationIDContains applies the Contains predicate on the "integration_id" field.
func IntegrationIDContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldIntegrationID, v))
}

// IntegrationIDHasPrefix applies the HasPrefix predicate on the "integration_id" field.
func IntegrationIDHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldIntegrationID, v))
}

// IntegrationIDHasSuffix applies the HasSuffix predicate on the "integration_id" field.
func IntegrationIDHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldIntegrationID, v))
}

// IntegrationIDEqualFold applies the EqualFold predicate on the "integration_id" field.
func IntegrationIDEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldIntegrationID, v))
}

// IntegrationIDContainsFold applies the ContainsFold predicate on the "integration_id" field.
func IntegrationIDContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldIntegrationID, v))
}

// IntegrationNameEQ applies the EQ predicate on the "integration_name" field.
func IntegrationNameEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldIntegrationName, v))
}

// IntegrationNameNEQ applies the NEQ predicate on the "integration_name" field.
func IntegrationNameNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldIntegrationName, v))
}

// IntegrationNameIn applies the In predicate on the "integration_name" field.
func IntegrationNameIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldIntegrationName, vs...))
}

// IntegrationNameNotIn applies the NotIn predicate on the "integration_name" field.
func IntegrationNameNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldIntegrationName, vs...))
}

// IntegrationNameGT applies the GT predicate on the "integration_name" field.
func IntegrationNameGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldIntegrationName, v))
}

// IntegrationNameGTE applies the GTE predicate on the "integration_name" field.
func IntegrationNameGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldIntegrationName, v))
}

// IntegrationNameLT applies the LT predicate on the "integration_name" field.
func IntegrationNameLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldIntegrationName, v))
}

// IntegrationNameLTE applies the LTE predicate on the "integration_name" field.
func IntegrationNameLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldIntegrationName, v))
}

// IntegrationNameContains applies the Contains predicate on the "integration_name" field.
func IntegrationNameContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldIntegrationName, v))
}

// IntegrationNameHasPrefix applies the HasPrefix predicate on the "integration_name" field.
func IntegrationNameHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldIntegrationName, v))
}

// IntegrationNameHasSuffix applies the HasSuffix predicate on the "integration_name" field.
func IntegrationNameHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldIntegrationName, v))
}

// IntegrationNameEqualFold applies the EqualFold predicate on the "integration_name" field.
func IntegrationNameEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldIntegrationName, v))
}

// IntegrationNameContainsFold applies the ContainsFold predicate on the "integration_name" field.
func IntegrationNameContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldIntegrationName, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldOrgID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDIsNil applies the IsNil predicate on the "event_id" field.
func EventIDIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldEventID))
}

// EventIDNotNil applies the NotNil predicate on the "event_id" field.
func EventIDNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldEventID))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldEventID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldMessageID, v))
}

// ActionIndexEQ applies the EQ predicate on the "action_index" field.
func ActionIndexEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldActionIndex, v))
}

// ActionIndexNEQ applies the NEQ predicate on the "action_index" field.
func ActionIndexNEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldActionIndex, v))
}

// ActionIndexIn applies the In predicate on the "action_index" field.
func ActionIndexIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldActionIndex, vs...))
}

// ActionIndexNotIn applies the NotIn predicate on the "action_index" field.
func ActionIndexNotIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldActionIndex, vs...))
}

// ActionIndexGT applies the GT predicate on the "action_index" field.
func ActionIndexGT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldActionIndex, v))
}

// ActionIndexGTE applies the GTE predicate on the "action_index" field.
func ActionIndexGTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldActionIndex, v))
}

// ActionIndexLT applies the LT predicate on the "action_index" field.
func ActionIndexLT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldActionIndex, v))
}

// ActionIndexLTE applies the LTE predicate on the "action_index" field.
func ActionIndexLTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldActionIndex, v))
}

// ActionIndexIsNil applies the IsNil predicate on the "action_index" field.
func ActionIndexIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldActionIndex))
}

// ActionIndexNotNil applies the NotNil predicate on the "action_index" field.
func ActionIndexNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldActionIndex))
}

// RequestIsNil applies the IsNil predicate on the "request" field.
func RequestIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldRequest))
}

// RequestNotNil applies the NotNil predicate on the "request" field.
func RequestNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldRequest))
}

// StepsIsNil applies the IsNil predicate on the "steps" field.
func StepsIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldSteps))
}

// StepsNotNil applies the NotNil predicate on the "steps" field.
func StepsNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldSteps))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldResponse))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldErrorKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldStatus, vs...))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldSkipReason, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldAttempts, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldFinishedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldDurationMs))
}

// HasDeliveryAttempts applies the HasEdge predicate on the "delivery_attempts" edge.
func HasDeliveryAttempts() predicate.ExecutionLog {
	return predicate.ExecutionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeliveryAttemptsTable, DeliveryAttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliveryAttemptsWith applies the HasEdge predicate on the "delivery_attempts" edge with a given conditions (other predicates).
func HasDeliveryAttemptsWith(preds ...predicate.DeliveryAttempt) predicate.ExecutionLog {
	return predicate.ExecutionLog(func(s *sql.Selector) {
		step := newDeliveryAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionLog) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionLog) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionLog) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.NotPredicates(p))
}
