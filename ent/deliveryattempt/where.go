// Code generated by ent, DO NOT EDIT.

package deliveryattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldContainsFold(FieldID, id))
}

// DeliveryLogID applies equality check predicate on the "delivery_log_id" field. It's identical to DeliveryLogIDEQ.
func DeliveryLogID(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldDeliveryLogID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// ResponseStatus applies equality check predicate on the "response_status" field. It's identical to ResponseStatusEQ.
func ResponseStatus(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldResponseStatus, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryReason applies equality check predicate on the "retry_reason" field. It's identical to RetryReasonEQ.
func RetryReason(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldRetryReason, v))
}

// AttemptedAt applies equality check predicate on the "attempted_at" field. It's identical to AttemptedAtEQ.
func AttemptedAt(v time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldAttemptedAt, v))
}

// DeliveryLogIDEQ applies the EQ predicate on the "delivery_log_id" field.
func DeliveryLogIDEQ(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldDeliveryLogID, v))
}

// DeliveryLogIDNEQ applies the NEQ predicate on the "delivery_log_id" field.
func DeliveryLogIDNEQ(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldDeliveryLogID, v))
}

// DeliveryLogIDIn applies the In predicate on the "delivery_log_id" field.
func DeliveryLogIDIn(vs ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldDeliveryLogID, vs...))
}

// DeliveryLogIDNotIn applies the NotIn predicate on the "delivery_log_id" field.
func DeliveryLogIDNotIn(vs ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldDeliveryLogID, vs...))
}

// DeliveryLogIDGT applies the GT predicate on the "delivery_log_id" field.
func DeliveryLogIDGT(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldDeliveryLogID, v))
}

// DeliveryLogIDGTE applies the GTE predicate on the "delivery_log_id" field.
func DeliveryLogIDGTE(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldDeliveryLogID, v))
}

// DeliveryLogIDLT applies the LT predicate on the "delivery_log_id" field.
func DeliveryLogIDLT(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldDeliveryLogID, v))
}

// DeliveryLogIDLTE applies the LTE predicate on the "delivery_log_id" field.
func DeliveryLogIDLTE(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldDeliveryLogID, v))
}

// DeliveryLogIDContains applies the Contains predicate on the "delivery_log_id" field.
func DeliveryLogIDContains(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldContains(FieldDeliveryLogID, v))
}

// DeliveryLogIDHasPrefix applies the HasPrefix predicate on the "delivery_log_id" field.
func DeliveryLogIDHasPrefix(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldHasPrefix(FieldDeliveryLogID, v))
}

// DeliveryLogIDHasSuffix applies the HasSuffix predicate on the "delivery_log_id" field.
func DeliveryLogIDHasSuffix(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldHasSuffix(FieldDeliveryLogID, v))
}

// DeliveryLogIDEqualFold applies the EqualFold predicate on the "delivery_log_id" field.
func DeliveryLogIDEqualFold(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEqualFold(FieldDeliveryLogID, v))
}

// DeliveryLogIDContainsFold applies the ContainsFold predicate on the "delivery_log_id" field.
func DeliveryLogIDContainsFold(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldContainsFold(FieldDeliveryLogID, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldAttemptNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldStatus, vs...))
}

// ResponseStatusEQ applies the EQ predicate on the "response_status" field.
func ResponseStatusEQ(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldResponseStatus, v))
}

// ResponseStatusNEQ applies the NEQ predicate on the "response_status" field.
func ResponseStatusNEQ(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldResponseStatus, v))
}

// ResponseStatusIn applies the In predicate on the "response_status" field.
func ResponseStatusIn(vs ...int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldResponseStatus, vs...))
}

// ResponseStatusNotIn applies the NotIn predicate on the "response_status" field.
func ResponseStatusNotIn(vs ...int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldResponseStatus, vs...))
}

// ResponseStatusGT applies the GT predicate on the "response_status" field.
func ResponseStatusGT(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldResponseStatus, v))
}

// ResponseStatusGTE applies the GTE predicate on the "response_status" field.
func ResponseStatusGTE(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldResponseStatus, v))
}

// ResponseStatusLT applies the LT predicate on the "response_status" field.
func ResponseStatusLT(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldResponseStatus, v))
}

// ResponseStatusLTE applies the LTE predicate on the "response_status" field.
func ResponseStatusLTE(v int) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldResponseStatus, v))
}

// ResponseStatusIsNil applies the IsNil predicate on the "response_status" field.
func ResponseStatusIsNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIsNull(FieldResponseStatus))
}

// ResponseStatusNotNil applies the NotNil predicate on the "response_status" field.
func ResponseStatusNotNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotNull(FieldResponseStatus))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int64) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldResponseTimeMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryReasonEQ applies the EQ predicate on the "retry_reason" field.
func RetryReasonEQ(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldRetryReason, v))
}

// RetryReasonNEQ applies the NEQ predicate on the "retry_reason" field.
func RetryReasonNEQ(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldRetryReason, v))
}

// RetryReasonIn applies the In predicate on the "retry_reason" field.
func RetryReasonIn(vs ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldRetryReason, vs...))
}

// RetryReasonNotIn applies the NotIn predicate on the "retry_reason" field.
func RetryReasonNotIn(vs ...string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldRetryReason, vs...))
}

// RetryReasonGT applies the GT predicate on the "retry_reason" field.
func RetryReasonGT(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldRetryReason, v))
}

// RetryReasonGTE applies the GTE predicate on the "retry_reason" field.
func RetryReasonGTE(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldRetryReason, v))
}

// RetryReasonLT applies the LT predicate on the "retry_reason" field.
func RetryReasonLT(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldRetryReason, v))
}

// RetryReasonLTE applies the LTE predicate on the "retry_reason" field.
func RetryReasonLTE(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldRetryReason, v))
}

// RetryReasonContains applies the Contains predicate on the "retry_reason" field.
func RetryReasonContains(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldContains(FieldRetryReason, v))
}

// RetryReasonHasPrefix applies the HasPrefix predicate on the "retry_reason" field.
func RetryReasonHasPrefix(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldHasPrefix(FieldRetryReason, v))
}

// RetryReasonHasSuffix applies the HasSuffix predicate on the "retry_reason" field.
func RetryReasonHasSuffix(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldHasSuffix(FieldRetryReason, v))
}

// RetryReasonIsNil applies the IsNil predicate on the "retry_reason" field.
func RetryReasonIsNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIsNull(FieldRetryReason))
}

// RetryReasonNotNil applies the NotNil predicate on the "retry_reason" field.
func RetryReasonNotNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotNull(FieldRetryReason))
}

// RetryReasonEqualFold applies the EqualFold predicate on the "retry_reason" field.
func RetryReasonEqualFold(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEqualFold(FieldRetryReason, v))
}

// RetryReasonContainsFold applies the ContainsFold predicate on the "retry_reason" field.
func RetryReasonContainsFold(v string) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldContainsFold(FieldRetryReason, v))
}

// RequestPayloadIsNil applies the IsNil predicate on the "request_payload" field.
func RequestPayloadIsNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIsNull(FieldRequestPayload))
}

// RequestPayloadNotNil applies the NotNil predicate on the "request_payload" field.
func RequestPayloadNotNil() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotNull(FieldRequestPayload))
}

// AttemptedAtEQ applies the EQ predicate on the "attempted_at" field.
func AttemptedAtEQ(v time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldEQ(FieldAttemptedAt, v))
}

// AttemptedAtNEQ applies the NEQ predicate on the "attempted_at" field.
func AttemptedAtNEQ(v time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNEQ(FieldAttemptedAt, v))
}

// AttemptedAtIn applies the In predicate on the "attempted_at" field.
func AttemptedAtIn(vs ...time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldIn(FieldAttemptedAt, vs...))
}

// AttemptedAtNotIn applies the NotIn predicate on the "attempted_at" field.
func AttemptedAtNotIn(vs ...time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldNotIn(FieldAttemptedAt, vs...))
}

// AttemptedAtGT applies the GT predicate on the "attempted_at" field.
func AttemptedAtGT(v time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGT(FieldAttemptedAt, v))
}

// AttemptedAtGTE applies the GTE predicate on the "attempted_at" field.
func AttemptedAtGTE(v time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldGTE(FieldAttemptedAt, v))
}

// AttemptedAtLT applies the LT predicate on the "attempted_at" field.
func AttemptedAtLT(v time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLT(FieldAttemptedAt, v))
}

// AttemptedAtLTE applies the LTE predicate on the "attempted_at" field.
func AttemptedAtLTE(v time.Time) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.FieldLTE(FieldAttemptedAt, v))
}

// HasExecutionLog applies the HasEdge predicate on the "execution_log" edge.
func HasExecutionLog() predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionLogTable, ExecutionLogColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionLogWith applies the HasEdge predicate on the "execution_log" edge with a given conditions (other predicates).
func HasExecutionLogWith(preds ...predicate.ExecutionLog) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(func(s *sql.Selector) {
		step := newExecutionLogStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeliveryAttempt) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeliveryAttempt) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeliveryAttempt) predicate.DeliveryAttempt {
	return predicate.DeliveryAttempt(sql.NotPredicates(p))
}
