// Code generated by ent, DO NOT EDIT.

package circuitstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldContainsFold(FieldID, id))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldIntegrationID, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// OpenedAt applies equality check predicate on the "opened_at" field. It's identical to OpenedAtEQ.
func OpenedAt(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldOpenedAt, v))
}

// NextProbeAt applies equality check predicate on the "next_probe_at" field. It's identical to NextProbeAtEQ.
func NextProbeAt(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldNextProbeAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// IntegrationIDGT applies the GT predicate on the "integration_id" field.
func IntegrationIDGT(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGT(FieldIntegrationID, v))
}

// IntegrationIDGTE applies the GTE predicate on the "integration_id" field.
func IntegrationIDGTE(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGTE(FieldIntegrationID, v))
}

// IntegrationIDLT applies the LT predicate on the "integration_id" field.
func IntegrationIDLT(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLT(FieldIntegrationID, v))
}

// IntegrationIDLTE applies the LTE predicate on the "integration_id" field.
func IntegrationIDLTE(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLTE(FieldIntegrationID, v))
}

// IntegrationIDContains applies the Contains predicate on the "integration_id" field.
func IntegrationIDContains(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldContains(FieldIntegrationID, v))
}

// IntegrationIDHasPrefix applies the HasPrefix predicate on the "integration_id" field.
func IntegrationIDHasPrefix(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldHasPrefix(FieldIntegrationID, v))
}

// IntegrationIDHasSuffix applies the HasSuffix predicate on the "integration_id" field.
func IntegrationIDHasSuffix(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldHasSuffix(FieldIntegrationID, v))
}

// IntegrationIDEqualFold applies the EqualFold predicate on the "integration_id" field.
func IntegrationIDEqualFold(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEqualFold(FieldIntegrationID, v))
}

// IntegrationIDContainsFold applies the ContainsFold predicate on the "integration_id" field.
func IntegrationIDContainsFold(v string) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldContainsFold(FieldIntegrationID, v))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotIn(FieldState, vs...))
}

// OpenedAtEQ applies the EQ predicate on the "opened_at" field.
func OpenedAtEQ(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldOpenedAt, v))
}

// OpenedAtNEQ applies the NEQ predicate on the "opened_at" field.
func OpenedAtNEQ(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNEQ(FieldOpenedAt, v))
}

// OpenedAtIn applies the In predicate on the "opened_at" field.
func OpenedAtIn(vs ...time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIn(FieldOpenedAt, vs...))
}

// OpenedAtNotIn applies the NotIn predicate on the "opened_at" field.
func OpenedAtNotIn(vs ...time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotIn(FieldOpenedAt, vs...))
}

// OpenedAtGT applies the GT predicate on the "opened_at" field.
func OpenedAtGT(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGT(FieldOpenedAt, v))
}

// OpenedAtGTE applies the GTE predicate on the "opened_at" field.
func OpenedAtGTE(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGTE(FieldOpenedAt, v))
}

// OpenedAtLT applies the LT predicate on the "opened_at" field.
func OpenedAtLT(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLT(FieldOpenedAt, v))
}

// OpenedAtLTE applies the LTE predicate on the "opened_at" field.
func OpenedAtLTE(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLTE(FieldOpenedAt, v))
}

// OpenedAtIsNil applies the IsNil predicate on the "opened_at" field.
func OpenedAtIsNil() predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIsNull(FieldOpenedAt))
}

// OpenedAtNotNil applies the NotNil predicate on the "opened_at" field.
func OpenedAtNotNil() predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotNull(FieldOpenedAt))
}

// NextProbeAtEQ applies the EQ predicate on the "next_probe_at" field.
func NextProbeAtEQ(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldNextProbeAt, v))
}

// NextProbeAtNEQ applies the NEQ predicate on the "next_probe_at" field.
func NextProbeAtNEQ(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNEQ(FieldNextProbeAt, v))
}

// NextProbeAtIn applies the In predicate on the "next_probe_at" field.
func NextProbeAtIn(vs ...time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIn(FieldNextProbeAt, vs...))
}

// NextProbeAtNotIn applies the NotIn predicate on the "next_probe_at" field.
func NextProbeAtNotIn(vs ...time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotIn(FieldNextProbeAt, vs...))
}

// NextProbeAtGT applies the GT predicate on the "next_probe_at" field.
func NextProbeAtGT(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGT(FieldNextProbeAt, v))
}

// NextProbeAtGTE applies the GTE predicate on the "next_probe_at" field.
func NextProbeAtGTE(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGTE(FieldNextProbeAt, v))
}

// NextProbeAtLT applies the LT predicate on the "next_probe_at" field.
func NextProbeAtLT(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLT(FieldNextProbeAt, v))
}

// NextProbeAtLTE applies the LTE predicate on the "next_probe_at" field.
func NextProbeAtLTE(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLTE(FieldNextProbeAt, v))
}

// NextProbeAtIsNil applies the IsNil predicate on the "next_probe_at" field.
func NextProbeAtIsNil() predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIsNull(FieldNextProbeAt))
}

// NextProbeAtNotNil applies the NotNil predicate on the "next_probe_at" field.
func NextProbeAtNotNil() predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotNull(FieldNextProbeAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CircuitState {
	return predicate.CircuitState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CircuitState) predicate.CircuitState {
	return predicate.CircuitState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CircuitState) predicate.CircuitState {
	return predicate.CircuitState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CircuitState) predicate.CircuitState {
	return predicate.CircuitState(sql.NotPredicates(p))
}
