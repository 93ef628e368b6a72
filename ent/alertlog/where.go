// Code generated by ent, DO NOT EDIT.

package alertlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldOrgID, v))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldIntegrationID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldChannel, v))
}

// TotalFailures applies equality check predicate on the "total_failures" field. It's identical to TotalFailuresEQ.
func TotalFailures(v int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldTotalFailures, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldWindowEnd, v))
}

// ProviderResponse applies equality check predicate on the "provider_response" field. It's identical to ProviderResponseEQ.
func ProviderResponse(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldProviderResponse, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldCreatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldOrgID, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// IntegrationIDGT applies the GT predicate on the "integration_id" field.
func IntegrationIDGT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldIntegrationID, v))
}

// IntegrationIDGTE applies the GTE predicate on the "integration_id" field.
func IntegrationIDGTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldIntegrationID, v))
}

// IntegrationIDLT applies the LT predicate on the "integration_id" field.
func IntegrationIDLT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldIntegrationID, v))
}

// IntegrationIDLTE applies the LTE predicate on the "integration_id" field.
func IntegrationIDLTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldIntegrationID, v))
}

// IntegrationIDContains applies the Contains predicate on the "integration_id" field.
func IntegrationIDContains(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContains(FieldIntegrationID, v))
}

// IntegrationIDHasPrefix applies the HasPrefix predicate on the "integration_id" field.
func IntegrationIDHasPrefix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasPrefix(FieldIntegrationID, v))
}

// IntegrationIDHasSuffix applies the HasSuffix predicate on the "integration_id" field.
func IntegrationIDHasSuffix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasSuffix(FieldIntegrationID, v))
}

// IntegrationIDEqualFold applies the EqualFold predicate on the "integration_id" field.
func IntegrationIDEqualFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldIntegrationID, v))
}

// IntegrationIDContainsFold applies the ContainsFold predicate on the "integration_id" field.
func IntegrationIDContainsFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldIntegrationID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldChannel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldStatus, vs...))
}

// RecipientsIsNil applies the IsNil predicate on the "recipients" field.
func RecipientsIsNil() predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIsNull(FieldRecipients))
}

// RecipientsNotNil applies the NotNil predicate on the "recipients" field.
func RecipientsNotNil() predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotNull(FieldRecipients))
}

// TotalFailuresEQ applies the EQ predicate on the "total_failures" field.
func TotalFailuresEQ(v int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldTotalFailures, v))
}

// TotalFailuresNEQ applies the NEQ predicate on the "total_failures" field.
func TotalFailuresNEQ(v int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldTotalFailures, v))
}

// TotalFailuresIn applies the In predicate on the "total_failures" field.
func TotalFailuresIn(vs ...int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldTotalFailures, vs...))
}

// TotalFailuresNotIn applies the NotIn predicate on the "total_failures" field.
func TotalFailuresNotIn(vs ...int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldTotalFailures, vs...))
}

// TotalFailuresGT applies the GT predicate on the "total_failures" field.
func TotalFailuresGT(v int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldTotalFailures, v))
}

// TotalFailuresGTE applies the GTE predicate on the "total_failures" field.
func TotalFailuresGTE(v int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldTotalFailures, v))
}

// TotalFailuresLT applies the LT predicate on the "total_failures" field.
func TotalFailuresLT(v int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldTotalFailures, v))
}

// TotalFailuresLTE applies the LTE predicate on the "total_failures" field.
func TotalFailuresLTE(v int) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldTotalFailures, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldWindowEnd, v))
}

// ProviderResponseEQ applies the EQ predicate on the "provider_response" field.
func ProviderResponseEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldProviderResponse, v))
}

// ProviderResponseNEQ applies the NEQ predicate on the "provider_response" field.
func ProviderResponseNEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldProviderResponse, v))
}

// ProviderResponseIn applies the In predicate on the "provider_response" field.
func ProviderResponseIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldProviderResponse, vs...))
}

// ProviderResponseNotIn applies the NotIn predicate on the "provider_response" field.
func ProviderResponseNotIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldProviderResponse, vs...))
}

// ProviderResponseGT applies the GT predicate on the "provider_response" field.
func ProviderResponseGT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldProviderResponse, v))
}

// ProviderResponseGTE applies the GTE predicate on the "provider_response" field.
func ProviderResponseGTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldProviderResponse, v))
}

// ProviderResponseLT applies the LT predicate on the "provider_response" field.
func ProviderResponseLT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldProviderResponse, v))
}

// ProviderResponseLTE applies the LTE predicate on the "provider_response" field.
func ProviderResponseLTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldProviderResponse, v))
}

// ProviderResponseContains applies the Contains predicate on the "provider_response" field.
func ProviderResponseContains(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContains(FieldProviderResponse, v))
}

// ProviderResponseHasPrefix applies the HasPrefix predicate on the "provider_response" field.
func ProviderResponseHasPrefix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasPrefix(FieldProviderResponse, v))
}

// ProviderResponseHasSuffix applies the HasSuffix predicate on the "provider_response" field.
func ProviderResponseHasSuffix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasSuffix(FieldProviderResponse, v))
}

// ProviderResponseIsNil applies the IsNil predicate on the "provider_response" field.
func ProviderResponseIsNil() predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIsNull(FieldProviderResponse))
}

// ProviderResponseNotNil applies the NotNil predicate on the "provider_response" field.
func ProviderResponseNotNil() predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotNull(FieldProviderResponse))
}

// ProviderResponseEqualFold applies the EqualFold predicate on the "provider_response" field.
func ProviderResponseEqualFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldProviderResponse, v))
}

// ProviderResponseContainsFold applies the ContainsFold predicate on the "provider_response" field.
func ProviderResponseContainsFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldProviderResponse, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertLog) predicate.AlertLog {
	return predicate.AlertLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertLog) predicate.AlertLog {
	return predicate.AlertLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertLog) predicate.AlertLog {
	return predicate.AlertLog(sql.NotPredicates(p))
}
