// Code generated by ent, DO NOT EDIT.

package eventaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldSource, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldSourceID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldOrgID, v))
}

// OrgUnitID applies equality check predicate on the "org_unit_id" field. It's identical to OrgUnitIDEQ.
func OrgUnitID(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldOrgUnitID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldEventType, v))
}

// PayloadHash applies equality check predicate on the "payload_hash" field. It's identical to PayloadHashEQ.
func PayloadHash(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldPayloadHash, v))
}

// EventKey applies equality check predicate on the "event_key" field. It's identical to EventKeyEQ.
func EventKey(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldEventKey, v))
}

// ReceivedAtBucket applies equality check predicate on the "received_at_bucket" field. It's identical to ReceivedAtBucketEQ.
func ReceivedAtBucket(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldReceivedAtBucket, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldReceivedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldExpiresAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldSource, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDIsNil applies the IsNil predicate on the "source_id" field.
func SourceIDIsNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIsNull(FieldSourceID))
}

// SourceIDNotNil applies the NotNil predicate on the "source_id" field.
func SourceIDNotNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotNull(FieldSourceID))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldSourceID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldOrgID, v))
}

// OrgUnitIDEQ applies the EQ predicate on the "org_unit_id" field.
func OrgUnitIDEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldOrgUnitID, v))
}

// OrgUnitIDNEQ applies the NEQ predicate on the "org_unit_id" field.
func OrgUnitIDNEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldOrgUnitID, v))
}

// OrgUnitIDIn applies the In predicate on the "org_unit_id" field.
func OrgUnitIDIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldOrgUnitID, vs...))
}

// OrgUnitIDNotIn applies the NotIn predicate on the "org_unit_id" field.
func OrgUnitIDNotIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldOrgUnitID, vs...))
}

// OrgUnitIDGT applies the GT predicate on the "org_unit_id" field.
func OrgUnitIDGT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldOrgUnitID, v))
}

// OrgUnitIDGTE applies the GTE predicate on the "org_unit_id" field.
func OrgUnitIDGTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldOrgUnitID, v))
}

// OrgUnitIDLT applies the LT predicate on the "org_unit_id" field.
func OrgUnitIDLT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldOrgUnitID, v))
}

// OrgUnitIDLTE applies the LTE predicate on the "org_unit_id" field.
func OrgUnitIDLTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldOrgUnitID, v))
}

// OrgUnitIDContains applies the Contains predicate on the "org_unit_id" field.
func OrgUnitIDContains(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContains(FieldOrgUnitID, v))
}

// OrgUnitIDHasPrefix applies the HasPrefix predicate on the "org_unit_id" field.
func OrgUnitIDHasPrefix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasPrefix(FieldOrgUnitID, v))
}

// OrgUnitIDHasSuffix applies the HasSuffix predicate on the "org_unit_id" field.
func OrgUnitIDHasSuffix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasSuffix(FieldOrgUnitID, v))
}

// OrgUnitIDIsNil applies the IsNil predicate on the "org_unit_id" field.
func OrgUnitIDIsNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIsNull(FieldOrgUnitID))
}

// OrgUnitIDNotNil applies the NotNil predicate on the "org_unit_id" field.
func OrgUnitIDNotNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotNull(FieldOrgUnitID))
}

// OrgUnitIDEqualFold applies the EqualFold predicate on the "org_unit_id" field.
func OrgUnitIDEqualFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldOrgUnitID, v))
}

// OrgUnitIDContainsFold applies the ContainsFold predicate on the "org_unit_id" field.
func OrgUnitIDContainsFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldOrgUnitID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldEventType, v))
}

// PayloadHashEQ applies the EQ predicate on the "payload_hash" field.
func PayloadHashEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldPayloadHash, v))
}

// PayloadHashNEQ applies the NEQ predicate on the "payload_hash" field.
func PayloadHashNEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldPayloadHash, v))
}

// PayloadHashIn applies the In predicate on the "payload_hash" field.
func PayloadHashIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldPayloadHash, vs...))
}

// PayloadHashNotIn applies the NotIn predicate on the "payload_hash" field.
func PayloadHashNotIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldPayloadHash, vs...))
}

// PayloadHashGT applies the GT predicate on the "payload_hash" field.
func PayloadHashGT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldPayloadHash, v))
}

// PayloadHashGTE applies the GTE predicate on the "payload_hash" field.
func PayloadHashGTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldPayloadHash, v))
}

// PayloadHashLT applies the LT predicate on the "payload_hash" field.
func PayloadHashLT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldPayloadHash, v))
}

// PayloadHashLTE applies the LTE predicate on the "payload_hash" field.
func PayloadHashLTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldPayloadHash, v))
}

// PayloadHashContains applies the Contains predicate on the "payload_hash" field.
func PayloadHashContains(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContains(FieldPayloadHash, v))
}

// PayloadHashHasPrefix applies the HasPrefix predicate on the "payload_hash" field.
func PayloadHashHasPrefix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasPrefix(FieldPayloadHash, v))
}

// PayloadHashHasSuffix applies the HasSuffix predicate on the "payload_hash" field.
func PayloadHashHasSuffix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasSuffix(FieldPayloadHash, v))
}

// PayloadHashEqualFold applies the EqualFold predicate on the "payload_hash" field.
func PayloadHashEqualFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldPayloadHash, v))
}

// PayloadHashContainsFold applies the ContainsFold predicate on the "payload_hash" field.
func PayloadHashContainsFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldPayloadHash, v))
}

// EventKeyEQ applies the EQ predicate on the "event_key" field.
func EventKeyEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldEventKey, v))
}

// EventKeyNEQ applies the NEQ predicate on the "event_key" field.
func EventKeyNEQ(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldEventKey, v))
}

// EventKeyIn applies the In predicate on the "event_key" field.
func EventKeyIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldEventKey, vs...))
}

// EventKeyNotIn applies the NotIn predicate on the "event_key" field.
func EventKeyNotIn(vs ...string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldEventKey, vs...))
}

// EventKeyGT applies the GT predicate on the "event_key" field.
func EventKeyGT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldEventKey, v))
}

// EventKeyGTE applies the GTE predicate on the "event_key" field.
func EventKeyGTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldEventKey, v))
}

// EventKeyLT applies the LT predicate on the "event_key" field.
func EventKeyLT(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldEventKey, v))
}

// EventKeyLTE applies the LTE predicate on the "event_key" field.
func EventKeyLTE(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldEventKey, v))
}

// EventKeyContains applies the Contains predicate on the "event_key" field.
func EventKeyContains(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContains(FieldEventKey, v))
}

// EventKeyHasPrefix applies the HasPrefix predicate on the "event_key" field.
func EventKeyHasPrefix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasPrefix(FieldEventKey, v))
}

// EventKeyHasSuffix applies the HasSuffix predicate on the "event_key" field.
func EventKeyHasSuffix(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldHasSuffix(FieldEventKey, v))
}

// EventKeyIsNil applies the IsNil predicate on the "event_key" field.
func EventKeyIsNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIsNull(FieldEventKey))
}

// EventKeyNotNil applies the NotNil predicate on the "event_key" field.
func EventKeyNotNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotNull(FieldEventKey))
}

// EventKeyEqualFold applies the EqualFold predicate on the "event_key" field.
func EventKeyEqualFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEqualFold(FieldEventKey, v))
}

// EventKeyContainsFold applies the ContainsFold predicate on the "event_key" field.
func EventKeyContainsFold(v string) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldContainsFold(FieldEventKey, v))
}

// ReceivedAtBucketEQ applies the EQ predicate on the "received_at_bucket" field.
func ReceivedAtBucketEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldReceivedAtBucket, v))
}

// ReceivedAtBucketNEQ applies the NEQ predicate on the "received_at_bucket" field.
func ReceivedAtBucketNEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldReceivedAtBucket, v))
}

// ReceivedAtBucketIn applies the In predicate on the "received_at_bucket" field.
func ReceivedAtBucketIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldReceivedAtBucket, vs...))
}

// ReceivedAtBucketNotIn applies the NotIn predicate on the "received_at_bucket" field.
func ReceivedAtBucketNotIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldReceivedAtBucket, vs...))
}

// ReceivedAtBucketGT applies the GT predicate on the "received_at_bucket" field.
func ReceivedAtBucketGT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldReceivedAtBucket, v))
}

// ReceivedAtBucketGTE applies the GTE predicate on the "received_at_bucket" field.
func ReceivedAtBucketGTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldReceivedAtBucket, v))
}

// ReceivedAtBucketLT applies the LT predicate on the "received_at_bucket" field.
func ReceivedAtBucketLT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldReceivedAtBucket, v))
}

// ReceivedAtBucketLTE applies the LTE predicate on the "received_at_bucket" field.
func ReceivedAtBucketLTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldReceivedAtBucket, v))
}

// ReceivedAtBucketIsNil applies the IsNil predicate on the "received_at_bucket" field.
func ReceivedAtBucketIsNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIsNull(FieldReceivedAtBucket))
}

// ReceivedAtBucketNotNil applies the NotNil predicate on the "received_at_bucket" field.
func ReceivedAtBucketNotNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotNull(FieldReceivedAtBucket))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldStatus, vs...))
}

// TimelineIsNil applies the IsNil predicate on the "timeline" field.
func TimelineIsNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIsNull(FieldTimeline))
}

// TimelineNotNil applies the NotNil predicate on the "timeline" field.
func TimelineNotNil() predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotNull(FieldTimeline))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldReceivedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.EventAudit {
	return predicate.EventAudit(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventAudit) predicate.EventAudit {
	return predicate.EventAudit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventAudit) predicate.EventAudit {
	return predicate.EventAudit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventAudit) predicate.EventAudit {
	return predicate.EventAudit(sql.NotPredicates(p))
}
