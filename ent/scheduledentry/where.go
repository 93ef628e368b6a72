// Code generated by ent, DO NOT EDIT.

package scheduledentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldID, id))
}

// IntegrationID applies equality check predicate on the "integration_id" field. It's identical to IntegrationIDEQ.
func IntegrationID(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldIntegrationID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldOrgID, v))
}

// OriginalEventID applies equality check predicate on the "original_event_id" field. It's identical to OriginalEventIDEQ.
func OriginalEventID(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldOriginalEventID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldEventType, v))
}

// ScheduledFor applies equality check predicate on the "scheduled_for" field. It's identical to ScheduledForEQ.
func ScheduledFor(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldScheduledFor, v))
}

// TargetURL applies equality check predicate on the "target_url" field. It's identical to TargetURLEQ.
func TargetURL(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldTargetURL, v))
}

// HTTPMethod applies equality check predicate on the "http_method" field. It's identical to HTTPMethodEQ.
func HTTPMethod(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldHTTPMethod, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldAttemptCount, v))
}

// LeasedBy applies equality check predicate on the "leased_by" field. It's identical to LeasedByEQ.
func LeasedBy(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldLeasedBy, v))
}

// LeasedUntil applies equality check predicate on the "leased_until" field. It's identical to LeasedUntilEQ.
func LeasedUntil(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldLeasedUntil, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// IntegrationIDEQ applies the EQ predicate on the "integration_id" field.
func IntegrationIDEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldIntegrationID, v))
}

// IntegrationIDNEQ applies the NEQ predicate on the "integration_id" field.
func IntegrationIDNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldIntegrationID, v))
}

// IntegrationIDIn applies the In predicate on the "integration_id" field.
func IntegrationIDIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldIntegrationID, vs...))
}

// IntegrationIDNotIn applies the NotIn predicate on the "integration_id" field.
func IntegrationIDNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldIntegrationID, vs...))
}

// IntegrationIDGT applies the GT predicate on the "integration_id" field.
func IntegrationIDGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldIntegrationID, v))
}

// IntegrationIDGTE applies the GTE predicate on the "integration_id" field.
func IntegrationIDGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldIntegrationID, v))
}

// IntegrationIDLT applies the LT predicate on the "integration_id" field.
func IntegrationIDLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldIntegrationID, v))
}

// IntegrationIDLTE applies the LTE predicate on the "integration_id" field.
func IntegrationIDLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldIntegrationID, v))
}

// IntegrationIDContains applies the Contains predicate on the "integration_id" field.
func IntegrationIDContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldIntegrationID, v))
}

// IntegrationIDHasPrefix applies the HasPrefix predicate on the "integration_id" field.
func IntegrationIDHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldIntegrationID, v))
}

// IntegrationIDHasSuffix applies the HasSuffix predicate on the "integration_id" field.
func IntegrationIDHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldIntegrationID, v))
}

// IntegrationIDEqualFold applies the EqualFold predicate on the "integration_id" field.
func IntegrationIDEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldIntegrationID, v))
}

// IntegrationIDContainsFold applies the ContainsFold predicate on the "integration_id" field.
func IntegrationIDContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldIntegrationID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldOrgID, v))
}

// OriginalEventIDEQ applies the EQ predicate on the "original_event_id" field.
func OriginalEventIDEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldOriginalEventID, v))
}

// OriginalEventIDNEQ applies the NEQ predicate on the "original_event_id" field.
func OriginalEventIDNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldOriginalEventID, v))
}

// OriginalEventIDIn applies the In predicate on the "original_event_id" field.
func OriginalEventIDIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldOriginalEventID, vs...))
}

// OriginalEventIDNotIn applies the NotIn predicate on the "original_event_id" field.
func OriginalEventIDNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldOriginalEventID, vs...))
}

// OriginalEventIDGT applies the GT predicate on the "original_event_id" field.
func OriginalEventIDGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldOriginalEventID, v))
}

// OriginalEventIDGTE applies the GTE predicate on the "original_event_id" field.
func OriginalEventIDGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldOriginalEventID, v))
}

// OriginalEventIDLT applies the LT predicate on the "original_event_id" field.
func OriginalEventIDLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldOriginalEventID, v))
}

// OriginalEventIDLTE applies the LTE predicate on the "original_event_id" field.
func OriginalEventIDLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldOriginalEventID, v))
}

// OriginalEventIDContains applies the Contains predicate on the "original_event_id" field.
func OriginalEventIDContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldOriginalEventID, v))
}

// OriginalEventIDHasPrefix applies the HasPrefix predicate on the "original_event_id" field.
func OriginalEventIDHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldOriginalEventID, v))
}

// OriginalEventIDHasSuffix applies the HasSuffix predicate on the "original_event_id" field.
func OriginalEventIDHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldOriginalEventID, v))
}

// OriginalEventIDEqualFold applies the EqualFold predicate on the "original_event_id" field.
func OriginalEventIDEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldOriginalEventID, v))
}

// OriginalEventIDContainsFold applies the ContainsFold predicate on the "original_event_id" field.
func OriginalEventIDContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldOriginalEventID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldEventType, v))
}

// ScheduledForEQ applies the EQ predicate on the "scheduled_for" field.
func ScheduledForEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldScheduledFor, v))
}

// ScheduledForNEQ applies the NEQ predicate on the "scheduled_for" field.
func ScheduledForNEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldScheduledFor, v))
}

// ScheduledForIn applies the In predicate on the "scheduled_for" field.
func ScheduledForIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldScheduledFor, vs...))
}

// ScheduledForNotIn applies the NotIn predicate on the "scheduled_for" field.
func ScheduledForNotIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldScheduledFor, vs...))
}

// ScheduledForGT applies the GT predicate on the "scheduled_for" field.
func ScheduledForGT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldScheduledFor, v))
}

// ScheduledForGTE applies the GTE predicate on the "scheduled_for" field.
func ScheduledForGTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldScheduledFor, v))
}

// ScheduledForLT applies the LT predicate on the "scheduled_for" field.
func ScheduledForLT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldScheduledFor, v))
}

// ScheduledForLTE applies the LTE predicate on the "scheduled_for" field.
func ScheduledForLTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldScheduledFor, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// TargetURLEQ applies the EQ predicate on the "target_url" field.
func TargetURLEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldTargetURL, v))
}

// TargetURLNEQ applies the NEQ predicate on the "target_url" field.
func TargetURLNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldTargetURL, v))
}

// TargetURLIn applies the In predicate on the "target_url" field.
func TargetURLIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldTargetURL, vs...))
}

// TargetURLNotIn applies the NotIn predicate on the "target_url" field.
func TargetURLNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldTargetURL, vs...))
}

// TargetURLGT applies the GT predicate on the "target_url" field.
func TargetURLGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldTargetURL, v))
}

// TargetURLGTE applies the GTE predicate on the "target_url" field.
func TargetURLGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldTargetURL, v))
}

// TargetURLLT applies the LT predicate on the "target_url" field.
func TargetURLLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldTargetURL, v))
}

// TargetURLLTE applies the LTE predicate on the "target_url" field.
func TargetURLLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldTargetURL, v))
}

// TargetURLContains applies the Contains predicate on the "target_url" field.
func TargetURLContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldTargetURL, v))
}

// TargetURLHasPrefix applies the HasPrefix predicate on the "target_url" field.
func TargetURLHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldTargetURL, v))
}

// TargetURLHasSuffix applies the HasSuffix predicate on the "target_url" field.
func TargetURLHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldTargetURL, v))
}

// TargetURLEqualFold applies the EqualFold predicate on the "target_url" field.
func TargetURLEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldTargetURL, v))
}

// TargetURLContainsFold applies the ContainsFold predicate on the "target_url" field.
func TargetURLContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldTargetURL, v))
}

// HTTPMethodEQ applies the EQ predicate on the "http_method" field.
func HTTPMethodEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldHTTPMethod, v))
}

// HTTPMethodNEQ applies the NEQ predicate on the "http_method" field.
func HTTPMethodNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldHTTPMethod, v))
}

// HTTPMethodIn applies the In predicate on the "http_method" field.
func HTTPMethodIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldHTTPMethod, vs...))
}

// HTTPMethodNotIn applies the NotIn predicate on the "http_method" field.
func HTTPMethodNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldHTTPMethod, vs...))
}

// HTTPMethodGT applies the GT predicate on the "http_method" field.
func HTTPMethodGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldHTTPMethod, v))
}

// HTTPMethodGTE applies the GTE predicate on the "http_method" field.
func HTTPMethodGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldHTTPMethod, v))
}

// HTTPMethodLT applies the LT predicate on the "http_method" field.
func HTTPMethodLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldHTTPMethod, v))
}

// HTTPMethodLTE applies the LTE predicate on the "http_method" field.
func HTTPMethodLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldHTTPMethod, v))
}

// HTTPMethodContains applies the Contains predicate on the "http_method" field.
func HTTPMethodContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldHTTPMethod, v))
}

// HTTPMethodHasPrefix applies the HasPrefix predicate on the "http_method" field.
func HTTPMethodHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldHTTPMethod, v))
}

// HTTPMethodHasSuffix applies the HasSuffix predicate on the "http_method" field.
func HTTPMethodHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldHTTPMethod, v))
}

// HTTPMethodEqualFold applies the EqualFold predicate on the "http_method" field.
func HTTPMethodEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldHTTPMethod, v))
}

// HTTPMethodContainsFold applies the ContainsFold predicate on the "http_method" field.
func HTTPMethodContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldHTTPMethod, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldAttemptCount, v))
}

// RecurringIsNil applies the IsNil predicate on the "recurring" field.
func RecurringIsNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIsNull(FieldRecurring))
}

// RecurringNotNil applies the NotNil predicate on the "recurring" field.
func RecurringNotNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotNull(FieldRecurring))
}

// CancellationIsNil applies the IsNil predicate on the "cancellation" field.
func CancellationIsNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIsNull(FieldCancellation))
}

// CancellationNotNil applies the NotNil predicate on the "cancellation" field.
func CancellationNotNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotNull(FieldCancellation))
}

// LeasedByEQ applies the EQ predicate on the "leased_by" field.
func LeasedByEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldLeasedBy, v))
}

// LeasedByNEQ applies the NEQ predicate on the "leased_by" field.
func LeasedByNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldLeasedBy, v))
}

// LeasedByIn applies the In predicate on the "leased_by" field.
func LeasedByIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldLeasedBy, vs...))
}

// LeasedByNotIn applies the NotIn predicate on the "leased_by" field.
func LeasedByNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldLeasedBy, vs...))
}

// LeasedByGT applies the GT predicate on the "leased_by" field.
func LeasedByGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldLeasedBy, v))
}

// LeasedByGTE applies the GTE predicate on the "leased_by" field.
func LeasedByGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldLeasedBy, v))
}

// LeasedByLT applies the LT predicate on the "leased_by" field.
func LeasedByLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldLeasedBy, v))
}

// LeasedByLTE applies the LTE predicate on the "leased_by" field.
func LeasedByLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldLeasedBy, v))
}

// LeasedByContains applies the Contains predicate on the "leased_by" field.
func LeasedByContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldLeasedBy, v))
}

// LeasedByHasPrefix applies the HasPrefix predicate on the "leased_by" field.
func LeasedByHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldLeasedBy, v))
}

// LeasedByHasSuffix applies the HasSuffix predicate on the "leased_by" field.
func LeasedByHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldLeasedBy, v))
}

// LeasedByIsNil applies the IsNil predicate on the "leased_by" field.
func LeasedByIsNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIsNull(FieldLeasedBy))
}

// LeasedByNotNil applies the NotNil predicate on the "leased_by" field.
func LeasedByNotNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotNull(FieldLeasedBy))
}

// LeasedByEqualFold applies the EqualFold predicate on the "leased_by" field.
func LeasedByEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldLeasedBy, v))
}

// LeasedByContainsFold applies the ContainsFold predicate on the "leased_by" field.
func LeasedByContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldLeasedBy, v))
}

// LeasedUntilEQ applies the EQ predicate on the "leased_until" field.
func LeasedUntilEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldLeasedUntil, v))
}

// LeasedUntilNEQ applies the NEQ predicate on the "leased_until" field.
func LeasedUntilNEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldLeasedUntil, v))
}

// LeasedUntilIn applies the In predicate on the "leased_until" field.
func LeasedUntilIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldLeasedUntil, vs...))
}

// LeasedUntilNotIn applies the NotIn predicate on the "leased_until" field.
func LeasedUntilNotIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldLeasedUntil, vs...))
}

// LeasedUntilGT applies the GT predicate on the "leased_until" field.
func LeasedUntilGT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldLeasedUntil, v))
}

// LeasedUntilGTE applies the GTE predicate on the "leased_until" field.
func LeasedUntilGTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldLeasedUntil, v))
}

// LeasedUntilLT applies the LT predicate on the "leased_until" field.
func LeasedUntilLT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldLeasedUntil, v))
}

// LeasedUntilLTE applies the LTE predicate on the "leased_until" field.
func LeasedUntilLTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldLeasedUntil, v))
}

// LeasedUntilIsNil applies the IsNil predicate on the "leased_until" field.
func LeasedUntilIsNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIsNull(FieldLeasedUntil))
}

// LeasedUntilNotNil applies the NotNil predicate on the "leased_until" field.
func LeasedUntilNotNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotNull(FieldLeasedUntil))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldNextAttemptAt, v))
}

// NextAttemptAtIsNil applies the IsNil predicate on the "next_attempt_at" field.
func NextAttemptAtIsNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIsNull(FieldNextAttemptAt))
}

// NextAttemptAtNotNil applies the NotNil predicate on the "next_attempt_at" field.
func NextAttemptAtNotNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotNull(FieldNextAttemptAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledEntry) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledEntry) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledEntry) predicate.ScheduledEntry {
	return predicate.ScheduledEntry(sql.NotPredicates(p))
}
