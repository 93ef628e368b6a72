// Code generated by ent, DO NOT EDIT.

package sourcecheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldContainsFold(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldSource, v))
}

// SourceIdentifier applies equality check predicate on the "source_identifier" field. It's identical to SourceIdentifierEQ.
func SourceIdentifier(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldSourceIdentifier, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldOrgID, v))
}

// LastProcessedID applies equality check predicate on the "last_processed_id" field. It's identical to LastProcessedIDEQ.
func LastProcessedID(v int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldLastProcessedID, v))
}

// LastProcessedAt applies equality check predicate on the "last_processed_at" field. It's identical to LastProcessedAtEQ.
func LastProcessedAt(v time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldLastProcessedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldContainsFold(FieldSource, v))
}

// SourceIdentifierEQ applies the EQ predicate on the "source_identifier" field.
func SourceIdentifierEQ(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldSourceIdentifier, v))
}

// SourceIdentifierNEQ applies the NEQ predicate on the "source_identifier" field.
func SourceIdentifierNEQ(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNEQ(FieldSourceIdentifier, v))
}

// SourceIdentifierIn applies the In predicate on the "source_identifier" field.
func SourceIdentifierIn(vs ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldIn(FieldSourceIdentifier, vs...))
}

// SourceIdentifierNotIn applies the NotIn predicate on the "source_identifier" field.
func SourceIdentifierNotIn(vs ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNotIn(FieldSourceIdentifier, vs...))
}

// SourceIdentifierGT applies the GT predicate on the "source_identifier" field.
func SourceIdentifierGT(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGT(FieldSourceIdentifier, v))
}

// SourceIdentifierGTE applies the GTE predicate on the "source_identifier" field.
func SourceIdentifierGTE(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGTE(FieldSourceIdentifier, v))
}

// SourceIdentifierLT applies the LT predicate on the "source_identifier" field.
func SourceIdentifierLT(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLT(FieldSourceIdentifier, v))
}

// SourceIdentifierLTE applies the LTE predicate on the "source_identifier" field.
func SourceIdentifierLTE(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLTE(FieldSourceIdentifier, v))
}

// SourceIdentifierContains applies the Contains predicate on the "source_identifier" field.
func SourceIdentifierContains(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldContains(FieldSourceIdentifier, v))
}

// SourceIdentifierHasPrefix applies the HasPrefix predicate on the "source_identifier" field.
func SourceIdentifierHasPrefix(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldHasPrefix(FieldSourceIdentifier, v))
}

// SourceIdentifierHasSuffix applies the HasSuffix predicate on the "source_identifier" field.
func SourceIdentifierHasSuffix(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldHasSuffix(FieldSourceIdentifier, v))
}

// SourceIdentifierEqualFold applies the EqualFold predicate on the "source_identifier" field.
func SourceIdentifierEqualFold(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEqualFold(FieldSourceIdentifier, v))
}

// SourceIdentifierContainsFold applies the ContainsFold predicate on the "source_identifier" field.
func SourceIdentifierContainsFold(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldContainsFold(FieldSourceIdentifier, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldContainsFold(FieldOrgID, v))
}

// LastProcessedIDEQ applies the EQ predicate on the "last_processed_id" field.
func LastProcessedIDEQ(v int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldLastProcessedID, v))
}

// LastProcessedIDNEQ applies the NEQ predicate on the "last_processed_id" field.
func LastProcessedIDNEQ(v int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNEQ(FieldLastProcessedID, v))
}

// LastProcessedIDIn applies the In predicate on the "last_processed_id" field.
func LastProcessedIDIn(vs ...int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldIn(FieldLastProcessedID, vs...))
}

// LastProcessedIDNotIn applies the NotIn predicate on the "last_processed_id" field.
func LastProcessedIDNotIn(vs ...int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNotIn(FieldLastProcessedID, vs...))
}

// LastProcessedIDGT applies the GT predicate on the "last_processed_id" field.
func LastProcessedIDGT(v int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGT(FieldLastProcessedID, v))
}

// LastProcessedIDGTE applies the GTE predicate on the "last_processed_id" field.
func LastProcessedIDGTE(v int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGTE(FieldLastProcessedID, v))
}

// LastProcessedIDLT applies the LT predicate on the "last_processed_id" field.
func LastProcessedIDLT(v int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLT(FieldLastProcessedID, v))
}

// LastProcessedIDLTE applies the LTE predicate on the "last_processed_id" field.
func LastProcessedIDLTE(v int64) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLTE(FieldLastProcessedID, v))
}

// LastProcessedAtEQ applies the EQ predicate on the "last_processed_at" field.
func LastProcessedAtEQ(v time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldEQ(FieldLastProcessedAt, v))
}

// LastProcessedAtNEQ applies the NEQ predicate on the "last_processed_at" field.
func LastProcessedAtNEQ(v time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNEQ(FieldLastProcessedAt, v))
}

// LastProcessedAtIn applies the In predicate on the "last_processed_at" field.
func LastProcessedAtIn(vs ...time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldIn(FieldLastProcessedAt, vs...))
}

// LastProcessedAtNotIn applies the NotIn predicate on the "last_processed_at" field.
func LastProcessedAtNotIn(vs ...time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldNotIn(FieldLastProcessedAt, vs...))
}

// LastProcessedAtGT applies the GT predicate on the "last_processed_at" field.
func LastProcessedAtGT(v time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGT(FieldLastProcessedAt, v))
}

// LastProcessedAtGTE applies the GTE predicate on the "last_processed_at" field.
func LastProcessedAtGTE(v time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldGTE(FieldLastProcessedAt, v))
}

// LastProcessedAtLT applies the LT predicate on the "last_processed_at" field.
func LastProcessedAtLT(v time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLT(FieldLastProcessedAt, v))
}

// LastProcessedAtLTE applies the LTE predicate on the "last_processed_at" field.
func LastProcessedAtLTE(v time.Time) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.FieldLTE(FieldLastProcessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceCheckpoint) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceCheckpoint) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceCheckpoint) predicate.SourceCheckpoint {
	return predicate.SourceCheckpoint(sql.NotPredicates(p))
}
