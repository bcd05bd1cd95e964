// Code generated by ent, DO NOT EDIT.

package tenantcredential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldTenantID, v))
}

// EncryptedAPIKey applies equality check predicate on the "encrypted_api_key" field. It's identical to EncryptedAPIKeyEQ.
func EncryptedAPIKey(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldEncryptedAPIKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLTE(FieldTenantID, v))
}

// EncryptedAPIKeyEQ applies the EQ predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyEQ(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyNEQ applies the NEQ predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyNEQ(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNEQ(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyIn applies the In predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyIn(vs ...string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldIn(FieldEncryptedAPIKey, vs...))
}

// EncryptedAPIKeyNotIn applies the NotIn predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyNotIn(vs ...string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNotIn(FieldEncryptedAPIKey, vs...))
}

// EncryptedAPIKeyGT applies the GT predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyGT(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGT(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyGTE applies the GTE predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyGTE(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGTE(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyLT applies the LT predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyLT(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLT(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyLTE applies the LTE predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyLTE(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLTE(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyContains applies the Contains predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyContains(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldContains(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyHasPrefix applies the HasPrefix predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyHasPrefix(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldHasPrefix(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyHasSuffix applies the HasSuffix predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyHasSuffix(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldHasSuffix(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyEqualFold applies the EqualFold predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyEqualFold(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEqualFold(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyContainsFold applies the ContainsFold predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyContainsFold(v string) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldContainsFold(FieldEncryptedAPIKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TenantCredential {
	return predicate.TenantCredential(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TenantCredential) predicate.TenantCredential {
	return predicate.TenantCredential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TenantCredential) predicate.TenantCredential {
	return predicate.TenantCredential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TenantCredential) predicate.TenantCredential {
	return predicate.TenantCredential(sql.NotPredicates(p))
}
