// Code generated by ent, DO NOT EDIT.

package quote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTenantID, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerEmail applies equality check predicate on the "customer_email" field. It's identical to CustomerEmailEQ.
func CustomerEmail(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCustomerEmail, v))
}

// RenderOptIn applies equality check predicate on the "render_opt_in" field. It's identical to RenderOptInEQ.
func RenderOptIn(v bool) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderOptIn, v))
}

// RenderStatus applies equality check predicate on the "render_status" field. It's identical to RenderStatusEQ.
func RenderStatus(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderStatus, v))
}

// RenderImageURL applies equality check predicate on the "render_image_url" field. It's identical to RenderImageURLEQ.
func RenderImageURL(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderImageURL, v))
}

// RenderPrompt applies equality check predicate on the "render_prompt" field. It's identical to RenderPromptEQ.
func RenderPrompt(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderPrompt, v))
}

// RenderError applies equality check predicate on the "render_error" field. It's identical to RenderErrorEQ.
func RenderError(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderError, v))
}

// RenderedAt applies equality check predicate on the "rendered_at" field. It's identical to RenderedAtEQ.
func RenderedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldTenantID, v))
}

// ImagesIsNil applies the IsNil predicate on the "images" field.
func ImagesIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldImages))
}

// ImagesNotNil applies the NotNil predicate on the "images" field.
func ImagesNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldImages))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldCustomerName, v))
}

// CustomerEmailEQ applies the EQ predicate on the "customer_email" field.
func CustomerEmailEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCustomerEmail, v))
}

// CustomerEmailNEQ applies the NEQ predicate on the "customer_email" field.
func CustomerEmailNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCustomerEmail, v))
}

// CustomerEmailIn applies the In predicate on the "customer_email" field.
func CustomerEmailIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCustomerEmail, vs...))
}

// CustomerEmailNotIn applies the NotIn predicate on the "customer_email" field.
func CustomerEmailNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCustomerEmail, vs...))
}

// CustomerEmailGT applies the GT predicate on the "customer_email" field.
func CustomerEmailGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCustomerEmail, v))
}

// CustomerEmailGTE applies the GTE predicate on the "customer_email" field.
func CustomerEmailGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCustomerEmail, v))
}

// CustomerEmailLT applies the LT predicate on the "customer_email" field.
func CustomerEmailLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCustomerEmail, v))
}

// CustomerEmailLTE applies the LTE predicate on the "customer_email" field.
func CustomerEmailLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCustomerEmail, v))
}

// CustomerEmailContains applies the Contains predicate on the "customer_email" field.
func CustomerEmailContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldCustomerEmail, v))
}

// CustomerEmailHasPrefix applies the HasPrefix predicate on the "customer_email" field.
func CustomerEmailHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldCustomerEmail, v))
}

// CustomerEmailHasSuffix applies the HasSuffix predicate on the "customer_email" field.
func CustomerEmailHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldCustomerEmail, v))
}

// CustomerEmailIsNil applies the IsNil predicate on the "customer_email" field.
func CustomerEmailIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldCustomerEmail))
}

// CustomerEmailNotNil applies the NotNil predicate on the "customer_email" field.
func CustomerEmailNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldCustomerEmail))
}

// CustomerEmailEqualFold applies the EqualFold predicate on the "customer_email" field.
func CustomerEmailEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldCustomerEmail, v))
}

// CustomerEmailContainsFold applies the ContainsFold predicate on the "customer_email" field.
func CustomerEmailContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldCustomerEmail, v))
}

// RenderOptInEQ applies the EQ predicate on the "render_opt_in" field.
func RenderOptInEQ(v bool) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderOptIn, v))
}

// RenderOptInNEQ applies the NEQ predicate on the "render_opt_in" field.
func RenderOptInNEQ(v bool) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldRenderOptIn, v))
}

// RenderStatusEQ applies the EQ predicate on the "render_status" field.
func RenderStatusEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderStatus, v))
}

// RenderStatusNEQ applies the NEQ predicate on the "render_status" field.
func RenderStatusNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldRenderStatus, v))
}

// RenderStatusIn applies the In predicate on the "render_status" field.
func RenderStatusIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldRenderStatus, vs...))
}

// RenderStatusNotIn applies the NotIn predicate on the "render_status" field.
func RenderStatusNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldRenderStatus, vs...))
}

// RenderStatusGT applies the GT predicate on the "render_status" field.
func RenderStatusGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldRenderStatus, v))
}

// RenderStatusGTE applies the GTE predicate on the "render_status" field.
func RenderStatusGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldRenderStatus, v))
}

// RenderStatusLT applies the LT predicate on the "render_status" field.
func RenderStatusLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldRenderStatus, v))
}

// RenderStatusLTE applies the LTE predicate on the "render_status" field.
func RenderStatusLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldRenderStatus, v))
}

// RenderStatusContains applies the Contains predicate on the "render_status" field.
func RenderStatusContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldRenderStatus, v))
}

// RenderStatusHasPrefix applies the HasPrefix predicate on the "render_status" field.
func RenderStatusHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldRenderStatus, v))
}

// RenderStatusHasSuffix applies the HasSuffix predicate on the "render_status" field.
func RenderStatusHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldRenderStatus, v))
}

// RenderStatusIsNil applies the IsNil predicate on the "render_status" field.
func RenderStatusIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldRenderStatus))
}

// RenderStatusNotNil applies the NotNil predicate on the "render_status" field.
func RenderStatusNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldRenderStatus))
}

// RenderStatusEqualFold applies the EqualFold predicate on the "render_status" field.
func RenderStatusEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldRenderStatus, v))
}

// RenderStatusContainsFold applies the ContainsFold predicate on the "render_status" field.
func RenderStatusContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldRenderStatus, v))
}

// RenderImageURLEQ applies the EQ predicate on the "render_image_url" field.
func RenderImageURLEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderImageURL, v))
}

// RenderImageURLNEQ applies the NEQ predicate on the "render_image_url" field.
func RenderImageURLNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldRenderImageURL, v))
}

// RenderImageURLIn applies the In predicate on the "render_image_url" field.
func RenderImageURLIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldRenderImageURL, vs...))
}

// RenderImageURLNotIn applies the NotIn predicate on the "render_image_url" field.
func RenderImageURLNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldRenderImageURL, vs...))
}

// RenderImageURLGT applies the GT predicate on the "render_image_url" field.
func RenderImageURLGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldRenderImageURL, v))
}

// RenderImageURLGTE applies the GTE predicate on the "render_image_url" field.
func RenderImageURLGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldRenderImageURL, v))
}

// RenderImageURLLT applies the LT predicate on the "render_image_url" field.
func RenderImageURLLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldRenderImageURL, v))
}

// RenderImageURLLTE applies the LTE predicate on the "render_image_url" field.
func RenderImageURLLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldRenderImageURL, v))
}

// RenderImageURLContains applies the Contains predicate on the "render_image_url" field.
func RenderImageURLContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldRenderImageURL, v))
}

// RenderImageURLHasPrefix applies the HasPrefix predicate on the "render_image_url" field.
func RenderImageURLHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldRenderImageURL, v))
}

// RenderImageURLHasSuffix applies the HasSuffix predicate on the "render_image_url" field.
func RenderImageURLHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldRenderImageURL, v))
}

// RenderImageURLIsNil applies the IsNil predicate on the "render_image_url" field.
func RenderImageURLIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldRenderImageURL))
}

// RenderImageURLNotNil applies the NotNil predicate on the "render_image_url" field.
func RenderImageURLNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldRenderImageURL))
}

// RenderImageURLEqualFold applies the EqualFold predicate on the "render_image_url" field.
func RenderImageURLEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldRenderImageURL, v))
}

// RenderImageURLContainsFold applies the ContainsFold predicate on the "render_image_url" field.
func RenderImageURLContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldRenderImageURL, v))
}

// RenderPromptEQ applies the EQ predicate on the "render_prompt" field.
func RenderPromptEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderPrompt, v))
}

// RenderPromptNEQ applies the NEQ predicate on the "render_prompt" field.
func RenderPromptNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldRenderPrompt, v))
}

// RenderPromptIn applies the In predicate on the "render_prompt" field.
func RenderPromptIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldRenderPrompt, vs...))
}

// RenderPromptNotIn applies the NotIn predicate on the "render_prompt" field.
func RenderPromptNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldRenderPrompt, vs...))
}

// RenderPromptGT applies the GT predicate on the "render_prompt" field.
func RenderPromptGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldRenderPrompt, v))
}

// RenderPromptGTE applies the GTE predicate on the "render_prompt" field.
func RenderPromptGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldRenderPrompt, v))
}

// RenderPromptLT applies the LT predicate on the "render_prompt" field.
func RenderPromptLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldRenderPrompt, v))
}

// RenderPromptLTE applies the LTE predicate on the "render_prompt" field.
func RenderPromptLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldRenderPrompt, v))
}

// RenderPromptContains applies the Contains predicate on the "render_prompt" field.
func RenderPromptContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldRenderPrompt, v))
}

// RenderPromptHasPrefix applies the HasPrefix predicate on the "render_prompt" field.
func RenderPromptHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldRenderPrompt, v))
}

// RenderPromptHasSuffix applies the HasSuffix predicate on the "render_prompt" field.
func RenderPromptHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldRenderPrompt, v))
}

// RenderPromptIsNil applies the IsNil predicate on the "render_prompt" field.
func RenderPromptIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldRenderPrompt))
}

// RenderPromptNotNil applies the NotNil predicate on the "render_prompt" field.
func RenderPromptNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldRenderPrompt))
}

// RenderPromptEqualFold applies the EqualFold predicate on the "render_prompt" field.
func RenderPromptEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldRenderPrompt, v))
}

// RenderPromptContainsFold applies the ContainsFold predicate on the "render_prompt" field.
func RenderPromptContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldRenderPrompt, v))
}

// RenderErrorEQ applies the EQ predicate on the "render_error" field.
func RenderErrorEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderError, v))
}

// RenderErrorNEQ applies the NEQ predicate on the "render_error" field.
func RenderErrorNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldRenderError, v))
}

// RenderErrorIn applies the In predicate on the "render_error" field.
func RenderErrorIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldRenderError, vs...))
}

// RenderErrorNotIn applies the NotIn predicate on the "render_error" field.
func RenderErrorNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldRenderError, vs...))
}

// RenderErrorGT applies the GT predicate on the "render_error" field.
func RenderErrorGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldRenderError, v))
}

// RenderErrorGTE applies the GTE predicate on the "render_error" field.
func RenderErrorGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldRenderError, v))
}

// RenderErrorLT applies the LT predicate on the "render_error" field.
func RenderErrorLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldRenderError, v))
}

// RenderErrorLTE applies the LTE predicate on the "render_error" field.
func RenderErrorLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldRenderError, v))
}

// RenderErrorContains applies the Contains predicate on the "render_error" field.
func RenderErrorContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldRenderError, v))
}

// RenderErrorHasPrefix applies the HasPrefix predicate on the "render_error" field.
func RenderErrorHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldRenderError, v))
}

// RenderErrorHasSuffix applies the HasSuffix predicate on the "render_error" field.
func RenderErrorHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldRenderError, v))
}

// RenderErrorIsNil applies the IsNil predicate on the "render_error" field.
func RenderErrorIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldRenderError))
}

// RenderErrorNotNil applies the NotNil predicate on the "render_error" field.
func RenderErrorNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldRenderError))
}

// RenderErrorEqualFold applies the EqualFold predicate on the "render_error" field.
func RenderErrorEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldRenderError, v))
}

// RenderErrorContainsFold applies the ContainsFold predicate on the "render_error" field.
func RenderErrorContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldRenderError, v))
}

// RenderedAtEQ applies the EQ predicate on the "rendered_at" field.
func RenderedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRenderedAt, v))
}

// RenderedAtNEQ applies the NEQ predicate on the "rendered_at" field.
func RenderedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldRenderedAt, v))
}

// RenderedAtIn applies the In predicate on the "rendered_at" field.
func RenderedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldRenderedAt, vs...))
}

// RenderedAtNotIn applies the NotIn predicate on the "rendered_at" field.
func RenderedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldRenderedAt, vs...))
}

// RenderedAtGT applies the GT predicate on the "rendered_at" field.
func RenderedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldRenderedAt, v))
}

// RenderedAtGTE applies the GTE predicate on the "rendered_at" field.
func RenderedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldRenderedAt, v))
}

// RenderedAtLT applies the LT predicate on the "rendered_at" field.
func RenderedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldRenderedAt, v))
}

// RenderedAtLTE applies the LTE predicate on the "rendered_at" field.
func RenderedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldRenderedAt, v))
}

// RenderedAtIsNil applies the IsNil predicate on the "rendered_at" field.
func RenderedAtIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldRenderedAt))
}

// RenderedAtNotNil applies the NotNil predicate on the "rendered_at" field.
func RenderedAtNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldRenderedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRenderJobs applies the HasEdge predicate on the "render_jobs" edge.
func HasRenderJobs() predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RenderJobsTable, RenderJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRenderJobsWith applies the HasEdge predicate on the "render_jobs" edge with a given conditions (other predicates).
func HasRenderJobsWith(preds ...predicate.RenderJob) predicate.Quote {
	return predicate.Quote(func(s *sql.Selector) {
		step := newRenderJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.NotPredicates(p))
}
