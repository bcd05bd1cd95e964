// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aiphotoquote-dotcom/aiphotoquote/db/ent/schema"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantcredential"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantrenderconfig"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	quoteFields := schema.Quote{}.Fields()
	_ = quoteFields
	// quoteDescRenderOptIn is the schema descriptor for render_opt_in field.
	quoteDescRenderOptIn := quoteFields[5].Descriptor()
	// quote.DefaultRenderOptIn holds the default value on creation for the render_opt_in field.
	quote.DefaultRenderOptIn = quoteDescRenderOptIn.Default.(bool)
	// quoteDescRenderStatus is the schema descriptor for render_status field.
	quoteDescRenderStatus := quoteFields[6].Descriptor()
	// quote.RenderStatusValidator is a validator for the "render_status" field. It is called by the builders before save.
	quote.RenderStatusValidator = quoteDescRenderStatus.Validators[0].(func(string) error)
	// quoteDescCreatedAt is the schema descriptor for created_at field.
	quoteDescCreatedAt := quoteFields[11].Descriptor()
	// quote.DefaultCreatedAt holds the default value on creation for the created_at field.
	quote.DefaultCreatedAt = quoteDescCreatedAt.Default.(func() time.Time)
	// quoteDescUpdatedAt is the schema descriptor for updated_at field.
	quoteDescUpdatedAt := quoteFields[12].Descriptor()
	// quote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quote.DefaultUpdatedAt = quoteDescUpdatedAt.Default.(func() time.Time)
	// quote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quote.UpdateDefaultUpdatedAt = quoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quoteDescID is the schema descriptor for id field.
	quoteDescID := quoteFields[0].Descriptor()
	// quote.DefaultID holds the default value on creation for the id field.
	quote.DefaultID = quoteDescID.Default.(func() uuid.UUID)
	renderjobFields := schema.RenderJob{}.Fields()
	_ = renderjobFields
	// renderjobDescStatus is the schema descriptor for status field.
	renderjobDescStatus := renderjobFields[3].Descriptor()
	// renderjob.DefaultStatus holds the default value on creation for the status field.
	renderjob.DefaultStatus = renderjobDescStatus.Default.(string)
	// renderjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	renderjob.StatusValidator = renderjobDescStatus.Validators[0].(func(string) error)
	// renderjobDescCreatedAt is the schema descriptor for created_at field.
	renderjobDescCreatedAt := renderjobFields[5].Descriptor()
	// renderjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	renderjob.DefaultCreatedAt = renderjobDescCreatedAt.Default.(func() time.Time)
	// renderjobDescID is the schema descriptor for id field.
	renderjobDescID := renderjobFields[0].Descriptor()
	// renderjob.DefaultID holds the default value on creation for the id field.
	renderjob.DefaultID = renderjobDescID.Default.(func() uuid.UUID)
	tenantcredentialFields := schema.TenantCredential{}.Fields()
	_ = tenantcredentialFields
	// tenantcredentialDescEncryptedAPIKey is the schema descriptor for encrypted_api_key field.
	tenantcredentialDescEncryptedAPIKey := tenantcredentialFields[2].Descriptor()
	// tenantcredential.EncryptedAPIKeyValidator is a validator for the "encrypted_api_key" field. It is called by the builders before save.
	tenantcredential.EncryptedAPIKeyValidator = tenantcredentialDescEncryptedAPIKey.Validators[0].(func(string) error)
	// tenantcredentialDescCreatedAt is the schema descriptor for created_at field.
	tenantcredentialDescCreatedAt := tenantcredentialFields[3].Descriptor()
	// tenantcredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenantcredential.DefaultCreatedAt = tenantcredentialDescCreatedAt.Default.(func() time.Time)
	// tenantcredentialDescUpdatedAt is the schema descriptor for updated_at field.
	tenantcredentialDescUpdatedAt := tenantcredentialFields[4].Descriptor()
	// tenantcredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantcredential.DefaultUpdatedAt = tenantcredentialDescUpdatedAt.Default.(func() time.Time)
	// tenantcredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantcredential.UpdateDefaultUpdatedAt = tenantcredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tenantcredentialDescID is the schema descriptor for id field.
	tenantcredentialDescID := tenantcredentialFields[0].Descriptor()
	// tenantcredential.DefaultID holds the default value on creation for the id field.
	tenantcredential.DefaultID = tenantcredentialDescID.Default.(func() uuid.UUID)
	tenantrenderconfigFields := schema.TenantRenderConfig{}.Fields()
	_ = tenantrenderconfigFields
	// tenantrenderconfigDescPlanTier is the schema descriptor for plan_tier field.
	tenantrenderconfigDescPlanTier := tenantrenderconfigFields[2].Descriptor()
	// tenantrenderconfig.DefaultPlanTier holds the default value on creation for the plan_tier field.
	tenantrenderconfig.DefaultPlanTier = tenantrenderconfigDescPlanTier.Default.(string)
	// tenantrenderconfigDescGraceCreditsTotal is the schema descriptor for grace_credits_total field.
	tenantrenderconfigDescGraceCreditsTotal := tenantrenderconfigFields[3].Descriptor()
	// tenantrenderconfig.DefaultGraceCreditsTotal holds the default value on creation for the grace_credits_total field.
	tenantrenderconfig.DefaultGraceCreditsTotal = tenantrenderconfigDescGraceCreditsTotal.Default.(int)
	// tenantrenderconfig.GraceCreditsTotalValidator is a validator for the "grace_credits_total" field. It is called by the builders before save.
	tenantrenderconfig.GraceCreditsTotalValidator = tenantrenderconfigDescGraceCreditsTotal.Validators[0].(func(int) error)
	// tenantrenderconfigDescGraceCreditsUsed is the schema descriptor for grace_credits_used field.
	tenantrenderconfigDescGraceCreditsUsed := tenantrenderconfigFields[4].Descriptor()
	// tenantrenderconfig.DefaultGraceCreditsUsed holds the default value on creation for the grace_credits_used field.
	tenantrenderconfig.DefaultGraceCreditsUsed = tenantrenderconfigDescGraceCreditsUsed.Default.(int)
	// tenantrenderconfig.GraceCreditsUsedValidator is a validator for the "grace_credits_used" field. It is called by the builders before save.
	tenantrenderconfig.GraceCreditsUsedValidator = tenantrenderconfigDescGraceCreditsUsed.Validators[0].(func(int) error)
	// tenantrenderconfigDescRenderingMaxPerDay is the schema descriptor for rendering_max_per_day field.
	tenantrenderconfigDescRenderingMaxPerDay := tenantrenderconfigFields[7].Descriptor()
	// tenantrenderconfig.DefaultRenderingMaxPerDay holds the default value on creation for the rendering_max_per_day field.
	tenantrenderconfig.DefaultRenderingMaxPerDay = tenantrenderconfigDescRenderingMaxPerDay.Default.(int)
	// tenantrenderconfigDescCreatedAt is the schema descriptor for created_at field.
	tenantrenderconfigDescCreatedAt := tenantrenderconfigFields[10].Descriptor()
	// tenantrenderconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenantrenderconfig.DefaultCreatedAt = tenantrenderconfigDescCreatedAt.Default.(func() time.Time)
	// tenantrenderconfigDescUpdatedAt is the schema descriptor for updated_at field.
	tenantrenderconfigDescUpdatedAt := tenantrenderconfigFields[11].Descriptor()
	// tenantrenderconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantrenderconfig.DefaultUpdatedAt = tenantrenderconfigDescUpdatedAt.Default.(func() time.Time)
	// tenantrenderconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantrenderconfig.UpdateDefaultUpdatedAt = tenantrenderconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tenantrenderconfigDescID is the schema descriptor for id field.
	tenantrenderconfigDescID := tenantrenderconfigFields[0].Descriptor()
	// tenantrenderconfig.DefaultID holds the default value on creation for the id field.
	tenantrenderconfig.DefaultID = tenantrenderconfigDescID.Default.(func() uuid.UUID)
}
