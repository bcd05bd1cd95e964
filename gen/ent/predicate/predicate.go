// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Quote is the predicate function for quote builders.
type Quote func(*sql.Selector)

// RenderJob is the predicate function for renderjob builders.
type RenderJob func(*sql.Selector)

// TenantCredential is the predicate function for tenantcredential builders.
type TenantCredential func(*sql.Selector)

// TenantRenderConfig is the predicate function for tenantrenderconfig builders.
type TenantRenderConfig func(*sql.Selector)
