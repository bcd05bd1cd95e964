// Code generated by ent, DO NOT EDIT.

package quote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the quote type in the database.
	Label = "quote"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldImages holds the string denoting the images field in the database.
	FieldImages = "images"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldCustomerEmail holds the string denoting the customer_email field in the database.
	FieldCustomerEmail = "customer_email"
	// FieldRenderOptIn holds the string denoting the render_opt_in field in the database.
	FieldRenderOptIn = "render_opt_in"
	// FieldRenderStatus holds the string denoting the render_status field in the database.
	FieldRenderStatus = "render_status"
	// FieldRenderImageURL holds the string denoting the render_image_url field in the database.
	FieldRenderImageURL = "render_image_url"
	// FieldRenderPrompt holds the string denoting the render_prompt field in the database.
	FieldRenderPrompt = "render_prompt"
	// FieldRenderError holds the string denoting the render_error field in the database.
	FieldRenderError = "render_error"
	// FieldRenderedAt holds the string denoting the rendered_at field in the database.
	FieldRenderedAt = "rendered_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRenderJobs holds the string denoting the render_jobs edge name in mutations.
	EdgeRenderJobs = "render_jobs"
	// Table holds the table name of the quote in the database.
	Table = "quotes"
	// RenderJobsTable is the table that holds the render_jobs relation/edge.
	RenderJobsTable = "render_jobs"
	// RenderJobsInverseTable is the table name for the RenderJob entity.
	// It exists in this package in order to avoid circular dependency with the "renderjob" package.
	RenderJobsInverseTable = "render_jobs"
	// RenderJobsColumn is the table column denoting the render_jobs relation/edge.
	RenderJobsColumn = "quote_id"
)

// Columns holds all SQL columns for quote fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldImages,
	FieldCustomerName,
	FieldCustomerEmail,
	FieldRenderOptIn,
	FieldRenderStatus,
	FieldRenderImageURL,
	FieldRenderPrompt,
	FieldRenderError,
	FieldRenderedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRenderOptIn holds the default value on creation for the "render_opt_in" field.
	DefaultRenderOptIn bool
	// RenderStatusValidator is a validator for the "render_status" field. It is called by the builders before save.
	RenderStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Quote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCustomerName orders the results by the customer_name field.
func ByCustomerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerName, opts...).ToFunc()
}

// ByCustomerEmail orders the results by the customer_email field.
func ByCustomerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerEmail, opts...).ToFunc()
}

// ByRenderOptIn orders the results by the render_opt_in field.
func ByRenderOptIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderOptIn, opts...).ToFunc()
}

// ByRenderStatus orders the results by the render_status field.
func ByRenderStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderStatus, opts...).ToFunc()
}

// ByRenderImageURL orders the results by the render_image_url field.
func ByRenderImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderImageURL, opts...).ToFunc()
}

// ByRenderPrompt orders the results by the render_prompt field.
func ByRenderPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderPrompt, opts...).ToFunc()
}

// ByRenderError orders the results by the render_error field.
func ByRenderError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderError, opts...).ToFunc()
}

// ByRenderedAt orders the results by the rendered_at field.
func ByRenderedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenderedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRenderJobsCount orders the results by render_jobs count.
func ByRenderJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRenderJobsStep(), opts...)
	}
}

// ByRenderJobs orders the results by render_jobs terms.
func ByRenderJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRenderJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRenderJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RenderJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RenderJobsTable, RenderJobsColumn),
	)
}
