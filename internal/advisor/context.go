// Package advisor threads the tenancy identity of a request through the
// call tree as an explicit context value. Nothing in the service reads an
// ambient advisor ID; whoever needs it takes it from the context.
package advisor

import "context"

type contextKey string

const (
	advisorIDKey contextKey = "advisor_id"
	tenantIDKey  contextKey = "tenant_id"
)

// NewContext returns a context carrying the advisor and tenant identity.
func NewContext(ctx context.Context, advisorID, tenantID string) context.Context {
	ctx = context.WithValue(ctx, advisorIDKey, advisorID)
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// FromContext returns the advisor ID of the request, or "" when absent.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(advisorIDKey).(string); ok {
		return id
	}
	return ""
}

// TenantFromContext returns the tenant ID of the request, or "" when absent.
func TenantFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(tenantIDKey).(string); ok {
		return id
	}
	return ""
}
