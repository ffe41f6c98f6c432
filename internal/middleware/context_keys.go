package middleware

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// callerCtxKey is the key used to store the authenticated caller address in the request context.
const callerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, callerCtxKey, caller)
}

// GetCallerFromContext retrieves the authenticated caller address from the Gin context.
// It returns the address and a boolean indicating if it was found.
func GetCallerFromContext(c *gin.Context) (domain.Address, bool) {
	caller, ok := c.Request.Context().Value(callerCtxKey).(domain.Address)
	if !ok || caller.IsZero() {
		return "", false
	}
	return caller, true
}
