// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyProfile ctxKey = "profile"

// WithRequest annotates context with the request id and the title profile in play
func WithRequest(ctx context.Context, reqID, profile string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if profile != "" {
		ctx = context.WithValue(ctx, keyProfile, profile)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Profile returns the profile name on the context if present
func Profile(ctx context.Context) string {
	if v, ok := ctx.Value(keyProfile).(string); ok {
		return v
	}
	return ""
}
