// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, session token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key used to store the authenticated owner identifier
// in the request context. It is written exactly once, by the session
// middleware's successful path; downstream code must not derive identity from
// any other source.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, userID)
var OwnerIDCtxKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the authenticated owner identifier from
// the context.
//
// Returns the owner ID and an ok flag:
//   - ok == true  — value is found and has the correct uuid.UUID type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
//	if !ok {
//	    // handle missing identity in context
//	}
func GetOwnerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(uuid.UUID)
	return ownerID, ok
}
