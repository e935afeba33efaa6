package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOwnerIDFromContext_Present(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, ownerID)

	got, ok := GetOwnerIDFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, ownerID, got)
}

func TestGetOwnerIDFromContext_Missing(t *testing.T) {
	_, ok := GetOwnerIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetOwnerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, "not-a-uuid")

	_, ok := GetOwnerIDFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "ownerID", OwnerIDCtxKey.String())
}
