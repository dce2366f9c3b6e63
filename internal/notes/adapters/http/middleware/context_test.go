package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"memnotes/internal/notes/adapters/http/middleware"
)

func TestCallerID(t *testing.T) {
	assert.Equal(t, "", middleware.CallerID(context.Background()))

	ctx := middleware.WithCallerID(context.Background(), "u1")
	assert.Equal(t, "u1", middleware.CallerID(ctx))

	ctx = middleware.WithCallerID(ctx, "")
	assert.Equal(t, "", middleware.CallerID(ctx))
}
