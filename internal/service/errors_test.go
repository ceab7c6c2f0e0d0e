package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccrayp/portfolio-api/internal/store"
)

func TestNewServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewServiceError(entityPost, "get", "msg", nil))
	})

	t.Run("store not found maps to entity sentinel", func(t *testing.T) {
		err := NewServiceError(entityTechnology, "get", "msg", fmt.Errorf("wrapped: %w", store.ErrTechnologyNotFound))
		assert.Equal(t, ErrTechnologyNotFound, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("service sentinel passes through", func(t *testing.T) {
		assert.Equal(t, ErrProjectNotFound, NewServiceError(entityProject, "update", "msg", ErrProjectNotFound))
	})

	t.Run("other errors are wrapped once", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewServiceError(entityPost, "create", "failed to save post", cause)

		var svcErr *ServiceError
		assert.ErrorAs(t, err, &svcErr)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "post service create failed: failed to save post: boom", err.Error())

		again := NewServiceError(entityPost, "create", "outer", err)
		assert.Same(t, err, again)
	})
}
