package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := Wrap("load product", ErrNotFound)

	assert.Equal(t, "load product: not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	// обёртки складываются цепочкой
	outer := Wrap("usecase", err)
	assert.Equal(t, "usecase: load product: not found", outer.Error())
	assert.ErrorIs(t, outer, ErrNotFound)
}

func TestValidationError(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		v := NewValidationError()
		assert.NoError(t, v.OrNil())
	})

	t.Run("accumulates fields", func(t *testing.T) {
		v := NewValidationError()
		v.Addf("name", "name is required")
		v.Addf("price", "price must be at least %d", 0)

		err := v.OrNil()
		require.Error(t, err)

		var got *ValidationError
		require.True(t, errors.As(err, &got))
		assert.Equal(t, "name is required", got.Fields["name"])
		assert.Equal(t, "price must be at least 0", got.Fields["price"])
	})
}
