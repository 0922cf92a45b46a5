package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPredicates(t *testing.T) {
	v := Validation("Stock cannot be negative")
	nf := NotFound("Product not found")

	assert.True(t, IsValidation(v))
	assert.False(t, IsNotFound(v))
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))

	assert.Equal(t, "Stock cannot be negative", v.Error())
	assert.Equal(t, "Product not found", nf.Error())
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("delete product: %w", NotFound("Product not found"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
}

func TestOpaqueErrorsMatchNoKind(t *testing.T) {
	err := errors.New("connection refused")
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}
