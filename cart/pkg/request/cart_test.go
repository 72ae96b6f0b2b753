package request

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestAddCartItemValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	c := context.Background()

	assert.NoError(t, validate.StructCtx(c, AddCartItem{ProductID: 1, Quantity: 2, UserID: 1}))
	assert.NoError(t, validate.StructCtx(c, AddCartItem{ProductID: 1, Quantity: 2}), "guest cart uses the zero user id")

	assert.Error(t, validate.StructCtx(c, AddCartItem{Quantity: 2}), "product id is required")
	assert.Error(t, validate.StructCtx(c, AddCartItem{ProductID: 1}), "quantity is required")
	assert.Error(t, validate.StructCtx(c, AddCartItem{ProductID: 1, Quantity: -1}), "quantity must be positive")
	assert.Error(t, validate.StructCtx(c, AddCartItem{ProductID: -1, Quantity: 1}), "product id must be positive")
	assert.Error(t, validate.StructCtx(c, AddCartItem{ProductID: 1, Quantity: 1, UserID: -5}), "user id cannot be negative")
}

func TestUpdateCartItemValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	c := context.Background()

	assert.NoError(t, validate.StructCtx(c, UpdateCartItem{Quantity: 3}))
	assert.Error(t, validate.StructCtx(c, UpdateCartItem{}), "quantity is required")
	assert.Error(t, validate.StructCtx(c, UpdateCartItem{Quantity: -2}), "quantity must be positive")
}
