package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/arvanshad/bazaar/cart/pkg/request"
	inErrors "github.com/arvanshad/bazaar/internal/errors"
)

func testContext() context.Context {
	c := context.Background()
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(c)
}

func TestAddCartItemMergesDuplicateProduct(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	firstId, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 1,
		Quantity:  2,
	})
	assert.NoError(t, err, "first add should succeed")

	secondId, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 1,
		Quantity:  3,
	})
	assert.NoError(t, err, "second add should succeed")
	assert.Equal(t, firstId, secondId, "adding the same product should reuse the existing line")

	cart, err := cartService.FindCart(c, 1)
	assert.NoError(t, err, "finding cart should succeed")
	assert.Len(t, cart.Items, 1, "duplicate adds should merge into one line")
	assert.EqualValues(t, 5, cart.Items[0].Quantity, "quantities should be summed")
	assert.EqualValues(t, 1, cart.Items[0].ProductID)
	assert.Equal(t, "Wireless Mouse", cart.Items[0].Product.Name)
	assert.Equal(t, "50.00", cart.Total.StringFixed(2), "total should be price times merged quantity")
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	_, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 999,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound, "unknown product should be rejected")

	cart, err := cartService.FindCart(c, 1)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items, "failed add should leave the cart empty")
}

func TestAddCartItemRejectsNonPositiveQuantity(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	_, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 1,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, inErrors.ErrInvalidQuantity)

	_, err = cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 1,
		Quantity:  -3,
	})
	assert.ErrorIs(t, err, inErrors.ErrInvalidQuantity)
}

func TestUpdateCartItemSetsQuantity(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	id, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 2,
		Quantity:  4,
	})
	assert.NoError(t, err)

	err = cartService.UpdateCartItem(c, id, request.UpdateCartItem{Quantity: 1})
	assert.NoError(t, err, "update should succeed")

	cart, err := cartService.FindCart(c, 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.EqualValues(t, 1, cart.Items[0].Quantity, "update should set, not increment")
	assert.Equal(t, "55.50", cart.Total.StringFixed(2))
}

func TestUpdateCartItemRejectsNonPositiveQuantity(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	id, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 1,
		Quantity:  2,
	})
	assert.NoError(t, err)

	err = cartService.UpdateCartItem(c, id, request.UpdateCartItem{Quantity: 0})
	assert.ErrorIs(t, err, inErrors.ErrInvalidQuantity)

	cart, err := cartService.FindCart(c, 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.EqualValues(t, 2, cart.Items[0].Quantity, "rejected update should leave the line unchanged")
}

func TestUpdateCartItemUnknownLine(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	err := cartService.UpdateCartItem(c, 12345, request.UpdateCartItem{Quantity: 1})
	assert.ErrorIs(t, err, inErrors.ErrCartItemNotFound)
}

func TestRemoveCartItemIsIdempotent(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	id, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 3,
		Quantity:  1,
	})
	assert.NoError(t, err)

	err = cartService.RemoveCartItem(c, id)
	assert.NoError(t, err, "first remove should succeed")

	err = cartService.RemoveCartItem(c, id)
	assert.NoError(t, err, "removing an absent line should still succeed")

	cart, err := cartService.FindCart(c, 1)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0.00", cart.Total.StringFixed(2))
}

func TestFindCartIsScopedPerUser(t *testing.T) {
	c := testContext()
	redis, pool, pgContainer, redisContainer, _, cartService := setup(t)(
		c,
		filepath.Join("testdata", "products.seed.sql"),
	)
	defer teardown(t)(redis, pool, pgContainer, redisContainer)

	_, err := cartService.AddCartItem(c, request.AddCartItem{
		UserID:    1,
		ProductID: 1,
		Quantity:  1,
	})
	assert.NoError(t, err)

	_, err = cartService.AddCartItem(c, request.AddCartItem{
		UserID:    2,
		ProductID: 2,
		Quantity:  1,
	})
	assert.NoError(t, err)

	first, err := cartService.FindCart(c, 1)
	assert.NoError(t, err)
	assert.Len(t, first.Items, 1)
	assert.EqualValues(t, 1, first.Items[0].ProductID)

	second, err := cartService.FindCart(c, 2)
	assert.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.EqualValues(t, 2, second.Items[0].ProductID)
}
