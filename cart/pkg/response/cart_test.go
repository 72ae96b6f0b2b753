package response

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	productResponse "github.com/arvanshad/bazaar/product/pkg/response"
)

func TestComputeTotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{
				ProductID: 1,
				Quantity:  2,
				Product: productResponse.Product{
					ID:    1,
					Price: productResponse.NewMoney(decimal.RequireFromString("10.00")),
				},
			},
			{
				ProductID: 2,
				Quantity:  3,
				Product: productResponse.Product{
					ID:    2,
					Price: productResponse.NewMoney(decimal.RequireFromString("55.50")),
				},
			},
		},
	}

	assert.Equal(t, "186.50", cart.ComputeTotal().StringFixed(2))
}

func TestComputeTotalEmptyCart(t *testing.T) {
	cart := Cart{}
	assert.True(t, cart.ComputeTotal().IsZero())
}

func TestCartTotalMarshalsWithTwoDecimalPlaces(t *testing.T) {
	cart := Cart{Items: []CartItem{}}
	cart.Total = productResponse.NewMoney(decimal.RequireFromString("186.5"))

	encoded, err := json.Marshal(cart)
	assert.NoError(t, err)
	assert.Contains(t, string(encoded), `"total":"186.50"`)
}
