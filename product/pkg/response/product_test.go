package response

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyKeepsScaleOnTheWire(t *testing.T) {
	product := Product{ID: 1, Name: "Wireless Mouse", Price: NewMoney(decimal.NewFromInt(10))}

	encoded, err := json.Marshal(product)
	assert.NoError(t, err)
	assert.Contains(t, string(encoded), `"price":"10.00"`)

	decoded := Product{}
	err = json.Unmarshal(encoded, &decoded)
	assert.NoError(t, err)
	assert.True(t, decoded.Price.Equal(product.Price.Decimal))
}
