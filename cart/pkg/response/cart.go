package response

import (
	"github.com/shopspring/decimal"

	productResponse "github.com/arvanshad/bazaar/product/pkg/response"
)

type CartItem struct {
	ID        int64                   `json:"id"`
	ProductID int64                   `json:"productId"`
	Quantity  int32                   `json:"quantity"`
	Product   productResponse.Product `json:"product"`
}

type Cart struct {
	Items []CartItem            `json:"items"`
	Total productResponse.Money `json:"total"`
}

// ComputeTotal derives the cart total from the current lines. The total is
// never stored; callers recompute it on every read.
func (c Cart) ComputeTotal() productResponse.Money {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return productResponse.NewMoney(total)
}
