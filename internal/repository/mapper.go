package repository

import (
	"github.com/shopspring/decimal"

	cartResponse "github.com/arvanshad/bazaar/cart/pkg/response"
	productResponse "github.com/arvanshad/bazaar/product/pkg/response"
)

func (p Product) Response() productResponse.Product {
	return productResponse.Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        productResponse.NewMoney(decimal.NewFromBigInt(p.Price.Int, p.Price.Exp)),
		Manufacturer: p.Manufacturer,
		ImageUrl:     p.ImageUrl,
		Category:     p.Category,
		Description:  p.Description,
	}
}

func (r FindCartItemsByUserIdRow) Response() cartResponse.CartItem {
	return cartResponse.CartItem{
		ID:        r.ID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Product: productResponse.Product{
			ID:           r.ProductID,
			Name:         r.ProductName,
			Price:        productResponse.NewMoney(decimal.NewFromBigInt(r.ProductPrice.Int, r.ProductPrice.Exp)),
			Manufacturer: r.ProductManufacturer,
			ImageUrl:     r.ProductImageUrl,
			Category:     r.ProductCategory,
			Description:  r.ProductDescription,
		},
	}
}
