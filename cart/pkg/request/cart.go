package request

type AddCartItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int32 `json:"quantity"   validate:"required,gt=0"`
	UserID    int64 `json:"user_id"    validate:"gte=0"`
}

type UpdateCartItem struct {
	Quantity int32 `json:"quantity" validate:"required,gt=0"`
}
