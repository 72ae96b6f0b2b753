package request

type Address struct {
	ID        int64  `json:"id"`
	Street    string `json:"street"    validate:"required"`
	City      string `json:"city"      validate:"required"`
	State     string `json:"state"     validate:"required"`
	ZipCode   string `json:"zipCode"   validate:"required"`
	IsDefault bool   `json:"isDefault"`
}

type UpdateProfile struct {
	Name      string    `json:"name"  validate:"required"`
	Phone     string    `json:"phone" validate:"required"`
	Addresses []Address `json:"addresses"`
}
