package response

type Auth struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

type Address struct {
	ID        int64  `json:"id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Addresses []Address `json:"addresses"`
}
