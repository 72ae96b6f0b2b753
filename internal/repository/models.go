package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID           int64
	Name         string
	Price        pgtype.Numeric
	Manufacturer string
	ImageUrl     string
	Category     string
	Description  string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int32
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type User struct {
	ID        int64
	Name      string
	Phone     string
	Password  string
	Addresses []byte
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
