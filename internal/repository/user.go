package repository

import (
	"context"
)

const insertUser = `
INSERT INTO users (name, phone, password, addresses)
VALUES ($1, $2, $3, $4)
RETURNING id, name, phone, password, addresses, created_at, updated_at
`

type InsertUserParams struct {
	Name      string
	Phone     string
	Password  string
	Addresses []byte
}

func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) (User, error) {
	row := q.db.QueryRow(ctx, insertUser, arg.Name, arg.Phone, arg.Password, arg.Addresses)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Phone,
		&i.Password,
		&i.Addresses,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findUserByPhone = `
SELECT id, name, phone, password, addresses, created_at, updated_at
FROM users
WHERE phone = $1
`

func (q *Queries) FindUserByPhone(ctx context.Context, phone string) (User, error) {
	row := q.db.QueryRow(ctx, findUserByPhone, phone)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Phone,
		&i.Password,
		&i.Addresses,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findUserById = `
SELECT id, name, phone, password, addresses, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) FindUserById(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRow(ctx, findUserById, id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Phone,
		&i.Password,
		&i.Addresses,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateUser = `
UPDATE users
SET name = $2, phone = $3, addresses = $4, updated_at = now()
WHERE id = $1
RETURNING id, name, phone, password, addresses, created_at, updated_at
`

type UpdateUserParams struct {
	ID        int64
	Name      string
	Phone     string
	Addresses []byte
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser, arg.ID, arg.Name, arg.Phone, arg.Addresses)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Phone,
		&i.Password,
		&i.Addresses,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
