package repository

import (
	"context"
)

const findProducts = `
SELECT id, name, price, manufacturer, image_url, category, description, created_at, updated_at
FROM products
ORDER BY id
`

func (q *Queries) FindProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Price,
			&i.Manufacturer,
			&i.ImageUrl,
			&i.Category,
			&i.Description,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findProductsByCategory = `
SELECT id, name, price, manufacturer, image_url, category, description, created_at, updated_at
FROM products
WHERE category = $1
ORDER BY id
`

func (q *Queries) FindProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProductsByCategory, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Price,
			&i.Manufacturer,
			&i.ImageUrl,
			&i.Category,
			&i.Description,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findProductById = `
SELECT id, name, price, manufacturer, image_url, category, description, created_at, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) FindProductById(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, findProductById, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Price,
		&i.Manufacturer,
		&i.ImageUrl,
		&i.Category,
		&i.Description,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
