package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// The insert-or-increment is a single statement so two concurrent adds of the
// same product cannot lose an update.
const upsertCartItem = `
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
RETURNING id
`

type UpsertCartItemParams struct {
	UserID    int64
	ProductID int64
	Quantity  int32
}

func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (int64, error) {
	row := q.db.QueryRow(ctx, upsertCartItem, arg.UserID, arg.ProductID, arg.Quantity)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const findCartItemsByUserId = `
SELECT ci.id,
       ci.user_id,
       ci.product_id,
       ci.quantity,
       p.name         AS product_name,
       p.price        AS product_price,
       p.manufacturer AS product_manufacturer,
       p.image_url    AS product_image_url,
       p.category     AS product_category,
       p.description  AS product_description
FROM cart_items ci
JOIN products p ON ci.product_id = p.id
WHERE ci.user_id = $1
ORDER BY ci.id
`

type FindCartItemsByUserIdRow struct {
	CartItem
	ProductName         string
	ProductPrice        pgtype.Numeric
	ProductManufacturer string
	ProductImageUrl     string
	ProductCategory     string
	ProductDescription  string
}

func (q *Queries) FindCartItemsByUserId(
	ctx context.Context,
	userID int64,
) ([]FindCartItemsByUserIdRow, error) {
	rows, err := q.db.Query(ctx, findCartItemsByUserId, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FindCartItemsByUserIdRow{}
	for rows.Next() {
		var i FindCartItemsByUserIdRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ProductID,
			&i.Quantity,
			&i.ProductName,
			&i.ProductPrice,
			&i.ProductManufacturer,
			&i.ProductImageUrl,
			&i.ProductCategory,
			&i.ProductDescription,
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

const findCartItemById = `
SELECT id, user_id, product_id, quantity, created_at, updated_at
FROM cart_items
WHERE id = $1
`

func (q *Queries) FindCartItemById(ctx context.Context, id int64) (CartItem, error) {
	row := q.db.QueryRow(ctx, findCartItemById, id)
	var i CartItem
	err := row.Scan(&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const updateCartItemQuantity = `
UPDATE cart_items
SET quantity = $2, updated_at = now()
WHERE id = $1
RETURNING user_id
`

type UpdateCartItemQuantityParams struct {
	ID       int64
	Quantity int32
}

// UpdateCartItemQuantity sets the line quantity and reports the owning user,
// so callers can invalidate the right cart cache. pgx.ErrNoRows means the
// line does not exist.
func (q *Queries) UpdateCartItemQuantity(
	ctx context.Context,
	arg UpdateCartItemQuantityParams,
) (int64, error) {
	row := q.db.QueryRow(ctx, updateCartItemQuantity, arg.ID, arg.Quantity)
	var userID int64
	err := row.Scan(&userID)
	return userID, err
}

const deleteCartItemById = `
DELETE FROM cart_items
WHERE id = $1
RETURNING user_id
`

// DeleteCartItemById deletes the line and reports the owning user.
// pgx.ErrNoRows means the line was already absent.
func (q *Queries) DeleteCartItemById(ctx context.Context, id int64) (int64, error) {
	row := q.db.QueryRow(ctx, deleteCartItemById, id)
	var userID int64
	err := row.Scan(&userID)
	return userID, err
}
