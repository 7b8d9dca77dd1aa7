package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/grocery-server/internal/model"
)

var _ model.GroceryStore = (*GroceryRepository)(nil)

const groceryColumns = `id, item_name, quantity, user_id, created_at, updated_at`

const (
	queryListGrocery = `SELECT ` + groceryColumns + `
		FROM grocery
		WHERE user_id = $1
		ORDER BY updated_at DESC, created_at DESC`

	queryCreateGrocery = `INSERT INTO grocery (item_name, quantity, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + groceryColumns

	queryUpdateGrocery = `UPDATE grocery
		SET item_name = $1, quantity = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING ` + groceryColumns

	queryDeleteGrocery = `DELETE FROM grocery WHERE id = $1 AND user_id = $2`
)

type GroceryRepository struct {
	db Querier
}

func NewGroceryRepository(db Querier) *GroceryRepository {
	return &GroceryRepository{
		db: db,
	}
}

// ListByUserID returns the user's items, most recently touched first.
func (r *GroceryRepository) ListByUserID(ctx context.Context, userID int64) ([]model.GroceryItem, error) {
	rows, err := r.db.Query(ctx, queryListGrocery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}
	defer rows.Close()

	items := make([]model.GroceryItem, 0)
	for rows.Next() {
		var item model.GroceryItem
		if err := scanGroceryItem(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan grocery item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grocery items: %w", err)
	}

	return items, nil
}

func (r *GroceryRepository) Create(ctx context.Context, params model.CreateGroceryItemParams) (model.GroceryItem, error) {
	var item model.GroceryItem
	err := scanGroceryItem(r.db.QueryRow(ctx, queryCreateGrocery, params.ItemName, params.Quantity, params.UserID), &item)
	if err != nil {
		return model.GroceryItem{}, fmt.Errorf("failed to create grocery item: %w", err)
	}

	return item, nil
}

// Update changes name and quantity of the item matching both id and user.
func (r *GroceryRepository) Update(ctx context.Context, params model.UpdateGroceryItemParams) (model.GroceryItem, error) {
	var item model.GroceryItem
	err := scanGroceryItem(r.db.QueryRow(ctx, queryUpdateGrocery, params.ItemName, params.Quantity, params.ID, params.UserID), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GroceryItem{}, model.ErrNotFound
		}
		return model.GroceryItem{}, fmt.Errorf("failed to update grocery item: %w", err)
	}

	return item, nil
}

// Delete removes the item matching both id and user.
func (r *GroceryRepository) Delete(ctx context.Context, userID, id int64) error {
	cmd, err := r.db.Exec(ctx, queryDeleteGrocery, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete grocery item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanGroceryItem(row pgx.Row, item *model.GroceryItem) error {
	return row.Scan(
		&item.ID, &item.ItemName, &item.Quantity, &item.UserID,
		&item.CreatedAt, &item.UpdatedAt,
	)
}
