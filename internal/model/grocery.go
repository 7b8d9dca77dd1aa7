package model

import (
	"context"
	"time"
)

// GroceryStore defines persistence operations for grocery items.
// Every method except Create is scoped by the owning user.
type GroceryStore interface {
	ListByUserID(ctx context.Context, userID int64) ([]GroceryItem, error)
	Create(ctx context.Context, params CreateGroceryItemParams) (GroceryItem, error)
	Update(ctx context.Context, params UpdateGroceryItemParams) (GroceryItem, error)
	Delete(ctx context.Context, userID, id int64) error
}

// GroceryItem represents a stored grocery list row.
type GroceryItem struct {
	ID        int64
	ItemName  string
	Quantity  string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateGroceryItemParams contains parameters to create a grocery item.
type CreateGroceryItemParams struct {
	UserID   int64
	ItemName string
	Quantity string
}

// UpdateGroceryItemParams contains parameters to update a grocery item.
type UpdateGroceryItemParams struct {
	ID       int64
	UserID   int64
	ItemName string
	Quantity string
}
