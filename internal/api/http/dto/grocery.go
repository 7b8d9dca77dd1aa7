package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/model"
)

// ErrInvalidQuantity is returned when quantity is neither a string nor a number.
var ErrInvalidQuantity = errors.New("quantity must be a string or a number")

// Quantity is a free-form amount. It accepts a JSON string or number and
// keeps the value as text. Null and numeric zero count as missing.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*q = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidQuantity
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil && f == 0 {
		*q = ""
		return nil
	}
	*q = Quantity(n.String())
	return nil
}

// GroceryItemRequest is the body of the create and update endpoints.
type GroceryItemRequest struct {
	ItemName string   `json:"item_name" example:"Milk"`
	Quantity Quantity `json:"quantity" swaggertype:"string" example:"2"`
}

// Validate reports a validation error when either field is empty.
func (r GroceryItemRequest) Validate() error {
	if r.ItemName == "" || r.Quantity == "" {
		return apierrors.NewErrMissingGroceryFields()
	}
	return nil
}

// GroceryItemResponse is the public view of a grocery row.
type GroceryItemResponse struct {
	ID        int64     `json:"id" example:"1"`
	ItemName  string    `json:"item_name" example:"Milk"`
	Quantity  string    `json:"quantity" example:"2"`
	UserID    int64     `json:"user_id" example:"1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGroceryItemResponse(item model.GroceryItem) GroceryItemResponse {
	return GroceryItemResponse{
		ID:        item.ID,
		ItemName:  item.ItemName,
		Quantity:  item.Quantity,
		UserID:    item.UserID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// NewGroceryListResponse converts items, always producing a non-nil slice.
func NewGroceryListResponse(items []model.GroceryItem) []GroceryItemResponse {
	resp := make([]GroceryItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, NewGroceryItemResponse(item))
	}
	return resp
}

// ExportResponse carries the object key of an uploaded list export.
type ExportResponse struct {
	Key string `json:"key" example:"exports/1/3f1c2a9e-8d7b-4f0e-9a51-2b6c7d8e9f00.json"`
}
