package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/logger"
	"github.com/dtroode/grocery-server/internal/model"
)

// ErrExportDisabled is returned by Export when no object storage is configured.
var ErrExportDisabled = errors.New("export storage is not configured")

const exportContentType = "application/json"

// Grocery manages grocery items owned by a single user per call.
type Grocery struct {
	groceryStore model.GroceryStore
	storage      model.Storage
	logger       *logger.Logger
	now          func() time.Time
}

// NewGrocery creates a grocery service. storage may be nil, which disables Export.
func NewGrocery(groceryStore model.GroceryStore, storage model.Storage, logger *logger.Logger) *Grocery {
	return &Grocery{
		groceryStore: groceryStore,
		storage:      storage,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Grocery) List(ctx context.Context, userID int64) ([]model.GroceryItem, error) {
	s.logger.Debug("Grocery service: listing items",
		"user_id", userID)

	items, err := s.groceryStore.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Grocery service: failed to list items",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}

	if items == nil {
		items = []model.GroceryItem{}
	}

	return items, nil
}

func (s *Grocery) Create(ctx context.Context, params model.CreateGroceryItemParams) (model.GroceryItem, error) {
	s.logger.Debug("Grocery service: creating item",
		"user_id", params.UserID,
		"item_name", params.ItemName)

	if err := validateGroceryFields(params.ItemName, params.Quantity); err != nil {
		return model.GroceryItem{}, err
	}

	item, err := s.groceryStore.Create(ctx, params)
	if err != nil {
		s.logger.Error("Grocery service: failed to create item",
			"user_id", params.UserID,
			"error", err.Error())
		return model.GroceryItem{}, fmt.Errorf("failed to create grocery item: %w", err)
	}

	s.logger.Info("Grocery service: item created",
		"user_id", params.UserID,
		"item_id", item.ID)

	return item, nil
}

func (s *Grocery) Update(ctx context.Context, params model.UpdateGroceryItemParams) (model.GroceryItem, error) {
	s.logger.Debug("Grocery service: updating item",
		"user_id", params.UserID,
		"item_id", params.ID)

	if err := validateGroceryFields(params.ItemName, params.Quantity); err != nil {
		return model.GroceryItem{}, err
	}

	item, err := s.groceryStore.Update(ctx, params)
	if errors.Is(err, model.ErrNotFound) {
		return model.GroceryItem{}, apierrors.NewErrGroceryItemNotFound()
	}
	if err != nil {
		s.logger.Error("Grocery service: failed to update item",
			"user_id", params.UserID,
			"item_id", params.ID,
			"error", err.Error())
		return model.GroceryItem{}, fmt.Errorf("failed to update grocery item: %w", err)
	}

	s.logger.Info("Grocery service: item updated",
		"user_id", params.UserID,
		"item_id", item.ID)

	return item, nil
}

func (s *Grocery) Delete(ctx context.Context, userID, id int64) error {
	s.logger.Debug("Grocery service: deleting item",
		"user_id", userID,
		"item_id", id)

	err := s.groceryStore.Delete(ctx, userID, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrGroceryItemNotFound()
	}
	if err != nil {
		s.logger.Error("Grocery service: failed to delete item",
			"user_id", userID,
			"item_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete grocery item: %w", err)
	}

	s.logger.Info("Grocery service: item deleted",
		"user_id", userID,
		"item_id", id)

	return nil
}

type exportedItem struct {
	ID        int64     `json:"id"`
	ItemName  string    `json:"item_name"`
	Quantity  string    `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type exportDocument struct {
	UserID     int64          `json:"user_id"`
	ExportedAt time.Time      `json:"exported_at"`
	Items      []exportedItem `json:"items"`
}

// Export uploads a JSON snapshot of the user's list and returns its object key.
func (s *Grocery) Export(ctx context.Context, userID int64) (string, error) {
	s.logger.Debug("Grocery service: exporting list",
		"user_id", userID)

	if s.storage == nil {
		return "", ErrExportDisabled
	}

	items, err := s.List(ctx, userID)
	if err != nil {
		return "", err
	}

	doc := exportDocument{
		UserID:     userID,
		ExportedAt: s.now().UTC(),
		Items:      make([]exportedItem, 0, len(items)),
	}
	for _, item := range items {
		doc.Items = append(doc.Items, exportedItem{
			ID:        item.ID,
			ItemName:  item.ItemName,
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	key := exportKey(userID)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), exportContentType); err != nil {
		s.logger.Error("Grocery service: failed to upload export",
			"user_id", userID,
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.Info("Grocery service: list exported",
		"user_id", userID,
		"key", key,
		"items", len(items))

	return key, nil
}

func exportKey(userID int64) string {
	return fmt.Sprintf("exports/%d/%s.json", userID, uuid.NewString())
}

func validateGroceryFields(itemName, quantity string) error {
	if itemName == "" || quantity == "" {
		return apierrors.NewErrMissingGroceryFields()
	}
	return nil
}
