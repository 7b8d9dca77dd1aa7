package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/grocery-server/internal/api/http/dto"
	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/logger"
	"github.com/dtroode/grocery-server/internal/model"
)

// GroceryService defines business operations on a user's grocery list.
type GroceryService interface {
	List(ctx context.Context, userID int64) ([]model.GroceryItem, error)
	Create(ctx context.Context, params model.CreateGroceryItemParams) (model.GroceryItem, error)
	Update(ctx context.Context, params model.UpdateGroceryItemParams) (model.GroceryItem, error)
	Delete(ctx context.Context, userID, id int64) error
	Export(ctx context.Context, userID int64) (string, error)
}

// Grocery handles the authenticated grocery list endpoints.
type Grocery struct {
	groceryService GroceryService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewGrocery creates a new Grocery handler.
func NewGrocery(groceryService GroceryService, contextManager model.ContextManager, logger *logger.Logger) *Grocery {
	return &Grocery{
		groceryService: groceryService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns the caller's items, most recently updated first.
// @Summary List grocery items
// @Tags grocery
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.GroceryItemResponse
// @Failure 401 {string} string "Authorization token required"
// @Failure 403 {string} string "Invalid or expired token"
// @Failure 500 {string} string "Server error"
// @Router /grocery [get]
func (h *Grocery) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	items, err := h.groceryService.List(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewGroceryListResponse(items))
}

// Create adds an item to the caller's list.
// @Summary Create a grocery item
// @Tags grocery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GroceryItemRequest true "Item"
// @Success 201 {object} dto.GroceryItemResponse
// @Failure 400 {string} string "Item name and quantity are required"
// @Failure 401 {string} string "Authorization token required"
// @Failure 403 {string} string "Invalid or expired token"
// @Failure 500 {string} string "Server error"
// @Router /grocery [post]
func (h *Grocery) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	var req dto.GroceryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.groceryService.Create(r.Context(), model.CreateGroceryItemParams{
		UserID:   userID,
		ItemName: req.ItemName,
		Quantity: string(req.Quantity),
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewGroceryItemResponse(item))
}

// Update replaces name and quantity of one of the caller's items.
// @Summary Update a grocery item
// @Tags grocery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body dto.GroceryItemRequest true "Item"
// @Success 200 {object} dto.GroceryItemResponse
// @Failure 400 {string} string "Item name and quantity are required"
// @Failure 401 {string} string "Authorization token required"
// @Failure 403 {string} string "Invalid or expired token"
// @Failure 404 {string} string "Grocery item not found"
// @Failure 500 {string} string "Server error"
// @Router /grocery/{id} [put]
func (h *Grocery) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	var req dto.GroceryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id, err := itemIDFromRequest(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.groceryService.Update(r.Context(), model.UpdateGroceryItemParams{
		ID:       id,
		UserID:   userID,
		ItemName: req.ItemName,
		Quantity: string(req.Quantity),
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewGroceryItemResponse(item))
}

// Delete removes one of the caller's items.
// @Summary Delete a grocery item
// @Tags grocery
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204
// @Failure 401 {string} string "Authorization token required"
// @Failure 403 {string} string "Invalid or expired token"
// @Failure 404 {string} string "Grocery item not found"
// @Failure 500 {string} string "Server error"
// @Router /grocery/{id} [delete]
func (h *Grocery) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	id, err := itemIDFromRequest(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.groceryService.Delete(r.Context(), userID, id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export uploads a snapshot of the caller's list to object storage.
// @Summary Export the grocery list
// @Tags grocery
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.ExportResponse
// @Failure 401 {string} string "Authorization token required"
// @Failure 403 {string} string "Invalid or expired token"
// @Failure 500 {string} string "Server error"
// @Router /grocery/export [post]
func (h *Grocery) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	key, err := h.groceryService.Export(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExportResponse{Key: key})
}

// A non-integer id cannot name any row.
func itemIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apierrors.NewErrGroceryItemNotFound()
	}
	return id, nil
}
