package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/model"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    Quantity
		wantErr bool
	}{
		{name: "string", body: `{"quantity":"2 bottles"}`, want: "2 bottles"},
		{name: "integer", body: `{"quantity":3}`, want: "3"},
		{name: "decimal", body: `{"quantity":1.5}`, want: "1.5"},
		{name: "zero counts as missing", body: `{"quantity":0}`, want: ""},
		{name: "null counts as missing", body: `{"quantity":null}`, want: ""},
		{name: "empty string", body: `{"quantity":""}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "bool rejected", body: `{"quantity":true}`, wantErr: true},
		{name: "object rejected", body: `{"quantity":{"n":1}}`, wantErr: true},
		{name: "array rejected", body: `{"quantity":[1]}`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req GroceryItemRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Quantity)
		})
	}
}

func TestGroceryItemRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, GroceryItemRequest{ItemName: "Milk", Quantity: "2"}.Validate())

	for _, req := range []GroceryItemRequest{
		{Quantity: "2"},
		{ItemName: "Milk"},
		{},
	} {
		err := req.Validate()
		apiErr, ok := apierrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apierrors.CodeValidation, apiErr.Code)
		assert.Equal(t, "Item name and quantity are required", apiErr.Message)
	}
}

func TestCredentialsRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CredentialsRequest{Username: "alice", Password: "pw"}.Validate())

	err := CredentialsRequest{Username: "alice"}.Validate()
	apiErr, ok := apierrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Username and password are required", apiErr.Message)
}

func TestGroceryItemResponse_JSON(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := NewGroceryItemResponse(model.GroceryItem{
		ID: 1, ItemName: "Milk", Quantity: "2", UserID: 1, CreatedAt: ts, UpdatedAt: ts,
	})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"item_name": "Milk",
		"quantity": "2",
		"user_id": 1,
		"created_at": "2024-01-02T03:04:05Z",
		"updated_at": "2024-01-02T03:04:05Z"
	}`, string(data))
}

func TestNewGroceryListResponse_Empty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewGroceryListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
