package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/grocery-server/internal/api/http/dto"
	"github.com/dtroode/grocery-server/internal/mocks"
)

func TestHealth_Root(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHealth(mocks.NewPinger(t)).Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Grocery List API is running 🚀", rec.Body.String())
}

func TestHealth_Probes(t *testing.T) {
	t.Parallel()

	h := NewHealth(mocks.NewPinger(t))

	for path, probe := range map[string]http.HandlerFunc{
		"ok":    h.HealthCheck,
		"alive": h.LivenessCheck,
	} {
		rec := httptest.NewRecorder()
		probe(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, path, resp.Status)
	}
}

func TestHealth_ReadinessCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{name: "ready", wantStatus: http.StatusOK, wantState: "ready"},
		{name: "degraded", pingErr: errors.New("no route"), wantStatus: http.StatusServiceUnavailable, wantState: "degraded"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := mocks.NewPinger(t)
			p.On("Ping", mock.Anything).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			NewHealth(p).ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			var resp dto.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantState, resp.Status)
		})
	}
}
