package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/mocks"
	"github.com/dtroode/grocery-server/internal/model"
	"github.com/dtroode/grocery-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.AuthService)
		wantStatus int
		wantBody   string
		wantJSON   bool
	}{
		{
			name: "created",
			body: `{"username":"alice","password":"pw123"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "alice", "pw123").
					Return(model.User{ID: 1, Username: "alice", PasswordHash: "hash"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":1,"username":"alice"}`,
			wantJSON:   true,
		},
		{
			name:       "missing password",
			body:       `{"username":"alice"}`,
			setup:      func(svc *mocks.AuthService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Username and password are required",
		},
		{
			name:       "empty body",
			body:       ``,
			setup:      func(svc *mocks.AuthService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Username and password are required",
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			setup:      func(svc *mocks.AuthService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid request body",
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","password":"pw123"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "alice", "pw123").
					Return(model.User{}, errors.New("failed to create user: duplicate key"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			tt.setup(svc)
			h := NewAuth(svc, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantJSON {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.AuthService)
		wantStatus int
		wantBody   string
		wantJSON   bool
	}{
		{
			name: "ok",
			body: `{"username":"alice","password":"pw123"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Login", mock.Anything, "alice", "pw123").Return("jwt-token", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"token":"jwt-token"}`,
			wantJSON:   true,
		},
		{
			name:       "missing username",
			body:       `{"password":"pw123"}`,
			setup:      func(svc *mocks.AuthService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Username and password are required",
		},
		{
			name: "invalid credentials",
			body: `{"username":"alice","password":"bad"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Login", mock.Anything, "alice", "bad").Return("", apierrors.NewErrInvalidCredentials())
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid credentials",
		},
		{
			name: "store failure",
			body: `{"username":"alice","password":"pw123"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Login", mock.Anything, "alice", "pw123").Return("", errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			tt.setup(svc)
			h := NewAuth(svc, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantJSON {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
