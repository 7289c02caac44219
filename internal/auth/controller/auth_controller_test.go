package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fishparque/internal/dto"
	apperrors "fishparque/internal/errors"
)

type mockAuthService struct {
	RegisterFunc func(ctx context.Context, req dto.RegisterRequest) (string, error)
	LoginFunc    func(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
}

func (m *mockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return "Registration successful! Please login.", nil
}

func (m *mockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, apperrors.NewUnauthorizedError("Invalid email or password")
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		registerFunc    func(ctx context.Context, req dto.RegisterRequest) (string, error)
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"name":"John Doe","email":"john@example.com","password":"hunter22","phone":"08012345678","address":"12 Pond Lane"}`,
			registerFunc: func(ctx context.Context, req dto.RegisterRequest) (string, error) {
				return "Registration successful! Please login.", nil
			},
			expectedSuccess: true,
			expectedMessage: "Registration successful! Please login.",
		},
		{
			name:            "missing fields rejected before the service",
			body:            `{"email":"john@example.com"}`,
			registerFunc:    nil,
			expectedSuccess: false,
			expectedMessage: "All fields are required",
		},
		{
			name:            "malformed JSON",
			body:            `{"name":`,
			registerFunc:    nil,
			expectedSuccess: false,
			expectedMessage: "All fields are required",
		},
		{
			name: "duplicate email",
			body: `{"name":"John Doe","email":"john@example.com","password":"hunter22","phone":"08012345678","address":"12 Pond Lane"}`,
			registerFunc: func(ctx context.Context, req dto.RegisterRequest) (string, error) {
				return "", apperrors.NewConflictError("Email already registered")
			},
			expectedSuccess: false,
			expectedMessage: "Email already registered",
		},
		{
			name: "storage failure gets generic message",
			body: `{"name":"John Doe","email":"john@example.com","password":"hunter22","phone":"08012345678","address":"12 Pond Lane"}`,
			registerFunc: func(ctx context.Context, req dto.RegisterRequest) (string, error) {
				return "", apperrors.NewStorageError("writing users document", nil)
			},
			expectedSuccess: false,
			expectedMessage: "Registration failed. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(&mockAuthService{RegisterFunc: tt.registerFunc}, zap.NewNop())

			rec, body := postJSON(t, ctrl.HandleRegister, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedSuccess, body["success"])
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}

func TestHandleLogin_Success(t *testing.T) {
	svc := &mockAuthService{
		LoginFunc: func(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
			return &dto.LoginResult{
				User: dto.UserProfile{
					Name:    "John Doe",
					Email:   req.Email,
					Phone:   "08012345678",
					Address: "12 Pond Lane",
				},
				Token: "deadbeef",
			}, nil
		},
	}
	ctrl := NewAuthController(svc, zap.NewNop())

	rec, body := postJSON(t, ctrl.HandleLogin, `{"email":"john@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful!", body["message"])
	assert.Equal(t, "deadbeef", body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "John Doe", user["name"])
	assert.Equal(t, "john@example.com", user["email"])

	// The projection never carries the password hash.
	_, ok = user["password"]
	assert.False(t, ok)
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	ctrl := NewAuthController(&mockAuthService{}, zap.NewNop())

	rec, body := postJSON(t, ctrl.HandleLogin, `{"email":"john@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestHandleLogin_ServiceFailure(t *testing.T) {
	svc := &mockAuthService{
		LoginFunc: func(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
			return nil, apperrors.NewStorageError("reading users document", nil)
		},
	}
	ctrl := NewAuthController(svc, zap.NewNop())

	_, body := postJSON(t, ctrl.HandleLogin, `{"email":"john@example.com","password":"hunter22"}`)

	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Login failed. Please try again.", body["message"])
}
