package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"fishparque/internal/dto"
	apperrors "fishparque/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
}

type AuthController struct {
	service  AuthService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAuthController(service AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    dto.UserProfile `json:"user"`
	Token   string          `json:"token"`
}

func (c *AuthController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "All fields are required"})
		return
	}

	if err := c.validate.Struct(req); err != nil {
		logger.Warn("register validation failed", zap.Error(err))
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "All fields are required"})
		return
	}

	message, err := c.service.Register(r.Context(), req)
	if err != nil {
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: registerErrorMessage(err, logger)})
		return
	}

	c.writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: message})
}

func (c *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "Login failed. Please try again."})
		return
	}

	result, err := c.service.Login(r.Context(), req)
	if err != nil {
		if ue, ok := apperrors.IsUnauthorizedError(err); ok {
			c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: ue.Message})
			return
		}
		logger.Error("login failed", zap.Error(err))
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "Login failed. Please try again."})
		return
	}

	c.writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful!",
		User:    result.User,
		Token:   result.Token,
	})
}

func registerErrorMessage(err error, logger *zap.Logger) string {
	if ve, ok := apperrors.IsValidationError(err); ok {
		return ve.Message
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		return ce.Message
	}
	logger.Error("registration failed", zap.Error(err))
	return "Registration failed. Please try again."
}

func (c *AuthController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
