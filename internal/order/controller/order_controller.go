package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"fishparque/internal/domain"
	"fishparque/internal/dto"
	apperrors "fishparque/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.Order, error)
}

type OrderController struct {
	service  OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewOrderController(service OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type placeOrderResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderNumber string `json:"orderNumber"`
}

type listOrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []domain.Order `json:"orders"`
}

func (c *OrderController) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "Invalid order data"})
		return
	}

	if err := c.validate.Struct(req); err != nil {
		logger.Warn("order validation failed", zap.Error(err))
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "Invalid order data"})
		return
	}

	result, err := c.service.PlaceOrder(r.Context(), req)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: ve.Message})
			return
		}
		logger.Error("placing order failed", zap.Error(err))
		c.writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "Order failed. Please try again."})
		return
	}

	c.writeJSON(w, http.StatusOK, placeOrderResponse{
		Success:     true,
		Message:     result.Message,
		OrderNumber: result.OrderNumber,
	})
}

func (c *OrderController) HandleListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	orders, err := c.service.ListByCustomer(r.Context(), email)
	if err != nil {
		c.logger.Error("listing customer orders failed", zap.String("email", email), zap.Error(err))
		c.writeJSON(w, http.StatusOK, listOrdersResponse{Success: false, Orders: []domain.Order{}})
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	c.writeJSON(w, http.StatusOK, listOrdersResponse{Success: true, Orders: orders})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
