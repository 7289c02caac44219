package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"fishparque/internal/domain"
	"fishparque/internal/dto"

	"go.uber.org/zap"
)

type OrderLister interface {
	All(ctx context.Context) ([]domain.Order, error)
}

type UserLister interface {
	All(ctx context.Context) ([]domain.User, error)
}

// Controller serves the admin listing endpoints. Authorization is handled by
// the RequireKey middleware; handlers here assume the caller already passed.
type Controller struct {
	orders OrderLister
	users  UserLister
	logger *zap.Logger
}

func NewController(orders OrderLister, users UserLister, logger *zap.Logger) *Controller {
	return &Controller{
		orders: orders,
		users:  users,
		logger: logger,
	}
}

type listOrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []domain.Order `json:"orders"`
}

type listUsersResponse struct {
	Success bool            `json:"success"`
	Users   []dto.AdminUser `json:"users"`
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.All(r.Context())
	if err != nil {
		c.logger.Error("listing all orders failed", zap.Error(err))
		c.writeJSON(w, http.StatusOK, listOrdersResponse{Success: false, Orders: []domain.Order{}})
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	c.writeJSON(w, http.StatusOK, listOrdersResponse{Success: true, Orders: orders})
}

func (c *Controller) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		c.logger.Error("listing all users failed", zap.Error(err))
		c.writeJSON(w, http.StatusOK, listUsersResponse{Success: false, Users: []dto.AdminUser{}})
		return
	}

	// Password hashes stay out of admin responses too.
	sanitized := make([]dto.AdminUser, len(users))
	for i, u := range users {
		sanitized[i] = dto.AdminUser{
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Address:   u.Address,
			CreatedAt: u.CreatedAt,
		}
	}

	c.writeJSON(w, http.StatusOK, listUsersResponse{Success: true, Users: sanitized})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
