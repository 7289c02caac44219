package catalog

import (
	"encoding/json"
	"net/http"

	"fishparque/internal/domain"

	"go.uber.org/zap"
)

type Controller struct {
	catalog Catalog
	logger  *zap.Logger
}

func NewController(catalog Catalog, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

type listProductsResponse struct {
	Success  bool                      `json:"success"`
	Products map[string]domain.Product `json:"products"`
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	response := listProductsResponse{
		Success:  true,
		Products: c.catalog,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
