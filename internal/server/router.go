package server

import (
	"encoding/json"
	"net/http"

	"fishparque/internal/admin"
	authcontroller "fishparque/internal/auth/controller"
	"fishparque/internal/catalog"
	ordercontroller "fishparque/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Auth     *authcontroller.AuthController
	Orders   *ordercontroller.OrderController
	Catalog  *catalog.Controller
	Admin    *admin.Controller
	AdminKey string
	Logger   *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Key"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth(deps.Logger))
		r.Get("/products", deps.Catalog.HandleListProducts)

		r.Post("/register", deps.Auth.HandleRegister)
		r.Post("/login", deps.Auth.HandleLogin)

		r.Post("/order", deps.Orders.HandlePlaceOrder)
		r.Get("/orders/{email}", deps.Orders.HandleListCustomerOrders)

		r.Route("/admin", func(r chi.Router) {
			r.Use(admin.RequireKey(deps.AdminKey, deps.Logger))
			r.Get("/orders", deps.Admin.HandleListOrders)
			r.Get("/users", deps.Admin.HandleListUsers)
		})
	})

	return r
}

func handleHealth(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"message": "Fish Parque API is running",
		}); err != nil {
			logger.Error("failed to encode response", zap.Error(err))
		}
	}
}
