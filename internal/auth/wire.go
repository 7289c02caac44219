package auth

import (
	"fishparque/internal/auth/controller"
	"fishparque/internal/auth/service"

	"go.uber.org/zap"
)

func NewModule(users service.UserRepository, logger *zap.Logger) *controller.AuthController {
	authSvc := service.NewAuthService(users, logger)
	return controller.NewAuthController(authSvc, logger)
}
