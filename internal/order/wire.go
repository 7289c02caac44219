package order

import (
	"fishparque/internal/order/controller"
	"fishparque/internal/order/service"

	"go.uber.org/zap"
)

func NewModule(orders service.OrderRepository, sink service.NotificationSink, logger *zap.Logger) *controller.OrderController {
	orderSvc := service.NewOrderService(orders, sink, logger)
	return controller.NewOrderController(orderSvc, logger)
}
