package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"fishparque/internal/domain"
	"fishparque/internal/dto"
	apperrors "fishparque/internal/errors"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Append(ctx context.Context, order *domain.Order) error
	FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error)
	All(ctx context.Context) ([]domain.Order, error)
}

// NotificationSink receives a best-effort copy of each placed order. Failures
// never affect the order outcome.
type NotificationSink interface {
	Notify(ctx context.Context, order *domain.Order) error
}

type OrderService struct {
	orders OrderRepository
	sink   NotificationSink
	logger *zap.Logger
	now    func() time.Time
	gen    orderNumberGenerator
}

func NewOrderService(orders OrderRepository, sink NotificationSink, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// orderNumberGenerator issues numbers of the form FP<unix-millis><suffix>
// where suffix is a random integer below 1000. Suffixes already handed out
// within the current millisecond are skipped, so numbers from one process
// never collide no matter how fast orders arrive. Collisions across process
// restarts remain theoretically possible and are not detected.
type orderNumberGenerator struct {
	mu     sync.Mutex
	lastMs int64
	used   map[int]struct{}
}

func (g *orderNumberGenerator) next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Never step backwards: once a millisecond's suffix space is borrowed
	// from, earlier timestamps must not be reused.
	ms := now.UnixMilli()
	if ms < g.lastMs {
		ms = g.lastMs
	}
	if ms != g.lastMs || g.used == nil {
		g.used = make(map[int]struct{})
	} else if len(g.used) >= 1000 {
		// Suffix space exhausted for this millisecond; borrow the next one.
		ms++
		g.used = make(map[int]struct{})
	}
	g.lastMs = ms

	suffix := rand.Intn(1000)
	for {
		if _, taken := g.used[suffix]; !taken {
			break
		}
		suffix = rand.Intn(1000)
	}
	g.used[suffix] = struct{}{}

	return "FP" + strconv.FormatInt(g.lastMs, 10) + strconv.Itoa(suffix)
}

// PlaceOrder validates the submitted cart, assigns an order number, persists
// the order and fires the notification. Line items and the total are trusted
// verbatim from the request; per-item minimum quantities are a client
// concern and are not re-checked here.
//
// Order numbers combine a millisecond timestamp with a random suffix; see
// orderNumberGenerator.
func (s *OrderService) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error) {
	if req.UserEmail == "" || len(req.Cart) == 0 {
		return nil, apperrors.NewValidationError("Invalid order data")
	}

	now := s.now().UTC()
	orderNumber := s.gen.next(now)

	items := make([]domain.OrderItem, len(req.Cart))
	for i, item := range req.Cart {
		items[i] = domain.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
	}

	order := &domain.Order{
		OrderNumber: orderNumber,
		Date:        now.Format("2006-01-02 15:04:05"),
		Customer: domain.Customer{
			Name:    req.UserName,
			Email:   req.UserEmail,
			Phone:   req.UserPhone,
			Address: req.UserAddress,
		},
		Items:  items,
		Total:  req.Total,
		Status: domain.OrderStatusPending,
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order saved", zap.String("orderNumber", orderNumber))

	if err := s.sink.Notify(ctx, order); err != nil {
		s.logger.Warn("order notification failed",
			zap.String("orderNumber", orderNumber), zap.Error(err))
	}

	return &dto.PlaceOrderResult{
		OrderNumber: orderNumber,
		Message: fmt.Sprintf("Thank you! Your order #%s has been placed successfully. Total: ₦%s",
			orderNumber, domain.FormatAmount(req.Total)),
	}, nil
}

// ListByCustomer returns the customer's orders in storage order; the
// presentation layer reverses for newest-first display.
func (s *OrderService) ListByCustomer(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.FindByCustomerEmail(ctx, email)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.All(ctx)
}
