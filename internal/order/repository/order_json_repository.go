package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"fishparque/internal/domain"
	"fishparque/internal/errors"

	"go.uber.org/zap"
)

// JSONOrderRepository persists orders as a single JSON array document plus a
// parallel human-readable append-only text log. The array write is
// read-entire, append, write-entire; a mutex serializes mutations so
// concurrent placements cannot overwrite each other's appends.
//
// The text log is a convenience backup: if its append fails after the
// document write succeeded, the order is still considered placed and the
// failure is only logged.
type JSONOrderRepository struct {
	path       string
	backupPath string
	logger     *zap.Logger
	mu         sync.Mutex
}

func NewJSONOrderRepository(path, backupPath string, logger *zap.Logger) *JSONOrderRepository {
	return &JSONOrderRepository{
		path:       path,
		backupPath: backupPath,
		logger:     logger,
	}
}

func (r *JSONOrderRepository) Append(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := r.readAll()
	orders = append(orders, *order)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return errors.NewStorageError("encoding orders document", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return errors.NewStorageError("writing orders document", err)
	}

	if err := r.appendBackupLine(order); err != nil {
		r.logger.Warn("appending order backup line failed",
			zap.String("orderNumber", order.OrderNumber), zap.Error(err))
	}

	return nil
}

// FindByCustomerEmail returns orders whose customer email matches exactly, in
// storage (insertion) order. Callers wanting newest-first reverse themselves.
func (r *JSONOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.Order
	for _, order := range r.readAll() {
		if order.Customer.Email == email {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

func (r *JSONOrderRepository) All(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.readAll(), nil
}

func (r *JSONOrderRepository) readAll() []domain.Order {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []domain.Order{}
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil || orders == nil {
		return []domain.Order{}
	}
	return orders
}

func (r *JSONOrderRepository) appendBackupLine(order *domain.Order) error {
	f, err := os.OpenFile(r.backupPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening backup log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(BackupLine(order)); err != nil {
		return fmt.Errorf("appending backup line: %w", err)
	}
	return nil
}

// BackupLine renders one order as a single log line, newline-terminated.
func BackupLine(order *domain.Order) string {
	items := make([]string, len(order.Items))
	for i, item := range order.Items {
		items[i] = fmt.Sprintf("%s (%skg)", item.Name, domain.FormatAmount(item.Quantity))
	}

	return fmt.Sprintf("Order #%s | Date: %s | Name: %s | Phone: %s | Email: %s | Address: %s | Total: ₦%s | Items: %s\n",
		order.OrderNumber, order.Date,
		order.Customer.Name, order.Customer.Phone, order.Customer.Email, order.Customer.Address,
		domain.FormatAmount(order.Total), strings.Join(items, ", "))
}
