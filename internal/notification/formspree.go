// Package notification delivers best-effort order notifications to an
// external email relay. Delivery is fire-and-forget: the caller logs failures
// and moves on, and no delivery state is tracked.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fishparque/internal/domain"

	"go.uber.org/zap"
)

// FormspreeSink posts order summaries to a Formspree form endpoint. An empty
// endpoint turns the sink into a no-op, so an unconfigured deployment places
// orders without sending anything.
type FormspreeSink struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewFormspreeSink(endpoint string, timeout time.Duration, logger *zap.Logger) *FormspreeSink {
	return &FormspreeSink{
		endpoint: endpoint,
		client:   newHTTPClient(timeout),
		logger:   logger,
	}
}

type formspreePayload struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *FormspreeSink) Notify(ctx context.Context, order *domain.Order) error {
	if s.endpoint == "" {
		return nil
	}

	payload := formspreePayload{
		Subject: "🐟 New Fish Parque Order - " + order.OrderNumber,
		Message: formatMessage(order),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	s.logger.Info("order notification sent", zap.String("orderNumber", order.OrderNumber))
	return nil
}

func formatMessage(order *domain.Order) string {
	lines := make([]string, len(order.Items))
	for i, item := range order.Items {
		lines[i] = fmt.Sprintf("%s: %skg @ ₦%s/kg = ₦%s",
			item.Name,
			domain.FormatAmount(item.Quantity),
			domain.FormatAmount(item.Price),
			domain.FormatAmount(item.Subtotal))
	}

	return fmt.Sprintf(`
Order Number: %s
Date: %s

CUSTOMER INFORMATION:
Name: %s
Email: %s
Phone: %s
Address: %s

ORDER DETAILS:
%s

TOTAL: ₦%s

Order saved to database.
`,
		order.OrderNumber, order.Date,
		order.Customer.Name, order.Customer.Email, order.Customer.Phone, order.Customer.Address,
		strings.Join(lines, "\n"),
		domain.FormatAmount(order.Total))
}
