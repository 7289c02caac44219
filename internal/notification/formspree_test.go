package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fishparque/internal/domain"
)

func notifiedOrder() *domain.Order {
	return &domain.Order{
		OrderNumber: "FP1700000000000123",
		Date:        "2025-01-02 10:30:00",
		Customer: domain.Customer{
			Name:    "John Doe",
			Email:   "john@example.com",
			Phone:   "08012345678",
			Address: "12 Pond Lane",
		},
		Items: []domain.OrderItem{
			{ID: "fish_feed", Name: "Fish Feed", Price: 500, Quantity: 10, Subtotal: 5000},
			{ID: "catfish", Name: "Catfish", Price: 1500, Quantity: 2.5, Subtotal: 3750},
		},
		Total:  8750,
		Status: domain.OrderStatusPending,
	}
}

func TestNotify_PostsOrderSummary(t *testing.T) {
	var gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewFormspreeSink(srv.URL, 5*time.Second, zap.NewNop())

	err := sink.Notify(context.Background(), notifiedOrder())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)

	var payload struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "🐟 New Fish Parque Order - FP1700000000000123", payload.Subject)
	assert.Contains(t, payload.Message, "Order Number: FP1700000000000123")
	assert.Contains(t, payload.Message, "Name: John Doe")
	assert.Contains(t, payload.Message, "Fish Feed: 10kg @ ₦500/kg = ₦5000")
	assert.Contains(t, payload.Message, "Catfish: 2.5kg @ ₦1500/kg = ₦3750")
	assert.Contains(t, payload.Message, "TOTAL: ₦8750")
}

func TestNotify_NoEndpointIsNoOp(t *testing.T) {
	sink := NewFormspreeSink("", 5*time.Second, zap.NewNop())

	err := sink.Notify(context.Background(), notifiedOrder())
	assert.NoError(t, err)
}

func TestNotify_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink := NewFormspreeSink(srv.URL, 5*time.Second, zap.NewNop())

	err := sink.Notify(context.Background(), notifiedOrder())
	assert.Error(t, err)
}

func TestNotify_UnreachableEndpoint(t *testing.T) {
	// Grab a URL that refuses connections by closing the server first.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	sink := NewFormspreeSink(url, time.Second, zap.NewNop())

	err := sink.Notify(context.Background(), notifiedOrder())
	assert.Error(t, err)
}
