package httpapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingClientGetBilling(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/billings/{id}", http.MethodGet, http.StatusOK, `{"id":7,"reservation_id":3,"amount":19.5,"payment_status":"PAID"}`)

	client := NewBillingClient(Config{BaseURL: server.URL})
	billing, err := client.GetBilling(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.Billing{ID: 7, ReservationID: 3, Amount: 19.5, PaymentStatus: "PAID"}, billing)
	assert.Equal(t, "/billings/7", backend.only(t).Path)
}

func TestBillingClientRejectsMissingAmount(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/billings/{id}", http.MethodGet, http.StatusOK, `{"id":7,"payment_status":"PAID"}`)

	client := NewBillingClient(Config{BaseURL: server.URL})
	_, err := client.GetBilling(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestBillingClientAcceptsZeroAmount(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/billings/{id}", http.MethodGet, http.StatusOK, `{"id":7,"amount":0,"payment_status":"Pending"}`)

	client := NewBillingClient(Config{BaseURL: server.URL})
	billing, err := client.GetBilling(context.Background(), 7)

	require.NoError(t, err)
	assert.Zero(t, billing.Amount)
}

func TestBillingClientGetInvoice(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/invoices/{id}", http.MethodGet, http.StatusOK, `{
		"invoice_id":7,"billing_id":7,"reservation_id":3,
		"vehicle_type":"Sedan","membership_level":"VIP","amount":42.125,
		"generated_date":"2024-05-01T10:00:00Z"
	}`)

	client := NewBillingClient(Config{BaseURL: server.URL})
	invoice, err := client.GetInvoice(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.Invoice{
		InvoiceID:       7,
		BillingID:       7,
		ReservationID:   3,
		VehicleType:     "Sedan",
		MembershipLevel: "VIP",
		Amount:          42.125,
		GeneratedDate:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}, invoice)
}

func TestBillingClientGetReceipt(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/receipts/{id}", http.MethodGet, http.StatusOK, `{"receipt_id":7,"billing_id":7,"amount":19.5,"payment_date":"2024-05-01T10:00:00Z"}`)

	client := NewBillingClient(Config{BaseURL: server.URL})
	receipt, err := client.GetReceipt(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 19.5, receipt.Amount)
	assert.True(t, receipt.PaymentDate.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
}

func TestBillingClientReceiptForUnpaidBilling(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/receipts/{id}", http.MethodGet, http.StatusBadRequest, "Payment not completed for this billing")

	client := NewBillingClient(Config{BaseURL: server.URL})
	_, err := client.GetReceipt(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
}
