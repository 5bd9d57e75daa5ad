package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type BillingClient struct {
	*Client
}

var _ ports.BillingAPI = (*BillingClient)(nil)

func NewBillingClient(cfg Config) *BillingClient {
	return &BillingClient{Client: NewClient(cfg)}
}

type billingPayload struct {
	ID            flexInt  `json:"id" validate:"gt=0"`
	ReservationID flexInt  `json:"reservation_id"`
	Amount        *float64 `json:"amount" validate:"required"`
	PaymentStatus string   `json:"payment_status"`
}

type invoicePayload struct {
	InvoiceID       flexInt   `json:"invoice_id"`
	BillingID       flexInt   `json:"billing_id"`
	ReservationID   flexInt   `json:"reservation_id"`
	VehicleType     string    `json:"vehicle_type"`
	MembershipLevel string    `json:"membership_level"`
	Amount          *float64  `json:"amount" validate:"required"`
	GeneratedDate   time.Time `json:"generated_date"`
}

type receiptPayload struct {
	ReceiptID   flexInt   `json:"receipt_id"`
	BillingID   flexInt   `json:"billing_id"`
	Amount      *float64  `json:"amount" validate:"required"`
	PaymentDate time.Time `json:"payment_date"`
}

func (c *BillingClient) GetBilling(ctx context.Context, id domain.BillingID) (domain.Billing, error) {
	var payload billingPayload
	if err := c.fetch(ctx, idPath("/billings", int(id)), &payload); err != nil {
		return domain.Billing{}, err
	}

	return domain.Billing{
		ID:            domain.BillingID(payload.ID),
		ReservationID: domain.ReservationID(payload.ReservationID),
		Amount:        *payload.Amount,
		PaymentStatus: payload.PaymentStatus,
	}, nil
}

func (c *BillingClient) GetInvoice(ctx context.Context, id domain.BillingID) (domain.Invoice, error) {
	var payload invoicePayload
	if err := c.fetch(ctx, idPath("/invoices", int(id)), &payload); err != nil {
		return domain.Invoice{}, err
	}

	return domain.Invoice{
		InvoiceID:       int(payload.InvoiceID),
		BillingID:       domain.BillingID(payload.BillingID),
		ReservationID:   domain.ReservationID(payload.ReservationID),
		VehicleType:     payload.VehicleType,
		MembershipLevel: payload.MembershipLevel,
		Amount:          *payload.Amount,
		GeneratedDate:   payload.GeneratedDate,
	}, nil
}

func (c *BillingClient) GetReceipt(ctx context.Context, id domain.BillingID) (domain.Receipt, error) {
	var payload receiptPayload
	if err := c.fetch(ctx, idPath("/receipts", int(id)), &payload); err != nil {
		return domain.Receipt{}, err
	}

	return domain.Receipt{
		ReceiptID:   int(payload.ReceiptID),
		BillingID:   domain.BillingID(payload.BillingID),
		Amount:      *payload.Amount,
		PaymentDate: payload.PaymentDate,
	}, nil
}

func (c *BillingClient) fetch(ctx context.Context, path string, out any) error {
	if err := c.do(ctx, http.MethodGet, path, nil, nil, out); err != nil {
		return err
	}

	return c.validateStruct(out)
}
