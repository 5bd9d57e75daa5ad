package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type BillingView struct {
	ID            string `json:"id"`
	Amount        string `json:"amount"`
	PaymentStatus string `json:"payment_status"`
}

type InvoiceView struct {
	VehicleType     string `json:"vehicle_type"`
	MembershipLevel string `json:"membership_level"`
	TotalCost       string `json:"total_cost"`
	Message         string `json:"message"`
}

type ReceiptView struct {
	Amount      string `json:"amount"`
	PaymentDate string `json:"payment_date"`
	Message     string `json:"message"`
}

type BillingService struct {
	api ports.BillingAPI
	log *slog.Logger
}

func NewBillingService(api ports.BillingAPI, log *slog.Logger) *BillingService {
	return &BillingService{api: api, log: loggerOrDiscard(log)}
}

func (s *BillingService) Billing(ctx context.Context, rawID string) (BillingView, error) {
	id, err := s.parseBillingID(rawID, "fetch billing details", MsgBillingFetchFailed)
	if err != nil {
		return BillingView{}, err
	}

	billing, err := s.api.GetBilling(ctx, id)
	if err != nil {
		return BillingView{}, fail(s.log, "fetch billing details", MsgBillingFetchFailed, err)
	}

	return BillingView{
		ID:            strconv.Itoa(int(billing.ID)),
		Amount:        domain.FormatAmount(billing.Amount),
		PaymentStatus: billing.PaymentStatus,
	}, nil
}

func (s *BillingService) Invoice(ctx context.Context, rawID string) (InvoiceView, error) {
	id, err := s.parseBillingID(rawID, "generate invoice", MsgInvoiceFailed)
	if err != nil {
		return InvoiceView{}, err
	}

	invoice, err := s.api.GetInvoice(ctx, id)
	if err != nil {
		return InvoiceView{}, fail(s.log, "generate invoice", MsgInvoiceFailed, err)
	}

	total := domain.FormatAmount(invoice.Amount)
	return InvoiceView{
		VehicleType:     invoice.VehicleType,
		MembershipLevel: invoice.MembershipLevel,
		TotalCost:       total,
		Message:         fmt.Sprintf(msgInvoiceGenerated, total),
	}, nil
}

func (s *BillingService) Receipt(ctx context.Context, rawID string) (ReceiptView, error) {
	id, err := s.parseBillingID(rawID, "generate receipt", MsgReceiptFailed)
	if err != nil {
		return ReceiptView{}, err
	}

	receipt, err := s.api.GetReceipt(ctx, id)
	if err != nil {
		return ReceiptView{}, fail(s.log, "generate receipt", MsgReceiptFailed, err)
	}

	amount := domain.FormatAmount(receipt.Amount)
	date := domain.FormatDate(receipt.PaymentDate)
	return ReceiptView{
		Amount:      amount,
		PaymentDate: date,
		Message:     fmt.Sprintf(msgReceiptGenerated, amount, date),
	}, nil
}

// parseBillingID rejects an empty id before any request is made. A non-numeric id
// cannot address a billing record, so it fails the action without a request.
func (s *BillingService) parseBillingID(raw, op, failure string) (domain.BillingID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, domain.NewActionError(MsgEnterBillingID, domain.ErrMissingInput)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, fail(s.log, op, failure, fmt.Errorf("invalid billing id %q", raw))
	}

	return domain.BillingID(n), nil
}
