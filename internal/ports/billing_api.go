package ports

import (
	"context"

	"github.com/bnema/carshare-cli/internal/domain"
)

type BillingAPI interface {
	GetBilling(ctx context.Context, id domain.BillingID) (domain.Billing, error)
	GetInvoice(ctx context.Context, id domain.BillingID) (domain.Invoice, error)
	GetReceipt(ctx context.Context, id domain.BillingID) (domain.Receipt, error)
}
