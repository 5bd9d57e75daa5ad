package domain

import (
	"strconv"
	"time"
)

type BillingID int

type Billing struct {
	ID            BillingID
	ReservationID ReservationID
	Amount        float64
	PaymentStatus string
}

type Invoice struct {
	InvoiceID       int
	BillingID       BillingID
	ReservationID   ReservationID
	VehicleType     string
	MembershipLevel string
	Amount          float64
	GeneratedDate   time.Time
}

type Receipt struct {
	ReceiptID   int
	BillingID   BillingID
	Amount      float64
	PaymentDate time.Time
}

func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatDate renders a date the way receipts show it (MM/DD/YYYY, local time).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.Local().Format("01/02/2006")
}
