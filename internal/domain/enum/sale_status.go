package enum

// SaleStatus represents the lifecycle status of a sale.
type SaleStatus string

const (
	SaleStatusDraft     SaleStatus = "draft"
	SaleStatusOpen      SaleStatus = "open"
	SaleStatusPaid      SaleStatus = "paid"
	SaleStatusCancelled SaleStatus = "cancelled"
)

func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusDraft, SaleStatusOpen, SaleStatusPaid, SaleStatusCancelled:
		return true
	}
	return false
}

// ParseSaleStatus returns the status for s, falling back to the given
// default when s is empty or unknown.
func ParseSaleStatus(s string, fallback SaleStatus) SaleStatus {
	status := SaleStatus(s)
	if status.Valid() {
		return status
	}
	return fallback
}

// PaymentStatus tracks how much of a sale has been paid. It is independent
// of SaleStatus.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

func ParsePaymentStatus(s string, fallback PaymentStatus) PaymentStatus {
	status := PaymentStatus(s)
	if status.Valid() {
		return status
	}
	return fallback
}
