package domain

// PaymentStatement is one member's standing in the payment-tracking
// document: the billing units marked paid, and whether the sheet excuses
// the member from dues altogether (exemption note or all-exempt row).
type PaymentStatement struct {
	Paid   map[BillingUnit]struct{}
	Exempt bool
}
