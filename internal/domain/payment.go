package domain

type PaymentStatus string

const (
	PaymentSuccess      PaymentStatus = "SUCCESS"
	PaymentPending      PaymentStatus = "PENDING"
	PaymentFailed       PaymentStatus = "FAILED"
	PaymentUserDropped  PaymentStatus = "USER_DROPPED"
	PaymentNotAttempted PaymentStatus = "NOT_ATTEMPTED"
)

// PaymentAttempt is one attempt the processor recorded against an order.
// The processor owns this entity; statuses outside the constants above are
// possible and must be treated as not successful.
type PaymentAttempt struct {
	CfPaymentID     string           `json:"cf_payment_id"`
	OrderID         string           `json:"order_id"`
	OrderAmount     float64          `json:"order_amount"`
	OrderCurrency   string           `json:"order_currency"`
	PaymentStatus   PaymentStatus    `json:"payment_status"`
	CustomerDetails *CustomerDetails `json:"customer_details,omitempty"`
}

func (p PaymentAttempt) Successful() bool {
	return p.PaymentStatus == PaymentSuccess
}
