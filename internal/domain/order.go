package domain

// Currency is fixed for this deployment; the processor rejects mismatches.
const Currency = "INR"

type CustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

type OrderMeta struct {
	ReturnURL string `json:"return_url"`
}

// Order is the processor-facing order payload. Orders are not persisted
// here; the processor owns all durable order state.
type Order struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       OrderMeta       `json:"order_meta"`
}

// CreatedOrder is the subset of the processor's create-order response
// forwarded to callers. The session handle is opaque; only the checkout
// widget consumes it.
type CreatedOrder struct {
	PaymentSessionID string `json:"payment_session_id"`
	OrderID          string `json:"order_id"`
}
