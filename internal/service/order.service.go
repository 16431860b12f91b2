package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"celestial-payments/internal/domain"
	"celestial-payments/internal/infrastructure/cashfree"
	"celestial-payments/internal/orderid"
)

type CreateOrderInput struct {
	Amount        float64
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// VerificationResult is the reconciler's decision for one verify call. It
// is computed fresh from the processor's attempt list every time; repeated
// calls may settle as the processor's state evolves.
type VerificationResult struct {
	Settled bool
	// Attempt is the successful attempt when Settled.
	Attempt *domain.PaymentAttempt
	// Attempts is everything the processor returned, for diagnostics.
	Attempts []domain.PaymentAttempt
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.CreatedOrder, error)
	VerifyOrder(ctx context.Context, orderID string) (*VerificationResult, error)
}

type orderService struct {
	gateway   cashfree.Client
	returnURL string
	log       zerolog.Logger
}

func NewOrderService(gateway cashfree.Client, frontendBaseURL string, log zerolog.Logger) OrderService {
	return &orderService{
		gateway:   gateway,
		returnURL: strings.TrimSuffix(frontendBaseURL, "/") + "/",
		log:       log,
	}
}

// CreateOrder builds the processor payload and submits it. The customer id
// is synthesized locally so callers cannot collide or enumerate identities,
// and the order id is never derived from caller input.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.CreatedOrder, error) {
	id, err := orderid.New()
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderID:       id,
		OrderAmount:   in.Amount,
		OrderCurrency: domain.Currency,
		CustomerDetails: domain.CustomerDetails{
			CustomerID:    "cust_" + uuid.NewString(),
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			CustomerEmail: in.CustomerEmail,
		},
		OrderMeta: domain.OrderMeta{ReturnURL: s.returnURL},
	}

	created, err := s.gateway.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", created.OrderID).
		Float64("amount", in.Amount).
		Msg("order created")

	return created, nil
}

// VerifyOrder asks the processor for every attempt on the order and scans
// for a successful one. No successful attempt is a normal outcome, not an
// error; the caller is expected to poll. The attempt list carries no
// ordering guarantee, so the scan must not assume recency.
func (s *orderService) VerifyOrder(ctx context.Context, orderID string) (*VerificationResult, error) {
	attempts, err := s.gateway.FetchPayments(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := &VerificationResult{Attempts: attempts}
	for i := range attempts {
		if attempts[i].Successful() {
			result.Settled = true
			result.Attempt = &attempts[i]
			break
		}
	}
	return result, nil
}
