package services

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaxRate is applied to every service price at checkout (18% GST).
const TaxRate = 0.18

// PaymentService simulates a payment processor. There is no gateway behind
// it; processing is a fixed delay that always succeeds.
type PaymentService struct {
	delay time.Duration
}

// CardDetails is accepted for realism and discarded.
type CardDetails struct {
	Number string `json:"cardNumber"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"cardName"`
}

func NewPaymentService() *PaymentService {
	return &PaymentService{delay: 2 * time.Second}
}

// Quote breaks a service price into subtotal, tax and total.
func (p *PaymentService) Quote(price float64) (subtotal, tax, total float64) {
	subtotal = price
	tax = price * TaxRate
	total = subtotal + tax
	return subtotal, tax, total
}

// Process waits out the simulated processing delay and returns a
// transaction reference. Cancelling the context aborts the wait.
func (p *PaymentService) Process(ctx context.Context, amount float64, card CardDetails) (string, error) {
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return uuid.NewString(), nil
}
