package services

import (
  "context"
  "strings"
  "time"

  "github.com/google/uuid"

  "github.com/edgecraft/glass-backend/internal/logger"
)

type PaymentResult struct {
  PaymentID     string  `json:"payment_id"`
  Amount        float64 `json:"amount"`
  PaymentMethod string  `json:"payment_method"`
}

type PaymentService interface {
  Process(ctx context.Context, paymentMethod string, amount float64) (*PaymentResult, error)
}

type paymentService struct {
  log   *logger.Logger
  delay time.Duration
}

// NewPaymentService builds the simulated payment gateway. Processing blocks
// for a fixed two seconds before returning a generated payment id; there is
// no real capture behind it.
func NewPaymentService(log *logger.Logger) PaymentService {
  serviceLog := log.With("service", "PaymentService")
  return &paymentService{log: serviceLog, delay: 2 * time.Second}
}

func (ps *paymentService) Process(ctx context.Context, paymentMethod string, amount float64) (*PaymentResult, error) {
  select {
  case <-time.After(ps.delay):
  case <-ctx.Done():
    return nil, ctx.Err()
  }

  paymentID := "pay_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
  ps.log.Info("Payment processed", "payment_id", paymentID, "payment_method", paymentMethod)
  return &PaymentResult{
    PaymentID:     paymentID,
    Amount:        amount,
    PaymentMethod: paymentMethod,
  }, nil
}
