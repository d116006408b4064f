package services

import (
  "context"
  "regexp"
  "testing"
  "time"
)

func TestProcessPaymentGeneratesID(t *testing.T) {
  ps := &paymentService{log: testLogger(), delay: time.Millisecond}

  result, err := ps.Process(context.Background(), "card", 240)
  if err != nil {
    t.Fatalf("payment failed: %v", err)
  }
  if !regexp.MustCompile(`^pay_[0-9a-f]{12}$`).MatchString(result.PaymentID) {
    t.Fatalf("unexpected payment id %q", result.PaymentID)
  }
  if result.Amount != 240 || result.PaymentMethod != "card" {
    t.Fatalf("payment result must echo amount and method: %+v", result)
  }
}

func TestProcessPaymentHonorsCancellation(t *testing.T) {
  ps := &paymentService{log: testLogger(), delay: time.Minute}

  ctx, cancel := context.WithCancel(context.Background())
  cancel()
  if _, err := ps.Process(ctx, "card", 10); err == nil {
    t.Fatalf("expected cancelled context to abort the simulated delay")
  }
}

func TestDefaultDelayIsTwoSeconds(t *testing.T) {
  ps := NewPaymentService(testLogger()).(*paymentService)
  if ps.delay != 2*time.Second {
    t.Fatalf("simulated processing delay changed: %v", ps.delay)
  }
}
