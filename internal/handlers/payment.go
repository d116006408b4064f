package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/services"
)

type PaymentHandler struct {
  paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
  return &PaymentHandler{paymentService: paymentService}
}

func (ph *PaymentHandler) Process(c *gin.Context) {
  var req struct {
    PaymentMethod string   `json:"payment_method"`
    Amount        *float64 `json:"amount"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment details"})
    return
  }
  if req.PaymentMethod == "" || req.Amount == nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment details"})
    return
  }

  result, err := ph.paymentService.Process(c.Request.Context(), req.PaymentMethod, *req.Amount)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing failed"})
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "status":         "success",
    "payment_id":     result.PaymentID,
    "amount":         result.Amount,
    "payment_method": result.PaymentMethod,
    "message":        "Payment processed successfully",
  })
}
