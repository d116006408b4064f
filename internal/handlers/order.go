package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/services"
)

type OrderHandler struct {
  orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
  return &OrderHandler{orderService: orderService}
}

func (oh *OrderHandler) Create(c *gin.Context) {
  var input services.OrderInput
  if err := c.ShouldBindJSON(&input); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }

  order, err := oh.orderService.Create(c.Request.Context(), currentUserID(c), input)
  if err != nil {
    switch {
    case errors.Is(err, services.ErrOrderMissingFields),
      errors.Is(err, services.ErrOrderItemsEmpty),
      errors.Is(err, services.ErrOrderMissingBilling):
      c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    default:
      c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
    }
    return
  }

  c.JSON(http.StatusCreated, gin.H{
    "message": "Order created successfully",
    "order":   order,
  })
}

func (oh *OrderHandler) List(c *gin.Context) {
  orders, err := oh.orderService.List(c.Request.Context(), currentUserID(c))
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (oh *OrderHandler) Get(c *gin.Context) {
  order, err := oh.orderService.Get(c.Request.Context(), c.Param("id"), currentUserID(c))
  if err != nil {
    if errors.Is(err, services.ErrOrderNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"order": order})
}
