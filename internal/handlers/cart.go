package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/services"
  "github.com/edgecraft/glass-backend/internal/types"
)

type CartHandler struct {
  cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
  return &CartHandler{cartService: cartService}
}

func (ch *CartHandler) Get(c *gin.Context) {
  cart, err := ch.cartService.GetOrCreate(c.Request.Context(), currentUserID(c))
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (ch *CartHandler) AddItem(c *gin.Context) {
  var req struct {
    ID            *string  `json:"id"`
    Name          *string  `json:"name"`
    Price         *float64 `json:"price"`
    Quantity      *int     `json:"quantity"`
    Customization string   `json:"customization"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }
  if req.ID == nil || req.Name == nil || req.Price == nil || req.Quantity == nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }

  item := types.CartItem{
    ItemID:        *req.ID,
    Name:          *req.Name,
    Price:         *req.Price,
    Quantity:      *req.Quantity,
    Customization: req.Customization,
  }
  if err := ch.cartService.AddItem(c.Request.Context(), currentUserID(c), item); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Item added to cart successfully"})
}

func (ch *CartHandler) UpdateItem(c *gin.Context) {
  var req struct {
    Quantity *int `json:"quantity"`
  }
  if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
    return
  }

  updated, err := ch.cartService.UpdateItem(c.Request.Context(), currentUserID(c), c.Param("item_id"), *req.Quantity)
  if err != nil || !updated {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully"})
}

func (ch *CartHandler) RemoveItem(c *gin.Context) {
  removed, err := ch.cartService.RemoveItem(c.Request.Context(), currentUserID(c), c.Param("item_id"))
  if err != nil || !removed {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}

func (ch *CartHandler) Clear(c *gin.Context) {
  if err := ch.cartService.Clear(c.Request.Context(), currentUserID(c)); err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
