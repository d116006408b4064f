package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/services"
)

type ReviewHandler struct {
  reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
  return &ReviewHandler{reviewService: reviewService}
}

func (rh *ReviewHandler) Create(c *gin.Context) {
  var req struct {
    ProductID *string `json:"product_id"`
    Rating    *int    `json:"rating"`
    Comment   string  `json:"comment"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }
  if req.ProductID == nil || req.Rating == nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }
  if *req.Rating < 1 || *req.Rating > 5 {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
    return
  }

  review, err := rh.reviewService.Create(c.Request.Context(), currentUserID(c), *req.ProductID, *req.Rating, req.Comment)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
    return
  }

  c.JSON(http.StatusCreated, gin.H{
    "message": "Review created successfully",
    "review":  review,
  })
}

func (rh *ReviewHandler) ListByProduct(c *gin.Context) {
  reviews, stats, err := rh.reviewService.ListWithStats(c.Request.Context(), c.Param("product_id"))
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "reviews": reviews,
    "stats":   stats,
  })
}
