package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/services"
  "github.com/edgecraft/glass-backend/internal/types"
)

type ProductHandler struct {
  productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
  return &ProductHandler{productService: productService}
}

func (ph *ProductHandler) List(c *gin.Context) {
  products, err := ph.productService.List(c.Request.Context(), c.Query("category"))
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"products": products})
}

func (ph *ProductHandler) Create(c *gin.Context) {
  var req struct {
    Name           string    `json:"name"`
    Category       string    `json:"category"`
    Description    string    `json:"description"`
    BasePrice      *float64  `json:"basePrice"`
    Specifications *[]string `json:"specifications"`
    InStock        *bool     `json:"inStock"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }
  if req.Name == "" || req.Category == "" || req.Description == "" || req.BasePrice == nil || req.Specifications == nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }

  product := &types.Product{
    Name:           req.Name,
    Category:       req.Category,
    Description:    req.Description,
    BasePrice:      *req.BasePrice,
    Specifications: *req.Specifications,
    InStock:        true,
  }
  if req.InStock != nil {
    product.InStock = *req.InStock
  }

  created, err := ph.productService.Create(c.Request.Context(), product)
  if err != nil {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
    return
  }

  c.JSON(http.StatusCreated, gin.H{
    "message": "Product created successfully",
    "product": created,
  })
}

func (ph *ProductHandler) Get(c *gin.Context) {
  product, err := ph.productService.Get(c.Request.Context(), c.Param("id"))
  if err != nil {
    if errors.Is(err, services.ErrProductNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"product": product})
}
