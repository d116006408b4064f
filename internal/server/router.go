package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/handlers"
  "github.com/edgecraft/glass-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler    *handlers.AuthHandler
  AuthMiddleware *middleware.AuthMiddleware
  ProductHandler *handlers.ProductHandler
  CartHandler    *handlers.CartHandler
  OrderHandler   *handlers.OrderHandler
  ReviewHandler  *handlers.ReviewHandler
  PaymentHandler *handlers.PaymentHandler
  HealthHandler  *handlers.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  api := router.Group("/api")

  // Public
  api.GET("/health", cfg.HealthHandler.Check)
  api.POST("/register", cfg.AuthHandler.Register)
  api.POST("/login", cfg.AuthHandler.Login)
  api.GET("/products", cfg.ProductHandler.List)
  api.GET("/products/:id", cfg.ProductHandler.Get)
  api.GET("/reviews/:product_id", cfg.ReviewHandler.ListByProduct)

  // Protected
  protected := api.Group("")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  protected.GET("/profile", cfg.AuthHandler.Profile)
  protected.POST("/products", cfg.ProductHandler.Create)
  protected.GET("/cart", cfg.CartHandler.Get)
  protected.POST("/cart/items", cfg.CartHandler.AddItem)
  protected.PUT("/cart/items/:item_id", cfg.CartHandler.UpdateItem)
  protected.DELETE("/cart/items/:item_id", cfg.CartHandler.RemoveItem)
  protected.DELETE("/cart/clear", cfg.CartHandler.Clear)
  protected.POST("/orders", cfg.OrderHandler.Create)
  protected.GET("/orders", cfg.OrderHandler.List)
  protected.GET("/orders/:id", cfg.OrderHandler.Get)
  protected.POST("/reviews", cfg.ReviewHandler.Create)
  protected.POST("/payment/process", cfg.PaymentHandler.Process)
  protected.GET("/db/stats", cfg.HealthHandler.DBStats)

  return router
}
