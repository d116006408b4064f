package main

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/edgecraft/glass-backend/internal/db"
  "github.com/edgecraft/glass-backend/internal/handlers"
  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/middleware"
  "github.com/edgecraft/glass-backend/internal/repos"
  "github.com/edgecraft/glass-backend/internal/server"
  "github.com/edgecraft/glass-backend/internal/services"
  "github.com/edgecraft/glass-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "jwt-secret-string", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)

  // MongoDB
  ctx := context.Background()
  mongoService, err := db.NewMongoService(ctx, log)
  if err != nil {
    log.Error("Mongo init failed", "error", err)
    os.Exit(1)
  }
  defer mongoService.Close(ctx)
  if err := mongoService.EnsureIndexes(ctx); err != nil {
    log.Warn("Mongo index creation failed", "error", err)
  }
  theDB := mongoService.DB()

  // Repos
  log.Info("Setting up repos...")
  userRepo := repos.NewUserRepo(theDB, log)
  productRepo := repos.NewProductRepo(theDB, log)
  cartRepo := repos.NewCartRepo(theDB, log)
  orderRepo := repos.NewOrderRepo(theDB, log)
  reviewRepo := repos.NewReviewRepo(theDB, log)

  // Services
  log.Info("Setting up services...")
  authService := services.NewAuthService(log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
  productService := services.NewProductService(log, productRepo)
  cartService := services.NewCartService(log, cartRepo)
  orderService := services.NewOrderService(log, orderRepo, cartService)
  reviewService := services.NewReviewService(log, reviewRepo, userRepo)
  paymentService := services.NewPaymentService(log)
  healthService := services.NewHealthService(log, mongoService)

  // Handlers
  log.Info("Setting up handlers...")
  authHandler := handlers.NewAuthHandler(authService)
  productHandler := handlers.NewProductHandler(productService)
  cartHandler := handlers.NewCartHandler(cartService)
  orderHandler := handlers.NewOrderHandler(orderService)
  reviewHandler := handlers.NewReviewHandler(reviewService)
  paymentHandler := handlers.NewPaymentHandler(paymentService)
  healthHandler := handlers.NewHealthHandler(healthService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:    authHandler,
    AuthMiddleware: authMiddleware,
    ProductHandler: productHandler,
    CartHandler:    cartHandler,
    OrderHandler:   orderHandler,
    ReviewHandler:  reviewHandler,
    PaymentHandler: paymentHandler,
    HealthHandler:  healthHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  log.Info("Server listening", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
