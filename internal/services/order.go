package services

import (
  "context"
  "errors"
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"

  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/repos"
  "github.com/edgecraft/glass-backend/internal/types"
)

const orderNumberPrefix = "EG"

// Validation failures surface as these exact errors, in this exact order, so
// the HTTP layer can hand the client a distinct message per failure.
var (
  ErrOrderMissingFields  = errors.New("Missing required fields")
  ErrOrderItemsEmpty     = errors.New("Items must be a non-empty array")
  ErrOrderMissingBilling = errors.New("Missing required billing information")
  ErrOrderNotFound       = errors.New("Order not found")
)

// OrderInput carries the checkout request. Pointer fields distinguish an
// absent field from a present-but-empty one.
type OrderInput struct {
  Items         *[]types.CartItem  `json:"items"`
  TotalAmount   *float64           `json:"total_amount"`
  PaymentMethod *string            `json:"payment_method"`
  BillingInfo   *types.BillingInfo `json:"billing_info"`
}

type OrderService interface {
  Create(ctx context.Context, userID string, input OrderInput) (*types.Order, error)
  List(ctx context.Context, userID string) ([]*types.Order, error)
  Get(ctx context.Context, orderID, userID string) (*types.Order, error)
}

type orderService struct {
  log         *logger.Logger
  orderRepo   repos.OrderRepo
  cartService CartService
}

func NewOrderService(log *logger.Logger, orderRepo repos.OrderRepo, cartService CartService) OrderService {
  serviceLog := log.With("service", "OrderService")
  return &orderService{log: serviceLog, orderRepo: orderRepo, cartService: cartService}
}

func (os *orderService) Create(ctx context.Context, userID string, input OrderInput) (*types.Order, error) {
  if err := validateOrderInput(input); err != nil {
    return nil, err
  }

  order := &types.Order{
    UserID:        userID,
    OrderNumber:   os.generateOrderNumber(ctx),
    Items:         *input.Items,
    TotalAmount:   *input.TotalAmount,
    PaymentMethod: *input.PaymentMethod,
    BillingInfo:   *input.BillingInfo,
    Status:        types.OrderStatusConfirmed,
  }

  created, err := os.orderRepo.Create(ctx, order)
  if err != nil {
    return nil, fmt.Errorf("Failed to create order: %w", err)
  }
  os.log.Info("Order created", "order_number", created.OrderNumber, "user_id", userID)

  // Clearing the originating cart is best-effort: the order already exists,
  // so a failure here is logged and swallowed rather than failing checkout.
  if err := os.cartService.Clear(ctx, userID); err != nil {
    os.log.Warn("Failed to clear cart after order", "user_id", userID, "error", err)
  }

  return created, nil
}

func (os *orderService) List(ctx context.Context, userID string) ([]*types.Order, error) {
  return os.orderRepo.GetByUser(ctx, userID)
}

func (os *orderService) Get(ctx context.Context, orderID, userID string) (*types.Order, error) {
  order, err := os.orderRepo.GetByIDForUser(ctx, orderID, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load order: %w", err)
  }
  if order == nil {
    return nil, ErrOrderNotFound
  }
  return order, nil
}

func validateOrderInput(input OrderInput) error {
  if input.Items == nil || input.TotalAmount == nil || input.PaymentMethod == nil || input.BillingInfo == nil {
    return ErrOrderMissingFields
  }
  if len(*input.Items) == 0 {
    return ErrOrderItemsEmpty
  }
  b := input.BillingInfo
  for _, field := range []string{b.Email, b.Phone, b.Address, b.City, b.State, b.Pincode} {
    if field == "" {
      return ErrOrderMissingBilling
    }
  }
  return nil
}

// generateOrderNumber builds the human-facing order identifier: prefix, UTC
// date, six uppercase characters of entropy. A direct lookup guards against
// collisions; on a hit the suffix widens to eight characters. If even the
// lookup fails a raw unix timestamp keeps checkout moving.
func (os *orderService) generateOrderNumber(ctx context.Context) string {
  date := time.Now().UTC().Format("20060102")
  number := orderNumberPrefix + date + randomSuffix(6)

  exists, err := os.orderRepo.OrderNumberExists(ctx, number)
  if err != nil {
    os.log.Warn("Order number lookup failed, falling back to timestamp", "error", err)
    return fmt.Sprintf("%s%d", orderNumberPrefix, time.Now().Unix())
  }
  if exists {
    number = orderNumberPrefix + date + randomSuffix(8)
  }
  return number
}

func randomSuffix(n int) string {
  return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:n]
}
