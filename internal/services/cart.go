package services

import (
  "context"
  "fmt"
  "time"

  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/repos"
  "github.com/edgecraft/glass-backend/internal/types"
)

// CartService owns the one-cart-per-user lifecycle: carts are created lazily
// on first access and cleared (never deleted) afterwards.
type CartService interface {
  GetOrCreate(ctx context.Context, userID string) (*types.Cart, error)
  AddItem(ctx context.Context, userID string, item types.CartItem) error
  UpdateItem(ctx context.Context, userID, itemID string, quantity int) (bool, error)
  RemoveItem(ctx context.Context, userID, itemID string) (bool, error)
  Clear(ctx context.Context, userID string) error
}

type cartService struct {
  log      *logger.Logger
  cartRepo repos.CartRepo
}

func NewCartService(log *logger.Logger, cartRepo repos.CartRepo) CartService {
  serviceLog := log.With("service", "CartService")
  return &cartService{log: serviceLog, cartRepo: cartRepo}
}

func (cs *cartService) GetOrCreate(ctx context.Context, userID string) (*types.Cart, error) {
  cart, err := cs.cartRepo.GetByUser(ctx, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load cart: %w", err)
  }
  if cart != nil {
    return cart, nil
  }
  created, err := cs.cartRepo.Create(ctx, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to create cart: %w", err)
  }
  return created, nil
}

// AddItem appends the item to the cart's ordered item list. Identical product
// ids are not merged; each add produces its own line.
func (cs *cartService) AddItem(ctx context.Context, userID string, item types.CartItem) error {
  if _, err := cs.GetOrCreate(ctx, userID); err != nil {
    return err
  }
  item.AddedAt = time.Now().UTC()
  pushed, err := cs.cartRepo.PushItem(ctx, userID, item)
  if err != nil {
    return fmt.Errorf("Failed to add item to cart: %w", err)
  }
  if !pushed {
    return fmt.Errorf("Failed to add item to cart")
  }
  return nil
}

func (cs *cartService) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (bool, error) {
  return cs.cartRepo.SetItemQuantity(ctx, userID, itemID, quantity)
}

func (cs *cartService) RemoveItem(ctx context.Context, userID, itemID string) (bool, error) {
  return cs.cartRepo.PullItem(ctx, userID, itemID)
}

// Clear empties the cart. A missing cart is not an error: an empty one is
// created so the user ends up in the same state either way.
func (cs *cartService) Clear(ctx context.Context, userID string) error {
  cart, err := cs.cartRepo.GetByUser(ctx, userID)
  if err != nil {
    return fmt.Errorf("Failed to load cart: %w", err)
  }
  if cart == nil {
    cs.log.Debug("No cart to clear, creating empty cart", "user_id", userID)
    if _, err := cs.cartRepo.Create(ctx, userID); err != nil {
      return fmt.Errorf("Failed to create cart: %w", err)
    }
    return nil
  }
  cleared, err := cs.cartRepo.SetItems(ctx, userID, nil)
  if err != nil {
    return fmt.Errorf("Failed to clear cart: %w", err)
  }
  if !cleared {
    return fmt.Errorf("Failed to clear cart")
  }
  return nil
}
