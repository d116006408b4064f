package services

import (
  "context"
  "errors"
  "sync"
  "time"

  "go.mongodb.org/mongo-driver/bson/primitive"

  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/repos"
  "github.com/edgecraft/glass-backend/internal/types"
)

func testLogger() *logger.Logger {
  log, err := logger.New("development")
  if err != nil {
    panic(err)
  }
  return log
}

func testUser(name, email string) *types.User {
  return &types.User{Name: name, Email: email, Role: types.RoleUser}
}

type fakeUserRepo struct {
  mu    sync.Mutex
  users []*types.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  user.ID = primitive.NewObjectID()
  f.users = append(f.users, user)
  return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  for _, u := range f.users {
    if u.Email == email {
      return u, nil
    }
  }
  return nil, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*types.User, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  for _, u := range f.users {
    if u.ID.Hex() == id {
      return u, nil
    }
  }
  return nil, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) ([]*types.User, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  want := map[string]bool{}
  for _, id := range ids {
    want[id] = true
  }
  var out []*types.User
  for _, u := range f.users {
    if want[u.ID.Hex()] {
      out = append(out, u)
    }
  }
  return out, nil
}

type fakeCartRepo struct {
  mu    sync.Mutex
  carts map[string]*types.Cart

  setItemsErr error
}

func newFakeCartRepo() *fakeCartRepo {
  return &fakeCartRepo{carts: map[string]*types.Cart{}}
}

func (f *fakeCartRepo) Create(ctx context.Context, userID string) (*types.Cart, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  if _, ok := f.carts[userID]; ok {
    return nil, errors.New("duplicate cart")
  }
  cart := &types.Cart{ID: primitive.NewObjectID(), UserID: userID, Items: []types.CartItem{}}
  f.carts[userID] = cart
  return cart, nil
}

func (f *fakeCartRepo) GetByUser(ctx context.Context, userID string) (*types.Cart, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  return f.carts[userID], nil
}

func (f *fakeCartRepo) PushItem(ctx context.Context, userID string, item types.CartItem) (bool, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  cart, ok := f.carts[userID]
  if !ok {
    return false, nil
  }
  cart.Items = append(cart.Items, item)
  return true, nil
}

func (f *fakeCartRepo) SetItemQuantity(ctx context.Context, userID, itemID string, quantity int) (bool, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  cart, ok := f.carts[userID]
  if !ok {
    return false, nil
  }
  for i := range cart.Items {
    if cart.Items[i].ItemID == itemID {
      cart.Items[i].Quantity = quantity
      return true, nil
    }
  }
  return false, nil
}

func (f *fakeCartRepo) PullItem(ctx context.Context, userID, itemID string) (bool, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  cart, ok := f.carts[userID]
  if !ok {
    return false, nil
  }
  kept := cart.Items[:0]
  removed := false
  for _, it := range cart.Items {
    if it.ItemID == itemID {
      removed = true
      continue
    }
    kept = append(kept, it)
  }
  cart.Items = kept
  return removed, nil
}

func (f *fakeCartRepo) SetItems(ctx context.Context, userID string, items []types.CartItem) (bool, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  if f.setItemsErr != nil {
    return false, f.setItemsErr
  }
  cart, ok := f.carts[userID]
  if !ok {
    return false, nil
  }
  if items == nil {
    items = []types.CartItem{}
  }
  cart.Items = items
  return true, nil
}

type fakeOrderRepo struct {
  mu     sync.Mutex
  orders []*types.Order

  taken       map[string]bool
  existsErr   error
  forceExists int
}

func newFakeOrderRepo() *fakeOrderRepo {
  return &fakeOrderRepo{taken: map[string]bool{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *types.Order) (*types.Order, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  now := time.Now().UTC()
  order.CreatedAt = now
  order.UpdatedAt = now
  order.ID = primitive.NewObjectID()
  f.orders = append(f.orders, order)
  f.taken[order.OrderNumber] = true
  return order, nil
}

func (f *fakeOrderRepo) GetByUser(ctx context.Context, userID string) ([]*types.Order, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  out := []*types.Order{}
  for _, o := range f.orders {
    if o.UserID == userID {
      out = append(out, o)
    }
  }
  return out, nil
}

func (f *fakeOrderRepo) GetByIDForUser(ctx context.Context, orderID, userID string) (*types.Order, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  for _, o := range f.orders {
    if o.ID.Hex() == orderID && o.UserID == userID {
      return o, nil
    }
  }
  return nil, nil
}

func (f *fakeOrderRepo) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  if f.existsErr != nil {
    return false, f.existsErr
  }
  if f.forceExists > 0 {
    f.forceExists--
    return true, nil
  }
  return f.taken[orderNumber], nil
}

type fakeReviewRepo struct {
  mu      sync.Mutex
  reviews []*types.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *types.Review) (*types.Review, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  review.ID = primitive.NewObjectID()
  f.reviews = append(f.reviews, review)
  return review, nil
}

func (f *fakeReviewRepo) GetByProduct(ctx context.Context, productID string) ([]*types.Review, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  out := []*types.Review{}
  for _, r := range f.reviews {
    if r.ProductID == productID {
      out = append(out, r)
    }
  }
  return out, nil
}

func (f *fakeReviewRepo) Aggregate(ctx context.Context, productID string) (*repos.RatingAggregate, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  agg := &repos.RatingAggregate{}
  sum := 0
  for _, r := range f.reviews {
    if r.ProductID == productID {
      agg.Count++
      sum += r.Rating
      agg.Ratings = append(agg.Ratings, r.Rating)
    }
  }
  if agg.Count == 0 {
    return nil, nil
  }
  agg.Average = float64(sum) / float64(agg.Count)
  return agg, nil
}
