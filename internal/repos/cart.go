package repos

import (
  "context"
  "errors"
  "time"

  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/bson/primitive"
  "go.mongodb.org/mongo-driver/mongo"

  "github.com/edgecraft/glass-backend/internal/db"
  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/types"
)

// CartRepo exposes single-document mutations against the carts collection.
// The mutation methods return whether a document was actually modified; a
// false result means no matching cart/item combination existed.
type CartRepo interface {
  Create(ctx context.Context, userID string) (*types.Cart, error)
  GetByUser(ctx context.Context, userID string) (*types.Cart, error)
  PushItem(ctx context.Context, userID string, item types.CartItem) (bool, error)
  SetItemQuantity(ctx context.Context, userID, itemID string, quantity int) (bool, error)
  PullItem(ctx context.Context, userID, itemID string) (bool, error)
  SetItems(ctx context.Context, userID string, items []types.CartItem) (bool, error)
}

type cartRepo struct {
  coll *mongo.Collection
  log  *logger.Logger
}

func NewCartRepo(database *mongo.Database, baseLog *logger.Logger) CartRepo {
  repoLog := baseLog.With("repo", "CartRepo")
  return &cartRepo{coll: database.Collection(db.CollectionCarts), log: repoLog}
}

func (cr *cartRepo) Create(ctx context.Context, userID string) (*types.Cart, error) {
  now := time.Now().UTC()
  cart := &types.Cart{
    UserID:    userID,
    Items:     []types.CartItem{},
    CreatedAt: now,
    UpdatedAt: now,
  }
  res, err := cr.coll.InsertOne(ctx, cart)
  if err != nil {
    return nil, err
  }
  cart.ID = res.InsertedID.(primitive.ObjectID)
  return cart, nil
}

func (cr *cartRepo) GetByUser(ctx context.Context, userID string) (*types.Cart, error) {
  var cart types.Cart
  err := cr.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
  if errors.Is(err, mongo.ErrNoDocuments) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &cart, nil
}

func (cr *cartRepo) PushItem(ctx context.Context, userID string, item types.CartItem) (bool, error) {
  res, err := cr.coll.UpdateOne(ctx,
    bson.M{"user_id": userID},
    bson.M{
      "$push": bson.M{"items": item},
      "$set":  bson.M{"updated_at": time.Now().UTC()},
    })
  if err != nil {
    return false, err
  }
  return res.ModifiedCount > 0, nil
}

func (cr *cartRepo) SetItemQuantity(ctx context.Context, userID, itemID string, quantity int) (bool, error) {
  res, err := cr.coll.UpdateOne(ctx,
    bson.M{"user_id": userID, "items.id": itemID},
    bson.M{"$set": bson.M{
      "items.$.quantity": quantity,
      "updated_at":       time.Now().UTC(),
    }})
  if err != nil {
    return false, err
  }
  return res.ModifiedCount > 0, nil
}

func (cr *cartRepo) PullItem(ctx context.Context, userID, itemID string) (bool, error) {
  res, err := cr.coll.UpdateOne(ctx,
    bson.M{"user_id": userID},
    bson.M{
      "$pull": bson.M{"items": bson.M{"id": itemID}},
      "$set":  bson.M{"updated_at": time.Now().UTC()},
    })
  if err != nil {
    return false, err
  }
  return res.ModifiedCount > 0, nil
}

func (cr *cartRepo) SetItems(ctx context.Context, userID string, items []types.CartItem) (bool, error) {
  if items == nil {
    items = []types.CartItem{}
  }
  res, err := cr.coll.UpdateOne(ctx,
    bson.M{"user_id": userID},
    bson.M{"$set": bson.M{
      "items":      items,
      "updated_at": time.Now().UTC(),
    }})
  if err != nil {
    return false, err
  }
  // An already-empty cart matches without modifying; that still counts.
  return res.ModifiedCount > 0 || res.MatchedCount > 0, nil
}
