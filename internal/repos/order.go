package repos

import (
  "context"
  "errors"
  "time"

  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/bson/primitive"
  "go.mongodb.org/mongo-driver/mongo"
  "go.mongodb.org/mongo-driver/mongo/options"

  "github.com/edgecraft/glass-backend/internal/db"
  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/types"
)

type OrderRepo interface {
  Create(ctx context.Context, order *types.Order) (*types.Order, error)
  GetByUser(ctx context.Context, userID string) ([]*types.Order, error)
  GetByIDForUser(ctx context.Context, orderID, userID string) (*types.Order, error)
  OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
}

type orderRepo struct {
  coll *mongo.Collection
  log  *logger.Logger
}

func NewOrderRepo(database *mongo.Database, baseLog *logger.Logger) OrderRepo {
  repoLog := baseLog.With("repo", "OrderRepo")
  return &orderRepo{coll: database.Collection(db.CollectionOrders), log: repoLog}
}

func (or *orderRepo) Create(ctx context.Context, order *types.Order) (*types.Order, error) {
  now := time.Now().UTC()
  order.CreatedAt = now
  order.UpdatedAt = now
  res, err := or.coll.InsertOne(ctx, order)
  if err != nil {
    return nil, err
  }
  order.ID = res.InsertedID.(primitive.ObjectID)
  return order, nil
}

func (or *orderRepo) GetByUser(ctx context.Context, userID string) ([]*types.Order, error) {
  opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
  cursor, err := or.coll.Find(ctx, bson.M{"user_id": userID}, opts)
  if err != nil {
    return nil, err
  }
  defer cursor.Close(ctx)

  orders := []*types.Order{}
  if err := cursor.All(ctx, &orders); err != nil {
    return nil, err
  }
  return orders, nil
}

func (or *orderRepo) GetByIDForUser(ctx context.Context, orderID, userID string) (*types.Order, error) {
  oid, err := primitive.ObjectIDFromHex(orderID)
  if err != nil {
    return nil, nil
  }
  var order types.Order
  err = or.coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&order)
  if errors.Is(err, mongo.ErrNoDocuments) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &order, nil
}

func (or *orderRepo) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
  count, err := or.coll.CountDocuments(ctx, bson.M{"order_number": orderNumber})
  if err != nil {
    return false, err
  }
  return count > 0, nil
}
