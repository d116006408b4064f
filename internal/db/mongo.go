package db

import (
  "context"
  "fmt"
  "time"

  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/mongo"
  "go.mongodb.org/mongo-driver/mongo/options"
  "golang.org/x/sync/errgroup"

  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/utils"
)

const (
  CollectionUsers    = "users"
  CollectionProducts = "products"
  CollectionCarts    = "carts"
  CollectionOrders   = "orders"
  CollectionReviews  = "reviews"
)

type MongoService struct {
  client *mongo.Client
  db     *mongo.Database
  log    *logger.Logger
}

func NewMongoService(ctx context.Context, log *logger.Logger) (*MongoService, error) {
  serviceLog := log.With("service", "MongoService")

  mongoURI := utils.GetEnv("MONGODB_URI", "mongodb://localhost:27017", log)
  dbName := utils.GetEnv("MONGODB_DB_NAME", "edgecraft_glass", log)

  serviceLog.Info("Connecting to MongoDB...", "db_name", dbName)
  client, err := mongo.Connect(ctx, options.Client().
    ApplyURI(mongoURI).
    SetServerSelectionTimeout(5*time.Second))
  if err != nil {
    serviceLog.Error("Failed to connect to MongoDB", "error", err)
    return nil, fmt.Errorf("Failed to connect to MongoDB: %w", err)
  }

  pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
  defer cancel()
  if err := client.Ping(pingCtx, nil); err != nil {
    serviceLog.Error("MongoDB ping failed", "error", err)
    return nil, fmt.Errorf("MongoDB ping failed: %w", err)
  }

  serviceLog.Info("Connected to MongoDB", "db_name", dbName)
  return &MongoService{client: client, db: client.Database(dbName), log: serviceLog}, nil
}

func (s *MongoService) DB() *mongo.Database {
  return s.db
}

// EnsureIndexes creates the indexes the workflows rely on. The unique indexes
// on users.email, carts.user_id and orders.order_number are load-bearing:
// duplicate registration, the one-cart-per-user invariant and order-number
// uniqueness all depend on them.
func (s *MongoService) EnsureIndexes(ctx context.Context) error {
  s.log.Info("Creating MongoDB indexes...")
  unique := options.Index().SetUnique(true)

  specs := map[string][]mongo.IndexModel{
    CollectionUsers: {
      {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
      {Keys: bson.D{{Key: "created_at", Value: 1}}},
    },
    CollectionProducts: {
      {Keys: bson.D{{Key: "category", Value: 1}}},
      {Keys: bson.D{{Key: "name", Value: 1}}},
      {Keys: bson.D{{Key: "created_at", Value: 1}}},
    },
    CollectionCarts: {
      {Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
      {Keys: bson.D{{Key: "updated_at", Value: 1}}},
    },
    CollectionOrders: {
      {Keys: bson.D{{Key: "order_number", Value: 1}}, Options: unique},
      {Keys: bson.D{{Key: "user_id", Value: 1}}},
      {Keys: bson.D{{Key: "created_at", Value: 1}}},
      {Keys: bson.D{{Key: "status", Value: 1}}},
    },
    CollectionReviews: {
      {Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "user_id", Value: 1}}},
      {Keys: bson.D{{Key: "created_at", Value: 1}}},
    },
  }

  for coll, models := range specs {
    if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
      s.log.Error("Failed to create indexes", "collection", coll, "error", err)
      return fmt.Errorf("Failed to create indexes for %s: %w", coll, err)
    }
  }
  s.log.Info("MongoDB indexes created")
  return nil
}

func (s *MongoService) Ping(ctx context.Context) error {
  return s.client.Ping(ctx, nil)
}

// Stats returns per-collection document counts, gathered concurrently.
func (s *MongoService) Stats(ctx context.Context) (map[string]int64, error) {
  collections := []string{
    CollectionUsers,
    CollectionProducts,
    CollectionCarts,
    CollectionOrders,
    CollectionReviews,
  }

  counts := make([]int64, len(collections))
  g, gctx := errgroup.WithContext(ctx)
  for i, name := range collections {
    i, name := i, name
    g.Go(func() error {
      n, err := s.db.Collection(name).CountDocuments(gctx, bson.M{})
      if err != nil {
        return fmt.Errorf("Failed to count %s: %w", name, err)
      }
      counts[i] = n
      return nil
    })
  }
  if err := g.Wait(); err != nil {
    return nil, err
  }

  stats := make(map[string]int64, len(collections))
  for i, name := range collections {
    stats[name+"_count"] = counts[i]
  }
  return stats, nil
}

func (s *MongoService) Close(ctx context.Context) {
  if err := s.client.Disconnect(ctx); err != nil {
    s.log.Warn("Failed to disconnect from MongoDB", "error", err)
  }
}
