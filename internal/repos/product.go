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

type ProductRepo interface {
  Create(ctx context.Context, product *types.Product) (*types.Product, error)
  GetAll(ctx context.Context) ([]*types.Product, error)
  GetByCategory(ctx context.Context, category string) ([]*types.Product, error)
  GetByID(ctx context.Context, id string) (*types.Product, error)
}

type productRepo struct {
  coll *mongo.Collection
  log  *logger.Logger
}

func NewProductRepo(database *mongo.Database, baseLog *logger.Logger) ProductRepo {
  repoLog := baseLog.With("repo", "ProductRepo")
  return &productRepo{coll: database.Collection(db.CollectionProducts), log: repoLog}
}

func (pr *productRepo) Create(ctx context.Context, product *types.Product) (*types.Product, error) {
  product.CreatedAt = time.Now().UTC()
  res, err := pr.coll.InsertOne(ctx, product)
  if err != nil {
    return nil, err
  }
  product.ID = res.InsertedID.(primitive.ObjectID)
  return product, nil
}

func (pr *productRepo) GetAll(ctx context.Context) ([]*types.Product, error) {
  return pr.find(ctx, bson.M{})
}

func (pr *productRepo) GetByCategory(ctx context.Context, category string) ([]*types.Product, error) {
  return pr.find(ctx, bson.M{"category": category})
}

func (pr *productRepo) GetByID(ctx context.Context, id string) (*types.Product, error) {
  oid, err := primitive.ObjectIDFromHex(id)
  if err != nil {
    return nil, nil
  }
  var product types.Product
  err = pr.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
  if errors.Is(err, mongo.ErrNoDocuments) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &product, nil
}

func (pr *productRepo) find(ctx context.Context, filter bson.M) ([]*types.Product, error) {
  opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
  cursor, err := pr.coll.Find(ctx, filter, opts)
  if err != nil {
    return nil, err
  }
  defer cursor.Close(ctx)

  products := []*types.Product{}
  if err := cursor.All(ctx, &products); err != nil {
    return nil, err
  }
  return products, nil
}
