package repos

import (
  "context"
  "time"

  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/bson/primitive"
  "go.mongodb.org/mongo-driver/mongo"
  "go.mongodb.org/mongo-driver/mongo/options"

  "github.com/edgecraft/glass-backend/internal/db"
  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/types"
)

// RatingAggregate is the raw result of the grouped review aggregation, before
// the service derives the distribution buckets. A nil aggregate means the
// product has no reviews.
type RatingAggregate struct {
  Average float64 `bson:"average_rating"`
  Count   int64   `bson:"total_reviews"`
  Ratings []int   `bson:"ratings"`
}

type ReviewRepo interface {
  Create(ctx context.Context, review *types.Review) (*types.Review, error)
  GetByProduct(ctx context.Context, productID string) ([]*types.Review, error)
  Aggregate(ctx context.Context, productID string) (*RatingAggregate, error)
}

type reviewRepo struct {
  coll *mongo.Collection
  log  *logger.Logger
}

func NewReviewRepo(database *mongo.Database, baseLog *logger.Logger) ReviewRepo {
  repoLog := baseLog.With("repo", "ReviewRepo")
  return &reviewRepo{coll: database.Collection(db.CollectionReviews), log: repoLog}
}

func (rr *reviewRepo) Create(ctx context.Context, review *types.Review) (*types.Review, error) {
  review.CreatedAt = time.Now().UTC()
  res, err := rr.coll.InsertOne(ctx, review)
  if err != nil {
    return nil, err
  }
  review.ID = res.InsertedID.(primitive.ObjectID)
  return review, nil
}

func (rr *reviewRepo) GetByProduct(ctx context.Context, productID string) ([]*types.Review, error) {
  opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
  cursor, err := rr.coll.Find(ctx, bson.M{"product_id": productID}, opts)
  if err != nil {
    return nil, err
  }
  defer cursor.Close(ctx)

  reviews := []*types.Review{}
  if err := cursor.All(ctx, &reviews); err != nil {
    return nil, err
  }
  return reviews, nil
}

func (rr *reviewRepo) Aggregate(ctx context.Context, productID string) (*RatingAggregate, error) {
  pipeline := mongo.Pipeline{
    {{Key: "$match", Value: bson.M{"product_id": productID}}},
    {{Key: "$group", Value: bson.M{
      "_id":            nil,
      "average_rating": bson.M{"$avg": "$rating"},
      "total_reviews":  bson.M{"$sum": 1},
      "ratings":        bson.M{"$push": "$rating"},
    }}},
  }

  cursor, err := rr.coll.Aggregate(ctx, pipeline)
  if err != nil {
    return nil, err
  }
  defer cursor.Close(ctx)

  var results []RatingAggregate
  if err := cursor.All(ctx, &results); err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return &results[0], nil
}
