package types

import (
  "time"

  "go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
  ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
  UserID    string             `bson:"user_id" json:"user_id"`
  ProductID string             `bson:"product_id" json:"product_id"`
  Rating    int                `bson:"rating" json:"rating"`
  Comment   string             `bson:"comment" json:"comment"`
  CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ReviewWithUser is a review joined with the reviewer's display name for the
// public listing.
type ReviewWithUser struct {
  Review   `bson:",inline"`
  UserName string `bson:"user_name" json:"user_name"`
}

// RatingStats is the aggregate block returned alongside a product's reviews.
// Distribution bucket 0 counts 1-star ratings, bucket 4 counts 5-star.
type RatingStats struct {
  AverageRating      float64  `json:"average_rating"`
  TotalReviews       int64    `json:"total_reviews"`
  RatingDistribution [5]int64 `json:"rating_distribution"`
}
