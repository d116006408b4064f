package types

import (
  "time"

  "go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
  ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
  Name           string             `bson:"name" json:"name"`
  Category       string             `bson:"category" json:"category"`
  Description    string             `bson:"description" json:"description"`
  BasePrice      float64            `bson:"basePrice" json:"basePrice"`
  Specifications []string           `bson:"specifications" json:"specifications"`
  InStock        bool               `bson:"inStock" json:"inStock"`
  CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
  UpdatedAt      time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
