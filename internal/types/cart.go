package types

import (
  "time"

  "go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line in a cart or an order. The item id is the caller's
// product reference, not a storage id; re-adding the same product id appends
// a second line rather than incrementing quantity.
type CartItem struct {
  ItemID        string    `bson:"id" json:"id"`
  Name          string    `bson:"name" json:"name"`
  Price         float64   `bson:"price" json:"price"`
  Quantity      int       `bson:"quantity" json:"quantity"`
  Customization string    `bson:"customization,omitempty" json:"customization,omitempty"`
  AddedAt       time.Time `bson:"added_at,omitempty" json:"added_at,omitempty"`
}

// Cart holds the pending line items for a single user. The user_id field
// carries a unique index, so there is never more than one cart per user.
type Cart struct {
  ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
  UserID    string             `bson:"user_id" json:"user_id"`
  Items     []CartItem         `bson:"items" json:"items"`
  CreatedAt time.Time          `bson:"created_at" json:"created_at"`
  UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
