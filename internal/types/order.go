package types

import (
  "time"

  "go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusConfirmed = "confirmed"

type BillingInfo struct {
  Email   string `bson:"email" json:"email"`
  Phone   string `bson:"phone" json:"phone"`
  Address string `bson:"address" json:"address"`
  City    string `bson:"city" json:"city"`
  State   string `bson:"state" json:"state"`
  Pincode string `bson:"pincode" json:"pincode"`
}

// Order is an immutable snapshot taken at checkout. OrderNumber is the
// human-facing identifier and carries a unique index, distinct from the
// storage id.
type Order struct {
  ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
  UserID        string             `bson:"user_id" json:"user_id"`
  OrderNumber   string             `bson:"order_number" json:"order_number"`
  Items         []CartItem         `bson:"items" json:"items"`
  TotalAmount   float64            `bson:"total_amount" json:"total_amount"`
  PaymentMethod string             `bson:"payment_method" json:"payment_method"`
  BillingInfo   BillingInfo        `bson:"billing_info" json:"billing_info"`
  Status        string             `bson:"status" json:"status"`
  CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
  UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
