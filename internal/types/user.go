package types

import (
  "time"

  "go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
  RoleUser  Role = "user"
  RoleAdmin Role = "admin"
)

type User struct {
  ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
  Name         string             `bson:"name" json:"name"`
  Email        string             `bson:"email" json:"email"`
  PasswordHash string             `bson:"password_hash" json:"-"`
  Role         Role               `bson:"role" json:"role"`
  CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
