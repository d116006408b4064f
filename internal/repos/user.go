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

type UserRepo interface {
  Create(ctx context.Context, user *types.User) (*types.User, error)
  GetByEmail(ctx context.Context, email string) (*types.User, error)
  GetByID(ctx context.Context, id string) (*types.User, error)
  GetByIDs(ctx context.Context, ids []string) ([]*types.User, error)
}

type userRepo struct {
  coll *mongo.Collection
  log  *logger.Logger
}

func NewUserRepo(database *mongo.Database, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{coll: database.Collection(db.CollectionUsers), log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
  user.CreatedAt = time.Now().UTC()
  res, err := ur.coll.InsertOne(ctx, user)
  if err != nil {
    return nil, err
  }
  user.ID = res.InsertedID.(primitive.ObjectID)
  return user, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
  var user types.User
  err := ur.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
  if errors.Is(err, mongo.ErrNoDocuments) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, id string) (*types.User, error) {
  oid, err := primitive.ObjectIDFromHex(id)
  if err != nil {
    return nil, nil
  }
  var user types.User
  err = ur.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
  if errors.Is(err, mongo.ErrNoDocuments) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &user, nil
}

func (ur *userRepo) GetByIDs(ctx context.Context, ids []string) ([]*types.User, error) {
  oids := make([]primitive.ObjectID, 0, len(ids))
  for _, id := range ids {
    oid, err := primitive.ObjectIDFromHex(id)
    if err != nil {
      continue
    }
    oids = append(oids, oid)
  }
  if len(oids) == 0 {
    return []*types.User{}, nil
  }

  cursor, err := ur.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
  if err != nil {
    return nil, err
  }
  defer cursor.Close(ctx)

  var users []*types.User
  if err := cursor.All(ctx, &users); err != nil {
    return nil, err
  }
  return users, nil
}
