package services

import (
  "context"
  "fmt"
  "time"

  "github.com/edgecraft/glass-backend/internal/db"
  "github.com/edgecraft/glass-backend/internal/logger"
)

type HealthStatus struct {
  Status    string           `json:"status"`
  Timestamp time.Time        `json:"timestamp"`
  Database  string           `json:"database"`
  Stats     map[string]int64 `json:"stats,omitempty"`
}

type HealthService interface {
  Check(ctx context.Context) (*HealthStatus, error)
  Stats(ctx context.Context) (map[string]int64, error)
}

type healthService struct {
  log   *logger.Logger
  mongo *db.MongoService
}

func NewHealthService(log *logger.Logger, mongo *db.MongoService) HealthService {
  serviceLog := log.With("service", "HealthService")
  return &healthService{log: serviceLog, mongo: mongo}
}

func (hs *healthService) Check(ctx context.Context) (*HealthStatus, error) {
  if err := hs.mongo.Ping(ctx); err != nil {
    return nil, fmt.Errorf("Database ping failed: %w", err)
  }
  stats, err := hs.mongo.Stats(ctx)
  if err != nil {
    return nil, fmt.Errorf("Failed to collect database stats: %w", err)
  }
  return &HealthStatus{
    Status:    "healthy",
    Timestamp: time.Now().UTC(),
    Database:  "connected",
    Stats:     stats,
  }, nil
}

func (hs *healthService) Stats(ctx context.Context) (map[string]int64, error) {
  return hs.mongo.Stats(ctx)
}
