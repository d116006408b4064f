package services

import (
  "context"
  "errors"
  "fmt"
  "math"

  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/repos"
  "github.com/edgecraft/glass-backend/internal/types"
)

var ErrInvalidRating = errors.New("Rating must be between 1 and 5")

type ReviewService interface {
  Create(ctx context.Context, userID, productID string, rating int, comment string) (*types.Review, error)
  ListWithStats(ctx context.Context, productID string) ([]*types.ReviewWithUser, *types.RatingStats, error)
}

type reviewService struct {
  log        *logger.Logger
  reviewRepo repos.ReviewRepo
  userRepo   repos.UserRepo
}

func NewReviewService(log *logger.Logger, reviewRepo repos.ReviewRepo, userRepo repos.UserRepo) ReviewService {
  serviceLog := log.With("service", "ReviewService")
  return &reviewService{log: serviceLog, reviewRepo: reviewRepo, userRepo: userRepo}
}

func (rs *reviewService) Create(ctx context.Context, userID, productID string, rating int, comment string) (*types.Review, error) {
  // The HTTP layer already bounds the rating; checked again here so the
  // invariant holds for any future caller.
  if rating < 1 || rating > 5 {
    return nil, ErrInvalidRating
  }
  review := &types.Review{
    UserID:    userID,
    ProductID: productID,
    Rating:    rating,
    Comment:   comment,
  }
  created, err := rs.reviewRepo.Create(ctx, review)
  if err != nil {
    return nil, fmt.Errorf("Failed to create review: %w", err)
  }
  return created, nil
}

func (rs *reviewService) ListWithStats(ctx context.Context, productID string) ([]*types.ReviewWithUser, *types.RatingStats, error) {
  reviews, err := rs.reviewRepo.GetByProduct(ctx, productID)
  if err != nil {
    return nil, nil, fmt.Errorf("Failed to load reviews: %w", err)
  }

  agg, err := rs.reviewRepo.Aggregate(ctx, productID)
  if err != nil {
    return nil, nil, fmt.Errorf("Failed to aggregate ratings: %w", err)
  }

  joined, err := rs.joinUserNames(ctx, reviews)
  if err != nil {
    return nil, nil, err
  }
  return joined, buildRatingStats(agg), nil
}

func (rs *reviewService) joinUserNames(ctx context.Context, reviews []*types.Review) ([]*types.ReviewWithUser, error) {
  ids := make([]string, 0, len(reviews))
  seen := map[string]bool{}
  for _, r := range reviews {
    if !seen[r.UserID] {
      seen[r.UserID] = true
      ids = append(ids, r.UserID)
    }
  }

  names := map[string]string{}
  if len(ids) > 0 {
    users, err := rs.userRepo.GetByIDs(ctx, ids)
    if err != nil {
      return nil, fmt.Errorf("Failed to load reviewers: %w", err)
    }
    for _, u := range users {
      names[u.ID.Hex()] = u.Name
    }
  }

  out := make([]*types.ReviewWithUser, 0, len(reviews))
  for _, r := range reviews {
    out = append(out, &types.ReviewWithUser{Review: *r, UserName: names[r.UserID]})
  }
  return out, nil
}

// buildRatingStats turns the raw aggregate into the public stats block. A nil
// aggregate (no reviews) yields the zeroed block, never an error.
func buildRatingStats(agg *repos.RatingAggregate) *types.RatingStats {
  stats := &types.RatingStats{}
  if agg == nil {
    return stats
  }
  stats.AverageRating = math.Round(agg.Average*10) / 10
  stats.TotalReviews = agg.Count
  for _, rating := range agg.Ratings {
    if rating >= 1 && rating <= 5 {
      stats.RatingDistribution[rating-1]++
    }
  }
  return stats
}
