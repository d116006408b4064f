package handlers

import (
  "context"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/stretchr/testify/require"

  "github.com/edgecraft/glass-backend/internal/types"
)

type stubReviewService struct {
  created *types.Review
  stats   *types.RatingStats
}

func (s *stubReviewService) Create(ctx context.Context, userID, productID string, rating int, comment string) (*types.Review, error) {
  return s.created, nil
}

func (s *stubReviewService) ListWithStats(ctx context.Context, productID string) ([]*types.ReviewWithUser, *types.RatingStats, error) {
  return []*types.ReviewWithUser{}, s.stats, nil
}

func postReview(t *testing.T, svc *stubReviewService, body string) *httptest.ResponseRecorder {
  t.Helper()
  gin.SetMode(gin.TestMode)
  router := gin.New()
  router.POST("/api/reviews", NewReviewHandler(svc).Create)

  req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  w := httptest.NewRecorder()
  router.ServeHTTP(w, req)
  return w
}

func TestCreateReviewRejectsInvalidRating(t *testing.T) {
  for _, body := range []string{
    `{"product_id":"p1","rating":0}`,
    `{"product_id":"p1","rating":6}`,
    `{"product_id":"p1","rating":-3}`,
  } {
    w := postReview(t, &stubReviewService{}, body)
    require.Equal(t, http.StatusBadRequest, w.Code)
    require.Equal(t, "Rating must be between 1 and 5", errorMessage(t, w))
  }
}

func TestCreateReviewRequiresProductAndRating(t *testing.T) {
  for _, body := range []string{
    `{"rating":4}`,
    `{"product_id":"p1"}`,
    `{}`,
  } {
    w := postReview(t, &stubReviewService{}, body)
    require.Equal(t, http.StatusBadRequest, w.Code)
    require.Equal(t, "Missing required fields", errorMessage(t, w))
  }
}

func TestCreateReviewSucceeds(t *testing.T) {
  stub := &stubReviewService{created: &types.Review{ProductID: "p1", Rating: 4}}
  w := postReview(t, stub, `{"product_id":"p1","rating":4,"comment":"solid"}`)
  require.Equal(t, http.StatusCreated, w.Code)
}
