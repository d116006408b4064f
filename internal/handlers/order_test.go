package handlers

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/stretchr/testify/require"

  "github.com/edgecraft/glass-backend/internal/services"
  "github.com/edgecraft/glass-backend/internal/types"
)

type stubOrderService struct {
  created   *types.Order
  createErr error
  gotInput  services.OrderInput
}

func (s *stubOrderService) Create(ctx context.Context, userID string, input services.OrderInput) (*types.Order, error) {
  s.gotInput = input
  if s.createErr != nil {
    return nil, s.createErr
  }
  return s.created, nil
}

func (s *stubOrderService) List(ctx context.Context, userID string) ([]*types.Order, error) {
  return []*types.Order{}, nil
}

func (s *stubOrderService) Get(ctx context.Context, orderID, userID string) (*types.Order, error) {
  if s.created != nil && s.created.ID.Hex() == orderID {
    return s.created, nil
  }
  return nil, services.ErrOrderNotFound
}

func postOrder(t *testing.T, svc services.OrderService, body string) *httptest.ResponseRecorder {
  t.Helper()
  gin.SetMode(gin.TestMode)
  router := gin.New()
  router.POST("/api/orders", NewOrderHandler(svc).Create)

  req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  w := httptest.NewRecorder()
  router.ServeHTTP(w, req)
  return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
  t.Helper()
  var resp map[string]string
  require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
  return resp["error"]
}

func TestCreateOrderMapsValidationErrors(t *testing.T) {
  cases := []struct {
    name    string
    err     error
    message string
  }{
    {"missing fields", services.ErrOrderMissingFields, "Missing required fields"},
    {"empty items", services.ErrOrderItemsEmpty, "Items must be a non-empty array"},
    {"missing billing", services.ErrOrderMissingBilling, "Missing required billing information"},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      w := postOrder(t, &stubOrderService{createErr: tc.err}, `{"items":[{"id":"x"}]}`)
      require.Equal(t, http.StatusBadRequest, w.Code)
      require.Equal(t, tc.message, errorMessage(t, w))
    })
  }
}

func TestCreateOrderMapsStorageFailureTo500(t *testing.T) {
  w := postOrder(t, &stubOrderService{createErr: context.DeadlineExceeded}, `{"items":[{"id":"x"}]}`)
  require.Equal(t, http.StatusInternalServerError, w.Code)
  require.Equal(t, "Failed to create order", errorMessage(t, w))
}

func TestCreateOrderReturns201WithOrder(t *testing.T) {
  stub := &stubOrderService{created: &types.Order{OrderNumber: "EG20260830ABCDEF", Status: types.OrderStatusConfirmed}}
  w := postOrder(t, stub, `{"items":[{"id":"x","name":"Panel","price":10,"quantity":1}],"total_amount":10,"payment_method":"card","billing_info":{"email":"a@b.c","phone":"1","address":"a","city":"b","state":"c","pincode":"d"}}`)
  require.Equal(t, http.StatusCreated, w.Code)

  var resp struct {
    Message string      `json:"message"`
    Order   types.Order `json:"order"`
  }
  require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
  require.Equal(t, "Order created successfully", resp.Message)
  require.Equal(t, "EG20260830ABCDEF", resp.Order.OrderNumber)

  // The bind must keep empty-vs-absent distinguishable for the workflow.
  require.NotNil(t, stub.gotInput.Items)
  require.NotNil(t, stub.gotInput.TotalAmount)
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
  w := postOrder(t, &stubOrderService{}, `not json`)
  require.Equal(t, http.StatusBadRequest, w.Code)
  require.Equal(t, "Missing required fields", errorMessage(t, w))
}
