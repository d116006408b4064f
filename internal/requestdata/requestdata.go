package requestdata

import (
  "context"
)

var requestDataKey = struct{}{}

type RequestData struct {
  TokenString string
  UserID      string
  Role        string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
  return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
  if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
    return rd
  }
  return nil
}
