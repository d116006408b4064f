package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/requestdata"
)

// currentUserID returns the authenticated user's id, or "" when the request
// carries no identity (only possible on unprotected routes).
func currentUserID(c *gin.Context) string {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    return ""
  }
  return rd.UserID
}
