package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edgecraft/glass-backend/internal/services"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Name     string `json:"name"`
    Email    string `json:"email"`
    Password string `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }
  if req.Name == "" || req.Email == "" || req.Password == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
    return
  }

  user, token, err := ah.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
  if err != nil {
    if errors.Is(err, services.ErrEmailRegistered) {
      c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
    return
  }

  c.JSON(http.StatusCreated, gin.H{
    "message":      "User registered successfully",
    "access_token": token,
    "user":         user,
  })
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Email    string `json:"email"`
    Password string `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
    return
  }
  if req.Email == "" || req.Password == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
    return
  }

  user, token, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    if errors.Is(err, services.ErrInvalidCredentials) {
      c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "message":      "Login successful",
    "access_token": token,
    "user":         user,
  })
}

func (ah *AuthHandler) Profile(c *gin.Context) {
  user, err := ah.authService.GetProfile(c.Request.Context(), currentUserID(c))
  if err != nil {
    if errors.Is(err, services.ErrUserNotFound) {
      c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user})
}
