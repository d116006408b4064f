package services

import (
  "context"
  "errors"
  "testing"
  "time"

  "github.com/edgecraft/glass-backend/internal/requestdata"
  "github.com/edgecraft/glass-backend/internal/types"
)

func newTestAuthService(userRepo *fakeUserRepo) AuthService {
  return NewAuthService(testLogger(), userRepo, "test-secret", time.Hour)
}

func TestRegisterDuplicateEmail(t *testing.T) {
  as := newTestAuthService(&fakeUserRepo{})
  ctx := context.Background()

  user, token, err := as.Register(ctx, "Ada", "ada@example.com", "hunter22")
  if err != nil {
    t.Fatalf("first registration failed: %v", err)
  }
  if token == "" {
    t.Fatalf("expected access token on registration")
  }
  if user.Role != types.RoleUser {
    t.Fatalf("expected default role %q, got %q", types.RoleUser, user.Role)
  }

  _, _, err = as.Register(ctx, "Ada Again", "ada@example.com", "other")
  if !errors.Is(err, ErrEmailRegistered) {
    t.Fatalf("expected ErrEmailRegistered, got %v", err)
  }
}

func TestLoginVerifiesPassword(t *testing.T) {
  as := newTestAuthService(&fakeUserRepo{})
  ctx := context.Background()

  registered, _, err := as.Register(ctx, "Ada", "ada@example.com", "hunter22")
  if err != nil {
    t.Fatalf("registration failed: %v", err)
  }

  user, token, err := as.Login(ctx, "ada@example.com", "hunter22")
  if err != nil {
    t.Fatalf("login failed: %v", err)
  }
  if user.ID != registered.ID {
    t.Fatalf("login returned wrong user")
  }
  if token == "" {
    t.Fatalf("expected access token on login")
  }

  if _, _, err := as.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
    t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
  }
  if _, _, err := as.Login(ctx, "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
    t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
  }
}

func TestSetContextFromToken(t *testing.T) {
  as := newTestAuthService(&fakeUserRepo{})
  ctx := context.Background()

  user, token, err := as.Register(ctx, "Ada", "ada@example.com", "hunter22")
  if err != nil {
    t.Fatalf("registration failed: %v", err)
  }

  authedCtx, err := as.SetContextFromToken(ctx, token)
  if err != nil {
    t.Fatalf("token rejected: %v", err)
  }
  rd := requestdata.GetRequestData(authedCtx)
  if rd == nil {
    t.Fatalf("no request data in context")
  }
  if rd.UserID != user.ID.Hex() {
    t.Fatalf("expected user id %s, got %s", user.ID.Hex(), rd.UserID)
  }
  if rd.Role != string(types.RoleUser) {
    t.Fatalf("expected role %q in claims, got %q", types.RoleUser, rd.Role)
  }

  if _, err := as.SetContextFromToken(ctx, "not.a.token"); err == nil {
    t.Fatalf("expected garbage token to be rejected")
  }
}

func TestGetProfileNotFound(t *testing.T) {
  as := newTestAuthService(&fakeUserRepo{})
  _, err := as.GetProfile(context.Background(), "64f000000000000000000000")
  if !errors.Is(err, ErrUserNotFound) {
    t.Fatalf("expected ErrUserNotFound, got %v", err)
  }
}
