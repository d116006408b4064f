package services

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "golang.org/x/crypto/bcrypt"

  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/repos"
  "github.com/edgecraft/glass-backend/internal/requestdata"
  "github.com/edgecraft/glass-backend/internal/types"
)

var (
  ErrEmailRegistered    = errors.New("Email already registered")
  ErrInvalidCredentials = errors.New("Invalid credentials")
  ErrUserNotFound       = errors.New("User not found")
)

type AuthService interface {
  Register(ctx context.Context, name, email, password string) (*types.User, string, error)
  Login(ctx context.Context, email, password string) (*types.User, string, error)
  GetProfile(ctx context.Context, userID string) (*types.User, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type accessClaims struct {
  Role string `json:"role"`
  jwt.RegisteredClaims
}

type authService struct {
  log          *logger.Logger
  userRepo     repos.UserRepo
  jwtSecretKey []byte
  accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    log:          serviceLog,
    userRepo:     userRepo,
    jwtSecretKey: []byte(jwtSecretKey),
    accessTTL:    accessTTL,
  }
}

func (as *authService) Register(ctx context.Context, name, email, password string) (*types.User, string, error) {
  existing, err := as.userRepo.GetByEmail(ctx, email)
  if err != nil {
    return nil, "", fmt.Errorf("Failed to check existing user: %w", err)
  }
  if existing != nil {
    return nil, "", ErrEmailRegistered
  }

  hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    return nil, "", fmt.Errorf("Failed to hash password: %w", err)
  }

  user := &types.User{
    Name:         name,
    Email:        email,
    PasswordHash: string(hash),
    Role:         types.RoleUser,
  }
  created, err := as.userRepo.Create(ctx, user)
  if err != nil {
    return nil, "", fmt.Errorf("Failed to create user: %w", err)
  }
  as.log.Info("User registered", "user_id", created.ID.Hex())

  token, err := as.generateAccessToken(created)
  if err != nil {
    return nil, "", err
  }
  return created, token, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*types.User, string, error) {
  user, err := as.userRepo.GetByEmail(ctx, email)
  if err != nil {
    return nil, "", fmt.Errorf("Failed to look up user: %w", err)
  }
  if user == nil {
    return nil, "", ErrInvalidCredentials
  }
  if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
    return nil, "", ErrInvalidCredentials
  }

  token, err := as.generateAccessToken(user)
  if err != nil {
    return nil, "", err
  }
  as.log.Info("User logged in", "user_id", user.ID.Hex())
  return user, token, nil
}

func (as *authService) GetProfile(ctx context.Context, userID string) (*types.User, error) {
  user, err := as.userRepo.GetByID(ctx, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load user: %w", err)
  }
  if user == nil {
    return nil, ErrUserNotFound
  }
  return user, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  claims := &accessClaims{}
  token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("Unexpected signing method: %v", t.Header["alg"])
    }
    return as.jwtSecretKey, nil
  })
  if err != nil || !token.Valid {
    return ctx, fmt.Errorf("invalid or expired token")
  }
  if claims.Subject == "" {
    return ctx, fmt.Errorf("invalid or expired token")
  }

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      claims.Subject,
    Role:        claims.Role,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  now := time.Now()
  claims := accessClaims{
    Role: string(user.Role),
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   user.ID.Hex(),
      IssuedAt:  jwt.NewNumericDate(now),
      ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString(as.jwtSecretKey)
  if err != nil {
    return "", fmt.Errorf("Failed to sign access token: %w", err)
  }
  return signed, nil
}
