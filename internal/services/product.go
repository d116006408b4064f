package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/edgecraft/glass-backend/internal/logger"
  "github.com/edgecraft/glass-backend/internal/repos"
  "github.com/edgecraft/glass-backend/internal/types"
)

var ErrProductNotFound = errors.New("Product not found")

type ProductService interface {
  List(ctx context.Context, category string) ([]*types.Product, error)
  Create(ctx context.Context, product *types.Product) (*types.Product, error)
  Get(ctx context.Context, productID string) (*types.Product, error)
}

type productService struct {
  log         *logger.Logger
  productRepo repos.ProductRepo
}

func NewProductService(log *logger.Logger, productRepo repos.ProductRepo) ProductService {
  serviceLog := log.With("service", "ProductService")
  return &productService{log: serviceLog, productRepo: productRepo}
}

func (ps *productService) List(ctx context.Context, category string) ([]*types.Product, error) {
  if category != "" {
    return ps.productRepo.GetByCategory(ctx, category)
  }
  return ps.productRepo.GetAll(ctx)
}

func (ps *productService) Create(ctx context.Context, product *types.Product) (*types.Product, error) {
  created, err := ps.productRepo.Create(ctx, product)
  if err != nil {
    return nil, fmt.Errorf("Failed to create product: %w", err)
  }
  ps.log.Info("Product created", "product_id", created.ID.Hex(), "category", created.Category)
  return created, nil
}

func (ps *productService) Get(ctx context.Context, productID string) (*types.Product, error) {
  product, err := ps.productRepo.GetByID(ctx, productID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load product: %w", err)
  }
  if product == nil {
    return nil, ErrProductNotFound
  }
  return product, nil
}
