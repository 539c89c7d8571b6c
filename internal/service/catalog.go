package service

import (
	"context"
	"errors"
	"fmt"

	"ecokart/internal/apperr"
	"ecokart/internal/model"
	"ecokart/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	GetProducts(ctx context.Context, filter repository.VisibleFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	GetCategories(ctx context.Context) ([]*model.Category, error)
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogServiceImpl) GetProducts(ctx context.Context, filter repository.VisibleFilter) ([]*model.Product, error) {
	return s.productRepo.FindVisible(ctx, filter)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, fmt.Errorf("load product: %w", err)
	}
	return product, nil
}

func (s *catalogServiceImpl) GetCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}
