package service

import (
	"context"
	"errors"
	"fmt"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/model"
	"ecokart/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	AddItem(ctx context.Context, userID string, req *dto.AddCartItemRequest) error
	GetItems(ctx context.Context, userID string) ([]*model.CartItem, error)
	// UpdateItem with quantity <= 0 removes the line.
	UpdateItem(ctx context.Context, userID string, productID uint, quantity int) error
	RemoveItem(ctx context.Context, userID string, productID uint) error
}

type cartServiceImpl struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(db *gorm.DB, cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartServiceImpl{
		db:          db,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID string, req *dto.AddCartItemRequest) error {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return apperr.Validation("quantity must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product not found")
		}
		return fmt.Errorf("load product: %w", err)
	}
	if !product.IsActive || !product.IsVerified {
		return apperr.NotFound("product not found")
	}

	return s.cartRepo.AddItem(ctx, &model.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
}

func (s *cartServiceImpl) GetItems(ctx context.Context, userID string) ([]*model.CartItem, error) {
	return s.cartRepo.GetItems(ctx, s.db, userID)
}

func (s *cartServiceImpl) UpdateItem(ctx context.Context, userID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return s.cartRepo.RemoveItem(ctx, userID, productID)
	}
	return s.cartRepo.SetQuantity(ctx, userID, productID, quantity)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID string, productID uint) error {
	return s.cartRepo.RemoveItem(ctx, userID, productID)
}
