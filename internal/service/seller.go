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

type SellerService interface {
	Register(ctx context.Context, userID string, req *dto.RegisterSellerRequest) (*model.Seller, error)
	GetProfile(ctx context.Context, userID string) (*model.Seller, error)
	CreateProduct(ctx context.Context, userID string, req *dto.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, userID string, productID uint, req *dto.UpdateProductRequest) error
	// DeleteProduct soft-deletes: the row stays, IsActive drops to false.
	DeleteProduct(ctx context.Context, userID string, productID uint) error
	GetProducts(ctx context.Context, userID string) ([]*model.Product, error)
	GetOrders(ctx context.Context, userID string) ([]*model.Order, error)

	// External reviewer surface.
	VerifySeller(ctx context.Context, sellerID uint, approved bool) error
	VerifyProduct(ctx context.Context, productID uint, approved bool, notes string) error
}

type sellerServiceImpl struct {
	sellerRepo  repository.SellerRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewSellerService(
	sellerRepo repository.SellerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) SellerService {
	return &sellerServiceImpl{
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *sellerServiceImpl) Register(ctx context.Context, userID string, req *dto.RegisterSellerRequest) (*model.Seller, error) {
	if req.BusinessName == "" || req.CertificationType == "" {
		return nil, apperr.Validation("businessName and certificationType are required")
	}

	_, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err == nil {
		return nil, apperr.Conflict("already registered as seller")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing seller: %w", err)
	}

	seller := &model.Seller{
		UserID:            userID,
		BusinessName:      req.BusinessName,
		CertificationType: req.CertificationType,
		CertificateURL:    req.CertificateURL,
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, fmt.Errorf("create seller: %w", err)
	}

	return seller, nil
}

func (s *sellerServiceImpl) GetProfile(ctx context.Context, userID string) (*model.Seller, error) {
	seller, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("seller not found")
		}
		return nil, fmt.Errorf("load seller: %w", err)
	}
	return seller, nil
}

// requireSeller resolves the caller's seller record; not being one is a
// 403 per the error taxonomy.
func (s *sellerServiceImpl) requireSeller(ctx context.Context, userID string) (*model.Seller, error) {
	seller, err := s.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("not registered as seller")
		}
		return nil, fmt.Errorf("load seller: %w", err)
	}
	return seller, nil
}

func (s *sellerServiceImpl) CreateProduct(ctx context.Context, userID string, req *dto.CreateProductRequest) (*model.Product, error) {
	seller, err := s.requireSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name == "" || req.CategoryID == 0 {
		return nil, apperr.Validation("name and categoryId are required")
	}
	if req.Price.IsNegative() || req.Co2SavedPerUnit.IsNegative() {
		return nil, apperr.Validation("price and co2SavedPerUnit must not be negative")
	}

	// New products start active but unverified, hence buyer-invisible
	// until a reviewer approves them.
	product := &model.Product{
		SellerID:        seller.ID,
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price.Round(2),
		ImageURL:        req.ImageURL,
		Co2SavedPerUnit: req.Co2SavedPerUnit.Round(2),
		EcoRating:       req.EcoRating,
		Stock:           req.Stock,
		IsActive:        true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *sellerServiceImpl) ownedProduct(ctx context.Context, userID string, productID uint) (*model.Product, error) {
	seller, err := s.requireSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product.SellerID != seller.ID {
		return nil, apperr.Forbidden("product belongs to another seller")
	}
	return product, nil
}

func (s *sellerServiceImpl) UpdateProduct(ctx context.Context, userID string, productID uint, req *dto.UpdateProductRequest) error {
	if _, err := s.ownedProduct(ctx, userID, productID); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return apperr.Validation("price must not be negative")
		}
		updates["price"] = req.Price.Round(2)
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Co2SavedPerUnit != nil {
		if req.Co2SavedPerUnit.IsNegative() {
			return apperr.Validation("co2SavedPerUnit must not be negative")
		}
		updates["co2_saved_per_unit"] = req.Co2SavedPerUnit.Round(2)
	}
	if req.EcoRating != nil {
		updates["eco_rating"] = *req.EcoRating
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if len(updates) == 0 {
		return nil
	}

	return s.productRepo.Update(ctx, productID, updates)
}

func (s *sellerServiceImpl) DeleteProduct(ctx context.Context, userID string, productID uint) error {
	if _, err := s.ownedProduct(ctx, userID, productID); err != nil {
		return err
	}
	return s.productRepo.SoftDelete(ctx, productID)
}

func (s *sellerServiceImpl) GetProducts(ctx context.Context, userID string) ([]*model.Product, error) {
	seller, err := s.requireSeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.productRepo.FindBySeller(ctx, seller.ID)
}

func (s *sellerServiceImpl) GetOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	seller, err := s.requireSeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.FindBySeller(ctx, seller.ID)
}

func (s *sellerServiceImpl) VerifySeller(ctx context.Context, sellerID uint, approved bool) error {
	err := s.sellerRepo.SetVerified(ctx, sellerID, approved)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("seller not found")
		}
		return fmt.Errorf("verify seller: %w", err)
	}
	return nil
}

func (s *sellerServiceImpl) VerifyProduct(ctx context.Context, productID uint, approved bool, notes string) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product not found")
		}
		return fmt.Errorf("load product: %w", err)
	}
	return s.productRepo.SetVerification(ctx, productID, approved, notes)
}
