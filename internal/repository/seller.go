package repository

import (
	"context"

	"ecokart/internal/model"

	"gorm.io/gorm"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	FindByID(ctx context.Context, sellerID uint) (*model.Seller, error)
	FindByUserID(ctx context.Context, userID string) (*model.Seller, error)
	SetVerified(ctx context.Context, sellerID uint, verified bool) error
}

type sellerRepoImpl struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepoImpl{
		db: db,
	}
}

func (r *sellerRepoImpl) Create(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepoImpl) FindByID(ctx context.Context, sellerID uint) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).
		Where("id = ?", sellerID).
		First(&seller).Error

	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepoImpl) FindByUserID(ctx context.Context, userID string) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&seller).Error

	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepoImpl) SetVerified(ctx context.Context, sellerID uint, verified bool) error {
	res := r.db.WithContext(ctx).Model(&model.Seller{}).
		Where("id = ?", sellerID).
		Update("is_verified", verified)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
