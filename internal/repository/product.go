package repository

import (
	"context"

	"ecokart/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VisibleFilter narrows the buyer-facing product listing. Nil fields are
// ignored.
type VisibleFilter struct {
	CategoryID *uint
	SellerID   *uint
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, productID uint) (*model.Product, error)
	// FindVisible returns only active AND verified products, most CO2
	// saved first.
	FindVisible(ctx context.Context, filter VisibleFilter) ([]*model.Product, error)
	FindBySeller(ctx context.Context, sellerID uint) ([]*model.Product, error)
	Update(ctx context.Context, productID uint, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, productID uint) error
	SetVerification(ctx context.Context, productID uint, approved bool, notes string) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindVisible(ctx context.Context, filter VisibleFilter) ([]*model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("is_active = ? AND is_verified = ?", true, true)

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SellerID != nil {
		q = q.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.PriceMin != nil && filter.PriceMax != nil {
		q = q.Where("price >= ? AND price <= ?", *filter.PriceMin, *filter.PriceMax)
	}

	var products []*model.Product
	err := q.Order("co2_saved_per_unit DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindBySeller(ctx context.Context, sellerID uint) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Update(ctx context.Context, productID uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(updates).Error
}

func (r *productRepoImpl) SoftDelete(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Update("is_active", false).Error
}

func (r *productRepoImpl) SetVerification(ctx context.Context, productID uint, approved bool, notes string) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"is_verified":        approved,
			"verification_notes": notes,
		}).Error
}
