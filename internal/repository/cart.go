package repository

import (
	"context"

	"ecokart/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	// AddItem merges on conflict: an existing (user, product) line has
	// its quantity incremented instead of a second row appearing.
	AddItem(ctx context.Context, item *model.CartItem) error
	// GetItems takes tx so checkout can read the cart inside the same
	// transaction that consumes it.
	GetItems(ctx context.Context, tx *gorm.DB, userID string) ([]*model.CartItem, error)
	SetQuantity(ctx context.Context, userID string, productID uint, quantity int) error
	RemoveItem(ctx context.Context, userID string, productID uint) error
	Clear(ctx context.Context, tx *gorm.DB, userID string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) AddItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
}

func (r *cartRepoImpl) GetItems(ctx context.Context, tx *gorm.DB, userID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := tx.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) SetQuantity(ctx context.Context, userID string, productID uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (r *cartRepoImpl) RemoveItem(ctx context.Context, userID string, productID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepoImpl) Clear(ctx context.Context, tx *gorm.DB, userID string) error {
	return tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
