package repository

import (
	"context"
	"time"

	"ecokart/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, tx *gorm.DB, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// AddPoints is additive; negative deltas represent donations and
	// redemptions. Sufficiency checks are the caller's job.
	AddPoints(ctx context.Context, tx *gorm.DB, userID string, points int, co2 decimal.Decimal) error
	SetCompany(ctx context.Context, tx *gorm.DB, userID string, companyID uint) error
	CountWithPoints(ctx context.Context) (int64, error)
	SumPoints(ctx context.Context) (int64, error)
	SumCo2ByEmailDomain(ctx context.Context, domain string) (decimal.Decimal, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"email":             user.Email,
			"first_name":        user.FirstName,
			"last_name":         user.LastName,
			"profile_image_url": user.ProfileImageURL,
			"updated_at":        time.Now(),
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, r.db, user.ID)
}

func (r *userRepoImpl) FindByID(ctx context.Context, tx *gorm.DB, userID string) (*model.User, error) {
	var user model.User
	err := tx.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) AddPoints(ctx context.Context, tx *gorm.DB, userID string, points int, co2 decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_points":    gorm.Expr("total_points + ?", points),
			"total_co2_saved": gorm.Expr("total_co2_saved + ?", co2),
			"updated_at":      time.Now(),
		}).Error
}

func (r *userRepoImpl) SetCompany(ctx context.Context, tx *gorm.DB, userID string, companyID uint) error {
	return tx.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("company_id", companyID).Error
}

func (r *userRepoImpl) CountWithPoints(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("total_points > 0").
		Count(&count).Error

	return count, err
}

func (r *userRepoImpl) SumPoints(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("COALESCE(SUM(total_points), 0)").
		Scan(&total).Error

	return total, err
}

func (r *userRepoImpl) SumCo2ByEmailDomain(ctx context.Context, domain string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("COALESCE(SUM(total_co2_saved), 0)").
		Where("email LIKE ?", "%@"+domain).
		Scan(&total).Error

	return total, err
}
