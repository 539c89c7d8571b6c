package repository

import (
	"context"

	"ecokart/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContributionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, contribution *model.Co2Contribution) error
	SumCo2(ctx context.Context) (decimal.Decimal, error)
}

type contributionRepoImpl struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepoImpl{
		db: db,
	}
}

func (r *contributionRepoImpl) Create(ctx context.Context, tx *gorm.DB, contribution *model.Co2Contribution) error {
	return tx.WithContext(ctx).Create(contribution).Error
}

func (r *contributionRepoImpl) SumCo2(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Co2Contribution{}).
		Select("COALESCE(SUM(co2_amount), 0)").
		Scan(&total).Error

	return total, err
}
