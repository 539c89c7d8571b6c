package repository

import (
	"context"
	"time"

	"ecokart/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EmployeeRollup aggregates over users linked by the company_id foreign
// key. The email-domain rollup lives on UserRepository; the two
// membership definitions are deliberately kept separate.
type EmployeeRollup struct {
	TotalEmployees int64
	TotalOrders    int64
	TotalCo2Saved  decimal.Decimal
	TotalPoints    int64
}

type CompanyEmployee struct {
	model.User `gorm:"embedded"`
	OrderCount int64 `json:"orderCount"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, companyID uint) (*model.Company, error)
	FindByDomain(ctx context.Context, domain string) (*model.Company, error)
	AddPoints(ctx context.Context, tx *gorm.DB, companyID uint, points int, co2 decimal.Decimal) error
	CreateHistory(ctx context.Context, tx *gorm.DB, history *model.CompanyPointsHistory) error
	GetHistory(ctx context.Context, companyID uint) ([]*model.CompanyPointsHistory, error)
	SumRedeemed(ctx context.Context, companyID uint) (int64, error)
	GetEmployees(ctx context.Context, companyID uint) ([]*CompanyEmployee, error)
	EmployeeStats(ctx context.Context, companyID uint) (*EmployeeRollup, error)
}

type companyRepoImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepoImpl{
		db: db,
	}
}

func (r *companyRepoImpl) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepoImpl) FindByID(ctx context.Context, companyID uint) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).
		Where("id = ?", companyID).
		First(&company).Error

	if err != nil {
		return nil, err
	}

	return &company, nil
}

func (r *companyRepoImpl) FindByDomain(ctx context.Context, domain string) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).
		Where("domain = ?", domain).
		First(&company).Error

	if err != nil {
		return nil, err
	}

	return &company, nil
}

func (r *companyRepoImpl) AddPoints(ctx context.Context, tx *gorm.DB, companyID uint, points int, co2 decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", companyID).
		Updates(map[string]interface{}{
			"total_points":    gorm.Expr("total_points + ?", points),
			"total_co2_saved": gorm.Expr("total_co2_saved + ?", co2),
			"updated_at":      time.Now(),
		}).Error
}

func (r *companyRepoImpl) CreateHistory(ctx context.Context, tx *gorm.DB, history *model.CompanyPointsHistory) error {
	return tx.WithContext(ctx).Create(history).Error
}

func (r *companyRepoImpl) GetHistory(ctx context.Context, companyID uint) ([]*model.CompanyPointsHistory, error) {
	var history []*model.CompanyPointsHistory
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&history).Error

	if err != nil {
		return nil, err
	}

	return history, nil
}

func (r *companyRepoImpl) SumRedeemed(ctx context.Context, companyID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.CompanyPointsHistory{}).
		Select("COALESCE(SUM(points), 0)").
		Where("company_id = ? AND action = ?", companyID, model.PointsActionRedeemed).
		Scan(&total).Error

	return total, err
}

func (r *companyRepoImpl) GetEmployees(ctx context.Context, companyID uint) ([]*CompanyEmployee, error) {
	var employees []*CompanyEmployee
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("users.*, COALESCE(COUNT(orders.id), 0) AS order_count").
		Joins("LEFT JOIN orders ON orders.user_id = users.id").
		Where("users.company_id = ?", companyID).
		Group("users.id").
		Scan(&employees).Error

	if err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *companyRepoImpl) EmployeeStats(ctx context.Context, companyID uint) (*EmployeeRollup, error) {
	// Joining orders here would repeat each user row per order and
	// inflate the sums, so the order count is a separate query.
	var rollup EmployeeRollup
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select(`
			COUNT(users.id) AS total_employees,
			COALESCE(SUM(users.total_co2_saved), 0) AS total_co2_saved,
			COALESCE(SUM(users.total_points), 0) AS total_points
		`).
		Where("users.company_id = ?", companyID).
		Scan(&rollup).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&model.Order{}).
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.company_id = ?", companyID).
		Count(&rollup.TotalOrders).Error
	if err != nil {
		return nil, err
	}

	return &rollup, nil
}
