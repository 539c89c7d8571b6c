package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/model"
	"ecokart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompanyService interface {
	// ProfileForUser returns the caller's company, creating it lazily
	// from the caller's email domain and linking the caller on first
	// access.
	ProfileForUser(ctx context.Context, userID string) (*model.Company, error)
	AddEmployee(ctx context.Context, companyID uint, email string) error
	GetEmployees(ctx context.Context, companyID uint) ([]*repository.CompanyEmployee, error)
	GetStats(ctx context.Context, companyID uint) (*dto.CompanyDashboardStats, error)
	GetPointsHistory(ctx context.Context, companyID uint) ([]*model.CompanyPointsHistory, error)
	// RedeemPoints decrements the company balance and appends one
	// history row, atomically. Minimum redemption is MinCompanyRedemption.
	RedeemPoints(ctx context.Context, companyID uint, points int, description string) (*dto.RedeemPointsResponse, error)
}

type companyServiceImpl struct {
	db          *gorm.DB
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

func NewCompanyService(db *gorm.DB, companyRepo repository.CompanyRepository, userRepo repository.UserRepository) CompanyService {
	return &companyServiceImpl{
		db:          db,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

func emailDomain(email string) (string, error) {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return "", apperr.Validation("email domain not available")
	}
	return strings.ToLower(domain), nil
}

func (s *companyServiceImpl) ProfileForUser(ctx context.Context, userID string) (*model.Company, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if user.CompanyID != nil {
		return s.companyRepo.FindByID(ctx, *user.CompanyID)
	}

	domain, err := emailDomain(user.Email)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByDomain(ctx, domain)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		company = &model.Company{
			Name:   domain,
			Domain: domain,
		}
		if err := s.companyRepo.Create(ctx, company); err != nil {
			return nil, fmt.Errorf("create company: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("load company: %w", err)
	}

	if err := s.userRepo.SetCompany(ctx, s.db, userID, company.ID); err != nil {
		return nil, fmt.Errorf("link user to company: %w", err)
	}

	return company, nil
}

func (s *companyServiceImpl) AddEmployee(ctx context.Context, companyID uint, email string) error {
	if email == "" {
		return apperr.Validation("email is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return fmt.Errorf("load user: %w", err)
	}

	return s.userRepo.SetCompany(ctx, s.db, user.ID, companyID)
}

func (s *companyServiceImpl) GetEmployees(ctx context.Context, companyID uint) ([]*repository.CompanyEmployee, error) {
	return s.companyRepo.GetEmployees(ctx, companyID)
}

func (s *companyServiceImpl) GetStats(ctx context.Context, companyID uint) (*dto.CompanyDashboardStats, error) {
	rollup, err := s.companyRepo.EmployeeStats(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("employee rollup: %w", err)
	}

	redeemed, err := s.companyRepo.SumRedeemed(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("sum redeemed: %w", err)
	}

	return &dto.CompanyDashboardStats{
		TotalEmployees: rollup.TotalEmployees,
		TotalOrders:    rollup.TotalOrders,
		TotalCo2Saved:  rollup.TotalCo2Saved,
		TotalPoints:    rollup.TotalPoints,
		PointsRedeemed: redeemed,
	}, nil
}

func (s *companyServiceImpl) GetPointsHistory(ctx context.Context, companyID uint) ([]*model.CompanyPointsHistory, error) {
	return s.companyRepo.GetHistory(ctx, companyID)
}

func (s *companyServiceImpl) RedeemPoints(ctx context.Context, companyID uint, points int, description string) (*dto.RedeemPointsResponse, error) {
	if points < MinCompanyRedemption {
		return nil, apperr.Validation(fmt.Sprintf("minimum redemption is %d points", MinCompanyRedemption))
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("company not found")
		}
		return nil, fmt.Errorf("load company: %w", err)
	}
	if company.TotalPoints < points {
		return nil, apperr.ErrInsufficientPoints
	}

	if description == "" {
		description = "Points redeemed for tree planting"
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.companyRepo.AddPoints(ctx, tx, companyID, -points, decimal.Zero); err != nil {
			return fmt.Errorf("deduct company points: %w", err)
		}
		return s.companyRepo.CreateHistory(ctx, tx, &model.CompanyPointsHistory{
			CompanyID:   companyID,
			Action:      model.PointsActionRedeemed,
			Points:      points,
			Description: description,
		})
	})
	if err != nil {
		return nil, err
	}

	treesPlanted := points / PointsPerTreeRedemption
	return &dto.RedeemPointsResponse{
		Message:      fmt.Sprintf("Redeemed %d points to plant %d trees", points, treesPlanted),
		TreesPlanted: treesPlanted,
	}, nil
}
