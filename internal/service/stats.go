package service

import (
	"context"
	"errors"
	"fmt"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/repository"

	"gorm.io/gorm"
)

type StatsService interface {
	GetUserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error)
	GetGlobalStats(ctx context.Context) (*dto.GlobalStatsResponse, error)
	// GetCompanyStats aggregates by email-domain suffix match, not by
	// the company foreign key. The FK-based rollup is the company
	// dashboard's GetStats.
	GetCompanyStats(ctx context.Context, domain string) (*dto.CompanyCo2StatsResponse, error)
}

type statsServiceImpl struct {
	db               *gorm.DB
	userRepo         repository.UserRepository
	contributionRepo repository.ContributionRepository
}

func NewStatsService(db *gorm.DB, userRepo repository.UserRepository, contributionRepo repository.ContributionRepository) StatsService {
	return &statsServiceImpl{
		db:               db,
		userRepo:         userRepo,
		contributionRepo: contributionRepo,
	}
}

func (s *statsServiceImpl) GetUserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	return &dto.UserStatsResponse{
		TotalCo2Saved: user.TotalCo2Saved,
		TotalPoints:   user.TotalPoints,
	}, nil
}

func (s *statsServiceImpl) GetGlobalStats(ctx context.Context) (*dto.GlobalStatsResponse, error) {
	totalCo2, err := s.contributionRepo.SumCo2(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum contributions: %w", err)
	}

	activeUsers, err := s.userRepo.CountWithPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active users: %w", err)
	}

	totalPoints, err := s.userRepo.SumPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum points: %w", err)
	}

	return &dto.GlobalStatsResponse{
		TotalCo2Saved: totalCo2,
		TreesPlanted:  int(totalPoints / PointsPerTreeDonation),
		ActiveUsers:   activeUsers,
	}, nil
}

func (s *statsServiceImpl) GetCompanyStats(ctx context.Context, domain string) (*dto.CompanyCo2StatsResponse, error) {
	if domain == "" {
		return nil, apperr.Validation("email domain not available")
	}

	totalCo2, err := s.userRepo.SumCo2ByEmailDomain(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("sum by domain: %w", err)
	}

	return &dto.CompanyCo2StatsResponse{TotalCo2Saved: totalCo2}, nil
}
