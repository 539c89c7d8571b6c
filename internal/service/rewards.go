package service

import (
	"context"
	"fmt"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tree-conversion ratios. The personal donation and company redemption
// paths currently use different figures; keeping both named makes it a
// one-line change if product settles on one.
const (
	PointsPerTreeDonation   = 50
	PointsPerTreeRedemption = 20
	MinCompanyRedemption    = 100
)

type RewardsService interface {
	// DonatePoints deducts points from the user's balance in exchange
	// for tree planting. Rejects when the balance is insufficient.
	DonatePoints(ctx context.Context, userID string, points int) (*dto.DonatePointsResponse, error)
}

type rewardsServiceImpl struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewRewardsService(db *gorm.DB, userRepo repository.UserRepository) RewardsService {
	return &rewardsServiceImpl{
		db:       db,
		userRepo: userRepo,
	}
}

func (s *rewardsServiceImpl) DonatePoints(ctx context.Context, userID string, points int) (*dto.DonatePointsResponse, error) {
	if points <= 0 {
		return nil, apperr.Validation("points must be positive")
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user.TotalPoints < points {
		return nil, apperr.ErrInsufficientPoints
	}

	if err := s.userRepo.AddPoints(ctx, s.db, userID, -points, decimal.Zero); err != nil {
		return nil, fmt.Errorf("deduct points: %w", err)
	}

	treesPlanted := points / PointsPerTreeDonation
	return &dto.DonatePointsResponse{
		Message:      fmt.Sprintf("Successfully donated %d points to plant %d trees!", points, treesPlanted),
		TreesPlanted: treesPlanted,
	}, nil
}
