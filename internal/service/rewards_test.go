package service

import (
	"context"
	"errors"
	"testing"

	"ecokart/internal/apperr"
	"ecokart/internal/model"
	"ecokart/internal/repository"
)

func TestDonatePointsDeductsBalance(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "u-1", "alice@example.com", 120)

	svc := NewRewardsService(db, repository.NewUserRepository(db))
	resp, err := svc.DonatePoints(ctx, "u-1", 100)
	if err != nil {
		t.Fatalf("donate: %v", err)
	}

	if resp.TreesPlanted != 2 { // 100 / 50
		t.Errorf("treesPlanted = %d, want 2", resp.TreesPlanted)
	}

	var user model.User
	if err := db.First(&user, "id = ?", "u-1").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.TotalPoints != 20 {
		t.Errorf("points = %d, want 20", user.TotalPoints)
	}
}

func TestDonatePointsInsufficientBalance(t *testing.T) {
	db := newTestDB(t)

	seedUser(t, db, "u-1", "alice@example.com", 30)

	svc := NewRewardsService(db, repository.NewUserRepository(db))
	_, err := svc.DonatePoints(context.Background(), "u-1", 100)
	if !errors.Is(err, apperr.ErrInsufficientPoints) {
		t.Errorf("err = %v, want ErrInsufficientPoints", err)
	}

	var user model.User
	if err := db.First(&user, "id = ?", "u-1").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.TotalPoints != 30 {
		t.Errorf("points = %d, balance must be untouched", user.TotalPoints)
	}
}

func TestDonatePointsRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)

	seedUser(t, db, "u-1", "alice@example.com", 30)

	svc := NewRewardsService(db, repository.NewUserRepository(db))
	_, err := svc.DonatePoints(context.Background(), "u-1", 0)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Errorf("err = %v, want validation error", err)
	}
}
