package service

import (
	"context"
	"errors"
	"testing"

	"ecokart/internal/apperr"
	"ecokart/internal/model"
	"ecokart/internal/repository"
)

func TestRedeemCompanyPoints(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	company := seedCompany(t, db, "acme.com", 250)

	svc := NewCompanyService(db, repository.NewCompanyRepository(db), repository.NewUserRepository(db))
	resp, err := svc.RedeemPoints(ctx, company.ID, 100, "tree planting drive")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}

	if resp.TreesPlanted != 100/PointsPerTreeRedemption {
		t.Errorf("treesPlanted = %d, want %d", resp.TreesPlanted, 100/PointsPerTreeRedemption)
	}

	var got model.Company
	if err := db.First(&got, company.ID).Error; err != nil {
		t.Fatalf("load company: %v", err)
	}
	if got.TotalPoints != 150 {
		t.Errorf("points after redeem = %d, want 150", got.TotalPoints)
	}

	var history []model.CompanyPointsHistory
	if err := db.Where("company_id = ?", company.ID).Find(&history).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(history))
	}
	if history[0].Action != model.PointsActionRedeemed || history[0].Points != 100 {
		t.Errorf("history = %+v, want redeemed/100", history[0])
	}
}

func TestRedeemBelowMinimumRejected(t *testing.T) {
	db := newTestDB(t)

	company := seedCompany(t, db, "acme.com", 250)

	svc := NewCompanyService(db, repository.NewCompanyRepository(db), repository.NewUserRepository(db))
	_, err := svc.RedeemPoints(context.Background(), company.ID, MinCompanyRedemption-1, "")

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestRedeemInsufficientBalanceRejected(t *testing.T) {
	db := newTestDB(t)

	company := seedCompany(t, db, "acme.com", 50)

	svc := NewCompanyService(db, repository.NewCompanyRepository(db), repository.NewUserRepository(db))
	_, err := svc.RedeemPoints(context.Background(), company.ID, 100, "")
	if !errors.Is(err, apperr.ErrInsufficientPoints) {
		t.Errorf("err = %v, want ErrInsufficientPoints", err)
	}

	var got model.Company
	if err := db.First(&got, company.ID).Error; err != nil {
		t.Fatalf("load company: %v", err)
	}
	if got.TotalPoints != 50 {
		t.Errorf("points = %d, balance must be untouched", got.TotalPoints)
	}
}

func TestProfileForUserCreatesCompanyFromEmailDomain(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "u-1", "alice@initech.com", 0)

	svc := NewCompanyService(db, repository.NewCompanyRepository(db), repository.NewUserRepository(db))
	company, err := svc.ProfileForUser(ctx, "u-1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if company.Domain != "initech.com" {
		t.Errorf("domain = %q, want initech.com", company.Domain)
	}

	var user model.User
	if err := db.First(&user, "id = ?", "u-1").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.CompanyID == nil || *user.CompanyID != company.ID {
		t.Errorf("user not linked to company: %+v", user.CompanyID)
	}

	// Second access reuses the same company.
	again, err := svc.ProfileForUser(ctx, "u-1")
	if err != nil {
		t.Fatalf("second profile: %v", err)
	}
	if again.ID != company.ID {
		t.Errorf("second profile company = %d, want %d", again.ID, company.ID)
	}
}

func TestAddEmployeeLinksUserByEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	company := seedCompany(t, db, "acme.com", 0)
	seedUser(t, db, "u-1", "bob@acme.com", 0)

	svc := NewCompanyService(db, repository.NewCompanyRepository(db), repository.NewUserRepository(db))
	if err := svc.AddEmployee(ctx, company.ID, "bob@acme.com"); err != nil {
		t.Fatalf("add employee: %v", err)
	}

	var user model.User
	if err := db.First(&user, "id = ?", "u-1").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.CompanyID == nil || *user.CompanyID != company.ID {
		t.Errorf("user companyId = %v, want %d", user.CompanyID, company.ID)
	}
}
