package service

import (
	"testing"

	"ecokart/internal/client"
	"ecokart/internal/model"
	"ecokart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func seedUser(t *testing.T, db *gorm.DB, id, email string, points int) *model.User {
	t.Helper()

	user := &model.User{ID: id, Email: email, TotalPoints: points}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, domain string, points int) *model.Company {
	t.Helper()

	company := &model.Company{Name: domain, Domain: domain, TotalPoints: points}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return company
}

func seedProduct(t *testing.T, db *gorm.DB, price, co2 string, active, verified bool) *model.Product {
	t.Helper()

	product := &model.Product{
		SellerID:        1,
		CategoryID:      1,
		Name:            "test product",
		Price:           dec(t, price),
		Co2SavedPerUnit: dec(t, co2),
		Stock:           10,
		IsActive:        active,
		IsVerified:      verified,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func addCartLine(t *testing.T, db *gorm.DB, userID string, productID uint, qty int) {
	t.Helper()

	if err := db.Create(&model.CartItem{UserID: userID, ProductID: productID, Quantity: qty}).Error; err != nil {
		t.Fatalf("seed cart line: %v", err)
	}
}

func newCheckoutService(db *gorm.DB) CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		repository.NewCompanyRepository(db),
		repository.NewContributionRepository(db),
	)
}
