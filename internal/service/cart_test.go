package service

import (
	"context"
	"errors"
	"testing"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/model"
	"ecokart/internal/repository"
)

func TestAddToCartMergesQuantity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	p := seedProduct(t, db, "10.00", "1.0", true, true)

	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	if err := svc.AddItem(ctx, "buyer-1", &dto.AddCartItemRequest{ProductID: p.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddItem(ctx, "buyer-1", &dto.AddCartItemRequest{ProductID: p.ID, Quantity: 3}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	var lines []model.CartItem
	if err := db.Where("user_id = ?", "buyer-1").Find(&lines).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("cart lines = %d, want 1", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	p := seedProduct(t, db, "10.00", "1.0", true, true)

	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	if err := svc.AddItem(ctx, "buyer-1", &dto.AddCartItemRequest{ProductID: p.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	var line model.CartItem
	if err := db.Where("user_id = ?", "buyer-1").First(&line).Error; err != nil {
		t.Fatalf("load line: %v", err)
	}
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", line.Quantity)
	}
}

func TestAddToCartRejectsInvisibleProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	unverified := seedProduct(t, db, "10.00", "1.0", true, false)

	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	err := svc.AddItem(ctx, "buyer-1", &dto.AddCartItemRequest{ProductID: unverified.ID, Quantity: 1})

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestUpdateCartItemZeroQuantityRemovesLine(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	p := seedProduct(t, db, "10.00", "1.0", true, true)
	addCartLine(t, db, "buyer-1", p.ID, 3)

	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	if err := svc.UpdateItem(ctx, "buyer-1", p.ID, 0); err != nil {
		t.Fatalf("update: %v", err)
	}

	var count int64
	if err := db.Model(&model.CartItem{}).Where("user_id = ?", "buyer-1").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("cart lines = %d, want 0", count)
	}
}

func TestUpdateCartItemSetsQuantity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	p := seedProduct(t, db, "10.00", "1.0", true, true)
	addCartLine(t, db, "buyer-1", p.ID, 3)

	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	if err := svc.UpdateItem(ctx, "buyer-1", p.ID, 7); err != nil {
		t.Fatalf("update: %v", err)
	}

	var line model.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", "buyer-1", p.ID).First(&line).Error; err != nil {
		t.Fatalf("load line: %v", err)
	}
	if line.Quantity != 7 {
		t.Errorf("quantity = %d, want 7", line.Quantity)
	}
}

func TestRemoveFromCart(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	p := seedProduct(t, db, "10.00", "1.0", true, true)
	addCartLine(t, db, "buyer-1", p.ID, 1)

	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	if err := svc.RemoveItem(ctx, "buyer-1", p.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	var count int64
	if err := db.Model(&model.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("cart lines = %d, want 0", count)
	}
}
