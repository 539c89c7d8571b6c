package service

import (
	"context"
	"testing"

	"ecokart/internal/model"
	"ecokart/internal/repository"
)

func TestGetProductsHidesInactiveAndUnverified(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	visible := seedProduct(t, db, "10.00", "2.0", true, true)
	seedProduct(t, db, "10.00", "2.0", false, true) // soft-deleted
	seedProduct(t, db, "10.00", "2.0", true, false) // awaiting review

	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	products, err := svc.GetProducts(ctx, repository.VisibleFilter{})
	if err != nil {
		t.Fatalf("get products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("visible products = %d, want 1", len(products))
	}
	if products[0].ID != visible.ID {
		t.Errorf("visible product = %d, want %d", products[0].ID, visible.ID)
	}
}

func TestInactiveFlagSurvivesInsert(t *testing.T) {
	db := newTestDB(t)

	p := seedProduct(t, db, "10.00", "2.0", false, true)

	var got model.Product
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if got.IsActive {
		t.Error("isActive = true after inserting with false")
	}
}

func TestGetProductsFiltersStillGateVisibility(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	hidden := seedProduct(t, db, "10.00", "2.0", true, false)

	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	products, err := svc.GetProducts(ctx, repository.VisibleFilter{CategoryID: &hidden.CategoryID})
	if err != nil {
		t.Fatalf("get products: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("visible products = %d, want 0", len(products))
	}
}

func TestGetProductsOrderedByCo2Desc(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	low := seedProduct(t, db, "10.00", "1.5", true, true)
	high := seedProduct(t, db, "10.00", "9.9", true, true)

	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	products, err := svc.GetProducts(ctx, repository.VisibleFilter{})
	if err != nil {
		t.Fatalf("get products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("visible products = %d, want 2", len(products))
	}
	if products[0].ID != high.ID || products[1].ID != low.ID {
		t.Errorf("order = [%d %d], want [%d %d]", products[0].ID, products[1].ID, high.ID, low.ID)
	}
}

func TestGetProductsPriceRangeFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cheap := seedProduct(t, db, "5.00", "1.0", true, true)
	seedProduct(t, db, "50.00", "1.0", true, true)

	min := dec(t, "1.00")
	max := dec(t, "10.00")
	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	products, err := svc.GetProducts(ctx, repository.VisibleFilter{PriceMin: &min, PriceMax: &max})
	if err != nil {
		t.Fatalf("get products: %v", err)
	}
	if len(products) != 1 || products[0].ID != cheap.ID {
		t.Errorf("filtered products = %+v, want only the 5.00 one", products)
	}
}
