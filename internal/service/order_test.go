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

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	p := seedProduct(t, db, "10.00", "2.0", true, true)
	addCartLine(t, db, "buyer-1", p.ID, 1)

	resp, err := newCheckoutService(db).Checkout(ctx, "buyer-1", &dto.CheckoutRequest{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	svc := NewOrderService(repository.NewOrderRepository(db))
	if err := svc.UpdateStatus(ctx, resp.OrderID, model.OrderStatusShipped); err != nil {
		t.Fatalf("update status: %v", err)
	}

	var order model.Order
	if err := db.First(&order, resp.OrderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.Status != model.OrderStatusShipped {
		t.Errorf("status = %q, want shipped", order.Status)
	}

	// Totals stay frozen across status changes.
	if !order.TotalAmount.Equal(dec(t, "10.00")) {
		t.Errorf("totalAmount = %s, want 10.00", order.TotalAmount)
	}
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)

	svc := NewOrderService(repository.NewOrderRepository(db))
	err := svc.UpdateStatus(context.Background(), 1, "teleported")

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	db := newTestDB(t)

	svc := NewOrderService(repository.NewOrderRepository(db))
	err := svc.UpdateStatus(context.Background(), 999, model.OrderStatusShipped)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestGetOrdersIncludesItemSnapshots(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "buyer-1", "buyer@example.com", 0)
	p := seedProduct(t, db, "10.00", "2.0", true, true)
	addCartLine(t, db, "buyer-1", p.ID, 2)

	if _, err := newCheckoutService(db).Checkout(ctx, "buyer-1", &dto.CheckoutRequest{}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// Later price edits must not rewrite the snapshot.
	if err := db.Model(&model.Product{}).Where("id = ?", p.ID).Update("price", dec(t, "99.99")).Error; err != nil {
		t.Fatalf("edit price: %v", err)
	}

	svc := NewOrderService(repository.NewOrderRepository(db))
	orders, err := svc.GetOrders(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if len(orders) != 1 || len(orders[0].Items) != 1 {
		t.Fatalf("orders = %d / items = %d, want 1/1", len(orders), len(orders[0].Items))
	}
	if !orders[0].Items[0].Price.Equal(dec(t, "10.00")) {
		t.Errorf("snapshot price = %s, want 10.00", orders[0].Items[0].Price)
	}
}
