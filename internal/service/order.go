package service

import (
	"context"
	"errors"
	"fmt"

	"ecokart/internal/apperr"
	"ecokart/internal/model"
	"ecokart/internal/repository"

	"gorm.io/gorm"
)

var validOrderStatuses = map[string]bool{
	model.OrderStatusPending:    true,
	model.OrderStatusProcessing: true,
	model.OrderStatusShipped:    true,
	model.OrderStatusDelivered:  true,
	model.OrderStatusCancelled:  true,
}

type OrderService interface {
	GetOrders(ctx context.Context, userID string) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) error
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) GetOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	if !validOrderStatuses[status] {
		return apperr.Validation("invalid order status")
	}

	err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
