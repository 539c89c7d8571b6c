package service

import (
	"context"
	"fmt"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/model"
	"ecokart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CheckoutService interface {
	// Checkout converts the user's cart into an order, credits eco
	// points and CO2 to the user (and their employer, if any), records
	// the contribution and clears the cart. The whole sequence runs in
	// one database transaction: any step failing aborts all of it.
	Checkout(ctx context.Context, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db               *gorm.DB
	cartRepo         repository.CartRepository
	orderRepo        repository.OrderRepository
	userRepo         repository.UserRepository
	companyRepo      repository.CompanyRepository
	contributionRepo repository.ContributionRepository
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	contributionRepo repository.ContributionRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:               db,
		cartRepo:         cartRepo,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		companyRepo:      companyRepo,
		contributionRepo: contributionRepo,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	var order *model.Order
	var totalCo2 decimal.Decimal
	var pointsEarned int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, err := s.cartRepo.GetItems(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(lines) == 0 {
			return apperr.ErrEmptyCart
		}

		totalAmount := decimal.Zero
		totalCo2 = decimal.Zero
		for _, line := range lines {
			qty := decimal.NewFromInt(int64(line.Quantity))
			totalAmount = totalAmount.Add(line.Product.Price.Mul(qty))
			totalCo2 = totalCo2.Add(line.Product.Co2SavedPerUnit.Mul(qty))
		}
		totalAmount = totalAmount.Round(2)
		totalCo2 = totalCo2.Round(2)

		// 1 point per whole kg of CO2 saved.
		pointsEarned = int(totalCo2.IntPart())

		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}

		order = &model.Order{
			UserID:          userID,
			TotalAmount:     totalAmount,
			TotalCo2Saved:   totalCo2,
			Status:          model.OrderStatusPending,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
		}

		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		items := make([]*model.OrderItem, len(lines))
		for i, line := range lines {
			qty := decimal.NewFromInt(int64(line.Quantity))
			items[i] = &model.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
				Co2Saved:  line.Product.Co2SavedPerUnit.Mul(qty).Round(2),
			}
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		if err := s.userRepo.AddPoints(ctx, tx, userID, pointsEarned, totalCo2); err != nil {
			return fmt.Errorf("credit user points: %w", err)
		}

		if user.CompanyID != nil {
			if err := s.companyRepo.AddPoints(ctx, tx, *user.CompanyID, pointsEarned, totalCo2); err != nil {
				return fmt.Errorf("credit company points: %w", err)
			}
			if err := s.companyRepo.CreateHistory(ctx, tx, &model.CompanyPointsHistory{
				CompanyID:   *user.CompanyID,
				Action:      model.PointsActionEarned,
				Points:      pointsEarned,
				Description: fmt.Sprintf("Employee order #%d", order.ID),
			}); err != nil {
				return fmt.Errorf("record company history: %w", err)
			}
		}

		if err := s.contributionRepo.Create(ctx, tx, &model.Co2Contribution{
			UserID:       userID,
			OrderID:      order.ID,
			Co2Amount:    totalCo2,
			PointsEarned: pointsEarned,
		}); err != nil {
			return fmt.Errorf("record contribution: %w", err)
		}

		if err := s.cartRepo.Clear(ctx, tx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		Message:      "Order placed successfully",
		OrderID:      order.ID,
		PointsEarned: pointsEarned,
		Co2Saved:     totalCo2,
	}, nil
}
