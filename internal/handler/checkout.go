package handler

import (
	"net/http"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	orderService    service.OrderService
}

func NewCheckoutHandler(checkoutService service.CheckoutService, orderService service.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	result, err := h.checkoutService.Checkout(ctx, uid, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.GetOrders(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *CheckoutHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	if err := h.orderService.UpdateStatus(ctx, orderID, req.Status); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Order status updated"})
}
