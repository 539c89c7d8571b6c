package handler

import (
	"net/http"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if req.ProductID == 0 {
		return apperr.Validation("productId is required")
	}

	if err := h.cartService.AddItem(ctx, uid, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Item added to cart"})
}

func (h *CartHandler) GetItems(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.GetItems(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	productID, err := uintParam(c, "productId")
	if err != nil {
		return err
	}

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	if err := h.cartService.UpdateItem(ctx, uid, productID, req.Quantity); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Cart updated successfully"})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	productID, err := uintParam(c, "productId")
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveItem(ctx, uid, productID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed from cart"})
}
