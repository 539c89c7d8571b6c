package handler

import (
	"net/http"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

type SellerHandler struct {
	sellerService service.SellerService
}

func NewSellerHandler(sellerService service.SellerService) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
	}
}

func (h *SellerHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.RegisterSellerRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	seller, err := h.sellerService.Register(ctx, uid, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, seller)
}

func (h *SellerHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	seller, err := h.sellerService.GetProfile(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, seller)
}

func (h *SellerHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	product, err := h.sellerService.CreateProduct(ctx, uid, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *SellerHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	productID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	if err := h.sellerService.UpdateProduct(ctx, uid, productID, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated"})
}

func (h *SellerHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	productID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.sellerService.DeleteProduct(ctx, uid, productID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product removed"})
}

func (h *SellerHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	products, err := h.sellerService.GetProducts(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *SellerHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	orders, err := h.sellerService.GetOrders(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}
