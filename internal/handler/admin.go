package handler

import (
	"net/http"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

// AdminHandler is the external reviewer surface: it flips the
// verification flags that gate buyer visibility.
type AdminHandler struct {
	sellerService service.SellerService
}

func NewAdminHandler(sellerService service.SellerService) *AdminHandler {
	return &AdminHandler{
		sellerService: sellerService,
	}
}

func (h *AdminHandler) VerifySeller(c echo.Context) error {
	ctx := c.Request().Context()

	sellerID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.VerifySellerRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	if err := h.sellerService.VerifySeller(ctx, sellerID, req.Approved); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Seller verification updated"})
}

func (h *AdminHandler) VerifyProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.VerifyProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	if err := h.sellerService.VerifyProduct(ctx, productID, req.Approved, req.Notes); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product verification updated"})
}
