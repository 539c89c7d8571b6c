package handler

import (
	"net/http"
	"strconv"

	"ecokart/internal/apperr"
	"ecokart/internal/repository"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var filter repository.VisibleFilter
	if v := c.QueryParam("category"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return apperr.Validation("invalid category filter")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if v := c.QueryParam("seller"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return apperr.Validation("invalid seller filter")
		}
		sellerID := uint(id)
		filter.SellerID = &sellerID
	}
	if minStr, maxStr := c.QueryParam("priceMin"), c.QueryParam("priceMax"); minStr != "" && maxStr != "" {
		min, err := decimal.NewFromString(minStr)
		if err != nil {
			return apperr.Validation("invalid priceMin filter")
		}
		max, err := decimal.NewFromString(maxStr)
		if err != nil {
			return apperr.Validation("invalid priceMax filter")
		}
		filter.PriceMin = &min
		filter.PriceMax = &max
	}

	products, err := h.catalogService.GetProducts(ctx, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogService.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalogService.GetCategories(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}
