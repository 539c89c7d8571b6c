package handler

import (
	"net/http"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/model"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// companyForCaller resolves (and lazily creates) the caller's company;
// every company endpoint is scoped to it.
func (h *CompanyHandler) companyForCaller(c echo.Context) (*model.Company, error) {
	uid, err := userID(c)
	if err != nil {
		return nil, err
	}
	return h.companyService.ProfileForUser(c.Request().Context(), uid)
}

func (h *CompanyHandler) GetProfile(c echo.Context) error {
	company, err := h.companyForCaller(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) GetEmployees(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companyForCaller(c)
	if err != nil {
		return err
	}

	employees, err := h.companyService.GetEmployees(ctx, company.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employees)
}

func (h *CompanyHandler) AddEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companyForCaller(c)
	if err != nil {
		return err
	}

	var req dto.AddEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	if err := h.companyService.AddEmployee(ctx, company.ID, req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Employee added"})
}

func (h *CompanyHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companyForCaller(c)
	if err != nil {
		return err
	}

	stats, err := h.companyService.GetStats(ctx, company.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *CompanyHandler) GetPointsHistory(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companyForCaller(c)
	if err != nil {
		return err
	}

	history, err := h.companyService.GetPointsHistory(ctx, company.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, history)
}

func (h *CompanyHandler) RedeemPoints(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companyForCaller(c)
	if err != nil {
		return err
	}

	var req dto.RedeemPointsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	description := ""
	if req.Action != "" {
		description = "Redeemed for " + req.Action
	}

	result, err := h.companyService.RedeemPoints(ctx, company.ID, req.Points, description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
