package handler

import (
	"net/http"
	"strings"

	"ecokart/internal/apperr"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) GetUserStats(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	stats, err := h.statsService.GetUserStats(ctx, uid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetGlobalStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.statsService.GetGlobalStats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetCompanyStats(c echo.Context) error {
	ctx := c.Request().Context()

	email := userEmail(c)
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return apperr.Validation("email not available")
	}

	stats, err := h.statsService.GetCompanyStats(ctx, domain)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
