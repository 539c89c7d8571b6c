package handler

import (
	"net/http"

	"ecokart/internal/apperr"
	"ecokart/internal/dto"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

type RewardsHandler struct {
	rewardsService service.RewardsService
}

func NewRewardsHandler(rewardsService service.RewardsService) *RewardsHandler {
	return &RewardsHandler{
		rewardsService: rewardsService,
	}
}

func (h *RewardsHandler) DonatePoints(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.DonatePointsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	result, err := h.rewardsService.DonatePoints(ctx, uid, req.Points)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
