package handler

import (
	"net/http"

	"ecokart/internal/middleware"
	"ecokart/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetAuthUser upserts the caller from their token claims and returns
// the profile. First login creates the user row.
func (h *UserHandler) GetAuthUser(c echo.Context) error {
	ctx := c.Request().Context()

	uid, err := userID(c)
	if err != nil {
		return err
	}

	firstName, _ := c.Get(middleware.UserFirstNameKey).(string)
	lastName, _ := c.Get(middleware.UserLastNameKey).(string)
	picture, _ := c.Get(middleware.UserPictureKey).(string)

	user, err := h.userService.EnsureUser(ctx, uid, userEmail(c), firstName, lastName, picture)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
