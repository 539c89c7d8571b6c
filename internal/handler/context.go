package handler

import (
	"strconv"

	"ecokart/internal/apperr"
	"ecokart/internal/middleware"

	"github.com/labstack/echo/v4"
)

func userID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", apperr.Unauthorized("not authenticated")
	}
	return id, nil
}

func userEmail(c echo.Context) string {
	email, _ := c.Get(middleware.UserEmailKey).(string)
	return email
}

func uintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(v), nil
}
