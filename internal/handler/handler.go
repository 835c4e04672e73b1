package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the identity of the calling user on every
// authenticated route.
const HeaderUserID = "X-Sharer-User-Id"

func userIDFromHeader(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, HeaderUserID+" header is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+HeaderUserID+" header")
	}
	return uint(id), nil
}

// optionalUserIDFromHeader returns 0 when the header is absent; routes that
// merely adjust their view to the caller use this.
func optionalUserIDFromHeader(c echo.Context) (uint, error) {
	if c.Request().Header.Get(HeaderUserID) == "" {
		return 0, nil
	}
	return userIDFromHeader(c)
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
