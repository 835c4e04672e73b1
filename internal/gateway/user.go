package gateway

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
)

func (g *Gateway) GetAllUsers(c echo.Context) error {
	resp, ferr := g.client.Get(c.Request().Context(), "/users", 0, nil)
	return relay(c, resp, ferr)
}

func (g *Gateway) GetUserByID(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	resp, ferr := g.client.Get(c.Request().Context(), "/users/"+itoa(userID), 0, nil)
	return relay(c, resp, ferr)
}

func (g *Gateway) AddUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if !strings.Contains(req.Email, "@") || strings.Contains(req.Email, " ") {
		return echo.NewHTTPError(http.StatusBadRequest, "email must contain @ and no spaces")
	}

	resp, ferr := g.client.Post(c.Request().Context(), "/users", 0, req)
	return relay(c, resp, ferr)
}

func (g *Gateway) UpdateUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == nil && req.Email == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one field must be present")
	}
	if req.Email != nil && (!strings.Contains(*req.Email, "@") || strings.Contains(*req.Email, " ")) {
		return echo.NewHTTPError(http.StatusBadRequest, "email must contain @ and no spaces")
	}

	resp, ferr := g.client.Patch(c.Request().Context(), "/users/"+itoa(userID), 0, nil, req)
	return relay(c, resp, ferr)
}

func (g *Gateway) DeleteUserByID(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	resp, ferr := g.client.Delete(c.Request().Context(), "/users/"+itoa(userID), 0)
	return relay(c, resp, ferr)
}

func (g *Gateway) DeleteAllUsers(c echo.Context) error {
	resp, ferr := g.client.Delete(c.Request().Context(), "/users", 0)
	return relay(c, resp, ferr)
}
