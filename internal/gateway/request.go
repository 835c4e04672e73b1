package gateway

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
)

func (g *Gateway) GetOwnRequests(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	resp, ferr := g.client.Get(c.Request().Context(), "/requests", userID, nil)
	return relay(c, resp, ferr)
}

func (g *Gateway) GetOtherUserRequests(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	resp, ferr := g.client.Get(c.Request().Context(), "/requests/all", userID, nil)
	return relay(c, resp, ferr)
}

func (g *Gateway) GetRequestByID(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	viewerID, err := optionalUserID(c)
	if err != nil {
		return err
	}
	resp, ferr := g.client.Get(c.Request().Context(), "/requests/"+itoa(requestID), viewerID, nil)
	return relay(c, resp, ferr)
}

func (g *Gateway) AddRequest(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}

	resp, ferr := g.client.Post(c.Request().Context(), "/requests", userID, req)
	return relay(c, resp, ferr)
}
