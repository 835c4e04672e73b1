package gateway

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
)

func (g *Gateway) GetAllItems(c echo.Context) error {
	ownerID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	resp, ferr := g.client.Get(c.Request().Context(), "/items", ownerID, nil)
	return relay(c, resp, ferr)
}

func (g *Gateway) GetItemByID(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	viewerID, err := optionalUserID(c)
	if err != nil {
		return err
	}
	resp, ferr := g.client.Get(c.Request().Context(), "/items/"+itoa(itemID), viewerID, nil)
	return relay(c, resp, ferr)
}

func (g *Gateway) AddItem(c echo.Context) error {
	ownerID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if req.Available == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "available is required")
	}

	resp, ferr := g.client.Post(c.Request().Context(), "/items", ownerID, req)
	return relay(c, resp, ferr)
}

// EditItem forwards a partial update; presence of at least one field is
// the only gateway-side requirement.
func (g *Gateway) EditItem(c echo.Context) error {
	ownerID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == nil && req.Description == nil && req.Available == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one field must be present")
	}

	resp, ferr := g.client.Patch(c.Request().Context(), "/items/"+itoa(itemID), ownerID, nil, req)
	return relay(c, resp, ferr)
}

func (g *Gateway) FindItems(c echo.Context) error {
	query := url.Values{"text": {c.QueryParam("text")}}
	resp, ferr := g.client.Get(c.Request().Context(), "/items/search", 0, query)
	return relay(c, resp, ferr)
}

func (g *Gateway) AddComment(c echo.Context) error {
	authorID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	resp, ferr := g.client.Post(c.Request().Context(), "/items/"+itoa(itemID)+"/comment", authorID, req)
	return relay(c, resp, ferr)
}
