package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
	"shareit/internal/service"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/items", h.GetAllItems)
	e.GET("/items/search", h.FindItems)
	e.GET("/items/:itemId", h.GetItemByID)
	e.POST("/items", h.AddItem)
	e.PATCH("/items/:itemId", h.EditItem)
	e.POST("/items/:itemId/comment", h.AddComment)
}

func (h *ItemHandler) GetAllItems(c echo.Context) error {
	ownerID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	items, err := h.svc.GetAllItems(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetItemByID is open to everyone; the caller's identity only decides
// whether the booking schedule is included in the view.
func (h *ItemHandler) GetItemByID(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	viewerID, err := optionalUserIDFromHeader(c)
	if err != nil {
		return err
	}

	item, err := h.svc.GetItemByID(c.Request().Context(), itemID, viewerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) AddItem(c echo.Context) error {
	ownerID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.AddItem(c.Request().Context(), ownerID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) EditItem(c echo.Context) error {
	ownerID, err := userIDFromHeader(c)
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

	item, err := h.svc.EditItem(c.Request().Context(), itemID, ownerID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) FindItems(c echo.Context) error {
	items, err := h.svc.FindItems(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) AddComment(c echo.Context) error {
	authorID, err := userIDFromHeader(c)
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

	comment, err := h.svc.AddComment(c.Request().Context(), itemID, authorID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}
