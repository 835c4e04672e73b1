package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
	"shareit/internal/service"
)

type ItemRequestHandler struct {
	svc service.ItemRequestService
}

func NewItemRequestHandler(svc service.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{svc: svc}
}

func (h *ItemRequestHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/requests", h.GetOwnRequests)
	e.GET("/requests/all", h.GetOtherUserRequests)
	e.GET("/requests/:requestId", h.GetRequestByID)
	e.POST("/requests", h.AddRequest)
}

func (h *ItemRequestHandler) GetOwnRequests(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	requests, err := h.svc.GetOwnRequests(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *ItemRequestHandler) GetOtherUserRequests(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	requests, err := h.svc.GetOtherUserRequests(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *ItemRequestHandler) GetRequestByID(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	request, err := h.svc.GetRequestByID(c.Request().Context(), requestID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

func (h *ItemRequestHandler) AddRequest(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	request, err := h.svc.AddRequest(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, request)
}
