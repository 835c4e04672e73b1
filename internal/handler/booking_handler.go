package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/bookings", h.GetAllUserBookings)
	e.GET("/bookings/owner", h.GetAllItemBookings)
	e.GET("/bookings/:bookingId", h.GetBookingByID)
	e.POST("/bookings", h.AddBooking)
	e.PATCH("/bookings/:bookingId", h.ApproveBooking)
}

// GetAllUserBookings lists the caller's bookings, newest first, optionally
// narrowed by the state query parameter.
func (h *BookingHandler) GetAllUserBookings(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	filter, ok := models.ParseBookingFilter(c.QueryParam("state"))
	if !ok {
		return service.ErrUnknownFilter
	}

	bookings, err := h.svc.GetAllUserBookings(c.Request().Context(), userID, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// GetAllItemBookings lists bookings placed on the caller's items. Only
// meaningful for users owning at least one item.
func (h *BookingHandler) GetAllItemBookings(c echo.Context) error {
	ownerID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	filter, ok := models.ParseBookingFilter(c.QueryParam("state"))
	if !ok {
		return service.ErrUnknownFilter
	}

	bookings, err := h.svc.GetAllItemBookings(c.Request().Context(), ownerID, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBookingByID(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBookingByID(c.Request().Context(), userID, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) AddBooking(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.AddBooking(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// ApproveBooking confirms or rejects a waiting booking, depending on the
// approved query parameter. Owner only.
func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved query parameter must be true or false")
	}

	booking, err := h.svc.ApproveBooking(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
