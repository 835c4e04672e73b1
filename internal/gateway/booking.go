package gateway

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
)

func (g *Gateway) GetAllUserBookings(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	query := url.Values{"state": {string(filter)}}
	resp, ferr := g.client.Get(c.Request().Context(), "/bookings", userID, query)
	return relay(c, resp, ferr)
}

func (g *Gateway) GetAllItemBookings(c echo.Context) error {
	ownerID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	query := url.Values{"state": {string(filter)}}
	resp, ferr := g.client.Get(c.Request().Context(), "/bookings/owner", ownerID, query)
	return relay(c, resp, ferr)
}

func (g *Gateway) GetBookingByID(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	resp, ferr := g.client.Get(c.Request().Context(), "/bookings/"+itoa(bookingID), userID, nil)
	return relay(c, resp, ferr)
}

// AddBooking rejects malformed booking windows before they reach the
// server: both dates present, distinct, and not in the past.
func (g *Gateway) AddBooking(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ItemID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "item_id is required")
	}
	if req.Start == nil || req.End == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start and end are required")
	}
	if req.Start.Equal(*req.End) {
		return echo.NewHTTPError(http.StatusBadRequest, "start and end must differ")
	}
	now := time.Now()
	if now.After(*req.Start) || now.After(*req.End) {
		return echo.NewHTTPError(http.StatusBadRequest, "start and end must not be in the past")
	}

	resp, ferr := g.client.Post(c.Request().Context(), "/bookings", userID, req)
	return relay(c, resp, ferr)
}

func (g *Gateway) ApproveBooking(c echo.Context) error {
	userID, err := requiredUserID(c)
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

	query := url.Values{"approved": {strconv.FormatBool(approved)}}
	resp, ferr := g.client.Patch(c.Request().Context(), "/bookings/"+itoa(bookingID), userID, query, nil)
	return relay(c, resp, ferr)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
