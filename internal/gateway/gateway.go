package gateway

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shareit/internal/handler"
	"shareit/internal/models"
)

// Gateway validates inbound requests and forwards the well-formed ones to
// the server layer. Bad input is rejected here and never reaches the server.
type Gateway struct {
	client *Client
}

func New(client *Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) RegisterRoutes(e *echo.Echo) {
	e.GET("/bookings", g.GetAllUserBookings)
	e.GET("/bookings/owner", g.GetAllItemBookings)
	e.GET("/bookings/:bookingId", g.GetBookingByID)
	e.POST("/bookings", g.AddBooking)
	e.PATCH("/bookings/:bookingId", g.ApproveBooking)

	e.GET("/items", g.GetAllItems)
	e.GET("/items/search", g.FindItems)
	e.GET("/items/:itemId", g.GetItemByID)
	e.POST("/items", g.AddItem)
	e.PATCH("/items/:itemId", g.EditItem)
	e.POST("/items/:itemId/comment", g.AddComment)

	e.GET("/requests", g.GetOwnRequests)
	e.GET("/requests/all", g.GetOtherUserRequests)
	e.GET("/requests/:requestId", g.GetRequestByID)
	e.POST("/requests", g.AddRequest)

	e.GET("/users", g.GetAllUsers)
	e.GET("/users/:userId", g.GetUserByID)
	e.POST("/users", g.AddUser)
	e.PATCH("/users/:userId", g.UpdateUser)
	e.DELETE("/users/:userId", g.DeleteUserByID)
	e.DELETE("/users", g.DeleteAllUsers)
}

// relay writes the upstream response through unchanged. Transport failures
// surface as 502.
func relay(c echo.Context, resp *Response, err error) error {
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "server layer is unreachable")
	}
	if len(resp.Body) == 0 {
		return c.NoContent(resp.Status)
	}
	return c.Blob(resp.Status, echo.MIMEApplicationJSON, resp.Body)
}

func requiredUserID(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get(handler.HeaderUserID)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, handler.HeaderUserID+" header is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+handler.HeaderUserID+" header")
	}
	return uint(id), nil
}

func optionalUserID(c echo.Context) (uint, error) {
	if c.Request().Header.Get(handler.HeaderUserID) == "" {
		return 0, nil
	}
	return requiredUserID(c)
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

func parseFilter(c echo.Context) (models.BookingFilter, error) {
	state := c.QueryParam("state")
	filter, ok := models.ParseBookingFilter(state)
	if !ok {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Unknown state: "+state)
	}
	return filter, nil
}
