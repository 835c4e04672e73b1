package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
	"shareit/internal/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/users", h.GetAllUsers)
	e.GET("/users/:userId", h.GetUserByID)
	e.POST("/users", h.AddUser)
	e.PATCH("/users/:userId", h.UpdateUser)
	e.DELETE("/users/:userId", h.DeleteUserByID)
	e.DELETE("/users", h.DeleteAllUsers)
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.svc.GetAllUsers(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	user, err := h.svc.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) AddUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	user, err := h.svc.AddUser(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	user, err := h.svc.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) DeleteUserByID(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUserByID(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) DeleteAllUsers(c echo.Context) error {
	if err := h.svc.DeleteAllUsers(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
