package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shareit/internal/dto"
	"shareit/internal/service"
)

var notFoundErrors = []error{
	service.ErrUserNotFound,
	service.ErrItemNotFound,
	service.ErrBookingNotFound,
	service.ErrRequestNotFound,
	service.ErrNotAnOwner,
}

var forbiddenErrors = []error{
	service.ErrBookingViewForbidden,
	service.ErrApproveForbidden,
	service.ErrEditItemForbidden,
}

var validationErrors = []error{
	service.ErrUnknownFilter,
	service.ErrItemNameRequired,
	service.ErrItemDescriptionRequired,
	service.ErrItemAvailableRequired,
	service.ErrEmailRequired,
	service.ErrEmailInvalid,
	service.ErrBookingDatesRequired,
	service.ErrBookingDatesEqual,
	service.ErrBookingDatesInPast,
	service.ErrItemUnavailable,
	service.ErrBookingAlreadyDecided,
	service.ErrOwnItemComment,
	service.ErrCommentTextRequired,
	service.ErrCommentNotAllowed,
	service.ErrDescriptionRequired,
}

// ErrorHandler is the single translation point from service errors to
// HTTP statuses. Every error body is {"error": <message>}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	case isAny(err, notFoundErrors):
		code = http.StatusNotFound
	case isAny(err, forbiddenErrors):
		code = http.StatusForbidden
	case isAny(err, validationErrors):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrEmailTaken):
		code = http.StatusConflict
	}

	_ = c.JSON(code, dto.ErrorResponse{Error: msg})
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
