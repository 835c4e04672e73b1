package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shareit/internal/dto"
	"shareit/internal/service"
)

func translate(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(err, c)

	var body dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"booking not found", service.ErrBookingNotFound, http.StatusNotFound},
		{"no owned items", service.ErrNotAnOwner, http.StatusNotFound},
		{"approve by stranger", service.ErrApproveForbidden, http.StatusForbidden},
		{"view by stranger", service.ErrBookingViewForbidden, http.StatusForbidden},
		{"edit by stranger", service.ErrEditItemForbidden, http.StatusForbidden},
		{"unknown filter", service.ErrUnknownFilter, http.StatusBadRequest},
		{"dates in past", service.ErrBookingDatesInPast, http.StatusBadRequest},
		{"already decided", service.ErrBookingAlreadyDecided, http.StatusBadRequest},
		{"comment without rental", service.ErrCommentNotAllowed, http.StatusBadRequest},
		{"duplicate email", service.ErrEmailTaken, http.StatusConflict},
		{"anything else", errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := translate(t, tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestErrorHandlerKeepsHTTPErrors(t *testing.T) {
	code, body := translate(t, echo.NewHTTPError(http.StatusBadRequest, "invalid itemId"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid itemId", body.Error)
}

func TestErrorHandlerWrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), service.ErrItemNotFound)
	code, _ := translate(t, wrapped)
	assert.Equal(t, http.StatusNotFound, code)
}
