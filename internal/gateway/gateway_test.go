package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/handler"
	"shareit/internal/middleware"
)

// upstream records the last request the gateway forwarded and answers with
// a canned response.
type upstream struct {
	srv *httptest.Server

	method string
	path   string
	query  string
	header string
	body   string

	respStatus int
	respBody   string
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{respStatus: http.StatusOK, respBody: `{"ok":true}`}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.method = r.Method
		u.path = r.URL.Path
		u.query = r.URL.RawQuery
		u.header = r.Header.Get(handler.HeaderUserID)
		payload, _ := io.ReadAll(r.Body)
		u.body = string(payload)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.respStatus)
		_, _ = w.Write([]byte(u.respBody))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func newGatewayApp(baseURL string) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	New(NewClient(baseURL)).RegisterRoutes(e)
	return e
}

func TestGatewayForwardsBooking(t *testing.T) {
	up := newUpstream(t)
	up.respStatus = http.StatusCreated
	up.respBody = `{"id":1,"status":"WAITING"}`
	e := newGatewayApp(up.srv.URL)

	body := `{"item_id":2,"start":"2030-01-01T10:00:00Z","end":"2030-01-02T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(handler.HeaderUserID, "7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"status":"WAITING"}`, rec.Body.String())

	assert.Equal(t, http.MethodPost, up.method)
	assert.Equal(t, "/bookings", up.path)
	assert.Equal(t, "7", up.header)
	assert.Contains(t, up.body, `"item_id":2`)
}

func TestGatewayRejectsBadBookingWindow(t *testing.T) {
	up := newUpstream(t)
	e := newGatewayApp(up.srv.URL)

	tests := []struct {
		name string
		body string
	}{
		{"missing dates", `{"item_id":2}`},
		{"equal dates", `{"item_id":2,"start":"2030-01-01T10:00:00Z","end":"2030-01-01T10:00:00Z"}`},
		{"past dates", `{"item_id":2,"start":"2000-01-01T10:00:00Z","end":"2000-01-02T10:00:00Z"}`},
		{"missing item", `{"start":"2030-01-01T10:00:00Z","end":"2030-01-02T10:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up.method = ""
			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(handler.HeaderUserID, "7")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// Rejected input never reaches the server layer.
			assert.Empty(t, up.method)
		})
	}
}

func TestGatewayRejectsUnknownState(t *testing.T) {
	up := newUpstream(t)
	e := newGatewayApp(up.srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/bookings?state=SOMEDAY", nil)
	req.Header.Set(handler.HeaderUserID, "7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown state: SOMEDAY")
	assert.Empty(t, up.method)
}

func TestGatewayNormalizesState(t *testing.T) {
	up := newUpstream(t)
	up.respBody = `[]`
	e := newGatewayApp(up.srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/bookings?state=future", nil)
	req.Header.Set(handler.HeaderUserID, "7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "state=FUTURE", up.query)
}

func TestGatewayRejectsBadItem(t *testing.T) {
	up := newUpstream(t)
	e := newGatewayApp(up.srv.URL)

	tests := []struct {
		name string
		body string
	}{
		{"blank name", `{"name":" ","description":"x","available":true}`},
		{"missing description", `{"name":"drill","available":true}`},
		{"missing available", `{"name":"drill","description":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up.method = ""
			req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(handler.HeaderUserID, "7")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, up.method)
		})
	}
}

func TestGatewayRejectsBadEmail(t *testing.T) {
	up := newUpstream(t)
	e := newGatewayApp(up.srv.URL)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"alice","email":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, up.method)
}

func TestGatewayRejectsEmptyPatch(t *testing.T) {
	up := newUpstream(t)
	e := newGatewayApp(up.srv.URL)

	req := httptest.NewRequest(http.MethodPatch, "/users/1", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, up.method)
}

func TestGatewayRelaysUpstreamErrors(t *testing.T) {
	up := newUpstream(t)
	up.respStatus = http.StatusNotFound
	up.respBody = `{"error":"user not found"}`
	e := newGatewayApp(up.srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/users/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}

func TestGatewayUnreachableUpstream(t *testing.T) {
	// Point at a closed server.
	up := newUpstream(t)
	url := up.srv.URL
	up.srv.Close()
	e := newGatewayApp(url)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGatewayApproveForwardsQuery(t *testing.T) {
	up := newUpstream(t)
	up.respBody = `{"id":5,"status":"APPROVED"}`
	e := newGatewayApp(up.srv.URL)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/5?approved=true", nil)
	req.Header.Set(handler.HeaderUserID, "7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.MethodPatch, up.method)
	assert.Equal(t, "/bookings/5", up.path)
	assert.Equal(t, "approved=true", up.query)
}
