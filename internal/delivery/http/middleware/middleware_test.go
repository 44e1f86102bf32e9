package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	"arches/internal/delivery/http/response"
	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/domain/service"
	mockSvc "arches/internal/mocks/service"
)

func newTestEcho(resolver service.IdentityResolver) (*echo.Echo, *IdentityMiddleware) {
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	return e, NewIdentityMiddleware(resolver, cfg, logger)
}

func whoAmI(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return c.String(http.StatusOK, "anonymous")
	}

	return c.String(http.StatusOK, identity.Username)
}

func TestIdentify_BearerToken(t *testing.T) {
	resolver := mockSvc.NewMockIdentityResolver(t)
	resolver.EXPECT().ResolveIdentity(mock.Anything, "good-token").
		Return(&entity.Identity{UserID: 1, Username: "grimace"}, nil)

	e, mw := newTestEcho(resolver)
	e.GET("/", whoAmI, mw.Identify)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "grimace", rec.Body.String())
}

func TestIdentify_SessionCookie(t *testing.T) {
	resolver := mockSvc.NewMockIdentityResolver(t)
	resolver.EXPECT().ResolveIdentity(mock.Anything, "cookie-token").
		Return(&entity.Identity{UserID: 2, Username: "hamburglar"}, nil)

	e, mw := newTestEcho(resolver)
	e.GET("/", whoAmI, mw.Identify)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "hamburglar", rec.Body.String())
}

func TestIdentify_InvalidCredentialStaysAnonymous(t *testing.T) {
	resolver := mockSvc.NewMockIdentityResolver(t)
	resolver.EXPECT().ResolveIdentity(mock.Anything, "forged").Return(nil, service.ErrInvalidCredential)

	e, mw := newTestEcho(resolver)
	e.GET("/", whoAmI, mw.Identify)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestIdentify_NoCredentialSkipsResolver(t *testing.T) {
	e, mw := newTestEcho(mockSvc.NewMockIdentityResolver(t))
	e.GET("/", whoAmI, mw.Identify)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRequireIdentity_RejectsAnonymous(t *testing.T) {
	e, mw := newTestEcho(mockSvc.NewMockIdentityResolver(t))
	e.GET("/", whoAmI, mw.Identify, mw.RequireIdentity)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		legacy     bool
		wantStatus int
		wantBody   string
		wantRetry  bool
	}{
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrToggleConflict, "toggle"),
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"TOGGLE_CONFLICT"`,
			wantRetry:  true,
		},
		{
			name:       "store outage",
			err:        domainerrors.NewStoreError(errors.New("connection refused"), "list visits"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"code":"STORE_UNAVAILABLE"`,
			wantRetry:  true,
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"HTTP_ERROR"`,
		},
		{
			name:       "unknown error hides its text",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
		},
		{
			name:       "legacy route",
			err:        domainerrors.ErrUnauthenticated,
			legacy:     true,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"user not logged in"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.legacy {
				require.NoError(t, response.UseLegacyFormat(func(echo.Context) error { return nil })(c))
			}

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "relation")
			assert.Equal(t, tt.wantRetry, rec.Header().Get(response.HeaderRetryAfter) != "")
		})
	}
}
