package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	httpmiddleware "arches/internal/delivery/http/middleware"
	"arches/internal/delivery/http/response"
	"arches/internal/delivery/http/validator"
	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	mockUsecase "arches/internal/mocks/usecase"
	"arches/internal/usecase"
)

var grimace = &entity.Identity{UserID: 7, Username: "grimace"}

type testServer struct {
	echo        *echo.Echo
	coordinator *mockUsecase.MockCoordinatorUsecase
	users       *mockUsecase.MockUserUsecase
	legacy      *LegacyHandler
	locations   *LocationHandler
	visits      *VisitHandler
	auth        *AuthHandler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	coordinator := mockUsecase.NewMockCoordinatorUsecase(t)
	users := mockUsecase.NewMockUserUsecase(t)

	return &testServer{
		echo:        e,
		coordinator: coordinator,
		users:       users,
		legacy:      NewLegacyHandler(LegacyHandlerParams{CoordinatorUC: coordinator, Logger: logger}),
		locations:   NewLocationHandler(LocationHandlerParams{CoordinatorUC: coordinator, Logger: logger}),
		visits:      NewVisitHandler(VisitHandlerParams{CoordinatorUC: coordinator, Logger: logger}),
		auth:        NewAuthHandler(AuthHandlerParams{UserUC: users, Config: cfg, Logger: logger}),
	}
}

// as attaches identity the way the identity middleware would; nil stays anonymous.
func as(identity *entity.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if identity != nil {
				deliverycontext.SetIdentity(c, identity)
			}

			return next(c)
		}
	}
}

func (s *testServer) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestLegacyHandler_GetVisited(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/getMcDonalds", s.legacy.GetVisited, response.UseLegacyFormat, as(grimace))

	s.coordinator.EXPECT().GetVisitedForUser(mock.Anything, grimace).Return([]usecase.VisitedItem{
		{Address: "5th Ave", X: -73.99, Y: 40.75, LocationID: 1, VisitID: 11},
	}, nil)

	rec := s.do(http.MethodGet, "/getMcDonalds", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"my_array":[["5th Ave",-73.99,40.75,1]]}`, rec.Body.String())
}

func TestLegacyHandler_GetVisitedEmitsLocationIDForToggle(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/getMcDonalds", s.legacy.GetVisited, response.UseLegacyFormat, as(grimace))

	s.coordinator.EXPECT().GetVisitedForUser(mock.Anything, grimace).Return([]usecase.VisitedItem{
		{Address: "5th Ave", X: -73.99, Y: 40.75, LocationID: 7, VisitID: 300},
		{Address: "Broadway", X: -73.98, Y: 40.76, LocationID: 8, VisitID: 301},
	}, nil)

	rec := s.do(http.MethodGet, "/getMcDonalds", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		MyArray [][]any `json:"my_array"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.MyArray, 2)

	// The map client posts this element back to /AddorDeleteMcDonaldsLocal as the location id.
	for i, want := range []float64{7, 8} {
		require.Len(t, body.MyArray[i], 4)
		assert.InDelta(t, want, body.MyArray[i][3], 0)
	}
}

func TestLegacyHandler_GetVisitedEmpty(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/getMcDonalds", s.legacy.GetVisited, response.UseLegacyFormat, as(grimace))

	s.coordinator.EXPECT().GetVisitedForUser(mock.Anything, grimace).Return([]usecase.VisitedItem{}, nil)

	rec := s.do(http.MethodGet, "/getMcDonalds", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"my_array":[]}`, rec.Body.String())
}

func TestLegacyHandler_GetVisitedAnonymous(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/getMcDonalds", s.legacy.GetVisited, response.UseLegacyFormat, as(nil))

	s.coordinator.EXPECT().GetVisitedForUser(mock.Anything, (*entity.Identity)(nil)).
		Return(nil, domainerrors.ErrUnauthenticated)

	rec := s.do(http.MethodGet, "/getMcDonalds", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"user not logged in"}`, rec.Body.String())
}

func TestLegacyHandler_NearbyScroll(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/addMcDonaldsScroll", s.legacy.NearbyScroll, response.UseLegacyFormat)

	s.coordinator.EXPECT().FindNearby(mock.Anything, mock.MatchedBy(func(q usecase.NearbyQuery) bool {
		return q.Coordinate == entity.NewCoordinate(-73.991, 40.751) &&
			q.RadiusMeters != nil && *q.RadiusMeters == 5000
	})).Return([]usecase.NearbyItem{
		{LocationID: 1, Address: "5th Ave", X: -73.99, Y: 40.75, DistanceMeters: 111.2},
	}, nil)

	rec := s.do(http.MethodGet, "/addMcDonaldsScroll?longitude=-73.991&latitude=40.751", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[["5th Ave",1]]`, rec.Body.String())
}

func TestLegacyHandler_NearbyScrollRejectsBadInput(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/addMcDonaldsScroll", s.legacy.NearbyScroll, response.UseLegacyFormat)

	for _, target := range []string{
		"/addMcDonaldsScroll?longitude=abc&latitude=40.751",
		"/addMcDonaldsScroll?latitude=40.751",
	} {
		rec := s.do(http.MethodGet, target, "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"error"`, target)
	}
}

func TestLegacyHandler_NearbyScrollOutOfRange(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/addMcDonaldsScroll", s.legacy.NearbyScroll, response.UseLegacyFormat)

	s.coordinator.EXPECT().FindNearby(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCoordinate.WithDetails("latitude 91"))

	rec := s.do(http.MethodGet, "/addMcDonaldsScroll?longitude=0&latitude=91", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLegacyHandler_AllLocationsEmpty(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/addAllLocations", s.legacy.AllLocations, response.UseLegacyFormat)

	s.coordinator.EXPECT().FindAll(mock.Anything).Return([]usecase.CatalogItem{}, nil)

	rec := s.do(http.MethodGet, "/addAllLocations", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestLegacyHandler_AllLocations(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/addAllLocations", s.legacy.AllLocations, response.UseLegacyFormat)

	s.coordinator.EXPECT().FindAll(mock.Anything).Return([]usecase.CatalogItem{
		{X: -73.99, Y: 40.75, LocationID: 1},
		{X: -118.24, Y: 34.05, LocationID: 2},
	}, nil)

	rec := s.do(http.MethodGet, "/addAllLocations", "", "")

	assert.JSONEq(t, `[[-73.99,40.75,1],[-118.24,34.05,2]]`, rec.Body.String())
}

func TestLegacyHandler_ToggleLocal(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/AddorDeleteMcDonaldsLocal", s.legacy.ToggleLocal, response.UseLegacyFormat, as(grimace))

	s.coordinator.EXPECT().ToggleVisit(mock.Anything, grimace, int64(1)).Return(entity.ToggleAdded, nil)

	rec := s.do(http.MethodPost, "/AddorDeleteMcDonaldsLocal", echo.MIMEApplicationJSON, `{"id": 1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"done"}`, rec.Body.String())
}

func TestLegacyHandler_ToggleLocalErrors(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/AddorDeleteMcDonaldsLocal", s.legacy.ToggleLocal, response.UseLegacyFormat, as(grimace))

	s.coordinator.EXPECT().ToggleVisit(mock.Anything, grimace, int64(99)).Return("", domainerrors.ErrLocationNotFound)

	rec := s.do(http.MethodPost, "/AddorDeleteMcDonaldsLocal", echo.MIMEApplicationJSON, `{"id": 99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"location not found"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/AddorDeleteMcDonaldsLocal", echo.MIMEApplicationJSON, `{"id": "five"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/AddorDeleteMcDonaldsLocal", echo.MIMEApplicationJSON, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_FindNearby(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/api/v1/locations/nearby", s.locations.FindNearby)

	s.coordinator.EXPECT().FindNearby(mock.Anything, mock.MatchedBy(func(q usecase.NearbyQuery) bool {
		return q.RadiusMeters != nil && *q.RadiusMeters == 1200
	})).Return([]usecase.NearbyItem{
		{LocationID: 1, Address: "5th Ave", X: -73.99, Y: 40.75, DistanceMeters: 111.2},
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/locations/nearby?longitude=-73.991&latitude=40.751&radius=1200", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [{"id":1,"address":"5th Ave","x":-73.99,"y":40.75,"distance_meters":111.2}],
		"meta": {"request_id":""}
	}`, rec.Body.String())
}

func TestLocationHandler_FindNearbyDefaultRadius(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/api/v1/locations/nearby", s.locations.FindNearby)

	s.coordinator.EXPECT().FindNearby(mock.Anything, mock.MatchedBy(func(q usecase.NearbyQuery) bool {
		return q.RadiusMeters == nil
	})).Return([]usecase.NearbyItem{}, nil)

	rec := s.do(http.MethodGet, "/api/v1/locations/nearby?longitude=0&latitude=0", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestLocationHandler_FindNearbyErrors(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/api/v1/locations/nearby", s.locations.FindNearby)

	rec := s.do(http.MethodGet, "/api/v1/locations/nearby?longitude=x&latitude=0&radius=y", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"details":["longitude","radius"]`)

	s.coordinator.EXPECT().FindNearby(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidRadius.WithDetails("radius 90000 exceeds maximum 50000"))

	rec = s.do(http.MethodGet, "/api/v1/locations/nearby?longitude=0&latitude=0&radius=90000", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_RADIUS"`)
}

func TestLocationHandler_ListAllStoreUnavailable(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/api/v1/locations", s.locations.ListAll)

	s.coordinator.EXPECT().FindAll(mock.Anything).
		Return(nil, domainerrors.NewStoreError(assert.AnError, "list catalog timed out"))

	rec := s.do(http.MethodGet, "/api/v1/locations", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "timed out")
}

func TestVisitHandler_ToggleVisit(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/api/v1/visits/toggle", s.visits.ToggleVisit, as(grimace))

	s.coordinator.EXPECT().ToggleVisit(mock.Anything, grimace, int64(3)).Return(entity.ToggleRemoved, nil)

	rec := s.do(http.MethodPost, "/api/v1/visits/toggle", echo.MIMEApplicationJSON, `{"location_id": 3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":{"outcome":"removed","visited":false}`)
}

func TestVisitHandler_ToggleVisitValidation(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/api/v1/visits/toggle", s.visits.ToggleVisit, as(grimace))

	rec := s.do(http.MethodPost, "/api/v1/visits/toggle", echo.MIMEApplicationJSON, `{"location_id": 0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"details":{"location_id":"required"}`)
}

func TestVisitHandler_ToggleVisitConflict(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/api/v1/visits/toggle", s.visits.ToggleVisit, as(grimace))

	s.coordinator.EXPECT().ToggleVisit(mock.Anything, grimace, int64(3)).Return("", domainerrors.ErrToggleConflict)

	rec := s.do(http.MethodPost, "/api/v1/visits/toggle", echo.MIMEApplicationJSON, `{"location_id": 3}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestVisitHandler_GetVisitStatus(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/api/v1/visits/:locationId", s.visits.GetVisitStatus, as(grimace))

	s.coordinator.EXPECT().IsVisited(mock.Anything, grimace, int64(5)).Return(true, nil)

	rec := s.do(http.MethodGet, "/api/v1/visits/5", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":{"location_id":5,"visited":true}`)

	rec = s.do(http.MethodGet, "/api/v1/visits/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVisitHandler_ListVisited(t *testing.T) {
	s := newTestServer(t)
	s.echo.GET("/api/v1/visits", s.visits.ListVisited, as(grimace))

	s.coordinator.EXPECT().GetVisitedForUser(mock.Anything, grimace).Return([]usecase.VisitedItem{
		{Address: "5th Ave", X: -73.99, Y: 40.75, LocationID: 1, VisitID: 11},
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/visits", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"location_id":1`)
	assert.Contains(t, rec.Body.String(), `"visit_id":11`)
}

func TestAuthHandler_RegisterSetsSessionCookie(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/auth/register", s.auth.Register)

	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.users.EXPECT().Register(mock.Anything, usecase.RegisterInput{Username: "ronald", Password: "secret-sauce"}).
		Return(&usecase.AuthOutput{
			AccessToken: "signed-token",
			ExpiresAt:   expiresAt,
			User:        &entity.User{ID: 1, Username: "ronald"},
		}, nil)

	rec := s.do(http.MethodPost, "/auth/register", echo.MIMEApplicationJSON, `{"username":"ronald","password":"secret-sauce"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"user":{"id":1,"username":"ronald"}`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestAuthHandler_LoginAcceptsForm(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/login", s.auth.Login, response.UseLegacyFormat)

	s.users.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "ronald", Password: "wrong-password"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	form := url.Values{"username": {"ronald"}, "password": {"wrong-password"}}
	rec := s.do(http.MethodPost, "/login", echo.MIMEApplicationForm, form.Encode())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"incorrect username or password"}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_RegisterRequiresFields(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/auth/register", s.auth.Register)

	rec := s.do(http.MethodPost, "/auth/register", echo.MIMEApplicationJSON, `{"username":"ronald"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"password":"required"`)
}

func TestAuthHandler_Logout(t *testing.T) {
	s := newTestServer(t)
	s.echo.POST("/auth/logout", s.auth.Logout)

	rec := s.do(http.MethodPost, "/auth/logout", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
