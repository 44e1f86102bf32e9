package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	httpmiddleware "arches/internal/delivery/http/middleware"
	"arches/internal/delivery/http/router"
	"arches/internal/delivery/http/router/handler"
	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/infra/metrics"
	mockSvc "arches/internal/mocks/service"
	mockUsecase "arches/internal/mocks/usecase"
	"arches/internal/usecase"
)

type serverFixture struct {
	echo        *echo.Echo
	coordinator *mockUsecase.MockCoordinatorUsecase
	resolver    *mockSvc.MockIdentityResolver
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	coordinator := mockUsecase.NewMockCoordinatorUsecase(t)
	users := mockUsecase.NewMockUserUsecase(t)
	resolver := mockSvc.NewMockIdentityResolver(t)
	m := metrics.New()

	e := NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: users, Config: cfg, Logger: logger}),
			LegacyHandler:      handler.NewLegacyHandler(handler.LegacyHandlerParams{CoordinatorUC: coordinator, Logger: logger}),
			LocationHandler:    handler.NewLocationHandler(handler.LocationHandlerParams{CoordinatorUC: coordinator, Logger: logger}),
			VisitHandler:       handler.NewVisitHandler(handler.VisitHandlerParams{CoordinatorUC: coordinator, Logger: logger}),
			IdentityMiddleware: httpmiddleware.NewIdentityMiddleware(resolver, cfg, logger),
			Metrics:            m,
		},
	})

	return &serverFixture{echo: e, coordinator: coordinator, resolver: resolver}
}

func (f *serverFixture) get(target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthAndRequestID(t *testing.T) {
	f := newServerFixture(t)

	rec := f.get("/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, rec.Body.String(), `"request_id":"`+requestID+`"`)
}

func TestServer_VisitsRequireIdentity(t *testing.T) {
	f := newServerFixture(t)

	rec := f.get("/api/v1/visits", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHENTICATED"`)
}

func TestServer_LegacyRouteResolvesBearer(t *testing.T) {
	f := newServerFixture(t)
	identity := &entity.Identity{UserID: 3, Username: "birdie"}

	f.resolver.EXPECT().ResolveIdentity(mock.Anything, "token").Return(identity, nil)
	f.coordinator.EXPECT().GetVisitedForUser(mock.Anything, identity).Return([]usecase.VisitedItem{}, nil)

	rec := f.get("/getMcDonalds", "token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"my_array":[]}`, rec.Body.String())
}

func TestServer_LegacyRouteAnonymous(t *testing.T) {
	f := newServerFixture(t)

	f.coordinator.EXPECT().GetVisitedForUser(mock.Anything, (*entity.Identity)(nil)).
		Return(nil, domainerrors.ErrUnauthenticated)

	rec := f.get("/getMcDonalds", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"user not logged in"}`, rec.Body.String())
}

func TestServer_UnknownRouteUsesEnvelope(t *testing.T) {
	f := newServerFixture(t)

	rec := f.get("/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	f := newServerFixture(t)

	f.get("/health", "")
	rec := f.get("/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `arches_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
