package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"arches/internal/delivery/http/response"
	"arches/internal/domain/entity"
	"arches/internal/usecase"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	CoordinatorUC usecase.CoordinatorUsecase
	Logger        *slog.Logger
}

// LocationHandler serves catalog and proximity queries.
type LocationHandler struct {
	coordinatorUC usecase.CoordinatorUsecase
	logger        *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		coordinatorUC: params.CoordinatorUC,
		logger:        params.Logger,
	}
}

// FindNearby handles GET /api/v1/locations/nearby?longitude=&latitude=&radius=
func (h *LocationHandler) FindNearby(c echo.Context) error {
	var longitude, latitude, radius float64
	binder := echo.QueryParamsBinder(c).
		FailFast(false).
		MustFloat64("longitude", &longitude).
		MustFloat64("latitude", &latitude).
		Float64("radius", &radius)
	if errs := binder.BindErrors(); len(errs) > 0 {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "longitude and latitude are required numbers, radius is optional", queryErrorDetails(errs))
	}

	query := usecase.NearbyQuery{Coordinate: entity.NewCoordinate(longitude, latitude)}
	if c.QueryParam("radius") != "" {
		query.RadiusMeters = &radius
	}

	items, err := h.coordinatorUC.FindNearby(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// ListAll handles GET /api/v1/locations
func (h *LocationHandler) ListAll(c echo.Context) error {
	items, err := h.coordinatorUC.FindAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// queryErrorDetails names the offending query parameters.
func queryErrorDetails(errs []error) []string {
	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) {
			fields = append(fields, bindErr.Field)
		}
	}

	return fields
}
