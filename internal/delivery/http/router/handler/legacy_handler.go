package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "arches/internal/delivery/context"
	"arches/internal/delivery/http/response"
	"arches/internal/domain/entity"
	"arches/internal/usecase"
)

// scrollRadiusMeters is fixed by the legacy map client.
const scrollRadiusMeters = 5000.0

// LegacyHandlerParams holds dependencies for LegacyHandler, injected by Fx.
type LegacyHandlerParams struct {
	fx.In

	CoordinatorUC usecase.CoordinatorUsecase
	Logger        *slog.Logger
}

// LegacyHandler serves the positional-array routes the legacy map client calls.
type LegacyHandler struct {
	coordinatorUC usecase.CoordinatorUsecase
	logger        *slog.Logger
}

// NewLegacyHandler is the constructor for LegacyHandler
func NewLegacyHandler(params LegacyHandlerParams) *LegacyHandler {
	return &LegacyHandler{
		coordinatorUC: params.CoordinatorUC,
		logger:        params.Logger,
	}
}

// VisitedArrayResponse wraps the visited rows under the key the client reads.
type VisitedArrayResponse struct {
	MyArray [][]any `json:"my_array"`
}

// ToggleLocalRequest is the body of POST /AddorDeleteMcDonaldsLocal.
type ToggleLocalRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// GetVisited returns [[address, x, y, id], ...] for the caller.
func (h *LegacyHandler) GetVisited(c echo.Context) error {
	items, err := h.coordinatorUC.GetVisitedForUser(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{item.Address, item.X, item.Y, item.LocationID})
	}

	return c.JSON(http.StatusOK, VisitedArrayResponse{MyArray: rows})
}

// NearbyScroll returns [[address, id], ...] within the fixed scroll radius.
func (h *LegacyHandler) NearbyScroll(c echo.Context) error {
	var longitude, latitude float64
	if err := echo.QueryParamsBinder(c).
		MustFloat64("longitude", &longitude).
		MustFloat64("latitude", &latitude).
		BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "longitude and latitude must be numbers")
	}

	radius := scrollRadiusMeters
	items, err := h.coordinatorUC.FindNearby(c.Request().Context(), usecase.NearbyQuery{
		Coordinate:   entity.NewCoordinate(longitude, latitude),
		RadiusMeters: &radius,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{item.Address, item.LocationID})
	}

	return c.JSON(http.StatusOK, rows)
}

// AllLocations returns [[x, y, id], ...] for the whole catalog.
func (h *LegacyHandler) AllLocations(c echo.Context) error {
	items, err := h.coordinatorUC.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{item.X, item.Y, item.LocationID})
	}

	return c.JSON(http.StatusOK, rows)
}

// ToggleLocal flips the caller's visit to the location in the body.
func (h *LegacyHandler) ToggleLocal(c echo.Context) error {
	var req ToggleLocalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be an integer")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "id must be a positive integer")
	}

	if _, err := h.coordinatorUC.ToggleVisit(c.Request().Context(), deliverycontext.GetIdentity(c), req.ID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "done"})
}
