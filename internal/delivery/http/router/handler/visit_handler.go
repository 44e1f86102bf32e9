package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "arches/internal/delivery/context"
	"arches/internal/delivery/http/response"
	"arches/internal/delivery/http/validator"
	"arches/internal/domain/entity"
	"arches/internal/usecase"
)

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	CoordinatorUC usecase.CoordinatorUsecase
	Logger        *slog.Logger
}

// VisitHandler serves the caller's visited set.
type VisitHandler struct {
	coordinatorUC usecase.CoordinatorUsecase
	logger        *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler
func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{
		coordinatorUC: params.CoordinatorUC,
		logger:        params.Logger,
	}
}

// ToggleVisitRequest represents the request body for toggling a visit
type ToggleVisitRequest struct {
	LocationID int64 `json:"location_id" validate:"required,gt=0"`
}

// ToggleVisitResponse reports the state after the toggle.
type ToggleVisitResponse struct {
	Outcome entity.ToggleOutcome `json:"outcome"`
	Visited bool                 `json:"visited"`
}

// VisitStatusResponse reports whether a single location is visited.
type VisitStatusResponse struct {
	LocationID int64 `json:"location_id"`
	Visited    bool  `json:"visited"`
}

// ListVisited handles GET /api/v1/visits
func (h *VisitHandler) ListVisited(c echo.Context) error {
	items, err := h.coordinatorUC.GetVisitedForUser(c.Request().Context(), deliverycontext.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// ToggleVisit handles POST /api/v1/visits/toggle
func (h *VisitHandler) ToggleVisit(c echo.Context) error {
	var req ToggleVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "location_id must be a positive integer", validator.FieldErrors(err))
	}

	outcome, err := h.coordinatorUC.ToggleVisit(c.Request().Context(), deliverycontext.GetIdentity(c), req.LocationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ToggleVisitResponse{
		Outcome: outcome,
		Visited: outcome.Visited(),
	})
}

// GetVisitStatus handles GET /api/v1/visits/:locationId
func (h *VisitHandler) GetVisitStatus(c echo.Context) error {
	locationID, err := strconv.ParseInt(c.Param("locationId"), 10, 64)
	if err != nil || locationID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	visited, err := h.coordinatorUC.IsVisited(c.Request().Context(), deliverycontext.GetIdentity(c), locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VisitStatusResponse{
		LocationID: locationID,
		Visited:    visited,
	})
}
