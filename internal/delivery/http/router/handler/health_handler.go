package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arches/internal/delivery/http/response"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
