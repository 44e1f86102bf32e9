package context

import (
	"github.com/labstack/echo/v4"

	"arches/internal/domain/entity"
)

// KeyIdentity is the echo.Context key of the resolved caller identity.
const KeyIdentity ContextKey = "identity"

// SetIdentity attaches the resolved identity to the request.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the caller identity, or nil for anonymous requests.
func GetIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity); ok {
		return identity
	}

	return nil
}
