package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/domain/service"
)

const bearerPrefix = "Bearer "

// IdentityMiddleware resolves the caller from a bearer token or the session cookie.
type IdentityMiddleware struct {
	resolver   service.IdentityResolver
	cookieName string
	logger     *slog.Logger
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(resolver service.IdentityResolver, cfg *config.Config, logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		resolver:   resolver,
		cookieName: cfg.Auth.CookieName,
		logger:     logger,
	}
}

// Identify attaches the identity when the request carries a valid credential.
// It never rejects: anonymous requests continue with no identity set.
func (m *IdentityMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := m.credential(c)
		if credential == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		identity, err := m.resolver.ResolveIdentity(ctx, credential)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring unresolvable credential", slog.Any("error", err))

			return next(c)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireIdentity rejects requests Identify could not attach an identity to.
// It must be used AFTER Identify.
func (m *IdentityMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetIdentity(c) == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// credential prefers the Authorization header over the cookie.
func (m *IdentityMiddleware) credential(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
			return strings.TrimSpace(token)
		}
	}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
