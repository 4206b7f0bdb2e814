package middleware

import (
	"strings"

	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keyPrincipal stores the authenticated identity in echo.Context.
const keyPrincipal = "principal"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the Bearer access token and stores the resulting
// principal on the context. Each failure mode maps to its own domain error so
// clients can distinguish a missing header from a stale token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrAuthMalformedToken
		}

		principal, err := m.tokenService.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrAuthTokenExpired
			}

			return domainerrors.ErrAuthTokenInvalid
		}

		c.Set(keyPrincipal, principal)

		return next(c)
	}
}

// CurrentPrincipal returns the authenticated identity set by Authenticate.
// The second return is false on routes where the middleware did not run.
func CurrentPrincipal(c echo.Context) (*service.Principal, bool) {
	principal, ok := c.Get(keyPrincipal).(*service.Principal)

	return principal, ok
}
