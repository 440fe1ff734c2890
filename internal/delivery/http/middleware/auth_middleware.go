package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and puts the caller's identity on
// the context. Missing or bad credentials stop the request with a 401; the
// handler never runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.extractClaims(c)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present
// but lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := m.extractClaims(c); err == nil {
			deliverycontext.SetIdentity(c, claims)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) extractClaims(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, domainerrors.ErrMissingToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, domainerrors.ErrInvalidAuthHeader
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		// ErrTokenExpired vs ErrTokenMalformed is a logging distinction only;
		// clients get the same 401.
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}
