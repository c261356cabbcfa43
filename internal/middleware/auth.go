package middleware

import (
	"errors"
	"fmt"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"codefeast/internal/auth"
	apperrors "codefeast/internal/errors"
)

// CredentialsContextKey is where the authentication middleware stores the
// decoded token claims.
const CredentialsContextKey = "credentials"

// errInvalidToken marks a token that was present but failed validation.
// Every other failure (absent cookie, missing "Bearer " prefix) is treated
// as "no token provided".
var errInvalidToken = errors.New("invalid token")

// Authentication validates the bearer token carried in the "token" cookie
// and stores the decoded claims in the request context.
//
// An absent cookie and a cookie without the "Bearer " prefix answer
// "No token provided"; a present but invalid or expired token answers
// "Not authorized to access this route". Both are 401s but the kinds stay
// distinct.
func Authentication(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  CredentialsContextKey,
		TokenLookup: "cookie:token",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			raw, found := strings.CutPrefix(token, "Bearer ")
			if !found {
				return nil, errors.New("token cookie is not a bearer token")
			}
			claims, err := jwtService.ValidateToken(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, errInvalidToken) {
				return apperrors.NewUnauthorized("Not authorized to access this route")
			}
			return apperrors.NewUnauthorized("No token provided")
		},
	})
}

// CredentialsFrom returns the decoded token claims set by Authentication.
func CredentialsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(CredentialsContextKey).(*auth.Claims)
	return claims, ok
}
