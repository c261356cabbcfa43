package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "codefeast/internal/errors"
	"codefeast/internal/model"
	"codefeast/internal/service"
)

// UserContextKey is where UserExists stores the loaded user record.
const UserContextKey = "user"

// UserExists loads the profile for the identity decoded from the token and
// attaches it to the request context. A validated token whose user no longer
// exists (stale token) is rejected with 404.
func UserExists(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CredentialsFrom(c)
			if !ok {
				return apperrors.NewUnauthorized("Not authorized to access this route")
			}

			user, err := users.FetchByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewNotFound("Invalid credentials")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the user record set by UserExists.
func UserFrom(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(UserContextKey).(*model.User)
	return user, ok
}
