package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"codefeast/internal/auth"
	apperrors "codefeast/internal/errors"
	"codefeast/internal/handler"
	appmiddleware "codefeast/internal/middleware"
	"codefeast/internal/service"
)

// rateLimit caps requests per client IP, in requests per second.
const rateLimit rate.Limit = 20

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	jwtService *auth.JWTService,
	userService service.UserService,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rateLimit)))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "CodeFeast Server!")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticate := appmiddleware.Authentication(jwtService)
	userExists := appmiddleware.UserExists(userService)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authHandler.SignUp)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/fetch-user-details", authHandler.FetchUserDetails, authenticate)

	taskGroup := api.Group("/task", authenticate, userExists)
	taskGroup.POST("/create-task", taskHandler.CreateTask)
	taskGroup.GET("/fetch-task/:taskId", taskHandler.FetchTask)
	taskGroup.GET("/fetch-all-tasks", taskHandler.FetchAllTasks)
	taskGroup.PATCH("/update-task/:taskId", taskHandler.UpdateTask)
	taskGroup.PATCH("/toggle-complete-task/:taskId", taskHandler.ToggleCompleteTask)
	taskGroup.DELETE("/delete-task/:taskId", taskHandler.DeleteTask)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return apperrors.NewNotFound("Route does not exist")
	})
}

// HTTPErrorHandler is the single translator from errors to the JSON envelope.
// Typed APIErrors keep their status and message; echo's own routing errors
// become the route-not-found response; everything else collapses to a
// generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	message := apperrors.GenericMessage

	var apiErr *apperrors.APIError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		statusCode = apiErr.StatusCode
		message = apiErr.Message
	case errors.As(err, &echoErr):
		if echoErr.Code == http.StatusNotFound || echoErr.Code == http.StatusMethodNotAllowed {
			statusCode = http.StatusNotFound
			message = "Route does not exist"
		} else {
			statusCode = echoErr.Code
		}
	}

	_ = c.JSON(statusCode, apperrors.ErrorBody{Message: message, Status: false})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
