package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"codefeast/internal/auth"
	apperrors "codefeast/internal/errors"
	"codefeast/internal/middleware"
	"codefeast/internal/service"
)

// AuthHandler handles signup, login and profile endpoints.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// SignUpRequest represents a signup request.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUp godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Signup data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorBody
// @Failure 500 {object} errors.ErrorBody
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewBadRequest("Please provide required fields: name, email, password")
	}

	if err := h.userService.SignUp(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Signup Successful",
		"status":  true,
	})
}

// Login godoc
// @Summary Authenticate and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorBody
// @Failure 401 {object} errors.ErrorBody
// @Failure 404 {object} errors.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewBadRequest("Please provide required fields: email, password")
	}

	token, user, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "Bearer " + token,
		Path:     "/",
		Expires:  time.Now().Add(auth.TokenExpiry),
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login Successful",
		"status":  true,
		"result": echo.Map{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// FetchUserDetails godoc
// @Summary Fetch the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorBody
// @Failure 404 {object} errors.ErrorBody
// @Router /auth/fetch-user-details [get]
func (h *AuthHandler) FetchUserDetails(c echo.Context) error {
	claims, ok := middleware.CredentialsFrom(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authorized to access this route")
	}

	user, err := h.userService.FetchByID(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("User not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User details fetched successfully!",
		"status":  true,
		"result":  user,
	})
}
