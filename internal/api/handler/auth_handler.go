package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/boardlab/repair-system/internal/api/metrics"
	"github.com/boardlab/repair-system/internal/api/middleware"
	"github.com/boardlab/repair-system/internal/core/domain"
	"github.com/boardlab/repair-system/internal/core/ports"
)

// AuthHandler handles HTTP requests for the authentication flow. Errors are
// returned upward so the centralized error handler translates them; no
// status mapping happens here.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a bearer token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// normalize before validating so the length and format rules apply to
	// what would actually be stored, not to surrounding whitespace
	req.Username = strings.TrimSpace(req.Username)
	req.Email = domain.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, authResponse{
		Status: "success",
		Token:  token,
		Data:   userPayload{User: user},
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Status: "success",
		Token:  token,
		Data:   userPayload{User: user},
	})
}

// Me returns the authenticated user's own record, re-fetched from the store.
//
// @Summary      Get current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.authService.GetSelf(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Status: "success",
		Data:   userPayload{User: user},
	})
}

// ListUsers returns every user record, sanitized. Admin only.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Status:  "success",
		Results: len(users),
		Data:    userListPayload{Users: users},
	})
}
