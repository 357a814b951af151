package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/boardlab/repair-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// Status is "fail" for 4xx and "error" for 5xx. Detail carries the
// underlying error text and is populated only outside production.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns the centralized error translator. Every
// failure path funnels through here:
//   - Known domain errors map to deterministic HTTP status codes.
//   - Echo's own errors (middleware rejections, bind failures, 404s) pass
//     through with their code and message.
//   - Anything else is logged and rendered as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		resp := errorResponse{Status: statusLabel(code), Message: msg}
		if !production && code >= http.StatusInternalServerError {
			resp.Detail = err.Error()
		}
		_ = c.JSON(code, resp)
	}
}

func statusLabel(code int) string {
	if code < http.StatusInternalServerError {
		return "fail"
	}
	return "error"
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrUserExists):
		// duplicate identity is a client error, per the register contract
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Your token has expired. Please log in again."
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token. Please log in again."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
