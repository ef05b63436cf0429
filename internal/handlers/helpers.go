package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/internal/services"
)

// getUserIDFromContext returns the authenticated user's id, 0 when the
// request is anonymous.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(value), nil
}

func queryInt(c echo.Context, name string, defaultValue int) int {
	if raw := c.QueryParam(name); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			return value
		}
	}
	return defaultValue
}

func queryUint(c echo.Context, name string) uint {
	if raw := c.QueryParam(name); raw != "" {
		if value, err := strconv.ParseUint(raw, 10, 32); err == nil {
			return uint(value)
		}
	}
	return 0
}

// serviceError maps service sentinel errors to HTTP statuses. Anything
// unrecognized becomes a generic 500 so internal detail never leaks.
func serviceError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, services.ErrPromptNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNotSaved),
		errors.Is(err, services.ErrNotFollowing):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidAction):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAlreadyFollowing),
		errors.Is(err, services.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
