package errors

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mateovidal/crmbridge/pkg/models"
)

// BadRequest returns a 400 with the given message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.Fail(message))
}

// ValidationError returns a generic validation error without exposing
// internal details. The actual error goes to the log.
func ValidationError(c echo.Context, err error) error {
	slog.Warn("validation error", "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusBadRequest, models.Fail("invalid request data"))
}

// NotFound returns a 404 with the given message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, models.Fail(message))
}

// Conflict returns a 409 with the given message.
func Conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.Fail(message))
}

// Unauthorized returns a 401 with a generic message.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.Fail("unauthorized"))
}

// InternalError returns a generic 500 without exposing internal details.
func InternalError(c echo.Context, err error) error {
	slog.Error("internal error", "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusInternalServerError, models.Fail("an internal error occurred"))
}

// UpstreamError returns a 502 for failures talking to an external provider.
func UpstreamError(c echo.Context, err error) error {
	slog.Error("upstream error", "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusBadGateway, models.Fail(err.Error()))
}
