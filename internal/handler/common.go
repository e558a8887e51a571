// Package handler contains the HTTP handlers of the administrative API.
// Handlers translate requests into service calls and service outcomes
// into status codes and plain-text Spanish messages, mirroring the
// behavior expected by the existing clients.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SAFE-Rescue/api-administrador/internal/service"
)

// dbTimeout bounds the database work of a single request.
const dbTimeout = 5 * time.Second

func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// idParam parses a numeric path parameter.
func idParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// plainError maps a service error onto its status code and writes the
// message as plain text. NotFound -> 404, Invalid and Conflict -> 400,
// anything else -> 500 with a generic body.
func plainError(c echo.Context, err error) error {
	switch service.KindOf(err) {
	case service.KindNotFound:
		return c.String(http.StatusNotFound, err.Error())
	case service.KindInvalid, service.KindConflict:
		return c.String(http.StatusBadRequest, err.Error())
	default:
		return c.String(http.StatusInternalServerError, "Error interno del servidor.")
	}
}
