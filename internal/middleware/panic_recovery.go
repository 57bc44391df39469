package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"mca-underwriting/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a handler panic into the standard error envelope.
// A panic during a scorecard run must not take down the listener; the
// stack goes to the log, never to the client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
				)

				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
					slog.Error("failed to write panic response", "trace_id", traceID, "error", err)
				}
			}()

			return next(c)
		}
	}
}
