package handlers

import (
	"net/http"

	"mca-underwriting/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers send errors through SendError (client and business errors)
// or SendSystemError (internal errors, generic message, details logged).
// Never echo.NewHTTPError or a bare c.JSON for error payloads.

// TraceIDContextKey mirrors the key the RequestID middleware writes. The
// handlers package cannot import middleware (middleware imports handlers).
const TraceIDContextKey = "trace_id"

// SuccessResponse is the optional success envelope for list endpoints
// that carry pagination metadata.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is re-exported for swagger annotations.
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError writes the standard envelope for a known error code; the
// HTTP status follows from the code.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.GetHTTPStatus(), resp)
}

// SendSystemError writes a generic 500 envelope. The underlying error is
// never serialized to the client; the error handler middleware logs it.
func SendSystemError(c echo.Context, err error) error {
	resp, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, resp)
}
