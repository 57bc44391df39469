package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the auth middleware context is missing
// or malformed.
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext reads the underwriter ID the auth middleware set.
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

// getIsAdminFromContext reads the admin flag; absent means false.
func getIsAdminFromContext(c echo.Context) bool {
	isAdmin, ok := c.Get("is_admin").(bool)
	return ok && isAdmin
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}
	return value
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP,
// then the socket address.
func getClientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.Request().RemoteAddr
}
