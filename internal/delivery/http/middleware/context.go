package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// RoleAdmin is the role required for the agency administration surface.
const RoleAdmin = "admin"

// GetUserID returns the authenticated user's ID from the request context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the authenticated user's roles from the request context.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}
