// File: internal/service/authorization.go
package service

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireOwner is the single authorization predicate for the owner-only
// mutate rule: the resolved identity must equal the resource's owner.
// Every mutating controller applies it after loading the record.
func RequireOwner(claims *CustomClaims, ownerID int) error {
	if claims == nil || claims.UserID != ownerID {
		return echo.NewHTTPError(http.StatusForbidden, "not authorized")
	}
	return nil
}
