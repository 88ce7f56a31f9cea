// File: internal/handler/users/user.go
package users

import (
	"net/http"
	"strconv"

	"devconnect/internal/api"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/service"
	"devconnect/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
	searchUsers = store.SearchUsers
	deleteUser  = store.DeleteUser
)

// @Summary     List all users
// @Description Returns every user, most recent first, without password hashes
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/get-all-users [get]
func GetAllUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "user ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /users/get-user/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Search users by name
// @Description Case-insensitive substring match on the name
// @Tags        users
// @Produce     json
// @Param       query path string true "search query"
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/search-users/{query} [get]
func SearchUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := searchUsers(c.Request().Context(), db, c.Param("query"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}

// @Summary     Delete a user
// @Description Only the authenticated user may delete their own account.
//              Projects and comments they own are left in place.
// @Tags        users
// @Produce     json
// @Param       id path int true "user ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/delete-user/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err := service.RequireOwner(claims, user.ID); err != nil {
			return err
		}

		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted successfully"})
	}
}
