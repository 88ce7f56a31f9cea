// File: internal/handler/comments/comment.go
package comments

import (
	"net/http"
	"strconv"

	"devconnect/internal/api"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/model"
	"devconnect/internal/service"
	"devconnect/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createComment         = store.CreateComment
	getCommentByID        = store.GetCommentByID
	listCommentsByProject = store.ListCommentsByProject
	updateComment         = store.UpdateComment
	deleteComment         = store.DeleteComment
)

func currentClaims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return nil, false
	}
	return claims, true
}

// @Summary     Create a comment on a project
// @Description The owner is stamped from the bearer token
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       projectId path int true "project ID"
// @Param       payload body api.CreateCommentRequest true "comment text"
// @Success     201 {object} api.CommentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /comments/create-comment/{projectId} [post]
func CreateCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := strconv.Atoi(c.Param("projectId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateCommentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		comment, err := createComment(c.Request().Context(), db, &model.Comment{
			UserID:    claims.UserID,
			ProjectID: projectID,
			Text:      req.Text,
		})
		if err != nil {
			if store.IsForeignKeyViolation(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewCommentResponse(comment))
	}
}

// @Summary     List a project's comments
// @Description Most recent first
// @Tags        comments
// @Produce     json
// @Param       projectId path int true "project ID"
// @Success     200 {array} api.CommentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /comments/get-comments/{projectId} [get]
func GetCommentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := strconv.Atoi(c.Param("projectId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}
		comments, err := listCommentsByProject(c.Request().Context(), db, projectID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewCommentResponses(comments))
	}
}

// @Summary     Update a comment
// @Description Owner only; an absent text keeps the prior value
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       id path int true "comment ID"
// @Param       payload body api.UpdateCommentRequest true "comment text"
// @Success     200 {object} api.CommentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /comments/update-comment/{id} [put]
func UpdateCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid comment ID"})
		}

		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.UpdateCommentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		comment, err := getCommentByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "comment not found"})
		}
		if err := service.RequireOwner(claims, comment.UserID); err != nil {
			return err
		}

		if req.Text != nil {
			comment.Text = *req.Text
		}

		if err := updateComment(c.Request().Context(), db, comment); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewCommentResponse(comment))
	}
}

// @Summary     Delete a comment
// @Description Owner only
// @Tags        comments
// @Produce     json
// @Param       id path int true "comment ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /comments/delete-comment/{id} [delete]
func DeleteCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid comment ID"})
		}

		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		comment, err := getCommentByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "comment not found"})
		}
		if err := service.RequireOwner(claims, comment.UserID); err != nil {
			return err
		}

		if err := deleteComment(c.Request().Context(), db, id); err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "comment not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "comment deleted"})
	}
}
