// File: internal/handler/projects/project.go
package projects

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"devconnect/internal/api"
	"devconnect/internal/cache"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/model"
	"devconnect/internal/service"
	"devconnect/internal/store"
	"devconnect/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createProject      = store.CreateProject
	getProjectByID     = store.GetProjectByID
	listProjects       = store.ListProjects
	listProjectsByUser = store.ListProjectsByUser
	searchProjects     = store.SearchProjects
	updateProject      = store.UpdateProject
	deleteProject      = store.DeleteProject
)

const (
	listCacheKey = "projects:all"
	listCacheTTL = time.Minute
)

// invalidateListCache clears the cached listing off the request path. A failed
// deletion only means one stale TTL window.
func invalidateListCache(rdb cache.Cache, wp worker.Pool) {
	wp.Submit(func() {
		rdb.Del(context.Background(), listCacheKey)
	})
}

func currentClaims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return nil, false
	}
	return claims, true
}

// @Summary     Create a project
// @Description The owner is stamped from the bearer token, never from the payload
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateProjectRequest true "project fields"
// @Success     201 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/create-project [post]
func CreateProjectHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		startDate, err := time.Parse(api.DateLayout, req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid start date"})
		}
		endDate, err := time.Parse(api.DateLayout, req.EndDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid end date"})
		}
		if endDate.Before(startDate) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "end date must not be before start date"})
		}

		skills := req.Skills
		if skills == nil {
			skills = []string{}
		}

		project, err := createProject(c.Request().Context(), db, &model.Project{
			UserID:      claims.UserID,
			Title:       req.Title,
			Description: req.Description,
			Link:        req.Link,
			Category:    req.Category,
			Skills:      skills,
			StartDate:   startDate,
			EndDate:     endDate,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		invalidateListCache(rdb, wp)
		return c.JSON(http.StatusCreated, api.NewProjectResponse(project))
	}
}

// @Summary     List all projects
// @Description Returns every project, most recent first; served from cache
//              when a fresh copy exists
// @Tags        projects
// @Produce     json
// @Success     200 {array} api.ProjectResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /projects/get-all-projects [get]
func GetAllProjectsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, listCacheKey).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}

		projects, err := listProjects(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := api.NewProjectResponses(projects)

		if body, err := json.Marshal(resp); err == nil {
			rdb.Set(ctx, listCacheKey, body, listCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a project by ID
// @Tags        projects
// @Produce     json
// @Param       id path int true "project ID"
// @Success     200 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /projects/get-project/{id} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}
		project, err := getProjectByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
		}
		return c.JSON(http.StatusOK, api.NewProjectResponse(project))
	}
}

// @Summary     List a user's projects
// @Tags        projects
// @Produce     json
// @Param       userId path int true "owner user ID"
// @Success     200 {array} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /projects/get-projects-by-user/{userId} [get]
func GetProjectsByUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		projects, err := listProjectsByUser(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewProjectResponses(projects))
	}
}

// @Summary     Update a project
// @Description Owner only; applies only the fields present in the payload
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id path int true "project ID"
// @Param       payload body api.UpdateProjectRequest true "partial project fields"
// @Success     200 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/update-project/{id} [put]
func UpdateProjectHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.UpdateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		project, err := getProjectByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
		}
		if err := service.RequireOwner(claims, project.UserID); err != nil {
			return err
		}

		if req.Title != nil {
			project.Title = *req.Title
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.Link != nil {
			project.Link = req.Link
		}
		if req.Category != nil {
			project.Category = *req.Category
		}
		if req.Skills != nil {
			project.Skills = req.Skills
		}
		if req.StartDate != nil {
			startDate, err := time.Parse(api.DateLayout, *req.StartDate)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid start date"})
			}
			project.StartDate = startDate
		}
		if req.EndDate != nil {
			endDate, err := time.Parse(api.DateLayout, *req.EndDate)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid end date"})
			}
			project.EndDate = endDate
		}
		if project.EndDate.Before(project.StartDate) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "end date must not be before start date"})
		}

		if err := updateProject(c.Request().Context(), db, project); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		invalidateListCache(rdb, wp)
		return c.JSON(http.StatusOK, api.NewProjectResponse(project))
	}
}

// @Summary     Delete a project
// @Description Owner only; comments on the project are removed with it
// @Tags        projects
// @Produce     json
// @Param       id path int true "project ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/delete-project/{id} [delete]
func DeleteProjectHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid project ID"})
		}

		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		project, err := getProjectByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
		}
		if err := service.RequireOwner(claims, project.UserID); err != nil {
			return err
		}

		if err := deleteProject(c.Request().Context(), db, id); err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		invalidateListCache(rdb, wp)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "project removed"})
	}
}

// @Summary     Search projects
// @Description Case-insensitive substring match on title, description,
//              category, and skills
// @Tags        projects
// @Produce     json
// @Param       query path string true "search query"
// @Success     200 {array} api.ProjectResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /projects/search-projects/{query} [get]
func SearchProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projects, err := searchProjects(c.Request().Context(), db, c.Param("query"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewProjectResponses(projects))
	}
}
