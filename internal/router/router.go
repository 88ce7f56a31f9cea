// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"devconnect/internal/cache"
	"devconnect/internal/database"
	"devconnect/internal/handler"
	"devconnect/internal/handler/auth"
	"devconnect/internal/handler/comments"
	"devconnect/internal/handler/projects"
	"devconnect/internal/handler/users"
	"devconnect/internal/middleware"
	"devconnect/internal/worker"
)

// Setup registers every route under /api. Reads are public; mutating routes
// and the current-user routes go through RequireAuth.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb))

	apiAuth := api.Group("/auth")
	apiAuth.POST("/register-user", auth.RegisterUserHandler(db))
	apiAuth.POST("/login-user", auth.LoginUserHandler(db))
	apiAuth.GET("/get-current-user", auth.GetCurrentUserHandler(db), middleware.RequireAuth)
	apiAuth.PUT("/update-current-user", auth.UpdateCurrentUserHandler(db), middleware.RequireAuth)

	apiUsers := api.Group("/users")
	apiUsers.GET("/get-all-users", users.GetAllUsersHandler(db))
	apiUsers.GET("/get-user/:id", users.GetUserHandler(db))
	apiUsers.GET("/search-users/:query", users.SearchUsersHandler(db))
	apiUsers.DELETE("/delete-user/:id", users.DeleteUserHandler(db), middleware.RequireAuth)

	apiProjects := api.Group("/projects")
	apiProjects.POST("/create-project", projects.CreateProjectHandler(db, rdb, wp), middleware.RequireAuth)
	apiProjects.GET("/get-all-projects", projects.GetAllProjectsHandler(db, rdb))
	apiProjects.GET("/get-project/:id", projects.GetProjectHandler(db))
	apiProjects.GET("/get-projects-by-user/:userId", projects.GetProjectsByUserHandler(db))
	apiProjects.PUT("/update-project/:id", projects.UpdateProjectHandler(db, rdb, wp), middleware.RequireAuth)
	apiProjects.DELETE("/delete-project/:id", projects.DeleteProjectHandler(db, rdb, wp), middleware.RequireAuth)
	apiProjects.GET("/search-projects/:query", projects.SearchProjectsHandler(db))

	apiComments := api.Group("/comments")
	apiComments.POST("/create-comment/:projectId", comments.CreateCommentHandler(db), middleware.RequireAuth)
	apiComments.GET("/get-comments/:projectId", comments.GetCommentsHandler(db))
	apiComments.PUT("/update-comment/:id", comments.UpdateCommentHandler(db), middleware.RequireAuth)
	apiComments.DELETE("/delete-comment/:id", comments.DeleteCommentHandler(db), middleware.RequireAuth)
}
