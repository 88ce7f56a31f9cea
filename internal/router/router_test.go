package router

import (
	"net/http"
	"testing"

	"devconnect/internal/cache"
	"devconnect/internal/database"
	"devconnect/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register-user",
		http.MethodPost + " /api/auth/login-user",
		http.MethodGet + " /api/auth/get-current-user",
		http.MethodPut + " /api/auth/update-current-user",
		http.MethodGet + " /api/users/get-all-users",
		http.MethodGet + " /api/users/get-user/:id",
		http.MethodGet + " /api/users/search-users/:query",
		http.MethodDelete + " /api/users/delete-user/:id",
		http.MethodPost + " /api/projects/create-project",
		http.MethodGet + " /api/projects/get-all-projects",
		http.MethodGet + " /api/projects/get-project/:id",
		http.MethodGet + " /api/projects/get-projects-by-user/:userId",
		http.MethodPut + " /api/projects/update-project/:id",
		http.MethodDelete + " /api/projects/delete-project/:id",
		http.MethodGet + " /api/projects/search-projects/:query",
		http.MethodPost + " /api/comments/create-comment/:projectId",
		http.MethodGet + " /api/comments/get-comments/:projectId",
		http.MethodPut + " /api/comments/update-comment/:id",
		http.MethodDelete + " /api/comments/delete-comment/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
