package projects

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/model"
	"devconnect/internal/service"
	"devconnect/internal/store"
	"devconnect/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	createProject = store.CreateProject
	getProjectByID = store.GetProjectByID
	listProjects = store.ListProjects
	listProjectsByUser = store.ListProjectsByUser
	searchProjects = store.SearchProjects
	updateProject = store.UpdateProject
	deleteProject = store.DeleteProject
}

func asOwner(c echo.Context, userID int) {
	c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: userID})
}

func noopCache() *cache.FakeCache {
	return &cache.FakeCache{
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			return redis.NewIntResult(1, nil)
		},
	}
}

func TestCreateProjectHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("missing claims", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, `{}`)
		require.NoError(t, CreateProjectHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("end date before start date", func(t *testing.T) {
		t.Cleanup(restore)
		created := false
		createProject = func(_ context.Context, _ database.DB, _ *model.Project) (*model.Project, error) {
			created = true
			return nil, nil
		}
		body := `{"title":"t","description":"d","category":"Back End","startDate":"2024-05-01","endDate":"2024-04-01"}`
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		asOwner(ctx, 7)
		require.NoError(t, CreateProjectHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "end date must not be before start date")
		require.False(t, created)
	})

	t.Run("owner stamped from token and cache invalidated", func(t *testing.T) {
		t.Cleanup(restore)
		var gotOwner int
		createProject = func(_ context.Context, _ database.DB, p *model.Project) (*model.Project, error) {
			gotOwner = p.UserID
			require.NotNil(t, p.Skills)
			p.ID = 1
			return p, nil
		}
		deleted := make(chan string, 1)
		rdb := &cache.FakeCache{
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				deleted <- keys[0]
				return redis.NewIntResult(1, nil)
			},
		}
		wp := worker.NewPool(1)

		body := `{"title":"t","description":"d","category":"Back End","startDate":"2024-04-01","endDate":"2024-05-01"}`
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		asOwner(ctx, 7)
		require.NoError(t, CreateProjectHandler(nil, rdb, wp)(ctx))
		wp.Stop()

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 7, gotOwner)
		require.Equal(t, listCacheKey, <-deleted)
	})
}

func TestGetAllProjectsHandler(t *testing.T) {
	e := echo.New()

	t.Run("cache hit skips the store", func(t *testing.T) {
		t.Cleanup(restore)
		listProjects = func(_ context.Context, _ database.DB) ([]model.Project, error) {
			t.Fatal("store should not be queried on a cache hit")
			return nil, nil
		}
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, listCacheKey, key)
				return redis.NewStringResult(`[{"id":1}]`, nil)
			},
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, GetAllProjectsHandler(nil, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":1`)
	})

	t.Run("cache miss queries and fills", func(t *testing.T) {
		t.Cleanup(restore)
		listProjects = func(_ context.Context, _ database.DB) ([]model.Project, error) {
			return []model.Project{{ID: 2, Title: "Side project", Skills: []string{}}}, nil
		}
		var setKey string
		var setTTL time.Duration
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, _ string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
				setKey = key
				setTTL = ttl
				return redis.NewStatusResult("OK", nil)
			},
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, GetAllProjectsHandler(nil, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Side project")
		require.Equal(t, listCacheKey, setKey)
		require.Equal(t, listCacheTTL, setTTL)
	})
}

func TestGetProjectHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getProjectByID = func(_ context.Context, _ database.DB, _ int) (*model.Project, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("3")
		require.NoError(t, GetProjectHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetProjectsByUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		listProjectsByUser = func(_ context.Context, _ database.DB, userID int) ([]model.Project, error) {
			require.Equal(t, 4, userID)
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		ctx.SetParamNames("userId")
		ctx.SetParamValues("4")
		require.NoError(t, GetProjectsByUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUpdateProjectHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	existing := func() *model.Project {
		return &model.Project{
			ID:          5,
			UserID:      7,
			Title:       "Old title",
			Description: "Old description",
			Category:    "Back End",
			Skills:      []string{"go"},
			StartDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("non-owner is forbidden and nothing is written", func(t *testing.T) {
		t.Cleanup(restore)
		getProjectByID = func(_ context.Context, _ database.DB, _ int) (*model.Project, error) {
			return existing(), nil
		}
		updated := false
		updateProject = func(_ context.Context, _ database.DB, _ *model.Project) error {
			updated = true
			return nil
		}
		ctx, _ := newJSONCtx(e, http.MethodPut, `{"title":"hijack"}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues("5")
		asOwner(ctx, 99)
		err := UpdateProjectHandler(nil, nil, nil)(ctx)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusForbidden, httpErr.Code)
		require.False(t, updated)
	})

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		t.Cleanup(restore)
		getProjectByID = func(_ context.Context, _ database.DB, _ int) (*model.Project, error) {
			return existing(), nil
		}
		var persisted *model.Project
		updateProject = func(_ context.Context, _ database.DB, p *model.Project) error {
			persisted = p
			return nil
		}
		wp := worker.NewPool(1)
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"title":"New title"}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues("5")
		asOwner(ctx, 7)
		require.NoError(t, UpdateProjectHandler(nil, noopCache(), wp)(ctx))
		wp.Stop()

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "New title", persisted.Title)
		require.Equal(t, "Old description", persisted.Description)
		require.Equal(t, []string{"go"}, persisted.Skills)
		require.Equal(t, 7, persisted.UserID)
	})

	t.Run("moving end date before start date is rejected", func(t *testing.T) {
		t.Cleanup(restore)
		getProjectByID = func(_ context.Context, _ database.DB, _ int) (*model.Project, error) {
			return existing(), nil
		}
		updated := false
		updateProject = func(_ context.Context, _ database.DB, _ *model.Project) error {
			updated = true
			return nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"endDate":"2024-03-01"}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues("5")
		asOwner(ctx, 7)
		require.NoError(t, UpdateProjectHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.False(t, updated)
	})
}

func TestDeleteProjectHandler(t *testing.T) {
	e := echo.New()

	t.Run("non-owner is forbidden", func(t *testing.T) {
		t.Cleanup(restore)
		getProjectByID = func(_ context.Context, _ database.DB, _ int) (*model.Project, error) {
			return &model.Project{ID: 5, UserID: 7}, nil
		}
		ctx, _ := newJSONCtx(e, http.MethodDelete, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("5")
		asOwner(ctx, 99)
		err := DeleteProjectHandler(nil, nil, nil)(ctx)
		require.Error(t, err)
	})

	t.Run("owner delete is idempotent", func(t *testing.T) {
		t.Cleanup(restore)
		exists := true
		getProjectByID = func(_ context.Context, _ database.DB, _ int) (*model.Project, error) {
			if !exists {
				return nil, pgx.ErrNoRows
			}
			return &model.Project{ID: 5, UserID: 7}, nil
		}
		deleteProject = func(_ context.Context, _ database.DB, _ int) error {
			exists = false
			return nil
		}
		wp := worker.NewPool(1)

		ctx, rec := newJSONCtx(e, http.MethodDelete, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("5")
		asOwner(ctx, 7)
		require.NoError(t, DeleteProjectHandler(nil, noopCache(), wp)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "project removed")

		ctx, rec = newJSONCtx(e, http.MethodDelete, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("5")
		asOwner(ctx, 7)
		require.NoError(t, DeleteProjectHandler(nil, noopCache(), wp)(ctx))
		wp.Stop()
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete race maps to not found", func(t *testing.T) {
		t.Cleanup(restore)
		getProjectByID = func(_ context.Context, _ database.DB, _ int) (*model.Project, error) {
			return &model.Project{ID: 5, UserID: 7}, nil
		}
		deleteProject = func(_ context.Context, _ database.DB, _ int) error {
			return fmt.Errorf("DeleteProject: %w", pgx.ErrNoRows)
		}
		ctx, rec := newJSONCtx(e, http.MethodDelete, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("5")
		asOwner(ctx, 7)
		require.NoError(t, DeleteProjectHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSearchProjectsHandler(t *testing.T) {
	e := echo.New()

	t.Run("passes query through", func(t *testing.T) {
		t.Cleanup(restore)
		searchProjects = func(_ context.Context, _ database.DB, q string) ([]model.Project, error) {
			require.Equal(t, "react", q)
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		ctx.SetParamNames("query")
		ctx.SetParamValues("react")
		require.NoError(t, SearchProjectsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
