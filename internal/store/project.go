// File: internal/store/project.go
package store

import (
	"context"
	"fmt"

	"devconnect/internal/database"
	"devconnect/internal/model"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `p.id, p.user_id, p.title, p.description, p.link, p.category,
	 p.skills, p.start_date, p.end_date, p.created_at, p.updated_at,
	 u.name, u.profile_image`

func scanProject(row pgx.Row) (*model.Project, error) {
	p := &model.Project{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Description,
		&p.Link,
		&p.Category,
		&p.Skills,
		&p.StartDate,
		&p.EndDate,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.OwnerName,
		&p.OwnerProfileImage,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectProjects(rows pgx.Rows) ([]model.Project, error) {
	defer rows.Close()
	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func GetProjectByID(ctx context.Context, db database.DB, projectID int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p JOIN users u ON u.id = p.user_id
		 WHERE p.id = $1`,
		projectID,
	)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects, most recent first.
func ListProjects(ctx context.Context, db database.DB) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func ListProjectsByUser(ctx context.Context, db database.DB, userID int) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = $1
		 ORDER BY p.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjectsByUser: %w", err)
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProjectsByUser: %w", err)
	}
	return projects, nil
}

// SearchProjects matches the query as a case-insensitive substring of the
// title, description, category, or any skill tag.
func SearchProjects(ctx context.Context, db database.DB, query string) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p JOIN users u ON u.id = p.user_id
		 WHERE p.title ILIKE '%' || $1 || '%'
		    OR p.description ILIKE '%' || $1 || '%'
		    OR p.category ILIKE '%' || $1 || '%'
		    OR EXISTS (
		         SELECT 1 FROM unnest(p.skills) AS skill
		         WHERE skill ILIKE '%' || $1 || '%'
		       )`,
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("SearchProjects: %w", err)
	}
	projects, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("SearchProjects: %w", err)
	}
	return projects, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (user_id, title, description, link, category, skills, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		p.UserID,
		p.Title,
		p.Description,
		p.Link,
		p.Category,
		p.Skills,
		p.StartDate,
		p.EndDate,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	return p, nil
}

// UpdateProject persists the mutable fields; user_id is never touched.
func UpdateProject(ctx context.Context, db database.DB, p *model.Project) error {
	row := db.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, link = $3, category = $4, skills = $5,
		     start_date = $6, end_date = $7, updated_at = now()
		 WHERE id = $8
		 RETURNING updated_at`,
		p.Title,
		p.Description,
		p.Link,
		p.Category,
		p.Skills,
		p.StartDate,
		p.EndDate,
		p.ID,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	return nil
}

func DeleteProject(ctx context.Context, db database.DB, projectID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1`,
		projectID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProject: %w", pgx.ErrNoRows)
	}
	return nil
}
