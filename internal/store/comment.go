// File: internal/store/comment.go
package store

import (
	"context"
	"fmt"

	"devconnect/internal/database"
	"devconnect/internal/model"

	"github.com/jackc/pgx/v5"
)

const commentColumns = `c.id, c.user_id, c.project_id, c.text, c.created_at,
	 u.name, u.profile_image`

func scanComment(row pgx.Row) (*model.Comment, error) {
	cm := &model.Comment{}
	err := row.Scan(
		&cm.ID,
		&cm.UserID,
		&cm.ProjectID,
		&cm.Text,
		&cm.CreatedAt,
		&cm.OwnerName,
		&cm.OwnerProfileImage,
	)
	if err != nil {
		return nil, err
	}
	return cm, nil
}

func GetCommentByID(ctx context.Context, db database.DB, commentID int) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`SELECT `+commentColumns+`
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1`,
		commentID,
	)
	cm, err := scanComment(row)
	if err != nil {
		return nil, fmt.Errorf("GetCommentByID: %w", err)
	}
	return cm, nil
}

// ListCommentsByProject returns a project's comments, most recent first.
func ListCommentsByProject(ctx context.Context, db database.DB, projectID int) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		`SELECT `+commentColumns+`
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.project_id = $1
		 ORDER BY c.created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCommentsByProject: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		cm, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("ListCommentsByProject: %w", err)
		}
		comments = append(comments, *cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCommentsByProject: %w", err)
	}
	return comments, nil
}

func CreateComment(ctx context.Context, db database.DB, cm *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comments (user_id, project_id, text)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		cm.UserID,
		cm.ProjectID,
		cm.Text,
	)
	if err := row.Scan(&cm.ID, &cm.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	return cm, nil
}

func UpdateComment(ctx context.Context, db database.DB, cm *model.Comment) error {
	_, err := db.Exec(ctx,
		`UPDATE comments SET text = $1 WHERE id = $2`,
		cm.Text,
		cm.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateComment: %w", err)
	}
	return nil
}

func DeleteComment(ctx context.Context, db database.DB, commentID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM comments WHERE id = $1`,
		commentID,
	)
	if err != nil {
		return fmt.Errorf("DeleteComment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteComment: %w", pgx.ErrNoRows)
	}
	return nil
}
