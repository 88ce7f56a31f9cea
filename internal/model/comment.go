// File: internal/model/comment.go
package model

import "time"

type Comment struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	ProjectID int       `db:"project_id" json:"project_id"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Owner fields joined from users for listings.
	OwnerName         string  `db:"-" json:"-"`
	OwnerProfileImage *string `db:"-" json:"-"`
}
