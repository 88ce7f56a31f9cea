// File: internal/model/project.go
package model

import "time"

// Categories a project may belong to. Mirrors the fixed list offered by the
// client's create form.
var ProjectCategories = []string{
	"Front End",
	"Back End",
	"Full Stack",
	"Data Analyst",
	"Business Analyst",
	"Data Science",
	"AI/ML",
	"Mobile Development",
	"DevOps",
	"UI/UX Design",
	"QA Testing",
}

type Project struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Link        *string   `db:"link" json:"link"`
	Category    string    `db:"category" json:"category"`
	Skills      []string  `db:"skills" json:"skills"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Owner fields joined from users for listings; not columns of projects.
	OwnerName         string  `db:"-" json:"-"`
	OwnerProfileImage *string `db:"-" json:"-"`
}
