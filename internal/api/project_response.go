// File: internal/api/project_response.go
package api

import (
	"time"

	"devconnect/internal/model"
)

// swagger:model api.ProjectResponse
type ProjectResponse struct {
	ID          int       `json:"id" example:"1"`
	User        UserRef   `json:"user"`
	Title       string    `json:"title" example:"Portfolio site"`
	Description string    `json:"description" example:"Personal portfolio built with React"`
	Link        *string   `json:"link" example:"https://example.com"`
	Category    string    `json:"category" example:"Front End"`
	Skills      []string  `json:"skills" example:"react,go"`
	StartDate   string    `json:"startDate" example:"2024-01-01"`
	EndDate     string    `json:"endDate" example:"2024-06-01"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

func NewProjectResponse(p *model.Project) ProjectResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProjectResponse{
		ID: p.ID,
		User: UserRef{
			ID:           p.UserID,
			Name:         p.OwnerName,
			ProfileImage: p.OwnerProfileImage,
		},
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		Category:    p.Category,
		Skills:      skills,
		StartDate:   p.StartDate.Format(DateLayout),
		EndDate:     p.EndDate.Format(DateLayout),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}
