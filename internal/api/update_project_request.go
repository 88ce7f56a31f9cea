// File: internal/api/update_project_request.go
package api

// UpdateProjectRequest is a partial update: absent fields keep their prior
// values. The owner is never part of the payload.
// swagger:model api.UpdateProjectRequest
type UpdateProjectRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1" example:"Portfolio site"`
	Description *string  `json:"description" validate:"omitempty,min=1" example:"Personal portfolio built with React"`
	Link        *string  `json:"link" validate:"omitempty,url" example:"https://example.com"`
	Category    *string  `json:"category" validate:"omitempty,oneof='Front End' 'Back End' 'Full Stack' 'Data Analyst' 'Business Analyst' 'Data Science' 'AI/ML' 'Mobile Development' 'DevOps' 'UI/UX Design' 'QA Testing'" example:"Front End"`
	Skills      []string `json:"skills" example:"react,go"`
	StartDate   *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	EndDate     *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
}
