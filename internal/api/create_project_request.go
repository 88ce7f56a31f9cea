// File: internal/api/create_project_request.go
package api

// DateLayout is the wire format for project date fields.
const DateLayout = "2006-01-02"

// swagger:model api.CreateProjectRequest
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required" example:"Portfolio site"`
	Description string   `json:"description" validate:"required" example:"Personal portfolio built with React"`
	Link        *string  `json:"link" validate:"omitempty,url" example:"https://example.com"`
	Category    string   `json:"category" validate:"required,oneof='Front End' 'Back End' 'Full Stack' 'Data Analyst' 'Business Analyst' 'Data Science' 'AI/ML' 'Mobile Development' 'DevOps' 'UI/UX Design' 'QA Testing'" example:"Front End"`
	Skills      []string `json:"skills" example:"react,go"`
	StartDate   string   `json:"startDate" validate:"required,datetime=2006-01-02" example:"2024-01-01"`
	EndDate     string   `json:"endDate" validate:"required,datetime=2006-01-02" example:"2024-06-01"`
}
