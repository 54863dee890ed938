package dto

import (
	"time"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest is the payload for creating a project.
// Booleans default to true when omitted.
type CreateProjectRequest struct {
	Name                   string          `json:"name" binding:"required"`
	NGOs                   []string        `json:"ngos"`
	Categories             []string        `json:"categories"`
	Districts              []string        `json:"districts"`
	TargetAudience         []string        `json:"targetAudience"`
	Status                 string          `json:"status"`
	StartDate              *time.Time      `json:"startDate"`
	EndDate                *time.Time      `json:"endDate"`
	Goal                   decimal.Decimal `json:"goal"`
	BudgetBreakdown        string          `json:"budgetBreakdown"`
	NGORoles               string          `json:"ngoRoles"`
	Description            string          `json:"description"`
	Milestones             string          `json:"milestones"`
	ImpactGoals            string          `json:"impactGoals"`
	IsPublic               *bool           `json:"isPublic"`
	IsOpenForDonations     *bool           `json:"isOpenForDonations"`
	IsOpenForOrganizations *bool           `json:"isOpenForOrganizations"`
	ComplianceAgreed       bool            `json:"complianceAgreed"`
	Image                  string          `json:"image"`
	ImageType              string          `json:"imageType" binding:"omitempty,oneof=link upload"`
}

type ProjectResponse struct {
	domain.Project
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{Project: ensureProjectSlices(*p)}
}

func ToProjectListResponse(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return out
}

// ensureProjectSlices renders empty lists as [] instead of null.
func ensureProjectSlices(p domain.Project) domain.Project {
	if p.NGOs == nil {
		p.NGOs = []string{}
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.Districts == nil {
		p.Districts = []string{}
	}
	if p.TargetAudience == nil {
		p.TargetAudience = []string{}
	}
	return p
}
