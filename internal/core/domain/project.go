package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus is the moderation state of a project.
//
// ApprovalLegacy stands for records created before moderation existed and
// therefore have no stored status. They are treated as approved.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
	ApprovalLegacy   ApprovalStatus = "legacy"
)

// ApprovalStatusFromStore converts a nullable column value into an ApprovalStatus.
func ApprovalStatusFromStore(v *string) ApprovalStatus {
	if v == nil || *v == "" {
		return ApprovalLegacy
	}
	return ApprovalStatus(*v)
}

// StoreValue is the inverse of ApprovalStatusFromStore.
func (s ApprovalStatus) StoreValue() *string {
	if s == ApprovalLegacy || s == "" {
		return nil
	}
	v := string(s)
	return &v
}

// IsPubliclyVisible reports whether projects in this state are listed for everyone.
func (s ApprovalStatus) IsPubliclyVisible() bool {
	return s == ApprovalApproved || s == ApprovalLegacy
}

// InitialApprovalStatus is the status a new project receives from its creator.
func InitialApprovalStatus(creator *Principal) ApprovalStatus {
	if creator.IsAdmin() {
		return ApprovalApproved
	}
	return ApprovalPending
}

type ImageType string

const (
	ImageTypeLink   ImageType = "link"
	ImageTypeUpload ImageType = "upload"
)

// Project is a community-development project listed on the platform.
type Project struct {
	ProjectID              string          `json:"projectID"`
	CreatorID              string          `json:"creatorID"`
	ApprovalStatus         ApprovalStatus  `json:"approvalStatus"`
	Name                   string          `json:"name"`
	NGOs                   []string        `json:"ngos"`
	Categories             []string        `json:"categories"`
	Districts              []string        `json:"districts"`
	TargetAudience         []string        `json:"targetAudience"`
	Status                 string          `json:"status"`
	StartDate              *time.Time      `json:"startDate,omitempty"`
	EndDate                *time.Time      `json:"endDate,omitempty"`
	Goal                   decimal.Decimal `json:"goal"`
	Raised                 decimal.Decimal `json:"raised"`
	Donors                 int             `json:"donors"`
	BudgetBreakdown        string          `json:"budgetBreakdown"`
	NGORoles               string          `json:"ngoRoles"`
	Description            string          `json:"description"`
	Milestones             string          `json:"milestones"`
	ImpactGoals            string          `json:"impactGoals"`
	IsPublic               bool            `json:"isPublic"`
	IsOpenForDonations     bool            `json:"isOpenForDonations"`
	IsOpenForOrganizations bool            `json:"isOpenForOrganizations"`
	ComplianceAgreed       bool            `json:"complianceAgreed"`
	Image                  string          `json:"image"`
	ImageType              ImageType       `json:"imageType"`
	Creator                *UserSummary    `json:"creator,omitempty"`
	Timestamps
}

// ProjectSummary is the subset of a project joined into applications.
type ProjectSummary struct {
	ProjectID      string         `json:"projectID"`
	Name           string         `json:"name"`
	Status         string         `json:"status"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	CreatorID      string         `json:"creatorID"`
}

// Summary returns the project summary view.
func (p Project) Summary() ProjectSummary {
	return ProjectSummary{
		ProjectID:      p.ProjectID,
		Name:           p.Name,
		Status:         p.Status,
		ApprovalStatus: p.ApprovalStatus,
		CreatorID:      p.CreatorID,
	}
}

// AcceptsDonations reports whether donations may currently be recorded.
func (p Project) AcceptsDonations() bool {
	return p.ApprovalStatus.IsPubliclyVisible() && p.IsOpenForDonations
}

// VisibilityScope describes which projects a principal may read.
type VisibilityScope int

const (
	// ScopeAll sees every project.
	ScopeAll VisibilityScope = iota
	// ScopePublic sees approved and legacy projects.
	ScopePublic
	// ScopePublicOrOwn additionally sees projects the owner created.
	ScopePublicOrOwn
)

// ProjectFilter is the store-level form of the visibility rule.
type ProjectFilter struct {
	Scope   VisibilityScope
	OwnerID string
}

// ProjectVisibility returns the filter that selects exactly the projects
// for which CanViewProject holds.
func ProjectVisibility(principal *Principal) ProjectFilter {
	switch {
	case principal.IsAnonymous():
		return ProjectFilter{Scope: ScopePublic}
	case principal.IsAdmin():
		return ProjectFilter{Scope: ScopeAll}
	default:
		return ProjectFilter{Scope: ScopePublicOrOwn, OwnerID: principal.OwnerID()}
	}
}

// Matches applies the filter to a single project.
func (f ProjectFilter) Matches(p Project) bool {
	switch f.Scope {
	case ScopeAll:
		return true
	case ScopePublicOrOwn:
		return p.ApprovalStatus.IsPubliclyVisible() || (f.OwnerID != "" && p.CreatorID == f.OwnerID)
	default:
		return p.ApprovalStatus.IsPubliclyVisible()
	}
}

// CanViewProject reports whether principal may read p.
func CanViewProject(principal *Principal, p Project) bool {
	return ProjectVisibility(principal).Matches(p)
}
