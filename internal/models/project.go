package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a row of the projects table.
// ApprovalStatus is NULL for rows written before moderation existed.
type Project struct {
	ProjectID              string          `db:"project_id"`
	CreatorID              string          `db:"creator_id"`
	ApprovalStatus         *string         `db:"approval_status"`
	Name                   string          `db:"name"`
	NGOs                   []string        `db:"ngos"`
	Categories             []string        `db:"categories"`
	Districts              []string        `db:"districts"`
	TargetAudience         []string        `db:"target_audience"`
	Status                 string          `db:"status"`
	StartDate              *time.Time      `db:"start_date"`
	EndDate                *time.Time      `db:"end_date"`
	Goal                   decimal.Decimal `db:"goal"`
	Raised                 decimal.Decimal `db:"raised"`
	Donors                 int             `db:"donors"`
	BudgetBreakdown        string          `db:"budget_breakdown"`
	NGORoles               string          `db:"ngo_roles"`
	Description            string          `db:"description"`
	Milestones             string          `db:"milestones"`
	ImpactGoals            string          `db:"impact_goals"`
	IsPublic               bool            `db:"is_public"`
	IsOpenForDonations     bool            `db:"is_open_for_donations"`
	IsOpenForOrganizations bool            `db:"is_open_for_organizations"`
	ComplianceAgreed       bool            `db:"compliance_agreed"`
	Image                  string          `db:"image"`
	ImageType              string          `db:"image_type"`
	Timestamps
}

// ProjectWithCreator is a project joined with its creating account.
// The creator columns are NULL when the account no longer exists.
type ProjectWithCreator struct {
	Project
	CreatorName  *string `db:"creator_name"`
	CreatorEmail *string `db:"creator_email"`
	CreatorType  *string `db:"creator_type"`
}
