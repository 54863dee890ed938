package mapping

import (
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:              d.ProjectID,
		CreatorID:              d.CreatorID,
		ApprovalStatus:         d.ApprovalStatus.StoreValue(),
		Name:                   d.Name,
		NGOs:                   nonNilStrings(d.NGOs),
		Categories:             nonNilStrings(d.Categories),
		Districts:              nonNilStrings(d.Districts),
		TargetAudience:         nonNilStrings(d.TargetAudience),
		Status:                 d.Status,
		StartDate:              d.StartDate,
		EndDate:                d.EndDate,
		Goal:                   d.Goal,
		Raised:                 d.Raised,
		Donors:                 d.Donors,
		BudgetBreakdown:        d.BudgetBreakdown,
		NGORoles:               d.NGORoles,
		Description:            d.Description,
		Milestones:             d.Milestones,
		ImpactGoals:            d.ImpactGoals,
		IsPublic:               d.IsPublic,
		IsOpenForDonations:     d.IsOpenForDonations,
		IsOpenForOrganizations: d.IsOpenForOrganizations,
		ComplianceAgreed:       d.ComplianceAgreed,
		Image:                  d.Image,
		ImageType:              string(d.ImageType),
		Timestamps:             ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:              m.ProjectID,
		CreatorID:              m.CreatorID,
		ApprovalStatus:         domain.ApprovalStatusFromStore(m.ApprovalStatus),
		Name:                   m.Name,
		NGOs:                   m.NGOs,
		Categories:             m.Categories,
		Districts:              m.Districts,
		TargetAudience:         m.TargetAudience,
		Status:                 m.Status,
		StartDate:              m.StartDate,
		EndDate:                m.EndDate,
		Goal:                   m.Goal,
		Raised:                 m.Raised,
		Donors:                 m.Donors,
		BudgetBreakdown:        m.BudgetBreakdown,
		NGORoles:               m.NGORoles,
		Description:            m.Description,
		Milestones:             m.Milestones,
		ImpactGoals:            m.ImpactGoals,
		IsPublic:               m.IsPublic,
		IsOpenForDonations:     m.IsOpenForDonations,
		IsOpenForOrganizations: m.IsOpenForOrganizations,
		ComplianceAgreed:       m.ComplianceAgreed,
		Image:                  m.Image,
		ImageType:              domain.ImageType(m.ImageType),
		Timestamps:             ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainProjectWithCreator converts a joined project row, attaching the creator when present.
func ToDomainProjectWithCreator(m models.ProjectWithCreator) domain.Project {
	p := ToDomainProject(m.Project)
	if m.CreatorName != nil {
		p.Creator = &domain.UserSummary{
			UserID: m.CreatorID,
			Name:   *m.CreatorName,
			Email:  derefString(m.CreatorEmail),
			Type:   domain.Role(derefString(m.CreatorType)),
		}
	}
	return p
}

// ToDomainProjectSlice converts joined project rows to domain Projects
func ToDomainProjectSlice(ms []models.ProjectWithCreator) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProjectWithCreator(m)
	}
	return ds
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
