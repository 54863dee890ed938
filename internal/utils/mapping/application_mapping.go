package mapping

import (
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/models"
)

// ToModelApplication converts a domain Application to a model Application
func ToModelApplication(d domain.Application) models.Application {
	return models.Application{
		ApplicationID:   d.ApplicationID,
		ProjectID:       d.ProjectID,
		UserID:          d.UserID,
		ApplicantType:   string(d.ApplicantType),
		InvolvementType: string(d.InvolvementType),
		Message:         d.Message,
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason,
		Timestamps:      ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainApplication converts a model Application to a domain Application
func ToDomainApplication(m models.Application) domain.Application {
	return domain.Application{
		ApplicationID:   m.ApplicationID,
		ProjectID:       m.ProjectID,
		UserID:          m.UserID,
		ApplicantType:   domain.ApplicantType(m.ApplicantType),
		InvolvementType: domain.InvolvementType(m.InvolvementType),
		Message:         m.Message,
		Status:          domain.ApplicationStatus(m.Status),
		RejectionReason: m.RejectionReason,
		Timestamps:      ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainApplicationView converts a joined application row. A missing
// project or applicant leaves the corresponding field nil.
func ToDomainApplicationView(m models.ApplicationView) domain.ApplicationView {
	v := domain.ApplicationView{Application: ToDomainApplication(m.Application)}
	if m.JoinedProjectID != nil {
		v.Project = &domain.ProjectSummary{
			ProjectID:      *m.JoinedProjectID,
			Name:           derefString(m.ProjectName),
			Status:         derefString(m.ProjectStatus),
			ApprovalStatus: domain.ApprovalStatusFromStore(m.ProjectApprovalStatus),
			CreatorID:      derefString(m.ProjectCreatorID),
		}
	}
	if m.ApplicantName != nil {
		v.Applicant = &domain.UserSummary{
			UserID: m.UserID,
			Name:   *m.ApplicantName,
			Email:  derefString(m.ApplicantEmail),
			Type:   domain.Role(derefString(m.ApplicantUserType)),
		}
	}
	return v
}

// ToDomainApplicationViewSlice converts joined application rows
func ToDomainApplicationViewSlice(ms []models.ApplicationView) []domain.ApplicationView {
	ds := make([]domain.ApplicationView, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApplicationView(m)
	}
	return ds
}
