package models

// Application is a row of the applications table.
type Application struct {
	ApplicationID   string `db:"application_id"`
	ProjectID       string `db:"project_id"`
	UserID          string `db:"user_id"`
	ApplicantType   string `db:"applicant_type"`
	InvolvementType string `db:"involvement_type"`
	Message         string `db:"message"`
	Status          string `db:"status"`
	RejectionReason string `db:"rejection_reason"`
	Timestamps
}

// ApplicationView is an application LEFT JOINed with its project and applicant.
type ApplicationView struct {
	Application
	JoinedProjectID       *string `db:"joined_project_id"`
	ProjectName           *string `db:"project_name"`
	ProjectStatus         *string `db:"project_status"`
	ProjectApprovalStatus *string `db:"project_approval_status"`
	ProjectCreatorID      *string `db:"project_creator_id"`
	ApplicantName         *string `db:"applicant_name"`
	ApplicantEmail        *string `db:"applicant_email"`
	ApplicantUserType     *string `db:"applicant_user_type"`
}
