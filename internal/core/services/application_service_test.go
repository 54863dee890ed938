package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/core/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ApplicationServiceTestSuite struct {
	suite.Suite
	mockAppRepo     *MockApplicationRepository
	mockProjectRepo *MockProjectRepository
	service         portssvc.ApplicationSvcFacade
	ctx             context.Context
	now             time.Time
	admin           *domain.Principal
	supporter       *domain.Principal
	project         *domain.Project
}

func (s *ApplicationServiceTestSuite) SetupTest() {
	s.mockAppRepo = new(MockApplicationRepository)
	s.mockProjectRepo = new(MockProjectRepository)
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.service = services.NewApplicationService(s.mockAppRepo, s.mockProjectRepo,
		services.WithApplicationClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
	s.admin = &domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}
	s.supporter = &domain.Principal{ID: "user-1", Role: domain.RoleIndividual}
	s.project = &domain.Project{ProjectID: "proj-1", CreatorID: "org-1", ApprovalStatus: domain.ApprovalApproved}
}

func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}

func (s *ApplicationServiceTestSuite) noPriorApplication(projectID, userID string) {
	s.mockAppRepo.On("FindApplicationByProjectAndUser", s.ctx, projectID, userID).Return(nil, apperrors.ErrNotFound).Once()
}

func (s *ApplicationServiceTestSuite) TestSubmit_Success() {
	s.noPriorApplication("proj-1", "user-1")
	s.mockProjectRepo.On("FindProjectByID", s.ctx, "proj-1").Return(s.project, nil).Once()
	s.mockAppRepo.On("SaveApplication", s.ctx, mock.MatchedBy(func(a domain.Application) bool {
		return a.ProjectID == "proj-1" && a.UserID == "user-1" && a.Status == domain.StatusPending &&
			a.ApplicantType == domain.ApplicantSupporter && a.InvolvementType == domain.InvolvementOther &&
			a.Message == "Help" && a.CreatedAt.Equal(s.now)
	})).Return(nil).Once()

	app, err := s.service.Submit(s.ctx, s.supporter, dto.SubmitApplicationRequest{ProjectID: "proj-1", Message: " Help "})

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, app.Status)
	s.NotEmpty(app.ApplicationID)
	s.mockAppRepo.AssertExpectations(s.T())
	s.mockProjectRepo.AssertExpectations(s.T())
}

func (s *ApplicationServiceTestSuite) TestSubmit_OrganizationMemberAppliesForOrganization() {
	member := &domain.Principal{ID: "mem-1", Role: domain.RoleOrgMember, OrganizationID: "org-2", MemberRole: domain.MemberRoleMember}
	s.noPriorApplication("proj-1", "org-2")
	s.mockProjectRepo.On("FindProjectByID", s.ctx, "proj-1").Return(s.project, nil).Once()
	s.mockAppRepo.On("SaveApplication", s.ctx, mock.MatchedBy(func(a domain.Application) bool {
		return a.UserID == "org-2" && a.ApplicantType == domain.ApplicantOrganization
	})).Return(nil).Once()

	_, err := s.service.Submit(s.ctx, member, dto.SubmitApplicationRequest{
		ProjectID:     "proj-1",
		Message:       "We can help",
		ApplicantType: "organization",
	})

	s.Require().NoError(err)
	s.mockAppRepo.AssertExpectations(s.T())
}

func (s *ApplicationServiceTestSuite) TestSubmit_ViewerMemberForbidden() {
	viewer := &domain.Principal{ID: "mem-2", Role: domain.RoleOrgMember, OrganizationID: "org-2", MemberRole: domain.MemberRoleViewer}

	_, err := s.service.Submit(s.ctx, viewer, dto.SubmitApplicationRequest{ProjectID: "proj-1", Message: "Help"})

	s.True(errors.Is(err, apperrors.ErrForbidden))
	s.mockAppRepo.AssertNotCalled(s.T(), "FindApplicationByProjectAndUser", mock.Anything, mock.Anything, mock.Anything)
	s.mockAppRepo.AssertNotCalled(s.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (s *ApplicationServiceTestSuite) TestSubmit_Anonymous() {
	_, err := s.service.Submit(s.ctx, nil, dto.SubmitApplicationRequest{ProjectID: "proj-1", Message: "Help"})

	s.True(errors.Is(err, apperrors.ErrUnauthorized))
	s.mockProjectRepo.AssertNotCalled(s.T(), "FindProjectByID", mock.Anything, mock.Anything)
}

func (s *ApplicationServiceTestSuite) TestSubmit_ValidationErrors() {
	cases := []dto.SubmitApplicationRequest{
		{ProjectID: "proj-1", Message: "   "},
		{ProjectID: "", Message: "Help"},
		{ProjectID: "proj-1", Message: "Help", ApplicantType: "sponsor"},
		{ProjectID: "proj-1", Message: "Help", InvolvementType: "Marketing"},
	}
	for _, req := range cases {
		_, err := s.service.Submit(s.ctx, s.supporter, req)
		s.True(errors.Is(err, apperrors.ErrValidation), "request %+v", req)
	}
	s.mockAppRepo.AssertNotCalled(s.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (s *ApplicationServiceTestSuite) TestSubmit_ProjectNotFound() {
	s.noPriorApplication("missing", "user-1")
	s.mockProjectRepo.On("FindProjectByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Submit(s.ctx, s.supporter, dto.SubmitApplicationRequest{ProjectID: "missing", Message: "Help"})

	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *ApplicationServiceTestSuite) TestSubmit_HiddenProject() {
	pending := &domain.Project{ProjectID: "proj-2", CreatorID: "org-1", ApprovalStatus: domain.ApprovalPending}
	s.noPriorApplication("proj-2", "user-1")
	s.mockProjectRepo.On("FindProjectByID", s.ctx, "proj-2").Return(pending, nil).Once()

	_, err := s.service.Submit(s.ctx, s.supporter, dto.SubmitApplicationRequest{ProjectID: "proj-2", Message: "Help"})

	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *ApplicationServiceTestSuite) TestSubmit_OwnProject() {
	owner := &domain.Principal{ID: "org-1", Role: domain.RoleOrganization}
	s.noPriorApplication("proj-1", "org-1")
	s.mockProjectRepo.On("FindProjectByID", s.ctx, "proj-1").Return(s.project, nil).Once()

	_, err := s.service.Submit(s.ctx, owner, dto.SubmitApplicationRequest{ProjectID: "proj-1", Message: "Help"})

	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *ApplicationServiceTestSuite) TestSubmit_DuplicateReturnsExisting() {
	existing := &domain.Application{
		ApplicationID: "app-1",
		ProjectID:     "proj-1",
		UserID:        "user-1",
		Status:        domain.StatusReviewed,
		Message:       "Help",
	}
	s.mockAppRepo.On("FindApplicationByProjectAndUser", s.ctx, "proj-1", "user-1").Return(existing, nil).Once()

	app, err := s.service.Submit(s.ctx, s.supporter, dto.SubmitApplicationRequest{ProjectID: "proj-1", Message: "Help again"})

	s.Nil(app)
	var dup *domain.DuplicateApplicationError
	s.Require().True(errors.As(err, &dup))
	s.Equal(*existing, dup.Existing)
	s.mockProjectRepo.AssertNotCalled(s.T(), "FindProjectByID", mock.Anything, mock.Anything)
	s.mockAppRepo.AssertNotCalled(s.T(), "SaveApplication", mock.Anything, mock.Anything)
}

func (s *ApplicationServiceTestSuite) TestSubmit_DuplicateWinsOverProjectState() {
	existing := &domain.Application{ApplicationID: "app-1", ProjectID: "proj-9", UserID: "user-1", Status: domain.StatusPending}
	rejected := &domain.Project{ProjectID: "proj-9", CreatorID: "org-1", ApprovalStatus: domain.ApprovalRejected}

	cases := []struct {
		name    string
		project *domain.Project
		findErr error
	}{
		{name: "rejected project", project: rejected},
		{name: "deleted project", findErr: apperrors.ErrNotFound},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			appRepo := new(MockApplicationRepository)
			projectRepo := new(MockProjectRepository)
			svc := services.NewApplicationService(appRepo, projectRepo)
			appRepo.On("FindApplicationByProjectAndUser", s.ctx, "proj-9", "user-1").Return(existing, nil).Once()
			projectRepo.On("FindProjectByID", s.ctx, "proj-9").Return(tc.project, tc.findErr).Maybe()

			_, err := svc.Submit(s.ctx, s.supporter, dto.SubmitApplicationRequest{ProjectID: "proj-9", Message: "Still keen"})

			s.True(errors.Is(err, apperrors.ErrDuplicate))
			var dup *domain.DuplicateApplicationError
			s.Require().True(errors.As(err, &dup))
			s.Equal("app-1", dup.Existing.ApplicationID)
			appRepo.AssertNotCalled(s.T(), "SaveApplication", mock.Anything, mock.Anything)
		})
	}
}

func (s *ApplicationServiceTestSuite) TestSubmit_InsertRaceReturnsWinner() {
	existing := &domain.Application{
		ApplicationID: "app-1",
		ProjectID:     "proj-1",
		UserID:        "user-1",
		Status:        domain.StatusReviewed,
		Message:       "Help",
	}
	s.noPriorApplication("proj-1", "user-1")
	s.mockProjectRepo.On("FindProjectByID", s.ctx, "proj-1").Return(s.project, nil).Once()
	s.mockAppRepo.On("SaveApplication", s.ctx, mock.Anything).
		Return(fmt.Errorf("insert application: %w", apperrors.ErrDuplicate)).Once()
	s.mockAppRepo.On("FindApplicationByProjectAndUser", s.ctx, "proj-1", "user-1").Return(existing, nil).Once()

	app, err := s.service.Submit(s.ctx, s.supporter, dto.SubmitApplicationRequest{ProjectID: "proj-1", Message: "Help again"})

	s.Nil(app)
	s.True(errors.Is(err, apperrors.ErrDuplicate))
	var dup *domain.DuplicateApplicationError
	s.Require().True(errors.As(err, &dup))
	s.Equal(*existing, dup.Existing)
	s.mockAppRepo.AssertExpectations(s.T())
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_NonAdminForbidden() {
	_, err := s.service.UpdateStatus(s.ctx, false, "app-1", dto.UpdateApplicationStatusRequest{Status: "accepted"})

	s.True(errors.Is(err, apperrors.ErrForbidden))
	s.mockAppRepo.AssertNotCalled(s.T(), "FindApplicationByID", mock.Anything, mock.Anything)
	s.mockAppRepo.AssertNotCalled(s.T(), "UpdateApplicationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_UnknownStatus() {
	_, err := s.service.UpdateStatus(s.ctx, true, "app-1", dto.UpdateApplicationStatusRequest{Status: "archived"})

	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_NotFound() {
	s.mockAppRepo.On("FindApplicationByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.UpdateStatus(s.ctx, true, "missing", dto.UpdateApplicationStatusRequest{Status: "accepted"})

	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_RejectPersistsReason() {
	pending := &domain.ApplicationView{Application: domain.Application{ApplicationID: "app-1", Status: domain.StatusPending}}
	rejected := &domain.ApplicationView{Application: domain.Application{
		ApplicationID:   "app-1",
		Status:          domain.StatusRejected,
		RejectionReason: "Insufficient detail",
	}}
	reason := "Insufficient detail"

	s.mockAppRepo.On("FindApplicationByID", s.ctx, "app-1").Return(pending, nil).Once()
	s.mockAppRepo.On("UpdateApplicationStatus", s.ctx, "app-1", domain.StatusPending, domain.StatusRejected,
		mock.MatchedBy(func(r *string) bool { return r != nil && *r == reason })).Return(nil).Once()
	s.mockAppRepo.On("FindApplicationByID", s.ctx, "app-1").Return(rejected, nil).Once()

	view, err := s.service.UpdateStatus(s.ctx, true, "app-1", dto.UpdateApplicationStatusRequest{Status: "rejected", RejectionReason: &reason})

	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, view.Status)
	s.Equal("Insufficient detail", view.RejectionReason)
	s.mockAppRepo.AssertExpectations(s.T())
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_RejectWithoutReasonStoresEmpty() {
	reviewed := &domain.ApplicationView{Application: domain.Application{ApplicationID: "app-1", Status: domain.StatusReviewed}}
	s.mockAppRepo.On("FindApplicationByID", s.ctx, "app-1").Return(reviewed, nil)
	s.mockAppRepo.On("UpdateApplicationStatus", s.ctx, "app-1", domain.StatusReviewed, domain.StatusRejected,
		mock.MatchedBy(func(r *string) bool { return r != nil && *r == "" })).Return(nil).Once()

	_, err := s.service.UpdateStatus(s.ctx, true, "app-1", dto.UpdateApplicationStatusRequest{Status: "rejected"})

	s.Require().NoError(err)
	s.mockAppRepo.AssertExpectations(s.T())
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_AcceptLeavesReasonUntouched() {
	pending := &domain.ApplicationView{Application: domain.Application{ApplicationID: "app-1", Status: domain.StatusPending}}
	s.mockAppRepo.On("FindApplicationByID", s.ctx, "app-1").Return(pending, nil)
	s.mockAppRepo.On("UpdateApplicationStatus", s.ctx, "app-1", domain.StatusPending, domain.StatusAccepted, (*string)(nil)).Return(nil).Once()

	_, err := s.service.UpdateStatus(s.ctx, true, "app-1", dto.UpdateApplicationStatusRequest{Status: "accepted"})

	s.Require().NoError(err)
	s.mockAppRepo.AssertExpectations(s.T())
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_TerminalIsFinal() {
	accepted := &domain.ApplicationView{Application: domain.Application{ApplicationID: "app-1", Status: domain.StatusAccepted}}
	s.mockAppRepo.On("FindApplicationByID", s.ctx, "app-1").Return(accepted, nil).Once()

	_, err := s.service.UpdateStatus(s.ctx, true, "app-1", dto.UpdateApplicationStatusRequest{Status: "pending"})

	s.True(errors.Is(err, apperrors.ErrInvalidTransition))
	s.mockAppRepo.AssertNotCalled(s.T(), "UpdateApplicationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_SameStatusIsNoop() {
	rejected := &domain.ApplicationView{Application: domain.Application{ApplicationID: "app-1", Status: domain.StatusRejected, RejectionReason: "old"}}
	s.mockAppRepo.On("FindApplicationByID", s.ctx, "app-1").Return(rejected, nil).Once()

	view, err := s.service.UpdateStatus(s.ctx, true, "app-1", dto.UpdateApplicationStatusRequest{Status: "rejected"})

	s.Require().NoError(err)
	s.Equal(rejected, view)
	s.mockAppRepo.AssertNotCalled(s.T(), "UpdateApplicationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ApplicationServiceTestSuite) TestUpdateStatus_ConcurrentChange() {
	pending := &domain.ApplicationView{Application: domain.Application{ApplicationID: "app-1", Status: domain.StatusPending}}
	s.mockAppRepo.On("FindApplicationByID", s.ctx, "app-1").Return(pending, nil).Once()
	s.mockAppRepo.On("UpdateApplicationStatus", s.ctx, "app-1", domain.StatusPending, domain.StatusAccepted, (*string)(nil)).
		Return(apperrors.ErrConflict).Once()

	_, err := s.service.UpdateStatus(s.ctx, true, "app-1", dto.UpdateApplicationStatusRequest{Status: "accepted"})

	s.True(errors.Is(err, apperrors.ErrConflict))
}

func (s *ApplicationServiceTestSuite) TestCountsByProject() {
	s.mockAppRepo.On("CountUnrespondedByProject", s.ctx, "proj-1").
		Return(domain.ApplicationCounts{Organizations: 2, Supporters: 5}, nil).Once()

	counts, err := s.service.CountsByProject(s.ctx, s.admin, "proj-1")
	s.Require().NoError(err)
	s.Equal(domain.ApplicationCounts{Organizations: 2, Supporters: 5}, counts)

	_, err = s.service.CountsByProject(s.ctx, s.supporter, "proj-1")
	s.True(errors.Is(err, apperrors.ErrForbidden))
	s.mockAppRepo.AssertNumberOfCalls(s.T(), "CountUnrespondedByProject", 1)
}

func (s *ApplicationServiceTestSuite) TestMyApplications_ToleratesDeletedProject() {
	views := []domain.ApplicationView{
		{Application: domain.Application{ApplicationID: "app-2"}, Project: &domain.ProjectSummary{ProjectID: "proj-1"}},
		{Application: domain.Application{ApplicationID: "app-1"}},
	}
	s.mockAppRepo.On("ListApplicationsByUser", s.ctx, "user-1").Return(views, nil).Once()

	got, err := s.service.MyApplications(s.ctx, s.supporter)

	s.Require().NoError(err)
	s.Len(got, 2)
	s.True(got[1].ProjectDeleted())
}

func (s *ApplicationServiceTestSuite) TestMyApplications_EmptyIsNotNil() {
	s.mockAppRepo.On("ListApplicationsByUser", s.ctx, "user-1").Return(nil, nil).Once()

	got, err := s.service.MyApplications(s.ctx, s.supporter)

	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *ApplicationServiceTestSuite) TestCheckApplied() {
	existing := &domain.Application{ApplicationID: "app-1", ProjectID: "proj-1"}
	s.mockAppRepo.On("FindApplicationByProjectAndUser", s.ctx, "proj-1", "user-1").Return(existing, nil).Once()
	s.mockAppRepo.On("FindApplicationByProjectAndUser", s.ctx, "proj-2", "user-1").Return(nil, apperrors.ErrNotFound).Once()

	app, err := s.service.CheckApplied(s.ctx, s.supporter, "proj-1")
	s.Require().NoError(err)
	s.Equal(existing, app)

	app, err = s.service.CheckApplied(s.ctx, s.supporter, "proj-2")
	s.Require().NoError(err)
	s.Nil(app)
}

func (s *ApplicationServiceTestSuite) TestAdminListsRequireAdmin() {
	_, err := s.service.ListAll(s.ctx, s.supporter)
	s.True(errors.Is(err, apperrors.ErrForbidden))
	_, err = s.service.ListForProject(s.ctx, s.supporter, "proj-1")
	s.True(errors.Is(err, apperrors.ErrForbidden))
	_, err = s.service.ListForUser(s.ctx, nil, "user-1")
	s.True(errors.Is(err, apperrors.ErrUnauthorized))

	s.mockAppRepo.On("ListApplicationsByProject", s.ctx, "proj-1").Return([]domain.ApplicationView{{}}, nil).Once()
	views, err := s.service.ListForProject(s.ctx, s.admin, "proj-1")
	s.Require().NoError(err)
	s.Len(views, 1)
}
