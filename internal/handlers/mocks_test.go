package handlers_test

import (
	"context"
	"time"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateMemberToken(ctx context.Context, member *domain.OrganizationMember) (string, time.Time, error) {
	args := m.Called(ctx, member)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleIdentity), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) ListProjects(ctx context.Context, principal *domain.Principal) ([]domain.Project, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) GetProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, principal, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ListMyProjects(ctx context.Context, principal *domain.Principal) ([]domain.Project, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) CreateProject(ctx context.Context, principal *domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ApproveProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, principal, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) RejectProject(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, principal, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock ApplicationService ---
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, principal *domain.Principal, req dto.SubmitApplicationRequest) (*domain.Application, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) MyApplications(ctx context.Context, principal *domain.Principal) ([]domain.ApplicationView, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationView), args.Error(1)
}
func (m *MockApplicationService) CheckApplied(ctx context.Context, principal *domain.Principal, projectID string) (*domain.Application, error) {
	args := m.Called(ctx, principal, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) UpdateStatus(ctx context.Context, actorIsAdmin bool, applicationID string, req dto.UpdateApplicationStatusRequest) (*domain.ApplicationView, error) {
	args := m.Called(ctx, actorIsAdmin, applicationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationView), args.Error(1)
}
func (m *MockApplicationService) CountsByProject(ctx context.Context, principal *domain.Principal, projectID string) (domain.ApplicationCounts, error) {
	args := m.Called(ctx, principal, projectID)
	return args.Get(0).(domain.ApplicationCounts), args.Error(1)
}
func (m *MockApplicationService) ListAll(ctx context.Context, principal *domain.Principal) ([]domain.ApplicationView, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationView), args.Error(1)
}
func (m *MockApplicationService) ListForProject(ctx context.Context, principal *domain.Principal, projectID string) ([]domain.ApplicationView, error) {
	args := m.Called(ctx, principal, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationView), args.Error(1)
}
func (m *MockApplicationService) ListForUser(ctx context.Context, principal *domain.Principal, userID string) ([]domain.ApplicationView, error) {
	args := m.Called(ctx, principal, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationView), args.Error(1)
}

var _ portssvc.ApplicationSvcFacade = (*MockApplicationService)(nil)

// --- Mock MemberService ---
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) ResolveScope(ctx context.Context, principal *domain.Principal) (string, error) {
	args := m.Called(ctx, principal)
	return args.String(0), args.Error(1)
}
func (m *MockMemberService) ListMembers(ctx context.Context, principal *domain.Principal) ([]domain.OrganizationMember, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrganizationMember), args.Error(1)
}
func (m *MockMemberService) CreateMember(ctx context.Context, principal *domain.Principal, req dto.CreateMemberRequest) (*domain.OrganizationMember, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationMember), args.Error(1)
}
func (m *MockMemberService) UpdateMember(ctx context.Context, principal *domain.Principal, memberID string, req dto.UpdateMemberRequest) (*domain.OrganizationMember, error) {
	args := m.Called(ctx, principal, memberID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationMember), args.Error(1)
}
func (m *MockMemberService) DeleteMember(ctx context.Context, principal *domain.Principal, memberID string) error {
	args := m.Called(ctx, principal, memberID)
	return args.Error(0)
}
func (m *MockMemberService) AuthenticateMember(ctx context.Context, email, password, organizationID string) (*domain.OrganizationMember, error) {
	args := m.Called(ctx, email, password, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationMember), args.Error(1)
}

var _ portssvc.MemberSvcFacade = (*MockMemberService)(nil)

// --- Mock DonationService ---
type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) Donate(ctx context.Context, principal *domain.Principal, projectID string, req dto.CreateDonationRequest) (*domain.Donation, error) {
	args := m.Called(ctx, principal, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationService) ListMyDonations(ctx context.Context, principal *domain.Principal) ([]domain.Donation, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationService) ListProjectDonations(ctx context.Context, principal *domain.Principal, projectID string) ([]domain.Donation, error) {
	args := m.Called(ctx, principal, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

var _ portssvc.DonationSvcFacade = (*MockDonationService)(nil)
