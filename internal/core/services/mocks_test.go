package services_test

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
	"github.com/posthog/posthog-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleSubject(ctx context.Context, subject string) (*domain.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByCreator(ctx context.Context, creatorID string) ([]domain.Project, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepository) UpdateApprovalStatus(ctx context.Context, projectID string, status domain.ApprovalStatus) error {
	return m.Called(ctx, projectID, status).Error(0)
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

// --- Mock ApplicationRepository ---
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.ApplicationView, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationView), args.Error(1)
}

func (m *MockApplicationRepository) FindApplicationByProjectAndUser(ctx context.Context, projectID, userID string) (*domain.Application, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListApplicationsByUser(ctx context.Context, userID string) ([]domain.ApplicationView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationView), args.Error(1)
}

func (m *MockApplicationRepository) ListApplicationsByProject(ctx context.Context, projectID string) ([]domain.ApplicationView, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationView), args.Error(1)
}

func (m *MockApplicationRepository) ListApplications(ctx context.Context) ([]domain.ApplicationView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationView), args.Error(1)
}

func (m *MockApplicationRepository) CountUnrespondedByProject(ctx context.Context, projectID string) (domain.ApplicationCounts, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.ApplicationCounts), args.Error(1)
}

func (m *MockApplicationRepository) SaveApplication(ctx context.Context, application domain.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *MockApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus, rejectionReason *string) error {
	return m.Called(ctx, applicationID, from, to, rejectionReason).Error(0)
}

var _ portsrepo.ApplicationRepositoryFacade = (*MockApplicationRepository)(nil)

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, organizationID, memberID string) (*domain.OrganizationMember, error) {
	args := m.Called(ctx, organizationID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationMember), args.Error(1)
}

func (m *MockMemberRepository) FindActiveMember(ctx context.Context, memberID string) (*domain.OrganizationMember, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationMember), args.Error(1)
}

func (m *MockMemberRepository) ListActiveMembers(ctx context.Context, organizationID string) ([]domain.OrganizationMember, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrganizationMember), args.Error(1)
}

func (m *MockMemberRepository) ListActiveMembersByEmail(ctx context.Context, email, organizationID string) ([]domain.OrganizationMember, error) {
	args := m.Called(ctx, email, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrganizationMember), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.OrganizationMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.OrganizationMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) DeactivateMember(ctx context.Context, organizationID, memberID string) error {
	return m.Called(ctx, organizationID, memberID).Error(0)
}

var _ portsrepo.MemberRepositoryFacade = (*MockMemberRepository)(nil)

// --- Mock DonationRepository ---
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDonationRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockDonationRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockDonationRepository) LockProject(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, tx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockDonationRepository) InsertDonation(ctx context.Context, tx pgx.Tx, donation domain.Donation) error {
	return m.Called(ctx, tx, donation).Error(0)
}

func (m *MockDonationRepository) AddToProjectFunding(ctx context.Context, tx pgx.Tx, projectID string, amount decimal.Decimal) error {
	return m.Called(ctx, tx, projectID, amount).Error(0)
}

func (m *MockDonationRepository) ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) ListDonationsByProject(ctx context.Context, projectID string) ([]domain.Donation, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

var _ portsrepo.DonationRepositoryWithTx = (*MockDonationRepository)(nil)

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

var _ portsrepo.ProfileRepositoryFacade = (*MockProfileRepository)(nil)

// --- Recording analytics queue ---
type recordingQueue struct {
	mu     sync.Mutex
	events []posthog.Capture
}

func (q *recordingQueue) Enqueue(m posthog.Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if c, ok := m.(posthog.Capture); ok {
		q.events = append(q.events, c)
	}
	return nil
}

func (q *recordingQueue) Close() error { return nil }

func (q *recordingQueue) names() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, len(q.events))
	for i, e := range q.events {
		out[i] = e.Event
	}
	return out
}
