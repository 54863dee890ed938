package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/core/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockUserRepository
	mockProfileRepo *MockProfileRepository
	service         portssvc.UserSvcFacade
	ctx             context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.mockProfileRepo = new(MockProfileRepository)
	s.service = services.NewUserService(s.mockRepo, s.mockProfileRepo)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestRegister_Success() {
	s.mockRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ngo@example.org" && u.Type == domain.RoleOrganization &&
			utils.CheckPasswordHash("secret1", u.PasswordHash)
	})).Return(nil).Once()

	user, err := s.service.Register(s.ctx, dto.RegisterRequest{
		Name:     "Helping Hands",
		Email:    "NGO@example.org",
		Password: "secret1",
		Type:     "Organization",
	})

	s.Require().NoError(err)
	s.NotEmpty(user.UserID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegister_AdminNotAllowed() {
	_, err := s.service.Register(s.ctx, dto.RegisterRequest{Name: "Root", Email: "root@example.org", Password: "secret1", Type: "Admin"})

	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	s.mockRepo.On("SaveUser", s.ctx, mock.Anything).Return(fmt.Errorf("insert user: %w", apperrors.ErrDuplicate)).Once()

	_, err := s.service.Register(s.ctx, dto.RegisterRequest{Name: "A", Email: "a@example.org", Password: "secret1", Type: "Individual"})

	s.True(errors.Is(err, apperrors.ErrDuplicate))
	var appErr *apperrors.AppError
	s.Require().True(errors.As(err, &appErr))
	s.Equal(409, appErr.Code)
}

func (s *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("secret1")
	s.Require().NoError(err)
	s.mockRepo.On("FindUserByEmail", s.ctx, "a@example.org").
		Return(&domain.User{UserID: "u1", Email: "a@example.org", PasswordHash: hash}, nil)
	s.mockRepo.On("FindUserByEmail", s.ctx, "nobody@example.org").Return(nil, apperrors.ErrNotFound)

	user, err := s.service.AuthenticateUser(s.ctx, "A@example.org", "secret1")
	s.Require().NoError(err)
	s.Equal("u1", user.UserID)

	_, err = s.service.AuthenticateUser(s.ctx, "a@example.org", "wrong")
	s.True(errors.Is(err, apperrors.ErrUnauthorized))

	_, err = s.service.AuthenticateUser(s.ctx, "nobody@example.org", "secret1")
	s.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (s *UserServiceTestSuite) TestAuthenticateUser_GoogleOnlyAccount() {
	s.mockRepo.On("FindUserByEmail", s.ctx, "g@example.org").Return(&domain.User{UserID: "u2"}, nil).Once()

	_, err := s.service.AuthenticateUser(s.ctx, "g@example.org", "")

	s.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (s *UserServiceTestSuite) TestUpdateProfile() {
	s.mockRepo.On("FindUserByID", s.ctx, "u1").Return(&domain.User{UserID: "u1", Name: "Old", Email: "a@example.org"}, nil)
	s.mockRepo.On("UpdateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == "New" && u.Email == "a@example.org"
	})).Return(nil).Once()

	name := " New "
	account, err := s.service.UpdateProfile(s.ctx, "u1", dto.UpdateUserRequest{Name: &name})
	s.Require().NoError(err)
	s.Equal("New", account.User.Name)
	s.Nil(account.Profile)

	empty := ""
	_, err = s.service.UpdateProfile(s.ctx, "u1", dto.UpdateUserRequest{Name: &empty})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *UserServiceTestSuite) TestGetAccount_JoinsProfile() {
	org := &domain.User{UserID: "org-1", Name: "Clinic", Type: domain.RoleOrganization}
	profile := &domain.Profile{UserID: "org-1", Kind: domain.RoleOrganization, Category: "Health"}
	s.mockRepo.On("FindUserByID", s.ctx, "org-1").Return(org, nil).Once()
	s.mockProfileRepo.On("FindProfileByUserID", s.ctx, "org-1").Return(profile, nil).Once()

	account, err := s.service.GetAccount(s.ctx, "org-1")

	s.Require().NoError(err)
	s.Equal("Clinic", account.User.Name)
	s.Equal(profile, account.Profile)
}

func (s *UserServiceTestSuite) TestGetAccount_NoProfileYet() {
	s.mockRepo.On("FindUserByID", s.ctx, "u1").Return(&domain.User{UserID: "u1", Type: domain.RoleIndividual}, nil).Once()
	s.mockProfileRepo.On("FindProfileByUserID", s.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()

	account, err := s.service.GetAccount(s.ctx, "u1")

	s.Require().NoError(err)
	s.Nil(account.Profile)
}

func (s *UserServiceTestSuite) TestGetAccount_AdminSkipsProfileLookup() {
	s.mockRepo.On("FindUserByID", s.ctx, "admin-1").Return(&domain.User{UserID: "admin-1", Type: domain.RoleAdmin}, nil).Once()

	account, err := s.service.GetAccount(s.ctx, "admin-1")

	s.Require().NoError(err)
	s.Nil(account.Profile)
	s.mockProfileRepo.AssertNotCalled(s.T(), "FindProfileByUserID", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateProfile_CreatesOrganizationProfile() {
	s.mockRepo.On("FindUserByID", s.ctx, "org-1").
		Return(&domain.User{UserID: "org-1", Name: "Clinic", Type: domain.RoleOrganization}, nil).Once()
	s.mockProfileRepo.On("FindProfileByUserID", s.ctx, "org-1").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("UpdateUser", s.ctx, mock.Anything).Return(nil).Once()
	s.mockProfileRepo.On("UpsertProfile", s.ctx, mock.MatchedBy(func(p domain.Profile) bool {
		return p.UserID == "org-1" && p.Kind == domain.RoleOrganization &&
			p.Category == "Water & Sanitation" && p.Phone == "+254700000000" &&
			p.SetupStatus == domain.SetupDetailsPending && p.Bio == "" &&
			len(p.AreasOfOperation) == 1 && !p.CreatedAt.IsZero()
	})).Return(nil).Once()

	category, phone, bio := "Water & Sanitation", " +254700000000 ", "ignored for organizations"
	areas := []string{"Nairobi", "  "}
	account, err := s.service.UpdateProfile(s.ctx, "org-1", dto.UpdateUserRequest{ProfileUpdate: dto.ProfileUpdate{
		Category:         &category,
		Phone:            &phone,
		Bio:              &bio,
		AreasOfOperation: &areas,
	}})

	s.Require().NoError(err)
	s.Require().NotNil(account.Profile)
	s.Equal(domain.OrgCategory("Water & Sanitation"), account.Profile.Category)
	s.mockProfileRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateProfile_MergesIndividualProfile() {
	existing := &domain.Profile{UserID: "u1", Kind: domain.RoleIndividual, Interest: "Research", Location: "Kisumu"}
	s.mockRepo.On("FindUserByID", s.ctx, "u1").Return(&domain.User{UserID: "u1", Type: domain.RoleIndividual}, nil).Once()
	s.mockProfileRepo.On("FindProfileByUserID", s.ctx, "u1").Return(existing, nil).Once()
	s.mockRepo.On("UpdateUser", s.ctx, mock.Anything).Return(nil).Once()
	s.mockProfileRepo.On("UpsertProfile", s.ctx, mock.MatchedBy(func(p domain.Profile) bool {
		return p.Interest == "Research" && p.Location == "Kisumu" && p.Bio == "Nurse"
	})).Return(nil).Once()

	bio := "Nurse"
	_, err := s.service.UpdateProfile(s.ctx, "u1", dto.UpdateUserRequest{ProfileUpdate: dto.ProfileUpdate{Bio: &bio}})

	s.Require().NoError(err)
	s.mockProfileRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateProfile_RejectsUnknownEnums() {
	cases := []struct {
		name   string
		user   domain.User
		update dto.ProfileUpdate
	}{
		{
			name:   "organization category",
			user:   domain.User{UserID: "org-1", Type: domain.RoleOrganization},
			update: dto.ProfileUpdate{Category: strPtr("Space")},
		},
		{
			name:   "individual interest",
			user:   domain.User{UserID: "u1", Type: domain.RoleIndividual},
			update: dto.ProfileUpdate{Interest: strPtr("Gaming")},
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			userRepo, profileRepo := new(MockUserRepository), new(MockProfileRepository)
			svc := services.NewUserService(userRepo, profileRepo)
			user := tc.user
			userRepo.On("FindUserByID", s.ctx, user.UserID).Return(&user, nil).Once()
			profileRepo.On("FindProfileByUserID", s.ctx, user.UserID).Return(nil, apperrors.ErrNotFound).Once()

			_, err := svc.UpdateProfile(s.ctx, user.UserID, dto.UpdateUserRequest{ProfileUpdate: tc.update})

			s.True(errors.Is(err, apperrors.ErrValidation))
			userRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
			profileRepo.AssertNotCalled(s.T(), "UpsertProfile", mock.Anything, mock.Anything)
		})
	}
}

func strPtr(v string) *string { return &v }

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingSubject() {
	s.mockRepo.On("FindUserByGoogleSubject", s.ctx, "sub-1").Return(&domain.User{UserID: "u1"}, nil).Once()

	user, err := s.service.FindOrCreateGoogleUser(s.ctx, domain.GoogleIdentity{Subject: "sub-1", Email: "a@example.org"})

	s.Require().NoError(err)
	s.Equal("u1", user.UserID)
	s.mockRepo.AssertNotCalled(s.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksVerifiedEmail() {
	s.mockRepo.On("FindUserByGoogleSubject", s.ctx, "sub-1").Return(nil, apperrors.ErrNotFound)
	s.mockRepo.On("FindUserByEmail", s.ctx, "a@example.org").Return(&domain.User{UserID: "u1", Email: "a@example.org"}, nil)
	s.mockRepo.On("UpdateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.GoogleSubject != nil && *u.GoogleSubject == "sub-1"
	})).Return(nil).Once()

	user, err := s.service.FindOrCreateGoogleUser(s.ctx, domain.GoogleIdentity{Subject: "sub-1", Email: "A@example.org", EmailVerified: true})
	s.Require().NoError(err)
	s.Equal("u1", user.UserID)

	_, err = s.service.FindOrCreateGoogleUser(s.ctx, domain.GoogleIdentity{Subject: "sub-1", Email: "a@example.org"})
	s.True(errors.Is(err, apperrors.ErrUnauthorized))
	s.mockRepo.AssertNumberOfCalls(s.T(), "UpdateUser", 1)
}

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesIndividual() {
	s.mockRepo.On("FindUserByGoogleSubject", s.ctx, "sub-2").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindUserByEmail", s.ctx, "new@example.org").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Type == domain.RoleIndividual && u.PasswordHash == "" && u.Name == "New Person"
	})).Return(nil).Once()

	user, err := s.service.FindOrCreateGoogleUser(s.ctx, domain.GoogleIdentity{Subject: "sub-2", Email: "new@example.org", Name: "New Person", EmailVerified: true})

	s.Require().NoError(err)
	s.Equal(domain.RoleIndividual, user.Type)
	s.mockRepo.AssertExpectations(s.T())
}
