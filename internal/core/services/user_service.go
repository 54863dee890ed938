package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/dto"
	"github.com/kamp-org/kamp_backend/internal/platform/metrics"
	"github.com/kamp-org/kamp_backend/internal/utils"
)

var errInvalidCredentials = apperrors.NewAppError(http.StatusUnauthorized, "invalid email or password", apperrors.ErrUnauthorized)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(repo portsrepo.UserRepositoryFacade, profileRepo portsrepo.ProfileRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: repo, profileRepo: profileRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	userType := domain.Role(req.Type)
	if userType != domain.RoleOrganization && userType != domain.RoleIndividual {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("cannot register an account of type %q", req.Type))
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        domain.NormalizeEmail(req.Email),
		PasswordHash: hash,
		Type:         userType,
	}
	user.Touch(now)

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("an account with this email already exists")
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("type", string(user.Type)))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RecordLogin("password", false)
			return nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	// Accounts created through Google sign-in have no password.
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		metrics.RecordLogin("password", false)
		return nil, errInvalidCredentials
	}

	metrics.RecordLogin("password", true)
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.findProfile(ctx, *user)
	if err != nil {
		return nil, err
	}
	return &domain.Account{User: *user, Profile: profile}, nil
}

// findProfile returns nil without error when the user has none.
func (s *userService) findProfile(ctx context.Context, user domain.User) (*domain.Profile, error) {
	if !user.Type.HasProfile() {
		return nil, nil
	}
	profile, err := s.profileRepo.FindProfileByUserID(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load profile", slog.String("user_id", user.UserID))
		return nil, err
	}
	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.Account, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("name cannot be empty")
		}
		user.Name = name
	}
	if req.Email != nil {
		user.Email = domain.NormalizeEmail(*req.Email)
	}

	var profile *domain.Profile
	if user.Type.HasProfile() {
		if profile, err = s.findProfile(ctx, *user); err != nil {
			return nil, err
		}
		if profile == nil {
			if profile, err = domain.NewProfile(user.UserID, user.Type); err != nil {
				return nil, err
			}
		}
		applyProfileUpdate(profile, req.ProfileUpdate)
		if err := profile.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	user.Touch(now)
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("an account with this email already exists")
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	if profile != nil {
		profile.Touch(now)
		if err := s.profileRepo.UpsertProfile(ctx, *profile); err != nil {
			s.LogError(ctx, err, "Failed to save profile", slog.String("user_id", userID))
			return nil, err
		}
	}

	return &domain.Account{User: *user, Profile: profile}, nil
}

// applyProfileUpdate copies the fields present in u that belong to p's Kind.
func applyProfileUpdate(p *domain.Profile, u dto.ProfileUpdate) {
	setString(&p.Phone, u.Phone)
	switch p.Kind {
	case domain.RoleOrganization:
		if u.Category != nil {
			p.Category = domain.OrgCategory(strings.TrimSpace(*u.Category))
		}
		setString(&p.Description, u.Description)
		setString(&p.Website, u.Website)
		setString(&p.Address, u.Address)
		setString(&p.RegistrationNumber, u.RegistrationNumber)
		if u.FoundingYear != nil {
			year := *u.FoundingYear
			p.FoundingYear = &year
		}
		setString(&p.TeamSize, u.TeamSize)
		setString(&p.MissionStatement, u.MissionStatement)
		setStrings(&p.AreasOfOperation, u.AreasOfOperation)
		setStrings(&p.PreviousProjects, u.PreviousProjects)
		setString(&p.Logo, u.Logo)
	case domain.RoleIndividual:
		if u.Interest != nil {
			p.Interest = domain.Interest(strings.TrimSpace(*u.Interest))
		}
		setString(&p.Location, u.Location)
		setString(&p.Occupation, u.Occupation)
		setString(&p.Bio, u.Bio)
		setStrings(&p.AreasOfInterest, u.AreasOfInterest)
		setString(&p.HowHeard, u.HowHeard)
		setString(&p.Image, u.Image)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v == nil {
		return
	}
	out := make([]string, 0, len(*v))
	for _, s := range *v {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*dst = out
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	if identity.Subject == "" || identity.Email == "" {
		return nil, apperrors.NewValidationFailedError("google identity is missing subject or email")
	}

	user, err := s.userRepo.FindUserByGoogleSubject(ctx, identity.Subject)
	if err == nil {
		metrics.RecordLogin("google", true)
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by google subject")
		return nil, err
	}

	email := domain.NormalizeEmail(identity.Email)
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		// Only verified Google addresses may claim an existing account.
		if !identity.EmailVerified {
			metrics.RecordLogin("google", false)
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "google email is not verified", apperrors.ErrUnauthorized)
		}
		subject := identity.Subject
		user.GoogleSubject = &subject
		user.Touch(time.Now())
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			s.LogError(ctx, err, "Failed to link google account", slog.String("user_id", user.UserID))
			return nil, err
		}
		s.LogInfo(ctx, "Linked google account to existing user", slog.String("user_id", user.UserID))
		metrics.RecordLogin("google", true)
		return user, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, err
	}

	subject := identity.Subject
	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = email
	}
	newUser := domain.User{
		UserID:        uuid.NewString(),
		Name:          name,
		Email:         email,
		Type:          domain.RoleIndividual,
		GoogleSubject: &subject,
	}
	newUser.Touch(time.Now())

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create google user", slog.String("email", email))
		return nil, err
	}

	s.LogInfo(ctx, "Created user from google sign-in", slog.String("user_id", newUser.UserID))
	metrics.RecordLogin("google", true)
	return &newUser, nil
}
