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

var errNoMemberScope = apperrors.NewForbiddenError("you are not allowed to manage organization members")

// memberService implements organization member management
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// ResolveScope checks the live member record so revoked roles take effect
// before the member's token expires.
func (s *memberService) ResolveScope(ctx context.Context, principal *domain.Principal) (string, error) {
	if err := s.RequirePrincipal(principal); err != nil {
		return "", err
	}

	switch principal.Role {
	case domain.RoleOrganization:
		return principal.ID, nil
	case domain.RoleOrgMember:
		member, err := s.memberRepo.FindActiveMember(ctx, principal.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", errNoMemberScope
			}
			s.LogError(ctx, err, "Failed to load acting member", slog.String("member_id", principal.ID))
			return "", err
		}
		if member.OrganizationID != principal.OrganizationID || !member.Permissions.CanManageMembers {
			return "", errNoMemberScope
		}
		return member.OrganizationID, nil
	default:
		return "", errNoMemberScope
	}
}

func (s *memberService) ListMembers(ctx context.Context, principal *domain.Principal) ([]domain.OrganizationMember, error) {
	orgID, err := s.ResolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.ListActiveMembers(ctx, orgID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members", slog.String("organization_id", orgID))
		return nil, err
	}
	if members == nil {
		return []domain.OrganizationMember{}, nil
	}
	return members, nil
}

func (s *memberService) CreateMember(ctx context.Context, principal *domain.Principal, req dto.CreateMemberRequest) (*domain.OrganizationMember, error) {
	orgID, err := s.ResolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("name is required")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash member password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member, err := domain.NewOrganizationMember(uuid.NewString(), orgID, name, req.Email, hash, domain.MemberRole(req.Role))
	if err != nil {
		return nil, err
	}
	member.Touch(time.Now())

	if err := s.memberRepo.SaveMember(ctx, *member); err != nil {
		var dup *apperrors.DuplicateEmailError
		if !errors.As(err, &dup) {
			s.LogError(ctx, err, "Failed to save member", slog.String("organization_id", orgID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Member created",
		slog.String("organization_id", orgID),
		slog.String("member_id", member.MemberID),
		slog.String("role", string(member.Role)))
	return member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, principal *domain.Principal, memberID string, req dto.UpdateMemberRequest) (*domain.OrganizationMember, error) {
	orgID, err := s.ResolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("name cannot be empty")
		}
		member.Name = name
	}
	if req.Email != nil {
		member.Email = domain.NormalizeEmail(*req.Email)
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash member password")
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		member.PasswordHash = hash
	}
	if req.Role != nil {
		if err := member.AssignRole(domain.MemberRole(*req.Role)); err != nil {
			return nil, err
		}
	}
	member.Touch(time.Now())

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		var dup *apperrors.DuplicateEmailError
		if !errors.As(err, &dup) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Member updated", slog.String("member_id", memberID), slog.String("role", string(member.Role)))
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, principal *domain.Principal, memberID string) error {
	orgID, err := s.ResolveScope(ctx, principal)
	if err != nil {
		return err
	}
	if err := s.memberRepo.DeactivateMember(ctx, orgID, memberID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate member", slog.String("member_id", memberID))
		}
		return err
	}
	s.LogInfo(ctx, "Member deactivated", slog.String("organization_id", orgID), slog.String("member_id", memberID))
	return nil
}

// AuthenticateMember tries every active member with the email when no
// organization is given; the first password match wins.
func (s *memberService) AuthenticateMember(ctx context.Context, email, password, organizationID string) (*domain.OrganizationMember, error) {
	candidates, err := s.memberRepo.ListActiveMembersByEmail(ctx, domain.NormalizeEmail(email), strings.TrimSpace(organizationID))
	if err != nil {
		s.LogError(ctx, err, "Failed to look up members for login")
		return nil, err
	}

	for i := range candidates {
		if utils.CheckPasswordHash(password, candidates[i].PasswordHash) {
			metrics.RecordLogin("member", true)
			return &candidates[i], nil
		}
	}

	metrics.RecordLogin("member", false)
	return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid email or password", apperrors.ErrUnauthorized)
}
