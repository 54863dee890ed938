package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
	"github.com/kamp-org/kamp_backend/internal/models"
	"github.com/kamp-org/kamp_backend/internal/utils/mapping"
)

const memberEmailConstraint = "organization_members_org_email_key"

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for organization members.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

var FULL_MEMBER_SELECT_QUERY = `
SELECT member_id, organization_id, name, email, password_hash, role, is_active, created_at, updated_at
FROM organization_members
`

func (r *PgxMemberRepository) getMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.OrganizationMember, error) {
	rows, err := r.Pool.Query(ctx, FULL_MEMBER_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query organization members", err)
	}
	modelMembers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.OrganizationMember])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect organization member rows", err)
	}
	return mapping.ToDomainMemberSlice(modelMembers), nil
}

func firstMember(members []domain.OrganizationMember, memberID string) (*domain.OrganizationMember, error) {
	if len(members) == 0 {
		return nil, apperrors.NewNotFoundError("member " + memberID + " not found")
	}
	return &members[0], nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, organizationID, memberID string) (*domain.OrganizationMember, error) {
	members, err := r.getMembers(ctx, `WHERE organization_id = $1 AND member_id = $2 AND is_active`, organizationID, memberID)
	if err != nil {
		return nil, err
	}
	return firstMember(members, memberID)
}

func (r *PgxMemberRepository) FindActiveMember(ctx context.Context, memberID string) (*domain.OrganizationMember, error) {
	members, err := r.getMembers(ctx, `WHERE member_id = $1 AND is_active`, memberID)
	if err != nil {
		return nil, err
	}
	return firstMember(members, memberID)
}

func (r *PgxMemberRepository) ListActiveMembers(ctx context.Context, organizationID string) ([]domain.OrganizationMember, error) {
	return r.getMembers(ctx, `WHERE organization_id = $1 AND is_active ORDER BY created_at DESC`, organizationID)
}

func (r *PgxMemberRepository) ListActiveMembersByEmail(ctx context.Context, email, organizationID string) ([]domain.OrganizationMember, error) {
	if organizationID != "" {
		return r.getMembers(ctx, `WHERE email = $1 AND organization_id = $2 AND is_active`, email, organizationID)
	}
	return r.getMembers(ctx, `WHERE email = $1 AND is_active ORDER BY created_at`, email)
}

func memberWriteError(err error, m models.OrganizationMember) error {
	if name, ok := constraintViolation(err, pgUniqueViolation); ok && name == memberEmailConstraint {
		return &apperrors.DuplicateEmailError{Email: m.Email}
	}
	if _, ok := constraintViolation(err, pgForeignKeyViolation); ok {
		return apperrors.NewValidationFailedError("organization " + m.OrganizationID + " does not exist")
	}
	return apperrors.NewAppError(500, "failed to write member "+m.MemberID, err)
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.OrganizationMember) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO organization_members (
			member_id, organization_id, name, email, password_hash, role, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID,
		m.OrganizationID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return memberWriteError(err, m)
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.OrganizationMember) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE organization_members
		SET name = $1, email = $2, password_hash = $3, role = $4, updated_at = $5
		WHERE organization_id = $6 AND member_id = $7 AND is_active;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Email, m.PasswordHash, m.Role, m.UpdatedAt, m.OrganizationID, m.MemberID)
	if err != nil {
		return memberWriteError(err, m)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member " + m.MemberID + " not found")
	}
	return nil
}

func (r *PgxMemberRepository) DeactivateMember(ctx context.Context, organizationID, memberID string) error {
	query := `
		UPDATE organization_members
		SET is_active = FALSE, updated_at = NOW()
		WHERE organization_id = $1 AND member_id = $2 AND is_active;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, organizationID, memberID)
	if err != nil {
		return fmt.Errorf("failed to deactivate member %s: %w", memberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member " + memberID + " not found")
	}
	return nil
}
