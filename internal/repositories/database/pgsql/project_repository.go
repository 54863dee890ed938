package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
	"github.com/kamp-org/kamp_backend/internal/models"
	"github.com/kamp-org/kamp_backend/internal/utils/mapping"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `
	p.project_id, p.creator_id, p.approval_status, p.name, p.ngos, p.categories, p.districts,
	p.target_audience, p.status, p.start_date, p.end_date, p.goal, p.raised, p.donors,
	p.budget_breakdown, p.ngo_roles, p.description, p.milestones, p.impact_goals,
	p.is_public, p.is_open_for_donations, p.is_open_for_organizations, p.compliance_agreed,
	p.image, p.image_type, p.created_at, p.updated_at`

var FULL_PROJECT_SELECT_QUERY = `
SELECT` + projectColumns + `,
	u.name AS creator_name, u.email AS creator_email, u.user_type AS creator_type
FROM projects p
LEFT JOIN users u ON u.user_id = p.creator_id
`

// publicProjectCondition selects approved projects and legacy rows without a status.
const publicProjectCondition = `(p.approval_status IS NULL OR p.approval_status = 'approved')`

// visibilityClause renders a ProjectFilter as a WHERE clause for FULL_PROJECT_SELECT_QUERY.
func visibilityClause(filter domain.ProjectFilter) (string, []any) {
	switch filter.Scope {
	case domain.ScopeAll:
		return "", nil
	case domain.ScopePublicOrOwn:
		if filter.OwnerID != "" {
			return `WHERE (` + publicProjectCondition + ` OR p.creator_id = $1)`, []any{filter.OwnerID}
		}
	}
	return `WHERE ` + publicProjectCondition, nil
}

// getProjects runs the joined select with the given filter
func (r *PgxProjectRepository) getProjects(ctx context.Context, filterQuery string, args ...any) ([]domain.Project, error) {
	rows, err := r.Pool.Query(ctx, FULL_PROJECT_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects", err)
	}
	modelProjects, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProjectWithCreator])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect project rows", err)
	}
	return mapping.ToDomainProjectSlice(modelProjects), nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	projects, err := r.getProjects(ctx, `WHERE p.project_id = $1`, projectID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, apperrors.NewNotFoundError("project " + projectID + " not found")
	}
	return &projects[0], nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	where, args := visibilityClause(filter)
	return r.getProjects(ctx, where+` ORDER BY p.created_at DESC`, args...)
}

func (r *PgxProjectRepository) ListProjectsByCreator(ctx context.Context, creatorID string) ([]domain.Project, error) {
	return r.getProjects(ctx, `WHERE p.creator_id = $1 ORDER BY p.created_at DESC`, creatorID)
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (
			project_id, creator_id, approval_status, name, ngos, categories, districts,
			target_audience, status, start_date, end_date, goal, raised, donors,
			budget_breakdown, ngo_roles, description, milestones, impact_goals,
			is_public, is_open_for_donations, is_open_for_organizations, compliance_agreed,
			image, image_type, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.CreatorID,
		m.ApprovalStatus,
		m.Name,
		m.NGOs,
		m.Categories,
		m.Districts,
		m.TargetAudience,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.Goal,
		m.Raised,
		m.Donors,
		m.BudgetBreakdown,
		m.NGORoles,
		m.Description,
		m.Milestones,
		m.ImpactGoals,
		m.IsPublic,
		m.IsOpenForDonations,
		m.IsOpenForOrganizations,
		m.ComplianceAgreed,
		m.Image,
		m.ImageType,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if _, ok := constraintViolation(err, pgUniqueViolation); ok {
			return apperrors.NewConflictError("project ID " + m.ProjectID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save project "+m.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateApprovalStatus(ctx context.Context, projectID string, status domain.ApprovalStatus) error {
	query := `
		UPDATE projects
		SET approval_status = $1, updated_at = NOW()
		WHERE project_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, status.StoreValue(), projectID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update approval status of project "+projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project " + projectID + " not found")
	}
	return nil
}

// lockProject loads a bare project row and holds its row lock until tx ends.
func lockProject(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error) {
	query := `SELECT` + projectColumns + `
		FROM projects p
		WHERE p.project_id = $1
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock project %s: %w", projectID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("project " + projectID + " not found")
		}
		return nil, fmt.Errorf("failed to scan locked project %s: %w", projectID, err)
	}
	project := mapping.ToDomainProject(m)
	return &project, nil
}
