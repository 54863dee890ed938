package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kamp-org/kamp_backend/internal/apperrors"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
	"github.com/kamp-org/kamp_backend/internal/models"
	"github.com/kamp-org/kamp_backend/internal/utils/mapping"
)

type PgxApplicationRepository struct {
	BaseRepository
}

// newPgxApplicationRepository creates a new repository for application data.
func newPgxApplicationRepository(pool *pgxpool.Pool) portsrepo.ApplicationRepositoryFacade {
	return &PgxApplicationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxApplicationRepository implements portsrepo.ApplicationRepositoryFacade
var _ portsrepo.ApplicationRepositoryFacade = (*PgxApplicationRepository)(nil)

const applicationColumns = `
	a.application_id, a.project_id, a.user_id, a.applicant_type, a.involvement_type,
	a.message, a.status, a.rejection_reason, a.created_at, a.updated_at`

// The project join is a LEFT JOIN so applications survive deletion of their project.
var FULL_APPLICATION_SELECT_QUERY = `
SELECT` + applicationColumns + `,
	p.project_id AS joined_project_id, p.name AS project_name, p.status AS project_status,
	p.approval_status AS project_approval_status, p.creator_id AS project_creator_id,
	u.name AS applicant_name, u.email AS applicant_email, u.user_type AS applicant_user_type
FROM applications a
LEFT JOIN projects p ON p.project_id = a.project_id
LEFT JOIN users u ON u.user_id = a.user_id
`

func (r *PgxApplicationRepository) getApplicationViews(ctx context.Context, filterQuery string, args ...any) ([]domain.ApplicationView, error) {
	rows, err := r.Pool.Query(ctx, FULL_APPLICATION_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query applications", err)
	}
	modelViews, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ApplicationView])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect application rows", err)
	}
	return mapping.ToDomainApplicationViewSlice(modelViews), nil
}

func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.ApplicationView, error) {
	views, err := r.getApplicationViews(ctx, `WHERE a.application_id = $1`, applicationID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, apperrors.NewNotFoundError("application " + applicationID + " not found")
	}
	return &views[0], nil
}

func (r *PgxApplicationRepository) FindApplicationByProjectAndUser(ctx context.Context, projectID, userID string) (*domain.Application, error) {
	query := `SELECT` + applicationColumns + `
		FROM applications a
		WHERE a.project_id = $1 AND a.user_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query application: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan application: %w", err)
	}
	application := mapping.ToDomainApplication(m)
	return &application, nil
}

func (r *PgxApplicationRepository) ListApplicationsByUser(ctx context.Context, userID string) ([]domain.ApplicationView, error) {
	return r.getApplicationViews(ctx, `WHERE a.user_id = $1 ORDER BY a.created_at DESC`, userID)
}

func (r *PgxApplicationRepository) ListApplicationsByProject(ctx context.Context, projectID string) ([]domain.ApplicationView, error) {
	return r.getApplicationViews(ctx, `WHERE a.project_id = $1 ORDER BY a.created_at DESC`, projectID)
}

func (r *PgxApplicationRepository) ListApplications(ctx context.Context) ([]domain.ApplicationView, error) {
	return r.getApplicationViews(ctx, `ORDER BY a.created_at DESC`)
}

func (r *PgxApplicationRepository) CountUnrespondedByProject(ctx context.Context, projectID string) (domain.ApplicationCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE applicant_type = 'organization'),
			COUNT(*) FILTER (WHERE applicant_type = 'supporter')
		FROM applications
		WHERE project_id = $1 AND status = ANY($2);
	`
	var counts domain.ApplicationCounts
	if err := r.Pool.QueryRow(ctx, query, projectID, unrespondedStatusArgs()).Scan(&counts.Organizations, &counts.Supporters); err != nil {
		return domain.ApplicationCounts{}, apperrors.NewAppError(500, "failed to count applications for project "+projectID, err)
	}
	return counts, nil
}

// unrespondedStatusArgs binds domain.UnrespondedStatuses as a text[] parameter.
func unrespondedStatusArgs() []string {
	statuses := domain.UnrespondedStatuses()
	args := make([]string, len(statuses))
	for i, st := range statuses {
		args[i] = string(st)
	}
	return args
}

func (r *PgxApplicationRepository) SaveApplication(ctx context.Context, application domain.Application) error {
	m := mapping.ToModelApplication(application)
	query := `
		INSERT INTO applications (
			application_id, project_id, user_id, applicant_type, involvement_type,
			message, status, rejection_reason, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ApplicationID,
		m.ProjectID,
		m.UserID,
		m.ApplicantType,
		m.InvolvementType,
		m.Message,
		m.Status,
		m.RejectionReason,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if _, ok := constraintViolation(err, pgUniqueViolation); ok {
			return fmt.Errorf("application for project %s: %w", m.ProjectID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save application "+m.ApplicationID, err)
	}
	return nil
}

func (r *PgxApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus, rejectionReason *string) error {
	query := `
		UPDATE applications
		SET status = $1, rejection_reason = COALESCE($2, rejection_reason), updated_at = $3
		WHERE application_id = $4 AND status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(to), rejectionReason, time.Now(), applicationID, string(from))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of application "+applicationID, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: either the row is gone or its status moved on.
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE application_id = $1)`, applicationID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check application "+applicationID, err)
	}
	if !exists {
		return apperrors.NewNotFoundError("application " + applicationID + " not found")
	}
	return fmt.Errorf("application %s is no longer %s: %w", applicationID, from, apperrors.ErrConflict)
}
