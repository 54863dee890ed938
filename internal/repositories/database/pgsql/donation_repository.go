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
	"github.com/shopspring/decimal"
)

type PgxDonationRepository struct {
	BaseRepository
}

// newPgxDonationRepository creates a new repository for donations.
func newPgxDonationRepository(pool *pgxpool.Pool) portsrepo.DonationRepositoryWithTx {
	return &PgxDonationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDonationRepository implements portsrepo.DonationRepositoryWithTx
var _ portsrepo.DonationRepositoryWithTx = (*PgxDonationRepository)(nil)

var FULL_DONATION_SELECT_QUERY = `
SELECT donation_id, project_id, donor_id, amount, message, anonymous, created_at, updated_at
FROM donations
`

func (r *PgxDonationRepository) getDonations(ctx context.Context, filterQuery string, args ...any) ([]domain.Donation, error) {
	rows, err := r.Pool.Query(ctx, FULL_DONATION_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query donations", err)
	}
	modelDonations, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Donation])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect donation rows", err)
	}
	return mapping.ToDomainDonationSlice(modelDonations), nil
}

func (r *PgxDonationRepository) ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	return r.getDonations(ctx, `WHERE donor_id = $1 ORDER BY created_at DESC`, donorID)
}

func (r *PgxDonationRepository) ListDonationsByProject(ctx context.Context, projectID string) ([]domain.Donation, error) {
	return r.getDonations(ctx, `WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
}

// LockProject must be called within a transaction.
func (r *PgxDonationRepository) LockProject(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error) {
	return lockProject(ctx, tx, projectID)
}

func (r *PgxDonationRepository) InsertDonation(ctx context.Context, tx pgx.Tx, donation domain.Donation) error {
	m := mapping.ToModelDonation(donation)
	query := `
		INSERT INTO donations (donation_id, project_id, donor_id, amount, message, anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.DonationID,
		m.ProjectID,
		m.DonorID,
		m.Amount,
		m.Message,
		m.Anonymous,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if _, ok := constraintViolation(err, pgForeignKeyViolation); ok {
			return apperrors.NewNotFoundError("project " + m.ProjectID + " not found")
		}
		return apperrors.NewAppError(500, "failed to insert donation "+m.DonationID, err)
	}
	return nil
}

func (r *PgxDonationRepository) AddToProjectFunding(ctx context.Context, tx pgx.Tx, projectID string, amount decimal.Decimal) error {
	query := `
		UPDATE projects
		SET raised = raised + $1, donors = donors + 1, updated_at = NOW()
		WHERE project_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query, amount, projectID)
	if err != nil {
		return fmt.Errorf("failed to update funding of project %s: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project " + projectID + " not found")
	}
	return nil
}
