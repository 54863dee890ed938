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

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

const profileColumns = `
	user_id, kind, phone, setup_status, action_reason,
	category, description, website, address, registration_number, founding_year,
	team_size, mission_statement, areas_of_operation, previous_projects, logo,
	interest, location, occupation, bio, areas_of_interest, how_heard, image,
	created_at, updated_at`

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	profile := mapping.ToDomainProfile(m)
	return &profile, nil
}

func (r *PgxProfileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			website = EXCLUDED.website,
			address = EXCLUDED.address,
			registration_number = EXCLUDED.registration_number,
			founding_year = EXCLUDED.founding_year,
			team_size = EXCLUDED.team_size,
			mission_statement = EXCLUDED.mission_statement,
			areas_of_operation = EXCLUDED.areas_of_operation,
			previous_projects = EXCLUDED.previous_projects,
			logo = EXCLUDED.logo,
			interest = EXCLUDED.interest,
			location = EXCLUDED.location,
			occupation = EXCLUDED.occupation,
			bio = EXCLUDED.bio,
			areas_of_interest = EXCLUDED.areas_of_interest,
			how_heard = EXCLUDED.how_heard,
			image = EXCLUDED.image,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Kind, m.Phone, m.SetupStatus, m.ActionReason,
		m.Category, m.Description, m.Website, m.Address, m.RegistrationNumber, m.FoundingYear,
		m.TeamSize, m.MissionStatement, m.AreasOfOperation, m.PreviousProjects, m.Logo,
		m.Interest, m.Location, m.Occupation, m.Bio, m.AreasOfInterest, m.HowHeard, m.Image,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if _, ok := constraintViolation(err, pgForeignKeyViolation); ok {
			return fmt.Errorf("profile for unknown user %s: %w", m.UserID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
