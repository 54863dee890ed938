package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		ProfileRepo:     newPgxProfileRepository(dbPool),
		ProjectRepo:     newPgxProjectRepository(dbPool),
		ApplicationRepo: newPgxApplicationRepository(dbPool),
		MemberRepo:      newPgxMemberRepository(dbPool),
		DonationRepo:    newPgxDonationRepository(dbPool),
	}
}
