package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DonationReader defines read operations for donations
type DonationReader interface {
	// ListDonationsByDonor returns a donor's donations, newest first.
	ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error)

	// ListDonationsByProject returns a project's donations, newest first.
	ListDonationsByProject(ctx context.Context, projectID string) ([]domain.Donation, error)
}

// DonationTxWriter defines the writes that make up a donation. They run
// inside a transaction obtained from TransactionManager.
type DonationTxWriter interface {
	// LockProject loads a project with a row lock held until the transaction ends.
	LockProject(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error)

	// InsertDonation persists a donation.
	InsertDonation(ctx context.Context, tx pgx.Tx, donation domain.Donation) error

	// AddToProjectFunding increments raised by amount and donors by one.
	AddToProjectFunding(ctx context.Context, tx pgx.Tx, projectID string, amount decimal.Decimal) error
}

// DonationRepositoryWithTx combines donation reads, transactional writes and transaction control
type DonationRepositoryWithTx interface {
	DonationReader
	DonationTxWriter
	TransactionManager
}
