package models

import "github.com/shopspring/decimal"

// Donation is a row of the donations table.
type Donation struct {
	DonationID string          `db:"donation_id"`
	ProjectID  string          `db:"project_id"`
	DonorID    string          `db:"donor_id"`
	Amount     decimal.Decimal `db:"amount"`
	Message    string          `db:"message"`
	Anonymous  bool            `db:"anonymous"`
	Timestamps
}
