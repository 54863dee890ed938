package domain

import "github.com/shopspring/decimal"

// Donation is a single contribution towards a project's goal.
type Donation struct {
	DonationID string          `json:"donationID"`
	ProjectID  string          `json:"projectID"`
	DonorID    string          `json:"donorID,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Message    string          `json:"message"`
	Anonymous  bool            `json:"anonymous"`
	Timestamps
}

// Redacted hides the donor of an anonymous donation.
func (d Donation) Redacted() Donation {
	if d.Anonymous {
		d.DonorID = ""
	}
	return d
}
