package mapping

import (
	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/models"
)

// ToModelDonation converts a domain Donation to a model Donation
func ToModelDonation(d domain.Donation) models.Donation {
	return models.Donation{
		DonationID: d.DonationID,
		ProjectID:  d.ProjectID,
		DonorID:    d.DonorID,
		Amount:     d.Amount,
		Message:    d.Message,
		Anonymous:  d.Anonymous,
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainDonation converts a model Donation to a domain Donation
func ToDomainDonation(m models.Donation) domain.Donation {
	return domain.Donation{
		DonationID: m.DonationID,
		ProjectID:  m.ProjectID,
		DonorID:    m.DonorID,
		Amount:     m.Amount,
		Message:    m.Message,
		Anonymous:  m.Anonymous,
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainDonationSlice converts a slice of model donations
func ToDomainDonationSlice(ms []models.Donation) []domain.Donation {
	ds := make([]domain.Donation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDonation(m)
	}
	return ds
}
