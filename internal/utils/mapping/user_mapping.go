package mapping

import (
	"database/sql"

	"github.com/kamp-org/kamp_backend/internal/core/domain"
	"github.com/kamp-org/kamp_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:        d.UserID,
		Name:          d.Name,
		Email:         d.Email,
		PasswordHash:  sql.NullString{String: d.PasswordHash, Valid: d.PasswordHash != ""},
		UserType:      string(d.Type),
		GoogleSubject: d.GoogleSubject,
		Timestamps:    ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		Name:          m.Name,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash.String,
		Type:          domain.Role(m.UserType),
		GoogleSubject: m.GoogleSubject,
		Timestamps:    ToDomainTimestamps(m.Timestamps),
	}
}
