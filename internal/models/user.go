package models

import "database/sql"

// User is a row of the users table.
// PasswordHash is NULL for accounts created through Google sign-in.
type User struct {
	UserID        string         `db:"user_id"`
	Name          string         `db:"name"`
	Email         string         `db:"email"`
	PasswordHash  sql.NullString `db:"password_hash"`
	UserType      string         `db:"user_type"`
	GoogleSubject *string        `db:"google_subject"`
	Timestamps
}
