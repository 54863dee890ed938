package models

// Profile is a row of the profiles table.
type Profile struct {
	UserID             string   `db:"user_id"`
	Kind               string   `db:"kind"`
	Phone              string   `db:"phone"`
	SetupStatus        string   `db:"setup_status"`
	ActionReason       string   `db:"action_reason"`
	Category           string   `db:"category"`
	Description        string   `db:"description"`
	Website            string   `db:"website"`
	Address            string   `db:"address"`
	RegistrationNumber string   `db:"registration_number"`
	FoundingYear       *int32   `db:"founding_year"`
	TeamSize           string   `db:"team_size"`
	MissionStatement   string   `db:"mission_statement"`
	AreasOfOperation   []string `db:"areas_of_operation"`
	PreviousProjects   []string `db:"previous_projects"`
	Logo               string   `db:"logo"`
	Interest           string   `db:"interest"`
	Location           string   `db:"location"`
	Occupation         string   `db:"occupation"`
	Bio                string   `db:"bio"`
	AreasOfInterest    []string `db:"areas_of_interest"`
	HowHeard           string   `db:"how_heard"`
	Image              string   `db:"image"`
	Timestamps
}
