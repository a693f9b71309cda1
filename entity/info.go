package entity

type About struct {
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Mission     string   `json:"mission"`
	Established int      `json:"established"`
	Description string   `json:"description"`
	Programs    []string `json:"programs"`
}

type Contact struct {
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	OfficeHours string `json:"office_hours"`
}

// StoreStatus describes the database connection for the diagnostic endpoint.
type StoreStatus struct {
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	URL         string   `json:"database_url"`
	Connected   bool     `json:"connected"`
	Collections []string `json:"collections"`
	Error       string   `json:"error,omitempty"`
}
