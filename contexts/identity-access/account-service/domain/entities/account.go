package entities

import "time"

type Contact struct {
	Phone string
}

type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
}

// Account is a registered participant. Institution is meaningful only for
// authors, specialty only for evaluators; the registration validation
// enforces that split.
type Account struct {
	AccountID    string
	Name         string
	NationalID   string
	BirthDate    time.Time
	Role         string
	Institution  string
	Specialty    string
	Email        string
	PasswordHash string
	Contact      Contact
	Address      Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity a successful credential check
// resolves to.
type Principal struct {
	AccountID string
	Name      string
	Role      string
}

func KnownRole(role string) bool {
	switch role {
	case "admin", "author", "evaluator":
		return true
	default:
		return false
	}
}
