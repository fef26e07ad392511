package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the finalized visitor identity created when profile
// collection completes. Identity fields are immutable afterwards.
type UserProfile struct {
	Id               uuid.UUID
	CompanyId        string
	PersistentUserId string
	SessionToken     string
	Name             string
	Phone            string // stored as "{country_code}-{local_number}"
	Email            *string
	Address          *string
	CountryCode      string
	CreatedAt        time.Time
	LastUsed         *time.Time
}
