package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string
type ProfileCollectionState string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusEscalated SessionStatus = "escalated"
	SessionStatusAssigned  SessionStatus = "assigned"
	SessionStatusResolved  SessionStatus = "resolved"
	SessionStatusClosed    SessionStatus = "closed"

	// Profile collection is a strictly linear flow; each state only ever
	// advances to the next one, ending at CollectionComplete.
	CollectingName        ProfileCollectionState = "name"
	CollectingCountryCode ProfileCollectionState = "country_code"
	CollectingPhone       ProfileCollectionState = "phone"
	CollectingEmail       ProfileCollectionState = "email"
	CollectingAddress     ProfileCollectionState = "address"
	CollectionComplete    ProfileCollectionState = "complete"
)

type ChatSession struct {
	Id                     uuid.UUID
	SessionToken           string
	CompanyId              string
	UserProfileId          *uuid.UUID
	Status                 SessionStatus
	ProfileCompleted       bool
	ProfileCollectionState ProfileCollectionState
	TempProfileData        map[string]string
	CreatedAt              time.Time
	UpdatedAt              *time.Time
}

// IsEscalated reports whether a human currently owns this conversation.
// Status is the source of truth, never the presence of a handoff record.
func (s *ChatSession) IsEscalated() bool {
	return s.Status == SessionStatusEscalated || s.Status == SessionStatusAssigned
}
