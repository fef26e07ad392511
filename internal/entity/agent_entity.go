package entity

import (
	"time"

	"github.com/google/uuid"
)

type AgentStatus string

const (
	AgentStatusAvailable AgentStatus = "AVAILABLE"
	AgentStatusBusy      AgentStatus = "BUSY"
	AgentStatusOffline   AgentStatus = "OFFLINE"
)

// Agent is a human support agent belonging to exactly one company.
// Account credentials live in the external auth system; this record only
// carries the identity the handoff manager needs.
type Agent struct {
	Id             uuid.UUID
	CompanyId      string
	Name           string
	Email          string
	Phone          string
	Specialization string
	Status         AgentStatus
	LastActive     *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
