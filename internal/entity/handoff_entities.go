package entity

import (
	"time"

	"github.com/google/uuid"
)

type HandoffPriority string
type AgentActivityType string

const (
	PriorityLow    HandoffPriority = "low"
	PriorityMedium HandoffPriority = "medium"
	PriorityHigh   HandoffPriority = "high"
	PriorityUrgent HandoffPriority = "urgent"

	ActivityLogin          AgentActivityType = "login"
	ActivityLogout         AgentActivityType = "logout"
	ActivityStatusChange   AgentActivityType = "status_change"
	ActivitySessionAssign  AgentActivityType = "session_assign"
	ActivitySessionResolve AgentActivityType = "session_resolve"
	ActivityMessageSent    AgentActivityType = "message_sent"
)

// HandoffSession tracks the escalation of one chat session to a human
// agent. The relation to ChatSession is 1:1 - a session can be escalated
// at most once.
type HandoffSession struct {
	Id               uuid.UUID
	ChatSessionId    uuid.UUID
	AgentId          *uuid.UUID
	EscalationReason string
	Priority         HandoffPriority
	Notes            *string
	EscalatedAt      time.Time
	ResolvedAt       *time.Time
}

func (h *HandoffSession) IsResolved() bool {
	return h.ResolvedAt != nil
}

// AgentActivity is an append-only audit trail entry for one agent.
type AgentActivity struct {
	Id           uuid.UUID
	AgentId      uuid.UUID
	ActivityType AgentActivityType
	Description  string
	Metadata     map[string]interface{}
	Timestamp    time.Time
}

// SessionTransfer records a handoff being moved between agents.
type SessionTransfer struct {
	Id               uuid.UUID
	HandoffSessionId uuid.UUID
	FromAgentId      *uuid.UUID
	ToAgentId        uuid.UUID
	Reason           string
	TransferredBy    *uuid.UUID
	TransferredAt    time.Time
}
