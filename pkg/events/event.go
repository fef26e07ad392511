package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_ESCALATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by the constructors below.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Handoff lifecycle event codes.
const (
	TypeSessionEscalated = "SESSION_ESCALATED"
	TypeSessionAssigned  = "SESSION_ASSIGNED"
	TypeSessionResolved  = "SESSION_RESOLVED"
	TypeAgentMessageSent = "AGENT_MESSAGE_SENT"
)

func NewSessionEscalated(sessionToken, companyId, reason, priority string) Event {
	return BaseEvent{
		Type: TypeSessionEscalated,
		Data: map[string]interface{}{
			"session_token": sessionToken,
			"company_id":    companyId,
			"reason":        reason,
			"priority":      priority,
		},
		OccurredAt: time.Now(),
	}
}

func NewSessionAssigned(sessionToken, companyId, agentId string) Event {
	return BaseEvent{
		Type: TypeSessionAssigned,
		Data: map[string]interface{}{
			"session_token": sessionToken,
			"company_id":    companyId,
			"agent_id":      agentId,
		},
		OccurredAt: time.Now(),
	}
}

func NewSessionResolved(sessionToken, companyId, agentId string) Event {
	return BaseEvent{
		Type: TypeSessionResolved,
		Data: map[string]interface{}{
			"session_token": sessionToken,
			"company_id":    companyId,
			"agent_id":      agentId,
		},
		OccurredAt: time.Now(),
	}
}

func NewAgentMessageSent(sessionToken, companyId, agentId, messageId string) Event {
	return BaseEvent{
		Type: TypeAgentMessageSent,
		Data: map[string]interface{}{
			"session_token": sessionToken,
			"company_id":    companyId,
			"agent_id":      agentId,
			"message_id":    messageId,
		},
		OccurredAt: time.Now(),
	}
}
