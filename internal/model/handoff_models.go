package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HandoffSession struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ChatSessionId    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"` // 1:1 with chat session
	AgentId          *uuid.UUID `gorm:"type:uuid;index"`
	EscalationReason string     `gorm:"type:text;not null"`
	Priority         string     `gorm:"type:varchar(20);not null;default:medium"`
	Notes            *string    `gorm:"type:text"`
	EscalatedAt      time.Time  `gorm:"autoCreateTime;index"`
	ResolvedAt       *time.Time
}

func (HandoffSession) TableName() string {
	return "handoff_sessions"
}

type AgentActivity struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ActivityType string    `gorm:"type:varchar(20);not null"`
	Description  string    `gorm:"type:text;not null"`
	Metadata     datatypes.JSONMap
	Timestamp    time.Time `gorm:"autoCreateTime;index"`
}

func (AgentActivity) TableName() string {
	return "agent_activities"
}

type SessionTransfer struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HandoffSessionId uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromAgentId      *uuid.UUID `gorm:"type:uuid"`
	ToAgentId        uuid.UUID  `gorm:"type:uuid;not null"`
	Reason           string     `gorm:"type:text;not null"`
	TransferredBy    *uuid.UUID `gorm:"type:uuid"`
	TransferredAt    time.Time  `gorm:"autoCreateTime"`
}

func (SessionTransfer) TableName() string {
	return "session_transfers"
}
