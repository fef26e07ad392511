package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByAgentID struct {
	AgentID uuid.UUID
}

func (s ByAgentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_id = ?", s.AgentID)
}

type Unassigned struct{}

func (s Unassigned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_id IS NULL")
}

type Unresolved struct{}

func (s Unresolved) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("resolved_at IS NULL")
}

type Resolved struct{}

func (s Resolved) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("resolved_at IS NOT NULL")
}

type ByHandoffSessionID struct {
	HandoffSessionID uuid.UUID
}

func (s ByHandoffSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("handoff_session_id = ?", s.HandoffSessionID)
}

type ByAgentStatus struct {
	Status string
}

func (s ByAgentStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByPriority struct {
	Priority string
}

func (s ByPriority) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("priority = ?", s.Priority)
}

type ByActivityType struct {
	ActivityType string
}

func (s ByActivityType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("activity_type = ?", s.ActivityType)
}

type ByAgentIDs struct {
	AgentIDs []uuid.UUID
}

func (s ByAgentIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_id IN ?", s.AgentIDs)
}
