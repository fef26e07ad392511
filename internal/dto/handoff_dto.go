package dto

import (
	"time"

	"github.com/google/uuid"
)

type EscalateSessionRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	Priority  string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	CompanyId string `json:"company_id"`
}

type AssignSessionRequest struct {
	HandoffSessionId uuid.UUID `json:"handoff_session_id" validate:"required"`
	AgentId          uuid.UUID `json:"agent_id" validate:"required"`
	Reason           string    `json:"reason"`
}

type ResolveSessionRequest struct {
	HandoffSessionId uuid.UUID `json:"handoff_session_id" validate:"required"`
	Notes            string    `json:"notes"`
}

type SendAgentMessageRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type AgentSummaryDTO struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ChatSessionSummaryDTO struct {
	SessionId string `json:"session_id"`
	CompanyId string `json:"company_id"`
	Status    string `json:"status"`
}

type HandoffSessionDTO struct {
	Id               uuid.UUID             `json:"id"`
	ChatSession      ChatSessionSummaryDTO `json:"chat_session"`
	Agent            *AgentSummaryDTO      `json:"agent"`
	EscalationReason string                `json:"escalation_reason"`
	Priority         string                `json:"priority"`
	Notes            string                `json:"notes"`
	EscalatedAt      time.Time             `json:"escalated_at"`
	ResolvedAt       *time.Time            `json:"resolved_at"`
}

type EscalateSessionResponse struct {
	HandoffSession HandoffSessionDTO `json:"handoff_session"`
}

type AgentSessionsQuery struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
}

type AgentSessionsResponse struct {
	Count       int64               `json:"count"`
	CurrentPage int                 `json:"current_page"`
	TotalPages  int                 `json:"total_pages"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
	Sessions    []HandoffSessionDTO `json:"sessions"`
}

type AgentActivityDTO struct {
	Id           uuid.UUID              `json:"id"`
	AgentId      uuid.UUID              `json:"agent_id"`
	ActivityType string                 `json:"activity_type"`
	Description  string                 `json:"description"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
}

type AgentInfoDTO struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CompanyId string    `json:"company_id"`
}

type DashboardStatsDTO struct {
	AssignedCount   int64 `json:"assigned_count"`
	UnassignedCount int64 `json:"unassigned_count"`
	ResolvedToday   int64 `json:"resolved_today"`
}

type AgentDashboardResponse struct {
	AgentInfo          AgentInfoDTO        `json:"agent_info"`
	AssignedSessions   []HandoffSessionDTO `json:"assigned_sessions"`
	UnassignedSessions []HandoffSessionDTO `json:"unassigned_sessions"`
	RecentActivities   []AgentActivityDTO  `json:"recent_activities"`
	Stats              DashboardStatsDTO   `json:"stats"`
}

type SentAgentMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
