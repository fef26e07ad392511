package mapper

import (
	"time"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/model"

	"gorm.io/datatypes"
)

type HandoffMapper struct{}

func NewHandoffMapper() *HandoffMapper {
	return &HandoffMapper{}
}

func (m *HandoffMapper) HandoffSessionToEntity(h *model.HandoffSession) *entity.HandoffSession {
	if h == nil {
		return nil
	}

	return &entity.HandoffSession{
		Id:               h.Id,
		ChatSessionId:    h.ChatSessionId,
		AgentId:          h.AgentId,
		EscalationReason: h.EscalationReason,
		Priority:         entity.HandoffPriority(h.Priority),
		Notes:            h.Notes,
		EscalatedAt:      h.EscalatedAt,
		ResolvedAt:       h.ResolvedAt,
	}
}

func (m *HandoffMapper) HandoffSessionToModel(h *entity.HandoffSession) *model.HandoffSession {
	if h == nil {
		return nil
	}

	return &model.HandoffSession{
		Id:               h.Id,
		ChatSessionId:    h.ChatSessionId,
		AgentId:          h.AgentId,
		EscalationReason: h.EscalationReason,
		Priority:         string(h.Priority),
		Notes:            h.Notes,
		EscalatedAt:      h.EscalatedAt,
		ResolvedAt:       h.ResolvedAt,
	}
}

func (m *HandoffMapper) AgentActivityToEntity(a *model.AgentActivity) *entity.AgentActivity {
	if a == nil {
		return nil
	}

	metadata := map[string]interface{}(a.Metadata)
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &entity.AgentActivity{
		Id:           a.Id,
		AgentId:      a.AgentId,
		ActivityType: entity.AgentActivityType(a.ActivityType),
		Description:  a.Description,
		Metadata:     metadata,
		Timestamp:    a.Timestamp,
	}
}

func (m *HandoffMapper) AgentActivityToModel(a *entity.AgentActivity) *model.AgentActivity {
	if a == nil {
		return nil
	}

	return &model.AgentActivity{
		Id:           a.Id,
		AgentId:      a.AgentId,
		ActivityType: string(a.ActivityType),
		Description:  a.Description,
		Metadata:     datatypes.JSONMap(a.Metadata),
		Timestamp:    a.Timestamp,
	}
}

func (m *HandoffMapper) SessionTransferToEntity(t *model.SessionTransfer) *entity.SessionTransfer {
	if t == nil {
		return nil
	}

	return &entity.SessionTransfer{
		Id:               t.Id,
		HandoffSessionId: t.HandoffSessionId,
		FromAgentId:      t.FromAgentId,
		ToAgentId:        t.ToAgentId,
		Reason:           t.Reason,
		TransferredBy:    t.TransferredBy,
		TransferredAt:    t.TransferredAt,
	}
}

func (m *HandoffMapper) SessionTransferToModel(t *entity.SessionTransfer) *model.SessionTransfer {
	if t == nil {
		return nil
	}

	return &model.SessionTransfer{
		Id:               t.Id,
		HandoffSessionId: t.HandoffSessionId,
		FromAgentId:      t.FromAgentId,
		ToAgentId:        t.ToAgentId,
		Reason:           t.Reason,
		TransferredBy:    t.TransferredBy,
		TransferredAt:    t.TransferredAt,
	}
}

func (m *HandoffMapper) AgentToEntity(a *model.Agent) *entity.Agent {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Agent{
		Id:             a.Id,
		CompanyId:      a.CompanyId,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		Specialization: a.Specialization,
		Status:         entity.AgentStatus(a.Status),
		LastActive:     a.LastActive,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *HandoffMapper) AgentToModel(a *entity.Agent) *model.Agent {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Agent{
		Id:             a.Id,
		CompanyId:      a.CompanyId,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		Specialization: a.Specialization,
		Status:         string(a.Status),
		LastActive:     a.LastActive,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
