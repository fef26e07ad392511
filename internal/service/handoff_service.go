package service

import (
	"context"
	"time"

	"educonsult-be/internal/dto"
	"educonsult-be/internal/entity"
	"educonsult-be/internal/pkg/apperror"
	"educonsult-be/internal/pkg/logger"
	"educonsult-be/internal/pkg/mailer"
	"educonsult-be/internal/repository/specification"
	"educonsult-be/internal/repository/unitofwork"
	"educonsult-be/pkg/events"
	pktNats "educonsult-be/pkg/nats"

	"github.com/google/uuid"
)

type IHandoffService interface {
	Escalate(ctx context.Context, companyId string, req *dto.EscalateSessionRequest) (*dto.EscalateSessionResponse, error)
	Assign(ctx context.Context, companyId string, performedBy *uuid.UUID, req *dto.AssignSessionRequest) (*dto.HandoffSessionDTO, error)
	Resolve(ctx context.Context, companyId string, req *dto.ResolveSessionRequest) (*dto.HandoffSessionDTO, error)
	SendAgentMessage(ctx context.Context, companyId string, agentId uuid.UUID, req *dto.SendAgentMessageRequest) (*dto.SentAgentMessageDTO, error)
	AgentSessions(ctx context.Context, companyId string, agentId uuid.UUID, query *dto.AgentSessionsQuery) (*dto.AgentSessionsResponse, error)
	SessionMessages(ctx context.Context, companyId string, agentId uuid.UUID, sessionToken string) ([]dto.ChatMessageDTO, error)
	Activities(ctx context.Context, companyId string, agentId *uuid.UUID, activityType string, limit int) ([]dto.AgentActivityDTO, error)
	Dashboard(ctx context.Context, companyId string, agentId uuid.UUID) (*dto.AgentDashboardResponse, error)
}

type handoffService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	logger         logger.ILogger
}

func NewHandoffService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IHandoffService {
	return &handoffService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		logger:         log,
	}
}

func (s *handoffService) Escalate(ctx context.Context, companyId string, req *dto.EscalateSessionRequest) (*dto.EscalateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{SessionToken: req.SessionId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("session not found")
	}

	existing, err := uow.HandoffSessionRepository().FindOne(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("session is already escalated")
	}

	priority := entity.HandoffPriority(req.Priority)
	if priority == "" {
		priority = entity.PriorityMedium
	}

	handoff := &entity.HandoffSession{
		Id:               uuid.New(),
		ChatSessionId:    session.Id,
		EscalationReason: req.Reason,
		Priority:         priority,
		EscalatedAt:      time.Now(),
	}
	if err := uow.HandoffSessionRepository().Create(ctx, handoff); err != nil {
		return nil, err
	}

	session.Status = entity.SessionStatusEscalated
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	var alertAgents []*entity.Agent
	if s.emailService != nil {
		alertAgents, err = uow.AgentRepository().FindAll(ctx,
			specification.ByCompanyID{CompanyID: companyId},
			specification.ByAgentStatus{Status: string(entity.AgentStatusAvailable)},
		)
		if err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewSessionEscalated(session.SessionToken, companyId, req.Reason, string(priority)))

	for _, a := range alertAgents {
		if a.Email == "" {
			continue
		}
		if err := s.emailService.SendEscalationAlert(a.Email, session.SessionToken, req.Reason); err != nil {
			s.logger.Warn("HandoffService", "Failed to send escalation alert", map[string]interface{}{"error": err.Error(), "agent_id": a.Id.String()})
		}
	}

	return &dto.EscalateSessionResponse{
		HandoffSession: s.toHandoffDTO(handoff, session, nil),
	}, nil
}

func (s *handoffService) Assign(ctx context.Context, companyId string, performedBy *uuid.UUID, req *dto.AssignSessionRequest) (*dto.HandoffSessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	handoff, session, err := s.findScopedHandoff(ctx, uow, companyId, req.HandoffSessionId)
	if err != nil {
		return nil, err
	}

	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: req.AgentId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, apperror.NewNotFound("agent not found")
	}

	previousAgentId := handoff.AgentId

	handoff.AgentId = &agent.Id
	if err := uow.HandoffSessionRepository().Update(ctx, handoff); err != nil {
		return nil, err
	}

	session.Status = entity.SessionStatusAssigned
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if previousAgentId != nil && *previousAgentId != agent.Id {
		reason := req.Reason
		if reason == "" {
			reason = "Reassigned by supervisor"
		}
		transfer := &entity.SessionTransfer{
			Id:               uuid.New(),
			HandoffSessionId: handoff.Id,
			FromAgentId:      previousAgentId,
			ToAgentId:        agent.Id,
			Reason:           reason,
			TransferredBy:    performedBy,
			TransferredAt:    time.Now(),
		}
		if err := uow.SessionTransferRepository().Create(ctx, transfer); err != nil {
			return nil, err
		}
	}

	activity := &entity.AgentActivity{
		Id:           uuid.New(),
		AgentId:      agent.Id,
		ActivityType: entity.ActivitySessionAssign,
		Description:  "Assigned to session " + session.SessionToken,
		Metadata:     map[string]interface{}{"session_id": session.SessionToken},
		Timestamp:    time.Now(),
	}
	if err := uow.AgentActivityRepository().Create(ctx, activity); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewSessionAssigned(session.SessionToken, companyId, agent.Id.String()))

	if s.emailService != nil && agent.Email != "" {
		if err := s.emailService.SendAssignmentNotice(agent.Email, agent.Name, session.SessionToken, string(handoff.Priority)); err != nil {
			s.logger.Warn("HandoffService", "Failed to send assignment notice", map[string]interface{}{"error": err.Error()})
		}
	}

	return s.toHandoffDTOPtr(handoff, session, agent), nil
}

func (s *handoffService) Resolve(ctx context.Context, companyId string, req *dto.ResolveSessionRequest) (*dto.HandoffSessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	handoff, session, err := s.findScopedHandoff(ctx, uow, companyId, req.HandoffSessionId)
	if err != nil {
		return nil, err
	}
	if handoff.IsResolved() {
		return nil, apperror.NewConflict("handoff session is already resolved")
	}

	now := time.Now()
	handoff.ResolvedAt = &now
	if req.Notes != "" {
		notes := req.Notes
		handoff.Notes = &notes
	}
	if err := uow.HandoffSessionRepository().Update(ctx, handoff); err != nil {
		return nil, err
	}

	session.Status = entity.SessionStatusResolved
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	var agent *entity.Agent
	if handoff.AgentId != nil {
		agent, err = uow.AgentRepository().FindOne(ctx, specification.ByID{ID: *handoff.AgentId})
		if err != nil {
			return nil, err
		}
		if agent != nil {
			activity := &entity.AgentActivity{
				Id:           uuid.New(),
				AgentId:      agent.Id,
				ActivityType: entity.ActivitySessionResolve,
				Description:  "Resolved session " + session.SessionToken,
				Metadata:     map[string]interface{}{"session_id": session.SessionToken, "notes": req.Notes},
				Timestamp:    now,
			}
			if err := uow.AgentActivityRepository().Create(ctx, activity); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	agentId := ""
	if handoff.AgentId != nil {
		agentId = handoff.AgentId.String()
	}
	s.publish(ctx, events.NewSessionResolved(session.SessionToken, companyId, agentId))

	return s.toHandoffDTOPtr(handoff, session, agent), nil
}

func (s *handoffService) SendAgentMessage(ctx context.Context, companyId string, agentId uuid.UUID, req *dto.SendAgentMessageRequest) (*dto.SentAgentMessageDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{SessionToken: req.SessionId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("session not found")
	}

	handoff, err := uow.HandoffSessionRepository().FindOne(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	if err != nil {
		return nil, err
	}
	if handoff == nil {
		return nil, apperror.NewAuthorization("session is not escalated")
	}
	if handoff.AgentId == nil || *handoff.AgentId != agentId {
		return nil, apperror.NewAuthorization("session is not assigned to this agent")
	}

	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: agentId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, apperror.NewNotFound("agent not found")
	}

	content := req.Message
	message := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		MessageType:   entity.MessageTypeAgent,
		Content:       &content,
		Metadata: map[string]interface{}{
			"agent_id":   agent.Id.String(),
			"agent_name": agent.Name,
		},
		Timestamp: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	preview := req.Message
	if runes := []rune(preview); len(runes) > 50 {
		preview = string(runes[:50])
	}
	activity := &entity.AgentActivity{
		Id:           uuid.New(),
		AgentId:      agent.Id,
		ActivityType: entity.ActivityMessageSent,
		Description:  "Sent message in session " + session.SessionToken,
		Metadata:     map[string]interface{}{"session_id": session.SessionToken, "message_preview": preview},
		Timestamp:    time.Now(),
	}
	if err := uow.AgentActivityRepository().Create(ctx, activity); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewAgentMessageSent(session.SessionToken, companyId, agent.Id.String(), message.Id.String()))

	return &dto.SentAgentMessageDTO{
		Id:        message.Id,
		Content:   req.Message,
		Timestamp: message.Timestamp,
	}, nil
}

func (s *handoffService) SessionMessages(ctx context.Context, companyId string, agentId uuid.UUID, sessionToken string) ([]dto.ChatMessageDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{SessionToken: sessionToken},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("session not found")
	}

	handoff, err := uow.HandoffSessionRepository().FindOne(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	if err != nil {
		return nil, err
	}
	if handoff == nil {
		return nil, apperror.NewAuthorization("session is not escalated")
	}
	if handoff.AgentId == nil || *handoff.AgentId != agentId {
		return nil, apperror.NewAuthorization("session is not assigned to this agent")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "timestamp"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, *toChatMessageDTO(m))
	}
	return out, nil
}

func (s *handoffService) AgentSessions(ctx context.Context, companyId string, agentId uuid.UUID, query *dto.AgentSessionsQuery) (*dto.AgentSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: agentId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, apperror.NewNotFound("agent profile not found")
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 50 {
		perPage = 50
	}

	// Agents only ever see sessions assigned to them; "unassigned" is
	// an admin view and yields an empty page here.
	if query.Status == "unassigned" {
		return &dto.AgentSessionsResponse{
			CurrentPage: page,
			TotalPages:  0,
			Sessions:    []dto.HandoffSessionDTO{},
		}, nil
	}

	specs := []specification.Specification{
		specification.ByAgentID{AgentID: agent.Id},
	}
	switch query.Status {
	case "assigned":
		specs = append(specs, specification.Unresolved{})
	case "resolved":
		specs = append(specs, specification.Resolved{})
	}
	if query.Priority != "" {
		specs = append(specs, specification.ByPriority{Priority: query.Priority})
	}

	count, err := uow.HandoffSessionRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "escalated_at", Desc: true},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)
	handoffs, err := uow.HandoffSessionRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	sessions, err := s.toHandoffDTOs(ctx, uow, handoffs)
	if err != nil {
		return nil, err
	}

	totalPages := int((count + int64(perPage) - 1) / int64(perPage))

	return &dto.AgentSessionsResponse{
		Count:       count,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
		Sessions:    sessions,
	}, nil
}

func (s *handoffService) Activities(ctx context.Context, companyId string, agentId *uuid.UUID, activityType string, limit int) ([]dto.AgentActivityDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Scope the activity feed to agents of this tenant.
	agents, err := uow.AgentRepository().FindAll(ctx, specification.ByCompanyID{CompanyID: companyId})
	if err != nil {
		return nil, err
	}
	allowed := make(map[uuid.UUID]bool, len(agents))
	agentIds := make([]uuid.UUID, 0, len(agents))
	for _, a := range agents {
		allowed[a.Id] = true
		agentIds = append(agentIds, a.Id)
	}

	if agentId != nil {
		if !allowed[*agentId] {
			return nil, apperror.NewNotFound("agent not found")
		}
		agentIds = []uuid.UUID{*agentId}
	}
	if len(agentIds) == 0 {
		return []dto.AgentActivityDTO{}, nil
	}

	if limit <= 0 {
		limit = 50
	}

	specs := []specification.Specification{
		specification.ByAgentIDs{AgentIDs: agentIds},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: 0},
	}
	if activityType != "" {
		specs = append(specs, specification.ByActivityType{ActivityType: activityType})
	}

	activities, err := uow.AgentActivityRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AgentActivityDTO, 0, len(activities))
	for _, a := range activities {
		result = append(result, dto.AgentActivityDTO{
			Id:           a.Id,
			AgentId:      a.AgentId,
			ActivityType: string(a.ActivityType),
			Description:  a.Description,
			Metadata:     a.Metadata,
			Timestamp:    a.Timestamp,
		})
	}
	return result, nil
}

func (s *handoffService) Dashboard(ctx context.Context, companyId string, agentId uuid.UUID) (*dto.AgentDashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: agentId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, apperror.NewNotFound("agent profile not found")
	}

	assigned, err := uow.HandoffSessionRepository().FindAll(ctx,
		specification.ByAgentID{AgentID: agent.Id},
		specification.Unresolved{},
		specification.OrderBy{Field: "escalated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	unassignedAll, err := uow.HandoffSessionRepository().FindAll(ctx,
		specification.Unassigned{},
		specification.Unresolved{},
		specification.OrderBy{Field: "escalated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	// Handoff rows carry no company column; filter through the owning
	// session's scope.
	var unassigned []*entity.HandoffSession
	unassignedDTOs := []dto.HandoffSessionDTO{}
	for _, h := range unassignedAll {
		session, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: h.ChatSessionId},
			specification.ByCompanyID{CompanyID: companyId},
		)
		if err != nil {
			return nil, err
		}
		if session == nil {
			continue
		}
		unassigned = append(unassigned, h)
		unassignedDTOs = append(unassignedDTOs, s.toHandoffDTO(h, session, nil))
	}

	assignedDTOs, err := s.toHandoffDTOs(ctx, uow, assigned)
	if err != nil {
		return nil, err
	}

	recentActivities, err := uow.AgentActivityRepository().FindAll(ctx,
		specification.ByAgentID{AgentID: agent.Id},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: 10, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	activityDTOs := make([]dto.AgentActivityDTO, 0, len(recentActivities))
	for _, a := range recentActivities {
		activityDTOs = append(activityDTOs, dto.AgentActivityDTO{
			Id:           a.Id,
			AgentId:      a.AgentId,
			ActivityType: string(a.ActivityType),
			Description:  a.Description,
			Metadata:     a.Metadata,
			Timestamp:    a.Timestamp,
		})
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	resolvedToday := int64(0)
	resolvedAll, err := uow.HandoffSessionRepository().FindAll(ctx,
		specification.ByAgentID{AgentID: agent.Id},
		specification.Resolved{},
	)
	if err != nil {
		return nil, err
	}
	for _, h := range resolvedAll {
		if h.ResolvedAt != nil && !h.ResolvedAt.Before(startOfDay) {
			resolvedToday++
		}
	}

	return &dto.AgentDashboardResponse{
		AgentInfo: dto.AgentInfoDTO{
			Id:        agent.Id,
			Name:      agent.Name,
			Status:    string(agent.Status),
			CompanyId: agent.CompanyId,
		},
		AssignedSessions:   assignedDTOs,
		UnassignedSessions: unassignedDTOs,
		RecentActivities:   activityDTOs,
		Stats: dto.DashboardStatsDTO{
			AssignedCount:   int64(len(assigned)),
			UnassignedCount: int64(len(unassigned)),
			ResolvedToday:   resolvedToday,
		},
	}, nil
}

// findScopedHandoff loads a handoff together with its owning session,
// enforcing tenant scope. Cross-tenant access reads as not found.
func (s *handoffService) findScopedHandoff(ctx context.Context, uow unitofwork.UnitOfWork, companyId string, handoffId uuid.UUID) (*entity.HandoffSession, *entity.ChatSession, error) {
	handoff, err := uow.HandoffSessionRepository().FindOne(ctx, specification.ByID{ID: handoffId})
	if err != nil {
		return nil, nil, err
	}
	if handoff == nil {
		return nil, nil, apperror.NewNotFound("handoff session not found")
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: handoff.ChatSessionId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, apperror.NewNotFound("handoff session not found")
	}

	return handoff, session, nil
}

func (s *handoffService) toHandoffDTOs(ctx context.Context, uow unitofwork.UnitOfWork, handoffs []*entity.HandoffSession) ([]dto.HandoffSessionDTO, error) {
	result := make([]dto.HandoffSessionDTO, 0, len(handoffs))
	for _, h := range handoffs {
		session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: h.ChatSessionId})
		if err != nil {
			return nil, err
		}
		if session == nil {
			continue
		}
		var agent *entity.Agent
		if h.AgentId != nil {
			agent, err = uow.AgentRepository().FindOne(ctx, specification.ByID{ID: *h.AgentId})
			if err != nil {
				return nil, err
			}
		}
		result = append(result, s.toHandoffDTO(h, session, agent))
	}
	return result, nil
}

func (s *handoffService) toHandoffDTO(h *entity.HandoffSession, session *entity.ChatSession, agent *entity.Agent) dto.HandoffSessionDTO {
	d := dto.HandoffSessionDTO{
		Id: h.Id,
		ChatSession: dto.ChatSessionSummaryDTO{
			SessionId: session.SessionToken,
			CompanyId: session.CompanyId,
			Status:    string(session.Status),
		},
		EscalationReason: h.EscalationReason,
		Priority:         string(h.Priority),
		EscalatedAt:      h.EscalatedAt,
		ResolvedAt:       h.ResolvedAt,
	}
	if h.Notes != nil {
		d.Notes = *h.Notes
	}
	if agent != nil {
		d.Agent = &dto.AgentSummaryDTO{Id: agent.Id, Name: agent.Name}
	}
	return d
}

func (s *handoffService) toHandoffDTOPtr(h *entity.HandoffSession, session *entity.ChatSession, agent *entity.Agent) *dto.HandoffSessionDTO {
	d := s.toHandoffDTO(h, session, agent)
	return &d
}

func (s *handoffService) publish(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("HandoffService", "Failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}
