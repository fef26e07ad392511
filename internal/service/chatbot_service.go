package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"educonsult-be/internal/constant"
	"educonsult-be/internal/dto"
	"educonsult-be/internal/entity"
	"educonsult-be/internal/pkg/apperror"
	"educonsult-be/internal/pkg/logger"
	"educonsult-be/internal/repository/memory"
	"educonsult-be/internal/repository/specification"
	"educonsult-be/internal/repository/unitofwork"
	"educonsult-be/pkg/conversation/intent"
	"educonsult-be/pkg/conversation/phone"
	"educonsult-be/pkg/conversation/profile"
	"educonsult-be/pkg/events"
	pktNats "educonsult-be/pkg/nats"
	"educonsult-be/pkg/retrieval"

	"github.com/google/uuid"
)

type IChatbotService interface {
	SubmitTurn(ctx context.Context, companyId string, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
	SessionStatus(ctx context.Context, companyId, sessionToken string) (*dto.SessionStatusResponse, error)
	CountryCodes() []constant.CountryCode
	ValidatePhone(req *dto.PhoneValidationRequest) *dto.PhoneValidationResponse
}

type chatbotService struct {
	uowFactory     unitofwork.RepositoryFactory
	locks          memory.SessionLockRegistry
	engine         *retrieval.Engine
	collector      *profile.Collector
	eventPublisher *pktNats.Publisher
	baseURL        string
	logger         logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	locks memory.SessionLockRegistry,
	engine *retrieval.Engine,
	eventPublisher *pktNats.Publisher,
	baseURL string,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory:     uowFactory,
		locks:          locks,
		engine:         engine,
		collector:      profile.NewCollector(),
		eventPublisher: eventPublisher,
		baseURL:        baseURL,
		logger:         log,
	}
}

// SubmitTurn runs one conversational turn: persist the user message,
// route it, persist the bot reply, all under the session's turn lock
// and one transaction so concurrent turns on the same session cannot
// interleave.
func (s *chatbotService) SubmitTurn(ctx context.Context, companyId string, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if strings.TrimSpace(req.Message) == "" && len(req.AttachmentIds) == 0 {
		return nil, apperror.NewValidation("message text or at least one attachment is required")
	}

	sessionToken := req.SessionId
	if sessionToken == "" {
		sessionToken = uuid.NewString()
	}

	lock := s.locks.Acquire(sessionToken)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := s.getOrCreateSession(ctx, uow, sessionToken, companyId)
	if err != nil {
		return nil, err
	}

	userMessage, err := s.logUserMessage(ctx, uow, session, req)
	if err != nil {
		return nil, err
	}

	response, err := s.route(ctx, uow, session, req.Message)
	if err != nil {
		return nil, err
	}
	response.SessionId = session.SessionToken
	response.UserMessage = toChatMessageDTO(userMessage)

	if len(req.AttachmentIds) > 0 {
		files, err := uow.UploadedFileRepository().FindAll(ctx,
			specification.ByIDs{IDs: req.AttachmentIds},
			specification.ByChatSessionID{ChatSessionID: session.Id},
			specification.ByCompanyID{CompanyID: companyId},
		)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			response.Attachments = append(response.Attachments, toUploadedFileDTO(f, s.baseURL))
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return response, nil
}

func (s *chatbotService) getOrCreateSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionToken, companyId string) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.BySessionToken{SessionToken: sessionToken},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session = &entity.ChatSession{
		Id:                     uuid.New(),
		SessionToken:           sessionToken,
		CompanyId:              companyId,
		Status:                 entity.SessionStatusActive,
		ProfileCollectionState: entity.CollectingName,
		TempProfileData:        map[string]string{},
		CreatedAt:              time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *chatbotService) logUserMessage(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, req *dto.ChatMessageRequest) (*entity.ChatMessage, error) {
	var content *string
	if req.Message != "" {
		msg := req.Message
		content = &msg
	}

	turnContext := req.Context
	if turnContext == "" {
		turnContext = "Initial conversation"
	}

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		MessageType:   entity.MessageTypeUser,
		Content:       content,
		Metadata: map[string]interface{}{
			"context":         turnContext,
			"has_attachments": len(req.AttachmentIds) > 0,
		},
		Timestamp: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	if len(req.AttachmentIds) > 0 {
		// Attachments must belong to the same session and tenant; a
		// partial match fails the whole turn.
		count, err := uow.UploadedFileRepository().Count(ctx,
			specification.ByIDs{IDs: req.AttachmentIds},
			specification.ByChatSessionID{ChatSessionID: session.Id},
			specification.ByCompanyID{CompanyID: session.CompanyId},
		)
		if err != nil {
			return nil, err
		}
		if count != int64(len(req.AttachmentIds)) {
			return nil, apperror.NewValidation("one or more attachments do not belong to this session")
		}
		if err := uow.ChatMessageRepository().AttachFiles(ctx, userMessage.Id, req.AttachmentIds); err != nil {
			return nil, err
		}
		userMessage.AttachmentIds = req.AttachmentIds
	}

	return userMessage, nil
}

func (s *chatbotService) route(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, message string) (*dto.ChatMessageResponse, error) {
	if session.UserProfileId == nil {
		response, handled, err := s.routeProfileCollection(ctx, uow, session, message)
		if err != nil || handled {
			return response, err
		}
	}

	if session.IsEscalated() {
		return &dto.ChatMessageResponse{
			Response:    "",
			Suggestions: []string{},
			Type:        constant.ResponseTypeHumanHandling,
			Escalated:   true,
		}, nil
	}

	switch {
	case intent.IsCountryMenuCommand(message):
		return s.logBotResponse(ctx, uow, session, &dto.ChatMessageResponse{
			Response:    constant.CountrySelectionMessage,
			Suggestions: constant.CountrySelectionSuggestions,
			Type:        constant.ResponseTypeCountrySelection,
		})
	case intent.IsProgramMenuCommand(message):
		return s.logBotResponse(ctx, uow, session, &dto.ChatMessageResponse{
			Response:    constant.ProgramSelectionMessage,
			Suggestions: constant.ProgramSelectionSuggestions,
			Type:        constant.ResponseTypeProgramSelection,
		})
	case intent.IsEscalationRequest(message):
		return s.escalate(ctx, uow, session, message)
	}

	if match := s.engine.BestAnswer(message, constant.MinRAGScore); match != nil && match.Score > constant.MinRAGScore {
		return s.logBotResponse(ctx, uow, session, &dto.ChatMessageResponse{
			Response:    match.Answer,
			Suggestions: constant.RAGFollowupSuggestions,
			Type:        constant.ResponseTypeRAG,
		})
	}

	if intent.IsGreeting(message) {
		return s.logBotResponse(ctx, uow, session, &dto.ChatMessageResponse{
			Response:    constant.GreetingMessage,
			Suggestions: constant.GreetingSuggestions,
			Type:        constant.ResponseTypeGreeting,
		})
	}

	return s.logBotResponse(ctx, uow, session, &dto.ChatMessageResponse{
		Response:    constant.ClarificationMessage,
		Suggestions: constant.ClarificationSuggestions,
		Type:        constant.ResponseTypeClarificationNeed,
	})
}

// routeProfileCollection handles turns for sessions without a linked
// profile. The bool result reports whether the turn was consumed here.
func (s *chatbotService) routeProfileCollection(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, message string) (*dto.ChatMessageResponse, bool, error) {
	if session.ProfileCollectionState == entity.CollectionComplete {
		return nil, false, nil
	}

	if session.ProfileCollectionState == entity.CollectingName {
		botMessages, err := uow.ChatMessageRepository().Count(ctx,
			specification.ByChatSessionID{ChatSessionID: session.Id},
			specification.ByMessageType{MessageType: string(entity.MessageTypeBot)},
		)
		if err != nil {
			return nil, false, err
		}
		// The opening turn is a welcome, not profile input.
		if intent.IsGreeting(message) || botMessages == 0 {
			welcome := s.collector.WelcomePrompt()
			response := &dto.ChatMessageResponse{
				Response:    welcome.Response,
				Suggestions: welcome.Suggestions,
				Type:        welcome.Type,
				Collecting:  welcome.Collecting,
			}
			logged, err := s.logBotResponse(ctx, uow, session, response)
			if err != nil {
				return nil, false, err
			}
			return logged, true, nil
		}
	}

	step := s.collector.Step(session, message)
	if step == nil {
		return nil, false, nil
	}

	if step.Completed {
		if err := s.completeProfile(ctx, uow, session, step.Draft); err != nil {
			return nil, false, err
		}
	}

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, false, err
	}

	response := &dto.ChatMessageResponse{
		Response:    step.Response,
		Suggestions: step.Suggestions,
		Type:        step.Type,
		Collecting:  step.Collecting,
	}
	logged, err := s.logBotResponse(ctx, uow, session, response)
	if err != nil {
		return nil, false, err
	}
	return logged, true, nil
}

// completeProfile is the one collection transition with a durable side
// effect beyond the session record: the profile row is created, linked
// and the session marked complete, all in the turn's transaction.
func (s *chatbotService) completeProfile(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, draft map[string]string) error {
	countryCode := draft["country_code"]
	if countryCode == "" {
		countryCode = constant.DefaultCountryCode
	}

	var email *string
	if v, ok := draft["email"]; ok && v != "" {
		email = &v
	}
	var address *string
	if v, ok := draft["address"]; ok && v != "" {
		address = &v
	}

	userProfile := &entity.UserProfile{
		Id:               uuid.New(),
		CompanyId:        session.CompanyId,
		PersistentUserId: newPersistentUserId(),
		SessionToken:     session.SessionToken,
		Name:             draft["name"],
		Phone:            draft["phone"],
		Email:            email,
		Address:          address,
		CountryCode:      countryCode,
		CreatedAt:        time.Now(),
	}
	if err := uow.UserProfileRepository().Create(ctx, userProfile); err != nil {
		return err
	}

	session.UserProfileId = &userProfile.Id

	s.logger.Info("ChatbotService", "Profile collection completed", map[string]interface{}{
		"session_token":      session.SessionToken,
		"persistent_user_id": userProfile.PersistentUserId,
	})
	return nil
}

func (s *chatbotService) escalate(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, reason string) (*dto.ChatMessageResponse, error) {
	existing, err := uow.HandoffSessionRepository().FindOne(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// The 1:1 relation allows one escalation per session, resolved
		// or not. Mid-conversation this is answered in band; a fresh
		// session escalates normally.
		return s.logBotResponse(ctx, uow, session, &dto.ChatMessageResponse{
			Response:    constant.ReEscalationMessage,
			Suggestions: constant.ClarificationSuggestions,
			Type:        constant.ResponseTypeClarificationNeed,
		})
	}

	handoff := &entity.HandoffSession{
		Id:               uuid.New(),
		ChatSessionId:    session.Id,
		EscalationReason: reason,
		Priority:         entity.PriorityMedium,
		EscalatedAt:      time.Now(),
	}
	if err := uow.HandoffSessionRepository().Create(ctx, handoff); err != nil {
		return nil, err
	}

	session.Status = entity.SessionStatusEscalated
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewSessionEscalated(session.SessionToken, session.CompanyId, reason, string(entity.PriorityMedium))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ChatbotService", "Failed to publish escalation event", map[string]interface{}{"error": err.Error()})
		}
	}

	return s.logBotResponse(ctx, uow, session, &dto.ChatMessageResponse{
		Response:    constant.EscalatedMessage,
		Suggestions: []string{},
		Type:        constant.ResponseTypeEscalated,
		Escalated:   true,
	})
}

func (s *chatbotService) logBotResponse(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, response *dto.ChatMessageResponse) (*dto.ChatMessageResponse, error) {
	metadata := map[string]interface{}{
		"source": "bot",
		"type":   response.Type,
	}
	if response.Type == constant.ResponseTypeProfileCollection || response.Type == constant.ResponseTypeProfileComplete {
		metadata["source"] = "profile_collection"
		if response.Collecting != "" {
			metadata["collecting"] = response.Collecting
		}
	}

	content := response.Response
	botMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		MessageType:   entity.MessageTypeBot,
		Content:       &content,
		Metadata:      metadata,
		Timestamp:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, botMessage); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *chatbotService) SessionStatus(ctx context.Context, companyId, sessionToken string) (*dto.SessionStatusResponse, error) {
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

	response := &dto.SessionStatusResponse{
		SessionId:   session.SessionToken,
		Status:      string(session.Status),
		IsEscalated: session.IsEscalated(),
	}

	if session.UserProfileId != nil {
		userProfile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByID{ID: *session.UserProfileId})
		if err != nil {
			return nil, err
		}
		if userProfile != nil {
			response.UserProfile = &dto.UserProfileDTO{
				Id:               userProfile.Id,
				PersistentUserId: userProfile.PersistentUserId,
				Name:             userProfile.Name,
				Phone:            userProfile.Phone,
				Email:            userProfile.Email,
				Address:          userProfile.Address,
				CountryCode:      userProfile.CountryCode,
				CreatedAt:        userProfile.CreatedAt,
			}
		}
	}

	return response, nil
}

func (s *chatbotService) CountryCodes() []constant.CountryCode {
	return constant.CountryCodes
}

func (s *chatbotService) ValidatePhone(req *dto.PhoneValidationRequest) *dto.PhoneValidationResponse {
	valid, message := phone.Validate(req.Phone, req.CountryCode)

	var provider *string
	if req.CountryCode == constant.DefaultCountryCode && valid {
		result := phone.ValidateNepali(req.Phone)
		if result.Provider != "" {
			provider = &result.Provider
		}
	}

	return &dto.PhoneValidationResponse{
		Valid:    valid,
		Message:  message,
		Provider: provider,
	}
}

func newPersistentUserId() string {
	return fmt.Sprintf("user_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func toChatMessageDTO(m *entity.ChatMessage) *dto.ChatMessageDTO {
	if m == nil {
		return nil
	}
	return &dto.ChatMessageDTO{
		Id:          m.Id,
		MessageType: string(m.MessageType),
		Content:     m.Content,
		Metadata:    m.Metadata,
		Timestamp:   m.Timestamp,
	}
}

func toUploadedFileDTO(f *entity.UploadedFile, baseURL string) dto.UploadedFileDTO {
	d := dto.UploadedFileDTO{
		Id:               f.Id,
		Url:              uploadedFileURL(baseURL, f.Filepath),
		OriginalFilename: f.OriginalName,
		FileType:         f.FileType,
		FileSize:         f.FileSize,
		UploadedAt:       f.UploadedAt,
	}
	if f.MessageContext != nil {
		d.UploadContext = *f.MessageContext
	}
	return d
}
