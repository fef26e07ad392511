package mapper

import (
	"time"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	tempData := make(map[string]string, len(s.TempProfileData))
	for k, v := range s.TempProfileData {
		if str, ok := v.(string); ok {
			tempData[k] = str
		}
	}

	return &entity.ChatSession{
		Id:                     s.Id,
		SessionToken:           s.SessionToken,
		CompanyId:              s.CompanyId,
		UserProfileId:          s.UserProfileId,
		Status:                 entity.SessionStatus(s.Status),
		ProfileCompleted:       s.ProfileCompleted,
		ProfileCollectionState: entity.ProfileCollectionState(s.ProfileCollectionState),
		TempProfileData:        tempData,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              updatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	tempData := datatypes.JSONMap{}
	for k, v := range s.TempProfileData {
		tempData[k] = v
	}

	return &model.ChatSession{
		Id:                     s.Id,
		SessionToken:           s.SessionToken,
		CompanyId:              s.CompanyId,
		UserProfileId:          s.UserProfileId,
		Status:                 string(s.Status),
		ProfileCompleted:       s.ProfileCompleted,
		ProfileCollectionState: string(s.ProfileCollectionState),
		TempProfileData:        tempData,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              updatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	metadata := map[string]interface{}(msg.Metadata)
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		MessageType:   entity.MessageType(msg.MessageType),
		Content:       msg.Content,
		Metadata:      metadata,
		Timestamp:     msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		MessageType:   string(msg.MessageType),
		Content:       msg.Content,
		Metadata:      datatypes.JSONMap(msg.Metadata),
		Timestamp:     msg.Timestamp,
	}
}

// Profile Mappers

func (m *ChatMapper) UserProfileToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	var lastUsed *time.Time
	if !p.LastUsed.IsZero() {
		t := p.LastUsed
		lastUsed = &t
	}

	return &entity.UserProfile{
		Id:               p.Id,
		CompanyId:        p.CompanyId,
		PersistentUserId: p.PersistentUserId,
		SessionToken:     p.SessionToken,
		Name:             p.Name,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		CountryCode:      p.CountryCode,
		CreatedAt:        p.CreatedAt,
		LastUsed:         lastUsed,
	}
}

func (m *ChatMapper) UserProfileToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	var lastUsed time.Time
	if p.LastUsed != nil {
		lastUsed = *p.LastUsed
	}

	return &model.UserProfile{
		Id:               p.Id,
		CompanyId:        p.CompanyId,
		PersistentUserId: p.PersistentUserId,
		SessionToken:     p.SessionToken,
		Name:             p.Name,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		CountryCode:      p.CountryCode,
		CreatedAt:        p.CreatedAt,
		LastUsed:         lastUsed,
	}
}

// File Mappers

func (m *ChatMapper) UploadedFileToEntity(f *model.UploadedFile) *entity.UploadedFile {
	if f == nil {
		return nil
	}

	return &entity.UploadedFile{
		Id:             f.Id,
		CompanyId:      f.CompanyId,
		ChatSessionId:  f.ChatSessionId,
		UserProfileId:  f.UserProfileId,
		OriginalName:   f.OriginalName,
		Filename:       f.Filename,
		Filepath:       f.Filepath,
		FileSize:       f.FileSize,
		FileType:       f.FileType,
		MessageContext: f.MessageContext,
		UploadedAt:     f.UploadedAt,
	}
}

func (m *ChatMapper) UploadedFileToModel(f *entity.UploadedFile) *model.UploadedFile {
	if f == nil {
		return nil
	}

	return &model.UploadedFile{
		Id:             f.Id,
		CompanyId:      f.CompanyId,
		ChatSessionId:  f.ChatSessionId,
		UserProfileId:  f.UserProfileId,
		OriginalName:   f.OriginalName,
		Filename:       f.Filename,
		Filepath:       f.Filepath,
		FileSize:       f.FileSize,
		FileType:       f.FileType,
		MessageContext: f.MessageContext,
		UploadedAt:     f.UploadedAt,
	}
}
