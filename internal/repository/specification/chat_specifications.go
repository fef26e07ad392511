package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

type BySessionToken struct {
	SessionToken string
}

func (s BySessionToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_token = ?", s.SessionToken)
}

type ByMessageType struct {
	MessageType string
}

func (s ByMessageType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_type = ?", s.MessageType)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
