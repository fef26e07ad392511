package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageType   string    `gorm:"type:varchar(10);not null"`
	Content       *string   `gorm:"type:text"` // nullable: attachment-only messages
	Metadata      datatypes.JSONMap
	Timestamp     time.Time `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// MessageAttachment joins a chat message to the files it carries.
type MessageAttachment struct {
	ChatMessageId  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UploadedFileId uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (MessageAttachment) TableName() string {
	return "message_attachments"
}
