package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeUser  MessageType = "user"
	MessageTypeBot   MessageType = "bot"
	MessageTypeAgent MessageType = "agent"
)

// ChatMessage is one turn in a session transcript. Messages are append
// only and ordered by Timestamp ascending.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	MessageType   MessageType
	Content       *string // nil for attachment-only messages
	Metadata      map[string]interface{}
	AttachmentIds []uuid.UUID
	Timestamp     time.Time
}
