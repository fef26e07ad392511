package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageRequest struct {
	Message       string      `json:"message"`
	SessionId     string      `json:"session_id"`
	Context       string      `json:"context"`
	CompanyId     string      `json:"company_id"`
	AttachmentIds []uuid.UUID `json:"attachment_ids,omitempty" validate:"max=10"`
}

type ChatMessageDTO struct {
	Id          uuid.UUID              `json:"id"`
	MessageType string                 `json:"message_type"`
	Content     *string                `json:"content"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

type ChatMessageResponse struct {
	Response    string            `json:"response"`
	Suggestions []string          `json:"suggestions"`
	Type        string            `json:"type"`
	SessionId   string            `json:"session_id"`
	Escalated   bool              `json:"escalated,omitempty"`
	Collecting  string            `json:"collecting,omitempty"`
	UserMessage *ChatMessageDTO   `json:"user_message,omitempty"`
	Attachments []UploadedFileDTO `json:"attachments,omitempty"`
}

type UserProfileDTO struct {
	Id               uuid.UUID `json:"id"`
	PersistentUserId string    `json:"persistent_user_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	Address          *string   `json:"address"`
	CountryCode      string    `json:"country_code"`
	CreatedAt        time.Time `json:"created_at"`
}

type SessionStatusResponse struct {
	SessionId   string          `json:"session_id"`
	Status      string          `json:"status"`
	IsEscalated bool            `json:"is_escalated"`
	UserProfile *UserProfileDTO `json:"user_profile"`
}

type PhoneValidationRequest struct {
	Phone       string `json:"phone" validate:"required"`
	CountryCode string `json:"country_code" validate:"required"`
}

type PhoneValidationResponse struct {
	Valid    bool    `json:"valid"`
	Message  string  `json:"message"`
	Provider *string `json:"provider"`
}
