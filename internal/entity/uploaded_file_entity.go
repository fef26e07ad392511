package entity

import (
	"time"

	"github.com/google/uuid"
)

type UploadedFile struct {
	Id             uuid.UUID
	CompanyId      string
	ChatSessionId  uuid.UUID
	UserProfileId  *uuid.UUID
	OriginalName   string
	Filename       string
	Filepath       string
	FileSize       int64
	FileType       string
	MessageContext *string
	UploadedAt     time.Time
}
