package model

import (
	"time"

	"github.com/google/uuid"
)

type UploadedFile struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyId      string     `gorm:"type:varchar(20);not null;index"`
	ChatSessionId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserProfileId  *uuid.UUID `gorm:"type:uuid"`
	OriginalName   string     `gorm:"type:varchar(255);not null"`
	Filename       string     `gorm:"type:varchar(255);not null"`
	Filepath       string     `gorm:"type:varchar(500);not null"`
	FileSize       int64      `gorm:"not null"`
	FileType       string     `gorm:"type:varchar(10);not null"`
	MessageContext *string    `gorm:"type:text"`
	UploadedAt     time.Time  `gorm:"autoCreateTime"`
}

func (UploadedFile) TableName() string {
	return "uploaded_files"
}
