package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatSession struct {
	Id                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionToken           string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_chat_sessions_company_token"`
	CompanyId              string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_chat_sessions_company_token"` // Tenant isolation key
	UserProfileId          *uuid.UUID `gorm:"type:uuid;index"`
	Status                 string     `gorm:"type:varchar(20);not null;default:active"`
	ProfileCompleted       bool       `gorm:"not null;default:false"`
	ProfileCollectionState string     `gorm:"type:varchar(20);not null;default:name"`
	TempProfileData        datatypes.JSONMap
	CreatedAt              time.Time `gorm:"autoCreateTime"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
