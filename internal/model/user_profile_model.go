package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyId        string    `gorm:"type:varchar(20);not null;index"`
	PersistentUserId string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	SessionToken     string    `gorm:"type:varchar(100);not null"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Phone            string    `gorm:"type:varchar(20);not null"`
	Email            *string   `gorm:"type:varchar(255)"`
	Address          *string   `gorm:"type:text"`
	CountryCode      string    `gorm:"type:varchar(10);not null;default:'+977'"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	LastUsed         time.Time `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
