package model

import (
	"time"

	"github.com/google/uuid"
)

type Agent struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyId      string    `gorm:"type:varchar(20);not null;index"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone          string    `gorm:"type:varchar(20)"`
	Specialization string    `gorm:"type:varchar(200)"`
	Status         string    `gorm:"type:varchar(20);not null;default:OFFLINE"`
	LastActive     *time.Time
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Agent) TableName() string {
	return "agents"
}
