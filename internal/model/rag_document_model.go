package model

import (
	"time"

	"github.com/google/uuid"
)

// RAGDocument has no company_id on purpose: the FAQ corpus is a single
// knowledge base shared across all tenants.
type RAGDocument struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChunkId   string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Section   string    `gorm:"type:varchar(100)"`
	Document  string    `gorm:"type:varchar(200)"`
	Page      int       `gorm:"not null;default:0"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RAGDocument) TableName() string {
	return "rag_documents"
}
