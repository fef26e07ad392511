package entity

import (
	"time"

	"github.com/google/uuid"
)

// RAGDocument is one knowledge-base record. The corpus is shared by all
// tenants and intentionally carries no company scope.
type RAGDocument struct {
	Id        uuid.UUID
	ChunkId   string
	Question  string
	Answer    string
	Section   string
	Document  string
	Page      int
	IsActive  bool
	CreatedAt time.Time
}
