package mapper

import (
	"educonsult-be/internal/entity"
	"educonsult-be/internal/model"
)

type RAGMapper struct{}

func NewRAGMapper() *RAGMapper {
	return &RAGMapper{}
}

func (m *RAGMapper) RAGDocumentToEntity(d *model.RAGDocument) *entity.RAGDocument {
	if d == nil {
		return nil
	}

	return &entity.RAGDocument{
		Id:        d.Id,
		ChunkId:   d.ChunkId,
		Question:  d.Question,
		Answer:    d.Answer,
		Section:   d.Section,
		Document:  d.Document,
		Page:      d.Page,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
	}
}

func (m *RAGMapper) RAGDocumentToModel(d *entity.RAGDocument) *model.RAGDocument {
	if d == nil {
		return nil
	}

	return &model.RAGDocument{
		Id:        d.Id,
		ChunkId:   d.ChunkId,
		Question:  d.Question,
		Answer:    d.Answer,
		Section:   d.Section,
		Document:  d.Document,
		Page:      d.Page,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
	}
}
