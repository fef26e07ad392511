package contract

import (
	"context"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/repository/specification"
)

type RAGDocumentRepository interface {
	// UpsertByChunkId creates the document or overwrites the existing row
	// carrying the same chunk id.
	UpsertByChunkId(ctx context.Context, doc *entity.RAGDocument) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RAGDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
