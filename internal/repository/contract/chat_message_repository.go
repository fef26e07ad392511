package contract

import (
	"context"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	AttachFiles(ctx context.Context, messageId uuid.UUID, fileIds []uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
