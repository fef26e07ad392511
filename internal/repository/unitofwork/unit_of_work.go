package unitofwork

import (
	"context"

	"educonsult-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	UserProfileRepository() contract.UserProfileRepository
	UploadedFileRepository() contract.UploadedFileRepository

	HandoffSessionRepository() contract.HandoffSessionRepository
	SessionTransferRepository() contract.SessionTransferRepository
	AgentRepository() contract.AgentRepository
	AgentActivityRepository() contract.AgentActivityRepository

	RAGDocumentRepository() contract.RAGDocumentRepository
}
