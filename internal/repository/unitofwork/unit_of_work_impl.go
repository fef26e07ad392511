package unitofwork

import (
	"context"
	"fmt"

	"educonsult-be/internal/repository/contract"
	"educonsult-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // the active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserProfileRepository() contract.UserProfileRepository {
	return implementation.NewUserProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UploadedFileRepository() contract.UploadedFileRepository {
	return implementation.NewUploadedFileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HandoffSessionRepository() contract.HandoffSessionRepository {
	return implementation.NewHandoffSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SessionTransferRepository() contract.SessionTransferRepository {
	return implementation.NewSessionTransferRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AgentRepository() contract.AgentRepository {
	return implementation.NewAgentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AgentActivityRepository() contract.AgentActivityRepository {
	return implementation.NewAgentActivityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RAGDocumentRepository() contract.RAGDocumentRepository {
	return implementation.NewRAGDocumentRepository(u.getDB())
}
