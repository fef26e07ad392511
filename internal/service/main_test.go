package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/model"
	"educonsult-be/internal/repository/memory"
	"educonsult-be/internal/repository/unitofwork"
	"educonsult-be/pkg/retrieval"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{}) {}
func (nopLogger) Warn(module, message string, details map[string]interface{}) {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// keep the shared in-memory database alive for the whole test
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.MessageAttachment{},
		&model.UserProfile{},
		&model.UploadedFile{},
		&model.Agent{},
		&model.AgentActivity{},
		&model.HandoffSession{},
		&model.SessionTransfer{},
		&model.RAGDocument{},
	))

	return db
}

func newChatbotFixture(t *testing.T, docs ...retrieval.Document) (IChatbotService, unitofwork.RepositoryFactory) {
	t.Helper()

	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	engine := retrieval.NewEngine()
	engine.Replace(docs)

	svc := NewChatbotService(uowFactory, memory.NewSessionLockRegistry(), engine, nil, "http://localhost:3000", nopLogger{})
	return svc, uowFactory
}

func newHandoffFixture(t *testing.T) (IHandoffService, unitofwork.RepositoryFactory) {
	t.Helper()

	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := NewHandoffService(uowFactory, nil, nil, nopLogger{})
	return svc, uowFactory
}

func seedAgent(t *testing.T, uowFactory unitofwork.RepositoryFactory, companyId, name string) *entity.Agent {
	t.Helper()

	agent := &entity.Agent{
		Id:        uuid.New(),
		CompanyId: companyId,
		Name:      name,
		Email:     uuid.NewString() + "@example.com",
		Status:    entity.AgentStatusAvailable,
		IsActive:  true,
	}
	uow := uowFactory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.AgentRepository().Create(context.Background(), agent))
	return agent
}

// seedSession creates a session past profile collection, with the
// finalized profile row it implies.
func seedSession(t *testing.T, uowFactory unitofwork.RepositoryFactory, companyId, token string) *entity.ChatSession {
	t.Helper()

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	profile := &entity.UserProfile{
		Id:               uuid.New(),
		CompanyId:        companyId,
		PersistentUserId: newPersistentUserId(),
		SessionToken:     token,
		Name:             "Test Visitor",
		Phone:            "+977-9841000000",
		CountryCode:      "+977",
		CreatedAt:        time.Now(),
	}
	require.NoError(t, uow.UserProfileRepository().Create(ctx, profile))

	session := &entity.ChatSession{
		Id:                     uuid.New(),
		SessionToken:           token,
		CompanyId:              companyId,
		UserProfileId:          &profile.Id,
		Status:                 entity.SessionStatusActive,
		ProfileCollectionState: entity.CollectionComplete,
		ProfileCompleted:       true,
		TempProfileData:        map[string]string{},
	}
	require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))
	return session
}
