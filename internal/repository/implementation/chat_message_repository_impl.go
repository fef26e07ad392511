package implementation

import (
	"context"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/mapper"
	"educonsult-be/internal/model"
	"educonsult-be/internal/repository/contract"
	"educonsult-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	m := r.mapper.ChatMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	attachmentIds := message.AttachmentIds
	*message = *r.mapper.ChatMessageToEntity(m)
	message.AttachmentIds = attachmentIds
	return nil
}

func (r *ChatMessageRepositoryImpl) AttachFiles(ctx context.Context, messageId uuid.UUID, fileIds []uuid.UUID) error {
	if len(fileIds) == 0 {
		return nil
	}
	rows := make([]model.MessageAttachment, 0, len(fileIds))
	for _, fileId := range fileIds {
		rows = append(rows, model.MessageAttachment{
			ChatMessageId:  messageId,
			UploadedFileId: fileId,
		})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChatMessageToEntity(m)
		entities[i].AttachmentIds = r.loadAttachmentIds(ctx, m.Id)
	}
	return entities, nil
}

func (r *ChatMessageRepositoryImpl) loadAttachmentIds(ctx context.Context, messageId uuid.UUID) []uuid.UUID {
	var rows []model.MessageAttachment
	if err := r.db.WithContext(ctx).Where("chat_message_id = ?", messageId).Find(&rows).Error; err != nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UploadedFileId)
	}
	return ids
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatMessageRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("chat_session_id = ?", sessionId).Delete(&model.ChatMessage{}).Error
}
