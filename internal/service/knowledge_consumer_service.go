package service

import (
	"context"

	"educonsult-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IKnowledgeConsumerService interface {
	Consume(ctx context.Context) error
}

// knowledgeConsumerService refreshes the retrieval snapshot whenever a
// reload notification lands on the in-process bus.
type knowledgeConsumerService struct {
	pubSub           *gochannel.GoChannel
	knowledgeService IKnowledgeService
	logger           logger.ILogger
}

func NewKnowledgeConsumerService(
	pubSub *gochannel.GoChannel,
	knowledgeService IKnowledgeService,
	log logger.ILogger,
) IKnowledgeConsumerService {
	return &knowledgeConsumerService{
		pubSub:           pubSub,
		knowledgeService: knowledgeService,
		logger:           log,
	}
}

func (cs *knowledgeConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, TopicKnowledgeReloaded)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *knowledgeConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	if err := cs.knowledgeService.RefreshSnapshot(ctx); err != nil {
		cs.logger.Error("KnowledgeConsumer", "Failed to refresh retrieval snapshot", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	msg.Ack()
}
