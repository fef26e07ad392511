package bootstrap

import (
	"context"
	"log"

	"educonsult-be/internal/config"
	"educonsult-be/internal/controller"
	"educonsult-be/internal/handler"
	"educonsult-be/internal/pkg/logger"
	"educonsult-be/internal/pkg/mailer"
	"educonsult-be/internal/repository/memory"
	"educonsult-be/internal/repository/unitofwork"
	"educonsult-be/internal/service"
	"educonsult-be/internal/websocket"
	"educonsult-be/pkg/retrieval"

	pktNats "educonsult-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController   controller.IChatbotController
	HandoffController   controller.IHandoffController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	KnowledgeConsumerService service.IKnowledgeConsumerService

	// WebSockets & Dashboard
	DashboardHandler *handler.DashboardHandler
	WebSocketHub     *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/dashboard.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// In-memory turn locks and retrieval snapshot
	sessionLocks := memory.NewSessionLockRegistry()
	engine := retrieval.NewEngine()

	// 3. Services
	knowledgeService := service.NewKnowledgeService(uowFactory, engine, pubSub, sysLogger)
	knowledgeConsumer := service.NewKnowledgeConsumerService(pubSub, knowledgeService, sysLogger)

	// Warm the retrieval snapshot from whatever the database already holds
	if err := knowledgeService.RefreshSnapshot(context.Background()); err != nil {
		log.Printf("[WARN] Failed to warm knowledge snapshot: %v", err)
	}

	chatbotService := service.NewChatbotService(
		uowFactory,
		sessionLocks,
		engine,
		natsPub,
		cfg.App.BaseURL,
		sysLogger,
	)
	handoffService := service.NewHandoffService(uowFactory, natsPub, emailService, sysLogger)
	uploadService := service.NewUploadService(uowFactory, cfg.App.UploadDir, cfg.App.BaseURL, sysLogger)

	// 3.5 Dashboard Notification System
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger) // Hub implements DashboardDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	dashboardHandler := handler.NewDashboardHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		DashboardHandler:    dashboardHandler,
		WebSocketHub:        wsHub,
		ChatbotController:   controller.NewChatbotController(chatbotService, uploadService),
		HandoffController:   controller.NewHandoffController(handoffService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		KnowledgeConsumerService: knowledgeConsumer,
	}
}
