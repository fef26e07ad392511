package service

import (
	"context"
	"strings"
	"time"

	"educonsult-be/internal/pkg/logger"
	"educonsult-be/internal/websocket"
	"educonsult-be/pkg/events"
	pktNats "educonsult-be/pkg/nats"

	"github.com/google/uuid"
)

// DashboardDelivery defines how real-time updates reach agent
// dashboards. Implemented by the WebSocket Hub.
type DashboardDelivery interface {
	Send(agentID uuid.UUID, event websocket.DashboardEvent)
	Broadcast(event websocket.DashboardEvent)
}

// NotificationService bridges handoff lifecycle events from NATS to
// connected agent dashboards.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   DashboardDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery DashboardDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("handoff.>", "dashboard-notifier", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to handoff.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects carry the stream prefix; strip it back to the code.
	typeCode := strings.TrimPrefix(event.EventType(), "handoff.")

	payload := event.Payload()
	sessionToken, _ := payload["session_token"].(string)
	companyId, _ := payload["company_id"].(string)

	dashboardEvent := websocket.DashboardEvent{
		Event:        typeCode,
		SessionToken: sessionToken,
		CompanyId:    companyId,
		Payload:      payload,
		OccurredAt:   time.Now(),
	}

	// Escalations land in the shared unassigned queue; everything else
	// targets the agent named in the event.
	if typeCode == events.TypeSessionEscalated {
		s.delivery.Broadcast(dashboardEvent)
		return nil
	}

	agentIdStr, _ := payload["agent_id"].(string)
	if agentIdStr == "" {
		s.delivery.Broadcast(dashboardEvent)
		return nil
	}

	agentId, err := uuid.Parse(agentIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Event carries invalid agent id", map[string]interface{}{
			"type":     typeCode,
			"agent_id": agentIdStr,
		})
		return nil
	}

	s.delivery.Send(agentId, dashboardEvent)
	return nil
}
