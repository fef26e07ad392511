package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"educonsult-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DashboardEvent is what agent dashboards receive over the socket.
type DashboardEvent struct {
	Event        string                 `json:"event"`
	SessionToken string                 `json:"session_token,omitempty"`
	CompanyId    string                 `json:"company_id,omitempty"`
	Payload      map[string]interface{} `json:"payload,omitempty"`
	OccurredAt   time.Time              `json:"occurred_at"`
}

type Hub struct {
	// Registered clients map: AgentID -> List of Clients (multi-device)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.AgentID] = append(h.clients[client.AgentID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Agent client registered", map[string]interface{}{"agent_id": client.AgentID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.AgentID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.AgentID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.AgentID]) == 0 {
					delete(h.clients, client.AgentID)
					h.logger.Info("Hub", "Agent client completely unregistered", map[string]interface{}{"agent_id": client.AgentID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a dashboard event to ALL connected agents. Used for
// new escalations landing in the unassigned queue.
func (h *Hub) Broadcast(event DashboardEvent) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "dashboard_event",
		"data": event,
	})

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				close(client.Send)
				h.unregister <- client
			}
		}
	}
	h.mu.RUnlock()

	// Publish to Redis for other instances
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_agent_id": "*", // Wildcard for broadcast
			"message":         data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "agent_events", jsonPayload)
	}
}

// Send delivers a dashboard event to one agent's connected devices.
func (h *Hub) Send(agentID uuid.UUID, event DashboardEvent) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "dashboard_event",
		"data": event,
	})

	h.mu.RLock()
	clients, localFound := h.clients[agentID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"agent_id": agentID})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	// Always publish for multi-instance and multi-device delivery
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_agent_id": agentID.String(),
			"message":         data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "agent_events", jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to "agent_events"; each delivers to the
	// agents it holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "agent_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetAgentID string          `json:"target_agent_id"`
			Message       json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetAgentID == "*" {
			h.mu.RLock()
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						close(client.Send)
						h.unregister <- client
					}
				}
			}
			h.mu.RUnlock()
			continue
		}

		aid, err := uuid.Parse(payload.TargetAgentID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[aid]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}
