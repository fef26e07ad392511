package handler

import (
	"os"

	"educonsult-be/internal/pkg/logger"
	internalWS "educonsult-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DashboardHandler upgrades agent dashboard connections to websockets
// so handoff events reach the consoles in real time.
type DashboardHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewDashboardHandler(hub *internalWS.Hub, log logger.ILogger) *DashboardHandler {
	return &DashboardHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from agent dashboards.
func (h *DashboardHandler) ServeWs(c *fiber.Ctx) error {
	// 1. Get Token source
	// Priority 1: Query Param (Browser standard)
	tokenStr := c.Query("token")

	// Priority 2: Authorization Header (Tooling/Non-browser standard)
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	// 2. Parse JWT with the same secret the REST middleware uses
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		h.logger.Warn("DashboardHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	// 3. Extract the agent id from the claims
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	agentIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	agentID, err := uuid.Parse(agentIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid agent ID format in token"})
	}

	// Upgrade via Fiber WebSocket Middleware
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("DashboardHandler", "Starting WebSocket session", map[string]interface{}{"agent_id": agentID})
			internalWS.ServeWs(h.hub, conn, agentID)
			h.logger.Info("DashboardHandler", "WebSocket session ended", map[string]interface{}{"agent_id": agentID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the dashboard websocket route.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/agent", h.ServeWs)
}
