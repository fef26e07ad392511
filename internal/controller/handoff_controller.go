package controller

import (
	"strconv"

	"educonsult-be/internal/dto"
	"educonsult-be/internal/pkg/serverutils"
	"educonsult-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHandoffController interface {
	RegisterRoutes(r fiber.Router)
	Escalate(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	AgentSessions(ctx *fiber.Ctx) error
	SessionMessages(ctx *fiber.Ctx) error
	Activities(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type handoffController struct {
	handoffService service.IHandoffService
}

func NewHandoffController(handoffService service.IHandoffService) IHandoffController {
	return &handoffController{
		handoffService: handoffService,
	}
}

func (c *handoffController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/handoff/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("escalate", c.Escalate)
	h.Post("assign", c.Assign)
	h.Post("resolve", c.Resolve)
	h.Post("send-message", c.SendMessage)
	h.Get("agent/sessions", c.AgentSessions)
	h.Get("agent/sessions/:token/messages", c.SessionMessages)
	h.Get("activities", c.Activities)
	h.Get("dashboard", c.Dashboard)
}

func callerAgentId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	agentId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Caller is not an agent")
	}
	return agentId, nil
}

func (c *handoffController) Escalate(ctx *fiber.Ctx) error {
	var req dto.EscalateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	companyId, err := serverutils.ResolveTenantScope(ctx, req.CompanyId)
	if err != nil {
		return err
	}

	res, err := c.handoffService.Escalate(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session escalated successfully", res))
}

func (c *handoffController) Assign(ctx *fiber.Ctx) error {
	var req dto.AssignSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	companyId, err := serverutils.ResolveTenantScope(ctx, "")
	if err != nil {
		return err
	}

	var performedBy *uuid.UUID
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(userIdStr); err == nil {
			performedBy = &id
		}
	}

	res, err := c.handoffService.Assign(ctx.Context(), companyId, performedBy, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session assigned successfully", res))
}

func (c *handoffController) Resolve(ctx *fiber.Ctx) error {
	var req dto.ResolveSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	companyId, err := serverutils.ResolveTenantScope(ctx, "")
	if err != nil {
		return err
	}

	res, err := c.handoffService.Resolve(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session resolved successfully", res))
}

func (c *handoffController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendAgentMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	companyId, err := serverutils.ResolveTenantScope(ctx, "")
	if err != nil {
		return err
	}

	agentId, err := callerAgentId(ctx)
	if err != nil {
		return err
	}

	res, err := c.handoffService.SendAgentMessage(ctx.Context(), companyId, agentId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent successfully", res))
}

func (c *handoffController) AgentSessions(ctx *fiber.Ctx) error {
	companyId, err := serverutils.ResolveTenantScope(ctx, "")
	if err != nil {
		return err
	}

	agentId, err := callerAgentId(ctx)
	if err != nil {
		return err
	}

	query := dto.AgentSessionsQuery{
		Status:   ctx.Query("status"),
		Priority: ctx.Query("priority"),
		Page:     ctx.QueryInt("page", 1),
		PerPage:  ctx.QueryInt("per_page", 10),
	}

	res, err := c.handoffService.AgentSessions(ctx.Context(), companyId, agentId, &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Agent sessions", res))
}

func (c *handoffController) SessionMessages(ctx *fiber.Ctx) error {
	companyId, err := serverutils.ResolveTenantScope(ctx, "")
	if err != nil {
		return err
	}

	agentId, err := callerAgentId(ctx)
	if err != nil {
		return err
	}

	res, err := c.handoffService.SessionMessages(ctx.Context(), companyId, agentId, ctx.Params("token"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session messages", res))
}

func (c *handoffController) Activities(ctx *fiber.Ctx) error {
	companyId, err := serverutils.ResolveTenantScope(ctx, "")
	if err != nil {
		return err
	}

	var agentId *uuid.UUID
	if raw := ctx.Query("agent_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid agent_id"))
		}
		agentId = &id
	}

	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))

	res, err := c.handoffService.Activities(ctx.Context(), companyId, agentId, ctx.Query("activity_type"), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Agent activities", res))
}

func (c *handoffController) Dashboard(ctx *fiber.Ctx) error {
	companyId, err := serverutils.ResolveTenantScope(ctx, "")
	if err != nil {
		return err
	}

	agentId, err := callerAgentId(ctx)
	if err != nil {
		return err
	}

	res, err := c.handoffService.Dashboard(ctx.Context(), companyId, agentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}
