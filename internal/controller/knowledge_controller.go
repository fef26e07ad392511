package controller

import (
	"educonsult-be/internal/dto"
	"educonsult-be/internal/pkg/serverutils"
	"educonsult-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Load(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("load", c.Load)
	h.Get("search", c.Search)
}

func (c *knowledgeController) Load(ctx *fiber.Ctx) error {
	var req dto.LoadKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.knowledgeService.Load(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Knowledge base loaded", res))
}

func (c *knowledgeController) Search(ctx *fiber.Ctx) error {
	req := dto.SearchKnowledgeRequest{
		Query: ctx.Query("query"),
		K:     ctx.QueryInt("k"),
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.knowledgeService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Knowledge search results", res))
}
