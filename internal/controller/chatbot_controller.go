package controller

import (
	"educonsult-be/internal/dto"
	"educonsult-be/internal/pkg/serverutils"
	"educonsult-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	SessionStatus(ctx *fiber.Ctx) error
	CountryCodes(ctx *fiber.Ctx) error
	ValidatePhone(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
	uploadService  service.IUploadService
}

func NewChatbotController(chatbotService service.IChatbotService, uploadService service.IUploadService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
		uploadService:  uploadService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	// Visitor endpoints; tenant scope comes from the payload or,
	// for agent callers, from the token.
	h.Post("message", c.SendMessage)
	h.Post("upload", c.Upload)
	h.Get("session-status", c.SessionStatus)
	h.Get("country-codes", c.CountryCodes)
	h.Post("validate-phone", c.ValidatePhone)
}

func (c *chatbotController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.ChatMessageRequest
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

	res, err := c.chatbotService.SubmitTurn(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *chatbotController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil || len(form.File["file"]) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "File is required"))
	}

	sessionToken := ctx.FormValue("session_id")
	if sessionToken == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "session_id is required"))
	}

	companyId, err := serverutils.ResolveTenantScope(ctx, ctx.FormValue("company_id"))
	if err != nil {
		return err
	}

	res := dto.UploadFileResponse{
		Files:     make([]dto.UploadedFileDTO, 0, len(form.File["file"])),
		SessionId: sessionToken,
	}
	for _, fileHeader := range form.File["file"] {
		stored, err := c.uploadService.SaveUpload(ctx.Context(), companyId, sessionToken, ctx.FormValue("message_context"), fileHeader)
		if err != nil {
			return err
		}
		res.Files = append(res.Files, *stored)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("File uploaded successfully", res))
}

func (c *chatbotController) SessionStatus(ctx *fiber.Ctx) error {
	sessionToken := ctx.Query("session_id")
	if sessionToken == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "session_id is required"))
	}

	companyId, err := serverutils.ResolveTenantScope(ctx, ctx.Query("company_id"))
	if err != nil {
		return err
	}

	res, err := c.chatbotService.SessionStatus(ctx.Context(), companyId, sessionToken)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session status", res))
}

func (c *chatbotController) CountryCodes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Country codes", c.chatbotService.CountryCodes()))
}

func (c *chatbotController) ValidatePhone(ctx *fiber.Ctx) error {
	var req dto.PhoneValidationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Phone validation result", c.chatbotService.ValidatePhone(&req)))
}
