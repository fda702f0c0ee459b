package controller

import (
	"markethub-be/internal/dto"
	"markethub-be/internal/pkg/serverutils"
	"markethub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	CurrentSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Post("session", c.CreateSession)
	h.Get("session", c.CurrentSession)
	h.Delete("session", c.DeleteSession)
	h.Get("sessions", c.GetAllSessions)
	h.Post("messages", c.SendChat)
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	res := c.service.StartSession(ctx.Context())
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatbotController) CurrentSession(ctx *fiber.Ctx) error {
	res, err := c.service.CurrentConversation(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatbotController) GetAllSessions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get all sessions", c.service.AllConversations(ctx.Context())))
}

// DeleteSession clears the current conversation, or the one named by ?session_id=.
func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	c.service.ClearSession(ctx.Context(), ctx.Query("session_id"))
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}
