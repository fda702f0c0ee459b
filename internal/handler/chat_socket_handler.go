package handler

import (
	"bytes"
	"context"
	"encoding/json"

	"markethub-be/internal/dto"
	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/pkg/serverutils"
	"markethub-be/internal/service"
	internalWS "markethub-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const (
	MessageTypeChatReply = "chat_reply"
	MessageTypeError     = "error"
)

// ChatSocketHandler serves /ws/chat: the chat pipeline over a websocket, plus
// whatever the hub broadcasts (order and catalog notifications).
type ChatSocketHandler struct {
	chatbot service.IChatbotService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewChatSocketHandler(chatbot service.IChatbotService, hub *internalWS.Hub, log logger.ILogger) *ChatSocketHandler {
	return &ChatSocketHandler{
		chatbot: chatbot,
		hub:     hub,
		logger:  log,
	}
}

func (h *ChatSocketHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/ws/chat", h.ServeWs)
}

// ServeWs upgrades the request and hands the connection to the hub.
func (h *ChatSocketHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatSocketHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.hub, conn, h.HandleMessage)
		h.logger.Info("ChatSocketHandler", "WebSocket session ended", nil)
	})(c)
}

// HandleMessage accepts either a JSON SendChatRequest or bare text.
func (h *ChatSocketHandler) HandleMessage(ctx context.Context, payload []byte) (string, interface{}) {
	var req dto.SendChatRequest
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &req); err != nil {
			return MessageTypeError, errorFrame(fiber.StatusBadRequest, "Invalid message format", nil)
		}
	} else {
		req.Message = string(trimmed)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		code, msg := serverutils.StatusFor(err)
		var fields map[string]string
		if verr, ok := err.(*serverutils.ValidationError); ok {
			fields = verr.Fields
		}
		return MessageTypeError, errorFrame(code, msg, fields)
	}

	res, err := h.chatbot.SendMessage(ctx, &req)
	if err != nil {
		code, msg := serverutils.StatusFor(err)
		if code >= fiber.StatusInternalServerError {
			h.logger.Error("ChatSocketHandler", "Chat failed", map[string]interface{}{"error": err.Error()})
		}
		return MessageTypeError, errorFrame(code, msg, nil)
	}
	return MessageTypeChatReply, res
}

func errorFrame(code int, message string, fields map[string]string) *serverutils.BaseResponse[any] {
	resp := serverutils.ErrorResponse(code, message)
	if fields != nil {
		resp.Data = fields
	}
	return resp
}
