package service

import (
	"context"
	"fmt"
	"strings"

	"markethub-be/internal/dto"
	"markethub-be/internal/entity"
	"markethub-be/internal/pkg/logger"
	"markethub-be/pkg/chat"
)

// IChatbotService drives the shopping assistant for the single storefront visitor.
type IChatbotService interface {
	StartSession(ctx context.Context) *dto.CreateSessionResponse
	CurrentConversation(ctx context.Context) (*dto.ChatSessionResponse, error)
	AllConversations(ctx context.Context) []dto.ChatSessionResponse
	ClearSession(ctx context.Context, sessionId string)
	SendMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatbotService struct {
	engine  *chat.Engine
	catalog ICatalogService
	cart    ICartService
	logger  logger.ILogger
}

func NewChatbotService(engine *chat.Engine, catalog ICatalogService, cart ICartService, log logger.ILogger) IChatbotService {
	return &chatbotService{
		engine:  engine,
		catalog: catalog,
		cart:    cart,
		logger:  log,
	}
}

func (s *chatbotService) StartSession(ctx context.Context) *dto.CreateSessionResponse {
	id := s.engine.StartSession()
	s.logger.Info("CHATBOT", "Session started", map[string]interface{}{"session_id": id})
	return &dto.CreateSessionResponse{Id: id}
}

func (s *chatbotService) CurrentConversation(ctx context.Context) (*dto.ChatSessionResponse, error) {
	session, ok := s.engine.GetConversation(s.engine.GetCurrentSession())
	if !ok {
		return nil, fmt.Errorf("chat session: %w", entity.ErrNotFound)
	}
	res := dto.NewChatSessionResponse(*session)
	return &res, nil
}

func (s *chatbotService) AllConversations(ctx context.Context) []dto.ChatSessionResponse {
	sessions := s.engine.AllConversations()
	out := make([]dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, dto.NewChatSessionResponse(session))
	}
	return out
}

func (s *chatbotService) ClearSession(ctx context.Context, sessionId string) {
	s.engine.ClearConversation(sessionId)
	s.logger.Info("CHATBOT", "Session cleared", map[string]interface{}{"session_id": sessionId})
}

// SendMessage records the user's text, waits for the assistant and records its reply.
func (s *chatbotService) SendMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, chat.ErrEmptyMessage
	}

	cc, ctxErr := s.buildContext(ctx, req.StoreId)

	sessionId := s.engine.GetCurrentSession()
	sent := s.engine.AddMessage(entity.ChatRoleUser, text)

	// A context failure still gets a bot turn, never an error.
	reply := chat.ApologyMessage
	if ctxErr != nil {
		s.logger.Error("CHATBOT", "Failed to build chat context", map[string]interface{}{
			"session_id": sessionId,
			"error":      ctxErr.Error(),
		})
	} else {
		cc.UserHistory = append(cc.UserHistory, text)
		reply = s.engine.GenerateResponse(text, cc)
	}
	answer := s.engine.AddMessage(entity.ChatRoleBot, reply)

	s.logger.Debug("CHATBOT", "Replied", map[string]interface{}{
		"session_id": sessionId,
		"category":   string(chat.Classify(text)),
	})

	return &dto.SendChatResponse{
		SessionId: sessionId,
		Sent:      dto.NewChatMessageResponse(sent),
		Reply:     dto.NewChatMessageResponse(answer),
	}, nil
}

func (s *chatbotService) buildContext(ctx context.Context, storeId *int) (chat.Context, error) {
	stores, err := s.catalog.Stores(ctx)
	if err != nil {
		return chat.Context{}, err
	}

	cc := chat.Context{Stores: stores, CartCount: s.cart.Count()}
	if storeId != nil {
		for i := range stores {
			if stores[i].Id == *storeId {
				cc.CurrentStore = &stores[i]
				break
			}
		}
	}

	if session, ok := s.engine.GetConversation(""); ok {
		for _, m := range session.Messages {
			if m.Role == entity.ChatRoleUser {
				cc.UserHistory = append(cc.UserHistory, m.Content)
			}
		}
	}
	return cc, nil
}
