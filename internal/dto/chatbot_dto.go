package dto

import (
	"time"

	"markethub-be/internal/entity"
)

type ChatMessageResponse struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSessionResponse struct {
	Id           string                `json:"id"`
	Messages     []ChatMessageResponse `json:"messages"`
	StartTime    time.Time             `json:"start_time"`
	LastActivity time.Time             `json:"last_activity"`
}

type CreateSessionResponse struct {
	Id string `json:"id"`
}

// SendChatRequest: StoreId is the store the shopper is currently browsing, if any.
type SendChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
	StoreId *int   `json:"store_id"`
}

type SendChatResponse struct {
	SessionId string              `json:"session_id"`
	Sent      ChatMessageResponse `json:"sent"`
	Reply     ChatMessageResponse `json:"reply"`
}

func NewChatMessageResponse(m entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func NewChatSessionResponse(s entity.ChatSession) ChatSessionResponse {
	messages := make([]ChatMessageResponse, 0, len(s.Messages))
	for _, m := range s.Messages {
		messages = append(messages, NewChatMessageResponse(m))
	}
	return ChatSessionResponse{
		Id:           s.Id,
		Messages:     messages,
		StartTime:    s.StartTime,
		LastActivity: s.LastActivity,
	}
}
