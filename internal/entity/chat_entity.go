package entity

import "time"

const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

type ChatMessage struct {
	Id        string
	Role      string
	Content   string
	Timestamp time.Time
}

type ChatSession struct {
	Id           string
	Messages     []ChatMessage
	StartTime    time.Time
	LastActivity time.Time
}

func (s ChatSession) Clone() ChatSession {
	out := s
	out.Messages = append([]ChatMessage(nil), s.Messages...)
	return out
}
