package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"markethub-be/internal/dto"
	"markethub-be/internal/entity"
	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/repository/memory"
	"markethub-be/pkg/chat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotService_SendMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.chatbot.SendMessage(ctx, &dto.SendChatRequest{Message: "  What stores do you have?  "})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, entity.ChatRoleUser, res.Sent.Role)
	assert.Equal(t, "What stores do you have?", res.Sent.Content)
	assert.Equal(t, entity.ChatRoleBot, res.Reply.Role)
	assert.Contains(t, res.Reply.Content, "MarketHub has 5 stores")
	assert.False(t, res.Reply.Timestamp.Before(res.Sent.Timestamp))

	conv, err := f.chatbot.CurrentConversation(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.SessionId, conv.Id)
	assert.Len(t, conv.Messages, 2)
}

func TestChatbotService_UsesCurrentStoreAndCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.chatbot.SendMessage(ctx, &dto.SendChatRequest{Message: "tell me about this shop", StoreId: intPtr(2)})
	require.NoError(t, err)
	assert.Contains(t, res.Reply.Content, "You're browsing StyleLoft Fashion")

	_, err = f.cart.AddItem(ctx, &dto.AddToCartRequest{ProductId: json.Number("6"), Quantity: intPtr(2)})
	require.NoError(t, err)

	res, err = f.chatbot.SendMessage(ctx, &dto.SendChatRequest{Message: "what's in my cart"})
	require.NoError(t, err)
	assert.Contains(t, res.Reply.Content, "You have 2 items in your cart")
}

func TestChatbotService_BlankMessage(t *testing.T) {
	f := newFixture(t)

	_, err := f.chatbot.SendMessage(context.Background(), &dto.SendChatRequest{Message: "   "})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	assert.Empty(t, f.chatbot.AllConversations(context.Background()))
}

func TestChatbotService_Sessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.chatbot.StartSession(ctx)
	_, err := f.chatbot.SendMessage(ctx, &dto.SendChatRequest{Message: "hello"})
	require.NoError(t, err)

	second := f.chatbot.StartSession(ctx)
	assert.NotEqual(t, first.Id, second.Id)

	all := f.chatbot.AllConversations(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, first.Id, all[0].Id)
	assert.Len(t, all[0].Messages, 2)

	f.chatbot.ClearSession(ctx, first.Id)
	all = f.chatbot.AllConversations(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, second.Id, all[0].Id)

	f.chatbot.ClearSession(ctx, "")
	conv, err := f.chatbot.CurrentConversation(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, second.Id, conv.Id)
	assert.Empty(t, conv.Messages)
}

type unavailableCatalog struct {
	ICatalogService
}

func (unavailableCatalog) Stores(context.Context) ([]entity.Store, error) {
	return nil, errors.New("catalog unavailable")
}

func TestChatbotService_ContextFailureApologizes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	engine := chat.NewEngine(memory.NewSessionRepository(0), chat.WithLatency(0, 0), chat.WithSeed(1))
	svc := NewChatbotService(engine, unavailableCatalog{f.catalog}, f.cart, logger.NewNopLogger())

	res, err := svc.SendMessage(ctx, &dto.SendChatRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Sent.Content)
	assert.Equal(t, entity.ChatRoleBot, res.Reply.Role)
	assert.Equal(t, chat.ApologyMessage, res.Reply.Content)

	conv, err := svc.CurrentConversation(ctx)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, chat.ApologyMessage, conv.Messages[1].Content)
}
