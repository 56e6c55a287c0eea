package services

import (
	"context"

	"github.com/joshua-takyi/skillswap/internal/models"
)

type MessageService struct {
	messages models.MessageRepo
}

func NewMessageService(messages models.MessageRepo) *MessageService {
	return &MessageService{
		messages: messages,
	}
}

func (ms *MessageService) Send(ctx context.Context, message *models.Message) (*models.Message, error) {
	message.Sanitize()
	if err := message.ValidateMessage(); err != nil {
		return nil, err
	}
	return ms.messages.CreateMessage(ctx, message)
}

func (ms *MessageService) Conversation(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	return ms.messages.GetConversation(ctx, userA, userB)
}
