package service

import (
	"context"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

// historyLimit caps how many prior turns are forwarded to a provider,
// keeping token usage bounded.
const historyLimit = 10

type ChatService struct {
	dispatch *DispatchService
	logger   *zap.Logger
}

func NewChatService(dispatch *DispatchService, logger *zap.Logger) *ChatService {
	return &ChatService{
		dispatch: dispatch,
		logger:   logger,
	}
}

// Chat appends the new user message to the trimmed history and generates a
// reply through the provider chain.
func (s *ChatService) Chat(ctx context.Context, message string, history []models.Turn) (string, error) {
	conv := buildConversation(message, history)
	return s.dispatch.Generate(ctx, conv)
}

// buildConversation drops history turns missing a role or content, keeps
// the last historyLimit of what remains, and appends the user message.
func buildConversation(message string, history []models.Turn) []models.Turn {
	valid := make([]models.Turn, 0, len(history))
	for _, turn := range history {
		if turn.Role == "" || turn.Content == "" {
			continue
		}
		valid = append(valid, turn)
	}

	if len(valid) > historyLimit {
		valid = valid[len(valid)-historyLimit:]
	}

	return append(valid, models.Turn{
		Role:    models.RoleUser,
		Content: sanitizeUTF8(message),
	})
}
