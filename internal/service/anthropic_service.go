package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pocketsmart/internal/models"
	"pocketsmart/pkg/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

const anthropicTimeout = 30 * time.Second

// AnthropicService generates text through the Anthropic Messages API. The
// client is built once at construction and reused; it is read-only
// afterwards, so concurrent requests can share it freely.
type AnthropicService struct {
	client anthropic.Client
	model  string
	keyErr error
	logger *zap.Logger
}

// NewAnthropicService never fails: credential problems are held back and
// reported on the first Generate call, so auto mode can record them as
// ordinary provider failures and fall through.
func NewAnthropicService(cfg *config.ProviderConfig, logger *zap.Logger) *AnthropicService {
	s := &AnthropicService{
		model:  cfg.AnthropicModel,
		logger: logger,
	}

	key := strings.TrimSpace(cfg.AnthropicAPIKey)
	switch {
	case key == "":
		s.keyErr = errors.New("ANTHROPIC_API_KEY is missing")
	case !strings.HasPrefix(key, "sk-ant-"):
		s.keyErr = errors.New("ANTHROPIC_API_KEY looks invalid, a real key starts with sk-ant-")
	default:
		s.client = anthropic.NewClient(option.WithAPIKey(key))
	}

	return s
}

func (s *AnthropicService) Name() string { return "anthropic" }

func (s *AnthropicService) Generate(ctx context.Context, conv []models.Turn) (string, error) {
	if s.keyErr != nil {
		return "", s.keyErr
	}

	ctx, cancel := context.WithTimeout(ctx, anthropicTimeout)
	defer cancel()

	messages := make([]anthropic.MessageParam, 0, len(conv))
	for _, turn := range conv {
		switch turn.Role {
		case models.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(turn.Content)))
		case models.RoleSystem:
			// The persona travels in the System field, not the message list.
			continue
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(turn.Content)))
		}
	}

	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt},
		},
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}
	if len(message.Content) == 0 {
		return "", errors.New("empty response from anthropic")
	}

	return message.Content[0].Text, nil
}
