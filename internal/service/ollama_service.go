package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pocketsmart/internal/models"
	"pocketsmart/pkg/config"

	"go.uber.org/zap"
)

const ollamaTimeout = 20 * time.Second

// OllamaService generates text through a local Ollama chat endpoint.
type OllamaService struct {
	url        string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOllamaService(cfg *config.ProviderConfig, logger *zap.Logger) *OllamaService {
	return &OllamaService{
		url:        cfg.OllamaURL,
		model:      cfg.OllamaModel,
		httpClient: &http.Client{Timeout: ollamaTimeout},
		logger:     logger,
	}
}

func (s *OllamaService) Name() string { return "ollama" }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

func (s *OllamaService) Generate(ctx context.Context, conv []models.Turn) (string, error) {
	messages := make([]ollamaMessage, 0, len(conv)+1)
	messages = append(messages, ollamaMessage{Role: string(models.RoleSystem), Content: SystemPrompt})
	for _, turn := range conv {
		messages = append(messages, ollamaMessage{Role: string(turn.Role), Content: turn.Content})
	}

	payload, err := json.Marshal(ollamaChatRequest{
		Model:    s.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}
	if chatResp.Message.Content == "" {
		return "", errors.New("empty response from ollama")
	}

	return chatResp.Message.Content, nil
}
