package handlers

import (
	"pocketsmart/internal/dto"
	"pocketsmart/internal/models"
	"pocketsmart/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Chat with the finance assistant
// @Description Send a message with optional conversation history and receive a generated reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and history"
// @Success 200 {object} dto.ChatResponse
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		// Malformed bodies default to an empty message rather than a 400.
		h.logger.Debug("chat body parse failed", zap.Error(err))
	}

	history := make([]models.Turn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, models.Turn{
			Role:    models.Role(turn.Role),
			Content: turn.Content,
		})
	}

	response, err := h.chatService.Chat(c.Context(), req.Message, history)
	if err != nil {
		h.logger.Error("chat generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(dto.ChatResponse{
		Status:   "success",
		Response: response,
	})
}
