package handlers

import (
	"pocketsmart/internal/dto"
	"pocketsmart/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewRecommendHandler(recService *service.RecommendationService, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		recService: recService,
		logger:     logger,
	}
}

// Recommend godoc
// @Summary Recommend products within a budget
// @Description Generate Budget/Value/Premium product options for a category and budget
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Category, budget, and requirements"
// @Success 200 {object} dto.RecommendResponse
// @Failure 500 {object} map[string]string
// @Router /recommend [post]
func (h *RecommendHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("recommend body parse failed", zap.Error(err))
	}

	recommendations, err := h.recService.Recommend(c.Context(), req.Category, req.Budget, req.Requirements)
	if err != nil {
		h.logger.Error("recommendation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.RecommendResponse{
		Recommendations: recommendations,
	})
}
