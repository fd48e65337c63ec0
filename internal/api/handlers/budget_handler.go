package handlers

import (
	"pocketsmart/internal/dto"
	"pocketsmart/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// AnalyzeBudget godoc
// @Summary Analyze a monthly budget
// @Description Compute expense totals and savings, and generate an analysis of the budget
// @Tags budget
// @Accept json
// @Produce json
// @Param request body dto.BudgetRequest true "Income and expenses"
// @Success 200 {object} dto.BudgetResponse
// @Failure 500 {object} map[string]string
// @Router /analyze-budget [post]
func (h *BudgetHandler) AnalyzeBudget(c *fiber.Ctx) error {
	var req dto.BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("budget body parse failed", zap.Error(err))
	}

	result, err := h.budgetService.Analyze(c.Context(), req.Income, req.Expenses)
	if err != nil {
		h.logger.Error("budget analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.BudgetResponse{
		Analysis:       result.Analysis,
		TotalExpenses:  result.TotalExpenses,
		Savings:        result.Savings,
		SavingsPercent: result.SavingsPercent,
	})
}
