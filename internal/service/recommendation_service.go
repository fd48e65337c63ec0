package service

import (
	"context"
	"fmt"
	"strings"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

type RecommendationService struct {
	dispatch *DispatchService
	logger   *zap.Logger
}

func NewRecommendationService(dispatch *DispatchService, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		dispatch: dispatch,
		logger:   logger,
	}
}

// Recommend builds the three-option recommendation prompt and runs it
// through the provider chain. Missing fields fall back to defaults rather
// than failing the request.
func (s *RecommendationService) Recommend(ctx context.Context, category string, rawBudget any, requirements string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}
	requirements = strings.TrimSpace(requirements)
	if requirements == "" {
		requirements = defaultRequirements
	}
	budget := CleanNumeric(rawBudget)

	prompt := fmt.Sprintf(
		"Recommend the best %s within a budget of Rs %.2f. Requirements: %s. Provide 3 options (Budget, Value, Premium) with approximate prices.",
		category, budget, requirements,
	)

	return s.dispatch.Generate(ctx, []models.Turn{
		{Role: models.RoleUser, Content: prompt},
	})
}
