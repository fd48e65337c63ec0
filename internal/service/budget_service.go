package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

const noExpensesPlaceholder = "No expenses provided"

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

type BudgetService struct {
	dispatch *DispatchService
	logger   *zap.Logger
}

func NewBudgetService(dispatch *DispatchService, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		dispatch: dispatch,
		logger:   logger,
	}
}

// BudgetAnalysis is the outcome of one analysis request: the generated text
// plus the figures computed locally, independent of which provider answered.
type BudgetAnalysis struct {
	Analysis       string
	TotalExpenses  float64
	Savings        float64
	SavingsPercent float64
}

// Analyze normalizes the income figure, shapes the expenses into a prompt,
// and runs it through the provider chain. rawExpenses may be a structured
// []{category, amount} list or a free-text string.
func (s *BudgetService) Analyze(ctx context.Context, rawIncome any, rawExpenses any) (*BudgetAnalysis, error) {
	income := CleanNumeric(rawIncome)
	prompt, totalExpenses := buildBudgetPrompt(income, rawExpenses)

	analysis, err := s.dispatch.Generate(ctx, []models.Turn{
		{Role: models.RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("budget analysis failed: %w", err)
	}

	savings := round2(income - totalExpenses)
	var savingsPercent float64
	if income > 0 {
		savingsPercent = round1(savings / income * 100)
	}

	return &BudgetAnalysis{
		Analysis:       analysis,
		TotalExpenses:  totalExpenses,
		Savings:        savings,
		SavingsPercent: savingsPercent,
	}, nil
}

// buildBudgetPrompt renders the expense detail block and its total. A
// structured list keeps only positive-amount items; free text is used
// verbatim with the total approximated by summing every numeric substring,
// which can overcount when a category name contains digits.
func buildBudgetPrompt(income float64, rawExpenses any) (string, float64) {
	var items []models.ExpenseItem
	var freeText string

	switch v := rawExpenses.(type) {
	case []any:
		for _, entry := range v {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			category := "Other"
			if c, ok := m["category"].(string); ok && strings.TrimSpace(c) != "" {
				category = strings.TrimSpace(c)
			}
			amount := CleanNumeric(m["amount"])
			if amount > 0 {
				items = append(items, models.ExpenseItem{Category: category, Amount: amount})
			}
		}
	case string:
		freeText = v
	}

	var expensesText string
	var total float64

	if len(items) > 0 {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("- %s: Rs %.2f", item.Category, item.Amount))
			total += item.Amount
		}
		expensesText = strings.Join(lines, "\n")
	} else {
		expensesText = freeText
		if expensesText == "" {
			expensesText = noExpensesPlaceholder
		}
		for _, match := range numberRe.FindAllString(expensesText, -1) {
			value, err := strconv.ParseFloat(match, 64)
			if err != nil {
				continue
			}
			total += value
		}
	}

	prompt := fmt.Sprintf(
		"Income: Rs %.2f\nExpenses details:\n%s\n\nPlease analyze this budget. Categorize expenses, calculate the percentage of income spent, and provide 3 tips to save more.",
		income, expensesText,
	)

	return prompt, round2(total)
}
