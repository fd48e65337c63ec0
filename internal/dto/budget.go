package dto

// BudgetRequest tolerates loose client input: income may arrive as a number
// or a string like "Rs 12,000", expenses as a structured list or free text.
type BudgetRequest struct {
	Income   any `json:"income"`
	Expenses any `json:"expenses"`
}

type BudgetResponse struct {
	Analysis       string  `json:"analysis"`
	TotalExpenses  float64 `json:"total_expenses"`
	Savings        float64 `json:"savings"`
	SavingsPercent float64 `json:"savings_percent"`
}
