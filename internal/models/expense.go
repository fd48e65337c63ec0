package models

// ExpenseItem is one category/amount pair from a budget analysis request.
// Items with a non-positive amount are dropped before analysis.
type ExpenseItem struct {
	Category string
	Amount   float64
}
