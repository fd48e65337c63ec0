package service

import (
	"context"
	"fmt"
	"strings"

	"pocketsmart/internal/models"
)

// mockBanner prefixes every mock response so callers can tell the no-cost
// fallback apart from live provider output.
const mockBanner = "Using free mock mode (no paid API).\n\n"

const greetingTemplate = `Hello! I am PocketSmart AI, your personal finance assistant.

I can help you with:
- Budget analysis and monthly planning
- Saving, investing, and debt basics
- Product recommendations within a budget

Try asking:
1. "Help me plan my monthly budget"
2. "How do I start saving Rs 5000 per month?"
3. "Recommend the best phone within a budget of Rs 20000"`

const budgetingTemplate = `Here is a simple allocation plan for your monthly income:

- Needs (50-60%): rent, groceries, utilities, transport, EMIs.
- Wants (20-30%): eating out, entertainment, shopping.
- Savings (20-30%): emergency fund first, then investments.

Weekly action: track your top 3 expense categories and reduce one of them by 10%.`

const savingTemplate = `Four ways to save more every month:

1. Automate a transfer to savings on salary day, before you spend.
2. Keep a separate account for your emergency fund (3-6 months of expenses).
3. Review subscriptions quarterly and cancel anything unused.
4. Apply a 24-hour waiting rule to every non-essential purchase above Rs 1000.`

const investingTemplate = `A simple way to start investing:

1. Clear high-interest debt before investing aggressively.
2. Build an emergency fund of 3-6 months of expenses.
3. Start a monthly SIP in a low-cost index mutual fund.
4. Increase the SIP amount every time your income grows.`

const debtTemplate = `A practical plan to reduce debt:

1. List every loan, EMI, and credit card balance with its interest rate.
2. Pay minimums on everything, then put extra money on the highest-rate debt.
3. Avoid new credit card spending until existing balances are cleared.
4. When a debt is cleared, roll its payment into the next one.`

const genericTemplate = `Here is a starting point for most money questions:

1. Split spending into Needs, Wants, and Savings.
2. Keep savings transfer automatic on salary day.
3. Track top 3 expense categories weekly and reduce one by 10%%.
4. Review the plan at the end of each month and adjust.

You asked: %s`

// MockService is the deterministic rule-based fallback provider. It renders
// a canned template for the classified intent of the latest user turn and,
// by construction, never fails: identical input always produces identical
// output and Generate never returns an error.
type MockService struct{}

func NewMockService() *MockService {
	return &MockService{}
}

func (s *MockService) Name() string { return "mock" }

func (s *MockService) Generate(_ context.Context, conv []models.Turn) (string, error) {
	return s.Render(Classify(models.LatestUserText(conv))), nil
}

// Render produces the response text for a classification. Pure function.
func (s *MockService) Render(c Classification) string {
	var body string
	switch c.Intent {
	case models.IntentRecommendation:
		body = renderRecommendation(c.Category, c.Budget, c.Requirements)
	case models.IntentGreeting:
		body = greetingTemplate
	case models.IntentBudgeting:
		body = budgetingTemplate
	case models.IntentSaving:
		body = savingTemplate
	case models.IntentInvesting:
		body = investingTemplate
	case models.IntentDebt:
		body = debtTemplate
	case models.IntentGeneric:
		body = fmt.Sprintf(genericTemplate, c.Query)
	default:
		body = fmt.Sprintf(genericTemplate, c.Query)
	}
	return mockBanner + body
}

// renderRecommendation builds the three-option block around budget-relative
// tier prices: 75% of budget, 95%, and 110%.
func renderRecommendation(category string, budget float64, requirements string) string {
	budgetTier := round2(budget * 0.75)
	valueTier := round2(budget * 0.95)
	premiumTier := round2(budget * 1.10)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Best %s options within Rs %.2f**\n", category, budget)
	fmt.Fprintf(&sb, "Requirements: %s\n\n", requirements)

	fmt.Fprintf(&sb, "**1. Budget pick - around Rs %.2f**\n", budgetTier)
	sb.WriteString("- Covers the essentials without stretching your wallet.\n")
	sb.WriteString("- Best when you want to keep part of your budget in reserve.\n\n")

	fmt.Fprintf(&sb, "**2. Value pick - around Rs %.2f**\n", valueTier)
	sb.WriteString("- The strongest balance of features and price in this range.\n")
	sb.WriteString("- Uses nearly the full budget for noticeably better quality.\n\n")

	fmt.Fprintf(&sb, "**3. Premium pick - around Rs %.2f**\n", premiumTier)
	sb.WriteString("- Slightly above budget, but built to last longer.\n")
	sb.WriteString("- Worth it if you can stretch about 10% for extra durability.\n\n")

	sb.WriteString("Tip: compare the value pick against the premium pick on the one feature you use daily before deciding.")
	return sb.String()
}
