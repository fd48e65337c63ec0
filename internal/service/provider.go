package service

import (
	"context"

	"pocketsmart/internal/models"
)

// SystemPrompt is the assistant persona sent to every live provider. The
// anthropic backend passes it as a system block, the ollama backend injects
// it as a leading system turn.
const SystemPrompt = `You are PocketSmart AI, an expert personal finance assistant.
You help users analyze budgets and get product recommendations.
Always be encouraging and practical. Use Rs for Indian context or $ for US.
When providing analysis, use Markdown (bolding and lists) for readability.`

// Provider is a backend capable of turning a conversation into generated
// text. Implementations must bound their own attempt with a deadline and be
// safe for concurrent use.
type Provider interface {
	Name() string
	Generate(ctx context.Context, conv []models.Turn) (string, error)
}
