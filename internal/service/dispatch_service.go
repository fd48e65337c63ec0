package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

// ErrInvalidProvider reports an unrecognized LLM_PROVIDER value. It is the
// only failure auto mode can surface to a caller.
var ErrInvalidProvider = errors.New("invalid LLM_PROVIDER, use one of: auto, anthropic, ollama, mock")

// ModeAuto tries providers in chain order and falls back on any failure,
// terminating at the mock provider, which cannot fail.
const ModeAuto = "auto"

// DispatchService routes a conversation to a text-generation backend
// according to the configured provider mode. Fixed modes invoke exactly one
// provider and propagate its error; auto mode walks the chain and always
// produces a response.
type DispatchService struct {
	mode   string
	chain  []Provider
	mock   *MockService
	byName map[string]Provider
	logger *zap.Logger
}

// NewDispatchService wires the dispatcher. The chain lists the live
// providers in fallback priority order; mock is always the terminal step
// and is also addressable as a fixed mode.
func NewDispatchService(mode string, mock *MockService, logger *zap.Logger, chain ...Provider) *DispatchService {
	byName := map[string]Provider{mock.Name(): mock}
	for _, p := range chain {
		byName[p.Name()] = p
	}

	return &DispatchService{
		mode:   strings.ToLower(strings.TrimSpace(mode)),
		chain:  chain,
		mock:   mock,
		byName: byName,
		logger: logger,
	}
}

func (s *DispatchService) Generate(ctx context.Context, conv []models.Turn) (string, error) {
	if s.mode != ModeAuto {
		provider, ok := s.byName[s.mode]
		if !ok {
			return "", fmt.Errorf("%w (got %q)", ErrInvalidProvider, s.mode)
		}
		return provider.Generate(ctx, conv)
	}

	// auto: one attempt per provider, no retries, first success wins.
	var failures []string
	for _, provider := range s.chain {
		text, err := provider.Generate(ctx, conv)
		if err == nil {
			return text, nil
		}
		failures = append(failures, fmt.Sprintf("%s: %v", provider.Name(), err))
	}

	s.logger.Info("falling back to mock provider",
		zap.Strings("provider_errors", failures),
	)

	return s.mock.Generate(ctx, conv)
}
