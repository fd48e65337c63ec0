package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pocketsmart/internal/api/handlers"
	"pocketsmart/internal/dto"
	"pocketsmart/internal/service"
	"pocketsmart/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// newTestApp wires the full stack in mock provider mode, so requests run
// the real dispatch path without any network access.
func newTestApp() *fiber.App {
	nop := zap.NewNop()
	dispatch := service.NewDispatchService("mock", service.NewMockService(), nop)

	chatHandler := handlers.NewChatHandler(service.NewChatService(dispatch, nop), nop)
	budgetHandler := handlers.NewBudgetHandler(service.NewBudgetService(dispatch, nop), nop)
	recommendHandler := handlers.NewRecommendHandler(service.NewRecommendationService(dispatch, nop), nop)

	serverCfg := &config.ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	return SetupRouter(serverCfg, chatHandler, budgetHandler, recommendHandler, nop)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to decode body %q: %v", data, err)
	}
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/chat", dto.ChatRequest{
		Message: "hello",
		History: []dto.ChatTurn{
			{Role: "user", Content: "earlier question"},
			{Role: "assistant", Content: "earlier answer"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body dto.ChatResponse
	decodeBody(t, resp, &body)

	if body.Status != "success" {
		t.Errorf("status = %q, want success", body.Status)
	}
	if !strings.Contains(body.Response, "personal finance assistant") {
		t.Errorf("greeting response not rendered:\n%s", body.Response)
	}
}

func TestChatEndpointEmptyBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 with defaults applied", resp.StatusCode)
	}
}

func TestAnalyzeBudgetEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/analyze-budget", map[string]any{
		"income": 12000,
		"expenses": []map[string]any{
			{"category": "Food", "amount": 1500},
			{"category": "Rent", "amount": 8000},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body dto.BudgetResponse
	decodeBody(t, resp, &body)

	if body.TotalExpenses != 9500.00 {
		t.Errorf("total_expenses = %v, want 9500.00", body.TotalExpenses)
	}
	if body.Savings != 2500.00 {
		t.Errorf("savings = %v, want 2500.00", body.Savings)
	}
	if body.SavingsPercent != 20.8 {
		t.Errorf("savings_percent = %v, want 20.8", body.SavingsPercent)
	}
	if body.Analysis == "" {
		t.Error("analysis is empty")
	}
}

func TestAnalyzeBudgetFreeTextExpenses(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/analyze-budget", map[string]any{
		"income":   "Rs 12,000",
		"expenses": "Rent 8000, Food 1500",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body dto.BudgetResponse
	decodeBody(t, resp, &body)

	if body.TotalExpenses != 9500.00 {
		t.Errorf("total_expenses = %v, want 9500.00", body.TotalExpenses)
	}
}

func TestRecommendEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/recommend", dto.RecommendRequest{
		Category:     "phone",
		Budget:       20000,
		Requirements: "good camera",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body dto.RecommendResponse
	decodeBody(t, resp, &body)

	for _, want := range []string{"phone", "Rs 15000.00", "good camera"} {
		if !strings.Contains(body.Recommendations, want) {
			t.Errorf("recommendations missing %q:\n%s", want, body.Recommendations)
		}
	}
}
