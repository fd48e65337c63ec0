package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pocketsmart/internal/api"
	"pocketsmart/internal/api/handlers"
	"pocketsmart/internal/service"
	"pocketsmart/pkg/config"
	"pocketsmart/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting PocketSmart AI service", zap.String("provider_mode", cfg.Provider.Mode))

	// Providers, constructed once and shared by every request. The mock
	// provider is the terminal step of the auto fallback chain.
	anthropicService := service.NewAnthropicService(&cfg.Provider, appLogger)
	ollamaService := service.NewOllamaService(&cfg.Provider, appLogger)
	mockService := service.NewMockService()

	dispatchService := service.NewDispatchService(
		cfg.Provider.Mode,
		mockService,
		appLogger,
		anthropicService,
		ollamaService,
	)

	// Request-facing services
	chatService := service.NewChatService(dispatchService, appLogger)
	budgetService := service.NewBudgetService(dispatchService, appLogger)
	recService := service.NewRecommendationService(dispatchService, appLogger)

	// Handlers
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	recommendHandler := handlers.NewRecommendHandler(recService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, chatHandler, budgetHandler, recommendHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
