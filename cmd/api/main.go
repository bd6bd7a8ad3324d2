package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"coder-chat/config"
	chatHTTP "coder-chat/internal/chat/delivery/http"
	"coder-chat/internal/chat/orchestrator"
	"coder-chat/internal/chat/prompt"
	"coder-chat/internal/chat/repository/memory"
	"coder-chat/internal/chat/usecase"
	"coder-chat/internal/httpserver"
	"coder-chat/internal/middleware"
	"coder-chat/pkg/llmprovider"
	"coder-chat/pkg/log"
)

// @title       coder-chat API
// @description Conversation-aware coding assistant with streamed generation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	pflag.String("config", "", "path to config file (default: config/config.yaml)")
	pflag.Int("port", 8080, "HTTP listen port")
	pflag.String("mode", "debug", "gin mode: debug, release or test")
	pflag.String("log-level", "debug", "log level")
	pflag.String("inference-url", "", "text-generation endpoint URL")
	pflag.Int("history-window-size", 10, "number of recent turns sent with each prompt")
	pflag.Parse()

	// 1. Configuration
	cfg, err := config.Load(pflag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting coder-chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Inference endpoint: %s (model %s)", cfg.Inference.URL, cfg.Inference.Model)

	// 3. Generation: endpoint client behind the retry policy
	manager, err := llmprovider.InitializeManager(&cfg.Inference, &cfg.Generation, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize inference provider: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Inference provider: %s (model %s)", manager.Provider().Name(), manager.Provider().Model())

	orch := orchestrator.New(manager, prompt.Builder{
		IncludeAssistantTurns: cfg.History.IncludeAssistantTurns,
	}, logger)

	// 4. Chat domain
	historyRepo := memory.New(cfg.History.Capacity, cfg.History.TTL, logger)
	chatUC := usecase.New(logger, historyRepo, orch, usecase.Config{
		WindowSize: cfg.History.WindowSize,
		MaxLoops:   cfg.Generation.MaxLoops,
		Params: orchestrator.Params{
			MaxTokens:         cfg.Generation.MaxTokens,
			ContextWindow:     cfg.Generation.ContextWindow,
			MinResponseTokens: cfg.Generation.MinResponseTokens,
			Temperature:       cfg.Generation.Temperature,
			TopP:              cfg.Generation.TopP,
			Stop:              cfg.Generation.Stop,
		},
	})
	chatHandler := chatHTTP.New(logger, chatUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		ChatHandler:     chatHandler,
		Middleware:      middleware.New(logger, cfg.Session),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
