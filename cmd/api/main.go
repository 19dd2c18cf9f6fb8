package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tidy-planner/config"
	_ "tidy-planner/docs" // Swagger docs
	"tidy-planner/internal/detection"
	"tidy-planner/internal/enrich"
	"tidy-planner/internal/httpserver"
	"tidy-planner/internal/plan/usecase"
	"tidy-planner/internal/remote"
	"tidy-planner/internal/settings"
	"tidy-planner/pkg/log"
	"tidy-planner/pkg/openai"
)

// @title       Tidy Planner API
// @description Turns a photo of household items into a dated disposal plan and exports it to a reminders list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Tidy Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Settings store
	var secrets settings.SecretStore
	if cfg.Settings.SecretPath != "" {
		secrets = settings.NewFileSecretStore(cfg.Settings.SecretPath)
	}
	store, err := settings.Open(ctx, logger, settings.Options{
		Path:     cfg.Settings.Path,
		Secrets:  secrets,
		Timezone: cfg.Settings.Timezone,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open settings: ", err)
		return
	}

	// 4. Remote detection and enrichment (optional)
	ucCfg := usecase.Config{
		Settings:          store,
		EnrichmentEnabled: cfg.Planner.EnrichmentEnabled,
		PreferredLanguage: cfg.Planner.PreferredLanguage,
	}
	if cfg.OpenAI.APIKey != "" {
		client, err := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.PlanningModel,
		})
		if err != nil {
			logger.Error(ctx, "Failed to create OpenAI client: ", err)
			return
		}

		cooldown := detection.NewCooldown(nil)
		ucCfg.Cooldown = cooldown
		ucCfg.Detector = detection.NewRemote(logger, detection.RemoteConfig{
			Client:          client,
			Model:           cfg.OpenAI.DetectionModel,
			ReasoningEffort: cfg.OpenAI.ReasoningEffort,
			Cooldown:        cooldown,
		})

		planner := remote.New(logger, remote.Config{
			Client:          client,
			Model:           cfg.OpenAI.PlanningModel,
			MaxOutputTokens: cfg.OpenAI.MaxOutputTokens,
			ReasoningEffort: cfg.OpenAI.ReasoningEffort,
			Timeout:         cfg.OpenAI.Timeout,
		})
		policy := enrich.DefaultPolicy()
		policy.MaxAttempts = cfg.Planner.MaxAttempts
		ucCfg.Enricher = enrich.NewOrchestrator(logger, planner, enrich.Options{Policy: &policy})
		logger.Infof(ctx, "✅ OpenAI initialized (planning=%s detection=%s)", cfg.OpenAI.PlanningModel, cfg.OpenAI.DetectionModel)
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY is missing: plans are built locally and photos need caller-supplied detections")
	}

	// 5. Export sink (optional)
	sink, err := newSink(ctx, logger, cfg)
	if err != nil {
		logger.Warnf(ctx, "Export sink not available (optional): %v", err)
	} else if sink != nil {
		ucCfg.Sink = sink
		logger.Infof(ctx, "✅ Export sink initialized: %s", cfg.Export.Sink)
	}

	planUC := usecase.New(logger, ucCfg)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PlanUseCase:    planUC,
		Settings:       store,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
