package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/assessment"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/config"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/fraud"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm/groq"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/ocr"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/pipeline"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/server"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/telegram"
)

func main() {
	// Logger
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orch := buildPipeline(cfg, slogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           server.New(orch, slogger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("http server listening", "port", cfg.Port, "model", cfg.GroqModel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	if cfg.TelegramToken != "" {
		bot, err := telegram.New(cfg.TelegramToken, orch, slogger)
		if err != nil {
			log.Fatalf("telegram bot: %v", err)
		}
		go func() {
			log.Infow("telegram bot polling")
			if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Errorw("telegram bot stopped", "error", err)
			}
		}()
	}

	<-ctx.Done()
	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("http shutdown", "error", err)
	}
}

func buildPipeline(cfg *config.Config, logger *slog.Logger) *pipeline.Orchestrator {
	validator := imagex.NewValidator(imagex.ValidatorConfig{
		MaxUploadBytes: cfg.MaxUploadBytes,
		MinDimension:   cfg.MinDimension,
		MaxDimension:   cfg.MaxDimension,
		MaxPixels:      cfg.MaxPixels,
	}, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:           cfg.TesseractBin,
		Lang:                cfg.TesseractLang,
		EnableTSVConfidence: true,
	}, logger)

	client := groq.NewClient(groq.Config{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.GroqModel,
		Timeout: cfg.RequestTimeout,
	}, logger)

	return pipeline.NewOrchestrator(
		validator,
		imagex.NewNormalizer(logger),
		fraud.NewScorer(logger),
		extractor,
		client,
		assessment.NewTransformer(cfg.CurrencyCode, logger),
		cfg.TransmissionBudgetBytes,
		logger,
	)
}
