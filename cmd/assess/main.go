// assess runs one image through the claims pipeline from the command line and
// prints the outcome JSON. Useful for trying prompts and thresholds without
// standing up the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/assessment"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/config"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/fraud"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm/groq"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/ocr"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	task := flag.String("task", string(constants.TaskDamageAssessment), "damage-assessment | accident-report")
	language := flag.String("language", string(constants.LanguageEN), "report language: en | nl | de")
	skipFraud := flag.Bool("skip-fraud-check", false, "bypass tamper scoring")
	processAnyway := flag.Bool("process-anyway", false, "assess suspicious images instead of withholding")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "assess [flags] <image-file>")
		os.Exit(2)
	}

	parsedTask, ok := constants.ParseTask(*task)
	if !ok {
		logger.Error("invalid task", "task", *task)
		os.Exit(2)
	}
	parsedLang, ok := constants.ParseLanguage(*language)
	if !ok {
		logger.Error("invalid language", "language", *language)
		os.Exit(2)
	}

	img, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("reading image", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	out, err := buildPipeline(cfg, logger).Run(ctx, pipeline.Request{
		Image:          img,
		Task:           parsedTask,
		Language:       parsedLang,
		SkipFraudCheck: *skipFraud,
		ProcessAnyway:  *processAnyway,
	})
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encoding outcome", "error", err)
		os.Exit(1)
	}
}

func buildPipeline(cfg *config.Config, logger *slog.Logger) *pipeline.Orchestrator {
	return pipeline.NewOrchestrator(
		imagex.NewValidator(imagex.ValidatorConfig{
			MaxUploadBytes: cfg.MaxUploadBytes,
			MinDimension:   cfg.MinDimension,
			MaxDimension:   cfg.MaxDimension,
			MaxPixels:      cfg.MaxPixels,
		}, logger),
		imagex.NewNormalizer(logger),
		fraud.NewScorer(logger),
		ocr.NewExtractor(ocr.Config{
			Tesseract:           cfg.TesseractBin,
			Lang:                cfg.TesseractLang,
			EnableTSVConfidence: true,
		}, logger),
		groq.NewClient(groq.Config{
			APIKey:  cfg.GroqAPIKey,
			BaseURL: cfg.GroqBaseURL,
			Model:   cfg.GroqModel,
			Timeout: cfg.RequestTimeout,
		}, logger),
		assessment.NewTransformer(cfg.CurrencyCode, logger),
		cfg.TransmissionBudgetBytes,
		logger,
	)
}
