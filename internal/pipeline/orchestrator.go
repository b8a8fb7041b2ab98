// Package pipeline coordinates the claim stages: validate, tamper-score,
// normalize, OCR, prompt, model call, transform.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/assessment"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/fraud"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/imagex"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/llm"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/ocr"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/report"
)

// Request is one claim image plus the flags that steer its path through the
// stages.
type Request struct {
	Image        []byte
	DeclaredMIME string
	Task         constants.Task
	Language     constants.Language

	// SkipFraudCheck bypasses tamper scoring entirely; the scorer is never
	// invoked. ProcessAnyway runs the full pipeline on a suspicious image and
	// downgrades the block to a warning.
	SkipFraudCheck bool
	ProcessAnyway  bool
}

// TamperScorer scores raw image bytes for signs of manipulation.
type TamperScorer interface {
	Inspect(data []byte) fraud.Verdict
}

// ContextExtractor recovers advisory text context from a form photo.
type ContextExtractor interface {
	ExtractContext(ctx context.Context, asset *imagex.Asset) ocr.Context
}

type Orchestrator struct {
	validator   *imagex.Validator
	normalizer  *imagex.Normalizer
	scorer      TamperScorer
	ocr         ContextExtractor
	client      llm.ChatClient
	transformer *assessment.Transformer

	budgetBytes int64
	log         *slog.Logger
}

func NewOrchestrator(
	validator *imagex.Validator,
	normalizer *imagex.Normalizer,
	scorer TamperScorer,
	contextExtractor ContextExtractor,
	client llm.ChatClient,
	transformer *assessment.Transformer,
	budgetBytes int64,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if budgetBytes <= 0 {
		budgetBytes = 4 << 20
	}
	return &Orchestrator{
		validator:   validator,
		normalizer:  normalizer,
		scorer:      scorer,
		ocr:         contextExtractor,
		client:      client,
		transformer: transformer,
		budgetBytes: budgetBytes,
		log:         logger,
	}
}

// Run drives one request through the stages. Suspicious images short-circuit
// before any model traffic unless the caller opted to process anyway; that
// path carries the verdict into the prompt and the outcome as a warning.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Outcome, error) {
	start := time.Now()

	asset, err := o.validator.Validate(req.Image, req.DeclaredMIME)
	if err != nil {
		return nil, err
	}

	var verdict fraud.Verdict
	if !req.SkipFraudCheck {
		verdict = o.scorer.Inspect(req.Image)
	}
	if verdict.IsSuspicious && !req.ProcessAnyway {
		o.log.Warn("pipeline.withheld",
			"task", string(req.Task), "reason", *verdict.Reason,
			"elapsed_ms", time.Since(start).Milliseconds())
		return &Outcome{
			Status:     StatusWithheld,
			Message:    "assessment withheld: " + *verdict.Reason,
			Warning:    verdict.Reason,
			Fraud:      &verdict,
			Assessment: nil,
		}, nil
	}

	var fraudNote *string
	if verdict.IsSuspicious {
		fraudNote = verdict.Reason
	}

	var record any
	switch req.Task {
	case constants.TaskAccidentReport:
		record, err = o.runReport(ctx, asset, req.Language, fraudNote)
	default:
		record, err = o.runDamage(ctx, asset, fraudNote)
	}
	if err != nil {
		return nil, err
	}

	out := &Outcome{Status: StatusDelivered, Assessment: record}
	if verdict.IsSuspicious {
		out.Status = StatusDeliveredWithWarning
		out.Warning = verdict.Reason
		out.Fraud = &verdict
	}
	o.log.Info("pipeline.done",
		"task", string(req.Task), "status", string(out.Status),
		"elapsed_ms", time.Since(start).Milliseconds())
	return out, nil
}

func (o *Orchestrator) runDamage(ctx context.Context, asset *imagex.Asset, fraudNote *string) (any, error) {
	normalized, err := o.normalizer.Normalize(asset, o.budgetBytes)
	if err != nil {
		return nil, err
	}

	raw, err := o.client.Complete(ctx, llm.BuildDamagePrompt(fraudNote), imagex.DataURL(normalized))
	if err != nil {
		return nil, err
	}
	return o.transformer.Transform(raw)
}

func (o *Orchestrator) runReport(ctx context.Context, asset *imagex.Asset, lang constants.Language, fraudNote *string) (any, error) {
	// OCR reads the contrast-enhanced copy; the model sees the photographic
	// original, normalized for transmission.
	var ocrCtx ocr.Context
	if enhanced, err := imagex.EnhanceForm(asset); err == nil {
		ocrCtx = o.ocr.ExtractContext(ctx, enhanced)
	} else {
		o.log.Warn("pipeline.enhance_failed", "error", err)
		ocrCtx = o.ocr.ExtractContext(ctx, asset)
	}

	normalized, err := o.normalizer.Normalize(asset, o.budgetBytes)
	if err != nil {
		return nil, err
	}

	raw, err := o.client.Complete(ctx, llm.BuildReportPrompt(lang, ocrCtx, fraudNote), imagex.DataURL(normalized))
	if err != nil {
		return nil, err
	}
	return report.Transform(lang, raw, o.log)
}

// Enhance exposes the form-enhancement stage for the testing endpoints.
func (o *Orchestrator) Enhance(data []byte, declaredMIME string) (*imagex.Asset, error) {
	asset, err := o.validator.Validate(data, declaredMIME)
	if err != nil {
		return nil, err
	}
	return imagex.EnhanceForm(asset)
}

// ExtractText exposes the enhance-then-OCR path for the testing endpoints.
func (o *Orchestrator) ExtractText(ctx context.Context, data []byte, declaredMIME string, enhanceFirst bool) (ocr.Context, error) {
	asset, err := o.validator.Validate(data, declaredMIME)
	if err != nil {
		return ocr.Context{}, err
	}
	if enhanceFirst {
		enhanced, err := imagex.EnhanceForm(asset)
		if err != nil {
			return ocr.Context{}, fmt.Errorf("enhance: %w", err)
		}
		asset = enhanced
	}
	return o.ocr.ExtractContext(ctx, asset), nil
}
