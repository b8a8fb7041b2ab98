// Package telegram runs the claims bot: send it a photo of the damage, get
// the assessment back as a chat message.
package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/karthik1609/car-insurance-claims-ai-agent/constants"
	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/pipeline"
)

const helpText = "Send me a photo of the vehicle damage and I will assess it for you."

type Bot struct {
	api  *tgbotapi.BotAPI
	orch *pipeline.Orchestrator
	http *http.Client
	log  *slog.Logger
}

func New(token string, orch *pipeline.Orchestrator, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	logger.Info("telegram.authorized", "username", api.Self.UserName)
	return &Bot{
		api:  api,
		orch: orch,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  logger,
	}, nil
}

// Run long-polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if len(upd.Message.Photo) == 0 {
		b.send(cid, helpText)
		return
	}

	b.send(cid, "📸 Photo received, assessing the damage...")

	// largest preview is last
	photo := upd.Message.Photo[len(upd.Message.Photo)-1]
	img, err := b.downloadPhoto(ctx, photo.FileID)
	if err != nil {
		b.log.Error("telegram.download_failed", "chat_id", cid, "error", err)
		b.send(cid, "Sorry, I could not download that photo. Please try again.")
		return
	}

	// Chat is advisory, so a suspicious image still gets assessed; the
	// warning rides along in the reply.
	out, err := b.orch.Run(ctx, pipeline.Request{
		Image:         img,
		Task:          constants.TaskDamageAssessment,
		ProcessAnyway: true,
	})
	if err != nil {
		b.log.Error("telegram.assess_failed", "chat_id", cid, "error", err)
		b.send(cid, "Sorry, I could not assess that image. Make sure it is a clear photo of the vehicle.")
		return
	}

	b.send(cid, FormatOutcome(out))
}

func (b *Bot) downloadPhoto(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", b.api.Token, file.FilePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (b *Bot) send(cid int64, text string) {
	msg := tgbotapi.NewMessage(cid, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("telegram.send_failed", "chat_id", cid, "error", err)
	}
}
