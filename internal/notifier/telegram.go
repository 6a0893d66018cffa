package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramTimeout bounds every sendMessage call.
const telegramTimeout = 10 * time.Second

// sender is the subset of tgbotapi.BotAPI used for delivery.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier publishes briefings to a Telegram channel. The channel
// may be a numeric chat ID or a public @channelname.
type TelegramNotifier struct {
	bot     sender
	chatID  int64
	channel string
}

// NewTelegramNotifier builds a notifier for the given credentials. Missing
// credentials are not an error: the notifier stays unconfigured and every
// Publish call becomes a logged no-op returning failure.
func NewTelegramNotifier(token, channel string) (*TelegramNotifier, error) {
	t := &TelegramNotifier{}
	if token == "" || channel == "" {
		return t, nil
	}

	client := &http.Client{Timeout: telegramTimeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}
	t.bot = bot

	if id, err := strconv.ParseInt(channel, 10, 64); err == nil {
		t.chatID = id
	} else {
		t.channel = channel
	}
	return t, nil
}

// Publish sends text to the channel, chunking it when it exceeds Telegram's
// message limit. Parts are sent strictly in order; the first failed part
// aborts the rest. Every failure mode collapses to false and is only
// differentiated in the logs.
func (t *TelegramNotifier) Publish(_ context.Context, text string) bool {
	if t.bot == nil {
		slog.Warn("Telegram credentials not configured, skipping channel delivery")
		return false
	}

	parts := []string{text}
	if len(text) > MaxMessageLength {
		parts = SplitMessage(text, MaxMessageLength)
	}

	for i, part := range parts {
		if _, err := t.bot.Send(t.newMessage(part)); err != nil {
			slog.Error("Failed to send telegram message", "part", i+1, "parts", len(parts), "error", err)
			return false
		}
	}

	slog.Info("Briefing delivered to Telegram", "parts", len(parts))
	return true
}

func (t *TelegramNotifier) newMessage(text string) tgbotapi.MessageConfig {
	var msg tgbotapi.MessageConfig
	if t.channel != "" {
		msg = tgbotapi.NewMessageToChannel(t.channel, text)
	} else {
		msg = tgbotapi.NewMessage(t.chatID, text)
	}
	// The formatter agent emits Telegram HTML (<b>, <i>, <code>).
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}

func (t *TelegramNotifier) Name() string {
	return "Telegram"
}
