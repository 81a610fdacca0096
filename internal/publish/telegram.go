package publish

import (
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Publisher delivers a rendered document to a messaging channel. Send makes
// at most one delivery attempt and reports whether it succeeded.
type Publisher interface {
	Send(path, caption string) bool
}

// FromConfig returns a Telegram publisher when credentials are configured,
// and the no-op publisher otherwise.
func FromConfig(token, chat string) Publisher {
	if token == "" || chat == "" {
		return Noop{}
	}
	t, err := NewTelegram(token, chat)
	if err != nil {
		slog.Error("telegram init failed, delivery disabled", "error", err)
		return Noop{}
	}
	return t
}

// Telegram posts the daily document to a fixed channel via the bot API.
type Telegram struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	channel string
}

// NewTelegram builds a Telegram publisher. chat may be a numeric chat ID or a
// public @channel name.
func NewTelegram(token, chat string) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}

	t := &Telegram{bot: bot}
	if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
		t.chatID = id
	} else {
		t.channel = chat
	}
	return t, nil
}

func (t *Telegram) Send(path, caption string) bool {
	if _, err := t.bot.Send(t.document(path, caption)); err != nil {
		slog.Error("telegram send failed", "error", err)
		return false
	}

	slog.Info("document sent to telegram", "chat_id", t.chatID, "channel", t.channel)
	return true
}

// document builds the sendDocument request. ChannelUsername takes precedence
// over ChatID when both are set, so it is only filled for @channel targets.
func (t *Telegram) document(path, caption string) tgbotapi.DocumentConfig {
	doc := tgbotapi.NewDocument(t.chatID, tgbotapi.FilePath(path))
	doc.ChannelUsername = t.channel
	doc.Caption = caption
	return doc
}

// Noop stands in when delivery credentials are absent. Not configured is a
// valid state, not an error.
type Noop struct{}

func (Noop) Send(path, caption string) bool {
	slog.Warn("telegram credentials not set, skipping send", "path", path)
	return false
}
