package telegram

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	// ErrNotConfigured - no bot token was provided.
	ErrNotConfigured = errors.New("telegram bot token not configured")
	// ErrUnauthorized - the Telegram API rejected the bot token.
	ErrUnauthorized = errors.New("telegram bot token rejected")
	// ErrChatNotFound - the chat id does not exist or the user never started
	// a conversation with the bot.
	ErrChatNotFound = errors.New("telegram chat not found")
)

// Client wraps the Telegram Bot API for text messages and document delivery.
// The underlying bot is created lazily on first use because the library
// verifies the token against the API during construction.
type Client struct {
	token string

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

func NewClient(token string) *Client {
	return &Client{token: token}
}

// Configured reports whether a bot token is present.
func (c *Client) Configured() bool {
	return c.token != ""
}

func (c *Client) api() (*tgbotapi.BotAPI, error) {
	if c.token == "" {
		return nil, ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bot != nil {
		return c.bot, nil
	}

	bot, err := tgbotapi.NewBotAPI(c.token)
	if err != nil {
		return nil, mapError(err)
	}
	c.bot = bot
	return bot, nil
}

// SendText sends an HTML-formatted message. User-provided content must be
// escaped with Escape before interpolation.
func (c *Client) SendText(chatID string, body string) error {
	bot, err := c.api()
	if err != nil {
		return err
	}

	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(id, body)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := bot.Send(msg); err != nil {
		return mapError(err)
	}
	return nil
}

// SendDocument delivers a binary document with a caption.
func (c *Client) SendDocument(chatID string, filename string, data []byte, caption string) error {
	bot, err := c.api()
	if err != nil {
		return err
	}

	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}

	doc := tgbotapi.NewDocument(id, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = caption
	if _, err := bot.Send(doc); err != nil {
		return mapError(err)
	}
	return nil
}

// Escape escapes user content for HTML parse mode.
func Escape(s string) string {
	return html.EscapeString(s)
}

func parseChatID(chatID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid chat id %q", ErrChatNotFound, chatID)
	}
	return id, nil
}

// mapError classifies Telegram API failures so callers can tell a bad token
// from a bad chat id.
func mapError(err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401:
			return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
		case strings.Contains(strings.ToLower(apiErr.Message), "chat not found"):
			return fmt.Errorf("%w: %s", ErrChatNotFound, apiErr.Message)
		}
	}
	if strings.Contains(err.Error(), "Unauthorized") {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return err
}
