package telegram

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestParseChatID(t *testing.T) {
	id, err := parseChatID("123456789")
	assert.NoError(t, err)
	assert.Equal(t, int64(123456789), id)

	id, err = parseChatID(" -100123456789 ")
	assert.NoError(t, err)
	assert.Equal(t, int64(-100123456789), id)

	_, err = parseChatID("not-a-number")
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestMapError(t *testing.T) {
	badToken := &tgbotapi.Error{Code: 401, Message: "Unauthorized"}
	assert.ErrorIs(t, mapError(badToken), ErrUnauthorized)

	badChat := &tgbotapi.Error{Code: 400, Message: "Bad Request: chat not found"}
	assert.ErrorIs(t, mapError(badChat), ErrChatNotFound)

	// Unrecognized errors pass through untouched
	other := errors.New("connection refused")
	assert.Equal(t, other, mapError(other))
}

func TestSendWithoutToken(t *testing.T) {
	c := NewClient("")
	assert.False(t, c.Configured())
	assert.ErrorIs(t, c.SendText("123", "hi"), ErrNotConfigured)
	assert.ErrorIs(t, c.SendDocument("123", "f.pdf", []byte("x"), ""), ErrNotConfigured)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", Escape("a <b> & c"))
}
