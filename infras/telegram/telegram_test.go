package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"frontdesk/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T, sendOK bool) (*botNotifier, *atomic.Int32) {
	t.Helper()

	var sent atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Desk","username":"desk_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			sent.Add(1)

			if !sendOK {
				_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))

				return
			}

			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"group"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	api, err := tgbotapi.NewBotAPIWithClient("token", server.URL+"/bot%s/%s", server.Client())
	require.NoError(t, err)

	return &botNotifier{api: api, chatID: 42}, &sent
}

func TestNew_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{}

	notifier := New(cfg)

	assert.IsType(t, noopNotifier{}, notifier)
	assert.NoError(t, notifier.Notify(context.Background(), "Room 101 needs cleaning"))
}

func TestBotNotifier_Notify(t *testing.T) {
	bot, sent := newTestBot(t, true)

	err := bot.Notify(context.Background(), "Room 101 needs cleaning")

	require.NoError(t, err)
	assert.Equal(t, int32(1), sent.Load())
}

func TestBotNotifier_NotifyFailure(t *testing.T) {
	bot, _ := newTestBot(t, false)

	err := bot.Notify(context.Background(), "Room 101 needs cleaning")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram send")
}

func TestBotNotifier_CancelledContext(t *testing.T) {
	bot, sent := newTestBot(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, bot.Notify(ctx, "ignored"), context.Canceled)
	assert.Equal(t, int32(0), sent.Load())
}
