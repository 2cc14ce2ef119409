package telegram

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/config"
)

func newTestTelegramClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Telegram.APIURL = serverURL
	cfg.Telegram.BotToken = "bot-token"
	cfg.Telegram.Timeout = 5 * time.Second

	return NewClient(cfg, &http.Client{})
}

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botbot-token/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"chat_id":42`)
		assert.Contains(t, string(body), `"parse_mode":"HTML"`)

		fmt.Fprint(w, `{"ok": true, "result": {"message_id": 1}}`)
	}))
	defer server.Close()

	client := newTestTelegramClient(server.URL)

	err := client.SendMessage(42, "<b>Relatório</b>")

	require.NoError(t, err)
}

func TestSendMessage_APIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"ok": false, "error_code": 403, "description": "Forbidden: bot was blocked by the user"}`)
	}))
	defer server.Close()

	client := newTestTelegramClient(server.URL)

	err := client.SendMessage(42, "relatório")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot was blocked")
}

func TestParseStartPayload(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		expectedToken  string
		expectedLocale string
		expectedOK     bool
	}{
		{
			name:           "token com locale",
			text:           "/start aBcD1234_en",
			expectedToken:  "aBcD1234",
			expectedLocale: "en",
			expectedOK:     true,
		},
		{
			name:          "token sem locale",
			text:          "/start aBcD1234",
			expectedToken: "aBcD1234",
			expectedOK:    true,
		},
		{
			name:           "token com underscore interno",
			text:           "/start aB_cD1234_pt",
			expectedToken:  "aB_cD1234",
			expectedLocale: "pt",
			expectedOK:     true,
		},
		{
			name: "start sem payload",
			text: "/start",
		},
		{
			name: "mensagem comum",
			text: "bom dia",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, locale, ok := ParseStartPayload(tt.text)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, tt.expectedLocale, locale)
		})
	}
}
