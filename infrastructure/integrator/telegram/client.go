package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	SendMessage(chatID int64, text string) error
}

// TelegramClient entrega mensagens pela Bot API. O texto vai com
// parse_mode=HTML, que é o formato usado pelos relatórios.
type TelegramClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	return &TelegramClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

func (c *TelegramClient) SendMessage(chatID int64, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Telegram.Timeout)
	defer cancel()

	requestURL := fmt.Sprintf("%s/bot%s/sendMessage", c.cfg.Telegram.APIURL, c.cfg.Telegram.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TelegramMessageErrors.Inc()
		logrus.WithFields(logrus.Fields{
			"chat_id": chatID,
			"error":   err.Error(),
		}).Error("telegram: failed to send message")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return err
	}

	if !apiResp.OK {
		metrics.TelegramMessageErrors.Inc()
		logrus.WithFields(logrus.Fields{
			"chat_id":     chatID,
			"error_code":  apiResp.ErrorCode,
			"description": apiResp.Description,
		}).Error("telegram: API rejected message")
		return fmt.Errorf("telegram api error (code %d): %s", apiResp.ErrorCode, apiResp.Description)
	}

	metrics.TelegramMessagesSent.Inc()

	return nil
}
