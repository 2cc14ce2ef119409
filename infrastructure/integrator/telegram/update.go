package telegram

import "strings"

// Update é o payload que o Telegram envia ao webhook. Só os campos usados
// pelo fluxo de registro são decodificados.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *From  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type From struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

type Chat struct {
	ID int64 `json:"id"`
}

// ParseStartPayload extrai token de registro e locale do deep link
// /start <token>_<locale>. O locale é opcional: links antigos carregam só o
// token.
func ParseStartPayload(text string) (token, locale string, ok bool) {
	const prefix = "/start "
	if !strings.HasPrefix(text, prefix) {
		return "", "", false
	}

	payload := strings.TrimSpace(strings.TrimPrefix(text, prefix))
	if payload == "" {
		return "", "", false
	}

	if idx := strings.LastIndex(payload, "_"); idx > 0 {
		return payload[:idx], payload[idx+1:], true
	}

	return payload, "", true
}
