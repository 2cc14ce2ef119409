package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

type TelegramLinkResponse struct {
	Link string `json:"link"`
}

type TelegramDailyRequest struct {
	Enabled bool `json:"enabled"`
}

// Mensagens de confirmação enviadas no chat após o vínculo
var telegramWelcome = map[reporting.Locale]string{
	reporting.LocalePT: "✅ Conta vinculada com sucesso! Você vai receber seus relatórios de campanhas por aqui.",
	reporting.LocaleEN: "✅ Account linked successfully! You will receive your campaign reports here.",
}

// TelegramRegisterLink devolve o deep link do bot com o token de registro do
// usuário. O token é gerado na criação do usuário; se foi consumido por um
// vínculo anterior, um novo é gerado aqui.
func TelegramRegisterLink(cfg *config.Config, userRepo repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := userRepo.GetUserByID(claims.UserID)
		if err != nil || user == nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		if user.TelegramToken == nil || *user.TelegramToken == "" {
			token, err := utils.GenerateTelegramToken()
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar token de registro", nil)
				return
			}
			user.TelegramToken = &token
			if err := userRepo.UpdateUser(user); err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar token de registro", nil)
				return
			}
		}

		locale := r.URL.Query().Get("locale")
		if locale == "" && user.Locale != nil {
			locale = *user.Locale
		}
		locale = string(reporting.NormalizeLocale(locale))

		link := fmt.Sprintf("%s?start=%s_%s", cfg.Telegram.BotLink, *user.TelegramToken, locale)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TelegramLinkResponse{Link: link})
	}
}

// TelegramWebhook processa os updates do bot. Só o comando /start com o
// token de registro interessa; qualquer outro update é aceito e ignorado.
// A resposta é sempre 200 para o Telegram não reentregar o update.
func TelegramWebhook(userRepo repository.UserRepository, messenger telegram.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update telegram.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logrus.WithError(err).Warn("telegram: invalid webhook payload")
			w.WriteHeader(http.StatusOK)
			return
		}

		if update.Message == nil {
			w.WriteHeader(http.StatusOK)
			return
		}

		token, locale, ok := telegram.ParseStartPayload(update.Message.Text)
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}

		user, err := userRepo.GetUserByTelegramToken(token)
		if err != nil {
			logrus.WithError(err).Error("telegram: failed to look up registration token")
			w.WriteHeader(http.StatusOK)
			return
		}
		if user == nil {
			logrus.WithField("chat_id", update.Message.Chat.ID).Info("telegram: unknown registration token")
			w.WriteHeader(http.StatusOK)
			return
		}

		chatID := update.Message.Chat.ID

		// O locale do payload vence; sem ele, cai no idioma do cliente do
		// remetente. Valores desconhecidos normalizam para o padrão.
		if locale == "" && update.Message.From != nil {
			locale = update.Message.From.LanguageCode
		}
		locale = string(reporting.NormalizeLocale(locale))

		// Um chat só pertence a um usuário: revincular desconecta o dono
		// anterior.
		previous, err := userRepo.GetUserByTelegramChatID(chatID)
		if err == nil && previous != nil && previous.ID != user.ID {
			if err := userRepo.ClearTelegramRegistration(previous.ID); err != nil {
				logrus.WithError(err).Error("telegram: failed to unbind previous chat owner")
			}
		}

		username := ""
		if update.Message.From != nil {
			username = update.Message.From.Username
		}

		if err := userRepo.SetTelegramRegistration(user.ID, chatID, username, locale); err != nil {
			logrus.WithError(err).Error("telegram: failed to store registration")
			w.WriteHeader(http.StatusOK)
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"chat_id": chatID,
			"locale":  locale,
		}).Info("telegram: chat linked")

		if err := messenger.SendMessage(chatID, telegramWelcome[reporting.NormalizeLocale(locale)]); err != nil {
			logrus.WithError(err).Warn("telegram: failed to send welcome message")
		}

		w.WriteHeader(http.StatusOK)
	}
}

// TelegramLogout desfaz o vínculo do chat do usuário autenticado
func TelegramLogout(userRepo repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := userRepo.ClearTelegramRegistration(claims.UserID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao desvincular chat", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// TelegramChatID devolve o vínculo atual do usuário autenticado
func TelegramChatID(userRepo repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := userRepo.GetUserByID(claims.UserID)
		if err != nil || user == nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		response := map[string]any{
			"linked": user.HasTelegram(),
		}
		if user.TelegramChatID != nil {
			response["chat_id"] = *user.TelegramChatID
		}
		if user.TelegramUsername != nil {
			response["username"] = *user.TelegramUsername
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// TelegramDailyToggle liga ou desliga o recebimento do relatório diário
func TelegramDailyToggle(userRepo repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req TelegramDailyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := userRepo.SetTelegramDailyEnabled(claims.UserID, req.Enabled); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar preferência", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"enabled": req.Enabled})
	}
}
