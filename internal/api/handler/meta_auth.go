package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

type ExchangeTokenRequest struct {
	ShortLivedToken string `json:"short_lived_token"`
}

// ExchangeMetaToken troca o token de curta duração do administrador por um
// de longa duração e o persiste. Este é o único caminho de escrita do token.
func ExchangeMetaToken(service insighting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExchangeMetaToken")

		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ExchangeTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.ShortLivedToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Token de curta duração não fornecido", nil)
			return
		}

		if err := service.ConnectToken(claims.UserID, req.ShortLivedToken); err != nil {
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Token conectado com sucesso",
		})
	}
}

// GetMetaTokenStatus informa se há token de longa duração conectado para o
// usuário (membros refletem o status do administrador que os criou)
func GetMetaTokenStatus(service insighting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		status, err := service.TokenStatus(claims.UserID)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

// DisconnectMetaToken remove o token de longa duração do administrador
func DisconnectMetaToken(service insighting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DisconnectMetaToken")

		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.DisconnectToken(claims.UserID); err != nil {
			writeInsightError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
