package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

// claimsFromContext extrai as claims do usuário autenticado do contexto.
func claimsFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// parseTimeRange lê since/until da query string. Os dois parâmetros andam
// juntos; a ausência de ambos cai no intervalo padrão do serviço.
func parseTimeRange(r *http.Request) (*domain.TimeRange, error) {
	since := r.URL.Query().Get("since")
	until := r.URL.Query().Get("until")

	if since == "" && until == "" {
		return nil, nil
	}

	if since == "" || until == "" {
		return nil, errors.New("since e until devem ser informados juntos")
	}

	sinceDate, err := time.Parse(time.DateOnly, since)
	if err != nil {
		return nil, errors.New("since inválido, use o formato YYYY-MM-DD")
	}

	untilDate, err := time.Parse(time.DateOnly, until)
	if err != nil {
		return nil, errors.New("until inválido, use o formato YYYY-MM-DD")
	}

	if sinceDate.After(untilDate) {
		return nil, errors.New("since não pode ser posterior a until")
	}

	return &domain.TimeRange{Since: sinceDate, Until: untilDate}, nil
}

// writeInsightError traduz as falhas do pipeline de dados para os códigos da
// API. O detalhe do upstream vai para o log; o cliente recebe a mensagem
// genérica.
func writeInsightError(w http.ResponseWriter, err error) {
	var upstream *metadomain.UpstreamError
	if errors.As(err, &upstream) {
		logrus.WithFields(logrus.Fields{
			"code": upstream.Code,
			"body": upstream.Body,
		}).Error("insights: upstream error")

		if upstream.IsRateLimited() {
			apiErrors.WriteError(w, apiErrors.ErrUpstreamRateLimited, "Limite de requisições da plataforma de anúncios atingido", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "Plataforma de anúncios indisponível", nil)
		return
	}

	switch {
	case errors.Is(err, reporting.ErrCredentialMissing):
		apiErrors.WriteError(w, apiErrors.ErrCredentialMissing, "Nenhum token de acesso conectado para este usuário", nil)

	case errors.Is(err, reporting.ErrAccountAccessDenied):
		apiErrors.WriteError(w, apiErrors.ErrAccountAccessDenied, "Conta de anúncios fora do escopo do usuário", nil)

	case errors.Is(err, insighting.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar dados de anúncios", nil)
	}
}

// ListMetaAccounts lista as contas de anúncios visíveis para o usuário
func ListMetaAccounts(service insighting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		accounts, err := service.ListAccounts(claims.UserID)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}

// ListMetaCampaigns lista as campanhas de uma conta com os insights do
// período já mesclados
func ListMetaCampaigns(service insighting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		timeRange, err := parseTimeRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		activeOnly := r.URL.Query().Get("active_only") == "true"

		campaigns, err := service.ListCampaigns(claims.UserID, accountID, timeRange, activeOnly)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaigns)
	}
}

// ListMetaAdSets lista os conjuntos de anúncios de uma campanha
func ListMetaAdSets(service insighting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		campaignID := params.ByName("campaign_id")
		if accountID == "" || campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta e da campanha são obrigatórios", nil)
			return
		}

		timeRange, err := parseTimeRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		adsets, err := service.ListAdSets(claims.UserID, accountID, campaignID, timeRange)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(adsets)
	}
}

// ListMetaAds lista os anúncios de um conjunto com criativos e insights
func ListMetaAds(service insighting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adsetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conjunto de anúncios não fornecido", nil)
			return
		}

		timeRange, err := parseTimeRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ads, err := service.ListAds(claims.UserID, adsetID, timeRange)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ads)
	}
}
