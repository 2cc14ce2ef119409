package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdAccounts(accessToken string) ([]metadomain.AdAccount, error)
	GetCampaigns(accountID, accessToken string, activeOnly bool) ([]metadomain.Campaign, error)
	GetCampaignInsights(accountID, accessToken string, timeRange domain.TimeRange) ([]metadomain.Insight, error)
	GetAdSets(campaignID, accessToken string) ([]metadomain.AdSet, error)
	GetAdSetInsights(accountID, campaignID, accessToken string, timeRange domain.TimeRange) ([]metadomain.Insight, error)
	GetAds(adsetID, accessToken string) ([]metadomain.Ad, error)
	GetAdInsights(adID, accessToken string, timeRange domain.TimeRange) ([]metadomain.Insight, error)
	ExchangeToken(shortLivedToken string) (*metadomain.TokenResponse, error)
}

// MetaClient fala com a Graph API usando um http.Client compartilhado,
// criado uma única vez no bootstrap do processo.
type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	return &MetaClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// page é o envelope de listagem da Graph API. Toda resposta é decodificada
// aqui na borda; o restante do sistema só vê structs tipadas.
type page[T any] struct {
	Data   []T                      `json:"data"`
	Paging *metadomain.Paging       `json:"paging"`
	Error  *metadomain.ErrorDetails `json:"error"`
}

// fetchAllPages percorre um endpoint paginado até o fim. A primeira
// requisição usa os parâmetros informados; as seguintes usam apenas a URL
// de continuação, que já é autossuficiente. Um envelope de erro em qualquer
// página interrompe tudo e descarta os resultados parciais. Não há retry:
// falhas transitórias sobem para o chamador.
func fetchAllPages[T any](c *MetaClient, endpoint string, accessToken string, params url.Values) ([]T, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, endpoint, params.Encode())

	var items []T
	for requestURL != "" {
		body, statusCode, err := c.doGet(requestURL, c.cfg.Meta.ListTimeout)
		if err != nil {
			return nil, err
		}

		var p page[T]
		if err := json.Unmarshal(body, &p); err != nil {
			logrus.WithError(err).WithField("endpoint", endpoint).Error("meta: erro ao decodificar resposta da Graph API")
			return nil, err
		}

		if p.Error != nil {
			metrics.MetaRequestErrors.Inc()
			return nil, metadomain.NewUpstreamError(p.Error, body)
		}

		if statusCode >= http.StatusBadRequest {
			metrics.MetaRequestErrors.Inc()
			return nil, fmt.Errorf("meta api returned status %d without error envelope", statusCode)
		}

		items = append(items, p.Data...)

		if p.Paging == nil || p.Paging.Next == "" {
			break
		}
		requestURL = p.Paging.Next
	}

	return items, nil
}

// doGet executa um GET com o timeout informado e devolve o corpo mesmo em
// respostas de erro: o envelope de erro da Graph API vem com status 4xx.
func (c *MetaClient) doGet(requestURL string, timeout time.Duration) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, err
	}

	metrics.MetaRequests.Inc()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.MetaRequestErrors.Inc()
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

type filterPredicate struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// activeStatusFilter monta o predicado de filtering que restringe listagens
// ao allowlist de status ativos da configuração.
func (c *MetaClient) activeStatusFilter() string {
	encoded, err := json.Marshal([]filterPredicate{
		{
			Field:    "effective_status",
			Operator: "IN",
			Value:    c.cfg.Meta.ActiveStatuses,
		},
	})
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao montar filtro de status ativos")
		return "[]"
	}
	return string(encoded)
}

func equalFilter(field, value string) string {
	encoded, _ := json.Marshal([]filterPredicate{
		{Field: field, Operator: "EQUAL", Value: value},
	})
	return string(encoded)
}

func timeRangeParam(timeRange domain.TimeRange) string {
	encoded, _ := json.Marshal(map[string]string{
		"since": timeRange.SinceString(),
		"until": timeRange.UntilString(),
	})
	return string(encoded)
}
