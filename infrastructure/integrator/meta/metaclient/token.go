package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

// ExchangeToken troca um token de curta duração por um de longa duração
// (~60 dias) usando as credenciais do app.
func (c *MetaClient) ExchangeToken(shortLivedToken string) (*metadomain.TokenResponse, error) {
	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", c.cfg.Meta.AppID)
	params.Set("client_secret", c.cfg.Meta.AppSecret)
	params.Set("fb_exchange_token", shortLivedToken)

	requestURL := fmt.Sprintf("%s/oauth/access_token?%s", c.cfg.Meta.URL, params.Encode())

	body, statusCode, err := c.doGet(requestURL, c.cfg.Meta.ControlTimeout)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		metadomain.TokenResponse
		Error *metadomain.ErrorDetails `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	if envelope.Error != nil {
		return nil, metadomain.NewUpstreamError(envelope.Error, body)
	}

	if statusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("meta api returned status %d without error envelope", statusCode)
	}

	return &envelope.TokenResponse, nil
}
