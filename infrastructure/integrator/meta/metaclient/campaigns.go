package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// GetCampaigns lista as campanhas de uma conta. Com activeOnly, a listagem
// é restrita ao allowlist de status ativos pelo próprio upstream.
func (c *MetaClient) GetCampaigns(accountID, accessToken string, activeOnly bool) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,objective,updated_time")
	if activeOnly {
		params.Set("filtering", c.activeStatusFilter())
	}

	endpoint := fmt.Sprintf("act_%s/campaigns", accountID)

	return fetchAllPages[metadomain.Campaign](c, endpoint, accessToken, params)
}

// GetCampaignInsights busca, em uma única consulta por conta, as métricas de
// todas as campanhas no período, quebradas por campanha.
func (c *MetaClient) GetCampaignInsights(accountID, accessToken string, timeRange domain.TimeRange) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Set("fields", "campaign_id,"+c.cfg.Meta.InsightFields)
	params.Set("level", "campaign")
	params.Set("time_range", timeRangeParam(timeRange))

	endpoint := fmt.Sprintf("act_%s/insights", accountID)

	return fetchAllPages[metadomain.Insight](c, endpoint, accessToken, params)
}
