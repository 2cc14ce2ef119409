package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// GetAdSets lista os conjuntos de anúncio de uma campanha, sem filtro de
// status: a seleção do que aparece no relatório acontece na agregação.
func (c *MetaClient) GetAdSets(campaignID, accessToken string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,targeting")

	endpoint := fmt.Sprintf("%s/adsets", campaignID)

	return fetchAllPages[metadomain.AdSet](c, endpoint, accessToken, params)
}

// GetAdSetInsights busca as métricas por conjunto de anúncio de uma campanha
// usando a consulta de insights da conta com escopo pelo id da campanha.
func (c *MetaClient) GetAdSetInsights(accountID, campaignID, accessToken string, timeRange domain.TimeRange) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Set("fields", "adset_id,"+c.cfg.Meta.InsightFields)
	params.Set("level", "adset")
	params.Set("filtering", equalFilter("campaign.id", campaignID))
	params.Set("time_range", timeRangeParam(timeRange))

	endpoint := fmt.Sprintf("act_%s/insights", accountID)

	return fetchAllPages[metadomain.Insight](c, endpoint, accessToken, params)
}
