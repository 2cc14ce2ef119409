package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// GetAds lista os anúncios de um conjunto, com os campos do criativo que o
// frontend usa para renderizar a prévia.
func (c *MetaClient) GetAds(adsetID, accessToken string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,creative{id,thumbnail_url,body,title,link_url,image_url,video_id}")

	endpoint := fmt.Sprintf("%s/ads", adsetID)

	return fetchAllPages[metadomain.Ad](c, endpoint, accessToken, params)
}

// GetAdInsights busca as métricas de um único anúncio no período.
func (c *MetaClient) GetAdInsights(adID, accessToken string, timeRange domain.TimeRange) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Set("fields", c.cfg.Meta.InsightFields)
	params.Set("time_range", timeRangeParam(timeRange))

	endpoint := fmt.Sprintf("%s/insights", adID)

	return fetchAllPages[metadomain.Insight](c, endpoint, accessToken, params)
}
