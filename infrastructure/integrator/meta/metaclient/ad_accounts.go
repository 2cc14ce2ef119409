package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

// GetAdAccounts lista as contas de anúncio visíveis pelo token informado.
func (c *MetaClient) GetAdAccounts(accessToken string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", "account_id,name,currency,account_status")

	return fetchAllPages[metadomain.AdAccount](c, "me/adaccounts", accessToken, params)
}
