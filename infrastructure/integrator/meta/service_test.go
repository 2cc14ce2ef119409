package meta

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

func newTestIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Meta.MaxConcurrentFetches = 5

	return New(cfg, client), client
}

func testTimeRange() domain.TimeRange {
	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	return domain.TimeRange{Since: day, Until: day}
}

func TestGetCampaigns_MergesInsightsByCampaignID(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	timeRange := testTimeRange()

	client.EXPECT().GetCampaigns("123", "token", false).Return([]metadomain.Campaign{
		{ID: "c1", Name: "Campanha 1", Status: "ACTIVE", Objective: "OUTCOME_ENGAGEMENT"},
		{ID: "c2", Name: "Campanha 2", Status: "PAUSED", Objective: "OUTCOME_TRAFFIC"},
	}, nil)

	client.EXPECT().GetCampaignInsights("123", "token", timeRange).Return([]metadomain.Insight{
		{
			CampaignID:  "c2",
			Spend:       "5.00",
			Impressions: "200",
			Clicks:      "8",
			DateStart:   "2026-08-27",
			DateStop:    "2026-08-27",
		},
		{
			CampaignID:  "c1",
			Spend:       "10.50",
			Impressions: "1000",
			Clicks:      "37",
			Actions: []metadomain.Action{
				{ActionType: "link_click", Value: "30"},
				{ActionType: metadomain.ActionTypeMessagingConversation, Value: "5"},
			},
			DateStart: "2026-08-27",
			DateStop:  "2026-08-27",
		},
	}, nil)

	campaigns, err := integrator.GetCampaigns("123", "token", timeRange, false)

	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	// ordem da listagem, não da consulta de insights
	assert.Equal(t, "c1", campaigns[0].CampaignID)
	assert.Equal(t, "c2", campaigns[1].CampaignID)

	require.NotNil(t, campaigns[0].Insights)
	assert.Equal(t, "10.50", campaigns[0].Insights.Spend)
	require.NotNil(t, campaigns[0].Insights.Conversations)
	assert.Equal(t, "5", *campaigns[0].Insights.Conversations)

	require.NotNil(t, campaigns[1].Insights)
	assert.Nil(t, campaigns[1].Insights.Conversations)
}

func TestGetCampaigns_DropsCampaignsWithoutActivity(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	timeRange := testTimeRange()

	client.EXPECT().GetCampaigns("123", "token", false).Return([]metadomain.Campaign{
		{ID: "c1", Name: "Com atividade"},
		{ID: "c2", Name: "Sem insights"},
		{ID: "c3", Name: "Atividade zerada"},
	}, nil)

	client.EXPECT().GetCampaignInsights("123", "token", timeRange).Return([]metadomain.Insight{
		{CampaignID: "c1", Spend: "1.00", Impressions: "10"},
		{CampaignID: "c3", Spend: "0", Impressions: "0", Clicks: "0"},
	}, nil)

	campaigns, err := integrator.GetCampaigns("123", "token", timeRange, false)

	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "c1", campaigns[0].CampaignID)
}

func TestGetCampaigns_InsightsErrorPropagates(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	timeRange := testTimeRange()

	client.EXPECT().GetCampaigns("123", "token", false).Return([]metadomain.Campaign{
		{ID: "c1", Name: "Campanha 1"},
	}, nil)

	upstreamErr := &metadomain.UpstreamError{Message: "User request limit reached", Code: 17}
	client.EXPECT().GetCampaignInsights("123", "token", timeRange).Return(nil, upstreamErr)

	campaigns, err := integrator.GetCampaigns("123", "token", timeRange, false)

	require.Error(t, err)
	assert.Nil(t, campaigns)

	var respErr *metadomain.UpstreamError
	require.ErrorAs(t, err, &respErr)
	assert.True(t, respErr.IsRateLimited())
}

func TestGetAdSets_KeepsOnlyAdSetsWithInsights(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	timeRange := testTimeRange()

	client.EXPECT().GetAdSets("c1", "token").Return([]metadomain.AdSet{
		{ID: "as1", Name: "Conjunto 1", Status: "ACTIVE"},
		{ID: "as2", Name: "Conjunto 2", Status: "ACTIVE"},
	}, nil)

	client.EXPECT().GetAdSetInsights("123", "c1", "token", timeRange).Return([]metadomain.Insight{
		{AdSetID: "as2", Spend: "0", Impressions: "0"},
	}, nil)

	adSets, err := integrator.GetAdSets("123", "c1", "token", timeRange)

	require.NoError(t, err)
	require.Len(t, adSets, 1)
	// conjunto com métricas zeradas permanece; o filtro é só por existência
	assert.Equal(t, "as2", adSets[0].AdSetID)
	require.NotNil(t, adSets[0].Insights)
}

func TestGetAds_FetchesInsightsPerAdPreservingOrder(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	timeRange := testTimeRange()

	listing := []metadomain.Ad{
		{ID: "ad1", Name: "Anúncio 1", Status: "ACTIVE", Creative: metadomain.Creative{ID: "cr1"}},
		{ID: "ad2", Name: "Anúncio 2", Status: "ACTIVE"},
		{ID: "ad3", Name: "Anúncio 3", Status: "PAUSED"},
	}
	client.EXPECT().GetAds("as1", "token").Return(listing, nil)

	client.EXPECT().GetAdInsights("ad1", "token", timeRange).Return([]metadomain.Insight{
		{Spend: "1.00", Impressions: "100"},
	}, nil)
	client.EXPECT().GetAdInsights("ad2", "token", timeRange).Return([]metadomain.Insight{
		{Spend: "2.00", Impressions: "200"},
	}, nil)
	client.EXPECT().GetAdInsights("ad3", "token", timeRange).Return([]metadomain.Insight{
		{Spend: "0.50", Impressions: "50"},
	}, nil)

	ads, err := integrator.GetAds("as1", "token", timeRange)

	require.NoError(t, err)
	require.Len(t, ads, 3)
	assert.Equal(t, "ad1", ads[0].AdID)
	assert.Equal(t, "ad2", ads[1].AdID)
	assert.Equal(t, "ad3", ads[2].AdID)
	assert.Equal(t, "cr1", ads[0].Creative.ID)

	require.NotNil(t, ads[1].Insights)
	assert.Equal(t, "2.00", ads[1].Insights.Spend)
}

func TestGetAds_DropsAdsWithoutInsights(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	timeRange := testTimeRange()

	client.EXPECT().GetAds("as1", "token").Return([]metadomain.Ad{
		{ID: "ad1", Name: "Com métricas"},
		{ID: "ad2", Name: "Sem registro"},
		{ID: "ad3", Name: "Só eco de datas"},
		{ID: "ad4", Name: "Métricas zeradas"},
	}, nil)

	client.EXPECT().GetAdInsights("ad1", "token", timeRange).Return([]metadomain.Insight{
		{Spend: "1.00", Impressions: "100"},
	}, nil)
	client.EXPECT().GetAdInsights("ad2", "token", timeRange).Return(nil, nil)
	// depois da limpeza de date_start/date_stop não sobra métrica nenhuma
	client.EXPECT().GetAdInsights("ad3", "token", timeRange).Return([]metadomain.Insight{
		{DateStart: "2026-08-27", DateStop: "2026-08-27"},
	}, nil)
	client.EXPECT().GetAdInsights("ad4", "token", timeRange).Return([]metadomain.Insight{
		{Spend: "0", Impressions: "0"},
	}, nil)

	ads, err := integrator.GetAds("as1", "token", timeRange)

	require.NoError(t, err)
	require.Len(t, ads, 2)
	// anúncio com métricas zeradas permanece; o filtro é só por existência
	assert.Equal(t, "ad1", ads[0].AdID)
	assert.Equal(t, "ad4", ads[1].AdID)
}

func TestGetAds_SingleFailureInvalidatesBatch(t *testing.T) {
	integrator, client := newTestIntegrator(t)
	timeRange := testTimeRange()

	client.EXPECT().GetAds("as1", "token").Return([]metadomain.Ad{
		{ID: "ad1", Name: "Anúncio 1"},
		{ID: "ad2", Name: "Anúncio 2"},
	}, nil)

	client.EXPECT().GetAdInsights("ad1", "token", timeRange).Return([]metadomain.Insight{
		{Spend: "1.00", Impressions: "100"},
	}, nil)
	client.EXPECT().GetAdInsights("ad2", "token", timeRange).Return(nil, errors.New("connection reset"))

	ads, err := integrator.GetAds("as1", "token", timeRange)

	require.Error(t, err)
	assert.Nil(t, ads)
}

func TestGetAdAccounts(t *testing.T) {
	integrator, client := newTestIntegrator(t)

	client.EXPECT().GetAdAccounts("token").Return([]metadomain.AdAccount{
		{ID: "act_123", AccountID: "123", Name: "Conta 1", Currency: "BRL", AccountStatus: 1},
	}, nil)

	accounts, err := integrator.GetAdAccounts("token")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "123", accounts[0].AccountID)
	assert.Equal(t, "BRL", accounts[0].Currency)
}
