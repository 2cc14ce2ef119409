package metaclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.InsightFields = "spend,impressions,clicks,reach,frequency,ctr,cpc,cpm,actions"
	cfg.Meta.ActiveStatuses = []string{"ACTIVE"}
	cfg.Meta.ListTimeout = 5 * time.Second
	cfg.Meta.ControlTimeout = 5 * time.Second
	cfg.Meta.AppID = "app-id"
	cfg.Meta.AppSecret = "app-secret"

	return NewClient(cfg, &http.Client{})
}

func TestGetCampaigns_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/campaigns", r.URL.Path)
		assert.Equal(t, "token-abc", r.URL.Query().Get("access_token"))
		assert.Contains(t, r.URL.Query().Get("filtering"), "effective_status")

		fmt.Fprint(w, `{
			"data": [
				{"id": "c1", "name": "Campanha 1", "status": "ACTIVE", "objective": "OUTCOME_ENGAGEMENT"},
				{"id": "c2", "name": "Campanha 2", "status": "ACTIVE", "objective": "OUTCOME_TRAFFIC"}
			],
			"paging": {"cursors": {"before": "x", "after": "y"}}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.GetCampaigns("123", "token-abc", true)

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "Campanha 2", campaigns[1].Name)
}

func TestGetCampaigns_FollowsPagingNext(t *testing.T) {
	var server *httptest.Server
	requests := 0

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch requests {
		case 1:
			// a URL de continuação é autossuficiente, sem os parâmetros originais
			fmt.Fprintf(w, `{
				"data": [{"id": "c1", "name": "Campanha 1"}],
				"paging": {"next": "%s/act_123/campaigns?after=cursor-1"}
			}`, server.URL)
		case 2:
			assert.Equal(t, "cursor-1", r.URL.Query().Get("after"))
			fmt.Fprint(w, `{"data": [{"id": "c2", "name": "Campanha 2"}], "paging": {}}`)
		default:
			t.Fatalf("requisição inesperada: %d", requests)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.GetCampaigns("123", "token-abc", false)

	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c2", campaigns[1].ID)
}

func TestGetCampaigns_ErrorEnvelopeDiscardsPartials(t *testing.T) {
	var server *httptest.Server
	requests := 0

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			fmt.Fprintf(w, `{
				"data": [{"id": "c1", "name": "Campanha 1"}],
				"paging": {"next": "%s/act_123/campaigns?after=cursor-1"}
			}`, server.URL)
			return
		}

		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "User request limit reached", "type": "OAuthException", "code": 17}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.GetCampaigns("123", "token-abc", false)

	require.Error(t, err)
	assert.Nil(t, campaigns)

	var upstreamErr *metadomain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 17, upstreamErr.Code)
	assert.True(t, upstreamErr.IsRateLimited())
	assert.Contains(t, upstreamErr.Body, "User request limit reached")
}

func TestGetCampaignInsights_QueryShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/insights", r.URL.Path)
		assert.Equal(t, "campaign", r.URL.Query().Get("level"))
		assert.Contains(t, r.URL.Query().Get("fields"), "campaign_id")
		assert.Contains(t, r.URL.Query().Get("time_range"), `"since":"2026-08-01"`)
		assert.Contains(t, r.URL.Query().Get("time_range"), `"until":"2026-08-27"`)

		fmt.Fprint(w, `{
			"data": [{
				"campaign_id": "c1",
				"spend": "10.50",
				"impressions": "1000",
				"clicks": "37",
				"actions": [
					{"action_type": "link_click", "value": "30"},
					{"action_type": "onsite_conversion.messaging_conversation_started_7d", "value": "5"}
				],
				"date_start": "2026-08-01",
				"date_stop": "2026-08-27"
			}]
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	timeRange := domain.TimeRange{
		Since: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	}

	insights, err := client.GetCampaignInsights("123", "token-abc", timeRange)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "c1", insights[0].CampaignID)
	assert.Equal(t, "10.50", insights[0].Spend)

	conversations := insights[0].ConversationsValue()
	require.NotNil(t, conversations)
	assert.Equal(t, "5", *conversations)
}

func TestGetAdSetInsights_ScopesByCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/insights", r.URL.Path)
		assert.Equal(t, "adset", r.URL.Query().Get("level"))
		assert.Contains(t, r.URL.Query().Get("filtering"), `"campaign.id"`)
		assert.Contains(t, r.URL.Query().Get("filtering"), `"c1"`)

		fmt.Fprint(w, `{"data": [{"adset_id": "as1", "spend": "3.00"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	insights, err := client.GetAdSetInsights("123", "c1", "token-abc", domain.TimeRange{
		Since: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "as1", insights[0].AdSetID)
}

func TestExchangeToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "app-id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "short-token", r.URL.Query().Get("fb_exchange_token"))

		fmt.Fprint(w, `{"access_token": "long-token", "token_type": "bearer", "expires_in": 5184000}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	token, err := client.ExchangeToken("short-token")

	require.NoError(t, err)
	assert.Equal(t, "long-token", token.AccessToken)
	assert.Equal(t, int64(5184000), token.ExpiresIn)
}

func TestExchangeToken_InvalidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	token, err := client.ExchangeToken("bad-token")

	require.Error(t, err)
	assert.Nil(t, token)

	var upstreamErr *metadomain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 190, upstreamErr.Code)
	assert.False(t, upstreamErr.IsRateLimited())
}
