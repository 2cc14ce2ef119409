package meta

import (
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

type Integrator interface {
	GetAdAccounts(accessToken string) ([]domain.AdAccount, error)
	GetCampaigns(accountID, accessToken string, timeRange domain.TimeRange, activeOnly bool) ([]domain.Campaign, error)
	GetAdSets(accountID, campaignID, accessToken string, timeRange domain.TimeRange) ([]domain.AdSet, error)
	GetAds(adsetID, accessToken string, timeRange domain.TimeRange) ([]domain.Ad, error)
	ExchangeToken(shortLivedToken string) (*metadomain.TokenResponse, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) GetAdAccounts(accessToken string) ([]domain.AdAccount, error) {
	resp, err := s.Client.GetAdAccounts(accessToken)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("insights: failed to get ad accounts from API")
		return nil, err
	}

	accounts := make([]domain.AdAccount, 0, len(resp))
	for _, account := range resp {
		accounts = append(accounts, domain.AdAccount{
			AccountID:     account.AccountID,
			Name:          account.Name,
			Currency:      account.Currency,
			AccountStatus: account.AccountStatus,
		})
	}

	return accounts, nil
}

// GetCampaigns monta o relatório de campanhas de uma conta com duas
// requisições: a listagem de campanhas e uma única consulta de insights
// quebrada por campanha. A junção é feita por campaign_id, preservando a
// ordem da listagem. Campanhas sem nenhuma atividade no período (gasto e
// impressões zerados) ficam de fora do resultado.
func (s *MetaIntegrator) GetCampaigns(accountID, accessToken string, timeRange domain.TimeRange, activeOnly bool) ([]domain.Campaign, error) {
	listing, err := s.Client.GetCampaigns(accountID, accessToken, activeOnly)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns from API")
		return nil, err
	}

	insights, err := s.Client.GetCampaignInsights(accountID, accessToken, timeRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	insightsByCampaign := make(map[string]*metadomain.Insight, len(insights))
	for i := range insights {
		insightsByCampaign[insights[i].CampaignID] = &insights[i]
	}

	campaigns := make([]domain.Campaign, 0, len(listing))
	for _, campaign := range listing {
		insight, ok := insightsByCampaign[campaign.ID]
		if !ok {
			continue
		}

		record := toInsightRecord(insight)
		if !record.HasActivity() {
			continue
		}

		campaigns = append(campaigns, domain.Campaign{
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			Objective:    campaign.Objective,
			Status:       campaign.Status,
			UpdatedTime:  campaign.UpdatedTime,
			Insights:     record,
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(campaigns),
		"since":      timeRange.SinceString(),
		"until":      timeRange.UntilString(),
	}).Debug("insights: successfully built campaign report")

	return campaigns, nil
}

// GetAdSets junta a listagem de conjuntos de uma campanha com a consulta de
// insights da conta escopada pela campanha. Conjuntos sem registro de
// insight no período são descartados; os demais entram mesmo com métricas
// zeradas.
func (s *MetaIntegrator) GetAdSets(accountID, campaignID, accessToken string, timeRange domain.TimeRange) ([]domain.AdSet, error) {
	listing, err := s.Client.GetAdSets(campaignID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("insights: failed to get ad sets from API")
		return nil, err
	}

	insights, err := s.Client.GetAdSetInsights(accountID, campaignID, accessToken, timeRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("insights: failed to get ad set insights from API")
		return nil, err
	}

	insightsByAdSet := make(map[string]*metadomain.Insight, len(insights))
	for i := range insights {
		insightsByAdSet[insights[i].AdSetID] = &insights[i]
	}

	adSets := make([]domain.AdSet, 0, len(listing))
	for _, adSet := range listing {
		insight, ok := insightsByAdSet[adSet.ID]
		if !ok {
			continue
		}

		adSets = append(adSets, domain.AdSet{
			AdSetID:   adSet.ID,
			AdSetName: adSet.Name,
			Status:    adSet.Status,
			Targeting: adSet.Targeting,
			Insights:  toInsightRecord(insight),
		})
	}

	return adSets, nil
}

// GetAds lista os anúncios de um conjunto e busca as métricas de cada um em
// paralelo, com no máximo MaxConcurrentFetches requisições simultâneas. A
// primeira falha invalida o lote inteiro. Anúncios cuja consulta não devolve
// registro, ou devolve registro vazio depois da limpeza dos campos de data,
// ficam de fora. A ordem da listagem é preservada.
func (s *MetaIntegrator) GetAds(adsetID, accessToken string, timeRange domain.TimeRange) ([]domain.Ad, error) {
	listing, err := s.Client.GetAds(adsetID, accessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Error("insights: failed to get ads from API")
		return nil, err
	}

	maxConcurrent := s.cfg.Meta.MaxConcurrentFetches
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	ads := make([]domain.Ad, len(listing))

	var (
		wg       sync.WaitGroup
		errMutex sync.Mutex
		firstErr error
	)
	semaphore := make(chan struct{}, maxConcurrent)

	for i, ad := range listing {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(index int, ad metadomain.Ad) {
			defer wg.Done()
			defer func() { <-semaphore }()

			insights, err := s.Client.GetAdInsights(ad.ID, accessToken, timeRange)
			if err != nil {
				errMutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMutex.Unlock()

				logrus.WithFields(logrus.Fields{
					"ad_id": ad.ID,
					"error": err.Error(),
				}).Error("insights: failed to get ad insights from API")
				return
			}

			converted := domain.Ad{
				AdID:   ad.ID,
				AdName: ad.Name,
				Status: ad.Status,
				Creative: domain.Creative{
					ID:           ad.Creative.ID,
					ThumbnailURL: ad.Creative.ThumbnailURL,
					Body:         ad.Creative.Body,
					Title:        ad.Creative.Title,
					LinkURL:      ad.Creative.LinkURL,
					ImageURL:     ad.Creative.ImageURL,
					VideoID:      ad.Creative.VideoID,
				},
			}
			if len(insights) > 0 {
				converted.Insights = toInsightRecord(&insights[0])
			}

			ads[index] = converted
		}(i, ad)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	withInsights := make([]domain.Ad, 0, len(ads))
	for i := range ads {
		if ads[i].Insights.IsEmpty() {
			continue
		}
		withInsights = append(withInsights, ads[i])
	}

	return withInsights, nil
}

func (s *MetaIntegrator) ExchangeToken(shortLivedToken string) (*metadomain.TokenResponse, error) {
	resp, err := s.Client.ExchangeToken(shortLivedToken)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("insights: failed to exchange access token")
		return nil, err
	}

	return resp, nil
}

// toInsightRecord converte o registro cru da Graph API para o formato de
// domínio, descartando o eco de datas e extraindo a métrica de conversas a
// partir das ações.
func toInsightRecord(insight *metadomain.Insight) *domain.InsightRecord {
	return &domain.InsightRecord{
		Spend:         insight.Spend,
		Impressions:   insight.Impressions,
		Clicks:        insight.Clicks,
		Reach:         insight.Reach,
		Frequency:     insight.Frequency,
		CTR:           insight.CTR,
		CPC:           insight.CPC,
		CPM:           insight.CPM,
		Conversations: insight.ConversationsValue(),
	}
}
