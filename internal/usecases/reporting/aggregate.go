package reporting

import (
	"sort"
	"strconv"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// OtherObjectiveBucket agrupa campanhas sem objetivo declarado.
const OtherObjectiveBucket = "OTHER"

// Totals é o rollup de métricas de um conjunto de campanhas. Os ratios são
// sempre derivados das somas, nunca somados a partir dos valores por
// campanha.
type Totals struct {
	Spend         float64
	Impressions   int64
	Clicks        int64
	Reach         int64
	Conversations int64
	CTR           float64
	CPM           float64
	CPC           float64
	ActiveCount   int
	PausedCount   int
}

// Group é um bucket de campanhas com o mesmo objetivo, agregado com as
// mesmas fórmulas dos totais gerais.
type Group struct {
	Objective string
	Campaigns int
	Totals    Totals
}

// Aggregate soma as métricas de todas as campanhas informadas. Valores não
// numéricos ou ausentes contam como zero; agregação nunca falha.
func Aggregate(campaigns []domain.Campaign) Totals {
	var totals Totals

	for _, campaign := range campaigns {
		if campaign.Status == domain.StatusActive {
			totals.ActiveCount++
		} else {
			totals.PausedCount++
		}

		insights := campaign.Insights
		if insights == nil {
			continue
		}

		totals.Spend += parseFloat(insights.Spend)
		totals.Impressions += parseInt(insights.Impressions)
		totals.Clicks += parseInt(insights.Clicks)
		totals.Reach += parseInt(insights.Reach)
		if insights.Conversations != nil {
			totals.Conversations += parseInt(*insights.Conversations)
		}
	}

	totals.deriveRatios()

	return totals
}

// GroupByObjective particiona as campanhas por objetivo e agrega cada bucket
// de forma independente. A ordem dos buckets é lexicográfica para que o
// mesmo relatório saia sempre igual.
func GroupByObjective(campaigns []domain.Campaign) []Group {
	byObjective := make(map[string][]domain.Campaign)
	for _, campaign := range campaigns {
		objective := campaign.Objective
		if objective == "" {
			objective = OtherObjectiveBucket
		}
		byObjective[objective] = append(byObjective[objective], campaign)
	}

	objectives := make([]string, 0, len(byObjective))
	for objective := range byObjective {
		objectives = append(objectives, objective)
	}
	sort.Strings(objectives)

	groups := make([]Group, 0, len(objectives))
	for _, objective := range objectives {
		bucket := byObjective[objective]
		groups = append(groups, Group{
			Objective: objective,
			Campaigns: len(bucket),
			Totals:    Aggregate(bucket),
		})
	}

	return groups
}

// deriveRatios calcula ctr/cpm/cpc a partir das somas, com divisor zero
// resultando em zero, nunca em erro.
func (t *Totals) deriveRatios() {
	if t.Impressions > 0 {
		t.CTR = utils.RoundWithTwoDecimalPlace(float64(t.Clicks) / float64(t.Impressions) * 100)
		t.CPM = utils.RoundWithTwoDecimalPlace(t.Spend / float64(t.Impressions) * 1000)
	}

	if t.Clicks > 0 {
		t.CPC = utils.RoundWithTwoDecimalPlace(t.Spend / float64(t.Clicks))
	}
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseInt(value string) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// upstream ocasionalmente manda inteiros com casa decimal
		asFloat, floatErr := strconv.ParseFloat(value, 64)
		if floatErr != nil {
			return 0
		}
		return int64(asFloat)
	}
	return parsed
}
