package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, LocalePT, NormalizeLocale("pt"))
	assert.Equal(t, LocaleEN, NormalizeLocale("EN"))
	assert.Equal(t, LocalePT, NormalizeLocale("fr"))
	assert.Equal(t, LocalePT, NormalizeLocale(""))
}

func TestFormatDecimal_ThousandsGroupedWithNBSP(t *testing.T) {
	labels := labelsByLocale[LocalePT]

	assert.Equal(t, "1"+nbsp+"234"+nbsp+"567,89", formatDecimal(1234567.89, labels))
	assert.Equal(t, "999,00", formatDecimal(999, labels))
	assert.Equal(t, "0,00", formatDecimal(0, labels))
}

func TestFormatInt_Grouping(t *testing.T) {
	assert.Equal(t, "10"+nbsp+"000", formatInt(10000))
	assert.Equal(t, "100", formatInt(100))
}

func TestFormatMoney_SymbolTableAndFallback(t *testing.T) {
	labels := labelsByLocale[LocaleEN]

	assert.Equal(t, "$100.00", formatMoney(100, "USD", labels))
	assert.Equal(t, "R$100.00", formatMoney(100, "BRL", labels))
	assert.Equal(t, "€100.00", formatMoney(100, "EUR", labels))
	// moeda fora da tabela sai como código seguido de espaço
	assert.Equal(t, "UAH 100.00", formatMoney(100, "UAH", labels))
}

func TestFormatMemberReport_SingleDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	timeRange := domain.TimeRange{Since: day, Until: day}

	report := AccountReport{
		AccountName: "Loja Floripa",
		Currency:    "BRL",
		Totals: Totals{
			Spend:       1234.5,
			Impressions: 10000,
			Clicks:      200,
			Reach:       8000,
			CTR:         2,
			CPC:         6.17,
			CPM:         123.45,
			ActiveCount: 3,
			PausedCount: 1,
		},
		Groups: []Group{
			{Objective: "OUTCOME_TRAFFIC", Campaigns: 4},
		},
	}

	text := FormatMemberReport(report, domain.PeriodYesterday, timeRange, LocalePT)

	assert.Contains(t, text, "📊 <b>Relatório de campanhas</b>")
	assert.Contains(t, text, "Ontem")
	// período de um dia só não mostra linha de intervalo
	assert.NotContains(t, text, "📅")
	assert.Contains(t, text, "🏢 <b>Loja Floripa</b>")
	assert.Contains(t, text, "💰 Investimento: R$1"+nbsp+"234,50")
	assert.Contains(t, text, "👁 Impressões: 10"+nbsp+"000")
	assert.Contains(t, text, "CTR: 2,00%")
	assert.Contains(t, text, "✅ Ativas: 3 · ⏸ Pausadas: 1")
	// um grupo só não gera quebra por objetivo
	assert.NotContains(t, text, "OUTCOME_TRAFFIC")
}

func TestFormatMemberReport_MultipleGroupsAndRangeLine(t *testing.T) {
	timeRange := domain.TimeRange{
		Since: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	report := AccountReport{
		AccountName: "Store One",
		Currency:    "USD",
		Totals:      Totals{Spend: 100, Impressions: 1000, Clicks: 20, CTR: 2, CPM: 100, CPC: 5},
		Groups: []Group{
			{Objective: "OTHER", Campaigns: 1, Totals: Totals{Spend: 40}},
			{Objective: "OUTCOME_TRAFFIC", Campaigns: 2, Totals: Totals{Spend: 60}},
		},
	}

	text := FormatMemberReport(report, domain.PeriodMonth, timeRange, LocaleEN)

	assert.Contains(t, text, "This month")
	assert.Contains(t, text, "📅 01 Mar 2026 – 15 Mar 2026")
	assert.Contains(t, text, "<b>OTHER</b> (Campaigns: 1)")
	assert.Contains(t, text, "<b>OUTCOME_TRAFFIC</b> (Campaigns: 2)")
}

func TestFormatAdminReport_DividerBetweenAccounts(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	timeRange := domain.TimeRange{Since: day, Until: day}

	reports := []AccountReport{
		{
			AccountName: "Conta A",
			Currency:    "BRL",
			Totals:      Totals{Spend: 10, ActiveCount: 1},
			Groups:      []Group{{Objective: "OUTCOME_TRAFFIC", Campaigns: 1, Totals: Totals{Spend: 10}}},
		},
		{
			AccountName: "Conta B",
			Currency:    "BRL",
			Totals:      Totals{Spend: 20, ActiveCount: 2},
			Groups:      []Group{{Objective: "OTHER", Campaigns: 2, Totals: Totals{Spend: 20}}},
		},
	}

	text := FormatAdminReport(reports, domain.PeriodYesterday, timeRange, LocalePT)

	assert.Contains(t, text, "🏢 <b>Conta A</b>")
	assert.Contains(t, text, "🏢 <b>Conta B</b>")
	assert.Equal(t, 1, strings.Count(text, accountDivider))

	// divisor aparece entre as contas, não no fim
	assert.Greater(t, strings.Index(text, "Conta B"), strings.Index(text, accountDivider))
	assert.Less(t, strings.Index(text, "Conta A"), strings.Index(text, accountDivider))
}
