package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Locale dos relatórios. O primeiro da lista é o fallback para valores
// desconhecidos.
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
)

// nbsp separa os milhares: o Telegram não quebra linha no meio do número.
const nbsp = "\u00a0"

const accountDivider = "· · · · · · · · · · ·"

type labelSet struct {
	title         string
	periods       map[domain.ReportPeriod]string
	account       string
	spend         string
	impressions   string
	clicks        string
	reach         string
	conversations string
	campaigns     string
	active        string
	paused        string
	dateLayout    string
	decimalSep    string
}

var labelsByLocale = map[Locale]labelSet{
	LocalePT: {
		title: "📊 <b>Relatório de campanhas</b>",
		periods: map[domain.ReportPeriod]string{
			domain.PeriodToday:     "Hoje",
			domain.PeriodYesterday: "Ontem",
			domain.PeriodWeek:      "Últimos 7 dias",
			domain.PeriodMonth:     "Este mês",
			domain.PeriodLast30:    "Últimos 30 dias",
		},
		account:       "🏢",
		spend:         "💰 Investimento",
		impressions:   "👁 Impressões",
		clicks:        "🖱 Cliques",
		reach:         "🎯 Alcance",
		conversations: "💬 Conversas",
		campaigns:     "Campanhas",
		active:        "✅ Ativas",
		paused:        "⏸ Pausadas",
		dateLayout:    "02/01/2006",
		decimalSep:    ",",
	},
	LocaleEN: {
		title: "📊 <b>Campaign report</b>",
		periods: map[domain.ReportPeriod]string{
			domain.PeriodToday:     "Today",
			domain.PeriodYesterday: "Yesterday",
			domain.PeriodWeek:      "Last 7 days",
			domain.PeriodMonth:     "This month",
			domain.PeriodLast30:    "Last 30 days",
		},
		account:       "🏢",
		spend:         "💰 Spend",
		impressions:   "👁 Impressions",
		clicks:        "🖱 Clicks",
		reach:         "🎯 Reach",
		conversations: "💬 Conversations",
		campaigns:     "Campaigns",
		active:        "✅ Active",
		paused:        "⏸ Paused",
		dateLayout:    "02 Jan 2006",
		decimalSep:    ".",
	},
}

var currencySymbols = map[string]string{
	"USD": "$",
	"BRL": "R$",
	"EUR": "€",
	"GBP": "£",
}

// NormalizeLocale mapeia o valor persistido (ou o language_code do
// Telegram) para um locale suportado. Desconhecido cai no padrão.
func NormalizeLocale(value string) Locale {
	switch Locale(strings.ToLower(value)) {
	case LocalePT, LocaleEN:
		return Locale(strings.ToLower(value))
	}
	return LocalePT
}

// AccountReport é a entrada do formatador: uma conta já agregada.
type AccountReport struct {
	AccountName string
	Currency    string
	Totals      Totals
	Groups      []Group
}

// FormatMemberReport renderiza o relatório de conta única: totais primeiro,
// quebra por objetivo só quando existe mais de um.
func FormatMemberReport(report AccountReport, period domain.ReportPeriod, timeRange domain.TimeRange, locale Locale) string {
	labels := labelsByLocale[NormalizeLocale(string(locale))]

	var b strings.Builder
	writeHeader(&b, labels, period, timeRange)

	fmt.Fprintf(&b, "\n%s <b>%s</b>\n\n", labels.account, report.AccountName)
	writeTotals(&b, labels, report.Totals, report.Currency)

	if len(report.Groups) > 1 {
		for _, group := range report.Groups {
			b.WriteString("\n")
			writeGroup(&b, labels, group, report.Currency)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatAdminReport renderiza o resumo multi-contas: uma linha de resumo e
// a quebra por objetivo para cada conta, com divisor entre contas.
func FormatAdminReport(reports []AccountReport, period domain.ReportPeriod, timeRange domain.TimeRange, locale Locale) string {
	labels := labelsByLocale[NormalizeLocale(string(locale))]

	var b strings.Builder
	writeHeader(&b, labels, period, timeRange)

	for i, report := range reports {
		if i > 0 {
			fmt.Fprintf(&b, "\n%s\n", accountDivider)
		}

		fmt.Fprintf(&b, "\n%s <b>%s</b> — %s: %s · %s: %s\n",
			labels.account,
			report.AccountName,
			labels.spend,
			formatMoney(report.Totals.Spend, report.Currency, labels),
			labels.campaigns,
			formatInt(int64(report.Totals.ActiveCount+report.Totals.PausedCount)),
		)

		for _, group := range report.Groups {
			b.WriteString("\n")
			writeGroup(&b, labels, group, report.Currency)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeHeader(b *strings.Builder, labels labelSet, period domain.ReportPeriod, timeRange domain.TimeRange) {
	b.WriteString(labels.title + "\n")

	if label, ok := labels.periods[period]; ok {
		b.WriteString(label + "\n")
	}

	if !timeRange.SingleDay() {
		fmt.Fprintf(b, "📅 %s – %s\n",
			timeRange.Since.Format(labels.dateLayout),
			timeRange.Until.Format(labels.dateLayout),
		)
	}
}

func writeTotals(b *strings.Builder, labels labelSet, totals Totals, currency string) {
	fmt.Fprintf(b, "%s: %s\n", labels.spend, formatMoney(totals.Spend, currency, labels))
	fmt.Fprintf(b, "%s: %s\n", labels.impressions, formatInt(totals.Impressions))
	fmt.Fprintf(b, "%s: %s\n", labels.clicks, formatInt(totals.Clicks))
	fmt.Fprintf(b, "%s: %s\n", labels.reach, formatInt(totals.Reach))

	if totals.Conversations > 0 {
		fmt.Fprintf(b, "%s: %s\n", labels.conversations, formatInt(totals.Conversations))
	}

	fmt.Fprintf(b, "CTR: %s\n", formatPercent(totals.CTR, labels))
	fmt.Fprintf(b, "CPC: %s\n", formatMoney(totals.CPC, currency, labels))
	fmt.Fprintf(b, "CPM: %s\n", formatMoney(totals.CPM, currency, labels))
	fmt.Fprintf(b, "%s: %d · %s: %d\n", labels.active, totals.ActiveCount, labels.paused, totals.PausedCount)
}

func writeGroup(b *strings.Builder, labels labelSet, group Group, currency string) {
	fmt.Fprintf(b, "<b>%s</b> (%s: %d)\n", group.Objective, labels.campaigns, group.Campaigns)
	fmt.Fprintf(b, "%s: %s\n", labels.spend, formatMoney(group.Totals.Spend, currency, labels))
	fmt.Fprintf(b, "%s: %s\n", labels.impressions, formatInt(group.Totals.Impressions))
	fmt.Fprintf(b, "%s: %s\n", labels.clicks, formatInt(group.Totals.Clicks))

	if group.Totals.Conversations > 0 {
		fmt.Fprintf(b, "%s: %s\n", labels.conversations, formatInt(group.Totals.Conversations))
	}
}

// formatMoney prefixa o símbolo da moeda quando conhecido; moedas fora da
// tabela saem como "<código> <valor>".
func formatMoney(value float64, currency string, labels labelSet) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	return symbol + formatDecimal(value, labels)
}

func formatPercent(value float64, labels labelSet) string {
	return formatDecimal(value, labels) + "%"
}

// formatDecimal formata com duas casas, separador decimal do locale e
// milhares agrupados com espaço não quebrável.
func formatDecimal(value float64, labels labelSet) string {
	raw := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(raw, ".", 2)

	return groupThousands(parts[0]) + labels.decimalSep + parts[1]
}

func formatInt(value int64) string {
	return groupThousands(fmt.Sprintf("%d", value))
}

func groupThousands(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	result := strings.Join(groups, nbsp)
	if negative {
		result = "-" + result
	}

	return result
}
