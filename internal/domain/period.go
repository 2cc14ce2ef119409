package domain

import "time"

// ReportPeriod é um token de período que se expande deterministicamente em
// um TimeRange ancorado em "agora".
type ReportPeriod string

const (
	PeriodToday     ReportPeriod = "today"
	PeriodYesterday ReportPeriod = "yesterday"
	PeriodWeek      ReportPeriod = "week"
	PeriodMonth     ReportPeriod = "month"
	PeriodLast30    ReportPeriod = "last30"
)

// Resolve expande o token em um intervalo concreto. Tokens desconhecidos
// caem no comportamento de "today".
func (p ReportPeriod) Resolve(now time.Time) TimeRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodYesterday:
		d := today.AddDate(0, 0, -1)
		return TimeRange{Since: d, Until: d}
	case PeriodWeek:
		return TimeRange{Since: today.AddDate(0, 0, -6), Until: today}
	case PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return TimeRange{Since: start, Until: today}
	case PeriodLast30:
		return TimeRange{Since: today.AddDate(0, 0, -29), Until: today}
	default:
		return TimeRange{Since: today, Until: today}
	}
}
