package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportPeriodResolve(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		period        ReportPeriod
		expectedSince string
		expectedUntil string
	}{
		{
			name:          "hoje",
			period:        PeriodToday,
			expectedSince: "2026-03-15",
			expectedUntil: "2026-03-15",
		},
		{
			name:          "ontem",
			period:        PeriodYesterday,
			expectedSince: "2026-03-14",
			expectedUntil: "2026-03-14",
		},
		{
			name:          "últimos 7 dias",
			period:        PeriodWeek,
			expectedSince: "2026-03-09",
			expectedUntil: "2026-03-15",
		},
		{
			name:          "mês corrente",
			period:        PeriodMonth,
			expectedSince: "2026-03-01",
			expectedUntil: "2026-03-15",
		},
		{
			name:          "últimos 30 dias",
			period:        PeriodLast30,
			expectedSince: "2026-02-14",
			expectedUntil: "2026-03-15",
		},
		{
			name:          "período desconhecido cai em hoje",
			period:        ReportPeriod("fortnight"),
			expectedSince: "2026-03-15",
			expectedUntil: "2026-03-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeRange := tt.period.Resolve(now)

			assert.Equal(t, tt.expectedSince, timeRange.SinceString())
			assert.Equal(t, tt.expectedUntil, timeRange.UntilString())
		})
	}
}

func TestTimeRangeSingleDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	assert.True(t, TimeRange{Since: day, Until: day}.SingleDay())
	assert.False(t, TimeRange{Since: day, Until: day.AddDate(0, 0, 1)}.SingleDay())
}

func TestInsightRecordHasActivity(t *testing.T) {
	tests := []struct {
		name     string
		record   InsightRecord
		expected bool
	}{
		{
			name:     "gasto e impressões zerados",
			record:   InsightRecord{Spend: "0", Impressions: "0", Clicks: "10"},
			expected: false,
		},
		{
			name:     "só gasto",
			record:   InsightRecord{Spend: "0.01", Impressions: "0"},
			expected: true,
		},
		{
			name:     "só impressões",
			record:   InsightRecord{Spend: "0", Impressions: "1"},
			expected: true,
		},
		{
			name:     "valores não numéricos contam como zero",
			record:   InsightRecord{Spend: "abc", Impressions: ""},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.HasActivity())
		})
	}
}
