package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	gomock "go.uber.org/mock/gomock"
)

func newTestDailyReportService(t *testing.T) (*DailyReportService, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	reportService := mocks.NewMockService(ctrl)

	cfg := &config.Config{}
	cfg.DailyReport.CronSchedule = "0 6 * * *"
	cfg.DailyReport.Period = "yesterday"
	cfg.DailyReport.Enabled = true

	return NewDailyReportService(reportService, cfg), reportService
}

func TestTriggerManualRun(t *testing.T) {
	service, reportService := newTestDailyReportService(t)

	done := make(chan struct{})
	reportService.EXPECT().SendDailyReports().DoAndReturn(func() reporting.BatchSummary {
		defer close(done)
		return reporting.BatchSummary{Recipients: 2, Sent: 2}
	})

	require.NoError(t, service.TriggerManualRun())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ciclo manual não executou")
	}

	// espera o estado assentar após o término do ciclo
	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		running, _ := status["run_in_progress"].(bool)
		return !running
	}, time.Second, 10*time.Millisecond)

	status := service.GetStatus()
	summary, ok := status["last_run_summary"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, summary["sent"])
}

func TestTriggerManualRun_RejectsOverlap(t *testing.T) {
	service, reportService := newTestDailyReportService(t)

	block := make(chan struct{})
	started := make(chan struct{})
	reportService.EXPECT().SendDailyReports().DoAndReturn(func() reporting.BatchSummary {
		close(started)
		<-block
		return reporting.BatchSummary{}
	})

	require.NoError(t, service.TriggerManualRun())
	<-started

	err := service.TriggerManualRun()
	assert.Error(t, err)

	close(block)
}

func TestGetStatus_Defaults(t *testing.T) {
	service, _ := newTestDailyReportService(t)

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 6 * * *", status["cron_schedule"])
	assert.Equal(t, "yesterday", status["period"])
	assert.Equal(t, false, status["run_in_progress"])
	assert.NotContains(t, status, "last_run_summary")
}
