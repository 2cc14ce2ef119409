package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

// DailyReportConfig representa a configuração do agendador de relatórios diários
type DailyReportConfig struct {
	CronSchedule string
	Period       string
	Enabled      bool
}

// DailyReportService gerencia o agendamento do disparo diário de relatórios
// pelo Telegram
type DailyReportService struct {
	scheduler          *gocron.Scheduler
	config             DailyReportConfig
	reportService      reporting.Service
	runMutex           sync.Mutex
	runInProgress      bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunSummary     reporting.BatchSummary
}

// NewDailyReportService cria uma nova instância do serviço de relatórios diários
func NewDailyReportService(
	reportService reporting.Service,
	appConfig *config.Config,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: appConfig.DailyReport.CronSchedule,
		Period:       appConfig.DailyReport.Period,
		Enabled:      appConfig.DailyReport.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"period":        reportConfig.Period,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador de relatórios diários carregada")

	return &DailyReportService{
		scheduler:     scheduler,
		config:        reportConfig,
		reportService: reportService,
	}
}

// Start inicia o agendador
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Disparo diário de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyBroadcast()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar disparo diário de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios diários")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyBroadcast executa um ciclo de envio. Ciclos não se sobrepõem: se
// o anterior ainda está rodando, o disparo é ignorado.
func (s *DailyReportService) runDailyBroadcast() {
	s.runMutex.Lock()
	if s.runInProgress {
		s.runMutex.Unlock()
		logrus.Info("Ciclo de relatórios diários já em andamento, ignorando")
		return
	}
	s.runInProgress = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	logrus.Info("Iniciando ciclo de relatórios diários")

	summary := s.reportService.SendDailyReports()

	s.runMutex.Lock()
	s.runInProgress = false
	s.lastRunSummary = summary
	s.lastRunCompletedAt = time.Now()
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"recipients": summary.Recipients,
		"sent":       summary.Sent,
		"skipped":    summary.Skipped,
		"failed":     summary.Failed,
		"duration":   time.Since(s.lastRunStartedAt).String(),
	}).Info("Ciclo de relatórios diários concluído")
}

// TriggerManualRun dispara um ciclo fora do horário agendado (endpoint de
// cron manual). Retorna erro se já houver ciclo em andamento.
func (s *DailyReportService) TriggerManualRun() error {
	s.runMutex.Lock()
	inProgress := s.runInProgress
	s.runMutex.Unlock()

	if inProgress {
		return fmt.Errorf("ciclo de relatórios diários já em andamento")
	}

	go s.runDailyBroadcast()

	return nil
}

// GetStatus devolve o estado corrente do agendador para o endpoint de status
func (s *DailyReportService) GetStatus() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]interface{}{
		"enabled":         s.config.Enabled,
		"cron_schedule":   s.config.CronSchedule,
		"period":          s.config.Period,
		"run_in_progress": s.runInProgress,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}

	if !s.lastRunCompletedAt.IsZero() {
		status["last_run_completed_at"] = s.lastRunCompletedAt.Format(time.RFC3339)
		status["last_run_summary"] = map[string]int{
			"recipients": s.lastRunSummary.Recipients,
			"sent":       s.lastRunSummary.Sent,
			"skipped":    s.lastRunSummary.Skipped,
			"failed":     s.lastRunSummary.Failed,
		}
	}

	return status
}
