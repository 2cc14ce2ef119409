package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

// OutcomeStatus distingue entrega, pulo legítimo e falha. O laço de lote
// decide o que fazer com um simples switch, sem interceptar erro.
type OutcomeStatus string

const (
	OutcomeSent    OutcomeStatus = "sent"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

type Outcome struct {
	Status OutcomeStatus
	Reason string
	Err    error
}

func sent() Outcome {
	return Outcome{Status: OutcomeSent}
}

func skipped(reason string) Outcome {
	return Outcome{Status: OutcomeSkipped, Reason: reason}
}

func failed(reason string, err error) Outcome {
	return Outcome{Status: OutcomeFailed, Reason: reason, Err: err}
}

// BatchSummary consolida um ciclo de envio para logs e para o endpoint de
// disparo manual.
type BatchSummary struct {
	Recipients int
	Sent       int
	Skipped    int
	Failed     int
}

type Service interface {
	SendReportForUser(user *domain.User, period domain.ReportPeriod) Outcome
	SendDailyReports() BatchSummary
	ResolveToken(user *domain.User) (string, error)
}

type service struct {
	cfg          *config.Config
	userRepo     repository.UserRepository
	metaAuthRepo repository.MetaAuthRepository
	integrator   meta.Integrator
	messenger    telegram.Client
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	metaAuthRepo repository.MetaAuthRepository,
	integrator meta.Integrator,
	messenger telegram.Client,
) Service {
	return &service{
		cfg:          cfg,
		userRepo:     userRepo,
		metaAuthRepo: metaAuthRepo,
		integrator:   integrator,
		messenger:    messenger,
		now:          time.Now,
	}
}

// ResolveToken resolve o token de acesso do usuário pela cadeia de
// propriedade: admin usa o próprio, membro herda do admin que o criou. A
// cadeia tem um nível só, nunca é seguida mais fundo.
func (s *service) ResolveToken(user *domain.User) (string, error) {
	ownerID := user.ID
	if !user.IsAdmin() {
		if user.CreatedByID == nil {
			return "", ErrCredentialMissing
		}
		ownerID = *user.CreatedByID
	}

	auth, err := s.metaAuthRepo.GetByOwner(ownerID)
	if err != nil {
		return "", err
	}

	if auth == nil || !auth.HasToken() {
		return "", ErrCredentialMissing
	}

	return *auth.LongToken, nil
}

// SendReportForUser roda o pipeline completo para um destinatário: resolve
// o token, busca e agrega as campanhas, formata no locale do usuário e
// entrega pelo Telegram.
func (s *service) SendReportForUser(user *domain.User, period domain.ReportPeriod) Outcome {
	if !user.HasTelegram() {
		return skipped("sem chat do Telegram vinculado")
	}

	token, err := s.ResolveToken(user)
	if errors.Is(err, ErrCredentialMissing) {
		logrus.WithField("user_id", user.ID).Info("report: user has no resolvable token, skipping")
		return skipped("sem token de acesso resolvível")
	}
	if err != nil {
		return failed("erro ao resolver token de acesso", err)
	}

	timeRange := period.Resolve(s.now())

	locale := LocalePT
	if user.Locale != nil {
		locale = NormalizeLocale(*user.Locale)
	}

	// Admin sempre recebe o resumo multi-contas, mesmo quando tem uma conta
	// vinculada para as consultas interativas.
	var text string
	if user.IsAdmin() {
		text, err = s.buildAdminReport(token, period, timeRange, locale)
	} else {
		text, err = s.buildMemberReport(user, token, period, timeRange, locale)
	}
	if err != nil {
		return failed("erro ao montar relatório", err)
	}

	if text == "" {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"period":  period,
		}).Info("report: no activity in window, nothing to send")
		return skipped("nenhuma atividade no período")
	}

	if err := s.messenger.SendMessage(*user.TelegramChatID, text); err != nil {
		return failed("erro ao entregar mensagem", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"period":  period,
	}).Info("report: successfully delivered")

	return sent()
}

// buildAdminReport monta o resumo multi-contas. Contas sem campanha ativa
// no período ficam de fora, e a falha de busca de uma conta é registrada e
// tratada como conta vazia, sem derrubar o resumo das demais. Se nenhuma
// sobrar, não há mensagem.
func (s *service) buildAdminReport(token string, period domain.ReportPeriod, timeRange domain.TimeRange, locale Locale) (string, error) {
	accounts, err := s.integrator.GetAdAccounts(token)
	if err != nil {
		return "", err
	}

	reports := make([]AccountReport, 0, len(accounts))
	for _, account := range accounts {
		campaigns, err := s.integrator.GetCampaigns(account.AccountID, token, timeRange, false)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.AccountID,
				"error":      err.Error(),
			}).Warn("report: failed to fetch campaigns for account, skipping it")
			continue
		}

		if len(campaigns) == 0 {
			continue
		}

		reports = append(reports, AccountReport{
			AccountName: account.Name,
			Currency:    account.Currency,
			Totals:      Aggregate(campaigns),
			Groups:      GroupByObjective(campaigns),
		})
	}

	if len(reports) == 0 {
		return "", nil
	}

	return FormatAdminReport(reports, period, timeRange, locale), nil
}

// buildMemberReport monta o relatório da única conta vinculada ao usuário.
func (s *service) buildMemberReport(user *domain.User, token string, period domain.ReportPeriod, timeRange domain.TimeRange, locale Locale) (string, error) {
	if user.AdAccountID == nil || *user.AdAccountID == "" {
		return "", ErrAccountAccessDenied
	}

	accountID := *user.AdAccountID

	campaigns, err := s.integrator.GetCampaigns(accountID, token, timeRange, false)
	if err != nil {
		return "", err
	}

	if len(campaigns) == 0 {
		return "", nil
	}

	accountName := accountID
	currency := ""
	accounts, err := s.integrator.GetAdAccounts(token)
	if err == nil {
		for _, account := range accounts {
			if account.AccountID == accountID {
				accountName = account.Name
				currency = account.Currency
				break
			}
		}
	}

	report := AccountReport{
		AccountName: accountName,
		Currency:    currency,
		Totals:      Aggregate(campaigns),
		Groups:      GroupByObjective(campaigns),
	}

	return FormatMemberReport(report, period, timeRange, locale), nil
}

// SendDailyReports percorre os destinatários elegíveis em sequência. A
// falha de um destinatário é registrada e não interrompe os demais; o
// sequenciamento é proposital para não estourar o rate limit de um token
// compartilhado.
func (s *service) SendDailyReports() BatchSummary {
	period := domain.ReportPeriod(s.cfg.DailyReport.Period)

	var summary BatchSummary

	targets, err := s.userRepo.ListBroadcastTargets(true)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("report: failed to list daily recipients")
		return summary
	}

	summary.Recipients = len(targets)

	for _, target := range targets {
		outcome := s.SendReportForUser(target, period)

		metrics.ReportsSent.WithLabelValues(string(outcome.Status)).Inc()

		switch outcome.Status {
		case OutcomeSent:
			summary.Sent++
		case OutcomeSkipped:
			summary.Skipped++
			logrus.WithFields(logrus.Fields{
				"user_id": target.ID,
				"reason":  outcome.Reason,
			}).Info("report: recipient skipped")
		case OutcomeFailed:
			summary.Failed++
			logrus.WithFields(logrus.Fields{
				"user_id": target.ID,
				"reason":  outcome.Reason,
				"error":   outcome.Err,
			}).Error("report: recipient failed, continuing batch")
		}
	}

	logrus.WithFields(logrus.Fields{
		"recipients": summary.Recipients,
		"sent":       summary.Sent,
		"skipped":    summary.Skipped,
		"failed":     summary.Failed,
	}).Info("report: daily batch finished")

	return summary
}
