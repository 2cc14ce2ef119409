package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/worker"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

// SendUserReport dispara o relatório de um usuário sob demanda. A checagem
// de endereçabilidade é síncrona; a geração e o envio rodam no worker pool
// e a requisição retorna 202 na hora.
func SendUserReport(reportService reporting.Service, userRepo repository.UserRepository, pool *worker.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SendUserReport")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		userID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		user, err := userRepo.GetUserByID(userID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário", nil)
			return
		}
		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		if !user.HasTelegram() {
			apiErrors.WriteError(w, apiErrors.ErrRecipientNotLinked, "Usuário sem chat do Telegram vinculado", nil)
			return
		}

		period := domain.ReportPeriod(r.URL.Query().Get("period"))
		if period == "" {
			period = domain.PeriodToday
		}

		job := worker.Job{
			Name: "on-demand-report",
			Run: func() {
				outcome := reportService.SendReportForUser(user, period)
				logrus.WithFields(logrus.Fields{
					"user_id": user.ID,
					"period":  period,
					"status":  outcome.Status,
					"reason":  outcome.Reason,
				}).Info("report: on-demand delivery finished")
			},
		}

		if err := pool.Submit(job); err != nil {
			if errors.Is(err, worker.ErrQueueFull) {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Fila de envio cheia, tente novamente em instantes", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao agendar envio do relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Envio do relatório agendado",
			"user_id": user.ID,
			"period":  period,
		})
	}
}
