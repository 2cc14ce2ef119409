package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores globais do processo. Registrados no registry default e
// expostos em /metrics pelo promhttp.
var (
	MetaRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meta_api_requests_total",
		Help: "Total de requisições feitas à Graph API.",
	})

	MetaRequestErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meta_api_request_errors_total",
		Help: "Total de requisições à Graph API que terminaram em erro.",
	})

	TelegramMessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telegram_messages_sent_total",
		Help: "Total de mensagens entregues pelo bot do Telegram.",
	})

	TelegramMessageErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telegram_message_errors_total",
		Help: "Total de falhas no envio de mensagens pelo Telegram.",
	})

	ReportsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reports_sent_total",
		Help: "Total de relatórios por resultado do envio.",
	}, []string{"outcome"})

	WorkerJobsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_jobs_submitted_total",
		Help: "Total de jobs enfileirados no pool de workers.",
	})

	WorkerJobPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_job_panics_total",
		Help: "Total de jobs que terminaram em panic e foram recuperados.",
	})
)
