package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/worker"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// MetaAuth retorna as rotas do fluxo de conexão do token de longa duração
func MetaAuth(service insighting.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/auth/exchange-token",
			Method:      http.MethodPost,
			Handler:     ExchangeMetaToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/meta/auth/status",
			Method:      http.MethodGet,
			Handler:     GetMetaTokenStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/auth",
			Method:      http.MethodDelete,
			Handler:     DisconnectMetaToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// MetaInsights retorna as rotas de consulta interativa de contas, campanhas,
// conjuntos e anúncios
func MetaInsights(service insighting.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/accounts",
			Method:      http.MethodGet,
			Handler:     ListMetaAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/accounts/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListMetaCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/accounts/:id/campaigns/:campaign_id/adsets",
			Method:      http.MethodGet,
			Handler:     ListMetaAdSets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/adsets/:id/ads",
			Method:      http.MethodGet,
			Handler:     ListMetaAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Telegram retorna as rotas de vínculo de chat e preferências de envio
func Telegram(cfg *config.Config, userRepo repository.UserRepository, messenger telegram.Client) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/telegram/register",
			Method:      http.MethodGet,
			Handler:     TelegramRegisterLink(cfg, userRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Rota pública: o Telegram não manda JWT. A autenticidade vem do
			// token de registro dentro do payload.
			Path:    "/v1/telegram/webhook",
			Method:  http.MethodPost,
			Handler: TelegramWebhook(userRepo, messenger),
		},
		{
			Path:        "/v1/telegram/logout",
			Method:      http.MethodDelete,
			Handler:     TelegramLogout(userRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/telegram/chat-id",
			Method:      http.MethodGet,
			Handler:     TelegramChatID(userRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/telegram/daily",
			Method:      http.MethodPut,
			Handler:     TelegramDailyToggle(userRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Broadcast retorna a rota de envio de relatório sob demanda
func Broadcast(reportService reporting.Service, userRepo repository.UserRepository, pool *worker.Pool) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/broadcast/users/:id/report",
			Method:      http.MethodPost,
			Handler:     SendUserReport(reportService, userRepo, pool),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
