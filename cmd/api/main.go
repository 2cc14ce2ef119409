package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/api"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/worker"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	metaAuthRepo := repository.NewMetaAuthRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Um único http.Client compartilhado; os timeouts por operação vêm do
	// contexto de cada requisição.
	httpClient := &http.Client{}

	metaClient := metaclient.NewClient(cfg, httpClient)
	metaIntegrator := meta.New(cfg, metaClient)

	telegramClient := telegram.NewClient(cfg, httpClient)

	reportService := reporting.NewService(cfg, userRepo, metaAuthRepo, metaIntegrator, telegramClient)
	insightService := insighting.NewService(userRepo, metaAuthRepo, metaIntegrator, reportService)

	pool := worker.NewPool(cfg.Worker.PoolSize, cfg.Worker.QueueSize)

	dailyReportService := scheduler.NewDailyReportService(reportService, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios diários")
	} else {
		logrus.Info("Agendador de relatórios diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		insightService,
		reportService,
		userRepo,
		telegramClient,
		pool,
		dailyReportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
