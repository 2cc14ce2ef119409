package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Telegram    Telegram    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	DailyReport DailyReport `mapstructure:",squash"`
	Worker      Worker      `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL              string        `mapstructure:"meta_base_url"`
	URL                  string        `mapstructure:"meta_url"`
	Version              string        `mapstructure:"meta_version"`
	AppID                string        `mapstructure:"meta_app_id"`
	AppSecret            string        `mapstructure:"meta_app_secret"`
	ActiveStatuses       []string      `mapstructure:"meta_active_statuses"`
	InsightFields        string        `mapstructure:"meta_insight_fields"`
	ListTimeout          time.Duration `mapstructure:"meta_list_timeout"`
	ControlTimeout       time.Duration `mapstructure:"meta_control_timeout"`
	MaxConcurrentFetches int           `mapstructure:"meta_max_concurrent_fetches"`
}

type Telegram struct {
	BotToken string        `mapstructure:"telegram_bot_token"`
	BotLink  string        `mapstructure:"telegram_bot_link"`
	APIURL   string        `mapstructure:"telegram_api_url"`
	Timeout  time.Duration `mapstructure:"telegram_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type DailyReport struct {
	CronSchedule  string `mapstructure:"daily_report_cron"`
	Period        string `mapstructure:"daily_report_period"`
	DefaultLocale string `mapstructure:"daily_report_default_locale"`
	Enabled       bool   `mapstructure:"daily_report_enabled"`
}

type Worker struct {
	PoolSize        int           `mapstructure:"worker_pool_size"`
	QueueSize       int           `mapstructure:"worker_queue_size"`
	ShutdownTimeout time.Duration `mapstructure:"worker_shutdown_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsreport")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACTIVE_STATUSES", "ACTIVE")
	viper.SetDefault("META_INSIGHT_FIELDS", "spend,impressions,clicks,reach,frequency,ctr,cpc,cpm,actions")
	viper.SetDefault("META_LIST_TIMEOUT", "60s")
	viper.SetDefault("META_CONTROL_TIMEOUT", "30s")
	viper.SetDefault("META_MAX_CONCURRENT_FETCHES", 5)

	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_BOT_LINK", "https://t.me/your_bot")
	viper.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_TIMEOUT", "10s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do disparo diário de relatórios
	viper.SetDefault("DAILY_REPORT_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DAILY_REPORT_PERIOD", "yesterday")
	viper.SetDefault("DAILY_REPORT_DEFAULT_LOCALE", "pt")
	viper.SetDefault("DAILY_REPORT_ENABLED", false)

	viper.SetDefault("WORKER_POOL_SIZE", 4)
	viper.SetDefault("WORKER_QUEUE_SIZE", 64)
	viper.SetDefault("WORKER_SHUTDOWN_TIMEOUT", "30s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
