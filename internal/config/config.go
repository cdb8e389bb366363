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
	FMP         FMP         `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	CompanySync CompanySync `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
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

type FMP struct {
	BaseURL      string        `mapstructure:"fmp_base_url"`
	APIKey       string        `mapstructure:"fmp_api_key"`
	Timeout      time.Duration `mapstructure:"fmp_timeout"`
	MaxRetries   int           `mapstructure:"fmp_max_retries"`
	RetryBackoff time.Duration `mapstructure:"fmp_retry_backoff"`
	RateLimitRPS float64       `mapstructure:"fmp_rate_limit_rps"`
}

type Auth struct {
	Enabled  bool          `mapstructure:"auth_enabled"`
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type CompanySync struct {
	CronSchedule        string `mapstructure:"company_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"company_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"company_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"company_sync_enabled"`
	FinancialLimit      int    `mapstructure:"company_sync_financial_limit"`
	MetricsLimit        int    `mapstructure:"company_sync_metrics_limit"`
	Period              string `mapstructure:"company_sync_period"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/stockmate")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FMP_BASE_URL", "https://financialmodelingprep.com/stable")
	viper.SetDefault("FMP_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("FMP_TIMEOUT", "10s")
	viper.SetDefault("FMP_MAX_RETRIES", 3)
	viper.SetDefault("FMP_RETRY_BACKOFF", "500ms")
	viper.SetDefault("FMP_RATE_LIMIT_RPS", 8.0)

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Defaults for the scheduled company data sync
	viper.SetDefault("COMPANY_SYNC_CRON", "0 3 * * *")        // every day at 3am
	viper.SetDefault("COMPANY_SYNC_REQUEST_DELAY_SECONDS", 1) // pause between FMP calls
	viper.SetDefault("COMPANY_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("COMPANY_SYNC_ENABLED", false)
	viper.SetDefault("COMPANY_SYNC_FINANCIAL_LIMIT", 40)
	viper.SetDefault("COMPANY_SYNC_METRICS_LIMIT", 40)
	viper.SetDefault("COMPANY_SYNC_PERIOD", "annual")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func NewConfig() (*Config, error) {
	// Load the .env file first so viper sees its values as env vars
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file from the first known location that has one.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve the current directory:", err)
		return
	}

	// Tests run from package directories, so walk a few levels up too
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on process environment")
}
