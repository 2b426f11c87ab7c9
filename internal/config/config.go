package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	BookingExpiry   BookingExpiry   `mapstructure:",squash"`
	VendorStatsSync VendorStatsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Dashboard struct {
	// Limite das listagens de clientes/fornecedores do dashboard
	ListingLimit int `mapstructure:"dashboard_listing_limit"`
	// Limite da listagem de pagamentos recentes
	RecentPaymentsLimit int `mapstructure:"dashboard_recent_payments_limit"`
}

type BookingExpiry struct {
	CronSchedule string `mapstructure:"booking_expiry_cron"`
	MaxAgeDays   int    `mapstructure:"booking_expiry_max_age_days"`
	Enabled      bool   `mapstructure:"booking_expiry_enabled"`
}

type VendorStatsSync struct {
	CronSchedule string `mapstructure:"vendor_stats_sync_cron"`
	Enabled      bool   `mapstructure:"vendor_stats_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/homeservices")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("DASHBOARD_LISTING_LIMIT", 50)
	viper.SetDefault("DASHBOARD_RECENT_PAYMENTS_LIMIT", 20)

	// Defaults dos jobs de manutenção
	viper.SetDefault("BOOKING_EXPIRY_CRON", "0 2 * * *")  // Todos os dias às 2h da manhã
	viper.SetDefault("BOOKING_EXPIRY_MAX_AGE_DAYS", 14)   // Requested há mais de 14 dias expira
	viper.SetDefault("BOOKING_EXPIRY_ENABLED", false)     // Habilitar expiração de agendamentos
	viper.SetDefault("VENDOR_STATS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("VENDOR_STATS_SYNC_ENABLED", false)  // Habilitar recálculo de total_jobs

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
