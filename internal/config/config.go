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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	LabDados         LabDados         `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	Export           Export           `mapstructure:",squash"`
	ExportCachePurge ExportCachePurge `mapstructure:",squash"`
	RateLimit        RateLimit        `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text ou json
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LabDados configura a API de produtos que alimenta o painel
type LabDados struct {
	URL     string        `mapstructure:"labdados_url"`
	Timeout time.Duration `mapstructure:"labdados_timeout"`
}

type Dashboard struct {
	TopEntries int `mapstructure:"dashboard_top_entries"` // Linhas dos gráficos de barras
	TopSellers int `mapstructure:"dashboard_top_sellers"` // Padrão do ranking de vendedores (2-10)
}

type Export struct {
	CacheSize int           `mapstructure:"export_cache_size"`
	CacheTTL  time.Duration `mapstructure:"export_cache_ttl"`
}

type ExportCachePurge struct {
	CronSchedule string `mapstructure:"export_cache_purge_cron"`
	Enabled      bool   `mapstructure:"export_cache_purge_enabled"`
}

type RateLimit struct {
	Enabled bool    `mapstructure:"rate_limit_enabled"`
	RPS     float64 `mapstructure:"rate_limit_rps"`
	Burst   int     `mapstructure:"rate_limit_burst"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	viper.SetDefault("LABDADOS_URL", "https://labdados.com/produtos")
	viper.SetDefault("LABDADOS_TIMEOUT", "30s")

	viper.SetDefault("DASHBOARD_TOP_ENTRIES", 5)
	viper.SetDefault("DASHBOARD_TOP_SELLERS", 5)

	viper.SetDefault("EXPORT_CACHE_SIZE", 32)
	viper.SetDefault("EXPORT_CACHE_TTL", "10m")

	viper.SetDefault("EXPORT_CACHE_PURGE_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("EXPORT_CACHE_PURGE_ENABLED", false)

	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return config, nil
}

// Validate verifica os limites que o restante da aplicação assume
func (c *Config) Validate() error {
	if c.LabDados.URL == "" {
		return fmt.Errorf("LABDADOS_URL não pode ser vazio")
	}

	if c.LabDados.Timeout <= 0 {
		return fmt.Errorf("LABDADOS_TIMEOUT deve ser positivo")
	}

	if c.Dashboard.TopEntries < 1 {
		return fmt.Errorf("DASHBOARD_TOP_ENTRIES deve ser maior que zero, recebido %d", c.Dashboard.TopEntries)
	}

	if c.Dashboard.TopSellers < 2 || c.Dashboard.TopSellers > 10 {
		return fmt.Errorf("DASHBOARD_TOP_SELLERS deve estar entre 2 e 10, recebido %d", c.Dashboard.TopSellers)
	}

	if c.Export.CacheSize < 1 {
		return fmt.Errorf("EXPORT_CACHE_SIZE deve ser maior que zero, recebido %d", c.Export.CacheSize)
	}

	if c.Export.CacheTTL <= 0 {
		return fmt.Errorf("EXPORT_CACHE_TTL deve ser positivo")
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("RATE_LIMIT_RPS e RATE_LIMIT_BURST devem ser positivos")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
