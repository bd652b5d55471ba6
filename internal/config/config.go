package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Import     Import     `mapstructure:",squash"`
	ImportSync ImportSync `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

func (a App) IsDevelopment() bool {
	return a.Env == "development" || a.Env == "dev"
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	StaticDir          string   `mapstructure:"static_dir"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	SQLDriver    string `mapstructure:"database_sql_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	SSLMode      string `mapstructure:"database_sslmode"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Import struct {
	File string `mapstructure:"import_file"`
}

type ImportSync struct {
	CronSchedule string `mapstructure:"import_sync_cron"`
	Enabled      bool   `mapstructure:"import_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("STATIC_DIR", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_SQL_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pms_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("IMPORT_FILE", "PMS Dashboard.xlsx")

	viper.SetDefault("IMPORT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("IMPORT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.Server.CorsAllowedOrigins = trimAll(config.Server.CorsAllowedOrigins)
	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN aceita DATABASE_URL completa (postgres://...) ou apenas host:porta/banco
func BuildDSN(db Database) string {
	if strings.Contains(db.URL, "://") {
		return db.URL
	}

	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" && !strings.Contains(db.URL, "sslmode=") {
		separator := "?"
		if strings.Contains(db.URL, "?") {
			separator = "&"
		}
		dsn = fmt.Sprintf("%s%ssslmode=%s", dsn, separator, db.SSLMode)
	}

	return dsn
}

func (s Server) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
