package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	svcerrors "github.com/rafabene/avantpro-commerce/internal/domain/errors"
)

// Formatos de payload de erro
const (
	ErrorFormatWrapper = "wrapper" // {"httpStatusCode": ..., "messages": [...]}
	ErrorFormatProblem = "problem" // RFC 7807
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	I18n     I18nConfig
	Errors   ErrorsConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	AutoMigrate bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins string
}

type I18nConfig struct {
	LocalesDir      string // vazio = catálogos embutidos
	DefaultLanguage string
}

type ErrorsConfig struct {
	Format           string
	MessageKeyPrefix string // vazio = chaves expostas sem alteração
	AlwaysOK         bool   // responder 200 mesmo em erro (detalhes no corpo)
}

// Load carrega as configurações do ambiente.
// envFiles são arquivos .env opcionais (padrão: ".env"); arquivos ausentes são ignorados.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
		Errors: ErrorsConfig{
			Format:           v.GetString("ERRORS_FORMAT"),
			MessageKeyPrefix: v.GetString("ERRORS_MESSAGE_KEY_PREFIX"),
			AlwaysOK:         v.GetBool("ERRORS_ALWAYS_OK"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "en")
	v.SetDefault("ERRORS_FORMAT", ErrorFormatWrapper)
	v.SetDefault("ERRORS_MESSAGE_KEY_PREFIX", svcerrors.MessageKeyPrefix)
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Errors.Format {
	case ErrorFormatWrapper, ErrorFormatProblem:
	default:
		return fmt.Errorf("invalid ERRORS_FORMAT %q: expected %q or %q",
			c.Errors.Format, ErrorFormatWrapper, ErrorFormatProblem)
	}
	return nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
