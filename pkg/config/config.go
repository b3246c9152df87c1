package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Session SessionConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Client  ClientConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig conexión a la réplica PostgreSQL de la vista financiera.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL      string
	Host             string
	Port             int
	User             string
	Password         string
	DBName           string
	SSLMode          string
	ApplicationName  string
	StatementTimeout time.Duration
	MaxConns         int32
	MinConns         int32
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// SessionConfig cookie de sesión firmada (JWT HS256).
type SessionConfig struct {
	CookieName string
	Secret     string
	Issuer     string
	Expiration int // minutos, solo para tokens emitidos por cmd/session_token
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// ClientConfig configuración de la pantalla de consola (cmd/financeiro).
type ClientConfig struct {
	BaseURL     string
	Token       string // valor de la cookie de sesión
	CacheFile   string // snapshot de parceiros (equivalente al sessionStorage del navegador)
	DownloadDir string
	Timeout     time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, SESSION_SECRET, etc.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith igual que Load pero sobre una instancia de Viper ya preparada (por ejemplo con flags enlazados).
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "financeiro-api"),
		},
		DB: DBConfig{
			DatabaseURL:      getString(v, "DATABASE_URL", ""),
			Host:             getString(v, "DB_HOST", "localhost"),
			Port:             getInt(v, "DB_PORT", 5432),
			User:             getString(v, "DB_USER", "postgres"),
			Password:         getString(v, "DB_PASSWORD", ""),
			DBName:           getString(v, "DB_NAME", "sankhya"),
			SSLMode:          getString(v, "DB_SSLMODE", "disable"),
			ApplicationName:  getString(v, "DB_APPLICATION_NAME", "financeiro-api"),
			StatementTimeout: getDuration(v, "DB_STATEMENT_TIMEOUT", 30*time.Second),
			MaxConns:         int32(getInt(v, "DB_MAX_CONNS", 10)),
			MinConns:         int32(getInt(v, "DB_MIN_CONNS", 1)),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE_NAME", "user"),
			Secret:     getString(v, "SESSION_SECRET", ""),
			Issuer:     getString(v, "SESSION_ISSUER", "financeiro-api"),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 480),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Client: ClientConfig{
			BaseURL:     getString(v, "FINANCEIRO_API_URL", "http://localhost:8080"),
			Token:       getString(v, "FINANCEIRO_TOKEN", ""),
			CacheFile:   getString(v, "FINANCEIRO_CACHE_FILE", "cached_parceiros.json"),
			DownloadDir: getString(v, "FINANCEIRO_DOWNLOAD_DIR", "."),
			Timeout:     getDuration(v, "FINANCEIRO_TIMEOUT", 30*time.Second),
		},
	}

	if cfg.Session.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: SESSION_SECRET es obligatorio en production")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "30s", "2m" o un número de segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return def
}
