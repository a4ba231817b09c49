package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Upstream  UpstreamConfig
	JWT       JWTConfig
	Dashboard DashboardConfig
	DB        DBConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Metrics   MetricsConfig
	Report    ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
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

// UpstreamConfig configuración del cliente de la API REST de inventario.
type UpstreamConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // peticiones por segundo hacia la API; 0 = sin límite
	Burst     int
}

// JWTConfig configuración de inspección de tokens.
// Si Secret está vacío la consola no verifica firmas: solo decodifica y revisa expiración.
type JWTConfig struct {
	Secret string
	Issuer string
}

// Fuentes de datos posibles para el dashboard.
const (
	SourceAPI      = "api"
	SourcePostgres = "postgres"
)

// DashboardConfig parámetros del cálculo de stock.
type DashboardConfig struct {
	Source           string // api | postgres
	Timezone         string // zona del consumidor para "hoy"; vacío = Local
	InitialStockNote string // nota que marca el stock inicial cuando la API no envía el flag
	RecentMovements  int    // filas de "últimas movimentações"
	CacheTTL         time.Duration
}

// Location resuelve Timezone; si no es válida devuelve time.Local y el error.
func (c DashboardConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local, fmt.Errorf("zona horaria %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// DBConfig configuración de PostgreSQL (fuente de lectura opcional del dashboard).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig memo del dashboard. Addr vacío = sin caché.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// NATSConfig alertas de stock bajo. URL vacía = sin publicación.
type NATSConfig struct {
	URL     string
	Subject string
}

// Enabled indica si hay NATS configurado.
func (c NATSConfig) Enabled() bool { return c.URL != "" }

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled bool
}

// ReportConfig formato de las exportaciones XLSX/PDF.
type ReportConfig struct {
	Locale   string // BCP 47, ej. pt-BR
	Currency string // ISO 4217, ej. BRL
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, UPSTREAM_BASE_URL, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Upstream: UpstreamConfig{
			BaseURL:   strings.TrimRight(getString(v, "UPSTREAM_BASE_URL", "http://localhost:3000"), "/"),
			Timeout:   getDuration(v, "UPSTREAM_TIMEOUT", 10*time.Second),
			RateLimit: getFloat(v, "UPSTREAM_RATE_LIMIT", 20),
			Burst:     getInt(v, "UPSTREAM_BURST", 10),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", ""),
		},
		Dashboard: DashboardConfig{
			Source:           strings.ToLower(getString(v, "DASHBOARD_SOURCE", SourceAPI)),
			Timezone:         getString(v, "DASHBOARD_TIMEZONE", ""),
			InitialStockNote: getString(v, "DASHBOARD_INITIAL_STOCK_NOTE", "Initial stock"),
			RecentMovements:  getInt(v, "DASHBOARD_RECENT_MOVEMENTS", 10),
			CacheTTL:         getDuration(v, "DASHBOARD_CACHE_TTL", 30*time.Second),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		NATS: NATSConfig{
			URL:     getString(v, "NATS_URL", ""),
			Subject: getString(v, "NATS_LOW_STOCK_SUBJECT", "inventory.stock.low"),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
		Report: ReportConfig{
			Locale:   getString(v, "REPORT_LOCALE", "pt-BR"),
			Currency: getString(v, "REPORT_CURRENCY", "BRL"),
		},
	}

	if cfg.Dashboard.Source != SourceAPI && cfg.Dashboard.Source != SourcePostgres {
		return nil, fmt.Errorf("config: DASHBOARD_SOURCE inválido %q (api|postgres)", cfg.Dashboard.Source)
	}
	if cfg.Dashboard.RecentMovements < 0 {
		cfg.Dashboard.RecentMovements = 0
	}
	if _, err := url.ParseRequestURI(cfg.Upstream.BaseURL); err != nil {
		return nil, fmt.Errorf("config: UPSTREAM_BASE_URL inválido: %w", err)
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
		case int:
			return v.GetInt(key)
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// getDuration acepta "10s", "500ms" o un entero interpretado como segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
